// Package format renders brace templates such as "foobar: {}, {}". Format
// goes through the safe adapter, so a malformed template or a missing
// argument comes back as a failed Result instead of a panic.
//
// A replacement field is {[index][:spec]}. The spec supports an optional fill
// rune, an alignment of '<', '>' or '^', and a width; numbers align right and
// everything else aligns left by default. Other spec forms, such as precision
// or type letters, are rejected. Arguments the template never refers to are
// ignored.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ib-77/ropsafe/pkg/rop"
	"github.com/ib-77/ropsafe/pkg/rop/safe"
)

// Format substitutes args into template. "{}" takes the next argument, "{N}"
// takes argument N, "{{" and "}}" are literal braces.
func Format(template string, args ...any) rop.Result[string] {
	return safe.Func2(render, template, args)
}

// Must is Format that panics on a bad template.
func Must(template string, args ...any) string {
	return render(template, args)
}

func render(template string, args []any) string {
	var sb strings.Builder
	sb.Grow(len(template))

	next := 0

	for i := 0; i < len(template); i++ {
		ch := template[i]
		switch ch {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}

			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				panic("unmatched '{' in format string")
			}
			field := template[i+1 : i+1+end]
			i += end + 1

			index, spec, _ := strings.Cut(field, ":")

			idx := next
			if index == "" {
				next++
			} else {
				n, err := strconv.Atoi(index)
				if err != nil || n < 0 {
					panic(fmt.Sprintf("invalid argument index %q", index))
				}
				idx = n
			}

			if idx >= len(args) {
				panic(fmt.Sprintf("argument index %d out of range", idx))
			}
			sb.WriteString(pad(fmt.Sprint(args[idx]), spec, isNumber(args[idx])))
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				sb.WriteByte('}')
				i++
				continue
			}
			panic("unmatched '}' in format string")
		default:
			sb.WriteByte(ch)
		}
	}

	return sb.String()
}

func isAlign(b byte) bool {
	return b == '<' || b == '>' || b == '^'
}

// pad applies a [[fill]align][width] spec to s.
func pad(s, spec string, number bool) string {
	if spec == "" {
		return s
	}

	fill, align, rest := ' ', byte(0), spec
	if r, size := utf8.DecodeRuneInString(spec); len(spec) > size && isAlign(spec[size]) {
		fill, align, rest = r, spec[size], spec[size+1:]
	} else if isAlign(spec[0]) {
		align, rest = spec[0], spec[1:]
	}

	if rest == "" {
		return s
	}
	width, err := strconv.Atoi(rest)
	if err != nil || width < 0 {
		panic(fmt.Sprintf("invalid format spec %q", spec))
	}

	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}

	if align == 0 {
		align = '<'
		if number {
			align = '>'
		}
	}

	f := string(fill)
	switch align {
	case '>':
		return strings.Repeat(f, n) + s
	case '^':
		return strings.Repeat(f, n/2) + s + strings.Repeat(f, n-n/2)
	default:
		return s + strings.Repeat(f, n)
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return true
	default:
		return false
	}
}
