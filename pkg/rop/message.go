package rop

// Message is an opaque error carrying only its text.
type Message string

// FallbackMessage is the error text used when a failure carries no message,
// e.g. a recovered panic value that is neither an error nor a string.
const FallbackMessage Message = "unknown panic"

func (m Message) Error() string {
	return string(m)
}
