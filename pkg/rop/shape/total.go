package shape

// Marker is implemented by callable types that never panic. The method has no
// behaviour; its presence in the method set is the guarantee.
type Marker interface {
	NoPanic()
}

// Total0 is a function that never panics.
type Total0[R any] func() R

func (Total0[R]) NoPanic() {}

type Total1[A, R any] func(A) R

func (Total1[A, R]) NoPanic() {}

type Total2[A, B, R any] func(A, B) R

func (Total2[A, B, R]) NoPanic() {}

type Total3[A, B, C, R any] func(A, B, C) R

func (Total3[A, B, C, R]) NoPanic() {}
