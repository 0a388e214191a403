package games

import "net/http"

// Envelope carries a status code and, for successful outcomes, a payload.
type Envelope[T any] struct {
	Status   int
	Value    T
	hasValue bool
}

// HasValue reports whether the envelope carries a body.
func (e Envelope[T]) HasValue() bool {
	return e.hasValue
}

func ok[T any](value T) Envelope[T] {
	return Envelope[T]{Status: http.StatusOK, Value: value, hasValue: true}
}

func notFound[T any]() Envelope[T] {
	return Envelope[T]{Status: http.StatusNotFound}
}

func badRequest[T any]() Envelope[T] {
	return Envelope[T]{Status: http.StatusBadRequest}
}
