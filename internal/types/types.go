// Package types contains common types used across the gourl packages.
package types

//go:generate go tool errtrace -w .

import "io"

// Byteseq represents a generic UTF-8 byte string.
type Byteseq interface {
	~string | ~[]byte
}

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string.
	Render() string
	// RenderTo renders the type to a writer.
	RenderTo(w io.Writer) (int, error)
}

type ValidFlag interface {
	IsValid() bool
}

type Validatable interface {
	Validate() error
}

type Equalable interface {
	Equal(val any) bool
}

type Cloneable[T any] interface {
	Clone() T
}
