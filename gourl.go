package gourl

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/types"
	"github.com/ghettovoice/gourl/query"
)

const (
	// ErrInvalidInput is returned by [Parse] when the input is not string-like.
	ErrInvalidInput = errorutil.ErrInvalidInput
	// ErrValidation is returned by [Build] when a URL can not be rendered.
	ErrValidation = errorutil.ErrValidation
	// ErrInvalidArgument is returned for unusable arguments, like an unknown field name.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)

// Opt is an optional string, see [Some] and [None].
type Opt = types.Opt

// Some returns a present [Opt] holding s.
func Some(s string) Opt { return types.Some(s) }

// None returns an absent [Opt].
func None() Opt { return types.None() }

// HostKind classifies the hostname of a URL.
type HostKind = grammar.HostKind

const (
	HostNone    = grammar.HostNone
	HostIPv4    = grammar.HostIPv4
	HostIPv6    = grammar.HostIPv6
	HostName    = grammar.HostName
	HostInvalid = grammar.HostInvalid
)

var (
	_ types.Renderer       = URL{}
	_ types.Cloneable[URL] = URL{}
	_ types.ValidFlag      = URL{}
	_ types.Validatable    = URL{}
	_ types.Equalable      = URL{}
	_ types.Equalable      = query.Query{}
)
