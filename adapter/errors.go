// SPDX-License-Identifier: MIT

// Package adapter: error taxonomy.
//
// Every message is prefixed with "tpsa: ...". Callers match the category with
// errors.Is(err, ErrX) and read details with errors.As(err, **Error).

package adapter

import (
	"errors"
	"strings"
)

// Kind names an error category exposed to the host.
type Kind string

const (
	// KindInvalidArgument: construction input (or call arity) is malformed.
	KindInvalidArgument Kind = "InvalidArgument"
	// KindUnsupportedOperand: an operand is none of the accepted kinds.
	KindUnsupportedOperand Kind = "UnsupportedOperand"
	// KindUnknownMethod: the host invoked a method the class does not define.
	KindUnknownMethod Kind = "UnknownMethod"
)

var (
	// ErrInvalidArgument matches every KindInvalidArgument error.
	ErrInvalidArgument = errors.New("tpsa: invalid argument")

	// ErrUnsupportedOperand matches every KindUnsupportedOperand error.
	ErrUnsupportedOperand = errors.New("tpsa: unsupported operand")

	// ErrUnknownMethod matches every KindUnknownMethod error.
	ErrUnknownMethod = errors.New("tpsa: unknown method")
)

// Error is the structured failure returned by both adapter layers.
type Error struct {
	Kind     Kind
	Type     string   // class name, or the descriptor label on the typed layer
	Op       string   // operation, e.g. "construct", "multiply"
	Got      string   // host kind of the offending value
	Accepted []string // accepted operand kinds, in probing order
	Detail   string
	Cause    error
}

// Error renders "tpsa: <Type>.<Op>: <kind> <got>: accepted A or B: <detail>: <cause>".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("tpsa: ")
	if e.Type != "" {
		b.WriteString(e.Type)
		b.WriteByte('.')
	}
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(kindText(e.Kind))
	if e.Got != "" {
		b.WriteByte(' ')
		b.WriteString(e.Got)
	}
	if len(e.Accepted) > 0 {
		b.WriteString(": accepted ")
		b.WriteString(strings.Join(e.Accepted, " or "))
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

// Unwrap exposes both the category sentinel and the cause to errors.Is.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if s := sentinel(e.Kind); s != nil {
		out = append(out, s)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}

	return out
}

func sentinel(k Kind) error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindUnsupportedOperand:
		return ErrUnsupportedOperand
	case KindUnknownMethod:
		return ErrUnknownMethod
	}

	return nil
}

func kindText(k Kind) string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindUnsupportedOperand:
		return "unsupported operand"
	case KindUnknownMethod:
		return "unknown method"
	}

	return string(k)
}

// unsupported builds the UnsupportedOperand error for op.
func unsupported(typ, op string, got any, accepted ...string) *Error {
	return &Error{
		Kind:     KindUnsupportedOperand,
		Type:     typ,
		Op:       op,
		Got:      hostKind(got),
		Accepted: accepted,
	}
}

// invalid builds an InvalidArgument error for op.
func invalid(typ, op, detail string, cause error) *Error {
	return &Error{
		Kind:   KindInvalidArgument,
		Type:   typ,
		Op:     op,
		Detail: detail,
		Cause:  cause,
	}
}
