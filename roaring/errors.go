package roaring

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the error kinds enumerated in spec.md section 7.
var (
	// ErrInvalidRange is returned by iadd/iremove/not when begin >= end or
	// end > 1<<16.
	ErrInvalidRange = errors.New("roaring: invalid range")

	// ErrIndexOutOfBounds is returned by select(j) when j >= cardinality.
	ErrIndexOutOfBounds = errors.New("roaring: index out of bounds")

	// ErrIteratorMutation is returned by any attempt to mutate a
	// container through an iterator.
	ErrIteratorMutation = errors.New("roaring: mutation through iterator not implemented")

	// ErrCorruptContainer is returned by deserialize when the wire bytes
	// do not describe a container satisfying the run/array/bitmap
	// invariants.
	ErrCorruptContainer = errors.New("roaring: corrupt container")

	// ErrEmptyContainer is returned by accessors (first/last) that have
	// no meaningful result on an empty container.
	ErrEmptyContainer = errors.New("roaring: empty container")
)

// ErrorList aggregates multiple errors found during a consistency scan
// (check). It satisfies the error interface; check returns a plain nil,
// not an empty list, when it finds nothing.
type ErrorList []error

func (a ErrorList) Error() string {
	switch len(a) {
	case 0:
		return "no errors"
	case 1:
		return a[0].Error()
	}
	s := fmt.Sprintf("%d errors: ", len(a))
	for i, err := range a {
		if i != 0 {
			s += "; "
		}
		s += err.Error()
	}
	return s
}

// Append adds err to the list, if err is non-nil.
func (a *ErrorList) Append(err error) {
	if err != nil {
		*a = append(*a, err)
	}
}

// AppendWithPrefix adds err to the list with a string prefix, if err is
// non-nil.
func (a *ErrorList) AppendWithPrefix(err error, prefix string) {
	if err != nil {
		*a = append(*a, fmt.Errorf("%s%s", prefix, err))
	}
}

// assert panics with a formatted message if condition is false. It guards
// invariants that must never fail in correct code, such as the
// appendValueLength precondition documented on runContainer16.appendValueLength.
func assert(condition bool, format string, a ...interface{}) {
	if !condition {
		panic(fmt.Sprintf(format, a...))
	}
}
