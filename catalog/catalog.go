// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtpsa/adapter"
	"github.com/katalvlaran/lvtpsa/engine"
)

var (
	// ErrDuplicateName indicates two classes share a host-visible name.
	ErrDuplicateName = errors.New("catalog: duplicate class name")

	// ErrDuplicateDescriptor indicates two classes share a (nv, mo) pair.
	ErrDuplicateDescriptor = errors.New("catalog: duplicate descriptor")

	// ErrNilClass indicates a nil entry in a class list.
	ErrNilClass = errors.New("catalog: nil class")
)

// declare is the single generation point for catalog entries.
func declare[S engine.Shape](name string) adapter.Class {
	return adapter.NewClass[S](name)
}

// classes is built once at package init; entries are immutable.
var classes = []adapter.Class{
	declare[Nv6Mo4]("Tpsa6D"),
	declare[Nv4Mo4]("Tpsa4D"),
	declare[Nv2Mo6]("Tpsa2D"),
}

// Classes returns the declared classes in declaration order.
// The slice is fresh; the classes are shared and immutable.
func Classes() []adapter.Class {
	return append([]adapter.Class(nil), classes...)
}

// Validate checks a class list for nil entries, duplicate names and
// duplicate descriptors. The first violation wins.
func Validate(list []adapter.Class) error {
	names := make(map[string]int, len(list))
	descs := make(map[adapter.Descriptor]int, len(list))
	for i, c := range list {
		if c == nil {
			return fmt.Errorf("entry %d: %w", i, ErrNilClass)
		}
		if j, dup := names[c.Name()]; dup {
			return fmt.Errorf("%q at entries %d and %d: %w", c.Name(), j, i, ErrDuplicateName)
		}
		if j, dup := descs[c.Descriptor()]; dup {
			return fmt.Errorf("%s at entries %d and %d: %w", c.Descriptor(), j, i, ErrDuplicateDescriptor)
		}
		names[c.Name()] = i
		descs[c.Descriptor()] = i
	}

	return nil
}

func init() {
	if err := Validate(classes); err != nil {
		panic(err)
	}
}
