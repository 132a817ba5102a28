// SPDX-License-Identifier: MIT

package adapter

import "fmt"

const kindFloat = "float"

// describer is implemented by every *Object[S].
type describer interface {
	Descriptor() Descriptor
}

// hostFloat reports whether v is a host float and returns its value.
func hostFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	}

	return 0, false
}

// hostKind names the host kind of v for error messages.
func hostKind(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case float64, float32:
		return kindFloat
	case describer:
		return x.Descriptor().String()
	}

	return fmt.Sprintf("%T", v)
}

// floatsOf validates a host sequence and returns its scalars in order.
// Nothing is padded, truncated or reordered.
func floatsOf(typ string, values any) ([]float64, error) {
	switch vs := values.(type) {
	case []float64:
		return append([]float64(nil), vs...), nil
	case []float32:
		out := make([]float64, len(vs))
		for i, v := range vs {
			out[i] = float64(v)
		}
		return out, nil
	case []any:
		out := make([]float64, len(vs))
		for i, v := range vs {
			f, ok := hostFloat(v)
			if !ok {
				e := invalid(typ, opConstruct, fmt.Sprintf("element %d is %s, want float", i, hostKind(v)), nil)
				return nil, e
			}
			out[i] = f
		}
		return out, nil
	}

	return nil, invalid(typ, opConstruct, fmt.Sprintf("expected a sequence of floats, got %s", hostKind(values)), nil)
}
