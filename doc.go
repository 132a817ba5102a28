// Package lvtpsa exposes truncated power series (TPSA) of fixed shapes to
// dynamically-typed hosts.
//
// Layout:
//
//	engine/    generic TPSA[S] kernel: construction, +, *, scaling, sin/cos/exp, rendering
//	adapter/   Object[S] typed surface + Class host surface, host value checks, error taxonomy
//	catalog/   the declared shapes (Tpsa6D, Tpsa4D, Tpsa2D), one line per shape
//	registry/  the process-wide module namespace, built once
//	session/   a YAML-driven host that evaluates steps against a module
//	cmd/tpsa-session  CLI for session files
//
// Quick start:
//
//	x, _ := catalog.NewTpsa6D([]float64{2.0})
//	sq, _ := x.Mul(x)
//	fmt.Println(sq)
//
//	c, _ := registry.Default().Lookup("Tpsa4D")
//	v, _ := c.Construct([]any{1.0, 0.5})
//	s, _ := c.Invoke(v, "sin")
//
//	go get github.com/katalvlaran/lvtpsa
package lvtpsa
