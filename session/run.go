// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const refPrefix = "$"

// Bindings maps session names to host values.
type Bindings map[string]any

// Run evaluates doc step by step and returns the final bindings.
// MAIN DESCRIPTION:
//   - Steps run in order on the calling goroutine; ctx is checked before each.
//   - The first failing step stops the run. Bindings made by earlier steps
//     are returned alongside the error.
//
// Errors:
//   - ErrInvalidStep, ErrUnknownVariable, ErrNotAnInstance, registry and
//     adapter errors, each wrapped as "session: step <i>: ...".
func Run(ctx context.Context, doc *Document, opts ...Option) (Bindings, error) {
	o := gatherOptions(opts...)
	r := &runner{opts: o, vars: make(Bindings)}
	if doc == nil {
		return r.vars, nil
	}

	for i, s := range doc.Steps {
		if err := ctx.Err(); err != nil {
			return r.vars, fmt.Errorf("session: step %d: %w", i, err)
		}
		if err := s.validate(); err != nil {
			return r.vars, fmt.Errorf("session: step %d: %w", i, err)
		}
		if err := r.step(s); err != nil {
			o.logger.Debug("step failed", zap.Int("step", i), zap.Error(err))
			return r.vars, fmt.Errorf("session: step %d: %w", i, err)
		}
	}

	return r.vars, nil
}

type runner struct {
	opts options
	vars Bindings
}

func (r *runner) step(s Step) error {
	log := r.opts.logger
	switch s.kind() {
	case "print":
		v, err := r.lookup(s.Print)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.opts.out, v)
		return err

	case "new":
		arg, err := r.resolve(s.Args[0])
		if err != nil {
			return err
		}
		v, err := r.opts.module.Construct(s.New, arg)
		if err != nil {
			return err
		}
		log.Debug("construct", zap.String("type", s.New), zap.String("let", s.Let))
		return r.bind(s.Let, v)

	default: // call
		recv, err := r.lookup(s.On)
		if err != nil {
			return err
		}
		class, ok := r.opts.module.ClassOf(recv)
		if !ok {
			return fmt.Errorf("%w: %s is %T", ErrNotAnInstance, s.On, recv)
		}
		args := make([]any, len(s.Args))
		for i, a := range s.Args {
			if args[i], err = r.resolve(a); err != nil {
				return err
			}
		}
		v, err := class.Invoke(recv, s.Call, args...)
		if err != nil {
			return err
		}
		log.Debug("invoke", zap.String("type", class.Name()), zap.String("method", s.Call), zap.String("on", s.On))
		return r.bind(s.Let, v)
	}
}

// bind stores v under name; an empty name discards the value.
func (r *runner) bind(name string, v any) error {
	if name == "" {
		return nil
	}
	if v == nil {
		return fmt.Errorf("%w: let %s: the call returns no value", ErrInvalidStep, name)
	}
	r.vars[name] = v

	return nil
}

func (r *runner) lookup(name string) (any, error) {
	v, ok := r.vars[strings.TrimPrefix(name, refPrefix)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, name)
	}

	return v, nil
}

// resolve replaces "$name" strings, recursing into sequences.
func (r *runner) resolve(v any) (any, error) {
	switch x := v.(type) {
	case string:
		if strings.HasPrefix(x, refPrefix) {
			return r.lookup(x)
		}
		return x, nil
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			var err error
			if out[i], err = r.resolve(e); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	return v, nil
}
