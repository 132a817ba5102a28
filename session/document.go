// SPDX-License-Identifier: MIT

package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvtpsa/adapter"
	"gopkg.in/yaml.v3"
)

// Document is a parsed session.
type Document struct {
	Steps []Step `yaml:"steps"`
}

// Step is one host action. Exactly one of New, Call, Print is set.
type Step struct {
	Let   string `yaml:"let,omitempty"`
	New   string `yaml:"new,omitempty"`
	Call  string `yaml:"call,omitempty"`
	On    string `yaml:"on,omitempty"`
	Args  []any  `yaml:"args,omitempty"`
	Print string `yaml:"print,omitempty"`
}

// kind returns the step's action name, or "" when the mix is invalid.
func (s Step) kind() string {
	set := 0
	k := ""
	if s.New != "" {
		set, k = set+1, "new"
	}
	if s.Call != "" {
		set, k = set+1, "call"
	}
	if s.Print != "" {
		set, k = set+1, "print"
	}
	if set != 1 {
		return ""
	}

	return k
}

// validate checks the field combination of one step.
func (s Step) validate() error {
	switch s.kind() {
	case "new":
		if len(s.Args) != 1 {
			return fmt.Errorf("%w: new %s takes exactly one argument (the coefficient list), got %d", ErrInvalidStep, s.New, len(s.Args))
		}
		if s.On != "" {
			return fmt.Errorf("%w: new does not take `on`", ErrInvalidStep)
		}
	case "call":
		if s.On == "" {
			return fmt.Errorf("%w: call %s needs `on`", ErrInvalidStep, s.Call)
		}
		if s.Call == adapter.MethodAddInPlace && s.Let != "" {
			return fmt.Errorf("%w: %s returns no value to let", ErrInvalidStep, s.Call)
		}
	case "print":
		if s.Let != "" || s.On != "" || len(s.Args) > 0 {
			return fmt.Errorf("%w: print takes no let, on or args", ErrInvalidStep)
		}
	default:
		return fmt.Errorf("%w: exactly one of new, call, print is required", ErrInvalidStep)
	}

	return nil
}

// Parse decodes and validates a YAML (or JSON) session document.
// Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	for i, s := range doc.Steps {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("session: step %d: %w", i, err)
		}
	}

	return &doc, nil
}

// Load reads and parses the session file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
