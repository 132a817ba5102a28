// SPDX-License-Identifier: MIT

// Command tpsa-session evaluates a session document against the tpsa module.
//
// Usage:
//
//	tpsa-session -file examples/sessions/getting_started.yaml
//	tpsa-session -list
//	tpsa-session -v -file session.yaml   (debug logging to stderr)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvtpsa/registry"
	"github.com/katalvlaran/lvtpsa/session"
	"go.uber.org/zap"
)

func main() {
	var (
		file    = flag.String("file", "", "Path to a YAML or JSON session document")
		list    = flag.Bool("list", false, "List registered types and exit")
		verbose = flag.Bool("v", false, "Debug logging to stderr")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()
	registry.SetLogger(logger)

	if *list {
		listTypes(os.Stdout, registry.Default())
		return
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: tpsa-session -file <session.yaml> [-v]")
		fmt.Fprintln(os.Stderr, "       tpsa-session -list")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *file, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string, out io.Writer, logger *zap.Logger) error {
	doc, err := session.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("session loaded", zap.String("file", path), zap.Int("steps", len(doc.Steps)))

	_, err = session.Run(ctx, doc,
		session.WithModule(registry.Default()),
		session.WithOutput(out),
		session.WithLogger(logger),
	)

	return err
}

func listTypes(w io.Writer, m *registry.Module) {
	fmt.Fprintf(w, "module %s\n", m.Name())
	for _, name := range m.Names() {
		c := m.MustLookup(name)
		fmt.Fprintf(w, "  %-8s %s  dim=%d\n", name, c.Descriptor(), c.Descriptor().Dim())
	}
}
