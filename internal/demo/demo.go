// Package demo runs the fixed structural-pattern demonstration.
package demo

import (
	"fmt"

	"github.com/abhisek/seqgen/internal/numgen"
	"github.com/abhisek/seqgen/internal/pipeline"
	"go.uber.org/zap"
)

// CompletionMessage is printed after the last block.
const CompletionMessage = "Program finished."

// Printer is a numgen.Printer that can also print status lines.
type Printer interface {
	numgen.Printer
	Message(msg string) error
}

// Run builds the reference wiring and prints, in order: the base block,
// the adapter block, the composite block (which repeats both child
// blocks), the decorator block and the completion message.
func Run(p Printer, cfg Config, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	pl, err := pipeline.Build(pipeline.Demo(), pipeline.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build demo pipeline: %w", err)
	}

	return run(pl, p, cfg, logger)
}

// run drives an already built pipeline through the demonstration order.
func run(pl *pipeline.Pipeline, p Printer, cfg Config, logger *zap.Logger) error {
	base, err := lookup(pl, "base")
	if err != nil {
		return err
	}
	if _, err := base.Generate(cfg.Count); err != nil {
		return fmt.Errorf("generate base: %w", err)
	}

	for _, name := range []string{"base", "adapter", "composite", "decorated"} {
		g, err := lookup(pl, name)
		if err != nil {
			return err
		}
		if err := g.Display(p); err != nil {
			return fmt.Errorf("display %s: %w", name, err)
		}
	}

	logger.Debug("demo finished", zap.Int("count", cfg.Count))
	return p.Message(CompletionMessage)
}

func lookup(pl *pipeline.Pipeline, name string) (numgen.Generator, error) {
	g, ok := pl.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("demo pipeline has no %q generator", name)
	}
	return g, nil
}
