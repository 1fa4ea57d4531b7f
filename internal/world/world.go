// Package world wires bundle loading, index building, and evaluation
// into a single handle: load a bundle, answer reachability questions,
// print requirement trees. This is the implementation behind the
// public pkg/world façade.
package world

import (
	"context"
	"fmt"

	"github.com/kiosk404/worldlogic/internal/bundle"
	"github.com/kiosk404/worldlogic/internal/eval"
	"github.com/kiosk404/worldlogic/internal/index"
	"github.com/kiosk404/worldlogic/internal/reqlang"
)

// Config carries the inputs to a single Load call, plus the
// evaluation-mode flags that bind to every InLogic/Evaluate call the
// resulting World makes for its whole lifetime.
type Config struct {
	BundlePath string
	HelperCmd  string
	RepoPath   string
	Log        bundle.Logger
	IsOptAll   bool
}

// Diagnostic mirrors index.Diagnostic, re-exported so callers outside
// this module's internal/ boundary never need to import internal/index
// directly.
type Diagnostic = index.Diagnostic

// World is a loaded, immutable world handle: the frozen lookup tables
// plus an Evaluator bound to them. Every field is read-only after Load
// returns, so a World is safe for concurrent reads from multiple
// goroutines, none of which may hand it a mutable inventory/yaml
// snapshot that another goroutine is writing.
type World struct {
	Index       *index.Index
	Diagnostics []Diagnostic
	evaluator   *eval.Evaluator
}

// Load reads the bundle at cfg.BundlePath, extracts its tables,
// synthesises region requirements, and builds the frozen lookup
// tables. Parse failures for individual locations are non-fatal and
// collected in the returned World's Diagnostics; everything else
// (a missing/empty archive, or a failed extraction helper) is returned
// as an error.
func Load(ctx context.Context, cfg Config) (*World, error) {
	tables, err := bundle.Load(ctx, cfg.BundlePath, bundle.Options{
		HelperCmd: cfg.HelperCmd,
		RepoPath:  cfg.RepoPath,
		Log:       cfg.Log,
	})
	if err != nil {
		return nil, fmt.Errorf("world: load %s: %w", cfg.BundlePath, err)
	}

	idx, diags := index.Build(tables)
	if cfg.Log != nil {
		for _, d := range diags {
			cfg.Log("parse failure in %s: %v", d.Subject, d.Err)
		}
	}

	return &World{
		Index:       idx,
		Diagnostics: diags,
		evaluator:   eval.New(idx, eval.Config{IsOptAll: cfg.IsOptAll}),
	}, nil
}

// InLogic reports whether locationName is reachable under inventory and
// yaml, returning the unsatisfied residual or nil if it is reachable.
func (w *World) InLogic(locationName string, inventory, yaml map[string]int) *reqlang.Tree {
	return w.evaluator.InLogic(locationName, inventory, yaml)
}

// Evaluate answers the same question for an arbitrary tree, e.g. one the
// caller built itself to probe a hypothetical requirement.
func (w *World) Evaluate(tree *reqlang.Tree, inventory, yaml map[string]int) *reqlang.Tree {
	return w.evaluator.Evaluate(tree, inventory, yaml)
}

// Deparse and Normalize print a tree in its canonical and labelled
// boolean-algebra forms, typically a residual returned by
// InLogic/Evaluate.
func Deparse(t *reqlang.Tree) string        { return reqlang.Deparse(t) }
func Normalize(t *reqlang.Tree) string      { return reqlang.NormalizedForm(t) }
func ParseRequires(s string) (*reqlang.Tree, error) { return reqlang.Parse(s) }
