// Package util provides the factory subcommands use to obtain a loaded
// world without each reimplementing flag parsing and bundle loading.
package util

import (
	"context"
	"fmt"
	"sync"

	"github.com/kiosk404/worldlogic/pkg/world"
)

// Factory provides abstractions that allow worldcheck's subcommands to
// be extended without each one threading raw flag values through to
// world.Load itself.
type Factory interface {
	World(ctx context.Context) (*world.World, error)
}

// Options are the persistent flags every subcommand's Factory call
// resolves against.
type Options struct {
	BundlePath string
	HelperCmd  string
	RepoPath   string
	IsOptAll   bool
}

type defaultFactory struct {
	// resolve reads the bound persistent flags at call time, not at
	// construction time — the root command wires this before cobra has
	// parsed the command line, so the returned Options must reflect
	// whatever the flags hold when a subcommand actually runs.
	resolve func() Options

	mu    sync.Mutex
	world *world.World
	err   error
	done  bool
}

// NewDefaultFactory returns a Factory that loads the bundle named by
// resolve() exactly once, memoising the result for every subsequent
// call. resolve is invoked lazily, after cobra has parsed flags.
func NewDefaultFactory(resolve func() Options) Factory {
	return &defaultFactory{resolve: resolve}
}

func (f *defaultFactory) World(ctx context.Context) (*world.World, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return f.world, f.err
	}
	f.done = true
	opts := f.resolve()
	if opts.BundlePath == "" {
		f.err = fmt.Errorf("no bundle path given (use --bundle)")
		return nil, f.err
	}
	f.world, f.err = world.Load(ctx, world.Config{
		BundlePath: opts.BundlePath,
		HelperCmd:  opts.HelperCmd,
		RepoPath:   opts.RepoPath,
		IsOptAll:   opts.IsOptAll,
	})
	return f.world, f.err
}
