// Package world is the public façade over internal/world: it re-exports
// the pieces external callers need to load a bundle and query
// reachability, without granting access to internal/bundle, internal/
// index, internal/eval, or internal/reqlang directly.
package world

import (
	"github.com/kiosk404/worldlogic/internal/reqlang"
	internalworld "github.com/kiosk404/worldlogic/internal/world"
)

// World is a loaded world handle.
type World = internalworld.World

// Config carries Load's inputs.
type Config = internalworld.Config

// Diagnostic is a non-fatal parse failure surfaced from Load.
type Diagnostic = internalworld.Diagnostic

// Tree is an opaque requirement tree, returned by InLogic/Evaluate and
// accepted by Evaluate/Deparse/Normalize.
type Tree = reqlang.Tree

// Load reads a bundle and builds a queryable World.
var Load = internalworld.Load

// ParseRequires parses a requires string into a Tree the same way a
// bundle's own location/region text is parsed.
var ParseRequires = internalworld.ParseRequires

// Deparse reprints a Tree in its canonical source form.
var Deparse = internalworld.Deparse

// Normalize renders a Tree as a labelled boolean-algebra expression.
var Normalize = internalworld.Normalize
