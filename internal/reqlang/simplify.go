package reqlang

// And and Or are the combinator operations every tree goes through:
// the parser, the region resolver, and the evaluator all build
// conjunctions and disjunctions by calling these, never through a raw
// &Tree{Kind: KindAnd, ...} literal, so the rewrite rules below are
// always applied.
//
// ∅ (a nil *Tree) is the vacuously-satisfied "no constraint" value: it
// is And's identity element (And(nil, x) == x) and Or's annihilator
// (Or(nil, x) == nil, since once one side needs nothing further the
// disjunction as a whole needs nothing further). This is the polarity
// that keeps the index builder's region-requirement composition and
// the evaluator's residual algebra correct; the opposite reading of ∅
// as FALSE would make a disjunction collapse the instant one branch
// were merely unconstrained.
func And(a, b *Tree) *Tree { return combine(KindAnd, a, b) }

// Or combines a and b with the same rewrite set as And, dual polarity.
func Or(a, b *Tree) *Tree { return combine(KindOr, a, b) }

func dual(op Kind) Kind {
	if op == KindAnd {
		return KindOr
	}
	return KindAnd
}

func combine(op Kind, a, b *Tree) *Tree {
	if a == nil {
		if op == KindAnd {
			return b
		}
		return nil
	}
	if b == nil {
		if op == KindAnd {
			return a
		}
		return nil
	}
	if Equal(a, b) {
		// Idempotence: a ○ a -> a.
		return a
	}
	// The rules below look through Groupings at the operands' children;
	// ga and gb keep the operands as given for the tree that is returned.
	ga, gb := a, b
	a, b = strip(a), strip(b)

	// Absorption: (a AND b) OR a -> a; a OR (a AND b) -> a; and the dual
	// for AND over OR.
	if sameKind(a, dual(op)) && (Equal(a.Left, b) || Equal(a.Right, b)) {
		return gb
	}
	if sameKind(b, dual(op)) && (Equal(b.Left, a) || Equal(b.Right, a)) {
		return ga
	}

	// Commutative idempotence and re-association: when a (or b) is
	// already a node of the same operator, try folding the new operand
	// into one of its children first; if that simplified non-trivially,
	// rebuild around the simplified child rather than adding a fresh
	// top-level node.
	if sameKind(a, op) {
		if Equal(a.Left, b) || Equal(a.Right, b) {
			return ga
		}
		if l := combine(op, a.Left, b); !Equal(l, newBinary(op, a.Left, b)) {
			return combine(op, l, a.Right)
		}
		if r := combine(op, a.Right, b); !Equal(r, newBinary(op, a.Right, b)) {
			return combine(op, a.Left, r)
		}
	}
	if sameKind(b, op) {
		if Equal(b.Left, a) || Equal(b.Right, a) {
			return gb
		}
		if l := combine(op, b.Left, a); !Equal(l, newBinary(op, b.Left, a)) {
			return combine(op, l, b.Right)
		}
		if r := combine(op, b.Right, a); !Equal(r, newBinary(op, b.Right, a)) {
			return combine(op, b.Left, r)
		}
	}

	return newBinary(op, ga, gb)
}

func sameKind(t *Tree, k Kind) bool {
	t = strip(t)
	return t != nil && t.Kind == k
}
