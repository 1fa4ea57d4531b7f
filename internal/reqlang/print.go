package reqlang

import (
	"fmt"
	"strings"
)

// Deparse reconstructs a requires string from a tree, canonicalised (no
// extraneous whitespace, groupings rendered as explicit parentheses).
// Deparse(Parse(s)) need not equal s byte-for-byte, but re-parsing its
// output always yields a structurally Equal tree.
func Deparse(t *Tree) string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case KindGrouping:
		return "(" + Deparse(t.Left) + ")"
	case KindAnd:
		return Deparse(t.Left) + " AND " + Deparse(t.Right)
	case KindOr:
		return Deparse(t.Left) + " OR " + Deparse(t.Right)
	case KindItem:
		return "|" + t.Name + "|"
	case KindCategory:
		return "|@" + t.Name + "|"
	case KindItemCount:
		return fmt.Sprintf("|%s:%s|", t.Name, t.Value)
	case KindCategoryCount:
		return fmt.Sprintf("|@%s:%s|", t.Name, t.Value)
	case KindItemPercent:
		return fmt.Sprintf("|%s:%s%%|", t.Name, t.Value)
	case KindCategoryPercent:
		return fmt.Sprintf("|@%s:%s%%|", t.Name, t.Value)
	case KindFunction:
		return fmt.Sprintf("{%s(%s)}", t.Name, t.Value)
	default:
		return ""
	}
}

// NormalizedForm renders t as a boolean-algebra expression, assigning a
// single letter to each distinct structural subterm it encounters (by
// Equal), in first-encounter order. It is meant for diagnostics and
// soundness reporting, not for re-parsing. Past 52 distinct
// subterms (the a-z, A-Z pool) it falls back to t1, t2, ... labels.
func NormalizedForm(t *Tree) string {
	n := &normalizer{labels: map[*Tree]string{}}
	return n.render(t)
}

type normalizer struct {
	seen   []*Tree
	labels map[*Tree]string
	next   int
}

func (n *normalizer) labelFor(t *Tree) string {
	for _, s := range n.seen {
		if Equal(s, t) {
			return n.labels[s]
		}
	}
	label := n.nextLabel()
	n.seen = append(n.seen, t)
	n.labels[t] = label
	return label
}

func (n *normalizer) nextLabel() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	var label string
	if n.next < len(alphabet) {
		label = string(alphabet[n.next])
	} else {
		label = fmt.Sprintf("t%d", n.next-len(alphabet)+1)
	}
	n.next++
	return label
}

func (n *normalizer) render(t *Tree) string {
	t = strip(t)
	if t == nil {
		return "TRUE"
	}
	switch t.Kind {
	case KindAnd:
		return n.render(t.Left) + " & " + n.render(t.Right)
	case KindOr:
		var b strings.Builder
		b.WriteString("(")
		b.WriteString(n.render(t.Left))
		b.WriteString(" | ")
		b.WriteString(n.render(t.Right))
		b.WriteString(")")
		return b.String()
	default:
		return n.labelFor(t)
	}
}
