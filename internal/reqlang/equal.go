package reqlang

import "github.com/kiosk404/worldlogic/internal/collate"

// Equal implements structural equality over requirement trees: groupings
// are transparent, binary nodes are compared as unordered pairs
// (commutativity is part of equality), leaf names compare under the
// canonical comparator, and numeric/argument values compare as plain
// strings with no numeric normalisation.
func Equal(a, b *Tree) bool {
	a, b = strip(a), strip(b)
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindAnd, KindOr:
		return (Equal(a.Left, b.Left) && Equal(a.Right, b.Right)) ||
			(Equal(a.Left, b.Right) && Equal(a.Right, b.Left))
	case KindItem, KindCategory:
		return collate.Equal(a.Name, b.Name)
	case KindItemCount, KindCategoryCount, KindItemPercent, KindCategoryPercent:
		return collate.Equal(a.Name, b.Name) && a.Value == b.Value
	case KindFunction:
		return a.Name == b.Name && a.Value == b.Value
	default:
		return false
	}
}
