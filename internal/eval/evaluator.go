// Package eval implements walking a requirement tree
// against an inventory and a yaml snapshot to produce a residual.
package eval

import (
	"strconv"
	"strings"

	"github.com/kiosk404/worldlogic/internal/index"
	"github.com/kiosk404/worldlogic/internal/reqlang"
)

// Evaluator answers reachability questions against one frozen Index.
// It holds no per-call state itself; inventory and yaml snapshots are
// passed into every call, never stored.
type Evaluator struct {
	idx      *index.Index
	isOptAll bool
}

// Config carries the recognised evaluation flags, all defaulting to
// their zero value's documented meaning.
type Config struct {
	// IsOptAll clamps requirements by enabled categories and treats
	// disabled items/categories as satisfied, instead of evaluating
	// the tree exactly as written.
	IsOptAll bool
}

// New creates an Evaluator bound to idx, configured by cfg.
func New(idx *index.Index, cfg ...Config) *Evaluator {
	var c Config
	if len(cfg) > 0 {
		c = cfg[0]
	}
	return &Evaluator{idx: idx, isOptAll: c.IsOptAll}
}

// InLogic reports whether location is satisfied: nil iff it is, under
// the given snapshots. An unmodelled location name also returns nil —
// there is nothing to require, so it is vacuously reachable, consistent
// with an optimistic-on-unknown-data stance.
func (e *Evaluator) InLogic(location string, inventory, yaml map[string]int) *reqlang.Tree {
	tree, ok := e.idx.LocationsToLogic.Get(location)
	if !ok {
		return nil
	}
	return e.Evaluate(tree, inventory, yaml)
}

// Evaluate computes the residual of t under the given
// snapshots, nil meaning satisfied.
func (e *Evaluator) Evaluate(t *reqlang.Tree, inventory, yaml map[string]int) *reqlang.Tree {
	ctx := &walkContext{e: e, inventory: inventory, yaml: yaml, visited: map[string]bool{}}
	return ctx.eval(t, e.isOptAll)
}

type walkContext struct {
	e         *Evaluator
	inventory map[string]int
	yaml      map[string]int
	// visited guards canReachLocation against cycles; it
	// is shared across one whole Evaluate call, never reset mid-walk.
	visited map[string]bool
}

func (c *walkContext) received(item string) int { return c.inventory[item] }

func (c *walkContext) receivedIn(category string) int {
	items, ok := c.e.idx.CategoryToItems.Get(category)
	if !ok {
		return 0
	}
	sum := 0
	for _, it := range items.Items() {
		sum += c.received(it)
	}
	return sum
}

func (c *walkContext) yamlValue(opt string) int {
	v, ok := c.yaml[opt]
	if !ok {
		return 0
	}
	return v
}

// categoryEnabled implements the disabled-category half of the
// disabled-item/category rule.
func (c *walkContext) categoryEnabled(cat string) bool {
	opts, ok := c.e.idx.CategoryToYamlOptions.Get(cat)
	if !ok || opts.Len() == 0 {
		return true
	}
	for _, opt := range opts.Items() {
		if c.yamlValue(opt) > 0 {
			return true
		}
	}
	return false
}

// itemEnabled implements the disabled-item half of the same rule.
func (c *walkContext) itemEnabled(item string) bool {
	cats, ok := c.e.idx.ItemToCategories.Get(item)
	if !ok || cats.Len() == 0 {
		return true
	}
	for _, cat := range cats.Items() {
		if c.categoryEnabled(cat) {
			return true
		}
	}
	return false
}

// optCount computes a category's effective capacity: the plain
// category total, or under isOptAll, the total clamped to only
// enabled items.
func (c *walkContext) optCount(category string, isOptAll bool) int {
	total, _ := c.e.idx.CategoryCount.Get(category)
	if !isOptAll {
		return total
	}
	items, ok := c.e.idx.CategoryToItems.Get(category)
	if !ok {
		return 0
	}
	sum := 0
	for _, it := range items.Items() {
		if c.itemEnabled(it) {
			n, _ := c.e.idx.ItemCount.Get(it)
			sum += n
		}
	}
	return sum
}

func (c *walkContext) eval(t *reqlang.Tree, isOptAll bool) *reqlang.Tree {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case reqlang.KindGrouping:
		return c.eval(t.Left, isOptAll)
	case reqlang.KindAnd:
		return reqlang.And(c.eval(t.Left, isOptAll), c.eval(t.Right, isOptAll))
	case reqlang.KindOr:
		return reqlang.Or(c.eval(t.Left, isOptAll), c.eval(t.Right, isOptAll))
	case reqlang.KindItem:
		if c.received(t.Name) > 0 || (isOptAll && !c.itemEnabled(t.Name)) {
			return nil
		}
		return t
	case reqlang.KindCategory:
		if c.receivedIn(t.Name) > 0 || (isOptAll && !c.categoryEnabled(t.Name)) {
			return nil
		}
		return t
	case reqlang.KindItemCount:
		k := index.ParseIntOrZero(t.Value)
		if k == 0 || c.received(t.Name) >= k {
			return nil
		}
		return t
	case reqlang.KindCategoryCount:
		k := index.ParseIntOrZero(t.Value)
		need := min(k, c.optCount(t.Name, isOptAll))
		if need <= 0 || c.receivedIn(t.Name) >= need {
			return nil
		}
		return t
	case reqlang.KindItemPercent:
		p := index.ParseIntOrZero(t.Value)
		denom, _ := c.e.idx.ItemCount.Get(t.Name)
		if p <= 0 {
			return nil
		}
		if denom <= 0 {
			return t
		}
		if float64(c.received(t.Name))/float64(denom)*100 >= float64(p) {
			return nil
		}
		return t
	case reqlang.KindCategoryPercent:
		p := index.ParseIntOrZero(t.Value)
		denom := c.optCount(t.Name, isOptAll)
		if p <= 0 {
			return nil
		}
		if denom <= 0 {
			return t
		}
		if float64(c.receivedIn(t.Name))/float64(denom)*100 >= float64(p) {
			return nil
		}
		return t
	case reqlang.KindFunction:
		return c.evalFunction(t, isOptAll)
	default:
		return nil
	}
}

func (c *walkContext) evalFunction(t *reqlang.Tree, isOptAll bool) *reqlang.Tree {
	switch t.Name {
	case "YamlEnabled":
		if c.yamlValue(t.Value) != 0 {
			return nil
		}
		return t
	case "YamlDisabled":
		if c.yamlValue(t.Value) == 0 {
			return nil
		}
		return t
	case "YamlCompare":
		if c.evalYamlCompare(t.Value) {
			return nil
		}
		return t
	case "OptOne":
		return c.evalOptOne(t, isOptAll)
	case "OptAll":
		inner, err := reqlang.Parse(t.Value)
		if err != nil {
			return t
		}
		return c.eval(inner, true)
	case "ItemValue":
		if c.evalItemValue(t.Value) {
			return nil
		}
		return t
	case "canReachLocation":
		return c.evalCanReach(t.Value, isOptAll)
	default:
		// Unrecognised predicate: treated as permissive.
		return nil
	}
}

var yamlCompareOps = []string{"==", "!=", ">=", "<=", "=", "<", ">"}

func (c *walkContext) evalYamlCompare(expr string) bool {
	for _, op := range yamlCompareOps {
		i := strings.Index(expr, op)
		if i < 0 {
			continue
		}
		optPart := strings.TrimSpace(expr[:i])
		litPart := strings.TrimSpace(expr[i+len(op):])
		invert := strings.HasPrefix(optPart, "!")
		optPart = strings.TrimPrefix(optPart, "!")
		lit, err := strconv.Atoi(litPart)
		if err != nil {
			return false
		}
		result := compareInts(c.yamlValue(optPart), op, lit)
		if invert {
			result = !result
		}
		return result
	}
	return false
}

func compareInts(a int, op string, b int) bool {
	switch op {
	case "==", "=":
		return a == b
	case "!=":
		return a != b
	case ">=":
		return a >= b
	case "<=":
		return a <= b
	case "<":
		return a < b
	case ">":
		return a > b
	default:
		return false
	}
}

// evalOptOne implements OptOne(item[:k]): if the named item is
// disabled by yaml, it is bypassed (satisfied); otherwise the argument
// is parsed as the body of a pipe expression (an Item or ItemCount) and
// evaluated normally.
func (c *walkContext) evalOptOne(t *reqlang.Tree, isOptAll bool) *reqlang.Tree {
	itemName := t.Value
	if idx := strings.Index(itemName, ":"); idx >= 0 {
		itemName = itemName[:idx]
	}
	if !c.itemEnabled(itemName) {
		return nil
	}
	inner, err := reqlang.Parse("|" + t.Value + "|")
	if err != nil {
		return t
	}
	return c.eval(inner, isOptAll)
}

// evalItemValue implements ItemValue(phantom:k): true when the summed
// phantom contributions of every received item reach k.
func (c *walkContext) evalItemValue(arg string) bool {
	name, kStr, found := strings.Cut(arg, ":")
	if !found {
		return false
	}
	k := index.ParseIntOrZero(kStr)
	sum := 0
	c.e.idx.ItemToPhantoms.Each(func(item string, contribs []index.PhantomContribution) {
		received := c.received(item)
		if received == 0 {
			return
		}
		for _, contrib := range contribs {
			if contrib.Name == name {
				sum += contrib.Count * received
			}
		}
	})
	return sum >= k
}

func (c *walkContext) evalCanReach(locName string, isOptAll bool) *reqlang.Tree {
	if c.visited[locName] {
		return nil
	}
	c.visited[locName] = true
	target, ok := c.e.idx.LocationsToLogic.Get(locName)
	if !ok {
		return reqlang.NewFunction("canReachLocation", locName)
	}
	return c.eval(target, isOptAll)
}
