package reqlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSimpleItem(t *testing.T) {
	tr, err := Parse("|Progressive Sword|")
	assert.NoError(t, err)
	assert.True(t, Equal(NewItem("Progressive Sword"), tr))
}

func TestParseCategory(t *testing.T) {
	tr, err := Parse("|@SmallKeys|")
	assert.NoError(t, err)
	assert.True(t, Equal(NewCategory("SmallKeys"), tr))
}

func TestParseItemCount(t *testing.T) {
	tr, err := Parse("|Heart Piece:4|")
	assert.NoError(t, err)
	assert.True(t, Equal(NewItemCount("Heart Piece", "4"), tr))
}

func TestParseCategoryAllPercent(t *testing.T) {
	tr, err := Parse("|@SmallKeys:ALL|")
	assert.NoError(t, err)
	assert.True(t, Equal(NewCategoryPercent("SmallKeys", "100"), tr))
}

func TestParseCategoryHalfPercent(t *testing.T) {
	tr, err := Parse("|@SmallKeys:HALF|")
	assert.NoError(t, err)
	assert.True(t, Equal(NewCategoryPercent("SmallKeys", "50"), tr))
}

func TestParseExplicitPercent(t *testing.T) {
	tr, err := Parse("|SmallKeys:75%|")
	assert.NoError(t, err)
	assert.True(t, Equal(NewItemPercent("SmallKeys", "75"), tr))
}

func TestParseFunction(t *testing.T) {
	tr, err := Parse("{YamlEnabled(glitched_logic)}")
	assert.NoError(t, err)
	assert.True(t, Equal(NewFunction("YamlEnabled", "glitched_logic"), tr))
}

func TestParseAndOr(t *testing.T) {
	tr, err := Parse("|A| AND |B| OR |C|")
	assert.NoError(t, err)
	// AND/OR are right-associative per the grammar: A AND (B OR C).
	want := And(NewItem("A"), Or(NewItem("B"), NewItem("C")))
	assert.True(t, Equal(want, tr))
}

func TestParseGrouping(t *testing.T) {
	tr, err := Parse("(|A| OR |B|) AND |C|")
	assert.NoError(t, err)
	want := And(NewGrouping(Or(NewItem("A"), NewItem("B"))), NewItem("C"))
	assert.True(t, Equal(want, tr))
}

func TestParseCaseInsensitiveOperators(t *testing.T) {
	tr, err := Parse("|A| and |B|")
	assert.NoError(t, err)
	assert.True(t, Equal(And(NewItem("A"), NewItem("B")), tr))
}

func TestParseAbsorptionCollapsesAtConstruction(t *testing.T) {
	tr, err := Parse("(|A| AND |B|) OR |A|")
	assert.NoError(t, err)
	assert.True(t, Equal(NewItem("A"), tr))
}

func TestParseUnbalancedParenIsError(t *testing.T) {
	_, err := Parse("(|A| AND |B|")
	assert.Error(t, err)
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestParseMissingClosingPipeIsError(t *testing.T) {
	_, err := Parse("|A AND |B|")
	assert.Error(t, err)
}

func TestParseEmptyStringIsError(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
}

func TestParseTrailingGarbageIsError(t *testing.T) {
	_, err := Parse("|A| )")
	assert.Error(t, err)
}
