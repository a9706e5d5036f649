package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSnippetDictPriceIdiom(t *testing.T) {
	code := `def calculate_total(items):
    total = 0
    for item in items:
        total = total + item['price']
    return total`

	m, ok := MatchSnippet(code)
	require.True(t, ok, "expected the price indexing idiom to match")
	assert.Equal(t, "dict-price", m.Name)
	assert.Contains(t, m.Sections.AfterCode, "float(item['price'])")
	// the canned fixed snippet carries its known trailing-print bug
	assert.Contains(t, m.Sections.AfterCode, "print(calculate_total(items))")
}

func TestMatchSnippetDictPriceConjunction(t *testing.T) {
	// no item['price'] indexing, but every substring of the conjunction
	code := `def calculate_total(items):
    # raises TypeError because price values are strings
    total = 0
    for entry in items:
        total += item["cost"]
    return total`

	m, ok := MatchSnippet(code)
	require.True(t, ok)
	assert.Equal(t, "dict-price", m.Name)
}

func TestMatchSnippetDictPriceConjunctionIncomplete(t *testing.T) {
	// "TypeError" missing from the conjunction
	code := `def calculate_total(items):
    # sums price values
    total = 0
    for entry in items:
        total += item["cost"]
    return total`

	_, ok := MatchSnippet(code)
	assert.False(t, ok)
}

func TestMatchSnippetStringConcat(t *testing.T) {
	m, ok := MatchSnippet(`result = '5' + 3`)
	require.True(t, ok)
	assert.Equal(t, "string-concat", m.Name)
	assert.Equal(t, `result = int('5') + 3`, m.Sections.AfterCode)
	assert.Equal(t, `result = '5' + 3`, m.Sections.BeforeCode)
}

func TestMatchSnippetStringConcatReversedOperands(t *testing.T) {
	m, ok := MatchSnippet(`result = 3 + "5"`)
	require.True(t, ok)
	assert.Equal(t, "string-concat", m.Name)
	assert.Equal(t, `result = 3 + int("5")`, m.Sections.AfterCode)
}

func TestMatchSnippetStringConcatNearMiss(t *testing.T) {
	// non-digit string operand does not trigger the heuristic
	_, ok := MatchSnippet(`result = 'a' + 3`)
	assert.False(t, ok)

	_, ok = MatchSnippet(`result = 1 + 2`)
	assert.False(t, ok)
}

func TestMatchSnippetEmpty(t *testing.T) {
	_, ok := MatchSnippet("")
	assert.False(t, ok)
}

func TestMatchSnippetDictPriceWinsOverStringConcat(t *testing.T) {
	code := `total = total + item['price']
offset = '5' + 3`

	m, ok := MatchSnippet(code)
	require.True(t, ok)
	assert.Equal(t, "dict-price", m.Name)
}
