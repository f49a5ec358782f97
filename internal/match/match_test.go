package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func testIndex() *Index {
	return BuildIndex([]model.Category{
		{ID: "cat-rest", Name: "Restaurants", Keywords: []string{"restaurant", "food and drink"}},
		{ID: "cat-groc", Name: "Groceries", Keywords: []string{"food", "grocery"}},
		{ID: "cat-trans", Name: "Transport", Keywords: []string{"uber", "gas"}},
	})
}

func TestMatch_ExactNameWins(t *testing.T) {
	idx := testIndex()
	// "Restaurants" is not a keyword anywhere, but it is a category name.
	assert.Equal(t, "cat-rest", idx.Match("Restaurants"))
	assert.Equal(t, "cat-rest", idx.Match("  restaurants "))
}

func TestMatch_LongestKeywordWins(t *testing.T) {
	idx := testIndex()
	// "food and drink" (14 chars) beats "food" (4 chars).
	assert.Equal(t, "cat-rest", idx.Match("Food & Drink"))
}

func TestMatch_KeywordInsideDescription(t *testing.T) {
	idx := testIndex()
	assert.Equal(t, "cat-trans", idx.Match("UBER *TRIP HELP.UBER.COM"))
}

func TestMatch_DescriptionInsideKeyword(t *testing.T) {
	idx := BuildIndex([]model.Category{
		{ID: "cat-rest", Name: "Restaurants", Keywords: []string{"food and drink"}},
	})
	// Short input contained by a longer configured phrase still matches.
	assert.Equal(t, "cat-rest", idx.Match("drink"))
}

func TestMatch_NoMatch(t *testing.T) {
	idx := testIndex()
	assert.Equal(t, "", idx.Match("Unknown Category"))
}

func TestMatch_BlankInput(t *testing.T) {
	idx := testIndex()
	assert.Equal(t, "", idx.Match(""))
	assert.Equal(t, "", idx.Match("   "))
}

func TestMatch_ShortKeywordsSkipped(t *testing.T) {
	idx := BuildIndex([]model.Category{
		{ID: "cat-x", Name: "Misc", Keywords: []string{"a", ""}},
	})
	assert.Equal(t, "", idx.Match("a purchase"))
}

func TestBuildIndex_UserOverridesGlobal(t *testing.T) {
	idx := BuildIndex([]model.Category{
		{ID: "global-food", Name: "Food"},
		{ID: "user-food", UserID: "user-1", Name: "Food"},
	})
	assert.Equal(t, "user-food", idx.Match("Food"))
}
