package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Basic(t *testing.T) {
	assert.Equal(t, "food and drink", Normalize("Food & Drink"))
	assert.Equal(t, "food and drink", Normalize("Food and Drink"))
	assert.Equal(t, "food and drink", Normalize("food&drink"))
}

func TestNormalize_Blank(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("\t\n"))
}

func TestNormalize_Quotes(t *testing.T) {
	assert.Equal(t, "groceries", Normalize(`"Groceries"`))
	assert.Equal(t, "groceries", Normalize("'Groceries'"))
	assert.Equal(t, "groceries", Normalize("“Groceries”"))
	assert.Equal(t, "groceries", Normalize(`  " Groceries " `))
}

func TestNormalize_BOM(t *testing.T) {
	assert.Equal(t, "date", Normalize("\uFEFFDate"))
}

func TestNormalize_WhitespaceCollapse(t *testing.T) {
	assert.Equal(t, "bills and utilities", Normalize("  Bills \t &  Utilities  "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Food & Drink",
		`""already quoted""`,
		"  SPACES   everywhere  ",
		"\uFEFF'BOM & quotes'",
		"plain",
		"",
		"x &",
		"& y",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
