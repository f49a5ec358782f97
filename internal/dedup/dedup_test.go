package dedup

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fintrack-dev/fintrack/internal/bankcsv"
)

func testRow() bankcsv.Row {
	return bankcsv.Row{
		Date:        time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		Description: "GITHUB *PRO SUBSCRIPTION",
		Amount:      "-5.99",
	}
}

func TestExternalID_Deterministic(t *testing.T) {
	row := testRow()
	first := ExternalID("acc-1", row)
	assert.Equal(t, first, ExternalID("acc-1", row))
	assert.True(t, strings.HasPrefix(first, "ext-"))
}

func TestExternalID_AmountChangesID(t *testing.T) {
	row := testRow()
	before := ExternalID("acc-1", row)
	row.Amount = "-6.00"
	assert.NotEqual(t, before, ExternalID("acc-1", row))
}

func TestExternalID_AccountScopesID(t *testing.T) {
	row := testRow()
	assert.NotEqual(t, ExternalID("acc-1", row), ExternalID("acc-2", row))
}

func TestExternalID_DescriptionChangesID(t *testing.T) {
	row := testRow()
	before := ExternalID("acc-1", row)
	row.Description = "GITHUB *TEAM SUBSCRIPTION"
	assert.NotEqual(t, before, ExternalID("acc-1", row))
}

func TestExternalID_IgnoresIntradayTime(t *testing.T) {
	row := testRow()
	before := ExternalID("acc-1", row)
	row.Date = time.Date(2025, 1, 3, 15, 30, 45, 0, time.UTC)
	assert.Equal(t, before, ExternalID("acc-1", row))
}
