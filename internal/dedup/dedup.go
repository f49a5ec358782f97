// Package dedup derives stable external ids for imported bank rows so
// re-uploads of the same export are detected.
package dedup

import (
	"fmt"
	"strconv"

	"github.com/fintrack-dev/fintrack/internal/bankcsv"
)

// ExternalID returns a deterministic id for a parsed row scoped to an
// account. The same (account, date, description, amount) always yields the
// same id. The id is a convenience key, not a security boundary, so rare
// hash collisions are acceptable.
func ExternalID(accountID string, row bankcsv.Row) string {
	composite := fmt.Sprintf("%s|%s|%s|%s",
		accountID, row.Date.Format("2006-01-02"), row.Description, row.Amount)

	var h int32
	for _, r := range composite {
		h = (h << 5) - h + int32(r) // 31*h + c, wrapping at 32 bits
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return "ext-" + strconv.FormatInt(v, 36)
}
