package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded cursor from an entry's transaction
// date and id. The pair matches the (transaction_date, entry_id) ordering
// used for listing, so the cursor is stable across inserts.
func EncodeToken(transactionDate time.Time, entryID string) string {
	tokenStr := fmt.Sprintf("%s|%s", transactionDate.Format(timeFormat), entryID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded cursor back into its transaction
// date and entry id.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tokenStr := string(decodedBytes)
	parts := strings.SplitN(tokenStr, "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	transactionDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return transactionDate, parts[1], nil
}
