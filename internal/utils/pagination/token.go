package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// EncodeToken creates a base64 encoded cursor from an entry date and entry number.
// Entries are listed by (entry_date, number) so the pair is a stable position.
func EncodeToken(entryDate time.Time, number int64) string {
	tokenStr := fmt.Sprintf("%s|%d", entryDate.Format(dateFormat), number)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded cursor back into entry date and entry number.
func DecodeToken(token string) (time.Time, int64, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	entryDate, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (entry date parse): %w", err)
	}

	number, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (number parse): %w", err)
	}

	return entryDate, number, nil
}

// After reports whether the position (date, number) sorts strictly after the cursor in
// ascending (entry_date, number) order.
func After(date time.Time, number int64, cursorDate time.Time, cursorNumber int64) bool {
	if !date.Equal(cursorDate) {
		return date.After(cursorDate)
	}
	return number > cursorNumber
}
