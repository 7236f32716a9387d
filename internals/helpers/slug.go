package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

var reDash = regexp.MustCompile(`-+`)

// GenerateSlug normalizes free text into a [a-z0-9-] slug:
// lower-case, non-alphanumerics collapsed to single "-", trimmed ends.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	out = reDash.ReplaceAllString(out, "-")
	return out
}

// EnsureUniqueSlug finds a free slug in table.column, trying base first and
// then base-2, base-3, ... (case-insensitive check).
func EnsureUniqueSlug(db *gorm.DB, base, table, column string) (string, error) {
	if base == "" {
		base = "item"
	}
	candidate := base
	for i := 1; i < 1000; i++ {
		var count int64
		if err := db.Table(table).
			Where(fmt.Sprintf("lower(%s) = lower(?)", column), candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i+1)
	}
	return "", fmt.Errorf("could not find a free slug for %q", base)
}
