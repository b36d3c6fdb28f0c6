package helper

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// GenerateSlug normalizes a string into a slug: lower-case, non-alnum runs
// collapsed to a single "-", trimmed at both ends.
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
	return strings.Trim(b.String(), "-")
}

// GenerateUniqueSlug tries base, then base-2, base-3, ... until the value is
// free in table.column (case-insensitive).
func GenerateUniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	base = GenerateSlug(base)
	if base == "" {
		base = "item"
	}
	if len(base) > DefaultSlugMaxLen {
		base = strings.Trim(base[:DefaultSlugMaxLen], "-")
	}

	taken, err := slugTaken(db, table, column, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 2; i < 10000; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err = slugTaken(db, table, column, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("failed to generate unique slug after many attempts")
}

func slugTaken(db *gorm.DB, table, column, candidate string) (bool, error) {
	var cnt int64
	err := db.Table(table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", column), candidate).
		Count(&cnt).Error
	return cnt > 0, err
}
