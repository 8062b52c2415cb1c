package validator

import (
	"strings"
	"unicode/utf8"
)

// Length caps applied while sanitizing submitted text.
const (
	MaxShortText = 100
	MaxLongText  = 5000
	MaxHTMLText  = 50000
	MaxListItems = 50
)

var angleStripper = strings.NewReplacer("<", "", ">", "")

// Clean trims s, strips angle brackets and caps it at max runes.
func Clean(s string, max int) string {
	return truncate(strings.TrimSpace(angleStripper.Replace(s)), max)
}

// CleanHTML trims s and caps it at max runes. Markup is kept; it is only
// accepted from admin-authenticated writes.
func CleanHTML(s string, max int) string {
	return truncate(strings.TrimSpace(s), max)
}

// SplitList splits a comma-separated value into cleaned, non-empty items.
func SplitList(s string) []string {
	items := []string{}
	for _, part := range strings.Split(s, ",") {
		if item := Clean(part, MaxShortText); item != "" {
			items = append(items, item)
		}
		if len(items) == MaxListItems {
			break
		}
	}
	return items
}

// NormalizePhone removes all whitespace from a phone number.
func NormalizePhone(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
