// Package vnchar provides Vietnamese accent handling for search keys and slugs.
package vnchar

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Strip removes Vietnamese diacritics from s, preserving case.
// "Đà Nẵng" becomes "Da Nang".
func Strip(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		out = s
	}
	// đ/Đ are base letters, not combining marks, so NFD leaves them alone
	out = strings.ReplaceAll(out, "đ", "d")
	out = strings.ReplaceAll(out, "Đ", "D")
	return out
}

// Slug returns the lowercase accent-free form of s, used for the
// name_khong_dau search key and for hashtag/activity slugs.
func Slug(s string) string {
	return strings.ToLower(strings.TrimSpace(Strip(s)))
}
