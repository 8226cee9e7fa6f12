package theme

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9-]`)
var multiHyphen = regexp.MustCompile(`-{2,}`)

// Slug converts a theme name into a file-safe name.
// Examples: "Rosé Pine" → "rose-pine", "my_theme!" → "mytheme".
func Slug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, strings.TrimSpace(name))
	if err != nil {
		result = name
	}

	result = strings.ToLower(result)
	result = strings.Join(strings.Fields(result), "-")
	result = nonSlug.ReplaceAllString(result, "")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}
