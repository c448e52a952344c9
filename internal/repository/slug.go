// internal/repository/slug.go
package repository

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^\w\s-]`)
	slugSpacers  = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify はトピック名をID用のスラッグに変換します (小文字化、空白はハイフン)。
// 例: "Mi Tema" -> "mi-tema"
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = slugSpacers.ReplaceAllString(s, "-")
	return slugTrim.ReplaceAllString(s, "")
}
