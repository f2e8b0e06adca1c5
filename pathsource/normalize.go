package pathsource

import (
	"golang.org/x/text/width"
)

// NormalizeWidth folds full-width letters, digits, punctuation and the
// ideographic space to their ASCII forms, so "Ｍ１０，２０" lexes as "M10,20".
func NormalizeWidth(data string) string {
	return width.Narrow.String(data)
}
