package inflection

import (
	"strings"

	"github.com/mssola/mihi/internal/entity"
)

// Render returns the display string of a row: "sg, pl", or only one of
// the two numbers for words that lack the other.
func Render(w *entity.Word, row Row) string {
	switch {
	case w.Flags.OnlySingular:
		return strings.Join(row.Singular(), "/")
	case w.Flags.OnlyPlural:
		return strings.Join(row.Plural(), "/")
	default:
		return strings.Join(row.Singular(), "/") + ", " + strings.Join(row.Plural(), "/")
	}
}
