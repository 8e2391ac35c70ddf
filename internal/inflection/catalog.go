// Package inflection builds the declension tables of Latin nouns and
// adjectives out of a catalog of paradigm endings.
package inflection

import (
	"context"

	"github.com/mssola/mihi/internal/entity"
)

// FormEntry is a single row of the forms catalog: the term for a case and a
// number. For regular words the term is an ending to be appended to a root,
// for irregular ones it is the complete form.
type FormEntry struct {
	Case   entity.Case
	Number entity.Number
	Term   string
}

// Catalog returns the rows of a paradigm for the given gender in catalog
// order. An unknown combination yields no rows and no error.
type Catalog interface {
	Lookup(ctx context.Context, kind entity.Kind, gender entity.Gender) ([]FormEntry, error)
}
