// Package seed holds the paradigm catalog that populates the forms table.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mssola/mihi/internal/entity"
)

//go:embed forms.yaml
var formsYAML []byte

// Paradigm groups the rows shared by a kind across one or more genders.
type Paradigm struct {
	Kind    entity.Kind     `yaml:"kind"`
	Genders []entity.Gender `yaml:"genders"`
	Forms   []Form          `yaml:"forms"`
}

// Form is a [case, number, term] row.
type Form struct {
	Case   entity.Case
	Number entity.Number
	Term   string
}

func (f *Form) UnmarshalYAML(value *yaml.Node) error {
	var parts []string
	if err := value.Decode(&parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("line %d: expected [case, number, term], got %d items", value.Line, len(parts))
	}

	c, err := entity.ParseCase(parts[0])
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	n, err := entity.ParseNumber(parts[1])
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*f = Form{Case: c, Number: n, Term: parts[2]}
	return nil
}

// Paradigms parses the embedded catalog.
func Paradigms() ([]Paradigm, error) {
	return Parse(formsYAML)
}

// Parse decodes a catalog in the same format as the embedded one.
func Parse(data []byte) ([]Paradigm, error) {
	var paradigms []Paradigm
	if err := yaml.Unmarshal(data, &paradigms); err != nil {
		return nil, fmt.Errorf("parse forms catalog: %w", err)
	}
	for _, p := range paradigms {
		if !p.Kind.Known() {
			return nil, fmt.Errorf("parse forms catalog: %w: %q", entity.ErrUnsupportedKind, p.Kind)
		}
	}
	return paradigms, nil
}

// Rows flattens the paradigms into table rows, keeping the catalog order
// for each (kind, gender) pair.
func Rows(paradigms []Paradigm) []entity.Form {
	var rows []entity.Form
	for _, p := range paradigms {
		for _, g := range p.Genders {
			for _, f := range p.Forms {
				rows = append(rows, entity.Form{Kind: p.Kind, Gender: g, Case: f.Case, Number: f.Number, Term: f.Term})
			}
		}
	}
	return rows
}
