package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/mssola/mihi/internal/entity"
)

// Answer is a submitted rendering of a row. The gender only matters for
// rows with more than one cell, that is, for adjectives.
type Answer struct {
	Case   entity.Case   `json:"case" yaml:"case"`
	Gender entity.Gender `json:"gender" yaml:"gender"`
	Value  string        `json:"value" yaml:"value"`
}

// Mismatch is a row where the answer differs from the expected rendering.
type Mismatch struct {
	Case     entity.Case   `json:"case"`
	Gender   entity.Gender `json:"gender"`
	Expected string        `json:"expected"`
	Got      string        `json:"got"`
}

// SameAnswer reports whether the given answer matches the expected one,
// either literally or once every blank has been removed. Both strings are
// compared in NFC so that precomposed and combining macrons are equal.
func SameAnswer(expected, got string) bool {
	expected, got = norm.NFC.String(expected), norm.NFC.String(got)
	if expected == got {
		return true
	}
	return stripSpaces(expected) == stripSpaces(got)
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// CheckTable compares the answers against the rows of the inflection. Rows
// without an answer are reported as mismatches, as are answers for rows
// that the inflection does not have.
func CheckTable(inf *Inflection, answers []Answer) []Mismatch {
	used := make([]bool, len(answers))
	find := func(c entity.Case, g entity.Gender, anyGender bool) (Answer, bool) {
		for i, a := range answers {
			if used[i] || a.Case != c || (!anyGender && a.Gender != g) {
				continue
			}
			used[i] = true
			return a, true
		}
		return Answer{}, false
	}

	var out []Mismatch
	for _, row := range inf.Rows {
		for _, cell := range row.Cells {
			a, ok := find(row.Case, cell.Gender, len(row.Cells) == 1)
			if ok && SameAnswer(cell.Rendered, a.Value) {
				continue
			}
			out = append(out, Mismatch{Case: row.Case, Gender: cell.Gender, Expected: cell.Rendered, Got: a.Value})
		}
	}

	for i, a := range answers {
		if !used[i] {
			out = append(out, Mismatch{Case: a.Case, Gender: a.Gender, Got: a.Value})
		}
	}
	return out
}
