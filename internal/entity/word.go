package entity

import (
	"fmt"
	"strings"
	"time"
)

// Word is a Latin dictionary entry together with everything needed to
// inflect it.
type Word struct {
	ID          int64               `json:"id" yaml:"id,omitempty"`
	Enunciated  string              `json:"enunciated" yaml:"enunciated"` // comma separated principal parts, e.g. "liber, librī"
	Particle    string              `json:"particle" yaml:"particle"`     // bare stem
	Language    Language            `json:"language" yaml:"language,omitempty"`
	Declension  Declension          `json:"declension,omitempty" yaml:"declension,omitempty"`
	Conjugation int                 `json:"conjugation,omitempty" yaml:"conjugation,omitempty"`
	Kind        Kind                `json:"kind" yaml:"kind,omitempty"`
	Category    Category            `json:"category" yaml:"category"`
	Regular     bool                `json:"regular" yaml:"regular"`
	Locative    bool                `json:"locative,omitempty" yaml:"locative,omitempty"`
	Gender      Gender              `json:"gender" yaml:"gender"`
	Suffix      string              `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Translation map[Language]string `json:"translation,omitempty" yaml:"translation,omitempty"`
	Flags       Flags               `json:"flags" yaml:"flags,omitempty"`

	Succeeded int `json:"succeeded" yaml:"succeeded,omitempty"`
	Steps     int `json:"steps" yaml:"steps,omitempty"`
	Weight    int `json:"weight" yaml:"weight"`

	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// NewWord returns a regular Latin word, the defaults for any new entry.
func NewWord() Word {
	return Word{Language: LanguageLatin, Regular: true, Gender: GenderNone, Weight: 5}
}

// SingularNominative returns the first principal part of the enunciate.
func (w *Word) SingularNominative() string {
	first, _, _ := strings.Cut(w.Enunciated, ",")
	return strings.TrimSpace(first)
}

// RealParticle returns the particle used for derived forms. Words with a
// contracted root lose the vowel before their last letter ("pulcher"
// becomes "pulchr").
func (w *Word) RealParticle() string {
	if !w.Flags.ContractedRoot {
		return w.Particle
	}
	runes := []rune(w.Particle)
	if len(runes) < 2 {
		return w.Particle
	}
	return string(runes[:len(runes)-2]) + string(runes[len(runes)-1])
}

// TranslationFor returns the translation for the given language, falling
// back to English.
func (w *Word) TranslationFor(lang Language) string {
	if t, ok := w.Translation[lang]; ok && t != "" {
		return t
	}
	return w.Translation[LanguageEnglish]
}

// Inflectable reports whether the word goes through the declension engine.
func (w *Word) Inflectable() bool {
	if w.Category != CategoryNoun && w.Category != CategoryAdjective {
		return false
	}
	return w.Kind != KindIndeclinable && !w.Flags.Indeclinable
}

// Validate checks the invariants every stored word must hold.
func (w *Word) Validate() error {
	if strings.TrimSpace(w.Enunciated) == "" {
		return fmt.Errorf("%w: empty enunciate", ErrInvalidWord)
	}

	switch w.Category {
	case CategoryNoun, CategoryAdjective:
		if w.Declension == DeclensionNone {
			return fmt.Errorf("%w: you have to provide the declension for '%s'", ErrInvalidWord, w.Enunciated)
		}
		if err := ValidateKind(w.Category, w.Declension, w.Kind); err != nil {
			return err
		}
		if strings.TrimSpace(w.Particle) == "" && w.Regular && w.Kind != KindIndeclinable {
			return fmt.Errorf("%w: regular word '%s' needs a particle", ErrInvalidWord, w.Enunciated)
		}
	case CategoryVerb:
		if w.Conjugation == 0 {
			return fmt.Errorf("%w: you have to provide the conjugation for '%s'", ErrInvalidWord, w.Enunciated)
		}
	case CategoryAdverb, CategoryPreposition, CategoryConjunction, CategoryInterjection, CategoryDeterminer:
		if w.Declension != DeclensionNone || w.Conjugation != 0 {
			return fmt.Errorf("%w: no inflection allowed for '%s'", ErrInvalidWord, w.Category)
		}
	default:
		return fmt.Errorf("%w: you cannot create a word from the '%s' category", ErrInvalidWord, w.Category)
	}
	if w.Flags.OnlySingular && w.Flags.OnlyPlural {
		return fmt.Errorf("%w: '%s' cannot be both onlysingular and onlyplural", ErrInvalidWord, w.Enunciated)
	}
	return nil
}

// RelationKind describes how two words are related.
type RelationKind int

const (
	RelationComparative RelationKind = iota + 1
	RelationSuperlative
	RelationAdverb
	RelationAlternative
	RelationGendered
)

func (k RelationKind) String() string {
	switch k {
	case RelationComparative:
		return "comparative"
	case RelationSuperlative:
		return "superlative"
	case RelationAdverb:
		return "adverb"
	case RelationAlternative:
		return "alternative"
	case RelationGendered:
		return "gendered"
	default:
		return fmt.Sprintf("relation(%d)", int(k))
	}
}

// ParseRelationKind maps a relation name into a RelationKind.
func ParseRelationKind(s string) (RelationKind, error) {
	for k := RelationComparative; k <= RelationGendered; k++ {
		if k.String() == strings.ToLower(strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRelation, s)
}

// WordRelation links a word to another entry of the dictionary.
type WordRelation struct {
	SourceID      int64        `json:"source_id"`
	DestinationID int64        `json:"destination_id"`
	Kind          RelationKind `json:"kind"`
}
