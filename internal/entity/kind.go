package entity

import (
	"fmt"
	"slices"
)

// Kind identifies the paradigm a word follows inside of its declension.
type Kind string

// Noun paradigms.
const (
	KindA             Kind = "a"
	KindUs            Kind = "us"
	KindErIr          Kind = "er/ir"
	KindUm            Kind = "um"
	KindIus           Kind = "ius"
	KindIs            Kind = "is"
	KindIStem         Kind = "istem"
	KindPureIStem     Kind = "pureistem"
	KindVisVis        Kind = "visvis"
	KindSusSuis       Kind = "sussuis"
	KindBosBovis      Kind = "bosbovis"
	KindIuppiterIovis Kind = "iuppiteriovis"
	KindFus           Kind = "fus"
	KindDomusDomus    Kind = "domusdomus"
	KindIes           Kind = "ies"
	KindEs            Kind = "es"
	KindIndeclinable  Kind = "indeclinable"
)

// Adjective paradigms.
const (
	KindOne           Kind = "one"
	KindOneNonIStem   Kind = "onenonistem"
	KindTwo           Kind = "two"
	KindThree         Kind = "three"
	KindUnusNauta     Kind = "unusnauta"
	KindUnusNautaErIr Kind = "unusnautaer/ir"
	KindDuo           Kind = "duo"
	KindTres          Kind = "tres"
	KindMille         Kind = "mille"
)

var kindDescriptions = map[Kind]string{
	KindA:             "-a",
	KindUs:            "-us",
	KindErIr:          "-er/-ir",
	KindUm:            "-um",
	KindIus:           "-ius; like 'fīlius'",
	KindIs:            "-is",
	KindIStem:         "i-stem; '-i-' also in the genitive plural",
	KindPureIStem:     "pure i-stem; '-i-' also in the ablative singular",
	KindVisVis:        "irregular 'vīs, vīs'",
	KindSusSuis:       "irregular 'sūs, suis'",
	KindBosBovis:      "irregular 'bōs, bovis'",
	KindIuppiterIovis: "irregular 'Iuppiter, Iovis'",
	KindFus:           "-u-",
	KindDomusDomus:    "irregular 'domus, domūs/domī'",
	KindIes:           "-iēs; like 'diēs, diēī'",
	KindEs:            "-ēs; like 'rēs, reī'",
	KindIndeclinable:  "indeclinable",
	KindOne:           "one termination adjective",
	KindOneNonIStem:   "one termination adjective; non i-stem like 'melior, melius'",
	KindTwo:           "two termination adjective",
	KindThree:         "three termination adjective",
	KindUnusNauta:     "'ūnus nauta' like 'ūnus, ūna, ūnum'",
	KindUnusNautaErIr: "'ūnus nauta' like 'neuter, neutra, neutrum'",
	KindDuo:           "number 'duo, duae, duo'",
	KindTres:          "number 'trēs, trēs, tria'",
	KindMille:         "number 'mīlle, mīlle'",
}

// nounKinds and adjectiveKinds map each declension to the paradigms a word
// of that category may follow.
var nounKinds = map[Declension][]Kind{
	DeclensionFirst:  {KindA},
	DeclensionSecond: {KindUs, KindErIr, KindUm, KindIus},
	DeclensionThird: {
		KindIs, KindIStem, KindPureIStem, KindVisVis, KindSusSuis,
		KindBosBovis, KindIuppiterIovis,
	},
	DeclensionFourth: {KindFus, KindDomusDomus},
	DeclensionFifth:  {KindIes, KindEs},
	DeclensionOther:  {KindIndeclinable},
}

var adjectiveKinds = map[Declension][]Kind{
	DeclensionFirst:  {KindUs, KindErIr, KindUnusNauta, KindUnusNautaErIr},
	DeclensionSecond: {KindUs, KindErIr, KindUnusNauta, KindUnusNautaErIr},
	DeclensionThird:  {KindOne, KindOneNonIStem, KindTwo, KindThree},
	DeclensionOther:  {KindDuo, KindTres, KindMille, KindIndeclinable},
}

// Known reports whether k is one of the paradigms this package knows about.
func (k Kind) Known() bool {
	_, ok := kindDescriptions[k]
	return ok
}

// Describe returns a human readable explanation of the paradigm.
func (k Kind) Describe() string {
	if d, ok := kindDescriptions[k]; ok {
		return d
	}
	return string(k)
}

// ValidateKind checks that the given kind is allowed for a word of the
// given category and declension.
func ValidateKind(category Category, declension Declension, kind Kind) error {
	var table map[Declension][]Kind
	switch category {
	case CategoryNoun:
		table = nounKinds
	case CategoryAdjective:
		table = adjectiveKinds
	default:
		if kind == "" {
			return nil
		}
		return fmt.Errorf("%w: %s words have no paradigm, got %q", ErrUnsupportedKind, category, kind)
	}

	if !declension.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDeclension, int(declension))
	}
	if !slices.Contains(table[declension], kind) {
		return fmt.Errorf("%w: %q is not a %s paradigm of the %s declension",
			ErrUnsupportedKind, kind, category, declension)
	}
	return nil
}

// KindsFor returns the paradigms allowed for the given category and
// declension.
func KindsFor(category Category, declension Declension) []Kind {
	switch category {
	case CategoryNoun:
		return slices.Clone(nounKinds[declension])
	case CategoryAdjective:
		return slices.Clone(adjectiveKinds[declension])
	default:
		return nil
	}
}
