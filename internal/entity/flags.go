package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Flags holds the word specific switches and the two override blocks that
// alter the forms generated from a paradigm.
type Flags struct {
	Deponent           bool `json:"deponent,omitempty" yaml:"deponent,omitempty"`
	OnlySingular       bool `json:"onlysingular,omitempty" yaml:"onlysingular,omitempty"`
	OnlyPlural         bool `json:"onlyplural,omitempty" yaml:"onlyplural,omitempty"`
	ContractedRoot     bool `json:"contracted_root,omitempty" yaml:"contracted_root,omitempty"`
	NonPositive        bool `json:"nonpositive,omitempty" yaml:"nonpositive,omitempty"`
	CompSupPrefix      bool `json:"compsup_prefix,omitempty" yaml:"compsup_prefix,omitempty"`
	Indeclinable       bool `json:"indeclinable,omitempty" yaml:"indeclinable,omitempty"`
	IrregularSup       bool `json:"irregularsup,omitempty" yaml:"irregularsup,omitempty"`
	NoPassive          bool `json:"nopassive,omitempty" yaml:"nopassive,omitempty"`
	NoSupine           bool `json:"nosupine,omitempty" yaml:"nosupine,omitempty"`
	NoPerfect          bool `json:"noperfect,omitempty" yaml:"noperfect,omitempty"`
	NoGerundive        bool `json:"nogerundive,omitempty" yaml:"nogerundive,omitempty"`
	Impersonal         bool `json:"impersonal,omitempty" yaml:"impersonal,omitempty"`
	ImpersonalPassive  bool `json:"impersonalpassive,omitempty" yaml:"impersonalpassive,omitempty"`
	NoImperative       bool `json:"noimperative,omitempty" yaml:"noimperative,omitempty"`
	NoInfinitive       bool `json:"noinfinitive,omitempty" yaml:"noinfinitive,omitempty"`
	ShortImperative    bool `json:"shortimperative,omitempty" yaml:"shortimperative,omitempty"`
	OnlyThirdPassive   bool `json:"onlythirdpassive,omitempty" yaml:"onlythirdpassive,omitempty"`
	Enclitic           bool `json:"enclitic,omitempty" yaml:"enclitic,omitempty"`
	NotComparable      bool `json:"notcomparable,omitempty" yaml:"notcomparable,omitempty"`
	OnlyPerfect        bool `json:"onlyperfect,omitempty" yaml:"onlyperfect,omitempty"`
	SemiDeponent       bool `json:"semideponent,omitempty" yaml:"semideponent,omitempty"`
	ContractedVocative bool `json:"contracted_vocative,omitempty" yaml:"contracted_vocative,omitempty"`

	// Sets replaces whole cells, Adds appends to them.
	Sets *Overrides `json:"sets,omitempty" yaml:"sets,omitempty"`
	Adds *Overrides `json:"adds,omitempty" yaml:"adds,omitempty"`
}

// FlagInfo describes one of the boolean flags.
type FlagInfo struct {
	Name        string
	Description string
	field       func(*Flags) *bool
}

var booleanFlags = []FlagInfo{
	{"deponent", "deponent", func(f *Flags) *bool { return &f.Deponent }},
	{"onlysingular", "only singular forms", func(f *Flags) *bool { return &f.OnlySingular }},
	{"onlyplural", "only plural forms", func(f *Flags) *bool { return &f.OnlyPlural }},
	{"contracted_root", "the root drops its last vowel, as in 'liber, librī'", func(f *Flags) *bool { return &f.ContractedRoot }},
	{"nonpositive", "no positive degree", func(f *Flags) *bool { return &f.NonPositive }},
	{"compsup_prefix", "comparative and superlative forms require a prefix", func(f *Flags) *bool { return &f.CompSupPrefix }},
	{"indeclinable", "indeclinable", func(f *Flags) *bool { return &f.Indeclinable }},
	{"irregularsup", "irregular superlative", func(f *Flags) *bool { return &f.IrregularSup }},
	{"nopassive", "no passive forms", func(f *Flags) *bool { return &f.NoPassive }},
	{"nosupine", "no supine form", func(f *Flags) *bool { return &f.NoSupine }},
	{"noperfect", "no perfect forms", func(f *Flags) *bool { return &f.NoPerfect }},
	{"nogerundive", "no gerundive", func(f *Flags) *bool { return &f.NoGerundive }},
	{"impersonal", "impersonal", func(f *Flags) *bool { return &f.Impersonal }},
	{"impersonalpassive", "impersonal only on its passive forms", func(f *Flags) *bool { return &f.ImpersonalPassive }},
	{"noimperative", "no imperative forms", func(f *Flags) *bool { return &f.NoImperative }},
	{"noinfinitive", "no infinitive forms", func(f *Flags) *bool { return &f.NoInfinitive }},
	{"shortimperative", "irregular short imperative", func(f *Flags) *bool { return &f.ShortImperative }},
	{"onlythirdpassive", "only forms on the third person of the passive voice", func(f *Flags) *bool { return &f.OnlyThirdPassive }},
	{"enclitic", "enclitic", func(f *Flags) *bool { return &f.Enclitic }},
	{"notcomparable", "not comparable", func(f *Flags) *bool { return &f.NotComparable }},
	{"onlyperfect", "only perfect forms", func(f *Flags) *bool { return &f.OnlyPerfect }},
	{"semideponent", "semi-deponent", func(f *Flags) *bool { return &f.SemiDeponent }},
	{"contracted_vocative", "contracted vocative, as in filī, not filiī*", func(f *Flags) *bool { return &f.ContractedVocative }},
}

// KnownFlags returns every boolean flag in its canonical order.
func KnownFlags() []FlagInfo {
	out := make([]FlagInfo, len(booleanFlags))
	copy(out, booleanFlags)
	return out
}

// IsValidFlag reports whether name is a known boolean flag.
func IsValidFlag(name string) bool {
	for _, info := range booleanFlags {
		if info.Name == name {
			return true
		}
	}
	return false
}

// Set toggles the boolean flag with the given name.
func (f *Flags) Set(name string, value bool) error {
	for _, info := range booleanFlags {
		if info.Name == name {
			*info.field(f) = value
			return nil
		}
	}
	return fmt.Errorf("%w: unknown flag %q", ErrMalformedFlags, name)
}

// IsSet reports whether the boolean flag with the given name is on.
// Unknown names are never set.
func (f *Flags) IsSet(name string) bool {
	for _, info := range booleanFlags {
		if info.Name == name {
			return *info.field(f)
		}
	}
	return false
}

// Names returns the names of the flags that are on.
func (f *Flags) Names() []string {
	names := []string{}
	for _, info := range booleanFlags {
		if *info.field(f) {
			names = append(names, info.Name)
		}
	}
	return names
}

// Describe lists the descriptions of the flags that are on, joined by "; ".
func (f *Flags) Describe() string {
	var buf bytes.Buffer
	for _, info := range booleanFlags {
		if !*info.field(f) {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(info.Description)
	}
	return buf.String()
}

// ParseFlags decodes the external JSON representation of the flags. An
// empty payload yields zero flags.
func ParseFlags(data []byte) (Flags, error) {
	var flags Flags
	if len(bytes.TrimSpace(data)) == 0 {
		return flags, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&flags); err != nil {
		if errors.Is(err, ErrBadOverrideKey) || errors.Is(err, ErrMalformedFlags) {
			return Flags{}, err
		}
		return Flags{}, fmt.Errorf("%w: %v", ErrMalformedFlags, err)
	}
	return flags, nil
}

// CaseOverride holds the literal terms for the two numbers of a case.
type CaseOverride struct {
	Singular []string `json:"singular,omitempty" yaml:"singular,omitempty"`
	Plural   []string `json:"plural,omitempty" yaml:"plural,omitempty"`
}

// Terms returns the terms for the given number.
func (c CaseOverride) Terms(n Number) []string {
	if n == Plural {
		return c.Plural
	}
	return c.Singular
}

// Overrides is a `sets` or `adds` block. Cases applies to every gender,
// Genders only to the tables of that gender.
type Overrides struct {
	Cases   map[Case]CaseOverride
	Genders map[Gender]map[Case]CaseOverride
}

// overrideGenders are the genders that can scope an override.
var overrideGenders = map[string]Gender{
	"masculine": GenderMasculine,
	"feminine":  GenderFeminine,
	"neuter":    GenderNeuter,
}

// For returns the case overrides that apply to the given gender: first the
// unscoped ones, then the ones scoped to the gender.
func (o *Overrides) For(gender Gender) []map[Case]CaseOverride {
	if o == nil {
		return nil
	}
	out := make([]map[Case]CaseOverride, 0, 2)
	if len(o.Cases) > 0 {
		out = append(out, o.Cases)
	}
	if scoped, ok := o.Genders[gender]; ok && len(scoped) > 0 {
		out = append(out, scoped)
	}
	return out
}

// SortedCases returns the keys of the given block in case order.
func SortedCases(block map[Case]CaseOverride) []Case {
	keys := make([]Case, 0, len(block))
	for c := range block {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (o *Overrides) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedFlags, err)
	}
	return o.fromGeneric(raw)
}

func (o *Overrides) UnmarshalYAML(unmarshal func(any) error) error {
	var raw map[string]map[string]any
	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedFlags, err)
	}
	return o.fromGeneric(raw)
}

func (o Overrides) MarshalJSON() ([]byte, error) { return json.Marshal(o.generic()) }

func (o Overrides) MarshalYAML() (any, error) { return o.generic(), nil }

func (o *Overrides) fromGeneric(raw map[string]map[string]any) error {
	out := Overrides{}
	for key, value := range raw {
		if gender, ok := overrideGenders[key]; ok {
			scoped := make(map[Case]CaseOverride, len(value))
			for caseKey, v := range value {
				c, err := ParseCase(caseKey)
				if err != nil {
					return err
				}
				numbers, ok := v.(map[string]any)
				if !ok {
					return fmt.Errorf("%w: %s.%s must be an object", ErrMalformedFlags, key, caseKey)
				}
				co, err := caseOverrideFrom(numbers)
				if err != nil {
					return err
				}
				scoped[c] = co
			}
			if out.Genders == nil {
				out.Genders = make(map[Gender]map[Case]CaseOverride)
			}
			out.Genders[gender] = scoped
			continue
		}

		c, err := ParseCase(key)
		if err != nil {
			return err
		}
		co, err := caseOverrideFrom(value)
		if err != nil {
			return err
		}
		if out.Cases == nil {
			out.Cases = make(map[Case]CaseOverride)
		}
		out.Cases[c] = co
	}
	*o = out
	return nil
}

func caseOverrideFrom(numbers map[string]any) (CaseOverride, error) {
	var co CaseOverride
	for key, v := range numbers {
		terms, err := termsFrom(v)
		if err != nil {
			return CaseOverride{}, fmt.Errorf("%w: %q: %v", ErrMalformedFlags, key, err)
		}
		switch key {
		case "singular":
			co.Singular = terms
		case "plural":
			co.Plural = terms
		default:
			return CaseOverride{}, fmt.Errorf("%w: unknown number %q", ErrMalformedFlags, key)
		}
	}
	return co, nil
}

func termsFrom(v any) ([]string, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, errors.New("expected a list of terms")
	}
	terms := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("term %v is not a string", item)
		}
		terms = append(terms, s)
	}
	return terms, nil
}

func (o Overrides) generic() map[string]any {
	out := make(map[string]any, len(o.Cases)+len(o.Genders))
	for c, co := range o.Cases {
		out[c.String()] = co.generic()
	}
	for g, scoped := range o.Genders {
		inner := make(map[string]any, len(scoped))
		for c, co := range scoped {
			inner[c.String()] = co.generic()
		}
		out[g.String()] = inner
	}
	return out
}

// generic keeps empty lists, which wipe a cell, apart from missing ones.
func (c CaseOverride) generic() map[string][]string {
	out := make(map[string][]string, 2)
	if c.Singular != nil {
		out["singular"] = c.Singular
	}
	if c.Plural != nil {
		out["plural"] = c.Plural
	}
	return out
}
