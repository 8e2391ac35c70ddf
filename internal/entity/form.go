package entity

// Form is a row of the forms catalog: the term a paradigm uses for a case
// and number of the given gender.
type Form struct {
	Kind   Kind
	Gender Gender
	Case   Case
	Number Number
	Term   string
}
