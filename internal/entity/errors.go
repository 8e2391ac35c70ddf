package entity

import "errors"

// Domain errors for words and their inflection.
var (
	ErrWordNotFound      = errors.New("word not found")
	ErrInvalidWord       = errors.New("invalid word")
	ErrInvalidWordID     = errors.New("invalid word ID")
	ErrDuplicateWord     = errors.New("word already exists")
	ErrBadOverrideKey    = errors.New("bad override key")
	ErrMalformedFlags    = errors.New("malformed flags")
	ErrUnsupportedKind   = errors.New("unsupported kind")
	ErrNotInflectable    = errors.New("word cannot be inflected")
	ErrInvalidCaseOrder  = errors.New("invalid case order")
	ErrUnknownGender     = errors.New("unknown gender")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownNumber     = errors.New("unknown grammatical number")
	ErrUnknownRelation   = errors.New("unknown relation kind")
	ErrUnknownDeclension = errors.New("unknown declension")
)

// Tag errors.
var (
	ErrTagNotFound  = errors.New("tag not found")
	ErrInvalidTag   = errors.New("invalid tag name")
	ErrDuplicateTag = errors.New("tag already exists")
)
