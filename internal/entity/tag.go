package entity

import (
	"fmt"
	"strings"
	"time"
)

// Tag groups words under a name, such as the lesson they were taught in.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateTagName rejects names that cannot be told apart on the command
// line.
func ValidateTagName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTag)
	}
	if strings.ContainsRune(name, ',') {
		return fmt.Errorf("%w: '%s' contains a comma", ErrInvalidTag, name)
	}
	return nil
}
