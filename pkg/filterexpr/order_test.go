package filterexpr

import (
	"errors"
	"testing"
)

var wordOrder = OrderSchema{
	DefaultPrimary:     "enunciated",
	DefaultPrimaryDesc: false,
	FallbackKey:        "id",
	FallbackDesc:       false,
	Fields: map[string]OrderField{
		"enunciated": {Column: "enunciated"},
		"weight":     {Column: "weight"},
		"updated":    {Column: "updated_at"},
		"id":         {Column: "id"},
	},
}

func TestParseOrderBy(t *testing.T) {
	tests := []struct {
		raw  string
		want Order
	}{
		{"", Order{PrimaryKey: "enunciated", SecondaryKey: "id"}},
		{"weight desc", Order{PrimaryKey: "weight", PrimaryDesc: true, SecondaryKey: "id"}},
		{"weight desc, updated", Order{PrimaryKey: "weight", PrimaryDesc: true, SecondaryKey: "updated_at"}},
		{"id desc", Order{PrimaryKey: "id", PrimaryDesc: true, SecondaryKey: "enunciated"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseOrderBy(tt.raw, wordOrder)
			if err != nil {
				t.Fatalf("ParseOrderBy returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseOrderByErrors(t *testing.T) {
	for _, raw := range []string{
		"gender",
		"weight sideways",
		"weight, weight",
		"weight, id, enunciated",
		"weight desc extra",
	} {
		if _, err := ParseOrderBy(raw, wordOrder); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder for %q, got %v", raw, err)
		}
	}
}
