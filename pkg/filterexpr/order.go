package filterexpr

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ErrInvalidOrder is returned for order_by clauses the schema rejects.
var ErrInvalidOrder = errors.New("invalid order_by")

// OrderField maps an order key to a column.
type OrderField struct {
	Column string
}

// OrderSchema whitelists the keys a listing can be ordered by. The default
// primary key applies to an empty clause, and the fallback key breaks ties
// when a single key is given.
type OrderSchema struct {
	DefaultPrimary     string
	DefaultPrimaryDesc bool
	FallbackKey        string
	FallbackDesc       bool
	Fields             map[string]OrderField
}

// Order is a parsed order_by clause with its keys already mapped into
// columns.
type Order struct {
	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

type orderTerm struct {
	key  string
	desc bool
}

func (s OrderSchema) validate() error {
	if s.DefaultPrimary == "" || s.FallbackKey == "" {
		return errors.New("order schema needs a default primary key and a fallback key")
	}
	for _, key := range []string{s.DefaultPrimary, s.FallbackKey} {
		if _, ok := s.Fields[key]; !ok {
			return fmt.Errorf("order key %q missing from schema fields", key)
		}
	}
	return nil
}

// ParseOrderBy parses clauses like "weight desc, enunciated" into at most two
// keys. Missing keys are taken from the schema defaults, and the secondary
// key never repeats the primary one.
func ParseOrderBy(raw string, schema OrderSchema) (Order, error) {
	if err := schema.validate(); err != nil {
		return Order{}, err
	}

	var terms []orderTerm
	for _, seg := range strings.Split(raw, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		term, err := parseOrderTerm(seg, schema)
		if err != nil {
			return Order{}, err
		}
		if lo.ContainsBy(terms, func(t orderTerm) bool { return t.key == term.key }) {
			return Order{}, fmt.Errorf("%w: duplicate key %q", ErrInvalidOrder, term.key)
		}
		terms = append(terms, term)
	}

	switch len(terms) {
	case 0:
		terms = []orderTerm{
			{key: schema.DefaultPrimary, desc: schema.DefaultPrimaryDesc},
			{key: schema.FallbackKey, desc: schema.FallbackDesc},
		}
	case 1:
		terms = append(terms, orderTerm{key: schema.FallbackKey, desc: schema.FallbackDesc})
	case 2:
	default:
		return Order{}, fmt.Errorf("%w: at most two keys are supported", ErrInvalidOrder)
	}

	if terms[1].key == terms[0].key {
		keys := lo.Without(lo.Keys(schema.Fields), terms[0].key)
		if len(keys) == 0 {
			return Order{}, errors.New("order schema requires at least two distinct keys for stable ordering")
		}
		slices.Sort(keys)
		terms[1] = orderTerm{key: keys[0]}
	}

	return Order{
		PrimaryKey:    schema.Fields[terms[0].key].Column,
		PrimaryDesc:   terms[0].desc,
		SecondaryKey:  schema.Fields[terms[1].key].Column,
		SecondaryDesc: terms[1].desc,
	}, nil
}

func parseOrderTerm(seg string, schema OrderSchema) (orderTerm, error) {
	parts := strings.Fields(seg)
	if len(parts) > 2 {
		return orderTerm{}, fmt.Errorf("%w: segment %q", ErrInvalidOrder, seg)
	}

	term := orderTerm{key: parts[0]}
	if _, ok := schema.Fields[term.key]; !ok {
		return orderTerm{}, fmt.Errorf("%w: field %q cannot be used for ordering", ErrInvalidOrder, term.key)
	}
	if len(parts) == 1 {
		return term, nil
	}

	switch strings.ToLower(parts[1]) {
	case "asc":
	case "desc":
		term.desc = true
	default:
		return orderTerm{}, fmt.Errorf("%w: direction %q for field %q", ErrInvalidOrder, parts[1], term.key)
	}
	return term, nil
}
