package repository

import "github.com/mssola/mihi/pkg/filterexpr"

var listWordsOrder = filterexpr.OrderSchema{
	DefaultPrimary:     "enunciated",
	DefaultPrimaryDesc: false,
	FallbackKey:        "id",
	FallbackDesc:       false,
	Fields: map[string]filterexpr.OrderField{
		"enunciated": {Column: "enunciated"},
		"weight":     {Column: "weight"},
		"succeeded":  {Column: "succeeded"},
		"created_at": {Column: "created_at"},
		"updated_at": {Column: "updated_at"},
		"id":         {Column: "id"},
	},
}
