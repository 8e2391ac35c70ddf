package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// WordsColumns holds the columns for the "words" table.
	WordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "enunciated", Type: field.TypeString, Unique: true},
		{Name: "particle", Type: field.TypeString, Default: ""},
		{Name: "language", Type: field.TypeString, Default: "la"},
		{Name: "declension", Type: field.TypeInt, Default: 0},
		{Name: "conjugation", Type: field.TypeInt, Default: 0},
		{Name: "kind", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeInt},
		{Name: "regular", Type: field.TypeBool, Default: true},
		{Name: "locative", Type: field.TypeBool, Default: false},
		{Name: "gender", Type: field.TypeInt},
		{Name: "suffix", Type: field.TypeString, Default: ""},
		{Name: "translation", Type: field.TypeJSON, Nullable: true},
		{Name: "flags", Type: field.TypeJSON, Nullable: true},
		{Name: "succeeded", Type: field.TypeInt, Default: 0},
		{Name: "steps", Type: field.TypeInt, Default: 0},
		{Name: "weight", Type: field.TypeInt, Default: 5},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WordsTable holds the schema information for the "words" table.
	WordsTable = &schema.Table{
		Name:       "words",
		Columns:    WordsColumns,
		PrimaryKey: []*schema.Column{WordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "word_category_declension",
				Unique:  false,
				Columns: []*schema.Column{WordsColumns[7], WordsColumns[4]},
			},
		},
	}
	// WordRelationsColumns holds the columns for the "word_relations" table.
	WordRelationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "relation_type", Type: field.TypeInt},
		{Name: "source_id", Type: field.TypeInt64},
		{Name: "destination_id", Type: field.TypeInt64},
	}
	// WordRelationsTable holds the schema information for the "word_relations" table.
	WordRelationsTable = &schema.Table{
		Name:       "word_relations",
		Columns:    WordRelationsColumns,
		PrimaryKey: []*schema.Column{WordRelationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "word_relations_words_source",
				Columns:    []*schema.Column{WordRelationsColumns[2]},
				RefColumns: []*schema.Column{WordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "word_relations_words_destination",
				Columns:    []*schema.Column{WordRelationsColumns[3]},
				RefColumns: []*schema.Column{WordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "wordrelation_source_id_destination_id_relation_type",
				Unique:  true,
				Columns: []*schema.Column{WordRelationsColumns[2], WordRelationsColumns[3], WordRelationsColumns[1]},
			},
		},
	}
	// FormsColumns holds the columns for the "forms" table.
	FormsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "gender", Type: field.TypeInt},
		{Name: "case", Type: field.TypeInt},
		{Name: "number", Type: field.TypeInt},
		{Name: "term", Type: field.TypeString, Default: ""},
	}
	// FormsTable holds the schema information for the "forms" table.
	FormsTable = &schema.Table{
		Name:       "forms",
		Columns:    FormsColumns,
		PrimaryKey: []*schema.Column{FormsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "form_kind_gender",
				Unique:  false,
				Columns: []*schema.Column{FormsColumns[1], FormsColumns[2]},
			},
		},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
	}
	// WordTagsColumns holds the columns for the "word_tags" table.
	WordTagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "word_id", Type: field.TypeInt64},
		{Name: "tag_id", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WordTagsTable holds the schema information for the "word_tags" table.
	WordTagsTable = &schema.Table{
		Name:       "word_tags",
		Columns:    WordTagsColumns,
		PrimaryKey: []*schema.Column{WordTagsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "word_tags_words_word",
				Columns:    []*schema.Column{WordTagsColumns[1]},
				RefColumns: []*schema.Column{WordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "word_tags_tags_tag",
				Columns:    []*schema.Column{WordTagsColumns[2]},
				RefColumns: []*schema.Column{TagsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "wordtag_word_id_tag_id",
				Unique:  true,
				Columns: []*schema.Column{WordTagsColumns[1], WordTagsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema. Nuke drops them backwards,
	// so join tables go after the tables they point to.
	Tables = []*schema.Table{
		WordsTable,
		WordRelationsTable,
		FormsTable,
		TagsTable,
		WordTagsTable,
	}
)

func init() {
	WordRelationsTable.ForeignKeys[0].RefTable = WordsTable
	WordRelationsTable.ForeignKeys[1].RefTable = WordsTable
	WordTagsTable.ForeignKeys[0].RefTable = WordsTable
	WordTagsTable.ForeignKeys[1].RefTable = TagsTable
}

// Migrate creates the tables and indexes that are missing. It never drops
// anything, so running it on an up to date database is a no-op.
func Migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("prepare migration: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Nuke drops every table owned by mihi.
func Nuke(ctx context.Context, drv dialect.Driver) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		name := Tables[i].Name
		query := entsql.Dialect(drv.Dialect()).String(func(b *entsql.Builder) {
			b.WriteString("DROP TABLE IF EXISTS ").Ident(name)
		})
		if err := drv.Exec(ctx, query, []any{}, nil); err != nil {
			return fmt.Errorf("drop table %s: %w", name, err)
		}
	}
	return nil
}
