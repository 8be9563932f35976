package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/lockdesk/lockdesk/db/ent/schema/utils"
)

// Document mirrors the library manifest for deployments that index the
// document catalog into the database instead of serving the JSON file.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("title").NotEmpty(),
		field.String("make").NotEmpty(),
		field.String("model").Optional(),
		field.Int("year_from").Optional(),
		field.Int("year_to").Optional(),
		field.String("doc_type").
			Validate(utils.EnumValidator("programming", "wiring", "fcc", "manual", "bulletin")),
		field.String("fcc_id").Optional(),
		field.String("key_type").Optional(),
		field.String("path").NotEmpty(),
		field.Strings("tags").Optional(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("make", "model"),
		index.Fields("doc_type"),
	}
}
