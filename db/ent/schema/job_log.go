package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/lockdesk/lockdesk/constants"
	"github.com/lockdesk/lockdesk/db/ent/schema/utils"
)

type JobLog struct{ ent.Schema }

func (JobLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_log"},
	}
}

func (JobLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("vehicle").NotEmpty(),
		field.String("job_type").
			Default(string(constants.JobTypeOther)).
			Validate(utils.EnumValidator(constants.JobTypesAsStrings()...)),
		field.Float("price").Default(0),
		field.String("date").NotEmpty(), // YYYY-MM-DD
		field.String("status").
			Default(string(constants.StatusCompleted)).
			Validate(utils.EnumValidator(constants.StatusesAsStrings()...)),
		field.String("source").Default("manual"),
		field.String("notes").Optional().Nillable(),
		field.String("customer_name").Optional().Nillable(),
		field.String("customer_phone").Optional().Nillable(),
		field.String("customer_address").Optional().Nillable(),
		field.String("company_name").Optional().Nillable(),
		field.String("technician_name").Optional().Nillable(),
		field.String("fcc_id").Optional().Nillable(),
		field.String("key_type").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (JobLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "date"),
		index.Fields("job_type"),
	}
}
