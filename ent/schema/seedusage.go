package schema

import (
	"kwlab-go-backend/ent/mixin"
	"kwlab-go-backend/pkg/const/globalid"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	entMixin "entgo.io/ent/schema/mixin"
)

// SeedUsage tracks when a seed keyword was last expanded
type SeedUsage struct {
	ent.Schema
}

// SeedUsageMixin defines Fields
type SeedUsageMixin struct {
	entMixin.Schema
}

// Fields of the SeedUsage.
func (SeedUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("seed").
			NotEmpty().
			Unique().
			MaxLen(200).
			Comment("Seed keyword text (natural key)"),

		field.Int("usage_count").
			Default(0).
			NonNegative().
			Comment("How many times the seed has been expanded"),

		field.Time("last_used_at").
			Optional().
			Nillable().
			Comment("Timestamp of the last expansion, nil when never used"),
	}
}

// Mixin of the SeedUsage.
func (SeedUsage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().SeedUsage.Prefix),
		SeedUsageMixin{},
		mixin.NewDatetime(),
	}
}

// Indexes of the SeedUsage.
func (SeedUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("seed").Unique(),

		// Candidate scans order by least-recently-used
		index.Fields("last_used_at"),
	}
}
