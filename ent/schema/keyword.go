package schema

import (
	"kwlab-go-backend/ent/mixin"
	"kwlab-go-backend/pkg/const/globalid"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	entMixin "entgo.io/ent/schema/mixin"
)

// Keyword holds the schema definition for a collected related keyword
type Keyword struct {
	ent.Schema
}

// KeywordMixin defines Fields
type KeywordMixin struct {
	entMixin.Schema
}

// Fields of the Keyword.
func (Keyword) Fields() []ent.Field {
	return []ent.Field{
		field.String("keyword").
			NotEmpty().
			Unique().
			MaxLen(200).
			Comment("Keyword text (natural key)"),

		field.Int("monthly_pc_search").
			Default(0).
			NonNegative().
			Comment("PC monthly search volume"),

		field.Int("monthly_mobile_search").
			Default(0).
			NonNegative().
			Comment("Mobile monthly search volume"),

		field.Int("avg_monthly_search").
			Default(0).
			NonNegative().
			Comment("Sum of PC and mobile search volume"),

		field.Float("monthly_click_pc").
			Default(0).
			Comment("Average monthly ad clicks on PC"),

		field.Float("monthly_click_mobile").
			Default(0).
			Comment("Average monthly ad clicks on mobile"),

		field.Float("ctr_pc").
			Default(0).
			Comment("Average click-through rate on PC (percent)"),

		field.Float("ctr_mobile").
			Default(0).
			Comment("Average click-through rate on mobile (percent)"),

		field.Int("ad_depth").
			Default(0).
			NonNegative().
			Comment("Average number of ads shown for the keyword"),

		field.String("competition").
			Default("").
			MaxLen(20).
			Comment("Provider competitive index label"),

		field.String("seed").
			Default("").
			MaxLen(200).
			Comment("Seed keyword this entry was expanded from"),
	}
}

// Mixin of the Keyword.
func (Keyword) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().Keyword.Prefix),
		KeywordMixin{},
		mixin.NewDatetime(),
	}
}

// Indexes of the Keyword.
func (Keyword) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("keyword").Unique(),

		// Sort-heavy browse columns
		index.Fields("avg_monthly_search"),
		index.Fields("created_at"),

		index.Fields("seed"),
	}
}
