package schema

import (
	"kwlab-go-backend/ent/mixin"
	"kwlab-go-backend/pkg/const/globalid"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	entMixin "entgo.io/ent/schema/mixin"
)

// KeywordDocCount holds per-channel document totals for one keyword
type KeywordDocCount struct {
	ent.Schema
}

// KeywordDocCountMixin defines Fields
type KeywordDocCountMixin struct {
	entMixin.Schema
}

// Fields of the KeywordDocCount.
func (KeywordDocCount) Fields() []ent.Field {
	return []ent.Field{
		field.String("keyword").
			NotEmpty().
			Unique().
			MaxLen(200).
			Comment("Keyword text (natural key, one row per keyword)"),

		field.Int("blog_total").
			Default(0).
			NonNegative().
			Comment("Blog search result total"),

		field.Int("cafe_total").
			Default(0).
			NonNegative().
			Comment("Cafe search result total"),

		field.Int("web_total").
			Default(0).
			NonNegative().
			Comment("Web document search result total"),

		field.Int("news_total").
			Default(0).
			NonNegative().
			Comment("News search result total"),

		field.Time("collected_at").
			Comment("When the counts were collected"),
	}
}

// Mixin of the KeywordDocCount.
func (KeywordDocCount) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().KeywordDocCount.Prefix),
		KeywordDocCountMixin{},
		mixin.NewDatetime(),
	}
}

// Indexes of the KeywordDocCount.
func (KeywordDocCount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("keyword").Unique(),

		// Backfill scans for stale counts
		index.Fields("collected_at"),
	}
}
