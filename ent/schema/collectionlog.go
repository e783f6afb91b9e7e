package schema

import (
	"kwlab-go-backend/ent/mixin"
	"kwlab-go-backend/pkg/const/globalid"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	entMixin "entgo.io/ent/schema/mixin"
)

// CollectionLog holds the schema definition for tracking collection run history
type CollectionLog struct {
	ent.Schema
}

// CollectionLogMixin defines Fields
type CollectionLogMixin struct {
	entMixin.Schema
}

// Fields of the CollectionLog.
func (CollectionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_name").
			NotEmpty().
			MaxLen(100).
			Comment("Name of the collection run"),

		field.Enum("status").
			NamedValues(
				"Success", "SUCCESS",
				"Failed", "FAILED",
				"Partial", "PARTIAL",
				"QuotaExceeded", "QUOTA_EXCEEDED",
			).
			Comment("Run status"),

		field.Time("started_at").
			Comment("Run start time"),

		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Run completion time"),

		field.Int("duration_seconds").
			Default(0).
			NonNegative().
			Comment("Duration in seconds"),

		field.Int("total_processed").
			Default(0).
			NonNegative().
			Comment("Seeds attempted"),

		field.Int("new_count").
			Default(0).
			NonNegative().
			Comment("Keywords inserted"),

		field.Int("updated_count").
			Default(0).
			NonNegative().
			Comment("Keywords with refreshed metrics"),

		field.Int("skipped_count").
			Default(0).
			NonNegative().
			Comment("Seeds skipped inside the freshness window"),

		field.Int("failed_count").
			Default(0).
			NonNegative().
			Comment("Seeds that failed after retries"),

		field.Int("api_calls_made").
			Default(0).
			NonNegative().
			Comment("Number of provider API calls made during this run"),

		field.Text("error_summary").
			Optional().
			Nillable().
			Comment("Summary of errors encountered"),
	}
}

// Mixin of the CollectionLog.
func (CollectionLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().CollectionLog.Prefix),
		CollectionLogMixin{},
		mixin.NewDatetime(),
	}
}

// Indexes of the CollectionLog.
func (CollectionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_name"),

		index.Fields("status"),

		index.Fields("started_at").
			StorageKey("idx_collection_started_at_desc"),

		index.Fields("job_name", "started_at"),
	}
}
