package schema

import (
	"kwlab-go-backend/ent/mixin"
	"kwlab-go-backend/pkg/const/globalid"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	entMixin "entgo.io/ent/schema/mixin"
)

// CronJobConfig holds the schema definition for cron job configuration
type CronJobConfig struct {
	ent.Schema
}

// CronJobConfigMixin defines Fields
type CronJobConfigMixin struct {
	entMixin.Schema
}

// Fields of the CronJobConfig.
func (CronJobConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_name").
			NotEmpty().
			Unique().
			MaxLen(100).
			Comment("Unique name for the cron job"),

		field.Enum("job_type").
			NamedValues(
				"AutoCollect", "AUTO_COLLECT",
				"UsageReset", "USAGE_RESET",
				"DocCountBackfill", "DOC_COUNT_BACKFILL",
				"JobCleanup", "JOB_CLEANUP",
			).
			Comment("Type of cron job"),

		field.String("schedule").
			NotEmpty().
			Comment("Cron expression (e.g., '0 2 * * *' for 2 AM daily)"),

		field.Bool("enabled").
			Default(true).
			Comment("Whether the job is enabled"),

		field.Int("batch_size").
			Default(10).
			Positive().
			Comment("Number of seeds to process per job run"),

		field.Int("concurrency").
			Default(5).
			Positive().
			Comment("Concurrent seeds per chunk"),

		field.String("admin_email").
			Default("").
			Comment("Admin email for notifications"),

		field.Bool("respect_quota").
			Default(true).
			Comment("Whether the run stops when the credential pool is exhausted"),

		field.Time("last_run_at").
			Optional().
			Nillable().
			Comment("Timestamp of last successful run"),

		field.Time("next_run_at").
			Optional().
			Nillable().
			Comment("Scheduled next run time"),
	}
}

// Mixin of the CronJobConfig.
func (CronJobConfig) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().CronJobConfig.Prefix),
		CronJobConfigMixin{},
		mixin.NewDatetime(),
	}
}

// Indexes of the CronJobConfig.
func (CronJobConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_name").Unique(),

		index.Fields("enabled"),

		index.Fields("job_type"),
	}
}
