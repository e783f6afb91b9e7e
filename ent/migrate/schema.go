// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CollectionLogsColumns holds the columns for the "collection_logs" table.
	CollectionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "job_name", Type: field.TypeString, Size: 100},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"SUCCESS", "FAILED", "PARTIAL", "QUOTA_EXCEEDED"}},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "total_processed", Type: field.TypeInt, Default: 0},
		{Name: "new_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_count", Type: field.TypeInt, Default: 0},
		{Name: "skipped_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "api_calls_made", Type: field.TypeInt, Default: 0},
		{Name: "error_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// CollectionLogsTable holds the schema information for the "collection_logs" table.
	CollectionLogsTable = &schema.Table{
		Name:       "collection_logs",
		Columns:    CollectionLogsColumns,
		PrimaryKey: []*schema.Column{CollectionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "collectionlog_job_name",
				Unique:  false,
				Columns: []*schema.Column{CollectionLogsColumns[3]},
			},
			{
				Name:    "collectionlog_status",
				Unique:  false,
				Columns: []*schema.Column{CollectionLogsColumns[4]},
			},
			{
				Name:    "idx_collection_started_at_desc",
				Unique:  false,
				Columns: []*schema.Column{CollectionLogsColumns[5]},
			},
			{
				Name:    "collectionlog_job_name_started_at",
				Unique:  false,
				Columns: []*schema.Column{CollectionLogsColumns[3], CollectionLogsColumns[5]},
			},
		},
	}
	// CronJobConfigsColumns holds the columns for the "cron_job_configs" table.
	CronJobConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "job_name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "job_type", Type: field.TypeEnum, Enums: []string{"AUTO_COLLECT", "USAGE_RESET", "DOC_COUNT_BACKFILL", "JOB_CLEANUP"}},
		{Name: "schedule", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "batch_size", Type: field.TypeInt, Default: 10},
		{Name: "concurrency", Type: field.TypeInt, Default: 5},
		{Name: "admin_email", Type: field.TypeString, Default: ""},
		{Name: "respect_quota", Type: field.TypeBool, Default: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_run_at", Type: field.TypeTime, Nullable: true},
	}
	// CronJobConfigsTable holds the schema information for the "cron_job_configs" table.
	CronJobConfigsTable = &schema.Table{
		Name:       "cron_job_configs",
		Columns:    CronJobConfigsColumns,
		PrimaryKey: []*schema.Column{CronJobConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cronjobconfig_job_name",
				Unique:  true,
				Columns: []*schema.Column{CronJobConfigsColumns[3]},
			},
			{
				Name:    "cronjobconfig_enabled",
				Unique:  false,
				Columns: []*schema.Column{CronJobConfigsColumns[6]},
			},
			{
				Name:    "cronjobconfig_job_type",
				Unique:  false,
				Columns: []*schema.Column{CronJobConfigsColumns[4]},
			},
		},
	}
	// KeywordsColumns holds the columns for the "keywords" table.
	KeywordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "keyword", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "monthly_pc_search", Type: field.TypeInt, Default: 0},
		{Name: "monthly_mobile_search", Type: field.TypeInt, Default: 0},
		{Name: "avg_monthly_search", Type: field.TypeInt, Default: 0},
		{Name: "monthly_click_pc", Type: field.TypeFloat64, Default: 0},
		{Name: "monthly_click_mobile", Type: field.TypeFloat64, Default: 0},
		{Name: "ctr_pc", Type: field.TypeFloat64, Default: 0},
		{Name: "ctr_mobile", Type: field.TypeFloat64, Default: 0},
		{Name: "ad_depth", Type: field.TypeInt, Default: 0},
		{Name: "competition", Type: field.TypeString, Size: 20, Default: ""},
		{Name: "seed", Type: field.TypeString, Size: 200, Default: ""},
	}
	// KeywordsTable holds the schema information for the "keywords" table.
	KeywordsTable = &schema.Table{
		Name:       "keywords",
		Columns:    KeywordsColumns,
		PrimaryKey: []*schema.Column{KeywordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "keyword_keyword",
				Unique:  true,
				Columns: []*schema.Column{KeywordsColumns[3]},
			},
			{
				Name:    "keyword_avg_monthly_search",
				Unique:  false,
				Columns: []*schema.Column{KeywordsColumns[6]},
			},
			{
				Name:    "keyword_created_at",
				Unique:  false,
				Columns: []*schema.Column{KeywordsColumns[1]},
			},
			{
				Name:    "keyword_seed",
				Unique:  false,
				Columns: []*schema.Column{KeywordsColumns[13]},
			},
		},
	}
	// KeywordDocCountsColumns holds the columns for the "keyword_doc_counts" table.
	KeywordDocCountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "keyword", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "blog_total", Type: field.TypeInt, Default: 0},
		{Name: "cafe_total", Type: field.TypeInt, Default: 0},
		{Name: "web_total", Type: field.TypeInt, Default: 0},
		{Name: "news_total", Type: field.TypeInt, Default: 0},
		{Name: "collected_at", Type: field.TypeTime},
	}
	// KeywordDocCountsTable holds the schema information for the "keyword_doc_counts" table.
	KeywordDocCountsTable = &schema.Table{
		Name:       "keyword_doc_counts",
		Columns:    KeywordDocCountsColumns,
		PrimaryKey: []*schema.Column{KeywordDocCountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "keyworddoccount_keyword",
				Unique:  true,
				Columns: []*schema.Column{KeywordDocCountsColumns[3]},
			},
			{
				Name:    "keyworddoccount_collected_at",
				Unique:  false,
				Columns: []*schema.Column{KeywordDocCountsColumns[8]},
			},
		},
	}
	// SeedUsagesColumns holds the columns for the "seed_usages" table.
	SeedUsagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "seed", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
	}
	// SeedUsagesTable holds the schema information for the "seed_usages" table.
	SeedUsagesTable = &schema.Table{
		Name:       "seed_usages",
		Columns:    SeedUsagesColumns,
		PrimaryKey: []*schema.Column{SeedUsagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "seedusage_seed",
				Unique:  true,
				Columns: []*schema.Column{SeedUsagesColumns[3]},
			},
			{
				Name:    "seedusage_last_used_at",
				Unique:  false,
				Columns: []*schema.Column{SeedUsagesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CollectionLogsTable,
		CronJobConfigsTable,
		KeywordsTable,
		KeywordDocCountsTable,
		SeedUsagesTable,
	}
)

func init() {
}
