// Code generated by ent, DO NOT EDIT.

package cronjobconfig

import (
	"fmt"
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cronjobconfig type in the database.
	Label = "cron_job_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldJobName holds the string denoting the job_name field in the database.
	FieldJobName = "job_name"
	// FieldJobType holds the string denoting the job_type field in the database.
	FieldJobType = "job_type"
	// FieldSchedule holds the string denoting the schedule field in the database.
	FieldSchedule = "schedule"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldBatchSize holds the string denoting the batch_size field in the database.
	FieldBatchSize = "batch_size"
	// FieldConcurrency holds the string denoting the concurrency field in the database.
	FieldConcurrency = "concurrency"
	// FieldAdminEmail holds the string denoting the admin_email field in the database.
	FieldAdminEmail = "admin_email"
	// FieldRespectQuota holds the string denoting the respect_quota field in the database.
	FieldRespectQuota = "respect_quota"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldNextRunAt holds the string denoting the next_run_at field in the database.
	FieldNextRunAt = "next_run_at"
	// Table holds the table name of the cronjobconfig in the database.
	Table = "cron_job_configs"
)

// Columns holds all SQL columns for cronjobconfig fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldJobName,
	FieldJobType,
	FieldSchedule,
	FieldEnabled,
	FieldBatchSize,
	FieldConcurrency,
	FieldAdminEmail,
	FieldRespectQuota,
	FieldLastRunAt,
	FieldNextRunAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// JobNameValidator is a validator for the "job_name" field. It is called by the builders before save.
	JobNameValidator func(string) error
	// ScheduleValidator is a validator for the "schedule" field. It is called by the builders before save.
	ScheduleValidator func(string) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultBatchSize holds the default value on creation for the "batch_size" field.
	DefaultBatchSize int
	// BatchSizeValidator is a validator for the "batch_size" field. It is called by the builders before save.
	BatchSizeValidator func(int) error
	// DefaultConcurrency holds the default value on creation for the "concurrency" field.
	DefaultConcurrency int
	// ConcurrencyValidator is a validator for the "concurrency" field. It is called by the builders before save.
	ConcurrencyValidator func(int) error
	// DefaultAdminEmail holds the default value on creation for the "admin_email" field.
	DefaultAdminEmail string
	// DefaultRespectQuota holds the default value on creation for the "respect_quota" field.
	DefaultRespectQuota bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ID
)

// JobType defines the type for the "job_type" enum field.
type JobType string

// JobType values.
const (
	JobTypeAutoCollect      JobType = "AUTO_COLLECT"
	JobTypeUsageReset       JobType = "USAGE_RESET"
	JobTypeDocCountBackfill JobType = "DOC_COUNT_BACKFILL"
	JobTypeJobCleanup       JobType = "JOB_CLEANUP"
)

func (jt JobType) String() string {
	return string(jt)
}

// JobTypeValidator is a validator for the "job_type" field enum values. It is called by the builders before save.
func JobTypeValidator(jt JobType) error {
	switch jt {
	case JobTypeAutoCollect, JobTypeUsageReset, JobTypeDocCountBackfill, JobTypeJobCleanup:
		return nil
	default:
		return fmt.Errorf("cronjobconfig: invalid enum value for job_type field: %q", jt)
	}
}

// OrderOption defines the ordering options for the CronJobConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobName orders the results by the job_name field.
func ByJobName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobName, opts...).ToFunc()
}

// ByJobType orders the results by the job_type field.
func ByJobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobType, opts...).ToFunc()
}

// BySchedule orders the results by the schedule field.
func BySchedule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchedule, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByBatchSize orders the results by the batch_size field.
func ByBatchSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchSize, opts...).ToFunc()
}

// ByConcurrency orders the results by the concurrency field.
func ByConcurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcurrency, opts...).ToFunc()
}

// ByAdminEmail orders the results by the admin_email field.
func ByAdminEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminEmail, opts...).ToFunc()
}

// ByRespectQuota orders the results by the respect_quota field.
func ByRespectQuota(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespectQuota, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByNextRunAt orders the results by the next_run_at field.
func ByNextRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRunAt, opts...).ToFunc()
}
