// Code generated by ent, DO NOT EDIT.

package collectionlog

import (
	"fmt"
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the collectionlog type in the database.
	Label = "collection_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldJobName holds the string denoting the job_name field in the database.
	FieldJobName = "job_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldTotalProcessed holds the string denoting the total_processed field in the database.
	FieldTotalProcessed = "total_processed"
	// FieldNewCount holds the string denoting the new_count field in the database.
	FieldNewCount = "new_count"
	// FieldUpdatedCount holds the string denoting the updated_count field in the database.
	FieldUpdatedCount = "updated_count"
	// FieldSkippedCount holds the string denoting the skipped_count field in the database.
	FieldSkippedCount = "skipped_count"
	// FieldFailedCount holds the string denoting the failed_count field in the database.
	FieldFailedCount = "failed_count"
	// FieldAPICallsMade holds the string denoting the api_calls_made field in the database.
	FieldAPICallsMade = "api_calls_made"
	// FieldErrorSummary holds the string denoting the error_summary field in the database.
	FieldErrorSummary = "error_summary"
	// Table holds the table name of the collectionlog in the database.
	Table = "collection_logs"
)

// Columns holds all SQL columns for collectionlog fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldJobName,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationSeconds,
	FieldTotalProcessed,
	FieldNewCount,
	FieldUpdatedCount,
	FieldSkippedCount,
	FieldFailedCount,
	FieldAPICallsMade,
	FieldErrorSummary,
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
	// DefaultDurationSeconds holds the default value on creation for the "duration_seconds" field.
	DefaultDurationSeconds int
	// DurationSecondsValidator is a validator for the "duration_seconds" field. It is called by the builders before save.
	DurationSecondsValidator func(int) error
	// DefaultTotalProcessed holds the default value on creation for the "total_processed" field.
	DefaultTotalProcessed int
	// TotalProcessedValidator is a validator for the "total_processed" field. It is called by the builders before save.
	TotalProcessedValidator func(int) error
	// DefaultNewCount holds the default value on creation for the "new_count" field.
	DefaultNewCount int
	// NewCountValidator is a validator for the "new_count" field. It is called by the builders before save.
	NewCountValidator func(int) error
	// DefaultUpdatedCount holds the default value on creation for the "updated_count" field.
	DefaultUpdatedCount int
	// UpdatedCountValidator is a validator for the "updated_count" field. It is called by the builders before save.
	UpdatedCountValidator func(int) error
	// DefaultSkippedCount holds the default value on creation for the "skipped_count" field.
	DefaultSkippedCount int
	// SkippedCountValidator is a validator for the "skipped_count" field. It is called by the builders before save.
	SkippedCountValidator func(int) error
	// DefaultFailedCount holds the default value on creation for the "failed_count" field.
	DefaultFailedCount int
	// FailedCountValidator is a validator for the "failed_count" field. It is called by the builders before save.
	FailedCountValidator func(int) error
	// DefaultAPICallsMade holds the default value on creation for the "api_calls_made" field.
	DefaultAPICallsMade int
	// APICallsMadeValidator is a validator for the "api_calls_made" field. It is called by the builders before save.
	APICallsMadeValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ID
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSuccess       Status = "SUCCESS"
	StatusFailed        Status = "FAILED"
	StatusPartial       Status = "PARTIAL"
	StatusQuotaExceeded Status = "QUOTA_EXCEEDED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusFailed, StatusPartial, StatusQuotaExceeded:
		return nil
	default:
		return fmt.Errorf("collectionlog: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CollectionLog queries.
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

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByTotalProcessed orders the results by the total_processed field.
func ByTotalProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalProcessed, opts...).ToFunc()
}

// ByNewCount orders the results by the new_count field.
func ByNewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewCount, opts...).ToFunc()
}

// ByUpdatedCount orders the results by the updated_count field.
func ByUpdatedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedCount, opts...).ToFunc()
}

// BySkippedCount orders the results by the skipped_count field.
func BySkippedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkippedCount, opts...).ToFunc()
}

// ByFailedCount orders the results by the failed_count field.
func ByFailedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedCount, opts...).ToFunc()
}

// ByAPICallsMade orders the results by the api_calls_made field.
func ByAPICallsMade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPICallsMade, opts...).ToFunc()
}

// ByErrorSummary orders the results by the error_summary field.
func ByErrorSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorSummary, opts...).ToFunc()
}
