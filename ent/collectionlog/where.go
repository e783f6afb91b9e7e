// Code generated by ent, DO NOT EDIT.

package collectionlog

import (
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ID) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ID) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ID) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ID) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ID) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ID) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ID) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ID) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ID) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobName applies equality check predicate on the "job_name" field. It's identical to JobNameEQ.
func JobName(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldJobName, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldDurationSeconds, v))
}

// TotalProcessed applies equality check predicate on the "total_processed" field. It's identical to TotalProcessedEQ.
func TotalProcessed(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldTotalProcessed, v))
}

// NewCount applies equality check predicate on the "new_count" field. It's identical to NewCountEQ.
func NewCount(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldNewCount, v))
}

// UpdatedCount applies equality check predicate on the "updated_count" field. It's identical to UpdatedCountEQ.
func UpdatedCount(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldUpdatedCount, v))
}

// SkippedCount applies equality check predicate on the "skipped_count" field. It's identical to SkippedCountEQ.
func SkippedCount(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldSkippedCount, v))
}

// FailedCount applies equality check predicate on the "failed_count" field. It's identical to FailedCountEQ.
func FailedCount(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldFailedCount, v))
}

// APICallsMade applies equality check predicate on the "api_calls_made" field. It's identical to APICallsMadeEQ.
func APICallsMade(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldAPICallsMade, v))
}

// ErrorSummary applies equality check predicate on the "error_summary" field. It's identical to ErrorSummaryEQ.
func ErrorSummary(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldErrorSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldUpdatedAt, v))
}

// JobNameEQ applies the EQ predicate on the "job_name" field.
func JobNameEQ(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldJobName, v))
}

// JobNameNEQ applies the NEQ predicate on the "job_name" field.
func JobNameNEQ(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldJobName, v))
}

// JobNameIn applies the In predicate on the "job_name" field.
func JobNameIn(vs ...string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldJobName, vs...))
}

// JobNameNotIn applies the NotIn predicate on the "job_name" field.
func JobNameNotIn(vs ...string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldJobName, vs...))
}

// JobNameGT applies the GT predicate on the "job_name" field.
func JobNameGT(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldJobName, v))
}

// JobNameGTE applies the GTE predicate on the "job_name" field.
func JobNameGTE(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldJobName, v))
}

// JobNameLT applies the LT predicate on the "job_name" field.
func JobNameLT(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldJobName, v))
}

// JobNameLTE applies the LTE predicate on the "job_name" field.
func JobNameLTE(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldJobName, v))
}

// JobNameContains applies the Contains predicate on the "job_name" field.
func JobNameContains(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldContains(FieldJobName, v))
}

// JobNameHasPrefix applies the HasPrefix predicate on the "job_name" field.
func JobNameHasPrefix(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldHasPrefix(FieldJobName, v))
}

// JobNameHasSuffix applies the HasSuffix predicate on the "job_name" field.
func JobNameHasSuffix(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldHasSuffix(FieldJobName, v))
}

// JobNameEqualFold applies the EqualFold predicate on the "job_name" field.
func JobNameEqualFold(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEqualFold(FieldJobName, v))
}

// JobNameContainsFold applies the ContainsFold predicate on the "job_name" field.
func JobNameContainsFold(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldContainsFold(FieldJobName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotNull(FieldCompletedAt))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldDurationSeconds, v))
}

// TotalProcessedEQ applies the EQ predicate on the "total_processed" field.
func TotalProcessedEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldTotalProcessed, v))
}

// TotalProcessedNEQ applies the NEQ predicate on the "total_processed" field.
func TotalProcessedNEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldTotalProcessed, v))
}

// TotalProcessedIn applies the In predicate on the "total_processed" field.
func TotalProcessedIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldTotalProcessed, vs...))
}

// TotalProcessedNotIn applies the NotIn predicate on the "total_processed" field.
func TotalProcessedNotIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldTotalProcessed, vs...))
}

// TotalProcessedGT applies the GT predicate on the "total_processed" field.
func TotalProcessedGT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldTotalProcessed, v))
}

// TotalProcessedGTE applies the GTE predicate on the "total_processed" field.
func TotalProcessedGTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldTotalProcessed, v))
}

// TotalProcessedLT applies the LT predicate on the "total_processed" field.
func TotalProcessedLT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldTotalProcessed, v))
}

// TotalProcessedLTE applies the LTE predicate on the "total_processed" field.
func TotalProcessedLTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldTotalProcessed, v))
}

// NewCountEQ applies the EQ predicate on the "new_count" field.
func NewCountEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldNewCount, v))
}

// NewCountNEQ applies the NEQ predicate on the "new_count" field.
func NewCountNEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldNewCount, v))
}

// NewCountIn applies the In predicate on the "new_count" field.
func NewCountIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldNewCount, vs...))
}

// NewCountNotIn applies the NotIn predicate on the "new_count" field.
func NewCountNotIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldNewCount, vs...))
}

// NewCountGT applies the GT predicate on the "new_count" field.
func NewCountGT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldNewCount, v))
}

// NewCountGTE applies the GTE predicate on the "new_count" field.
func NewCountGTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldNewCount, v))
}

// NewCountLT applies the LT predicate on the "new_count" field.
func NewCountLT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldNewCount, v))
}

// NewCountLTE applies the LTE predicate on the "new_count" field.
func NewCountLTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldNewCount, v))
}

// UpdatedCountEQ applies the EQ predicate on the "updated_count" field.
func UpdatedCountEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldUpdatedCount, v))
}

// UpdatedCountNEQ applies the NEQ predicate on the "updated_count" field.
func UpdatedCountNEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldUpdatedCount, v))
}

// UpdatedCountIn applies the In predicate on the "updated_count" field.
func UpdatedCountIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldUpdatedCount, vs...))
}

// UpdatedCountNotIn applies the NotIn predicate on the "updated_count" field.
func UpdatedCountNotIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldUpdatedCount, vs...))
}

// UpdatedCountGT applies the GT predicate on the "updated_count" field.
func UpdatedCountGT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldUpdatedCount, v))
}

// UpdatedCountGTE applies the GTE predicate on the "updated_count" field.
func UpdatedCountGTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldUpdatedCount, v))
}

// UpdatedCountLT applies the LT predicate on the "updated_count" field.
func UpdatedCountLT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldUpdatedCount, v))
}

// UpdatedCountLTE applies the LTE predicate on the "updated_count" field.
func UpdatedCountLTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldUpdatedCount, v))
}

// SkippedCountEQ applies the EQ predicate on the "skipped_count" field.
func SkippedCountEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldSkippedCount, v))
}

// SkippedCountNEQ applies the NEQ predicate on the "skipped_count" field.
func SkippedCountNEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldSkippedCount, v))
}

// SkippedCountIn applies the In predicate on the "skipped_count" field.
func SkippedCountIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldSkippedCount, vs...))
}

// SkippedCountNotIn applies the NotIn predicate on the "skipped_count" field.
func SkippedCountNotIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldSkippedCount, vs...))
}

// SkippedCountGT applies the GT predicate on the "skipped_count" field.
func SkippedCountGT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldSkippedCount, v))
}

// SkippedCountGTE applies the GTE predicate on the "skipped_count" field.
func SkippedCountGTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldSkippedCount, v))
}

// SkippedCountLT applies the LT predicate on the "skipped_count" field.
func SkippedCountLT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldSkippedCount, v))
}

// SkippedCountLTE applies the LTE predicate on the "skipped_count" field.
func SkippedCountLTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldSkippedCount, v))
}

// FailedCountEQ applies the EQ predicate on the "failed_count" field.
func FailedCountEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldFailedCount, v))
}

// FailedCountNEQ applies the NEQ predicate on the "failed_count" field.
func FailedCountNEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldFailedCount, v))
}

// FailedCountIn applies the In predicate on the "failed_count" field.
func FailedCountIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldFailedCount, vs...))
}

// FailedCountNotIn applies the NotIn predicate on the "failed_count" field.
func FailedCountNotIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldFailedCount, vs...))
}

// FailedCountGT applies the GT predicate on the "failed_count" field.
func FailedCountGT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldFailedCount, v))
}

// FailedCountGTE applies the GTE predicate on the "failed_count" field.
func FailedCountGTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldFailedCount, v))
}

// FailedCountLT applies the LT predicate on the "failed_count" field.
func FailedCountLT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldFailedCount, v))
}

// FailedCountLTE applies the LTE predicate on the "failed_count" field.
func FailedCountLTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldFailedCount, v))
}

// APICallsMadeEQ applies the EQ predicate on the "api_calls_made" field.
func APICallsMadeEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldAPICallsMade, v))
}

// APICallsMadeNEQ applies the NEQ predicate on the "api_calls_made" field.
func APICallsMadeNEQ(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldAPICallsMade, v))
}

// APICallsMadeIn applies the In predicate on the "api_calls_made" field.
func APICallsMadeIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldAPICallsMade, vs...))
}

// APICallsMadeNotIn applies the NotIn predicate on the "api_calls_made" field.
func APICallsMadeNotIn(vs ...int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldAPICallsMade, vs...))
}

// APICallsMadeGT applies the GT predicate on the "api_calls_made" field.
func APICallsMadeGT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldAPICallsMade, v))
}

// APICallsMadeGTE applies the GTE predicate on the "api_calls_made" field.
func APICallsMadeGTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldAPICallsMade, v))
}

// APICallsMadeLT applies the LT predicate on the "api_calls_made" field.
func APICallsMadeLT(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldAPICallsMade, v))
}

// APICallsMadeLTE applies the LTE predicate on the "api_calls_made" field.
func APICallsMadeLTE(v int) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldAPICallsMade, v))
}

// ErrorSummaryEQ applies the EQ predicate on the "error_summary" field.
func ErrorSummaryEQ(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEQ(FieldErrorSummary, v))
}

// ErrorSummaryNEQ applies the NEQ predicate on the "error_summary" field.
func ErrorSummaryNEQ(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNEQ(FieldErrorSummary, v))
}

// ErrorSummaryIn applies the In predicate on the "error_summary" field.
func ErrorSummaryIn(vs ...string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIn(FieldErrorSummary, vs...))
}

// ErrorSummaryNotIn applies the NotIn predicate on the "error_summary" field.
func ErrorSummaryNotIn(vs ...string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotIn(FieldErrorSummary, vs...))
}

// ErrorSummaryGT applies the GT predicate on the "error_summary" field.
func ErrorSummaryGT(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGT(FieldErrorSummary, v))
}

// ErrorSummaryGTE applies the GTE predicate on the "error_summary" field.
func ErrorSummaryGTE(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldGTE(FieldErrorSummary, v))
}

// ErrorSummaryLT applies the LT predicate on the "error_summary" field.
func ErrorSummaryLT(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLT(FieldErrorSummary, v))
}

// ErrorSummaryLTE applies the LTE predicate on the "error_summary" field.
func ErrorSummaryLTE(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldLTE(FieldErrorSummary, v))
}

// ErrorSummaryContains applies the Contains predicate on the "error_summary" field.
func ErrorSummaryContains(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldContains(FieldErrorSummary, v))
}

// ErrorSummaryHasPrefix applies the HasPrefix predicate on the "error_summary" field.
func ErrorSummaryHasPrefix(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldHasPrefix(FieldErrorSummary, v))
}

// ErrorSummaryHasSuffix applies the HasSuffix predicate on the "error_summary" field.
func ErrorSummaryHasSuffix(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldHasSuffix(FieldErrorSummary, v))
}

// ErrorSummaryIsNil applies the IsNil predicate on the "error_summary" field.
func ErrorSummaryIsNil() predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldIsNull(FieldErrorSummary))
}

// ErrorSummaryNotNil applies the NotNil predicate on the "error_summary" field.
func ErrorSummaryNotNil() predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldNotNull(FieldErrorSummary))
}

// ErrorSummaryEqualFold applies the EqualFold predicate on the "error_summary" field.
func ErrorSummaryEqualFold(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldEqualFold(FieldErrorSummary, v))
}

// ErrorSummaryContainsFold applies the ContainsFold predicate on the "error_summary" field.
func ErrorSummaryContainsFold(v string) predicate.CollectionLog {
	return predicate.CollectionLog(sql.FieldContainsFold(FieldErrorSummary, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CollectionLog) predicate.CollectionLog {
	return predicate.CollectionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CollectionLog) predicate.CollectionLog {
	return predicate.CollectionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CollectionLog) predicate.CollectionLog {
	return predicate.CollectionLog(sql.NotPredicates(p))
}
