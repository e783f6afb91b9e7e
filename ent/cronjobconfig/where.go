// Code generated by ent, DO NOT EDIT.

package cronjobconfig

import (
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ID) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ID) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ID) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ID) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ID) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ID) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ID) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ID) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ID) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobName applies equality check predicate on the "job_name" field. It's identical to JobNameEQ.
func JobName(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldJobName, v))
}

// Schedule applies equality check predicate on the "schedule" field. It's identical to ScheduleEQ.
func Schedule(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldSchedule, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldEnabled, v))
}

// BatchSize applies equality check predicate on the "batch_size" field. It's identical to BatchSizeEQ.
func BatchSize(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldBatchSize, v))
}

// Concurrency applies equality check predicate on the "concurrency" field. It's identical to ConcurrencyEQ.
func Concurrency(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldConcurrency, v))
}

// AdminEmail applies equality check predicate on the "admin_email" field. It's identical to AdminEmailEQ.
func AdminEmail(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldAdminEmail, v))
}

// RespectQuota applies equality check predicate on the "respect_quota" field. It's identical to RespectQuotaEQ.
func RespectQuota(v bool) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldRespectQuota, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldLastRunAt, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldNextRunAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// JobNameEQ applies the EQ predicate on the "job_name" field.
func JobNameEQ(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldJobName, v))
}

// JobNameNEQ applies the NEQ predicate on the "job_name" field.
func JobNameNEQ(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldJobName, v))
}

// JobNameIn applies the In predicate on the "job_name" field.
func JobNameIn(vs ...string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIn(FieldJobName, vs...))
}

// JobNameNotIn applies the NotIn predicate on the "job_name" field.
func JobNameNotIn(vs ...string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotIn(FieldJobName, vs...))
}

// JobNameGT applies the GT predicate on the "job_name" field.
func JobNameGT(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGT(FieldJobName, v))
}

// JobNameGTE applies the GTE predicate on the "job_name" field.
func JobNameGTE(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGTE(FieldJobName, v))
}

// JobNameLT applies the LT predicate on the "job_name" field.
func JobNameLT(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLT(FieldJobName, v))
}

// JobNameLTE applies the LTE predicate on the "job_name" field.
func JobNameLTE(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLTE(FieldJobName, v))
}

// JobNameContains applies the Contains predicate on the "job_name" field.
func JobNameContains(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldContains(FieldJobName, v))
}

// JobNameHasPrefix applies the HasPrefix predicate on the "job_name" field.
func JobNameHasPrefix(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldHasPrefix(FieldJobName, v))
}

// JobNameHasSuffix applies the HasSuffix predicate on the "job_name" field.
func JobNameHasSuffix(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldHasSuffix(FieldJobName, v))
}

// JobNameEqualFold applies the EqualFold predicate on the "job_name" field.
func JobNameEqualFold(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEqualFold(FieldJobName, v))
}

// JobNameContainsFold applies the ContainsFold predicate on the "job_name" field.
func JobNameContainsFold(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldContainsFold(FieldJobName, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v JobType) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v JobType) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...JobType) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...JobType) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotIn(FieldJobType, vs...))
}

// ScheduleEQ applies the EQ predicate on the "schedule" field.
func ScheduleEQ(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldSchedule, v))
}

// ScheduleNEQ applies the NEQ predicate on the "schedule" field.
func ScheduleNEQ(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldSchedule, v))
}

// ScheduleIn applies the In predicate on the "schedule" field.
func ScheduleIn(vs ...string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIn(FieldSchedule, vs...))
}

// ScheduleNotIn applies the NotIn predicate on the "schedule" field.
func ScheduleNotIn(vs ...string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotIn(FieldSchedule, vs...))
}

// ScheduleGT applies the GT predicate on the "schedule" field.
func ScheduleGT(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGT(FieldSchedule, v))
}

// ScheduleGTE applies the GTE predicate on the "schedule" field.
func ScheduleGTE(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGTE(FieldSchedule, v))
}

// ScheduleLT applies the LT predicate on the "schedule" field.
func ScheduleLT(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLT(FieldSchedule, v))
}

// ScheduleLTE applies the LTE predicate on the "schedule" field.
func ScheduleLTE(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLTE(FieldSchedule, v))
}

// ScheduleContains applies the Contains predicate on the "schedule" field.
func ScheduleContains(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldContains(FieldSchedule, v))
}

// ScheduleHasPrefix applies the HasPrefix predicate on the "schedule" field.
func ScheduleHasPrefix(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldHasPrefix(FieldSchedule, v))
}

// ScheduleHasSuffix applies the HasSuffix predicate on the "schedule" field.
func ScheduleHasSuffix(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldHasSuffix(FieldSchedule, v))
}

// ScheduleEqualFold applies the EqualFold predicate on the "schedule" field.
func ScheduleEqualFold(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEqualFold(FieldSchedule, v))
}

// ScheduleContainsFold applies the ContainsFold predicate on the "schedule" field.
func ScheduleContainsFold(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldContainsFold(FieldSchedule, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldEnabled, v))
}

// BatchSizeEQ applies the EQ predicate on the "batch_size" field.
func BatchSizeEQ(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldBatchSize, v))
}

// BatchSizeNEQ applies the NEQ predicate on the "batch_size" field.
func BatchSizeNEQ(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldBatchSize, v))
}

// BatchSizeIn applies the In predicate on the "batch_size" field.
func BatchSizeIn(vs ...int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIn(FieldBatchSize, vs...))
}

// BatchSizeNotIn applies the NotIn predicate on the "batch_size" field.
func BatchSizeNotIn(vs ...int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotIn(FieldBatchSize, vs...))
}

// BatchSizeGT applies the GT predicate on the "batch_size" field.
func BatchSizeGT(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGT(FieldBatchSize, v))
}

// BatchSizeGTE applies the GTE predicate on the "batch_size" field.
func BatchSizeGTE(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGTE(FieldBatchSize, v))
}

// BatchSizeLT applies the LT predicate on the "batch_size" field.
func BatchSizeLT(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLT(FieldBatchSize, v))
}

// BatchSizeLTE applies the LTE predicate on the "batch_size" field.
func BatchSizeLTE(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLTE(FieldBatchSize, v))
}

// ConcurrencyEQ applies the EQ predicate on the "concurrency" field.
func ConcurrencyEQ(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldConcurrency, v))
}

// ConcurrencyNEQ applies the NEQ predicate on the "concurrency" field.
func ConcurrencyNEQ(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldConcurrency, v))
}

// ConcurrencyIn applies the In predicate on the "concurrency" field.
func ConcurrencyIn(vs ...int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIn(FieldConcurrency, vs...))
}

// ConcurrencyNotIn applies the NotIn predicate on the "concurrency" field.
func ConcurrencyNotIn(vs ...int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotIn(FieldConcurrency, vs...))
}

// ConcurrencyGT applies the GT predicate on the "concurrency" field.
func ConcurrencyGT(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGT(FieldConcurrency, v))
}

// ConcurrencyGTE applies the GTE predicate on the "concurrency" field.
func ConcurrencyGTE(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGTE(FieldConcurrency, v))
}

// ConcurrencyLT applies the LT predicate on the "concurrency" field.
func ConcurrencyLT(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLT(FieldConcurrency, v))
}

// ConcurrencyLTE applies the LTE predicate on the "concurrency" field.
func ConcurrencyLTE(v int) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLTE(FieldConcurrency, v))
}

// AdminEmailEQ applies the EQ predicate on the "admin_email" field.
func AdminEmailEQ(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldAdminEmail, v))
}

// AdminEmailNEQ applies the NEQ predicate on the "admin_email" field.
func AdminEmailNEQ(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldAdminEmail, v))
}

// AdminEmailIn applies the In predicate on the "admin_email" field.
func AdminEmailIn(vs ...string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIn(FieldAdminEmail, vs...))
}

// AdminEmailNotIn applies the NotIn predicate on the "admin_email" field.
func AdminEmailNotIn(vs ...string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotIn(FieldAdminEmail, vs...))
}

// AdminEmailGT applies the GT predicate on the "admin_email" field.
func AdminEmailGT(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGT(FieldAdminEmail, v))
}

// AdminEmailGTE applies the GTE predicate on the "admin_email" field.
func AdminEmailGTE(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGTE(FieldAdminEmail, v))
}

// AdminEmailLT applies the LT predicate on the "admin_email" field.
func AdminEmailLT(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLT(FieldAdminEmail, v))
}

// AdminEmailLTE applies the LTE predicate on the "admin_email" field.
func AdminEmailLTE(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLTE(FieldAdminEmail, v))
}

// AdminEmailContains applies the Contains predicate on the "admin_email" field.
func AdminEmailContains(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldContains(FieldAdminEmail, v))
}

// AdminEmailHasPrefix applies the HasPrefix predicate on the "admin_email" field.
func AdminEmailHasPrefix(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldHasPrefix(FieldAdminEmail, v))
}

// AdminEmailHasSuffix applies the HasSuffix predicate on the "admin_email" field.
func AdminEmailHasSuffix(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldHasSuffix(FieldAdminEmail, v))
}

// AdminEmailEqualFold applies the EqualFold predicate on the "admin_email" field.
func AdminEmailEqualFold(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEqualFold(FieldAdminEmail, v))
}

// AdminEmailContainsFold applies the ContainsFold predicate on the "admin_email" field.
func AdminEmailContainsFold(v string) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldContainsFold(FieldAdminEmail, v))
}

// RespectQuotaEQ applies the EQ predicate on the "respect_quota" field.
func RespectQuotaEQ(v bool) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldRespectQuota, v))
}

// RespectQuotaNEQ applies the NEQ predicate on the "respect_quota" field.
func RespectQuotaNEQ(v bool) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldRespectQuota, v))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotNull(FieldLastRunAt))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v time.Time) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldLTE(FieldNextRunAt, v))
}

// NextRunAtIsNil applies the IsNil predicate on the "next_run_at" field.
func NextRunAtIsNil() predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldIsNull(FieldNextRunAt))
}

// NextRunAtNotNil applies the NotNil predicate on the "next_run_at" field.
func NextRunAtNotNil() predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.FieldNotNull(FieldNextRunAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CronJobConfig) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CronJobConfig) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CronJobConfig) predicate.CronJobConfig {
	return predicate.CronJobConfig(sql.NotPredicates(p))
}
