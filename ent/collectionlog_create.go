// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"kwlab-go-backend/ent/collectionlog"
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CollectionLogCreate is the builder for creating a CollectionLog entity.
type CollectionLogCreate struct {
	config
	mutation *CollectionLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (clc *CollectionLogCreate) SetCreatedAt(t time.Time) *CollectionLogCreate {
	clc.mutation.SetCreatedAt(t)
	return clc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableCreatedAt(t *time.Time) *CollectionLogCreate {
	if t != nil {
		clc.SetCreatedAt(*t)
	}
	return clc
}

// SetUpdatedAt sets the "updated_at" field.
func (clc *CollectionLogCreate) SetUpdatedAt(t time.Time) *CollectionLogCreate {
	clc.mutation.SetUpdatedAt(t)
	return clc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableUpdatedAt(t *time.Time) *CollectionLogCreate {
	if t != nil {
		clc.SetUpdatedAt(*t)
	}
	return clc
}

// SetJobName sets the "job_name" field.
func (clc *CollectionLogCreate) SetJobName(s string) *CollectionLogCreate {
	clc.mutation.SetJobName(s)
	return clc
}

// SetStatus sets the "status" field.
func (clc *CollectionLogCreate) SetStatus(c collectionlog.Status) *CollectionLogCreate {
	clc.mutation.SetStatus(c)
	return clc
}

// SetStartedAt sets the "started_at" field.
func (clc *CollectionLogCreate) SetStartedAt(t time.Time) *CollectionLogCreate {
	clc.mutation.SetStartedAt(t)
	return clc
}

// SetCompletedAt sets the "completed_at" field.
func (clc *CollectionLogCreate) SetCompletedAt(t time.Time) *CollectionLogCreate {
	clc.mutation.SetCompletedAt(t)
	return clc
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableCompletedAt(t *time.Time) *CollectionLogCreate {
	if t != nil {
		clc.SetCompletedAt(*t)
	}
	return clc
}

// SetDurationSeconds sets the "duration_seconds" field.
func (clc *CollectionLogCreate) SetDurationSeconds(i int) *CollectionLogCreate {
	clc.mutation.SetDurationSeconds(i)
	return clc
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableDurationSeconds(i *int) *CollectionLogCreate {
	if i != nil {
		clc.SetDurationSeconds(*i)
	}
	return clc
}

// SetTotalProcessed sets the "total_processed" field.
func (clc *CollectionLogCreate) SetTotalProcessed(i int) *CollectionLogCreate {
	clc.mutation.SetTotalProcessed(i)
	return clc
}

// SetNillableTotalProcessed sets the "total_processed" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableTotalProcessed(i *int) *CollectionLogCreate {
	if i != nil {
		clc.SetTotalProcessed(*i)
	}
	return clc
}

// SetNewCount sets the "new_count" field.
func (clc *CollectionLogCreate) SetNewCount(i int) *CollectionLogCreate {
	clc.mutation.SetNewCount(i)
	return clc
}

// SetNillableNewCount sets the "new_count" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableNewCount(i *int) *CollectionLogCreate {
	if i != nil {
		clc.SetNewCount(*i)
	}
	return clc
}

// SetUpdatedCount sets the "updated_count" field.
func (clc *CollectionLogCreate) SetUpdatedCount(i int) *CollectionLogCreate {
	clc.mutation.SetUpdatedCount(i)
	return clc
}

// SetNillableUpdatedCount sets the "updated_count" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableUpdatedCount(i *int) *CollectionLogCreate {
	if i != nil {
		clc.SetUpdatedCount(*i)
	}
	return clc
}

// SetSkippedCount sets the "skipped_count" field.
func (clc *CollectionLogCreate) SetSkippedCount(i int) *CollectionLogCreate {
	clc.mutation.SetSkippedCount(i)
	return clc
}

// SetNillableSkippedCount sets the "skipped_count" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableSkippedCount(i *int) *CollectionLogCreate {
	if i != nil {
		clc.SetSkippedCount(*i)
	}
	return clc
}

// SetFailedCount sets the "failed_count" field.
func (clc *CollectionLogCreate) SetFailedCount(i int) *CollectionLogCreate {
	clc.mutation.SetFailedCount(i)
	return clc
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableFailedCount(i *int) *CollectionLogCreate {
	if i != nil {
		clc.SetFailedCount(*i)
	}
	return clc
}

// SetAPICallsMade sets the "api_calls_made" field.
func (clc *CollectionLogCreate) SetAPICallsMade(i int) *CollectionLogCreate {
	clc.mutation.SetAPICallsMade(i)
	return clc
}

// SetNillableAPICallsMade sets the "api_calls_made" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableAPICallsMade(i *int) *CollectionLogCreate {
	if i != nil {
		clc.SetAPICallsMade(*i)
	}
	return clc
}

// SetErrorSummary sets the "error_summary" field.
func (clc *CollectionLogCreate) SetErrorSummary(s string) *CollectionLogCreate {
	clc.mutation.SetErrorSummary(s)
	return clc
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableErrorSummary(s *string) *CollectionLogCreate {
	if s != nil {
		clc.SetErrorSummary(*s)
	}
	return clc
}

// SetID sets the "id" field.
func (clc *CollectionLogCreate) SetID(u ulid.ID) *CollectionLogCreate {
	clc.mutation.SetID(u)
	return clc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (clc *CollectionLogCreate) SetNillableID(u *ulid.ID) *CollectionLogCreate {
	if u != nil {
		clc.SetID(*u)
	}
	return clc
}

// Mutation returns the CollectionLogMutation object of the builder.
func (clc *CollectionLogCreate) Mutation() *CollectionLogMutation {
	return clc.mutation
}

// Save creates the CollectionLog in the database.
func (clc *CollectionLogCreate) Save(ctx context.Context) (*CollectionLog, error) {
	clc.defaults()
	return withHooks(ctx, clc.sqlSave, clc.mutation, clc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (clc *CollectionLogCreate) SaveX(ctx context.Context) *CollectionLog {
	v, err := clc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (clc *CollectionLogCreate) Exec(ctx context.Context) error {
	_, err := clc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (clc *CollectionLogCreate) ExecX(ctx context.Context) {
	if err := clc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (clc *CollectionLogCreate) defaults() {
	if _, ok := clc.mutation.CreatedAt(); !ok {
		v := collectionlog.DefaultCreatedAt()
		clc.mutation.SetCreatedAt(v)
	}
	if _, ok := clc.mutation.UpdatedAt(); !ok {
		v := collectionlog.DefaultUpdatedAt()
		clc.mutation.SetUpdatedAt(v)
	}
	if _, ok := clc.mutation.DurationSeconds(); !ok {
		v := collectionlog.DefaultDurationSeconds
		clc.mutation.SetDurationSeconds(v)
	}
	if _, ok := clc.mutation.TotalProcessed(); !ok {
		v := collectionlog.DefaultTotalProcessed
		clc.mutation.SetTotalProcessed(v)
	}
	if _, ok := clc.mutation.NewCount(); !ok {
		v := collectionlog.DefaultNewCount
		clc.mutation.SetNewCount(v)
	}
	if _, ok := clc.mutation.UpdatedCount(); !ok {
		v := collectionlog.DefaultUpdatedCount
		clc.mutation.SetUpdatedCount(v)
	}
	if _, ok := clc.mutation.SkippedCount(); !ok {
		v := collectionlog.DefaultSkippedCount
		clc.mutation.SetSkippedCount(v)
	}
	if _, ok := clc.mutation.FailedCount(); !ok {
		v := collectionlog.DefaultFailedCount
		clc.mutation.SetFailedCount(v)
	}
	if _, ok := clc.mutation.APICallsMade(); !ok {
		v := collectionlog.DefaultAPICallsMade
		clc.mutation.SetAPICallsMade(v)
	}
	if _, ok := clc.mutation.ID(); !ok {
		v := collectionlog.DefaultID()
		clc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (clc *CollectionLogCreate) check() error {
	if _, ok := clc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CollectionLog.created_at"`)}
	}
	if _, ok := clc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CollectionLog.updated_at"`)}
	}
	if _, ok := clc.mutation.JobName(); !ok {
		return &ValidationError{Name: "job_name", err: errors.New(`ent: missing required field "CollectionLog.job_name"`)}
	}
	if v, ok := clc.mutation.JobName(); ok {
		if err := collectionlog.JobNameValidator(v); err != nil {
			return &ValidationError{Name: "job_name", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.job_name": %w`, err)}
		}
	}
	if _, ok := clc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CollectionLog.status"`)}
	}
	if v, ok := clc.mutation.Status(); ok {
		if err := collectionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.status": %w`, err)}
		}
	}
	if _, ok := clc.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "CollectionLog.started_at"`)}
	}
	if _, ok := clc.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "CollectionLog.duration_seconds"`)}
	}
	if v, ok := clc.mutation.DurationSeconds(); ok {
		if err := collectionlog.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.duration_seconds": %w`, err)}
		}
	}
	if _, ok := clc.mutation.TotalProcessed(); !ok {
		return &ValidationError{Name: "total_processed", err: errors.New(`ent: missing required field "CollectionLog.total_processed"`)}
	}
	if v, ok := clc.mutation.TotalProcessed(); ok {
		if err := collectionlog.TotalProcessedValidator(v); err != nil {
			return &ValidationError{Name: "total_processed", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.total_processed": %w`, err)}
		}
	}
	if _, ok := clc.mutation.NewCount(); !ok {
		return &ValidationError{Name: "new_count", err: errors.New(`ent: missing required field "CollectionLog.new_count"`)}
	}
	if v, ok := clc.mutation.NewCount(); ok {
		if err := collectionlog.NewCountValidator(v); err != nil {
			return &ValidationError{Name: "new_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.new_count": %w`, err)}
		}
	}
	if _, ok := clc.mutation.UpdatedCount(); !ok {
		return &ValidationError{Name: "updated_count", err: errors.New(`ent: missing required field "CollectionLog.updated_count"`)}
	}
	if v, ok := clc.mutation.UpdatedCount(); ok {
		if err := collectionlog.UpdatedCountValidator(v); err != nil {
			return &ValidationError{Name: "updated_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.updated_count": %w`, err)}
		}
	}
	if _, ok := clc.mutation.SkippedCount(); !ok {
		return &ValidationError{Name: "skipped_count", err: errors.New(`ent: missing required field "CollectionLog.skipped_count"`)}
	}
	if v, ok := clc.mutation.SkippedCount(); ok {
		if err := collectionlog.SkippedCountValidator(v); err != nil {
			return &ValidationError{Name: "skipped_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.skipped_count": %w`, err)}
		}
	}
	if _, ok := clc.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "CollectionLog.failed_count"`)}
	}
	if v, ok := clc.mutation.FailedCount(); ok {
		if err := collectionlog.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.failed_count": %w`, err)}
		}
	}
	if _, ok := clc.mutation.APICallsMade(); !ok {
		return &ValidationError{Name: "api_calls_made", err: errors.New(`ent: missing required field "CollectionLog.api_calls_made"`)}
	}
	if v, ok := clc.mutation.APICallsMade(); ok {
		if err := collectionlog.APICallsMadeValidator(v); err != nil {
			return &ValidationError{Name: "api_calls_made", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.api_calls_made": %w`, err)}
		}
	}
	return nil
}

func (clc *CollectionLogCreate) sqlSave(ctx context.Context) (*CollectionLog, error) {
	if err := clc.check(); err != nil {
		return nil, err
	}
	_node, _spec := clc.createSpec()
	if err := sqlgraph.CreateNode(ctx, clc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*ulid.ID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	clc.mutation.id = &_node.ID
	clc.mutation.done = true
	return _node, nil
}

func (clc *CollectionLogCreate) createSpec() (*CollectionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &CollectionLog{config: clc.config}
		_spec = sqlgraph.NewCreateSpec(collectionlog.Table, sqlgraph.NewFieldSpec(collectionlog.FieldID, field.TypeString))
	)
	_spec.OnConflict = clc.conflict
	if id, ok := clc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := clc.mutation.CreatedAt(); ok {
		_spec.SetField(collectionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := clc.mutation.UpdatedAt(); ok {
		_spec.SetField(collectionlog.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := clc.mutation.JobName(); ok {
		_spec.SetField(collectionlog.FieldJobName, field.TypeString, value)
		_node.JobName = value
	}
	if value, ok := clc.mutation.Status(); ok {
		_spec.SetField(collectionlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := clc.mutation.StartedAt(); ok {
		_spec.SetField(collectionlog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := clc.mutation.CompletedAt(); ok {
		_spec.SetField(collectionlog.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := clc.mutation.DurationSeconds(); ok {
		_spec.SetField(collectionlog.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if value, ok := clc.mutation.TotalProcessed(); ok {
		_spec.SetField(collectionlog.FieldTotalProcessed, field.TypeInt, value)
		_node.TotalProcessed = value
	}
	if value, ok := clc.mutation.NewCount(); ok {
		_spec.SetField(collectionlog.FieldNewCount, field.TypeInt, value)
		_node.NewCount = value
	}
	if value, ok := clc.mutation.UpdatedCount(); ok {
		_spec.SetField(collectionlog.FieldUpdatedCount, field.TypeInt, value)
		_node.UpdatedCount = value
	}
	if value, ok := clc.mutation.SkippedCount(); ok {
		_spec.SetField(collectionlog.FieldSkippedCount, field.TypeInt, value)
		_node.SkippedCount = value
	}
	if value, ok := clc.mutation.FailedCount(); ok {
		_spec.SetField(collectionlog.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := clc.mutation.APICallsMade(); ok {
		_spec.SetField(collectionlog.FieldAPICallsMade, field.TypeInt, value)
		_node.APICallsMade = value
	}
	if value, ok := clc.mutation.ErrorSummary(); ok {
		_spec.SetField(collectionlog.FieldErrorSummary, field.TypeString, value)
		_node.ErrorSummary = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollectionLog.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollectionLogUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (clc *CollectionLogCreate) OnConflict(opts ...sql.ConflictOption) *CollectionLogUpsertOne {
	clc.conflict = opts
	return &CollectionLogUpsertOne{
		create: clc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollectionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (clc *CollectionLogCreate) OnConflictColumns(columns ...string) *CollectionLogUpsertOne {
	clc.conflict = append(clc.conflict, sql.ConflictColumns(columns...))
	return &CollectionLogUpsertOne{
		create: clc,
	}
}

type (
	// CollectionLogUpsertOne is the builder for "upsert"-ing
	//  one CollectionLog node.
	CollectionLogUpsertOne struct {
		create *CollectionLogCreate
	}

	// CollectionLogUpsert is the "OnConflict" setter.
	CollectionLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CollectionLogUpsert) SetUpdatedAt(v time.Time) *CollectionLogUpsert {
	u.Set(collectionlog.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateUpdatedAt() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldUpdatedAt)
	return u
}

// SetJobName sets the "job_name" field.
func (u *CollectionLogUpsert) SetJobName(v string) *CollectionLogUpsert {
	u.Set(collectionlog.FieldJobName, v)
	return u
}

// UpdateJobName sets the "job_name" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateJobName() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldJobName)
	return u
}

// SetStatus sets the "status" field.
func (u *CollectionLogUpsert) SetStatus(v collectionlog.Status) *CollectionLogUpsert {
	u.Set(collectionlog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateStatus() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *CollectionLogUpsert) SetStartedAt(v time.Time) *CollectionLogUpsert {
	u.Set(collectionlog.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateStartedAt() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *CollectionLogUpsert) SetCompletedAt(v time.Time) *CollectionLogUpsert {
	u.Set(collectionlog.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateCompletedAt() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CollectionLogUpsert) ClearCompletedAt() *CollectionLogUpsert {
	u.SetNull(collectionlog.FieldCompletedAt)
	return u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *CollectionLogUpsert) SetDurationSeconds(v int) *CollectionLogUpsert {
	u.Set(collectionlog.FieldDurationSeconds, v)
	return u
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateDurationSeconds() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldDurationSeconds)
	return u
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *CollectionLogUpsert) AddDurationSeconds(v int) *CollectionLogUpsert {
	u.Add(collectionlog.FieldDurationSeconds, v)
	return u
}

// SetTotalProcessed sets the "total_processed" field.
func (u *CollectionLogUpsert) SetTotalProcessed(v int) *CollectionLogUpsert {
	u.Set(collectionlog.FieldTotalProcessed, v)
	return u
}

// UpdateTotalProcessed sets the "total_processed" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateTotalProcessed() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldTotalProcessed)
	return u
}

// AddTotalProcessed adds v to the "total_processed" field.
func (u *CollectionLogUpsert) AddTotalProcessed(v int) *CollectionLogUpsert {
	u.Add(collectionlog.FieldTotalProcessed, v)
	return u
}

// SetNewCount sets the "new_count" field.
func (u *CollectionLogUpsert) SetNewCount(v int) *CollectionLogUpsert {
	u.Set(collectionlog.FieldNewCount, v)
	return u
}

// UpdateNewCount sets the "new_count" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateNewCount() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldNewCount)
	return u
}

// AddNewCount adds v to the "new_count" field.
func (u *CollectionLogUpsert) AddNewCount(v int) *CollectionLogUpsert {
	u.Add(collectionlog.FieldNewCount, v)
	return u
}

// SetUpdatedCount sets the "updated_count" field.
func (u *CollectionLogUpsert) SetUpdatedCount(v int) *CollectionLogUpsert {
	u.Set(collectionlog.FieldUpdatedCount, v)
	return u
}

// UpdateUpdatedCount sets the "updated_count" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateUpdatedCount() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldUpdatedCount)
	return u
}

// AddUpdatedCount adds v to the "updated_count" field.
func (u *CollectionLogUpsert) AddUpdatedCount(v int) *CollectionLogUpsert {
	u.Add(collectionlog.FieldUpdatedCount, v)
	return u
}

// SetSkippedCount sets the "skipped_count" field.
func (u *CollectionLogUpsert) SetSkippedCount(v int) *CollectionLogUpsert {
	u.Set(collectionlog.FieldSkippedCount, v)
	return u
}

// UpdateSkippedCount sets the "skipped_count" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateSkippedCount() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldSkippedCount)
	return u
}

// AddSkippedCount adds v to the "skipped_count" field.
func (u *CollectionLogUpsert) AddSkippedCount(v int) *CollectionLogUpsert {
	u.Add(collectionlog.FieldSkippedCount, v)
	return u
}

// SetFailedCount sets the "failed_count" field.
func (u *CollectionLogUpsert) SetFailedCount(v int) *CollectionLogUpsert {
	u.Set(collectionlog.FieldFailedCount, v)
	return u
}

// UpdateFailedCount sets the "failed_count" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateFailedCount() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldFailedCount)
	return u
}

// AddFailedCount adds v to the "failed_count" field.
func (u *CollectionLogUpsert) AddFailedCount(v int) *CollectionLogUpsert {
	u.Add(collectionlog.FieldFailedCount, v)
	return u
}

// SetAPICallsMade sets the "api_calls_made" field.
func (u *CollectionLogUpsert) SetAPICallsMade(v int) *CollectionLogUpsert {
	u.Set(collectionlog.FieldAPICallsMade, v)
	return u
}

// UpdateAPICallsMade sets the "api_calls_made" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateAPICallsMade() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldAPICallsMade)
	return u
}

// AddAPICallsMade adds v to the "api_calls_made" field.
func (u *CollectionLogUpsert) AddAPICallsMade(v int) *CollectionLogUpsert {
	u.Add(collectionlog.FieldAPICallsMade, v)
	return u
}

// SetErrorSummary sets the "error_summary" field.
func (u *CollectionLogUpsert) SetErrorSummary(v string) *CollectionLogUpsert {
	u.Set(collectionlog.FieldErrorSummary, v)
	return u
}

// UpdateErrorSummary sets the "error_summary" field to the value that was provided on create.
func (u *CollectionLogUpsert) UpdateErrorSummary() *CollectionLogUpsert {
	u.SetExcluded(collectionlog.FieldErrorSummary)
	return u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (u *CollectionLogUpsert) ClearErrorSummary() *CollectionLogUpsert {
	u.SetNull(collectionlog.FieldErrorSummary)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CollectionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(collectionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CollectionLogUpsertOne) UpdateNewValues() *CollectionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(collectionlog.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(collectionlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollectionLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CollectionLogUpsertOne) Ignore() *CollectionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollectionLogUpsertOne) DoNothing() *CollectionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollectionLogCreate.OnConflict
// documentation for more info.
func (u *CollectionLogUpsertOne) Update(set func(*CollectionLogUpsert)) *CollectionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollectionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CollectionLogUpsertOne) SetUpdatedAt(v time.Time) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateUpdatedAt() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetJobName sets the "job_name" field.
func (u *CollectionLogUpsertOne) SetJobName(v string) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetJobName(v)
	})
}

// UpdateJobName sets the "job_name" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateJobName() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateJobName()
	})
}

// SetStatus sets the "status" field.
func (u *CollectionLogUpsertOne) SetStatus(v collectionlog.Status) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateStatus() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *CollectionLogUpsertOne) SetStartedAt(v time.Time) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateStartedAt() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CollectionLogUpsertOne) SetCompletedAt(v time.Time) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateCompletedAt() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CollectionLogUpsertOne) ClearCompletedAt() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *CollectionLogUpsertOne) SetDurationSeconds(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetDurationSeconds(v)
	})
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *CollectionLogUpsertOne) AddDurationSeconds(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddDurationSeconds(v)
	})
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateDurationSeconds() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateDurationSeconds()
	})
}

// SetTotalProcessed sets the "total_processed" field.
func (u *CollectionLogUpsertOne) SetTotalProcessed(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetTotalProcessed(v)
	})
}

// AddTotalProcessed adds v to the "total_processed" field.
func (u *CollectionLogUpsertOne) AddTotalProcessed(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddTotalProcessed(v)
	})
}

// UpdateTotalProcessed sets the "total_processed" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateTotalProcessed() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateTotalProcessed()
	})
}

// SetNewCount sets the "new_count" field.
func (u *CollectionLogUpsertOne) SetNewCount(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetNewCount(v)
	})
}

// AddNewCount adds v to the "new_count" field.
func (u *CollectionLogUpsertOne) AddNewCount(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddNewCount(v)
	})
}

// UpdateNewCount sets the "new_count" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateNewCount() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateNewCount()
	})
}

// SetUpdatedCount sets the "updated_count" field.
func (u *CollectionLogUpsertOne) SetUpdatedCount(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetUpdatedCount(v)
	})
}

// AddUpdatedCount adds v to the "updated_count" field.
func (u *CollectionLogUpsertOne) AddUpdatedCount(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddUpdatedCount(v)
	})
}

// UpdateUpdatedCount sets the "updated_count" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateUpdatedCount() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateUpdatedCount()
	})
}

// SetSkippedCount sets the "skipped_count" field.
func (u *CollectionLogUpsertOne) SetSkippedCount(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetSkippedCount(v)
	})
}

// AddSkippedCount adds v to the "skipped_count" field.
func (u *CollectionLogUpsertOne) AddSkippedCount(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddSkippedCount(v)
	})
}

// UpdateSkippedCount sets the "skipped_count" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateSkippedCount() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateSkippedCount()
	})
}

// SetFailedCount sets the "failed_count" field.
func (u *CollectionLogUpsertOne) SetFailedCount(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetFailedCount(v)
	})
}

// AddFailedCount adds v to the "failed_count" field.
func (u *CollectionLogUpsertOne) AddFailedCount(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddFailedCount(v)
	})
}

// UpdateFailedCount sets the "failed_count" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateFailedCount() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateFailedCount()
	})
}

// SetAPICallsMade sets the "api_calls_made" field.
func (u *CollectionLogUpsertOne) SetAPICallsMade(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetAPICallsMade(v)
	})
}

// AddAPICallsMade adds v to the "api_calls_made" field.
func (u *CollectionLogUpsertOne) AddAPICallsMade(v int) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddAPICallsMade(v)
	})
}

// UpdateAPICallsMade sets the "api_calls_made" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateAPICallsMade() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateAPICallsMade()
	})
}

// SetErrorSummary sets the "error_summary" field.
func (u *CollectionLogUpsertOne) SetErrorSummary(v string) *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetErrorSummary(v)
	})
}

// UpdateErrorSummary sets the "error_summary" field to the value that was provided on create.
func (u *CollectionLogUpsertOne) UpdateErrorSummary() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateErrorSummary()
	})
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (u *CollectionLogUpsertOne) ClearErrorSummary() *CollectionLogUpsertOne {
	return u.Update(func(s *CollectionLogUpsert) {
		s.ClearErrorSummary()
	})
}

// Exec executes the query.
func (u *CollectionLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CollectionLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollectionLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CollectionLogUpsertOne) ID(ctx context.Context) (id ulid.ID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CollectionLogUpsertOne.ID is not supported by MySQL driver. Use CollectionLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CollectionLogUpsertOne) IDX(ctx context.Context) ulid.ID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CollectionLogCreateBulk is the builder for creating many CollectionLog entities in bulk.
type CollectionLogCreateBulk struct {
	config
	err      error
	builders []*CollectionLogCreate
	conflict []sql.ConflictOption
}

// Save creates the CollectionLog entities in the database.
func (clcb *CollectionLogCreateBulk) Save(ctx context.Context) ([]*CollectionLog, error) {
	if clcb.err != nil {
		return nil, clcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(clcb.builders))
	nodes := make([]*CollectionLog, len(clcb.builders))
	mutators := make([]Mutator, len(clcb.builders))
	for i := range clcb.builders {
		func(i int, root context.Context) {
			builder := clcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollectionLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, clcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = clcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, clcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, clcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (clcb *CollectionLogCreateBulk) SaveX(ctx context.Context) []*CollectionLog {
	v, err := clcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (clcb *CollectionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := clcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (clcb *CollectionLogCreateBulk) ExecX(ctx context.Context) {
	if err := clcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollectionLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollectionLogUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (clcb *CollectionLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *CollectionLogUpsertBulk {
	clcb.conflict = opts
	return &CollectionLogUpsertBulk{
		create: clcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollectionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (clcb *CollectionLogCreateBulk) OnConflictColumns(columns ...string) *CollectionLogUpsertBulk {
	clcb.conflict = append(clcb.conflict, sql.ConflictColumns(columns...))
	return &CollectionLogUpsertBulk{
		create: clcb,
	}
}

// CollectionLogUpsertBulk is the builder for "upsert"-ing
// a bulk of CollectionLog nodes.
type CollectionLogUpsertBulk struct {
	create *CollectionLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CollectionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(collectionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CollectionLogUpsertBulk) UpdateNewValues() *CollectionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(collectionlog.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(collectionlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollectionLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CollectionLogUpsertBulk) Ignore() *CollectionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollectionLogUpsertBulk) DoNothing() *CollectionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollectionLogCreateBulk.OnConflict
// documentation for more info.
func (u *CollectionLogUpsertBulk) Update(set func(*CollectionLogUpsert)) *CollectionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollectionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CollectionLogUpsertBulk) SetUpdatedAt(v time.Time) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateUpdatedAt() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetJobName sets the "job_name" field.
func (u *CollectionLogUpsertBulk) SetJobName(v string) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetJobName(v)
	})
}

// UpdateJobName sets the "job_name" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateJobName() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateJobName()
	})
}

// SetStatus sets the "status" field.
func (u *CollectionLogUpsertBulk) SetStatus(v collectionlog.Status) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateStatus() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *CollectionLogUpsertBulk) SetStartedAt(v time.Time) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateStartedAt() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CollectionLogUpsertBulk) SetCompletedAt(v time.Time) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateCompletedAt() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CollectionLogUpsertBulk) ClearCompletedAt() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *CollectionLogUpsertBulk) SetDurationSeconds(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetDurationSeconds(v)
	})
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *CollectionLogUpsertBulk) AddDurationSeconds(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddDurationSeconds(v)
	})
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateDurationSeconds() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateDurationSeconds()
	})
}

// SetTotalProcessed sets the "total_processed" field.
func (u *CollectionLogUpsertBulk) SetTotalProcessed(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetTotalProcessed(v)
	})
}

// AddTotalProcessed adds v to the "total_processed" field.
func (u *CollectionLogUpsertBulk) AddTotalProcessed(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddTotalProcessed(v)
	})
}

// UpdateTotalProcessed sets the "total_processed" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateTotalProcessed() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateTotalProcessed()
	})
}

// SetNewCount sets the "new_count" field.
func (u *CollectionLogUpsertBulk) SetNewCount(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetNewCount(v)
	})
}

// AddNewCount adds v to the "new_count" field.
func (u *CollectionLogUpsertBulk) AddNewCount(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddNewCount(v)
	})
}

// UpdateNewCount sets the "new_count" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateNewCount() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateNewCount()
	})
}

// SetUpdatedCount sets the "updated_count" field.
func (u *CollectionLogUpsertBulk) SetUpdatedCount(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetUpdatedCount(v)
	})
}

// AddUpdatedCount adds v to the "updated_count" field.
func (u *CollectionLogUpsertBulk) AddUpdatedCount(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddUpdatedCount(v)
	})
}

// UpdateUpdatedCount sets the "updated_count" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateUpdatedCount() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateUpdatedCount()
	})
}

// SetSkippedCount sets the "skipped_count" field.
func (u *CollectionLogUpsertBulk) SetSkippedCount(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetSkippedCount(v)
	})
}

// AddSkippedCount adds v to the "skipped_count" field.
func (u *CollectionLogUpsertBulk) AddSkippedCount(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddSkippedCount(v)
	})
}

// UpdateSkippedCount sets the "skipped_count" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateSkippedCount() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateSkippedCount()
	})
}

// SetFailedCount sets the "failed_count" field.
func (u *CollectionLogUpsertBulk) SetFailedCount(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetFailedCount(v)
	})
}

// AddFailedCount adds v to the "failed_count" field.
func (u *CollectionLogUpsertBulk) AddFailedCount(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddFailedCount(v)
	})
}

// UpdateFailedCount sets the "failed_count" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateFailedCount() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateFailedCount()
	})
}

// SetAPICallsMade sets the "api_calls_made" field.
func (u *CollectionLogUpsertBulk) SetAPICallsMade(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetAPICallsMade(v)
	})
}

// AddAPICallsMade adds v to the "api_calls_made" field.
func (u *CollectionLogUpsertBulk) AddAPICallsMade(v int) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.AddAPICallsMade(v)
	})
}

// UpdateAPICallsMade sets the "api_calls_made" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateAPICallsMade() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateAPICallsMade()
	})
}

// SetErrorSummary sets the "error_summary" field.
func (u *CollectionLogUpsertBulk) SetErrorSummary(v string) *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.SetErrorSummary(v)
	})
}

// UpdateErrorSummary sets the "error_summary" field to the value that was provided on create.
func (u *CollectionLogUpsertBulk) UpdateErrorSummary() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.UpdateErrorSummary()
	})
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (u *CollectionLogUpsertBulk) ClearErrorSummary() *CollectionLogUpsertBulk {
	return u.Update(func(s *CollectionLogUpsert) {
		s.ClearErrorSummary()
	})
}

// Exec executes the query.
func (u *CollectionLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CollectionLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CollectionLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollectionLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
