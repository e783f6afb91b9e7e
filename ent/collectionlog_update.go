// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"kwlab-go-backend/ent/collectionlog"
	"kwlab-go-backend/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CollectionLogUpdate is the builder for updating CollectionLog entities.
type CollectionLogUpdate struct {
	config
	hooks    []Hook
	mutation *CollectionLogMutation
}

// Where appends a list predicates to the CollectionLogUpdate builder.
func (clu *CollectionLogUpdate) Where(ps ...predicate.CollectionLog) *CollectionLogUpdate {
	clu.mutation.Where(ps...)
	return clu
}

// SetUpdatedAt sets the "updated_at" field.
func (clu *CollectionLogUpdate) SetUpdatedAt(t time.Time) *CollectionLogUpdate {
	clu.mutation.SetUpdatedAt(t)
	return clu
}

// SetJobName sets the "job_name" field.
func (clu *CollectionLogUpdate) SetJobName(s string) *CollectionLogUpdate {
	clu.mutation.SetJobName(s)
	return clu
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableJobName(s *string) *CollectionLogUpdate {
	if s != nil {
		clu.SetJobName(*s)
	}
	return clu
}

// SetStatus sets the "status" field.
func (clu *CollectionLogUpdate) SetStatus(c collectionlog.Status) *CollectionLogUpdate {
	clu.mutation.SetStatus(c)
	return clu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableStatus(c *collectionlog.Status) *CollectionLogUpdate {
	if c != nil {
		clu.SetStatus(*c)
	}
	return clu
}

// SetStartedAt sets the "started_at" field.
func (clu *CollectionLogUpdate) SetStartedAt(t time.Time) *CollectionLogUpdate {
	clu.mutation.SetStartedAt(t)
	return clu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableStartedAt(t *time.Time) *CollectionLogUpdate {
	if t != nil {
		clu.SetStartedAt(*t)
	}
	return clu
}

// SetCompletedAt sets the "completed_at" field.
func (clu *CollectionLogUpdate) SetCompletedAt(t time.Time) *CollectionLogUpdate {
	clu.mutation.SetCompletedAt(t)
	return clu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableCompletedAt(t *time.Time) *CollectionLogUpdate {
	if t != nil {
		clu.SetCompletedAt(*t)
	}
	return clu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (clu *CollectionLogUpdate) ClearCompletedAt() *CollectionLogUpdate {
	clu.mutation.ClearCompletedAt()
	return clu
}

// SetDurationSeconds sets the "duration_seconds" field.
func (clu *CollectionLogUpdate) SetDurationSeconds(i int) *CollectionLogUpdate {
	clu.mutation.ResetDurationSeconds()
	clu.mutation.SetDurationSeconds(i)
	return clu
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableDurationSeconds(i *int) *CollectionLogUpdate {
	if i != nil {
		clu.SetDurationSeconds(*i)
	}
	return clu
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (clu *CollectionLogUpdate) AddDurationSeconds(i int) *CollectionLogUpdate {
	clu.mutation.AddDurationSeconds(i)
	return clu
}

// SetTotalProcessed sets the "total_processed" field.
func (clu *CollectionLogUpdate) SetTotalProcessed(i int) *CollectionLogUpdate {
	clu.mutation.ResetTotalProcessed()
	clu.mutation.SetTotalProcessed(i)
	return clu
}

// SetNillableTotalProcessed sets the "total_processed" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableTotalProcessed(i *int) *CollectionLogUpdate {
	if i != nil {
		clu.SetTotalProcessed(*i)
	}
	return clu
}

// AddTotalProcessed adds i to the "total_processed" field.
func (clu *CollectionLogUpdate) AddTotalProcessed(i int) *CollectionLogUpdate {
	clu.mutation.AddTotalProcessed(i)
	return clu
}

// SetNewCount sets the "new_count" field.
func (clu *CollectionLogUpdate) SetNewCount(i int) *CollectionLogUpdate {
	clu.mutation.ResetNewCount()
	clu.mutation.SetNewCount(i)
	return clu
}

// SetNillableNewCount sets the "new_count" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableNewCount(i *int) *CollectionLogUpdate {
	if i != nil {
		clu.SetNewCount(*i)
	}
	return clu
}

// AddNewCount adds i to the "new_count" field.
func (clu *CollectionLogUpdate) AddNewCount(i int) *CollectionLogUpdate {
	clu.mutation.AddNewCount(i)
	return clu
}

// SetUpdatedCount sets the "updated_count" field.
func (clu *CollectionLogUpdate) SetUpdatedCount(i int) *CollectionLogUpdate {
	clu.mutation.ResetUpdatedCount()
	clu.mutation.SetUpdatedCount(i)
	return clu
}

// SetNillableUpdatedCount sets the "updated_count" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableUpdatedCount(i *int) *CollectionLogUpdate {
	if i != nil {
		clu.SetUpdatedCount(*i)
	}
	return clu
}

// AddUpdatedCount adds i to the "updated_count" field.
func (clu *CollectionLogUpdate) AddUpdatedCount(i int) *CollectionLogUpdate {
	clu.mutation.AddUpdatedCount(i)
	return clu
}

// SetSkippedCount sets the "skipped_count" field.
func (clu *CollectionLogUpdate) SetSkippedCount(i int) *CollectionLogUpdate {
	clu.mutation.ResetSkippedCount()
	clu.mutation.SetSkippedCount(i)
	return clu
}

// SetNillableSkippedCount sets the "skipped_count" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableSkippedCount(i *int) *CollectionLogUpdate {
	if i != nil {
		clu.SetSkippedCount(*i)
	}
	return clu
}

// AddSkippedCount adds i to the "skipped_count" field.
func (clu *CollectionLogUpdate) AddSkippedCount(i int) *CollectionLogUpdate {
	clu.mutation.AddSkippedCount(i)
	return clu
}

// SetFailedCount sets the "failed_count" field.
func (clu *CollectionLogUpdate) SetFailedCount(i int) *CollectionLogUpdate {
	clu.mutation.ResetFailedCount()
	clu.mutation.SetFailedCount(i)
	return clu
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableFailedCount(i *int) *CollectionLogUpdate {
	if i != nil {
		clu.SetFailedCount(*i)
	}
	return clu
}

// AddFailedCount adds i to the "failed_count" field.
func (clu *CollectionLogUpdate) AddFailedCount(i int) *CollectionLogUpdate {
	clu.mutation.AddFailedCount(i)
	return clu
}

// SetAPICallsMade sets the "api_calls_made" field.
func (clu *CollectionLogUpdate) SetAPICallsMade(i int) *CollectionLogUpdate {
	clu.mutation.ResetAPICallsMade()
	clu.mutation.SetAPICallsMade(i)
	return clu
}

// SetNillableAPICallsMade sets the "api_calls_made" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableAPICallsMade(i *int) *CollectionLogUpdate {
	if i != nil {
		clu.SetAPICallsMade(*i)
	}
	return clu
}

// AddAPICallsMade adds i to the "api_calls_made" field.
func (clu *CollectionLogUpdate) AddAPICallsMade(i int) *CollectionLogUpdate {
	clu.mutation.AddAPICallsMade(i)
	return clu
}

// SetErrorSummary sets the "error_summary" field.
func (clu *CollectionLogUpdate) SetErrorSummary(s string) *CollectionLogUpdate {
	clu.mutation.SetErrorSummary(s)
	return clu
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (clu *CollectionLogUpdate) SetNillableErrorSummary(s *string) *CollectionLogUpdate {
	if s != nil {
		clu.SetErrorSummary(*s)
	}
	return clu
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (clu *CollectionLogUpdate) ClearErrorSummary() *CollectionLogUpdate {
	clu.mutation.ClearErrorSummary()
	return clu
}

// Mutation returns the CollectionLogMutation object of the builder.
func (clu *CollectionLogUpdate) Mutation() *CollectionLogMutation {
	return clu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (clu *CollectionLogUpdate) Save(ctx context.Context) (int, error) {
	clu.defaults()
	return withHooks(ctx, clu.sqlSave, clu.mutation, clu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (clu *CollectionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := clu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (clu *CollectionLogUpdate) Exec(ctx context.Context) error {
	_, err := clu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (clu *CollectionLogUpdate) ExecX(ctx context.Context) {
	if err := clu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (clu *CollectionLogUpdate) defaults() {
	if _, ok := clu.mutation.UpdatedAt(); !ok {
		v := collectionlog.UpdateDefaultUpdatedAt()
		clu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (clu *CollectionLogUpdate) check() error {
	if v, ok := clu.mutation.JobName(); ok {
		if err := collectionlog.JobNameValidator(v); err != nil {
			return &ValidationError{Name: "job_name", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.job_name": %w`, err)}
		}
	}
	if v, ok := clu.mutation.Status(); ok {
		if err := collectionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.status": %w`, err)}
		}
	}
	if v, ok := clu.mutation.DurationSeconds(); ok {
		if err := collectionlog.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.duration_seconds": %w`, err)}
		}
	}
	if v, ok := clu.mutation.TotalProcessed(); ok {
		if err := collectionlog.TotalProcessedValidator(v); err != nil {
			return &ValidationError{Name: "total_processed", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.total_processed": %w`, err)}
		}
	}
	if v, ok := clu.mutation.NewCount(); ok {
		if err := collectionlog.NewCountValidator(v); err != nil {
			return &ValidationError{Name: "new_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.new_count": %w`, err)}
		}
	}
	if v, ok := clu.mutation.UpdatedCount(); ok {
		if err := collectionlog.UpdatedCountValidator(v); err != nil {
			return &ValidationError{Name: "updated_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.updated_count": %w`, err)}
		}
	}
	if v, ok := clu.mutation.SkippedCount(); ok {
		if err := collectionlog.SkippedCountValidator(v); err != nil {
			return &ValidationError{Name: "skipped_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.skipped_count": %w`, err)}
		}
	}
	if v, ok := clu.mutation.FailedCount(); ok {
		if err := collectionlog.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.failed_count": %w`, err)}
		}
	}
	if v, ok := clu.mutation.APICallsMade(); ok {
		if err := collectionlog.APICallsMadeValidator(v); err != nil {
			return &ValidationError{Name: "api_calls_made", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.api_calls_made": %w`, err)}
		}
	}
	return nil
}

func (clu *CollectionLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := clu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(collectionlog.Table, collectionlog.Columns, sqlgraph.NewFieldSpec(collectionlog.FieldID, field.TypeString))
	if ps := clu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := clu.mutation.UpdatedAt(); ok {
		_spec.SetField(collectionlog.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := clu.mutation.JobName(); ok {
		_spec.SetField(collectionlog.FieldJobName, field.TypeString, value)
	}
	if value, ok := clu.mutation.Status(); ok {
		_spec.SetField(collectionlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := clu.mutation.StartedAt(); ok {
		_spec.SetField(collectionlog.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := clu.mutation.CompletedAt(); ok {
		_spec.SetField(collectionlog.FieldCompletedAt, field.TypeTime, value)
	}
	if clu.mutation.CompletedAtCleared() {
		_spec.ClearField(collectionlog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := clu.mutation.DurationSeconds(); ok {
		_spec.SetField(collectionlog.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := clu.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(collectionlog.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := clu.mutation.TotalProcessed(); ok {
		_spec.SetField(collectionlog.FieldTotalProcessed, field.TypeInt, value)
	}
	if value, ok := clu.mutation.AddedTotalProcessed(); ok {
		_spec.AddField(collectionlog.FieldTotalProcessed, field.TypeInt, value)
	}
	if value, ok := clu.mutation.NewCount(); ok {
		_spec.SetField(collectionlog.FieldNewCount, field.TypeInt, value)
	}
	if value, ok := clu.mutation.AddedNewCount(); ok {
		_spec.AddField(collectionlog.FieldNewCount, field.TypeInt, value)
	}
	if value, ok := clu.mutation.UpdatedCount(); ok {
		_spec.SetField(collectionlog.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := clu.mutation.AddedUpdatedCount(); ok {
		_spec.AddField(collectionlog.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := clu.mutation.SkippedCount(); ok {
		_spec.SetField(collectionlog.FieldSkippedCount, field.TypeInt, value)
	}
	if value, ok := clu.mutation.AddedSkippedCount(); ok {
		_spec.AddField(collectionlog.FieldSkippedCount, field.TypeInt, value)
	}
	if value, ok := clu.mutation.FailedCount(); ok {
		_spec.SetField(collectionlog.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := clu.mutation.AddedFailedCount(); ok {
		_spec.AddField(collectionlog.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := clu.mutation.APICallsMade(); ok {
		_spec.SetField(collectionlog.FieldAPICallsMade, field.TypeInt, value)
	}
	if value, ok := clu.mutation.AddedAPICallsMade(); ok {
		_spec.AddField(collectionlog.FieldAPICallsMade, field.TypeInt, value)
	}
	if value, ok := clu.mutation.ErrorSummary(); ok {
		_spec.SetField(collectionlog.FieldErrorSummary, field.TypeString, value)
	}
	if clu.mutation.ErrorSummaryCleared() {
		_spec.ClearField(collectionlog.FieldErrorSummary, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, clu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	clu.mutation.done = true
	return n, nil
}

// CollectionLogUpdateOne is the builder for updating a single CollectionLog entity.
type CollectionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CollectionLogMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (cluo *CollectionLogUpdateOne) SetUpdatedAt(t time.Time) *CollectionLogUpdateOne {
	cluo.mutation.SetUpdatedAt(t)
	return cluo
}

// SetJobName sets the "job_name" field.
func (cluo *CollectionLogUpdateOne) SetJobName(s string) *CollectionLogUpdateOne {
	cluo.mutation.SetJobName(s)
	return cluo
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableJobName(s *string) *CollectionLogUpdateOne {
	if s != nil {
		cluo.SetJobName(*s)
	}
	return cluo
}

// SetStatus sets the "status" field.
func (cluo *CollectionLogUpdateOne) SetStatus(c collectionlog.Status) *CollectionLogUpdateOne {
	cluo.mutation.SetStatus(c)
	return cluo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableStatus(c *collectionlog.Status) *CollectionLogUpdateOne {
	if c != nil {
		cluo.SetStatus(*c)
	}
	return cluo
}

// SetStartedAt sets the "started_at" field.
func (cluo *CollectionLogUpdateOne) SetStartedAt(t time.Time) *CollectionLogUpdateOne {
	cluo.mutation.SetStartedAt(t)
	return cluo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableStartedAt(t *time.Time) *CollectionLogUpdateOne {
	if t != nil {
		cluo.SetStartedAt(*t)
	}
	return cluo
}

// SetCompletedAt sets the "completed_at" field.
func (cluo *CollectionLogUpdateOne) SetCompletedAt(t time.Time) *CollectionLogUpdateOne {
	cluo.mutation.SetCompletedAt(t)
	return cluo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableCompletedAt(t *time.Time) *CollectionLogUpdateOne {
	if t != nil {
		cluo.SetCompletedAt(*t)
	}
	return cluo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (cluo *CollectionLogUpdateOne) ClearCompletedAt() *CollectionLogUpdateOne {
	cluo.mutation.ClearCompletedAt()
	return cluo
}

// SetDurationSeconds sets the "duration_seconds" field.
func (cluo *CollectionLogUpdateOne) SetDurationSeconds(i int) *CollectionLogUpdateOne {
	cluo.mutation.ResetDurationSeconds()
	cluo.mutation.SetDurationSeconds(i)
	return cluo
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableDurationSeconds(i *int) *CollectionLogUpdateOne {
	if i != nil {
		cluo.SetDurationSeconds(*i)
	}
	return cluo
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (cluo *CollectionLogUpdateOne) AddDurationSeconds(i int) *CollectionLogUpdateOne {
	cluo.mutation.AddDurationSeconds(i)
	return cluo
}

// SetTotalProcessed sets the "total_processed" field.
func (cluo *CollectionLogUpdateOne) SetTotalProcessed(i int) *CollectionLogUpdateOne {
	cluo.mutation.ResetTotalProcessed()
	cluo.mutation.SetTotalProcessed(i)
	return cluo
}

// SetNillableTotalProcessed sets the "total_processed" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableTotalProcessed(i *int) *CollectionLogUpdateOne {
	if i != nil {
		cluo.SetTotalProcessed(*i)
	}
	return cluo
}

// AddTotalProcessed adds i to the "total_processed" field.
func (cluo *CollectionLogUpdateOne) AddTotalProcessed(i int) *CollectionLogUpdateOne {
	cluo.mutation.AddTotalProcessed(i)
	return cluo
}

// SetNewCount sets the "new_count" field.
func (cluo *CollectionLogUpdateOne) SetNewCount(i int) *CollectionLogUpdateOne {
	cluo.mutation.ResetNewCount()
	cluo.mutation.SetNewCount(i)
	return cluo
}

// SetNillableNewCount sets the "new_count" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableNewCount(i *int) *CollectionLogUpdateOne {
	if i != nil {
		cluo.SetNewCount(*i)
	}
	return cluo
}

// AddNewCount adds i to the "new_count" field.
func (cluo *CollectionLogUpdateOne) AddNewCount(i int) *CollectionLogUpdateOne {
	cluo.mutation.AddNewCount(i)
	return cluo
}

// SetUpdatedCount sets the "updated_count" field.
func (cluo *CollectionLogUpdateOne) SetUpdatedCount(i int) *CollectionLogUpdateOne {
	cluo.mutation.ResetUpdatedCount()
	cluo.mutation.SetUpdatedCount(i)
	return cluo
}

// SetNillableUpdatedCount sets the "updated_count" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableUpdatedCount(i *int) *CollectionLogUpdateOne {
	if i != nil {
		cluo.SetUpdatedCount(*i)
	}
	return cluo
}

// AddUpdatedCount adds i to the "updated_count" field.
func (cluo *CollectionLogUpdateOne) AddUpdatedCount(i int) *CollectionLogUpdateOne {
	cluo.mutation.AddUpdatedCount(i)
	return cluo
}

// SetSkippedCount sets the "skipped_count" field.
func (cluo *CollectionLogUpdateOne) SetSkippedCount(i int) *CollectionLogUpdateOne {
	cluo.mutation.ResetSkippedCount()
	cluo.mutation.SetSkippedCount(i)
	return cluo
}

// SetNillableSkippedCount sets the "skipped_count" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableSkippedCount(i *int) *CollectionLogUpdateOne {
	if i != nil {
		cluo.SetSkippedCount(*i)
	}
	return cluo
}

// AddSkippedCount adds i to the "skipped_count" field.
func (cluo *CollectionLogUpdateOne) AddSkippedCount(i int) *CollectionLogUpdateOne {
	cluo.mutation.AddSkippedCount(i)
	return cluo
}

// SetFailedCount sets the "failed_count" field.
func (cluo *CollectionLogUpdateOne) SetFailedCount(i int) *CollectionLogUpdateOne {
	cluo.mutation.ResetFailedCount()
	cluo.mutation.SetFailedCount(i)
	return cluo
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableFailedCount(i *int) *CollectionLogUpdateOne {
	if i != nil {
		cluo.SetFailedCount(*i)
	}
	return cluo
}

// AddFailedCount adds i to the "failed_count" field.
func (cluo *CollectionLogUpdateOne) AddFailedCount(i int) *CollectionLogUpdateOne {
	cluo.mutation.AddFailedCount(i)
	return cluo
}

// SetAPICallsMade sets the "api_calls_made" field.
func (cluo *CollectionLogUpdateOne) SetAPICallsMade(i int) *CollectionLogUpdateOne {
	cluo.mutation.ResetAPICallsMade()
	cluo.mutation.SetAPICallsMade(i)
	return cluo
}

// SetNillableAPICallsMade sets the "api_calls_made" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableAPICallsMade(i *int) *CollectionLogUpdateOne {
	if i != nil {
		cluo.SetAPICallsMade(*i)
	}
	return cluo
}

// AddAPICallsMade adds i to the "api_calls_made" field.
func (cluo *CollectionLogUpdateOne) AddAPICallsMade(i int) *CollectionLogUpdateOne {
	cluo.mutation.AddAPICallsMade(i)
	return cluo
}

// SetErrorSummary sets the "error_summary" field.
func (cluo *CollectionLogUpdateOne) SetErrorSummary(s string) *CollectionLogUpdateOne {
	cluo.mutation.SetErrorSummary(s)
	return cluo
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (cluo *CollectionLogUpdateOne) SetNillableErrorSummary(s *string) *CollectionLogUpdateOne {
	if s != nil {
		cluo.SetErrorSummary(*s)
	}
	return cluo
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (cluo *CollectionLogUpdateOne) ClearErrorSummary() *CollectionLogUpdateOne {
	cluo.mutation.ClearErrorSummary()
	return cluo
}

// Mutation returns the CollectionLogMutation object of the builder.
func (cluo *CollectionLogUpdateOne) Mutation() *CollectionLogMutation {
	return cluo.mutation
}

// Where appends a list predicates to the CollectionLogUpdate builder.
func (cluo *CollectionLogUpdateOne) Where(ps ...predicate.CollectionLog) *CollectionLogUpdateOne {
	cluo.mutation.Where(ps...)
	return cluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cluo *CollectionLogUpdateOne) Select(field string, fields ...string) *CollectionLogUpdateOne {
	cluo.fields = append([]string{field}, fields...)
	return cluo
}

// Save executes the query and returns the updated CollectionLog entity.
func (cluo *CollectionLogUpdateOne) Save(ctx context.Context) (*CollectionLog, error) {
	cluo.defaults()
	return withHooks(ctx, cluo.sqlSave, cluo.mutation, cluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cluo *CollectionLogUpdateOne) SaveX(ctx context.Context) *CollectionLog {
	node, err := cluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cluo *CollectionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := cluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cluo *CollectionLogUpdateOne) ExecX(ctx context.Context) {
	if err := cluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cluo *CollectionLogUpdateOne) defaults() {
	if _, ok := cluo.mutation.UpdatedAt(); !ok {
		v := collectionlog.UpdateDefaultUpdatedAt()
		cluo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cluo *CollectionLogUpdateOne) check() error {
	if v, ok := cluo.mutation.JobName(); ok {
		if err := collectionlog.JobNameValidator(v); err != nil {
			return &ValidationError{Name: "job_name", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.job_name": %w`, err)}
		}
	}
	if v, ok := cluo.mutation.Status(); ok {
		if err := collectionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.status": %w`, err)}
		}
	}
	if v, ok := cluo.mutation.DurationSeconds(); ok {
		if err := collectionlog.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.duration_seconds": %w`, err)}
		}
	}
	if v, ok := cluo.mutation.TotalProcessed(); ok {
		if err := collectionlog.TotalProcessedValidator(v); err != nil {
			return &ValidationError{Name: "total_processed", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.total_processed": %w`, err)}
		}
	}
	if v, ok := cluo.mutation.NewCount(); ok {
		if err := collectionlog.NewCountValidator(v); err != nil {
			return &ValidationError{Name: "new_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.new_count": %w`, err)}
		}
	}
	if v, ok := cluo.mutation.UpdatedCount(); ok {
		if err := collectionlog.UpdatedCountValidator(v); err != nil {
			return &ValidationError{Name: "updated_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.updated_count": %w`, err)}
		}
	}
	if v, ok := cluo.mutation.SkippedCount(); ok {
		if err := collectionlog.SkippedCountValidator(v); err != nil {
			return &ValidationError{Name: "skipped_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.skipped_count": %w`, err)}
		}
	}
	if v, ok := cluo.mutation.FailedCount(); ok {
		if err := collectionlog.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.failed_count": %w`, err)}
		}
	}
	if v, ok := cluo.mutation.APICallsMade(); ok {
		if err := collectionlog.APICallsMadeValidator(v); err != nil {
			return &ValidationError{Name: "api_calls_made", err: fmt.Errorf(`ent: validator failed for field "CollectionLog.api_calls_made": %w`, err)}
		}
	}
	return nil
}

func (cluo *CollectionLogUpdateOne) sqlSave(ctx context.Context) (_node *CollectionLog, err error) {
	if err := cluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collectionlog.Table, collectionlog.Columns, sqlgraph.NewFieldSpec(collectionlog.FieldID, field.TypeString))
	id, ok := cluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CollectionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collectionlog.FieldID)
		for _, f := range fields {
			if !collectionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != collectionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cluo.mutation.UpdatedAt(); ok {
		_spec.SetField(collectionlog.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cluo.mutation.JobName(); ok {
		_spec.SetField(collectionlog.FieldJobName, field.TypeString, value)
	}
	if value, ok := cluo.mutation.Status(); ok {
		_spec.SetField(collectionlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := cluo.mutation.StartedAt(); ok {
		_spec.SetField(collectionlog.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := cluo.mutation.CompletedAt(); ok {
		_spec.SetField(collectionlog.FieldCompletedAt, field.TypeTime, value)
	}
	if cluo.mutation.CompletedAtCleared() {
		_spec.ClearField(collectionlog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := cluo.mutation.DurationSeconds(); ok {
		_spec.SetField(collectionlog.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(collectionlog.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.TotalProcessed(); ok {
		_spec.SetField(collectionlog.FieldTotalProcessed, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.AddedTotalProcessed(); ok {
		_spec.AddField(collectionlog.FieldTotalProcessed, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.NewCount(); ok {
		_spec.SetField(collectionlog.FieldNewCount, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.AddedNewCount(); ok {
		_spec.AddField(collectionlog.FieldNewCount, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.UpdatedCount(); ok {
		_spec.SetField(collectionlog.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.AddedUpdatedCount(); ok {
		_spec.AddField(collectionlog.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.SkippedCount(); ok {
		_spec.SetField(collectionlog.FieldSkippedCount, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.AddedSkippedCount(); ok {
		_spec.AddField(collectionlog.FieldSkippedCount, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.FailedCount(); ok {
		_spec.SetField(collectionlog.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.AddedFailedCount(); ok {
		_spec.AddField(collectionlog.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.APICallsMade(); ok {
		_spec.SetField(collectionlog.FieldAPICallsMade, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.AddedAPICallsMade(); ok {
		_spec.AddField(collectionlog.FieldAPICallsMade, field.TypeInt, value)
	}
	if value, ok := cluo.mutation.ErrorSummary(); ok {
		_spec.SetField(collectionlog.FieldErrorSummary, field.TypeString, value)
	}
	if cluo.mutation.ErrorSummaryCleared() {
		_spec.ClearField(collectionlog.FieldErrorSummary, field.TypeString)
	}
	_node = &CollectionLog{config: cluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cluo.mutation.done = true
	return _node, nil
}
