// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"kwlab-go-backend/ent/cronjobconfig"
	"kwlab-go-backend/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CronJobConfigUpdate is the builder for updating CronJobConfig entities.
type CronJobConfigUpdate struct {
	config
	hooks    []Hook
	mutation *CronJobConfigMutation
}

// Where appends a list predicates to the CronJobConfigUpdate builder.
func (cjcu *CronJobConfigUpdate) Where(ps ...predicate.CronJobConfig) *CronJobConfigUpdate {
	cjcu.mutation.Where(ps...)
	return cjcu
}

// SetUpdatedAt sets the "updated_at" field.
func (cjcu *CronJobConfigUpdate) SetUpdatedAt(t time.Time) *CronJobConfigUpdate {
	cjcu.mutation.SetUpdatedAt(t)
	return cjcu
}

// SetJobName sets the "job_name" field.
func (cjcu *CronJobConfigUpdate) SetJobName(s string) *CronJobConfigUpdate {
	cjcu.mutation.SetJobName(s)
	return cjcu
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (cjcu *CronJobConfigUpdate) SetNillableJobName(s *string) *CronJobConfigUpdate {
	if s != nil {
		cjcu.SetJobName(*s)
	}
	return cjcu
}

// SetJobType sets the "job_type" field.
func (cjcu *CronJobConfigUpdate) SetJobType(ct cronjobconfig.JobType) *CronJobConfigUpdate {
	cjcu.mutation.SetJobType(ct)
	return cjcu
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (cjcu *CronJobConfigUpdate) SetNillableJobType(ct *cronjobconfig.JobType) *CronJobConfigUpdate {
	if ct != nil {
		cjcu.SetJobType(*ct)
	}
	return cjcu
}

// SetSchedule sets the "schedule" field.
func (cjcu *CronJobConfigUpdate) SetSchedule(s string) *CronJobConfigUpdate {
	cjcu.mutation.SetSchedule(s)
	return cjcu
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (cjcu *CronJobConfigUpdate) SetNillableSchedule(s *string) *CronJobConfigUpdate {
	if s != nil {
		cjcu.SetSchedule(*s)
	}
	return cjcu
}

// SetEnabled sets the "enabled" field.
func (cjcu *CronJobConfigUpdate) SetEnabled(b bool) *CronJobConfigUpdate {
	cjcu.mutation.SetEnabled(b)
	return cjcu
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (cjcu *CronJobConfigUpdate) SetNillableEnabled(b *bool) *CronJobConfigUpdate {
	if b != nil {
		cjcu.SetEnabled(*b)
	}
	return cjcu
}

// SetBatchSize sets the "batch_size" field.
func (cjcu *CronJobConfigUpdate) SetBatchSize(i int) *CronJobConfigUpdate {
	cjcu.mutation.ResetBatchSize()
	cjcu.mutation.SetBatchSize(i)
	return cjcu
}

// SetNillableBatchSize sets the "batch_size" field if the given value is not nil.
func (cjcu *CronJobConfigUpdate) SetNillableBatchSize(i *int) *CronJobConfigUpdate {
	if i != nil {
		cjcu.SetBatchSize(*i)
	}
	return cjcu
}

// AddBatchSize adds i to the "batch_size" field.
func (cjcu *CronJobConfigUpdate) AddBatchSize(i int) *CronJobConfigUpdate {
	cjcu.mutation.AddBatchSize(i)
	return cjcu
}

// SetConcurrency sets the "concurrency" field.
func (cjcu *CronJobConfigUpdate) SetConcurrency(i int) *CronJobConfigUpdate {
	cjcu.mutation.ResetConcurrency()
	cjcu.mutation.SetConcurrency(i)
	return cjcu
}

// SetNillableConcurrency sets the "concurrency" field if the given value is not nil.
func (cjcu *CronJobConfigUpdate) SetNillableConcurrency(i *int) *CronJobConfigUpdate {
	if i != nil {
		cjcu.SetConcurrency(*i)
	}
	return cjcu
}

// AddConcurrency adds i to the "concurrency" field.
func (cjcu *CronJobConfigUpdate) AddConcurrency(i int) *CronJobConfigUpdate {
	cjcu.mutation.AddConcurrency(i)
	return cjcu
}

// SetAdminEmail sets the "admin_email" field.
func (cjcu *CronJobConfigUpdate) SetAdminEmail(s string) *CronJobConfigUpdate {
	cjcu.mutation.SetAdminEmail(s)
	return cjcu
}

// SetNillableAdminEmail sets the "admin_email" field if the given value is not nil.
func (cjcu *CronJobConfigUpdate) SetNillableAdminEmail(s *string) *CronJobConfigUpdate {
	if s != nil {
		cjcu.SetAdminEmail(*s)
	}
	return cjcu
}

// SetRespectQuota sets the "respect_quota" field.
func (cjcu *CronJobConfigUpdate) SetRespectQuota(b bool) *CronJobConfigUpdate {
	cjcu.mutation.SetRespectQuota(b)
	return cjcu
}

// SetNillableRespectQuota sets the "respect_quota" field if the given value is not nil.
func (cjcu *CronJobConfigUpdate) SetNillableRespectQuota(b *bool) *CronJobConfigUpdate {
	if b != nil {
		cjcu.SetRespectQuota(*b)
	}
	return cjcu
}

// SetLastRunAt sets the "last_run_at" field.
func (cjcu *CronJobConfigUpdate) SetLastRunAt(t time.Time) *CronJobConfigUpdate {
	cjcu.mutation.SetLastRunAt(t)
	return cjcu
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (cjcu *CronJobConfigUpdate) SetNillableLastRunAt(t *time.Time) *CronJobConfigUpdate {
	if t != nil {
		cjcu.SetLastRunAt(*t)
	}
	return cjcu
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (cjcu *CronJobConfigUpdate) ClearLastRunAt() *CronJobConfigUpdate {
	cjcu.mutation.ClearLastRunAt()
	return cjcu
}

// SetNextRunAt sets the "next_run_at" field.
func (cjcu *CronJobConfigUpdate) SetNextRunAt(t time.Time) *CronJobConfigUpdate {
	cjcu.mutation.SetNextRunAt(t)
	return cjcu
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (cjcu *CronJobConfigUpdate) SetNillableNextRunAt(t *time.Time) *CronJobConfigUpdate {
	if t != nil {
		cjcu.SetNextRunAt(*t)
	}
	return cjcu
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (cjcu *CronJobConfigUpdate) ClearNextRunAt() *CronJobConfigUpdate {
	cjcu.mutation.ClearNextRunAt()
	return cjcu
}

// Mutation returns the CronJobConfigMutation object of the builder.
func (cjcu *CronJobConfigUpdate) Mutation() *CronJobConfigMutation {
	return cjcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cjcu *CronJobConfigUpdate) Save(ctx context.Context) (int, error) {
	cjcu.defaults()
	return withHooks(ctx, cjcu.sqlSave, cjcu.mutation, cjcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cjcu *CronJobConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := cjcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cjcu *CronJobConfigUpdate) Exec(ctx context.Context) error {
	_, err := cjcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cjcu *CronJobConfigUpdate) ExecX(ctx context.Context) {
	if err := cjcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cjcu *CronJobConfigUpdate) defaults() {
	if _, ok := cjcu.mutation.UpdatedAt(); !ok {
		v := cronjobconfig.UpdateDefaultUpdatedAt()
		cjcu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cjcu *CronJobConfigUpdate) check() error {
	if v, ok := cjcu.mutation.JobName(); ok {
		if err := cronjobconfig.JobNameValidator(v); err != nil {
			return &ValidationError{Name: "job_name", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.job_name": %w`, err)}
		}
	}
	if v, ok := cjcu.mutation.JobType(); ok {
		if err := cronjobconfig.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.job_type": %w`, err)}
		}
	}
	if v, ok := cjcu.mutation.Schedule(); ok {
		if err := cronjobconfig.ScheduleValidator(v); err != nil {
			return &ValidationError{Name: "schedule", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.schedule": %w`, err)}
		}
	}
	if v, ok := cjcu.mutation.BatchSize(); ok {
		if err := cronjobconfig.BatchSizeValidator(v); err != nil {
			return &ValidationError{Name: "batch_size", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.batch_size": %w`, err)}
		}
	}
	if v, ok := cjcu.mutation.Concurrency(); ok {
		if err := cronjobconfig.ConcurrencyValidator(v); err != nil {
			return &ValidationError{Name: "concurrency", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.concurrency": %w`, err)}
		}
	}
	return nil
}

func (cjcu *CronJobConfigUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cjcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(cronjobconfig.Table, cronjobconfig.Columns, sqlgraph.NewFieldSpec(cronjobconfig.FieldID, field.TypeString))
	if ps := cjcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cjcu.mutation.UpdatedAt(); ok {
		_spec.SetField(cronjobconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cjcu.mutation.JobName(); ok {
		_spec.SetField(cronjobconfig.FieldJobName, field.TypeString, value)
	}
	if value, ok := cjcu.mutation.JobType(); ok {
		_spec.SetField(cronjobconfig.FieldJobType, field.TypeEnum, value)
	}
	if value, ok := cjcu.mutation.Schedule(); ok {
		_spec.SetField(cronjobconfig.FieldSchedule, field.TypeString, value)
	}
	if value, ok := cjcu.mutation.Enabled(); ok {
		_spec.SetField(cronjobconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := cjcu.mutation.BatchSize(); ok {
		_spec.SetField(cronjobconfig.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := cjcu.mutation.AddedBatchSize(); ok {
		_spec.AddField(cronjobconfig.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := cjcu.mutation.Concurrency(); ok {
		_spec.SetField(cronjobconfig.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := cjcu.mutation.AddedConcurrency(); ok {
		_spec.AddField(cronjobconfig.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := cjcu.mutation.AdminEmail(); ok {
		_spec.SetField(cronjobconfig.FieldAdminEmail, field.TypeString, value)
	}
	if value, ok := cjcu.mutation.RespectQuota(); ok {
		_spec.SetField(cronjobconfig.FieldRespectQuota, field.TypeBool, value)
	}
	if value, ok := cjcu.mutation.LastRunAt(); ok {
		_spec.SetField(cronjobconfig.FieldLastRunAt, field.TypeTime, value)
	}
	if cjcu.mutation.LastRunAtCleared() {
		_spec.ClearField(cronjobconfig.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := cjcu.mutation.NextRunAt(); ok {
		_spec.SetField(cronjobconfig.FieldNextRunAt, field.TypeTime, value)
	}
	if cjcu.mutation.NextRunAtCleared() {
		_spec.ClearField(cronjobconfig.FieldNextRunAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cjcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cronjobconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cjcu.mutation.done = true
	return n, nil
}

// CronJobConfigUpdateOne is the builder for updating a single CronJobConfig entity.
type CronJobConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CronJobConfigMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (cjcuo *CronJobConfigUpdateOne) SetUpdatedAt(t time.Time) *CronJobConfigUpdateOne {
	cjcuo.mutation.SetUpdatedAt(t)
	return cjcuo
}

// SetJobName sets the "job_name" field.
func (cjcuo *CronJobConfigUpdateOne) SetJobName(s string) *CronJobConfigUpdateOne {
	cjcuo.mutation.SetJobName(s)
	return cjcuo
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (cjcuo *CronJobConfigUpdateOne) SetNillableJobName(s *string) *CronJobConfigUpdateOne {
	if s != nil {
		cjcuo.SetJobName(*s)
	}
	return cjcuo
}

// SetJobType sets the "job_type" field.
func (cjcuo *CronJobConfigUpdateOne) SetJobType(ct cronjobconfig.JobType) *CronJobConfigUpdateOne {
	cjcuo.mutation.SetJobType(ct)
	return cjcuo
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (cjcuo *CronJobConfigUpdateOne) SetNillableJobType(ct *cronjobconfig.JobType) *CronJobConfigUpdateOne {
	if ct != nil {
		cjcuo.SetJobType(*ct)
	}
	return cjcuo
}

// SetSchedule sets the "schedule" field.
func (cjcuo *CronJobConfigUpdateOne) SetSchedule(s string) *CronJobConfigUpdateOne {
	cjcuo.mutation.SetSchedule(s)
	return cjcuo
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (cjcuo *CronJobConfigUpdateOne) SetNillableSchedule(s *string) *CronJobConfigUpdateOne {
	if s != nil {
		cjcuo.SetSchedule(*s)
	}
	return cjcuo
}

// SetEnabled sets the "enabled" field.
func (cjcuo *CronJobConfigUpdateOne) SetEnabled(b bool) *CronJobConfigUpdateOne {
	cjcuo.mutation.SetEnabled(b)
	return cjcuo
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (cjcuo *CronJobConfigUpdateOne) SetNillableEnabled(b *bool) *CronJobConfigUpdateOne {
	if b != nil {
		cjcuo.SetEnabled(*b)
	}
	return cjcuo
}

// SetBatchSize sets the "batch_size" field.
func (cjcuo *CronJobConfigUpdateOne) SetBatchSize(i int) *CronJobConfigUpdateOne {
	cjcuo.mutation.ResetBatchSize()
	cjcuo.mutation.SetBatchSize(i)
	return cjcuo
}

// SetNillableBatchSize sets the "batch_size" field if the given value is not nil.
func (cjcuo *CronJobConfigUpdateOne) SetNillableBatchSize(i *int) *CronJobConfigUpdateOne {
	if i != nil {
		cjcuo.SetBatchSize(*i)
	}
	return cjcuo
}

// AddBatchSize adds i to the "batch_size" field.
func (cjcuo *CronJobConfigUpdateOne) AddBatchSize(i int) *CronJobConfigUpdateOne {
	cjcuo.mutation.AddBatchSize(i)
	return cjcuo
}

// SetConcurrency sets the "concurrency" field.
func (cjcuo *CronJobConfigUpdateOne) SetConcurrency(i int) *CronJobConfigUpdateOne {
	cjcuo.mutation.ResetConcurrency()
	cjcuo.mutation.SetConcurrency(i)
	return cjcuo
}

// SetNillableConcurrency sets the "concurrency" field if the given value is not nil.
func (cjcuo *CronJobConfigUpdateOne) SetNillableConcurrency(i *int) *CronJobConfigUpdateOne {
	if i != nil {
		cjcuo.SetConcurrency(*i)
	}
	return cjcuo
}

// AddConcurrency adds i to the "concurrency" field.
func (cjcuo *CronJobConfigUpdateOne) AddConcurrency(i int) *CronJobConfigUpdateOne {
	cjcuo.mutation.AddConcurrency(i)
	return cjcuo
}

// SetAdminEmail sets the "admin_email" field.
func (cjcuo *CronJobConfigUpdateOne) SetAdminEmail(s string) *CronJobConfigUpdateOne {
	cjcuo.mutation.SetAdminEmail(s)
	return cjcuo
}

// SetNillableAdminEmail sets the "admin_email" field if the given value is not nil.
func (cjcuo *CronJobConfigUpdateOne) SetNillableAdminEmail(s *string) *CronJobConfigUpdateOne {
	if s != nil {
		cjcuo.SetAdminEmail(*s)
	}
	return cjcuo
}

// SetRespectQuota sets the "respect_quota" field.
func (cjcuo *CronJobConfigUpdateOne) SetRespectQuota(b bool) *CronJobConfigUpdateOne {
	cjcuo.mutation.SetRespectQuota(b)
	return cjcuo
}

// SetNillableRespectQuota sets the "respect_quota" field if the given value is not nil.
func (cjcuo *CronJobConfigUpdateOne) SetNillableRespectQuota(b *bool) *CronJobConfigUpdateOne {
	if b != nil {
		cjcuo.SetRespectQuota(*b)
	}
	return cjcuo
}

// SetLastRunAt sets the "last_run_at" field.
func (cjcuo *CronJobConfigUpdateOne) SetLastRunAt(t time.Time) *CronJobConfigUpdateOne {
	cjcuo.mutation.SetLastRunAt(t)
	return cjcuo
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (cjcuo *CronJobConfigUpdateOne) SetNillableLastRunAt(t *time.Time) *CronJobConfigUpdateOne {
	if t != nil {
		cjcuo.SetLastRunAt(*t)
	}
	return cjcuo
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (cjcuo *CronJobConfigUpdateOne) ClearLastRunAt() *CronJobConfigUpdateOne {
	cjcuo.mutation.ClearLastRunAt()
	return cjcuo
}

// SetNextRunAt sets the "next_run_at" field.
func (cjcuo *CronJobConfigUpdateOne) SetNextRunAt(t time.Time) *CronJobConfigUpdateOne {
	cjcuo.mutation.SetNextRunAt(t)
	return cjcuo
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (cjcuo *CronJobConfigUpdateOne) SetNillableNextRunAt(t *time.Time) *CronJobConfigUpdateOne {
	if t != nil {
		cjcuo.SetNextRunAt(*t)
	}
	return cjcuo
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (cjcuo *CronJobConfigUpdateOne) ClearNextRunAt() *CronJobConfigUpdateOne {
	cjcuo.mutation.ClearNextRunAt()
	return cjcuo
}

// Mutation returns the CronJobConfigMutation object of the builder.
func (cjcuo *CronJobConfigUpdateOne) Mutation() *CronJobConfigMutation {
	return cjcuo.mutation
}

// Where appends a list predicates to the CronJobConfigUpdate builder.
func (cjcuo *CronJobConfigUpdateOne) Where(ps ...predicate.CronJobConfig) *CronJobConfigUpdateOne {
	cjcuo.mutation.Where(ps...)
	return cjcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cjcuo *CronJobConfigUpdateOne) Select(field string, fields ...string) *CronJobConfigUpdateOne {
	cjcuo.fields = append([]string{field}, fields...)
	return cjcuo
}

// Save executes the query and returns the updated CronJobConfig entity.
func (cjcuo *CronJobConfigUpdateOne) Save(ctx context.Context) (*CronJobConfig, error) {
	cjcuo.defaults()
	return withHooks(ctx, cjcuo.sqlSave, cjcuo.mutation, cjcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cjcuo *CronJobConfigUpdateOne) SaveX(ctx context.Context) *CronJobConfig {
	node, err := cjcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cjcuo *CronJobConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := cjcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cjcuo *CronJobConfigUpdateOne) ExecX(ctx context.Context) {
	if err := cjcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cjcuo *CronJobConfigUpdateOne) defaults() {
	if _, ok := cjcuo.mutation.UpdatedAt(); !ok {
		v := cronjobconfig.UpdateDefaultUpdatedAt()
		cjcuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cjcuo *CronJobConfigUpdateOne) check() error {
	if v, ok := cjcuo.mutation.JobName(); ok {
		if err := cronjobconfig.JobNameValidator(v); err != nil {
			return &ValidationError{Name: "job_name", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.job_name": %w`, err)}
		}
	}
	if v, ok := cjcuo.mutation.JobType(); ok {
		if err := cronjobconfig.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.job_type": %w`, err)}
		}
	}
	if v, ok := cjcuo.mutation.Schedule(); ok {
		if err := cronjobconfig.ScheduleValidator(v); err != nil {
			return &ValidationError{Name: "schedule", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.schedule": %w`, err)}
		}
	}
	if v, ok := cjcuo.mutation.BatchSize(); ok {
		if err := cronjobconfig.BatchSizeValidator(v); err != nil {
			return &ValidationError{Name: "batch_size", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.batch_size": %w`, err)}
		}
	}
	if v, ok := cjcuo.mutation.Concurrency(); ok {
		if err := cronjobconfig.ConcurrencyValidator(v); err != nil {
			return &ValidationError{Name: "concurrency", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.concurrency": %w`, err)}
		}
	}
	return nil
}

func (cjcuo *CronJobConfigUpdateOne) sqlSave(ctx context.Context) (_node *CronJobConfig, err error) {
	if err := cjcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cronjobconfig.Table, cronjobconfig.Columns, sqlgraph.NewFieldSpec(cronjobconfig.FieldID, field.TypeString))
	id, ok := cjcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CronJobConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cjcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cronjobconfig.FieldID)
		for _, f := range fields {
			if !cronjobconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cronjobconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cjcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cjcuo.mutation.UpdatedAt(); ok {
		_spec.SetField(cronjobconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cjcuo.mutation.JobName(); ok {
		_spec.SetField(cronjobconfig.FieldJobName, field.TypeString, value)
	}
	if value, ok := cjcuo.mutation.JobType(); ok {
		_spec.SetField(cronjobconfig.FieldJobType, field.TypeEnum, value)
	}
	if value, ok := cjcuo.mutation.Schedule(); ok {
		_spec.SetField(cronjobconfig.FieldSchedule, field.TypeString, value)
	}
	if value, ok := cjcuo.mutation.Enabled(); ok {
		_spec.SetField(cronjobconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := cjcuo.mutation.BatchSize(); ok {
		_spec.SetField(cronjobconfig.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := cjcuo.mutation.AddedBatchSize(); ok {
		_spec.AddField(cronjobconfig.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := cjcuo.mutation.Concurrency(); ok {
		_spec.SetField(cronjobconfig.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := cjcuo.mutation.AddedConcurrency(); ok {
		_spec.AddField(cronjobconfig.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := cjcuo.mutation.AdminEmail(); ok {
		_spec.SetField(cronjobconfig.FieldAdminEmail, field.TypeString, value)
	}
	if value, ok := cjcuo.mutation.RespectQuota(); ok {
		_spec.SetField(cronjobconfig.FieldRespectQuota, field.TypeBool, value)
	}
	if value, ok := cjcuo.mutation.LastRunAt(); ok {
		_spec.SetField(cronjobconfig.FieldLastRunAt, field.TypeTime, value)
	}
	if cjcuo.mutation.LastRunAtCleared() {
		_spec.ClearField(cronjobconfig.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := cjcuo.mutation.NextRunAt(); ok {
		_spec.SetField(cronjobconfig.FieldNextRunAt, field.TypeTime, value)
	}
	if cjcuo.mutation.NextRunAtCleared() {
		_spec.ClearField(cronjobconfig.FieldNextRunAt, field.TypeTime)
	}
	_node = &CronJobConfig{config: cjcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cjcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cronjobconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cjcuo.mutation.done = true
	return _node, nil
}
