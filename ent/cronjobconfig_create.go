// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"kwlab-go-backend/ent/cronjobconfig"
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CronJobConfigCreate is the builder for creating a CronJobConfig entity.
type CronJobConfigCreate struct {
	config
	mutation *CronJobConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (cjcc *CronJobConfigCreate) SetCreatedAt(t time.Time) *CronJobConfigCreate {
	cjcc.mutation.SetCreatedAt(t)
	return cjcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cjcc *CronJobConfigCreate) SetNillableCreatedAt(t *time.Time) *CronJobConfigCreate {
	if t != nil {
		cjcc.SetCreatedAt(*t)
	}
	return cjcc
}

// SetUpdatedAt sets the "updated_at" field.
func (cjcc *CronJobConfigCreate) SetUpdatedAt(t time.Time) *CronJobConfigCreate {
	cjcc.mutation.SetUpdatedAt(t)
	return cjcc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cjcc *CronJobConfigCreate) SetNillableUpdatedAt(t *time.Time) *CronJobConfigCreate {
	if t != nil {
		cjcc.SetUpdatedAt(*t)
	}
	return cjcc
}

// SetJobName sets the "job_name" field.
func (cjcc *CronJobConfigCreate) SetJobName(s string) *CronJobConfigCreate {
	cjcc.mutation.SetJobName(s)
	return cjcc
}

// SetJobType sets the "job_type" field.
func (cjcc *CronJobConfigCreate) SetJobType(ct cronjobconfig.JobType) *CronJobConfigCreate {
	cjcc.mutation.SetJobType(ct)
	return cjcc
}

// SetSchedule sets the "schedule" field.
func (cjcc *CronJobConfigCreate) SetSchedule(s string) *CronJobConfigCreate {
	cjcc.mutation.SetSchedule(s)
	return cjcc
}

// SetEnabled sets the "enabled" field.
func (cjcc *CronJobConfigCreate) SetEnabled(b bool) *CronJobConfigCreate {
	cjcc.mutation.SetEnabled(b)
	return cjcc
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (cjcc *CronJobConfigCreate) SetNillableEnabled(b *bool) *CronJobConfigCreate {
	if b != nil {
		cjcc.SetEnabled(*b)
	}
	return cjcc
}

// SetBatchSize sets the "batch_size" field.
func (cjcc *CronJobConfigCreate) SetBatchSize(i int) *CronJobConfigCreate {
	cjcc.mutation.SetBatchSize(i)
	return cjcc
}

// SetNillableBatchSize sets the "batch_size" field if the given value is not nil.
func (cjcc *CronJobConfigCreate) SetNillableBatchSize(i *int) *CronJobConfigCreate {
	if i != nil {
		cjcc.SetBatchSize(*i)
	}
	return cjcc
}

// SetConcurrency sets the "concurrency" field.
func (cjcc *CronJobConfigCreate) SetConcurrency(i int) *CronJobConfigCreate {
	cjcc.mutation.SetConcurrency(i)
	return cjcc
}

// SetNillableConcurrency sets the "concurrency" field if the given value is not nil.
func (cjcc *CronJobConfigCreate) SetNillableConcurrency(i *int) *CronJobConfigCreate {
	if i != nil {
		cjcc.SetConcurrency(*i)
	}
	return cjcc
}

// SetAdminEmail sets the "admin_email" field.
func (cjcc *CronJobConfigCreate) SetAdminEmail(s string) *CronJobConfigCreate {
	cjcc.mutation.SetAdminEmail(s)
	return cjcc
}

// SetNillableAdminEmail sets the "admin_email" field if the given value is not nil.
func (cjcc *CronJobConfigCreate) SetNillableAdminEmail(s *string) *CronJobConfigCreate {
	if s != nil {
		cjcc.SetAdminEmail(*s)
	}
	return cjcc
}

// SetRespectQuota sets the "respect_quota" field.
func (cjcc *CronJobConfigCreate) SetRespectQuota(b bool) *CronJobConfigCreate {
	cjcc.mutation.SetRespectQuota(b)
	return cjcc
}

// SetNillableRespectQuota sets the "respect_quota" field if the given value is not nil.
func (cjcc *CronJobConfigCreate) SetNillableRespectQuota(b *bool) *CronJobConfigCreate {
	if b != nil {
		cjcc.SetRespectQuota(*b)
	}
	return cjcc
}

// SetLastRunAt sets the "last_run_at" field.
func (cjcc *CronJobConfigCreate) SetLastRunAt(t time.Time) *CronJobConfigCreate {
	cjcc.mutation.SetLastRunAt(t)
	return cjcc
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (cjcc *CronJobConfigCreate) SetNillableLastRunAt(t *time.Time) *CronJobConfigCreate {
	if t != nil {
		cjcc.SetLastRunAt(*t)
	}
	return cjcc
}

// SetNextRunAt sets the "next_run_at" field.
func (cjcc *CronJobConfigCreate) SetNextRunAt(t time.Time) *CronJobConfigCreate {
	cjcc.mutation.SetNextRunAt(t)
	return cjcc
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (cjcc *CronJobConfigCreate) SetNillableNextRunAt(t *time.Time) *CronJobConfigCreate {
	if t != nil {
		cjcc.SetNextRunAt(*t)
	}
	return cjcc
}

// SetID sets the "id" field.
func (cjcc *CronJobConfigCreate) SetID(u ulid.ID) *CronJobConfigCreate {
	cjcc.mutation.SetID(u)
	return cjcc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (cjcc *CronJobConfigCreate) SetNillableID(u *ulid.ID) *CronJobConfigCreate {
	if u != nil {
		cjcc.SetID(*u)
	}
	return cjcc
}

// Mutation returns the CronJobConfigMutation object of the builder.
func (cjcc *CronJobConfigCreate) Mutation() *CronJobConfigMutation {
	return cjcc.mutation
}

// Save creates the CronJobConfig in the database.
func (cjcc *CronJobConfigCreate) Save(ctx context.Context) (*CronJobConfig, error) {
	cjcc.defaults()
	return withHooks(ctx, cjcc.sqlSave, cjcc.mutation, cjcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cjcc *CronJobConfigCreate) SaveX(ctx context.Context) *CronJobConfig {
	v, err := cjcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cjcc *CronJobConfigCreate) Exec(ctx context.Context) error {
	_, err := cjcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cjcc *CronJobConfigCreate) ExecX(ctx context.Context) {
	if err := cjcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cjcc *CronJobConfigCreate) defaults() {
	if _, ok := cjcc.mutation.CreatedAt(); !ok {
		v := cronjobconfig.DefaultCreatedAt()
		cjcc.mutation.SetCreatedAt(v)
	}
	if _, ok := cjcc.mutation.UpdatedAt(); !ok {
		v := cronjobconfig.DefaultUpdatedAt()
		cjcc.mutation.SetUpdatedAt(v)
	}
	if _, ok := cjcc.mutation.Enabled(); !ok {
		v := cronjobconfig.DefaultEnabled
		cjcc.mutation.SetEnabled(v)
	}
	if _, ok := cjcc.mutation.BatchSize(); !ok {
		v := cronjobconfig.DefaultBatchSize
		cjcc.mutation.SetBatchSize(v)
	}
	if _, ok := cjcc.mutation.Concurrency(); !ok {
		v := cronjobconfig.DefaultConcurrency
		cjcc.mutation.SetConcurrency(v)
	}
	if _, ok := cjcc.mutation.AdminEmail(); !ok {
		v := cronjobconfig.DefaultAdminEmail
		cjcc.mutation.SetAdminEmail(v)
	}
	if _, ok := cjcc.mutation.RespectQuota(); !ok {
		v := cronjobconfig.DefaultRespectQuota
		cjcc.mutation.SetRespectQuota(v)
	}
	if _, ok := cjcc.mutation.ID(); !ok {
		v := cronjobconfig.DefaultID()
		cjcc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cjcc *CronJobConfigCreate) check() error {
	if _, ok := cjcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CronJobConfig.created_at"`)}
	}
	if _, ok := cjcc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CronJobConfig.updated_at"`)}
	}
	if _, ok := cjcc.mutation.JobName(); !ok {
		return &ValidationError{Name: "job_name", err: errors.New(`ent: missing required field "CronJobConfig.job_name"`)}
	}
	if v, ok := cjcc.mutation.JobName(); ok {
		if err := cronjobconfig.JobNameValidator(v); err != nil {
			return &ValidationError{Name: "job_name", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.job_name": %w`, err)}
		}
	}
	if _, ok := cjcc.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "CronJobConfig.job_type"`)}
	}
	if v, ok := cjcc.mutation.JobType(); ok {
		if err := cronjobconfig.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.job_type": %w`, err)}
		}
	}
	if _, ok := cjcc.mutation.Schedule(); !ok {
		return &ValidationError{Name: "schedule", err: errors.New(`ent: missing required field "CronJobConfig.schedule"`)}
	}
	if v, ok := cjcc.mutation.Schedule(); ok {
		if err := cronjobconfig.ScheduleValidator(v); err != nil {
			return &ValidationError{Name: "schedule", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.schedule": %w`, err)}
		}
	}
	if _, ok := cjcc.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "CronJobConfig.enabled"`)}
	}
	if _, ok := cjcc.mutation.BatchSize(); !ok {
		return &ValidationError{Name: "batch_size", err: errors.New(`ent: missing required field "CronJobConfig.batch_size"`)}
	}
	if v, ok := cjcc.mutation.BatchSize(); ok {
		if err := cronjobconfig.BatchSizeValidator(v); err != nil {
			return &ValidationError{Name: "batch_size", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.batch_size": %w`, err)}
		}
	}
	if _, ok := cjcc.mutation.Concurrency(); !ok {
		return &ValidationError{Name: "concurrency", err: errors.New(`ent: missing required field "CronJobConfig.concurrency"`)}
	}
	if v, ok := cjcc.mutation.Concurrency(); ok {
		if err := cronjobconfig.ConcurrencyValidator(v); err != nil {
			return &ValidationError{Name: "concurrency", err: fmt.Errorf(`ent: validator failed for field "CronJobConfig.concurrency": %w`, err)}
		}
	}
	if _, ok := cjcc.mutation.AdminEmail(); !ok {
		return &ValidationError{Name: "admin_email", err: errors.New(`ent: missing required field "CronJobConfig.admin_email"`)}
	}
	if _, ok := cjcc.mutation.RespectQuota(); !ok {
		return &ValidationError{Name: "respect_quota", err: errors.New(`ent: missing required field "CronJobConfig.respect_quota"`)}
	}
	return nil
}

func (cjcc *CronJobConfigCreate) sqlSave(ctx context.Context) (*CronJobConfig, error) {
	if err := cjcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cjcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cjcc.driver, _spec); err != nil {
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
	cjcc.mutation.id = &_node.ID
	cjcc.mutation.done = true
	return _node, nil
}

func (cjcc *CronJobConfigCreate) createSpec() (*CronJobConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &CronJobConfig{config: cjcc.config}
		_spec = sqlgraph.NewCreateSpec(cronjobconfig.Table, sqlgraph.NewFieldSpec(cronjobconfig.FieldID, field.TypeString))
	)
	_spec.OnConflict = cjcc.conflict
	if id, ok := cjcc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := cjcc.mutation.CreatedAt(); ok {
		_spec.SetField(cronjobconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cjcc.mutation.UpdatedAt(); ok {
		_spec.SetField(cronjobconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := cjcc.mutation.JobName(); ok {
		_spec.SetField(cronjobconfig.FieldJobName, field.TypeString, value)
		_node.JobName = value
	}
	if value, ok := cjcc.mutation.JobType(); ok {
		_spec.SetField(cronjobconfig.FieldJobType, field.TypeEnum, value)
		_node.JobType = value
	}
	if value, ok := cjcc.mutation.Schedule(); ok {
		_spec.SetField(cronjobconfig.FieldSchedule, field.TypeString, value)
		_node.Schedule = value
	}
	if value, ok := cjcc.mutation.Enabled(); ok {
		_spec.SetField(cronjobconfig.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := cjcc.mutation.BatchSize(); ok {
		_spec.SetField(cronjobconfig.FieldBatchSize, field.TypeInt, value)
		_node.BatchSize = value
	}
	if value, ok := cjcc.mutation.Concurrency(); ok {
		_spec.SetField(cronjobconfig.FieldConcurrency, field.TypeInt, value)
		_node.Concurrency = value
	}
	if value, ok := cjcc.mutation.AdminEmail(); ok {
		_spec.SetField(cronjobconfig.FieldAdminEmail, field.TypeString, value)
		_node.AdminEmail = value
	}
	if value, ok := cjcc.mutation.RespectQuota(); ok {
		_spec.SetField(cronjobconfig.FieldRespectQuota, field.TypeBool, value)
		_node.RespectQuota = value
	}
	if value, ok := cjcc.mutation.LastRunAt(); ok {
		_spec.SetField(cronjobconfig.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := cjcc.mutation.NextRunAt(); ok {
		_spec.SetField(cronjobconfig.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CronJobConfig.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CronJobConfigUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (cjcc *CronJobConfigCreate) OnConflict(opts ...sql.ConflictOption) *CronJobConfigUpsertOne {
	cjcc.conflict = opts
	return &CronJobConfigUpsertOne{
		create: cjcc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CronJobConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cjcc *CronJobConfigCreate) OnConflictColumns(columns ...string) *CronJobConfigUpsertOne {
	cjcc.conflict = append(cjcc.conflict, sql.ConflictColumns(columns...))
	return &CronJobConfigUpsertOne{
		create: cjcc,
	}
}

type (
	// CronJobConfigUpsertOne is the builder for "upsert"-ing
	//  one CronJobConfig node.
	CronJobConfigUpsertOne struct {
		create *CronJobConfigCreate
	}

	// CronJobConfigUpsert is the "OnConflict" setter.
	CronJobConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CronJobConfigUpsert) SetUpdatedAt(v time.Time) *CronJobConfigUpsert {
	u.Set(cronjobconfig.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CronJobConfigUpsert) UpdateUpdatedAt() *CronJobConfigUpsert {
	u.SetExcluded(cronjobconfig.FieldUpdatedAt)
	return u
}

// SetJobName sets the "job_name" field.
func (u *CronJobConfigUpsert) SetJobName(v string) *CronJobConfigUpsert {
	u.Set(cronjobconfig.FieldJobName, v)
	return u
}

// UpdateJobName sets the "job_name" field to the value that was provided on create.
func (u *CronJobConfigUpsert) UpdateJobName() *CronJobConfigUpsert {
	u.SetExcluded(cronjobconfig.FieldJobName)
	return u
}

// SetJobType sets the "job_type" field.
func (u *CronJobConfigUpsert) SetJobType(v cronjobconfig.JobType) *CronJobConfigUpsert {
	u.Set(cronjobconfig.FieldJobType, v)
	return u
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *CronJobConfigUpsert) UpdateJobType() *CronJobConfigUpsert {
	u.SetExcluded(cronjobconfig.FieldJobType)
	return u
}

// SetSchedule sets the "schedule" field.
func (u *CronJobConfigUpsert) SetSchedule(v string) *CronJobConfigUpsert {
	u.Set(cronjobconfig.FieldSchedule, v)
	return u
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *CronJobConfigUpsert) UpdateSchedule() *CronJobConfigUpsert {
	u.SetExcluded(cronjobconfig.FieldSchedule)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *CronJobConfigUpsert) SetEnabled(v bool) *CronJobConfigUpsert {
	u.Set(cronjobconfig.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *CronJobConfigUpsert) UpdateEnabled() *CronJobConfigUpsert {
	u.SetExcluded(cronjobconfig.FieldEnabled)
	return u
}

// SetBatchSize sets the "batch_size" field.
func (u *CronJobConfigUpsert) SetBatchSize(v int) *CronJobConfigUpsert {
	u.Set(cronjobconfig.FieldBatchSize, v)
	return u
}

// UpdateBatchSize sets the "batch_size" field to the value that was provided on create.
func (u *CronJobConfigUpsert) UpdateBatchSize() *CronJobConfigUpsert {
	u.SetExcluded(cronjobconfig.FieldBatchSize)
	return u
}

// AddBatchSize adds v to the "batch_size" field.
func (u *CronJobConfigUpsert) AddBatchSize(v int) *CronJobConfigUpsert {
	u.Add(cronjobconfig.FieldBatchSize, v)
	return u
}

// SetConcurrency sets the "concurrency" field.
func (u *CronJobConfigUpsert) SetConcurrency(v int) *CronJobConfigUpsert {
	u.Set(cronjobconfig.FieldConcurrency, v)
	return u
}

// UpdateConcurrency sets the "concurrency" field to the value that was provided on create.
func (u *CronJobConfigUpsert) UpdateConcurrency() *CronJobConfigUpsert {
	u.SetExcluded(cronjobconfig.FieldConcurrency)
	return u
}

// AddConcurrency adds v to the "concurrency" field.
func (u *CronJobConfigUpsert) AddConcurrency(v int) *CronJobConfigUpsert {
	u.Add(cronjobconfig.FieldConcurrency, v)
	return u
}

// SetAdminEmail sets the "admin_email" field.
func (u *CronJobConfigUpsert) SetAdminEmail(v string) *CronJobConfigUpsert {
	u.Set(cronjobconfig.FieldAdminEmail, v)
	return u
}

// UpdateAdminEmail sets the "admin_email" field to the value that was provided on create.
func (u *CronJobConfigUpsert) UpdateAdminEmail() *CronJobConfigUpsert {
	u.SetExcluded(cronjobconfig.FieldAdminEmail)
	return u
}

// SetRespectQuota sets the "respect_quota" field.
func (u *CronJobConfigUpsert) SetRespectQuota(v bool) *CronJobConfigUpsert {
	u.Set(cronjobconfig.FieldRespectQuota, v)
	return u
}

// UpdateRespectQuota sets the "respect_quota" field to the value that was provided on create.
func (u *CronJobConfigUpsert) UpdateRespectQuota() *CronJobConfigUpsert {
	u.SetExcluded(cronjobconfig.FieldRespectQuota)
	return u
}

// SetLastRunAt sets the "last_run_at" field.
func (u *CronJobConfigUpsert) SetLastRunAt(v time.Time) *CronJobConfigUpsert {
	u.Set(cronjobconfig.FieldLastRunAt, v)
	return u
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *CronJobConfigUpsert) UpdateLastRunAt() *CronJobConfigUpsert {
	u.SetExcluded(cronjobconfig.FieldLastRunAt)
	return u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *CronJobConfigUpsert) ClearLastRunAt() *CronJobConfigUpsert {
	u.SetNull(cronjobconfig.FieldLastRunAt)
	return u
}

// SetNextRunAt sets the "next_run_at" field.
func (u *CronJobConfigUpsert) SetNextRunAt(v time.Time) *CronJobConfigUpsert {
	u.Set(cronjobconfig.FieldNextRunAt, v)
	return u
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *CronJobConfigUpsert) UpdateNextRunAt() *CronJobConfigUpsert {
	u.SetExcluded(cronjobconfig.FieldNextRunAt)
	return u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *CronJobConfigUpsert) ClearNextRunAt() *CronJobConfigUpsert {
	u.SetNull(cronjobconfig.FieldNextRunAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CronJobConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cronjobconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CronJobConfigUpsertOne) UpdateNewValues() *CronJobConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(cronjobconfig.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(cronjobconfig.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CronJobConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CronJobConfigUpsertOne) Ignore() *CronJobConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CronJobConfigUpsertOne) DoNothing() *CronJobConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CronJobConfigCreate.OnConflict
// documentation for more info.
func (u *CronJobConfigUpsertOne) Update(set func(*CronJobConfigUpsert)) *CronJobConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CronJobConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CronJobConfigUpsertOne) SetUpdatedAt(v time.Time) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CronJobConfigUpsertOne) UpdateUpdatedAt() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetJobName sets the "job_name" field.
func (u *CronJobConfigUpsertOne) SetJobName(v string) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetJobName(v)
	})
}

// UpdateJobName sets the "job_name" field to the value that was provided on create.
func (u *CronJobConfigUpsertOne) UpdateJobName() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateJobName()
	})
}

// SetJobType sets the "job_type" field.
func (u *CronJobConfigUpsertOne) SetJobType(v cronjobconfig.JobType) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetJobType(v)
	})
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *CronJobConfigUpsertOne) UpdateJobType() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateJobType()
	})
}

// SetSchedule sets the "schedule" field.
func (u *CronJobConfigUpsertOne) SetSchedule(v string) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *CronJobConfigUpsertOne) UpdateSchedule() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateSchedule()
	})
}

// SetEnabled sets the "enabled" field.
func (u *CronJobConfigUpsertOne) SetEnabled(v bool) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *CronJobConfigUpsertOne) UpdateEnabled() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateEnabled()
	})
}

// SetBatchSize sets the "batch_size" field.
func (u *CronJobConfigUpsertOne) SetBatchSize(v int) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetBatchSize(v)
	})
}

// AddBatchSize adds v to the "batch_size" field.
func (u *CronJobConfigUpsertOne) AddBatchSize(v int) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.AddBatchSize(v)
	})
}

// UpdateBatchSize sets the "batch_size" field to the value that was provided on create.
func (u *CronJobConfigUpsertOne) UpdateBatchSize() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateBatchSize()
	})
}

// SetConcurrency sets the "concurrency" field.
func (u *CronJobConfigUpsertOne) SetConcurrency(v int) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetConcurrency(v)
	})
}

// AddConcurrency adds v to the "concurrency" field.
func (u *CronJobConfigUpsertOne) AddConcurrency(v int) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.AddConcurrency(v)
	})
}

// UpdateConcurrency sets the "concurrency" field to the value that was provided on create.
func (u *CronJobConfigUpsertOne) UpdateConcurrency() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateConcurrency()
	})
}

// SetAdminEmail sets the "admin_email" field.
func (u *CronJobConfigUpsertOne) SetAdminEmail(v string) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetAdminEmail(v)
	})
}

// UpdateAdminEmail sets the "admin_email" field to the value that was provided on create.
func (u *CronJobConfigUpsertOne) UpdateAdminEmail() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateAdminEmail()
	})
}

// SetRespectQuota sets the "respect_quota" field.
func (u *CronJobConfigUpsertOne) SetRespectQuota(v bool) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetRespectQuota(v)
	})
}

// UpdateRespectQuota sets the "respect_quota" field to the value that was provided on create.
func (u *CronJobConfigUpsertOne) UpdateRespectQuota() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateRespectQuota()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *CronJobConfigUpsertOne) SetLastRunAt(v time.Time) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *CronJobConfigUpsertOne) UpdateLastRunAt() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *CronJobConfigUpsertOne) ClearLastRunAt() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.ClearLastRunAt()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *CronJobConfigUpsertOne) SetNextRunAt(v time.Time) *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *CronJobConfigUpsertOne) UpdateNextRunAt() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *CronJobConfigUpsertOne) ClearNextRunAt() *CronJobConfigUpsertOne {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.ClearNextRunAt()
	})
}

// Exec executes the query.
func (u *CronJobConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CronJobConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CronJobConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CronJobConfigUpsertOne) ID(ctx context.Context) (id ulid.ID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CronJobConfigUpsertOne.ID is not supported by MySQL driver. Use CronJobConfigUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CronJobConfigUpsertOne) IDX(ctx context.Context) ulid.ID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CronJobConfigCreateBulk is the builder for creating many CronJobConfig entities in bulk.
type CronJobConfigCreateBulk struct {
	config
	err      error
	builders []*CronJobConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the CronJobConfig entities in the database.
func (cjccb *CronJobConfigCreateBulk) Save(ctx context.Context) ([]*CronJobConfig, error) {
	if cjccb.err != nil {
		return nil, cjccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cjccb.builders))
	nodes := make([]*CronJobConfig, len(cjccb.builders))
	mutators := make([]Mutator, len(cjccb.builders))
	for i := range cjccb.builders {
		func(i int, root context.Context) {
			builder := cjccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CronJobConfigMutation)
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
					_, err = mutators[i+1].Mutate(root, cjccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = cjccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cjccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cjccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cjccb *CronJobConfigCreateBulk) SaveX(ctx context.Context) []*CronJobConfig {
	v, err := cjccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cjccb *CronJobConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := cjccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cjccb *CronJobConfigCreateBulk) ExecX(ctx context.Context) {
	if err := cjccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CronJobConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CronJobConfigUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (cjccb *CronJobConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *CronJobConfigUpsertBulk {
	cjccb.conflict = opts
	return &CronJobConfigUpsertBulk{
		create: cjccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CronJobConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cjccb *CronJobConfigCreateBulk) OnConflictColumns(columns ...string) *CronJobConfigUpsertBulk {
	cjccb.conflict = append(cjccb.conflict, sql.ConflictColumns(columns...))
	return &CronJobConfigUpsertBulk{
		create: cjccb,
	}
}

// CronJobConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of CronJobConfig nodes.
type CronJobConfigUpsertBulk struct {
	create *CronJobConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CronJobConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cronjobconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CronJobConfigUpsertBulk) UpdateNewValues() *CronJobConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(cronjobconfig.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(cronjobconfig.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CronJobConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CronJobConfigUpsertBulk) Ignore() *CronJobConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CronJobConfigUpsertBulk) DoNothing() *CronJobConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CronJobConfigCreateBulk.OnConflict
// documentation for more info.
func (u *CronJobConfigUpsertBulk) Update(set func(*CronJobConfigUpsert)) *CronJobConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CronJobConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CronJobConfigUpsertBulk) SetUpdatedAt(v time.Time) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CronJobConfigUpsertBulk) UpdateUpdatedAt() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetJobName sets the "job_name" field.
func (u *CronJobConfigUpsertBulk) SetJobName(v string) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetJobName(v)
	})
}

// UpdateJobName sets the "job_name" field to the value that was provided on create.
func (u *CronJobConfigUpsertBulk) UpdateJobName() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateJobName()
	})
}

// SetJobType sets the "job_type" field.
func (u *CronJobConfigUpsertBulk) SetJobType(v cronjobconfig.JobType) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetJobType(v)
	})
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *CronJobConfigUpsertBulk) UpdateJobType() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateJobType()
	})
}

// SetSchedule sets the "schedule" field.
func (u *CronJobConfigUpsertBulk) SetSchedule(v string) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *CronJobConfigUpsertBulk) UpdateSchedule() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateSchedule()
	})
}

// SetEnabled sets the "enabled" field.
func (u *CronJobConfigUpsertBulk) SetEnabled(v bool) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *CronJobConfigUpsertBulk) UpdateEnabled() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateEnabled()
	})
}

// SetBatchSize sets the "batch_size" field.
func (u *CronJobConfigUpsertBulk) SetBatchSize(v int) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetBatchSize(v)
	})
}

// AddBatchSize adds v to the "batch_size" field.
func (u *CronJobConfigUpsertBulk) AddBatchSize(v int) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.AddBatchSize(v)
	})
}

// UpdateBatchSize sets the "batch_size" field to the value that was provided on create.
func (u *CronJobConfigUpsertBulk) UpdateBatchSize() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateBatchSize()
	})
}

// SetConcurrency sets the "concurrency" field.
func (u *CronJobConfigUpsertBulk) SetConcurrency(v int) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetConcurrency(v)
	})
}

// AddConcurrency adds v to the "concurrency" field.
func (u *CronJobConfigUpsertBulk) AddConcurrency(v int) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.AddConcurrency(v)
	})
}

// UpdateConcurrency sets the "concurrency" field to the value that was provided on create.
func (u *CronJobConfigUpsertBulk) UpdateConcurrency() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateConcurrency()
	})
}

// SetAdminEmail sets the "admin_email" field.
func (u *CronJobConfigUpsertBulk) SetAdminEmail(v string) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetAdminEmail(v)
	})
}

// UpdateAdminEmail sets the "admin_email" field to the value that was provided on create.
func (u *CronJobConfigUpsertBulk) UpdateAdminEmail() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateAdminEmail()
	})
}

// SetRespectQuota sets the "respect_quota" field.
func (u *CronJobConfigUpsertBulk) SetRespectQuota(v bool) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetRespectQuota(v)
	})
}

// UpdateRespectQuota sets the "respect_quota" field to the value that was provided on create.
func (u *CronJobConfigUpsertBulk) UpdateRespectQuota() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateRespectQuota()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *CronJobConfigUpsertBulk) SetLastRunAt(v time.Time) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *CronJobConfigUpsertBulk) UpdateLastRunAt() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *CronJobConfigUpsertBulk) ClearLastRunAt() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.ClearLastRunAt()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *CronJobConfigUpsertBulk) SetNextRunAt(v time.Time) *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *CronJobConfigUpsertBulk) UpdateNextRunAt() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *CronJobConfigUpsertBulk) ClearNextRunAt() *CronJobConfigUpsertBulk {
	return u.Update(func(s *CronJobConfigUpsert) {
		s.ClearNextRunAt()
	})
}

// Exec executes the query.
func (u *CronJobConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CronJobConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CronJobConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CronJobConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
