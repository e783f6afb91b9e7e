// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"kwlab-go-backend/ent/schema/ulid"
	"kwlab-go-backend/ent/seedusage"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SeedUsageCreate is the builder for creating a SeedUsage entity.
type SeedUsageCreate struct {
	config
	mutation *SeedUsageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (suc *SeedUsageCreate) SetCreatedAt(t time.Time) *SeedUsageCreate {
	suc.mutation.SetCreatedAt(t)
	return suc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (suc *SeedUsageCreate) SetNillableCreatedAt(t *time.Time) *SeedUsageCreate {
	if t != nil {
		suc.SetCreatedAt(*t)
	}
	return suc
}

// SetUpdatedAt sets the "updated_at" field.
func (suc *SeedUsageCreate) SetUpdatedAt(t time.Time) *SeedUsageCreate {
	suc.mutation.SetUpdatedAt(t)
	return suc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (suc *SeedUsageCreate) SetNillableUpdatedAt(t *time.Time) *SeedUsageCreate {
	if t != nil {
		suc.SetUpdatedAt(*t)
	}
	return suc
}

// SetSeed sets the "seed" field.
func (suc *SeedUsageCreate) SetSeed(s string) *SeedUsageCreate {
	suc.mutation.SetSeed(s)
	return suc
}

// SetUsageCount sets the "usage_count" field.
func (suc *SeedUsageCreate) SetUsageCount(i int) *SeedUsageCreate {
	suc.mutation.SetUsageCount(i)
	return suc
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (suc *SeedUsageCreate) SetNillableUsageCount(i *int) *SeedUsageCreate {
	if i != nil {
		suc.SetUsageCount(*i)
	}
	return suc
}

// SetLastUsedAt sets the "last_used_at" field.
func (suc *SeedUsageCreate) SetLastUsedAt(t time.Time) *SeedUsageCreate {
	suc.mutation.SetLastUsedAt(t)
	return suc
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (suc *SeedUsageCreate) SetNillableLastUsedAt(t *time.Time) *SeedUsageCreate {
	if t != nil {
		suc.SetLastUsedAt(*t)
	}
	return suc
}

// SetID sets the "id" field.
func (suc *SeedUsageCreate) SetID(u ulid.ID) *SeedUsageCreate {
	suc.mutation.SetID(u)
	return suc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (suc *SeedUsageCreate) SetNillableID(u *ulid.ID) *SeedUsageCreate {
	if u != nil {
		suc.SetID(*u)
	}
	return suc
}

// Mutation returns the SeedUsageMutation object of the builder.
func (suc *SeedUsageCreate) Mutation() *SeedUsageMutation {
	return suc.mutation
}

// Save creates the SeedUsage in the database.
func (suc *SeedUsageCreate) Save(ctx context.Context) (*SeedUsage, error) {
	suc.defaults()
	return withHooks(ctx, suc.sqlSave, suc.mutation, suc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (suc *SeedUsageCreate) SaveX(ctx context.Context) *SeedUsage {
	v, err := suc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (suc *SeedUsageCreate) Exec(ctx context.Context) error {
	_, err := suc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suc *SeedUsageCreate) ExecX(ctx context.Context) {
	if err := suc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suc *SeedUsageCreate) defaults() {
	if _, ok := suc.mutation.CreatedAt(); !ok {
		v := seedusage.DefaultCreatedAt()
		suc.mutation.SetCreatedAt(v)
	}
	if _, ok := suc.mutation.UpdatedAt(); !ok {
		v := seedusage.DefaultUpdatedAt()
		suc.mutation.SetUpdatedAt(v)
	}
	if _, ok := suc.mutation.UsageCount(); !ok {
		v := seedusage.DefaultUsageCount
		suc.mutation.SetUsageCount(v)
	}
	if _, ok := suc.mutation.ID(); !ok {
		v := seedusage.DefaultID()
		suc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suc *SeedUsageCreate) check() error {
	if _, ok := suc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SeedUsage.created_at"`)}
	}
	if _, ok := suc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SeedUsage.updated_at"`)}
	}
	if _, ok := suc.mutation.Seed(); !ok {
		return &ValidationError{Name: "seed", err: errors.New(`ent: missing required field "SeedUsage.seed"`)}
	}
	if v, ok := suc.mutation.Seed(); ok {
		if err := seedusage.SeedValidator(v); err != nil {
			return &ValidationError{Name: "seed", err: fmt.Errorf(`ent: validator failed for field "SeedUsage.seed": %w`, err)}
		}
	}
	if _, ok := suc.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "SeedUsage.usage_count"`)}
	}
	if v, ok := suc.mutation.UsageCount(); ok {
		if err := seedusage.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "SeedUsage.usage_count": %w`, err)}
		}
	}
	return nil
}

func (suc *SeedUsageCreate) sqlSave(ctx context.Context) (*SeedUsage, error) {
	if err := suc.check(); err != nil {
		return nil, err
	}
	_node, _spec := suc.createSpec()
	if err := sqlgraph.CreateNode(ctx, suc.driver, _spec); err != nil {
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
	suc.mutation.id = &_node.ID
	suc.mutation.done = true
	return _node, nil
}

func (suc *SeedUsageCreate) createSpec() (*SeedUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &SeedUsage{config: suc.config}
		_spec = sqlgraph.NewCreateSpec(seedusage.Table, sqlgraph.NewFieldSpec(seedusage.FieldID, field.TypeString))
	)
	_spec.OnConflict = suc.conflict
	if id, ok := suc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := suc.mutation.CreatedAt(); ok {
		_spec.SetField(seedusage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := suc.mutation.UpdatedAt(); ok {
		_spec.SetField(seedusage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := suc.mutation.Seed(); ok {
		_spec.SetField(seedusage.FieldSeed, field.TypeString, value)
		_node.Seed = value
	}
	if value, ok := suc.mutation.UsageCount(); ok {
		_spec.SetField(seedusage.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := suc.mutation.LastUsedAt(); ok {
		_spec.SetField(seedusage.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SeedUsage.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SeedUsageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (suc *SeedUsageCreate) OnConflict(opts ...sql.ConflictOption) *SeedUsageUpsertOne {
	suc.conflict = opts
	return &SeedUsageUpsertOne{
		create: suc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SeedUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (suc *SeedUsageCreate) OnConflictColumns(columns ...string) *SeedUsageUpsertOne {
	suc.conflict = append(suc.conflict, sql.ConflictColumns(columns...))
	return &SeedUsageUpsertOne{
		create: suc,
	}
}

type (
	// SeedUsageUpsertOne is the builder for "upsert"-ing
	//  one SeedUsage node.
	SeedUsageUpsertOne struct {
		create *SeedUsageCreate
	}

	// SeedUsageUpsert is the "OnConflict" setter.
	SeedUsageUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SeedUsageUpsert) SetUpdatedAt(v time.Time) *SeedUsageUpsert {
	u.Set(seedusage.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SeedUsageUpsert) UpdateUpdatedAt() *SeedUsageUpsert {
	u.SetExcluded(seedusage.FieldUpdatedAt)
	return u
}

// SetSeed sets the "seed" field.
func (u *SeedUsageUpsert) SetSeed(v string) *SeedUsageUpsert {
	u.Set(seedusage.FieldSeed, v)
	return u
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *SeedUsageUpsert) UpdateSeed() *SeedUsageUpsert {
	u.SetExcluded(seedusage.FieldSeed)
	return u
}

// SetUsageCount sets the "usage_count" field.
func (u *SeedUsageUpsert) SetUsageCount(v int) *SeedUsageUpsert {
	u.Set(seedusage.FieldUsageCount, v)
	return u
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *SeedUsageUpsert) UpdateUsageCount() *SeedUsageUpsert {
	u.SetExcluded(seedusage.FieldUsageCount)
	return u
}

// AddUsageCount adds v to the "usage_count" field.
func (u *SeedUsageUpsert) AddUsageCount(v int) *SeedUsageUpsert {
	u.Add(seedusage.FieldUsageCount, v)
	return u
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *SeedUsageUpsert) SetLastUsedAt(v time.Time) *SeedUsageUpsert {
	u.Set(seedusage.FieldLastUsedAt, v)
	return u
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *SeedUsageUpsert) UpdateLastUsedAt() *SeedUsageUpsert {
	u.SetExcluded(seedusage.FieldLastUsedAt)
	return u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *SeedUsageUpsert) ClearLastUsedAt() *SeedUsageUpsert {
	u.SetNull(seedusage.FieldLastUsedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SeedUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(seedusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SeedUsageUpsertOne) UpdateNewValues() *SeedUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(seedusage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(seedusage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SeedUsage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SeedUsageUpsertOne) Ignore() *SeedUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SeedUsageUpsertOne) DoNothing() *SeedUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SeedUsageCreate.OnConflict
// documentation for more info.
func (u *SeedUsageUpsertOne) Update(set func(*SeedUsageUpsert)) *SeedUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SeedUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SeedUsageUpsertOne) SetUpdatedAt(v time.Time) *SeedUsageUpsertOne {
	return u.Update(func(s *SeedUsageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SeedUsageUpsertOne) UpdateUpdatedAt() *SeedUsageUpsertOne {
	return u.Update(func(s *SeedUsageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSeed sets the "seed" field.
func (u *SeedUsageUpsertOne) SetSeed(v string) *SeedUsageUpsertOne {
	return u.Update(func(s *SeedUsageUpsert) {
		s.SetSeed(v)
	})
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *SeedUsageUpsertOne) UpdateSeed() *SeedUsageUpsertOne {
	return u.Update(func(s *SeedUsageUpsert) {
		s.UpdateSeed()
	})
}

// SetUsageCount sets the "usage_count" field.
func (u *SeedUsageUpsertOne) SetUsageCount(v int) *SeedUsageUpsertOne {
	return u.Update(func(s *SeedUsageUpsert) {
		s.SetUsageCount(v)
	})
}

// AddUsageCount adds v to the "usage_count" field.
func (u *SeedUsageUpsertOne) AddUsageCount(v int) *SeedUsageUpsertOne {
	return u.Update(func(s *SeedUsageUpsert) {
		s.AddUsageCount(v)
	})
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *SeedUsageUpsertOne) UpdateUsageCount() *SeedUsageUpsertOne {
	return u.Update(func(s *SeedUsageUpsert) {
		s.UpdateUsageCount()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *SeedUsageUpsertOne) SetLastUsedAt(v time.Time) *SeedUsageUpsertOne {
	return u.Update(func(s *SeedUsageUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *SeedUsageUpsertOne) UpdateLastUsedAt() *SeedUsageUpsertOne {
	return u.Update(func(s *SeedUsageUpsert) {
		s.UpdateLastUsedAt()
	})
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *SeedUsageUpsertOne) ClearLastUsedAt() *SeedUsageUpsertOne {
	return u.Update(func(s *SeedUsageUpsert) {
		s.ClearLastUsedAt()
	})
}

// Exec executes the query.
func (u *SeedUsageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SeedUsageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SeedUsageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SeedUsageUpsertOne) ID(ctx context.Context) (id ulid.ID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SeedUsageUpsertOne.ID is not supported by MySQL driver. Use SeedUsageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SeedUsageUpsertOne) IDX(ctx context.Context) ulid.ID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SeedUsageCreateBulk is the builder for creating many SeedUsage entities in bulk.
type SeedUsageCreateBulk struct {
	config
	err      error
	builders []*SeedUsageCreate
	conflict []sql.ConflictOption
}

// Save creates the SeedUsage entities in the database.
func (sucb *SeedUsageCreateBulk) Save(ctx context.Context) ([]*SeedUsage, error) {
	if sucb.err != nil {
		return nil, sucb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sucb.builders))
	nodes := make([]*SeedUsage, len(sucb.builders))
	mutators := make([]Mutator, len(sucb.builders))
	for i := range sucb.builders {
		func(i int, root context.Context) {
			builder := sucb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SeedUsageMutation)
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
					_, err = mutators[i+1].Mutate(root, sucb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = sucb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sucb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sucb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sucb *SeedUsageCreateBulk) SaveX(ctx context.Context) []*SeedUsage {
	v, err := sucb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sucb *SeedUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := sucb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sucb *SeedUsageCreateBulk) ExecX(ctx context.Context) {
	if err := sucb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SeedUsage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SeedUsageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (sucb *SeedUsageCreateBulk) OnConflict(opts ...sql.ConflictOption) *SeedUsageUpsertBulk {
	sucb.conflict = opts
	return &SeedUsageUpsertBulk{
		create: sucb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SeedUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sucb *SeedUsageCreateBulk) OnConflictColumns(columns ...string) *SeedUsageUpsertBulk {
	sucb.conflict = append(sucb.conflict, sql.ConflictColumns(columns...))
	return &SeedUsageUpsertBulk{
		create: sucb,
	}
}

// SeedUsageUpsertBulk is the builder for "upsert"-ing
// a bulk of SeedUsage nodes.
type SeedUsageUpsertBulk struct {
	create *SeedUsageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SeedUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(seedusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SeedUsageUpsertBulk) UpdateNewValues() *SeedUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(seedusage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(seedusage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SeedUsage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SeedUsageUpsertBulk) Ignore() *SeedUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SeedUsageUpsertBulk) DoNothing() *SeedUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SeedUsageCreateBulk.OnConflict
// documentation for more info.
func (u *SeedUsageUpsertBulk) Update(set func(*SeedUsageUpsert)) *SeedUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SeedUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SeedUsageUpsertBulk) SetUpdatedAt(v time.Time) *SeedUsageUpsertBulk {
	return u.Update(func(s *SeedUsageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SeedUsageUpsertBulk) UpdateUpdatedAt() *SeedUsageUpsertBulk {
	return u.Update(func(s *SeedUsageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSeed sets the "seed" field.
func (u *SeedUsageUpsertBulk) SetSeed(v string) *SeedUsageUpsertBulk {
	return u.Update(func(s *SeedUsageUpsert) {
		s.SetSeed(v)
	})
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *SeedUsageUpsertBulk) UpdateSeed() *SeedUsageUpsertBulk {
	return u.Update(func(s *SeedUsageUpsert) {
		s.UpdateSeed()
	})
}

// SetUsageCount sets the "usage_count" field.
func (u *SeedUsageUpsertBulk) SetUsageCount(v int) *SeedUsageUpsertBulk {
	return u.Update(func(s *SeedUsageUpsert) {
		s.SetUsageCount(v)
	})
}

// AddUsageCount adds v to the "usage_count" field.
func (u *SeedUsageUpsertBulk) AddUsageCount(v int) *SeedUsageUpsertBulk {
	return u.Update(func(s *SeedUsageUpsert) {
		s.AddUsageCount(v)
	})
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *SeedUsageUpsertBulk) UpdateUsageCount() *SeedUsageUpsertBulk {
	return u.Update(func(s *SeedUsageUpsert) {
		s.UpdateUsageCount()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *SeedUsageUpsertBulk) SetLastUsedAt(v time.Time) *SeedUsageUpsertBulk {
	return u.Update(func(s *SeedUsageUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *SeedUsageUpsertBulk) UpdateLastUsedAt() *SeedUsageUpsertBulk {
	return u.Update(func(s *SeedUsageUpsert) {
		s.UpdateLastUsedAt()
	})
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *SeedUsageUpsertBulk) ClearLastUsedAt() *SeedUsageUpsertBulk {
	return u.Update(func(s *SeedUsageUpsert) {
		s.ClearLastUsedAt()
	})
}

// Exec executes the query.
func (u *SeedUsageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SeedUsageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SeedUsageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SeedUsageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
