// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/ent/seedusage"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SeedUsageUpdate is the builder for updating SeedUsage entities.
type SeedUsageUpdate struct {
	config
	hooks    []Hook
	mutation *SeedUsageMutation
}

// Where appends a list predicates to the SeedUsageUpdate builder.
func (suu *SeedUsageUpdate) Where(ps ...predicate.SeedUsage) *SeedUsageUpdate {
	suu.mutation.Where(ps...)
	return suu
}

// SetUpdatedAt sets the "updated_at" field.
func (suu *SeedUsageUpdate) SetUpdatedAt(t time.Time) *SeedUsageUpdate {
	suu.mutation.SetUpdatedAt(t)
	return suu
}

// SetSeed sets the "seed" field.
func (suu *SeedUsageUpdate) SetSeed(s string) *SeedUsageUpdate {
	suu.mutation.SetSeed(s)
	return suu
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (suu *SeedUsageUpdate) SetNillableSeed(s *string) *SeedUsageUpdate {
	if s != nil {
		suu.SetSeed(*s)
	}
	return suu
}

// SetUsageCount sets the "usage_count" field.
func (suu *SeedUsageUpdate) SetUsageCount(i int) *SeedUsageUpdate {
	suu.mutation.ResetUsageCount()
	suu.mutation.SetUsageCount(i)
	return suu
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (suu *SeedUsageUpdate) SetNillableUsageCount(i *int) *SeedUsageUpdate {
	if i != nil {
		suu.SetUsageCount(*i)
	}
	return suu
}

// AddUsageCount adds i to the "usage_count" field.
func (suu *SeedUsageUpdate) AddUsageCount(i int) *SeedUsageUpdate {
	suu.mutation.AddUsageCount(i)
	return suu
}

// SetLastUsedAt sets the "last_used_at" field.
func (suu *SeedUsageUpdate) SetLastUsedAt(t time.Time) *SeedUsageUpdate {
	suu.mutation.SetLastUsedAt(t)
	return suu
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (suu *SeedUsageUpdate) SetNillableLastUsedAt(t *time.Time) *SeedUsageUpdate {
	if t != nil {
		suu.SetLastUsedAt(*t)
	}
	return suu
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (suu *SeedUsageUpdate) ClearLastUsedAt() *SeedUsageUpdate {
	suu.mutation.ClearLastUsedAt()
	return suu
}

// Mutation returns the SeedUsageMutation object of the builder.
func (suu *SeedUsageUpdate) Mutation() *SeedUsageMutation {
	return suu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (suu *SeedUsageUpdate) Save(ctx context.Context) (int, error) {
	suu.defaults()
	return withHooks(ctx, suu.sqlSave, suu.mutation, suu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suu *SeedUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := suu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (suu *SeedUsageUpdate) Exec(ctx context.Context) error {
	_, err := suu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suu *SeedUsageUpdate) ExecX(ctx context.Context) {
	if err := suu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suu *SeedUsageUpdate) defaults() {
	if _, ok := suu.mutation.UpdatedAt(); !ok {
		v := seedusage.UpdateDefaultUpdatedAt()
		suu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suu *SeedUsageUpdate) check() error {
	if v, ok := suu.mutation.Seed(); ok {
		if err := seedusage.SeedValidator(v); err != nil {
			return &ValidationError{Name: "seed", err: fmt.Errorf(`ent: validator failed for field "SeedUsage.seed": %w`, err)}
		}
	}
	if v, ok := suu.mutation.UsageCount(); ok {
		if err := seedusage.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "SeedUsage.usage_count": %w`, err)}
		}
	}
	return nil
}

func (suu *SeedUsageUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := suu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(seedusage.Table, seedusage.Columns, sqlgraph.NewFieldSpec(seedusage.FieldID, field.TypeString))
	if ps := suu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suu.mutation.UpdatedAt(); ok {
		_spec.SetField(seedusage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := suu.mutation.Seed(); ok {
		_spec.SetField(seedusage.FieldSeed, field.TypeString, value)
	}
	if value, ok := suu.mutation.UsageCount(); ok {
		_spec.SetField(seedusage.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := suu.mutation.AddedUsageCount(); ok {
		_spec.AddField(seedusage.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := suu.mutation.LastUsedAt(); ok {
		_spec.SetField(seedusage.FieldLastUsedAt, field.TypeTime, value)
	}
	if suu.mutation.LastUsedAtCleared() {
		_spec.ClearField(seedusage.FieldLastUsedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, suu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{seedusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	suu.mutation.done = true
	return n, nil
}

// SeedUsageUpdateOne is the builder for updating a single SeedUsage entity.
type SeedUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SeedUsageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (suuo *SeedUsageUpdateOne) SetUpdatedAt(t time.Time) *SeedUsageUpdateOne {
	suuo.mutation.SetUpdatedAt(t)
	return suuo
}

// SetSeed sets the "seed" field.
func (suuo *SeedUsageUpdateOne) SetSeed(s string) *SeedUsageUpdateOne {
	suuo.mutation.SetSeed(s)
	return suuo
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (suuo *SeedUsageUpdateOne) SetNillableSeed(s *string) *SeedUsageUpdateOne {
	if s != nil {
		suuo.SetSeed(*s)
	}
	return suuo
}

// SetUsageCount sets the "usage_count" field.
func (suuo *SeedUsageUpdateOne) SetUsageCount(i int) *SeedUsageUpdateOne {
	suuo.mutation.ResetUsageCount()
	suuo.mutation.SetUsageCount(i)
	return suuo
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (suuo *SeedUsageUpdateOne) SetNillableUsageCount(i *int) *SeedUsageUpdateOne {
	if i != nil {
		suuo.SetUsageCount(*i)
	}
	return suuo
}

// AddUsageCount adds i to the "usage_count" field.
func (suuo *SeedUsageUpdateOne) AddUsageCount(i int) *SeedUsageUpdateOne {
	suuo.mutation.AddUsageCount(i)
	return suuo
}

// SetLastUsedAt sets the "last_used_at" field.
func (suuo *SeedUsageUpdateOne) SetLastUsedAt(t time.Time) *SeedUsageUpdateOne {
	suuo.mutation.SetLastUsedAt(t)
	return suuo
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (suuo *SeedUsageUpdateOne) SetNillableLastUsedAt(t *time.Time) *SeedUsageUpdateOne {
	if t != nil {
		suuo.SetLastUsedAt(*t)
	}
	return suuo
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (suuo *SeedUsageUpdateOne) ClearLastUsedAt() *SeedUsageUpdateOne {
	suuo.mutation.ClearLastUsedAt()
	return suuo
}

// Mutation returns the SeedUsageMutation object of the builder.
func (suuo *SeedUsageUpdateOne) Mutation() *SeedUsageMutation {
	return suuo.mutation
}

// Where appends a list predicates to the SeedUsageUpdate builder.
func (suuo *SeedUsageUpdateOne) Where(ps ...predicate.SeedUsage) *SeedUsageUpdateOne {
	suuo.mutation.Where(ps...)
	return suuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suuo *SeedUsageUpdateOne) Select(field string, fields ...string) *SeedUsageUpdateOne {
	suuo.fields = append([]string{field}, fields...)
	return suuo
}

// Save executes the query and returns the updated SeedUsage entity.
func (suuo *SeedUsageUpdateOne) Save(ctx context.Context) (*SeedUsage, error) {
	suuo.defaults()
	return withHooks(ctx, suuo.sqlSave, suuo.mutation, suuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suuo *SeedUsageUpdateOne) SaveX(ctx context.Context) *SeedUsage {
	node, err := suuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suuo *SeedUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := suuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suuo *SeedUsageUpdateOne) ExecX(ctx context.Context) {
	if err := suuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suuo *SeedUsageUpdateOne) defaults() {
	if _, ok := suuo.mutation.UpdatedAt(); !ok {
		v := seedusage.UpdateDefaultUpdatedAt()
		suuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suuo *SeedUsageUpdateOne) check() error {
	if v, ok := suuo.mutation.Seed(); ok {
		if err := seedusage.SeedValidator(v); err != nil {
			return &ValidationError{Name: "seed", err: fmt.Errorf(`ent: validator failed for field "SeedUsage.seed": %w`, err)}
		}
	}
	if v, ok := suuo.mutation.UsageCount(); ok {
		if err := seedusage.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "SeedUsage.usage_count": %w`, err)}
		}
	}
	return nil
}

func (suuo *SeedUsageUpdateOne) sqlSave(ctx context.Context) (_node *SeedUsage, err error) {
	if err := suuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(seedusage.Table, seedusage.Columns, sqlgraph.NewFieldSpec(seedusage.FieldID, field.TypeString))
	id, ok := suuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SeedUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, seedusage.FieldID)
		for _, f := range fields {
			if !seedusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != seedusage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suuo.mutation.UpdatedAt(); ok {
		_spec.SetField(seedusage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := suuo.mutation.Seed(); ok {
		_spec.SetField(seedusage.FieldSeed, field.TypeString, value)
	}
	if value, ok := suuo.mutation.UsageCount(); ok {
		_spec.SetField(seedusage.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := suuo.mutation.AddedUsageCount(); ok {
		_spec.AddField(seedusage.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := suuo.mutation.LastUsedAt(); ok {
		_spec.SetField(seedusage.FieldLastUsedAt, field.TypeTime, value)
	}
	if suuo.mutation.LastUsedAtCleared() {
		_spec.ClearField(seedusage.FieldLastUsedAt, field.TypeTime)
	}
	_node = &SeedUsage{config: suuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{seedusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suuo.mutation.done = true
	return _node, nil
}
