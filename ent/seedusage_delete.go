// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/ent/seedusage"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SeedUsageDelete is the builder for deleting a SeedUsage entity.
type SeedUsageDelete struct {
	config
	hooks    []Hook
	mutation *SeedUsageMutation
}

// Where appends a list predicates to the SeedUsageDelete builder.
func (sud *SeedUsageDelete) Where(ps ...predicate.SeedUsage) *SeedUsageDelete {
	sud.mutation.Where(ps...)
	return sud
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (sud *SeedUsageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, sud.sqlExec, sud.mutation, sud.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (sud *SeedUsageDelete) ExecX(ctx context.Context) int {
	n, err := sud.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (sud *SeedUsageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(seedusage.Table, sqlgraph.NewFieldSpec(seedusage.FieldID, field.TypeString))
	if ps := sud.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, sud.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	sud.mutation.done = true
	return affected, err
}

// SeedUsageDeleteOne is the builder for deleting a single SeedUsage entity.
type SeedUsageDeleteOne struct {
	sud *SeedUsageDelete
}

// Where appends a list predicates to the SeedUsageDelete builder.
func (sudo *SeedUsageDeleteOne) Where(ps ...predicate.SeedUsage) *SeedUsageDeleteOne {
	sudo.sud.mutation.Where(ps...)
	return sudo
}

// Exec executes the deletion query.
func (sudo *SeedUsageDeleteOne) Exec(ctx context.Context) error {
	n, err := sudo.sud.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{seedusage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (sudo *SeedUsageDeleteOne) ExecX(ctx context.Context) {
	if err := sudo.Exec(ctx); err != nil {
		panic(err)
	}
}
