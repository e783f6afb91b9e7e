// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"kwlab-go-backend/ent/collectionlog"
	"kwlab-go-backend/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CollectionLogDelete is the builder for deleting a CollectionLog entity.
type CollectionLogDelete struct {
	config
	hooks    []Hook
	mutation *CollectionLogMutation
}

// Where appends a list predicates to the CollectionLogDelete builder.
func (cld *CollectionLogDelete) Where(ps ...predicate.CollectionLog) *CollectionLogDelete {
	cld.mutation.Where(ps...)
	return cld
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cld *CollectionLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cld.sqlExec, cld.mutation, cld.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cld *CollectionLogDelete) ExecX(ctx context.Context) int {
	n, err := cld.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cld *CollectionLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(collectionlog.Table, sqlgraph.NewFieldSpec(collectionlog.FieldID, field.TypeString))
	if ps := cld.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cld.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cld.mutation.done = true
	return affected, err
}

// CollectionLogDeleteOne is the builder for deleting a single CollectionLog entity.
type CollectionLogDeleteOne struct {
	cld *CollectionLogDelete
}

// Where appends a list predicates to the CollectionLogDelete builder.
func (cldo *CollectionLogDeleteOne) Where(ps ...predicate.CollectionLog) *CollectionLogDeleteOne {
	cldo.cld.mutation.Where(ps...)
	return cldo
}

// Exec executes the deletion query.
func (cldo *CollectionLogDeleteOne) Exec(ctx context.Context) error {
	n, err := cldo.cld.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{collectionlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cldo *CollectionLogDeleteOne) ExecX(ctx context.Context) {
	if err := cldo.Exec(ctx); err != nil {
		panic(err)
	}
}
