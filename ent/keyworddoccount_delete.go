// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"kwlab-go-backend/ent/keyworddoccount"
	"kwlab-go-backend/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// KeywordDocCountDelete is the builder for deleting a KeywordDocCount entity.
type KeywordDocCountDelete struct {
	config
	hooks    []Hook
	mutation *KeywordDocCountMutation
}

// Where appends a list predicates to the KeywordDocCountDelete builder.
func (kdcd *KeywordDocCountDelete) Where(ps ...predicate.KeywordDocCount) *KeywordDocCountDelete {
	kdcd.mutation.Where(ps...)
	return kdcd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (kdcd *KeywordDocCountDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, kdcd.sqlExec, kdcd.mutation, kdcd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (kdcd *KeywordDocCountDelete) ExecX(ctx context.Context) int {
	n, err := kdcd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (kdcd *KeywordDocCountDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(keyworddoccount.Table, sqlgraph.NewFieldSpec(keyworddoccount.FieldID, field.TypeString))
	if ps := kdcd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, kdcd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	kdcd.mutation.done = true
	return affected, err
}

// KeywordDocCountDeleteOne is the builder for deleting a single KeywordDocCount entity.
type KeywordDocCountDeleteOne struct {
	kdcd *KeywordDocCountDelete
}

// Where appends a list predicates to the KeywordDocCountDelete builder.
func (kdcdo *KeywordDocCountDeleteOne) Where(ps ...predicate.KeywordDocCount) *KeywordDocCountDeleteOne {
	kdcdo.kdcd.mutation.Where(ps...)
	return kdcdo
}

// Exec executes the deletion query.
func (kdcdo *KeywordDocCountDeleteOne) Exec(ctx context.Context) error {
	n, err := kdcdo.kdcd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{keyworddoccount.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (kdcdo *KeywordDocCountDeleteOne) ExecX(ctx context.Context) {
	if err := kdcdo.Exec(ctx); err != nil {
		panic(err)
	}
}
