// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"kwlab-go-backend/ent/cronjobconfig"
	"kwlab-go-backend/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CronJobConfigDelete is the builder for deleting a CronJobConfig entity.
type CronJobConfigDelete struct {
	config
	hooks    []Hook
	mutation *CronJobConfigMutation
}

// Where appends a list predicates to the CronJobConfigDelete builder.
func (cjcd *CronJobConfigDelete) Where(ps ...predicate.CronJobConfig) *CronJobConfigDelete {
	cjcd.mutation.Where(ps...)
	return cjcd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cjcd *CronJobConfigDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cjcd.sqlExec, cjcd.mutation, cjcd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cjcd *CronJobConfigDelete) ExecX(ctx context.Context) int {
	n, err := cjcd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cjcd *CronJobConfigDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cronjobconfig.Table, sqlgraph.NewFieldSpec(cronjobconfig.FieldID, field.TypeString))
	if ps := cjcd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cjcd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cjcd.mutation.done = true
	return affected, err
}

// CronJobConfigDeleteOne is the builder for deleting a single CronJobConfig entity.
type CronJobConfigDeleteOne struct {
	cjcd *CronJobConfigDelete
}

// Where appends a list predicates to the CronJobConfigDelete builder.
func (cjcdo *CronJobConfigDeleteOne) Where(ps ...predicate.CronJobConfig) *CronJobConfigDeleteOne {
	cjcdo.cjcd.mutation.Where(ps...)
	return cjcdo
}

// Exec executes the deletion query.
func (cjcdo *CronJobConfigDeleteOne) Exec(ctx context.Context) error {
	n, err := cjcdo.cjcd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cronjobconfig.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cjcdo *CronJobConfigDeleteOne) ExecX(ctx context.Context) {
	if err := cjcdo.Exec(ctx); err != nil {
		panic(err)
	}
}
