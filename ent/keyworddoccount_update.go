// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"kwlab-go-backend/ent/keyworddoccount"
	"kwlab-go-backend/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// KeywordDocCountUpdate is the builder for updating KeywordDocCount entities.
type KeywordDocCountUpdate struct {
	config
	hooks    []Hook
	mutation *KeywordDocCountMutation
}

// Where appends a list predicates to the KeywordDocCountUpdate builder.
func (kdcu *KeywordDocCountUpdate) Where(ps ...predicate.KeywordDocCount) *KeywordDocCountUpdate {
	kdcu.mutation.Where(ps...)
	return kdcu
}

// SetUpdatedAt sets the "updated_at" field.
func (kdcu *KeywordDocCountUpdate) SetUpdatedAt(t time.Time) *KeywordDocCountUpdate {
	kdcu.mutation.SetUpdatedAt(t)
	return kdcu
}

// SetKeyword sets the "keyword" field.
func (kdcu *KeywordDocCountUpdate) SetKeyword(s string) *KeywordDocCountUpdate {
	kdcu.mutation.SetKeyword(s)
	return kdcu
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (kdcu *KeywordDocCountUpdate) SetNillableKeyword(s *string) *KeywordDocCountUpdate {
	if s != nil {
		kdcu.SetKeyword(*s)
	}
	return kdcu
}

// SetBlogTotal sets the "blog_total" field.
func (kdcu *KeywordDocCountUpdate) SetBlogTotal(i int) *KeywordDocCountUpdate {
	kdcu.mutation.ResetBlogTotal()
	kdcu.mutation.SetBlogTotal(i)
	return kdcu
}

// SetNillableBlogTotal sets the "blog_total" field if the given value is not nil.
func (kdcu *KeywordDocCountUpdate) SetNillableBlogTotal(i *int) *KeywordDocCountUpdate {
	if i != nil {
		kdcu.SetBlogTotal(*i)
	}
	return kdcu
}

// AddBlogTotal adds i to the "blog_total" field.
func (kdcu *KeywordDocCountUpdate) AddBlogTotal(i int) *KeywordDocCountUpdate {
	kdcu.mutation.AddBlogTotal(i)
	return kdcu
}

// SetCafeTotal sets the "cafe_total" field.
func (kdcu *KeywordDocCountUpdate) SetCafeTotal(i int) *KeywordDocCountUpdate {
	kdcu.mutation.ResetCafeTotal()
	kdcu.mutation.SetCafeTotal(i)
	return kdcu
}

// SetNillableCafeTotal sets the "cafe_total" field if the given value is not nil.
func (kdcu *KeywordDocCountUpdate) SetNillableCafeTotal(i *int) *KeywordDocCountUpdate {
	if i != nil {
		kdcu.SetCafeTotal(*i)
	}
	return kdcu
}

// AddCafeTotal adds i to the "cafe_total" field.
func (kdcu *KeywordDocCountUpdate) AddCafeTotal(i int) *KeywordDocCountUpdate {
	kdcu.mutation.AddCafeTotal(i)
	return kdcu
}

// SetWebTotal sets the "web_total" field.
func (kdcu *KeywordDocCountUpdate) SetWebTotal(i int) *KeywordDocCountUpdate {
	kdcu.mutation.ResetWebTotal()
	kdcu.mutation.SetWebTotal(i)
	return kdcu
}

// SetNillableWebTotal sets the "web_total" field if the given value is not nil.
func (kdcu *KeywordDocCountUpdate) SetNillableWebTotal(i *int) *KeywordDocCountUpdate {
	if i != nil {
		kdcu.SetWebTotal(*i)
	}
	return kdcu
}

// AddWebTotal adds i to the "web_total" field.
func (kdcu *KeywordDocCountUpdate) AddWebTotal(i int) *KeywordDocCountUpdate {
	kdcu.mutation.AddWebTotal(i)
	return kdcu
}

// SetNewsTotal sets the "news_total" field.
func (kdcu *KeywordDocCountUpdate) SetNewsTotal(i int) *KeywordDocCountUpdate {
	kdcu.mutation.ResetNewsTotal()
	kdcu.mutation.SetNewsTotal(i)
	return kdcu
}

// SetNillableNewsTotal sets the "news_total" field if the given value is not nil.
func (kdcu *KeywordDocCountUpdate) SetNillableNewsTotal(i *int) *KeywordDocCountUpdate {
	if i != nil {
		kdcu.SetNewsTotal(*i)
	}
	return kdcu
}

// AddNewsTotal adds i to the "news_total" field.
func (kdcu *KeywordDocCountUpdate) AddNewsTotal(i int) *KeywordDocCountUpdate {
	kdcu.mutation.AddNewsTotal(i)
	return kdcu
}

// SetCollectedAt sets the "collected_at" field.
func (kdcu *KeywordDocCountUpdate) SetCollectedAt(t time.Time) *KeywordDocCountUpdate {
	kdcu.mutation.SetCollectedAt(t)
	return kdcu
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (kdcu *KeywordDocCountUpdate) SetNillableCollectedAt(t *time.Time) *KeywordDocCountUpdate {
	if t != nil {
		kdcu.SetCollectedAt(*t)
	}
	return kdcu
}

// Mutation returns the KeywordDocCountMutation object of the builder.
func (kdcu *KeywordDocCountUpdate) Mutation() *KeywordDocCountMutation {
	return kdcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (kdcu *KeywordDocCountUpdate) Save(ctx context.Context) (int, error) {
	kdcu.defaults()
	return withHooks(ctx, kdcu.sqlSave, kdcu.mutation, kdcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (kdcu *KeywordDocCountUpdate) SaveX(ctx context.Context) int {
	affected, err := kdcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (kdcu *KeywordDocCountUpdate) Exec(ctx context.Context) error {
	_, err := kdcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (kdcu *KeywordDocCountUpdate) ExecX(ctx context.Context) {
	if err := kdcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (kdcu *KeywordDocCountUpdate) defaults() {
	if _, ok := kdcu.mutation.UpdatedAt(); !ok {
		v := keyworddoccount.UpdateDefaultUpdatedAt()
		kdcu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (kdcu *KeywordDocCountUpdate) check() error {
	if v, ok := kdcu.mutation.Keyword(); ok {
		if err := keyworddoccount.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.keyword": %w`, err)}
		}
	}
	if v, ok := kdcu.mutation.BlogTotal(); ok {
		if err := keyworddoccount.BlogTotalValidator(v); err != nil {
			return &ValidationError{Name: "blog_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.blog_total": %w`, err)}
		}
	}
	if v, ok := kdcu.mutation.CafeTotal(); ok {
		if err := keyworddoccount.CafeTotalValidator(v); err != nil {
			return &ValidationError{Name: "cafe_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.cafe_total": %w`, err)}
		}
	}
	if v, ok := kdcu.mutation.WebTotal(); ok {
		if err := keyworddoccount.WebTotalValidator(v); err != nil {
			return &ValidationError{Name: "web_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.web_total": %w`, err)}
		}
	}
	if v, ok := kdcu.mutation.NewsTotal(); ok {
		if err := keyworddoccount.NewsTotalValidator(v); err != nil {
			return &ValidationError{Name: "news_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.news_total": %w`, err)}
		}
	}
	return nil
}

func (kdcu *KeywordDocCountUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := kdcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(keyworddoccount.Table, keyworddoccount.Columns, sqlgraph.NewFieldSpec(keyworddoccount.FieldID, field.TypeString))
	if ps := kdcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := kdcu.mutation.UpdatedAt(); ok {
		_spec.SetField(keyworddoccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := kdcu.mutation.Keyword(); ok {
		_spec.SetField(keyworddoccount.FieldKeyword, field.TypeString, value)
	}
	if value, ok := kdcu.mutation.BlogTotal(); ok {
		_spec.SetField(keyworddoccount.FieldBlogTotal, field.TypeInt, value)
	}
	if value, ok := kdcu.mutation.AddedBlogTotal(); ok {
		_spec.AddField(keyworddoccount.FieldBlogTotal, field.TypeInt, value)
	}
	if value, ok := kdcu.mutation.CafeTotal(); ok {
		_spec.SetField(keyworddoccount.FieldCafeTotal, field.TypeInt, value)
	}
	if value, ok := kdcu.mutation.AddedCafeTotal(); ok {
		_spec.AddField(keyworddoccount.FieldCafeTotal, field.TypeInt, value)
	}
	if value, ok := kdcu.mutation.WebTotal(); ok {
		_spec.SetField(keyworddoccount.FieldWebTotal, field.TypeInt, value)
	}
	if value, ok := kdcu.mutation.AddedWebTotal(); ok {
		_spec.AddField(keyworddoccount.FieldWebTotal, field.TypeInt, value)
	}
	if value, ok := kdcu.mutation.NewsTotal(); ok {
		_spec.SetField(keyworddoccount.FieldNewsTotal, field.TypeInt, value)
	}
	if value, ok := kdcu.mutation.AddedNewsTotal(); ok {
		_spec.AddField(keyworddoccount.FieldNewsTotal, field.TypeInt, value)
	}
	if value, ok := kdcu.mutation.CollectedAt(); ok {
		_spec.SetField(keyworddoccount.FieldCollectedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, kdcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{keyworddoccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	kdcu.mutation.done = true
	return n, nil
}

// KeywordDocCountUpdateOne is the builder for updating a single KeywordDocCount entity.
type KeywordDocCountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KeywordDocCountMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (kdcuo *KeywordDocCountUpdateOne) SetUpdatedAt(t time.Time) *KeywordDocCountUpdateOne {
	kdcuo.mutation.SetUpdatedAt(t)
	return kdcuo
}

// SetKeyword sets the "keyword" field.
func (kdcuo *KeywordDocCountUpdateOne) SetKeyword(s string) *KeywordDocCountUpdateOne {
	kdcuo.mutation.SetKeyword(s)
	return kdcuo
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (kdcuo *KeywordDocCountUpdateOne) SetNillableKeyword(s *string) *KeywordDocCountUpdateOne {
	if s != nil {
		kdcuo.SetKeyword(*s)
	}
	return kdcuo
}

// SetBlogTotal sets the "blog_total" field.
func (kdcuo *KeywordDocCountUpdateOne) SetBlogTotal(i int) *KeywordDocCountUpdateOne {
	kdcuo.mutation.ResetBlogTotal()
	kdcuo.mutation.SetBlogTotal(i)
	return kdcuo
}

// SetNillableBlogTotal sets the "blog_total" field if the given value is not nil.
func (kdcuo *KeywordDocCountUpdateOne) SetNillableBlogTotal(i *int) *KeywordDocCountUpdateOne {
	if i != nil {
		kdcuo.SetBlogTotal(*i)
	}
	return kdcuo
}

// AddBlogTotal adds i to the "blog_total" field.
func (kdcuo *KeywordDocCountUpdateOne) AddBlogTotal(i int) *KeywordDocCountUpdateOne {
	kdcuo.mutation.AddBlogTotal(i)
	return kdcuo
}

// SetCafeTotal sets the "cafe_total" field.
func (kdcuo *KeywordDocCountUpdateOne) SetCafeTotal(i int) *KeywordDocCountUpdateOne {
	kdcuo.mutation.ResetCafeTotal()
	kdcuo.mutation.SetCafeTotal(i)
	return kdcuo
}

// SetNillableCafeTotal sets the "cafe_total" field if the given value is not nil.
func (kdcuo *KeywordDocCountUpdateOne) SetNillableCafeTotal(i *int) *KeywordDocCountUpdateOne {
	if i != nil {
		kdcuo.SetCafeTotal(*i)
	}
	return kdcuo
}

// AddCafeTotal adds i to the "cafe_total" field.
func (kdcuo *KeywordDocCountUpdateOne) AddCafeTotal(i int) *KeywordDocCountUpdateOne {
	kdcuo.mutation.AddCafeTotal(i)
	return kdcuo
}

// SetWebTotal sets the "web_total" field.
func (kdcuo *KeywordDocCountUpdateOne) SetWebTotal(i int) *KeywordDocCountUpdateOne {
	kdcuo.mutation.ResetWebTotal()
	kdcuo.mutation.SetWebTotal(i)
	return kdcuo
}

// SetNillableWebTotal sets the "web_total" field if the given value is not nil.
func (kdcuo *KeywordDocCountUpdateOne) SetNillableWebTotal(i *int) *KeywordDocCountUpdateOne {
	if i != nil {
		kdcuo.SetWebTotal(*i)
	}
	return kdcuo
}

// AddWebTotal adds i to the "web_total" field.
func (kdcuo *KeywordDocCountUpdateOne) AddWebTotal(i int) *KeywordDocCountUpdateOne {
	kdcuo.mutation.AddWebTotal(i)
	return kdcuo
}

// SetNewsTotal sets the "news_total" field.
func (kdcuo *KeywordDocCountUpdateOne) SetNewsTotal(i int) *KeywordDocCountUpdateOne {
	kdcuo.mutation.ResetNewsTotal()
	kdcuo.mutation.SetNewsTotal(i)
	return kdcuo
}

// SetNillableNewsTotal sets the "news_total" field if the given value is not nil.
func (kdcuo *KeywordDocCountUpdateOne) SetNillableNewsTotal(i *int) *KeywordDocCountUpdateOne {
	if i != nil {
		kdcuo.SetNewsTotal(*i)
	}
	return kdcuo
}

// AddNewsTotal adds i to the "news_total" field.
func (kdcuo *KeywordDocCountUpdateOne) AddNewsTotal(i int) *KeywordDocCountUpdateOne {
	kdcuo.mutation.AddNewsTotal(i)
	return kdcuo
}

// SetCollectedAt sets the "collected_at" field.
func (kdcuo *KeywordDocCountUpdateOne) SetCollectedAt(t time.Time) *KeywordDocCountUpdateOne {
	kdcuo.mutation.SetCollectedAt(t)
	return kdcuo
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (kdcuo *KeywordDocCountUpdateOne) SetNillableCollectedAt(t *time.Time) *KeywordDocCountUpdateOne {
	if t != nil {
		kdcuo.SetCollectedAt(*t)
	}
	return kdcuo
}

// Mutation returns the KeywordDocCountMutation object of the builder.
func (kdcuo *KeywordDocCountUpdateOne) Mutation() *KeywordDocCountMutation {
	return kdcuo.mutation
}

// Where appends a list predicates to the KeywordDocCountUpdate builder.
func (kdcuo *KeywordDocCountUpdateOne) Where(ps ...predicate.KeywordDocCount) *KeywordDocCountUpdateOne {
	kdcuo.mutation.Where(ps...)
	return kdcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (kdcuo *KeywordDocCountUpdateOne) Select(field string, fields ...string) *KeywordDocCountUpdateOne {
	kdcuo.fields = append([]string{field}, fields...)
	return kdcuo
}

// Save executes the query and returns the updated KeywordDocCount entity.
func (kdcuo *KeywordDocCountUpdateOne) Save(ctx context.Context) (*KeywordDocCount, error) {
	kdcuo.defaults()
	return withHooks(ctx, kdcuo.sqlSave, kdcuo.mutation, kdcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (kdcuo *KeywordDocCountUpdateOne) SaveX(ctx context.Context) *KeywordDocCount {
	node, err := kdcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (kdcuo *KeywordDocCountUpdateOne) Exec(ctx context.Context) error {
	_, err := kdcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (kdcuo *KeywordDocCountUpdateOne) ExecX(ctx context.Context) {
	if err := kdcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (kdcuo *KeywordDocCountUpdateOne) defaults() {
	if _, ok := kdcuo.mutation.UpdatedAt(); !ok {
		v := keyworddoccount.UpdateDefaultUpdatedAt()
		kdcuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (kdcuo *KeywordDocCountUpdateOne) check() error {
	if v, ok := kdcuo.mutation.Keyword(); ok {
		if err := keyworddoccount.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.keyword": %w`, err)}
		}
	}
	if v, ok := kdcuo.mutation.BlogTotal(); ok {
		if err := keyworddoccount.BlogTotalValidator(v); err != nil {
			return &ValidationError{Name: "blog_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.blog_total": %w`, err)}
		}
	}
	if v, ok := kdcuo.mutation.CafeTotal(); ok {
		if err := keyworddoccount.CafeTotalValidator(v); err != nil {
			return &ValidationError{Name: "cafe_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.cafe_total": %w`, err)}
		}
	}
	if v, ok := kdcuo.mutation.WebTotal(); ok {
		if err := keyworddoccount.WebTotalValidator(v); err != nil {
			return &ValidationError{Name: "web_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.web_total": %w`, err)}
		}
	}
	if v, ok := kdcuo.mutation.NewsTotal(); ok {
		if err := keyworddoccount.NewsTotalValidator(v); err != nil {
			return &ValidationError{Name: "news_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.news_total": %w`, err)}
		}
	}
	return nil
}

func (kdcuo *KeywordDocCountUpdateOne) sqlSave(ctx context.Context) (_node *KeywordDocCount, err error) {
	if err := kdcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(keyworddoccount.Table, keyworddoccount.Columns, sqlgraph.NewFieldSpec(keyworddoccount.FieldID, field.TypeString))
	id, ok := kdcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KeywordDocCount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := kdcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, keyworddoccount.FieldID)
		for _, f := range fields {
			if !keyworddoccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != keyworddoccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := kdcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := kdcuo.mutation.UpdatedAt(); ok {
		_spec.SetField(keyworddoccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := kdcuo.mutation.Keyword(); ok {
		_spec.SetField(keyworddoccount.FieldKeyword, field.TypeString, value)
	}
	if value, ok := kdcuo.mutation.BlogTotal(); ok {
		_spec.SetField(keyworddoccount.FieldBlogTotal, field.TypeInt, value)
	}
	if value, ok := kdcuo.mutation.AddedBlogTotal(); ok {
		_spec.AddField(keyworddoccount.FieldBlogTotal, field.TypeInt, value)
	}
	if value, ok := kdcuo.mutation.CafeTotal(); ok {
		_spec.SetField(keyworddoccount.FieldCafeTotal, field.TypeInt, value)
	}
	if value, ok := kdcuo.mutation.AddedCafeTotal(); ok {
		_spec.AddField(keyworddoccount.FieldCafeTotal, field.TypeInt, value)
	}
	if value, ok := kdcuo.mutation.WebTotal(); ok {
		_spec.SetField(keyworddoccount.FieldWebTotal, field.TypeInt, value)
	}
	if value, ok := kdcuo.mutation.AddedWebTotal(); ok {
		_spec.AddField(keyworddoccount.FieldWebTotal, field.TypeInt, value)
	}
	if value, ok := kdcuo.mutation.NewsTotal(); ok {
		_spec.SetField(keyworddoccount.FieldNewsTotal, field.TypeInt, value)
	}
	if value, ok := kdcuo.mutation.AddedNewsTotal(); ok {
		_spec.AddField(keyworddoccount.FieldNewsTotal, field.TypeInt, value)
	}
	if value, ok := kdcuo.mutation.CollectedAt(); ok {
		_spec.SetField(keyworddoccount.FieldCollectedAt, field.TypeTime, value)
	}
	_node = &KeywordDocCount{config: kdcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, kdcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{keyworddoccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	kdcuo.mutation.done = true
	return _node, nil
}
