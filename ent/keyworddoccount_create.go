// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"kwlab-go-backend/ent/keyworddoccount"
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// KeywordDocCountCreate is the builder for creating a KeywordDocCount entity.
type KeywordDocCountCreate struct {
	config
	mutation *KeywordDocCountMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (kdcc *KeywordDocCountCreate) SetCreatedAt(t time.Time) *KeywordDocCountCreate {
	kdcc.mutation.SetCreatedAt(t)
	return kdcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (kdcc *KeywordDocCountCreate) SetNillableCreatedAt(t *time.Time) *KeywordDocCountCreate {
	if t != nil {
		kdcc.SetCreatedAt(*t)
	}
	return kdcc
}

// SetUpdatedAt sets the "updated_at" field.
func (kdcc *KeywordDocCountCreate) SetUpdatedAt(t time.Time) *KeywordDocCountCreate {
	kdcc.mutation.SetUpdatedAt(t)
	return kdcc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (kdcc *KeywordDocCountCreate) SetNillableUpdatedAt(t *time.Time) *KeywordDocCountCreate {
	if t != nil {
		kdcc.SetUpdatedAt(*t)
	}
	return kdcc
}

// SetKeyword sets the "keyword" field.
func (kdcc *KeywordDocCountCreate) SetKeyword(s string) *KeywordDocCountCreate {
	kdcc.mutation.SetKeyword(s)
	return kdcc
}

// SetBlogTotal sets the "blog_total" field.
func (kdcc *KeywordDocCountCreate) SetBlogTotal(i int) *KeywordDocCountCreate {
	kdcc.mutation.SetBlogTotal(i)
	return kdcc
}

// SetNillableBlogTotal sets the "blog_total" field if the given value is not nil.
func (kdcc *KeywordDocCountCreate) SetNillableBlogTotal(i *int) *KeywordDocCountCreate {
	if i != nil {
		kdcc.SetBlogTotal(*i)
	}
	return kdcc
}

// SetCafeTotal sets the "cafe_total" field.
func (kdcc *KeywordDocCountCreate) SetCafeTotal(i int) *KeywordDocCountCreate {
	kdcc.mutation.SetCafeTotal(i)
	return kdcc
}

// SetNillableCafeTotal sets the "cafe_total" field if the given value is not nil.
func (kdcc *KeywordDocCountCreate) SetNillableCafeTotal(i *int) *KeywordDocCountCreate {
	if i != nil {
		kdcc.SetCafeTotal(*i)
	}
	return kdcc
}

// SetWebTotal sets the "web_total" field.
func (kdcc *KeywordDocCountCreate) SetWebTotal(i int) *KeywordDocCountCreate {
	kdcc.mutation.SetWebTotal(i)
	return kdcc
}

// SetNillableWebTotal sets the "web_total" field if the given value is not nil.
func (kdcc *KeywordDocCountCreate) SetNillableWebTotal(i *int) *KeywordDocCountCreate {
	if i != nil {
		kdcc.SetWebTotal(*i)
	}
	return kdcc
}

// SetNewsTotal sets the "news_total" field.
func (kdcc *KeywordDocCountCreate) SetNewsTotal(i int) *KeywordDocCountCreate {
	kdcc.mutation.SetNewsTotal(i)
	return kdcc
}

// SetNillableNewsTotal sets the "news_total" field if the given value is not nil.
func (kdcc *KeywordDocCountCreate) SetNillableNewsTotal(i *int) *KeywordDocCountCreate {
	if i != nil {
		kdcc.SetNewsTotal(*i)
	}
	return kdcc
}

// SetCollectedAt sets the "collected_at" field.
func (kdcc *KeywordDocCountCreate) SetCollectedAt(t time.Time) *KeywordDocCountCreate {
	kdcc.mutation.SetCollectedAt(t)
	return kdcc
}

// SetID sets the "id" field.
func (kdcc *KeywordDocCountCreate) SetID(u ulid.ID) *KeywordDocCountCreate {
	kdcc.mutation.SetID(u)
	return kdcc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (kdcc *KeywordDocCountCreate) SetNillableID(u *ulid.ID) *KeywordDocCountCreate {
	if u != nil {
		kdcc.SetID(*u)
	}
	return kdcc
}

// Mutation returns the KeywordDocCountMutation object of the builder.
func (kdcc *KeywordDocCountCreate) Mutation() *KeywordDocCountMutation {
	return kdcc.mutation
}

// Save creates the KeywordDocCount in the database.
func (kdcc *KeywordDocCountCreate) Save(ctx context.Context) (*KeywordDocCount, error) {
	kdcc.defaults()
	return withHooks(ctx, kdcc.sqlSave, kdcc.mutation, kdcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (kdcc *KeywordDocCountCreate) SaveX(ctx context.Context) *KeywordDocCount {
	v, err := kdcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (kdcc *KeywordDocCountCreate) Exec(ctx context.Context) error {
	_, err := kdcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (kdcc *KeywordDocCountCreate) ExecX(ctx context.Context) {
	if err := kdcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (kdcc *KeywordDocCountCreate) defaults() {
	if _, ok := kdcc.mutation.CreatedAt(); !ok {
		v := keyworddoccount.DefaultCreatedAt()
		kdcc.mutation.SetCreatedAt(v)
	}
	if _, ok := kdcc.mutation.UpdatedAt(); !ok {
		v := keyworddoccount.DefaultUpdatedAt()
		kdcc.mutation.SetUpdatedAt(v)
	}
	if _, ok := kdcc.mutation.BlogTotal(); !ok {
		v := keyworddoccount.DefaultBlogTotal
		kdcc.mutation.SetBlogTotal(v)
	}
	if _, ok := kdcc.mutation.CafeTotal(); !ok {
		v := keyworddoccount.DefaultCafeTotal
		kdcc.mutation.SetCafeTotal(v)
	}
	if _, ok := kdcc.mutation.WebTotal(); !ok {
		v := keyworddoccount.DefaultWebTotal
		kdcc.mutation.SetWebTotal(v)
	}
	if _, ok := kdcc.mutation.NewsTotal(); !ok {
		v := keyworddoccount.DefaultNewsTotal
		kdcc.mutation.SetNewsTotal(v)
	}
	if _, ok := kdcc.mutation.ID(); !ok {
		v := keyworddoccount.DefaultID()
		kdcc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (kdcc *KeywordDocCountCreate) check() error {
	if _, ok := kdcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KeywordDocCount.created_at"`)}
	}
	if _, ok := kdcc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "KeywordDocCount.updated_at"`)}
	}
	if _, ok := kdcc.mutation.Keyword(); !ok {
		return &ValidationError{Name: "keyword", err: errors.New(`ent: missing required field "KeywordDocCount.keyword"`)}
	}
	if v, ok := kdcc.mutation.Keyword(); ok {
		if err := keyworddoccount.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.keyword": %w`, err)}
		}
	}
	if _, ok := kdcc.mutation.BlogTotal(); !ok {
		return &ValidationError{Name: "blog_total", err: errors.New(`ent: missing required field "KeywordDocCount.blog_total"`)}
	}
	if v, ok := kdcc.mutation.BlogTotal(); ok {
		if err := keyworddoccount.BlogTotalValidator(v); err != nil {
			return &ValidationError{Name: "blog_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.blog_total": %w`, err)}
		}
	}
	if _, ok := kdcc.mutation.CafeTotal(); !ok {
		return &ValidationError{Name: "cafe_total", err: errors.New(`ent: missing required field "KeywordDocCount.cafe_total"`)}
	}
	if v, ok := kdcc.mutation.CafeTotal(); ok {
		if err := keyworddoccount.CafeTotalValidator(v); err != nil {
			return &ValidationError{Name: "cafe_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.cafe_total": %w`, err)}
		}
	}
	if _, ok := kdcc.mutation.WebTotal(); !ok {
		return &ValidationError{Name: "web_total", err: errors.New(`ent: missing required field "KeywordDocCount.web_total"`)}
	}
	if v, ok := kdcc.mutation.WebTotal(); ok {
		if err := keyworddoccount.WebTotalValidator(v); err != nil {
			return &ValidationError{Name: "web_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.web_total": %w`, err)}
		}
	}
	if _, ok := kdcc.mutation.NewsTotal(); !ok {
		return &ValidationError{Name: "news_total", err: errors.New(`ent: missing required field "KeywordDocCount.news_total"`)}
	}
	if v, ok := kdcc.mutation.NewsTotal(); ok {
		if err := keyworddoccount.NewsTotalValidator(v); err != nil {
			return &ValidationError{Name: "news_total", err: fmt.Errorf(`ent: validator failed for field "KeywordDocCount.news_total": %w`, err)}
		}
	}
	if _, ok := kdcc.mutation.CollectedAt(); !ok {
		return &ValidationError{Name: "collected_at", err: errors.New(`ent: missing required field "KeywordDocCount.collected_at"`)}
	}
	return nil
}

func (kdcc *KeywordDocCountCreate) sqlSave(ctx context.Context) (*KeywordDocCount, error) {
	if err := kdcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := kdcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, kdcc.driver, _spec); err != nil {
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
	kdcc.mutation.id = &_node.ID
	kdcc.mutation.done = true
	return _node, nil
}

func (kdcc *KeywordDocCountCreate) createSpec() (*KeywordDocCount, *sqlgraph.CreateSpec) {
	var (
		_node = &KeywordDocCount{config: kdcc.config}
		_spec = sqlgraph.NewCreateSpec(keyworddoccount.Table, sqlgraph.NewFieldSpec(keyworddoccount.FieldID, field.TypeString))
	)
	_spec.OnConflict = kdcc.conflict
	if id, ok := kdcc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := kdcc.mutation.CreatedAt(); ok {
		_spec.SetField(keyworddoccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := kdcc.mutation.UpdatedAt(); ok {
		_spec.SetField(keyworddoccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := kdcc.mutation.Keyword(); ok {
		_spec.SetField(keyworddoccount.FieldKeyword, field.TypeString, value)
		_node.Keyword = value
	}
	if value, ok := kdcc.mutation.BlogTotal(); ok {
		_spec.SetField(keyworddoccount.FieldBlogTotal, field.TypeInt, value)
		_node.BlogTotal = value
	}
	if value, ok := kdcc.mutation.CafeTotal(); ok {
		_spec.SetField(keyworddoccount.FieldCafeTotal, field.TypeInt, value)
		_node.CafeTotal = value
	}
	if value, ok := kdcc.mutation.WebTotal(); ok {
		_spec.SetField(keyworddoccount.FieldWebTotal, field.TypeInt, value)
		_node.WebTotal = value
	}
	if value, ok := kdcc.mutation.NewsTotal(); ok {
		_spec.SetField(keyworddoccount.FieldNewsTotal, field.TypeInt, value)
		_node.NewsTotal = value
	}
	if value, ok := kdcc.mutation.CollectedAt(); ok {
		_spec.SetField(keyworddoccount.FieldCollectedAt, field.TypeTime, value)
		_node.CollectedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.KeywordDocCount.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KeywordDocCountUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (kdcc *KeywordDocCountCreate) OnConflict(opts ...sql.ConflictOption) *KeywordDocCountUpsertOne {
	kdcc.conflict = opts
	return &KeywordDocCountUpsertOne{
		create: kdcc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.KeywordDocCount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (kdcc *KeywordDocCountCreate) OnConflictColumns(columns ...string) *KeywordDocCountUpsertOne {
	kdcc.conflict = append(kdcc.conflict, sql.ConflictColumns(columns...))
	return &KeywordDocCountUpsertOne{
		create: kdcc,
	}
}

type (
	// KeywordDocCountUpsertOne is the builder for "upsert"-ing
	//  one KeywordDocCount node.
	KeywordDocCountUpsertOne struct {
		create *KeywordDocCountCreate
	}

	// KeywordDocCountUpsert is the "OnConflict" setter.
	KeywordDocCountUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *KeywordDocCountUpsert) SetUpdatedAt(v time.Time) *KeywordDocCountUpsert {
	u.Set(keyworddoccount.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *KeywordDocCountUpsert) UpdateUpdatedAt() *KeywordDocCountUpsert {
	u.SetExcluded(keyworddoccount.FieldUpdatedAt)
	return u
}

// SetKeyword sets the "keyword" field.
func (u *KeywordDocCountUpsert) SetKeyword(v string) *KeywordDocCountUpsert {
	u.Set(keyworddoccount.FieldKeyword, v)
	return u
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *KeywordDocCountUpsert) UpdateKeyword() *KeywordDocCountUpsert {
	u.SetExcluded(keyworddoccount.FieldKeyword)
	return u
}

// SetBlogTotal sets the "blog_total" field.
func (u *KeywordDocCountUpsert) SetBlogTotal(v int) *KeywordDocCountUpsert {
	u.Set(keyworddoccount.FieldBlogTotal, v)
	return u
}

// UpdateBlogTotal sets the "blog_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsert) UpdateBlogTotal() *KeywordDocCountUpsert {
	u.SetExcluded(keyworddoccount.FieldBlogTotal)
	return u
}

// AddBlogTotal adds v to the "blog_total" field.
func (u *KeywordDocCountUpsert) AddBlogTotal(v int) *KeywordDocCountUpsert {
	u.Add(keyworddoccount.FieldBlogTotal, v)
	return u
}

// SetCafeTotal sets the "cafe_total" field.
func (u *KeywordDocCountUpsert) SetCafeTotal(v int) *KeywordDocCountUpsert {
	u.Set(keyworddoccount.FieldCafeTotal, v)
	return u
}

// UpdateCafeTotal sets the "cafe_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsert) UpdateCafeTotal() *KeywordDocCountUpsert {
	u.SetExcluded(keyworddoccount.FieldCafeTotal)
	return u
}

// AddCafeTotal adds v to the "cafe_total" field.
func (u *KeywordDocCountUpsert) AddCafeTotal(v int) *KeywordDocCountUpsert {
	u.Add(keyworddoccount.FieldCafeTotal, v)
	return u
}

// SetWebTotal sets the "web_total" field.
func (u *KeywordDocCountUpsert) SetWebTotal(v int) *KeywordDocCountUpsert {
	u.Set(keyworddoccount.FieldWebTotal, v)
	return u
}

// UpdateWebTotal sets the "web_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsert) UpdateWebTotal() *KeywordDocCountUpsert {
	u.SetExcluded(keyworddoccount.FieldWebTotal)
	return u
}

// AddWebTotal adds v to the "web_total" field.
func (u *KeywordDocCountUpsert) AddWebTotal(v int) *KeywordDocCountUpsert {
	u.Add(keyworddoccount.FieldWebTotal, v)
	return u
}

// SetNewsTotal sets the "news_total" field.
func (u *KeywordDocCountUpsert) SetNewsTotal(v int) *KeywordDocCountUpsert {
	u.Set(keyworddoccount.FieldNewsTotal, v)
	return u
}

// UpdateNewsTotal sets the "news_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsert) UpdateNewsTotal() *KeywordDocCountUpsert {
	u.SetExcluded(keyworddoccount.FieldNewsTotal)
	return u
}

// AddNewsTotal adds v to the "news_total" field.
func (u *KeywordDocCountUpsert) AddNewsTotal(v int) *KeywordDocCountUpsert {
	u.Add(keyworddoccount.FieldNewsTotal, v)
	return u
}

// SetCollectedAt sets the "collected_at" field.
func (u *KeywordDocCountUpsert) SetCollectedAt(v time.Time) *KeywordDocCountUpsert {
	u.Set(keyworddoccount.FieldCollectedAt, v)
	return u
}

// UpdateCollectedAt sets the "collected_at" field to the value that was provided on create.
func (u *KeywordDocCountUpsert) UpdateCollectedAt() *KeywordDocCountUpsert {
	u.SetExcluded(keyworddoccount.FieldCollectedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.KeywordDocCount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(keyworddoccount.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *KeywordDocCountUpsertOne) UpdateNewValues() *KeywordDocCountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(keyworddoccount.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(keyworddoccount.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.KeywordDocCount.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *KeywordDocCountUpsertOne) Ignore() *KeywordDocCountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KeywordDocCountUpsertOne) DoNothing() *KeywordDocCountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KeywordDocCountCreate.OnConflict
// documentation for more info.
func (u *KeywordDocCountUpsertOne) Update(set func(*KeywordDocCountUpsert)) *KeywordDocCountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KeywordDocCountUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *KeywordDocCountUpsertOne) SetUpdatedAt(v time.Time) *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *KeywordDocCountUpsertOne) UpdateUpdatedAt() *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetKeyword sets the "keyword" field.
func (u *KeywordDocCountUpsertOne) SetKeyword(v string) *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetKeyword(v)
	})
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *KeywordDocCountUpsertOne) UpdateKeyword() *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateKeyword()
	})
}

// SetBlogTotal sets the "blog_total" field.
func (u *KeywordDocCountUpsertOne) SetBlogTotal(v int) *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetBlogTotal(v)
	})
}

// AddBlogTotal adds v to the "blog_total" field.
func (u *KeywordDocCountUpsertOne) AddBlogTotal(v int) *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.AddBlogTotal(v)
	})
}

// UpdateBlogTotal sets the "blog_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsertOne) UpdateBlogTotal() *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateBlogTotal()
	})
}

// SetCafeTotal sets the "cafe_total" field.
func (u *KeywordDocCountUpsertOne) SetCafeTotal(v int) *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetCafeTotal(v)
	})
}

// AddCafeTotal adds v to the "cafe_total" field.
func (u *KeywordDocCountUpsertOne) AddCafeTotal(v int) *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.AddCafeTotal(v)
	})
}

// UpdateCafeTotal sets the "cafe_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsertOne) UpdateCafeTotal() *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateCafeTotal()
	})
}

// SetWebTotal sets the "web_total" field.
func (u *KeywordDocCountUpsertOne) SetWebTotal(v int) *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetWebTotal(v)
	})
}

// AddWebTotal adds v to the "web_total" field.
func (u *KeywordDocCountUpsertOne) AddWebTotal(v int) *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.AddWebTotal(v)
	})
}

// UpdateWebTotal sets the "web_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsertOne) UpdateWebTotal() *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateWebTotal()
	})
}

// SetNewsTotal sets the "news_total" field.
func (u *KeywordDocCountUpsertOne) SetNewsTotal(v int) *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetNewsTotal(v)
	})
}

// AddNewsTotal adds v to the "news_total" field.
func (u *KeywordDocCountUpsertOne) AddNewsTotal(v int) *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.AddNewsTotal(v)
	})
}

// UpdateNewsTotal sets the "news_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsertOne) UpdateNewsTotal() *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateNewsTotal()
	})
}

// SetCollectedAt sets the "collected_at" field.
func (u *KeywordDocCountUpsertOne) SetCollectedAt(v time.Time) *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetCollectedAt(v)
	})
}

// UpdateCollectedAt sets the "collected_at" field to the value that was provided on create.
func (u *KeywordDocCountUpsertOne) UpdateCollectedAt() *KeywordDocCountUpsertOne {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateCollectedAt()
	})
}

// Exec executes the query.
func (u *KeywordDocCountUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for KeywordDocCountCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KeywordDocCountUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *KeywordDocCountUpsertOne) ID(ctx context.Context) (id ulid.ID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: KeywordDocCountUpsertOne.ID is not supported by MySQL driver. Use KeywordDocCountUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *KeywordDocCountUpsertOne) IDX(ctx context.Context) ulid.ID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// KeywordDocCountCreateBulk is the builder for creating many KeywordDocCount entities in bulk.
type KeywordDocCountCreateBulk struct {
	config
	err      error
	builders []*KeywordDocCountCreate
	conflict []sql.ConflictOption
}

// Save creates the KeywordDocCount entities in the database.
func (kdccb *KeywordDocCountCreateBulk) Save(ctx context.Context) ([]*KeywordDocCount, error) {
	if kdccb.err != nil {
		return nil, kdccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(kdccb.builders))
	nodes := make([]*KeywordDocCount, len(kdccb.builders))
	mutators := make([]Mutator, len(kdccb.builders))
	for i := range kdccb.builders {
		func(i int, root context.Context) {
			builder := kdccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KeywordDocCountMutation)
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
					_, err = mutators[i+1].Mutate(root, kdccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = kdccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, kdccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, kdccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (kdccb *KeywordDocCountCreateBulk) SaveX(ctx context.Context) []*KeywordDocCount {
	v, err := kdccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (kdccb *KeywordDocCountCreateBulk) Exec(ctx context.Context) error {
	_, err := kdccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (kdccb *KeywordDocCountCreateBulk) ExecX(ctx context.Context) {
	if err := kdccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.KeywordDocCount.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KeywordDocCountUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (kdccb *KeywordDocCountCreateBulk) OnConflict(opts ...sql.ConflictOption) *KeywordDocCountUpsertBulk {
	kdccb.conflict = opts
	return &KeywordDocCountUpsertBulk{
		create: kdccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.KeywordDocCount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (kdccb *KeywordDocCountCreateBulk) OnConflictColumns(columns ...string) *KeywordDocCountUpsertBulk {
	kdccb.conflict = append(kdccb.conflict, sql.ConflictColumns(columns...))
	return &KeywordDocCountUpsertBulk{
		create: kdccb,
	}
}

// KeywordDocCountUpsertBulk is the builder for "upsert"-ing
// a bulk of KeywordDocCount nodes.
type KeywordDocCountUpsertBulk struct {
	create *KeywordDocCountCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.KeywordDocCount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(keyworddoccount.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *KeywordDocCountUpsertBulk) UpdateNewValues() *KeywordDocCountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(keyworddoccount.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(keyworddoccount.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.KeywordDocCount.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *KeywordDocCountUpsertBulk) Ignore() *KeywordDocCountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KeywordDocCountUpsertBulk) DoNothing() *KeywordDocCountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KeywordDocCountCreateBulk.OnConflict
// documentation for more info.
func (u *KeywordDocCountUpsertBulk) Update(set func(*KeywordDocCountUpsert)) *KeywordDocCountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KeywordDocCountUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *KeywordDocCountUpsertBulk) SetUpdatedAt(v time.Time) *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *KeywordDocCountUpsertBulk) UpdateUpdatedAt() *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetKeyword sets the "keyword" field.
func (u *KeywordDocCountUpsertBulk) SetKeyword(v string) *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetKeyword(v)
	})
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *KeywordDocCountUpsertBulk) UpdateKeyword() *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateKeyword()
	})
}

// SetBlogTotal sets the "blog_total" field.
func (u *KeywordDocCountUpsertBulk) SetBlogTotal(v int) *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetBlogTotal(v)
	})
}

// AddBlogTotal adds v to the "blog_total" field.
func (u *KeywordDocCountUpsertBulk) AddBlogTotal(v int) *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.AddBlogTotal(v)
	})
}

// UpdateBlogTotal sets the "blog_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsertBulk) UpdateBlogTotal() *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateBlogTotal()
	})
}

// SetCafeTotal sets the "cafe_total" field.
func (u *KeywordDocCountUpsertBulk) SetCafeTotal(v int) *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetCafeTotal(v)
	})
}

// AddCafeTotal adds v to the "cafe_total" field.
func (u *KeywordDocCountUpsertBulk) AddCafeTotal(v int) *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.AddCafeTotal(v)
	})
}

// UpdateCafeTotal sets the "cafe_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsertBulk) UpdateCafeTotal() *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateCafeTotal()
	})
}

// SetWebTotal sets the "web_total" field.
func (u *KeywordDocCountUpsertBulk) SetWebTotal(v int) *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetWebTotal(v)
	})
}

// AddWebTotal adds v to the "web_total" field.
func (u *KeywordDocCountUpsertBulk) AddWebTotal(v int) *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.AddWebTotal(v)
	})
}

// UpdateWebTotal sets the "web_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsertBulk) UpdateWebTotal() *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateWebTotal()
	})
}

// SetNewsTotal sets the "news_total" field.
func (u *KeywordDocCountUpsertBulk) SetNewsTotal(v int) *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetNewsTotal(v)
	})
}

// AddNewsTotal adds v to the "news_total" field.
func (u *KeywordDocCountUpsertBulk) AddNewsTotal(v int) *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.AddNewsTotal(v)
	})
}

// UpdateNewsTotal sets the "news_total" field to the value that was provided on create.
func (u *KeywordDocCountUpsertBulk) UpdateNewsTotal() *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateNewsTotal()
	})
}

// SetCollectedAt sets the "collected_at" field.
func (u *KeywordDocCountUpsertBulk) SetCollectedAt(v time.Time) *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.SetCollectedAt(v)
	})
}

// UpdateCollectedAt sets the "collected_at" field to the value that was provided on create.
func (u *KeywordDocCountUpsertBulk) UpdateCollectedAt() *KeywordDocCountUpsertBulk {
	return u.Update(func(s *KeywordDocCountUpsert) {
		s.UpdateCollectedAt()
	})
}

// Exec executes the query.
func (u *KeywordDocCountUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the KeywordDocCountCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for KeywordDocCountCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KeywordDocCountUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
