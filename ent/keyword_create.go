// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"kwlab-go-backend/ent/keyword"
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// KeywordCreate is the builder for creating a Keyword entity.
type KeywordCreate struct {
	config
	mutation *KeywordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (kc *KeywordCreate) SetCreatedAt(t time.Time) *KeywordCreate {
	kc.mutation.SetCreatedAt(t)
	return kc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableCreatedAt(t *time.Time) *KeywordCreate {
	if t != nil {
		kc.SetCreatedAt(*t)
	}
	return kc
}

// SetUpdatedAt sets the "updated_at" field.
func (kc *KeywordCreate) SetUpdatedAt(t time.Time) *KeywordCreate {
	kc.mutation.SetUpdatedAt(t)
	return kc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableUpdatedAt(t *time.Time) *KeywordCreate {
	if t != nil {
		kc.SetUpdatedAt(*t)
	}
	return kc
}

// SetKeyword sets the "keyword" field.
func (kc *KeywordCreate) SetKeyword(s string) *KeywordCreate {
	kc.mutation.SetKeyword(s)
	return kc
}

// SetMonthlyPcSearch sets the "monthly_pc_search" field.
func (kc *KeywordCreate) SetMonthlyPcSearch(i int) *KeywordCreate {
	kc.mutation.SetMonthlyPcSearch(i)
	return kc
}

// SetNillableMonthlyPcSearch sets the "monthly_pc_search" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableMonthlyPcSearch(i *int) *KeywordCreate {
	if i != nil {
		kc.SetMonthlyPcSearch(*i)
	}
	return kc
}

// SetMonthlyMobileSearch sets the "monthly_mobile_search" field.
func (kc *KeywordCreate) SetMonthlyMobileSearch(i int) *KeywordCreate {
	kc.mutation.SetMonthlyMobileSearch(i)
	return kc
}

// SetNillableMonthlyMobileSearch sets the "monthly_mobile_search" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableMonthlyMobileSearch(i *int) *KeywordCreate {
	if i != nil {
		kc.SetMonthlyMobileSearch(*i)
	}
	return kc
}

// SetAvgMonthlySearch sets the "avg_monthly_search" field.
func (kc *KeywordCreate) SetAvgMonthlySearch(i int) *KeywordCreate {
	kc.mutation.SetAvgMonthlySearch(i)
	return kc
}

// SetNillableAvgMonthlySearch sets the "avg_monthly_search" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableAvgMonthlySearch(i *int) *KeywordCreate {
	if i != nil {
		kc.SetAvgMonthlySearch(*i)
	}
	return kc
}

// SetMonthlyClickPc sets the "monthly_click_pc" field.
func (kc *KeywordCreate) SetMonthlyClickPc(f float64) *KeywordCreate {
	kc.mutation.SetMonthlyClickPc(f)
	return kc
}

// SetNillableMonthlyClickPc sets the "monthly_click_pc" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableMonthlyClickPc(f *float64) *KeywordCreate {
	if f != nil {
		kc.SetMonthlyClickPc(*f)
	}
	return kc
}

// SetMonthlyClickMobile sets the "monthly_click_mobile" field.
func (kc *KeywordCreate) SetMonthlyClickMobile(f float64) *KeywordCreate {
	kc.mutation.SetMonthlyClickMobile(f)
	return kc
}

// SetNillableMonthlyClickMobile sets the "monthly_click_mobile" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableMonthlyClickMobile(f *float64) *KeywordCreate {
	if f != nil {
		kc.SetMonthlyClickMobile(*f)
	}
	return kc
}

// SetCtrPc sets the "ctr_pc" field.
func (kc *KeywordCreate) SetCtrPc(f float64) *KeywordCreate {
	kc.mutation.SetCtrPc(f)
	return kc
}

// SetNillableCtrPc sets the "ctr_pc" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableCtrPc(f *float64) *KeywordCreate {
	if f != nil {
		kc.SetCtrPc(*f)
	}
	return kc
}

// SetCtrMobile sets the "ctr_mobile" field.
func (kc *KeywordCreate) SetCtrMobile(f float64) *KeywordCreate {
	kc.mutation.SetCtrMobile(f)
	return kc
}

// SetNillableCtrMobile sets the "ctr_mobile" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableCtrMobile(f *float64) *KeywordCreate {
	if f != nil {
		kc.SetCtrMobile(*f)
	}
	return kc
}

// SetAdDepth sets the "ad_depth" field.
func (kc *KeywordCreate) SetAdDepth(i int) *KeywordCreate {
	kc.mutation.SetAdDepth(i)
	return kc
}

// SetNillableAdDepth sets the "ad_depth" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableAdDepth(i *int) *KeywordCreate {
	if i != nil {
		kc.SetAdDepth(*i)
	}
	return kc
}

// SetCompetition sets the "competition" field.
func (kc *KeywordCreate) SetCompetition(s string) *KeywordCreate {
	kc.mutation.SetCompetition(s)
	return kc
}

// SetNillableCompetition sets the "competition" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableCompetition(s *string) *KeywordCreate {
	if s != nil {
		kc.SetCompetition(*s)
	}
	return kc
}

// SetSeed sets the "seed" field.
func (kc *KeywordCreate) SetSeed(s string) *KeywordCreate {
	kc.mutation.SetSeed(s)
	return kc
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableSeed(s *string) *KeywordCreate {
	if s != nil {
		kc.SetSeed(*s)
	}
	return kc
}

// SetID sets the "id" field.
func (kc *KeywordCreate) SetID(u ulid.ID) *KeywordCreate {
	kc.mutation.SetID(u)
	return kc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (kc *KeywordCreate) SetNillableID(u *ulid.ID) *KeywordCreate {
	if u != nil {
		kc.SetID(*u)
	}
	return kc
}

// Mutation returns the KeywordMutation object of the builder.
func (kc *KeywordCreate) Mutation() *KeywordMutation {
	return kc.mutation
}

// Save creates the Keyword in the database.
func (kc *KeywordCreate) Save(ctx context.Context) (*Keyword, error) {
	kc.defaults()
	return withHooks(ctx, kc.sqlSave, kc.mutation, kc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (kc *KeywordCreate) SaveX(ctx context.Context) *Keyword {
	v, err := kc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (kc *KeywordCreate) Exec(ctx context.Context) error {
	_, err := kc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (kc *KeywordCreate) ExecX(ctx context.Context) {
	if err := kc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (kc *KeywordCreate) defaults() {
	if _, ok := kc.mutation.CreatedAt(); !ok {
		v := keyword.DefaultCreatedAt()
		kc.mutation.SetCreatedAt(v)
	}
	if _, ok := kc.mutation.UpdatedAt(); !ok {
		v := keyword.DefaultUpdatedAt()
		kc.mutation.SetUpdatedAt(v)
	}
	if _, ok := kc.mutation.MonthlyPcSearch(); !ok {
		v := keyword.DefaultMonthlyPcSearch
		kc.mutation.SetMonthlyPcSearch(v)
	}
	if _, ok := kc.mutation.MonthlyMobileSearch(); !ok {
		v := keyword.DefaultMonthlyMobileSearch
		kc.mutation.SetMonthlyMobileSearch(v)
	}
	if _, ok := kc.mutation.AvgMonthlySearch(); !ok {
		v := keyword.DefaultAvgMonthlySearch
		kc.mutation.SetAvgMonthlySearch(v)
	}
	if _, ok := kc.mutation.MonthlyClickPc(); !ok {
		v := keyword.DefaultMonthlyClickPc
		kc.mutation.SetMonthlyClickPc(v)
	}
	if _, ok := kc.mutation.MonthlyClickMobile(); !ok {
		v := keyword.DefaultMonthlyClickMobile
		kc.mutation.SetMonthlyClickMobile(v)
	}
	if _, ok := kc.mutation.CtrPc(); !ok {
		v := keyword.DefaultCtrPc
		kc.mutation.SetCtrPc(v)
	}
	if _, ok := kc.mutation.CtrMobile(); !ok {
		v := keyword.DefaultCtrMobile
		kc.mutation.SetCtrMobile(v)
	}
	if _, ok := kc.mutation.AdDepth(); !ok {
		v := keyword.DefaultAdDepth
		kc.mutation.SetAdDepth(v)
	}
	if _, ok := kc.mutation.Competition(); !ok {
		v := keyword.DefaultCompetition
		kc.mutation.SetCompetition(v)
	}
	if _, ok := kc.mutation.Seed(); !ok {
		v := keyword.DefaultSeed
		kc.mutation.SetSeed(v)
	}
	if _, ok := kc.mutation.ID(); !ok {
		v := keyword.DefaultID()
		kc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (kc *KeywordCreate) check() error {
	if _, ok := kc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Keyword.created_at"`)}
	}
	if _, ok := kc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Keyword.updated_at"`)}
	}
	if _, ok := kc.mutation.Keyword(); !ok {
		return &ValidationError{Name: "keyword", err: errors.New(`ent: missing required field "Keyword.keyword"`)}
	}
	if v, ok := kc.mutation.Keyword(); ok {
		if err := keyword.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "Keyword.keyword": %w`, err)}
		}
	}
	if _, ok := kc.mutation.MonthlyPcSearch(); !ok {
		return &ValidationError{Name: "monthly_pc_search", err: errors.New(`ent: missing required field "Keyword.monthly_pc_search"`)}
	}
	if v, ok := kc.mutation.MonthlyPcSearch(); ok {
		if err := keyword.MonthlyPcSearchValidator(v); err != nil {
			return &ValidationError{Name: "monthly_pc_search", err: fmt.Errorf(`ent: validator failed for field "Keyword.monthly_pc_search": %w`, err)}
		}
	}
	if _, ok := kc.mutation.MonthlyMobileSearch(); !ok {
		return &ValidationError{Name: "monthly_mobile_search", err: errors.New(`ent: missing required field "Keyword.monthly_mobile_search"`)}
	}
	if v, ok := kc.mutation.MonthlyMobileSearch(); ok {
		if err := keyword.MonthlyMobileSearchValidator(v); err != nil {
			return &ValidationError{Name: "monthly_mobile_search", err: fmt.Errorf(`ent: validator failed for field "Keyword.monthly_mobile_search": %w`, err)}
		}
	}
	if _, ok := kc.mutation.AvgMonthlySearch(); !ok {
		return &ValidationError{Name: "avg_monthly_search", err: errors.New(`ent: missing required field "Keyword.avg_monthly_search"`)}
	}
	if v, ok := kc.mutation.AvgMonthlySearch(); ok {
		if err := keyword.AvgMonthlySearchValidator(v); err != nil {
			return &ValidationError{Name: "avg_monthly_search", err: fmt.Errorf(`ent: validator failed for field "Keyword.avg_monthly_search": %w`, err)}
		}
	}
	if _, ok := kc.mutation.MonthlyClickPc(); !ok {
		return &ValidationError{Name: "monthly_click_pc", err: errors.New(`ent: missing required field "Keyword.monthly_click_pc"`)}
	}
	if _, ok := kc.mutation.MonthlyClickMobile(); !ok {
		return &ValidationError{Name: "monthly_click_mobile", err: errors.New(`ent: missing required field "Keyword.monthly_click_mobile"`)}
	}
	if _, ok := kc.mutation.CtrPc(); !ok {
		return &ValidationError{Name: "ctr_pc", err: errors.New(`ent: missing required field "Keyword.ctr_pc"`)}
	}
	if _, ok := kc.mutation.CtrMobile(); !ok {
		return &ValidationError{Name: "ctr_mobile", err: errors.New(`ent: missing required field "Keyword.ctr_mobile"`)}
	}
	if _, ok := kc.mutation.AdDepth(); !ok {
		return &ValidationError{Name: "ad_depth", err: errors.New(`ent: missing required field "Keyword.ad_depth"`)}
	}
	if v, ok := kc.mutation.AdDepth(); ok {
		if err := keyword.AdDepthValidator(v); err != nil {
			return &ValidationError{Name: "ad_depth", err: fmt.Errorf(`ent: validator failed for field "Keyword.ad_depth": %w`, err)}
		}
	}
	if _, ok := kc.mutation.Competition(); !ok {
		return &ValidationError{Name: "competition", err: errors.New(`ent: missing required field "Keyword.competition"`)}
	}
	if v, ok := kc.mutation.Competition(); ok {
		if err := keyword.CompetitionValidator(v); err != nil {
			return &ValidationError{Name: "competition", err: fmt.Errorf(`ent: validator failed for field "Keyword.competition": %w`, err)}
		}
	}
	if _, ok := kc.mutation.Seed(); !ok {
		return &ValidationError{Name: "seed", err: errors.New(`ent: missing required field "Keyword.seed"`)}
	}
	if v, ok := kc.mutation.Seed(); ok {
		if err := keyword.SeedValidator(v); err != nil {
			return &ValidationError{Name: "seed", err: fmt.Errorf(`ent: validator failed for field "Keyword.seed": %w`, err)}
		}
	}
	return nil
}

func (kc *KeywordCreate) sqlSave(ctx context.Context) (*Keyword, error) {
	if err := kc.check(); err != nil {
		return nil, err
	}
	_node, _spec := kc.createSpec()
	if err := sqlgraph.CreateNode(ctx, kc.driver, _spec); err != nil {
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
	kc.mutation.id = &_node.ID
	kc.mutation.done = true
	return _node, nil
}

func (kc *KeywordCreate) createSpec() (*Keyword, *sqlgraph.CreateSpec) {
	var (
		_node = &Keyword{config: kc.config}
		_spec = sqlgraph.NewCreateSpec(keyword.Table, sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeString))
	)
	_spec.OnConflict = kc.conflict
	if id, ok := kc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := kc.mutation.CreatedAt(); ok {
		_spec.SetField(keyword.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := kc.mutation.UpdatedAt(); ok {
		_spec.SetField(keyword.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := kc.mutation.Keyword(); ok {
		_spec.SetField(keyword.FieldKeyword, field.TypeString, value)
		_node.Keyword = value
	}
	if value, ok := kc.mutation.MonthlyPcSearch(); ok {
		_spec.SetField(keyword.FieldMonthlyPcSearch, field.TypeInt, value)
		_node.MonthlyPcSearch = value
	}
	if value, ok := kc.mutation.MonthlyMobileSearch(); ok {
		_spec.SetField(keyword.FieldMonthlyMobileSearch, field.TypeInt, value)
		_node.MonthlyMobileSearch = value
	}
	if value, ok := kc.mutation.AvgMonthlySearch(); ok {
		_spec.SetField(keyword.FieldAvgMonthlySearch, field.TypeInt, value)
		_node.AvgMonthlySearch = value
	}
	if value, ok := kc.mutation.MonthlyClickPc(); ok {
		_spec.SetField(keyword.FieldMonthlyClickPc, field.TypeFloat64, value)
		_node.MonthlyClickPc = value
	}
	if value, ok := kc.mutation.MonthlyClickMobile(); ok {
		_spec.SetField(keyword.FieldMonthlyClickMobile, field.TypeFloat64, value)
		_node.MonthlyClickMobile = value
	}
	if value, ok := kc.mutation.CtrPc(); ok {
		_spec.SetField(keyword.FieldCtrPc, field.TypeFloat64, value)
		_node.CtrPc = value
	}
	if value, ok := kc.mutation.CtrMobile(); ok {
		_spec.SetField(keyword.FieldCtrMobile, field.TypeFloat64, value)
		_node.CtrMobile = value
	}
	if value, ok := kc.mutation.AdDepth(); ok {
		_spec.SetField(keyword.FieldAdDepth, field.TypeInt, value)
		_node.AdDepth = value
	}
	if value, ok := kc.mutation.Competition(); ok {
		_spec.SetField(keyword.FieldCompetition, field.TypeString, value)
		_node.Competition = value
	}
	if value, ok := kc.mutation.Seed(); ok {
		_spec.SetField(keyword.FieldSeed, field.TypeString, value)
		_node.Seed = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Keyword.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KeywordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (kc *KeywordCreate) OnConflict(opts ...sql.ConflictOption) *KeywordUpsertOne {
	kc.conflict = opts
	return &KeywordUpsertOne{
		create: kc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Keyword.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (kc *KeywordCreate) OnConflictColumns(columns ...string) *KeywordUpsertOne {
	kc.conflict = append(kc.conflict, sql.ConflictColumns(columns...))
	return &KeywordUpsertOne{
		create: kc,
	}
}

type (
	// KeywordUpsertOne is the builder for "upsert"-ing
	//  one Keyword node.
	KeywordUpsertOne struct {
		create *KeywordCreate
	}

	// KeywordUpsert is the "OnConflict" setter.
	KeywordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *KeywordUpsert) SetUpdatedAt(v time.Time) *KeywordUpsert {
	u.Set(keyword.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateUpdatedAt() *KeywordUpsert {
	u.SetExcluded(keyword.FieldUpdatedAt)
	return u
}

// SetKeyword sets the "keyword" field.
func (u *KeywordUpsert) SetKeyword(v string) *KeywordUpsert {
	u.Set(keyword.FieldKeyword, v)
	return u
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateKeyword() *KeywordUpsert {
	u.SetExcluded(keyword.FieldKeyword)
	return u
}

// SetMonthlyPcSearch sets the "monthly_pc_search" field.
func (u *KeywordUpsert) SetMonthlyPcSearch(v int) *KeywordUpsert {
	u.Set(keyword.FieldMonthlyPcSearch, v)
	return u
}

// UpdateMonthlyPcSearch sets the "monthly_pc_search" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateMonthlyPcSearch() *KeywordUpsert {
	u.SetExcluded(keyword.FieldMonthlyPcSearch)
	return u
}

// AddMonthlyPcSearch adds v to the "monthly_pc_search" field.
func (u *KeywordUpsert) AddMonthlyPcSearch(v int) *KeywordUpsert {
	u.Add(keyword.FieldMonthlyPcSearch, v)
	return u
}

// SetMonthlyMobileSearch sets the "monthly_mobile_search" field.
func (u *KeywordUpsert) SetMonthlyMobileSearch(v int) *KeywordUpsert {
	u.Set(keyword.FieldMonthlyMobileSearch, v)
	return u
}

// UpdateMonthlyMobileSearch sets the "monthly_mobile_search" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateMonthlyMobileSearch() *KeywordUpsert {
	u.SetExcluded(keyword.FieldMonthlyMobileSearch)
	return u
}

// AddMonthlyMobileSearch adds v to the "monthly_mobile_search" field.
func (u *KeywordUpsert) AddMonthlyMobileSearch(v int) *KeywordUpsert {
	u.Add(keyword.FieldMonthlyMobileSearch, v)
	return u
}

// SetAvgMonthlySearch sets the "avg_monthly_search" field.
func (u *KeywordUpsert) SetAvgMonthlySearch(v int) *KeywordUpsert {
	u.Set(keyword.FieldAvgMonthlySearch, v)
	return u
}

// UpdateAvgMonthlySearch sets the "avg_monthly_search" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateAvgMonthlySearch() *KeywordUpsert {
	u.SetExcluded(keyword.FieldAvgMonthlySearch)
	return u
}

// AddAvgMonthlySearch adds v to the "avg_monthly_search" field.
func (u *KeywordUpsert) AddAvgMonthlySearch(v int) *KeywordUpsert {
	u.Add(keyword.FieldAvgMonthlySearch, v)
	return u
}

// SetMonthlyClickPc sets the "monthly_click_pc" field.
func (u *KeywordUpsert) SetMonthlyClickPc(v float64) *KeywordUpsert {
	u.Set(keyword.FieldMonthlyClickPc, v)
	return u
}

// UpdateMonthlyClickPc sets the "monthly_click_pc" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateMonthlyClickPc() *KeywordUpsert {
	u.SetExcluded(keyword.FieldMonthlyClickPc)
	return u
}

// AddMonthlyClickPc adds v to the "monthly_click_pc" field.
func (u *KeywordUpsert) AddMonthlyClickPc(v float64) *KeywordUpsert {
	u.Add(keyword.FieldMonthlyClickPc, v)
	return u
}

// SetMonthlyClickMobile sets the "monthly_click_mobile" field.
func (u *KeywordUpsert) SetMonthlyClickMobile(v float64) *KeywordUpsert {
	u.Set(keyword.FieldMonthlyClickMobile, v)
	return u
}

// UpdateMonthlyClickMobile sets the "monthly_click_mobile" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateMonthlyClickMobile() *KeywordUpsert {
	u.SetExcluded(keyword.FieldMonthlyClickMobile)
	return u
}

// AddMonthlyClickMobile adds v to the "monthly_click_mobile" field.
func (u *KeywordUpsert) AddMonthlyClickMobile(v float64) *KeywordUpsert {
	u.Add(keyword.FieldMonthlyClickMobile, v)
	return u
}

// SetCtrPc sets the "ctr_pc" field.
func (u *KeywordUpsert) SetCtrPc(v float64) *KeywordUpsert {
	u.Set(keyword.FieldCtrPc, v)
	return u
}

// UpdateCtrPc sets the "ctr_pc" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateCtrPc() *KeywordUpsert {
	u.SetExcluded(keyword.FieldCtrPc)
	return u
}

// AddCtrPc adds v to the "ctr_pc" field.
func (u *KeywordUpsert) AddCtrPc(v float64) *KeywordUpsert {
	u.Add(keyword.FieldCtrPc, v)
	return u
}

// SetCtrMobile sets the "ctr_mobile" field.
func (u *KeywordUpsert) SetCtrMobile(v float64) *KeywordUpsert {
	u.Set(keyword.FieldCtrMobile, v)
	return u
}

// UpdateCtrMobile sets the "ctr_mobile" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateCtrMobile() *KeywordUpsert {
	u.SetExcluded(keyword.FieldCtrMobile)
	return u
}

// AddCtrMobile adds v to the "ctr_mobile" field.
func (u *KeywordUpsert) AddCtrMobile(v float64) *KeywordUpsert {
	u.Add(keyword.FieldCtrMobile, v)
	return u
}

// SetAdDepth sets the "ad_depth" field.
func (u *KeywordUpsert) SetAdDepth(v int) *KeywordUpsert {
	u.Set(keyword.FieldAdDepth, v)
	return u
}

// UpdateAdDepth sets the "ad_depth" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateAdDepth() *KeywordUpsert {
	u.SetExcluded(keyword.FieldAdDepth)
	return u
}

// AddAdDepth adds v to the "ad_depth" field.
func (u *KeywordUpsert) AddAdDepth(v int) *KeywordUpsert {
	u.Add(keyword.FieldAdDepth, v)
	return u
}

// SetCompetition sets the "competition" field.
func (u *KeywordUpsert) SetCompetition(v string) *KeywordUpsert {
	u.Set(keyword.FieldCompetition, v)
	return u
}

// UpdateCompetition sets the "competition" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateCompetition() *KeywordUpsert {
	u.SetExcluded(keyword.FieldCompetition)
	return u
}

// SetSeed sets the "seed" field.
func (u *KeywordUpsert) SetSeed(v string) *KeywordUpsert {
	u.Set(keyword.FieldSeed, v)
	return u
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *KeywordUpsert) UpdateSeed() *KeywordUpsert {
	u.SetExcluded(keyword.FieldSeed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Keyword.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(keyword.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *KeywordUpsertOne) UpdateNewValues() *KeywordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(keyword.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(keyword.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Keyword.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *KeywordUpsertOne) Ignore() *KeywordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KeywordUpsertOne) DoNothing() *KeywordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KeywordCreate.OnConflict
// documentation for more info.
func (u *KeywordUpsertOne) Update(set func(*KeywordUpsert)) *KeywordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KeywordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *KeywordUpsertOne) SetUpdatedAt(v time.Time) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateUpdatedAt() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetKeyword sets the "keyword" field.
func (u *KeywordUpsertOne) SetKeyword(v string) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetKeyword(v)
	})
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateKeyword() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateKeyword()
	})
}

// SetMonthlyPcSearch sets the "monthly_pc_search" field.
func (u *KeywordUpsertOne) SetMonthlyPcSearch(v int) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetMonthlyPcSearch(v)
	})
}

// AddMonthlyPcSearch adds v to the "monthly_pc_search" field.
func (u *KeywordUpsertOne) AddMonthlyPcSearch(v int) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.AddMonthlyPcSearch(v)
	})
}

// UpdateMonthlyPcSearch sets the "monthly_pc_search" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateMonthlyPcSearch() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateMonthlyPcSearch()
	})
}

// SetMonthlyMobileSearch sets the "monthly_mobile_search" field.
func (u *KeywordUpsertOne) SetMonthlyMobileSearch(v int) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetMonthlyMobileSearch(v)
	})
}

// AddMonthlyMobileSearch adds v to the "monthly_mobile_search" field.
func (u *KeywordUpsertOne) AddMonthlyMobileSearch(v int) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.AddMonthlyMobileSearch(v)
	})
}

// UpdateMonthlyMobileSearch sets the "monthly_mobile_search" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateMonthlyMobileSearch() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateMonthlyMobileSearch()
	})
}

// SetAvgMonthlySearch sets the "avg_monthly_search" field.
func (u *KeywordUpsertOne) SetAvgMonthlySearch(v int) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetAvgMonthlySearch(v)
	})
}

// AddAvgMonthlySearch adds v to the "avg_monthly_search" field.
func (u *KeywordUpsertOne) AddAvgMonthlySearch(v int) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.AddAvgMonthlySearch(v)
	})
}

// UpdateAvgMonthlySearch sets the "avg_monthly_search" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateAvgMonthlySearch() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateAvgMonthlySearch()
	})
}

// SetMonthlyClickPc sets the "monthly_click_pc" field.
func (u *KeywordUpsertOne) SetMonthlyClickPc(v float64) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetMonthlyClickPc(v)
	})
}

// AddMonthlyClickPc adds v to the "monthly_click_pc" field.
func (u *KeywordUpsertOne) AddMonthlyClickPc(v float64) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.AddMonthlyClickPc(v)
	})
}

// UpdateMonthlyClickPc sets the "monthly_click_pc" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateMonthlyClickPc() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateMonthlyClickPc()
	})
}

// SetMonthlyClickMobile sets the "monthly_click_mobile" field.
func (u *KeywordUpsertOne) SetMonthlyClickMobile(v float64) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetMonthlyClickMobile(v)
	})
}

// AddMonthlyClickMobile adds v to the "monthly_click_mobile" field.
func (u *KeywordUpsertOne) AddMonthlyClickMobile(v float64) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.AddMonthlyClickMobile(v)
	})
}

// UpdateMonthlyClickMobile sets the "monthly_click_mobile" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateMonthlyClickMobile() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateMonthlyClickMobile()
	})
}

// SetCtrPc sets the "ctr_pc" field.
func (u *KeywordUpsertOne) SetCtrPc(v float64) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetCtrPc(v)
	})
}

// AddCtrPc adds v to the "ctr_pc" field.
func (u *KeywordUpsertOne) AddCtrPc(v float64) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.AddCtrPc(v)
	})
}

// UpdateCtrPc sets the "ctr_pc" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateCtrPc() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateCtrPc()
	})
}

// SetCtrMobile sets the "ctr_mobile" field.
func (u *KeywordUpsertOne) SetCtrMobile(v float64) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetCtrMobile(v)
	})
}

// AddCtrMobile adds v to the "ctr_mobile" field.
func (u *KeywordUpsertOne) AddCtrMobile(v float64) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.AddCtrMobile(v)
	})
}

// UpdateCtrMobile sets the "ctr_mobile" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateCtrMobile() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateCtrMobile()
	})
}

// SetAdDepth sets the "ad_depth" field.
func (u *KeywordUpsertOne) SetAdDepth(v int) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetAdDepth(v)
	})
}

// AddAdDepth adds v to the "ad_depth" field.
func (u *KeywordUpsertOne) AddAdDepth(v int) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.AddAdDepth(v)
	})
}

// UpdateAdDepth sets the "ad_depth" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateAdDepth() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateAdDepth()
	})
}

// SetCompetition sets the "competition" field.
func (u *KeywordUpsertOne) SetCompetition(v string) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetCompetition(v)
	})
}

// UpdateCompetition sets the "competition" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateCompetition() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateCompetition()
	})
}

// SetSeed sets the "seed" field.
func (u *KeywordUpsertOne) SetSeed(v string) *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.SetSeed(v)
	})
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *KeywordUpsertOne) UpdateSeed() *KeywordUpsertOne {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateSeed()
	})
}

// Exec executes the query.
func (u *KeywordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for KeywordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KeywordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *KeywordUpsertOne) ID(ctx context.Context) (id ulid.ID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: KeywordUpsertOne.ID is not supported by MySQL driver. Use KeywordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *KeywordUpsertOne) IDX(ctx context.Context) ulid.ID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// KeywordCreateBulk is the builder for creating many Keyword entities in bulk.
type KeywordCreateBulk struct {
	config
	err      error
	builders []*KeywordCreate
	conflict []sql.ConflictOption
}

// Save creates the Keyword entities in the database.
func (kcb *KeywordCreateBulk) Save(ctx context.Context) ([]*Keyword, error) {
	if kcb.err != nil {
		return nil, kcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(kcb.builders))
	nodes := make([]*Keyword, len(kcb.builders))
	mutators := make([]Mutator, len(kcb.builders))
	for i := range kcb.builders {
		func(i int, root context.Context) {
			builder := kcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KeywordMutation)
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
					_, err = mutators[i+1].Mutate(root, kcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = kcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, kcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, kcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (kcb *KeywordCreateBulk) SaveX(ctx context.Context) []*Keyword {
	v, err := kcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (kcb *KeywordCreateBulk) Exec(ctx context.Context) error {
	_, err := kcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (kcb *KeywordCreateBulk) ExecX(ctx context.Context) {
	if err := kcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Keyword.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KeywordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (kcb *KeywordCreateBulk) OnConflict(opts ...sql.ConflictOption) *KeywordUpsertBulk {
	kcb.conflict = opts
	return &KeywordUpsertBulk{
		create: kcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Keyword.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (kcb *KeywordCreateBulk) OnConflictColumns(columns ...string) *KeywordUpsertBulk {
	kcb.conflict = append(kcb.conflict, sql.ConflictColumns(columns...))
	return &KeywordUpsertBulk{
		create: kcb,
	}
}

// KeywordUpsertBulk is the builder for "upsert"-ing
// a bulk of Keyword nodes.
type KeywordUpsertBulk struct {
	create *KeywordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Keyword.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(keyword.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *KeywordUpsertBulk) UpdateNewValues() *KeywordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(keyword.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(keyword.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Keyword.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *KeywordUpsertBulk) Ignore() *KeywordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KeywordUpsertBulk) DoNothing() *KeywordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KeywordCreateBulk.OnConflict
// documentation for more info.
func (u *KeywordUpsertBulk) Update(set func(*KeywordUpsert)) *KeywordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KeywordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *KeywordUpsertBulk) SetUpdatedAt(v time.Time) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateUpdatedAt() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetKeyword sets the "keyword" field.
func (u *KeywordUpsertBulk) SetKeyword(v string) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetKeyword(v)
	})
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateKeyword() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateKeyword()
	})
}

// SetMonthlyPcSearch sets the "monthly_pc_search" field.
func (u *KeywordUpsertBulk) SetMonthlyPcSearch(v int) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetMonthlyPcSearch(v)
	})
}

// AddMonthlyPcSearch adds v to the "monthly_pc_search" field.
func (u *KeywordUpsertBulk) AddMonthlyPcSearch(v int) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.AddMonthlyPcSearch(v)
	})
}

// UpdateMonthlyPcSearch sets the "monthly_pc_search" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateMonthlyPcSearch() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateMonthlyPcSearch()
	})
}

// SetMonthlyMobileSearch sets the "monthly_mobile_search" field.
func (u *KeywordUpsertBulk) SetMonthlyMobileSearch(v int) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetMonthlyMobileSearch(v)
	})
}

// AddMonthlyMobileSearch adds v to the "monthly_mobile_search" field.
func (u *KeywordUpsertBulk) AddMonthlyMobileSearch(v int) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.AddMonthlyMobileSearch(v)
	})
}

// UpdateMonthlyMobileSearch sets the "monthly_mobile_search" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateMonthlyMobileSearch() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateMonthlyMobileSearch()
	})
}

// SetAvgMonthlySearch sets the "avg_monthly_search" field.
func (u *KeywordUpsertBulk) SetAvgMonthlySearch(v int) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetAvgMonthlySearch(v)
	})
}

// AddAvgMonthlySearch adds v to the "avg_monthly_search" field.
func (u *KeywordUpsertBulk) AddAvgMonthlySearch(v int) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.AddAvgMonthlySearch(v)
	})
}

// UpdateAvgMonthlySearch sets the "avg_monthly_search" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateAvgMonthlySearch() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateAvgMonthlySearch()
	})
}

// SetMonthlyClickPc sets the "monthly_click_pc" field.
func (u *KeywordUpsertBulk) SetMonthlyClickPc(v float64) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetMonthlyClickPc(v)
	})
}

// AddMonthlyClickPc adds v to the "monthly_click_pc" field.
func (u *KeywordUpsertBulk) AddMonthlyClickPc(v float64) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.AddMonthlyClickPc(v)
	})
}

// UpdateMonthlyClickPc sets the "monthly_click_pc" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateMonthlyClickPc() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateMonthlyClickPc()
	})
}

// SetMonthlyClickMobile sets the "monthly_click_mobile" field.
func (u *KeywordUpsertBulk) SetMonthlyClickMobile(v float64) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetMonthlyClickMobile(v)
	})
}

// AddMonthlyClickMobile adds v to the "monthly_click_mobile" field.
func (u *KeywordUpsertBulk) AddMonthlyClickMobile(v float64) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.AddMonthlyClickMobile(v)
	})
}

// UpdateMonthlyClickMobile sets the "monthly_click_mobile" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateMonthlyClickMobile() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateMonthlyClickMobile()
	})
}

// SetCtrPc sets the "ctr_pc" field.
func (u *KeywordUpsertBulk) SetCtrPc(v float64) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetCtrPc(v)
	})
}

// AddCtrPc adds v to the "ctr_pc" field.
func (u *KeywordUpsertBulk) AddCtrPc(v float64) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.AddCtrPc(v)
	})
}

// UpdateCtrPc sets the "ctr_pc" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateCtrPc() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateCtrPc()
	})
}

// SetCtrMobile sets the "ctr_mobile" field.
func (u *KeywordUpsertBulk) SetCtrMobile(v float64) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetCtrMobile(v)
	})
}

// AddCtrMobile adds v to the "ctr_mobile" field.
func (u *KeywordUpsertBulk) AddCtrMobile(v float64) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.AddCtrMobile(v)
	})
}

// UpdateCtrMobile sets the "ctr_mobile" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateCtrMobile() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateCtrMobile()
	})
}

// SetAdDepth sets the "ad_depth" field.
func (u *KeywordUpsertBulk) SetAdDepth(v int) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetAdDepth(v)
	})
}

// AddAdDepth adds v to the "ad_depth" field.
func (u *KeywordUpsertBulk) AddAdDepth(v int) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.AddAdDepth(v)
	})
}

// UpdateAdDepth sets the "ad_depth" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateAdDepth() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateAdDepth()
	})
}

// SetCompetition sets the "competition" field.
func (u *KeywordUpsertBulk) SetCompetition(v string) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetCompetition(v)
	})
}

// UpdateCompetition sets the "competition" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateCompetition() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateCompetition()
	})
}

// SetSeed sets the "seed" field.
func (u *KeywordUpsertBulk) SetSeed(v string) *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.SetSeed(v)
	})
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *KeywordUpsertBulk) UpdateSeed() *KeywordUpsertBulk {
	return u.Update(func(s *KeywordUpsert) {
		s.UpdateSeed()
	})
}

// Exec executes the query.
func (u *KeywordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the KeywordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for KeywordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KeywordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
