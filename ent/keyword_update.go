// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"kwlab-go-backend/ent/keyword"
	"kwlab-go-backend/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// KeywordUpdate is the builder for updating Keyword entities.
type KeywordUpdate struct {
	config
	hooks    []Hook
	mutation *KeywordMutation
}

// Where appends a list predicates to the KeywordUpdate builder.
func (ku *KeywordUpdate) Where(ps ...predicate.Keyword) *KeywordUpdate {
	ku.mutation.Where(ps...)
	return ku
}

// SetUpdatedAt sets the "updated_at" field.
func (ku *KeywordUpdate) SetUpdatedAt(t time.Time) *KeywordUpdate {
	ku.mutation.SetUpdatedAt(t)
	return ku
}

// SetKeyword sets the "keyword" field.
func (ku *KeywordUpdate) SetKeyword(s string) *KeywordUpdate {
	ku.mutation.SetKeyword(s)
	return ku
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (ku *KeywordUpdate) SetNillableKeyword(s *string) *KeywordUpdate {
	if s != nil {
		ku.SetKeyword(*s)
	}
	return ku
}

// SetMonthlyPcSearch sets the "monthly_pc_search" field.
func (ku *KeywordUpdate) SetMonthlyPcSearch(i int) *KeywordUpdate {
	ku.mutation.ResetMonthlyPcSearch()
	ku.mutation.SetMonthlyPcSearch(i)
	return ku
}

// SetNillableMonthlyPcSearch sets the "monthly_pc_search" field if the given value is not nil.
func (ku *KeywordUpdate) SetNillableMonthlyPcSearch(i *int) *KeywordUpdate {
	if i != nil {
		ku.SetMonthlyPcSearch(*i)
	}
	return ku
}

// AddMonthlyPcSearch adds i to the "monthly_pc_search" field.
func (ku *KeywordUpdate) AddMonthlyPcSearch(i int) *KeywordUpdate {
	ku.mutation.AddMonthlyPcSearch(i)
	return ku
}

// SetMonthlyMobileSearch sets the "monthly_mobile_search" field.
func (ku *KeywordUpdate) SetMonthlyMobileSearch(i int) *KeywordUpdate {
	ku.mutation.ResetMonthlyMobileSearch()
	ku.mutation.SetMonthlyMobileSearch(i)
	return ku
}

// SetNillableMonthlyMobileSearch sets the "monthly_mobile_search" field if the given value is not nil.
func (ku *KeywordUpdate) SetNillableMonthlyMobileSearch(i *int) *KeywordUpdate {
	if i != nil {
		ku.SetMonthlyMobileSearch(*i)
	}
	return ku
}

// AddMonthlyMobileSearch adds i to the "monthly_mobile_search" field.
func (ku *KeywordUpdate) AddMonthlyMobileSearch(i int) *KeywordUpdate {
	ku.mutation.AddMonthlyMobileSearch(i)
	return ku
}

// SetAvgMonthlySearch sets the "avg_monthly_search" field.
func (ku *KeywordUpdate) SetAvgMonthlySearch(i int) *KeywordUpdate {
	ku.mutation.ResetAvgMonthlySearch()
	ku.mutation.SetAvgMonthlySearch(i)
	return ku
}

// SetNillableAvgMonthlySearch sets the "avg_monthly_search" field if the given value is not nil.
func (ku *KeywordUpdate) SetNillableAvgMonthlySearch(i *int) *KeywordUpdate {
	if i != nil {
		ku.SetAvgMonthlySearch(*i)
	}
	return ku
}

// AddAvgMonthlySearch adds i to the "avg_monthly_search" field.
func (ku *KeywordUpdate) AddAvgMonthlySearch(i int) *KeywordUpdate {
	ku.mutation.AddAvgMonthlySearch(i)
	return ku
}

// SetMonthlyClickPc sets the "monthly_click_pc" field.
func (ku *KeywordUpdate) SetMonthlyClickPc(f float64) *KeywordUpdate {
	ku.mutation.ResetMonthlyClickPc()
	ku.mutation.SetMonthlyClickPc(f)
	return ku
}

// SetNillableMonthlyClickPc sets the "monthly_click_pc" field if the given value is not nil.
func (ku *KeywordUpdate) SetNillableMonthlyClickPc(f *float64) *KeywordUpdate {
	if f != nil {
		ku.SetMonthlyClickPc(*f)
	}
	return ku
}

// AddMonthlyClickPc adds f to the "monthly_click_pc" field.
func (ku *KeywordUpdate) AddMonthlyClickPc(f float64) *KeywordUpdate {
	ku.mutation.AddMonthlyClickPc(f)
	return ku
}

// SetMonthlyClickMobile sets the "monthly_click_mobile" field.
func (ku *KeywordUpdate) SetMonthlyClickMobile(f float64) *KeywordUpdate {
	ku.mutation.ResetMonthlyClickMobile()
	ku.mutation.SetMonthlyClickMobile(f)
	return ku
}

// SetNillableMonthlyClickMobile sets the "monthly_click_mobile" field if the given value is not nil.
func (ku *KeywordUpdate) SetNillableMonthlyClickMobile(f *float64) *KeywordUpdate {
	if f != nil {
		ku.SetMonthlyClickMobile(*f)
	}
	return ku
}

// AddMonthlyClickMobile adds f to the "monthly_click_mobile" field.
func (ku *KeywordUpdate) AddMonthlyClickMobile(f float64) *KeywordUpdate {
	ku.mutation.AddMonthlyClickMobile(f)
	return ku
}

// SetCtrPc sets the "ctr_pc" field.
func (ku *KeywordUpdate) SetCtrPc(f float64) *KeywordUpdate {
	ku.mutation.ResetCtrPc()
	ku.mutation.SetCtrPc(f)
	return ku
}

// SetNillableCtrPc sets the "ctr_pc" field if the given value is not nil.
func (ku *KeywordUpdate) SetNillableCtrPc(f *float64) *KeywordUpdate {
	if f != nil {
		ku.SetCtrPc(*f)
	}
	return ku
}

// AddCtrPc adds f to the "ctr_pc" field.
func (ku *KeywordUpdate) AddCtrPc(f float64) *KeywordUpdate {
	ku.mutation.AddCtrPc(f)
	return ku
}

// SetCtrMobile sets the "ctr_mobile" field.
func (ku *KeywordUpdate) SetCtrMobile(f float64) *KeywordUpdate {
	ku.mutation.ResetCtrMobile()
	ku.mutation.SetCtrMobile(f)
	return ku
}

// SetNillableCtrMobile sets the "ctr_mobile" field if the given value is not nil.
func (ku *KeywordUpdate) SetNillableCtrMobile(f *float64) *KeywordUpdate {
	if f != nil {
		ku.SetCtrMobile(*f)
	}
	return ku
}

// AddCtrMobile adds f to the "ctr_mobile" field.
func (ku *KeywordUpdate) AddCtrMobile(f float64) *KeywordUpdate {
	ku.mutation.AddCtrMobile(f)
	return ku
}

// SetAdDepth sets the "ad_depth" field.
func (ku *KeywordUpdate) SetAdDepth(i int) *KeywordUpdate {
	ku.mutation.ResetAdDepth()
	ku.mutation.SetAdDepth(i)
	return ku
}

// SetNillableAdDepth sets the "ad_depth" field if the given value is not nil.
func (ku *KeywordUpdate) SetNillableAdDepth(i *int) *KeywordUpdate {
	if i != nil {
		ku.SetAdDepth(*i)
	}
	return ku
}

// AddAdDepth adds i to the "ad_depth" field.
func (ku *KeywordUpdate) AddAdDepth(i int) *KeywordUpdate {
	ku.mutation.AddAdDepth(i)
	return ku
}

// SetCompetition sets the "competition" field.
func (ku *KeywordUpdate) SetCompetition(s string) *KeywordUpdate {
	ku.mutation.SetCompetition(s)
	return ku
}

// SetNillableCompetition sets the "competition" field if the given value is not nil.
func (ku *KeywordUpdate) SetNillableCompetition(s *string) *KeywordUpdate {
	if s != nil {
		ku.SetCompetition(*s)
	}
	return ku
}

// SetSeed sets the "seed" field.
func (ku *KeywordUpdate) SetSeed(s string) *KeywordUpdate {
	ku.mutation.SetSeed(s)
	return ku
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (ku *KeywordUpdate) SetNillableSeed(s *string) *KeywordUpdate {
	if s != nil {
		ku.SetSeed(*s)
	}
	return ku
}

// Mutation returns the KeywordMutation object of the builder.
func (ku *KeywordUpdate) Mutation() *KeywordMutation {
	return ku.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ku *KeywordUpdate) Save(ctx context.Context) (int, error) {
	ku.defaults()
	return withHooks(ctx, ku.sqlSave, ku.mutation, ku.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ku *KeywordUpdate) SaveX(ctx context.Context) int {
	affected, err := ku.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ku *KeywordUpdate) Exec(ctx context.Context) error {
	_, err := ku.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ku *KeywordUpdate) ExecX(ctx context.Context) {
	if err := ku.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ku *KeywordUpdate) defaults() {
	if _, ok := ku.mutation.UpdatedAt(); !ok {
		v := keyword.UpdateDefaultUpdatedAt()
		ku.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ku *KeywordUpdate) check() error {
	if v, ok := ku.mutation.Keyword(); ok {
		if err := keyword.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "Keyword.keyword": %w`, err)}
		}
	}
	if v, ok := ku.mutation.MonthlyPcSearch(); ok {
		if err := keyword.MonthlyPcSearchValidator(v); err != nil {
			return &ValidationError{Name: "monthly_pc_search", err: fmt.Errorf(`ent: validator failed for field "Keyword.monthly_pc_search": %w`, err)}
		}
	}
	if v, ok := ku.mutation.MonthlyMobileSearch(); ok {
		if err := keyword.MonthlyMobileSearchValidator(v); err != nil {
			return &ValidationError{Name: "monthly_mobile_search", err: fmt.Errorf(`ent: validator failed for field "Keyword.monthly_mobile_search": %w`, err)}
		}
	}
	if v, ok := ku.mutation.AvgMonthlySearch(); ok {
		if err := keyword.AvgMonthlySearchValidator(v); err != nil {
			return &ValidationError{Name: "avg_monthly_search", err: fmt.Errorf(`ent: validator failed for field "Keyword.avg_monthly_search": %w`, err)}
		}
	}
	if v, ok := ku.mutation.AdDepth(); ok {
		if err := keyword.AdDepthValidator(v); err != nil {
			return &ValidationError{Name: "ad_depth", err: fmt.Errorf(`ent: validator failed for field "Keyword.ad_depth": %w`, err)}
		}
	}
	if v, ok := ku.mutation.Competition(); ok {
		if err := keyword.CompetitionValidator(v); err != nil {
			return &ValidationError{Name: "competition", err: fmt.Errorf(`ent: validator failed for field "Keyword.competition": %w`, err)}
		}
	}
	if v, ok := ku.mutation.Seed(); ok {
		if err := keyword.SeedValidator(v); err != nil {
			return &ValidationError{Name: "seed", err: fmt.Errorf(`ent: validator failed for field "Keyword.seed": %w`, err)}
		}
	}
	return nil
}

func (ku *KeywordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ku.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(keyword.Table, keyword.Columns, sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeString))
	if ps := ku.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ku.mutation.UpdatedAt(); ok {
		_spec.SetField(keyword.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := ku.mutation.Keyword(); ok {
		_spec.SetField(keyword.FieldKeyword, field.TypeString, value)
	}
	if value, ok := ku.mutation.MonthlyPcSearch(); ok {
		_spec.SetField(keyword.FieldMonthlyPcSearch, field.TypeInt, value)
	}
	if value, ok := ku.mutation.AddedMonthlyPcSearch(); ok {
		_spec.AddField(keyword.FieldMonthlyPcSearch, field.TypeInt, value)
	}
	if value, ok := ku.mutation.MonthlyMobileSearch(); ok {
		_spec.SetField(keyword.FieldMonthlyMobileSearch, field.TypeInt, value)
	}
	if value, ok := ku.mutation.AddedMonthlyMobileSearch(); ok {
		_spec.AddField(keyword.FieldMonthlyMobileSearch, field.TypeInt, value)
	}
	if value, ok := ku.mutation.AvgMonthlySearch(); ok {
		_spec.SetField(keyword.FieldAvgMonthlySearch, field.TypeInt, value)
	}
	if value, ok := ku.mutation.AddedAvgMonthlySearch(); ok {
		_spec.AddField(keyword.FieldAvgMonthlySearch, field.TypeInt, value)
	}
	if value, ok := ku.mutation.MonthlyClickPc(); ok {
		_spec.SetField(keyword.FieldMonthlyClickPc, field.TypeFloat64, value)
	}
	if value, ok := ku.mutation.AddedMonthlyClickPc(); ok {
		_spec.AddField(keyword.FieldMonthlyClickPc, field.TypeFloat64, value)
	}
	if value, ok := ku.mutation.MonthlyClickMobile(); ok {
		_spec.SetField(keyword.FieldMonthlyClickMobile, field.TypeFloat64, value)
	}
	if value, ok := ku.mutation.AddedMonthlyClickMobile(); ok {
		_spec.AddField(keyword.FieldMonthlyClickMobile, field.TypeFloat64, value)
	}
	if value, ok := ku.mutation.CtrPc(); ok {
		_spec.SetField(keyword.FieldCtrPc, field.TypeFloat64, value)
	}
	if value, ok := ku.mutation.AddedCtrPc(); ok {
		_spec.AddField(keyword.FieldCtrPc, field.TypeFloat64, value)
	}
	if value, ok := ku.mutation.CtrMobile(); ok {
		_spec.SetField(keyword.FieldCtrMobile, field.TypeFloat64, value)
	}
	if value, ok := ku.mutation.AddedCtrMobile(); ok {
		_spec.AddField(keyword.FieldCtrMobile, field.TypeFloat64, value)
	}
	if value, ok := ku.mutation.AdDepth(); ok {
		_spec.SetField(keyword.FieldAdDepth, field.TypeInt, value)
	}
	if value, ok := ku.mutation.AddedAdDepth(); ok {
		_spec.AddField(keyword.FieldAdDepth, field.TypeInt, value)
	}
	if value, ok := ku.mutation.Competition(); ok {
		_spec.SetField(keyword.FieldCompetition, field.TypeString, value)
	}
	if value, ok := ku.mutation.Seed(); ok {
		_spec.SetField(keyword.FieldSeed, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ku.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{keyword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ku.mutation.done = true
	return n, nil
}

// KeywordUpdateOne is the builder for updating a single Keyword entity.
type KeywordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KeywordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (kuo *KeywordUpdateOne) SetUpdatedAt(t time.Time) *KeywordUpdateOne {
	kuo.mutation.SetUpdatedAt(t)
	return kuo
}

// SetKeyword sets the "keyword" field.
func (kuo *KeywordUpdateOne) SetKeyword(s string) *KeywordUpdateOne {
	kuo.mutation.SetKeyword(s)
	return kuo
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (kuo *KeywordUpdateOne) SetNillableKeyword(s *string) *KeywordUpdateOne {
	if s != nil {
		kuo.SetKeyword(*s)
	}
	return kuo
}

// SetMonthlyPcSearch sets the "monthly_pc_search" field.
func (kuo *KeywordUpdateOne) SetMonthlyPcSearch(i int) *KeywordUpdateOne {
	kuo.mutation.ResetMonthlyPcSearch()
	kuo.mutation.SetMonthlyPcSearch(i)
	return kuo
}

// SetNillableMonthlyPcSearch sets the "monthly_pc_search" field if the given value is not nil.
func (kuo *KeywordUpdateOne) SetNillableMonthlyPcSearch(i *int) *KeywordUpdateOne {
	if i != nil {
		kuo.SetMonthlyPcSearch(*i)
	}
	return kuo
}

// AddMonthlyPcSearch adds i to the "monthly_pc_search" field.
func (kuo *KeywordUpdateOne) AddMonthlyPcSearch(i int) *KeywordUpdateOne {
	kuo.mutation.AddMonthlyPcSearch(i)
	return kuo
}

// SetMonthlyMobileSearch sets the "monthly_mobile_search" field.
func (kuo *KeywordUpdateOne) SetMonthlyMobileSearch(i int) *KeywordUpdateOne {
	kuo.mutation.ResetMonthlyMobileSearch()
	kuo.mutation.SetMonthlyMobileSearch(i)
	return kuo
}

// SetNillableMonthlyMobileSearch sets the "monthly_mobile_search" field if the given value is not nil.
func (kuo *KeywordUpdateOne) SetNillableMonthlyMobileSearch(i *int) *KeywordUpdateOne {
	if i != nil {
		kuo.SetMonthlyMobileSearch(*i)
	}
	return kuo
}

// AddMonthlyMobileSearch adds i to the "monthly_mobile_search" field.
func (kuo *KeywordUpdateOne) AddMonthlyMobileSearch(i int) *KeywordUpdateOne {
	kuo.mutation.AddMonthlyMobileSearch(i)
	return kuo
}

// SetAvgMonthlySearch sets the "avg_monthly_search" field.
func (kuo *KeywordUpdateOne) SetAvgMonthlySearch(i int) *KeywordUpdateOne {
	kuo.mutation.ResetAvgMonthlySearch()
	kuo.mutation.SetAvgMonthlySearch(i)
	return kuo
}

// SetNillableAvgMonthlySearch sets the "avg_monthly_search" field if the given value is not nil.
func (kuo *KeywordUpdateOne) SetNillableAvgMonthlySearch(i *int) *KeywordUpdateOne {
	if i != nil {
		kuo.SetAvgMonthlySearch(*i)
	}
	return kuo
}

// AddAvgMonthlySearch adds i to the "avg_monthly_search" field.
func (kuo *KeywordUpdateOne) AddAvgMonthlySearch(i int) *KeywordUpdateOne {
	kuo.mutation.AddAvgMonthlySearch(i)
	return kuo
}

// SetMonthlyClickPc sets the "monthly_click_pc" field.
func (kuo *KeywordUpdateOne) SetMonthlyClickPc(f float64) *KeywordUpdateOne {
	kuo.mutation.ResetMonthlyClickPc()
	kuo.mutation.SetMonthlyClickPc(f)
	return kuo
}

// SetNillableMonthlyClickPc sets the "monthly_click_pc" field if the given value is not nil.
func (kuo *KeywordUpdateOne) SetNillableMonthlyClickPc(f *float64) *KeywordUpdateOne {
	if f != nil {
		kuo.SetMonthlyClickPc(*f)
	}
	return kuo
}

// AddMonthlyClickPc adds f to the "monthly_click_pc" field.
func (kuo *KeywordUpdateOne) AddMonthlyClickPc(f float64) *KeywordUpdateOne {
	kuo.mutation.AddMonthlyClickPc(f)
	return kuo
}

// SetMonthlyClickMobile sets the "monthly_click_mobile" field.
func (kuo *KeywordUpdateOne) SetMonthlyClickMobile(f float64) *KeywordUpdateOne {
	kuo.mutation.ResetMonthlyClickMobile()
	kuo.mutation.SetMonthlyClickMobile(f)
	return kuo
}

// SetNillableMonthlyClickMobile sets the "monthly_click_mobile" field if the given value is not nil.
func (kuo *KeywordUpdateOne) SetNillableMonthlyClickMobile(f *float64) *KeywordUpdateOne {
	if f != nil {
		kuo.SetMonthlyClickMobile(*f)
	}
	return kuo
}

// AddMonthlyClickMobile adds f to the "monthly_click_mobile" field.
func (kuo *KeywordUpdateOne) AddMonthlyClickMobile(f float64) *KeywordUpdateOne {
	kuo.mutation.AddMonthlyClickMobile(f)
	return kuo
}

// SetCtrPc sets the "ctr_pc" field.
func (kuo *KeywordUpdateOne) SetCtrPc(f float64) *KeywordUpdateOne {
	kuo.mutation.ResetCtrPc()
	kuo.mutation.SetCtrPc(f)
	return kuo
}

// SetNillableCtrPc sets the "ctr_pc" field if the given value is not nil.
func (kuo *KeywordUpdateOne) SetNillableCtrPc(f *float64) *KeywordUpdateOne {
	if f != nil {
		kuo.SetCtrPc(*f)
	}
	return kuo
}

// AddCtrPc adds f to the "ctr_pc" field.
func (kuo *KeywordUpdateOne) AddCtrPc(f float64) *KeywordUpdateOne {
	kuo.mutation.AddCtrPc(f)
	return kuo
}

// SetCtrMobile sets the "ctr_mobile" field.
func (kuo *KeywordUpdateOne) SetCtrMobile(f float64) *KeywordUpdateOne {
	kuo.mutation.ResetCtrMobile()
	kuo.mutation.SetCtrMobile(f)
	return kuo
}

// SetNillableCtrMobile sets the "ctr_mobile" field if the given value is not nil.
func (kuo *KeywordUpdateOne) SetNillableCtrMobile(f *float64) *KeywordUpdateOne {
	if f != nil {
		kuo.SetCtrMobile(*f)
	}
	return kuo
}

// AddCtrMobile adds f to the "ctr_mobile" field.
func (kuo *KeywordUpdateOne) AddCtrMobile(f float64) *KeywordUpdateOne {
	kuo.mutation.AddCtrMobile(f)
	return kuo
}

// SetAdDepth sets the "ad_depth" field.
func (kuo *KeywordUpdateOne) SetAdDepth(i int) *KeywordUpdateOne {
	kuo.mutation.ResetAdDepth()
	kuo.mutation.SetAdDepth(i)
	return kuo
}

// SetNillableAdDepth sets the "ad_depth" field if the given value is not nil.
func (kuo *KeywordUpdateOne) SetNillableAdDepth(i *int) *KeywordUpdateOne {
	if i != nil {
		kuo.SetAdDepth(*i)
	}
	return kuo
}

// AddAdDepth adds i to the "ad_depth" field.
func (kuo *KeywordUpdateOne) AddAdDepth(i int) *KeywordUpdateOne {
	kuo.mutation.AddAdDepth(i)
	return kuo
}

// SetCompetition sets the "competition" field.
func (kuo *KeywordUpdateOne) SetCompetition(s string) *KeywordUpdateOne {
	kuo.mutation.SetCompetition(s)
	return kuo
}

// SetNillableCompetition sets the "competition" field if the given value is not nil.
func (kuo *KeywordUpdateOne) SetNillableCompetition(s *string) *KeywordUpdateOne {
	if s != nil {
		kuo.SetCompetition(*s)
	}
	return kuo
}

// SetSeed sets the "seed" field.
func (kuo *KeywordUpdateOne) SetSeed(s string) *KeywordUpdateOne {
	kuo.mutation.SetSeed(s)
	return kuo
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (kuo *KeywordUpdateOne) SetNillableSeed(s *string) *KeywordUpdateOne {
	if s != nil {
		kuo.SetSeed(*s)
	}
	return kuo
}

// Mutation returns the KeywordMutation object of the builder.
func (kuo *KeywordUpdateOne) Mutation() *KeywordMutation {
	return kuo.mutation
}

// Where appends a list predicates to the KeywordUpdate builder.
func (kuo *KeywordUpdateOne) Where(ps ...predicate.Keyword) *KeywordUpdateOne {
	kuo.mutation.Where(ps...)
	return kuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (kuo *KeywordUpdateOne) Select(field string, fields ...string) *KeywordUpdateOne {
	kuo.fields = append([]string{field}, fields...)
	return kuo
}

// Save executes the query and returns the updated Keyword entity.
func (kuo *KeywordUpdateOne) Save(ctx context.Context) (*Keyword, error) {
	kuo.defaults()
	return withHooks(ctx, kuo.sqlSave, kuo.mutation, kuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (kuo *KeywordUpdateOne) SaveX(ctx context.Context) *Keyword {
	node, err := kuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (kuo *KeywordUpdateOne) Exec(ctx context.Context) error {
	_, err := kuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (kuo *KeywordUpdateOne) ExecX(ctx context.Context) {
	if err := kuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (kuo *KeywordUpdateOne) defaults() {
	if _, ok := kuo.mutation.UpdatedAt(); !ok {
		v := keyword.UpdateDefaultUpdatedAt()
		kuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (kuo *KeywordUpdateOne) check() error {
	if v, ok := kuo.mutation.Keyword(); ok {
		if err := keyword.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "Keyword.keyword": %w`, err)}
		}
	}
	if v, ok := kuo.mutation.MonthlyPcSearch(); ok {
		if err := keyword.MonthlyPcSearchValidator(v); err != nil {
			return &ValidationError{Name: "monthly_pc_search", err: fmt.Errorf(`ent: validator failed for field "Keyword.monthly_pc_search": %w`, err)}
		}
	}
	if v, ok := kuo.mutation.MonthlyMobileSearch(); ok {
		if err := keyword.MonthlyMobileSearchValidator(v); err != nil {
			return &ValidationError{Name: "monthly_mobile_search", err: fmt.Errorf(`ent: validator failed for field "Keyword.monthly_mobile_search": %w`, err)}
		}
	}
	if v, ok := kuo.mutation.AvgMonthlySearch(); ok {
		if err := keyword.AvgMonthlySearchValidator(v); err != nil {
			return &ValidationError{Name: "avg_monthly_search", err: fmt.Errorf(`ent: validator failed for field "Keyword.avg_monthly_search": %w`, err)}
		}
	}
	if v, ok := kuo.mutation.AdDepth(); ok {
		if err := keyword.AdDepthValidator(v); err != nil {
			return &ValidationError{Name: "ad_depth", err: fmt.Errorf(`ent: validator failed for field "Keyword.ad_depth": %w`, err)}
		}
	}
	if v, ok := kuo.mutation.Competition(); ok {
		if err := keyword.CompetitionValidator(v); err != nil {
			return &ValidationError{Name: "competition", err: fmt.Errorf(`ent: validator failed for field "Keyword.competition": %w`, err)}
		}
	}
	if v, ok := kuo.mutation.Seed(); ok {
		if err := keyword.SeedValidator(v); err != nil {
			return &ValidationError{Name: "seed", err: fmt.Errorf(`ent: validator failed for field "Keyword.seed": %w`, err)}
		}
	}
	return nil
}

func (kuo *KeywordUpdateOne) sqlSave(ctx context.Context) (_node *Keyword, err error) {
	if err := kuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(keyword.Table, keyword.Columns, sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeString))
	id, ok := kuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Keyword.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := kuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, keyword.FieldID)
		for _, f := range fields {
			if !keyword.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != keyword.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := kuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := kuo.mutation.UpdatedAt(); ok {
		_spec.SetField(keyword.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := kuo.mutation.Keyword(); ok {
		_spec.SetField(keyword.FieldKeyword, field.TypeString, value)
	}
	if value, ok := kuo.mutation.MonthlyPcSearch(); ok {
		_spec.SetField(keyword.FieldMonthlyPcSearch, field.TypeInt, value)
	}
	if value, ok := kuo.mutation.AddedMonthlyPcSearch(); ok {
		_spec.AddField(keyword.FieldMonthlyPcSearch, field.TypeInt, value)
	}
	if value, ok := kuo.mutation.MonthlyMobileSearch(); ok {
		_spec.SetField(keyword.FieldMonthlyMobileSearch, field.TypeInt, value)
	}
	if value, ok := kuo.mutation.AddedMonthlyMobileSearch(); ok {
		_spec.AddField(keyword.FieldMonthlyMobileSearch, field.TypeInt, value)
	}
	if value, ok := kuo.mutation.AvgMonthlySearch(); ok {
		_spec.SetField(keyword.FieldAvgMonthlySearch, field.TypeInt, value)
	}
	if value, ok := kuo.mutation.AddedAvgMonthlySearch(); ok {
		_spec.AddField(keyword.FieldAvgMonthlySearch, field.TypeInt, value)
	}
	if value, ok := kuo.mutation.MonthlyClickPc(); ok {
		_spec.SetField(keyword.FieldMonthlyClickPc, field.TypeFloat64, value)
	}
	if value, ok := kuo.mutation.AddedMonthlyClickPc(); ok {
		_spec.AddField(keyword.FieldMonthlyClickPc, field.TypeFloat64, value)
	}
	if value, ok := kuo.mutation.MonthlyClickMobile(); ok {
		_spec.SetField(keyword.FieldMonthlyClickMobile, field.TypeFloat64, value)
	}
	if value, ok := kuo.mutation.AddedMonthlyClickMobile(); ok {
		_spec.AddField(keyword.FieldMonthlyClickMobile, field.TypeFloat64, value)
	}
	if value, ok := kuo.mutation.CtrPc(); ok {
		_spec.SetField(keyword.FieldCtrPc, field.TypeFloat64, value)
	}
	if value, ok := kuo.mutation.AddedCtrPc(); ok {
		_spec.AddField(keyword.FieldCtrPc, field.TypeFloat64, value)
	}
	if value, ok := kuo.mutation.CtrMobile(); ok {
		_spec.SetField(keyword.FieldCtrMobile, field.TypeFloat64, value)
	}
	if value, ok := kuo.mutation.AddedCtrMobile(); ok {
		_spec.AddField(keyword.FieldCtrMobile, field.TypeFloat64, value)
	}
	if value, ok := kuo.mutation.AdDepth(); ok {
		_spec.SetField(keyword.FieldAdDepth, field.TypeInt, value)
	}
	if value, ok := kuo.mutation.AddedAdDepth(); ok {
		_spec.AddField(keyword.FieldAdDepth, field.TypeInt, value)
	}
	if value, ok := kuo.mutation.Competition(); ok {
		_spec.SetField(keyword.FieldCompetition, field.TypeString, value)
	}
	if value, ok := kuo.mutation.Seed(); ok {
		_spec.SetField(keyword.FieldSeed, field.TypeString, value)
	}
	_node = &Keyword{config: kuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, kuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{keyword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	kuo.mutation.done = true
	return _node, nil
}
