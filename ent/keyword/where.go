// Code generated by ent, DO NOT EDIT.

package keyword

import (
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ID) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ID) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ID) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ID) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ID) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ID) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ID) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ID) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ID) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldUpdatedAt, v))
}

// Keyword applies equality check predicate on the "keyword" field. It's identical to KeywordEQ.
func Keyword(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldKeyword, v))
}

// MonthlyPcSearch applies equality check predicate on the "monthly_pc_search" field. It's identical to MonthlyPcSearchEQ.
func MonthlyPcSearch(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldMonthlyPcSearch, v))
}

// MonthlyMobileSearch applies equality check predicate on the "monthly_mobile_search" field. It's identical to MonthlyMobileSearchEQ.
func MonthlyMobileSearch(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldMonthlyMobileSearch, v))
}

// AvgMonthlySearch applies equality check predicate on the "avg_monthly_search" field. It's identical to AvgMonthlySearchEQ.
func AvgMonthlySearch(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldAvgMonthlySearch, v))
}

// MonthlyClickPc applies equality check predicate on the "monthly_click_pc" field. It's identical to MonthlyClickPcEQ.
func MonthlyClickPc(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldMonthlyClickPc, v))
}

// MonthlyClickMobile applies equality check predicate on the "monthly_click_mobile" field. It's identical to MonthlyClickMobileEQ.
func MonthlyClickMobile(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldMonthlyClickMobile, v))
}

// CtrPc applies equality check predicate on the "ctr_pc" field. It's identical to CtrPcEQ.
func CtrPc(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldCtrPc, v))
}

// CtrMobile applies equality check predicate on the "ctr_mobile" field. It's identical to CtrMobileEQ.
func CtrMobile(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldCtrMobile, v))
}

// AdDepth applies equality check predicate on the "ad_depth" field. It's identical to AdDepthEQ.
func AdDepth(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldAdDepth, v))
}

// Competition applies equality check predicate on the "competition" field. It's identical to CompetitionEQ.
func Competition(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldCompetition, v))
}

// Seed applies equality check predicate on the "seed" field. It's identical to SeedEQ.
func Seed(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldSeed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldUpdatedAt, v))
}

// KeywordEQ applies the EQ predicate on the "keyword" field.
func KeywordEQ(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldKeyword, v))
}

// KeywordNEQ applies the NEQ predicate on the "keyword" field.
func KeywordNEQ(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldKeyword, v))
}

// KeywordIn applies the In predicate on the "keyword" field.
func KeywordIn(vs ...string) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldKeyword, vs...))
}

// KeywordNotIn applies the NotIn predicate on the "keyword" field.
func KeywordNotIn(vs ...string) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldKeyword, vs...))
}

// KeywordGT applies the GT predicate on the "keyword" field.
func KeywordGT(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldKeyword, v))
}

// KeywordGTE applies the GTE predicate on the "keyword" field.
func KeywordGTE(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldKeyword, v))
}

// KeywordLT applies the LT predicate on the "keyword" field.
func KeywordLT(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldKeyword, v))
}

// KeywordLTE applies the LTE predicate on the "keyword" field.
func KeywordLTE(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldKeyword, v))
}

// KeywordContains applies the Contains predicate on the "keyword" field.
func KeywordContains(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldContains(FieldKeyword, v))
}

// KeywordHasPrefix applies the HasPrefix predicate on the "keyword" field.
func KeywordHasPrefix(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldHasPrefix(FieldKeyword, v))
}

// KeywordHasSuffix applies the HasSuffix predicate on the "keyword" field.
func KeywordHasSuffix(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldHasSuffix(FieldKeyword, v))
}

// KeywordEqualFold applies the EqualFold predicate on the "keyword" field.
func KeywordEqualFold(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldEqualFold(FieldKeyword, v))
}

// KeywordContainsFold applies the ContainsFold predicate on the "keyword" field.
func KeywordContainsFold(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldContainsFold(FieldKeyword, v))
}

// MonthlyPcSearchEQ applies the EQ predicate on the "monthly_pc_search" field.
func MonthlyPcSearchEQ(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldMonthlyPcSearch, v))
}

// MonthlyPcSearchNEQ applies the NEQ predicate on the "monthly_pc_search" field.
func MonthlyPcSearchNEQ(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldMonthlyPcSearch, v))
}

// MonthlyPcSearchIn applies the In predicate on the "monthly_pc_search" field.
func MonthlyPcSearchIn(vs ...int) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldMonthlyPcSearch, vs...))
}

// MonthlyPcSearchNotIn applies the NotIn predicate on the "monthly_pc_search" field.
func MonthlyPcSearchNotIn(vs ...int) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldMonthlyPcSearch, vs...))
}

// MonthlyPcSearchGT applies the GT predicate on the "monthly_pc_search" field.
func MonthlyPcSearchGT(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldMonthlyPcSearch, v))
}

// MonthlyPcSearchGTE applies the GTE predicate on the "monthly_pc_search" field.
func MonthlyPcSearchGTE(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldMonthlyPcSearch, v))
}

// MonthlyPcSearchLT applies the LT predicate on the "monthly_pc_search" field.
func MonthlyPcSearchLT(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldMonthlyPcSearch, v))
}

// MonthlyPcSearchLTE applies the LTE predicate on the "monthly_pc_search" field.
func MonthlyPcSearchLTE(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldMonthlyPcSearch, v))
}

// MonthlyMobileSearchEQ applies the EQ predicate on the "monthly_mobile_search" field.
func MonthlyMobileSearchEQ(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldMonthlyMobileSearch, v))
}

// MonthlyMobileSearchNEQ applies the NEQ predicate on the "monthly_mobile_search" field.
func MonthlyMobileSearchNEQ(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldMonthlyMobileSearch, v))
}

// MonthlyMobileSearchIn applies the In predicate on the "monthly_mobile_search" field.
func MonthlyMobileSearchIn(vs ...int) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldMonthlyMobileSearch, vs...))
}

// MonthlyMobileSearchNotIn applies the NotIn predicate on the "monthly_mobile_search" field.
func MonthlyMobileSearchNotIn(vs ...int) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldMonthlyMobileSearch, vs...))
}

// MonthlyMobileSearchGT applies the GT predicate on the "monthly_mobile_search" field.
func MonthlyMobileSearchGT(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldMonthlyMobileSearch, v))
}

// MonthlyMobileSearchGTE applies the GTE predicate on the "monthly_mobile_search" field.
func MonthlyMobileSearchGTE(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldMonthlyMobileSearch, v))
}

// MonthlyMobileSearchLT applies the LT predicate on the "monthly_mobile_search" field.
func MonthlyMobileSearchLT(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldMonthlyMobileSearch, v))
}

// MonthlyMobileSearchLTE applies the LTE predicate on the "monthly_mobile_search" field.
func MonthlyMobileSearchLTE(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldMonthlyMobileSearch, v))
}

// AvgMonthlySearchEQ applies the EQ predicate on the "avg_monthly_search" field.
func AvgMonthlySearchEQ(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldAvgMonthlySearch, v))
}

// AvgMonthlySearchNEQ applies the NEQ predicate on the "avg_monthly_search" field.
func AvgMonthlySearchNEQ(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldAvgMonthlySearch, v))
}

// AvgMonthlySearchIn applies the In predicate on the "avg_monthly_search" field.
func AvgMonthlySearchIn(vs ...int) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldAvgMonthlySearch, vs...))
}

// AvgMonthlySearchNotIn applies the NotIn predicate on the "avg_monthly_search" field.
func AvgMonthlySearchNotIn(vs ...int) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldAvgMonthlySearch, vs...))
}

// AvgMonthlySearchGT applies the GT predicate on the "avg_monthly_search" field.
func AvgMonthlySearchGT(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldAvgMonthlySearch, v))
}

// AvgMonthlySearchGTE applies the GTE predicate on the "avg_monthly_search" field.
func AvgMonthlySearchGTE(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldAvgMonthlySearch, v))
}

// AvgMonthlySearchLT applies the LT predicate on the "avg_monthly_search" field.
func AvgMonthlySearchLT(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldAvgMonthlySearch, v))
}

// AvgMonthlySearchLTE applies the LTE predicate on the "avg_monthly_search" field.
func AvgMonthlySearchLTE(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldAvgMonthlySearch, v))
}

// MonthlyClickPcEQ applies the EQ predicate on the "monthly_click_pc" field.
func MonthlyClickPcEQ(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldMonthlyClickPc, v))
}

// MonthlyClickPcNEQ applies the NEQ predicate on the "monthly_click_pc" field.
func MonthlyClickPcNEQ(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldMonthlyClickPc, v))
}

// MonthlyClickPcIn applies the In predicate on the "monthly_click_pc" field.
func MonthlyClickPcIn(vs ...float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldMonthlyClickPc, vs...))
}

// MonthlyClickPcNotIn applies the NotIn predicate on the "monthly_click_pc" field.
func MonthlyClickPcNotIn(vs ...float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldMonthlyClickPc, vs...))
}

// MonthlyClickPcGT applies the GT predicate on the "monthly_click_pc" field.
func MonthlyClickPcGT(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldMonthlyClickPc, v))
}

// MonthlyClickPcGTE applies the GTE predicate on the "monthly_click_pc" field.
func MonthlyClickPcGTE(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldMonthlyClickPc, v))
}

// MonthlyClickPcLT applies the LT predicate on the "monthly_click_pc" field.
func MonthlyClickPcLT(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldMonthlyClickPc, v))
}

// MonthlyClickPcLTE applies the LTE predicate on the "monthly_click_pc" field.
func MonthlyClickPcLTE(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldMonthlyClickPc, v))
}

// MonthlyClickMobileEQ applies the EQ predicate on the "monthly_click_mobile" field.
func MonthlyClickMobileEQ(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldMonthlyClickMobile, v))
}

// MonthlyClickMobileNEQ applies the NEQ predicate on the "monthly_click_mobile" field.
func MonthlyClickMobileNEQ(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldMonthlyClickMobile, v))
}

// MonthlyClickMobileIn applies the In predicate on the "monthly_click_mobile" field.
func MonthlyClickMobileIn(vs ...float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldMonthlyClickMobile, vs...))
}

// MonthlyClickMobileNotIn applies the NotIn predicate on the "monthly_click_mobile" field.
func MonthlyClickMobileNotIn(vs ...float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldMonthlyClickMobile, vs...))
}

// MonthlyClickMobileGT applies the GT predicate on the "monthly_click_mobile" field.
func MonthlyClickMobileGT(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldMonthlyClickMobile, v))
}

// MonthlyClickMobileGTE applies the GTE predicate on the "monthly_click_mobile" field.
func MonthlyClickMobileGTE(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldMonthlyClickMobile, v))
}

// MonthlyClickMobileLT applies the LT predicate on the "monthly_click_mobile" field.
func MonthlyClickMobileLT(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldMonthlyClickMobile, v))
}

// MonthlyClickMobileLTE applies the LTE predicate on the "monthly_click_mobile" field.
func MonthlyClickMobileLTE(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldMonthlyClickMobile, v))
}

// CtrPcEQ applies the EQ predicate on the "ctr_pc" field.
func CtrPcEQ(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldCtrPc, v))
}

// CtrPcNEQ applies the NEQ predicate on the "ctr_pc" field.
func CtrPcNEQ(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldCtrPc, v))
}

// CtrPcIn applies the In predicate on the "ctr_pc" field.
func CtrPcIn(vs ...float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldCtrPc, vs...))
}

// CtrPcNotIn applies the NotIn predicate on the "ctr_pc" field.
func CtrPcNotIn(vs ...float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldCtrPc, vs...))
}

// CtrPcGT applies the GT predicate on the "ctr_pc" field.
func CtrPcGT(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldCtrPc, v))
}

// CtrPcGTE applies the GTE predicate on the "ctr_pc" field.
func CtrPcGTE(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldCtrPc, v))
}

// CtrPcLT applies the LT predicate on the "ctr_pc" field.
func CtrPcLT(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldCtrPc, v))
}

// CtrPcLTE applies the LTE predicate on the "ctr_pc" field.
func CtrPcLTE(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldCtrPc, v))
}

// CtrMobileEQ applies the EQ predicate on the "ctr_mobile" field.
func CtrMobileEQ(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldCtrMobile, v))
}

// CtrMobileNEQ applies the NEQ predicate on the "ctr_mobile" field.
func CtrMobileNEQ(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldCtrMobile, v))
}

// CtrMobileIn applies the In predicate on the "ctr_mobile" field.
func CtrMobileIn(vs ...float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldCtrMobile, vs...))
}

// CtrMobileNotIn applies the NotIn predicate on the "ctr_mobile" field.
func CtrMobileNotIn(vs ...float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldCtrMobile, vs...))
}

// CtrMobileGT applies the GT predicate on the "ctr_mobile" field.
func CtrMobileGT(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldCtrMobile, v))
}

// CtrMobileGTE applies the GTE predicate on the "ctr_mobile" field.
func CtrMobileGTE(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldCtrMobile, v))
}

// CtrMobileLT applies the LT predicate on the "ctr_mobile" field.
func CtrMobileLT(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldCtrMobile, v))
}

// CtrMobileLTE applies the LTE predicate on the "ctr_mobile" field.
func CtrMobileLTE(v float64) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldCtrMobile, v))
}

// AdDepthEQ applies the EQ predicate on the "ad_depth" field.
func AdDepthEQ(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldAdDepth, v))
}

// AdDepthNEQ applies the NEQ predicate on the "ad_depth" field.
func AdDepthNEQ(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldAdDepth, v))
}

// AdDepthIn applies the In predicate on the "ad_depth" field.
func AdDepthIn(vs ...int) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldAdDepth, vs...))
}

// AdDepthNotIn applies the NotIn predicate on the "ad_depth" field.
func AdDepthNotIn(vs ...int) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldAdDepth, vs...))
}

// AdDepthGT applies the GT predicate on the "ad_depth" field.
func AdDepthGT(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldAdDepth, v))
}

// AdDepthGTE applies the GTE predicate on the "ad_depth" field.
func AdDepthGTE(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldAdDepth, v))
}

// AdDepthLT applies the LT predicate on the "ad_depth" field.
func AdDepthLT(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldAdDepth, v))
}

// AdDepthLTE applies the LTE predicate on the "ad_depth" field.
func AdDepthLTE(v int) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldAdDepth, v))
}

// CompetitionEQ applies the EQ predicate on the "competition" field.
func CompetitionEQ(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldCompetition, v))
}

// CompetitionNEQ applies the NEQ predicate on the "competition" field.
func CompetitionNEQ(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldCompetition, v))
}

// CompetitionIn applies the In predicate on the "competition" field.
func CompetitionIn(vs ...string) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldCompetition, vs...))
}

// CompetitionNotIn applies the NotIn predicate on the "competition" field.
func CompetitionNotIn(vs ...string) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldCompetition, vs...))
}

// CompetitionGT applies the GT predicate on the "competition" field.
func CompetitionGT(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldCompetition, v))
}

// CompetitionGTE applies the GTE predicate on the "competition" field.
func CompetitionGTE(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldCompetition, v))
}

// CompetitionLT applies the LT predicate on the "competition" field.
func CompetitionLT(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldCompetition, v))
}

// CompetitionLTE applies the LTE predicate on the "competition" field.
func CompetitionLTE(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldCompetition, v))
}

// CompetitionContains applies the Contains predicate on the "competition" field.
func CompetitionContains(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldContains(FieldCompetition, v))
}

// CompetitionHasPrefix applies the HasPrefix predicate on the "competition" field.
func CompetitionHasPrefix(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldHasPrefix(FieldCompetition, v))
}

// CompetitionHasSuffix applies the HasSuffix predicate on the "competition" field.
func CompetitionHasSuffix(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldHasSuffix(FieldCompetition, v))
}

// CompetitionEqualFold applies the EqualFold predicate on the "competition" field.
func CompetitionEqualFold(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldEqualFold(FieldCompetition, v))
}

// CompetitionContainsFold applies the ContainsFold predicate on the "competition" field.
func CompetitionContainsFold(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldContainsFold(FieldCompetition, v))
}

// SeedEQ applies the EQ predicate on the "seed" field.
func SeedEQ(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldEQ(FieldSeed, v))
}

// SeedNEQ applies the NEQ predicate on the "seed" field.
func SeedNEQ(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldNEQ(FieldSeed, v))
}

// SeedIn applies the In predicate on the "seed" field.
func SeedIn(vs ...string) predicate.Keyword {
	return predicate.Keyword(sql.FieldIn(FieldSeed, vs...))
}

// SeedNotIn applies the NotIn predicate on the "seed" field.
func SeedNotIn(vs ...string) predicate.Keyword {
	return predicate.Keyword(sql.FieldNotIn(FieldSeed, vs...))
}

// SeedGT applies the GT predicate on the "seed" field.
func SeedGT(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldGT(FieldSeed, v))
}

// SeedGTE applies the GTE predicate on the "seed" field.
func SeedGTE(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldGTE(FieldSeed, v))
}

// SeedLT applies the LT predicate on the "seed" field.
func SeedLT(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldLT(FieldSeed, v))
}

// SeedLTE applies the LTE predicate on the "seed" field.
func SeedLTE(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldLTE(FieldSeed, v))
}

// SeedContains applies the Contains predicate on the "seed" field.
func SeedContains(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldContains(FieldSeed, v))
}

// SeedHasPrefix applies the HasPrefix predicate on the "seed" field.
func SeedHasPrefix(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldHasPrefix(FieldSeed, v))
}

// SeedHasSuffix applies the HasSuffix predicate on the "seed" field.
func SeedHasSuffix(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldHasSuffix(FieldSeed, v))
}

// SeedEqualFold applies the EqualFold predicate on the "seed" field.
func SeedEqualFold(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldEqualFold(FieldSeed, v))
}

// SeedContainsFold applies the ContainsFold predicate on the "seed" field.
func SeedContainsFold(v string) predicate.Keyword {
	return predicate.Keyword(sql.FieldContainsFold(FieldSeed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Keyword) predicate.Keyword {
	return predicate.Keyword(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Keyword) predicate.Keyword {
	return predicate.Keyword(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Keyword) predicate.Keyword {
	return predicate.Keyword(sql.NotPredicates(p))
}
