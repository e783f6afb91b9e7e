// Code generated by ent, DO NOT EDIT.

package keyworddoccount

import (
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ID) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ID) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ID) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ID) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ID) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ID) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ID) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ID) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ID) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldUpdatedAt, v))
}

// Keyword applies equality check predicate on the "keyword" field. It's identical to KeywordEQ.
func Keyword(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldKeyword, v))
}

// BlogTotal applies equality check predicate on the "blog_total" field. It's identical to BlogTotalEQ.
func BlogTotal(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldBlogTotal, v))
}

// CafeTotal applies equality check predicate on the "cafe_total" field. It's identical to CafeTotalEQ.
func CafeTotal(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldCafeTotal, v))
}

// WebTotal applies equality check predicate on the "web_total" field. It's identical to WebTotalEQ.
func WebTotal(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldWebTotal, v))
}

// NewsTotal applies equality check predicate on the "news_total" field. It's identical to NewsTotalEQ.
func NewsTotal(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldNewsTotal, v))
}

// CollectedAt applies equality check predicate on the "collected_at" field. It's identical to CollectedAtEQ.
func CollectedAt(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldCollectedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLTE(FieldUpdatedAt, v))
}

// KeywordEQ applies the EQ predicate on the "keyword" field.
func KeywordEQ(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldKeyword, v))
}

// KeywordNEQ applies the NEQ predicate on the "keyword" field.
func KeywordNEQ(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNEQ(FieldKeyword, v))
}

// KeywordIn applies the In predicate on the "keyword" field.
func KeywordIn(vs ...string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldIn(FieldKeyword, vs...))
}

// KeywordNotIn applies the NotIn predicate on the "keyword" field.
func KeywordNotIn(vs ...string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNotIn(FieldKeyword, vs...))
}

// KeywordGT applies the GT predicate on the "keyword" field.
func KeywordGT(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGT(FieldKeyword, v))
}

// KeywordGTE applies the GTE predicate on the "keyword" field.
func KeywordGTE(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGTE(FieldKeyword, v))
}

// KeywordLT applies the LT predicate on the "keyword" field.
func KeywordLT(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLT(FieldKeyword, v))
}

// KeywordLTE applies the LTE predicate on the "keyword" field.
func KeywordLTE(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLTE(FieldKeyword, v))
}

// KeywordContains applies the Contains predicate on the "keyword" field.
func KeywordContains(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldContains(FieldKeyword, v))
}

// KeywordHasPrefix applies the HasPrefix predicate on the "keyword" field.
func KeywordHasPrefix(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldHasPrefix(FieldKeyword, v))
}

// KeywordHasSuffix applies the HasSuffix predicate on the "keyword" field.
func KeywordHasSuffix(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldHasSuffix(FieldKeyword, v))
}

// KeywordEqualFold applies the EqualFold predicate on the "keyword" field.
func KeywordEqualFold(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEqualFold(FieldKeyword, v))
}

// KeywordContainsFold applies the ContainsFold predicate on the "keyword" field.
func KeywordContainsFold(v string) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldContainsFold(FieldKeyword, v))
}

// BlogTotalEQ applies the EQ predicate on the "blog_total" field.
func BlogTotalEQ(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldBlogTotal, v))
}

// BlogTotalNEQ applies the NEQ predicate on the "blog_total" field.
func BlogTotalNEQ(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNEQ(FieldBlogTotal, v))
}

// BlogTotalIn applies the In predicate on the "blog_total" field.
func BlogTotalIn(vs ...int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldIn(FieldBlogTotal, vs...))
}

// BlogTotalNotIn applies the NotIn predicate on the "blog_total" field.
func BlogTotalNotIn(vs ...int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNotIn(FieldBlogTotal, vs...))
}

// BlogTotalGT applies the GT predicate on the "blog_total" field.
func BlogTotalGT(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGT(FieldBlogTotal, v))
}

// BlogTotalGTE applies the GTE predicate on the "blog_total" field.
func BlogTotalGTE(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGTE(FieldBlogTotal, v))
}

// BlogTotalLT applies the LT predicate on the "blog_total" field.
func BlogTotalLT(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLT(FieldBlogTotal, v))
}

// BlogTotalLTE applies the LTE predicate on the "blog_total" field.
func BlogTotalLTE(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLTE(FieldBlogTotal, v))
}

// CafeTotalEQ applies the EQ predicate on the "cafe_total" field.
func CafeTotalEQ(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldCafeTotal, v))
}

// CafeTotalNEQ applies the NEQ predicate on the "cafe_total" field.
func CafeTotalNEQ(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNEQ(FieldCafeTotal, v))
}

// CafeTotalIn applies the In predicate on the "cafe_total" field.
func CafeTotalIn(vs ...int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldIn(FieldCafeTotal, vs...))
}

// CafeTotalNotIn applies the NotIn predicate on the "cafe_total" field.
func CafeTotalNotIn(vs ...int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNotIn(FieldCafeTotal, vs...))
}

// CafeTotalGT applies the GT predicate on the "cafe_total" field.
func CafeTotalGT(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGT(FieldCafeTotal, v))
}

// CafeTotalGTE applies the GTE predicate on the "cafe_total" field.
func CafeTotalGTE(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGTE(FieldCafeTotal, v))
}

// CafeTotalLT applies the LT predicate on the "cafe_total" field.
func CafeTotalLT(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLT(FieldCafeTotal, v))
}

// CafeTotalLTE applies the LTE predicate on the "cafe_total" field.
func CafeTotalLTE(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLTE(FieldCafeTotal, v))
}

// WebTotalEQ applies the EQ predicate on the "web_total" field.
func WebTotalEQ(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldWebTotal, v))
}

// WebTotalNEQ applies the NEQ predicate on the "web_total" field.
func WebTotalNEQ(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNEQ(FieldWebTotal, v))
}

// WebTotalIn applies the In predicate on the "web_total" field.
func WebTotalIn(vs ...int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldIn(FieldWebTotal, vs...))
}

// WebTotalNotIn applies the NotIn predicate on the "web_total" field.
func WebTotalNotIn(vs ...int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNotIn(FieldWebTotal, vs...))
}

// WebTotalGT applies the GT predicate on the "web_total" field.
func WebTotalGT(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGT(FieldWebTotal, v))
}

// WebTotalGTE applies the GTE predicate on the "web_total" field.
func WebTotalGTE(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGTE(FieldWebTotal, v))
}

// WebTotalLT applies the LT predicate on the "web_total" field.
func WebTotalLT(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLT(FieldWebTotal, v))
}

// WebTotalLTE applies the LTE predicate on the "web_total" field.
func WebTotalLTE(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLTE(FieldWebTotal, v))
}

// NewsTotalEQ applies the EQ predicate on the "news_total" field.
func NewsTotalEQ(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldNewsTotal, v))
}

// NewsTotalNEQ applies the NEQ predicate on the "news_total" field.
func NewsTotalNEQ(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNEQ(FieldNewsTotal, v))
}

// NewsTotalIn applies the In predicate on the "news_total" field.
func NewsTotalIn(vs ...int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldIn(FieldNewsTotal, vs...))
}

// NewsTotalNotIn applies the NotIn predicate on the "news_total" field.
func NewsTotalNotIn(vs ...int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNotIn(FieldNewsTotal, vs...))
}

// NewsTotalGT applies the GT predicate on the "news_total" field.
func NewsTotalGT(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGT(FieldNewsTotal, v))
}

// NewsTotalGTE applies the GTE predicate on the "news_total" field.
func NewsTotalGTE(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGTE(FieldNewsTotal, v))
}

// NewsTotalLT applies the LT predicate on the "news_total" field.
func NewsTotalLT(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLT(FieldNewsTotal, v))
}

// NewsTotalLTE applies the LTE predicate on the "news_total" field.
func NewsTotalLTE(v int) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLTE(FieldNewsTotal, v))
}

// CollectedAtEQ applies the EQ predicate on the "collected_at" field.
func CollectedAtEQ(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldEQ(FieldCollectedAt, v))
}

// CollectedAtNEQ applies the NEQ predicate on the "collected_at" field.
func CollectedAtNEQ(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNEQ(FieldCollectedAt, v))
}

// CollectedAtIn applies the In predicate on the "collected_at" field.
func CollectedAtIn(vs ...time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldIn(FieldCollectedAt, vs...))
}

// CollectedAtNotIn applies the NotIn predicate on the "collected_at" field.
func CollectedAtNotIn(vs ...time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldNotIn(FieldCollectedAt, vs...))
}

// CollectedAtGT applies the GT predicate on the "collected_at" field.
func CollectedAtGT(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGT(FieldCollectedAt, v))
}

// CollectedAtGTE applies the GTE predicate on the "collected_at" field.
func CollectedAtGTE(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldGTE(FieldCollectedAt, v))
}

// CollectedAtLT applies the LT predicate on the "collected_at" field.
func CollectedAtLT(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLT(FieldCollectedAt, v))
}

// CollectedAtLTE applies the LTE predicate on the "collected_at" field.
func CollectedAtLTE(v time.Time) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.FieldLTE(FieldCollectedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KeywordDocCount) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KeywordDocCount) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KeywordDocCount) predicate.KeywordDocCount {
	return predicate.KeywordDocCount(sql.NotPredicates(p))
}
