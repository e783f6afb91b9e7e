// Code generated by ent, DO NOT EDIT.

package keyword

import (
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the keyword type in the database.
	Label = "keyword"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldKeyword holds the string denoting the keyword field in the database.
	FieldKeyword = "keyword"
	// FieldMonthlyPcSearch holds the string denoting the monthly_pc_search field in the database.
	FieldMonthlyPcSearch = "monthly_pc_search"
	// FieldMonthlyMobileSearch holds the string denoting the monthly_mobile_search field in the database.
	FieldMonthlyMobileSearch = "monthly_mobile_search"
	// FieldAvgMonthlySearch holds the string denoting the avg_monthly_search field in the database.
	FieldAvgMonthlySearch = "avg_monthly_search"
	// FieldMonthlyClickPc holds the string denoting the monthly_click_pc field in the database.
	FieldMonthlyClickPc = "monthly_click_pc"
	// FieldMonthlyClickMobile holds the string denoting the monthly_click_mobile field in the database.
	FieldMonthlyClickMobile = "monthly_click_mobile"
	// FieldCtrPc holds the string denoting the ctr_pc field in the database.
	FieldCtrPc = "ctr_pc"
	// FieldCtrMobile holds the string denoting the ctr_mobile field in the database.
	FieldCtrMobile = "ctr_mobile"
	// FieldAdDepth holds the string denoting the ad_depth field in the database.
	FieldAdDepth = "ad_depth"
	// FieldCompetition holds the string denoting the competition field in the database.
	FieldCompetition = "competition"
	// FieldSeed holds the string denoting the seed field in the database.
	FieldSeed = "seed"
	// Table holds the table name of the keyword in the database.
	Table = "keywords"
)

// Columns holds all SQL columns for keyword fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldKeyword,
	FieldMonthlyPcSearch,
	FieldMonthlyMobileSearch,
	FieldAvgMonthlySearch,
	FieldMonthlyClickPc,
	FieldMonthlyClickMobile,
	FieldCtrPc,
	FieldCtrMobile,
	FieldAdDepth,
	FieldCompetition,
	FieldSeed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// KeywordValidator is a validator for the "keyword" field. It is called by the builders before save.
	KeywordValidator func(string) error
	// DefaultMonthlyPcSearch holds the default value on creation for the "monthly_pc_search" field.
	DefaultMonthlyPcSearch int
	// MonthlyPcSearchValidator is a validator for the "monthly_pc_search" field. It is called by the builders before save.
	MonthlyPcSearchValidator func(int) error
	// DefaultMonthlyMobileSearch holds the default value on creation for the "monthly_mobile_search" field.
	DefaultMonthlyMobileSearch int
	// MonthlyMobileSearchValidator is a validator for the "monthly_mobile_search" field. It is called by the builders before save.
	MonthlyMobileSearchValidator func(int) error
	// DefaultAvgMonthlySearch holds the default value on creation for the "avg_monthly_search" field.
	DefaultAvgMonthlySearch int
	// AvgMonthlySearchValidator is a validator for the "avg_monthly_search" field. It is called by the builders before save.
	AvgMonthlySearchValidator func(int) error
	// DefaultMonthlyClickPc holds the default value on creation for the "monthly_click_pc" field.
	DefaultMonthlyClickPc float64
	// DefaultMonthlyClickMobile holds the default value on creation for the "monthly_click_mobile" field.
	DefaultMonthlyClickMobile float64
	// DefaultCtrPc holds the default value on creation for the "ctr_pc" field.
	DefaultCtrPc float64
	// DefaultCtrMobile holds the default value on creation for the "ctr_mobile" field.
	DefaultCtrMobile float64
	// DefaultAdDepth holds the default value on creation for the "ad_depth" field.
	DefaultAdDepth int
	// AdDepthValidator is a validator for the "ad_depth" field. It is called by the builders before save.
	AdDepthValidator func(int) error
	// DefaultCompetition holds the default value on creation for the "competition" field.
	DefaultCompetition string
	// CompetitionValidator is a validator for the "competition" field. It is called by the builders before save.
	CompetitionValidator func(string) error
	// DefaultSeed holds the default value on creation for the "seed" field.
	DefaultSeed string
	// SeedValidator is a validator for the "seed" field. It is called by the builders before save.
	SeedValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ID
)

// OrderOption defines the ordering options for the Keyword queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByKeyword orders the results by the keyword field.
func ByKeyword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyword, opts...).ToFunc()
}

// ByMonthlyPcSearch orders the results by the monthly_pc_search field.
func ByMonthlyPcSearch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyPcSearch, opts...).ToFunc()
}

// ByMonthlyMobileSearch orders the results by the monthly_mobile_search field.
func ByMonthlyMobileSearch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyMobileSearch, opts...).ToFunc()
}

// ByAvgMonthlySearch orders the results by the avg_monthly_search field.
func ByAvgMonthlySearch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgMonthlySearch, opts...).ToFunc()
}

// ByMonthlyClickPc orders the results by the monthly_click_pc field.
func ByMonthlyClickPc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyClickPc, opts...).ToFunc()
}

// ByMonthlyClickMobile orders the results by the monthly_click_mobile field.
func ByMonthlyClickMobile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyClickMobile, opts...).ToFunc()
}

// ByCtrPc orders the results by the ctr_pc field.
func ByCtrPc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCtrPc, opts...).ToFunc()
}

// ByCtrMobile orders the results by the ctr_mobile field.
func ByCtrMobile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCtrMobile, opts...).ToFunc()
}

// ByAdDepth orders the results by the ad_depth field.
func ByAdDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdDepth, opts...).ToFunc()
}

// ByCompetition orders the results by the competition field.
func ByCompetition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompetition, opts...).ToFunc()
}

// BySeed orders the results by the seed field.
func BySeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeed, opts...).ToFunc()
}
