// Code generated by ent, DO NOT EDIT.

package keyworddoccount

import (
	"kwlab-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the keyworddoccount type in the database.
	Label = "keyword_doc_count"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldKeyword holds the string denoting the keyword field in the database.
	FieldKeyword = "keyword"
	// FieldBlogTotal holds the string denoting the blog_total field in the database.
	FieldBlogTotal = "blog_total"
	// FieldCafeTotal holds the string denoting the cafe_total field in the database.
	FieldCafeTotal = "cafe_total"
	// FieldWebTotal holds the string denoting the web_total field in the database.
	FieldWebTotal = "web_total"
	// FieldNewsTotal holds the string denoting the news_total field in the database.
	FieldNewsTotal = "news_total"
	// FieldCollectedAt holds the string denoting the collected_at field in the database.
	FieldCollectedAt = "collected_at"
	// Table holds the table name of the keyworddoccount in the database.
	Table = "keyword_doc_counts"
)

// Columns holds all SQL columns for keyworddoccount fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldKeyword,
	FieldBlogTotal,
	FieldCafeTotal,
	FieldWebTotal,
	FieldNewsTotal,
	FieldCollectedAt,
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
	// DefaultBlogTotal holds the default value on creation for the "blog_total" field.
	DefaultBlogTotal int
	// BlogTotalValidator is a validator for the "blog_total" field. It is called by the builders before save.
	BlogTotalValidator func(int) error
	// DefaultCafeTotal holds the default value on creation for the "cafe_total" field.
	DefaultCafeTotal int
	// CafeTotalValidator is a validator for the "cafe_total" field. It is called by the builders before save.
	CafeTotalValidator func(int) error
	// DefaultWebTotal holds the default value on creation for the "web_total" field.
	DefaultWebTotal int
	// WebTotalValidator is a validator for the "web_total" field. It is called by the builders before save.
	WebTotalValidator func(int) error
	// DefaultNewsTotal holds the default value on creation for the "news_total" field.
	DefaultNewsTotal int
	// NewsTotalValidator is a validator for the "news_total" field. It is called by the builders before save.
	NewsTotalValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ID
)

// OrderOption defines the ordering options for the KeywordDocCount queries.
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

// ByBlogTotal orders the results by the blog_total field.
func ByBlogTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlogTotal, opts...).ToFunc()
}

// ByCafeTotal orders the results by the cafe_total field.
func ByCafeTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCafeTotal, opts...).ToFunc()
}

// ByWebTotal orders the results by the web_total field.
func ByWebTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebTotal, opts...).ToFunc()
}

// ByNewsTotal orders the results by the news_total field.
func ByNewsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewsTotal, opts...).ToFunc()
}

// ByCollectedAt orders the results by the collected_at field.
func ByCollectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectedAt, opts...).ToFunc()
}
