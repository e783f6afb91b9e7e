// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"kwlab-go-backend/ent/keyworddoccount"
	"kwlab-go-backend/ent/schema/ulid"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// KeywordDocCount is the model entity for the KeywordDocCount schema.
type KeywordDocCount struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Keyword text (natural key, one row per keyword)
	Keyword string `json:"keyword,omitempty"`
	// Blog search result total
	BlogTotal int `json:"blog_total,omitempty"`
	// Cafe search result total
	CafeTotal int `json:"cafe_total,omitempty"`
	// Web document search result total
	WebTotal int `json:"web_total,omitempty"`
	// News search result total
	NewsTotal int `json:"news_total,omitempty"`
	// When the counts were collected
	CollectedAt  time.Time `json:"collected_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KeywordDocCount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case keyworddoccount.FieldBlogTotal, keyworddoccount.FieldCafeTotal, keyworddoccount.FieldWebTotal, keyworddoccount.FieldNewsTotal:
			values[i] = new(sql.NullInt64)
		case keyworddoccount.FieldKeyword:
			values[i] = new(sql.NullString)
		case keyworddoccount.FieldCreatedAt, keyworddoccount.FieldUpdatedAt, keyworddoccount.FieldCollectedAt:
			values[i] = new(sql.NullTime)
		case keyworddoccount.FieldID:
			values[i] = new(ulid.ID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KeywordDocCount fields.
func (kdc *KeywordDocCount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case keyworddoccount.FieldID:
			if value, ok := values[i].(*ulid.ID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				kdc.ID = *value
			}
		case keyworddoccount.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				kdc.CreatedAt = value.Time
			}
		case keyworddoccount.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				kdc.UpdatedAt = value.Time
			}
		case keyworddoccount.FieldKeyword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field keyword", values[i])
			} else if value.Valid {
				kdc.Keyword = value.String
			}
		case keyworddoccount.FieldBlogTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field blog_total", values[i])
			} else if value.Valid {
				kdc.BlogTotal = int(value.Int64)
			}
		case keyworddoccount.FieldCafeTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cafe_total", values[i])
			} else if value.Valid {
				kdc.CafeTotal = int(value.Int64)
			}
		case keyworddoccount.FieldWebTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field web_total", values[i])
			} else if value.Valid {
				kdc.WebTotal = int(value.Int64)
			}
		case keyworddoccount.FieldNewsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field news_total", values[i])
			} else if value.Valid {
				kdc.NewsTotal = int(value.Int64)
			}
		case keyworddoccount.FieldCollectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field collected_at", values[i])
			} else if value.Valid {
				kdc.CollectedAt = value.Time
			}
		default:
			kdc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KeywordDocCount.
// This includes values selected through modifiers, order, etc.
func (kdc *KeywordDocCount) Value(name string) (ent.Value, error) {
	return kdc.selectValues.Get(name)
}

// Update returns a builder for updating this KeywordDocCount.
// Note that you need to call KeywordDocCount.Unwrap() before calling this method if this KeywordDocCount
// was returned from a transaction, and the transaction was committed or rolled back.
func (kdc *KeywordDocCount) Update() *KeywordDocCountUpdateOne {
	return NewKeywordDocCountClient(kdc.config).UpdateOne(kdc)
}

// Unwrap unwraps the KeywordDocCount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (kdc *KeywordDocCount) Unwrap() *KeywordDocCount {
	_tx, ok := kdc.config.driver.(*txDriver)
	if !ok {
		panic("ent: KeywordDocCount is not a transactional entity")
	}
	kdc.config.driver = _tx.drv
	return kdc
}

// String implements the fmt.Stringer.
func (kdc *KeywordDocCount) String() string {
	var builder strings.Builder
	builder.WriteString("KeywordDocCount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", kdc.ID))
	builder.WriteString("created_at=")
	builder.WriteString(kdc.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(kdc.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("keyword=")
	builder.WriteString(kdc.Keyword)
	builder.WriteString(", ")
	builder.WriteString("blog_total=")
	builder.WriteString(fmt.Sprintf("%v", kdc.BlogTotal))
	builder.WriteString(", ")
	builder.WriteString("cafe_total=")
	builder.WriteString(fmt.Sprintf("%v", kdc.CafeTotal))
	builder.WriteString(", ")
	builder.WriteString("web_total=")
	builder.WriteString(fmt.Sprintf("%v", kdc.WebTotal))
	builder.WriteString(", ")
	builder.WriteString("news_total=")
	builder.WriteString(fmt.Sprintf("%v", kdc.NewsTotal))
	builder.WriteString(", ")
	builder.WriteString("collected_at=")
	builder.WriteString(kdc.CollectedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KeywordDocCounts is a parsable slice of KeywordDocCount.
type KeywordDocCounts []*KeywordDocCount
