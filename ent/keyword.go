// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"kwlab-go-backend/ent/keyword"
	"kwlab-go-backend/ent/schema/ulid"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Keyword is the model entity for the Keyword schema.
type Keyword struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Keyword text (natural key)
	Keyword string `json:"keyword,omitempty"`
	// PC monthly search volume
	MonthlyPcSearch int `json:"monthly_pc_search,omitempty"`
	// Mobile monthly search volume
	MonthlyMobileSearch int `json:"monthly_mobile_search,omitempty"`
	// Sum of PC and mobile search volume
	AvgMonthlySearch int `json:"avg_monthly_search,omitempty"`
	// Average monthly ad clicks on PC
	MonthlyClickPc float64 `json:"monthly_click_pc,omitempty"`
	// Average monthly ad clicks on mobile
	MonthlyClickMobile float64 `json:"monthly_click_mobile,omitempty"`
	// Average click-through rate on PC (percent)
	CtrPc float64 `json:"ctr_pc,omitempty"`
	// Average click-through rate on mobile (percent)
	CtrMobile float64 `json:"ctr_mobile,omitempty"`
	// Average number of ads shown for the keyword
	AdDepth int `json:"ad_depth,omitempty"`
	// Provider competitive index label
	Competition string `json:"competition,omitempty"`
	// Seed keyword this entry was expanded from
	Seed         string `json:"seed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Keyword) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case keyword.FieldMonthlyClickPc, keyword.FieldMonthlyClickMobile, keyword.FieldCtrPc, keyword.FieldCtrMobile:
			values[i] = new(sql.NullFloat64)
		case keyword.FieldMonthlyPcSearch, keyword.FieldMonthlyMobileSearch, keyword.FieldAvgMonthlySearch, keyword.FieldAdDepth:
			values[i] = new(sql.NullInt64)
		case keyword.FieldKeyword, keyword.FieldCompetition, keyword.FieldSeed:
			values[i] = new(sql.NullString)
		case keyword.FieldCreatedAt, keyword.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case keyword.FieldID:
			values[i] = new(ulid.ID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Keyword fields.
func (k *Keyword) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case keyword.FieldID:
			if value, ok := values[i].(*ulid.ID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				k.ID = *value
			}
		case keyword.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				k.CreatedAt = value.Time
			}
		case keyword.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				k.UpdatedAt = value.Time
			}
		case keyword.FieldKeyword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field keyword", values[i])
			} else if value.Valid {
				k.Keyword = value.String
			}
		case keyword.FieldMonthlyPcSearch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_pc_search", values[i])
			} else if value.Valid {
				k.MonthlyPcSearch = int(value.Int64)
			}
		case keyword.FieldMonthlyMobileSearch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_mobile_search", values[i])
			} else if value.Valid {
				k.MonthlyMobileSearch = int(value.Int64)
			}
		case keyword.FieldAvgMonthlySearch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_monthly_search", values[i])
			} else if value.Valid {
				k.AvgMonthlySearch = int(value.Int64)
			}
		case keyword.FieldMonthlyClickPc:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_click_pc", values[i])
			} else if value.Valid {
				k.MonthlyClickPc = value.Float64
			}
		case keyword.FieldMonthlyClickMobile:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_click_mobile", values[i])
			} else if value.Valid {
				k.MonthlyClickMobile = value.Float64
			}
		case keyword.FieldCtrPc:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ctr_pc", values[i])
			} else if value.Valid {
				k.CtrPc = value.Float64
			}
		case keyword.FieldCtrMobile:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ctr_mobile", values[i])
			} else if value.Valid {
				k.CtrMobile = value.Float64
			}
		case keyword.FieldAdDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ad_depth", values[i])
			} else if value.Valid {
				k.AdDepth = int(value.Int64)
			}
		case keyword.FieldCompetition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field competition", values[i])
			} else if value.Valid {
				k.Competition = value.String
			}
		case keyword.FieldSeed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seed", values[i])
			} else if value.Valid {
				k.Seed = value.String
			}
		default:
			k.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Keyword.
// This includes values selected through modifiers, order, etc.
func (k *Keyword) Value(name string) (ent.Value, error) {
	return k.selectValues.Get(name)
}

// Update returns a builder for updating this Keyword.
// Note that you need to call Keyword.Unwrap() before calling this method if this Keyword
// was returned from a transaction, and the transaction was committed or rolled back.
func (k *Keyword) Update() *KeywordUpdateOne {
	return NewKeywordClient(k.config).UpdateOne(k)
}

// Unwrap unwraps the Keyword entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (k *Keyword) Unwrap() *Keyword {
	_tx, ok := k.config.driver.(*txDriver)
	if !ok {
		panic("ent: Keyword is not a transactional entity")
	}
	k.config.driver = _tx.drv
	return k
}

// String implements the fmt.Stringer.
func (k *Keyword) String() string {
	var builder strings.Builder
	builder.WriteString("Keyword(")
	builder.WriteString(fmt.Sprintf("id=%v, ", k.ID))
	builder.WriteString("created_at=")
	builder.WriteString(k.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(k.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("keyword=")
	builder.WriteString(k.Keyword)
	builder.WriteString(", ")
	builder.WriteString("monthly_pc_search=")
	builder.WriteString(fmt.Sprintf("%v", k.MonthlyPcSearch))
	builder.WriteString(", ")
	builder.WriteString("monthly_mobile_search=")
	builder.WriteString(fmt.Sprintf("%v", k.MonthlyMobileSearch))
	builder.WriteString(", ")
	builder.WriteString("avg_monthly_search=")
	builder.WriteString(fmt.Sprintf("%v", k.AvgMonthlySearch))
	builder.WriteString(", ")
	builder.WriteString("monthly_click_pc=")
	builder.WriteString(fmt.Sprintf("%v", k.MonthlyClickPc))
	builder.WriteString(", ")
	builder.WriteString("monthly_click_mobile=")
	builder.WriteString(fmt.Sprintf("%v", k.MonthlyClickMobile))
	builder.WriteString(", ")
	builder.WriteString("ctr_pc=")
	builder.WriteString(fmt.Sprintf("%v", k.CtrPc))
	builder.WriteString(", ")
	builder.WriteString("ctr_mobile=")
	builder.WriteString(fmt.Sprintf("%v", k.CtrMobile))
	builder.WriteString(", ")
	builder.WriteString("ad_depth=")
	builder.WriteString(fmt.Sprintf("%v", k.AdDepth))
	builder.WriteString(", ")
	builder.WriteString("competition=")
	builder.WriteString(k.Competition)
	builder.WriteString(", ")
	builder.WriteString("seed=")
	builder.WriteString(k.Seed)
	builder.WriteByte(')')
	return builder.String()
}

// Keywords is a parsable slice of Keyword.
type Keywords []*Keyword
