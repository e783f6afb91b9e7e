// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"kwlab-go-backend/ent/schema/ulid"
	"kwlab-go-backend/ent/seedusage"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// SeedUsage is the model entity for the SeedUsage schema.
type SeedUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Seed keyword text (natural key)
	Seed string `json:"seed,omitempty"`
	// How many times the seed has been expanded
	UsageCount int `json:"usage_count,omitempty"`
	// Timestamp of the last expansion, nil when never used
	LastUsedAt   *time.Time `json:"last_used_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SeedUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case seedusage.FieldUsageCount:
			values[i] = new(sql.NullInt64)
		case seedusage.FieldSeed:
			values[i] = new(sql.NullString)
		case seedusage.FieldCreatedAt, seedusage.FieldUpdatedAt, seedusage.FieldLastUsedAt:
			values[i] = new(sql.NullTime)
		case seedusage.FieldID:
			values[i] = new(ulid.ID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SeedUsage fields.
func (su *SeedUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case seedusage.FieldID:
			if value, ok := values[i].(*ulid.ID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				su.ID = *value
			}
		case seedusage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				su.CreatedAt = value.Time
			}
		case seedusage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				su.UpdatedAt = value.Time
			}
		case seedusage.FieldSeed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seed", values[i])
			} else if value.Valid {
				su.Seed = value.String
			}
		case seedusage.FieldUsageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field usage_count", values[i])
			} else if value.Valid {
				su.UsageCount = int(value.Int64)
			}
		case seedusage.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				su.LastUsedAt = new(time.Time)
				*su.LastUsedAt = value.Time
			}
		default:
			su.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SeedUsage.
// This includes values selected through modifiers, order, etc.
func (su *SeedUsage) Value(name string) (ent.Value, error) {
	return su.selectValues.Get(name)
}

// Update returns a builder for updating this SeedUsage.
// Note that you need to call SeedUsage.Unwrap() before calling this method if this SeedUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (su *SeedUsage) Update() *SeedUsageUpdateOne {
	return NewSeedUsageClient(su.config).UpdateOne(su)
}

// Unwrap unwraps the SeedUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (su *SeedUsage) Unwrap() *SeedUsage {
	_tx, ok := su.config.driver.(*txDriver)
	if !ok {
		panic("ent: SeedUsage is not a transactional entity")
	}
	su.config.driver = _tx.drv
	return su
}

// String implements the fmt.Stringer.
func (su *SeedUsage) String() string {
	var builder strings.Builder
	builder.WriteString("SeedUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", su.ID))
	builder.WriteString("created_at=")
	builder.WriteString(su.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(su.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("seed=")
	builder.WriteString(su.Seed)
	builder.WriteString(", ")
	builder.WriteString("usage_count=")
	builder.WriteString(fmt.Sprintf("%v", su.UsageCount))
	builder.WriteString(", ")
	if v := su.LastUsedAt; v != nil {
		builder.WriteString("last_used_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SeedUsages is a parsable slice of SeedUsage.
type SeedUsages []*SeedUsage
