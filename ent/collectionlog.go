// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"kwlab-go-backend/ent/collectionlog"
	"kwlab-go-backend/ent/schema/ulid"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// CollectionLog is the model entity for the CollectionLog schema.
type CollectionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name of the collection run
	JobName string `json:"job_name,omitempty"`
	// Run status
	Status collectionlog.Status `json:"status,omitempty"`
	// Run start time
	StartedAt time.Time `json:"started_at,omitempty"`
	// Run completion time
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Duration in seconds
	DurationSeconds int `json:"duration_seconds,omitempty"`
	// Seeds attempted
	TotalProcessed int `json:"total_processed,omitempty"`
	// Keywords inserted
	NewCount int `json:"new_count,omitempty"`
	// Keywords with refreshed metrics
	UpdatedCount int `json:"updated_count,omitempty"`
	// Seeds skipped inside the freshness window
	SkippedCount int `json:"skipped_count,omitempty"`
	// Seeds that failed after retries
	FailedCount int `json:"failed_count,omitempty"`
	// Number of provider API calls made during this run
	APICallsMade int `json:"api_calls_made,omitempty"`
	// Summary of errors encountered
	ErrorSummary *string `json:"error_summary,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CollectionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case collectionlog.FieldDurationSeconds, collectionlog.FieldTotalProcessed, collectionlog.FieldNewCount, collectionlog.FieldUpdatedCount, collectionlog.FieldSkippedCount, collectionlog.FieldFailedCount, collectionlog.FieldAPICallsMade:
			values[i] = new(sql.NullInt64)
		case collectionlog.FieldJobName, collectionlog.FieldStatus, collectionlog.FieldErrorSummary:
			values[i] = new(sql.NullString)
		case collectionlog.FieldCreatedAt, collectionlog.FieldUpdatedAt, collectionlog.FieldStartedAt, collectionlog.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case collectionlog.FieldID:
			values[i] = new(ulid.ID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CollectionLog fields.
func (cl *CollectionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case collectionlog.FieldID:
			if value, ok := values[i].(*ulid.ID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				cl.ID = *value
			}
		case collectionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cl.CreatedAt = value.Time
			}
		case collectionlog.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cl.UpdatedAt = value.Time
			}
		case collectionlog.FieldJobName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_name", values[i])
			} else if value.Valid {
				cl.JobName = value.String
			}
		case collectionlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				cl.Status = collectionlog.Status(value.String)
			}
		case collectionlog.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				cl.StartedAt = value.Time
			}
		case collectionlog.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				cl.CompletedAt = new(time.Time)
				*cl.CompletedAt = value.Time
			}
		case collectionlog.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				cl.DurationSeconds = int(value.Int64)
			}
		case collectionlog.FieldTotalProcessed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_processed", values[i])
			} else if value.Valid {
				cl.TotalProcessed = int(value.Int64)
			}
		case collectionlog.FieldNewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_count", values[i])
			} else if value.Valid {
				cl.NewCount = int(value.Int64)
			}
		case collectionlog.FieldUpdatedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated_count", values[i])
			} else if value.Valid {
				cl.UpdatedCount = int(value.Int64)
			}
		case collectionlog.FieldSkippedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped_count", values[i])
			} else if value.Valid {
				cl.SkippedCount = int(value.Int64)
			}
		case collectionlog.FieldFailedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_count", values[i])
			} else if value.Valid {
				cl.FailedCount = int(value.Int64)
			}
		case collectionlog.FieldAPICallsMade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field api_calls_made", values[i])
			} else if value.Valid {
				cl.APICallsMade = int(value.Int64)
			}
		case collectionlog.FieldErrorSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_summary", values[i])
			} else if value.Valid {
				cl.ErrorSummary = new(string)
				*cl.ErrorSummary = value.String
			}
		default:
			cl.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CollectionLog.
// This includes values selected through modifiers, order, etc.
func (cl *CollectionLog) Value(name string) (ent.Value, error) {
	return cl.selectValues.Get(name)
}

// Update returns a builder for updating this CollectionLog.
// Note that you need to call CollectionLog.Unwrap() before calling this method if this CollectionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (cl *CollectionLog) Update() *CollectionLogUpdateOne {
	return NewCollectionLogClient(cl.config).UpdateOne(cl)
}

// Unwrap unwraps the CollectionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cl *CollectionLog) Unwrap() *CollectionLog {
	_tx, ok := cl.config.driver.(*txDriver)
	if !ok {
		panic("ent: CollectionLog is not a transactional entity")
	}
	cl.config.driver = _tx.drv
	return cl
}

// String implements the fmt.Stringer.
func (cl *CollectionLog) String() string {
	var builder strings.Builder
	builder.WriteString("CollectionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cl.ID))
	builder.WriteString("created_at=")
	builder.WriteString(cl.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cl.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("job_name=")
	builder.WriteString(cl.JobName)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", cl.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(cl.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := cl.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", cl.DurationSeconds))
	builder.WriteString(", ")
	builder.WriteString("total_processed=")
	builder.WriteString(fmt.Sprintf("%v", cl.TotalProcessed))
	builder.WriteString(", ")
	builder.WriteString("new_count=")
	builder.WriteString(fmt.Sprintf("%v", cl.NewCount))
	builder.WriteString(", ")
	builder.WriteString("updated_count=")
	builder.WriteString(fmt.Sprintf("%v", cl.UpdatedCount))
	builder.WriteString(", ")
	builder.WriteString("skipped_count=")
	builder.WriteString(fmt.Sprintf("%v", cl.SkippedCount))
	builder.WriteString(", ")
	builder.WriteString("failed_count=")
	builder.WriteString(fmt.Sprintf("%v", cl.FailedCount))
	builder.WriteString(", ")
	builder.WriteString("api_calls_made=")
	builder.WriteString(fmt.Sprintf("%v", cl.APICallsMade))
	builder.WriteString(", ")
	if v := cl.ErrorSummary; v != nil {
		builder.WriteString("error_summary=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// CollectionLogs is a parsable slice of CollectionLog.
type CollectionLogs []*CollectionLog
