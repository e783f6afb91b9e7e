// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"kwlab-go-backend/ent/cronjobconfig"
	"kwlab-go-backend/ent/schema/ulid"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// CronJobConfig is the model entity for the CronJobConfig schema.
type CronJobConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Unique name for the cron job
	JobName string `json:"job_name,omitempty"`
	// Type of cron job
	JobType cronjobconfig.JobType `json:"job_type,omitempty"`
	// Cron expression (e.g., '0 2 * * *' for 2 AM daily)
	Schedule string `json:"schedule,omitempty"`
	// Whether the job is enabled
	Enabled bool `json:"enabled,omitempty"`
	// Number of seeds to process per job run
	BatchSize int `json:"batch_size,omitempty"`
	// Concurrent seeds per chunk
	Concurrency int `json:"concurrency,omitempty"`
	// Admin email for notifications
	AdminEmail string `json:"admin_email,omitempty"`
	// Whether the run stops when the credential pool is exhausted
	RespectQuota bool `json:"respect_quota,omitempty"`
	// Timestamp of last successful run
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	// Scheduled next run time
	NextRunAt    *time.Time `json:"next_run_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CronJobConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cronjobconfig.FieldEnabled, cronjobconfig.FieldRespectQuota:
			values[i] = new(sql.NullBool)
		case cronjobconfig.FieldBatchSize, cronjobconfig.FieldConcurrency:
			values[i] = new(sql.NullInt64)
		case cronjobconfig.FieldJobName, cronjobconfig.FieldJobType, cronjobconfig.FieldSchedule, cronjobconfig.FieldAdminEmail:
			values[i] = new(sql.NullString)
		case cronjobconfig.FieldCreatedAt, cronjobconfig.FieldUpdatedAt, cronjobconfig.FieldLastRunAt, cronjobconfig.FieldNextRunAt:
			values[i] = new(sql.NullTime)
		case cronjobconfig.FieldID:
			values[i] = new(ulid.ID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CronJobConfig fields.
func (cjc *CronJobConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cronjobconfig.FieldID:
			if value, ok := values[i].(*ulid.ID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				cjc.ID = *value
			}
		case cronjobconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cjc.CreatedAt = value.Time
			}
		case cronjobconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cjc.UpdatedAt = value.Time
			}
		case cronjobconfig.FieldJobName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_name", values[i])
			} else if value.Valid {
				cjc.JobName = value.String
			}
		case cronjobconfig.FieldJobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_type", values[i])
			} else if value.Valid {
				cjc.JobType = cronjobconfig.JobType(value.String)
			}
		case cronjobconfig.FieldSchedule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule", values[i])
			} else if value.Valid {
				cjc.Schedule = value.String
			}
		case cronjobconfig.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				cjc.Enabled = value.Bool
			}
		case cronjobconfig.FieldBatchSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_size", values[i])
			} else if value.Valid {
				cjc.BatchSize = int(value.Int64)
			}
		case cronjobconfig.FieldConcurrency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concurrency", values[i])
			} else if value.Valid {
				cjc.Concurrency = int(value.Int64)
			}
		case cronjobconfig.FieldAdminEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_email", values[i])
			} else if value.Valid {
				cjc.AdminEmail = value.String
			}
		case cronjobconfig.FieldRespectQuota:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field respect_quota", values[i])
			} else if value.Valid {
				cjc.RespectQuota = value.Bool
			}
		case cronjobconfig.FieldLastRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_at", values[i])
			} else if value.Valid {
				cjc.LastRunAt = new(time.Time)
				*cjc.LastRunAt = value.Time
			}
		case cronjobconfig.FieldNextRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_run_at", values[i])
			} else if value.Valid {
				cjc.NextRunAt = new(time.Time)
				*cjc.NextRunAt = value.Time
			}
		default:
			cjc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CronJobConfig.
// This includes values selected through modifiers, order, etc.
func (cjc *CronJobConfig) Value(name string) (ent.Value, error) {
	return cjc.selectValues.Get(name)
}

// Update returns a builder for updating this CronJobConfig.
// Note that you need to call CronJobConfig.Unwrap() before calling this method if this CronJobConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (cjc *CronJobConfig) Update() *CronJobConfigUpdateOne {
	return NewCronJobConfigClient(cjc.config).UpdateOne(cjc)
}

// Unwrap unwraps the CronJobConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cjc *CronJobConfig) Unwrap() *CronJobConfig {
	_tx, ok := cjc.config.driver.(*txDriver)
	if !ok {
		panic("ent: CronJobConfig is not a transactional entity")
	}
	cjc.config.driver = _tx.drv
	return cjc
}

// String implements the fmt.Stringer.
func (cjc *CronJobConfig) String() string {
	var builder strings.Builder
	builder.WriteString("CronJobConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cjc.ID))
	builder.WriteString("created_at=")
	builder.WriteString(cjc.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cjc.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("job_name=")
	builder.WriteString(cjc.JobName)
	builder.WriteString(", ")
	builder.WriteString("job_type=")
	builder.WriteString(fmt.Sprintf("%v", cjc.JobType))
	builder.WriteString(", ")
	builder.WriteString("schedule=")
	builder.WriteString(cjc.Schedule)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", cjc.Enabled))
	builder.WriteString(", ")
	builder.WriteString("batch_size=")
	builder.WriteString(fmt.Sprintf("%v", cjc.BatchSize))
	builder.WriteString(", ")
	builder.WriteString("concurrency=")
	builder.WriteString(fmt.Sprintf("%v", cjc.Concurrency))
	builder.WriteString(", ")
	builder.WriteString("admin_email=")
	builder.WriteString(cjc.AdminEmail)
	builder.WriteString(", ")
	builder.WriteString("respect_quota=")
	builder.WriteString(fmt.Sprintf("%v", cjc.RespectQuota))
	builder.WriteString(", ")
	if v := cjc.LastRunAt; v != nil {
		builder.WriteString("last_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := cjc.NextRunAt; v != nil {
		builder.WriteString("next_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CronJobConfigs is a parsable slice of CronJobConfig.
type CronJobConfigs []*CronJobConfig
