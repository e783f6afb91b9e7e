package model

import (
	"kwlab-go-backend/ent"
)

// CollectionLog is the model entity for the CollectionLog schema.
type CollectionLog = ent.CollectionLog

// SeedUsage is the model entity for the SeedUsage schema.
type SeedUsage = ent.SeedUsage

// CronJobConfig is the model entity for the CronJobConfig schema.
type CronJobConfig = ent.CronJobConfig

// UpdateCronJobConfigInput carries the mutable cron job settings.
type UpdateCronJobConfigInput struct {
	Schedule    *string `json:"schedule,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"`
	BatchSize   *int    `json:"batchSize,omitempty"`
	Concurrency *int    `json:"concurrency,omitempty"`
	AdminEmail  *string `json:"adminEmail,omitempty"`
}
