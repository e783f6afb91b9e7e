// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"kwlab-go-backend/ent/collectionlog"
	"kwlab-go-backend/ent/cronjobconfig"
	"kwlab-go-backend/ent/keyword"
	"kwlab-go-backend/ent/keyworddoccount"
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/ent/schema/ulid"
	"kwlab-go-backend/ent/seedusage"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCollectionLog   = "CollectionLog"
	TypeCronJobConfig   = "CronJobConfig"
	TypeKeyword         = "Keyword"
	TypeKeywordDocCount = "KeywordDocCount"
	TypeSeedUsage       = "SeedUsage"
)

// CollectionLogMutation represents an operation that mutates the CollectionLog nodes in the graph.
type CollectionLogMutation struct {
	config
	op                  Op
	typ                 string
	id                  *ulid.ID
	created_at          *time.Time
	updated_at          *time.Time
	job_name            *string
	status              *collectionlog.Status
	started_at          *time.Time
	completed_at        *time.Time
	duration_seconds    *int
	addduration_seconds *int
	total_processed     *int
	addtotal_processed  *int
	new_count           *int
	addnew_count        *int
	updated_count       *int
	addupdated_count    *int
	skipped_count       *int
	addskipped_count    *int
	failed_count        *int
	addfailed_count     *int
	api_calls_made      *int
	addapi_calls_made   *int
	error_summary       *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*CollectionLog, error)
	predicates          []predicate.CollectionLog
}

var _ ent.Mutation = (*CollectionLogMutation)(nil)

// collectionlogOption allows management of the mutation configuration using functional options.
type collectionlogOption func(*CollectionLogMutation)

// newCollectionLogMutation creates new mutation for the CollectionLog entity.
func newCollectionLogMutation(c config, op Op, opts ...collectionlogOption) *CollectionLogMutation {
	m := &CollectionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeCollectionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCollectionLogID sets the ID field of the mutation.
func withCollectionLogID(id ulid.ID) collectionlogOption {
	return func(m *CollectionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *CollectionLog
		)
		m.oldValue = func(ctx context.Context) (*CollectionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CollectionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCollectionLog sets the old CollectionLog of the mutation.
func withCollectionLog(node *CollectionLog) collectionlogOption {
	return func(m *CollectionLogMutation) {
		m.oldValue = func(context.Context) (*CollectionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CollectionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CollectionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CollectionLog entities.
func (m *CollectionLogMutation) SetID(id ulid.ID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CollectionLogMutation) ID() (id ulid.ID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CollectionLogMutation) IDs(ctx context.Context) ([]ulid.ID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CollectionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CollectionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CollectionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CollectionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CollectionLogMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CollectionLogMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CollectionLogMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetJobName sets the "job_name" field.
func (m *CollectionLogMutation) SetJobName(s string) {
	m.job_name = &s
}

// JobName returns the value of the "job_name" field in the mutation.
func (m *CollectionLogMutation) JobName() (r string, exists bool) {
	v := m.job_name
	if v == nil {
		return
	}
	return *v, true
}

// OldJobName returns the old "job_name" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldJobName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobName: %w", err)
	}
	return oldValue.JobName, nil
}

// ResetJobName resets all changes to the "job_name" field.
func (m *CollectionLogMutation) ResetJobName() {
	m.job_name = nil
}

// SetStatus sets the "status" field.
func (m *CollectionLogMutation) SetStatus(c collectionlog.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CollectionLogMutation) Status() (r collectionlog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldStatus(ctx context.Context) (v collectionlog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CollectionLogMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *CollectionLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CollectionLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CollectionLogMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *CollectionLogMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CollectionLogMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CollectionLogMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[collectionlog.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CollectionLogMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[collectionlog.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CollectionLogMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, collectionlog.FieldCompletedAt)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *CollectionLogMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *CollectionLogMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldDurationSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *CollectionLogMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *CollectionLogMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *CollectionLogMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetTotalProcessed sets the "total_processed" field.
func (m *CollectionLogMutation) SetTotalProcessed(i int) {
	m.total_processed = &i
	m.addtotal_processed = nil
}

// TotalProcessed returns the value of the "total_processed" field in the mutation.
func (m *CollectionLogMutation) TotalProcessed() (r int, exists bool) {
	v := m.total_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalProcessed returns the old "total_processed" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldTotalProcessed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalProcessed: %w", err)
	}
	return oldValue.TotalProcessed, nil
}

// AddTotalProcessed adds i to the "total_processed" field.
func (m *CollectionLogMutation) AddTotalProcessed(i int) {
	if m.addtotal_processed != nil {
		*m.addtotal_processed += i
	} else {
		m.addtotal_processed = &i
	}
}

// AddedTotalProcessed returns the value that was added to the "total_processed" field in this mutation.
func (m *CollectionLogMutation) AddedTotalProcessed() (r int, exists bool) {
	v := m.addtotal_processed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalProcessed resets all changes to the "total_processed" field.
func (m *CollectionLogMutation) ResetTotalProcessed() {
	m.total_processed = nil
	m.addtotal_processed = nil
}

// SetNewCount sets the "new_count" field.
func (m *CollectionLogMutation) SetNewCount(i int) {
	m.new_count = &i
	m.addnew_count = nil
}

// NewCount returns the value of the "new_count" field in the mutation.
func (m *CollectionLogMutation) NewCount() (r int, exists bool) {
	v := m.new_count
	if v == nil {
		return
	}
	return *v, true
}

// OldNewCount returns the old "new_count" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldNewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewCount: %w", err)
	}
	return oldValue.NewCount, nil
}

// AddNewCount adds i to the "new_count" field.
func (m *CollectionLogMutation) AddNewCount(i int) {
	if m.addnew_count != nil {
		*m.addnew_count += i
	} else {
		m.addnew_count = &i
	}
}

// AddedNewCount returns the value that was added to the "new_count" field in this mutation.
func (m *CollectionLogMutation) AddedNewCount() (r int, exists bool) {
	v := m.addnew_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewCount resets all changes to the "new_count" field.
func (m *CollectionLogMutation) ResetNewCount() {
	m.new_count = nil
	m.addnew_count = nil
}

// SetUpdatedCount sets the "updated_count" field.
func (m *CollectionLogMutation) SetUpdatedCount(i int) {
	m.updated_count = &i
	m.addupdated_count = nil
}

// UpdatedCount returns the value of the "updated_count" field in the mutation.
func (m *CollectionLogMutation) UpdatedCount() (r int, exists bool) {
	v := m.updated_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedCount returns the old "updated_count" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldUpdatedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedCount: %w", err)
	}
	return oldValue.UpdatedCount, nil
}

// AddUpdatedCount adds i to the "updated_count" field.
func (m *CollectionLogMutation) AddUpdatedCount(i int) {
	if m.addupdated_count != nil {
		*m.addupdated_count += i
	} else {
		m.addupdated_count = &i
	}
}

// AddedUpdatedCount returns the value that was added to the "updated_count" field in this mutation.
func (m *CollectionLogMutation) AddedUpdatedCount() (r int, exists bool) {
	v := m.addupdated_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedCount resets all changes to the "updated_count" field.
func (m *CollectionLogMutation) ResetUpdatedCount() {
	m.updated_count = nil
	m.addupdated_count = nil
}

// SetSkippedCount sets the "skipped_count" field.
func (m *CollectionLogMutation) SetSkippedCount(i int) {
	m.skipped_count = &i
	m.addskipped_count = nil
}

// SkippedCount returns the value of the "skipped_count" field in the mutation.
func (m *CollectionLogMutation) SkippedCount() (r int, exists bool) {
	v := m.skipped_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSkippedCount returns the old "skipped_count" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldSkippedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkippedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkippedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkippedCount: %w", err)
	}
	return oldValue.SkippedCount, nil
}

// AddSkippedCount adds i to the "skipped_count" field.
func (m *CollectionLogMutation) AddSkippedCount(i int) {
	if m.addskipped_count != nil {
		*m.addskipped_count += i
	} else {
		m.addskipped_count = &i
	}
}

// AddedSkippedCount returns the value that was added to the "skipped_count" field in this mutation.
func (m *CollectionLogMutation) AddedSkippedCount() (r int, exists bool) {
	v := m.addskipped_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkippedCount resets all changes to the "skipped_count" field.
func (m *CollectionLogMutation) ResetSkippedCount() {
	m.skipped_count = nil
	m.addskipped_count = nil
}

// SetFailedCount sets the "failed_count" field.
func (m *CollectionLogMutation) SetFailedCount(i int) {
	m.failed_count = &i
	m.addfailed_count = nil
}

// FailedCount returns the value of the "failed_count" field in the mutation.
func (m *CollectionLogMutation) FailedCount() (r int, exists bool) {
	v := m.failed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCount returns the old "failed_count" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldFailedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCount: %w", err)
	}
	return oldValue.FailedCount, nil
}

// AddFailedCount adds i to the "failed_count" field.
func (m *CollectionLogMutation) AddFailedCount(i int) {
	if m.addfailed_count != nil {
		*m.addfailed_count += i
	} else {
		m.addfailed_count = &i
	}
}

// AddedFailedCount returns the value that was added to the "failed_count" field in this mutation.
func (m *CollectionLogMutation) AddedFailedCount() (r int, exists bool) {
	v := m.addfailed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedCount resets all changes to the "failed_count" field.
func (m *CollectionLogMutation) ResetFailedCount() {
	m.failed_count = nil
	m.addfailed_count = nil
}

// SetAPICallsMade sets the "api_calls_made" field.
func (m *CollectionLogMutation) SetAPICallsMade(i int) {
	m.api_calls_made = &i
	m.addapi_calls_made = nil
}

// APICallsMade returns the value of the "api_calls_made" field in the mutation.
func (m *CollectionLogMutation) APICallsMade() (r int, exists bool) {
	v := m.api_calls_made
	if v == nil {
		return
	}
	return *v, true
}

// OldAPICallsMade returns the old "api_calls_made" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldAPICallsMade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPICallsMade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPICallsMade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPICallsMade: %w", err)
	}
	return oldValue.APICallsMade, nil
}

// AddAPICallsMade adds i to the "api_calls_made" field.
func (m *CollectionLogMutation) AddAPICallsMade(i int) {
	if m.addapi_calls_made != nil {
		*m.addapi_calls_made += i
	} else {
		m.addapi_calls_made = &i
	}
}

// AddedAPICallsMade returns the value that was added to the "api_calls_made" field in this mutation.
func (m *CollectionLogMutation) AddedAPICallsMade() (r int, exists bool) {
	v := m.addapi_calls_made
	if v == nil {
		return
	}
	return *v, true
}

// ResetAPICallsMade resets all changes to the "api_calls_made" field.
func (m *CollectionLogMutation) ResetAPICallsMade() {
	m.api_calls_made = nil
	m.addapi_calls_made = nil
}

// SetErrorSummary sets the "error_summary" field.
func (m *CollectionLogMutation) SetErrorSummary(s string) {
	m.error_summary = &s
}

// ErrorSummary returns the value of the "error_summary" field in the mutation.
func (m *CollectionLogMutation) ErrorSummary() (r string, exists bool) {
	v := m.error_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorSummary returns the old "error_summary" field's value of the CollectionLog entity.
// If the CollectionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLogMutation) OldErrorSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorSummary: %w", err)
	}
	return oldValue.ErrorSummary, nil
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (m *CollectionLogMutation) ClearErrorSummary() {
	m.error_summary = nil
	m.clearedFields[collectionlog.FieldErrorSummary] = struct{}{}
}

// ErrorSummaryCleared returns if the "error_summary" field was cleared in this mutation.
func (m *CollectionLogMutation) ErrorSummaryCleared() bool {
	_, ok := m.clearedFields[collectionlog.FieldErrorSummary]
	return ok
}

// ResetErrorSummary resets all changes to the "error_summary" field.
func (m *CollectionLogMutation) ResetErrorSummary() {
	m.error_summary = nil
	delete(m.clearedFields, collectionlog.FieldErrorSummary)
}

// Where appends a list predicates to the CollectionLogMutation builder.
func (m *CollectionLogMutation) Where(ps ...predicate.CollectionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CollectionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CollectionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CollectionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CollectionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CollectionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CollectionLog).
func (m *CollectionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CollectionLogMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, collectionlog.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, collectionlog.FieldUpdatedAt)
	}
	if m.job_name != nil {
		fields = append(fields, collectionlog.FieldJobName)
	}
	if m.status != nil {
		fields = append(fields, collectionlog.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, collectionlog.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, collectionlog.FieldCompletedAt)
	}
	if m.duration_seconds != nil {
		fields = append(fields, collectionlog.FieldDurationSeconds)
	}
	if m.total_processed != nil {
		fields = append(fields, collectionlog.FieldTotalProcessed)
	}
	if m.new_count != nil {
		fields = append(fields, collectionlog.FieldNewCount)
	}
	if m.updated_count != nil {
		fields = append(fields, collectionlog.FieldUpdatedCount)
	}
	if m.skipped_count != nil {
		fields = append(fields, collectionlog.FieldSkippedCount)
	}
	if m.failed_count != nil {
		fields = append(fields, collectionlog.FieldFailedCount)
	}
	if m.api_calls_made != nil {
		fields = append(fields, collectionlog.FieldAPICallsMade)
	}
	if m.error_summary != nil {
		fields = append(fields, collectionlog.FieldErrorSummary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CollectionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case collectionlog.FieldCreatedAt:
		return m.CreatedAt()
	case collectionlog.FieldUpdatedAt:
		return m.UpdatedAt()
	case collectionlog.FieldJobName:
		return m.JobName()
	case collectionlog.FieldStatus:
		return m.Status()
	case collectionlog.FieldStartedAt:
		return m.StartedAt()
	case collectionlog.FieldCompletedAt:
		return m.CompletedAt()
	case collectionlog.FieldDurationSeconds:
		return m.DurationSeconds()
	case collectionlog.FieldTotalProcessed:
		return m.TotalProcessed()
	case collectionlog.FieldNewCount:
		return m.NewCount()
	case collectionlog.FieldUpdatedCount:
		return m.UpdatedCount()
	case collectionlog.FieldSkippedCount:
		return m.SkippedCount()
	case collectionlog.FieldFailedCount:
		return m.FailedCount()
	case collectionlog.FieldAPICallsMade:
		return m.APICallsMade()
	case collectionlog.FieldErrorSummary:
		return m.ErrorSummary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CollectionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case collectionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case collectionlog.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case collectionlog.FieldJobName:
		return m.OldJobName(ctx)
	case collectionlog.FieldStatus:
		return m.OldStatus(ctx)
	case collectionlog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case collectionlog.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case collectionlog.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case collectionlog.FieldTotalProcessed:
		return m.OldTotalProcessed(ctx)
	case collectionlog.FieldNewCount:
		return m.OldNewCount(ctx)
	case collectionlog.FieldUpdatedCount:
		return m.OldUpdatedCount(ctx)
	case collectionlog.FieldSkippedCount:
		return m.OldSkippedCount(ctx)
	case collectionlog.FieldFailedCount:
		return m.OldFailedCount(ctx)
	case collectionlog.FieldAPICallsMade:
		return m.OldAPICallsMade(ctx)
	case collectionlog.FieldErrorSummary:
		return m.OldErrorSummary(ctx)
	}
	return nil, fmt.Errorf("unknown CollectionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case collectionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case collectionlog.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case collectionlog.FieldJobName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobName(v)
		return nil
	case collectionlog.FieldStatus:
		v, ok := value.(collectionlog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case collectionlog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case collectionlog.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case collectionlog.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case collectionlog.FieldTotalProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalProcessed(v)
		return nil
	case collectionlog.FieldNewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewCount(v)
		return nil
	case collectionlog.FieldUpdatedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedCount(v)
		return nil
	case collectionlog.FieldSkippedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkippedCount(v)
		return nil
	case collectionlog.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCount(v)
		return nil
	case collectionlog.FieldAPICallsMade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPICallsMade(v)
		return nil
	case collectionlog.FieldErrorSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorSummary(v)
		return nil
	}
	return fmt.Errorf("unknown CollectionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CollectionLogMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, collectionlog.FieldDurationSeconds)
	}
	if m.addtotal_processed != nil {
		fields = append(fields, collectionlog.FieldTotalProcessed)
	}
	if m.addnew_count != nil {
		fields = append(fields, collectionlog.FieldNewCount)
	}
	if m.addupdated_count != nil {
		fields = append(fields, collectionlog.FieldUpdatedCount)
	}
	if m.addskipped_count != nil {
		fields = append(fields, collectionlog.FieldSkippedCount)
	}
	if m.addfailed_count != nil {
		fields = append(fields, collectionlog.FieldFailedCount)
	}
	if m.addapi_calls_made != nil {
		fields = append(fields, collectionlog.FieldAPICallsMade)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CollectionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case collectionlog.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	case collectionlog.FieldTotalProcessed:
		return m.AddedTotalProcessed()
	case collectionlog.FieldNewCount:
		return m.AddedNewCount()
	case collectionlog.FieldUpdatedCount:
		return m.AddedUpdatedCount()
	case collectionlog.FieldSkippedCount:
		return m.AddedSkippedCount()
	case collectionlog.FieldFailedCount:
		return m.AddedFailedCount()
	case collectionlog.FieldAPICallsMade:
		return m.AddedAPICallsMade()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case collectionlog.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	case collectionlog.FieldTotalProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalProcessed(v)
		return nil
	case collectionlog.FieldNewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewCount(v)
		return nil
	case collectionlog.FieldUpdatedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedCount(v)
		return nil
	case collectionlog.FieldSkippedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkippedCount(v)
		return nil
	case collectionlog.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedCount(v)
		return nil
	case collectionlog.FieldAPICallsMade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAPICallsMade(v)
		return nil
	}
	return fmt.Errorf("unknown CollectionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CollectionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(collectionlog.FieldCompletedAt) {
		fields = append(fields, collectionlog.FieldCompletedAt)
	}
	if m.FieldCleared(collectionlog.FieldErrorSummary) {
		fields = append(fields, collectionlog.FieldErrorSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CollectionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CollectionLogMutation) ClearField(name string) error {
	switch name {
	case collectionlog.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case collectionlog.FieldErrorSummary:
		m.ClearErrorSummary()
		return nil
	}
	return fmt.Errorf("unknown CollectionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CollectionLogMutation) ResetField(name string) error {
	switch name {
	case collectionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case collectionlog.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case collectionlog.FieldJobName:
		m.ResetJobName()
		return nil
	case collectionlog.FieldStatus:
		m.ResetStatus()
		return nil
	case collectionlog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case collectionlog.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case collectionlog.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case collectionlog.FieldTotalProcessed:
		m.ResetTotalProcessed()
		return nil
	case collectionlog.FieldNewCount:
		m.ResetNewCount()
		return nil
	case collectionlog.FieldUpdatedCount:
		m.ResetUpdatedCount()
		return nil
	case collectionlog.FieldSkippedCount:
		m.ResetSkippedCount()
		return nil
	case collectionlog.FieldFailedCount:
		m.ResetFailedCount()
		return nil
	case collectionlog.FieldAPICallsMade:
		m.ResetAPICallsMade()
		return nil
	case collectionlog.FieldErrorSummary:
		m.ResetErrorSummary()
		return nil
	}
	return fmt.Errorf("unknown CollectionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CollectionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CollectionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CollectionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CollectionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CollectionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CollectionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CollectionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CollectionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CollectionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CollectionLog edge %s", name)
}

// CronJobConfigMutation represents an operation that mutates the CronJobConfig nodes in the graph.
type CronJobConfigMutation struct {
	config
	op             Op
	typ            string
	id             *ulid.ID
	created_at     *time.Time
	updated_at     *time.Time
	job_name       *string
	job_type       *cronjobconfig.JobType
	schedule       *string
	enabled        *bool
	batch_size     *int
	addbatch_size  *int
	concurrency    *int
	addconcurrency *int
	admin_email    *string
	respect_quota  *bool
	last_run_at    *time.Time
	next_run_at    *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*CronJobConfig, error)
	predicates     []predicate.CronJobConfig
}

var _ ent.Mutation = (*CronJobConfigMutation)(nil)

// cronjobconfigOption allows management of the mutation configuration using functional options.
type cronjobconfigOption func(*CronJobConfigMutation)

// newCronJobConfigMutation creates new mutation for the CronJobConfig entity.
func newCronJobConfigMutation(c config, op Op, opts ...cronjobconfigOption) *CronJobConfigMutation {
	m := &CronJobConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeCronJobConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCronJobConfigID sets the ID field of the mutation.
func withCronJobConfigID(id ulid.ID) cronjobconfigOption {
	return func(m *CronJobConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *CronJobConfig
		)
		m.oldValue = func(ctx context.Context) (*CronJobConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CronJobConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCronJobConfig sets the old CronJobConfig of the mutation.
func withCronJobConfig(node *CronJobConfig) cronjobconfigOption {
	return func(m *CronJobConfigMutation) {
		m.oldValue = func(context.Context) (*CronJobConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CronJobConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CronJobConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CronJobConfig entities.
func (m *CronJobConfigMutation) SetID(id ulid.ID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CronJobConfigMutation) ID() (id ulid.ID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CronJobConfigMutation) IDs(ctx context.Context) ([]ulid.ID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CronJobConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CronJobConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CronJobConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CronJobConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CronJobConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CronJobConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CronJobConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetJobName sets the "job_name" field.
func (m *CronJobConfigMutation) SetJobName(s string) {
	m.job_name = &s
}

// JobName returns the value of the "job_name" field in the mutation.
func (m *CronJobConfigMutation) JobName() (r string, exists bool) {
	v := m.job_name
	if v == nil {
		return
	}
	return *v, true
}

// OldJobName returns the old "job_name" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldJobName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobName: %w", err)
	}
	return oldValue.JobName, nil
}

// ResetJobName resets all changes to the "job_name" field.
func (m *CronJobConfigMutation) ResetJobName() {
	m.job_name = nil
}

// SetJobType sets the "job_type" field.
func (m *CronJobConfigMutation) SetJobType(ct cronjobconfig.JobType) {
	m.job_type = &ct
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *CronJobConfigMutation) JobType() (r cronjobconfig.JobType, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldJobType(ctx context.Context) (v cronjobconfig.JobType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *CronJobConfigMutation) ResetJobType() {
	m.job_type = nil
}

// SetSchedule sets the "schedule" field.
func (m *CronJobConfigMutation) SetSchedule(s string) {
	m.schedule = &s
}

// Schedule returns the value of the "schedule" field in the mutation.
func (m *CronJobConfigMutation) Schedule() (r string, exists bool) {
	v := m.schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedule returns the old "schedule" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldSchedule(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedule: %w", err)
	}
	return oldValue.Schedule, nil
}

// ResetSchedule resets all changes to the "schedule" field.
func (m *CronJobConfigMutation) ResetSchedule() {
	m.schedule = nil
}

// SetEnabled sets the "enabled" field.
func (m *CronJobConfigMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *CronJobConfigMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *CronJobConfigMutation) ResetEnabled() {
	m.enabled = nil
}

// SetBatchSize sets the "batch_size" field.
func (m *CronJobConfigMutation) SetBatchSize(i int) {
	m.batch_size = &i
	m.addbatch_size = nil
}

// BatchSize returns the value of the "batch_size" field in the mutation.
func (m *CronJobConfigMutation) BatchSize() (r int, exists bool) {
	v := m.batch_size
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchSize returns the old "batch_size" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldBatchSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchSize: %w", err)
	}
	return oldValue.BatchSize, nil
}

// AddBatchSize adds i to the "batch_size" field.
func (m *CronJobConfigMutation) AddBatchSize(i int) {
	if m.addbatch_size != nil {
		*m.addbatch_size += i
	} else {
		m.addbatch_size = &i
	}
}

// AddedBatchSize returns the value that was added to the "batch_size" field in this mutation.
func (m *CronJobConfigMutation) AddedBatchSize() (r int, exists bool) {
	v := m.addbatch_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatchSize resets all changes to the "batch_size" field.
func (m *CronJobConfigMutation) ResetBatchSize() {
	m.batch_size = nil
	m.addbatch_size = nil
}

// SetConcurrency sets the "concurrency" field.
func (m *CronJobConfigMutation) SetConcurrency(i int) {
	m.concurrency = &i
	m.addconcurrency = nil
}

// Concurrency returns the value of the "concurrency" field in the mutation.
func (m *CronJobConfigMutation) Concurrency() (r int, exists bool) {
	v := m.concurrency
	if v == nil {
		return
	}
	return *v, true
}

// OldConcurrency returns the old "concurrency" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldConcurrency(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcurrency: %w", err)
	}
	return oldValue.Concurrency, nil
}

// AddConcurrency adds i to the "concurrency" field.
func (m *CronJobConfigMutation) AddConcurrency(i int) {
	if m.addconcurrency != nil {
		*m.addconcurrency += i
	} else {
		m.addconcurrency = &i
	}
}

// AddedConcurrency returns the value that was added to the "concurrency" field in this mutation.
func (m *CronJobConfigMutation) AddedConcurrency() (r int, exists bool) {
	v := m.addconcurrency
	if v == nil {
		return
	}
	return *v, true
}

// ResetConcurrency resets all changes to the "concurrency" field.
func (m *CronJobConfigMutation) ResetConcurrency() {
	m.concurrency = nil
	m.addconcurrency = nil
}

// SetAdminEmail sets the "admin_email" field.
func (m *CronJobConfigMutation) SetAdminEmail(s string) {
	m.admin_email = &s
}

// AdminEmail returns the value of the "admin_email" field in the mutation.
func (m *CronJobConfigMutation) AdminEmail() (r string, exists bool) {
	v := m.admin_email
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminEmail returns the old "admin_email" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldAdminEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminEmail: %w", err)
	}
	return oldValue.AdminEmail, nil
}

// ResetAdminEmail resets all changes to the "admin_email" field.
func (m *CronJobConfigMutation) ResetAdminEmail() {
	m.admin_email = nil
}

// SetRespectQuota sets the "respect_quota" field.
func (m *CronJobConfigMutation) SetRespectQuota(b bool) {
	m.respect_quota = &b
}

// RespectQuota returns the value of the "respect_quota" field in the mutation.
func (m *CronJobConfigMutation) RespectQuota() (r bool, exists bool) {
	v := m.respect_quota
	if v == nil {
		return
	}
	return *v, true
}

// OldRespectQuota returns the old "respect_quota" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldRespectQuota(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespectQuota is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespectQuota requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespectQuota: %w", err)
	}
	return oldValue.RespectQuota, nil
}

// ResetRespectQuota resets all changes to the "respect_quota" field.
func (m *CronJobConfigMutation) ResetRespectQuota() {
	m.respect_quota = nil
}

// SetLastRunAt sets the "last_run_at" field.
func (m *CronJobConfigMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *CronJobConfigMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *CronJobConfigMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[cronjobconfig.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *CronJobConfigMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[cronjobconfig.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *CronJobConfigMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, cronjobconfig.FieldLastRunAt)
}

// SetNextRunAt sets the "next_run_at" field.
func (m *CronJobConfigMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *CronJobConfigMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the CronJobConfig entity.
// If the CronJobConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobConfigMutation) OldNextRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (m *CronJobConfigMutation) ClearNextRunAt() {
	m.next_run_at = nil
	m.clearedFields[cronjobconfig.FieldNextRunAt] = struct{}{}
}

// NextRunAtCleared returns if the "next_run_at" field was cleared in this mutation.
func (m *CronJobConfigMutation) NextRunAtCleared() bool {
	_, ok := m.clearedFields[cronjobconfig.FieldNextRunAt]
	return ok
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *CronJobConfigMutation) ResetNextRunAt() {
	m.next_run_at = nil
	delete(m.clearedFields, cronjobconfig.FieldNextRunAt)
}

// Where appends a list predicates to the CronJobConfigMutation builder.
func (m *CronJobConfigMutation) Where(ps ...predicate.CronJobConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CronJobConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CronJobConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CronJobConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CronJobConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CronJobConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CronJobConfig).
func (m *CronJobConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CronJobConfigMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, cronjobconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cronjobconfig.FieldUpdatedAt)
	}
	if m.job_name != nil {
		fields = append(fields, cronjobconfig.FieldJobName)
	}
	if m.job_type != nil {
		fields = append(fields, cronjobconfig.FieldJobType)
	}
	if m.schedule != nil {
		fields = append(fields, cronjobconfig.FieldSchedule)
	}
	if m.enabled != nil {
		fields = append(fields, cronjobconfig.FieldEnabled)
	}
	if m.batch_size != nil {
		fields = append(fields, cronjobconfig.FieldBatchSize)
	}
	if m.concurrency != nil {
		fields = append(fields, cronjobconfig.FieldConcurrency)
	}
	if m.admin_email != nil {
		fields = append(fields, cronjobconfig.FieldAdminEmail)
	}
	if m.respect_quota != nil {
		fields = append(fields, cronjobconfig.FieldRespectQuota)
	}
	if m.last_run_at != nil {
		fields = append(fields, cronjobconfig.FieldLastRunAt)
	}
	if m.next_run_at != nil {
		fields = append(fields, cronjobconfig.FieldNextRunAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CronJobConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cronjobconfig.FieldCreatedAt:
		return m.CreatedAt()
	case cronjobconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	case cronjobconfig.FieldJobName:
		return m.JobName()
	case cronjobconfig.FieldJobType:
		return m.JobType()
	case cronjobconfig.FieldSchedule:
		return m.Schedule()
	case cronjobconfig.FieldEnabled:
		return m.Enabled()
	case cronjobconfig.FieldBatchSize:
		return m.BatchSize()
	case cronjobconfig.FieldConcurrency:
		return m.Concurrency()
	case cronjobconfig.FieldAdminEmail:
		return m.AdminEmail()
	case cronjobconfig.FieldRespectQuota:
		return m.RespectQuota()
	case cronjobconfig.FieldLastRunAt:
		return m.LastRunAt()
	case cronjobconfig.FieldNextRunAt:
		return m.NextRunAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CronJobConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cronjobconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cronjobconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case cronjobconfig.FieldJobName:
		return m.OldJobName(ctx)
	case cronjobconfig.FieldJobType:
		return m.OldJobType(ctx)
	case cronjobconfig.FieldSchedule:
		return m.OldSchedule(ctx)
	case cronjobconfig.FieldEnabled:
		return m.OldEnabled(ctx)
	case cronjobconfig.FieldBatchSize:
		return m.OldBatchSize(ctx)
	case cronjobconfig.FieldConcurrency:
		return m.OldConcurrency(ctx)
	case cronjobconfig.FieldAdminEmail:
		return m.OldAdminEmail(ctx)
	case cronjobconfig.FieldRespectQuota:
		return m.OldRespectQuota(ctx)
	case cronjobconfig.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case cronjobconfig.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	}
	return nil, fmt.Errorf("unknown CronJobConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CronJobConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cronjobconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cronjobconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case cronjobconfig.FieldJobName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobName(v)
		return nil
	case cronjobconfig.FieldJobType:
		v, ok := value.(cronjobconfig.JobType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case cronjobconfig.FieldSchedule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedule(v)
		return nil
	case cronjobconfig.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case cronjobconfig.FieldBatchSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchSize(v)
		return nil
	case cronjobconfig.FieldConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcurrency(v)
		return nil
	case cronjobconfig.FieldAdminEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminEmail(v)
		return nil
	case cronjobconfig.FieldRespectQuota:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespectQuota(v)
		return nil
	case cronjobconfig.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case cronjobconfig.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	}
	return fmt.Errorf("unknown CronJobConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CronJobConfigMutation) AddedFields() []string {
	var fields []string
	if m.addbatch_size != nil {
		fields = append(fields, cronjobconfig.FieldBatchSize)
	}
	if m.addconcurrency != nil {
		fields = append(fields, cronjobconfig.FieldConcurrency)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CronJobConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cronjobconfig.FieldBatchSize:
		return m.AddedBatchSize()
	case cronjobconfig.FieldConcurrency:
		return m.AddedConcurrency()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CronJobConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cronjobconfig.FieldBatchSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatchSize(v)
		return nil
	case cronjobconfig.FieldConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConcurrency(v)
		return nil
	}
	return fmt.Errorf("unknown CronJobConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CronJobConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cronjobconfig.FieldLastRunAt) {
		fields = append(fields, cronjobconfig.FieldLastRunAt)
	}
	if m.FieldCleared(cronjobconfig.FieldNextRunAt) {
		fields = append(fields, cronjobconfig.FieldNextRunAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CronJobConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CronJobConfigMutation) ClearField(name string) error {
	switch name {
	case cronjobconfig.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	case cronjobconfig.FieldNextRunAt:
		m.ClearNextRunAt()
		return nil
	}
	return fmt.Errorf("unknown CronJobConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CronJobConfigMutation) ResetField(name string) error {
	switch name {
	case cronjobconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cronjobconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case cronjobconfig.FieldJobName:
		m.ResetJobName()
		return nil
	case cronjobconfig.FieldJobType:
		m.ResetJobType()
		return nil
	case cronjobconfig.FieldSchedule:
		m.ResetSchedule()
		return nil
	case cronjobconfig.FieldEnabled:
		m.ResetEnabled()
		return nil
	case cronjobconfig.FieldBatchSize:
		m.ResetBatchSize()
		return nil
	case cronjobconfig.FieldConcurrency:
		m.ResetConcurrency()
		return nil
	case cronjobconfig.FieldAdminEmail:
		m.ResetAdminEmail()
		return nil
	case cronjobconfig.FieldRespectQuota:
		m.ResetRespectQuota()
		return nil
	case cronjobconfig.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case cronjobconfig.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	}
	return fmt.Errorf("unknown CronJobConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CronJobConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CronJobConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CronJobConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CronJobConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CronJobConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CronJobConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CronJobConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CronJobConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CronJobConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CronJobConfig edge %s", name)
}

// KeywordMutation represents an operation that mutates the Keyword nodes in the graph.
type KeywordMutation struct {
	config
	op                       Op
	typ                      string
	id                       *ulid.ID
	created_at               *time.Time
	updated_at               *time.Time
	keyword                  *string
	monthly_pc_search        *int
	addmonthly_pc_search     *int
	monthly_mobile_search    *int
	addmonthly_mobile_search *int
	avg_monthly_search       *int
	addavg_monthly_search    *int
	monthly_click_pc         *float64
	addmonthly_click_pc      *float64
	monthly_click_mobile     *float64
	addmonthly_click_mobile  *float64
	ctr_pc                   *float64
	addctr_pc                *float64
	ctr_mobile               *float64
	addctr_mobile            *float64
	ad_depth                 *int
	addad_depth              *int
	competition              *string
	seed                     *string
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Keyword, error)
	predicates               []predicate.Keyword
}

var _ ent.Mutation = (*KeywordMutation)(nil)

// keywordOption allows management of the mutation configuration using functional options.
type keywordOption func(*KeywordMutation)

// newKeywordMutation creates new mutation for the Keyword entity.
func newKeywordMutation(c config, op Op, opts ...keywordOption) *KeywordMutation {
	m := &KeywordMutation{
		config:        c,
		op:            op,
		typ:           TypeKeyword,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKeywordID sets the ID field of the mutation.
func withKeywordID(id ulid.ID) keywordOption {
	return func(m *KeywordMutation) {
		var (
			err   error
			once  sync.Once
			value *Keyword
		)
		m.oldValue = func(ctx context.Context) (*Keyword, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Keyword.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKeyword sets the old Keyword of the mutation.
func withKeyword(node *Keyword) keywordOption {
	return func(m *KeywordMutation) {
		m.oldValue = func(context.Context) (*Keyword, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KeywordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KeywordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Keyword entities.
func (m *KeywordMutation) SetID(id ulid.ID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KeywordMutation) ID() (id ulid.ID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KeywordMutation) IDs(ctx context.Context) ([]ulid.ID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Keyword.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *KeywordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KeywordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KeywordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KeywordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KeywordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *KeywordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetKeyword sets the "keyword" field.
func (m *KeywordMutation) SetKeyword(s string) {
	m.keyword = &s
}

// Keyword returns the value of the "keyword" field in the mutation.
func (m *KeywordMutation) Keyword() (r string, exists bool) {
	v := m.keyword
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyword returns the old "keyword" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldKeyword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyword: %w", err)
	}
	return oldValue.Keyword, nil
}

// ResetKeyword resets all changes to the "keyword" field.
func (m *KeywordMutation) ResetKeyword() {
	m.keyword = nil
}

// SetMonthlyPcSearch sets the "monthly_pc_search" field.
func (m *KeywordMutation) SetMonthlyPcSearch(i int) {
	m.monthly_pc_search = &i
	m.addmonthly_pc_search = nil
}

// MonthlyPcSearch returns the value of the "monthly_pc_search" field in the mutation.
func (m *KeywordMutation) MonthlyPcSearch() (r int, exists bool) {
	v := m.monthly_pc_search
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyPcSearch returns the old "monthly_pc_search" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldMonthlyPcSearch(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyPcSearch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyPcSearch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyPcSearch: %w", err)
	}
	return oldValue.MonthlyPcSearch, nil
}

// AddMonthlyPcSearch adds i to the "monthly_pc_search" field.
func (m *KeywordMutation) AddMonthlyPcSearch(i int) {
	if m.addmonthly_pc_search != nil {
		*m.addmonthly_pc_search += i
	} else {
		m.addmonthly_pc_search = &i
	}
}

// AddedMonthlyPcSearch returns the value that was added to the "monthly_pc_search" field in this mutation.
func (m *KeywordMutation) AddedMonthlyPcSearch() (r int, exists bool) {
	v := m.addmonthly_pc_search
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyPcSearch resets all changes to the "monthly_pc_search" field.
func (m *KeywordMutation) ResetMonthlyPcSearch() {
	m.monthly_pc_search = nil
	m.addmonthly_pc_search = nil
}

// SetMonthlyMobileSearch sets the "monthly_mobile_search" field.
func (m *KeywordMutation) SetMonthlyMobileSearch(i int) {
	m.monthly_mobile_search = &i
	m.addmonthly_mobile_search = nil
}

// MonthlyMobileSearch returns the value of the "monthly_mobile_search" field in the mutation.
func (m *KeywordMutation) MonthlyMobileSearch() (r int, exists bool) {
	v := m.monthly_mobile_search
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyMobileSearch returns the old "monthly_mobile_search" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldMonthlyMobileSearch(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyMobileSearch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyMobileSearch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyMobileSearch: %w", err)
	}
	return oldValue.MonthlyMobileSearch, nil
}

// AddMonthlyMobileSearch adds i to the "monthly_mobile_search" field.
func (m *KeywordMutation) AddMonthlyMobileSearch(i int) {
	if m.addmonthly_mobile_search != nil {
		*m.addmonthly_mobile_search += i
	} else {
		m.addmonthly_mobile_search = &i
	}
}

// AddedMonthlyMobileSearch returns the value that was added to the "monthly_mobile_search" field in this mutation.
func (m *KeywordMutation) AddedMonthlyMobileSearch() (r int, exists bool) {
	v := m.addmonthly_mobile_search
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyMobileSearch resets all changes to the "monthly_mobile_search" field.
func (m *KeywordMutation) ResetMonthlyMobileSearch() {
	m.monthly_mobile_search = nil
	m.addmonthly_mobile_search = nil
}

// SetAvgMonthlySearch sets the "avg_monthly_search" field.
func (m *KeywordMutation) SetAvgMonthlySearch(i int) {
	m.avg_monthly_search = &i
	m.addavg_monthly_search = nil
}

// AvgMonthlySearch returns the value of the "avg_monthly_search" field in the mutation.
func (m *KeywordMutation) AvgMonthlySearch() (r int, exists bool) {
	v := m.avg_monthly_search
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgMonthlySearch returns the old "avg_monthly_search" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldAvgMonthlySearch(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgMonthlySearch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgMonthlySearch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgMonthlySearch: %w", err)
	}
	return oldValue.AvgMonthlySearch, nil
}

// AddAvgMonthlySearch adds i to the "avg_monthly_search" field.
func (m *KeywordMutation) AddAvgMonthlySearch(i int) {
	if m.addavg_monthly_search != nil {
		*m.addavg_monthly_search += i
	} else {
		m.addavg_monthly_search = &i
	}
}

// AddedAvgMonthlySearch returns the value that was added to the "avg_monthly_search" field in this mutation.
func (m *KeywordMutation) AddedAvgMonthlySearch() (r int, exists bool) {
	v := m.addavg_monthly_search
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgMonthlySearch resets all changes to the "avg_monthly_search" field.
func (m *KeywordMutation) ResetAvgMonthlySearch() {
	m.avg_monthly_search = nil
	m.addavg_monthly_search = nil
}

// SetMonthlyClickPc sets the "monthly_click_pc" field.
func (m *KeywordMutation) SetMonthlyClickPc(f float64) {
	m.monthly_click_pc = &f
	m.addmonthly_click_pc = nil
}

// MonthlyClickPc returns the value of the "monthly_click_pc" field in the mutation.
func (m *KeywordMutation) MonthlyClickPc() (r float64, exists bool) {
	v := m.monthly_click_pc
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyClickPc returns the old "monthly_click_pc" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldMonthlyClickPc(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyClickPc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyClickPc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyClickPc: %w", err)
	}
	return oldValue.MonthlyClickPc, nil
}

// AddMonthlyClickPc adds f to the "monthly_click_pc" field.
func (m *KeywordMutation) AddMonthlyClickPc(f float64) {
	if m.addmonthly_click_pc != nil {
		*m.addmonthly_click_pc += f
	} else {
		m.addmonthly_click_pc = &f
	}
}

// AddedMonthlyClickPc returns the value that was added to the "monthly_click_pc" field in this mutation.
func (m *KeywordMutation) AddedMonthlyClickPc() (r float64, exists bool) {
	v := m.addmonthly_click_pc
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyClickPc resets all changes to the "monthly_click_pc" field.
func (m *KeywordMutation) ResetMonthlyClickPc() {
	m.monthly_click_pc = nil
	m.addmonthly_click_pc = nil
}

// SetMonthlyClickMobile sets the "monthly_click_mobile" field.
func (m *KeywordMutation) SetMonthlyClickMobile(f float64) {
	m.monthly_click_mobile = &f
	m.addmonthly_click_mobile = nil
}

// MonthlyClickMobile returns the value of the "monthly_click_mobile" field in the mutation.
func (m *KeywordMutation) MonthlyClickMobile() (r float64, exists bool) {
	v := m.monthly_click_mobile
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyClickMobile returns the old "monthly_click_mobile" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldMonthlyClickMobile(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyClickMobile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyClickMobile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyClickMobile: %w", err)
	}
	return oldValue.MonthlyClickMobile, nil
}

// AddMonthlyClickMobile adds f to the "monthly_click_mobile" field.
func (m *KeywordMutation) AddMonthlyClickMobile(f float64) {
	if m.addmonthly_click_mobile != nil {
		*m.addmonthly_click_mobile += f
	} else {
		m.addmonthly_click_mobile = &f
	}
}

// AddedMonthlyClickMobile returns the value that was added to the "monthly_click_mobile" field in this mutation.
func (m *KeywordMutation) AddedMonthlyClickMobile() (r float64, exists bool) {
	v := m.addmonthly_click_mobile
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyClickMobile resets all changes to the "monthly_click_mobile" field.
func (m *KeywordMutation) ResetMonthlyClickMobile() {
	m.monthly_click_mobile = nil
	m.addmonthly_click_mobile = nil
}

// SetCtrPc sets the "ctr_pc" field.
func (m *KeywordMutation) SetCtrPc(f float64) {
	m.ctr_pc = &f
	m.addctr_pc = nil
}

// CtrPc returns the value of the "ctr_pc" field in the mutation.
func (m *KeywordMutation) CtrPc() (r float64, exists bool) {
	v := m.ctr_pc
	if v == nil {
		return
	}
	return *v, true
}

// OldCtrPc returns the old "ctr_pc" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldCtrPc(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtrPc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtrPc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtrPc: %w", err)
	}
	return oldValue.CtrPc, nil
}

// AddCtrPc adds f to the "ctr_pc" field.
func (m *KeywordMutation) AddCtrPc(f float64) {
	if m.addctr_pc != nil {
		*m.addctr_pc += f
	} else {
		m.addctr_pc = &f
	}
}

// AddedCtrPc returns the value that was added to the "ctr_pc" field in this mutation.
func (m *KeywordMutation) AddedCtrPc() (r float64, exists bool) {
	v := m.addctr_pc
	if v == nil {
		return
	}
	return *v, true
}

// ResetCtrPc resets all changes to the "ctr_pc" field.
func (m *KeywordMutation) ResetCtrPc() {
	m.ctr_pc = nil
	m.addctr_pc = nil
}

// SetCtrMobile sets the "ctr_mobile" field.
func (m *KeywordMutation) SetCtrMobile(f float64) {
	m.ctr_mobile = &f
	m.addctr_mobile = nil
}

// CtrMobile returns the value of the "ctr_mobile" field in the mutation.
func (m *KeywordMutation) CtrMobile() (r float64, exists bool) {
	v := m.ctr_mobile
	if v == nil {
		return
	}
	return *v, true
}

// OldCtrMobile returns the old "ctr_mobile" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldCtrMobile(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtrMobile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtrMobile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtrMobile: %w", err)
	}
	return oldValue.CtrMobile, nil
}

// AddCtrMobile adds f to the "ctr_mobile" field.
func (m *KeywordMutation) AddCtrMobile(f float64) {
	if m.addctr_mobile != nil {
		*m.addctr_mobile += f
	} else {
		m.addctr_mobile = &f
	}
}

// AddedCtrMobile returns the value that was added to the "ctr_mobile" field in this mutation.
func (m *KeywordMutation) AddedCtrMobile() (r float64, exists bool) {
	v := m.addctr_mobile
	if v == nil {
		return
	}
	return *v, true
}

// ResetCtrMobile resets all changes to the "ctr_mobile" field.
func (m *KeywordMutation) ResetCtrMobile() {
	m.ctr_mobile = nil
	m.addctr_mobile = nil
}

// SetAdDepth sets the "ad_depth" field.
func (m *KeywordMutation) SetAdDepth(i int) {
	m.ad_depth = &i
	m.addad_depth = nil
}

// AdDepth returns the value of the "ad_depth" field in the mutation.
func (m *KeywordMutation) AdDepth() (r int, exists bool) {
	v := m.ad_depth
	if v == nil {
		return
	}
	return *v, true
}

// OldAdDepth returns the old "ad_depth" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldAdDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdDepth: %w", err)
	}
	return oldValue.AdDepth, nil
}

// AddAdDepth adds i to the "ad_depth" field.
func (m *KeywordMutation) AddAdDepth(i int) {
	if m.addad_depth != nil {
		*m.addad_depth += i
	} else {
		m.addad_depth = &i
	}
}

// AddedAdDepth returns the value that was added to the "ad_depth" field in this mutation.
func (m *KeywordMutation) AddedAdDepth() (r int, exists bool) {
	v := m.addad_depth
	if v == nil {
		return
	}
	return *v, true
}

// ResetAdDepth resets all changes to the "ad_depth" field.
func (m *KeywordMutation) ResetAdDepth() {
	m.ad_depth = nil
	m.addad_depth = nil
}

// SetCompetition sets the "competition" field.
func (m *KeywordMutation) SetCompetition(s string) {
	m.competition = &s
}

// Competition returns the value of the "competition" field in the mutation.
func (m *KeywordMutation) Competition() (r string, exists bool) {
	v := m.competition
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetition returns the old "competition" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldCompetition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetition: %w", err)
	}
	return oldValue.Competition, nil
}

// ResetCompetition resets all changes to the "competition" field.
func (m *KeywordMutation) ResetCompetition() {
	m.competition = nil
}

// SetSeed sets the "seed" field.
func (m *KeywordMutation) SetSeed(s string) {
	m.seed = &s
}

// Seed returns the value of the "seed" field in the mutation.
func (m *KeywordMutation) Seed() (r string, exists bool) {
	v := m.seed
	if v == nil {
		return
	}
	return *v, true
}

// OldSeed returns the old "seed" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldSeed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeed: %w", err)
	}
	return oldValue.Seed, nil
}

// ResetSeed resets all changes to the "seed" field.
func (m *KeywordMutation) ResetSeed() {
	m.seed = nil
}

// Where appends a list predicates to the KeywordMutation builder.
func (m *KeywordMutation) Where(ps ...predicate.Keyword) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KeywordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KeywordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Keyword, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KeywordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KeywordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Keyword).
func (m *KeywordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KeywordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, keyword.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, keyword.FieldUpdatedAt)
	}
	if m.keyword != nil {
		fields = append(fields, keyword.FieldKeyword)
	}
	if m.monthly_pc_search != nil {
		fields = append(fields, keyword.FieldMonthlyPcSearch)
	}
	if m.monthly_mobile_search != nil {
		fields = append(fields, keyword.FieldMonthlyMobileSearch)
	}
	if m.avg_monthly_search != nil {
		fields = append(fields, keyword.FieldAvgMonthlySearch)
	}
	if m.monthly_click_pc != nil {
		fields = append(fields, keyword.FieldMonthlyClickPc)
	}
	if m.monthly_click_mobile != nil {
		fields = append(fields, keyword.FieldMonthlyClickMobile)
	}
	if m.ctr_pc != nil {
		fields = append(fields, keyword.FieldCtrPc)
	}
	if m.ctr_mobile != nil {
		fields = append(fields, keyword.FieldCtrMobile)
	}
	if m.ad_depth != nil {
		fields = append(fields, keyword.FieldAdDepth)
	}
	if m.competition != nil {
		fields = append(fields, keyword.FieldCompetition)
	}
	if m.seed != nil {
		fields = append(fields, keyword.FieldSeed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KeywordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case keyword.FieldCreatedAt:
		return m.CreatedAt()
	case keyword.FieldUpdatedAt:
		return m.UpdatedAt()
	case keyword.FieldKeyword:
		return m.Keyword()
	case keyword.FieldMonthlyPcSearch:
		return m.MonthlyPcSearch()
	case keyword.FieldMonthlyMobileSearch:
		return m.MonthlyMobileSearch()
	case keyword.FieldAvgMonthlySearch:
		return m.AvgMonthlySearch()
	case keyword.FieldMonthlyClickPc:
		return m.MonthlyClickPc()
	case keyword.FieldMonthlyClickMobile:
		return m.MonthlyClickMobile()
	case keyword.FieldCtrPc:
		return m.CtrPc()
	case keyword.FieldCtrMobile:
		return m.CtrMobile()
	case keyword.FieldAdDepth:
		return m.AdDepth()
	case keyword.FieldCompetition:
		return m.Competition()
	case keyword.FieldSeed:
		return m.Seed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KeywordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case keyword.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case keyword.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case keyword.FieldKeyword:
		return m.OldKeyword(ctx)
	case keyword.FieldMonthlyPcSearch:
		return m.OldMonthlyPcSearch(ctx)
	case keyword.FieldMonthlyMobileSearch:
		return m.OldMonthlyMobileSearch(ctx)
	case keyword.FieldAvgMonthlySearch:
		return m.OldAvgMonthlySearch(ctx)
	case keyword.FieldMonthlyClickPc:
		return m.OldMonthlyClickPc(ctx)
	case keyword.FieldMonthlyClickMobile:
		return m.OldMonthlyClickMobile(ctx)
	case keyword.FieldCtrPc:
		return m.OldCtrPc(ctx)
	case keyword.FieldCtrMobile:
		return m.OldCtrMobile(ctx)
	case keyword.FieldAdDepth:
		return m.OldAdDepth(ctx)
	case keyword.FieldCompetition:
		return m.OldCompetition(ctx)
	case keyword.FieldSeed:
		return m.OldSeed(ctx)
	}
	return nil, fmt.Errorf("unknown Keyword field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeywordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case keyword.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case keyword.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case keyword.FieldKeyword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyword(v)
		return nil
	case keyword.FieldMonthlyPcSearch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyPcSearch(v)
		return nil
	case keyword.FieldMonthlyMobileSearch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyMobileSearch(v)
		return nil
	case keyword.FieldAvgMonthlySearch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgMonthlySearch(v)
		return nil
	case keyword.FieldMonthlyClickPc:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyClickPc(v)
		return nil
	case keyword.FieldMonthlyClickMobile:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyClickMobile(v)
		return nil
	case keyword.FieldCtrPc:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtrPc(v)
		return nil
	case keyword.FieldCtrMobile:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtrMobile(v)
		return nil
	case keyword.FieldAdDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdDepth(v)
		return nil
	case keyword.FieldCompetition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetition(v)
		return nil
	case keyword.FieldSeed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeed(v)
		return nil
	}
	return fmt.Errorf("unknown Keyword field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KeywordMutation) AddedFields() []string {
	var fields []string
	if m.addmonthly_pc_search != nil {
		fields = append(fields, keyword.FieldMonthlyPcSearch)
	}
	if m.addmonthly_mobile_search != nil {
		fields = append(fields, keyword.FieldMonthlyMobileSearch)
	}
	if m.addavg_monthly_search != nil {
		fields = append(fields, keyword.FieldAvgMonthlySearch)
	}
	if m.addmonthly_click_pc != nil {
		fields = append(fields, keyword.FieldMonthlyClickPc)
	}
	if m.addmonthly_click_mobile != nil {
		fields = append(fields, keyword.FieldMonthlyClickMobile)
	}
	if m.addctr_pc != nil {
		fields = append(fields, keyword.FieldCtrPc)
	}
	if m.addctr_mobile != nil {
		fields = append(fields, keyword.FieldCtrMobile)
	}
	if m.addad_depth != nil {
		fields = append(fields, keyword.FieldAdDepth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KeywordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case keyword.FieldMonthlyPcSearch:
		return m.AddedMonthlyPcSearch()
	case keyword.FieldMonthlyMobileSearch:
		return m.AddedMonthlyMobileSearch()
	case keyword.FieldAvgMonthlySearch:
		return m.AddedAvgMonthlySearch()
	case keyword.FieldMonthlyClickPc:
		return m.AddedMonthlyClickPc()
	case keyword.FieldMonthlyClickMobile:
		return m.AddedMonthlyClickMobile()
	case keyword.FieldCtrPc:
		return m.AddedCtrPc()
	case keyword.FieldCtrMobile:
		return m.AddedCtrMobile()
	case keyword.FieldAdDepth:
		return m.AddedAdDepth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeywordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case keyword.FieldMonthlyPcSearch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyPcSearch(v)
		return nil
	case keyword.FieldMonthlyMobileSearch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyMobileSearch(v)
		return nil
	case keyword.FieldAvgMonthlySearch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgMonthlySearch(v)
		return nil
	case keyword.FieldMonthlyClickPc:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyClickPc(v)
		return nil
	case keyword.FieldMonthlyClickMobile:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyClickMobile(v)
		return nil
	case keyword.FieldCtrPc:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCtrPc(v)
		return nil
	case keyword.FieldCtrMobile:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCtrMobile(v)
		return nil
	case keyword.FieldAdDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdDepth(v)
		return nil
	}
	return fmt.Errorf("unknown Keyword numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KeywordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KeywordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KeywordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Keyword nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KeywordMutation) ResetField(name string) error {
	switch name {
	case keyword.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case keyword.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case keyword.FieldKeyword:
		m.ResetKeyword()
		return nil
	case keyword.FieldMonthlyPcSearch:
		m.ResetMonthlyPcSearch()
		return nil
	case keyword.FieldMonthlyMobileSearch:
		m.ResetMonthlyMobileSearch()
		return nil
	case keyword.FieldAvgMonthlySearch:
		m.ResetAvgMonthlySearch()
		return nil
	case keyword.FieldMonthlyClickPc:
		m.ResetMonthlyClickPc()
		return nil
	case keyword.FieldMonthlyClickMobile:
		m.ResetMonthlyClickMobile()
		return nil
	case keyword.FieldCtrPc:
		m.ResetCtrPc()
		return nil
	case keyword.FieldCtrMobile:
		m.ResetCtrMobile()
		return nil
	case keyword.FieldAdDepth:
		m.ResetAdDepth()
		return nil
	case keyword.FieldCompetition:
		m.ResetCompetition()
		return nil
	case keyword.FieldSeed:
		m.ResetSeed()
		return nil
	}
	return fmt.Errorf("unknown Keyword field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KeywordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KeywordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KeywordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KeywordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KeywordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KeywordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KeywordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Keyword unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KeywordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Keyword edge %s", name)
}

// KeywordDocCountMutation represents an operation that mutates the KeywordDocCount nodes in the graph.
type KeywordDocCountMutation struct {
	config
	op            Op
	typ           string
	id            *ulid.ID
	created_at    *time.Time
	updated_at    *time.Time
	keyword       *string
	blog_total    *int
	addblog_total *int
	cafe_total    *int
	addcafe_total *int
	web_total     *int
	addweb_total  *int
	news_total    *int
	addnews_total *int
	collected_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*KeywordDocCount, error)
	predicates    []predicate.KeywordDocCount
}

var _ ent.Mutation = (*KeywordDocCountMutation)(nil)

// keyworddoccountOption allows management of the mutation configuration using functional options.
type keyworddoccountOption func(*KeywordDocCountMutation)

// newKeywordDocCountMutation creates new mutation for the KeywordDocCount entity.
func newKeywordDocCountMutation(c config, op Op, opts ...keyworddoccountOption) *KeywordDocCountMutation {
	m := &KeywordDocCountMutation{
		config:        c,
		op:            op,
		typ:           TypeKeywordDocCount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKeywordDocCountID sets the ID field of the mutation.
func withKeywordDocCountID(id ulid.ID) keyworddoccountOption {
	return func(m *KeywordDocCountMutation) {
		var (
			err   error
			once  sync.Once
			value *KeywordDocCount
		)
		m.oldValue = func(ctx context.Context) (*KeywordDocCount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KeywordDocCount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKeywordDocCount sets the old KeywordDocCount of the mutation.
func withKeywordDocCount(node *KeywordDocCount) keyworddoccountOption {
	return func(m *KeywordDocCountMutation) {
		m.oldValue = func(context.Context) (*KeywordDocCount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KeywordDocCountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KeywordDocCountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KeywordDocCount entities.
func (m *KeywordDocCountMutation) SetID(id ulid.ID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KeywordDocCountMutation) ID() (id ulid.ID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KeywordDocCountMutation) IDs(ctx context.Context) ([]ulid.ID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KeywordDocCount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *KeywordDocCountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KeywordDocCountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KeywordDocCount entity.
// If the KeywordDocCount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordDocCountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KeywordDocCountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KeywordDocCountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KeywordDocCountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the KeywordDocCount entity.
// If the KeywordDocCount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordDocCountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *KeywordDocCountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetKeyword sets the "keyword" field.
func (m *KeywordDocCountMutation) SetKeyword(s string) {
	m.keyword = &s
}

// Keyword returns the value of the "keyword" field in the mutation.
func (m *KeywordDocCountMutation) Keyword() (r string, exists bool) {
	v := m.keyword
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyword returns the old "keyword" field's value of the KeywordDocCount entity.
// If the KeywordDocCount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordDocCountMutation) OldKeyword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyword: %w", err)
	}
	return oldValue.Keyword, nil
}

// ResetKeyword resets all changes to the "keyword" field.
func (m *KeywordDocCountMutation) ResetKeyword() {
	m.keyword = nil
}

// SetBlogTotal sets the "blog_total" field.
func (m *KeywordDocCountMutation) SetBlogTotal(i int) {
	m.blog_total = &i
	m.addblog_total = nil
}

// BlogTotal returns the value of the "blog_total" field in the mutation.
func (m *KeywordDocCountMutation) BlogTotal() (r int, exists bool) {
	v := m.blog_total
	if v == nil {
		return
	}
	return *v, true
}

// OldBlogTotal returns the old "blog_total" field's value of the KeywordDocCount entity.
// If the KeywordDocCount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordDocCountMutation) OldBlogTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlogTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlogTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlogTotal: %w", err)
	}
	return oldValue.BlogTotal, nil
}

// AddBlogTotal adds i to the "blog_total" field.
func (m *KeywordDocCountMutation) AddBlogTotal(i int) {
	if m.addblog_total != nil {
		*m.addblog_total += i
	} else {
		m.addblog_total = &i
	}
}

// AddedBlogTotal returns the value that was added to the "blog_total" field in this mutation.
func (m *KeywordDocCountMutation) AddedBlogTotal() (r int, exists bool) {
	v := m.addblog_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlogTotal resets all changes to the "blog_total" field.
func (m *KeywordDocCountMutation) ResetBlogTotal() {
	m.blog_total = nil
	m.addblog_total = nil
}

// SetCafeTotal sets the "cafe_total" field.
func (m *KeywordDocCountMutation) SetCafeTotal(i int) {
	m.cafe_total = &i
	m.addcafe_total = nil
}

// CafeTotal returns the value of the "cafe_total" field in the mutation.
func (m *KeywordDocCountMutation) CafeTotal() (r int, exists bool) {
	v := m.cafe_total
	if v == nil {
		return
	}
	return *v, true
}

// OldCafeTotal returns the old "cafe_total" field's value of the KeywordDocCount entity.
// If the KeywordDocCount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordDocCountMutation) OldCafeTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCafeTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCafeTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCafeTotal: %w", err)
	}
	return oldValue.CafeTotal, nil
}

// AddCafeTotal adds i to the "cafe_total" field.
func (m *KeywordDocCountMutation) AddCafeTotal(i int) {
	if m.addcafe_total != nil {
		*m.addcafe_total += i
	} else {
		m.addcafe_total = &i
	}
}

// AddedCafeTotal returns the value that was added to the "cafe_total" field in this mutation.
func (m *KeywordDocCountMutation) AddedCafeTotal() (r int, exists bool) {
	v := m.addcafe_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetCafeTotal resets all changes to the "cafe_total" field.
func (m *KeywordDocCountMutation) ResetCafeTotal() {
	m.cafe_total = nil
	m.addcafe_total = nil
}

// SetWebTotal sets the "web_total" field.
func (m *KeywordDocCountMutation) SetWebTotal(i int) {
	m.web_total = &i
	m.addweb_total = nil
}

// WebTotal returns the value of the "web_total" field in the mutation.
func (m *KeywordDocCountMutation) WebTotal() (r int, exists bool) {
	v := m.web_total
	if v == nil {
		return
	}
	return *v, true
}

// OldWebTotal returns the old "web_total" field's value of the KeywordDocCount entity.
// If the KeywordDocCount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordDocCountMutation) OldWebTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebTotal: %w", err)
	}
	return oldValue.WebTotal, nil
}

// AddWebTotal adds i to the "web_total" field.
func (m *KeywordDocCountMutation) AddWebTotal(i int) {
	if m.addweb_total != nil {
		*m.addweb_total += i
	} else {
		m.addweb_total = &i
	}
}

// AddedWebTotal returns the value that was added to the "web_total" field in this mutation.
func (m *KeywordDocCountMutation) AddedWebTotal() (r int, exists bool) {
	v := m.addweb_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetWebTotal resets all changes to the "web_total" field.
func (m *KeywordDocCountMutation) ResetWebTotal() {
	m.web_total = nil
	m.addweb_total = nil
}

// SetNewsTotal sets the "news_total" field.
func (m *KeywordDocCountMutation) SetNewsTotal(i int) {
	m.news_total = &i
	m.addnews_total = nil
}

// NewsTotal returns the value of the "news_total" field in the mutation.
func (m *KeywordDocCountMutation) NewsTotal() (r int, exists bool) {
	v := m.news_total
	if v == nil {
		return
	}
	return *v, true
}

// OldNewsTotal returns the old "news_total" field's value of the KeywordDocCount entity.
// If the KeywordDocCount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordDocCountMutation) OldNewsTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewsTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewsTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewsTotal: %w", err)
	}
	return oldValue.NewsTotal, nil
}

// AddNewsTotal adds i to the "news_total" field.
func (m *KeywordDocCountMutation) AddNewsTotal(i int) {
	if m.addnews_total != nil {
		*m.addnews_total += i
	} else {
		m.addnews_total = &i
	}
}

// AddedNewsTotal returns the value that was added to the "news_total" field in this mutation.
func (m *KeywordDocCountMutation) AddedNewsTotal() (r int, exists bool) {
	v := m.addnews_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewsTotal resets all changes to the "news_total" field.
func (m *KeywordDocCountMutation) ResetNewsTotal() {
	m.news_total = nil
	m.addnews_total = nil
}

// SetCollectedAt sets the "collected_at" field.
func (m *KeywordDocCountMutation) SetCollectedAt(t time.Time) {
	m.collected_at = &t
}

// CollectedAt returns the value of the "collected_at" field in the mutation.
func (m *KeywordDocCountMutation) CollectedAt() (r time.Time, exists bool) {
	v := m.collected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectedAt returns the old "collected_at" field's value of the KeywordDocCount entity.
// If the KeywordDocCount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordDocCountMutation) OldCollectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectedAt: %w", err)
	}
	return oldValue.CollectedAt, nil
}

// ResetCollectedAt resets all changes to the "collected_at" field.
func (m *KeywordDocCountMutation) ResetCollectedAt() {
	m.collected_at = nil
}

// Where appends a list predicates to the KeywordDocCountMutation builder.
func (m *KeywordDocCountMutation) Where(ps ...predicate.KeywordDocCount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KeywordDocCountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KeywordDocCountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KeywordDocCount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KeywordDocCountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KeywordDocCountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KeywordDocCount).
func (m *KeywordDocCountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KeywordDocCountMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, keyworddoccount.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, keyworddoccount.FieldUpdatedAt)
	}
	if m.keyword != nil {
		fields = append(fields, keyworddoccount.FieldKeyword)
	}
	if m.blog_total != nil {
		fields = append(fields, keyworddoccount.FieldBlogTotal)
	}
	if m.cafe_total != nil {
		fields = append(fields, keyworddoccount.FieldCafeTotal)
	}
	if m.web_total != nil {
		fields = append(fields, keyworddoccount.FieldWebTotal)
	}
	if m.news_total != nil {
		fields = append(fields, keyworddoccount.FieldNewsTotal)
	}
	if m.collected_at != nil {
		fields = append(fields, keyworddoccount.FieldCollectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KeywordDocCountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case keyworddoccount.FieldCreatedAt:
		return m.CreatedAt()
	case keyworddoccount.FieldUpdatedAt:
		return m.UpdatedAt()
	case keyworddoccount.FieldKeyword:
		return m.Keyword()
	case keyworddoccount.FieldBlogTotal:
		return m.BlogTotal()
	case keyworddoccount.FieldCafeTotal:
		return m.CafeTotal()
	case keyworddoccount.FieldWebTotal:
		return m.WebTotal()
	case keyworddoccount.FieldNewsTotal:
		return m.NewsTotal()
	case keyworddoccount.FieldCollectedAt:
		return m.CollectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KeywordDocCountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case keyworddoccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case keyworddoccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case keyworddoccount.FieldKeyword:
		return m.OldKeyword(ctx)
	case keyworddoccount.FieldBlogTotal:
		return m.OldBlogTotal(ctx)
	case keyworddoccount.FieldCafeTotal:
		return m.OldCafeTotal(ctx)
	case keyworddoccount.FieldWebTotal:
		return m.OldWebTotal(ctx)
	case keyworddoccount.FieldNewsTotal:
		return m.OldNewsTotal(ctx)
	case keyworddoccount.FieldCollectedAt:
		return m.OldCollectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KeywordDocCount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeywordDocCountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case keyworddoccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case keyworddoccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case keyworddoccount.FieldKeyword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyword(v)
		return nil
	case keyworddoccount.FieldBlogTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlogTotal(v)
		return nil
	case keyworddoccount.FieldCafeTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCafeTotal(v)
		return nil
	case keyworddoccount.FieldWebTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebTotal(v)
		return nil
	case keyworddoccount.FieldNewsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewsTotal(v)
		return nil
	case keyworddoccount.FieldCollectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KeywordDocCount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KeywordDocCountMutation) AddedFields() []string {
	var fields []string
	if m.addblog_total != nil {
		fields = append(fields, keyworddoccount.FieldBlogTotal)
	}
	if m.addcafe_total != nil {
		fields = append(fields, keyworddoccount.FieldCafeTotal)
	}
	if m.addweb_total != nil {
		fields = append(fields, keyworddoccount.FieldWebTotal)
	}
	if m.addnews_total != nil {
		fields = append(fields, keyworddoccount.FieldNewsTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KeywordDocCountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case keyworddoccount.FieldBlogTotal:
		return m.AddedBlogTotal()
	case keyworddoccount.FieldCafeTotal:
		return m.AddedCafeTotal()
	case keyworddoccount.FieldWebTotal:
		return m.AddedWebTotal()
	case keyworddoccount.FieldNewsTotal:
		return m.AddedNewsTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeywordDocCountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case keyworddoccount.FieldBlogTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlogTotal(v)
		return nil
	case keyworddoccount.FieldCafeTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCafeTotal(v)
		return nil
	case keyworddoccount.FieldWebTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWebTotal(v)
		return nil
	case keyworddoccount.FieldNewsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewsTotal(v)
		return nil
	}
	return fmt.Errorf("unknown KeywordDocCount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KeywordDocCountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KeywordDocCountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KeywordDocCountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown KeywordDocCount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KeywordDocCountMutation) ResetField(name string) error {
	switch name {
	case keyworddoccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case keyworddoccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case keyworddoccount.FieldKeyword:
		m.ResetKeyword()
		return nil
	case keyworddoccount.FieldBlogTotal:
		m.ResetBlogTotal()
		return nil
	case keyworddoccount.FieldCafeTotal:
		m.ResetCafeTotal()
		return nil
	case keyworddoccount.FieldWebTotal:
		m.ResetWebTotal()
		return nil
	case keyworddoccount.FieldNewsTotal:
		m.ResetNewsTotal()
		return nil
	case keyworddoccount.FieldCollectedAt:
		m.ResetCollectedAt()
		return nil
	}
	return fmt.Errorf("unknown KeywordDocCount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KeywordDocCountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KeywordDocCountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KeywordDocCountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KeywordDocCountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KeywordDocCountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KeywordDocCountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KeywordDocCountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown KeywordDocCount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KeywordDocCountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown KeywordDocCount edge %s", name)
}

// SeedUsageMutation represents an operation that mutates the SeedUsage nodes in the graph.
type SeedUsageMutation struct {
	config
	op             Op
	typ            string
	id             *ulid.ID
	created_at     *time.Time
	updated_at     *time.Time
	seed           *string
	usage_count    *int
	addusage_count *int
	last_used_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SeedUsage, error)
	predicates     []predicate.SeedUsage
}

var _ ent.Mutation = (*SeedUsageMutation)(nil)

// seedusageOption allows management of the mutation configuration using functional options.
type seedusageOption func(*SeedUsageMutation)

// newSeedUsageMutation creates new mutation for the SeedUsage entity.
func newSeedUsageMutation(c config, op Op, opts ...seedusageOption) *SeedUsageMutation {
	m := &SeedUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeSeedUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSeedUsageID sets the ID field of the mutation.
func withSeedUsageID(id ulid.ID) seedusageOption {
	return func(m *SeedUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *SeedUsage
		)
		m.oldValue = func(ctx context.Context) (*SeedUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SeedUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSeedUsage sets the old SeedUsage of the mutation.
func withSeedUsage(node *SeedUsage) seedusageOption {
	return func(m *SeedUsageMutation) {
		m.oldValue = func(context.Context) (*SeedUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SeedUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SeedUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SeedUsage entities.
func (m *SeedUsageMutation) SetID(id ulid.ID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SeedUsageMutation) ID() (id ulid.ID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SeedUsageMutation) IDs(ctx context.Context) ([]ulid.ID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SeedUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SeedUsageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SeedUsageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SeedUsage entity.
// If the SeedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeedUsageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SeedUsageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SeedUsageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SeedUsageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SeedUsage entity.
// If the SeedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeedUsageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SeedUsageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSeed sets the "seed" field.
func (m *SeedUsageMutation) SetSeed(s string) {
	m.seed = &s
}

// Seed returns the value of the "seed" field in the mutation.
func (m *SeedUsageMutation) Seed() (r string, exists bool) {
	v := m.seed
	if v == nil {
		return
	}
	return *v, true
}

// OldSeed returns the old "seed" field's value of the SeedUsage entity.
// If the SeedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeedUsageMutation) OldSeed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeed: %w", err)
	}
	return oldValue.Seed, nil
}

// ResetSeed resets all changes to the "seed" field.
func (m *SeedUsageMutation) ResetSeed() {
	m.seed = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *SeedUsageMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *SeedUsageMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the SeedUsage entity.
// If the SeedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeedUsageMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *SeedUsageMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *SeedUsageMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *SeedUsageMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *SeedUsageMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *SeedUsageMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the SeedUsage entity.
// If the SeedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeedUsageMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *SeedUsageMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[seedusage.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *SeedUsageMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[seedusage.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *SeedUsageMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, seedusage.FieldLastUsedAt)
}

// Where appends a list predicates to the SeedUsageMutation builder.
func (m *SeedUsageMutation) Where(ps ...predicate.SeedUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SeedUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SeedUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SeedUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SeedUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SeedUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SeedUsage).
func (m *SeedUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SeedUsageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, seedusage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, seedusage.FieldUpdatedAt)
	}
	if m.seed != nil {
		fields = append(fields, seedusage.FieldSeed)
	}
	if m.usage_count != nil {
		fields = append(fields, seedusage.FieldUsageCount)
	}
	if m.last_used_at != nil {
		fields = append(fields, seedusage.FieldLastUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SeedUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case seedusage.FieldCreatedAt:
		return m.CreatedAt()
	case seedusage.FieldUpdatedAt:
		return m.UpdatedAt()
	case seedusage.FieldSeed:
		return m.Seed()
	case seedusage.FieldUsageCount:
		return m.UsageCount()
	case seedusage.FieldLastUsedAt:
		return m.LastUsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SeedUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case seedusage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case seedusage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case seedusage.FieldSeed:
		return m.OldSeed(ctx)
	case seedusage.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case seedusage.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SeedUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeedUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case seedusage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case seedusage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case seedusage.FieldSeed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeed(v)
		return nil
	case seedusage.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case seedusage.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SeedUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SeedUsageMutation) AddedFields() []string {
	var fields []string
	if m.addusage_count != nil {
		fields = append(fields, seedusage.FieldUsageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SeedUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case seedusage.FieldUsageCount:
		return m.AddedUsageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeedUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case seedusage.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown SeedUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SeedUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(seedusage.FieldLastUsedAt) {
		fields = append(fields, seedusage.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SeedUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SeedUsageMutation) ClearField(name string) error {
	switch name {
	case seedusage.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown SeedUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SeedUsageMutation) ResetField(name string) error {
	switch name {
	case seedusage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case seedusage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case seedusage.FieldSeed:
		m.ResetSeed()
		return nil
	case seedusage.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case seedusage.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown SeedUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SeedUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SeedUsageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SeedUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SeedUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SeedUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SeedUsageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SeedUsageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SeedUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SeedUsageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SeedUsage edge %s", name)
}
