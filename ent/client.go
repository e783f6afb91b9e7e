// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"kwlab-go-backend/ent/migrate"
	"kwlab-go-backend/ent/schema/ulid"

	"kwlab-go-backend/ent/collectionlog"
	"kwlab-go-backend/ent/cronjobconfig"
	"kwlab-go-backend/ent/keyword"
	"kwlab-go-backend/ent/keyworddoccount"
	"kwlab-go-backend/ent/seedusage"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CollectionLog is the client for interacting with the CollectionLog builders.
	CollectionLog *CollectionLogClient
	// CronJobConfig is the client for interacting with the CronJobConfig builders.
	CronJobConfig *CronJobConfigClient
	// Keyword is the client for interacting with the Keyword builders.
	Keyword *KeywordClient
	// KeywordDocCount is the client for interacting with the KeywordDocCount builders.
	KeywordDocCount *KeywordDocCountClient
	// SeedUsage is the client for interacting with the SeedUsage builders.
	SeedUsage *SeedUsageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CollectionLog = NewCollectionLogClient(c.config)
	c.CronJobConfig = NewCronJobConfigClient(c.config)
	c.Keyword = NewKeywordClient(c.config)
	c.KeywordDocCount = NewKeywordDocCountClient(c.config)
	c.SeedUsage = NewSeedUsageClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		CollectionLog:   NewCollectionLogClient(cfg),
		CronJobConfig:   NewCronJobConfigClient(cfg),
		Keyword:         NewKeywordClient(cfg),
		KeywordDocCount: NewKeywordDocCountClient(cfg),
		SeedUsage:       NewSeedUsageClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		CollectionLog:   NewCollectionLogClient(cfg),
		CronJobConfig:   NewCronJobConfigClient(cfg),
		Keyword:         NewKeywordClient(cfg),
		KeywordDocCount: NewKeywordDocCountClient(cfg),
		SeedUsage:       NewSeedUsageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CollectionLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.CollectionLog.Use(hooks...)
	c.CronJobConfig.Use(hooks...)
	c.Keyword.Use(hooks...)
	c.KeywordDocCount.Use(hooks...)
	c.SeedUsage.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CollectionLog.Intercept(interceptors...)
	c.CronJobConfig.Intercept(interceptors...)
	c.Keyword.Intercept(interceptors...)
	c.KeywordDocCount.Intercept(interceptors...)
	c.SeedUsage.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CollectionLogMutation:
		return c.CollectionLog.mutate(ctx, m)
	case *CronJobConfigMutation:
		return c.CronJobConfig.mutate(ctx, m)
	case *KeywordMutation:
		return c.Keyword.mutate(ctx, m)
	case *KeywordDocCountMutation:
		return c.KeywordDocCount.mutate(ctx, m)
	case *SeedUsageMutation:
		return c.SeedUsage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CollectionLogClient is a client for the CollectionLog schema.
type CollectionLogClient struct {
	config
}

// NewCollectionLogClient returns a client for the CollectionLog from the given config.
func NewCollectionLogClient(c config) *CollectionLogClient {
	return &CollectionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `collectionlog.Hooks(f(g(h())))`.
func (c *CollectionLogClient) Use(hooks ...Hook) {
	c.hooks.CollectionLog = append(c.hooks.CollectionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `collectionlog.Intercept(f(g(h())))`.
func (c *CollectionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.CollectionLog = append(c.inters.CollectionLog, interceptors...)
}

// Create returns a builder for creating a CollectionLog entity.
func (c *CollectionLogClient) Create() *CollectionLogCreate {
	mutation := newCollectionLogMutation(c.config, OpCreate)
	return &CollectionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CollectionLog entities.
func (c *CollectionLogClient) CreateBulk(builders ...*CollectionLogCreate) *CollectionLogCreateBulk {
	return &CollectionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CollectionLogClient) MapCreateBulk(slice any, setFunc func(*CollectionLogCreate, int)) *CollectionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CollectionLogCreateBulk{err: fmt.Errorf("calling to CollectionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CollectionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CollectionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CollectionLog.
func (c *CollectionLogClient) Update() *CollectionLogUpdate {
	mutation := newCollectionLogMutation(c.config, OpUpdate)
	return &CollectionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CollectionLogClient) UpdateOne(cl *CollectionLog) *CollectionLogUpdateOne {
	mutation := newCollectionLogMutation(c.config, OpUpdateOne, withCollectionLog(cl))
	return &CollectionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CollectionLogClient) UpdateOneID(id ulid.ID) *CollectionLogUpdateOne {
	mutation := newCollectionLogMutation(c.config, OpUpdateOne, withCollectionLogID(id))
	return &CollectionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CollectionLog.
func (c *CollectionLogClient) Delete() *CollectionLogDelete {
	mutation := newCollectionLogMutation(c.config, OpDelete)
	return &CollectionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CollectionLogClient) DeleteOne(cl *CollectionLog) *CollectionLogDeleteOne {
	return c.DeleteOneID(cl.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CollectionLogClient) DeleteOneID(id ulid.ID) *CollectionLogDeleteOne {
	builder := c.Delete().Where(collectionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CollectionLogDeleteOne{builder}
}

// Query returns a query builder for CollectionLog.
func (c *CollectionLogClient) Query() *CollectionLogQuery {
	return &CollectionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCollectionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a CollectionLog entity by its id.
func (c *CollectionLogClient) Get(ctx context.Context, id ulid.ID) (*CollectionLog, error) {
	return c.Query().Where(collectionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CollectionLogClient) GetX(ctx context.Context, id ulid.ID) *CollectionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CollectionLogClient) Hooks() []Hook {
	return c.hooks.CollectionLog
}

// Interceptors returns the client interceptors.
func (c *CollectionLogClient) Interceptors() []Interceptor {
	return c.inters.CollectionLog
}

func (c *CollectionLogClient) mutate(ctx context.Context, m *CollectionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CollectionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CollectionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CollectionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CollectionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CollectionLog mutation op: %q", m.Op())
	}
}

// CronJobConfigClient is a client for the CronJobConfig schema.
type CronJobConfigClient struct {
	config
}

// NewCronJobConfigClient returns a client for the CronJobConfig from the given config.
func NewCronJobConfigClient(c config) *CronJobConfigClient {
	return &CronJobConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cronjobconfig.Hooks(f(g(h())))`.
func (c *CronJobConfigClient) Use(hooks ...Hook) {
	c.hooks.CronJobConfig = append(c.hooks.CronJobConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cronjobconfig.Intercept(f(g(h())))`.
func (c *CronJobConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.CronJobConfig = append(c.inters.CronJobConfig, interceptors...)
}

// Create returns a builder for creating a CronJobConfig entity.
func (c *CronJobConfigClient) Create() *CronJobConfigCreate {
	mutation := newCronJobConfigMutation(c.config, OpCreate)
	return &CronJobConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CronJobConfig entities.
func (c *CronJobConfigClient) CreateBulk(builders ...*CronJobConfigCreate) *CronJobConfigCreateBulk {
	return &CronJobConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CronJobConfigClient) MapCreateBulk(slice any, setFunc func(*CronJobConfigCreate, int)) *CronJobConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CronJobConfigCreateBulk{err: fmt.Errorf("calling to CronJobConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CronJobConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CronJobConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CronJobConfig.
func (c *CronJobConfigClient) Update() *CronJobConfigUpdate {
	mutation := newCronJobConfigMutation(c.config, OpUpdate)
	return &CronJobConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CronJobConfigClient) UpdateOne(cjc *CronJobConfig) *CronJobConfigUpdateOne {
	mutation := newCronJobConfigMutation(c.config, OpUpdateOne, withCronJobConfig(cjc))
	return &CronJobConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CronJobConfigClient) UpdateOneID(id ulid.ID) *CronJobConfigUpdateOne {
	mutation := newCronJobConfigMutation(c.config, OpUpdateOne, withCronJobConfigID(id))
	return &CronJobConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CronJobConfig.
func (c *CronJobConfigClient) Delete() *CronJobConfigDelete {
	mutation := newCronJobConfigMutation(c.config, OpDelete)
	return &CronJobConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CronJobConfigClient) DeleteOne(cjc *CronJobConfig) *CronJobConfigDeleteOne {
	return c.DeleteOneID(cjc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CronJobConfigClient) DeleteOneID(id ulid.ID) *CronJobConfigDeleteOne {
	builder := c.Delete().Where(cronjobconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CronJobConfigDeleteOne{builder}
}

// Query returns a query builder for CronJobConfig.
func (c *CronJobConfigClient) Query() *CronJobConfigQuery {
	return &CronJobConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCronJobConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a CronJobConfig entity by its id.
func (c *CronJobConfigClient) Get(ctx context.Context, id ulid.ID) (*CronJobConfig, error) {
	return c.Query().Where(cronjobconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CronJobConfigClient) GetX(ctx context.Context, id ulid.ID) *CronJobConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CronJobConfigClient) Hooks() []Hook {
	return c.hooks.CronJobConfig
}

// Interceptors returns the client interceptors.
func (c *CronJobConfigClient) Interceptors() []Interceptor {
	return c.inters.CronJobConfig
}

func (c *CronJobConfigClient) mutate(ctx context.Context, m *CronJobConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CronJobConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CronJobConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CronJobConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CronJobConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CronJobConfig mutation op: %q", m.Op())
	}
}

// KeywordClient is a client for the Keyword schema.
type KeywordClient struct {
	config
}

// NewKeywordClient returns a client for the Keyword from the given config.
func NewKeywordClient(c config) *KeywordClient {
	return &KeywordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `keyword.Hooks(f(g(h())))`.
func (c *KeywordClient) Use(hooks ...Hook) {
	c.hooks.Keyword = append(c.hooks.Keyword, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `keyword.Intercept(f(g(h())))`.
func (c *KeywordClient) Intercept(interceptors ...Interceptor) {
	c.inters.Keyword = append(c.inters.Keyword, interceptors...)
}

// Create returns a builder for creating a Keyword entity.
func (c *KeywordClient) Create() *KeywordCreate {
	mutation := newKeywordMutation(c.config, OpCreate)
	return &KeywordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Keyword entities.
func (c *KeywordClient) CreateBulk(builders ...*KeywordCreate) *KeywordCreateBulk {
	return &KeywordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KeywordClient) MapCreateBulk(slice any, setFunc func(*KeywordCreate, int)) *KeywordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KeywordCreateBulk{err: fmt.Errorf("calling to KeywordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KeywordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KeywordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Keyword.
func (c *KeywordClient) Update() *KeywordUpdate {
	mutation := newKeywordMutation(c.config, OpUpdate)
	return &KeywordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KeywordClient) UpdateOne(k *Keyword) *KeywordUpdateOne {
	mutation := newKeywordMutation(c.config, OpUpdateOne, withKeyword(k))
	return &KeywordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KeywordClient) UpdateOneID(id ulid.ID) *KeywordUpdateOne {
	mutation := newKeywordMutation(c.config, OpUpdateOne, withKeywordID(id))
	return &KeywordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Keyword.
func (c *KeywordClient) Delete() *KeywordDelete {
	mutation := newKeywordMutation(c.config, OpDelete)
	return &KeywordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KeywordClient) DeleteOne(k *Keyword) *KeywordDeleteOne {
	return c.DeleteOneID(k.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KeywordClient) DeleteOneID(id ulid.ID) *KeywordDeleteOne {
	builder := c.Delete().Where(keyword.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KeywordDeleteOne{builder}
}

// Query returns a query builder for Keyword.
func (c *KeywordClient) Query() *KeywordQuery {
	return &KeywordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKeyword},
		inters: c.Interceptors(),
	}
}

// Get returns a Keyword entity by its id.
func (c *KeywordClient) Get(ctx context.Context, id ulid.ID) (*Keyword, error) {
	return c.Query().Where(keyword.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KeywordClient) GetX(ctx context.Context, id ulid.ID) *Keyword {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KeywordClient) Hooks() []Hook {
	return c.hooks.Keyword
}

// Interceptors returns the client interceptors.
func (c *KeywordClient) Interceptors() []Interceptor {
	return c.inters.Keyword
}

func (c *KeywordClient) mutate(ctx context.Context, m *KeywordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KeywordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KeywordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KeywordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KeywordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Keyword mutation op: %q", m.Op())
	}
}

// KeywordDocCountClient is a client for the KeywordDocCount schema.
type KeywordDocCountClient struct {
	config
}

// NewKeywordDocCountClient returns a client for the KeywordDocCount from the given config.
func NewKeywordDocCountClient(c config) *KeywordDocCountClient {
	return &KeywordDocCountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `keyworddoccount.Hooks(f(g(h())))`.
func (c *KeywordDocCountClient) Use(hooks ...Hook) {
	c.hooks.KeywordDocCount = append(c.hooks.KeywordDocCount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `keyworddoccount.Intercept(f(g(h())))`.
func (c *KeywordDocCountClient) Intercept(interceptors ...Interceptor) {
	c.inters.KeywordDocCount = append(c.inters.KeywordDocCount, interceptors...)
}

// Create returns a builder for creating a KeywordDocCount entity.
func (c *KeywordDocCountClient) Create() *KeywordDocCountCreate {
	mutation := newKeywordDocCountMutation(c.config, OpCreate)
	return &KeywordDocCountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KeywordDocCount entities.
func (c *KeywordDocCountClient) CreateBulk(builders ...*KeywordDocCountCreate) *KeywordDocCountCreateBulk {
	return &KeywordDocCountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KeywordDocCountClient) MapCreateBulk(slice any, setFunc func(*KeywordDocCountCreate, int)) *KeywordDocCountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KeywordDocCountCreateBulk{err: fmt.Errorf("calling to KeywordDocCountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KeywordDocCountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KeywordDocCountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KeywordDocCount.
func (c *KeywordDocCountClient) Update() *KeywordDocCountUpdate {
	mutation := newKeywordDocCountMutation(c.config, OpUpdate)
	return &KeywordDocCountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KeywordDocCountClient) UpdateOne(kdc *KeywordDocCount) *KeywordDocCountUpdateOne {
	mutation := newKeywordDocCountMutation(c.config, OpUpdateOne, withKeywordDocCount(kdc))
	return &KeywordDocCountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KeywordDocCountClient) UpdateOneID(id ulid.ID) *KeywordDocCountUpdateOne {
	mutation := newKeywordDocCountMutation(c.config, OpUpdateOne, withKeywordDocCountID(id))
	return &KeywordDocCountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KeywordDocCount.
func (c *KeywordDocCountClient) Delete() *KeywordDocCountDelete {
	mutation := newKeywordDocCountMutation(c.config, OpDelete)
	return &KeywordDocCountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KeywordDocCountClient) DeleteOne(kdc *KeywordDocCount) *KeywordDocCountDeleteOne {
	return c.DeleteOneID(kdc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KeywordDocCountClient) DeleteOneID(id ulid.ID) *KeywordDocCountDeleteOne {
	builder := c.Delete().Where(keyworddoccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KeywordDocCountDeleteOne{builder}
}

// Query returns a query builder for KeywordDocCount.
func (c *KeywordDocCountClient) Query() *KeywordDocCountQuery {
	return &KeywordDocCountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKeywordDocCount},
		inters: c.Interceptors(),
	}
}

// Get returns a KeywordDocCount entity by its id.
func (c *KeywordDocCountClient) Get(ctx context.Context, id ulid.ID) (*KeywordDocCount, error) {
	return c.Query().Where(keyworddoccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KeywordDocCountClient) GetX(ctx context.Context, id ulid.ID) *KeywordDocCount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KeywordDocCountClient) Hooks() []Hook {
	return c.hooks.KeywordDocCount
}

// Interceptors returns the client interceptors.
func (c *KeywordDocCountClient) Interceptors() []Interceptor {
	return c.inters.KeywordDocCount
}

func (c *KeywordDocCountClient) mutate(ctx context.Context, m *KeywordDocCountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KeywordDocCountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KeywordDocCountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KeywordDocCountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KeywordDocCountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KeywordDocCount mutation op: %q", m.Op())
	}
}

// SeedUsageClient is a client for the SeedUsage schema.
type SeedUsageClient struct {
	config
}

// NewSeedUsageClient returns a client for the SeedUsage from the given config.
func NewSeedUsageClient(c config) *SeedUsageClient {
	return &SeedUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `seedusage.Hooks(f(g(h())))`.
func (c *SeedUsageClient) Use(hooks ...Hook) {
	c.hooks.SeedUsage = append(c.hooks.SeedUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `seedusage.Intercept(f(g(h())))`.
func (c *SeedUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.SeedUsage = append(c.inters.SeedUsage, interceptors...)
}

// Create returns a builder for creating a SeedUsage entity.
func (c *SeedUsageClient) Create() *SeedUsageCreate {
	mutation := newSeedUsageMutation(c.config, OpCreate)
	return &SeedUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SeedUsage entities.
func (c *SeedUsageClient) CreateBulk(builders ...*SeedUsageCreate) *SeedUsageCreateBulk {
	return &SeedUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SeedUsageClient) MapCreateBulk(slice any, setFunc func(*SeedUsageCreate, int)) *SeedUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SeedUsageCreateBulk{err: fmt.Errorf("calling to SeedUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SeedUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SeedUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SeedUsage.
func (c *SeedUsageClient) Update() *SeedUsageUpdate {
	mutation := newSeedUsageMutation(c.config, OpUpdate)
	return &SeedUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SeedUsageClient) UpdateOne(su *SeedUsage) *SeedUsageUpdateOne {
	mutation := newSeedUsageMutation(c.config, OpUpdateOne, withSeedUsage(su))
	return &SeedUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SeedUsageClient) UpdateOneID(id ulid.ID) *SeedUsageUpdateOne {
	mutation := newSeedUsageMutation(c.config, OpUpdateOne, withSeedUsageID(id))
	return &SeedUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SeedUsage.
func (c *SeedUsageClient) Delete() *SeedUsageDelete {
	mutation := newSeedUsageMutation(c.config, OpDelete)
	return &SeedUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SeedUsageClient) DeleteOne(su *SeedUsage) *SeedUsageDeleteOne {
	return c.DeleteOneID(su.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SeedUsageClient) DeleteOneID(id ulid.ID) *SeedUsageDeleteOne {
	builder := c.Delete().Where(seedusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SeedUsageDeleteOne{builder}
}

// Query returns a query builder for SeedUsage.
func (c *SeedUsageClient) Query() *SeedUsageQuery {
	return &SeedUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSeedUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a SeedUsage entity by its id.
func (c *SeedUsageClient) Get(ctx context.Context, id ulid.ID) (*SeedUsage, error) {
	return c.Query().Where(seedusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SeedUsageClient) GetX(ctx context.Context, id ulid.ID) *SeedUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SeedUsageClient) Hooks() []Hook {
	return c.hooks.SeedUsage
}

// Interceptors returns the client interceptors.
func (c *SeedUsageClient) Interceptors() []Interceptor {
	return c.inters.SeedUsage
}

func (c *SeedUsageClient) mutate(ctx context.Context, m *SeedUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SeedUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SeedUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SeedUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SeedUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SeedUsage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CollectionLog, CronJobConfig, Keyword, KeywordDocCount, SeedUsage []ent.Hook
	}
	inters struct {
		CollectionLog, CronJobConfig, Keyword, KeywordDocCount,
		SeedUsage []ent.Interceptor
	}
)
