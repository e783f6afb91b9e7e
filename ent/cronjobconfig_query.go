// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"kwlab-go-backend/ent/cronjobconfig"
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/ent/schema/ulid"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CronJobConfigQuery is the builder for querying CronJobConfig entities.
type CronJobConfigQuery struct {
	config
	ctx        *QueryContext
	order      []cronjobconfig.OrderOption
	inters     []Interceptor
	predicates []predicate.CronJobConfig
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CronJobConfigQuery builder.
func (cjcq *CronJobConfigQuery) Where(ps ...predicate.CronJobConfig) *CronJobConfigQuery {
	cjcq.predicates = append(cjcq.predicates, ps...)
	return cjcq
}

// Limit the number of records to be returned by this query.
func (cjcq *CronJobConfigQuery) Limit(limit int) *CronJobConfigQuery {
	cjcq.ctx.Limit = &limit
	return cjcq
}

// Offset to start from.
func (cjcq *CronJobConfigQuery) Offset(offset int) *CronJobConfigQuery {
	cjcq.ctx.Offset = &offset
	return cjcq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (cjcq *CronJobConfigQuery) Unique(unique bool) *CronJobConfigQuery {
	cjcq.ctx.Unique = &unique
	return cjcq
}

// Order specifies how the records should be ordered.
func (cjcq *CronJobConfigQuery) Order(o ...cronjobconfig.OrderOption) *CronJobConfigQuery {
	cjcq.order = append(cjcq.order, o...)
	return cjcq
}

// First returns the first CronJobConfig entity from the query.
// Returns a *NotFoundError when no CronJobConfig was found.
func (cjcq *CronJobConfigQuery) First(ctx context.Context) (*CronJobConfig, error) {
	nodes, err := cjcq.Limit(1).All(setContextOp(ctx, cjcq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{cronjobconfig.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (cjcq *CronJobConfigQuery) FirstX(ctx context.Context) *CronJobConfig {
	node, err := cjcq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CronJobConfig ID from the query.
// Returns a *NotFoundError when no CronJobConfig ID was found.
func (cjcq *CronJobConfigQuery) FirstID(ctx context.Context) (id ulid.ID, err error) {
	var ids []ulid.ID
	if ids, err = cjcq.Limit(1).IDs(setContextOp(ctx, cjcq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{cronjobconfig.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (cjcq *CronJobConfigQuery) FirstIDX(ctx context.Context) ulid.ID {
	id, err := cjcq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CronJobConfig entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CronJobConfig entity is found.
// Returns a *NotFoundError when no CronJobConfig entities are found.
func (cjcq *CronJobConfigQuery) Only(ctx context.Context) (*CronJobConfig, error) {
	nodes, err := cjcq.Limit(2).All(setContextOp(ctx, cjcq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{cronjobconfig.Label}
	default:
		return nil, &NotSingularError{cronjobconfig.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (cjcq *CronJobConfigQuery) OnlyX(ctx context.Context) *CronJobConfig {
	node, err := cjcq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CronJobConfig ID in the query.
// Returns a *NotSingularError when more than one CronJobConfig ID is found.
// Returns a *NotFoundError when no entities are found.
func (cjcq *CronJobConfigQuery) OnlyID(ctx context.Context) (id ulid.ID, err error) {
	var ids []ulid.ID
	if ids, err = cjcq.Limit(2).IDs(setContextOp(ctx, cjcq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{cronjobconfig.Label}
	default:
		err = &NotSingularError{cronjobconfig.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (cjcq *CronJobConfigQuery) OnlyIDX(ctx context.Context) ulid.ID {
	id, err := cjcq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CronJobConfigs.
func (cjcq *CronJobConfigQuery) All(ctx context.Context) ([]*CronJobConfig, error) {
	ctx = setContextOp(ctx, cjcq.ctx, ent.OpQueryAll)
	if err := cjcq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CronJobConfig, *CronJobConfigQuery]()
	return withInterceptors[[]*CronJobConfig](ctx, cjcq, qr, cjcq.inters)
}

// AllX is like All, but panics if an error occurs.
func (cjcq *CronJobConfigQuery) AllX(ctx context.Context) []*CronJobConfig {
	nodes, err := cjcq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CronJobConfig IDs.
func (cjcq *CronJobConfigQuery) IDs(ctx context.Context) (ids []ulid.ID, err error) {
	if cjcq.ctx.Unique == nil && cjcq.path != nil {
		cjcq.Unique(true)
	}
	ctx = setContextOp(ctx, cjcq.ctx, ent.OpQueryIDs)
	if err = cjcq.Select(cronjobconfig.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (cjcq *CronJobConfigQuery) IDsX(ctx context.Context) []ulid.ID {
	ids, err := cjcq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (cjcq *CronJobConfigQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, cjcq.ctx, ent.OpQueryCount)
	if err := cjcq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, cjcq, querierCount[*CronJobConfigQuery](), cjcq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (cjcq *CronJobConfigQuery) CountX(ctx context.Context) int {
	count, err := cjcq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (cjcq *CronJobConfigQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, cjcq.ctx, ent.OpQueryExist)
	switch _, err := cjcq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (cjcq *CronJobConfigQuery) ExistX(ctx context.Context) bool {
	exist, err := cjcq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CronJobConfigQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (cjcq *CronJobConfigQuery) Clone() *CronJobConfigQuery {
	if cjcq == nil {
		return nil
	}
	return &CronJobConfigQuery{
		config:     cjcq.config,
		ctx:        cjcq.ctx.Clone(),
		order:      append([]cronjobconfig.OrderOption{}, cjcq.order...),
		inters:     append([]Interceptor{}, cjcq.inters...),
		predicates: append([]predicate.CronJobConfig{}, cjcq.predicates...),
		// clone intermediate query.
		sql:  cjcq.sql.Clone(),
		path: cjcq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CronJobConfig.Query().
//		GroupBy(cronjobconfig.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (cjcq *CronJobConfigQuery) GroupBy(field string, fields ...string) *CronJobConfigGroupBy {
	cjcq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CronJobConfigGroupBy{build: cjcq}
	grbuild.flds = &cjcq.ctx.Fields
	grbuild.label = cronjobconfig.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.CronJobConfig.Query().
//		Select(cronjobconfig.FieldCreatedAt).
//		Scan(ctx, &v)
func (cjcq *CronJobConfigQuery) Select(fields ...string) *CronJobConfigSelect {
	cjcq.ctx.Fields = append(cjcq.ctx.Fields, fields...)
	sbuild := &CronJobConfigSelect{CronJobConfigQuery: cjcq}
	sbuild.label = cronjobconfig.Label
	sbuild.flds, sbuild.scan = &cjcq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CronJobConfigSelect configured with the given aggregations.
func (cjcq *CronJobConfigQuery) Aggregate(fns ...AggregateFunc) *CronJobConfigSelect {
	return cjcq.Select().Aggregate(fns...)
}

func (cjcq *CronJobConfigQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range cjcq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, cjcq); err != nil {
				return err
			}
		}
	}
	for _, f := range cjcq.ctx.Fields {
		if !cronjobconfig.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if cjcq.path != nil {
		prev, err := cjcq.path(ctx)
		if err != nil {
			return err
		}
		cjcq.sql = prev
	}
	return nil
}

func (cjcq *CronJobConfigQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CronJobConfig, error) {
	var (
		nodes = []*CronJobConfig{}
		_spec = cjcq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CronJobConfig).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CronJobConfig{config: cjcq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, cjcq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (cjcq *CronJobConfigQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := cjcq.querySpec()
	_spec.Node.Columns = cjcq.ctx.Fields
	if len(cjcq.ctx.Fields) > 0 {
		_spec.Unique = cjcq.ctx.Unique != nil && *cjcq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, cjcq.driver, _spec)
}

func (cjcq *CronJobConfigQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(cronjobconfig.Table, cronjobconfig.Columns, sqlgraph.NewFieldSpec(cronjobconfig.FieldID, field.TypeString))
	_spec.From = cjcq.sql
	if unique := cjcq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if cjcq.path != nil {
		_spec.Unique = true
	}
	if fields := cjcq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cronjobconfig.FieldID)
		for i := range fields {
			if fields[i] != cronjobconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := cjcq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := cjcq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := cjcq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := cjcq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (cjcq *CronJobConfigQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(cjcq.driver.Dialect())
	t1 := builder.Table(cronjobconfig.Table)
	columns := cjcq.ctx.Fields
	if len(columns) == 0 {
		columns = cronjobconfig.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if cjcq.sql != nil {
		selector = cjcq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if cjcq.ctx.Unique != nil && *cjcq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range cjcq.predicates {
		p(selector)
	}
	for _, p := range cjcq.order {
		p(selector)
	}
	if offset := cjcq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := cjcq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CronJobConfigGroupBy is the group-by builder for CronJobConfig entities.
type CronJobConfigGroupBy struct {
	selector
	build *CronJobConfigQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cjcgb *CronJobConfigGroupBy) Aggregate(fns ...AggregateFunc) *CronJobConfigGroupBy {
	cjcgb.fns = append(cjcgb.fns, fns...)
	return cjcgb
}

// Scan applies the selector query and scans the result into the given value.
func (cjcgb *CronJobConfigGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cjcgb.build.ctx, ent.OpQueryGroupBy)
	if err := cjcgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CronJobConfigQuery, *CronJobConfigGroupBy](ctx, cjcgb.build, cjcgb, cjcgb.build.inters, v)
}

func (cjcgb *CronJobConfigGroupBy) sqlScan(ctx context.Context, root *CronJobConfigQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cjcgb.fns))
	for _, fn := range cjcgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cjcgb.flds)+len(cjcgb.fns))
		for _, f := range *cjcgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cjcgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cjcgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CronJobConfigSelect is the builder for selecting fields of CronJobConfig entities.
type CronJobConfigSelect struct {
	*CronJobConfigQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cjcs *CronJobConfigSelect) Aggregate(fns ...AggregateFunc) *CronJobConfigSelect {
	cjcs.fns = append(cjcs.fns, fns...)
	return cjcs
}

// Scan applies the selector query and scans the result into the given value.
func (cjcs *CronJobConfigSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cjcs.ctx, ent.OpQuerySelect)
	if err := cjcs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CronJobConfigQuery, *CronJobConfigSelect](ctx, cjcs.CronJobConfigQuery, cjcs, cjcs.inters, v)
}

func (cjcs *CronJobConfigSelect) sqlScan(ctx context.Context, root *CronJobConfigQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cjcs.fns))
	for _, fn := range cjcs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cjcs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cjcs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
