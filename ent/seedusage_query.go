// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/ent/schema/ulid"
	"kwlab-go-backend/ent/seedusage"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SeedUsageQuery is the builder for querying SeedUsage entities.
type SeedUsageQuery struct {
	config
	ctx        *QueryContext
	order      []seedusage.OrderOption
	inters     []Interceptor
	predicates []predicate.SeedUsage
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SeedUsageQuery builder.
func (suq *SeedUsageQuery) Where(ps ...predicate.SeedUsage) *SeedUsageQuery {
	suq.predicates = append(suq.predicates, ps...)
	return suq
}

// Limit the number of records to be returned by this query.
func (suq *SeedUsageQuery) Limit(limit int) *SeedUsageQuery {
	suq.ctx.Limit = &limit
	return suq
}

// Offset to start from.
func (suq *SeedUsageQuery) Offset(offset int) *SeedUsageQuery {
	suq.ctx.Offset = &offset
	return suq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (suq *SeedUsageQuery) Unique(unique bool) *SeedUsageQuery {
	suq.ctx.Unique = &unique
	return suq
}

// Order specifies how the records should be ordered.
func (suq *SeedUsageQuery) Order(o ...seedusage.OrderOption) *SeedUsageQuery {
	suq.order = append(suq.order, o...)
	return suq
}

// First returns the first SeedUsage entity from the query.
// Returns a *NotFoundError when no SeedUsage was found.
func (suq *SeedUsageQuery) First(ctx context.Context) (*SeedUsage, error) {
	nodes, err := suq.Limit(1).All(setContextOp(ctx, suq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{seedusage.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (suq *SeedUsageQuery) FirstX(ctx context.Context) *SeedUsage {
	node, err := suq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SeedUsage ID from the query.
// Returns a *NotFoundError when no SeedUsage ID was found.
func (suq *SeedUsageQuery) FirstID(ctx context.Context) (id ulid.ID, err error) {
	var ids []ulid.ID
	if ids, err = suq.Limit(1).IDs(setContextOp(ctx, suq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{seedusage.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (suq *SeedUsageQuery) FirstIDX(ctx context.Context) ulid.ID {
	id, err := suq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SeedUsage entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SeedUsage entity is found.
// Returns a *NotFoundError when no SeedUsage entities are found.
func (suq *SeedUsageQuery) Only(ctx context.Context) (*SeedUsage, error) {
	nodes, err := suq.Limit(2).All(setContextOp(ctx, suq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{seedusage.Label}
	default:
		return nil, &NotSingularError{seedusage.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (suq *SeedUsageQuery) OnlyX(ctx context.Context) *SeedUsage {
	node, err := suq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SeedUsage ID in the query.
// Returns a *NotSingularError when more than one SeedUsage ID is found.
// Returns a *NotFoundError when no entities are found.
func (suq *SeedUsageQuery) OnlyID(ctx context.Context) (id ulid.ID, err error) {
	var ids []ulid.ID
	if ids, err = suq.Limit(2).IDs(setContextOp(ctx, suq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{seedusage.Label}
	default:
		err = &NotSingularError{seedusage.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (suq *SeedUsageQuery) OnlyIDX(ctx context.Context) ulid.ID {
	id, err := suq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SeedUsages.
func (suq *SeedUsageQuery) All(ctx context.Context) ([]*SeedUsage, error) {
	ctx = setContextOp(ctx, suq.ctx, ent.OpQueryAll)
	if err := suq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SeedUsage, *SeedUsageQuery]()
	return withInterceptors[[]*SeedUsage](ctx, suq, qr, suq.inters)
}

// AllX is like All, but panics if an error occurs.
func (suq *SeedUsageQuery) AllX(ctx context.Context) []*SeedUsage {
	nodes, err := suq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SeedUsage IDs.
func (suq *SeedUsageQuery) IDs(ctx context.Context) (ids []ulid.ID, err error) {
	if suq.ctx.Unique == nil && suq.path != nil {
		suq.Unique(true)
	}
	ctx = setContextOp(ctx, suq.ctx, ent.OpQueryIDs)
	if err = suq.Select(seedusage.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (suq *SeedUsageQuery) IDsX(ctx context.Context) []ulid.ID {
	ids, err := suq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (suq *SeedUsageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, suq.ctx, ent.OpQueryCount)
	if err := suq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, suq, querierCount[*SeedUsageQuery](), suq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (suq *SeedUsageQuery) CountX(ctx context.Context) int {
	count, err := suq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (suq *SeedUsageQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, suq.ctx, ent.OpQueryExist)
	switch _, err := suq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (suq *SeedUsageQuery) ExistX(ctx context.Context) bool {
	exist, err := suq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SeedUsageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (suq *SeedUsageQuery) Clone() *SeedUsageQuery {
	if suq == nil {
		return nil
	}
	return &SeedUsageQuery{
		config:     suq.config,
		ctx:        suq.ctx.Clone(),
		order:      append([]seedusage.OrderOption{}, suq.order...),
		inters:     append([]Interceptor{}, suq.inters...),
		predicates: append([]predicate.SeedUsage{}, suq.predicates...),
		// clone intermediate query.
		sql:  suq.sql.Clone(),
		path: suq.path,
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
//	client.SeedUsage.Query().
//		GroupBy(seedusage.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (suq *SeedUsageQuery) GroupBy(field string, fields ...string) *SeedUsageGroupBy {
	suq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SeedUsageGroupBy{build: suq}
	grbuild.flds = &suq.ctx.Fields
	grbuild.label = seedusage.Label
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
//	client.SeedUsage.Query().
//		Select(seedusage.FieldCreatedAt).
//		Scan(ctx, &v)
func (suq *SeedUsageQuery) Select(fields ...string) *SeedUsageSelect {
	suq.ctx.Fields = append(suq.ctx.Fields, fields...)
	sbuild := &SeedUsageSelect{SeedUsageQuery: suq}
	sbuild.label = seedusage.Label
	sbuild.flds, sbuild.scan = &suq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SeedUsageSelect configured with the given aggregations.
func (suq *SeedUsageQuery) Aggregate(fns ...AggregateFunc) *SeedUsageSelect {
	return suq.Select().Aggregate(fns...)
}

func (suq *SeedUsageQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range suq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, suq); err != nil {
				return err
			}
		}
	}
	for _, f := range suq.ctx.Fields {
		if !seedusage.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if suq.path != nil {
		prev, err := suq.path(ctx)
		if err != nil {
			return err
		}
		suq.sql = prev
	}
	return nil
}

func (suq *SeedUsageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SeedUsage, error) {
	var (
		nodes = []*SeedUsage{}
		_spec = suq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SeedUsage).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SeedUsage{config: suq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, suq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (suq *SeedUsageQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := suq.querySpec()
	_spec.Node.Columns = suq.ctx.Fields
	if len(suq.ctx.Fields) > 0 {
		_spec.Unique = suq.ctx.Unique != nil && *suq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, suq.driver, _spec)
}

func (suq *SeedUsageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(seedusage.Table, seedusage.Columns, sqlgraph.NewFieldSpec(seedusage.FieldID, field.TypeString))
	_spec.From = suq.sql
	if unique := suq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if suq.path != nil {
		_spec.Unique = true
	}
	if fields := suq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, seedusage.FieldID)
		for i := range fields {
			if fields[i] != seedusage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := suq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := suq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := suq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := suq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (suq *SeedUsageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(suq.driver.Dialect())
	t1 := builder.Table(seedusage.Table)
	columns := suq.ctx.Fields
	if len(columns) == 0 {
		columns = seedusage.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if suq.sql != nil {
		selector = suq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if suq.ctx.Unique != nil && *suq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range suq.predicates {
		p(selector)
	}
	for _, p := range suq.order {
		p(selector)
	}
	if offset := suq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := suq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SeedUsageGroupBy is the group-by builder for SeedUsage entities.
type SeedUsageGroupBy struct {
	selector
	build *SeedUsageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (sugb *SeedUsageGroupBy) Aggregate(fns ...AggregateFunc) *SeedUsageGroupBy {
	sugb.fns = append(sugb.fns, fns...)
	return sugb
}

// Scan applies the selector query and scans the result into the given value.
func (sugb *SeedUsageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sugb.build.ctx, ent.OpQueryGroupBy)
	if err := sugb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SeedUsageQuery, *SeedUsageGroupBy](ctx, sugb.build, sugb, sugb.build.inters, v)
}

func (sugb *SeedUsageGroupBy) sqlScan(ctx context.Context, root *SeedUsageQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(sugb.fns))
	for _, fn := range sugb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*sugb.flds)+len(sugb.fns))
		for _, f := range *sugb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*sugb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sugb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SeedUsageSelect is the builder for selecting fields of SeedUsage entities.
type SeedUsageSelect struct {
	*SeedUsageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sus *SeedUsageSelect) Aggregate(fns ...AggregateFunc) *SeedUsageSelect {
	sus.fns = append(sus.fns, fns...)
	return sus
}

// Scan applies the selector query and scans the result into the given value.
func (sus *SeedUsageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sus.ctx, ent.OpQuerySelect)
	if err := sus.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SeedUsageQuery, *SeedUsageSelect](ctx, sus.SeedUsageQuery, sus, sus.inters, v)
}

func (sus *SeedUsageSelect) sqlScan(ctx context.Context, root *SeedUsageQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sus.fns))
	for _, fn := range sus.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sus.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sus.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
