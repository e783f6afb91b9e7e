// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"kwlab-go-backend/ent/collectionlog"
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/ent/schema/ulid"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CollectionLogQuery is the builder for querying CollectionLog entities.
type CollectionLogQuery struct {
	config
	ctx        *QueryContext
	order      []collectionlog.OrderOption
	inters     []Interceptor
	predicates []predicate.CollectionLog
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CollectionLogQuery builder.
func (clq *CollectionLogQuery) Where(ps ...predicate.CollectionLog) *CollectionLogQuery {
	clq.predicates = append(clq.predicates, ps...)
	return clq
}

// Limit the number of records to be returned by this query.
func (clq *CollectionLogQuery) Limit(limit int) *CollectionLogQuery {
	clq.ctx.Limit = &limit
	return clq
}

// Offset to start from.
func (clq *CollectionLogQuery) Offset(offset int) *CollectionLogQuery {
	clq.ctx.Offset = &offset
	return clq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (clq *CollectionLogQuery) Unique(unique bool) *CollectionLogQuery {
	clq.ctx.Unique = &unique
	return clq
}

// Order specifies how the records should be ordered.
func (clq *CollectionLogQuery) Order(o ...collectionlog.OrderOption) *CollectionLogQuery {
	clq.order = append(clq.order, o...)
	return clq
}

// First returns the first CollectionLog entity from the query.
// Returns a *NotFoundError when no CollectionLog was found.
func (clq *CollectionLogQuery) First(ctx context.Context) (*CollectionLog, error) {
	nodes, err := clq.Limit(1).All(setContextOp(ctx, clq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{collectionlog.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (clq *CollectionLogQuery) FirstX(ctx context.Context) *CollectionLog {
	node, err := clq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CollectionLog ID from the query.
// Returns a *NotFoundError when no CollectionLog ID was found.
func (clq *CollectionLogQuery) FirstID(ctx context.Context) (id ulid.ID, err error) {
	var ids []ulid.ID
	if ids, err = clq.Limit(1).IDs(setContextOp(ctx, clq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{collectionlog.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (clq *CollectionLogQuery) FirstIDX(ctx context.Context) ulid.ID {
	id, err := clq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CollectionLog entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CollectionLog entity is found.
// Returns a *NotFoundError when no CollectionLog entities are found.
func (clq *CollectionLogQuery) Only(ctx context.Context) (*CollectionLog, error) {
	nodes, err := clq.Limit(2).All(setContextOp(ctx, clq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{collectionlog.Label}
	default:
		return nil, &NotSingularError{collectionlog.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (clq *CollectionLogQuery) OnlyX(ctx context.Context) *CollectionLog {
	node, err := clq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CollectionLog ID in the query.
// Returns a *NotSingularError when more than one CollectionLog ID is found.
// Returns a *NotFoundError when no entities are found.
func (clq *CollectionLogQuery) OnlyID(ctx context.Context) (id ulid.ID, err error) {
	var ids []ulid.ID
	if ids, err = clq.Limit(2).IDs(setContextOp(ctx, clq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{collectionlog.Label}
	default:
		err = &NotSingularError{collectionlog.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (clq *CollectionLogQuery) OnlyIDX(ctx context.Context) ulid.ID {
	id, err := clq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CollectionLogs.
func (clq *CollectionLogQuery) All(ctx context.Context) ([]*CollectionLog, error) {
	ctx = setContextOp(ctx, clq.ctx, ent.OpQueryAll)
	if err := clq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CollectionLog, *CollectionLogQuery]()
	return withInterceptors[[]*CollectionLog](ctx, clq, qr, clq.inters)
}

// AllX is like All, but panics if an error occurs.
func (clq *CollectionLogQuery) AllX(ctx context.Context) []*CollectionLog {
	nodes, err := clq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CollectionLog IDs.
func (clq *CollectionLogQuery) IDs(ctx context.Context) (ids []ulid.ID, err error) {
	if clq.ctx.Unique == nil && clq.path != nil {
		clq.Unique(true)
	}
	ctx = setContextOp(ctx, clq.ctx, ent.OpQueryIDs)
	if err = clq.Select(collectionlog.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (clq *CollectionLogQuery) IDsX(ctx context.Context) []ulid.ID {
	ids, err := clq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (clq *CollectionLogQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, clq.ctx, ent.OpQueryCount)
	if err := clq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, clq, querierCount[*CollectionLogQuery](), clq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (clq *CollectionLogQuery) CountX(ctx context.Context) int {
	count, err := clq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (clq *CollectionLogQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, clq.ctx, ent.OpQueryExist)
	switch _, err := clq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (clq *CollectionLogQuery) ExistX(ctx context.Context) bool {
	exist, err := clq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CollectionLogQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (clq *CollectionLogQuery) Clone() *CollectionLogQuery {
	if clq == nil {
		return nil
	}
	return &CollectionLogQuery{
		config:     clq.config,
		ctx:        clq.ctx.Clone(),
		order:      append([]collectionlog.OrderOption{}, clq.order...),
		inters:     append([]Interceptor{}, clq.inters...),
		predicates: append([]predicate.CollectionLog{}, clq.predicates...),
		// clone intermediate query.
		sql:  clq.sql.Clone(),
		path: clq.path,
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
//	client.CollectionLog.Query().
//		GroupBy(collectionlog.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (clq *CollectionLogQuery) GroupBy(field string, fields ...string) *CollectionLogGroupBy {
	clq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CollectionLogGroupBy{build: clq}
	grbuild.flds = &clq.ctx.Fields
	grbuild.label = collectionlog.Label
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
//	client.CollectionLog.Query().
//		Select(collectionlog.FieldCreatedAt).
//		Scan(ctx, &v)
func (clq *CollectionLogQuery) Select(fields ...string) *CollectionLogSelect {
	clq.ctx.Fields = append(clq.ctx.Fields, fields...)
	sbuild := &CollectionLogSelect{CollectionLogQuery: clq}
	sbuild.label = collectionlog.Label
	sbuild.flds, sbuild.scan = &clq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CollectionLogSelect configured with the given aggregations.
func (clq *CollectionLogQuery) Aggregate(fns ...AggregateFunc) *CollectionLogSelect {
	return clq.Select().Aggregate(fns...)
}

func (clq *CollectionLogQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range clq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, clq); err != nil {
				return err
			}
		}
	}
	for _, f := range clq.ctx.Fields {
		if !collectionlog.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if clq.path != nil {
		prev, err := clq.path(ctx)
		if err != nil {
			return err
		}
		clq.sql = prev
	}
	return nil
}

func (clq *CollectionLogQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CollectionLog, error) {
	var (
		nodes = []*CollectionLog{}
		_spec = clq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CollectionLog).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CollectionLog{config: clq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, clq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (clq *CollectionLogQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := clq.querySpec()
	_spec.Node.Columns = clq.ctx.Fields
	if len(clq.ctx.Fields) > 0 {
		_spec.Unique = clq.ctx.Unique != nil && *clq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, clq.driver, _spec)
}

func (clq *CollectionLogQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(collectionlog.Table, collectionlog.Columns, sqlgraph.NewFieldSpec(collectionlog.FieldID, field.TypeString))
	_spec.From = clq.sql
	if unique := clq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if clq.path != nil {
		_spec.Unique = true
	}
	if fields := clq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collectionlog.FieldID)
		for i := range fields {
			if fields[i] != collectionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := clq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := clq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := clq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := clq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (clq *CollectionLogQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(clq.driver.Dialect())
	t1 := builder.Table(collectionlog.Table)
	columns := clq.ctx.Fields
	if len(columns) == 0 {
		columns = collectionlog.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if clq.sql != nil {
		selector = clq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if clq.ctx.Unique != nil && *clq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range clq.predicates {
		p(selector)
	}
	for _, p := range clq.order {
		p(selector)
	}
	if offset := clq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := clq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CollectionLogGroupBy is the group-by builder for CollectionLog entities.
type CollectionLogGroupBy struct {
	selector
	build *CollectionLogQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (clgb *CollectionLogGroupBy) Aggregate(fns ...AggregateFunc) *CollectionLogGroupBy {
	clgb.fns = append(clgb.fns, fns...)
	return clgb
}

// Scan applies the selector query and scans the result into the given value.
func (clgb *CollectionLogGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, clgb.build.ctx, ent.OpQueryGroupBy)
	if err := clgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CollectionLogQuery, *CollectionLogGroupBy](ctx, clgb.build, clgb, clgb.build.inters, v)
}

func (clgb *CollectionLogGroupBy) sqlScan(ctx context.Context, root *CollectionLogQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(clgb.fns))
	for _, fn := range clgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*clgb.flds)+len(clgb.fns))
		for _, f := range *clgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*clgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := clgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CollectionLogSelect is the builder for selecting fields of CollectionLog entities.
type CollectionLogSelect struct {
	*CollectionLogQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cls *CollectionLogSelect) Aggregate(fns ...AggregateFunc) *CollectionLogSelect {
	cls.fns = append(cls.fns, fns...)
	return cls
}

// Scan applies the selector query and scans the result into the given value.
func (cls *CollectionLogSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cls.ctx, ent.OpQuerySelect)
	if err := cls.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CollectionLogQuery, *CollectionLogSelect](ctx, cls.CollectionLogQuery, cls, cls.inters, v)
}

func (cls *CollectionLogSelect) sqlScan(ctx context.Context, root *CollectionLogQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cls.fns))
	for _, fn := range cls.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cls.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cls.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
