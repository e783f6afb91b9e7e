// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"kwlab-go-backend/ent/keyworddoccount"
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/ent/schema/ulid"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// KeywordDocCountQuery is the builder for querying KeywordDocCount entities.
type KeywordDocCountQuery struct {
	config
	ctx        *QueryContext
	order      []keyworddoccount.OrderOption
	inters     []Interceptor
	predicates []predicate.KeywordDocCount
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the KeywordDocCountQuery builder.
func (kdcq *KeywordDocCountQuery) Where(ps ...predicate.KeywordDocCount) *KeywordDocCountQuery {
	kdcq.predicates = append(kdcq.predicates, ps...)
	return kdcq
}

// Limit the number of records to be returned by this query.
func (kdcq *KeywordDocCountQuery) Limit(limit int) *KeywordDocCountQuery {
	kdcq.ctx.Limit = &limit
	return kdcq
}

// Offset to start from.
func (kdcq *KeywordDocCountQuery) Offset(offset int) *KeywordDocCountQuery {
	kdcq.ctx.Offset = &offset
	return kdcq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (kdcq *KeywordDocCountQuery) Unique(unique bool) *KeywordDocCountQuery {
	kdcq.ctx.Unique = &unique
	return kdcq
}

// Order specifies how the records should be ordered.
func (kdcq *KeywordDocCountQuery) Order(o ...keyworddoccount.OrderOption) *KeywordDocCountQuery {
	kdcq.order = append(kdcq.order, o...)
	return kdcq
}

// First returns the first KeywordDocCount entity from the query.
// Returns a *NotFoundError when no KeywordDocCount was found.
func (kdcq *KeywordDocCountQuery) First(ctx context.Context) (*KeywordDocCount, error) {
	nodes, err := kdcq.Limit(1).All(setContextOp(ctx, kdcq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{keyworddoccount.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (kdcq *KeywordDocCountQuery) FirstX(ctx context.Context) *KeywordDocCount {
	node, err := kdcq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first KeywordDocCount ID from the query.
// Returns a *NotFoundError when no KeywordDocCount ID was found.
func (kdcq *KeywordDocCountQuery) FirstID(ctx context.Context) (id ulid.ID, err error) {
	var ids []ulid.ID
	if ids, err = kdcq.Limit(1).IDs(setContextOp(ctx, kdcq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{keyworddoccount.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (kdcq *KeywordDocCountQuery) FirstIDX(ctx context.Context) ulid.ID {
	id, err := kdcq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single KeywordDocCount entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one KeywordDocCount entity is found.
// Returns a *NotFoundError when no KeywordDocCount entities are found.
func (kdcq *KeywordDocCountQuery) Only(ctx context.Context) (*KeywordDocCount, error) {
	nodes, err := kdcq.Limit(2).All(setContextOp(ctx, kdcq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{keyworddoccount.Label}
	default:
		return nil, &NotSingularError{keyworddoccount.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (kdcq *KeywordDocCountQuery) OnlyX(ctx context.Context) *KeywordDocCount {
	node, err := kdcq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only KeywordDocCount ID in the query.
// Returns a *NotSingularError when more than one KeywordDocCount ID is found.
// Returns a *NotFoundError when no entities are found.
func (kdcq *KeywordDocCountQuery) OnlyID(ctx context.Context) (id ulid.ID, err error) {
	var ids []ulid.ID
	if ids, err = kdcq.Limit(2).IDs(setContextOp(ctx, kdcq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{keyworddoccount.Label}
	default:
		err = &NotSingularError{keyworddoccount.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (kdcq *KeywordDocCountQuery) OnlyIDX(ctx context.Context) ulid.ID {
	id, err := kdcq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of KeywordDocCounts.
func (kdcq *KeywordDocCountQuery) All(ctx context.Context) ([]*KeywordDocCount, error) {
	ctx = setContextOp(ctx, kdcq.ctx, ent.OpQueryAll)
	if err := kdcq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*KeywordDocCount, *KeywordDocCountQuery]()
	return withInterceptors[[]*KeywordDocCount](ctx, kdcq, qr, kdcq.inters)
}

// AllX is like All, but panics if an error occurs.
func (kdcq *KeywordDocCountQuery) AllX(ctx context.Context) []*KeywordDocCount {
	nodes, err := kdcq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of KeywordDocCount IDs.
func (kdcq *KeywordDocCountQuery) IDs(ctx context.Context) (ids []ulid.ID, err error) {
	if kdcq.ctx.Unique == nil && kdcq.path != nil {
		kdcq.Unique(true)
	}
	ctx = setContextOp(ctx, kdcq.ctx, ent.OpQueryIDs)
	if err = kdcq.Select(keyworddoccount.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (kdcq *KeywordDocCountQuery) IDsX(ctx context.Context) []ulid.ID {
	ids, err := kdcq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (kdcq *KeywordDocCountQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, kdcq.ctx, ent.OpQueryCount)
	if err := kdcq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, kdcq, querierCount[*KeywordDocCountQuery](), kdcq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (kdcq *KeywordDocCountQuery) CountX(ctx context.Context) int {
	count, err := kdcq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (kdcq *KeywordDocCountQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, kdcq.ctx, ent.OpQueryExist)
	switch _, err := kdcq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (kdcq *KeywordDocCountQuery) ExistX(ctx context.Context) bool {
	exist, err := kdcq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the KeywordDocCountQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (kdcq *KeywordDocCountQuery) Clone() *KeywordDocCountQuery {
	if kdcq == nil {
		return nil
	}
	return &KeywordDocCountQuery{
		config:     kdcq.config,
		ctx:        kdcq.ctx.Clone(),
		order:      append([]keyworddoccount.OrderOption{}, kdcq.order...),
		inters:     append([]Interceptor{}, kdcq.inters...),
		predicates: append([]predicate.KeywordDocCount{}, kdcq.predicates...),
		// clone intermediate query.
		sql:  kdcq.sql.Clone(),
		path: kdcq.path,
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
//	client.KeywordDocCount.Query().
//		GroupBy(keyworddoccount.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (kdcq *KeywordDocCountQuery) GroupBy(field string, fields ...string) *KeywordDocCountGroupBy {
	kdcq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &KeywordDocCountGroupBy{build: kdcq}
	grbuild.flds = &kdcq.ctx.Fields
	grbuild.label = keyworddoccount.Label
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
//	client.KeywordDocCount.Query().
//		Select(keyworddoccount.FieldCreatedAt).
//		Scan(ctx, &v)
func (kdcq *KeywordDocCountQuery) Select(fields ...string) *KeywordDocCountSelect {
	kdcq.ctx.Fields = append(kdcq.ctx.Fields, fields...)
	sbuild := &KeywordDocCountSelect{KeywordDocCountQuery: kdcq}
	sbuild.label = keyworddoccount.Label
	sbuild.flds, sbuild.scan = &kdcq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a KeywordDocCountSelect configured with the given aggregations.
func (kdcq *KeywordDocCountQuery) Aggregate(fns ...AggregateFunc) *KeywordDocCountSelect {
	return kdcq.Select().Aggregate(fns...)
}

func (kdcq *KeywordDocCountQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range kdcq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, kdcq); err != nil {
				return err
			}
		}
	}
	for _, f := range kdcq.ctx.Fields {
		if !keyworddoccount.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if kdcq.path != nil {
		prev, err := kdcq.path(ctx)
		if err != nil {
			return err
		}
		kdcq.sql = prev
	}
	return nil
}

func (kdcq *KeywordDocCountQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*KeywordDocCount, error) {
	var (
		nodes = []*KeywordDocCount{}
		_spec = kdcq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*KeywordDocCount).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &KeywordDocCount{config: kdcq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, kdcq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (kdcq *KeywordDocCountQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := kdcq.querySpec()
	_spec.Node.Columns = kdcq.ctx.Fields
	if len(kdcq.ctx.Fields) > 0 {
		_spec.Unique = kdcq.ctx.Unique != nil && *kdcq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, kdcq.driver, _spec)
}

func (kdcq *KeywordDocCountQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(keyworddoccount.Table, keyworddoccount.Columns, sqlgraph.NewFieldSpec(keyworddoccount.FieldID, field.TypeString))
	_spec.From = kdcq.sql
	if unique := kdcq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if kdcq.path != nil {
		_spec.Unique = true
	}
	if fields := kdcq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, keyworddoccount.FieldID)
		for i := range fields {
			if fields[i] != keyworddoccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := kdcq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := kdcq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := kdcq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := kdcq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (kdcq *KeywordDocCountQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(kdcq.driver.Dialect())
	t1 := builder.Table(keyworddoccount.Table)
	columns := kdcq.ctx.Fields
	if len(columns) == 0 {
		columns = keyworddoccount.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if kdcq.sql != nil {
		selector = kdcq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if kdcq.ctx.Unique != nil && *kdcq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range kdcq.predicates {
		p(selector)
	}
	for _, p := range kdcq.order {
		p(selector)
	}
	if offset := kdcq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := kdcq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// KeywordDocCountGroupBy is the group-by builder for KeywordDocCount entities.
type KeywordDocCountGroupBy struct {
	selector
	build *KeywordDocCountQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (kdcgb *KeywordDocCountGroupBy) Aggregate(fns ...AggregateFunc) *KeywordDocCountGroupBy {
	kdcgb.fns = append(kdcgb.fns, fns...)
	return kdcgb
}

// Scan applies the selector query and scans the result into the given value.
func (kdcgb *KeywordDocCountGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, kdcgb.build.ctx, ent.OpQueryGroupBy)
	if err := kdcgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*KeywordDocCountQuery, *KeywordDocCountGroupBy](ctx, kdcgb.build, kdcgb, kdcgb.build.inters, v)
}

func (kdcgb *KeywordDocCountGroupBy) sqlScan(ctx context.Context, root *KeywordDocCountQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(kdcgb.fns))
	for _, fn := range kdcgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*kdcgb.flds)+len(kdcgb.fns))
		for _, f := range *kdcgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*kdcgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := kdcgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// KeywordDocCountSelect is the builder for selecting fields of KeywordDocCount entities.
type KeywordDocCountSelect struct {
	*KeywordDocCountQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (kdcs *KeywordDocCountSelect) Aggregate(fns ...AggregateFunc) *KeywordDocCountSelect {
	kdcs.fns = append(kdcs.fns, fns...)
	return kdcs
}

// Scan applies the selector query and scans the result into the given value.
func (kdcs *KeywordDocCountSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, kdcs.ctx, ent.OpQuerySelect)
	if err := kdcs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*KeywordDocCountQuery, *KeywordDocCountSelect](ctx, kdcs.KeywordDocCountQuery, kdcs, kdcs.inters, v)
}

func (kdcs *KeywordDocCountSelect) sqlScan(ctx context.Context, root *KeywordDocCountQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(kdcs.fns))
	for _, fn := range kdcs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*kdcs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := kdcs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
