// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryotransfer"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// EmbryoTransferQuery is the builder for querying EmbryoTransfer entities.
type EmbryoTransferQuery struct {
	config
	ctx        *QueryContext
	order      []embryotransfer.OrderOption
	inters     []Interceptor
	predicates []predicate.EmbryoTransfer
	withEmbryo *EmbryoQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EmbryoTransferQuery builder.
func (_q *EmbryoTransferQuery) Where(ps ...predicate.EmbryoTransfer) *EmbryoTransferQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EmbryoTransferQuery) Limit(limit int) *EmbryoTransferQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EmbryoTransferQuery) Offset(offset int) *EmbryoTransferQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EmbryoTransferQuery) Unique(unique bool) *EmbryoTransferQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EmbryoTransferQuery) Order(o ...embryotransfer.OrderOption) *EmbryoTransferQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEmbryo chains the current query on the "embryo" edge.
func (_q *EmbryoTransferQuery) QueryEmbryo() *EmbryoQuery {
	query := (&EmbryoClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(embryotransfer.Table, embryotransfer.FieldID, selector),
			sqlgraph.To(embryo.Table, embryo.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, embryotransfer.EmbryoTable, embryotransfer.EmbryoColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EmbryoTransfer entity from the query.
// Returns a *NotFoundError when no EmbryoTransfer was found.
func (_q *EmbryoTransferQuery) First(ctx context.Context) (*EmbryoTransfer, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{embryotransfer.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EmbryoTransferQuery) FirstX(ctx context.Context) *EmbryoTransfer {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EmbryoTransfer ID from the query.
// Returns a *NotFoundError when no EmbryoTransfer ID was found.
func (_q *EmbryoTransferQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{embryotransfer.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EmbryoTransferQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EmbryoTransfer entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EmbryoTransfer entity is found.
// Returns a *NotFoundError when no EmbryoTransfer entities are found.
func (_q *EmbryoTransferQuery) Only(ctx context.Context) (*EmbryoTransfer, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{embryotransfer.Label}
	default:
		return nil, &NotSingularError{embryotransfer.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EmbryoTransferQuery) OnlyX(ctx context.Context) *EmbryoTransfer {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EmbryoTransfer ID in the query.
// Returns a *NotSingularError when more than one EmbryoTransfer ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EmbryoTransferQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{embryotransfer.Label}
	default:
		err = &NotSingularError{embryotransfer.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EmbryoTransferQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EmbryoTransfers.
func (_q *EmbryoTransferQuery) All(ctx context.Context) ([]*EmbryoTransfer, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EmbryoTransfer, *EmbryoTransferQuery]()
	return withInterceptors[[]*EmbryoTransfer](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EmbryoTransferQuery) AllX(ctx context.Context) []*EmbryoTransfer {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EmbryoTransfer IDs.
func (_q *EmbryoTransferQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(embryotransfer.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EmbryoTransferQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EmbryoTransferQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EmbryoTransferQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EmbryoTransferQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EmbryoTransferQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *EmbryoTransferQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EmbryoTransferQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EmbryoTransferQuery) Clone() *EmbryoTransferQuery {
	if _q == nil {
		return nil
	}
	return &EmbryoTransferQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]embryotransfer.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.EmbryoTransfer{}, _q.predicates...),
		withEmbryo: _q.withEmbryo.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEmbryo tells the query-builder to eager-load the nodes that are connected to
// the "embryo" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmbryoTransferQuery) WithEmbryo(opts ...func(*EmbryoQuery)) *EmbryoTransferQuery {
	query := (&EmbryoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEmbryo = query
	return _q
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
//	client.EmbryoTransfer.Query().
//		GroupBy(embryotransfer.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *EmbryoTransferQuery) GroupBy(field string, fields ...string) *EmbryoTransferGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EmbryoTransferGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = embryotransfer.Label
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
//	client.EmbryoTransfer.Query().
//		Select(embryotransfer.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *EmbryoTransferQuery) Select(fields ...string) *EmbryoTransferSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EmbryoTransferSelect{EmbryoTransferQuery: _q}
	sbuild.label = embryotransfer.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EmbryoTransferSelect configured with the given aggregations.
func (_q *EmbryoTransferQuery) Aggregate(fns ...AggregateFunc) *EmbryoTransferSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EmbryoTransferQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !embryotransfer.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *EmbryoTransferQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EmbryoTransfer, error) {
	var (
		nodes       = []*EmbryoTransfer{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withEmbryo != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EmbryoTransfer).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EmbryoTransfer{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withEmbryo; query != nil {
		if err := _q.loadEmbryo(ctx, query, nodes, nil,
			func(n *EmbryoTransfer, e *Embryo) { n.Edges.Embryo = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EmbryoTransferQuery) loadEmbryo(ctx context.Context, query *EmbryoQuery, nodes []*EmbryoTransfer, init func(*EmbryoTransfer), assign func(*EmbryoTransfer, *Embryo)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*EmbryoTransfer)
	for i := range nodes {
		fk := nodes[i].EmbryoID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(embryo.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "embryo_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *EmbryoTransferQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EmbryoTransferQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(embryotransfer.Table, embryotransfer.Columns, sqlgraph.NewFieldSpec(embryotransfer.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, embryotransfer.FieldID)
		for i := range fields {
			if fields[i] != embryotransfer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withEmbryo != nil {
			_spec.Node.AddColumnOnce(embryotransfer.FieldEmbryoID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *EmbryoTransferQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(embryotransfer.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = embryotransfer.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// EmbryoTransferGroupBy is the group-by builder for EmbryoTransfer entities.
type EmbryoTransferGroupBy struct {
	selector
	build *EmbryoTransferQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EmbryoTransferGroupBy) Aggregate(fns ...AggregateFunc) *EmbryoTransferGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EmbryoTransferGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EmbryoTransferQuery, *EmbryoTransferGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EmbryoTransferGroupBy) sqlScan(ctx context.Context, root *EmbryoTransferQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// EmbryoTransferSelect is the builder for selecting fields of EmbryoTransfer entities.
type EmbryoTransferSelect struct {
	*EmbryoTransferQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EmbryoTransferSelect) Aggregate(fns ...AggregateFunc) *EmbryoTransferSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EmbryoTransferSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EmbryoTransferQuery, *EmbryoTransferSelect](ctx, _s.EmbryoTransferQuery, _s, _s.inters, v)
}

func (_s *EmbryoTransferSelect) sqlScan(ctx context.Context, root *EmbryoTransferQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
