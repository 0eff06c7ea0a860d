// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryotransfer"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// EmbryoQuery is the builder for querying Embryo entities.
type EmbryoQuery struct {
	config
	ctx          *QueryContext
	order        []embryo.OrderOption
	inters       []Interceptor
	predicates   []predicate.Embryo
	withOocyte   *OocyteQuery
	withTransfer *EmbryoTransferQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EmbryoQuery builder.
func (_q *EmbryoQuery) Where(ps ...predicate.Embryo) *EmbryoQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EmbryoQuery) Limit(limit int) *EmbryoQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EmbryoQuery) Offset(offset int) *EmbryoQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EmbryoQuery) Unique(unique bool) *EmbryoQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EmbryoQuery) Order(o ...embryo.OrderOption) *EmbryoQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOocyte chains the current query on the "oocyte" edge.
func (_q *EmbryoQuery) QueryOocyte() *OocyteQuery {
	query := (&OocyteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(embryo.Table, embryo.FieldID, selector),
			sqlgraph.To(oocyte.Table, oocyte.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, embryo.OocyteTable, embryo.OocyteColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTransfer chains the current query on the "transfer" edge.
func (_q *EmbryoQuery) QueryTransfer() *EmbryoTransferQuery {
	query := (&EmbryoTransferClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(embryo.Table, embryo.FieldID, selector),
			sqlgraph.To(embryotransfer.Table, embryotransfer.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, embryo.TransferTable, embryo.TransferColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Embryo entity from the query.
// Returns a *NotFoundError when no Embryo was found.
func (_q *EmbryoQuery) First(ctx context.Context) (*Embryo, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{embryo.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EmbryoQuery) FirstX(ctx context.Context) *Embryo {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Embryo ID from the query.
// Returns a *NotFoundError when no Embryo ID was found.
func (_q *EmbryoQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{embryo.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EmbryoQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Embryo entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Embryo entity is found.
// Returns a *NotFoundError when no Embryo entities are found.
func (_q *EmbryoQuery) Only(ctx context.Context) (*Embryo, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{embryo.Label}
	default:
		return nil, &NotSingularError{embryo.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EmbryoQuery) OnlyX(ctx context.Context) *Embryo {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Embryo ID in the query.
// Returns a *NotSingularError when more than one Embryo ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EmbryoQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{embryo.Label}
	default:
		err = &NotSingularError{embryo.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EmbryoQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Embryos.
func (_q *EmbryoQuery) All(ctx context.Context) ([]*Embryo, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Embryo, *EmbryoQuery]()
	return withInterceptors[[]*Embryo](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EmbryoQuery) AllX(ctx context.Context) []*Embryo {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Embryo IDs.
func (_q *EmbryoQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(embryo.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EmbryoQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EmbryoQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EmbryoQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EmbryoQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EmbryoQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *EmbryoQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EmbryoQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EmbryoQuery) Clone() *EmbryoQuery {
	if _q == nil {
		return nil
	}
	return &EmbryoQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]embryo.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.Embryo{}, _q.predicates...),
		withOocyte:   _q.withOocyte.Clone(),
		withTransfer: _q.withTransfer.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOocyte tells the query-builder to eager-load the nodes that are connected to
// the "oocyte" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmbryoQuery) WithOocyte(opts ...func(*OocyteQuery)) *EmbryoQuery {
	query := (&OocyteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOocyte = query
	return _q
}

// WithTransfer tells the query-builder to eager-load the nodes that are connected to
// the "transfer" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmbryoQuery) WithTransfer(opts ...func(*EmbryoTransferQuery)) *EmbryoQuery {
	query := (&EmbryoTransferClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTransfer = query
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
//	client.Embryo.Query().
//		GroupBy(embryo.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *EmbryoQuery) GroupBy(field string, fields ...string) *EmbryoGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EmbryoGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = embryo.Label
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
//	client.Embryo.Query().
//		Select(embryo.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *EmbryoQuery) Select(fields ...string) *EmbryoSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EmbryoSelect{EmbryoQuery: _q}
	sbuild.label = embryo.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EmbryoSelect configured with the given aggregations.
func (_q *EmbryoQuery) Aggregate(fns ...AggregateFunc) *EmbryoSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EmbryoQuery) prepareQuery(ctx context.Context) error {
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
		if !embryo.ValidColumn(f) {
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

func (_q *EmbryoQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Embryo, error) {
	var (
		nodes       = []*Embryo{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withOocyte != nil,
			_q.withTransfer != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Embryo).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Embryo{config: _q.config}
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
	if query := _q.withOocyte; query != nil {
		if err := _q.loadOocyte(ctx, query, nodes, nil,
			func(n *Embryo, e *Oocyte) { n.Edges.Oocyte = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTransfer; query != nil {
		if err := _q.loadTransfer(ctx, query, nodes, nil,
			func(n *Embryo, e *EmbryoTransfer) { n.Edges.Transfer = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EmbryoQuery) loadOocyte(ctx context.Context, query *OocyteQuery, nodes []*Embryo, init func(*Embryo), assign func(*Embryo, *Oocyte)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Embryo)
	for i := range nodes {
		fk := nodes[i].OocyteID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(oocyte.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "oocyte_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *EmbryoQuery) loadTransfer(ctx context.Context, query *EmbryoTransferQuery, nodes []*Embryo, init func(*Embryo), assign func(*Embryo, *EmbryoTransfer)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Embryo)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(embryotransfer.FieldEmbryoID)
	}
	query.Where(predicate.EmbryoTransfer(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(embryo.TransferColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EmbryoID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "embryo_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *EmbryoQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EmbryoQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(embryo.Table, embryo.Columns, sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, embryo.FieldID)
		for i := range fields {
			if fields[i] != embryo.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withOocyte != nil {
			_spec.Node.AddColumnOnce(embryo.FieldOocyteID)
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

func (_q *EmbryoQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(embryo.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = embryo.Columns
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

// EmbryoGroupBy is the group-by builder for Embryo entities.
type EmbryoGroupBy struct {
	selector
	build *EmbryoQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EmbryoGroupBy) Aggregate(fns ...AggregateFunc) *EmbryoGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EmbryoGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EmbryoQuery, *EmbryoGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EmbryoGroupBy) sqlScan(ctx context.Context, root *EmbryoQuery, v any) error {
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

// EmbryoSelect is the builder for selecting fields of Embryo entities.
type EmbryoSelect struct {
	*EmbryoQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EmbryoSelect) Aggregate(fns ...AggregateFunc) *EmbryoSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EmbryoSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EmbryoQuery, *EmbryoSelect](ctx, _s.EmbryoQuery, _s, _s.inters, v)
}

func (_s *EmbryoSelect) sqlScan(ctx context.Context, root *EmbryoQuery, v any) error {
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
