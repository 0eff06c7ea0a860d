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
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/google/uuid"
)

// OocyteQuery is the builder for querying Oocyte entities.
type OocyteQuery struct {
	config
	ctx              *QueryContext
	order            []oocyte.OrderOption
	inters           []Interceptor
	predicates       []predicate.Oocyte
	withPuncture     *PunctureQuery
	withStateHistory *OocyteStateHistoryQuery
	withEmbryo       *EmbryoQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the OocyteQuery builder.
func (_q *OocyteQuery) Where(ps ...predicate.Oocyte) *OocyteQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *OocyteQuery) Limit(limit int) *OocyteQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *OocyteQuery) Offset(offset int) *OocyteQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *OocyteQuery) Unique(unique bool) *OocyteQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *OocyteQuery) Order(o ...oocyte.OrderOption) *OocyteQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPuncture chains the current query on the "puncture" edge.
func (_q *OocyteQuery) QueryPuncture() *PunctureQuery {
	query := (&PunctureClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(oocyte.Table, oocyte.FieldID, selector),
			sqlgraph.To(puncture.Table, puncture.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, oocyte.PunctureTable, oocyte.PunctureColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStateHistory chains the current query on the "state_history" edge.
func (_q *OocyteQuery) QueryStateHistory() *OocyteStateHistoryQuery {
	query := (&OocyteStateHistoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(oocyte.Table, oocyte.FieldID, selector),
			sqlgraph.To(oocytestatehistory.Table, oocytestatehistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, oocyte.StateHistoryTable, oocyte.StateHistoryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEmbryo chains the current query on the "embryo" edge.
func (_q *OocyteQuery) QueryEmbryo() *EmbryoQuery {
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
			sqlgraph.From(oocyte.Table, oocyte.FieldID, selector),
			sqlgraph.To(embryo.Table, embryo.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, oocyte.EmbryoTable, oocyte.EmbryoColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Oocyte entity from the query.
// Returns a *NotFoundError when no Oocyte was found.
func (_q *OocyteQuery) First(ctx context.Context) (*Oocyte, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{oocyte.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *OocyteQuery) FirstX(ctx context.Context) *Oocyte {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Oocyte ID from the query.
// Returns a *NotFoundError when no Oocyte ID was found.
func (_q *OocyteQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{oocyte.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *OocyteQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Oocyte entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Oocyte entity is found.
// Returns a *NotFoundError when no Oocyte entities are found.
func (_q *OocyteQuery) Only(ctx context.Context) (*Oocyte, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{oocyte.Label}
	default:
		return nil, &NotSingularError{oocyte.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *OocyteQuery) OnlyX(ctx context.Context) *Oocyte {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Oocyte ID in the query.
// Returns a *NotSingularError when more than one Oocyte ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *OocyteQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{oocyte.Label}
	default:
		err = &NotSingularError{oocyte.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *OocyteQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Oocytes.
func (_q *OocyteQuery) All(ctx context.Context) ([]*Oocyte, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Oocyte, *OocyteQuery]()
	return withInterceptors[[]*Oocyte](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *OocyteQuery) AllX(ctx context.Context) []*Oocyte {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Oocyte IDs.
func (_q *OocyteQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(oocyte.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *OocyteQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *OocyteQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*OocyteQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *OocyteQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *OocyteQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *OocyteQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the OocyteQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *OocyteQuery) Clone() *OocyteQuery {
	if _q == nil {
		return nil
	}
	return &OocyteQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]oocyte.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Oocyte{}, _q.predicates...),
		withPuncture:     _q.withPuncture.Clone(),
		withStateHistory: _q.withStateHistory.Clone(),
		withEmbryo:       _q.withEmbryo.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPuncture tells the query-builder to eager-load the nodes that are connected to
// the "puncture" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *OocyteQuery) WithPuncture(opts ...func(*PunctureQuery)) *OocyteQuery {
	query := (&PunctureClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPuncture = query
	return _q
}

// WithStateHistory tells the query-builder to eager-load the nodes that are connected to
// the "state_history" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *OocyteQuery) WithStateHistory(opts ...func(*OocyteStateHistoryQuery)) *OocyteQuery {
	query := (&OocyteStateHistoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStateHistory = query
	return _q
}

// WithEmbryo tells the query-builder to eager-load the nodes that are connected to
// the "embryo" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *OocyteQuery) WithEmbryo(opts ...func(*EmbryoQuery)) *OocyteQuery {
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
//	client.Oocyte.Query().
//		GroupBy(oocyte.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *OocyteQuery) GroupBy(field string, fields ...string) *OocyteGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &OocyteGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = oocyte.Label
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
//	client.Oocyte.Query().
//		Select(oocyte.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *OocyteQuery) Select(fields ...string) *OocyteSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &OocyteSelect{OocyteQuery: _q}
	sbuild.label = oocyte.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a OocyteSelect configured with the given aggregations.
func (_q *OocyteQuery) Aggregate(fns ...AggregateFunc) *OocyteSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *OocyteQuery) prepareQuery(ctx context.Context) error {
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
		if !oocyte.ValidColumn(f) {
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

func (_q *OocyteQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Oocyte, error) {
	var (
		nodes       = []*Oocyte{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withPuncture != nil,
			_q.withStateHistory != nil,
			_q.withEmbryo != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Oocyte).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Oocyte{config: _q.config}
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
	if query := _q.withPuncture; query != nil {
		if err := _q.loadPuncture(ctx, query, nodes, nil,
			func(n *Oocyte, e *Puncture) { n.Edges.Puncture = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStateHistory; query != nil {
		if err := _q.loadStateHistory(ctx, query, nodes,
			func(n *Oocyte) { n.Edges.StateHistory = []*OocyteStateHistory{} },
			func(n *Oocyte, e *OocyteStateHistory) { n.Edges.StateHistory = append(n.Edges.StateHistory, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEmbryo; query != nil {
		if err := _q.loadEmbryo(ctx, query, nodes, nil,
			func(n *Oocyte, e *Embryo) { n.Edges.Embryo = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *OocyteQuery) loadPuncture(ctx context.Context, query *PunctureQuery, nodes []*Oocyte, init func(*Oocyte), assign func(*Oocyte, *Puncture)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Oocyte)
	for i := range nodes {
		fk := nodes[i].PunctureID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(puncture.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "puncture_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *OocyteQuery) loadStateHistory(ctx context.Context, query *OocyteStateHistoryQuery, nodes []*Oocyte, init func(*Oocyte), assign func(*Oocyte, *OocyteStateHistory)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Oocyte)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(oocytestatehistory.FieldOocyteID)
	}
	query.Where(predicate.OocyteStateHistory(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(oocyte.StateHistoryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.OocyteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "oocyte_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *OocyteQuery) loadEmbryo(ctx context.Context, query *EmbryoQuery, nodes []*Oocyte, init func(*Oocyte), assign func(*Oocyte, *Embryo)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Oocyte)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(embryo.FieldOocyteID)
	}
	query.Where(predicate.Embryo(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(oocyte.EmbryoColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.OocyteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "oocyte_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *OocyteQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *OocyteQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(oocyte.Table, oocyte.Columns, sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, oocyte.FieldID)
		for i := range fields {
			if fields[i] != oocyte.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPuncture != nil {
			_spec.Node.AddColumnOnce(oocyte.FieldPunctureID)
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

func (_q *OocyteQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(oocyte.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = oocyte.Columns
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

// OocyteGroupBy is the group-by builder for Oocyte entities.
type OocyteGroupBy struct {
	selector
	build *OocyteQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *OocyteGroupBy) Aggregate(fns ...AggregateFunc) *OocyteGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *OocyteGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OocyteQuery, *OocyteGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *OocyteGroupBy) sqlScan(ctx context.Context, root *OocyteQuery, v any) error {
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

// OocyteSelect is the builder for selecting fields of Oocyte entities.
type OocyteSelect struct {
	*OocyteQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *OocyteSelect) Aggregate(fns ...AggregateFunc) *OocyteSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *OocyteSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OocyteQuery, *OocyteSelect](ctx, _s.OocyteQuery, _s, _s.inters, v)
}

func (_s *OocyteSelect) sqlScan(ctx context.Context, root *OocyteQuery, v any) error {
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
