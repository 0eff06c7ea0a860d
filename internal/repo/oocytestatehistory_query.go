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
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// OocyteStateHistoryQuery is the builder for querying OocyteStateHistory entities.
type OocyteStateHistoryQuery struct {
	config
	ctx           *QueryContext
	order         []oocytestatehistory.OrderOption
	inters        []Interceptor
	predicates    []predicate.OocyteStateHistory
	withOocyte    *OocyteQuery
	withChangedBy *UserQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the OocyteStateHistoryQuery builder.
func (_q *OocyteStateHistoryQuery) Where(ps ...predicate.OocyteStateHistory) *OocyteStateHistoryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *OocyteStateHistoryQuery) Limit(limit int) *OocyteStateHistoryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *OocyteStateHistoryQuery) Offset(offset int) *OocyteStateHistoryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *OocyteStateHistoryQuery) Unique(unique bool) *OocyteStateHistoryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *OocyteStateHistoryQuery) Order(o ...oocytestatehistory.OrderOption) *OocyteStateHistoryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOocyte chains the current query on the "oocyte" edge.
func (_q *OocyteStateHistoryQuery) QueryOocyte() *OocyteQuery {
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
			sqlgraph.From(oocytestatehistory.Table, oocytestatehistory.FieldID, selector),
			sqlgraph.To(oocyte.Table, oocyte.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, oocytestatehistory.OocyteTable, oocytestatehistory.OocyteColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChangedBy chains the current query on the "changed_by" edge.
func (_q *OocyteStateHistoryQuery) QueryChangedBy() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(oocytestatehistory.Table, oocytestatehistory.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, oocytestatehistory.ChangedByTable, oocytestatehistory.ChangedByColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first OocyteStateHistory entity from the query.
// Returns a *NotFoundError when no OocyteStateHistory was found.
func (_q *OocyteStateHistoryQuery) First(ctx context.Context) (*OocyteStateHistory, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{oocytestatehistory.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *OocyteStateHistoryQuery) FirstX(ctx context.Context) *OocyteStateHistory {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first OocyteStateHistory ID from the query.
// Returns a *NotFoundError when no OocyteStateHistory ID was found.
func (_q *OocyteStateHistoryQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{oocytestatehistory.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *OocyteStateHistoryQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single OocyteStateHistory entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one OocyteStateHistory entity is found.
// Returns a *NotFoundError when no OocyteStateHistory entities are found.
func (_q *OocyteStateHistoryQuery) Only(ctx context.Context) (*OocyteStateHistory, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{oocytestatehistory.Label}
	default:
		return nil, &NotSingularError{oocytestatehistory.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *OocyteStateHistoryQuery) OnlyX(ctx context.Context) *OocyteStateHistory {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only OocyteStateHistory ID in the query.
// Returns a *NotSingularError when more than one OocyteStateHistory ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *OocyteStateHistoryQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{oocytestatehistory.Label}
	default:
		err = &NotSingularError{oocytestatehistory.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *OocyteStateHistoryQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of OocyteStateHistories.
func (_q *OocyteStateHistoryQuery) All(ctx context.Context) ([]*OocyteStateHistory, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*OocyteStateHistory, *OocyteStateHistoryQuery]()
	return withInterceptors[[]*OocyteStateHistory](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *OocyteStateHistoryQuery) AllX(ctx context.Context) []*OocyteStateHistory {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of OocyteStateHistory IDs.
func (_q *OocyteStateHistoryQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(oocytestatehistory.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *OocyteStateHistoryQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *OocyteStateHistoryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*OocyteStateHistoryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *OocyteStateHistoryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *OocyteStateHistoryQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *OocyteStateHistoryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the OocyteStateHistoryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *OocyteStateHistoryQuery) Clone() *OocyteStateHistoryQuery {
	if _q == nil {
		return nil
	}
	return &OocyteStateHistoryQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]oocytestatehistory.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.OocyteStateHistory{}, _q.predicates...),
		withOocyte:    _q.withOocyte.Clone(),
		withChangedBy: _q.withChangedBy.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOocyte tells the query-builder to eager-load the nodes that are connected to
// the "oocyte" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *OocyteStateHistoryQuery) WithOocyte(opts ...func(*OocyteQuery)) *OocyteStateHistoryQuery {
	query := (&OocyteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOocyte = query
	return _q
}

// WithChangedBy tells the query-builder to eager-load the nodes that are connected to
// the "changed_by" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *OocyteStateHistoryQuery) WithChangedBy(opts ...func(*UserQuery)) *OocyteStateHistoryQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChangedBy = query
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
//	client.OocyteStateHistory.Query().
//		GroupBy(oocytestatehistory.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *OocyteStateHistoryQuery) GroupBy(field string, fields ...string) *OocyteStateHistoryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &OocyteStateHistoryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = oocytestatehistory.Label
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
//	client.OocyteStateHistory.Query().
//		Select(oocytestatehistory.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *OocyteStateHistoryQuery) Select(fields ...string) *OocyteStateHistorySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &OocyteStateHistorySelect{OocyteStateHistoryQuery: _q}
	sbuild.label = oocytestatehistory.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a OocyteStateHistorySelect configured with the given aggregations.
func (_q *OocyteStateHistoryQuery) Aggregate(fns ...AggregateFunc) *OocyteStateHistorySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *OocyteStateHistoryQuery) prepareQuery(ctx context.Context) error {
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
		if !oocytestatehistory.ValidColumn(f) {
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

func (_q *OocyteStateHistoryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*OocyteStateHistory, error) {
	var (
		nodes       = []*OocyteStateHistory{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withOocyte != nil,
			_q.withChangedBy != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*OocyteStateHistory).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &OocyteStateHistory{config: _q.config}
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
			func(n *OocyteStateHistory, e *Oocyte) { n.Edges.Oocyte = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChangedBy; query != nil {
		if err := _q.loadChangedBy(ctx, query, nodes, nil,
			func(n *OocyteStateHistory, e *User) { n.Edges.ChangedBy = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *OocyteStateHistoryQuery) loadOocyte(ctx context.Context, query *OocyteQuery, nodes []*OocyteStateHistory, init func(*OocyteStateHistory), assign func(*OocyteStateHistory, *Oocyte)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*OocyteStateHistory)
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
func (_q *OocyteStateHistoryQuery) loadChangedBy(ctx context.Context, query *UserQuery, nodes []*OocyteStateHistory, init func(*OocyteStateHistory), assign func(*OocyteStateHistory, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*OocyteStateHistory)
	for i := range nodes {
		if nodes[i].ChangedByID == nil {
			continue
		}
		fk := *nodes[i].ChangedByID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "changed_by_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *OocyteStateHistoryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *OocyteStateHistoryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(oocytestatehistory.Table, oocytestatehistory.Columns, sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, oocytestatehistory.FieldID)
		for i := range fields {
			if fields[i] != oocytestatehistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withOocyte != nil {
			_spec.Node.AddColumnOnce(oocytestatehistory.FieldOocyteID)
		}
		if _q.withChangedBy != nil {
			_spec.Node.AddColumnOnce(oocytestatehistory.FieldChangedByID)
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

func (_q *OocyteStateHistoryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(oocytestatehistory.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = oocytestatehistory.Columns
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

// OocyteStateHistoryGroupBy is the group-by builder for OocyteStateHistory entities.
type OocyteStateHistoryGroupBy struct {
	selector
	build *OocyteStateHistoryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *OocyteStateHistoryGroupBy) Aggregate(fns ...AggregateFunc) *OocyteStateHistoryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *OocyteStateHistoryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OocyteStateHistoryQuery, *OocyteStateHistoryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *OocyteStateHistoryGroupBy) sqlScan(ctx context.Context, root *OocyteStateHistoryQuery, v any) error {
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

// OocyteStateHistorySelect is the builder for selecting fields of OocyteStateHistory entities.
type OocyteStateHistorySelect struct {
	*OocyteStateHistoryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *OocyteStateHistorySelect) Aggregate(fns ...AggregateFunc) *OocyteStateHistorySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *OocyteStateHistorySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OocyteStateHistoryQuery, *OocyteStateHistorySelect](ctx, _s.OocyteStateHistoryQuery, _s, _s.inters, v)
}

func (_s *OocyteStateHistorySelect) sqlScan(ctx context.Context, root *OocyteStateHistoryQuery, v any) error {
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
