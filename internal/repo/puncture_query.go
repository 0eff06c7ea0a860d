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
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PunctureQuery is the builder for querying Puncture entities.
type PunctureQuery struct {
	config
	ctx           *QueryContext
	order         []puncture.OrderOption
	inters        []Interceptor
	predicates    []predicate.Puncture
	withTreatment *TreatmentQuery
	withOperator  *UserQuery
	withOocytes   *OocyteQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PunctureQuery builder.
func (_q *PunctureQuery) Where(ps ...predicate.Puncture) *PunctureQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PunctureQuery) Limit(limit int) *PunctureQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PunctureQuery) Offset(offset int) *PunctureQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PunctureQuery) Unique(unique bool) *PunctureQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PunctureQuery) Order(o ...puncture.OrderOption) *PunctureQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTreatment chains the current query on the "treatment" edge.
func (_q *PunctureQuery) QueryTreatment() *TreatmentQuery {
	query := (&TreatmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(puncture.Table, puncture.FieldID, selector),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, puncture.TreatmentTable, puncture.TreatmentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOperator chains the current query on the "operator" edge.
func (_q *PunctureQuery) QueryOperator() *UserQuery {
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
			sqlgraph.From(puncture.Table, puncture.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, puncture.OperatorTable, puncture.OperatorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOocytes chains the current query on the "oocytes" edge.
func (_q *PunctureQuery) QueryOocytes() *OocyteQuery {
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
			sqlgraph.From(puncture.Table, puncture.FieldID, selector),
			sqlgraph.To(oocyte.Table, oocyte.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, puncture.OocytesTable, puncture.OocytesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Puncture entity from the query.
// Returns a *NotFoundError when no Puncture was found.
func (_q *PunctureQuery) First(ctx context.Context) (*Puncture, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{puncture.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PunctureQuery) FirstX(ctx context.Context) *Puncture {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Puncture ID from the query.
// Returns a *NotFoundError when no Puncture ID was found.
func (_q *PunctureQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{puncture.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PunctureQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Puncture entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Puncture entity is found.
// Returns a *NotFoundError when no Puncture entities are found.
func (_q *PunctureQuery) Only(ctx context.Context) (*Puncture, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{puncture.Label}
	default:
		return nil, &NotSingularError{puncture.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PunctureQuery) OnlyX(ctx context.Context) *Puncture {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Puncture ID in the query.
// Returns a *NotSingularError when more than one Puncture ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PunctureQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{puncture.Label}
	default:
		err = &NotSingularError{puncture.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PunctureQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Punctures.
func (_q *PunctureQuery) All(ctx context.Context) ([]*Puncture, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Puncture, *PunctureQuery]()
	return withInterceptors[[]*Puncture](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PunctureQuery) AllX(ctx context.Context) []*Puncture {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Puncture IDs.
func (_q *PunctureQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(puncture.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PunctureQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PunctureQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PunctureQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PunctureQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PunctureQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PunctureQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PunctureQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PunctureQuery) Clone() *PunctureQuery {
	if _q == nil {
		return nil
	}
	return &PunctureQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]puncture.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Puncture{}, _q.predicates...),
		withTreatment: _q.withTreatment.Clone(),
		withOperator:  _q.withOperator.Clone(),
		withOocytes:   _q.withOocytes.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTreatment tells the query-builder to eager-load the nodes that are connected to
// the "treatment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PunctureQuery) WithTreatment(opts ...func(*TreatmentQuery)) *PunctureQuery {
	query := (&TreatmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTreatment = query
	return _q
}

// WithOperator tells the query-builder to eager-load the nodes that are connected to
// the "operator" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PunctureQuery) WithOperator(opts ...func(*UserQuery)) *PunctureQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOperator = query
	return _q
}

// WithOocytes tells the query-builder to eager-load the nodes that are connected to
// the "oocytes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PunctureQuery) WithOocytes(opts ...func(*OocyteQuery)) *PunctureQuery {
	query := (&OocyteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOocytes = query
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
//	client.Puncture.Query().
//		GroupBy(puncture.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *PunctureQuery) GroupBy(field string, fields ...string) *PunctureGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PunctureGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = puncture.Label
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
//	client.Puncture.Query().
//		Select(puncture.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *PunctureQuery) Select(fields ...string) *PunctureSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PunctureSelect{PunctureQuery: _q}
	sbuild.label = puncture.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PunctureSelect configured with the given aggregations.
func (_q *PunctureQuery) Aggregate(fns ...AggregateFunc) *PunctureSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PunctureQuery) prepareQuery(ctx context.Context) error {
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
		if !puncture.ValidColumn(f) {
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

func (_q *PunctureQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Puncture, error) {
	var (
		nodes       = []*Puncture{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withTreatment != nil,
			_q.withOperator != nil,
			_q.withOocytes != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Puncture).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Puncture{config: _q.config}
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
	if query := _q.withTreatment; query != nil {
		if err := _q.loadTreatment(ctx, query, nodes, nil,
			func(n *Puncture, e *Treatment) { n.Edges.Treatment = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOperator; query != nil {
		if err := _q.loadOperator(ctx, query, nodes, nil,
			func(n *Puncture, e *User) { n.Edges.Operator = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOocytes; query != nil {
		if err := _q.loadOocytes(ctx, query, nodes,
			func(n *Puncture) { n.Edges.Oocytes = []*Oocyte{} },
			func(n *Puncture, e *Oocyte) { n.Edges.Oocytes = append(n.Edges.Oocytes, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PunctureQuery) loadTreatment(ctx context.Context, query *TreatmentQuery, nodes []*Puncture, init func(*Puncture), assign func(*Puncture, *Treatment)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Puncture)
	for i := range nodes {
		fk := nodes[i].TreatmentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(treatment.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "treatment_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PunctureQuery) loadOperator(ctx context.Context, query *UserQuery, nodes []*Puncture, init func(*Puncture), assign func(*Puncture, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Puncture)
	for i := range nodes {
		if nodes[i].OperatorID == nil {
			continue
		}
		fk := *nodes[i].OperatorID
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
			return fmt.Errorf(`unexpected foreign-key "operator_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PunctureQuery) loadOocytes(ctx context.Context, query *OocyteQuery, nodes []*Puncture, init func(*Puncture), assign func(*Puncture, *Oocyte)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Puncture)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(oocyte.FieldPunctureID)
	}
	query.Where(predicate.Oocyte(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(puncture.OocytesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PunctureID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "puncture_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PunctureQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PunctureQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(puncture.Table, puncture.Columns, sqlgraph.NewFieldSpec(puncture.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, puncture.FieldID)
		for i := range fields {
			if fields[i] != puncture.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTreatment != nil {
			_spec.Node.AddColumnOnce(puncture.FieldTreatmentID)
		}
		if _q.withOperator != nil {
			_spec.Node.AddColumnOnce(puncture.FieldOperatorID)
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

func (_q *PunctureQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(puncture.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = puncture.Columns
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

// PunctureGroupBy is the group-by builder for Puncture entities.
type PunctureGroupBy struct {
	selector
	build *PunctureQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PunctureGroupBy) Aggregate(fns ...AggregateFunc) *PunctureGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PunctureGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PunctureQuery, *PunctureGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PunctureGroupBy) sqlScan(ctx context.Context, root *PunctureQuery, v any) error {
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

// PunctureSelect is the builder for selecting fields of Puncture entities.
type PunctureSelect struct {
	*PunctureQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PunctureSelect) Aggregate(fns ...AggregateFunc) *PunctureSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PunctureSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PunctureQuery, *PunctureSelect](ctx, _s.PunctureQuery, _s, _s.inters, v)
}

func (_s *PunctureSelect) sqlScan(ctx context.Context, root *PunctureQuery, v any) error {
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
