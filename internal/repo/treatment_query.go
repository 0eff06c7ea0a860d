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
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalorder"
	"github.com/fertitrack/fertitrack_backend/internal/repo/monitoringday"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/fertitrack/fertitrack_backend/internal/repo/studyresult"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// TreatmentQuery is the builder for querying Treatment entities.
type TreatmentQuery struct {
	config
	ctx                *QueryContext
	order              []treatment.OrderOption
	inters             []Interceptor
	predicates         []predicate.Treatment
	withPatient        *PatientQuery
	withDoctor         *UserQuery
	withMonitoringDays *MonitoringDayQuery
	withStudyResults   *StudyResultQuery
	withMedicalOrders  *MedicalOrderQuery
	withPuncture       *PunctureQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TreatmentQuery builder.
func (_q *TreatmentQuery) Where(ps ...predicate.Treatment) *TreatmentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TreatmentQuery) Limit(limit int) *TreatmentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TreatmentQuery) Offset(offset int) *TreatmentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TreatmentQuery) Unique(unique bool) *TreatmentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TreatmentQuery) Order(o ...treatment.OrderOption) *TreatmentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPatient chains the current query on the "patient" edge.
func (_q *TreatmentQuery) QueryPatient() *PatientQuery {
	query := (&PatientClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, selector),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, treatment.PatientTable, treatment.PatientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDoctor chains the current query on the "doctor" edge.
func (_q *TreatmentQuery) QueryDoctor() *UserQuery {
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
			sqlgraph.From(treatment.Table, treatment.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, treatment.DoctorTable, treatment.DoctorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMonitoringDays chains the current query on the "monitoring_days" edge.
func (_q *TreatmentQuery) QueryMonitoringDays() *MonitoringDayQuery {
	query := (&MonitoringDayClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, selector),
			sqlgraph.To(monitoringday.Table, monitoringday.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, treatment.MonitoringDaysTable, treatment.MonitoringDaysColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStudyResults chains the current query on the "study_results" edge.
func (_q *TreatmentQuery) QueryStudyResults() *StudyResultQuery {
	query := (&StudyResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, selector),
			sqlgraph.To(studyresult.Table, studyresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, treatment.StudyResultsTable, treatment.StudyResultsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMedicalOrders chains the current query on the "medical_orders" edge.
func (_q *TreatmentQuery) QueryMedicalOrders() *MedicalOrderQuery {
	query := (&MedicalOrderClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, selector),
			sqlgraph.To(medicalorder.Table, medicalorder.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, treatment.MedicalOrdersTable, treatment.MedicalOrdersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPuncture chains the current query on the "puncture" edge.
func (_q *TreatmentQuery) QueryPuncture() *PunctureQuery {
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
			sqlgraph.From(treatment.Table, treatment.FieldID, selector),
			sqlgraph.To(puncture.Table, puncture.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, treatment.PunctureTable, treatment.PunctureColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Treatment entity from the query.
// Returns a *NotFoundError when no Treatment was found.
func (_q *TreatmentQuery) First(ctx context.Context) (*Treatment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{treatment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TreatmentQuery) FirstX(ctx context.Context) *Treatment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Treatment ID from the query.
// Returns a *NotFoundError when no Treatment ID was found.
func (_q *TreatmentQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{treatment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TreatmentQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Treatment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Treatment entity is found.
// Returns a *NotFoundError when no Treatment entities are found.
func (_q *TreatmentQuery) Only(ctx context.Context) (*Treatment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{treatment.Label}
	default:
		return nil, &NotSingularError{treatment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TreatmentQuery) OnlyX(ctx context.Context) *Treatment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Treatment ID in the query.
// Returns a *NotSingularError when more than one Treatment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TreatmentQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{treatment.Label}
	default:
		err = &NotSingularError{treatment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TreatmentQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Treatments.
func (_q *TreatmentQuery) All(ctx context.Context) ([]*Treatment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Treatment, *TreatmentQuery]()
	return withInterceptors[[]*Treatment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TreatmentQuery) AllX(ctx context.Context) []*Treatment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Treatment IDs.
func (_q *TreatmentQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(treatment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TreatmentQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TreatmentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TreatmentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TreatmentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TreatmentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TreatmentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TreatmentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TreatmentQuery) Clone() *TreatmentQuery {
	if _q == nil {
		return nil
	}
	return &TreatmentQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]treatment.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.Treatment{}, _q.predicates...),
		withPatient:        _q.withPatient.Clone(),
		withDoctor:         _q.withDoctor.Clone(),
		withMonitoringDays: _q.withMonitoringDays.Clone(),
		withStudyResults:   _q.withStudyResults.Clone(),
		withMedicalOrders:  _q.withMedicalOrders.Clone(),
		withPuncture:       _q.withPuncture.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPatient tells the query-builder to eager-load the nodes that are connected to
// the "patient" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TreatmentQuery) WithPatient(opts ...func(*PatientQuery)) *TreatmentQuery {
	query := (&PatientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPatient = query
	return _q
}

// WithDoctor tells the query-builder to eager-load the nodes that are connected to
// the "doctor" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TreatmentQuery) WithDoctor(opts ...func(*UserQuery)) *TreatmentQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDoctor = query
	return _q
}

// WithMonitoringDays tells the query-builder to eager-load the nodes that are connected to
// the "monitoring_days" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TreatmentQuery) WithMonitoringDays(opts ...func(*MonitoringDayQuery)) *TreatmentQuery {
	query := (&MonitoringDayClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMonitoringDays = query
	return _q
}

// WithStudyResults tells the query-builder to eager-load the nodes that are connected to
// the "study_results" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TreatmentQuery) WithStudyResults(opts ...func(*StudyResultQuery)) *TreatmentQuery {
	query := (&StudyResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStudyResults = query
	return _q
}

// WithMedicalOrders tells the query-builder to eager-load the nodes that are connected to
// the "medical_orders" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TreatmentQuery) WithMedicalOrders(opts ...func(*MedicalOrderQuery)) *TreatmentQuery {
	query := (&MedicalOrderClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMedicalOrders = query
	return _q
}

// WithPuncture tells the query-builder to eager-load the nodes that are connected to
// the "puncture" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TreatmentQuery) WithPuncture(opts ...func(*PunctureQuery)) *TreatmentQuery {
	query := (&PunctureClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPuncture = query
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
//	client.Treatment.Query().
//		GroupBy(treatment.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *TreatmentQuery) GroupBy(field string, fields ...string) *TreatmentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TreatmentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = treatment.Label
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
//	client.Treatment.Query().
//		Select(treatment.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *TreatmentQuery) Select(fields ...string) *TreatmentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TreatmentSelect{TreatmentQuery: _q}
	sbuild.label = treatment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TreatmentSelect configured with the given aggregations.
func (_q *TreatmentQuery) Aggregate(fns ...AggregateFunc) *TreatmentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TreatmentQuery) prepareQuery(ctx context.Context) error {
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
		if !treatment.ValidColumn(f) {
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

func (_q *TreatmentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Treatment, error) {
	var (
		nodes       = []*Treatment{}
		_spec       = _q.querySpec()
		loadedTypes = [6]bool{
			_q.withPatient != nil,
			_q.withDoctor != nil,
			_q.withMonitoringDays != nil,
			_q.withStudyResults != nil,
			_q.withMedicalOrders != nil,
			_q.withPuncture != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Treatment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Treatment{config: _q.config}
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
	if query := _q.withPatient; query != nil {
		if err := _q.loadPatient(ctx, query, nodes, nil,
			func(n *Treatment, e *Patient) { n.Edges.Patient = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDoctor; query != nil {
		if err := _q.loadDoctor(ctx, query, nodes, nil,
			func(n *Treatment, e *User) { n.Edges.Doctor = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMonitoringDays; query != nil {
		if err := _q.loadMonitoringDays(ctx, query, nodes,
			func(n *Treatment) { n.Edges.MonitoringDays = []*MonitoringDay{} },
			func(n *Treatment, e *MonitoringDay) { n.Edges.MonitoringDays = append(n.Edges.MonitoringDays, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStudyResults; query != nil {
		if err := _q.loadStudyResults(ctx, query, nodes,
			func(n *Treatment) { n.Edges.StudyResults = []*StudyResult{} },
			func(n *Treatment, e *StudyResult) { n.Edges.StudyResults = append(n.Edges.StudyResults, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMedicalOrders; query != nil {
		if err := _q.loadMedicalOrders(ctx, query, nodes,
			func(n *Treatment) { n.Edges.MedicalOrders = []*MedicalOrder{} },
			func(n *Treatment, e *MedicalOrder) { n.Edges.MedicalOrders = append(n.Edges.MedicalOrders, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPuncture; query != nil {
		if err := _q.loadPuncture(ctx, query, nodes, nil,
			func(n *Treatment, e *Puncture) { n.Edges.Puncture = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TreatmentQuery) loadPatient(ctx context.Context, query *PatientQuery, nodes []*Treatment, init func(*Treatment), assign func(*Treatment, *Patient)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Treatment)
	for i := range nodes {
		fk := nodes[i].PatientID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(patient.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "patient_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TreatmentQuery) loadDoctor(ctx context.Context, query *UserQuery, nodes []*Treatment, init func(*Treatment), assign func(*Treatment, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Treatment)
	for i := range nodes {
		fk := nodes[i].DoctorID
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
			return fmt.Errorf(`unexpected foreign-key "doctor_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TreatmentQuery) loadMonitoringDays(ctx context.Context, query *MonitoringDayQuery, nodes []*Treatment, init func(*Treatment), assign func(*Treatment, *MonitoringDay)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Treatment)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(monitoringday.FieldTreatmentID)
	}
	query.Where(predicate.MonitoringDay(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(treatment.MonitoringDaysColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TreatmentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "treatment_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TreatmentQuery) loadStudyResults(ctx context.Context, query *StudyResultQuery, nodes []*Treatment, init func(*Treatment), assign func(*Treatment, *StudyResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Treatment)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(studyresult.FieldTreatmentID)
	}
	query.Where(predicate.StudyResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(treatment.StudyResultsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TreatmentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "treatment_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TreatmentQuery) loadMedicalOrders(ctx context.Context, query *MedicalOrderQuery, nodes []*Treatment, init func(*Treatment), assign func(*Treatment, *MedicalOrder)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Treatment)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(medicalorder.FieldTreatmentID)
	}
	query.Where(predicate.MedicalOrder(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(treatment.MedicalOrdersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TreatmentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "treatment_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TreatmentQuery) loadPuncture(ctx context.Context, query *PunctureQuery, nodes []*Treatment, init func(*Treatment), assign func(*Treatment, *Puncture)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Treatment)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(puncture.FieldTreatmentID)
	}
	query.Where(predicate.Puncture(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(treatment.PunctureColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TreatmentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "treatment_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TreatmentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TreatmentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(treatment.Table, treatment.Columns, sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, treatment.FieldID)
		for i := range fields {
			if fields[i] != treatment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPatient != nil {
			_spec.Node.AddColumnOnce(treatment.FieldPatientID)
		}
		if _q.withDoctor != nil {
			_spec.Node.AddColumnOnce(treatment.FieldDoctorID)
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

func (_q *TreatmentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(treatment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = treatment.Columns
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

// TreatmentGroupBy is the group-by builder for Treatment entities.
type TreatmentGroupBy struct {
	selector
	build *TreatmentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TreatmentGroupBy) Aggregate(fns ...AggregateFunc) *TreatmentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TreatmentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TreatmentQuery, *TreatmentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TreatmentGroupBy) sqlScan(ctx context.Context, root *TreatmentQuery, v any) error {
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

// TreatmentSelect is the builder for selecting fields of Treatment entities.
type TreatmentSelect struct {
	*TreatmentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TreatmentSelect) Aggregate(fns ...AggregateFunc) *TreatmentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TreatmentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TreatmentQuery, *TreatmentSelect](ctx, _s.TreatmentQuery, _s, _s.inters, v)
}

func (_s *TreatmentSelect) sqlScan(ctx context.Context, root *TreatmentQuery, v any) error {
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
