// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/studyresult"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/google/uuid"
)

// StudyResultUpdate is the builder for updating StudyResult entities.
type StudyResultUpdate struct {
	config
	hooks    []Hook
	mutation *StudyResultMutation
}

// Where appends a list predicates to the StudyResultUpdate builder.
func (_u *StudyResultUpdate) Where(ps ...predicate.StudyResult) *StudyResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *StudyResultUpdate) SetTreatmentID(v uuid.UUID) *StudyResultUpdate {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *StudyResultUpdate) SetNillableTreatmentID(v *uuid.UUID) *StudyResultUpdate {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// SetStudyType sets the "study_type" field.
func (_u *StudyResultUpdate) SetStudyType(v string) *StudyResultUpdate {
	_u.mutation.SetStudyType(v)
	return _u
}

// SetNillableStudyType sets the "study_type" field if the given value is not nil.
func (_u *StudyResultUpdate) SetNillableStudyType(v *string) *StudyResultUpdate {
	if v != nil {
		_u.SetStudyType(*v)
	}
	return _u
}

// SetStudyName sets the "study_name" field.
func (_u *StudyResultUpdate) SetStudyName(v string) *StudyResultUpdate {
	_u.mutation.SetStudyName(v)
	return _u
}

// SetNillableStudyName sets the "study_name" field if the given value is not nil.
func (_u *StudyResultUpdate) SetNillableStudyName(v *string) *StudyResultUpdate {
	if v != nil {
		_u.SetStudyName(*v)
	}
	return _u
}

// SetResultFileKey sets the "result_file_key" field.
func (_u *StudyResultUpdate) SetResultFileKey(v string) *StudyResultUpdate {
	_u.mutation.SetResultFileKey(v)
	return _u
}

// SetNillableResultFileKey sets the "result_file_key" field if the given value is not nil.
func (_u *StudyResultUpdate) SetNillableResultFileKey(v *string) *StudyResultUpdate {
	if v != nil {
		_u.SetResultFileKey(*v)
	}
	return _u
}

// ClearResultFileKey clears the value of the "result_file_key" field.
func (_u *StudyResultUpdate) ClearResultFileKey() *StudyResultUpdate {
	_u.mutation.ClearResultFileKey()
	return _u
}

// SetResultText sets the "result_text" field.
func (_u *StudyResultUpdate) SetResultText(v string) *StudyResultUpdate {
	_u.mutation.SetResultText(v)
	return _u
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_u *StudyResultUpdate) SetNillableResultText(v *string) *StudyResultUpdate {
	if v != nil {
		_u.SetResultText(*v)
	}
	return _u
}

// ClearResultText clears the value of the "result_text" field.
func (_u *StudyResultUpdate) ClearResultText() *StudyResultUpdate {
	_u.mutation.ClearResultText()
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *StudyResultUpdate) SetTreatment(v *Treatment) *StudyResultUpdate {
	return _u.SetTreatmentID(v.ID)
}

// Mutation returns the StudyResultMutation object of the builder.
func (_u *StudyResultUpdate) Mutation() *StudyResultMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *StudyResultUpdate) ClearTreatment() *StudyResultUpdate {
	_u.mutation.ClearTreatment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyResultUpdate) check() error {
	if v, ok := _u.mutation.StudyType(); ok {
		if err := studyresult.StudyTypeValidator(v); err != nil {
			return &ValidationError{Name: "study_type", err: fmt.Errorf(`repo: validator failed for field "StudyResult.study_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudyName(); ok {
		if err := studyresult.StudyNameValidator(v); err != nil {
			return &ValidationError{Name: "study_name", err: fmt.Errorf(`repo: validator failed for field "StudyResult.study_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultFileKey(); ok {
		if err := studyresult.ResultFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "result_file_key", err: fmt.Errorf(`repo: validator failed for field "StudyResult.result_file_key": %w`, err)}
		}
	}
	if _u.mutation.TreatmentCleared() && len(_u.mutation.TreatmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StudyResult.treatment"`)
	}
	return nil
}

func (_u *StudyResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyresult.Table, studyresult.Columns, sqlgraph.NewFieldSpec(studyresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudyType(); ok {
		_spec.SetField(studyresult.FieldStudyType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyName(); ok {
		_spec.SetField(studyresult.FieldStudyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultFileKey(); ok {
		_spec.SetField(studyresult.FieldResultFileKey, field.TypeString, value)
	}
	if _u.mutation.ResultFileKeyCleared() {
		_spec.ClearField(studyresult.FieldResultFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.ResultText(); ok {
		_spec.SetField(studyresult.FieldResultText, field.TypeString, value)
	}
	if _u.mutation.ResultTextCleared() {
		_spec.ClearField(studyresult.FieldResultText, field.TypeString)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studyresult.TreatmentTable,
			Columns: []string{studyresult.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studyresult.TreatmentTable,
			Columns: []string{studyresult.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyResultUpdateOne is the builder for updating a single StudyResult entity.
type StudyResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyResultMutation
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *StudyResultUpdateOne) SetTreatmentID(v uuid.UUID) *StudyResultUpdateOne {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *StudyResultUpdateOne) SetNillableTreatmentID(v *uuid.UUID) *StudyResultUpdateOne {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// SetStudyType sets the "study_type" field.
func (_u *StudyResultUpdateOne) SetStudyType(v string) *StudyResultUpdateOne {
	_u.mutation.SetStudyType(v)
	return _u
}

// SetNillableStudyType sets the "study_type" field if the given value is not nil.
func (_u *StudyResultUpdateOne) SetNillableStudyType(v *string) *StudyResultUpdateOne {
	if v != nil {
		_u.SetStudyType(*v)
	}
	return _u
}

// SetStudyName sets the "study_name" field.
func (_u *StudyResultUpdateOne) SetStudyName(v string) *StudyResultUpdateOne {
	_u.mutation.SetStudyName(v)
	return _u
}

// SetNillableStudyName sets the "study_name" field if the given value is not nil.
func (_u *StudyResultUpdateOne) SetNillableStudyName(v *string) *StudyResultUpdateOne {
	if v != nil {
		_u.SetStudyName(*v)
	}
	return _u
}

// SetResultFileKey sets the "result_file_key" field.
func (_u *StudyResultUpdateOne) SetResultFileKey(v string) *StudyResultUpdateOne {
	_u.mutation.SetResultFileKey(v)
	return _u
}

// SetNillableResultFileKey sets the "result_file_key" field if the given value is not nil.
func (_u *StudyResultUpdateOne) SetNillableResultFileKey(v *string) *StudyResultUpdateOne {
	if v != nil {
		_u.SetResultFileKey(*v)
	}
	return _u
}

// ClearResultFileKey clears the value of the "result_file_key" field.
func (_u *StudyResultUpdateOne) ClearResultFileKey() *StudyResultUpdateOne {
	_u.mutation.ClearResultFileKey()
	return _u
}

// SetResultText sets the "result_text" field.
func (_u *StudyResultUpdateOne) SetResultText(v string) *StudyResultUpdateOne {
	_u.mutation.SetResultText(v)
	return _u
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_u *StudyResultUpdateOne) SetNillableResultText(v *string) *StudyResultUpdateOne {
	if v != nil {
		_u.SetResultText(*v)
	}
	return _u
}

// ClearResultText clears the value of the "result_text" field.
func (_u *StudyResultUpdateOne) ClearResultText() *StudyResultUpdateOne {
	_u.mutation.ClearResultText()
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *StudyResultUpdateOne) SetTreatment(v *Treatment) *StudyResultUpdateOne {
	return _u.SetTreatmentID(v.ID)
}

// Mutation returns the StudyResultMutation object of the builder.
func (_u *StudyResultUpdateOne) Mutation() *StudyResultMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *StudyResultUpdateOne) ClearTreatment() *StudyResultUpdateOne {
	_u.mutation.ClearTreatment()
	return _u
}

// Where appends a list predicates to the StudyResultUpdate builder.
func (_u *StudyResultUpdateOne) Where(ps ...predicate.StudyResult) *StudyResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyResultUpdateOne) Select(field string, fields ...string) *StudyResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyResult entity.
func (_u *StudyResultUpdateOne) Save(ctx context.Context) (*StudyResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyResultUpdateOne) SaveX(ctx context.Context) *StudyResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyResultUpdateOne) check() error {
	if v, ok := _u.mutation.StudyType(); ok {
		if err := studyresult.StudyTypeValidator(v); err != nil {
			return &ValidationError{Name: "study_type", err: fmt.Errorf(`repo: validator failed for field "StudyResult.study_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudyName(); ok {
		if err := studyresult.StudyNameValidator(v); err != nil {
			return &ValidationError{Name: "study_name", err: fmt.Errorf(`repo: validator failed for field "StudyResult.study_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultFileKey(); ok {
		if err := studyresult.ResultFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "result_file_key", err: fmt.Errorf(`repo: validator failed for field "StudyResult.result_file_key": %w`, err)}
		}
	}
	if _u.mutation.TreatmentCleared() && len(_u.mutation.TreatmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StudyResult.treatment"`)
	}
	return nil
}

func (_u *StudyResultUpdateOne) sqlSave(ctx context.Context) (_node *StudyResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyresult.Table, studyresult.Columns, sqlgraph.NewFieldSpec(studyresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "StudyResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyresult.FieldID)
		for _, f := range fields {
			if !studyresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != studyresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudyType(); ok {
		_spec.SetField(studyresult.FieldStudyType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyName(); ok {
		_spec.SetField(studyresult.FieldStudyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultFileKey(); ok {
		_spec.SetField(studyresult.FieldResultFileKey, field.TypeString, value)
	}
	if _u.mutation.ResultFileKeyCleared() {
		_spec.ClearField(studyresult.FieldResultFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.ResultText(); ok {
		_spec.SetField(studyresult.FieldResultText, field.TypeString, value)
	}
	if _u.mutation.ResultTextCleared() {
		_spec.ClearField(studyresult.FieldResultText, field.TypeString)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studyresult.TreatmentTable,
			Columns: []string{studyresult.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studyresult.TreatmentTable,
			Columns: []string{studyresult.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StudyResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
