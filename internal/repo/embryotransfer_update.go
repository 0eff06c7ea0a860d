// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryotransfer"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// EmbryoTransferUpdate is the builder for updating EmbryoTransfer entities.
type EmbryoTransferUpdate struct {
	config
	hooks    []Hook
	mutation *EmbryoTransferMutation
}

// Where appends a list predicates to the EmbryoTransferUpdate builder.
func (_u *EmbryoTransferUpdate) Where(ps ...predicate.EmbryoTransfer) *EmbryoTransferUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmbryoTransferUpdate) SetUpdatedAt(v time.Time) *EmbryoTransferUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmbryoID sets the "embryo_id" field.
func (_u *EmbryoTransferUpdate) SetEmbryoID(v uuid.UUID) *EmbryoTransferUpdate {
	_u.mutation.SetEmbryoID(v)
	return _u
}

// SetNillableEmbryoID sets the "embryo_id" field if the given value is not nil.
func (_u *EmbryoTransferUpdate) SetNillableEmbryoID(v *uuid.UUID) *EmbryoTransferUpdate {
	if v != nil {
		_u.SetEmbryoID(*v)
	}
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *EmbryoTransferUpdate) SetScheduledDate(v time.Time) *EmbryoTransferUpdate {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *EmbryoTransferUpdate) SetNillableScheduledDate(v *time.Time) *EmbryoTransferUpdate {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// SetPerformedDate sets the "performed_date" field.
func (_u *EmbryoTransferUpdate) SetPerformedDate(v time.Time) *EmbryoTransferUpdate {
	_u.mutation.SetPerformedDate(v)
	return _u
}

// SetNillablePerformedDate sets the "performed_date" field if the given value is not nil.
func (_u *EmbryoTransferUpdate) SetNillablePerformedDate(v *time.Time) *EmbryoTransferUpdate {
	if v != nil {
		_u.SetPerformedDate(*v)
	}
	return _u
}

// ClearPerformedDate clears the value of the "performed_date" field.
func (_u *EmbryoTransferUpdate) ClearPerformedDate() *EmbryoTransferUpdate {
	_u.mutation.ClearPerformedDate()
	return _u
}

// SetBetaPositive sets the "beta_positive" field.
func (_u *EmbryoTransferUpdate) SetBetaPositive(v bool) *EmbryoTransferUpdate {
	_u.mutation.SetBetaPositive(v)
	return _u
}

// SetNillableBetaPositive sets the "beta_positive" field if the given value is not nil.
func (_u *EmbryoTransferUpdate) SetNillableBetaPositive(v *bool) *EmbryoTransferUpdate {
	if v != nil {
		_u.SetBetaPositive(*v)
	}
	return _u
}

// ClearBetaPositive clears the value of the "beta_positive" field.
func (_u *EmbryoTransferUpdate) ClearBetaPositive() *EmbryoTransferUpdate {
	_u.mutation.ClearBetaPositive()
	return _u
}

// SetGestationalSac sets the "gestational_sac" field.
func (_u *EmbryoTransferUpdate) SetGestationalSac(v bool) *EmbryoTransferUpdate {
	_u.mutation.SetGestationalSac(v)
	return _u
}

// SetNillableGestationalSac sets the "gestational_sac" field if the given value is not nil.
func (_u *EmbryoTransferUpdate) SetNillableGestationalSac(v *bool) *EmbryoTransferUpdate {
	if v != nil {
		_u.SetGestationalSac(*v)
	}
	return _u
}

// ClearGestationalSac clears the value of the "gestational_sac" field.
func (_u *EmbryoTransferUpdate) ClearGestationalSac() *EmbryoTransferUpdate {
	_u.mutation.ClearGestationalSac()
	return _u
}

// SetClinicalPregnancy sets the "clinical_pregnancy" field.
func (_u *EmbryoTransferUpdate) SetClinicalPregnancy(v bool) *EmbryoTransferUpdate {
	_u.mutation.SetClinicalPregnancy(v)
	return _u
}

// SetNillableClinicalPregnancy sets the "clinical_pregnancy" field if the given value is not nil.
func (_u *EmbryoTransferUpdate) SetNillableClinicalPregnancy(v *bool) *EmbryoTransferUpdate {
	if v != nil {
		_u.SetClinicalPregnancy(*v)
	}
	return _u
}

// ClearClinicalPregnancy clears the value of the "clinical_pregnancy" field.
func (_u *EmbryoTransferUpdate) ClearClinicalPregnancy() *EmbryoTransferUpdate {
	_u.mutation.ClearClinicalPregnancy()
	return _u
}

// SetLiveBirth sets the "live_birth" field.
func (_u *EmbryoTransferUpdate) SetLiveBirth(v bool) *EmbryoTransferUpdate {
	_u.mutation.SetLiveBirth(v)
	return _u
}

// SetNillableLiveBirth sets the "live_birth" field if the given value is not nil.
func (_u *EmbryoTransferUpdate) SetNillableLiveBirth(v *bool) *EmbryoTransferUpdate {
	if v != nil {
		_u.SetLiveBirth(*v)
	}
	return _u
}

// ClearLiveBirth clears the value of the "live_birth" field.
func (_u *EmbryoTransferUpdate) ClearLiveBirth() *EmbryoTransferUpdate {
	_u.mutation.ClearLiveBirth()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EmbryoTransferUpdate) SetNotes(v string) *EmbryoTransferUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EmbryoTransferUpdate) SetNillableNotes(v *string) *EmbryoTransferUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EmbryoTransferUpdate) ClearNotes() *EmbryoTransferUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetEmbryo sets the "embryo" edge to the Embryo entity.
func (_u *EmbryoTransferUpdate) SetEmbryo(v *Embryo) *EmbryoTransferUpdate {
	return _u.SetEmbryoID(v.ID)
}

// Mutation returns the EmbryoTransferMutation object of the builder.
func (_u *EmbryoTransferUpdate) Mutation() *EmbryoTransferMutation {
	return _u.mutation
}

// ClearEmbryo clears the "embryo" edge to the Embryo entity.
func (_u *EmbryoTransferUpdate) ClearEmbryo() *EmbryoTransferUpdate {
	_u.mutation.ClearEmbryo()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmbryoTransferUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmbryoTransferUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmbryoTransferUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmbryoTransferUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmbryoTransferUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := embryotransfer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmbryoTransferUpdate) check() error {
	if _u.mutation.EmbryoCleared() && len(_u.mutation.EmbryoIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "EmbryoTransfer.embryo"`)
	}
	return nil
}

func (_u *EmbryoTransferUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(embryotransfer.Table, embryotransfer.Columns, sqlgraph.NewFieldSpec(embryotransfer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(embryotransfer.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(embryotransfer.FieldScheduledDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PerformedDate(); ok {
		_spec.SetField(embryotransfer.FieldPerformedDate, field.TypeTime, value)
	}
	if _u.mutation.PerformedDateCleared() {
		_spec.ClearField(embryotransfer.FieldPerformedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.BetaPositive(); ok {
		_spec.SetField(embryotransfer.FieldBetaPositive, field.TypeBool, value)
	}
	if _u.mutation.BetaPositiveCleared() {
		_spec.ClearField(embryotransfer.FieldBetaPositive, field.TypeBool)
	}
	if value, ok := _u.mutation.GestationalSac(); ok {
		_spec.SetField(embryotransfer.FieldGestationalSac, field.TypeBool, value)
	}
	if _u.mutation.GestationalSacCleared() {
		_spec.ClearField(embryotransfer.FieldGestationalSac, field.TypeBool)
	}
	if value, ok := _u.mutation.ClinicalPregnancy(); ok {
		_spec.SetField(embryotransfer.FieldClinicalPregnancy, field.TypeBool, value)
	}
	if _u.mutation.ClinicalPregnancyCleared() {
		_spec.ClearField(embryotransfer.FieldClinicalPregnancy, field.TypeBool)
	}
	if value, ok := _u.mutation.LiveBirth(); ok {
		_spec.SetField(embryotransfer.FieldLiveBirth, field.TypeBool, value)
	}
	if _u.mutation.LiveBirthCleared() {
		_spec.ClearField(embryotransfer.FieldLiveBirth, field.TypeBool)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(embryotransfer.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(embryotransfer.FieldNotes, field.TypeString)
	}
	if _u.mutation.EmbryoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   embryotransfer.EmbryoTable,
			Columns: []string{embryotransfer.EmbryoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmbryoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   embryotransfer.EmbryoTable,
			Columns: []string{embryotransfer.EmbryoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{embryotransfer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmbryoTransferUpdateOne is the builder for updating a single EmbryoTransfer entity.
type EmbryoTransferUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmbryoTransferMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmbryoTransferUpdateOne) SetUpdatedAt(v time.Time) *EmbryoTransferUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmbryoID sets the "embryo_id" field.
func (_u *EmbryoTransferUpdateOne) SetEmbryoID(v uuid.UUID) *EmbryoTransferUpdateOne {
	_u.mutation.SetEmbryoID(v)
	return _u
}

// SetNillableEmbryoID sets the "embryo_id" field if the given value is not nil.
func (_u *EmbryoTransferUpdateOne) SetNillableEmbryoID(v *uuid.UUID) *EmbryoTransferUpdateOne {
	if v != nil {
		_u.SetEmbryoID(*v)
	}
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *EmbryoTransferUpdateOne) SetScheduledDate(v time.Time) *EmbryoTransferUpdateOne {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *EmbryoTransferUpdateOne) SetNillableScheduledDate(v *time.Time) *EmbryoTransferUpdateOne {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// SetPerformedDate sets the "performed_date" field.
func (_u *EmbryoTransferUpdateOne) SetPerformedDate(v time.Time) *EmbryoTransferUpdateOne {
	_u.mutation.SetPerformedDate(v)
	return _u
}

// SetNillablePerformedDate sets the "performed_date" field if the given value is not nil.
func (_u *EmbryoTransferUpdateOne) SetNillablePerformedDate(v *time.Time) *EmbryoTransferUpdateOne {
	if v != nil {
		_u.SetPerformedDate(*v)
	}
	return _u
}

// ClearPerformedDate clears the value of the "performed_date" field.
func (_u *EmbryoTransferUpdateOne) ClearPerformedDate() *EmbryoTransferUpdateOne {
	_u.mutation.ClearPerformedDate()
	return _u
}

// SetBetaPositive sets the "beta_positive" field.
func (_u *EmbryoTransferUpdateOne) SetBetaPositive(v bool) *EmbryoTransferUpdateOne {
	_u.mutation.SetBetaPositive(v)
	return _u
}

// SetNillableBetaPositive sets the "beta_positive" field if the given value is not nil.
func (_u *EmbryoTransferUpdateOne) SetNillableBetaPositive(v *bool) *EmbryoTransferUpdateOne {
	if v != nil {
		_u.SetBetaPositive(*v)
	}
	return _u
}

// ClearBetaPositive clears the value of the "beta_positive" field.
func (_u *EmbryoTransferUpdateOne) ClearBetaPositive() *EmbryoTransferUpdateOne {
	_u.mutation.ClearBetaPositive()
	return _u
}

// SetGestationalSac sets the "gestational_sac" field.
func (_u *EmbryoTransferUpdateOne) SetGestationalSac(v bool) *EmbryoTransferUpdateOne {
	_u.mutation.SetGestationalSac(v)
	return _u
}

// SetNillableGestationalSac sets the "gestational_sac" field if the given value is not nil.
func (_u *EmbryoTransferUpdateOne) SetNillableGestationalSac(v *bool) *EmbryoTransferUpdateOne {
	if v != nil {
		_u.SetGestationalSac(*v)
	}
	return _u
}

// ClearGestationalSac clears the value of the "gestational_sac" field.
func (_u *EmbryoTransferUpdateOne) ClearGestationalSac() *EmbryoTransferUpdateOne {
	_u.mutation.ClearGestationalSac()
	return _u
}

// SetClinicalPregnancy sets the "clinical_pregnancy" field.
func (_u *EmbryoTransferUpdateOne) SetClinicalPregnancy(v bool) *EmbryoTransferUpdateOne {
	_u.mutation.SetClinicalPregnancy(v)
	return _u
}

// SetNillableClinicalPregnancy sets the "clinical_pregnancy" field if the given value is not nil.
func (_u *EmbryoTransferUpdateOne) SetNillableClinicalPregnancy(v *bool) *EmbryoTransferUpdateOne {
	if v != nil {
		_u.SetClinicalPregnancy(*v)
	}
	return _u
}

// ClearClinicalPregnancy clears the value of the "clinical_pregnancy" field.
func (_u *EmbryoTransferUpdateOne) ClearClinicalPregnancy() *EmbryoTransferUpdateOne {
	_u.mutation.ClearClinicalPregnancy()
	return _u
}

// SetLiveBirth sets the "live_birth" field.
func (_u *EmbryoTransferUpdateOne) SetLiveBirth(v bool) *EmbryoTransferUpdateOne {
	_u.mutation.SetLiveBirth(v)
	return _u
}

// SetNillableLiveBirth sets the "live_birth" field if the given value is not nil.
func (_u *EmbryoTransferUpdateOne) SetNillableLiveBirth(v *bool) *EmbryoTransferUpdateOne {
	if v != nil {
		_u.SetLiveBirth(*v)
	}
	return _u
}

// ClearLiveBirth clears the value of the "live_birth" field.
func (_u *EmbryoTransferUpdateOne) ClearLiveBirth() *EmbryoTransferUpdateOne {
	_u.mutation.ClearLiveBirth()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EmbryoTransferUpdateOne) SetNotes(v string) *EmbryoTransferUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EmbryoTransferUpdateOne) SetNillableNotes(v *string) *EmbryoTransferUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EmbryoTransferUpdateOne) ClearNotes() *EmbryoTransferUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetEmbryo sets the "embryo" edge to the Embryo entity.
func (_u *EmbryoTransferUpdateOne) SetEmbryo(v *Embryo) *EmbryoTransferUpdateOne {
	return _u.SetEmbryoID(v.ID)
}

// Mutation returns the EmbryoTransferMutation object of the builder.
func (_u *EmbryoTransferUpdateOne) Mutation() *EmbryoTransferMutation {
	return _u.mutation
}

// ClearEmbryo clears the "embryo" edge to the Embryo entity.
func (_u *EmbryoTransferUpdateOne) ClearEmbryo() *EmbryoTransferUpdateOne {
	_u.mutation.ClearEmbryo()
	return _u
}

// Where appends a list predicates to the EmbryoTransferUpdate builder.
func (_u *EmbryoTransferUpdateOne) Where(ps ...predicate.EmbryoTransfer) *EmbryoTransferUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmbryoTransferUpdateOne) Select(field string, fields ...string) *EmbryoTransferUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmbryoTransfer entity.
func (_u *EmbryoTransferUpdateOne) Save(ctx context.Context) (*EmbryoTransfer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmbryoTransferUpdateOne) SaveX(ctx context.Context) *EmbryoTransfer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmbryoTransferUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmbryoTransferUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmbryoTransferUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := embryotransfer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmbryoTransferUpdateOne) check() error {
	if _u.mutation.EmbryoCleared() && len(_u.mutation.EmbryoIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "EmbryoTransfer.embryo"`)
	}
	return nil
}

func (_u *EmbryoTransferUpdateOne) sqlSave(ctx context.Context) (_node *EmbryoTransfer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(embryotransfer.Table, embryotransfer.Columns, sqlgraph.NewFieldSpec(embryotransfer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "EmbryoTransfer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, embryotransfer.FieldID)
		for _, f := range fields {
			if !embryotransfer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != embryotransfer.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(embryotransfer.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(embryotransfer.FieldScheduledDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PerformedDate(); ok {
		_spec.SetField(embryotransfer.FieldPerformedDate, field.TypeTime, value)
	}
	if _u.mutation.PerformedDateCleared() {
		_spec.ClearField(embryotransfer.FieldPerformedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.BetaPositive(); ok {
		_spec.SetField(embryotransfer.FieldBetaPositive, field.TypeBool, value)
	}
	if _u.mutation.BetaPositiveCleared() {
		_spec.ClearField(embryotransfer.FieldBetaPositive, field.TypeBool)
	}
	if value, ok := _u.mutation.GestationalSac(); ok {
		_spec.SetField(embryotransfer.FieldGestationalSac, field.TypeBool, value)
	}
	if _u.mutation.GestationalSacCleared() {
		_spec.ClearField(embryotransfer.FieldGestationalSac, field.TypeBool)
	}
	if value, ok := _u.mutation.ClinicalPregnancy(); ok {
		_spec.SetField(embryotransfer.FieldClinicalPregnancy, field.TypeBool, value)
	}
	if _u.mutation.ClinicalPregnancyCleared() {
		_spec.ClearField(embryotransfer.FieldClinicalPregnancy, field.TypeBool)
	}
	if value, ok := _u.mutation.LiveBirth(); ok {
		_spec.SetField(embryotransfer.FieldLiveBirth, field.TypeBool, value)
	}
	if _u.mutation.LiveBirthCleared() {
		_spec.ClearField(embryotransfer.FieldLiveBirth, field.TypeBool)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(embryotransfer.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(embryotransfer.FieldNotes, field.TypeString)
	}
	if _u.mutation.EmbryoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   embryotransfer.EmbryoTable,
			Columns: []string{embryotransfer.EmbryoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmbryoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   embryotransfer.EmbryoTable,
			Columns: []string{embryotransfer.EmbryoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EmbryoTransfer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{embryotransfer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
