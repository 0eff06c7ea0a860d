// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/google/uuid"
)

// OocyteCreate is the builder for creating a Oocyte entity.
type OocyteCreate struct {
	config
	mutation *OocyteMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *OocyteCreate) SetCreatedAt(v time.Time) *OocyteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OocyteCreate) SetNillableCreatedAt(v *time.Time) *OocyteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OocyteCreate) SetUpdatedAt(v time.Time) *OocyteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OocyteCreate) SetNillableUpdatedAt(v *time.Time) *OocyteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPunctureID sets the "puncture_id" field.
func (_c *OocyteCreate) SetPunctureID(v uuid.UUID) *OocyteCreate {
	_c.mutation.SetPunctureID(v)
	return _c
}

// SetOocyteCode sets the "oocyte_code" field.
func (_c *OocyteCreate) SetOocyteCode(v string) *OocyteCreate {
	_c.mutation.SetOocyteCode(v)
	return _c
}

// SetInitialState sets the "initial_state" field.
func (_c *OocyteCreate) SetInitialState(v oocyte.InitialState) *OocyteCreate {
	_c.mutation.SetInitialState(v)
	return _c
}

// SetCurrentState sets the "current_state" field.
func (_c *OocyteCreate) SetCurrentState(v oocyte.CurrentState) *OocyteCreate {
	_c.mutation.SetCurrentState(v)
	return _c
}

// SetMaturationTimeHours sets the "maturation_time_hours" field.
func (_c *OocyteCreate) SetMaturationTimeHours(v int) *OocyteCreate {
	_c.mutation.SetMaturationTimeHours(v)
	return _c
}

// SetNillableMaturationTimeHours sets the "maturation_time_hours" field if the given value is not nil.
func (_c *OocyteCreate) SetNillableMaturationTimeHours(v *int) *OocyteCreate {
	if v != nil {
		_c.SetMaturationTimeHours(*v)
	}
	return _c
}

// SetDiscardReason sets the "discard_reason" field.
func (_c *OocyteCreate) SetDiscardReason(v string) *OocyteCreate {
	_c.mutation.SetDiscardReason(v)
	return _c
}

// SetNillableDiscardReason sets the "discard_reason" field if the given value is not nil.
func (_c *OocyteCreate) SetNillableDiscardReason(v *string) *OocyteCreate {
	if v != nil {
		_c.SetDiscardReason(*v)
	}
	return _c
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (_c *OocyteCreate) SetNitrogenTube(v string) *OocyteCreate {
	_c.mutation.SetNitrogenTube(v)
	return _c
}

// SetNillableNitrogenTube sets the "nitrogen_tube" field if the given value is not nil.
func (_c *OocyteCreate) SetNillableNitrogenTube(v *string) *OocyteCreate {
	if v != nil {
		_c.SetNitrogenTube(*v)
	}
	return _c
}

// SetRackNumber sets the "rack_number" field.
func (_c *OocyteCreate) SetRackNumber(v string) *OocyteCreate {
	_c.mutation.SetRackNumber(v)
	return _c
}

// SetNillableRackNumber sets the "rack_number" field if the given value is not nil.
func (_c *OocyteCreate) SetNillableRackNumber(v *string) *OocyteCreate {
	if v != nil {
		_c.SetRackNumber(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OocyteCreate) SetID(v uuid.UUID) *OocyteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OocyteCreate) SetNillableID(v *uuid.UUID) *OocyteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPuncture sets the "puncture" edge to the Puncture entity.
func (_c *OocyteCreate) SetPuncture(v *Puncture) *OocyteCreate {
	return _c.SetPunctureID(v.ID)
}

// AddStateHistoryIDs adds the "state_history" edge to the OocyteStateHistory entity by IDs.
func (_c *OocyteCreate) AddStateHistoryIDs(ids ...uuid.UUID) *OocyteCreate {
	_c.mutation.AddStateHistoryIDs(ids...)
	return _c
}

// AddStateHistory adds the "state_history" edges to the OocyteStateHistory entity.
func (_c *OocyteCreate) AddStateHistory(v ...*OocyteStateHistory) *OocyteCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStateHistoryIDs(ids...)
}

// SetEmbryoID sets the "embryo" edge to the Embryo entity by ID.
func (_c *OocyteCreate) SetEmbryoID(id uuid.UUID) *OocyteCreate {
	_c.mutation.SetEmbryoID(id)
	return _c
}

// SetNillableEmbryoID sets the "embryo" edge to the Embryo entity by ID if the given value is not nil.
func (_c *OocyteCreate) SetNillableEmbryoID(id *uuid.UUID) *OocyteCreate {
	if id != nil {
		_c = _c.SetEmbryoID(*id)
	}
	return _c
}

// SetEmbryo sets the "embryo" edge to the Embryo entity.
func (_c *OocyteCreate) SetEmbryo(v *Embryo) *OocyteCreate {
	return _c.SetEmbryoID(v.ID)
}

// Mutation returns the OocyteMutation object of the builder.
func (_c *OocyteCreate) Mutation() *OocyteMutation {
	return _c.mutation
}

// Save creates the Oocyte in the database.
func (_c *OocyteCreate) Save(ctx context.Context) (*Oocyte, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OocyteCreate) SaveX(ctx context.Context) *Oocyte {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OocyteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OocyteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OocyteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := oocyte.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := oocyte.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := oocyte.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OocyteCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Oocyte.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Oocyte.updated_at"`)}
	}
	if _, ok := _c.mutation.PunctureID(); !ok {
		return &ValidationError{Name: "puncture_id", err: errors.New(`repo: missing required field "Oocyte.puncture_id"`)}
	}
	if _, ok := _c.mutation.OocyteCode(); !ok {
		return &ValidationError{Name: "oocyte_code", err: errors.New(`repo: missing required field "Oocyte.oocyte_code"`)}
	}
	if v, ok := _c.mutation.OocyteCode(); ok {
		if err := oocyte.OocyteCodeValidator(v); err != nil {
			return &ValidationError{Name: "oocyte_code", err: fmt.Errorf(`repo: validator failed for field "Oocyte.oocyte_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InitialState(); !ok {
		return &ValidationError{Name: "initial_state", err: errors.New(`repo: missing required field "Oocyte.initial_state"`)}
	}
	if v, ok := _c.mutation.InitialState(); ok {
		if err := oocyte.InitialStateValidator(v); err != nil {
			return &ValidationError{Name: "initial_state", err: fmt.Errorf(`repo: validator failed for field "Oocyte.initial_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentState(); !ok {
		return &ValidationError{Name: "current_state", err: errors.New(`repo: missing required field "Oocyte.current_state"`)}
	}
	if v, ok := _c.mutation.CurrentState(); ok {
		if err := oocyte.CurrentStateValidator(v); err != nil {
			return &ValidationError{Name: "current_state", err: fmt.Errorf(`repo: validator failed for field "Oocyte.current_state": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NitrogenTube(); ok {
		if err := oocyte.NitrogenTubeValidator(v); err != nil {
			return &ValidationError{Name: "nitrogen_tube", err: fmt.Errorf(`repo: validator failed for field "Oocyte.nitrogen_tube": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RackNumber(); ok {
		if err := oocyte.RackNumberValidator(v); err != nil {
			return &ValidationError{Name: "rack_number", err: fmt.Errorf(`repo: validator failed for field "Oocyte.rack_number": %w`, err)}
		}
	}
	if len(_c.mutation.PunctureIDs()) == 0 {
		return &ValidationError{Name: "puncture", err: errors.New(`repo: missing required edge "Oocyte.puncture"`)}
	}
	return nil
}

func (_c *OocyteCreate) sqlSave(ctx context.Context) (*Oocyte, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OocyteCreate) createSpec() (*Oocyte, *sqlgraph.CreateSpec) {
	var (
		_node = &Oocyte{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(oocyte.Table, sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(oocyte.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(oocyte.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OocyteCode(); ok {
		_spec.SetField(oocyte.FieldOocyteCode, field.TypeString, value)
		_node.OocyteCode = value
	}
	if value, ok := _c.mutation.InitialState(); ok {
		_spec.SetField(oocyte.FieldInitialState, field.TypeEnum, value)
		_node.InitialState = value
	}
	if value, ok := _c.mutation.CurrentState(); ok {
		_spec.SetField(oocyte.FieldCurrentState, field.TypeEnum, value)
		_node.CurrentState = value
	}
	if value, ok := _c.mutation.MaturationTimeHours(); ok {
		_spec.SetField(oocyte.FieldMaturationTimeHours, field.TypeInt, value)
		_node.MaturationTimeHours = &value
	}
	if value, ok := _c.mutation.DiscardReason(); ok {
		_spec.SetField(oocyte.FieldDiscardReason, field.TypeString, value)
		_node.DiscardReason = &value
	}
	if value, ok := _c.mutation.NitrogenTube(); ok {
		_spec.SetField(oocyte.FieldNitrogenTube, field.TypeString, value)
		_node.NitrogenTube = &value
	}
	if value, ok := _c.mutation.RackNumber(); ok {
		_spec.SetField(oocyte.FieldRackNumber, field.TypeString, value)
		_node.RackNumber = &value
	}
	if nodes := _c.mutation.PunctureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   oocyte.PunctureTable,
			Columns: []string{oocyte.PunctureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(puncture.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PunctureID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StateHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   oocyte.StateHistoryTable,
			Columns: []string{oocyte.StateHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EmbryoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   oocyte.EmbryoTable,
			Columns: []string{oocyte.EmbryoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Oocyte.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OocyteUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OocyteCreate) OnConflict(opts ...sql.ConflictOption) *OocyteUpsertOne {
	_c.conflict = opts
	return &OocyteUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Oocyte.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OocyteCreate) OnConflictColumns(columns ...string) *OocyteUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OocyteUpsertOne{
		create: _c,
	}
}

type (
	// OocyteUpsertOne is the builder for "upsert"-ing
	//  one Oocyte node.
	OocyteUpsertOne struct {
		create *OocyteCreate
	}

	// OocyteUpsert is the "OnConflict" setter.
	OocyteUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *OocyteUpsert) SetUpdatedAt(v time.Time) *OocyteUpsert {
	u.Set(oocyte.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OocyteUpsert) UpdateUpdatedAt() *OocyteUpsert {
	u.SetExcluded(oocyte.FieldUpdatedAt)
	return u
}

// SetPunctureID sets the "puncture_id" field.
func (u *OocyteUpsert) SetPunctureID(v uuid.UUID) *OocyteUpsert {
	u.Set(oocyte.FieldPunctureID, v)
	return u
}

// UpdatePunctureID sets the "puncture_id" field to the value that was provided on create.
func (u *OocyteUpsert) UpdatePunctureID() *OocyteUpsert {
	u.SetExcluded(oocyte.FieldPunctureID)
	return u
}

// SetOocyteCode sets the "oocyte_code" field.
func (u *OocyteUpsert) SetOocyteCode(v string) *OocyteUpsert {
	u.Set(oocyte.FieldOocyteCode, v)
	return u
}

// UpdateOocyteCode sets the "oocyte_code" field to the value that was provided on create.
func (u *OocyteUpsert) UpdateOocyteCode() *OocyteUpsert {
	u.SetExcluded(oocyte.FieldOocyteCode)
	return u
}

// SetCurrentState sets the "current_state" field.
func (u *OocyteUpsert) SetCurrentState(v oocyte.CurrentState) *OocyteUpsert {
	u.Set(oocyte.FieldCurrentState, v)
	return u
}

// UpdateCurrentState sets the "current_state" field to the value that was provided on create.
func (u *OocyteUpsert) UpdateCurrentState() *OocyteUpsert {
	u.SetExcluded(oocyte.FieldCurrentState)
	return u
}

// SetMaturationTimeHours sets the "maturation_time_hours" field.
func (u *OocyteUpsert) SetMaturationTimeHours(v int) *OocyteUpsert {
	u.Set(oocyte.FieldMaturationTimeHours, v)
	return u
}

// UpdateMaturationTimeHours sets the "maturation_time_hours" field to the value that was provided on create.
func (u *OocyteUpsert) UpdateMaturationTimeHours() *OocyteUpsert {
	u.SetExcluded(oocyte.FieldMaturationTimeHours)
	return u
}

// AddMaturationTimeHours adds v to the "maturation_time_hours" field.
func (u *OocyteUpsert) AddMaturationTimeHours(v int) *OocyteUpsert {
	u.Add(oocyte.FieldMaturationTimeHours, v)
	return u
}

// ClearMaturationTimeHours clears the value of the "maturation_time_hours" field.
func (u *OocyteUpsert) ClearMaturationTimeHours() *OocyteUpsert {
	u.SetNull(oocyte.FieldMaturationTimeHours)
	return u
}

// SetDiscardReason sets the "discard_reason" field.
func (u *OocyteUpsert) SetDiscardReason(v string) *OocyteUpsert {
	u.Set(oocyte.FieldDiscardReason, v)
	return u
}

// UpdateDiscardReason sets the "discard_reason" field to the value that was provided on create.
func (u *OocyteUpsert) UpdateDiscardReason() *OocyteUpsert {
	u.SetExcluded(oocyte.FieldDiscardReason)
	return u
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (u *OocyteUpsert) ClearDiscardReason() *OocyteUpsert {
	u.SetNull(oocyte.FieldDiscardReason)
	return u
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (u *OocyteUpsert) SetNitrogenTube(v string) *OocyteUpsert {
	u.Set(oocyte.FieldNitrogenTube, v)
	return u
}

// UpdateNitrogenTube sets the "nitrogen_tube" field to the value that was provided on create.
func (u *OocyteUpsert) UpdateNitrogenTube() *OocyteUpsert {
	u.SetExcluded(oocyte.FieldNitrogenTube)
	return u
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (u *OocyteUpsert) ClearNitrogenTube() *OocyteUpsert {
	u.SetNull(oocyte.FieldNitrogenTube)
	return u
}

// SetRackNumber sets the "rack_number" field.
func (u *OocyteUpsert) SetRackNumber(v string) *OocyteUpsert {
	u.Set(oocyte.FieldRackNumber, v)
	return u
}

// UpdateRackNumber sets the "rack_number" field to the value that was provided on create.
func (u *OocyteUpsert) UpdateRackNumber() *OocyteUpsert {
	u.SetExcluded(oocyte.FieldRackNumber)
	return u
}

// ClearRackNumber clears the value of the "rack_number" field.
func (u *OocyteUpsert) ClearRackNumber() *OocyteUpsert {
	u.SetNull(oocyte.FieldRackNumber)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Oocyte.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(oocyte.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OocyteUpsertOne) UpdateNewValues() *OocyteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(oocyte.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(oocyte.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.InitialState(); exists {
			s.SetIgnore(oocyte.FieldInitialState)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Oocyte.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OocyteUpsertOne) Ignore() *OocyteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OocyteUpsertOne) DoNothing() *OocyteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OocyteCreate.OnConflict
// documentation for more info.
func (u *OocyteUpsertOne) Update(set func(*OocyteUpsert)) *OocyteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OocyteUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OocyteUpsertOne) SetUpdatedAt(v time.Time) *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OocyteUpsertOne) UpdateUpdatedAt() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPunctureID sets the "puncture_id" field.
func (u *OocyteUpsertOne) SetPunctureID(v uuid.UUID) *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.SetPunctureID(v)
	})
}

// UpdatePunctureID sets the "puncture_id" field to the value that was provided on create.
func (u *OocyteUpsertOne) UpdatePunctureID() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdatePunctureID()
	})
}

// SetOocyteCode sets the "oocyte_code" field.
func (u *OocyteUpsertOne) SetOocyteCode(v string) *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.SetOocyteCode(v)
	})
}

// UpdateOocyteCode sets the "oocyte_code" field to the value that was provided on create.
func (u *OocyteUpsertOne) UpdateOocyteCode() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateOocyteCode()
	})
}

// SetCurrentState sets the "current_state" field.
func (u *OocyteUpsertOne) SetCurrentState(v oocyte.CurrentState) *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.SetCurrentState(v)
	})
}

// UpdateCurrentState sets the "current_state" field to the value that was provided on create.
func (u *OocyteUpsertOne) UpdateCurrentState() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateCurrentState()
	})
}

// SetMaturationTimeHours sets the "maturation_time_hours" field.
func (u *OocyteUpsertOne) SetMaturationTimeHours(v int) *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.SetMaturationTimeHours(v)
	})
}

// AddMaturationTimeHours adds v to the "maturation_time_hours" field.
func (u *OocyteUpsertOne) AddMaturationTimeHours(v int) *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.AddMaturationTimeHours(v)
	})
}

// UpdateMaturationTimeHours sets the "maturation_time_hours" field to the value that was provided on create.
func (u *OocyteUpsertOne) UpdateMaturationTimeHours() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateMaturationTimeHours()
	})
}

// ClearMaturationTimeHours clears the value of the "maturation_time_hours" field.
func (u *OocyteUpsertOne) ClearMaturationTimeHours() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.ClearMaturationTimeHours()
	})
}

// SetDiscardReason sets the "discard_reason" field.
func (u *OocyteUpsertOne) SetDiscardReason(v string) *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.SetDiscardReason(v)
	})
}

// UpdateDiscardReason sets the "discard_reason" field to the value that was provided on create.
func (u *OocyteUpsertOne) UpdateDiscardReason() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateDiscardReason()
	})
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (u *OocyteUpsertOne) ClearDiscardReason() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.ClearDiscardReason()
	})
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (u *OocyteUpsertOne) SetNitrogenTube(v string) *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.SetNitrogenTube(v)
	})
}

// UpdateNitrogenTube sets the "nitrogen_tube" field to the value that was provided on create.
func (u *OocyteUpsertOne) UpdateNitrogenTube() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateNitrogenTube()
	})
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (u *OocyteUpsertOne) ClearNitrogenTube() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.ClearNitrogenTube()
	})
}

// SetRackNumber sets the "rack_number" field.
func (u *OocyteUpsertOne) SetRackNumber(v string) *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.SetRackNumber(v)
	})
}

// UpdateRackNumber sets the "rack_number" field to the value that was provided on create.
func (u *OocyteUpsertOne) UpdateRackNumber() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateRackNumber()
	})
}

// ClearRackNumber clears the value of the "rack_number" field.
func (u *OocyteUpsertOne) ClearRackNumber() *OocyteUpsertOne {
	return u.Update(func(s *OocyteUpsert) {
		s.ClearRackNumber()
	})
}

// Exec executes the query.
func (u *OocyteUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OocyteCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OocyteUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OocyteUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: OocyteUpsertOne.ID is not supported by MySQL driver. Use OocyteUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OocyteUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OocyteCreateBulk is the builder for creating many Oocyte entities in bulk.
type OocyteCreateBulk struct {
	config
	err      error
	builders []*OocyteCreate
	conflict []sql.ConflictOption
}

// Save creates the Oocyte entities in the database.
func (_c *OocyteCreateBulk) Save(ctx context.Context) ([]*Oocyte, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Oocyte, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OocyteMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OocyteCreateBulk) SaveX(ctx context.Context) []*Oocyte {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OocyteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OocyteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Oocyte.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OocyteUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OocyteCreateBulk) OnConflict(opts ...sql.ConflictOption) *OocyteUpsertBulk {
	_c.conflict = opts
	return &OocyteUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Oocyte.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OocyteCreateBulk) OnConflictColumns(columns ...string) *OocyteUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OocyteUpsertBulk{
		create: _c,
	}
}

// OocyteUpsertBulk is the builder for "upsert"-ing
// a bulk of Oocyte nodes.
type OocyteUpsertBulk struct {
	create *OocyteCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Oocyte.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(oocyte.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OocyteUpsertBulk) UpdateNewValues() *OocyteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(oocyte.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(oocyte.FieldCreatedAt)
			}
			if _, exists := b.mutation.InitialState(); exists {
				s.SetIgnore(oocyte.FieldInitialState)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Oocyte.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OocyteUpsertBulk) Ignore() *OocyteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OocyteUpsertBulk) DoNothing() *OocyteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OocyteCreateBulk.OnConflict
// documentation for more info.
func (u *OocyteUpsertBulk) Update(set func(*OocyteUpsert)) *OocyteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OocyteUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OocyteUpsertBulk) SetUpdatedAt(v time.Time) *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OocyteUpsertBulk) UpdateUpdatedAt() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPunctureID sets the "puncture_id" field.
func (u *OocyteUpsertBulk) SetPunctureID(v uuid.UUID) *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.SetPunctureID(v)
	})
}

// UpdatePunctureID sets the "puncture_id" field to the value that was provided on create.
func (u *OocyteUpsertBulk) UpdatePunctureID() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdatePunctureID()
	})
}

// SetOocyteCode sets the "oocyte_code" field.
func (u *OocyteUpsertBulk) SetOocyteCode(v string) *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.SetOocyteCode(v)
	})
}

// UpdateOocyteCode sets the "oocyte_code" field to the value that was provided on create.
func (u *OocyteUpsertBulk) UpdateOocyteCode() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateOocyteCode()
	})
}

// SetCurrentState sets the "current_state" field.
func (u *OocyteUpsertBulk) SetCurrentState(v oocyte.CurrentState) *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.SetCurrentState(v)
	})
}

// UpdateCurrentState sets the "current_state" field to the value that was provided on create.
func (u *OocyteUpsertBulk) UpdateCurrentState() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateCurrentState()
	})
}

// SetMaturationTimeHours sets the "maturation_time_hours" field.
func (u *OocyteUpsertBulk) SetMaturationTimeHours(v int) *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.SetMaturationTimeHours(v)
	})
}

// AddMaturationTimeHours adds v to the "maturation_time_hours" field.
func (u *OocyteUpsertBulk) AddMaturationTimeHours(v int) *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.AddMaturationTimeHours(v)
	})
}

// UpdateMaturationTimeHours sets the "maturation_time_hours" field to the value that was provided on create.
func (u *OocyteUpsertBulk) UpdateMaturationTimeHours() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateMaturationTimeHours()
	})
}

// ClearMaturationTimeHours clears the value of the "maturation_time_hours" field.
func (u *OocyteUpsertBulk) ClearMaturationTimeHours() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.ClearMaturationTimeHours()
	})
}

// SetDiscardReason sets the "discard_reason" field.
func (u *OocyteUpsertBulk) SetDiscardReason(v string) *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.SetDiscardReason(v)
	})
}

// UpdateDiscardReason sets the "discard_reason" field to the value that was provided on create.
func (u *OocyteUpsertBulk) UpdateDiscardReason() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateDiscardReason()
	})
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (u *OocyteUpsertBulk) ClearDiscardReason() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.ClearDiscardReason()
	})
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (u *OocyteUpsertBulk) SetNitrogenTube(v string) *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.SetNitrogenTube(v)
	})
}

// UpdateNitrogenTube sets the "nitrogen_tube" field to the value that was provided on create.
func (u *OocyteUpsertBulk) UpdateNitrogenTube() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateNitrogenTube()
	})
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (u *OocyteUpsertBulk) ClearNitrogenTube() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.ClearNitrogenTube()
	})
}

// SetRackNumber sets the "rack_number" field.
func (u *OocyteUpsertBulk) SetRackNumber(v string) *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.SetRackNumber(v)
	})
}

// UpdateRackNumber sets the "rack_number" field to the value that was provided on create.
func (u *OocyteUpsertBulk) UpdateRackNumber() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.UpdateRackNumber()
	})
}

// ClearRackNumber clears the value of the "rack_number" field.
func (u *OocyteUpsertBulk) ClearRackNumber() *OocyteUpsertBulk {
	return u.Update(func(s *OocyteUpsert) {
		s.ClearRackNumber()
	})
}

// Exec executes the query.
func (u *OocyteUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the OocyteCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OocyteCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OocyteUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
