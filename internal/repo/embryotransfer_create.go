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
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryotransfer"
	"github.com/google/uuid"
)

// EmbryoTransferCreate is the builder for creating a EmbryoTransfer entity.
type EmbryoTransferCreate struct {
	config
	mutation *EmbryoTransferMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmbryoTransferCreate) SetCreatedAt(v time.Time) *EmbryoTransferCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmbryoTransferCreate) SetNillableCreatedAt(v *time.Time) *EmbryoTransferCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmbryoTransferCreate) SetUpdatedAt(v time.Time) *EmbryoTransferCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmbryoTransferCreate) SetNillableUpdatedAt(v *time.Time) *EmbryoTransferCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEmbryoID sets the "embryo_id" field.
func (_c *EmbryoTransferCreate) SetEmbryoID(v uuid.UUID) *EmbryoTransferCreate {
	_c.mutation.SetEmbryoID(v)
	return _c
}

// SetScheduledDate sets the "scheduled_date" field.
func (_c *EmbryoTransferCreate) SetScheduledDate(v time.Time) *EmbryoTransferCreate {
	_c.mutation.SetScheduledDate(v)
	return _c
}

// SetPerformedDate sets the "performed_date" field.
func (_c *EmbryoTransferCreate) SetPerformedDate(v time.Time) *EmbryoTransferCreate {
	_c.mutation.SetPerformedDate(v)
	return _c
}

// SetNillablePerformedDate sets the "performed_date" field if the given value is not nil.
func (_c *EmbryoTransferCreate) SetNillablePerformedDate(v *time.Time) *EmbryoTransferCreate {
	if v != nil {
		_c.SetPerformedDate(*v)
	}
	return _c
}

// SetBetaPositive sets the "beta_positive" field.
func (_c *EmbryoTransferCreate) SetBetaPositive(v bool) *EmbryoTransferCreate {
	_c.mutation.SetBetaPositive(v)
	return _c
}

// SetNillableBetaPositive sets the "beta_positive" field if the given value is not nil.
func (_c *EmbryoTransferCreate) SetNillableBetaPositive(v *bool) *EmbryoTransferCreate {
	if v != nil {
		_c.SetBetaPositive(*v)
	}
	return _c
}

// SetGestationalSac sets the "gestational_sac" field.
func (_c *EmbryoTransferCreate) SetGestationalSac(v bool) *EmbryoTransferCreate {
	_c.mutation.SetGestationalSac(v)
	return _c
}

// SetNillableGestationalSac sets the "gestational_sac" field if the given value is not nil.
func (_c *EmbryoTransferCreate) SetNillableGestationalSac(v *bool) *EmbryoTransferCreate {
	if v != nil {
		_c.SetGestationalSac(*v)
	}
	return _c
}

// SetClinicalPregnancy sets the "clinical_pregnancy" field.
func (_c *EmbryoTransferCreate) SetClinicalPregnancy(v bool) *EmbryoTransferCreate {
	_c.mutation.SetClinicalPregnancy(v)
	return _c
}

// SetNillableClinicalPregnancy sets the "clinical_pregnancy" field if the given value is not nil.
func (_c *EmbryoTransferCreate) SetNillableClinicalPregnancy(v *bool) *EmbryoTransferCreate {
	if v != nil {
		_c.SetClinicalPregnancy(*v)
	}
	return _c
}

// SetLiveBirth sets the "live_birth" field.
func (_c *EmbryoTransferCreate) SetLiveBirth(v bool) *EmbryoTransferCreate {
	_c.mutation.SetLiveBirth(v)
	return _c
}

// SetNillableLiveBirth sets the "live_birth" field if the given value is not nil.
func (_c *EmbryoTransferCreate) SetNillableLiveBirth(v *bool) *EmbryoTransferCreate {
	if v != nil {
		_c.SetLiveBirth(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *EmbryoTransferCreate) SetNotes(v string) *EmbryoTransferCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *EmbryoTransferCreate) SetNillableNotes(v *string) *EmbryoTransferCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmbryoTransferCreate) SetID(v uuid.UUID) *EmbryoTransferCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmbryoTransferCreate) SetNillableID(v *uuid.UUID) *EmbryoTransferCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEmbryo sets the "embryo" edge to the Embryo entity.
func (_c *EmbryoTransferCreate) SetEmbryo(v *Embryo) *EmbryoTransferCreate {
	return _c.SetEmbryoID(v.ID)
}

// Mutation returns the EmbryoTransferMutation object of the builder.
func (_c *EmbryoTransferCreate) Mutation() *EmbryoTransferMutation {
	return _c.mutation
}

// Save creates the EmbryoTransfer in the database.
func (_c *EmbryoTransferCreate) Save(ctx context.Context) (*EmbryoTransfer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmbryoTransferCreate) SaveX(ctx context.Context) *EmbryoTransfer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmbryoTransferCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmbryoTransferCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmbryoTransferCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := embryotransfer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := embryotransfer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := embryotransfer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmbryoTransferCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "EmbryoTransfer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "EmbryoTransfer.updated_at"`)}
	}
	if _, ok := _c.mutation.EmbryoID(); !ok {
		return &ValidationError{Name: "embryo_id", err: errors.New(`repo: missing required field "EmbryoTransfer.embryo_id"`)}
	}
	if _, ok := _c.mutation.ScheduledDate(); !ok {
		return &ValidationError{Name: "scheduled_date", err: errors.New(`repo: missing required field "EmbryoTransfer.scheduled_date"`)}
	}
	if len(_c.mutation.EmbryoIDs()) == 0 {
		return &ValidationError{Name: "embryo", err: errors.New(`repo: missing required edge "EmbryoTransfer.embryo"`)}
	}
	return nil
}

func (_c *EmbryoTransferCreate) sqlSave(ctx context.Context) (*EmbryoTransfer, error) {
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

func (_c *EmbryoTransferCreate) createSpec() (*EmbryoTransfer, *sqlgraph.CreateSpec) {
	var (
		_node = &EmbryoTransfer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(embryotransfer.Table, sqlgraph.NewFieldSpec(embryotransfer.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(embryotransfer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(embryotransfer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ScheduledDate(); ok {
		_spec.SetField(embryotransfer.FieldScheduledDate, field.TypeTime, value)
		_node.ScheduledDate = value
	}
	if value, ok := _c.mutation.PerformedDate(); ok {
		_spec.SetField(embryotransfer.FieldPerformedDate, field.TypeTime, value)
		_node.PerformedDate = &value
	}
	if value, ok := _c.mutation.BetaPositive(); ok {
		_spec.SetField(embryotransfer.FieldBetaPositive, field.TypeBool, value)
		_node.BetaPositive = &value
	}
	if value, ok := _c.mutation.GestationalSac(); ok {
		_spec.SetField(embryotransfer.FieldGestationalSac, field.TypeBool, value)
		_node.GestationalSac = &value
	}
	if value, ok := _c.mutation.ClinicalPregnancy(); ok {
		_spec.SetField(embryotransfer.FieldClinicalPregnancy, field.TypeBool, value)
		_node.ClinicalPregnancy = &value
	}
	if value, ok := _c.mutation.LiveBirth(); ok {
		_spec.SetField(embryotransfer.FieldLiveBirth, field.TypeBool, value)
		_node.LiveBirth = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(embryotransfer.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.EmbryoIDs(); len(nodes) > 0 {
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
		_node.EmbryoID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmbryoTransfer.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmbryoTransferUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EmbryoTransferCreate) OnConflict(opts ...sql.ConflictOption) *EmbryoTransferUpsertOne {
	_c.conflict = opts
	return &EmbryoTransferUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmbryoTransfer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmbryoTransferCreate) OnConflictColumns(columns ...string) *EmbryoTransferUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmbryoTransferUpsertOne{
		create: _c,
	}
}

type (
	// EmbryoTransferUpsertOne is the builder for "upsert"-ing
	//  one EmbryoTransfer node.
	EmbryoTransferUpsertOne struct {
		create *EmbryoTransferCreate
	}

	// EmbryoTransferUpsert is the "OnConflict" setter.
	EmbryoTransferUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *EmbryoTransferUpsert) SetUpdatedAt(v time.Time) *EmbryoTransferUpsert {
	u.Set(embryotransfer.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmbryoTransferUpsert) UpdateUpdatedAt() *EmbryoTransferUpsert {
	u.SetExcluded(embryotransfer.FieldUpdatedAt)
	return u
}

// SetEmbryoID sets the "embryo_id" field.
func (u *EmbryoTransferUpsert) SetEmbryoID(v uuid.UUID) *EmbryoTransferUpsert {
	u.Set(embryotransfer.FieldEmbryoID, v)
	return u
}

// UpdateEmbryoID sets the "embryo_id" field to the value that was provided on create.
func (u *EmbryoTransferUpsert) UpdateEmbryoID() *EmbryoTransferUpsert {
	u.SetExcluded(embryotransfer.FieldEmbryoID)
	return u
}

// SetScheduledDate sets the "scheduled_date" field.
func (u *EmbryoTransferUpsert) SetScheduledDate(v time.Time) *EmbryoTransferUpsert {
	u.Set(embryotransfer.FieldScheduledDate, v)
	return u
}

// UpdateScheduledDate sets the "scheduled_date" field to the value that was provided on create.
func (u *EmbryoTransferUpsert) UpdateScheduledDate() *EmbryoTransferUpsert {
	u.SetExcluded(embryotransfer.FieldScheduledDate)
	return u
}

// SetPerformedDate sets the "performed_date" field.
func (u *EmbryoTransferUpsert) SetPerformedDate(v time.Time) *EmbryoTransferUpsert {
	u.Set(embryotransfer.FieldPerformedDate, v)
	return u
}

// UpdatePerformedDate sets the "performed_date" field to the value that was provided on create.
func (u *EmbryoTransferUpsert) UpdatePerformedDate() *EmbryoTransferUpsert {
	u.SetExcluded(embryotransfer.FieldPerformedDate)
	return u
}

// ClearPerformedDate clears the value of the "performed_date" field.
func (u *EmbryoTransferUpsert) ClearPerformedDate() *EmbryoTransferUpsert {
	u.SetNull(embryotransfer.FieldPerformedDate)
	return u
}

// SetBetaPositive sets the "beta_positive" field.
func (u *EmbryoTransferUpsert) SetBetaPositive(v bool) *EmbryoTransferUpsert {
	u.Set(embryotransfer.FieldBetaPositive, v)
	return u
}

// UpdateBetaPositive sets the "beta_positive" field to the value that was provided on create.
func (u *EmbryoTransferUpsert) UpdateBetaPositive() *EmbryoTransferUpsert {
	u.SetExcluded(embryotransfer.FieldBetaPositive)
	return u
}

// ClearBetaPositive clears the value of the "beta_positive" field.
func (u *EmbryoTransferUpsert) ClearBetaPositive() *EmbryoTransferUpsert {
	u.SetNull(embryotransfer.FieldBetaPositive)
	return u
}

// SetGestationalSac sets the "gestational_sac" field.
func (u *EmbryoTransferUpsert) SetGestationalSac(v bool) *EmbryoTransferUpsert {
	u.Set(embryotransfer.FieldGestationalSac, v)
	return u
}

// UpdateGestationalSac sets the "gestational_sac" field to the value that was provided on create.
func (u *EmbryoTransferUpsert) UpdateGestationalSac() *EmbryoTransferUpsert {
	u.SetExcluded(embryotransfer.FieldGestationalSac)
	return u
}

// ClearGestationalSac clears the value of the "gestational_sac" field.
func (u *EmbryoTransferUpsert) ClearGestationalSac() *EmbryoTransferUpsert {
	u.SetNull(embryotransfer.FieldGestationalSac)
	return u
}

// SetClinicalPregnancy sets the "clinical_pregnancy" field.
func (u *EmbryoTransferUpsert) SetClinicalPregnancy(v bool) *EmbryoTransferUpsert {
	u.Set(embryotransfer.FieldClinicalPregnancy, v)
	return u
}

// UpdateClinicalPregnancy sets the "clinical_pregnancy" field to the value that was provided on create.
func (u *EmbryoTransferUpsert) UpdateClinicalPregnancy() *EmbryoTransferUpsert {
	u.SetExcluded(embryotransfer.FieldClinicalPregnancy)
	return u
}

// ClearClinicalPregnancy clears the value of the "clinical_pregnancy" field.
func (u *EmbryoTransferUpsert) ClearClinicalPregnancy() *EmbryoTransferUpsert {
	u.SetNull(embryotransfer.FieldClinicalPregnancy)
	return u
}

// SetLiveBirth sets the "live_birth" field.
func (u *EmbryoTransferUpsert) SetLiveBirth(v bool) *EmbryoTransferUpsert {
	u.Set(embryotransfer.FieldLiveBirth, v)
	return u
}

// UpdateLiveBirth sets the "live_birth" field to the value that was provided on create.
func (u *EmbryoTransferUpsert) UpdateLiveBirth() *EmbryoTransferUpsert {
	u.SetExcluded(embryotransfer.FieldLiveBirth)
	return u
}

// ClearLiveBirth clears the value of the "live_birth" field.
func (u *EmbryoTransferUpsert) ClearLiveBirth() *EmbryoTransferUpsert {
	u.SetNull(embryotransfer.FieldLiveBirth)
	return u
}

// SetNotes sets the "notes" field.
func (u *EmbryoTransferUpsert) SetNotes(v string) *EmbryoTransferUpsert {
	u.Set(embryotransfer.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EmbryoTransferUpsert) UpdateNotes() *EmbryoTransferUpsert {
	u.SetExcluded(embryotransfer.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *EmbryoTransferUpsert) ClearNotes() *EmbryoTransferUpsert {
	u.SetNull(embryotransfer.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EmbryoTransfer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(embryotransfer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmbryoTransferUpsertOne) UpdateNewValues() *EmbryoTransferUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(embryotransfer.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(embryotransfer.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmbryoTransfer.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EmbryoTransferUpsertOne) Ignore() *EmbryoTransferUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmbryoTransferUpsertOne) DoNothing() *EmbryoTransferUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmbryoTransferCreate.OnConflict
// documentation for more info.
func (u *EmbryoTransferUpsertOne) Update(set func(*EmbryoTransferUpsert)) *EmbryoTransferUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmbryoTransferUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EmbryoTransferUpsertOne) SetUpdatedAt(v time.Time) *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmbryoTransferUpsertOne) UpdateUpdatedAt() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEmbryoID sets the "embryo_id" field.
func (u *EmbryoTransferUpsertOne) SetEmbryoID(v uuid.UUID) *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetEmbryoID(v)
	})
}

// UpdateEmbryoID sets the "embryo_id" field to the value that was provided on create.
func (u *EmbryoTransferUpsertOne) UpdateEmbryoID() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateEmbryoID()
	})
}

// SetScheduledDate sets the "scheduled_date" field.
func (u *EmbryoTransferUpsertOne) SetScheduledDate(v time.Time) *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetScheduledDate(v)
	})
}

// UpdateScheduledDate sets the "scheduled_date" field to the value that was provided on create.
func (u *EmbryoTransferUpsertOne) UpdateScheduledDate() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateScheduledDate()
	})
}

// SetPerformedDate sets the "performed_date" field.
func (u *EmbryoTransferUpsertOne) SetPerformedDate(v time.Time) *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetPerformedDate(v)
	})
}

// UpdatePerformedDate sets the "performed_date" field to the value that was provided on create.
func (u *EmbryoTransferUpsertOne) UpdatePerformedDate() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdatePerformedDate()
	})
}

// ClearPerformedDate clears the value of the "performed_date" field.
func (u *EmbryoTransferUpsertOne) ClearPerformedDate() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearPerformedDate()
	})
}

// SetBetaPositive sets the "beta_positive" field.
func (u *EmbryoTransferUpsertOne) SetBetaPositive(v bool) *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetBetaPositive(v)
	})
}

// UpdateBetaPositive sets the "beta_positive" field to the value that was provided on create.
func (u *EmbryoTransferUpsertOne) UpdateBetaPositive() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateBetaPositive()
	})
}

// ClearBetaPositive clears the value of the "beta_positive" field.
func (u *EmbryoTransferUpsertOne) ClearBetaPositive() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearBetaPositive()
	})
}

// SetGestationalSac sets the "gestational_sac" field.
func (u *EmbryoTransferUpsertOne) SetGestationalSac(v bool) *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetGestationalSac(v)
	})
}

// UpdateGestationalSac sets the "gestational_sac" field to the value that was provided on create.
func (u *EmbryoTransferUpsertOne) UpdateGestationalSac() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateGestationalSac()
	})
}

// ClearGestationalSac clears the value of the "gestational_sac" field.
func (u *EmbryoTransferUpsertOne) ClearGestationalSac() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearGestationalSac()
	})
}

// SetClinicalPregnancy sets the "clinical_pregnancy" field.
func (u *EmbryoTransferUpsertOne) SetClinicalPregnancy(v bool) *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetClinicalPregnancy(v)
	})
}

// UpdateClinicalPregnancy sets the "clinical_pregnancy" field to the value that was provided on create.
func (u *EmbryoTransferUpsertOne) UpdateClinicalPregnancy() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateClinicalPregnancy()
	})
}

// ClearClinicalPregnancy clears the value of the "clinical_pregnancy" field.
func (u *EmbryoTransferUpsertOne) ClearClinicalPregnancy() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearClinicalPregnancy()
	})
}

// SetLiveBirth sets the "live_birth" field.
func (u *EmbryoTransferUpsertOne) SetLiveBirth(v bool) *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetLiveBirth(v)
	})
}

// UpdateLiveBirth sets the "live_birth" field to the value that was provided on create.
func (u *EmbryoTransferUpsertOne) UpdateLiveBirth() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateLiveBirth()
	})
}

// ClearLiveBirth clears the value of the "live_birth" field.
func (u *EmbryoTransferUpsertOne) ClearLiveBirth() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearLiveBirth()
	})
}

// SetNotes sets the "notes" field.
func (u *EmbryoTransferUpsertOne) SetNotes(v string) *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EmbryoTransferUpsertOne) UpdateNotes() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *EmbryoTransferUpsertOne) ClearNotes() *EmbryoTransferUpsertOne {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *EmbryoTransferUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EmbryoTransferCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmbryoTransferUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EmbryoTransferUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: EmbryoTransferUpsertOne.ID is not supported by MySQL driver. Use EmbryoTransferUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EmbryoTransferUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EmbryoTransferCreateBulk is the builder for creating many EmbryoTransfer entities in bulk.
type EmbryoTransferCreateBulk struct {
	config
	err      error
	builders []*EmbryoTransferCreate
	conflict []sql.ConflictOption
}

// Save creates the EmbryoTransfer entities in the database.
func (_c *EmbryoTransferCreateBulk) Save(ctx context.Context) ([]*EmbryoTransfer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmbryoTransfer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmbryoTransferMutation)
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
func (_c *EmbryoTransferCreateBulk) SaveX(ctx context.Context) []*EmbryoTransfer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmbryoTransferCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmbryoTransferCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmbryoTransfer.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmbryoTransferUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EmbryoTransferCreateBulk) OnConflict(opts ...sql.ConflictOption) *EmbryoTransferUpsertBulk {
	_c.conflict = opts
	return &EmbryoTransferUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmbryoTransfer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmbryoTransferCreateBulk) OnConflictColumns(columns ...string) *EmbryoTransferUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmbryoTransferUpsertBulk{
		create: _c,
	}
}

// EmbryoTransferUpsertBulk is the builder for "upsert"-ing
// a bulk of EmbryoTransfer nodes.
type EmbryoTransferUpsertBulk struct {
	create *EmbryoTransferCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EmbryoTransfer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(embryotransfer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmbryoTransferUpsertBulk) UpdateNewValues() *EmbryoTransferUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(embryotransfer.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(embryotransfer.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmbryoTransfer.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EmbryoTransferUpsertBulk) Ignore() *EmbryoTransferUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmbryoTransferUpsertBulk) DoNothing() *EmbryoTransferUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmbryoTransferCreateBulk.OnConflict
// documentation for more info.
func (u *EmbryoTransferUpsertBulk) Update(set func(*EmbryoTransferUpsert)) *EmbryoTransferUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmbryoTransferUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EmbryoTransferUpsertBulk) SetUpdatedAt(v time.Time) *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmbryoTransferUpsertBulk) UpdateUpdatedAt() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEmbryoID sets the "embryo_id" field.
func (u *EmbryoTransferUpsertBulk) SetEmbryoID(v uuid.UUID) *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetEmbryoID(v)
	})
}

// UpdateEmbryoID sets the "embryo_id" field to the value that was provided on create.
func (u *EmbryoTransferUpsertBulk) UpdateEmbryoID() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateEmbryoID()
	})
}

// SetScheduledDate sets the "scheduled_date" field.
func (u *EmbryoTransferUpsertBulk) SetScheduledDate(v time.Time) *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetScheduledDate(v)
	})
}

// UpdateScheduledDate sets the "scheduled_date" field to the value that was provided on create.
func (u *EmbryoTransferUpsertBulk) UpdateScheduledDate() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateScheduledDate()
	})
}

// SetPerformedDate sets the "performed_date" field.
func (u *EmbryoTransferUpsertBulk) SetPerformedDate(v time.Time) *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetPerformedDate(v)
	})
}

// UpdatePerformedDate sets the "performed_date" field to the value that was provided on create.
func (u *EmbryoTransferUpsertBulk) UpdatePerformedDate() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdatePerformedDate()
	})
}

// ClearPerformedDate clears the value of the "performed_date" field.
func (u *EmbryoTransferUpsertBulk) ClearPerformedDate() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearPerformedDate()
	})
}

// SetBetaPositive sets the "beta_positive" field.
func (u *EmbryoTransferUpsertBulk) SetBetaPositive(v bool) *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetBetaPositive(v)
	})
}

// UpdateBetaPositive sets the "beta_positive" field to the value that was provided on create.
func (u *EmbryoTransferUpsertBulk) UpdateBetaPositive() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateBetaPositive()
	})
}

// ClearBetaPositive clears the value of the "beta_positive" field.
func (u *EmbryoTransferUpsertBulk) ClearBetaPositive() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearBetaPositive()
	})
}

// SetGestationalSac sets the "gestational_sac" field.
func (u *EmbryoTransferUpsertBulk) SetGestationalSac(v bool) *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetGestationalSac(v)
	})
}

// UpdateGestationalSac sets the "gestational_sac" field to the value that was provided on create.
func (u *EmbryoTransferUpsertBulk) UpdateGestationalSac() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateGestationalSac()
	})
}

// ClearGestationalSac clears the value of the "gestational_sac" field.
func (u *EmbryoTransferUpsertBulk) ClearGestationalSac() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearGestationalSac()
	})
}

// SetClinicalPregnancy sets the "clinical_pregnancy" field.
func (u *EmbryoTransferUpsertBulk) SetClinicalPregnancy(v bool) *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetClinicalPregnancy(v)
	})
}

// UpdateClinicalPregnancy sets the "clinical_pregnancy" field to the value that was provided on create.
func (u *EmbryoTransferUpsertBulk) UpdateClinicalPregnancy() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateClinicalPregnancy()
	})
}

// ClearClinicalPregnancy clears the value of the "clinical_pregnancy" field.
func (u *EmbryoTransferUpsertBulk) ClearClinicalPregnancy() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearClinicalPregnancy()
	})
}

// SetLiveBirth sets the "live_birth" field.
func (u *EmbryoTransferUpsertBulk) SetLiveBirth(v bool) *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetLiveBirth(v)
	})
}

// UpdateLiveBirth sets the "live_birth" field to the value that was provided on create.
func (u *EmbryoTransferUpsertBulk) UpdateLiveBirth() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateLiveBirth()
	})
}

// ClearLiveBirth clears the value of the "live_birth" field.
func (u *EmbryoTransferUpsertBulk) ClearLiveBirth() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearLiveBirth()
	})
}

// SetNotes sets the "notes" field.
func (u *EmbryoTransferUpsertBulk) SetNotes(v string) *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EmbryoTransferUpsertBulk) UpdateNotes() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *EmbryoTransferUpsertBulk) ClearNotes() *EmbryoTransferUpsertBulk {
	return u.Update(func(s *EmbryoTransferUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *EmbryoTransferUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the EmbryoTransferCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EmbryoTransferCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmbryoTransferUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
