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
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PunctureCreate is the builder for creating a Puncture entity.
type PunctureCreate struct {
	config
	mutation *PunctureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PunctureCreate) SetCreatedAt(v time.Time) *PunctureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PunctureCreate) SetNillableCreatedAt(v *time.Time) *PunctureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTreatmentID sets the "treatment_id" field.
func (_c *PunctureCreate) SetTreatmentID(v uuid.UUID) *PunctureCreate {
	_c.mutation.SetTreatmentID(v)
	return _c
}

// SetOperatorID sets the "operator_id" field.
func (_c *PunctureCreate) SetOperatorID(v uuid.UUID) *PunctureCreate {
	_c.mutation.SetOperatorID(v)
	return _c
}

// SetNillableOperatorID sets the "operator_id" field if the given value is not nil.
func (_c *PunctureCreate) SetNillableOperatorID(v *uuid.UUID) *PunctureCreate {
	if v != nil {
		_c.SetOperatorID(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *PunctureCreate) SetDate(v time.Time) *PunctureCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetOperatingRoom sets the "operating_room" field.
func (_c *PunctureCreate) SetOperatingRoom(v string) *PunctureCreate {
	_c.mutation.SetOperatingRoom(v)
	return _c
}

// SetComplications sets the "complications" field.
func (_c *PunctureCreate) SetComplications(v string) *PunctureCreate {
	_c.mutation.SetComplications(v)
	return _c
}

// SetNillableComplications sets the "complications" field if the given value is not nil.
func (_c *PunctureCreate) SetNillableComplications(v *string) *PunctureCreate {
	if v != nil {
		_c.SetComplications(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PunctureCreate) SetID(v uuid.UUID) *PunctureCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PunctureCreate) SetNillableID(v *uuid.UUID) *PunctureCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_c *PunctureCreate) SetTreatment(v *Treatment) *PunctureCreate {
	return _c.SetTreatmentID(v.ID)
}

// SetOperator sets the "operator" edge to the User entity.
func (_c *PunctureCreate) SetOperator(v *User) *PunctureCreate {
	return _c.SetOperatorID(v.ID)
}

// AddOocyteIDs adds the "oocytes" edge to the Oocyte entity by IDs.
func (_c *PunctureCreate) AddOocyteIDs(ids ...uuid.UUID) *PunctureCreate {
	_c.mutation.AddOocyteIDs(ids...)
	return _c
}

// AddOocytes adds the "oocytes" edges to the Oocyte entity.
func (_c *PunctureCreate) AddOocytes(v ...*Oocyte) *PunctureCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOocyteIDs(ids...)
}

// Mutation returns the PunctureMutation object of the builder.
func (_c *PunctureCreate) Mutation() *PunctureMutation {
	return _c.mutation
}

// Save creates the Puncture in the database.
func (_c *PunctureCreate) Save(ctx context.Context) (*Puncture, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PunctureCreate) SaveX(ctx context.Context) *Puncture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PunctureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PunctureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PunctureCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := puncture.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := puncture.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PunctureCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Puncture.created_at"`)}
	}
	if _, ok := _c.mutation.TreatmentID(); !ok {
		return &ValidationError{Name: "treatment_id", err: errors.New(`repo: missing required field "Puncture.treatment_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "Puncture.date"`)}
	}
	if _, ok := _c.mutation.OperatingRoom(); !ok {
		return &ValidationError{Name: "operating_room", err: errors.New(`repo: missing required field "Puncture.operating_room"`)}
	}
	if v, ok := _c.mutation.OperatingRoom(); ok {
		if err := puncture.OperatingRoomValidator(v); err != nil {
			return &ValidationError{Name: "operating_room", err: fmt.Errorf(`repo: validator failed for field "Puncture.operating_room": %w`, err)}
		}
	}
	if len(_c.mutation.TreatmentIDs()) == 0 {
		return &ValidationError{Name: "treatment", err: errors.New(`repo: missing required edge "Puncture.treatment"`)}
	}
	return nil
}

func (_c *PunctureCreate) sqlSave(ctx context.Context) (*Puncture, error) {
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

func (_c *PunctureCreate) createSpec() (*Puncture, *sqlgraph.CreateSpec) {
	var (
		_node = &Puncture{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(puncture.Table, sqlgraph.NewFieldSpec(puncture.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(puncture.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(puncture.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.OperatingRoom(); ok {
		_spec.SetField(puncture.FieldOperatingRoom, field.TypeString, value)
		_node.OperatingRoom = value
	}
	if value, ok := _c.mutation.Complications(); ok {
		_spec.SetField(puncture.FieldComplications, field.TypeString, value)
		_node.Complications = &value
	}
	if nodes := _c.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   puncture.TreatmentTable,
			Columns: []string{puncture.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TreatmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OperatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   puncture.OperatorTable,
			Columns: []string{puncture.OperatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OperatorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OocytesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   puncture.OocytesTable,
			Columns: []string{puncture.OocytesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID),
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
//	client.Puncture.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PunctureUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PunctureCreate) OnConflict(opts ...sql.ConflictOption) *PunctureUpsertOne {
	_c.conflict = opts
	return &PunctureUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Puncture.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PunctureCreate) OnConflictColumns(columns ...string) *PunctureUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PunctureUpsertOne{
		create: _c,
	}
}

type (
	// PunctureUpsertOne is the builder for "upsert"-ing
	//  one Puncture node.
	PunctureUpsertOne struct {
		create *PunctureCreate
	}

	// PunctureUpsert is the "OnConflict" setter.
	PunctureUpsert struct {
		*sql.UpdateSet
	}
)

// SetTreatmentID sets the "treatment_id" field.
func (u *PunctureUpsert) SetTreatmentID(v uuid.UUID) *PunctureUpsert {
	u.Set(puncture.FieldTreatmentID, v)
	return u
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *PunctureUpsert) UpdateTreatmentID() *PunctureUpsert {
	u.SetExcluded(puncture.FieldTreatmentID)
	return u
}

// SetOperatorID sets the "operator_id" field.
func (u *PunctureUpsert) SetOperatorID(v uuid.UUID) *PunctureUpsert {
	u.Set(puncture.FieldOperatorID, v)
	return u
}

// UpdateOperatorID sets the "operator_id" field to the value that was provided on create.
func (u *PunctureUpsert) UpdateOperatorID() *PunctureUpsert {
	u.SetExcluded(puncture.FieldOperatorID)
	return u
}

// ClearOperatorID clears the value of the "operator_id" field.
func (u *PunctureUpsert) ClearOperatorID() *PunctureUpsert {
	u.SetNull(puncture.FieldOperatorID)
	return u
}

// SetDate sets the "date" field.
func (u *PunctureUpsert) SetDate(v time.Time) *PunctureUpsert {
	u.Set(puncture.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *PunctureUpsert) UpdateDate() *PunctureUpsert {
	u.SetExcluded(puncture.FieldDate)
	return u
}

// SetOperatingRoom sets the "operating_room" field.
func (u *PunctureUpsert) SetOperatingRoom(v string) *PunctureUpsert {
	u.Set(puncture.FieldOperatingRoom, v)
	return u
}

// UpdateOperatingRoom sets the "operating_room" field to the value that was provided on create.
func (u *PunctureUpsert) UpdateOperatingRoom() *PunctureUpsert {
	u.SetExcluded(puncture.FieldOperatingRoom)
	return u
}

// SetComplications sets the "complications" field.
func (u *PunctureUpsert) SetComplications(v string) *PunctureUpsert {
	u.Set(puncture.FieldComplications, v)
	return u
}

// UpdateComplications sets the "complications" field to the value that was provided on create.
func (u *PunctureUpsert) UpdateComplications() *PunctureUpsert {
	u.SetExcluded(puncture.FieldComplications)
	return u
}

// ClearComplications clears the value of the "complications" field.
func (u *PunctureUpsert) ClearComplications() *PunctureUpsert {
	u.SetNull(puncture.FieldComplications)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Puncture.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(puncture.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PunctureUpsertOne) UpdateNewValues() *PunctureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(puncture.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(puncture.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Puncture.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PunctureUpsertOne) Ignore() *PunctureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PunctureUpsertOne) DoNothing() *PunctureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PunctureCreate.OnConflict
// documentation for more info.
func (u *PunctureUpsertOne) Update(set func(*PunctureUpsert)) *PunctureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PunctureUpsert{UpdateSet: update})
	}))
	return u
}

// SetTreatmentID sets the "treatment_id" field.
func (u *PunctureUpsertOne) SetTreatmentID(v uuid.UUID) *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *PunctureUpsertOne) UpdateTreatmentID() *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.UpdateTreatmentID()
	})
}

// SetOperatorID sets the "operator_id" field.
func (u *PunctureUpsertOne) SetOperatorID(v uuid.UUID) *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.SetOperatorID(v)
	})
}

// UpdateOperatorID sets the "operator_id" field to the value that was provided on create.
func (u *PunctureUpsertOne) UpdateOperatorID() *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.UpdateOperatorID()
	})
}

// ClearOperatorID clears the value of the "operator_id" field.
func (u *PunctureUpsertOne) ClearOperatorID() *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.ClearOperatorID()
	})
}

// SetDate sets the "date" field.
func (u *PunctureUpsertOne) SetDate(v time.Time) *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *PunctureUpsertOne) UpdateDate() *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.UpdateDate()
	})
}

// SetOperatingRoom sets the "operating_room" field.
func (u *PunctureUpsertOne) SetOperatingRoom(v string) *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.SetOperatingRoom(v)
	})
}

// UpdateOperatingRoom sets the "operating_room" field to the value that was provided on create.
func (u *PunctureUpsertOne) UpdateOperatingRoom() *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.UpdateOperatingRoom()
	})
}

// SetComplications sets the "complications" field.
func (u *PunctureUpsertOne) SetComplications(v string) *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.SetComplications(v)
	})
}

// UpdateComplications sets the "complications" field to the value that was provided on create.
func (u *PunctureUpsertOne) UpdateComplications() *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.UpdateComplications()
	})
}

// ClearComplications clears the value of the "complications" field.
func (u *PunctureUpsertOne) ClearComplications() *PunctureUpsertOne {
	return u.Update(func(s *PunctureUpsert) {
		s.ClearComplications()
	})
}

// Exec executes the query.
func (u *PunctureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PunctureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PunctureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PunctureUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PunctureUpsertOne.ID is not supported by MySQL driver. Use PunctureUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PunctureUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PunctureCreateBulk is the builder for creating many Puncture entities in bulk.
type PunctureCreateBulk struct {
	config
	err      error
	builders []*PunctureCreate
	conflict []sql.ConflictOption
}

// Save creates the Puncture entities in the database.
func (_c *PunctureCreateBulk) Save(ctx context.Context) ([]*Puncture, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Puncture, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PunctureMutation)
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
func (_c *PunctureCreateBulk) SaveX(ctx context.Context) []*Puncture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PunctureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PunctureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Puncture.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PunctureUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PunctureCreateBulk) OnConflict(opts ...sql.ConflictOption) *PunctureUpsertBulk {
	_c.conflict = opts
	return &PunctureUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Puncture.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PunctureCreateBulk) OnConflictColumns(columns ...string) *PunctureUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PunctureUpsertBulk{
		create: _c,
	}
}

// PunctureUpsertBulk is the builder for "upsert"-ing
// a bulk of Puncture nodes.
type PunctureUpsertBulk struct {
	create *PunctureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Puncture.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(puncture.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PunctureUpsertBulk) UpdateNewValues() *PunctureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(puncture.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(puncture.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Puncture.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PunctureUpsertBulk) Ignore() *PunctureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PunctureUpsertBulk) DoNothing() *PunctureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PunctureCreateBulk.OnConflict
// documentation for more info.
func (u *PunctureUpsertBulk) Update(set func(*PunctureUpsert)) *PunctureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PunctureUpsert{UpdateSet: update})
	}))
	return u
}

// SetTreatmentID sets the "treatment_id" field.
func (u *PunctureUpsertBulk) SetTreatmentID(v uuid.UUID) *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *PunctureUpsertBulk) UpdateTreatmentID() *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.UpdateTreatmentID()
	})
}

// SetOperatorID sets the "operator_id" field.
func (u *PunctureUpsertBulk) SetOperatorID(v uuid.UUID) *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.SetOperatorID(v)
	})
}

// UpdateOperatorID sets the "operator_id" field to the value that was provided on create.
func (u *PunctureUpsertBulk) UpdateOperatorID() *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.UpdateOperatorID()
	})
}

// ClearOperatorID clears the value of the "operator_id" field.
func (u *PunctureUpsertBulk) ClearOperatorID() *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.ClearOperatorID()
	})
}

// SetDate sets the "date" field.
func (u *PunctureUpsertBulk) SetDate(v time.Time) *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *PunctureUpsertBulk) UpdateDate() *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.UpdateDate()
	})
}

// SetOperatingRoom sets the "operating_room" field.
func (u *PunctureUpsertBulk) SetOperatingRoom(v string) *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.SetOperatingRoom(v)
	})
}

// UpdateOperatingRoom sets the "operating_room" field to the value that was provided on create.
func (u *PunctureUpsertBulk) UpdateOperatingRoom() *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.UpdateOperatingRoom()
	})
}

// SetComplications sets the "complications" field.
func (u *PunctureUpsertBulk) SetComplications(v string) *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.SetComplications(v)
	})
}

// UpdateComplications sets the "complications" field to the value that was provided on create.
func (u *PunctureUpsertBulk) UpdateComplications() *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.UpdateComplications()
	})
}

// ClearComplications clears the value of the "complications" field.
func (u *PunctureUpsertBulk) ClearComplications() *PunctureUpsertBulk {
	return u.Update(func(s *PunctureUpsert) {
		s.ClearComplications()
	})
}

// Exec executes the query.
func (u *PunctureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PunctureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PunctureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PunctureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
