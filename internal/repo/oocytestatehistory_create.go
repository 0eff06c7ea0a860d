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
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// OocyteStateHistoryCreate is the builder for creating a OocyteStateHistory entity.
type OocyteStateHistoryCreate struct {
	config
	mutation *OocyteStateHistoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *OocyteStateHistoryCreate) SetCreatedAt(v time.Time) *OocyteStateHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OocyteStateHistoryCreate) SetNillableCreatedAt(v *time.Time) *OocyteStateHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOocyteID sets the "oocyte_id" field.
func (_c *OocyteStateHistoryCreate) SetOocyteID(v uuid.UUID) *OocyteStateHistoryCreate {
	_c.mutation.SetOocyteID(v)
	return _c
}

// SetFromState sets the "from_state" field.
func (_c *OocyteStateHistoryCreate) SetFromState(v string) *OocyteStateHistoryCreate {
	_c.mutation.SetFromState(v)
	return _c
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_c *OocyteStateHistoryCreate) SetNillableFromState(v *string) *OocyteStateHistoryCreate {
	if v != nil {
		_c.SetFromState(*v)
	}
	return _c
}

// SetToState sets the "to_state" field.
func (_c *OocyteStateHistoryCreate) SetToState(v string) *OocyteStateHistoryCreate {
	_c.mutation.SetToState(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *OocyteStateHistoryCreate) SetNotes(v string) *OocyteStateHistoryCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *OocyteStateHistoryCreate) SetNillableNotes(v *string) *OocyteStateHistoryCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetChangedByID sets the "changed_by_id" field.
func (_c *OocyteStateHistoryCreate) SetChangedByID(v uuid.UUID) *OocyteStateHistoryCreate {
	_c.mutation.SetChangedByID(v)
	return _c
}

// SetNillableChangedByID sets the "changed_by_id" field if the given value is not nil.
func (_c *OocyteStateHistoryCreate) SetNillableChangedByID(v *uuid.UUID) *OocyteStateHistoryCreate {
	if v != nil {
		_c.SetChangedByID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OocyteStateHistoryCreate) SetID(v uuid.UUID) *OocyteStateHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OocyteStateHistoryCreate) SetNillableID(v *uuid.UUID) *OocyteStateHistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOocyte sets the "oocyte" edge to the Oocyte entity.
func (_c *OocyteStateHistoryCreate) SetOocyte(v *Oocyte) *OocyteStateHistoryCreate {
	return _c.SetOocyteID(v.ID)
}

// SetChangedBy sets the "changed_by" edge to the User entity.
func (_c *OocyteStateHistoryCreate) SetChangedBy(v *User) *OocyteStateHistoryCreate {
	return _c.SetChangedByID(v.ID)
}

// Mutation returns the OocyteStateHistoryMutation object of the builder.
func (_c *OocyteStateHistoryCreate) Mutation() *OocyteStateHistoryMutation {
	return _c.mutation
}

// Save creates the OocyteStateHistory in the database.
func (_c *OocyteStateHistoryCreate) Save(ctx context.Context) (*OocyteStateHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OocyteStateHistoryCreate) SaveX(ctx context.Context) *OocyteStateHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OocyteStateHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OocyteStateHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OocyteStateHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := oocytestatehistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := oocytestatehistory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OocyteStateHistoryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "OocyteStateHistory.created_at"`)}
	}
	if _, ok := _c.mutation.OocyteID(); !ok {
		return &ValidationError{Name: "oocyte_id", err: errors.New(`repo: missing required field "OocyteStateHistory.oocyte_id"`)}
	}
	if v, ok := _c.mutation.FromState(); ok {
		if err := oocytestatehistory.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`repo: validator failed for field "OocyteStateHistory.from_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToState(); !ok {
		return &ValidationError{Name: "to_state", err: errors.New(`repo: missing required field "OocyteStateHistory.to_state"`)}
	}
	if v, ok := _c.mutation.ToState(); ok {
		if err := oocytestatehistory.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`repo: validator failed for field "OocyteStateHistory.to_state": %w`, err)}
		}
	}
	if len(_c.mutation.OocyteIDs()) == 0 {
		return &ValidationError{Name: "oocyte", err: errors.New(`repo: missing required edge "OocyteStateHistory.oocyte"`)}
	}
	return nil
}

func (_c *OocyteStateHistoryCreate) sqlSave(ctx context.Context) (*OocyteStateHistory, error) {
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

func (_c *OocyteStateHistoryCreate) createSpec() (*OocyteStateHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &OocyteStateHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(oocytestatehistory.Table, sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(oocytestatehistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FromState(); ok {
		_spec.SetField(oocytestatehistory.FieldFromState, field.TypeString, value)
		_node.FromState = value
	}
	if value, ok := _c.mutation.ToState(); ok {
		_spec.SetField(oocytestatehistory.FieldToState, field.TypeString, value)
		_node.ToState = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(oocytestatehistory.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.OocyteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   oocytestatehistory.OocyteTable,
			Columns: []string{oocytestatehistory.OocyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OocyteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChangedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   oocytestatehistory.ChangedByTable,
			Columns: []string{oocytestatehistory.ChangedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChangedByID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OocyteStateHistory.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OocyteStateHistoryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OocyteStateHistoryCreate) OnConflict(opts ...sql.ConflictOption) *OocyteStateHistoryUpsertOne {
	_c.conflict = opts
	return &OocyteStateHistoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OocyteStateHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OocyteStateHistoryCreate) OnConflictColumns(columns ...string) *OocyteStateHistoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OocyteStateHistoryUpsertOne{
		create: _c,
	}
}

type (
	// OocyteStateHistoryUpsertOne is the builder for "upsert"-ing
	//  one OocyteStateHistory node.
	OocyteStateHistoryUpsertOne struct {
		create *OocyteStateHistoryCreate
	}

	// OocyteStateHistoryUpsert is the "OnConflict" setter.
	OocyteStateHistoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetOocyteID sets the "oocyte_id" field.
func (u *OocyteStateHistoryUpsert) SetOocyteID(v uuid.UUID) *OocyteStateHistoryUpsert {
	u.Set(oocytestatehistory.FieldOocyteID, v)
	return u
}

// UpdateOocyteID sets the "oocyte_id" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsert) UpdateOocyteID() *OocyteStateHistoryUpsert {
	u.SetExcluded(oocytestatehistory.FieldOocyteID)
	return u
}

// SetFromState sets the "from_state" field.
func (u *OocyteStateHistoryUpsert) SetFromState(v string) *OocyteStateHistoryUpsert {
	u.Set(oocytestatehistory.FieldFromState, v)
	return u
}

// UpdateFromState sets the "from_state" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsert) UpdateFromState() *OocyteStateHistoryUpsert {
	u.SetExcluded(oocytestatehistory.FieldFromState)
	return u
}

// ClearFromState clears the value of the "from_state" field.
func (u *OocyteStateHistoryUpsert) ClearFromState() *OocyteStateHistoryUpsert {
	u.SetNull(oocytestatehistory.FieldFromState)
	return u
}

// SetToState sets the "to_state" field.
func (u *OocyteStateHistoryUpsert) SetToState(v string) *OocyteStateHistoryUpsert {
	u.Set(oocytestatehistory.FieldToState, v)
	return u
}

// UpdateToState sets the "to_state" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsert) UpdateToState() *OocyteStateHistoryUpsert {
	u.SetExcluded(oocytestatehistory.FieldToState)
	return u
}

// SetNotes sets the "notes" field.
func (u *OocyteStateHistoryUpsert) SetNotes(v string) *OocyteStateHistoryUpsert {
	u.Set(oocytestatehistory.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsert) UpdateNotes() *OocyteStateHistoryUpsert {
	u.SetExcluded(oocytestatehistory.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *OocyteStateHistoryUpsert) ClearNotes() *OocyteStateHistoryUpsert {
	u.SetNull(oocytestatehistory.FieldNotes)
	return u
}

// SetChangedByID sets the "changed_by_id" field.
func (u *OocyteStateHistoryUpsert) SetChangedByID(v uuid.UUID) *OocyteStateHistoryUpsert {
	u.Set(oocytestatehistory.FieldChangedByID, v)
	return u
}

// UpdateChangedByID sets the "changed_by_id" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsert) UpdateChangedByID() *OocyteStateHistoryUpsert {
	u.SetExcluded(oocytestatehistory.FieldChangedByID)
	return u
}

// ClearChangedByID clears the value of the "changed_by_id" field.
func (u *OocyteStateHistoryUpsert) ClearChangedByID() *OocyteStateHistoryUpsert {
	u.SetNull(oocytestatehistory.FieldChangedByID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OocyteStateHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(oocytestatehistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OocyteStateHistoryUpsertOne) UpdateNewValues() *OocyteStateHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(oocytestatehistory.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(oocytestatehistory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OocyteStateHistory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OocyteStateHistoryUpsertOne) Ignore() *OocyteStateHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OocyteStateHistoryUpsertOne) DoNothing() *OocyteStateHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OocyteStateHistoryCreate.OnConflict
// documentation for more info.
func (u *OocyteStateHistoryUpsertOne) Update(set func(*OocyteStateHistoryUpsert)) *OocyteStateHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OocyteStateHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetOocyteID sets the "oocyte_id" field.
func (u *OocyteStateHistoryUpsertOne) SetOocyteID(v uuid.UUID) *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.SetOocyteID(v)
	})
}

// UpdateOocyteID sets the "oocyte_id" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsertOne) UpdateOocyteID() *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.UpdateOocyteID()
	})
}

// SetFromState sets the "from_state" field.
func (u *OocyteStateHistoryUpsertOne) SetFromState(v string) *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.SetFromState(v)
	})
}

// UpdateFromState sets the "from_state" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsertOne) UpdateFromState() *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.UpdateFromState()
	})
}

// ClearFromState clears the value of the "from_state" field.
func (u *OocyteStateHistoryUpsertOne) ClearFromState() *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.ClearFromState()
	})
}

// SetToState sets the "to_state" field.
func (u *OocyteStateHistoryUpsertOne) SetToState(v string) *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.SetToState(v)
	})
}

// UpdateToState sets the "to_state" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsertOne) UpdateToState() *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.UpdateToState()
	})
}

// SetNotes sets the "notes" field.
func (u *OocyteStateHistoryUpsertOne) SetNotes(v string) *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsertOne) UpdateNotes() *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *OocyteStateHistoryUpsertOne) ClearNotes() *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.ClearNotes()
	})
}

// SetChangedByID sets the "changed_by_id" field.
func (u *OocyteStateHistoryUpsertOne) SetChangedByID(v uuid.UUID) *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.SetChangedByID(v)
	})
}

// UpdateChangedByID sets the "changed_by_id" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsertOne) UpdateChangedByID() *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.UpdateChangedByID()
	})
}

// ClearChangedByID clears the value of the "changed_by_id" field.
func (u *OocyteStateHistoryUpsertOne) ClearChangedByID() *OocyteStateHistoryUpsertOne {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.ClearChangedByID()
	})
}

// Exec executes the query.
func (u *OocyteStateHistoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OocyteStateHistoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OocyteStateHistoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OocyteStateHistoryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: OocyteStateHistoryUpsertOne.ID is not supported by MySQL driver. Use OocyteStateHistoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OocyteStateHistoryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OocyteStateHistoryCreateBulk is the builder for creating many OocyteStateHistory entities in bulk.
type OocyteStateHistoryCreateBulk struct {
	config
	err      error
	builders []*OocyteStateHistoryCreate
	conflict []sql.ConflictOption
}

// Save creates the OocyteStateHistory entities in the database.
func (_c *OocyteStateHistoryCreateBulk) Save(ctx context.Context) ([]*OocyteStateHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OocyteStateHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OocyteStateHistoryMutation)
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
func (_c *OocyteStateHistoryCreateBulk) SaveX(ctx context.Context) []*OocyteStateHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OocyteStateHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OocyteStateHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OocyteStateHistory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OocyteStateHistoryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OocyteStateHistoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *OocyteStateHistoryUpsertBulk {
	_c.conflict = opts
	return &OocyteStateHistoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OocyteStateHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OocyteStateHistoryCreateBulk) OnConflictColumns(columns ...string) *OocyteStateHistoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OocyteStateHistoryUpsertBulk{
		create: _c,
	}
}

// OocyteStateHistoryUpsertBulk is the builder for "upsert"-ing
// a bulk of OocyteStateHistory nodes.
type OocyteStateHistoryUpsertBulk struct {
	create *OocyteStateHistoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OocyteStateHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(oocytestatehistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OocyteStateHistoryUpsertBulk) UpdateNewValues() *OocyteStateHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(oocytestatehistory.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(oocytestatehistory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OocyteStateHistory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OocyteStateHistoryUpsertBulk) Ignore() *OocyteStateHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OocyteStateHistoryUpsertBulk) DoNothing() *OocyteStateHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OocyteStateHistoryCreateBulk.OnConflict
// documentation for more info.
func (u *OocyteStateHistoryUpsertBulk) Update(set func(*OocyteStateHistoryUpsert)) *OocyteStateHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OocyteStateHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetOocyteID sets the "oocyte_id" field.
func (u *OocyteStateHistoryUpsertBulk) SetOocyteID(v uuid.UUID) *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.SetOocyteID(v)
	})
}

// UpdateOocyteID sets the "oocyte_id" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsertBulk) UpdateOocyteID() *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.UpdateOocyteID()
	})
}

// SetFromState sets the "from_state" field.
func (u *OocyteStateHistoryUpsertBulk) SetFromState(v string) *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.SetFromState(v)
	})
}

// UpdateFromState sets the "from_state" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsertBulk) UpdateFromState() *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.UpdateFromState()
	})
}

// ClearFromState clears the value of the "from_state" field.
func (u *OocyteStateHistoryUpsertBulk) ClearFromState() *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.ClearFromState()
	})
}

// SetToState sets the "to_state" field.
func (u *OocyteStateHistoryUpsertBulk) SetToState(v string) *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.SetToState(v)
	})
}

// UpdateToState sets the "to_state" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsertBulk) UpdateToState() *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.UpdateToState()
	})
}

// SetNotes sets the "notes" field.
func (u *OocyteStateHistoryUpsertBulk) SetNotes(v string) *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsertBulk) UpdateNotes() *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *OocyteStateHistoryUpsertBulk) ClearNotes() *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.ClearNotes()
	})
}

// SetChangedByID sets the "changed_by_id" field.
func (u *OocyteStateHistoryUpsertBulk) SetChangedByID(v uuid.UUID) *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.SetChangedByID(v)
	})
}

// UpdateChangedByID sets the "changed_by_id" field to the value that was provided on create.
func (u *OocyteStateHistoryUpsertBulk) UpdateChangedByID() *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.UpdateChangedByID()
	})
}

// ClearChangedByID clears the value of the "changed_by_id" field.
func (u *OocyteStateHistoryUpsertBulk) ClearChangedByID() *OocyteStateHistoryUpsertBulk {
	return u.Update(func(s *OocyteStateHistoryUpsert) {
		s.ClearChangedByID()
	})
}

// Exec executes the query.
func (u *OocyteStateHistoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the OocyteStateHistoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OocyteStateHistoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OocyteStateHistoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
