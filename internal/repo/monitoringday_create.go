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
	"github.com/fertitrack/fertitrack_backend/internal/repo/monitoringday"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/google/uuid"
)

// MonitoringDayCreate is the builder for creating a MonitoringDay entity.
type MonitoringDayCreate struct {
	config
	mutation *MonitoringDayMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MonitoringDayCreate) SetCreatedAt(v time.Time) *MonitoringDayCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MonitoringDayCreate) SetNillableCreatedAt(v *time.Time) *MonitoringDayCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MonitoringDayCreate) SetUpdatedAt(v time.Time) *MonitoringDayCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MonitoringDayCreate) SetNillableUpdatedAt(v *time.Time) *MonitoringDayCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTreatmentID sets the "treatment_id" field.
func (_c *MonitoringDayCreate) SetTreatmentID(v uuid.UUID) *MonitoringDayCreate {
	_c.mutation.SetTreatmentID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *MonitoringDayCreate) SetDate(v time.Time) *MonitoringDayCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *MonitoringDayCreate) SetNotes(v string) *MonitoringDayCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *MonitoringDayCreate) SetNillableNotes(v *string) *MonitoringDayCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *MonitoringDayCreate) SetCompleted(v bool) *MonitoringDayCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *MonitoringDayCreate) SetNillableCompleted(v *bool) *MonitoringDayCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MonitoringDayCreate) SetID(v uuid.UUID) *MonitoringDayCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MonitoringDayCreate) SetNillableID(v *uuid.UUID) *MonitoringDayCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_c *MonitoringDayCreate) SetTreatment(v *Treatment) *MonitoringDayCreate {
	return _c.SetTreatmentID(v.ID)
}

// Mutation returns the MonitoringDayMutation object of the builder.
func (_c *MonitoringDayCreate) Mutation() *MonitoringDayMutation {
	return _c.mutation
}

// Save creates the MonitoringDay in the database.
func (_c *MonitoringDayCreate) Save(ctx context.Context) (*MonitoringDay, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MonitoringDayCreate) SaveX(ctx context.Context) *MonitoringDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitoringDayCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitoringDayCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MonitoringDayCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := monitoringday.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := monitoringday.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := monitoringday.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := monitoringday.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MonitoringDayCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MonitoringDay.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MonitoringDay.updated_at"`)}
	}
	if _, ok := _c.mutation.TreatmentID(); !ok {
		return &ValidationError{Name: "treatment_id", err: errors.New(`repo: missing required field "MonitoringDay.treatment_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "MonitoringDay.date"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`repo: missing required field "MonitoringDay.completed"`)}
	}
	if len(_c.mutation.TreatmentIDs()) == 0 {
		return &ValidationError{Name: "treatment", err: errors.New(`repo: missing required edge "MonitoringDay.treatment"`)}
	}
	return nil
}

func (_c *MonitoringDayCreate) sqlSave(ctx context.Context) (*MonitoringDay, error) {
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

func (_c *MonitoringDayCreate) createSpec() (*MonitoringDay, *sqlgraph.CreateSpec) {
	var (
		_node = &MonitoringDay{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(monitoringday.Table, sqlgraph.NewFieldSpec(monitoringday.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(monitoringday.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(monitoringday.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(monitoringday.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(monitoringday.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(monitoringday.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if nodes := _c.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   monitoringday.TreatmentTable,
			Columns: []string{monitoringday.TreatmentColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MonitoringDay.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MonitoringDayUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MonitoringDayCreate) OnConflict(opts ...sql.ConflictOption) *MonitoringDayUpsertOne {
	_c.conflict = opts
	return &MonitoringDayUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MonitoringDay.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MonitoringDayCreate) OnConflictColumns(columns ...string) *MonitoringDayUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MonitoringDayUpsertOne{
		create: _c,
	}
}

type (
	// MonitoringDayUpsertOne is the builder for "upsert"-ing
	//  one MonitoringDay node.
	MonitoringDayUpsertOne struct {
		create *MonitoringDayCreate
	}

	// MonitoringDayUpsert is the "OnConflict" setter.
	MonitoringDayUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MonitoringDayUpsert) SetUpdatedAt(v time.Time) *MonitoringDayUpsert {
	u.Set(monitoringday.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MonitoringDayUpsert) UpdateUpdatedAt() *MonitoringDayUpsert {
	u.SetExcluded(monitoringday.FieldUpdatedAt)
	return u
}

// SetTreatmentID sets the "treatment_id" field.
func (u *MonitoringDayUpsert) SetTreatmentID(v uuid.UUID) *MonitoringDayUpsert {
	u.Set(monitoringday.FieldTreatmentID, v)
	return u
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *MonitoringDayUpsert) UpdateTreatmentID() *MonitoringDayUpsert {
	u.SetExcluded(monitoringday.FieldTreatmentID)
	return u
}

// SetDate sets the "date" field.
func (u *MonitoringDayUpsert) SetDate(v time.Time) *MonitoringDayUpsert {
	u.Set(monitoringday.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *MonitoringDayUpsert) UpdateDate() *MonitoringDayUpsert {
	u.SetExcluded(monitoringday.FieldDate)
	return u
}

// SetNotes sets the "notes" field.
func (u *MonitoringDayUpsert) SetNotes(v string) *MonitoringDayUpsert {
	u.Set(monitoringday.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *MonitoringDayUpsert) UpdateNotes() *MonitoringDayUpsert {
	u.SetExcluded(monitoringday.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *MonitoringDayUpsert) ClearNotes() *MonitoringDayUpsert {
	u.SetNull(monitoringday.FieldNotes)
	return u
}

// SetCompleted sets the "completed" field.
func (u *MonitoringDayUpsert) SetCompleted(v bool) *MonitoringDayUpsert {
	u.Set(monitoringday.FieldCompleted, v)
	return u
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *MonitoringDayUpsert) UpdateCompleted() *MonitoringDayUpsert {
	u.SetExcluded(monitoringday.FieldCompleted)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MonitoringDay.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(monitoringday.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MonitoringDayUpsertOne) UpdateNewValues() *MonitoringDayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(monitoringday.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(monitoringday.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MonitoringDay.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MonitoringDayUpsertOne) Ignore() *MonitoringDayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MonitoringDayUpsertOne) DoNothing() *MonitoringDayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MonitoringDayCreate.OnConflict
// documentation for more info.
func (u *MonitoringDayUpsertOne) Update(set func(*MonitoringDayUpsert)) *MonitoringDayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MonitoringDayUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MonitoringDayUpsertOne) SetUpdatedAt(v time.Time) *MonitoringDayUpsertOne {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MonitoringDayUpsertOne) UpdateUpdatedAt() *MonitoringDayUpsertOne {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTreatmentID sets the "treatment_id" field.
func (u *MonitoringDayUpsertOne) SetTreatmentID(v uuid.UUID) *MonitoringDayUpsertOne {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *MonitoringDayUpsertOne) UpdateTreatmentID() *MonitoringDayUpsertOne {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.UpdateTreatmentID()
	})
}

// SetDate sets the "date" field.
func (u *MonitoringDayUpsertOne) SetDate(v time.Time) *MonitoringDayUpsertOne {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *MonitoringDayUpsertOne) UpdateDate() *MonitoringDayUpsertOne {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.UpdateDate()
	})
}

// SetNotes sets the "notes" field.
func (u *MonitoringDayUpsertOne) SetNotes(v string) *MonitoringDayUpsertOne {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *MonitoringDayUpsertOne) UpdateNotes() *MonitoringDayUpsertOne {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *MonitoringDayUpsertOne) ClearNotes() *MonitoringDayUpsertOne {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.ClearNotes()
	})
}

// SetCompleted sets the "completed" field.
func (u *MonitoringDayUpsertOne) SetCompleted(v bool) *MonitoringDayUpsertOne {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *MonitoringDayUpsertOne) UpdateCompleted() *MonitoringDayUpsertOne {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.UpdateCompleted()
	})
}

// Exec executes the query.
func (u *MonitoringDayUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MonitoringDayCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MonitoringDayUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MonitoringDayUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MonitoringDayUpsertOne.ID is not supported by MySQL driver. Use MonitoringDayUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MonitoringDayUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MonitoringDayCreateBulk is the builder for creating many MonitoringDay entities in bulk.
type MonitoringDayCreateBulk struct {
	config
	err      error
	builders []*MonitoringDayCreate
	conflict []sql.ConflictOption
}

// Save creates the MonitoringDay entities in the database.
func (_c *MonitoringDayCreateBulk) Save(ctx context.Context) ([]*MonitoringDay, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MonitoringDay, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MonitoringDayMutation)
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
func (_c *MonitoringDayCreateBulk) SaveX(ctx context.Context) []*MonitoringDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitoringDayCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitoringDayCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MonitoringDay.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MonitoringDayUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MonitoringDayCreateBulk) OnConflict(opts ...sql.ConflictOption) *MonitoringDayUpsertBulk {
	_c.conflict = opts
	return &MonitoringDayUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MonitoringDay.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MonitoringDayCreateBulk) OnConflictColumns(columns ...string) *MonitoringDayUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MonitoringDayUpsertBulk{
		create: _c,
	}
}

// MonitoringDayUpsertBulk is the builder for "upsert"-ing
// a bulk of MonitoringDay nodes.
type MonitoringDayUpsertBulk struct {
	create *MonitoringDayCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MonitoringDay.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(monitoringday.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MonitoringDayUpsertBulk) UpdateNewValues() *MonitoringDayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(monitoringday.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(monitoringday.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MonitoringDay.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MonitoringDayUpsertBulk) Ignore() *MonitoringDayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MonitoringDayUpsertBulk) DoNothing() *MonitoringDayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MonitoringDayCreateBulk.OnConflict
// documentation for more info.
func (u *MonitoringDayUpsertBulk) Update(set func(*MonitoringDayUpsert)) *MonitoringDayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MonitoringDayUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MonitoringDayUpsertBulk) SetUpdatedAt(v time.Time) *MonitoringDayUpsertBulk {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MonitoringDayUpsertBulk) UpdateUpdatedAt() *MonitoringDayUpsertBulk {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTreatmentID sets the "treatment_id" field.
func (u *MonitoringDayUpsertBulk) SetTreatmentID(v uuid.UUID) *MonitoringDayUpsertBulk {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *MonitoringDayUpsertBulk) UpdateTreatmentID() *MonitoringDayUpsertBulk {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.UpdateTreatmentID()
	})
}

// SetDate sets the "date" field.
func (u *MonitoringDayUpsertBulk) SetDate(v time.Time) *MonitoringDayUpsertBulk {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *MonitoringDayUpsertBulk) UpdateDate() *MonitoringDayUpsertBulk {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.UpdateDate()
	})
}

// SetNotes sets the "notes" field.
func (u *MonitoringDayUpsertBulk) SetNotes(v string) *MonitoringDayUpsertBulk {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *MonitoringDayUpsertBulk) UpdateNotes() *MonitoringDayUpsertBulk {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *MonitoringDayUpsertBulk) ClearNotes() *MonitoringDayUpsertBulk {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.ClearNotes()
	})
}

// SetCompleted sets the "completed" field.
func (u *MonitoringDayUpsertBulk) SetCompleted(v bool) *MonitoringDayUpsertBulk {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *MonitoringDayUpsertBulk) UpdateCompleted() *MonitoringDayUpsertBulk {
	return u.Update(func(s *MonitoringDayUpsert) {
		s.UpdateCompleted()
	})
}

// Exec executes the query.
func (u *MonitoringDayUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MonitoringDayCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MonitoringDayCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MonitoringDayUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
