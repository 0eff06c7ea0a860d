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
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalorder"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/google/uuid"
)

// MedicalOrderCreate is the builder for creating a MedicalOrder entity.
type MedicalOrderCreate struct {
	config
	mutation *MedicalOrderMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicalOrderCreate) SetCreatedAt(v time.Time) *MedicalOrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicalOrderCreate) SetNillableCreatedAt(v *time.Time) *MedicalOrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTreatmentID sets the "treatment_id" field.
func (_c *MedicalOrderCreate) SetTreatmentID(v uuid.UUID) *MedicalOrderCreate {
	_c.mutation.SetTreatmentID(v)
	return _c
}

// SetOrderType sets the "order_type" field.
func (_c *MedicalOrderCreate) SetOrderType(v string) *MedicalOrderCreate {
	_c.mutation.SetOrderType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MedicalOrderCreate) SetDescription(v string) *MedicalOrderCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MedicalOrderCreate) SetID(v uuid.UUID) *MedicalOrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicalOrderCreate) SetNillableID(v *uuid.UUID) *MedicalOrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_c *MedicalOrderCreate) SetTreatment(v *Treatment) *MedicalOrderCreate {
	return _c.SetTreatmentID(v.ID)
}

// Mutation returns the MedicalOrderMutation object of the builder.
func (_c *MedicalOrderCreate) Mutation() *MedicalOrderMutation {
	return _c.mutation
}

// Save creates the MedicalOrder in the database.
func (_c *MedicalOrderCreate) Save(ctx context.Context) (*MedicalOrder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicalOrderCreate) SaveX(ctx context.Context) *MedicalOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalOrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalOrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicalOrderCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicalorder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medicalorder.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicalOrderCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MedicalOrder.created_at"`)}
	}
	if _, ok := _c.mutation.TreatmentID(); !ok {
		return &ValidationError{Name: "treatment_id", err: errors.New(`repo: missing required field "MedicalOrder.treatment_id"`)}
	}
	if _, ok := _c.mutation.OrderType(); !ok {
		return &ValidationError{Name: "order_type", err: errors.New(`repo: missing required field "MedicalOrder.order_type"`)}
	}
	if v, ok := _c.mutation.OrderType(); ok {
		if err := medicalorder.OrderTypeValidator(v); err != nil {
			return &ValidationError{Name: "order_type", err: fmt.Errorf(`repo: validator failed for field "MedicalOrder.order_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "MedicalOrder.description"`)}
	}
	if len(_c.mutation.TreatmentIDs()) == 0 {
		return &ValidationError{Name: "treatment", err: errors.New(`repo: missing required edge "MedicalOrder.treatment"`)}
	}
	return nil
}

func (_c *MedicalOrderCreate) sqlSave(ctx context.Context) (*MedicalOrder, error) {
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

func (_c *MedicalOrderCreate) createSpec() (*MedicalOrder, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicalOrder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicalorder.Table, sqlgraph.NewFieldSpec(medicalorder.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicalorder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.OrderType(); ok {
		_spec.SetField(medicalorder.FieldOrderType, field.TypeString, value)
		_node.OrderType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(medicalorder.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if nodes := _c.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalorder.TreatmentTable,
			Columns: []string{medicalorder.TreatmentColumn},
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
//	client.MedicalOrder.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicalOrderUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicalOrderCreate) OnConflict(opts ...sql.ConflictOption) *MedicalOrderUpsertOne {
	_c.conflict = opts
	return &MedicalOrderUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicalOrder.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicalOrderCreate) OnConflictColumns(columns ...string) *MedicalOrderUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicalOrderUpsertOne{
		create: _c,
	}
}

type (
	// MedicalOrderUpsertOne is the builder for "upsert"-ing
	//  one MedicalOrder node.
	MedicalOrderUpsertOne struct {
		create *MedicalOrderCreate
	}

	// MedicalOrderUpsert is the "OnConflict" setter.
	MedicalOrderUpsert struct {
		*sql.UpdateSet
	}
)

// SetTreatmentID sets the "treatment_id" field.
func (u *MedicalOrderUpsert) SetTreatmentID(v uuid.UUID) *MedicalOrderUpsert {
	u.Set(medicalorder.FieldTreatmentID, v)
	return u
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *MedicalOrderUpsert) UpdateTreatmentID() *MedicalOrderUpsert {
	u.SetExcluded(medicalorder.FieldTreatmentID)
	return u
}

// SetOrderType sets the "order_type" field.
func (u *MedicalOrderUpsert) SetOrderType(v string) *MedicalOrderUpsert {
	u.Set(medicalorder.FieldOrderType, v)
	return u
}

// UpdateOrderType sets the "order_type" field to the value that was provided on create.
func (u *MedicalOrderUpsert) UpdateOrderType() *MedicalOrderUpsert {
	u.SetExcluded(medicalorder.FieldOrderType)
	return u
}

// SetDescription sets the "description" field.
func (u *MedicalOrderUpsert) SetDescription(v string) *MedicalOrderUpsert {
	u.Set(medicalorder.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MedicalOrderUpsert) UpdateDescription() *MedicalOrderUpsert {
	u.SetExcluded(medicalorder.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MedicalOrder.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicalorder.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicalOrderUpsertOne) UpdateNewValues() *MedicalOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(medicalorder.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(medicalorder.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicalOrder.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MedicalOrderUpsertOne) Ignore() *MedicalOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicalOrderUpsertOne) DoNothing() *MedicalOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicalOrderCreate.OnConflict
// documentation for more info.
func (u *MedicalOrderUpsertOne) Update(set func(*MedicalOrderUpsert)) *MedicalOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicalOrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetTreatmentID sets the "treatment_id" field.
func (u *MedicalOrderUpsertOne) SetTreatmentID(v uuid.UUID) *MedicalOrderUpsertOne {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *MedicalOrderUpsertOne) UpdateTreatmentID() *MedicalOrderUpsertOne {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.UpdateTreatmentID()
	})
}

// SetOrderType sets the "order_type" field.
func (u *MedicalOrderUpsertOne) SetOrderType(v string) *MedicalOrderUpsertOne {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.SetOrderType(v)
	})
}

// UpdateOrderType sets the "order_type" field to the value that was provided on create.
func (u *MedicalOrderUpsertOne) UpdateOrderType() *MedicalOrderUpsertOne {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.UpdateOrderType()
	})
}

// SetDescription sets the "description" field.
func (u *MedicalOrderUpsertOne) SetDescription(v string) *MedicalOrderUpsertOne {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MedicalOrderUpsertOne) UpdateDescription() *MedicalOrderUpsertOne {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.UpdateDescription()
	})
}

// Exec executes the query.
func (u *MedicalOrderUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicalOrderCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicalOrderUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MedicalOrderUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MedicalOrderUpsertOne.ID is not supported by MySQL driver. Use MedicalOrderUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MedicalOrderUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MedicalOrderCreateBulk is the builder for creating many MedicalOrder entities in bulk.
type MedicalOrderCreateBulk struct {
	config
	err      error
	builders []*MedicalOrderCreate
	conflict []sql.ConflictOption
}

// Save creates the MedicalOrder entities in the database.
func (_c *MedicalOrderCreateBulk) Save(ctx context.Context) ([]*MedicalOrder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicalOrder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicalOrderMutation)
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
func (_c *MedicalOrderCreateBulk) SaveX(ctx context.Context) []*MedicalOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalOrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalOrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MedicalOrder.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicalOrderUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicalOrderCreateBulk) OnConflict(opts ...sql.ConflictOption) *MedicalOrderUpsertBulk {
	_c.conflict = opts
	return &MedicalOrderUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicalOrder.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicalOrderCreateBulk) OnConflictColumns(columns ...string) *MedicalOrderUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicalOrderUpsertBulk{
		create: _c,
	}
}

// MedicalOrderUpsertBulk is the builder for "upsert"-ing
// a bulk of MedicalOrder nodes.
type MedicalOrderUpsertBulk struct {
	create *MedicalOrderCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MedicalOrder.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicalorder.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicalOrderUpsertBulk) UpdateNewValues() *MedicalOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(medicalorder.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(medicalorder.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicalOrder.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MedicalOrderUpsertBulk) Ignore() *MedicalOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicalOrderUpsertBulk) DoNothing() *MedicalOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicalOrderCreateBulk.OnConflict
// documentation for more info.
func (u *MedicalOrderUpsertBulk) Update(set func(*MedicalOrderUpsert)) *MedicalOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicalOrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetTreatmentID sets the "treatment_id" field.
func (u *MedicalOrderUpsertBulk) SetTreatmentID(v uuid.UUID) *MedicalOrderUpsertBulk {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *MedicalOrderUpsertBulk) UpdateTreatmentID() *MedicalOrderUpsertBulk {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.UpdateTreatmentID()
	})
}

// SetOrderType sets the "order_type" field.
func (u *MedicalOrderUpsertBulk) SetOrderType(v string) *MedicalOrderUpsertBulk {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.SetOrderType(v)
	})
}

// UpdateOrderType sets the "order_type" field to the value that was provided on create.
func (u *MedicalOrderUpsertBulk) UpdateOrderType() *MedicalOrderUpsertBulk {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.UpdateOrderType()
	})
}

// SetDescription sets the "description" field.
func (u *MedicalOrderUpsertBulk) SetDescription(v string) *MedicalOrderUpsertBulk {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MedicalOrderUpsertBulk) UpdateDescription() *MedicalOrderUpsertBulk {
	return u.Update(func(s *MedicalOrderUpsert) {
		s.UpdateDescription()
	})
}

// Exec executes the query.
func (u *MedicalOrderUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MedicalOrderCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicalOrderCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicalOrderUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
