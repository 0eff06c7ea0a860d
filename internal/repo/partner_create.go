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
	"github.com/fertitrack/fertitrack_backend/internal/repo/partner"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// PartnerCreate is the builder for creating a Partner entity.
type PartnerCreate struct {
	config
	mutation *PartnerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PartnerCreate) SetCreatedAt(v time.Time) *PartnerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PartnerCreate) SetNillableCreatedAt(v *time.Time) *PartnerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PartnerCreate) SetUpdatedAt(v time.Time) *PartnerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PartnerCreate) SetNillableUpdatedAt(v *time.Time) *PartnerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PartnerCreate) SetPatientID(v uuid.UUID) *PartnerCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *PartnerCreate) SetFirstName(v string) *PartnerCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *PartnerCreate) SetLastName(v string) *PartnerCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *PartnerCreate) SetDateOfBirth(v time.Time) *PartnerCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetBiologicalSex sets the "biological_sex" field.
func (_c *PartnerCreate) SetBiologicalSex(v partner.BiologicalSex) *PartnerCreate {
	_c.mutation.SetBiologicalSex(v)
	return _c
}

// SetDni sets the "dni" field.
func (_c *PartnerCreate) SetDni(v string) *PartnerCreate {
	_c.mutation.SetDni(v)
	return _c
}

// SetGenitalBackground sets the "genital_background" field.
func (_c *PartnerCreate) SetGenitalBackground(v string) *PartnerCreate {
	_c.mutation.SetGenitalBackground(v)
	return _c
}

// SetNillableGenitalBackground sets the "genital_background" field if the given value is not nil.
func (_c *PartnerCreate) SetNillableGenitalBackground(v *string) *PartnerCreate {
	if v != nil {
		_c.SetGenitalBackground(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PartnerCreate) SetID(v uuid.UUID) *PartnerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PartnerCreate) SetNillableID(v *uuid.UUID) *PartnerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PartnerCreate) SetPatient(v *Patient) *PartnerCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the PartnerMutation object of the builder.
func (_c *PartnerCreate) Mutation() *PartnerMutation {
	return _c.mutation
}

// Save creates the Partner in the database.
func (_c *PartnerCreate) Save(ctx context.Context) (*Partner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PartnerCreate) SaveX(ctx context.Context) *Partner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartnerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartnerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PartnerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := partner.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := partner.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := partner.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PartnerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Partner.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Partner.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Partner.patient_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "Partner.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := partner.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Partner.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "Partner.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := partner.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Partner.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DateOfBirth(); !ok {
		return &ValidationError{Name: "date_of_birth", err: errors.New(`repo: missing required field "Partner.date_of_birth"`)}
	}
	if _, ok := _c.mutation.BiologicalSex(); !ok {
		return &ValidationError{Name: "biological_sex", err: errors.New(`repo: missing required field "Partner.biological_sex"`)}
	}
	if v, ok := _c.mutation.BiologicalSex(); ok {
		if err := partner.BiologicalSexValidator(v); err != nil {
			return &ValidationError{Name: "biological_sex", err: fmt.Errorf(`repo: validator failed for field "Partner.biological_sex": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Dni(); !ok {
		return &ValidationError{Name: "dni", err: errors.New(`repo: missing required field "Partner.dni"`)}
	}
	if v, ok := _c.mutation.Dni(); ok {
		if err := partner.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Partner.dni": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Partner.patient"`)}
	}
	return nil
}

func (_c *PartnerCreate) sqlSave(ctx context.Context) (*Partner, error) {
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

func (_c *PartnerCreate) createSpec() (*Partner, *sqlgraph.CreateSpec) {
	var (
		_node = &Partner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(partner.Table, sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(partner.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(partner.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(partner.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(partner.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(partner.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = value
	}
	if value, ok := _c.mutation.BiologicalSex(); ok {
		_spec.SetField(partner.FieldBiologicalSex, field.TypeEnum, value)
		_node.BiologicalSex = value
	}
	if value, ok := _c.mutation.Dni(); ok {
		_spec.SetField(partner.FieldDni, field.TypeString, value)
		_node.Dni = value
	}
	if value, ok := _c.mutation.GenitalBackground(); ok {
		_spec.SetField(partner.FieldGenitalBackground, field.TypeString, value)
		_node.GenitalBackground = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   partner.PatientTable,
			Columns: []string{partner.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Partner.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartnerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartnerCreate) OnConflict(opts ...sql.ConflictOption) *PartnerUpsertOne {
	_c.conflict = opts
	return &PartnerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Partner.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartnerCreate) OnConflictColumns(columns ...string) *PartnerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartnerUpsertOne{
		create: _c,
	}
}

type (
	// PartnerUpsertOne is the builder for "upsert"-ing
	//  one Partner node.
	PartnerUpsertOne struct {
		create *PartnerCreate
	}

	// PartnerUpsert is the "OnConflict" setter.
	PartnerUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PartnerUpsert) SetUpdatedAt(v time.Time) *PartnerUpsert {
	u.Set(partner.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartnerUpsert) UpdateUpdatedAt() *PartnerUpsert {
	u.SetExcluded(partner.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PartnerUpsert) SetPatientID(v uuid.UUID) *PartnerUpsert {
	u.Set(partner.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PartnerUpsert) UpdatePatientID() *PartnerUpsert {
	u.SetExcluded(partner.FieldPatientID)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *PartnerUpsert) SetFirstName(v string) *PartnerUpsert {
	u.Set(partner.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PartnerUpsert) UpdateFirstName() *PartnerUpsert {
	u.SetExcluded(partner.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *PartnerUpsert) SetLastName(v string) *PartnerUpsert {
	u.Set(partner.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PartnerUpsert) UpdateLastName() *PartnerUpsert {
	u.SetExcluded(partner.FieldLastName)
	return u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PartnerUpsert) SetDateOfBirth(v time.Time) *PartnerUpsert {
	u.Set(partner.FieldDateOfBirth, v)
	return u
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PartnerUpsert) UpdateDateOfBirth() *PartnerUpsert {
	u.SetExcluded(partner.FieldDateOfBirth)
	return u
}

// SetBiologicalSex sets the "biological_sex" field.
func (u *PartnerUpsert) SetBiologicalSex(v partner.BiologicalSex) *PartnerUpsert {
	u.Set(partner.FieldBiologicalSex, v)
	return u
}

// UpdateBiologicalSex sets the "biological_sex" field to the value that was provided on create.
func (u *PartnerUpsert) UpdateBiologicalSex() *PartnerUpsert {
	u.SetExcluded(partner.FieldBiologicalSex)
	return u
}

// SetDni sets the "dni" field.
func (u *PartnerUpsert) SetDni(v string) *PartnerUpsert {
	u.Set(partner.FieldDni, v)
	return u
}

// UpdateDni sets the "dni" field to the value that was provided on create.
func (u *PartnerUpsert) UpdateDni() *PartnerUpsert {
	u.SetExcluded(partner.FieldDni)
	return u
}

// SetGenitalBackground sets the "genital_background" field.
func (u *PartnerUpsert) SetGenitalBackground(v string) *PartnerUpsert {
	u.Set(partner.FieldGenitalBackground, v)
	return u
}

// UpdateGenitalBackground sets the "genital_background" field to the value that was provided on create.
func (u *PartnerUpsert) UpdateGenitalBackground() *PartnerUpsert {
	u.SetExcluded(partner.FieldGenitalBackground)
	return u
}

// ClearGenitalBackground clears the value of the "genital_background" field.
func (u *PartnerUpsert) ClearGenitalBackground() *PartnerUpsert {
	u.SetNull(partner.FieldGenitalBackground)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Partner.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(partner.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartnerUpsertOne) UpdateNewValues() *PartnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(partner.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(partner.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Partner.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PartnerUpsertOne) Ignore() *PartnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartnerUpsertOne) DoNothing() *PartnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartnerCreate.OnConflict
// documentation for more info.
func (u *PartnerUpsertOne) Update(set func(*PartnerUpsert)) *PartnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartnerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PartnerUpsertOne) SetUpdatedAt(v time.Time) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdateUpdatedAt() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PartnerUpsertOne) SetPatientID(v uuid.UUID) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdatePatientID() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdatePatientID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PartnerUpsertOne) SetFirstName(v string) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdateFirstName() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *PartnerUpsertOne) SetLastName(v string) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdateLastName() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateLastName()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PartnerUpsertOne) SetDateOfBirth(v time.Time) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdateDateOfBirth() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateDateOfBirth()
	})
}

// SetBiologicalSex sets the "biological_sex" field.
func (u *PartnerUpsertOne) SetBiologicalSex(v partner.BiologicalSex) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetBiologicalSex(v)
	})
}

// UpdateBiologicalSex sets the "biological_sex" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdateBiologicalSex() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateBiologicalSex()
	})
}

// SetDni sets the "dni" field.
func (u *PartnerUpsertOne) SetDni(v string) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetDni(v)
	})
}

// UpdateDni sets the "dni" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdateDni() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateDni()
	})
}

// SetGenitalBackground sets the "genital_background" field.
func (u *PartnerUpsertOne) SetGenitalBackground(v string) *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.SetGenitalBackground(v)
	})
}

// UpdateGenitalBackground sets the "genital_background" field to the value that was provided on create.
func (u *PartnerUpsertOne) UpdateGenitalBackground() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateGenitalBackground()
	})
}

// ClearGenitalBackground clears the value of the "genital_background" field.
func (u *PartnerUpsertOne) ClearGenitalBackground() *PartnerUpsertOne {
	return u.Update(func(s *PartnerUpsert) {
		s.ClearGenitalBackground()
	})
}

// Exec executes the query.
func (u *PartnerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PartnerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartnerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PartnerUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PartnerUpsertOne.ID is not supported by MySQL driver. Use PartnerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PartnerUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PartnerCreateBulk is the builder for creating many Partner entities in bulk.
type PartnerCreateBulk struct {
	config
	err      error
	builders []*PartnerCreate
	conflict []sql.ConflictOption
}

// Save creates the Partner entities in the database.
func (_c *PartnerCreateBulk) Save(ctx context.Context) ([]*Partner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Partner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PartnerMutation)
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
func (_c *PartnerCreateBulk) SaveX(ctx context.Context) []*Partner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartnerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartnerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Partner.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartnerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartnerCreateBulk) OnConflict(opts ...sql.ConflictOption) *PartnerUpsertBulk {
	_c.conflict = opts
	return &PartnerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Partner.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartnerCreateBulk) OnConflictColumns(columns ...string) *PartnerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartnerUpsertBulk{
		create: _c,
	}
}

// PartnerUpsertBulk is the builder for "upsert"-ing
// a bulk of Partner nodes.
type PartnerUpsertBulk struct {
	create *PartnerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Partner.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(partner.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartnerUpsertBulk) UpdateNewValues() *PartnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(partner.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(partner.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Partner.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PartnerUpsertBulk) Ignore() *PartnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartnerUpsertBulk) DoNothing() *PartnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartnerCreateBulk.OnConflict
// documentation for more info.
func (u *PartnerUpsertBulk) Update(set func(*PartnerUpsert)) *PartnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartnerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PartnerUpsertBulk) SetUpdatedAt(v time.Time) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdateUpdatedAt() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PartnerUpsertBulk) SetPatientID(v uuid.UUID) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdatePatientID() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdatePatientID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PartnerUpsertBulk) SetFirstName(v string) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdateFirstName() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *PartnerUpsertBulk) SetLastName(v string) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdateLastName() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateLastName()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PartnerUpsertBulk) SetDateOfBirth(v time.Time) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdateDateOfBirth() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateDateOfBirth()
	})
}

// SetBiologicalSex sets the "biological_sex" field.
func (u *PartnerUpsertBulk) SetBiologicalSex(v partner.BiologicalSex) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetBiologicalSex(v)
	})
}

// UpdateBiologicalSex sets the "biological_sex" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdateBiologicalSex() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateBiologicalSex()
	})
}

// SetDni sets the "dni" field.
func (u *PartnerUpsertBulk) SetDni(v string) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetDni(v)
	})
}

// UpdateDni sets the "dni" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdateDni() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateDni()
	})
}

// SetGenitalBackground sets the "genital_background" field.
func (u *PartnerUpsertBulk) SetGenitalBackground(v string) *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.SetGenitalBackground(v)
	})
}

// UpdateGenitalBackground sets the "genital_background" field to the value that was provided on create.
func (u *PartnerUpsertBulk) UpdateGenitalBackground() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.UpdateGenitalBackground()
	})
}

// ClearGenitalBackground clears the value of the "genital_background" field.
func (u *PartnerUpsertBulk) ClearGenitalBackground() *PartnerUpsertBulk {
	return u.Update(func(s *PartnerUpsert) {
		s.ClearGenitalBackground()
	})
}

// Exec executes the query.
func (u *PartnerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PartnerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PartnerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartnerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
