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
	"github.com/fertitrack/fertitrack_backend/internal/repo/studyresult"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/google/uuid"
)

// StudyResultCreate is the builder for creating a StudyResult entity.
type StudyResultCreate struct {
	config
	mutation *StudyResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudyResultCreate) SetCreatedAt(v time.Time) *StudyResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudyResultCreate) SetNillableCreatedAt(v *time.Time) *StudyResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTreatmentID sets the "treatment_id" field.
func (_c *StudyResultCreate) SetTreatmentID(v uuid.UUID) *StudyResultCreate {
	_c.mutation.SetTreatmentID(v)
	return _c
}

// SetStudyType sets the "study_type" field.
func (_c *StudyResultCreate) SetStudyType(v string) *StudyResultCreate {
	_c.mutation.SetStudyType(v)
	return _c
}

// SetStudyName sets the "study_name" field.
func (_c *StudyResultCreate) SetStudyName(v string) *StudyResultCreate {
	_c.mutation.SetStudyName(v)
	return _c
}

// SetResultFileKey sets the "result_file_key" field.
func (_c *StudyResultCreate) SetResultFileKey(v string) *StudyResultCreate {
	_c.mutation.SetResultFileKey(v)
	return _c
}

// SetNillableResultFileKey sets the "result_file_key" field if the given value is not nil.
func (_c *StudyResultCreate) SetNillableResultFileKey(v *string) *StudyResultCreate {
	if v != nil {
		_c.SetResultFileKey(*v)
	}
	return _c
}

// SetResultText sets the "result_text" field.
func (_c *StudyResultCreate) SetResultText(v string) *StudyResultCreate {
	_c.mutation.SetResultText(v)
	return _c
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_c *StudyResultCreate) SetNillableResultText(v *string) *StudyResultCreate {
	if v != nil {
		_c.SetResultText(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudyResultCreate) SetID(v uuid.UUID) *StudyResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StudyResultCreate) SetNillableID(v *uuid.UUID) *StudyResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_c *StudyResultCreate) SetTreatment(v *Treatment) *StudyResultCreate {
	return _c.SetTreatmentID(v.ID)
}

// Mutation returns the StudyResultMutation object of the builder.
func (_c *StudyResultCreate) Mutation() *StudyResultMutation {
	return _c.mutation
}

// Save creates the StudyResult in the database.
func (_c *StudyResultCreate) Save(ctx context.Context) (*StudyResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyResultCreate) SaveX(ctx context.Context) *StudyResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studyresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := studyresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyResultCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "StudyResult.created_at"`)}
	}
	if _, ok := _c.mutation.TreatmentID(); !ok {
		return &ValidationError{Name: "treatment_id", err: errors.New(`repo: missing required field "StudyResult.treatment_id"`)}
	}
	if _, ok := _c.mutation.StudyType(); !ok {
		return &ValidationError{Name: "study_type", err: errors.New(`repo: missing required field "StudyResult.study_type"`)}
	}
	if v, ok := _c.mutation.StudyType(); ok {
		if err := studyresult.StudyTypeValidator(v); err != nil {
			return &ValidationError{Name: "study_type", err: fmt.Errorf(`repo: validator failed for field "StudyResult.study_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudyName(); !ok {
		return &ValidationError{Name: "study_name", err: errors.New(`repo: missing required field "StudyResult.study_name"`)}
	}
	if v, ok := _c.mutation.StudyName(); ok {
		if err := studyresult.StudyNameValidator(v); err != nil {
			return &ValidationError{Name: "study_name", err: fmt.Errorf(`repo: validator failed for field "StudyResult.study_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ResultFileKey(); ok {
		if err := studyresult.ResultFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "result_file_key", err: fmt.Errorf(`repo: validator failed for field "StudyResult.result_file_key": %w`, err)}
		}
	}
	if len(_c.mutation.TreatmentIDs()) == 0 {
		return &ValidationError{Name: "treatment", err: errors.New(`repo: missing required edge "StudyResult.treatment"`)}
	}
	return nil
}

func (_c *StudyResultCreate) sqlSave(ctx context.Context) (*StudyResult, error) {
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

func (_c *StudyResultCreate) createSpec() (*StudyResult, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyresult.Table, sqlgraph.NewFieldSpec(studyresult.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studyresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StudyType(); ok {
		_spec.SetField(studyresult.FieldStudyType, field.TypeString, value)
		_node.StudyType = value
	}
	if value, ok := _c.mutation.StudyName(); ok {
		_spec.SetField(studyresult.FieldStudyName, field.TypeString, value)
		_node.StudyName = value
	}
	if value, ok := _c.mutation.ResultFileKey(); ok {
		_spec.SetField(studyresult.FieldResultFileKey, field.TypeString, value)
		_node.ResultFileKey = &value
	}
	if value, ok := _c.mutation.ResultText(); ok {
		_spec.SetField(studyresult.FieldResultText, field.TypeString, value)
		_node.ResultText = &value
	}
	if nodes := _c.mutation.TreatmentIDs(); len(nodes) > 0 {
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
		_node.TreatmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudyResult.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyResultUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyResultCreate) OnConflict(opts ...sql.ConflictOption) *StudyResultUpsertOne {
	_c.conflict = opts
	return &StudyResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudyResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyResultCreate) OnConflictColumns(columns ...string) *StudyResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyResultUpsertOne{
		create: _c,
	}
}

type (
	// StudyResultUpsertOne is the builder for "upsert"-ing
	//  one StudyResult node.
	StudyResultUpsertOne struct {
		create *StudyResultCreate
	}

	// StudyResultUpsert is the "OnConflict" setter.
	StudyResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetTreatmentID sets the "treatment_id" field.
func (u *StudyResultUpsert) SetTreatmentID(v uuid.UUID) *StudyResultUpsert {
	u.Set(studyresult.FieldTreatmentID, v)
	return u
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *StudyResultUpsert) UpdateTreatmentID() *StudyResultUpsert {
	u.SetExcluded(studyresult.FieldTreatmentID)
	return u
}

// SetStudyType sets the "study_type" field.
func (u *StudyResultUpsert) SetStudyType(v string) *StudyResultUpsert {
	u.Set(studyresult.FieldStudyType, v)
	return u
}

// UpdateStudyType sets the "study_type" field to the value that was provided on create.
func (u *StudyResultUpsert) UpdateStudyType() *StudyResultUpsert {
	u.SetExcluded(studyresult.FieldStudyType)
	return u
}

// SetStudyName sets the "study_name" field.
func (u *StudyResultUpsert) SetStudyName(v string) *StudyResultUpsert {
	u.Set(studyresult.FieldStudyName, v)
	return u
}

// UpdateStudyName sets the "study_name" field to the value that was provided on create.
func (u *StudyResultUpsert) UpdateStudyName() *StudyResultUpsert {
	u.SetExcluded(studyresult.FieldStudyName)
	return u
}

// SetResultFileKey sets the "result_file_key" field.
func (u *StudyResultUpsert) SetResultFileKey(v string) *StudyResultUpsert {
	u.Set(studyresult.FieldResultFileKey, v)
	return u
}

// UpdateResultFileKey sets the "result_file_key" field to the value that was provided on create.
func (u *StudyResultUpsert) UpdateResultFileKey() *StudyResultUpsert {
	u.SetExcluded(studyresult.FieldResultFileKey)
	return u
}

// ClearResultFileKey clears the value of the "result_file_key" field.
func (u *StudyResultUpsert) ClearResultFileKey() *StudyResultUpsert {
	u.SetNull(studyresult.FieldResultFileKey)
	return u
}

// SetResultText sets the "result_text" field.
func (u *StudyResultUpsert) SetResultText(v string) *StudyResultUpsert {
	u.Set(studyresult.FieldResultText, v)
	return u
}

// UpdateResultText sets the "result_text" field to the value that was provided on create.
func (u *StudyResultUpsert) UpdateResultText() *StudyResultUpsert {
	u.SetExcluded(studyresult.FieldResultText)
	return u
}

// ClearResultText clears the value of the "result_text" field.
func (u *StudyResultUpsert) ClearResultText() *StudyResultUpsert {
	u.SetNull(studyresult.FieldResultText)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StudyResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studyresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyResultUpsertOne) UpdateNewValues() *StudyResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(studyresult.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(studyresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudyResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudyResultUpsertOne) Ignore() *StudyResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyResultUpsertOne) DoNothing() *StudyResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyResultCreate.OnConflict
// documentation for more info.
func (u *StudyResultUpsertOne) Update(set func(*StudyResultUpsert)) *StudyResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetTreatmentID sets the "treatment_id" field.
func (u *StudyResultUpsertOne) SetTreatmentID(v uuid.UUID) *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *StudyResultUpsertOne) UpdateTreatmentID() *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.UpdateTreatmentID()
	})
}

// SetStudyType sets the "study_type" field.
func (u *StudyResultUpsertOne) SetStudyType(v string) *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.SetStudyType(v)
	})
}

// UpdateStudyType sets the "study_type" field to the value that was provided on create.
func (u *StudyResultUpsertOne) UpdateStudyType() *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.UpdateStudyType()
	})
}

// SetStudyName sets the "study_name" field.
func (u *StudyResultUpsertOne) SetStudyName(v string) *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.SetStudyName(v)
	})
}

// UpdateStudyName sets the "study_name" field to the value that was provided on create.
func (u *StudyResultUpsertOne) UpdateStudyName() *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.UpdateStudyName()
	})
}

// SetResultFileKey sets the "result_file_key" field.
func (u *StudyResultUpsertOne) SetResultFileKey(v string) *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.SetResultFileKey(v)
	})
}

// UpdateResultFileKey sets the "result_file_key" field to the value that was provided on create.
func (u *StudyResultUpsertOne) UpdateResultFileKey() *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.UpdateResultFileKey()
	})
}

// ClearResultFileKey clears the value of the "result_file_key" field.
func (u *StudyResultUpsertOne) ClearResultFileKey() *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.ClearResultFileKey()
	})
}

// SetResultText sets the "result_text" field.
func (u *StudyResultUpsertOne) SetResultText(v string) *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.SetResultText(v)
	})
}

// UpdateResultText sets the "result_text" field to the value that was provided on create.
func (u *StudyResultUpsertOne) UpdateResultText() *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.UpdateResultText()
	})
}

// ClearResultText clears the value of the "result_text" field.
func (u *StudyResultUpsertOne) ClearResultText() *StudyResultUpsertOne {
	return u.Update(func(s *StudyResultUpsert) {
		s.ClearResultText()
	})
}

// Exec executes the query.
func (u *StudyResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StudyResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudyResultUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: StudyResultUpsertOne.ID is not supported by MySQL driver. Use StudyResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudyResultUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudyResultCreateBulk is the builder for creating many StudyResult entities in bulk.
type StudyResultCreateBulk struct {
	config
	err      error
	builders []*StudyResultCreate
	conflict []sql.ConflictOption
}

// Save creates the StudyResult entities in the database.
func (_c *StudyResultCreateBulk) Save(ctx context.Context) ([]*StudyResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyResultMutation)
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
func (_c *StudyResultCreateBulk) SaveX(ctx context.Context) []*StudyResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudyResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyResultUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudyResultUpsertBulk {
	_c.conflict = opts
	return &StudyResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudyResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyResultCreateBulk) OnConflictColumns(columns ...string) *StudyResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyResultUpsertBulk{
		create: _c,
	}
}

// StudyResultUpsertBulk is the builder for "upsert"-ing
// a bulk of StudyResult nodes.
type StudyResultUpsertBulk struct {
	create *StudyResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudyResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studyresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyResultUpsertBulk) UpdateNewValues() *StudyResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(studyresult.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(studyresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudyResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudyResultUpsertBulk) Ignore() *StudyResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyResultUpsertBulk) DoNothing() *StudyResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyResultCreateBulk.OnConflict
// documentation for more info.
func (u *StudyResultUpsertBulk) Update(set func(*StudyResultUpsert)) *StudyResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetTreatmentID sets the "treatment_id" field.
func (u *StudyResultUpsertBulk) SetTreatmentID(v uuid.UUID) *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *StudyResultUpsertBulk) UpdateTreatmentID() *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.UpdateTreatmentID()
	})
}

// SetStudyType sets the "study_type" field.
func (u *StudyResultUpsertBulk) SetStudyType(v string) *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.SetStudyType(v)
	})
}

// UpdateStudyType sets the "study_type" field to the value that was provided on create.
func (u *StudyResultUpsertBulk) UpdateStudyType() *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.UpdateStudyType()
	})
}

// SetStudyName sets the "study_name" field.
func (u *StudyResultUpsertBulk) SetStudyName(v string) *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.SetStudyName(v)
	})
}

// UpdateStudyName sets the "study_name" field to the value that was provided on create.
func (u *StudyResultUpsertBulk) UpdateStudyName() *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.UpdateStudyName()
	})
}

// SetResultFileKey sets the "result_file_key" field.
func (u *StudyResultUpsertBulk) SetResultFileKey(v string) *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.SetResultFileKey(v)
	})
}

// UpdateResultFileKey sets the "result_file_key" field to the value that was provided on create.
func (u *StudyResultUpsertBulk) UpdateResultFileKey() *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.UpdateResultFileKey()
	})
}

// ClearResultFileKey clears the value of the "result_file_key" field.
func (u *StudyResultUpsertBulk) ClearResultFileKey() *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.ClearResultFileKey()
	})
}

// SetResultText sets the "result_text" field.
func (u *StudyResultUpsertBulk) SetResultText(v string) *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.SetResultText(v)
	})
}

// UpdateResultText sets the "result_text" field to the value that was provided on create.
func (u *StudyResultUpsertBulk) UpdateResultText() *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.UpdateResultText()
	})
}

// ClearResultText clears the value of the "result_text" field.
func (u *StudyResultUpsertBulk) ClearResultText() *StudyResultUpsertBulk {
	return u.Update(func(s *StudyResultUpsert) {
		s.ClearResultText()
	})
}

// Exec executes the query.
func (u *StudyResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the StudyResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StudyResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
