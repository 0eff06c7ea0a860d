// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
)

// OocyteStateHistoryDelete is the builder for deleting a OocyteStateHistory entity.
type OocyteStateHistoryDelete struct {
	config
	hooks    []Hook
	mutation *OocyteStateHistoryMutation
}

// Where appends a list predicates to the OocyteStateHistoryDelete builder.
func (_d *OocyteStateHistoryDelete) Where(ps ...predicate.OocyteStateHistory) *OocyteStateHistoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OocyteStateHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OocyteStateHistoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OocyteStateHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(oocytestatehistory.Table, sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// OocyteStateHistoryDeleteOne is the builder for deleting a single OocyteStateHistory entity.
type OocyteStateHistoryDeleteOne struct {
	_d *OocyteStateHistoryDelete
}

// Where appends a list predicates to the OocyteStateHistoryDelete builder.
func (_d *OocyteStateHistoryDeleteOne) Where(ps ...predicate.OocyteStateHistory) *OocyteStateHistoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OocyteStateHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{oocytestatehistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OocyteStateHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
