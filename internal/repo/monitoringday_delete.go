// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fertitrack/fertitrack_backend/internal/repo/monitoringday"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
)

// MonitoringDayDelete is the builder for deleting a MonitoringDay entity.
type MonitoringDayDelete struct {
	config
	hooks    []Hook
	mutation *MonitoringDayMutation
}

// Where appends a list predicates to the MonitoringDayDelete builder.
func (_d *MonitoringDayDelete) Where(ps ...predicate.MonitoringDay) *MonitoringDayDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MonitoringDayDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonitoringDayDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MonitoringDayDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(monitoringday.Table, sqlgraph.NewFieldSpec(monitoringday.FieldID, field.TypeUUID))
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

// MonitoringDayDeleteOne is the builder for deleting a single MonitoringDay entity.
type MonitoringDayDeleteOne struct {
	_d *MonitoringDayDelete
}

// Where appends a list predicates to the MonitoringDayDelete builder.
func (_d *MonitoringDayDeleteOne) Where(ps ...predicate.MonitoringDay) *MonitoringDayDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MonitoringDayDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{monitoringday.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonitoringDayDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
