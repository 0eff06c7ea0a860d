// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fertitrack/fertitrack_backend/internal/repo/studyresult"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/google/uuid"
)

// StudyResult is the model entity for the StudyResult schema.
type StudyResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// TreatmentID holds the value of the "treatment_id" field.
	TreatmentID uuid.UUID `json:"treatment_id,omitempty"`
	// StudyType holds the value of the "study_type" field.
	StudyType string `json:"study_type,omitempty"`
	// StudyName holds the value of the "study_name" field.
	StudyName string `json:"study_name,omitempty"`
	// Object storage key of the uploaded result file
	ResultFileKey *string `json:"result_file_key,omitempty"`
	// ResultText holds the value of the "result_text" field.
	ResultText *string `json:"result_text,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudyResultQuery when eager-loading is set.
	Edges        StudyResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudyResultEdges holds the relations/edges for other nodes in the graph.
type StudyResultEdges struct {
	// Treatment holds the value of the treatment edge.
	Treatment *Treatment `json:"treatment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TreatmentOrErr returns the Treatment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StudyResultEdges) TreatmentOrErr() (*Treatment, error) {
	if e.Treatment != nil {
		return e.Treatment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: treatment.Label}
	}
	return nil, &NotLoadedError{edge: "treatment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudyResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studyresult.FieldStudyType, studyresult.FieldStudyName, studyresult.FieldResultFileKey, studyresult.FieldResultText:
			values[i] = new(sql.NullString)
		case studyresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case studyresult.FieldID, studyresult.FieldTreatmentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudyResult fields.
func (_m *StudyResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studyresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case studyresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case studyresult.FieldTreatmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field treatment_id", values[i])
			} else if value != nil {
				_m.TreatmentID = *value
			}
		case studyresult.FieldStudyType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field study_type", values[i])
			} else if value.Valid {
				_m.StudyType = value.String
			}
		case studyresult.FieldStudyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field study_name", values[i])
			} else if value.Valid {
				_m.StudyName = value.String
			}
		case studyresult.FieldResultFileKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_file_key", values[i])
			} else if value.Valid {
				_m.ResultFileKey = new(string)
				*_m.ResultFileKey = value.String
			}
		case studyresult.FieldResultText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_text", values[i])
			} else if value.Valid {
				_m.ResultText = new(string)
				*_m.ResultText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudyResult.
// This includes values selected through modifiers, order, etc.
func (_m *StudyResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTreatment queries the "treatment" edge of the StudyResult entity.
func (_m *StudyResult) QueryTreatment() *TreatmentQuery {
	return NewStudyResultClient(_m.config).QueryTreatment(_m)
}

// Update returns a builder for updating this StudyResult.
// Note that you need to call StudyResult.Unwrap() before calling this method if this StudyResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudyResult) Update() *StudyResultUpdateOne {
	return NewStudyResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudyResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudyResult) Unwrap() *StudyResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: StudyResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudyResult) String() string {
	var builder strings.Builder
	builder.WriteString("StudyResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("treatment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TreatmentID))
	builder.WriteString(", ")
	builder.WriteString("study_type=")
	builder.WriteString(_m.StudyType)
	builder.WriteString(", ")
	builder.WriteString("study_name=")
	builder.WriteString(_m.StudyName)
	builder.WriteString(", ")
	if v := _m.ResultFileKey; v != nil {
		builder.WriteString("result_file_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResultText; v != nil {
		builder.WriteString("result_text=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// StudyResults is a parsable slice of StudyResult.
type StudyResults []*StudyResult
