// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/module"
	"github.com/abhisek/coursegen/ent/subtopic"
)

// Subtopic is the model entity for the Subtopic schema.
type Subtopic struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ModuleID holds the value of the "module_id" field.
	ModuleID int `json:"module_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Dense zero-based position within the module
	OrderIndex int `json:"order_index,omitempty"`
	// Generated lesson text, markdown
	Content *string `json:"content,omitempty"`
	// ceil(word count / reading speed), set with content
	ReadingMinutes *int `json:"reading_minutes,omitempty"`
	// YoutubeKeywords holds the value of the "youtube_keywords" field.
	YoutubeKeywords *string `json:"youtube_keywords,omitempty"`
	// VideoURL holds the value of the "video_url" field.
	VideoURL *string `json:"video_url,omitempty"`
	// VideoTitle holds the value of the "video_title" field.
	VideoTitle *string `json:"video_title,omitempty"`
	// VideoChecked holds the value of the "video_checked" field.
	VideoChecked bool `json:"video_checked,omitempty"`
	// IsGenerated holds the value of the "is_generated" field.
	IsGenerated bool `json:"is_generated,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubtopicQuery when eager-loading is set.
	Edges        SubtopicEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubtopicEdges holds the relations/edges for other nodes in the graph.
type SubtopicEdges struct {
	// Module holds the value of the module edge.
	Module *Module `json:"module,omitempty"`
	// Quizzes holds the value of the quizzes edge.
	Quizzes []*Quiz `json:"quizzes,omitempty"`
	// Progress holds the value of the progress edge.
	Progress []*Progress `json:"progress,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ModuleOrErr returns the Module value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubtopicEdges) ModuleOrErr() (*Module, error) {
	if e.Module != nil {
		return e.Module, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: module.Label}
	}
	return nil, &NotLoadedError{edge: "module"}
}

// QuizzesOrErr returns the Quizzes value or an error if the edge
// was not loaded in eager-loading.
func (e SubtopicEdges) QuizzesOrErr() ([]*Quiz, error) {
	if e.loadedTypes[1] {
		return e.Quizzes, nil
	}
	return nil, &NotLoadedError{edge: "quizzes"}
}

// ProgressOrErr returns the Progress value or an error if the edge
// was not loaded in eager-loading.
func (e SubtopicEdges) ProgressOrErr() ([]*Progress, error) {
	if e.loadedTypes[2] {
		return e.Progress, nil
	}
	return nil, &NotLoadedError{edge: "progress"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subtopic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subtopic.FieldVideoChecked, subtopic.FieldIsGenerated:
			values[i] = new(sql.NullBool)
		case subtopic.FieldID, subtopic.FieldModuleID, subtopic.FieldOrderIndex, subtopic.FieldReadingMinutes:
			values[i] = new(sql.NullInt64)
		case subtopic.FieldTitle, subtopic.FieldContent, subtopic.FieldYoutubeKeywords, subtopic.FieldVideoURL, subtopic.FieldVideoTitle:
			values[i] = new(sql.NullString)
		case subtopic.FieldCreatedAt, subtopic.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subtopic fields.
func (_m *Subtopic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subtopic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subtopic.FieldModuleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = int(value.Int64)
			}
		case subtopic.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case subtopic.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		case subtopic.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = new(string)
				*_m.Content = value.String
			}
		case subtopic.FieldReadingMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reading_minutes", values[i])
			} else if value.Valid {
				_m.ReadingMinutes = new(int)
				*_m.ReadingMinutes = int(value.Int64)
			}
		case subtopic.FieldYoutubeKeywords:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field youtube_keywords", values[i])
			} else if value.Valid {
				_m.YoutubeKeywords = new(string)
				*_m.YoutubeKeywords = value.String
			}
		case subtopic.FieldVideoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_url", values[i])
			} else if value.Valid {
				_m.VideoURL = new(string)
				*_m.VideoURL = value.String
			}
		case subtopic.FieldVideoTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_title", values[i])
			} else if value.Valid {
				_m.VideoTitle = new(string)
				*_m.VideoTitle = value.String
			}
		case subtopic.FieldVideoChecked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field video_checked", values[i])
			} else if value.Valid {
				_m.VideoChecked = value.Bool
			}
		case subtopic.FieldIsGenerated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_generated", values[i])
			} else if value.Valid {
				_m.IsGenerated = value.Bool
			}
		case subtopic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case subtopic.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Subtopic.
// This includes values selected through modifiers, order, etc.
func (_m *Subtopic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryModule queries the "module" edge of the Subtopic entity.
func (_m *Subtopic) QueryModule() *ModuleQuery {
	return NewSubtopicClient(_m.config).QueryModule(_m)
}

// QueryQuizzes queries the "quizzes" edge of the Subtopic entity.
func (_m *Subtopic) QueryQuizzes() *QuizQuery {
	return NewSubtopicClient(_m.config).QueryQuizzes(_m)
}

// QueryProgress queries the "progress" edge of the Subtopic entity.
func (_m *Subtopic) QueryProgress() *ProgressQuery {
	return NewSubtopicClient(_m.config).QueryProgress(_m)
}

// Update returns a builder for updating this Subtopic.
// Note that you need to call Subtopic.Unwrap() before calling this method if this Subtopic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Subtopic) Update() *SubtopicUpdateOne {
	return NewSubtopicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Subtopic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Subtopic) Unwrap() *Subtopic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subtopic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Subtopic) String() string {
	var builder strings.Builder
	builder.WriteString("Subtopic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("module_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModuleID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteString(", ")
	if v := _m.Content; v != nil {
		builder.WriteString("content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReadingMinutes; v != nil {
		builder.WriteString("reading_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.YoutubeKeywords; v != nil {
		builder.WriteString("youtube_keywords=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VideoURL; v != nil {
		builder.WriteString("video_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VideoTitle; v != nil {
		builder.WriteString("video_title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("video_checked=")
	builder.WriteString(fmt.Sprintf("%v", _m.VideoChecked))
	builder.WriteString(", ")
	builder.WriteString("is_generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsGenerated))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Subtopics is a parsable slice of Subtopic.
type Subtopics []*Subtopic
