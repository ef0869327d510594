// Code generated by ent, DO NOT EDIT.

package subtopic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the subtopic type in the database.
	Label = "subtopic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldModuleID holds the string denoting the module_id field in the database.
	FieldModuleID = "module_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldReadingMinutes holds the string denoting the reading_minutes field in the database.
	FieldReadingMinutes = "reading_minutes"
	// FieldYoutubeKeywords holds the string denoting the youtube_keywords field in the database.
	FieldYoutubeKeywords = "youtube_keywords"
	// FieldVideoURL holds the string denoting the video_url field in the database.
	FieldVideoURL = "video_url"
	// FieldVideoTitle holds the string denoting the video_title field in the database.
	FieldVideoTitle = "video_title"
	// FieldVideoChecked holds the string denoting the video_checked field in the database.
	FieldVideoChecked = "video_checked"
	// FieldIsGenerated holds the string denoting the is_generated field in the database.
	FieldIsGenerated = "is_generated"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeModule holds the string denoting the module edge name in mutations.
	EdgeModule = "module"
	// EdgeQuizzes holds the string denoting the quizzes edge name in mutations.
	EdgeQuizzes = "quizzes"
	// EdgeProgress holds the string denoting the progress edge name in mutations.
	EdgeProgress = "progress"
	// Table holds the table name of the subtopic in the database.
	Table = "subtopics"
	// ModuleTable is the table that holds the module relation/edge.
	ModuleTable = "subtopics"
	// ModuleInverseTable is the table name for the Module entity.
	// It exists in this package in order to avoid circular dependency with the "module" package.
	ModuleInverseTable = "modules"
	// ModuleColumn is the table column denoting the module relation/edge.
	ModuleColumn = "module_id"
	// QuizzesTable is the table that holds the quizzes relation/edge.
	QuizzesTable = "quizs"
	// QuizzesInverseTable is the table name for the Quiz entity.
	// It exists in this package in order to avoid circular dependency with the "quiz" package.
	QuizzesInverseTable = "quizs"
	// QuizzesColumn is the table column denoting the quizzes relation/edge.
	QuizzesColumn = "subtopic_id"
	// ProgressTable is the table that holds the progress relation/edge.
	ProgressTable = "progresses"
	// ProgressInverseTable is the table name for the Progress entity.
	// It exists in this package in order to avoid circular dependency with the "progress" package.
	ProgressInverseTable = "progresses"
	// ProgressColumn is the table column denoting the progress relation/edge.
	ProgressColumn = "subtopic_id"
)

// Columns holds all SQL columns for subtopic fields.
var Columns = []string{
	FieldID,
	FieldModuleID,
	FieldTitle,
	FieldOrderIndex,
	FieldContent,
	FieldReadingMinutes,
	FieldYoutubeKeywords,
	FieldVideoURL,
	FieldVideoTitle,
	FieldVideoChecked,
	FieldIsGenerated,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// OrderIndexValidator is a validator for the "order_index" field. It is called by the builders before save.
	OrderIndexValidator func(int) error
	// DefaultVideoChecked holds the default value on creation for the "video_checked" field.
	DefaultVideoChecked bool
	// DefaultIsGenerated holds the default value on creation for the "is_generated" field.
	DefaultIsGenerated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Subtopic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByModuleID orders the results by the module_id field.
func ByModuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByOrderIndex orders the results by the order_index field.
func ByOrderIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderIndex, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByReadingMinutes orders the results by the reading_minutes field.
func ByReadingMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingMinutes, opts...).ToFunc()
}

// ByYoutubeKeywords orders the results by the youtube_keywords field.
func ByYoutubeKeywords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYoutubeKeywords, opts...).ToFunc()
}

// ByVideoURL orders the results by the video_url field.
func ByVideoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoURL, opts...).ToFunc()
}

// ByVideoTitle orders the results by the video_title field.
func ByVideoTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoTitle, opts...).ToFunc()
}

// ByVideoChecked orders the results by the video_checked field.
func ByVideoChecked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoChecked, opts...).ToFunc()
}

// ByIsGenerated orders the results by the is_generated field.
func ByIsGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsGenerated, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByModuleField orders the results by module field.
func ByModuleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newModuleStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuizzesCount orders the results by quizzes count.
func ByQuizzesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuizzesStep(), opts...)
	}
}

// ByQuizzes orders the results by quizzes terms.
func ByQuizzes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuizzesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByProgressCount orders the results by progress count.
func ByProgressCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProgressStep(), opts...)
	}
}

// ByProgress orders the results by progress terms.
func ByProgress(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProgressStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newModuleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ModuleInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ModuleTable, ModuleColumn),
	)
}
func newQuizzesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuizzesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuizzesTable, QuizzesColumn),
	)
}
func newProgressStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProgressInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProgressTable, ProgressColumn),
	)
}
