// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "topic_key", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "courses_users_courses",
				Columns:    []*schema.Column{CoursesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "course_user_id_topic_key",
				Unique:  true,
				Columns: []*schema.Column{CoursesColumns[6], CoursesColumns[2]},
			},
		},
	}
	// LlmCallsColumns holds the columns for the "llm_calls" table.
	LlmCallsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmCallsTable holds the schema information for the "llm_calls" table.
	LlmCallsTable = &schema.Table{
		Name:       "llm_calls",
		Columns:    LlmCallsColumns,
		PrimaryKey: []*schema.Column{LlmCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcall_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmCallsColumns[3]},
			},
			{
				Name:    "llmcall_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmCallsColumns[9]},
			},
		},
	}
	// ModulesColumns holds the columns for the "modules" table.
	ModulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeInt},
	}
	// ModulesTable holds the schema information for the "modules" table.
	ModulesTable = &schema.Table{
		Name:       "modules",
		Columns:    ModulesColumns,
		PrimaryKey: []*schema.Column{ModulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "modules_courses_modules",
				Columns:    []*schema.Column{ModulesColumns[5]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "module_course_id_order_index",
				Unique:  true,
				Columns: []*schema.Column{ModulesColumns[5], ModulesColumns[3]},
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeUUID, Unique: true},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "time_spent", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeInt, Nullable: true},
		{Name: "subtopic_id", Type: field.TypeInt, Nullable: true},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "progresses_quizs_progress",
				Columns:    []*schema.Column{ProgressesColumns[6]},
				RefColumns: []*schema.Column{QuizsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "progresses_subtopics_progress",
				Columns:    []*schema.Column{ProgressesColumns[7]},
				RefColumns: []*schema.Column{SubtopicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "progresses_users_progress",
				Columns:    []*schema.Column{ProgressesColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "progress_user_id_subtopic_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[8], ProgressesColumns[7]},
			},
			{
				Name:    "progress_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[5]},
			},
		},
	}
	// QuizsColumns holds the columns for the "quizs" table.
	QuizsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "option_a", Type: field.TypeString},
		{Name: "option_b", Type: field.TypeString},
		{Name: "option_c", Type: field.TypeString},
		{Name: "option_d", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString, Size: 1},
		{Name: "explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "subtopic_id", Type: field.TypeInt},
	}
	// QuizsTable holds the schema information for the "quizs" table.
	QuizsTable = &schema.Table{
		Name:       "quizs",
		Columns:    QuizsColumns,
		PrimaryKey: []*schema.Column{QuizsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quizs_subtopics_quizzes",
				Columns:    []*schema.Column{QuizsColumns[10]},
				RefColumns: []*schema.Column{SubtopicsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quiz_subtopic_id_order_index",
				Unique:  true,
				Columns: []*schema.Column{QuizsColumns[10], QuizsColumns[8]},
			},
		},
	}
	// SubtopicsColumns holds the columns for the "subtopics" table.
	SubtopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reading_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "youtube_keywords", Type: field.TypeString, Nullable: true},
		{Name: "video_url", Type: field.TypeString, Nullable: true},
		{Name: "video_title", Type: field.TypeString, Nullable: true},
		{Name: "video_checked", Type: field.TypeBool, Default: false},
		{Name: "is_generated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "module_id", Type: field.TypeInt},
	}
	// SubtopicsTable holds the schema information for the "subtopics" table.
	SubtopicsTable = &schema.Table{
		Name:       "subtopics",
		Columns:    SubtopicsColumns,
		PrimaryKey: []*schema.Column{SubtopicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subtopics_modules_subtopics",
				Columns:    []*schema.Column{SubtopicsColumns[12]},
				RefColumns: []*schema.Column{ModulesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subtopic_module_id_order_index",
				Unique:  true,
				Columns: []*schema.Column{SubtopicsColumns[12], SubtopicsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CoursesTable,
		LlmCallsTable,
		ModulesTable,
		ProgressesTable,
		QuizsTable,
		SubtopicsTable,
		UsersTable,
	}
)

func init() {
	CoursesTable.ForeignKeys[0].RefTable = UsersTable
	ModulesTable.ForeignKeys[0].RefTable = CoursesTable
	ProgressesTable.ForeignKeys[0].RefTable = QuizsTable
	ProgressesTable.ForeignKeys[1].RefTable = SubtopicsTable
	ProgressesTable.ForeignKeys[2].RefTable = UsersTable
	QuizsTable.ForeignKeys[0].RefTable = SubtopicsTable
	SubtopicsTable.ForeignKeys[0].RefTable = ModulesTable
}
