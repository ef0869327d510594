// Package content defines the domain types and failure taxonomy shared by
// the store and the generators. The generators accept these plain structs so
// they can be tested against fakes without a database.
package content

import (
	"time"

	"github.com/google/uuid"
)

// User is a learner identified by username.
type User struct {
	ID        int
	Username  string
	Email     string
	CreatedAt time.Time
}

// Course is the root of one generated content tree.
type Course struct {
	ID          int
	UserID      int
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Modules is populated by tree queries, ordered by OrderIndex.
	Modules []Module
}

// Module is one chapter of a course.
type Module struct {
	ID          int
	CourseID    int
	Title       string
	Description string
	OrderIndex  int

	// Subtopics is populated by tree queries, ordered by OrderIndex.
	Subtopics []Subtopic
}

// Subtopic is a single lesson node within a module.
type Subtopic struct {
	ID         int
	ModuleID   int
	Title      string
	OrderIndex int

	// Content is the generated lesson text. Empty until lesson generation
	// completes; HasLesson distinguishes "empty" from "generated empty".
	Content        string
	HasLesson      bool
	ReadingMinutes int

	Keywords     string
	VideoURL     string
	VideoTitle   string
	VideoChecked bool

	Generated bool
	UpdatedAt time.Time
}

// SubtopicContext bundles a subtopic with the surrounding titles the
// generators use for prompt continuity.
type SubtopicContext struct {
	Subtopic     Subtopic
	ModuleTitle  string
	CourseTitle  string
	EarlierTitles []string // titles of siblings with a lower order index
}

// QuizQuestion is one multiple-choice question of a subtopic's quiz set.
type QuizQuestion struct {
	ID            int
	SubtopicID    int
	Question      string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectAnswer string // "A".."D"
	Explanation   string
	OrderIndex    int
}

// Option returns the text for an answer letter, or "" for an unknown letter.
func (q QuizQuestion) Option(letter string) string {
	switch letter {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

// ProgressRecord is the input for recording one attempt.
type ProgressRecord struct {
	UserID     int
	SubtopicID int
	QuizID     int // 0 when the attempt is not tied to a quiz question
	Score      *float64
	Completed  bool
	TimeSpent  time.Duration
}

// ProgressRow is one persisted attempt. SubtopicID and QuizID are pointers
// because progress history survives deletion of the content it refers to.
type ProgressRow struct {
	ID         int
	AttemptID  uuid.UUID
	UserID     int
	SubtopicID *int
	QuizID     *int
	Score      *float64
	Completed  bool
	TimeSpent  time.Duration
	CreatedAt  time.Time
}

// Outline is a validated module/subtopic tree before persistence.
type Outline struct {
	Modules []OutlineModule
}

// OutlineModule is one module of an outline with its subtopic titles in
// generation order.
type OutlineModule struct {
	Title       string
	Description string
	Subtopics   []string
}
