package content

import "strings"

// Stage describes how far a subtopic has progressed through its one-way
// content lifecycle: Empty → LessonReady → {VideoReady | VideoAbsent} →
// QuizReady. There is no regenerate transition.
type Stage int

const (
	StageEmpty Stage = iota
	StageLessonReady
	StageVideoReady
	StageVideoAbsent
	StageQuizReady
)

func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "empty"
	case StageLessonReady:
		return "lesson-ready"
	case StageVideoReady:
		return "video-ready"
	case StageVideoAbsent:
		return "video-absent"
	case StageQuizReady:
		return "quiz-ready"
	}
	return "unknown"
}

// StageOf derives the lifecycle stage from a subtopic's persisted fields.
// hasQuiz reports whether a complete quiz set exists for the node.
func StageOf(sub Subtopic, hasQuiz bool) Stage {
	if !sub.HasLesson {
		return StageEmpty
	}
	if hasQuiz {
		return StageQuizReady
	}
	if !sub.VideoChecked {
		return StageLessonReady
	}
	if sub.VideoURL != "" {
		return StageVideoReady
	}
	return StageVideoAbsent
}

// NormalizeTopic produces the cache key for course lookup: lowercased with
// runs of whitespace collapsed to single spaces.
func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.Join(strings.Fields(topic), " "))
}
