package content

import "testing"

func TestStageOf(t *testing.T) {
	tests := []struct {
		name    string
		sub     Subtopic
		hasQuiz bool
		want    Stage
	}{
		{"new subtopic", Subtopic{}, false, StageEmpty},
		{"lesson only", Subtopic{HasLesson: true}, false, StageLessonReady},
		{
			"lesson and video",
			Subtopic{HasLesson: true, VideoChecked: true, VideoURL: "https://www.youtube.com/watch?v=abc"},
			false,
			StageVideoReady,
		},
		{
			"lesson, no qualifying video",
			Subtopic{HasLesson: true, VideoChecked: true},
			false,
			StageVideoAbsent,
		},
		{
			"quiz after video",
			Subtopic{HasLesson: true, VideoChecked: true, VideoURL: "https://www.youtube.com/watch?v=abc"},
			true,
			StageQuizReady,
		},
		{
			"quiz without video check",
			Subtopic{HasLesson: true},
			true,
			StageQuizReady,
		},
		// A quiz row without a lesson cannot exist, but the derivation
		// still reports the node as empty rather than quiz-ready.
		{"quiz without lesson", Subtopic{}, true, StageEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StageOf(tt.sub, tt.hasQuiz); got != tt.want {
				t.Errorf("StageOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageEmpty, "empty"},
		{StageLessonReady, "lesson-ready"},
		{StageVideoReady, "video-ready"},
		{StageVideoAbsent, "video-absent"},
		{StageQuizReady, "quiz-ready"},
		{Stage(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}
