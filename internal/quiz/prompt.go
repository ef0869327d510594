package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/content"
)

const quizSystemPrompt = `You write comprehension quizzes for course lessons. Every question must be answerable from the lesson text alone, with exactly one defensible correct answer.`

func buildQuizUserMessage(sc *content.SubtopicContext, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Course: %s\n", sc.CourseTitle))
	b.WriteString(fmt.Sprintf("Subtopic: %s\n", sc.Subtopic.Title))
	b.WriteString("\nLesson text:\n")
	b.WriteString(sc.Subtopic.Content)
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf(`
Instructions:
Write exactly %d multiple-choice questions about the lesson above:
1. Each question has four options (A-D) and exactly one correct answer.
2. Wrong options must be plausible, not obviously absurd.
3. Cover different parts of the lesson. Do not ask two questions about the same fact.
4. Test understanding, not trivia. Prefer "why" and "what happens if" over verbatim recall.
5. Give a one-to-two sentence explanation for each correct answer.`, cfg.NumQuestions))

	return b.String()
}
