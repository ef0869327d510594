package lesson

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/content"
)

const lessonSystemPrompt = `You are a skilled teacher writing self-paced course material. You explain one subtopic at a time, clearly and concretely, assuming the reader has followed the course up to this point.`

func buildLessonUserMessage(sc *content.SubtopicContext, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Course: %s\n", sc.CourseTitle))
	b.WriteString(fmt.Sprintf("Module: %s\n", sc.ModuleTitle))
	b.WriteString(fmt.Sprintf("Subtopic to teach: %s\n", sc.Subtopic.Title))

	b.WriteString("\nAlready covered in this module:\n")
	if len(sc.EarlierTitles) == 0 {
		b.WriteString("Nothing yet. This is the first subtopic.\n")
	} else {
		for _, t := range sc.EarlierTitles {
			b.WriteString(fmt.Sprintf("- %s\n", t))
		}
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Write the lesson for the subtopic above:
1. Aim for roughly %d words. Cover the subtopic fully.
2. Use Markdown: a short introduction, section headings, and at least one concrete worked example.
3. Build on what was already covered. Do not re-teach earlier subtopics.
4. Do not preview later material or add quizzes or exercises.
5. End with a short summary of the key points.`, cfg.TargetWords))

	return b.String()
}
