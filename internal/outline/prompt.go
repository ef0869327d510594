package outline

import (
	"fmt"
	"strings"
)

const outlineSystemPrompt = `You are an experienced curriculum designer. You structure any subject into a clear, progressive course outline that takes a motivated beginner to working competence.`

func buildOutlineUserMessage(topic string, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))

	b.WriteString(fmt.Sprintf(`
Instructions:
Design a course outline for this topic:
1. Produce %d to %d modules, ordered so each builds on the previous ones.
2. Give every module %d to %d subtopics. Each subtopic is one focused lesson a learner can finish in a single sitting.
3. Titles must be concrete and specific to the topic. Avoid filler like "Introduction to the basics".
4. Start from fundamentals and end with applied or advanced material.
5. Do not include quizzes, exercises, or a final exam as subtopics. Every subtopic is teachable content.`,
		cfg.MinModules, cfg.MaxModules, cfg.MinSubtopics, cfg.MaxSubtopics))

	return b.String()
}
