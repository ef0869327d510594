package quiz

import (
	"fmt"
	"strings"
)

// questionOutput is the raw LLM form of one question before validation.
type questionOutput struct {
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// validateSet checks a whole quiz set. A single bad record rejects the set:
// partial quiz sets are never persisted, so there is nothing useful to
// salvage from the rest.
func validateSet(qs []questionOutput, want int) error {
	if len(qs) != want {
		return fmt.Errorf("got %d questions, want exactly %d", len(qs), want)
	}
	for i, q := range qs {
		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func validateQuestion(q questionOutput) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("empty question text")
	}
	for letter, opt := range map[string]string{
		"A": q.OptionA, "B": q.OptionB, "C": q.OptionC, "D": q.OptionD,
	} {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("empty option %s", letter)
		}
	}
	switch q.CorrectAnswer {
	case "A", "B", "C", "D":
	default:
		return fmt.Errorf("correct_answer %q is not one of A-D", q.CorrectAnswer)
	}
	return nil
}
