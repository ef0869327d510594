// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/coursegen/ent/course"
	"github.com/abhisek/coursegen/ent/llmcall"
	"github.com/abhisek/coursegen/ent/module"
	"github.com/abhisek/coursegen/ent/progress"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/schema"
	"github.com/abhisek/coursegen/ent/subtopic"
	"github.com/abhisek/coursegen/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescTitle is the schema descriptor for title field.
	courseDescTitle := courseFields[1].Descriptor()
	// course.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	course.TitleValidator = courseDescTitle.Validators[0].(func(string) error)
	// courseDescTopicKey is the schema descriptor for topic_key field.
	courseDescTopicKey := courseFields[2].Descriptor()
	// course.TopicKeyValidator is a validator for the "topic_key" field. It is called by the builders before save.
	course.TopicKeyValidator = courseDescTopicKey.Validators[0].(func(string) error)
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[4].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	// courseDescUpdatedAt is the schema descriptor for updated_at field.
	courseDescUpdatedAt := courseFields[5].Descriptor()
	// course.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	course.DefaultUpdatedAt = courseDescUpdatedAt.Default.(func() time.Time)
	// course.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	course.UpdateDefaultUpdatedAt = courseDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmcallFields := schema.LLMCall{}.Fields()
	_ = llmcallFields
	// llmcallDescProvider is the schema descriptor for provider field.
	llmcallDescProvider := llmcallFields[0].Descriptor()
	// llmcall.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmcall.ProviderValidator = llmcallDescProvider.Validators[0].(func(string) error)
	// llmcallDescModel is the schema descriptor for model field.
	llmcallDescModel := llmcallFields[1].Descriptor()
	// llmcall.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmcall.ModelValidator = llmcallDescModel.Validators[0].(func(string) error)
	// llmcallDescPurpose is the schema descriptor for purpose field.
	llmcallDescPurpose := llmcallFields[2].Descriptor()
	// llmcall.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmcall.PurposeValidator = llmcallDescPurpose.Validators[0].(func(string) error)
	// llmcallDescInputTokens is the schema descriptor for input_tokens field.
	llmcallDescInputTokens := llmcallFields[3].Descriptor()
	// llmcall.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmcall.DefaultInputTokens = llmcallDescInputTokens.Default.(int)
	// llmcallDescOutputTokens is the schema descriptor for output_tokens field.
	llmcallDescOutputTokens := llmcallFields[4].Descriptor()
	// llmcall.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmcall.DefaultOutputTokens = llmcallDescOutputTokens.Default.(int)
	// llmcallDescLatencyMs is the schema descriptor for latency_ms field.
	llmcallDescLatencyMs := llmcallFields[5].Descriptor()
	// llmcall.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmcall.DefaultLatencyMs = llmcallDescLatencyMs.Default.(int64)
	// llmcallDescCreatedAt is the schema descriptor for created_at field.
	llmcallDescCreatedAt := llmcallFields[8].Descriptor()
	// llmcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmcall.DefaultCreatedAt = llmcallDescCreatedAt.Default.(func() time.Time)
	moduleFields := schema.Module{}.Fields()
	_ = moduleFields
	// moduleDescTitle is the schema descriptor for title field.
	moduleDescTitle := moduleFields[1].Descriptor()
	// module.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	module.TitleValidator = moduleDescTitle.Validators[0].(func(string) error)
	// moduleDescOrderIndex is the schema descriptor for order_index field.
	moduleDescOrderIndex := moduleFields[3].Descriptor()
	// module.OrderIndexValidator is a validator for the "order_index" field. It is called by the builders before save.
	module.OrderIndexValidator = moduleDescOrderIndex.Validators[0].(func(int) error)
	// moduleDescCreatedAt is the schema descriptor for created_at field.
	moduleDescCreatedAt := moduleFields[4].Descriptor()
	// module.DefaultCreatedAt holds the default value on creation for the created_at field.
	module.DefaultCreatedAt = moduleDescCreatedAt.Default.(func() time.Time)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescAttemptID is the schema descriptor for attempt_id field.
	progressDescAttemptID := progressFields[3].Descriptor()
	// progress.DefaultAttemptID holds the default value on creation for the attempt_id field.
	progress.DefaultAttemptID = progressDescAttemptID.Default.(func() uuid.UUID)
	// progressDescScore is the schema descriptor for score field.
	progressDescScore := progressFields[4].Descriptor()
	// progress.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	progress.ScoreValidator = func() func(float64) error {
		validators := progressDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// progressDescCompleted is the schema descriptor for completed field.
	progressDescCompleted := progressFields[5].Descriptor()
	// progress.DefaultCompleted holds the default value on creation for the completed field.
	progress.DefaultCompleted = progressDescCompleted.Default.(bool)
	// progressDescTimeSpent is the schema descriptor for time_spent field.
	progressDescTimeSpent := progressFields[6].Descriptor()
	// progress.DefaultTimeSpent holds the default value on creation for the time_spent field.
	progress.DefaultTimeSpent = progressDescTimeSpent.Default.(int)
	// progress.TimeSpentValidator is a validator for the "time_spent" field. It is called by the builders before save.
	progress.TimeSpentValidator = progressDescTimeSpent.Validators[0].(func(int) error)
	// progressDescCreatedAt is the schema descriptor for created_at field.
	progressDescCreatedAt := progressFields[7].Descriptor()
	// progress.DefaultCreatedAt holds the default value on creation for the created_at field.
	progress.DefaultCreatedAt = progressDescCreatedAt.Default.(func() time.Time)
	quizFields := schema.Quiz{}.Fields()
	_ = quizFields
	// quizDescQuestion is the schema descriptor for question field.
	quizDescQuestion := quizFields[1].Descriptor()
	// quiz.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	quiz.QuestionValidator = quizDescQuestion.Validators[0].(func(string) error)
	// quizDescOptionA is the schema descriptor for option_a field.
	quizDescOptionA := quizFields[2].Descriptor()
	// quiz.OptionAValidator is a validator for the "option_a" field. It is called by the builders before save.
	quiz.OptionAValidator = quizDescOptionA.Validators[0].(func(string) error)
	// quizDescOptionB is the schema descriptor for option_b field.
	quizDescOptionB := quizFields[3].Descriptor()
	// quiz.OptionBValidator is a validator for the "option_b" field. It is called by the builders before save.
	quiz.OptionBValidator = quizDescOptionB.Validators[0].(func(string) error)
	// quizDescOptionC is the schema descriptor for option_c field.
	quizDescOptionC := quizFields[4].Descriptor()
	// quiz.OptionCValidator is a validator for the "option_c" field. It is called by the builders before save.
	quiz.OptionCValidator = quizDescOptionC.Validators[0].(func(string) error)
	// quizDescOptionD is the schema descriptor for option_d field.
	quizDescOptionD := quizFields[5].Descriptor()
	// quiz.OptionDValidator is a validator for the "option_d" field. It is called by the builders before save.
	quiz.OptionDValidator = quizDescOptionD.Validators[0].(func(string) error)
	// quizDescCorrectAnswer is the schema descriptor for correct_answer field.
	quizDescCorrectAnswer := quizFields[6].Descriptor()
	// quiz.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	quiz.CorrectAnswerValidator = func() func(string) error {
		validators := quizDescCorrectAnswer.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(correct_answer string) error {
			for _, fn := range fns {
				if err := fn(correct_answer); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// quizDescOrderIndex is the schema descriptor for order_index field.
	quizDescOrderIndex := quizFields[8].Descriptor()
	// quiz.OrderIndexValidator is a validator for the "order_index" field. It is called by the builders before save.
	quiz.OrderIndexValidator = quizDescOrderIndex.Validators[0].(func(int) error)
	// quizDescCreatedAt is the schema descriptor for created_at field.
	quizDescCreatedAt := quizFields[9].Descriptor()
	// quiz.DefaultCreatedAt holds the default value on creation for the created_at field.
	quiz.DefaultCreatedAt = quizDescCreatedAt.Default.(func() time.Time)
	subtopicFields := schema.Subtopic{}.Fields()
	_ = subtopicFields
	// subtopicDescTitle is the schema descriptor for title field.
	subtopicDescTitle := subtopicFields[1].Descriptor()
	// subtopic.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	subtopic.TitleValidator = subtopicDescTitle.Validators[0].(func(string) error)
	// subtopicDescOrderIndex is the schema descriptor for order_index field.
	subtopicDescOrderIndex := subtopicFields[2].Descriptor()
	// subtopic.OrderIndexValidator is a validator for the "order_index" field. It is called by the builders before save.
	subtopic.OrderIndexValidator = subtopicDescOrderIndex.Validators[0].(func(int) error)
	// subtopicDescVideoChecked is the schema descriptor for video_checked field.
	subtopicDescVideoChecked := subtopicFields[8].Descriptor()
	// subtopic.DefaultVideoChecked holds the default value on creation for the video_checked field.
	subtopic.DefaultVideoChecked = subtopicDescVideoChecked.Default.(bool)
	// subtopicDescIsGenerated is the schema descriptor for is_generated field.
	subtopicDescIsGenerated := subtopicFields[9].Descriptor()
	// subtopic.DefaultIsGenerated holds the default value on creation for the is_generated field.
	subtopic.DefaultIsGenerated = subtopicDescIsGenerated.Default.(bool)
	// subtopicDescCreatedAt is the schema descriptor for created_at field.
	subtopicDescCreatedAt := subtopicFields[10].Descriptor()
	// subtopic.DefaultCreatedAt holds the default value on creation for the created_at field.
	subtopic.DefaultCreatedAt = subtopicDescCreatedAt.Default.(func() time.Time)
	// subtopicDescUpdatedAt is the schema descriptor for updated_at field.
	subtopicDescUpdatedAt := subtopicFields[11].Descriptor()
	// subtopic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subtopic.DefaultUpdatedAt = subtopicDescUpdatedAt.Default.(func() time.Time)
	// subtopic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subtopic.UpdateDefaultUpdatedAt = subtopicDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[2].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
