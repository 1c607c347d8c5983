// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/quizwoiz/ent/attemptevent"
	"github.com/abhisek/quizwoiz/ent/llmrequestevent"
	"github.com/abhisek/quizwoiz/ent/quiz"
	"github.com/abhisek/quizwoiz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescQuizID is the schema descriptor for quiz_id field.
	attempteventDescQuizID := attempteventFields[1].Descriptor()
	// attemptevent.DefaultQuizID holds the default value on creation for the quiz_id field.
	attemptevent.DefaultQuizID = attempteventDescQuizID.Default.(string)
	// attempteventDescTitle is the schema descriptor for title field.
	attempteventDescTitle := attempteventFields[2].Descriptor()
	// attemptevent.DefaultTitle holds the default value on creation for the title field.
	attemptevent.DefaultTitle = attempteventDescTitle.Default.(string)
	// attempteventDescCategory is the schema descriptor for category field.
	attempteventDescCategory := attempteventFields[3].Descriptor()
	// attemptevent.DefaultCategory holds the default value on creation for the category field.
	attemptevent.DefaultCategory = attempteventDescCategory.Default.(string)
	// attempteventDescTotalQuestions is the schema descriptor for total_questions field.
	attempteventDescTotalQuestions := attempteventFields[4].Descriptor()
	// attemptevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	attemptevent.DefaultTotalQuestions = attempteventDescTotalQuestions.Default.(int)
	// attempteventDescCorrectAnswers is the schema descriptor for correct_answers field.
	attempteventDescCorrectAnswers := attempteventFields[5].Descriptor()
	// attemptevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	attemptevent.DefaultCorrectAnswers = attempteventDescCorrectAnswers.Default.(int)
	// attempteventDescPercentage is the schema descriptor for percentage field.
	attempteventDescPercentage := attempteventFields[6].Descriptor()
	// attemptevent.DefaultPercentage holds the default value on creation for the percentage field.
	attemptevent.DefaultPercentage = attempteventDescPercentage.Default.(int)
	// attempteventDescDurationSecs is the schema descriptor for duration_secs field.
	attempteventDescDurationSecs := attempteventFields[7].Descriptor()
	// attemptevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	attemptevent.DefaultDurationSecs = attempteventDescDurationSecs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizFields := schema.Quiz{}.Fields()
	_ = quizFields
	// quizDescQuizID is the schema descriptor for quiz_id field.
	quizDescQuizID := quizFields[0].Descriptor()
	// quiz.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quiz.QuizIDValidator = quizDescQuizID.Validators[0].(func(string) error)
	// quizDescTitle is the schema descriptor for title field.
	quizDescTitle := quizFields[1].Descriptor()
	// quiz.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	quiz.TitleValidator = quizDescTitle.Validators[0].(func(string) error)
	// quizDescCreatedAt is the schema descriptor for created_at field.
	quizDescCreatedAt := quizFields[4].Descriptor()
	// quiz.DefaultCreatedAt holds the default value on creation for the created_at field.
	quiz.DefaultCreatedAt = quizDescCreatedAt.Default.(func() time.Time)
}
