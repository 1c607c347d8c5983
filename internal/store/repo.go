package store

import (
	"context"
	"time"

	"github.com/abhisek/quizwoiz/internal/llm"
	"github.com/abhisek/quizwoiz/internal/quizgen"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventRecord is a stored LLM request event as read back from
// the database. The payload type lives in the llm package so the
// provider middleware can record events without depending on the store.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	llm.RequestEvent
}

// LLMUsageStats aggregates token usage per purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AttemptEventData captures one completed quiz run.
type AttemptEventData struct {
	SessionID    string
	QuizID       string
	Title        string
	Category     string
	Total        int
	Correct      int
	Percentage   int
	DurationSecs int
}

// AttemptRecord is a stored attempt as read back from the database.
type AttemptRecord struct {
	ID        int
	Timestamp time.Time
	AttemptEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data llm.RequestEvent) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns the event with the given ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendAttempt records a completed quiz run.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// QueryAttempts returns attempt records, newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)
}

// QuizRepo manages saved quizzes.
type QuizRepo interface {
	// Save stores a quiz. The quiz ID must be set and unique.
	Save(ctx context.Context, q quizgen.Quiz) error

	// List returns saved quizzes, newest first. limit 0 means unlimited.
	List(ctx context.Context, limit int) ([]quizgen.Quiz, error)

	// Get returns the quiz with the given ID, or nil if not found.
	Get(ctx context.Context, id string) (*quizgen.Quiz, error)

	// Delete removes a saved quiz. Reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
