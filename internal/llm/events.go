package llm

import "context"

// RequestEvent captures one completed provider call for the event log.
type RequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRecorder persists request events. The store's event repository
// satisfies it; declaring the interface here keeps the provider stack
// free of storage dependencies.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, data RequestEvent) error
}
