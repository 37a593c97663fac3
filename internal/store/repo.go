package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
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

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SessionData captures a new planning session.
type SessionData struct {
	SessionID        string
	Source           string // "resume" or "manual"
	ExtractionMethod string // "llm", "pattern", or "" for manual
	ResumeText       string
	Skills           []string
}

// Session is a persisted planning session.
type Session struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionData
}

// AssessmentData captures one pipeline run against a target role.
type AssessmentData struct {
	SessionID       string
	TargetRole      string
	OverallScore    float64
	ReadinessLevel  string
	MissingCount    int
	NiceToHaveCount int
	RoadmapHours    int
	RoadmapSource   string
	DurationMs      int64
}

// Assessment is a persisted assessment event.
type Assessment struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AssessmentData
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendSession records a new planning session.
	AppendSession(ctx context.Context, data SessionData) error

	// QuerySessions returns sessions, newest first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]Session, error)

	// GetSession returns a session by its UUID, or nil if not found.
	GetSession(ctx context.Context, sessionID string) (*Session, error)

	// LatestSession returns the most recent session, or nil if none.
	LatestSession(ctx context.Context) (*Session, error)

	// AppendAssessment records a pipeline run.
	AppendAssessment(ctx context.Context, data AssessmentData) error

	// QueryAssessments returns assessments for a session, newest first.
	// An empty sessionID returns assessments across all sessions.
	QueryAssessments(ctx context.Context, sessionID string, opts QueryOpts) ([]Assessment, error)
}
