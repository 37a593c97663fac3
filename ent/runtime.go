// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pathfinder/ent/assessmentevent"
	"github.com/abhisek/pathfinder/ent/llmrequestevent"
	"github.com/abhisek/pathfinder/ent/schema"
	"github.com/abhisek/pathfinder/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[0].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescTargetRole is the schema descriptor for target_role field.
	assessmenteventDescTargetRole := assessmenteventFields[1].Descriptor()
	// assessmentevent.TargetRoleValidator is a validator for the "target_role" field. It is called by the builders before save.
	assessmentevent.TargetRoleValidator = assessmenteventDescTargetRole.Validators[0].(func(string) error)
	// assessmenteventDescOverallScore is the schema descriptor for overall_score field.
	assessmenteventDescOverallScore := assessmenteventFields[2].Descriptor()
	// assessmentevent.DefaultOverallScore holds the default value on creation for the overall_score field.
	assessmentevent.DefaultOverallScore = assessmenteventDescOverallScore.Default.(float64)
	// assessmenteventDescReadinessLevel is the schema descriptor for readiness_level field.
	assessmenteventDescReadinessLevel := assessmenteventFields[3].Descriptor()
	// assessmentevent.DefaultReadinessLevel holds the default value on creation for the readiness_level field.
	assessmentevent.DefaultReadinessLevel = assessmenteventDescReadinessLevel.Default.(string)
	// assessmenteventDescMissingCount is the schema descriptor for missing_count field.
	assessmenteventDescMissingCount := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultMissingCount holds the default value on creation for the missing_count field.
	assessmentevent.DefaultMissingCount = assessmenteventDescMissingCount.Default.(int)
	// assessmenteventDescNiceToHaveCount is the schema descriptor for nice_to_have_count field.
	assessmenteventDescNiceToHaveCount := assessmenteventFields[5].Descriptor()
	// assessmentevent.DefaultNiceToHaveCount holds the default value on creation for the nice_to_have_count field.
	assessmentevent.DefaultNiceToHaveCount = assessmenteventDescNiceToHaveCount.Default.(int)
	// assessmenteventDescRoadmapHours is the schema descriptor for roadmap_hours field.
	assessmenteventDescRoadmapHours := assessmenteventFields[6].Descriptor()
	// assessmentevent.DefaultRoadmapHours holds the default value on creation for the roadmap_hours field.
	assessmentevent.DefaultRoadmapHours = assessmenteventDescRoadmapHours.Default.(int)
	// assessmenteventDescRoadmapSource is the schema descriptor for roadmap_source field.
	assessmenteventDescRoadmapSource := assessmenteventFields[7].Descriptor()
	// assessmentevent.DefaultRoadmapSource holds the default value on creation for the roadmap_source field.
	assessmentevent.DefaultRoadmapSource = assessmenteventDescRoadmapSource.Default.(string)
	// assessmenteventDescDurationMs is the schema descriptor for duration_ms field.
	assessmenteventDescDurationMs := assessmenteventFields[8].Descriptor()
	// assessmentevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	assessmentevent.DefaultDurationMs = assessmenteventDescDurationMs.Default.(int64)
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
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescSource is the schema descriptor for source field.
	sessioneventDescSource := sessioneventFields[1].Descriptor()
	// sessionevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	sessionevent.SourceValidator = sessioneventDescSource.Validators[0].(func(string) error)
	// sessioneventDescExtractionMethod is the schema descriptor for extraction_method field.
	sessioneventDescExtractionMethod := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultExtractionMethod holds the default value on creation for the extraction_method field.
	sessionevent.DefaultExtractionMethod = sessioneventDescExtractionMethod.Default.(string)
	// sessioneventDescResumeText is the schema descriptor for resume_text field.
	sessioneventDescResumeText := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultResumeText holds the default value on creation for the resume_text field.
	sessionevent.DefaultResumeText = sessioneventDescResumeText.Default.(string)
}
