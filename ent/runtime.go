// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ritam/preptrail/ent/llmrequestevent"
	"github.com/ritam/preptrail/ent/plan"
	"github.com/ritam/preptrail/ent/profile"
	"github.com/ritam/preptrail/ent/progressrecord"
	"github.com/ritam/preptrail/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
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
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescRoadmapType is the schema descriptor for roadmap_type field.
	planDescRoadmapType := planFields[1].Descriptor()
	// plan.DefaultRoadmapType holds the default value on creation for the roadmap_type field.
	plan.DefaultRoadmapType = planDescRoadmapType.Default.(string)
	// planDescGeneratedAt is the schema descriptor for generated_at field.
	planDescGeneratedAt := planFields[3].Descriptor()
	// plan.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	plan.DefaultGeneratedAt = planDescGeneratedAt.Default.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescExperienceLevel is the schema descriptor for experience_level field.
	profileDescExperienceLevel := profileFields[1].Descriptor()
	// profile.DefaultExperienceLevel holds the default value on creation for the experience_level field.
	profile.DefaultExperienceLevel = profileDescExperienceLevel.Default.(string)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescTotalTasks is the schema descriptor for total_tasks field.
	progressrecordDescTotalTasks := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultTotalTasks holds the default value on creation for the total_tasks field.
	progressrecord.DefaultTotalTasks = progressrecordDescTotalTasks.Default.(int)
	// progressrecordDescCompletionPercentage is the schema descriptor for completion_percentage field.
	progressrecordDescCompletionPercentage := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultCompletionPercentage holds the default value on creation for the completion_percentage field.
	progressrecord.DefaultCompletionPercentage = progressrecordDescCompletionPercentage.Default.(int)
	// progressrecordDescLastUpdated is the schema descriptor for last_updated field.
	progressrecordDescLastUpdated := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultLastUpdated holds the default value on creation for the last_updated field.
	progressrecord.DefaultLastUpdated = progressrecordDescLastUpdated.Default.(func() time.Time)
}
