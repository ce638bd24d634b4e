// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/voiceops/callaudit/ent/event"
	"github.com/voiceops/callaudit/ent/reviewrecord"
	"github.com/voiceops/callaudit/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	reviewrecordFields := schema.ReviewRecord{}.Fields()
	_ = reviewrecordFields
	// reviewrecordDescErrorCount is the schema descriptor for error_count field.
	reviewrecordDescErrorCount := reviewrecordFields[4].Descriptor()
	// reviewrecord.DefaultErrorCount holds the default value on creation for the error_count field.
	reviewrecord.DefaultErrorCount = reviewrecordDescErrorCount.Default.(int)
	// reviewrecordDescHasAPIFailures is the schema descriptor for has_api_failures field.
	reviewrecordDescHasAPIFailures := reviewrecordFields[5].Descriptor()
	// reviewrecord.DefaultHasAPIFailures holds the default value on creation for the has_api_failures field.
	reviewrecord.DefaultHasAPIFailures = reviewrecordDescHasAPIFailures.Default.(bool)
	// reviewrecordDescHasWrongActions is the schema descriptor for has_wrong_actions field.
	reviewrecordDescHasWrongActions := reviewrecordFields[6].Descriptor()
	// reviewrecord.DefaultHasWrongActions holds the default value on creation for the has_wrong_actions field.
	reviewrecord.DefaultHasWrongActions = reviewrecordDescHasWrongActions.Default.(bool)
	// reviewrecordDescHasWrongOutputs is the schema descriptor for has_wrong_outputs field.
	reviewrecordDescHasWrongOutputs := reviewrecordFields[7].Descriptor()
	// reviewrecord.DefaultHasWrongOutputs holds the default value on creation for the has_wrong_outputs field.
	reviewrecord.DefaultHasWrongOutputs = reviewrecordDescHasWrongOutputs.Default.(bool)
	// reviewrecordDescCreatedAt is the schema descriptor for created_at field.
	reviewrecordDescCreatedAt := reviewrecordFields[10].Descriptor()
	// reviewrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewrecord.DefaultCreatedAt = reviewrecordDescCreatedAt.Default.(func() time.Time)
	// reviewrecordDescUpdatedAt is the schema descriptor for updated_at field.
	reviewrecordDescUpdatedAt := reviewrecordFields[11].Descriptor()
	// reviewrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reviewrecord.DefaultUpdatedAt = reviewrecordDescUpdatedAt.Default.(func() time.Time)
	// reviewrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reviewrecord.UpdateDefaultUpdatedAt = reviewrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
