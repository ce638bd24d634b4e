// Code generated by ent, DO NOT EDIT.

package reviewrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/voiceops/callaudit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldAgentID, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldErrorCount, v))
}

// HasAPIFailures applies equality check predicate on the "has_api_failures" field. It's identical to HasAPIFailuresEQ.
func HasAPIFailures(v bool) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldHasAPIFailures, v))
}

// HasWrongActions applies equality check predicate on the "has_wrong_actions" field. It's identical to HasWrongActionsEQ.
func HasWrongActions(v bool) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldHasWrongActions, v))
}

// HasWrongOutputs applies equality check predicate on the "has_wrong_outputs" field. It's identical to HasWrongOutputsEQ.
func HasWrongOutputs(v bool) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldHasWrongOutputs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldLastInteractionAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldAgentID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// ReviewResultIsNil applies the IsNil predicate on the "review_result" field.
func ReviewResultIsNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIsNull(FieldReviewResult))
}

// ReviewResultNotNil applies the NotNil predicate on the "review_result" field.
func ReviewResultNotNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotNull(FieldReviewResult))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldErrorCount, v))
}

// HasAPIFailuresEQ applies the EQ predicate on the "has_api_failures" field.
func HasAPIFailuresEQ(v bool) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldHasAPIFailures, v))
}

// HasAPIFailuresNEQ applies the NEQ predicate on the "has_api_failures" field.
func HasAPIFailuresNEQ(v bool) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldHasAPIFailures, v))
}

// HasWrongActionsEQ applies the EQ predicate on the "has_wrong_actions" field.
func HasWrongActionsEQ(v bool) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldHasWrongActions, v))
}

// HasWrongActionsNEQ applies the NEQ predicate on the "has_wrong_actions" field.
func HasWrongActionsNEQ(v bool) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldHasWrongActions, v))
}

// HasWrongOutputsEQ applies the EQ predicate on the "has_wrong_outputs" field.
func HasWrongOutputsEQ(v bool) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldHasWrongOutputs, v))
}

// HasWrongOutputsNEQ applies the NEQ predicate on the "has_wrong_outputs" field.
func HasWrongOutputsNEQ(v bool) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldHasWrongOutputs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotNull(FieldReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotNull(FieldLastInteractionAt))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.ReviewRecord {
	return predicate.ReviewRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.ReviewRecord {
	return predicate.ReviewRecord(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.NotPredicates(p))
}
