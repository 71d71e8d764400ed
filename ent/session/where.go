// Code generated by ent, DO NOT EDIT.

package session

import (
	"entgo.io/ent/dialect/sql"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStudentID, v))
}

// TranscriptText applies equality check predicate on the "transcript_text" field. It's identical to TranscriptTextEQ.
func TranscriptText(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTranscriptText, v))
}

// SessionDate applies equality check predicate on the "session_date" field. It's identical to SessionDateEQ.
func SessionDate(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionDate, v))
}

// ExtractedSummary applies equality check predicate on the "extracted_summary" field. It's identical to ExtractedSummaryEQ.
func ExtractedSummary(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExtractedSummary, v))
}

// EngagementScore applies equality check predicate on the "engagement_score" field. It's identical to EngagementScoreEQ.
func EngagementScore(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEngagementScore, v))
}

// ParentSummary applies equality check predicate on the "parent_summary" field. It's identical to ParentSummaryEQ.
func ParentSummary(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldParentSummary, v))
}

// TutorInsight applies equality check predicate on the "tutor_insight" field. It's identical to TutorInsightEQ.
func TutorInsight(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTutorInsight, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStudentID, v))
}

// TranscriptTextEQ applies the EQ predicate on the "transcript_text" field.
func TranscriptTextEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTranscriptText, v))
}

// TranscriptTextNEQ applies the NEQ predicate on the "transcript_text" field.
func TranscriptTextNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTranscriptText, v))
}

// TranscriptTextIn applies the In predicate on the "transcript_text" field.
func TranscriptTextIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTranscriptText, vs...))
}

// TranscriptTextNotIn applies the NotIn predicate on the "transcript_text" field.
func TranscriptTextNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTranscriptText, vs...))
}

// TranscriptTextGT applies the GT predicate on the "transcript_text" field.
func TranscriptTextGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTranscriptText, v))
}

// TranscriptTextGTE applies the GTE predicate on the "transcript_text" field.
func TranscriptTextGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTranscriptText, v))
}

// TranscriptTextLT applies the LT predicate on the "transcript_text" field.
func TranscriptTextLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTranscriptText, v))
}

// TranscriptTextLTE applies the LTE predicate on the "transcript_text" field.
func TranscriptTextLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTranscriptText, v))
}

// TranscriptTextContains applies the Contains predicate on the "transcript_text" field.
func TranscriptTextContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTranscriptText, v))
}

// TranscriptTextHasPrefix applies the HasPrefix predicate on the "transcript_text" field.
func TranscriptTextHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTranscriptText, v))
}

// TranscriptTextHasSuffix applies the HasSuffix predicate on the "transcript_text" field.
func TranscriptTextHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTranscriptText, v))
}

// TranscriptTextEqualFold applies the EqualFold predicate on the "transcript_text" field.
func TranscriptTextEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTranscriptText, v))
}

// TranscriptTextContainsFold applies the ContainsFold predicate on the "transcript_text" field.
func TranscriptTextContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTranscriptText, v))
}

// SessionDateEQ applies the EQ predicate on the "session_date" field.
func SessionDateEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionDate, v))
}

// SessionDateNEQ applies the NEQ predicate on the "session_date" field.
func SessionDateNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSessionDate, v))
}

// SessionDateIn applies the In predicate on the "session_date" field.
func SessionDateIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSessionDate, vs...))
}

// SessionDateNotIn applies the NotIn predicate on the "session_date" field.
func SessionDateNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSessionDate, vs...))
}

// SessionDateGT applies the GT predicate on the "session_date" field.
func SessionDateGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSessionDate, v))
}

// SessionDateGTE applies the GTE predicate on the "session_date" field.
func SessionDateGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSessionDate, v))
}

// SessionDateLT applies the LT predicate on the "session_date" field.
func SessionDateLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSessionDate, v))
}

// SessionDateLTE applies the LTE predicate on the "session_date" field.
func SessionDateLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSessionDate, v))
}

// SessionDateContains applies the Contains predicate on the "session_date" field.
func SessionDateContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSessionDate, v))
}

// SessionDateHasPrefix applies the HasPrefix predicate on the "session_date" field.
func SessionDateHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSessionDate, v))
}

// SessionDateHasSuffix applies the HasSuffix predicate on the "session_date" field.
func SessionDateHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSessionDate, v))
}

// SessionDateEqualFold applies the EqualFold predicate on the "session_date" field.
func SessionDateEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSessionDate, v))
}

// SessionDateContainsFold applies the ContainsFold predicate on the "session_date" field.
func SessionDateContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSessionDate, v))
}

// ExtractedSummaryEQ applies the EQ predicate on the "extracted_summary" field.
func ExtractedSummaryEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExtractedSummary, v))
}

// ExtractedSummaryNEQ applies the NEQ predicate on the "extracted_summary" field.
func ExtractedSummaryNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldExtractedSummary, v))
}

// ExtractedSummaryIn applies the In predicate on the "extracted_summary" field.
func ExtractedSummaryIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldExtractedSummary, vs...))
}

// ExtractedSummaryNotIn applies the NotIn predicate on the "extracted_summary" field.
func ExtractedSummaryNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldExtractedSummary, vs...))
}

// ExtractedSummaryGT applies the GT predicate on the "extracted_summary" field.
func ExtractedSummaryGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldExtractedSummary, v))
}

// ExtractedSummaryGTE applies the GTE predicate on the "extracted_summary" field.
func ExtractedSummaryGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldExtractedSummary, v))
}

// ExtractedSummaryLT applies the LT predicate on the "extracted_summary" field.
func ExtractedSummaryLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldExtractedSummary, v))
}

// ExtractedSummaryLTE applies the LTE predicate on the "extracted_summary" field.
func ExtractedSummaryLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldExtractedSummary, v))
}

// ExtractedSummaryContains applies the Contains predicate on the "extracted_summary" field.
func ExtractedSummaryContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldExtractedSummary, v))
}

// ExtractedSummaryHasPrefix applies the HasPrefix predicate on the "extracted_summary" field.
func ExtractedSummaryHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldExtractedSummary, v))
}

// ExtractedSummaryHasSuffix applies the HasSuffix predicate on the "extracted_summary" field.
func ExtractedSummaryHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldExtractedSummary, v))
}

// ExtractedSummaryIsNil applies the IsNil predicate on the "extracted_summary" field.
func ExtractedSummaryIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldExtractedSummary))
}

// ExtractedSummaryNotNil applies the NotNil predicate on the "extracted_summary" field.
func ExtractedSummaryNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldExtractedSummary))
}

// ExtractedSummaryEqualFold applies the EqualFold predicate on the "extracted_summary" field.
func ExtractedSummaryEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldExtractedSummary, v))
}

// ExtractedSummaryContainsFold applies the ContainsFold predicate on the "extracted_summary" field.
func ExtractedSummaryContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldExtractedSummary, v))
}

// DetectedTopicsIsNil applies the IsNil predicate on the "detected_topics" field.
func DetectedTopicsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldDetectedTopics))
}

// DetectedTopicsNotNil applies the NotNil predicate on the "detected_topics" field.
func DetectedTopicsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldDetectedTopics))
}

// DetectedMisconceptionsIsNil applies the IsNil predicate on the "detected_misconceptions" field.
func DetectedMisconceptionsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldDetectedMisconceptions))
}

// DetectedMisconceptionsNotNil applies the NotNil predicate on the "detected_misconceptions" field.
func DetectedMisconceptionsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldDetectedMisconceptions))
}

// DetectedStrengthsIsNil applies the IsNil predicate on the "detected_strengths" field.
func DetectedStrengthsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldDetectedStrengths))
}

// DetectedStrengthsNotNil applies the NotNil predicate on the "detected_strengths" field.
func DetectedStrengthsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldDetectedStrengths))
}

// EngagementScoreEQ applies the EQ predicate on the "engagement_score" field.
func EngagementScoreEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEngagementScore, v))
}

// EngagementScoreNEQ applies the NEQ predicate on the "engagement_score" field.
func EngagementScoreNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEngagementScore, v))
}

// EngagementScoreIn applies the In predicate on the "engagement_score" field.
func EngagementScoreIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEngagementScore, vs...))
}

// EngagementScoreNotIn applies the NotIn predicate on the "engagement_score" field.
func EngagementScoreNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEngagementScore, vs...))
}

// EngagementScoreGT applies the GT predicate on the "engagement_score" field.
func EngagementScoreGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEngagementScore, v))
}

// EngagementScoreGTE applies the GTE predicate on the "engagement_score" field.
func EngagementScoreGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEngagementScore, v))
}

// EngagementScoreLT applies the LT predicate on the "engagement_score" field.
func EngagementScoreLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEngagementScore, v))
}

// EngagementScoreLTE applies the LTE predicate on the "engagement_score" field.
func EngagementScoreLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEngagementScore, v))
}

// EngagementScoreIsNil applies the IsNil predicate on the "engagement_score" field.
func EngagementScoreIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEngagementScore))
}

// EngagementScoreNotNil applies the NotNil predicate on the "engagement_score" field.
func EngagementScoreNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEngagementScore))
}

// ParentSummaryEQ applies the EQ predicate on the "parent_summary" field.
func ParentSummaryEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldParentSummary, v))
}

// ParentSummaryNEQ applies the NEQ predicate on the "parent_summary" field.
func ParentSummaryNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldParentSummary, v))
}

// ParentSummaryIn applies the In predicate on the "parent_summary" field.
func ParentSummaryIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldParentSummary, vs...))
}

// ParentSummaryNotIn applies the NotIn predicate on the "parent_summary" field.
func ParentSummaryNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldParentSummary, vs...))
}

// ParentSummaryGT applies the GT predicate on the "parent_summary" field.
func ParentSummaryGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldParentSummary, v))
}

// ParentSummaryGTE applies the GTE predicate on the "parent_summary" field.
func ParentSummaryGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldParentSummary, v))
}

// ParentSummaryLT applies the LT predicate on the "parent_summary" field.
func ParentSummaryLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldParentSummary, v))
}

// ParentSummaryLTE applies the LTE predicate on the "parent_summary" field.
func ParentSummaryLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldParentSummary, v))
}

// ParentSummaryContains applies the Contains predicate on the "parent_summary" field.
func ParentSummaryContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldParentSummary, v))
}

// ParentSummaryHasPrefix applies the HasPrefix predicate on the "parent_summary" field.
func ParentSummaryHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldParentSummary, v))
}

// ParentSummaryHasSuffix applies the HasSuffix predicate on the "parent_summary" field.
func ParentSummaryHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldParentSummary, v))
}

// ParentSummaryIsNil applies the IsNil predicate on the "parent_summary" field.
func ParentSummaryIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldParentSummary))
}

// ParentSummaryNotNil applies the NotNil predicate on the "parent_summary" field.
func ParentSummaryNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldParentSummary))
}

// ParentSummaryEqualFold applies the EqualFold predicate on the "parent_summary" field.
func ParentSummaryEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldParentSummary, v))
}

// ParentSummaryContainsFold applies the ContainsFold predicate on the "parent_summary" field.
func ParentSummaryContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldParentSummary, v))
}

// TutorInsightEQ applies the EQ predicate on the "tutor_insight" field.
func TutorInsightEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTutorInsight, v))
}

// TutorInsightNEQ applies the NEQ predicate on the "tutor_insight" field.
func TutorInsightNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTutorInsight, v))
}

// TutorInsightIn applies the In predicate on the "tutor_insight" field.
func TutorInsightIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTutorInsight, vs...))
}

// TutorInsightNotIn applies the NotIn predicate on the "tutor_insight" field.
func TutorInsightNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTutorInsight, vs...))
}

// TutorInsightGT applies the GT predicate on the "tutor_insight" field.
func TutorInsightGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTutorInsight, v))
}

// TutorInsightGTE applies the GTE predicate on the "tutor_insight" field.
func TutorInsightGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTutorInsight, v))
}

// TutorInsightLT applies the LT predicate on the "tutor_insight" field.
func TutorInsightLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTutorInsight, v))
}

// TutorInsightLTE applies the LTE predicate on the "tutor_insight" field.
func TutorInsightLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTutorInsight, v))
}

// TutorInsightContains applies the Contains predicate on the "tutor_insight" field.
func TutorInsightContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTutorInsight, v))
}

// TutorInsightHasPrefix applies the HasPrefix predicate on the "tutor_insight" field.
func TutorInsightHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTutorInsight, v))
}

// TutorInsightHasSuffix applies the HasSuffix predicate on the "tutor_insight" field.
func TutorInsightHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTutorInsight, v))
}

// TutorInsightIsNil applies the IsNil predicate on the "tutor_insight" field.
func TutorInsightIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldTutorInsight))
}

// TutorInsightNotNil applies the NotNil predicate on the "tutor_insight" field.
func TutorInsightNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldTutorInsight))
}

// TutorInsightEqualFold applies the EqualFold predicate on the "tutor_insight" field.
func TutorInsightEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTutorInsight, v))
}

// TutorInsightContainsFold applies the ContainsFold predicate on the "tutor_insight" field.
func TutorInsightContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTutorInsight, v))
}

// RecommendedNextTargetsIsNil applies the IsNil predicate on the "recommended_next_targets" field.
func RecommendedNextTargetsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldRecommendedNextTargets))
}

// RecommendedNextTargetsNotNil applies the NotNil predicate on the "recommended_next_targets" field.
func RecommendedNextTargetsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldRecommendedNextTargets))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
