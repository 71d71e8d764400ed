// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/goal"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/mentalblock"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/milestone"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/schema"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/session"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/student"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/topic"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/topicmasteryevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescDescription is the schema descriptor for description field.
	goalDescDescription := goalFields[1].Descriptor()
	// goal.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	goal.DescriptionValidator = goalDescDescription.Validators[0].(func(string) error)
	// goalDescStatus is the schema descriptor for status field.
	goalDescStatus := goalFields[4].Descriptor()
	// goal.DefaultStatus holds the default value on creation for the status field.
	goal.DefaultStatus = goalDescStatus.Default.(string)
	mentalblockFields := schema.MentalBlock{}.Fields()
	_ = mentalblockFields
	// mentalblockDescDescription is the schema descriptor for description field.
	mentalblockDescDescription := mentalblockFields[1].Descriptor()
	// mentalblock.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	mentalblock.DescriptionValidator = mentalblockDescDescription.Validators[0].(func(string) error)
	// mentalblockDescFirstDetected is the schema descriptor for first_detected field.
	mentalblockDescFirstDetected := mentalblockFields[2].Descriptor()
	// mentalblock.FirstDetectedValidator is a validator for the "first_detected" field. It is called by the builders before save.
	mentalblock.FirstDetectedValidator = mentalblockDescFirstDetected.Validators[0].(func(string) error)
	// mentalblockDescLastDetected is the schema descriptor for last_detected field.
	mentalblockDescLastDetected := mentalblockFields[3].Descriptor()
	// mentalblock.LastDetectedValidator is a validator for the "last_detected" field. It is called by the builders before save.
	mentalblock.LastDetectedValidator = mentalblockDescLastDetected.Validators[0].(func(string) error)
	// mentalblockDescFrequencyCount is the schema descriptor for frequency_count field.
	mentalblockDescFrequencyCount := mentalblockFields[4].Descriptor()
	// mentalblock.DefaultFrequencyCount holds the default value on creation for the frequency_count field.
	mentalblock.DefaultFrequencyCount = mentalblockDescFrequencyCount.Default.(int)
	// mentalblock.FrequencyCountValidator is a validator for the "frequency_count" field. It is called by the builders before save.
	mentalblock.FrequencyCountValidator = mentalblockDescFrequencyCount.Validators[0].(func(int) error)
	// mentalblockDescSeverityScore is the schema descriptor for severity_score field.
	mentalblockDescSeverityScore := mentalblockFields[5].Descriptor()
	// mentalblock.DefaultSeverityScore holds the default value on creation for the severity_score field.
	mentalblock.DefaultSeverityScore = mentalblockDescSeverityScore.Default.(int)
	// mentalblock.SeverityScoreValidator is a validator for the "severity_score" field. It is called by the builders before save.
	mentalblock.SeverityScoreValidator = func() func(int) error {
		validators := mentalblockDescSeverityScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(severity_score int) error {
			for _, fn := range fns {
				if err := fn(severity_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	milestoneFields := schema.Milestone{}.Fields()
	_ = milestoneFields
	// milestoneDescGoalDescription is the schema descriptor for goal_description field.
	milestoneDescGoalDescription := milestoneFields[1].Descriptor()
	// milestone.GoalDescriptionValidator is a validator for the "goal_description" field. It is called by the builders before save.
	milestone.GoalDescriptionValidator = milestoneDescGoalDescription.Validators[0].(func(string) error)
	// milestoneDescMilestone is the schema descriptor for milestone field.
	milestoneDescMilestone := milestoneFields[2].Descriptor()
	// milestone.MilestoneValidator is a validator for the "milestone" field. It is called by the builders before save.
	milestone.MilestoneValidator = milestoneDescMilestone.Validators[0].(func(string) error)
	// milestoneDescSuccessCriteria is the schema descriptor for success_criteria field.
	milestoneDescSuccessCriteria := milestoneFields[3].Descriptor()
	// milestone.SuccessCriteriaValidator is a validator for the "success_criteria" field. It is called by the builders before save.
	milestone.SuccessCriteriaValidator = milestoneDescSuccessCriteria.Validators[0].(func(string) error)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescSessionDate is the schema descriptor for session_date field.
	sessionDescSessionDate := sessionFields[2].Descriptor()
	// session.SessionDateValidator is a validator for the "session_date" field. It is called by the builders before save.
	session.SessionDateValidator = sessionDescSessionDate.Validators[0].(func(string) error)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescName is the schema descriptor for name field.
	studentDescName := studentFields[0].Descriptor()
	// student.NameValidator is a validator for the "name" field. It is called by the builders before save.
	student.NameValidator = studentDescName.Validators[0].(func(string) error)
	// studentDescCreatedAt is the schema descriptor for created_at field.
	studentDescCreatedAt := studentFields[5].Descriptor()
	// student.DefaultCreatedAt holds the default value on creation for the created_at field.
	student.DefaultCreatedAt = studentDescCreatedAt.Default.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescTopicName is the schema descriptor for topic_name field.
	topicDescTopicName := topicFields[1].Descriptor()
	// topic.TopicNameValidator is a validator for the "topic_name" field. It is called by the builders before save.
	topic.TopicNameValidator = topicDescTopicName.Validators[0].(func(string) error)
	// topicDescMasteryScore is the schema descriptor for mastery_score field.
	topicDescMasteryScore := topicFields[3].Descriptor()
	// topic.DefaultMasteryScore holds the default value on creation for the mastery_score field.
	topic.DefaultMasteryScore = topicDescMasteryScore.Default.(int)
	// topic.MasteryScoreValidator is a validator for the "mastery_score" field. It is called by the builders before save.
	topic.MasteryScoreValidator = func() func(int) error {
		validators := topicDescMasteryScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(mastery_score int) error {
			for _, fn := range fns {
				if err := fn(mastery_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// topicDescConfidenceScore is the schema descriptor for confidence_score field.
	topicDescConfidenceScore := topicFields[4].Descriptor()
	// topic.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	topic.DefaultConfidenceScore = topicDescConfidenceScore.Default.(int)
	// topic.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	topic.ConfidenceScoreValidator = func() func(int) error {
		validators := topicDescConfidenceScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(confidence_score int) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	topicmasteryeventFields := schema.TopicMasteryEvent{}.Fields()
	_ = topicmasteryeventFields
	// topicmasteryeventDescTopicName is the schema descriptor for topic_name field.
	topicmasteryeventDescTopicName := topicmasteryeventFields[1].Descriptor()
	// topicmasteryevent.TopicNameValidator is a validator for the "topic_name" field. It is called by the builders before save.
	topicmasteryevent.TopicNameValidator = topicmasteryeventDescTopicName.Validators[0].(func(string) error)
	// topicmasteryeventDescEventDate is the schema descriptor for event_date field.
	topicmasteryeventDescEventDate := topicmasteryeventFields[3].Descriptor()
	// topicmasteryevent.EventDateValidator is a validator for the "event_date" field. It is called by the builders before save.
	topicmasteryevent.EventDateValidator = topicmasteryeventDescEventDate.Validators[0].(func(string) error)
}
