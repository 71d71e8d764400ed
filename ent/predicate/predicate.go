// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Goal is the predicate function for goal builders.
type Goal func(*sql.Selector)

// MentalBlock is the predicate function for mentalblock builders.
type MentalBlock func(*sql.Selector)

// Milestone is the predicate function for milestone builders.
type Milestone func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Student is the predicate function for student builders.
type Student func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// TopicMasteryEvent is the predicate function for topicmasteryevent builders.
type TopicMasteryEvent func(*sql.Selector)
