// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ReviewRecord is the predicate function for reviewrecord builders.
type ReviewRecord func(*sql.Selector)
