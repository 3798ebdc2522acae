// Package dashboardqueries provides the read-only aggregation queries behind
// the analytics dashboard: a filter builder, a fact loader that joins marks
// with their student and exam dimensions, and five pure pipelines over the
// joined rows.
//
// The pipelines never mutate data. Each endpoint issues one pipeline over a
// point-in-time load of the relevant collections; no cross-pipeline
// transaction is needed.
package dashboardqueries

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter is the immutable filter configuration threaded through a pipeline
// call. All restrictions are conjunctive; a nil/empty field means "no
// restriction".
type Filter struct {
	Branch   *primitive.ObjectID // restrict students to this branch
	Subject  *primitive.ObjectID // restrict marks to this subject
	ExamType string              // case-sensitive exact match on exam type
	From     *time.Time          // inclusive lower bound on marks creation time
	To       *time.Time          // inclusive upper bound on marks creation time

	matchNone bool
}

// BuildFilter translates optional query-string parameters into a Filter.
//
// Filter inputs are deliberately permissive: an identifier that does not
// parse produces a filter that matches nothing (the caller asked for a
// branch that cannot exist), and a date that does not parse means "no
// bound". Neither is ever an error.
func BuildFilter(branch, subjectID, examType, fromDate, toDate string) Filter {
	var f Filter

	if branch != "" {
		if oid, err := primitive.ObjectIDFromHex(branch); err == nil {
			f.Branch = &oid
		} else {
			f.matchNone = true
		}
	}
	if subjectID != "" {
		if oid, err := primitive.ObjectIDFromHex(subjectID); err == nil {
			f.Subject = &oid
		} else {
			f.matchNone = true
		}
	}

	f.ExamType = examType
	f.From = parseDate(fromDate)
	f.To = parseDate(toDate)
	return f
}

// MatchesNothing reports whether a present-but-invalid identifier filter
// made the whole query empty. Loaders short-circuit to an empty dataset.
func (f Filter) MatchesNothing() bool {
	return f.matchNone
}

// parseDate accepts dates as 2006-01-02 or RFC 3339. Anything else is "no
// bound".
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}
