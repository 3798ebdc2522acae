package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exam types.
const (
	ExamTypeMid = "mid"
	ExamTypeEnd = "end"
)

// Exam represents a scheduled examination. Exams are a dimension table for
// the marks aggregations: one exam has many marks rows.
type Exam struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Date       time.Time          `bson:"date" json:"date"`
	ExamType   string             `bson:"exam_type" json:"exam_type"` // mid | end
	TotalMarks int                `bson:"total_marks" json:"total_marks"`

	// Aspiring optionally targets the exam at one career track.
	Aspiring AspiringField `bson:"aspiring,omitempty" json:"aspiring,omitempty"`
	ExamLink string        `bson:"exam_link,omitempty" json:"exam_link,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
