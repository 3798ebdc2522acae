package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Marks is the fact table: one row per (student, exam, subject) score.
//
// MarksObtained is not validated against the exam's total at write time;
// aggregations tolerate out-of-range values. CreatedAt is the key used by
// the dashboard's date-range filter.
type Marks struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	StudentID primitive.ObjectID  `bson:"student_id" json:"student_id"`
	ExamID    primitive.ObjectID  `bson:"exam_id" json:"exam_id"`
	SubjectID *primitive.ObjectID `bson:"subject_id,omitempty" json:"subject_id,omitempty"`

	MarksObtained float64 `bson:"marks_obtained" json:"marks_obtained"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
