package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Material types.
const (
	MaterialNotes      = "notes"
	MaterialAssignment = "assignment"
	MaterialSyllabus   = "syllabus"
	MaterialOther      = "other"
)

// Material is study content published by a faculty member for a subject.
// FilePath points at already-stored content; upload handling lives outside
// this service.
type Material struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	TitleCI   string             `bson:"title_ci" json:"title_ci"`
	SubjectID primitive.ObjectID `bson:"subject_id" json:"subject_id"`
	FacultyID primitive.ObjectID `bson:"faculty_id" json:"faculty_id"`
	BranchID  primitive.ObjectID `bson:"branch_id" json:"branch_id"`
	FilePath  string             `bson:"file_path" json:"file_path"`
	Type      string             `bson:"type" json:"type"` // notes | assignment | syllabus | other
	Semester  int                `bson:"semester,omitempty" json:"semester,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
