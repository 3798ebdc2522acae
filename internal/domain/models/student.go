package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student represents an enrolled student.
//
// NOTE:
//   - Aspiring may be absent. Aggregations must treat an absent value as
//     the "Unspecified" bucket (see AspiringField.Normalize), never drop it.
//   - Marks are not embedded here; the marks collection references
//     students by ID.
type Student struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EnrollmentNo string             `bson:"enrollment_no" json:"enrollment_no"`
	FirstName    string             `bson:"first_name" json:"first_name"`
	MiddleName   string             `bson:"middle_name,omitempty" json:"middle_name,omitempty"`
	LastName     string             `bson:"last_name" json:"last_name"`
	NameCI       string             `bson:"name_ci" json:"name_ci"` // lowercase, diacritics-stripped full name
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Semester     int                `bson:"semester,omitempty" json:"semester,omitempty"`
	BranchID     primitive.ObjectID `bson:"branch_id" json:"branch_id"`
	Aspiring     AspiringField      `bson:"aspiring,omitempty" json:"aspiring,omitempty"`
	Status       string             `bson:"status" json:"status"` // active | inactive

	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName joins the non-empty name parts with single spaces.
func (s *Student) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{s.FirstName, s.MiddleName, s.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
