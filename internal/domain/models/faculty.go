package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Faculty represents a teaching staff member.
type Faculty struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	MiddleName  string             `bson:"middle_name,omitempty" json:"middle_name,omitempty"`
	LastName    string             `bson:"last_name" json:"last_name"`
	NameCI      string             `bson:"name_ci" json:"name_ci"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Department  string             `bson:"department,omitempty" json:"department,omitempty"`
	Designation string             `bson:"designation,omitempty" json:"designation,omitempty"`
	Status      string             `bson:"status" json:"status"`

	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName joins the non-empty name parts with single spaces.
func (f *Faculty) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{f.FirstName, f.MiddleName, f.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
