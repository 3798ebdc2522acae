package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timetable links a branch/semester to its published schedule.
type Timetable struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Link     string             `bson:"link" json:"link"`
	BranchID primitive.ObjectID `bson:"branch_id" json:"branch_id"`
	Semester int                `bson:"semester,omitempty" json:"semester,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
