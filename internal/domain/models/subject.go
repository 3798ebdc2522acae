package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subject represents a course offered inside a branch.
type Subject struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	NameCI   string             `bson:"name_ci" json:"name_ci"`
	Code     string             `bson:"code" json:"code"`
	BranchID primitive.ObjectID `bson:"branch_id" json:"branch_id"`
	Semester int                `bson:"semester,omitempty" json:"semester,omitempty"`
	Credits  int                `bson:"credits,omitempty" json:"credits,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
