package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Branch represents an academic branch (department/program). Branches are
// used as a filter key on the dashboard, never aggregated over.
type Branch struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"name_ci"`
	Code   string             `bson:"code" json:"code"` // human-readable code, e.g. "CSE"

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
