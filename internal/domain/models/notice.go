package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notice audiences.
const (
	NoticeForStudent = "student"
	NoticeForFaculty = "faculty"
	NoticeForBoth    = "both"
)

// Notice is an announcement shown on the portal. Body may contain HTML;
// the notice store sanitizes it on write.
type Notice struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Body     string             `bson:"body" json:"body"`
	Audience string             `bson:"audience" json:"audience"` // student | faculty | both
	Link     string             `bson:"link,omitempty" json:"link,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
