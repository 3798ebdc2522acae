// internal/app/store/timetables/timetablestore.go
package timetablestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/acadhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrDuplicateTimetable is returned when a schedule already exists for the
// same branch and semester; use Upsert to replace it.
var ErrDuplicateTimetable = errors.New("a timetable for this branch and semester already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("timetables")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Timetable, error) {
	var tt models.Timetable
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&tt); err != nil {
		return models.Timetable{}, err
	}
	return tt, nil
}

// GetForBranch returns the published schedule for a branch/semester.
// Returns mongo.ErrNoDocuments if none is published.
func (s *Store) GetForBranch(ctx context.Context, branchID primitive.ObjectID, semester int) (models.Timetable, error) {
	var tt models.Timetable
	filter := bson.M{"branch_id": branchID, "semester": semester}
	if err := s.c.FindOne(ctx, filter).Decode(&tt); err != nil {
		return models.Timetable{}, err
	}
	return tt, nil
}

func (s *Store) Create(ctx context.Context, tt models.Timetable) (models.Timetable, error) {
	if strings.TrimSpace(tt.Link) == "" {
		return models.Timetable{}, mongo.CommandError{Message: "link is required"}
	}
	if tt.BranchID.IsZero() {
		return models.Timetable{}, mongo.CommandError{Message: "branch_id is required"}
	}

	now := time.Now().UTC()
	tt.ID = primitive.NewObjectID()
	tt.CreatedAt = now
	tt.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, tt); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Timetable{}, ErrDuplicateTimetable
		}
		return models.Timetable{}, err
	}
	return tt, nil
}

// Upsert publishes a schedule link for a branch/semester, replacing any
// existing one.
func (s *Store) Upsert(ctx context.Context, branchID primitive.ObjectID, semester int, link string) error {
	if strings.TrimSpace(link) == "" {
		return mongo.CommandError{Message: "link is required"}
	}

	now := time.Now().UTC()
	filter := bson.M{"branch_id": branchID, "semester": semester}
	update := bson.M{
		"$set": bson.M{
			"link":       link,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"branch_id":  branchID,
			"semester":   semester,
			"created_at": now,
		},
	}
	_, err := s.c.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// ListByBranch returns all published schedules for a branch.
func (s *Store) ListByBranch(ctx context.Context, branchID primitive.ObjectID) ([]models.Timetable, error) {
	sort := bson.D{{Key: "semester", Value: 1}}
	cur, err := s.c.Find(ctx, bson.M{"branch_id": branchID}, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Timetable
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a timetable by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
