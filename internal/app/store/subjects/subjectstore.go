// internal/app/store/subjects/subjectstore.go
package subjectstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/acadhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateSubjectCode = errors.New("a subject with this code already exists in the branch")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("subjects")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Subject, error) {
	var sub models.Subject
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sub); err != nil {
		return models.Subject{}, err
	}
	return sub, nil
}

func (s *Store) Create(ctx context.Context, sub models.Subject) (models.Subject, error) {
	if strings.TrimSpace(sub.Name) == "" {
		return models.Subject{}, mongo.CommandError{Message: "name is required"}
	}
	if sub.BranchID.IsZero() {
		return models.Subject{}, mongo.CommandError{Message: "branch_id is required"}
	}

	now := time.Now().UTC()
	sub.ID = primitive.NewObjectID()
	sub.NameCI = text.Fold(sub.Name)
	sub.Code = strings.ToUpper(strings.TrimSpace(sub.Code))
	sub.CreatedAt = now
	sub.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, sub); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Subject{}, ErrDuplicateSubjectCode
		}
		return models.Subject{}, err
	}
	return sub, nil
}

// ListByBranch returns a branch's subjects, optionally narrowed to one
// semester (semester <= 0 means all), sorted by semester then name.
func (s *Store) ListByBranch(ctx context.Context, branchID primitive.ObjectID, semester int) ([]models.Subject, error) {
	filter := bson.M{"branch_id": branchID}
	if semester > 0 {
		filter["semester"] = semester
	}
	sort := bson.D{{Key: "semester", Value: 1}, {Key: "name_ci", Value: 1}}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Subject
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, name, code string, semester, credits int) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if strings.TrimSpace(name) != "" {
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}
	if strings.TrimSpace(code) != "" {
		set["code"] = strings.ToUpper(strings.TrimSpace(code))
	}
	if semester > 0 {
		set["semester"] = semester
	}
	if credits > 0 {
		set["credits"] = credits
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateSubjectCode
		}
		return err
	}
	return nil
}

// Delete removes a subject by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByBranch removes all subjects belonging to a branch.
// Returns the number of documents deleted.
func (s *Store) DeleteByBranch(ctx context.Context, branchID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"branch_id": branchID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
