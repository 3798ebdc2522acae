// internal/app/store/branches/branchstore.go
package branchstore

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

var ErrDuplicateBranch = errors.New("a branch with this name or code already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("branches")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Branch, error) {
	var b models.Branch
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return models.Branch{}, err
	}
	return b, nil
}

func (s *Store) Create(ctx context.Context, b models.Branch) (models.Branch, error) {
	if strings.TrimSpace(b.Name) == "" {
		return models.Branch{}, mongo.CommandError{Message: "name is required"}
	}
	if strings.TrimSpace(b.Code) == "" {
		return models.Branch{}, mongo.CommandError{Message: "code is required"}
	}

	now := time.Now().UTC()
	b.ID = primitive.NewObjectID()
	b.NameCI = text.Fold(b.Name)
	b.Code = strings.ToUpper(strings.TrimSpace(b.Code))
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Branch{}, ErrDuplicateBranch
		}
		return models.Branch{}, err
	}
	return b, nil
}

// List returns all branches sorted by name.
func (s *Store) List(ctx context.Context) ([]models.Branch, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Branch
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, name, code string) error {
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
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateBranch
		}
		return err
	}
	return nil
}

// Delete removes a branch by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the total number of branches.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
