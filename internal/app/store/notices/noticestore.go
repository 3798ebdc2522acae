// internal/app/store/notices/noticestore.go
package noticestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/acadhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrBadAudience is returned when a notice audience is not one of the
// recognized values.
var ErrBadAudience = errors.New(`audience must be "student"|"faculty"|"both"`)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("notices")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Notice, error) {
	var n models.Notice
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		return models.Notice{}, err
	}
	return n, nil
}

// Create inserts a notice. Body HTML is sanitized before storage so
// whatever renders it later can trust the markup.
func (s *Store) Create(ctx context.Context, n models.Notice) (models.Notice, error) {
	if strings.TrimSpace(n.Title) == "" {
		return models.Notice{}, mongo.CommandError{Message: "title is required"}
	}
	switch n.Audience {
	case models.NoticeForStudent, models.NoticeForFaculty, models.NoticeForBoth:
	default:
		return models.Notice{}, ErrBadAudience
	}

	now := time.Now().UTC()
	n.ID = primitive.NewObjectID()
	n.Body = htmlsanitize.Sanitize(n.Body)
	n.CreatedAt = now
	n.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.Notice{}, err
	}
	return n, nil
}

// ListForAudience returns notices visible to one audience, newest first.
// Notices addressed to "both" always match.
func (s *Store) ListForAudience(ctx context.Context, audience string) ([]models.Notice, error) {
	filter := bson.M{}
	if audience != "" {
		filter["audience"] = bson.M{"$in": []string{audience, models.NoticeForBoth}}
	}
	sort := bson.D{{Key: "created_at", Value: -1}}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Notice
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update modifies a notice's mutable fields, re-sanitizing the body.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, title, body, audience, link string) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if strings.TrimSpace(title) != "" {
		set["title"] = title
	}
	set["body"] = htmlsanitize.Sanitize(body)
	set["link"] = link
	if audience != "" {
		switch audience {
		case models.NoticeForStudent, models.NoticeForFaculty, models.NoticeForBoth:
			set["audience"] = audience
		default:
			return ErrBadAudience
		}
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a notice by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
