// internal/app/store/exams/examstore.go
package examstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/acadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrBadExamType is returned when an exam type is not recognized.
var ErrBadExamType = errors.New(`exam_type must be "mid"|"end"`)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("exams")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Exam, error) {
	var e models.Exam
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		return models.Exam{}, err
	}
	return e, nil
}

func (s *Store) Create(ctx context.Context, e models.Exam) (models.Exam, error) {
	if strings.TrimSpace(e.Name) == "" {
		return models.Exam{}, mongo.CommandError{Message: "name is required"}
	}
	switch e.ExamType {
	case models.ExamTypeMid, models.ExamTypeEnd:
	default:
		return models.Exam{}, ErrBadExamType
	}
	if e.TotalMarks <= 0 {
		return models.Exam{}, mongo.CommandError{Message: "total_marks must be positive"}
	}
	if e.Aspiring != "" && !e.Aspiring.Valid() {
		return models.Exam{}, mongo.CommandError{Message: "unrecognized aspiring field"}
	}

	now := time.Now().UTC()
	e.ID = primitive.NewObjectID()
	if e.Date.IsZero() {
		e.Date = now
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Exam{}, err
	}
	return e, nil
}

// List returns exams sorted newest first, optionally narrowed by type.
func (s *Store) List(ctx context.Context, examType string) ([]models.Exam, error) {
	filter := bson.M{}
	if examType != "" {
		filter["exam_type"] = examType
	}
	sort := bson.D{{Key: "date", Value: -1}}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Exam
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, name, examLink string, totalMarks int) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if strings.TrimSpace(name) != "" {
		set["name"] = name
	}
	// Link can be cleared (set to empty)
	set["exam_link"] = examLink
	if totalMarks > 0 {
		set["total_marks"] = totalMarks
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes an exam by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
