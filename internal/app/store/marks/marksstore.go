// internal/app/store/marks/marksstore.go
package marksstore

import (
	"context"
	"errors"
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

// ErrDuplicateMarks is returned when a score already exists for the same
// (student, exam, subject) triple.
var ErrDuplicateMarks = errors.New("marks already recorded for this student, exam, and subject")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("marks")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Marks, error) {
	var m models.Marks
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return models.Marks{}, err
	}
	return m, nil
}

func (s *Store) Create(ctx context.Context, m models.Marks) (models.Marks, error) {
	if m.StudentID.IsZero() {
		return models.Marks{}, mongo.CommandError{Message: "student_id is required"}
	}
	if m.ExamID.IsZero() {
		return models.Marks{}, mongo.CommandError{Message: "exam_id is required"}
	}

	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Marks{}, ErrDuplicateMarks
		}
		return models.Marks{}, err
	}
	return m, nil
}

// CreateBulk inserts a batch of marks rows in one round trip. Faculty
// enter a whole exam's scores at once. Ordered inserts stop at the first
// duplicate so a partial batch is never silently dropped.
func (s *Store) CreateBulk(ctx context.Context, rows []models.Marks) ([]models.Marks, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(rows))
	for i := range rows {
		if rows[i].StudentID.IsZero() || rows[i].ExamID.IsZero() {
			return nil, mongo.CommandError{Message: "student_id and exam_id are required on every row"}
		}
		rows[i].ID = primitive.NewObjectID()
		if rows[i].CreatedAt.IsZero() {
			rows[i].CreatedAt = now
		}
		rows[i].UpdatedAt = now
		docs = append(docs, rows[i])
	}

	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateMarks
		}
		return nil, err
	}
	return rows, nil
}

// ListByStudent returns a student's marks, newest first.
func (s *Store) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Marks, error) {
	sort := bson.D{{Key: "created_at", Value: -1}}
	cur, err := s.c.Find(ctx, bson.M{"student_id": studentID}, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Marks
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByExam returns all marks recorded for one exam.
func (s *Store) ListByExam(ctx context.Context, examID primitive.ObjectID) ([]models.Marks, error) {
	cur, err := s.c.Find(ctx, bson.M{"exam_id": examID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Marks
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateObtained corrects a recorded score.
func (s *Store) UpdateObtained(ctx context.Context, id primitive.ObjectID, obtained float64) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"marks_obtained": obtained,
		"updated_at":     time.Now().UTC(),
	}})
	return err
}

// Delete removes a marks row by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByStudent removes all marks belonging to a student.
// Returns the number of documents deleted.
func (s *Store) DeleteByStudent(ctx context.Context, studentID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByExam removes all marks belonging to an exam.
// Returns the number of documents deleted.
func (s *Store) DeleteByExam(ctx context.Context, examID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"exam_id": examID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
