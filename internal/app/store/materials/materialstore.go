// internal/app/store/materials/materialstore.go
package materialstore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("materials")}
}

// Create inserts a new Material, setting TitleCI and timestamps.
func (s *Store) Create(ctx context.Context, m models.Material) (models.Material, error) {
	if strings.TrimSpace(m.Title) == "" {
		return models.Material{}, mongo.CommandError{Message: "title is required"}
	}
	if m.SubjectID.IsZero() {
		return models.Material{}, mongo.CommandError{Message: "subject_id is required"}
	}
	if strings.TrimSpace(m.FilePath) == "" {
		return models.Material{}, mongo.CommandError{Message: "file_path is required"}
	}
	switch m.Type {
	case models.MaterialNotes, models.MaterialAssignment, models.MaterialSyllabus, models.MaterialOther:
	case "":
		m.Type = models.MaterialOther
	default:
		return models.Material{}, mongo.CommandError{Message: "unrecognized material type"}
	}

	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.TitleCI = text.Fold(m.Title)
	m.CreatedAt = now
	m.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Material{}, err
	}
	return m, nil
}

// GetByID returns a material by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Material, error) {
	var m models.Material
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return models.Material{}, err
	}
	return m, nil
}

// ListBySubject returns a subject's materials, optionally narrowed by
// type, newest first.
func (s *Store) ListBySubject(ctx context.Context, subjectID primitive.ObjectID, materialType string) ([]models.Material, error) {
	filter := bson.M{"subject_id": subjectID}
	if materialType != "" {
		filter["type"] = materialType
	}
	sort := bson.D{{Key: "created_at", Value: -1}}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Material
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update modifies mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, title, filePath, materialType string) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if strings.TrimSpace(title) != "" {
		set["title"] = title
		set["title_ci"] = text.Fold(title)
	}
	if strings.TrimSpace(filePath) != "" {
		set["file_path"] = filePath
	}
	if materialType != "" {
		switch materialType {
		case models.MaterialNotes, models.MaterialAssignment, models.MaterialSyllabus, models.MaterialOther:
			set["type"] = materialType
		default:
			return mongo.CommandError{Message: "unrecognized material type"}
		}
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a material by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByFaculty removes all materials published by one faculty member.
// Returns the number of documents deleted.
func (s *Store) DeleteByFaculty(ctx context.Context, facultyID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"faculty_id": facultyID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
