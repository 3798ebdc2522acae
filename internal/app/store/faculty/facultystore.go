// internal/app/store/faculty/facultystore.go
package facultystore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/acadhub/internal/app/system/normalize"
	"github.com/dalemusser/acadhub/internal/app/system/status"
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

var ErrDuplicateFacultyEmail = errors.New("a faculty member with this email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("faculty")}
}

// GetByID loads a faculty member by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Faculty, error) {
	var f models.Faculty
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetByEmail looks up a faculty member by case-insensitive email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	var f models.Faculty
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new faculty member after normalizing fields.
func (s *Store) Create(ctx context.Context, f models.Faculty) (models.Faculty, error) {
	f.ID = primitive.NewObjectID()
	f.FirstName = normalize.Name(f.FirstName)
	f.MiddleName = normalize.Name(f.MiddleName)
	f.LastName = normalize.Name(f.LastName)
	f.NameCI = text.Fold(f.FullName())
	f.Email = normalize.Email(f.Email)
	f.Phone = normalize.Phone(f.Phone)
	if f.Status == "" {
		f.Status = status.Active
	}

	if f.FirstName == "" {
		return models.Faculty{}, mongo.CommandError{Message: "first_name is required"}
	}
	if f.Email == "" {
		return models.Faculty{}, mongo.CommandError{Message: "email is required"}
	}
	if !status.IsValid(f.Status) {
		return models.Faculty{}, mongo.CommandError{Message: "status must be 'active' or 'inactive'"}
	}

	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, f); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Faculty{}, ErrDuplicateFacultyEmail
		}
		return models.Faculty{}, err
	}
	return f, nil
}

// List returns all faculty sorted by name.
func (s *Store) List(ctx context.Context) ([]models.Faculty, error) {
	sort := bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}}
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Faculty
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update holds the fields that can be changed after creation.
type Update struct {
	FirstName   string
	MiddleName  string
	LastName    string
	Email       string
	Phone       string
	Department  string
	Designation string
	Status      string
}

// UpdateInfo updates a faculty member's mutable fields.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if normalize.Name(upd.FirstName) != "" {
		first := normalize.Name(upd.FirstName)
		middle := normalize.Name(upd.MiddleName)
		last := normalize.Name(upd.LastName)
		set["first_name"] = first
		set["middle_name"] = middle
		set["last_name"] = last
		full := models.Faculty{FirstName: first, MiddleName: middle, LastName: last}
		set["name_ci"] = text.Fold(full.FullName())
	}
	if normalize.Email(upd.Email) != "" {
		set["email"] = normalize.Email(upd.Email)
	}
	if normalize.Phone(upd.Phone) != "" {
		set["phone"] = normalize.Phone(upd.Phone)
	}
	set["department"] = upd.Department
	set["designation"] = upd.Designation
	if upd.Status != "" {
		if !status.IsValid(upd.Status) {
			return mongo.CommandError{Message: "status must be 'active' or 'inactive'"}
		}
		set["status"] = upd.Status
	}

	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateFacultyEmail
		}
		return err
	}
	return nil
}

// SetPassword replaces the stored password hash.
func (s *Store) SetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC(),
	}})
	return err
}

// Delete removes a faculty member by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
