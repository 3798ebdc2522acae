// internal/app/store/students/studentstore.go
package studentstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/acadhub/internal/app/system/normalize"
	"github.com/dalemusser/acadhub/internal/app/system/paging"
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

var (
	// ErrDuplicateStudent is returned when the email or enrollment number
	// collides with an existing student.
	ErrDuplicateStudent = errors.New("a student with this email or enrollment number already exists")
	errBadAspiring      = errors.New(`aspiring must be "Data Analytics"|"ML Engineer"|"Software Engineer"`)
	errBadStatus        = errors.New(`status must be "active"|"inactive"`)
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("students")}
}

// GetByID loads a student by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var st models.Student
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

// GetByEmail looks up a student by case-insensitive email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var st models.Student
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Create inserts a new student after normalizing & validating fields.
func (s *Store) Create(ctx context.Context, st models.Student) (models.Student, error) {
	st.ID = primitive.NewObjectID()
	st.FirstName = normalize.Name(st.FirstName)
	st.MiddleName = normalize.Name(st.MiddleName)
	st.LastName = normalize.Name(st.LastName)
	st.NameCI = text.Fold(st.FullName())
	st.Email = normalize.Email(st.Email)
	st.Phone = normalize.Phone(st.Phone)
	st.EnrollmentNo = strings.ToUpper(strings.TrimSpace(st.EnrollmentNo))
	if st.Status == "" {
		st.Status = status.Active
	}

	if st.FirstName == "" {
		return models.Student{}, mongo.CommandError{Message: "first_name is required"}
	}
	if st.Email == "" {
		return models.Student{}, mongo.CommandError{Message: "email is required"}
	}
	if st.EnrollmentNo == "" {
		return models.Student{}, mongo.CommandError{Message: "enrollment_no is required"}
	}
	if st.BranchID.IsZero() {
		return models.Student{}, mongo.CommandError{Message: "branch_id is required"}
	}
	if st.Aspiring != "" && !st.Aspiring.Valid() {
		return models.Student{}, errBadAspiring
	}
	if !status.IsValid(st.Status) {
		return models.Student{}, errBadStatus
	}

	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, st); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Student{}, ErrDuplicateStudent
		}
		return models.Student{}, err
	}
	return st, nil
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	BranchID primitive.ObjectID
	Semester int
	Aspiring models.AspiringField
	Status   string
}

// List returns students matching the filter, sorted by name.
func (s *Store) List(ctx context.Context, f ListFilter) ([]models.Student, error) {
	filter := bson.M{}
	if !f.BranchID.IsZero() {
		filter["branch_id"] = f.BranchID
	}
	if f.Semester > 0 {
		filter["semester"] = f.Semester
	}
	if f.Aspiring != "" {
		filter["aspiring"] = f.Aspiring
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	sort := bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Student
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPage returns one page of students matching the filter, sorted by
// name, using keyset cursors. prev and next are opaque cursor strings
// for the neighboring pages; they are only meaningful when the matching
// Result flag is set.
func (s *Store) ListPage(ctx context.Context, f ListFilter, before, after string) ([]models.Student, paging.Result, string, string, error) {
	filter := bson.M{}
	if !f.BranchID.IsZero() {
		filter["branch_id"] = f.BranchID
	}
	if f.Semester > 0 {
		filter["semester"] = f.Semester
	}
	if f.Aspiring != "" {
		filter["aspiring"] = f.Aspiring
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	cfg := paging.ConfigureKeyset(before, after)
	if w := cfg.KeysetWindow("name_ci"); w != nil {
		for k, v := range w {
			filter[k] = v
		}
	}

	find := options.Find()
	cfg.ApplyToFind(find, "name_ci")

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, paging.Result{}, "", "", err
	}
	defer cur.Close(ctx)
	var out []models.Student
	if err := cur.All(ctx, &out); err != nil {
		return nil, paging.Result{}, "", "", err
	}

	res := paging.TrimPage(&out, before, after)
	if cfg.Direction == paging.Backward {
		paging.Reverse(out)
	}
	prev, next := paging.BuildCursors(out,
		func(st models.Student) string { return st.NameCI },
		func(st models.Student) primitive.ObjectID { return st.ID })
	return out, res, prev, next, nil
}

// Update holds the fields that can be changed after creation.
type Update struct {
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Phone      string
	Semester   int
	Aspiring   models.AspiringField
	Status     string
}

// UpdateInfo updates a student's mutable fields. Returns
// ErrDuplicateStudent if the new email belongs to another student.
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
		full := models.Student{FirstName: first, MiddleName: middle, LastName: last}
		set["name_ci"] = text.Fold(full.FullName())
	}
	if normalize.Email(upd.Email) != "" {
		set["email"] = normalize.Email(upd.Email)
	}
	if normalize.Phone(upd.Phone) != "" {
		set["phone"] = normalize.Phone(upd.Phone)
	}
	if upd.Semester > 0 {
		set["semester"] = upd.Semester
	}
	if upd.Aspiring != "" {
		if !upd.Aspiring.Valid() {
			return errBadAspiring
		}
		set["aspiring"] = upd.Aspiring
	}
	if upd.Status != "" {
		if !status.IsValid(upd.Status) {
			return errBadStatus
		}
		set["status"] = upd.Status
	}

	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateStudent
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

// Delete removes a student by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountByBranch returns the number of students in a branch.
func (s *Store) CountByBranch(ctx context.Context, branchID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"branch_id": branchID})
}
