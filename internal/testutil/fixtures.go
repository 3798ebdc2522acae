package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dalemusser/acadhub/internal/app/system/status"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// uniqueEmail produces a collision-free address so fixtures never trip the
// unique email indexes across tests sharing a database.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@test.example", prefix, uuid.NewString()[:8])
}

// CreateBranch creates a test branch with the given name and code.
func (f *Fixtures) CreateBranch(ctx context.Context, name, code string) models.Branch {
	f.t.Helper()

	now := time.Now().UTC()
	branch := models.Branch{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Code:      code,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("branches").InsertOne(ctx, branch); err != nil {
		f.t.Fatalf("failed to create test branch: %v", err)
	}
	return branch
}

// CreateSubject creates a test subject inside the given branch.
func (f *Fixtures) CreateSubject(ctx context.Context, name, code string, branchID primitive.ObjectID) models.Subject {
	f.t.Helper()

	now := time.Now().UTC()
	subject := models.Subject{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Code:      code,
		BranchID:  branchID,
		Semester:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("subjects").InsertOne(ctx, subject); err != nil {
		f.t.Fatalf("failed to create test subject: %v", err)
	}
	return subject
}

// CreateStudent creates a test student in the given branch. Email and
// enrollment number are generated unique.
func (f *Fixtures) CreateStudent(ctx context.Context, firstName, lastName string, branchID primitive.ObjectID, aspiring models.AspiringField) models.Student {
	f.t.Helper()

	now := time.Now().UTC()
	fullName := firstName + " " + lastName
	student := models.Student{
		ID:           primitive.NewObjectID(),
		EnrollmentNo: "EN-" + uuid.NewString()[:8],
		FirstName:    firstName,
		LastName:     lastName,
		NameCI:       text.Fold(fullName),
		Email:        uniqueEmail("student"),
		Semester:     1,
		BranchID:     branchID,
		Aspiring:     aspiring,
		Status:       status.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("students").InsertOne(ctx, student); err != nil {
		f.t.Fatalf("failed to create test student: %v", err)
	}
	return student
}

// CreateFaculty creates a test faculty member.
func (f *Fixtures) CreateFaculty(ctx context.Context, firstName, lastName string) models.Faculty {
	f.t.Helper()

	now := time.Now().UTC()
	fullName := firstName + " " + lastName
	fac := models.Faculty{
		ID:        primitive.NewObjectID(),
		FirstName: firstName,
		LastName:  lastName,
		NameCI:    text.Fold(fullName),
		Email:     uniqueEmail("faculty"),
		Status:    status.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("faculty").InsertOne(ctx, fac); err != nil {
		f.t.Fatalf("failed to create test faculty: %v", err)
	}
	return fac
}

// CreateAdmin creates a test admin with the given password in plain text.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, password string) models.Admin {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("hashing test password: %v", err)
	}

	now := time.Now().UTC()
	admin := models.Admin{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		NameCI:       text.Fold(fullName),
		Email:        uniqueEmail("admin"),
		Status:       status.Active,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("admins").InsertOne(ctx, admin); err != nil {
		f.t.Fatalf("failed to create test admin: %v", err)
	}
	return admin
}

// CreateExam creates a test exam of the given type.
func (f *Fixtures) CreateExam(ctx context.Context, name, examType string, totalMarks int) models.Exam {
	f.t.Helper()

	now := time.Now().UTC()
	exam := models.Exam{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Date:       now,
		ExamType:   examType,
		TotalMarks: totalMarks,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("exams").InsertOne(ctx, exam); err != nil {
		f.t.Fatalf("failed to create test exam: %v", err)
	}
	return exam
}

// CreateMarks records a score for a student on an exam.
func (f *Fixtures) CreateMarks(ctx context.Context, studentID, examID primitive.ObjectID, obtained float64) models.Marks {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Marks{
		ID:            primitive.NewObjectID(),
		StudentID:     studentID,
		ExamID:        examID,
		MarksObtained: obtained,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := f.db.Collection("marks").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test marks: %v", err)
	}
	return m
}

// CreateMarksAt records a score with an explicit created_at, for tests that
// exercise the dashboard's date-range filter.
func (f *Fixtures) CreateMarksAt(ctx context.Context, studentID, examID primitive.ObjectID, obtained float64, createdAt time.Time) models.Marks {
	f.t.Helper()

	m := models.Marks{
		ID:            primitive.NewObjectID(),
		StudentID:     studentID,
		ExamID:        examID,
		MarksObtained: obtained,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}

	if _, err := f.db.Collection("marks").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test marks: %v", err)
	}
	return m
}
