package dashboardqueries

import (
	"context"

	"github.com/dalemusser/acadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// JoinedMark is one marks row enriched with its student and exam dimension
// fields. Only rows whose references resolve become JoinedMarks; orphans are
// dropped silently.
type JoinedMark struct {
	StudentID   primitive.ObjectID
	ExamID      primitive.ObjectID
	Obtained    float64
	StudentName string
	Aspiring    models.AspiringField // normalized, never empty
	BranchID    primitive.ObjectID
	ExamName    string
	ExamType    string
	TotalMarks  int
}

// LoadStudents fetches the students visible under f (branch restriction
// applied at the database).
func LoadStudents(ctx context.Context, db *mongo.Database, f Filter) ([]models.Student, error) {
	if f.MatchesNothing() {
		return nil, nil
	}
	match := bson.M{}
	if f.Branch != nil {
		match["branch_id"] = *f.Branch
	}
	cur, err := db.Collection("students").Find(ctx, match)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var students []models.Student
	if err := cur.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// LoadExams fetches exams, restricted to f.ExamType when set.
func LoadExams(ctx context.Context, db *mongo.Database, f Filter) ([]models.Exam, error) {
	if f.MatchesNothing() {
		return nil, nil
	}
	match := bson.M{}
	if f.ExamType != "" {
		match["exam_type"] = f.ExamType
	}
	cur, err := db.Collection("exams").Find(ctx, match)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var exams []models.Exam
	if err := cur.All(ctx, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// LoadFacts fetches the filtered marks rows and joins them with their
// student and exam records. Subject and date restrictions are pushed to the
// database; student/exam-scoped restrictions are applied by Join since the
// referenced fields only exist after the dimension lookup.
func LoadFacts(ctx context.Context, db *mongo.Database, f Filter) ([]JoinedMark, error) {
	if f.MatchesNothing() {
		return nil, nil
	}

	match := bson.M{}
	if f.Subject != nil {
		match["subject_id"] = *f.Subject
	}
	if f.From != nil || f.To != nil {
		created := bson.M{}
		if f.From != nil {
			created["$gte"] = *f.From
		}
		if f.To != nil {
			created["$lte"] = *f.To
		}
		match["created_at"] = created
	}

	cur, err := db.Collection("marks").Find(ctx, match)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var marks []models.Marks
	if err := cur.All(ctx, &marks); err != nil {
		return nil, err
	}
	if len(marks) == 0 {
		return nil, nil
	}

	students, err := LoadStudents(ctx, db, f)
	if err != nil {
		return nil, err
	}
	exams, err := LoadExams(ctx, db, f)
	if err != nil {
		return nil, err
	}

	return Join(marks, students, exams, f), nil
}

// Join resolves each marks row's student and exam references and applies the
// dimension-scoped parts of f. Rows whose studentId or examId no longer
// resolves are excluded. The loaded student and exam sets already reflect
// the branch and exam-type restrictions, so a failed map lookup covers both
// orphaned references and filtered-out dimensions.
func Join(marks []models.Marks, students []models.Student, exams []models.Exam, f Filter) []JoinedMark {
	studentByID := make(map[primitive.ObjectID]*models.Student, len(students))
	for i := range students {
		studentByID[students[i].ID] = &students[i]
	}
	examByID := make(map[primitive.ObjectID]*models.Exam, len(exams))
	for i := range exams {
		examByID[exams[i].ID] = &exams[i]
	}

	joined := make([]JoinedMark, 0, len(marks))
	for _, m := range marks {
		st, ok := studentByID[m.StudentID]
		if !ok {
			continue
		}
		ex, ok := examByID[m.ExamID]
		if !ok {
			continue
		}
		joined = append(joined, JoinedMark{
			StudentID:   m.StudentID,
			ExamID:      m.ExamID,
			Obtained:    m.MarksObtained,
			StudentName: st.FullName(),
			Aspiring:    st.Aspiring.Normalize(),
			BranchID:    st.BranchID,
			ExamName:    ex.Name,
			ExamType:    ex.ExamType,
			TotalMarks:  ex.TotalMarks,
		})
	}
	return joined
}
