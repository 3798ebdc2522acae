package marksentry_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/acadhub/internal/app/features/marksentry"
	marksstore "github.com/dalemusser/acadhub/internal/app/store/marks"
	"github.com/dalemusser/acadhub/internal/app/system/indexes"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/acadhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*marksentry.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return marksentry.NewHandler(db, respond.NewErrorLogger(logger), logger), db
}

func TestHandleCreate(t *testing.T) {
	h, db := newHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	branch := fixtures.CreateBranch(ctx, "Computer Science", "CSE")
	st := fixtures.CreateStudent(ctx, "A", "One", branch.ID, "")
	exam := fixtures.CreateExam(ctx, "Midterm", models.ExamTypeMid, 100)

	body := fmt.Sprintf(`{"studentId":%q,"examId":%q,"marksObtained":72.5}`, st.ID.Hex(), exam.ID.Hex())
	req := testutil.WithUser(
		httptest.NewRequest("POST", "/marks", strings.NewReader(body)),
		testutil.FacultyUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	rows, err := marksstore.New(db).ListByStudent(ctx, st.ID)
	if err != nil {
		t.Fatalf("listing marks: %v", err)
	}
	if len(rows) != 1 || rows[0].MarksObtained != 72.5 {
		t.Fatalf("stored marks: got %+v", rows)
	}
}

func TestHandleCreate_DuplicateConflicts(t *testing.T) {
	h, db := newHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensuring indexes: %v", err)
	}

	branch := fixtures.CreateBranch(ctx, "Computer Science", "CSE")
	st := fixtures.CreateStudent(ctx, "A", "One", branch.ID, "")
	exam := fixtures.CreateExam(ctx, "Midterm", models.ExamTypeMid, 100)
	fixtures.CreateMarks(ctx, st.ID, exam.ID, 50)

	body := fmt.Sprintf(`{"studentId":%q,"examId":%q,"marksObtained":60}`, st.ID.Hex(), exam.ID.Hex())
	req := testutil.WithUser(
		httptest.NewRequest("POST", "/marks", strings.NewReader(body)),
		testutil.FacultyUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusConflict)
}

func TestHandleCreateBulk(t *testing.T) {
	h, db := newHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	branch := fixtures.CreateBranch(ctx, "Computer Science", "CSE")
	exam := fixtures.CreateExam(ctx, "Midterm", models.ExamTypeMid, 100)
	a := fixtures.CreateStudent(ctx, "A", "One", branch.ID, "")
	b := fixtures.CreateStudent(ctx, "B", "Two", branch.ID, "")

	body := fmt.Sprintf(`[
		{"studentId":%q,"examId":%q,"marksObtained":40},
		{"studentId":%q,"examId":%q,"marksObtained":80}
	]`, a.ID.Hex(), exam.ID.Hex(), b.ID.Hex(), exam.ID.Hex())
	req := testutil.WithUser(
		httptest.NewRequest("POST", "/marks/bulk", strings.NewReader(body)),
		testutil.FacultyUser())
	rec := testutil.NewRecorder()

	h.HandleCreateBulk(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	rows, err := marksstore.New(db).ListByExam(ctx, exam.ID)
	if err != nil {
		t.Fatalf("listing marks: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestHandleCreateBulk_EmptyRejected(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.WithUser(
		httptest.NewRequest("POST", "/marks/bulk", strings.NewReader(`[]`)),
		testutil.FacultyUser())
	rec := testutil.NewRecorder()

	h.HandleCreateBulk(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeByStudent(t *testing.T) {
	h, db := newHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	branch := fixtures.CreateBranch(ctx, "Computer Science", "CSE")
	st := fixtures.CreateStudent(ctx, "A", "One", branch.ID, "")
	exam := fixtures.CreateExam(ctx, "Midterm", models.ExamTypeMid, 100)
	fixtures.CreateMarks(ctx, st.ID, exam.ID, 64)

	req := testutil.NewAuthenticatedRequest("GET", "/marks/student/"+st.ID.Hex(), testutil.FacultyUser())
	req = testutil.WithChiURLParam(req, "studentID", st.ID.Hex())
	rec := testutil.NewRecorder()

	h.ServeByStudent(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Data []struct {
			MarksObtained float64 `json:"marks_obtained"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].MarksObtained != 64 {
		t.Fatalf("response data: got %+v", resp.Data)
	}
}

func TestServeSelf_UsesSessionIdentity(t *testing.T) {
	h, db := newHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	branch := fixtures.CreateBranch(ctx, "Computer Science", "CSE")
	st := fixtures.CreateStudent(ctx, "A", "One", branch.ID, "")
	other := fixtures.CreateStudent(ctx, "B", "Two", branch.ID, "")
	exam := fixtures.CreateExam(ctx, "Midterm", models.ExamTypeMid, 100)
	fixtures.CreateMarks(ctx, st.ID, exam.ID, 64)
	fixtures.CreateMarks(ctx, other.ID, exam.ID, 99)

	user := testutil.TestUser{ID: st.ID.Hex(), Name: "A One", Email: st.Email, Role: "student"}
	req := testutil.NewAuthenticatedRequest("GET", "/marks/me", user)
	rec := testutil.NewRecorder()

	h.ServeSelf(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Data []struct {
			MarksObtained float64 `json:"marks_obtained"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].MarksObtained != 64 {
		t.Fatalf("expected only the caller's marks, got %+v", resp.Data)
	}
}

func TestHandleUpdate(t *testing.T) {
	h, db := newHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	branch := fixtures.CreateBranch(ctx, "Computer Science", "CSE")
	st := fixtures.CreateStudent(ctx, "A", "One", branch.ID, "")
	exam := fixtures.CreateExam(ctx, "Midterm", models.ExamTypeMid, 100)
	m := fixtures.CreateMarks(ctx, st.ID, exam.ID, 64)

	req := testutil.WithUser(
		httptest.NewRequest("PUT", "/marks/"+m.ID.Hex(), strings.NewReader(`{"marksObtained":70}`)),
		testutil.FacultyUser())
	req = testutil.WithChiURLParam(req, "id", m.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleUpdate(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	rows, err := marksstore.New(db).ListByStudent(ctx, st.ID)
	if err != nil {
		t.Fatalf("listing marks: %v", err)
	}
	if len(rows) != 1 || rows[0].MarksObtained != 70 {
		t.Fatalf("updated marks: got %+v", rows)
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	h, _ := newHandler(t)

	id := "65f000000000000000000000"
	req := testutil.NewAuthenticatedRequest("DELETE", "/marks/"+id, testutil.FacultyUser())
	req = testutil.WithChiURLParam(req, "id", id)
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}
