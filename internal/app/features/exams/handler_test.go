package exams_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/acadhub/internal/app/features/exams"
	marksstore "github.com/dalemusser/acadhub/internal/app/store/marks"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/acadhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*exams.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return exams.NewHandler(db, respond.NewErrorLogger(logger), logger), db
}

func TestHandleCreate(t *testing.T) {
	h, _ := newHandler(t)

	body := `{"name":"Midterm","examType":"mid","totalMarks":100}`
	req := testutil.WithUser(
		httptest.NewRequest("POST", "/exams", strings.NewReader(body)),
		testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, `"exam_type":"mid"`)
}

func TestHandleCreate_BadTypeRejected(t *testing.T) {
	h, _ := newHandler(t)

	body := `{"name":"Quiz","examType":"pop","totalMarks":10}`
	req := testutil.WithUser(
		httptest.NewRequest("POST", "/exams", strings.NewReader(body)),
		testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeList_FilterByType(t *testing.T) {
	h, db := newHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateExam(ctx, "Mid 1", models.ExamTypeMid, 100)
	fixtures.CreateExam(ctx, "End 1", models.ExamTypeEnd, 100)

	req := testutil.NewAuthenticatedRequest("GET", "/exams?type=end", testutil.StudentUser())
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Name != "End 1" {
		t.Fatalf("filtered list: got %+v", resp.Data)
	}
}

func TestServeList_UnknownTypeMatchesNothing(t *testing.T) {
	h, db := newHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateExam(ctx, "Mid 1", models.ExamTypeMid, 100)

	req := testutil.NewAuthenticatedRequest("GET", "/exams?type=pop", testutil.StudentUser())
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"data":[]`)
}

func TestHandleDelete_CascadesMarks(t *testing.T) {
	h, db := newHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	branch := fixtures.CreateBranch(ctx, "Computer Science", "CSE")
	st := fixtures.CreateStudent(ctx, "A", "One", branch.ID, "")
	exam := fixtures.CreateExam(ctx, "Midterm", models.ExamTypeMid, 100)
	fixtures.CreateMarks(ctx, st.ID, exam.ID, 60)

	req := testutil.NewAuthenticatedRequest("DELETE", "/exams/"+exam.ID.Hex(), testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", exam.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	rows, err := marksstore.New(db).ListByExam(ctx, exam.ID)
	if err != nil {
		t.Fatalf("listing marks: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected marks removed with the exam, got %d rows", len(rows))
	}
}
