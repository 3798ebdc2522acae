package branches_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/acadhub/internal/app/features/branches"
	branchstore "github.com/dalemusser/acadhub/internal/app/store/branches"
	subjectstore "github.com/dalemusser/acadhub/internal/app/store/subjects"
	"github.com/dalemusser/acadhub/internal/app/system/indexes"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*branches.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return branches.NewHandler(db, respond.NewErrorLogger(logger), logger), db
}

func TestHandleCreate(t *testing.T) {
	h, _ := newHandler(t)

	body := `{"name":"Computer Science","code":"CS"}`
	req := testutil.WithUser(
		httptest.NewRequest("POST", "/branches", strings.NewReader(body)),
		testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, `"Computer Science"`)
}

func TestHandleCreate_DuplicateConflict(t *testing.T) {
	h, db := newHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensuring indexes: %v", err)
	}
	testutil.NewFixtures(t, db).CreateBranch(ctx, "Computer Science", "CS")

	body := `{"name":"Computer Science","code":"CS"}`
	req := testutil.WithUser(
		httptest.NewRequest("POST", "/branches", strings.NewReader(body)),
		testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusConflict)
}

func TestHandleDelete_CascadesSubjects(t *testing.T) {
	h, db := newHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	branch := f.CreateBranch(ctx, "Computer Science", "CS")
	f.CreateSubject(ctx, "Algorithms", "CS301", branch.ID)
	f.CreateSubject(ctx, "Databases", "CS302", branch.ID)

	req := testutil.NewAuthenticatedRequest("DELETE", "/branches/"+branch.ID.Hex(), testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", branch.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	if _, err := branchstore.New(db).GetByID(ctx, branch.ID); err != mongo.ErrNoDocuments {
		t.Errorf("branch should be gone, got err %v", err)
	}
	subs, err := subjectstore.New(db).ListByBranch(ctx, branch.ID, 0)
	if err != nil {
		t.Fatalf("listing subjects: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("expected subjects to be removed with the branch, got %d", len(subs))
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	h, _ := newHandler(t)

	id := "bbbbbbbbbbbbbbbbbbbbbbbb"
	req := testutil.NewAuthenticatedRequest("DELETE", "/branches/"+id, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", id)
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}
