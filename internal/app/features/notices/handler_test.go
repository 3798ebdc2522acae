package notices_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/acadhub/internal/app/features/notices"
	noticestore "github.com/dalemusser/acadhub/internal/app/store/notices"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/acadhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*notices.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return notices.NewHandler(db, respond.NewErrorLogger(logger), logger), db
}

func seedNotice(t *testing.T, db *mongo.Database, title, audience string) models.Notice {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	n, err := noticestore.New(db).Create(ctx, models.Notice{
		Title:    title,
		Body:     "<p>" + title + "</p>",
		Audience: audience,
	})
	if err != nil {
		t.Fatalf("seeding notice: %v", err)
	}
	return n
}

func TestServeList_StudentSeesStudentAndBoth(t *testing.T) {
	h, db := newHandler(t)

	seedNotice(t, db, "Exam schedule", models.NoticeForStudent)
	seedNotice(t, db, "Staff meeting", models.NoticeForFaculty)
	seedNotice(t, db, "Holiday", models.NoticeForBoth)

	req := testutil.NewAuthenticatedRequest("GET", "/notices", testutil.StudentUser())
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 notices, got %d", len(resp.Data))
	}
	for _, n := range resp.Data {
		if n.Title == "Staff meeting" {
			t.Error("student should not see faculty-only notices")
		}
	}
}

func TestServeList_AdminSeesAll(t *testing.T) {
	h, db := newHandler(t)

	seedNotice(t, db, "Exam schedule", models.NoticeForStudent)
	seedNotice(t, db, "Staff meeting", models.NoticeForFaculty)
	seedNotice(t, db, "Holiday", models.NoticeForBoth)

	req := testutil.NewAuthenticatedRequest("GET", "/notices", testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("expected 3 notices, got %d", len(resp.Data))
	}
}

func TestHandleCreate_SanitizesBody(t *testing.T) {
	h, db := newHandler(t)

	body := `{"title":"Results","body":"<p>out now</p><script>alert(1)</script>","audience":"student"}`
	req := testutil.WithUser(
		httptest.NewRequest("POST", "/notices", strings.NewReader(body)),
		testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	out, err := noticestore.New(db).ListForAudience(ctx, "")
	if err != nil {
		t.Fatalf("listing notices: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(out))
	}
	if strings.Contains(out[0].Body, "script") {
		t.Errorf("body was not sanitized: %q", out[0].Body)
	}
	if !strings.Contains(out[0].Body, "<p>out now</p>") {
		t.Errorf("safe markup should survive: %q", out[0].Body)
	}
}

func TestHandleCreate_BadAudienceRejected(t *testing.T) {
	h, _ := newHandler(t)

	body := `{"title":"Results","body":"x","audience":"everyone"}`
	req := testutil.WithUser(
		httptest.NewRequest("POST", "/notices", strings.NewReader(body)),
		testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleDelete(t *testing.T) {
	h, db := newHandler(t)

	n := seedNotice(t, db, "Old news", models.NoticeForBoth)

	req := testutil.NewAuthenticatedRequest("DELETE", "/notices/"+n.ID.Hex(), testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", n.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	out, err := noticestore.New(db).ListForAudience(ctx, "")
	if err != nil {
		t.Fatalf("listing notices: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected no notices after delete, got %d", len(out))
	}
}
