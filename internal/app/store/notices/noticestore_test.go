package noticestore_test

import (
	"strings"
	"testing"

	noticestore "github.com/dalemusser/acadhub/internal/app/store/notices"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/acadhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create_SanitizesBody(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := noticestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Notice{
		Title:    "Exam Schedule",
		Body:     `<p>Revised schedule attached.</p><script>alert('xss')</script>`,
		Audience: models.NoticeForStudent,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if strings.Contains(created.Body, "script") {
		t.Errorf("expected script stripped from body, got %q", created.Body)
	}
	if !strings.Contains(created.Body, "<p>Revised schedule attached.</p>") {
		t.Errorf("expected safe markup preserved, got %q", created.Body)
	}
}

func TestStore_Create_BadAudience(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := noticestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Notice{
		Title:    "Oops",
		Audience: "everyone",
	})
	if err == nil {
		t.Error("expected error for unrecognized audience")
	}
}

func TestStore_ListForAudience(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := noticestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, n := range []models.Notice{
		{Title: "For Students", Audience: models.NoticeForStudent},
		{Title: "For Faculty", Audience: models.NoticeForFaculty},
		{Title: "For Everyone", Audience: models.NoticeForBoth},
	} {
		if _, err := store.Create(ctx, n); err != nil {
			t.Fatalf("Create %q failed: %v", n.Title, err)
		}
	}

	got, err := store.ListForAudience(ctx, models.NoticeForStudent)
	if err != nil {
		t.Fatalf("ListForAudience failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notices for students, got %d", len(got))
	}
	for _, n := range got {
		if n.Audience == models.NoticeForFaculty {
			t.Errorf("faculty-only notice leaked into student listing: %q", n.Title)
		}
	}

	all, err := store.ListForAudience(ctx, "")
	if err != nil {
		t.Fatalf("ListForAudience(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 notices unfiltered, got %d", len(all))
	}
}

func TestStore_Update_ResanitizesBody(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := noticestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Notice{
		Title:    "Original",
		Body:     "<p>Original</p>",
		Audience: models.NoticeForBoth,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = store.Update(ctx, created.ID, "", `<p>Edited</p><iframe src="https://evil.example"></iframe>`, "", "")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if strings.Contains(found.Body, "iframe") {
		t.Errorf("expected iframe stripped, got %q", found.Body)
	}
	if found.Title != "Original" {
		t.Errorf("empty title should not overwrite, got %q", found.Title)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := noticestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Notice{
		Title:    "Doomed",
		Audience: models.NoticeForBoth,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deletion, got %d", n)
	}
}
