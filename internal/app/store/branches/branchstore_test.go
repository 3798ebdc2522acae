package branchstore_test

import (
	"testing"

	branchstore "github.com/dalemusser/acadhub/internal/app/store/branches"
	"github.com/dalemusser/acadhub/internal/app/system/indexes"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/acadhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := branchstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Branch{
		Name: "Computer Science",
		Code: "cse",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI != "computer science" {
		t.Errorf("NameCI: got %q, want %q", created.NameCI, "computer science")
	}
	if created.Code != "CSE" {
		t.Errorf("Code: got %q, want %q (uppercased)", created.Code, "CSE")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := branchstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	if _, err := store.Create(ctx, models.Branch{Name: "Mechanical", Code: "ME"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Same name, different case, different code: the name_ci index trips.
	_, err := store.Create(ctx, models.Branch{Name: "MECHANICAL", Code: "MEC"})
	if err != branchstore.ErrDuplicateBranch {
		t.Errorf("expected ErrDuplicateBranch, got %v", err)
	}
}

func TestStore_Create_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := branchstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Branch{Code: "XX"}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := store.Create(ctx, models.Branch{Name: "No Code"}); err == nil {
		t.Error("expected error for missing code")
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := branchstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_List_SortedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := branchstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, b := range []models.Branch{
		{Name: "Mechanical", Code: "ME"},
		{Name: "Civil", Code: "CE"},
		{Name: "Electronics", Code: "ECE"},
	} {
		if _, err := store.Create(ctx, b); err != nil {
			t.Fatalf("Create %q failed: %v", b.Name, err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 branches, got %d", len(got))
	}
	want := []string{"Civil", "Electronics", "Mechanical"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestStore_UpdateInfo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := branchstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Branch{Name: "Old Name", Code: "OLD"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.UpdateInfo(ctx, created.ID, "New Name", "new"); err != nil {
		t.Fatalf("UpdateInfo failed: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Name != "New Name" {
		t.Errorf("Name: got %q, want %q", found.Name, "New Name")
	}
	if found.Code != "NEW" {
		t.Errorf("Code: got %q, want %q", found.Code, "NEW")
	}
	if found.NameCI != "new name" {
		t.Errorf("NameCI: got %q, want %q", found.NameCI, "new name")
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := branchstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Branch{Name: "Doomed", Code: "DMD"})
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

	n, err = store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deletions on repeat, got %d", n)
	}
}
