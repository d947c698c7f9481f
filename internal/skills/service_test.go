package skills

import (
	"context"
	"errors"
	"testing"
)

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.Create(context.Background(), SkillGroup{Title: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateAssignsIDAndDefaultsSkills(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	g, err := svc.Create(context.Background(), SkillGroup{Title: "Backend"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID == "" {
		t.Fatalf("expected generated id")
	}
	if g.Skills == nil || len(g.Skills) != 0 {
		t.Fatalf("expected empty skills slice, got %v", g.Skills)
	}
	if g.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be stamped")
	}
}

func TestUpdateMatchesByIDOrTitle(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, SkillGroup{Title: "Backend", Skills: []string{"Go"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Match by id.
	updated, err := svc.Update(ctx, created.ID, SkillGroup{Title: "Backend", Skills: []string{"Go", "Postgres"}})
	if err != nil {
		t.Fatalf("Update by id: %v", err)
	}
	if len(updated.Skills) != 2 {
		t.Fatalf("expected skills replaced, got %v", updated.Skills)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatalf("update must keep the original CreatedAt")
	}

	// Match by case-insensitive title.
	updated, err = svc.Update(ctx, "bAcKeNd", SkillGroup{Title: "Platform", Skills: []string{"K8s"}})
	if err != nil {
		t.Fatalf("Update by title: %v", err)
	}
	if updated.ID != created.ID || updated.Title != "Platform" {
		t.Fatalf("title match resolved wrong record: %+v", updated)
	}

	if _, err := svc.Update(ctx, "no-such-group", SkillGroup{Title: "X"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMatchesByTitleAndToleratesMisses(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, SkillGroup{Title: "Frontend"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, "frontend"); err != nil {
		t.Fatalf("Delete by title: %v", err)
	}
	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}

	if err := svc.Delete(ctx, "frontend"); err != nil {
		t.Fatalf("repeat Delete: %v", err)
	}
}
