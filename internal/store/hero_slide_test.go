package store

import (
	"testing"

	"github.com/google/uuid"

	"archfolio/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestHeroSlideCreateAppendsAtEnd(t *testing.T) {
	db := testDB(t)
	s := NewHeroSlideStore(db)

	a, err := s.Create("Slide A", "", "https://cdn.local/a.jpg", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := s.Create("Slide B", "", "https://cdn.local/b.jpg", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	c, err := s.Create("Slide C", "", "https://cdn.local/c.jpg", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, "hero_slides", a.ID, b.ID, c.ID) })

	if !(a.DisplayOrder < b.DisplayOrder && b.DisplayOrder < c.DisplayOrder) {
		t.Errorf("append order broken: %d, %d, %d",
			a.DisplayOrder, b.DisplayOrder, c.DisplayOrder)
	}

	slides, err := s.List(false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	pos := map[uuid.UUID]int{}
	for i, sl := range slides {
		pos[sl.ID] = i
	}
	if !(pos[a.ID] < pos[b.ID] && pos[b.ID] < pos[c.ID]) {
		t.Errorf("list order does not follow creation order")
	}
}

func TestHeroSlideReorder(t *testing.T) {
	db := testDB(t)
	s := NewHeroSlideStore(db)

	a, _ := s.Create("R1", "", "https://cdn.local/1.jpg", "", "")
	b, _ := s.Create("R2", "", "https://cdn.local/2.jpg", "", "")
	c, _ := s.Create("R3", "", "https://cdn.local/3.jpg", "", "")
	t.Cleanup(func() { cleanRows(t, db, "hero_slides", a.ID, b.ID, c.ID) })

	want := []uuid.UUID{c.ID, a.ID, b.ID}
	if err := s.Reorder(want); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	orderOf := func(t *testing.T) []uuid.UUID {
		t.Helper()
		slides, err := s.List(false)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		var got []uuid.UUID
		for _, sl := range slides {
			for _, id := range want {
				if sl.ID == id {
					got = append(got, sl.ID)
				}
			}
		}
		return got
	}

	got := orderOf(t)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order after reorder: got %v, want %v", got, want)
		}
	}

	// Applying the same order again changes nothing.
	if err := s.Reorder(want); err != nil {
		t.Fatalf("Reorder (repeat): %v", err)
	}
	got = orderOf(t)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reorder not idempotent: got %v, want %v", got, want)
		}
	}
}

func TestHeroSlideUpdatePatchesOnlySetFields(t *testing.T) {
	db := testDB(t)
	s := NewHeroSlideStore(db)

	sl, err := s.Create("Original", "Sub", "https://cdn.local/x.jpg", "Label", "/work")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, "hero_slides", sl.ID) })

	updated, err := s.Update(sl.ID, &models.HeroSlidePatch{
		Title:    strPtr("Renamed"),
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("title: got %q", updated.Title)
	}
	if updated.Subtitle != "Sub" || updated.CTALabel != "Label" {
		t.Errorf("unset fields changed: %+v", updated)
	}
	if updated.IsActive {
		t.Error("is_active should be false")
	}

	// Hidden slides drop out of the public list but stay in admin's.
	active, err := s.List(true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, x := range active {
		if x.ID == sl.ID {
			t.Error("inactive slide present in active list")
		}
	}
}

func TestHeroSlideUpdateMissing(t *testing.T) {
	db := testDB(t)
	s := NewHeroSlideStore(db)

	sl, err := s.Update(uuid.New(), &models.HeroSlidePatch{Title: strPtr("x")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if sl != nil {
		t.Errorf("expected nil for missing slide, got %v", sl)
	}
}

func TestHeroSlideDelete(t *testing.T) {
	db := testDB(t)
	s := NewHeroSlideStore(db)

	sl, err := s.Create("Doomed", "", "https://cdn.local/d.jpg", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Delete(sl.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	found, err := s.FindByID(sl.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Error("slide still present after delete")
	}

	// Deleting again is not an error.
	if err := s.Delete(sl.ID); err != nil {
		t.Errorf("repeat Delete: %v", err)
	}
}
