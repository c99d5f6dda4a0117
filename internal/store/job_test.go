package store

import (
	"testing"

	"github.com/google/uuid"

	"archfolio/internal/models"
)

func TestJobPositionLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewJobPositionStore(db)

	suffix := uuid.NewString()[:8]
	j, err := s.Create("Project Architect "+suffix, "Design", "Bucharest",
		models.EmploymentFullTime)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, "job_positions", j.ID) })

	if !j.IsOpen {
		t.Error("new position should be open")
	}

	closed, err := s.Update(j.ID, &models.JobPositionPatch{
		IsOpen:      boolPtr(false),
		Description: strPtr("Filled."),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if closed.IsOpen {
		t.Error("position should be closed")
	}
	if closed.Title != j.Title {
		t.Errorf("title changed on partial patch: %q", closed.Title)
	}

	open, err := s.List(true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, x := range open {
		if x.ID == j.ID {
			t.Error("closed position present in open list")
		}
	}
}

func TestJobApplicationsCascadeWithPosition(t *testing.T) {
	db := testDB(t)
	positions := NewJobPositionStore(db)
	apps := NewJobApplicationStore(db)

	suffix := uuid.NewString()[:8]
	j, err := positions.Create("Intern "+suffix, "Studio", "Remote",
		models.EmploymentInternship)
	if err != nil {
		t.Fatalf("create position: %v", err)
	}

	cvKey := "cv/" + suffix + ".pdf"
	a, err := apps.Create(j.ID, "Maria Pop", "maria-"+suffix+"@example.com",
		"Recent graduate.", &cvKey)
	if err != nil {
		t.Fatalf("create application: %v", err)
	}
	if a.CVKey == nil || *a.CVKey != cvKey {
		t.Errorf("cv_key: got %v", a.CVKey)
	}

	listed, err := apps.List(&j.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != a.ID {
		t.Fatalf("List by position: got %d rows", len(listed))
	}
	if listed[0].PositionTitle != j.Title {
		t.Errorf("position title not resolved: %q", listed[0].PositionTitle)
	}

	counts, err := apps.CountByPosition()
	if err != nil {
		t.Fatalf("CountByPosition: %v", err)
	}
	if counts[j.ID] != 1 {
		t.Errorf("count: got %d, want 1", counts[j.ID])
	}

	if err := positions.Delete(j.ID); err != nil {
		t.Fatalf("delete position: %v", err)
	}
	gone, err := apps.FindByID(a.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if gone != nil {
		t.Error("application survived position delete")
	}
}

func TestJobApplicationWithoutCV(t *testing.T) {
	db := testDB(t)
	positions := NewJobPositionStore(db)
	apps := NewJobApplicationStore(db)

	suffix := uuid.NewString()[:8]
	j, err := positions.Create("Draughtsman "+suffix, "Studio", "Cluj",
		models.EmploymentContract)
	if err != nil {
		t.Fatalf("create position: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, "job_positions", j.ID) })

	a, err := apps.Create(j.ID, "Ion Vasile", "ion-"+suffix+"@example.com", "", nil)
	if err != nil {
		t.Fatalf("create application: %v", err)
	}
	if a.CVKey != nil {
		t.Errorf("expected nil cv_key, got %v", a.CVKey)
	}
}
