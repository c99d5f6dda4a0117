package handlers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"

	"archfolio/internal/models"
)

// --------------------------------------------------------------------------
// Form helpers
// --------------------------------------------------------------------------

func TestFormPtr(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(url.Values{
		"present": {"  hello  "},
		"empty":   {""},
	}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := req.ParseForm(); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}

	if got := formPtr(req, "present"); got == nil || *got != "hello" {
		t.Errorf("present field: got %v, want pointer to %q", got, "hello")
	}
	// Present-but-empty yields a pointer to "" so stores clear the value.
	if got := formPtr(req, "empty"); got == nil || *got != "" {
		t.Errorf("empty field: got %v, want pointer to empty string", got)
	}
	// Absent fields yield nil so stores keep the current value.
	if got := formPtr(req, "absent"); got != nil {
		t.Errorf("absent field: got %q, want nil", *got)
	}
}

func TestFormBool(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(url.Values{
		"checked":   {"true"},
		"unchecked": {"false"},
		"junk":      {"yes"},
	}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := req.ParseForm(); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}

	for key, want := range map[string]bool{
		"checked":   true,
		"unchecked": false,
		"junk":      false,
		"absent":    false,
	} {
		got := formBool(req, key)
		if got == nil {
			t.Fatalf("formBool(%q) returned nil", key)
		}
		if *got != want {
			t.Errorf("formBool(%q) = %v, want %v", key, *got, want)
		}
	}
}

func TestFormInt(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(url.Values{
		"year":    {"1998"},
		"padded":  {"  2024 "},
		"garbage": {"next year"},
	}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := req.ParseForm(); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}

	if got := formInt(req, "year"); got == nil || *got != 1998 {
		t.Errorf("year: got %v, want 1998", got)
	}
	if got := formInt(req, "padded"); got == nil || *got != 2024 {
		t.Errorf("padded: got %v, want 2024", got)
	}
	if got := formInt(req, "garbage"); got != nil {
		t.Errorf("garbage: got %d, want nil", *got)
	}
	if got := formInt(req, "absent"); got != nil {
		t.Errorf("absent: got %d, want nil", *got)
	}
}

func TestParseReorderIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name string
		ids  string
		want []uuid.UUID
	}{
		{"two ids", a.String() + "," + b.String(), []uuid.UUID{a, b}},
		{"whitespace tolerated", " " + a.String() + " , " + b.String() + " ", []uuid.UUID{a, b}},
		{"malformed entries skipped", a.String() + ",not-a-uuid," + b.String(), []uuid.UUID{a, b}},
		{"empty", "", nil},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(url.Values{"ids": {tt.ids}}.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if err := req.ParseForm(); err != nil {
				t.Fatalf("ParseForm: %v", err)
			}

			got := parseReorderIDs(req)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d ids, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ids[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// --------------------------------------------------------------------------
// FilterProjects
// --------------------------------------------------------------------------

func TestFilterProjects(t *testing.T) {
	catA, catB := uuid.New(), uuid.New()

	mk := func(title string, cat *uuid.UUID, status models.ProjectStatus) *models.Project {
		return &models.Project{ID: uuid.New(), Title: title, CategoryID: cat, Status: status}
	}

	projects := []*models.Project{
		mk("Villa One", &catA, models.ProjectStatusOngoing),
		mk("Villa Two", &catB, models.ProjectStatusOngoing),
		mk("Office Park", &catA, models.ProjectStatusOngoing),
		mk("Concept House", nil, models.ProjectStatusConcept),
	}

	titles := func(ps []*models.Project) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.Title
		}
		return out
	}

	tests := []struct {
		name       string
		query      string
		categoryID *uuid.UUID
		status     models.ProjectStatus
		want       []string
	}{
		{"no filters returns all", "", nil, "", []string{"Villa One", "Villa Two", "Office Park", "Concept House"}},
		{"text only case-insensitive", "villa", nil, "", []string{"Villa One", "Villa Two"}},
		{"text substring mid-title", "park", nil, "", []string{"Office Park"}},
		{"category only", "", &catA, "", []string{"Villa One", "Office Park"}},
		{"status only", "", nil, models.ProjectStatusConcept, []string{"Concept House"}},
		{"all three must hold", "villa", &catA, models.ProjectStatusOngoing, []string{"Villa One"}},
		{"no match", "villa", &catA, models.ProjectStatusConcept, []string{}},
		{"query whitespace trimmed", "  villa  ", &catB, "", []string{"Villa Two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(FilterProjects(projects, tt.query, tt.categoryID, tt.status))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v (order must be preserved)", got, tt.want)
				}
			}
		})
	}

	// Uncategorized projects never match a category filter.
	got := FilterProjects(projects, "", &catA, "")
	for _, p := range got {
		if p.CategoryID == nil {
			t.Error("project without category matched a category filter")
		}
	}

	// The input slice must not be mutated.
	if projects[0].Title != "Villa One" || len(projects) != 4 {
		t.Error("FilterProjects mutated its input")
	}
}
