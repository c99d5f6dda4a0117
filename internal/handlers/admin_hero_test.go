package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// postForm builds an urlencoded POST request for a handler under test.
func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// withURLID attaches a chi route context carrying the {id} parameter.
func withURLID(req *http.Request, id uuid.UUID) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id.String())
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHeroCreateRequiresImage(t *testing.T) {
	admin := NewAdmin(testRenderer(t), nil, deadStores(t), nil, nil)

	form := url.Values{
		"title":     {"Hillside Residence"},
		"image_url": {""},
	}
	w := httptest.NewRecorder()
	admin.HeroCreate(w, postForm("/admin/hero", form))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "A slide image is required.") {
		t.Error("expected the required-image message in the response")
	}
	if !strings.Contains(body, "bg-red-100") {
		t.Error("expected the message styled as an error flash")
	}
	if w.Header().Get("Location") != "" {
		t.Error("a rejected create must not redirect")
	}
}

func TestHeroUpdateRejectsClearedImage(t *testing.T) {
	admin := NewAdmin(testRenderer(t), nil, deadStores(t), nil, nil)

	// The field is present but empty, which would blank the stored image.
	form := url.Values{
		"title":     {"Hillside Residence"},
		"image_url": {""},
	}
	id := uuid.New()
	req := withURLID(postForm("/admin/hero/"+id.String(), form), id)

	w := httptest.NewRecorder()
	admin.HeroUpdate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "A slide image is required.") {
		t.Error("expected the required-image message in the response")
	}
}

func TestHeroUpdateKeepsImageWhenFieldAbsent(t *testing.T) {
	admin := NewAdmin(testRenderer(t), nil, deadStores(t), nil, nil)

	// Without the image field the patch leaves the stored image alone,
	// so the request reaches the store and fails on the dead backend.
	form := url.Values{"title": {"Hillside Residence"}}
	id := uuid.New()
	req := withURLID(postForm("/admin/hero/"+id.String(), form), id)

	w := httptest.NewRecorder()
	admin.HeroUpdate(w, req)

	body := w.Body.String()
	if strings.Contains(body, "A slide image is required.") {
		t.Error("an absent image field must not be treated as clearing the image")
	}
	if !strings.Contains(body, "Could not save the slide.") {
		t.Error("expected the store failure surfaced as a flash")
	}
}

func TestHeroCreateFailureShowsFlash(t *testing.T) {
	admin := NewAdmin(testRenderer(t), nil, deadStores(t), nil, nil)

	form := url.Values{
		"title":     {"Hillside Residence"},
		"image_url": {"https://cdn.example.com/hero/hillside.jpg"},
	}
	w := httptest.NewRecorder()
	admin.HeroCreate(w, postForm("/admin/hero", form))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Could not save the slide. Please try again.") {
		t.Error("expected the write failure surfaced as a flash message")
	}
	if !strings.Contains(body, "bg-red-100") {
		t.Error("expected the message styled as an error flash")
	}
}

func TestTimelineCreateFailureShowsFlash(t *testing.T) {
	admin := NewAdmin(testRenderer(t), nil, deadStores(t), nil, nil)

	form := url.Values{
		"title": {"Studio founded"},
		"year":  {"2002"},
	}
	w := httptest.NewRecorder()
	admin.TimelineCreate(w, postForm("/admin/timeline", form))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Could not save the milestone.") {
		t.Error("expected the write failure surfaced as a flash message")
	}
}
