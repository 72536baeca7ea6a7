package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/pawhaven/pawhaven/internal/auth"
	"github.com/pawhaven/pawhaven/internal/model"
	"github.com/pawhaven/pawhaven/internal/service"
	"github.com/pawhaven/pawhaven/internal/testutil"
)

var errTestStore = errors.New("store broke")

// asUser injects an authenticated caller the way the auth middleware does.
func asUser(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newAdoptionRouter(store *testutil.MemStore, userID string) chi.Router {
	svc := service.NewAdoptionService(store, store, nil)
	h := NewAdoptionHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Use(asUser(userID))
	r.Post("/api/adoptions", h.Create)
	r.Post("/api/adoptions/{dogId}/complete", h.Complete)
	return r
}

func TestAdoptionHandler_Create(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestDog(store, "dog-1", 2)
	router := newAdoptionRouter(store, "user-1")

	rec := postJSON(t, router, "/api/adoptions", map[string]string{
		"fullName": "Alice Smith",
		"email":    "alice@example.com",
		"phone":    "555-0100",
		"address":  "1 Main St",
		"dogId":    "dog-1",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool    `json:"success"`
		DogName string  `json:"dogName"`
		Price   float64 `json:"price"`
	}
	if err := decodeBody(rec, &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success {
		t.Error("expected success true")
	}
	if body.DogName != "Luna" {
		t.Errorf("expected dogName Luna, got %s", body.DogName)
	}
	if body.Price != 180 {
		t.Errorf("expected price 180, got %v", body.Price)
	}

	// Request does not consume the unit.
	dog, err := store.GetDogByID(context.Background(), "dog-1")
	if err != nil {
		t.Fatalf("GetDogByID failed: %v", err)
	}
	if dog.AvailableCount != 2 {
		t.Errorf("expected count unchanged at 2, got %d", dog.AvailableCount)
	}

	// Ledger holds a pending adoption owned by the caller.
	adoptions := store.Adoptions()
	if len(adoptions) != 1 {
		t.Fatalf("expected 1 adoption record, got %d", len(adoptions))
	}
	if adoptions[0].UserID != "user-1" || adoptions[0].Status != model.AdoptionPending {
		t.Errorf("unexpected adoption record: %+v", adoptions[0])
	}
	if adoptions[0].CustomerDetails.Name != "Alice Smith" {
		t.Errorf("unexpected customer snapshot: %+v", adoptions[0].CustomerDetails)
	}
}

func TestAdoptionHandler_Create_MissingDetails(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestDog(store, "dog-1", 2)
	router := newAdoptionRouter(store, "user-1")

	rec := postJSON(t, router, "/api/adoptions", map[string]string{
		"fullName": "Alice Smith",
		"email":    "alice@example.com",
		"dogId":    "dog-1",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := decodeBody(rec, &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["success"] != false {
		t.Error("expected success false")
	}
	if body["message"] != "All fields are required" {
		t.Errorf("unexpected message: %v", body["message"])
	}

	if got := len(store.Adoptions()); got != 0 {
		t.Errorf("expected no adoption records, found %d", got)
	}
}

func TestAdoptionHandler_Create_Unavailable(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestDog(store, "dog-1", 0)
	router := newAdoptionRouter(store, "user-1")

	for _, dogID := range []string{"dog-1", "no-such-dog"} {
		rec := postJSON(t, router, "/api/adoptions", map[string]string{
			"fullName": "A", "email": "a@example.com", "phone": "1", "address": "x", "dogId": dogID,
		})

		if rec.Code != http.StatusBadRequest {
			t.Errorf("dog %s: expected status 400, got %d", dogID, rec.Code)
		}

		var body map[string]any
		if err := decodeBody(rec, &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body["message"] != "Dog not available for adoption" {
			t.Errorf("dog %s: unexpected message: %v", dogID, body["message"])
		}
	}

	if got := len(store.Adoptions()); got != 0 {
		t.Errorf("expected no adoption records, found %d", got)
	}
}

func TestAdoptionHandler_Complete_Lifecycle(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestDog(store, "dog-1", 2)
	router := newAdoptionRouter(store, "user-1")

	rec := postJSON(t, router, "/api/adoptions", map[string]string{
		"fullName": "A", "email": "a@example.com", "phone": "1", "address": "x", "dogId": "dog-1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d", rec.Code)
	}

	rec = postJSON(t, router, "/api/adoptions/dog-1/complete", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := decodeBody(rec, &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["success"] != true {
		t.Errorf("expected success true, got %v", body["success"])
	}

	dog, err := store.GetDogByID(context.Background(), "dog-1")
	if err != nil {
		t.Fatalf("GetDogByID failed: %v", err)
	}
	if dog.AvailableCount != 1 {
		t.Errorf("expected count 1 after completion, got %d", dog.AvailableCount)
	}

	adoptions := store.Adoptions()
	if len(adoptions) != 1 || adoptions[0].Status != model.AdoptionCompleted {
		t.Errorf("expected one completed adoption, got %+v", adoptions)
	}

	// No pending record remains; a second completion fails.
	rec = postJSON(t, router, "/api/adoptions/dog-1/complete", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second complete: expected 400, got %d", rec.Code)
	}
	if err := decodeBody(rec, &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["message"] != "No pending adoption found" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestAdoptionHandler_Complete_NoPending(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestDog(store, "dog-1", 1)
	router := newAdoptionRouter(store, "user-1")

	rec := postJSON(t, router, "/api/adoptions/dog-1/complete", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAdoptionHandler_Create_StoreError(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestDog(store, "dog-1", 1)
	store.AdoptionErr = errTestStore
	router := newAdoptionRouter(store, "user-1")

	rec := postJSON(t, router, "/api/adoptions", map[string]string{
		"fullName": "A", "email": "a@example.com", "phone": "1", "address": "x", "dogId": "dog-1",
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body map[string]any
	if err := decodeBody(rec, &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["message"] != "Adoption request failed" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
