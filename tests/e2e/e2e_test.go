//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/pawhaven/pawhaven/internal/model"
	"github.com/pawhaven/pawhaven/internal/repository"
)

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type adoptionResponse struct {
	Success bool    `json:"success"`
	DogName string  `json:"dogName"`
	Price   float64 `json:"price"`
}

type statsResponse struct {
	DogsAvailable  int64 `json:"dogsAvailable"`
	CustomersCount int64 `json:"customersCount"`
	DogsAdopted    int64 `json:"dogsAdopted"`
}

func TestE2ESmoke(t *testing.T) {
	baseURL := envOrDefault("PAWHAVEN_BASE_URL", "http://localhost:8080")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatalf("DATABASE_URL is required for e2e tests")
	}

	dog := seedDog(t, dbURL)

	username := fmt.Sprintf("e2e-%d", time.Now().UnixNano())
	registerUser(t, baseURL, username)
	token := login(t, baseURL, username)

	assertDogListed(t, baseURL, token, dog.ID)

	created := createAdoption(t, baseURL, token, dog.ID)
	if created.DogName != dog.Name {
		t.Errorf("dogName = %q, want %q", created.DogName, dog.Name)
	}

	// Creation records the request without touching stock.
	if got := fetchDog(t, baseURL, token, dog.ID).AvailableCount; got != 1 {
		t.Errorf("availableCount after create = %d, want 1", got)
	}

	completeAdoption(t, baseURL, token, dog.ID, http.StatusOK)

	if got := fetchDog(t, baseURL, token, dog.ID).AvailableCount; got != 0 {
		t.Errorf("availableCount after complete = %d, want 0", got)
	}

	stats := fetchStats(t, baseURL, token)
	if stats.DogsAdopted < 1 {
		t.Errorf("dogsAdopted = %d, want >= 1", stats.DogsAdopted)
	}
	if stats.CustomersCount < 1 {
		t.Errorf("customersCount = %d, want >= 1", stats.CustomersCount)
	}

	// A second completion has no pending request to act on.
	completeAdoption(t, baseURL, token, dog.ID, http.StatusBadRequest)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func seedDog(t *testing.T, dbURL string) *model.Dog {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	defer repo.Close()

	dog := &model.Dog{
		ID:             ulid.Make().String(),
		Name:           fmt.Sprintf("E2E-%d", time.Now().UnixNano()),
		Breed:          "Labrador",
		Age:            2,
		Gender:         "female",
		Description:    "Smoke test listing",
		Price:          123.45,
		AvailableCount: 1,
		ImageURL:       "/images/dogs/e2e.jpg",
		CareInstructions: model.CareInstructions{
			Food:     "Twice daily",
			Exercise: "Daily walks",
			Grooming: "Weekly brushing",
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := repo.CreateDog(ctx, dog); err != nil {
		t.Fatalf("seed dog: %v", err)
	}

	return dog
}

func registerUser(t *testing.T, baseURL, username string) {
	t.Helper()

	body := map[string]string{
		"username": username,
		"password": "e2e-password",
		"email":    username + "@example.com",
	}

	resp := postJSON(t, baseURL+"/api/register", "", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, body: %s", resp.StatusCode, readBody(t, resp))
	}
}

func login(t *testing.T, baseURL, username string) string {
	t.Helper()

	body := map[string]string{
		"username": username,
		"password": "e2e-password",
	}

	resp := postJSON(t, baseURL+"/api/login", "", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, body: %s", resp.StatusCode, readBody(t, resp))
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if out.Token == "" {
		t.Fatal("login returned empty token")
	}

	return out.Token
}

func assertDogListed(t *testing.T, baseURL, token, dogID string) {
	t.Helper()

	resp := getJSON(t, baseURL+"/api/dogs", token)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list dogs status = %d", resp.StatusCode)
	}

	var dogs []model.Dog
	if err := json.NewDecoder(resp.Body).Decode(&dogs); err != nil {
		t.Fatalf("decode dogs: %v", err)
	}

	for _, d := range dogs {
		if d.ID == dogID {
			return
		}
	}
	t.Fatalf("seeded dog %s not in listing", dogID)
}

func fetchDog(t *testing.T, baseURL, token, dogID string) *model.Dog {
	t.Helper()

	resp := getJSON(t, baseURL+"/api/dogs/"+dogID, token)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get dog status = %d", resp.StatusCode)
	}

	var dog model.Dog
	if err := json.NewDecoder(resp.Body).Decode(&dog); err != nil {
		t.Fatalf("decode dog: %v", err)
	}
	return &dog
}

func createAdoption(t *testing.T, baseURL, token, dogID string) *adoptionResponse {
	t.Helper()

	body := map[string]string{
		"fullName": "E2E Adopter",
		"email":    "adopter@example.com",
		"phone":    "555-0100",
		"address":  "1 Smoke Test Lane",
		"dogId":    dogID,
	}

	resp := postJSON(t, baseURL+"/api/adoptions", token, body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create adoption status = %d, body: %s", resp.StatusCode, readBody(t, resp))
	}

	var out adoptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode adoption response: %v", err)
	}
	if !out.Success {
		t.Fatal("adoption response should report success")
	}
	return &out
}

func completeAdoption(t *testing.T, baseURL, token, dogID string, wantStatus int) {
	t.Helper()

	resp := postJSON(t, baseURL+"/api/adoptions/"+dogID+"/complete", token, nil)
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("complete adoption status = %d, want %d, body: %s", resp.StatusCode, wantStatus, readBody(t, resp))
	}
}

func fetchStats(t *testing.T, baseURL, token string) *statsResponse {
	t.Helper()

	resp := getJSON(t, baseURL+"/api/stats", token)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats status = %d", resp.StatusCode)
	}

	var out statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	return &out
}

func postJSON(t *testing.T, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func getJSON(t *testing.T, url, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("<read error: %v>", err)
	}
	return string(b)
}
