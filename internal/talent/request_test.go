package talent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"go.uber.org/zap"
)

func testServer(t *testing.T, pages []ItemResponse) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		if got := r.URL.Query().Get("per_page"); got != perPage {
			t.Errorf("unexpected per_page: %q", got)
		}

		page := 0
		if p := r.URL.Query().Get("page"); p != "" {
			parsed, err := strconv.Atoi(p)
			if err != nil {
				t.Errorf("bad page param %q: %v", p, err)
			}
			page = parsed
		}

		if page >= len(pages) {
			t.Errorf("requested page %d out of range", page)
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", contentType)
		if err := json.NewEncoder(w).Encode(pages[page]); err != nil {
			t.Errorf("encoding page %d: %v", page, err)
		}
	}))
}

func TestGetTalentPoolMergesPagesInOrder(t *testing.T) {
	pages := []ItemResponse{
		{
			Items: []Item{
				map[string]any{"id": "t1", "name": "Sarah Lee", "company": "Acme Corp"},
			},
			Found: 2, Pages: 2, Page: 0, PerPage: 100,
		},
		{
			Items: []Item{
				map[string]any{
					"id": "t2", "name": "Jordan Kim", "layoff_date": "2024-03-15",
					"role_matches": []any{
						map[string]any{"role_id": "r1", "match_score": 88},
					},
				},
			},
			Found: 2, Pages: 2, Page: 1, PerPage: 100,
		},
	}

	srv := testServer(t, pages)
	defer srv.Close()

	client := New(context.Background(), zap.NewNop(), "test-token")
	client.APIURL = srv.URL

	pool, err := client.GetTalentPool()
	if err != nil {
		t.Fatalf("getting talent pool: %v", err)
	}

	if pool.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", pool.Len())
	}

	if pool.Items[0].ID != "t1" || pool.Items[1].ID != "t2" {
		t.Fatalf("records out of order: %s, %s", pool.Items[0].ID, pool.Items[1].ID)
	}

	second := pool.Items[1]
	if second.LayoffDate == nil || *second.LayoffDate != "2024-03-15" {
		t.Fatalf("layoff_date not decoded: %+v", second)
	}

	if len(second.RoleMatches) != 1 || second.RoleMatches[0].RoleID != "r1" {
		t.Fatalf("role_matches not decoded: %+v", second.RoleMatches)
	}

	if second.RoleMatches[0].MatchScore == nil || *second.RoleMatches[0].MatchScore != 88 {
		t.Fatalf("match_score not decoded: %+v", second.RoleMatches[0])
	}
}

func TestGetItemsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(context.Background(), zap.NewNop(), "test-token")
	client.APIURL = srv.URL

	if _, err := client.GetTalentPool(); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}
