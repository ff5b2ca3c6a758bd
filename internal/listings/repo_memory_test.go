package listings

import (
	"context"
	"fmt"
	"testing"
)

func sampleListings() []Listing {
	return []Listing{
		{Title: "Product Manager", Company: "Acme", City: "Beijing", Salary: "30k", Deadline: "2026-10-01", Description: "Own the roadmap"},
		{Title: "Data Analyst", Company: "Globex", City: "Shanghai", Salary: "25k", Deadline: "2026-10-15", Description: "SQL and dashboards"},
		{Title: "Software Developer", Company: "Initech", City: "Shenzhen", Salary: "35k", Deadline: "2026-11-01", Description: "Backend services"},
		{Title: "Tester", Company: "Acme", City: "Beijing", Salary: "20k", Deadline: "2026-09-20", Description: "QA automation"},
		{Title: "UI designer", Company: "Hooli", City: "Guangzhou", Salary: "28k", Deadline: "2026-12-01", Description: "Design systems"},
		{Title: "Project Manager", Company: "Globex", City: "Shanghai", Salary: "32k", Deadline: "2026-10-30", Description: "Agile delivery"},
	}
}

func TestSearchMatchesTitleOrCompanyCaseInsensitive(t *testing.T) {
	repo := NewMemoryRepo(sampleListings())

	page, err := repo.Search(context.Background(), Query{Search: "acme"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.TotalJobs != 2 {
		t.Fatalf("expected 2 matches for acme, got %d", page.TotalJobs)
	}

	page, err = repo.Search(context.Background(), Query{Search: "MANAGER"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.TotalJobs != 2 {
		t.Fatalf("expected 2 manager roles, got %d", page.TotalJobs)
	}
}

func TestSearchCityFilter(t *testing.T) {
	repo := NewMemoryRepo(sampleListings())

	page, err := repo.Search(context.Background(), Query{City: "Shanghai"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.TotalJobs != 2 {
		t.Fatalf("expected 2 Shanghai listings, got %d", page.TotalJobs)
	}

	for _, wildcard := range []string{"", CityAll} {
		page, err = repo.Search(context.Background(), Query{City: wildcard})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if page.TotalJobs != 6 {
			t.Fatalf("city %q: expected all 6 listings, got %d", wildcard, page.TotalJobs)
		}
	}
}

func TestSearchCombinesTermAndCity(t *testing.T) {
	repo := NewMemoryRepo(sampleListings())

	page, err := repo.Search(context.Background(), Query{Search: "globex", City: "Shanghai"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.TotalJobs != 2 {
		t.Fatalf("expected 2 results, got %d", page.TotalJobs)
	}
}

func TestSearchPagination(t *testing.T) {
	rows := make([]Listing, 12)
	for i := range rows {
		rows[i] = Listing{Title: fmt.Sprintf("Role %02d", i), Company: "Acme", City: "Beijing"}
	}
	repo := NewMemoryRepo(rows)

	page, err := repo.Search(context.Background(), Query{Page: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(page.Items) != PageSize || page.TotalPages != 3 || page.TotalJobs != 12 {
		t.Fatalf("page 1: items=%d totalPages=%d totalJobs=%d", len(page.Items), page.TotalPages, page.TotalJobs)
	}
	if page.Items[0].Title != "Role 00" {
		t.Fatalf("unexpected first item %q", page.Items[0].Title)
	}

	page, err = repo.Search(context.Background(), Query{Page: 3})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("last page: expected 2 items, got %d", len(page.Items))
	}
	if page.Items[0].Title != "Role 10" {
		t.Fatalf("unexpected first item on last page %q", page.Items[0].Title)
	}

	// Out-of-range pages clamp instead of erroring.
	page, err = repo.Search(context.Background(), Query{Page: 99})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Page != 3 {
		t.Fatalf("expected clamp to page 3, got %d", page.Page)
	}
}

func TestSearchNoResults(t *testing.T) {
	repo := NewMemoryRepo(sampleListings())

	page, err := repo.Search(context.Background(), Query{Search: "no such role"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.TotalJobs != 0 || len(page.Items) != 0 {
		t.Fatalf("expected empty result, got %+v", page)
	}
	if page.TotalPages != 1 || page.Page != 1 {
		t.Fatalf("expected single empty page, got page=%d totalPages=%d", page.Page, page.TotalPages)
	}
}

func TestCitiesDistinctFirstSeen(t *testing.T) {
	repo := NewMemoryRepo(sampleListings())

	cities, err := repo.Cities(context.Background())
	if err != nil {
		t.Fatalf("Cities: %v", err)
	}
	want := []string{"Beijing", "Shanghai", "Shenzhen", "Guangzhou"}
	if len(cities) != len(want) {
		t.Fatalf("expected %v, got %v", want, cities)
	}
	for i := range want {
		if cities[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, cities)
		}
	}
}
