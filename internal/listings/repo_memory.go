package listings

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo serves listings from an in-memory slice, usually loaded from
// the spreadsheet file. Safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	rows []Listing
}

// NewMemoryRepo constructs a MemoryRepo over the given rows.
func NewMemoryRepo(rows []Listing) *MemoryRepo {
	return &MemoryRepo{rows: rows}
}

// Replace swaps in a fresh set of rows.
func (r *MemoryRepo) Replace(rows []Listing) {
	r.mu.Lock()
	r.rows = rows
	r.mu.Unlock()
}

// Search filters by search term and city, then returns the requested page.
func (r *MemoryRepo) Search(ctx context.Context, q Query) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	term := strings.ToLower(q.Search)
	var filtered []Listing
	for _, row := range r.rows {
		if term != "" &&
			!strings.Contains(strings.ToLower(row.Title), term) &&
			!strings.Contains(strings.ToLower(row.Company), term) {
			continue
		}
		if !matchesCity(row.City, q.City) {
			continue
		}
		filtered = append(filtered, row)
	}

	totalPages := totalPagesFor(len(filtered))
	page := clampPage(q.Page, totalPages)

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]Listing, end-start)
	copy(items, filtered[start:end])
	return Page{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		TotalJobs:  len(filtered),
	}, nil
}

// Cities returns the distinct cities in first-seen order.
func (r *MemoryRepo) Cities(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(r.rows))
	var cities []string
	for _, row := range r.rows {
		if row.City == "" {
			continue
		}
		if _, ok := seen[row.City]; ok {
			continue
		}
		seen[row.City] = struct{}{}
		cities = append(cities, row.City)
	}
	return cities, nil
}

var _ Repo = (*MemoryRepo)(nil)
