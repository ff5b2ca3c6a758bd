package listings

import "context"

// Repo serves the read-filter-paginate flow over listings.
type Repo interface {
	Search(ctx context.Context, q Query) (Page, error)
	Cities(ctx context.Context) ([]string, error)
}

func clampPage(page, totalPages int) int {
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return page
}

func totalPagesFor(total int) int {
	if total == 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

func matchesCity(city, filter string) bool {
	return filter == "" || filter == CityAll || city == filter
}
