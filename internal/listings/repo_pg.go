package listings

import (
	"context"
	"database/sql"
)

// PGRepo serves listings from Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Search filters by search term and city, then returns the requested page.
func (r *PGRepo) Search(ctx context.Context, q Query) (Page, error) {
	pattern := "%" + q.Search + "%"
	city := q.City
	if city == CityAll {
		city = ""
	}

	const countQuery = `
SELECT COUNT(*)
FROM listings
WHERE (title ILIKE $1 OR company ILIKE $1)
  AND ($2 = '' OR city = $2)`

	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, pattern, city).Scan(&total); err != nil {
		return Page{}, err
	}

	totalPages := totalPagesFor(total)
	page := clampPage(q.Page, totalPages)

	const selectQuery = `
SELECT title, company, city, salary, deadline, description
FROM listings
WHERE (title ILIKE $1 OR company ILIKE $1)
  AND ($2 = '' OR city = $2)
ORDER BY id
LIMIT $3 OFFSET $4`

	rows, err := r.DB.QueryContext(ctx, selectQuery, pattern, city, PageSize, (page-1)*PageSize)
	if err != nil {
		return Page{}, err
	}
	defer rows.Close()

	items := make([]Listing, 0, PageSize)
	for rows.Next() {
		var l Listing
		if err := rows.Scan(&l.Title, &l.Company, &l.City, &l.Salary, &l.Deadline, &l.Description); err != nil {
			return Page{}, err
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return Page{}, err
	}

	return Page{Items: items, Page: page, TotalPages: totalPages, TotalJobs: total}, nil
}

// Cities returns the distinct cities in insertion order.
func (r *PGRepo) Cities(ctx context.Context) ([]string, error) {
	const query = `
SELECT city
FROM listings
WHERE city <> ''
GROUP BY city
ORDER BY MIN(id)`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
