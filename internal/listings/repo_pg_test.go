package listings

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSearch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("%analyst%", "Shanghai").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	rows := sqlmock.NewRows([]string{"title", "company", "city", "salary", "deadline", "description"}).
		AddRow("Data Analyst", "Globex", "Shanghai", "25k", "2026-10-15", "SQL and dashboards")
	mock.ExpectQuery("SELECT title, company, city").
		WithArgs("%analyst%", "Shanghai", PageSize, PageSize).
		WillReturnRows(rows)

	page, err := repo.Search(context.Background(), Query{Search: "analyst", City: "Shanghai", Page: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.TotalJobs != 7 || page.TotalPages != 2 || page.Page != 2 {
		t.Fatalf("unexpected pagination %+v", page)
	}
	if len(page.Items) != 1 || page.Items[0].Title != "Data Analyst" {
		t.Fatalf("unexpected items %+v", page.Items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSearchTreatsAllAsNoCityFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("%%", "").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT title, company, city").
		WithArgs("%%", "", PageSize, 0).
		WillReturnRows(sqlmock.NewRows([]string{"title", "company", "city", "salary", "deadline", "description"}))

	page, err := repo.Search(context.Background(), Query{City: CityAll})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.TotalJobs != 0 || page.TotalPages != 1 {
		t.Fatalf("unexpected pagination %+v", page)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCities(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT city").
		WillReturnRows(sqlmock.NewRows([]string{"city"}).AddRow("Beijing").AddRow("Shanghai"))

	cities, err := repo.Cities(context.Background())
	if err != nil {
		t.Fatalf("Cities: %v", err)
	}
	if len(cities) != 2 || cities[0] != "Beijing" {
		t.Fatalf("unexpected cities %v", cities)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
