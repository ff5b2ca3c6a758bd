package listings

// Listing is one job posting row from the listings source.
type Listing struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	City        string `json:"city"`
	Salary      string `json:"salary"`
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
}

// PageSize is the fixed number of listings per page.
const PageSize = 5

// CityAll is the wildcard city filter value.
const CityAll = "All"

// Query selects and pages listings.
type Query struct {
	// Search matches case-insensitively against title or company.
	Search string
	// City filters by exact city; empty or "All" matches every city.
	City string
	// Page is 1-based and clamped into range.
	Page int
}

// Page is one page of filtered results with pagination totals.
type Page struct {
	Items      []Listing `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	TotalJobs  int       `json:"totalJobs"`
}
