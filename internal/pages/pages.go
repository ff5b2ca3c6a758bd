package pages

import "fmt"

// Page identifies one of the application's views. Navigation state is
// explicit: callers pass the current page in, nothing lives in globals.
type Page string

const (
	Welcome      Page = "welcome"
	PersonalInfo Page = "personal-info"
	JobList      Page = "job-list"
)

// Parse maps a route segment to a Page.
func Parse(raw string) (Page, error) {
	switch Page(raw) {
	case Welcome, PersonalInfo, JobList:
		return Page(raw), nil
	default:
		return "", fmt.Errorf("unknown page %q", raw)
	}
}

func (p Page) String() string { return string(p) }

// Title returns the display title of the page.
func (p Page) Title() string {
	switch p {
	case Welcome:
		return "Welcome"
	case PersonalInfo:
		return "Resume Generation"
	case JobList:
		return "Job List"
	}
	return ""
}

// Menu returns the navigation options shown for the current page: the
// welcome view offers only itself, every other view offers resume
// generation and the job list.
func Menu(current Page) []Page {
	if current == Welcome {
		return []Page{Welcome}
	}
	return []Page{PersonalInfo, JobList}
}
