package profile

// UserProfile carries the form fields driving resume generation. It is
// request-scoped and never persisted.
type UserProfile struct {
	Name              string `json:"name"`
	Sex               string `json:"sex"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	City              string `json:"city"`
	University        string `json:"university"`
	Degree            string `json:"degree"`
	TargetPosition    string `json:"target_position"`
	WorkExperience    string `json:"work_experience"`
	ProjectExperience string `json:"project_experience"`
	MajorCourses      string `json:"major_courses"`
	HonorsWon         string `json:"honors_won"`
}

// Placeholder is the literal value a user enters for a free-text field that
// does not apply. It is forwarded to the generation service as-is.
const Placeholder = "null"

// Option sets offered by the personal-info form. An empty selection is
// rejected by Validate, so the empty sentinel the UI shows is not listed.
var (
	SexOptions  = []string{"Male", "Female", "Other"}
	CityOptions = []string{"Beijing", "Shanghai", "Guangzhou", "Shenzhen", "Other"}

	UniversityOptions = []string{
		"The University of Hong Kong",
		"The Chinese University of Hong Kong",
		"The Hong Kong University of Science and Technology",
		"The Hong Kong Polytechnic University",
		"City University of Hong Kong",
	}
	DegreeOptions = []string{"Bachelor", "Master", "PhD", "Other"}

	TargetPositionOptions = []string{
		"Product Manager",
		"Data Analyst",
		"Project Manager",
		"UI designer",
		"Software Developer",
		"Tester",
	}
)
