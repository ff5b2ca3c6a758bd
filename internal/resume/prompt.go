package resume

import (
	_ "embed"
	"fmt"

	"offerai-backend/internal/profile"
)

//go:embed prompts/system_v1.txt
var systemPromptV1 string

// SystemPrompt returns the fixed system instruction sent with every request.
// It is identical across calls; the resume structure it describes is the
// contract the normalizer and renderer downstream rely on.
func SystemPrompt() string {
	return systemPromptV1
}

const userPromptTemplate = `Based on the following information, please create a professional resume:

%s | %s | %s

Education:
%s | %s

Career Objective:
- Target Position: %s

Experience:
- Work/Internship: %s
- Projects: %s

Academic:
- Major Courses: %s

Please ensure all structure section headers such as education are in bold using markdown syntax (**Section Name**).
No name information is required on contact information.
At the same time, please pay attention to the formatting. Each section of my resume should have one blank line and bold headings.
There is no need to provide me with any content outside of my resume in the document, such as suggestions and note.
Other subheadings such as the title of the first paragraph of experience under work experience do not need to be bolded.`

// BuildUserPrompt interpolates the profile into the fixed user instruction
// template: contact line (city | email | phone), education line
// (university | degree), career objective, experience bullets, and academic
// bullets. Fields holding the literal placeholder "null" are forwarded
// untouched; the generation service treats them as not applicable. Honors
// are not interpolated: the system instruction already asks for an Honors &
// Awards section and the service drafts it from the rest of the material.
func BuildUserPrompt(p profile.UserProfile) string {
	return fmt.Sprintf(userPromptTemplate,
		p.City, p.Email, p.Phone,
		p.University, p.Degree,
		p.TargetPosition,
		p.WorkExperience,
		p.ProjectExperience,
		p.MajorCourses,
	)
}
