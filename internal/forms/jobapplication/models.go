// internal/forms/jobapplication/models.go
package jobapplication

// Payload field names as sent by the recruitment frontend.
const (
	fieldFullName        = "fullName"
	fieldEmail           = "email"
	fieldPhone           = "phone"
	fieldPositionApplied = "positionApplied"
	fieldExperienceLevel = "experienceLevel"
	fieldCurrentCompany  = "currentCompany"
	fieldExpectedSalary  = "expectedSalary"
	fieldAvailability    = "availability"
	fieldCoverLetter     = "coverLetter"
	fieldLinkedIn        = "linkedinProfile"
	fieldPortfolioURL    = "portfolioUrl"
	fieldSkills          = "skills"
	fieldEducation       = "education"
	fieldReferences      = "references"
)

// Closed sets; unknown values are rejected, never coerced.
var (
	ExperienceLevels = []string{"Entry Level", "Mid Level", "Senior Level", "Executive"}

	AvailabilityOptions = []string{"Immediate", "2 weeks", "1 month", "2+ months"}
)

// AvailablePositions backs the GET /api/positions endpoint.
var AvailablePositions = []string{
	"Software Engineer",
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Data Scientist",
	"Product Manager",
	"UI/UX Designer",
	"Quality Assurance Engineer",
	"Business Analyst",
	"Project Manager",
	"Marketing Specialist",
	"Sales Representative",
	"Customer Success Manager",
	"Human Resources Specialist",
}

// SuccessMessage is the caller-visible acknowledgement on acceptance.
const SuccessMessage = "Application submitted successfully! We will review your application and get back to you soon."
