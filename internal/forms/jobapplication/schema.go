// internal/forms/jobapplication/schema.go
package jobapplication

import (
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/validation"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/projector"
)

// Fields drives validation of an incoming application payload.
// Order here fixes the order of reported violations.
var Fields = []validation.FieldRule{
	{Name: fieldFullName, Kind: validation.KindText, Required: true, MinLen: 2, MaxLen: 100},
	{Name: fieldEmail, Kind: validation.KindEmail, Required: true},
	{Name: fieldPhone, Kind: validation.KindPhone, Required: true, MinLen: 10, MaxLen: 20},
	{Name: fieldPositionApplied, Kind: validation.KindText, Required: true, MinLen: 2, MaxLen: 100},
	{Name: fieldExperienceLevel, Kind: validation.KindEnum, Required: true, Enum: ExperienceLevels},
	{Name: fieldCurrentCompany, Kind: validation.KindText, MaxLen: 100},
	{Name: fieldExpectedSalary, Kind: validation.KindText, MaxLen: 50},
	{Name: fieldAvailability, Kind: validation.KindEnum, Required: true, Enum: AvailabilityOptions},
	{Name: fieldCoverLetter, Kind: validation.KindText, Required: true, MinLen: 50, MaxLen: 2000},
	{Name: fieldLinkedIn, Kind: validation.KindURL},
	{Name: fieldPortfolioURL, Kind: validation.KindURL},
	{Name: fieldSkills, Kind: validation.KindText, Required: true, MinLen: 5, MaxLen: 500},
	{Name: fieldEducation, Kind: validation.KindText, Required: true, MinLen: 5, MaxLen: 300},
	{Name: fieldReferences, Kind: validation.KindText, MaxLen: 500},
}

// Columns defines the sheet row layout. Header order must match the
// spreadsheet the operators bootstrapped.
var Columns = []projector.Column{
	{Header: "Timestamp", Timestamp: true},
	{Header: "Full Name", Field: fieldFullName},
	{Header: "Email", Field: fieldEmail},
	{Header: "Phone", Field: fieldPhone},
	{Header: "Position Applied", Field: fieldPositionApplied},
	{Header: "Experience Level", Field: fieldExperienceLevel},
	{Header: "Current Company", Field: fieldCurrentCompany},
	{Header: "Expected Salary", Field: fieldExpectedSalary},
	{Header: "Availability", Field: fieldAvailability},
	{Header: "Cover Letter", Field: fieldCoverLetter},
	{Header: "LinkedIn Profile", Field: fieldLinkedIn},
	{Header: "Portfolio URL", Field: fieldPortfolioURL},
	{Header: "Skills", Field: fieldSkills},
	{Header: "Education", Field: fieldEducation},
	{Header: "References", Field: fieldReferences},
}
