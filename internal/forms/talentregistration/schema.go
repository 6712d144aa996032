// internal/forms/talentregistration/schema.go
package talentregistration

import (
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/validation"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/projector"
)

// Fields drives validation of an incoming registration payload.
// Order here fixes the order of reported violations.
var Fields = []validation.FieldRule{
	{Name: fieldFullName, Kind: validation.KindText, Required: true, MinLen: 2, MaxLen: 100},
	// Format check only; the frontend owns any future-date guard.
	{Name: fieldDateOfBirth, Kind: validation.KindDate, Required: true},
	{Name: fieldEmail, Kind: validation.KindEmail, Required: true},
	{Name: fieldMobileNumber, Kind: validation.KindPhone, Required: true, MinLen: 8, MaxLen: 20},
	// Free text so contestants without an account can send "N/A".
	{Name: fieldFacebookProfile, Kind: validation.KindText, Required: true, MaxLen: 200},
	{Name: fieldCountryOfOrigin, Kind: validation.KindEnum, Required: true, Enum: Countries},
	{Name: fieldCurrentUniversity, Kind: validation.KindText, Required: true, MinLen: 2, MaxLen: 150},
	{Name: fieldNSWResident, Kind: validation.KindEnum, Required: true, Enum: ResidencyOptions},
	{Name: fieldVideoLink, Kind: validation.KindURL, Required: true},
	{Name: fieldPerformanceCategory, Kind: validation.KindMultiChoice, Required: true, Enum: PerformanceCategories},
	{Name: fieldPerformanceCategoryOther, Kind: validation.KindText, MaxLen: 100},
	{Name: fieldSpecialRequirements, Kind: validation.KindText, MaxLen: 500},
	{Name: fieldAgreements, Kind: validation.KindMultiChoice, Required: true, Enum: Agreements},
	{Name: fieldMinorConsentLink, Kind: validation.KindURL},
	{Name: fieldHeardAboutUs, Kind: validation.KindMultiChoice, Required: true, Enum: HeardAboutUsOptions},
	{Name: fieldHeardAboutUsOther, Kind: validation.KindText, MaxLen: 100},
	{Name: fieldAccessibilityNeeds, Kind: validation.KindText, MaxLen: 500},
	{Name: fieldQuestionsForUAVS, Kind: validation.KindText, MaxLen: 500},
}

// Columns defines the 17-column registration sheet layout, form order with
// the timestamp first. The "other" free texts fold into their parent column.
var Columns = []projector.Column{
	{Header: "Timestamp", Timestamp: true},
	{Header: "Full Name", Field: fieldFullName},
	{Header: "Date of Birth", Field: fieldDateOfBirth},
	{Header: "Email", Field: fieldEmail},
	{Header: "Mobile Number", Field: fieldMobileNumber},
	{Header: "Facebook Profile", Field: fieldFacebookProfile},
	{Header: "Country of Origin", Field: fieldCountryOfOrigin},
	{Header: "Current University", Field: fieldCurrentUniversity},
	{Header: "NSW Resident", Field: fieldNSWResident},
	{Header: "Video Link", Field: fieldVideoLink},
	{Header: "Performance Category", Field: fieldPerformanceCategory, Multi: true, Separator: ", ", OtherField: fieldPerformanceCategoryOther},
	{Header: "Special Requirements", Field: fieldSpecialRequirements},
	{Header: "Agreements", Field: fieldAgreements, Multi: true, Separator: "; "},
	{Header: "Minor Consent Link", Field: fieldMinorConsentLink},
	{Header: "Heard About Us", Field: fieldHeardAboutUs, Multi: true, Separator: ", ", OtherField: fieldHeardAboutUsOther},
	{Header: "Accessibility Needs", Field: fieldAccessibilityNeeds},
	{Header: "Questions for UAVS", Field: fieldQuestionsForUAVS},
}
