// internal/forms/talentregistration/models.go
package talentregistration

// Payload field names as sent by the registration frontend.
const (
	fieldFullName                 = "fullName"
	fieldDateOfBirth              = "dateOfBirth"
	fieldEmail                    = "email"
	fieldMobileNumber             = "mobileNumber"
	fieldFacebookProfile          = "facebookProfile"
	fieldCountryOfOrigin          = "countryOfOrigin"
	fieldCurrentUniversity        = "currentUniversity"
	fieldNSWResident              = "nswResident"
	fieldVideoLink                = "videoLink"
	fieldPerformanceCategory      = "performanceCategory"
	fieldPerformanceCategoryOther = "performanceCategoryOther"
	fieldSpecialRequirements      = "specialRequirements"
	fieldAgreements               = "agreements"
	fieldMinorConsentLink         = "minorConsentLink"
	fieldHeardAboutUs             = "heardAboutUs"
	fieldHeardAboutUsOther        = "heardAboutUsOther"
	fieldAccessibilityNeeds       = "accessibilityNeeds"
	fieldQuestionsForUAVS         = "questionsForUAVS"
)

// Closed sets matching the frontend controls verbatim.
var (
	Countries = []string{
		"Vietnam",
		"Australia",
		"China",
		"India",
		"Indonesia",
		"Japan",
		"South Korea",
		"Malaysia",
		"Philippines",
		"Singapore",
		"Thailand",
		"Other",
	}

	ResidencyOptions = []string{"yes", "no"}

	PerformanceCategories = []string{
		"Vocal",
		"Choreography",
		"Musical Instrument",
		"Comedy",
		"Drama/Acting",
		"Art / Visual Presentation",
		"Other",
	}

	// Agreements are full consent statements; each checked box submits the
	// statement text itself.
	Agreements = []string{
		"All information provided in the application form is true and accurate to the best of the contestant's knowledge.",
		"The submitted work is original, owned by the contestant, and does not infringe upon any intellectual property rights or is involved in any disputes with any individual or organization.",
		"The submitted work is appropriate for a general audience and does not contain offensive, discriminatory, sexually explicit, violent, or inappropriate content.",
		"UAVS-NSW reserves the right to use submitted videos, photographs, or performance footage for promotional purposes, including but not limited to social media, websites, and marketing materials.",
		"UAVS-NSW may use the information provided by the contestant for contest-related purposes, excluding personal information such as date of birth, phone number, email, and other private details.",
		"If selected for subsequent rounds, the contestant agrees to fully participate in all activities related to UAVS Got Talent 2025.",
	}

	HeardAboutUsOptions = []string{
		"UAVS Social Media (Instagram, Facebook, TikTok)",
		"University Newsletter",
		"Friend/Family",
		"Community Groups",
		"UAVS Website",
		"Other",
	}
)

// SuccessMessage is the caller-visible acknowledgement on acceptance.
const SuccessMessage = "Registration submitted successfully! We will be in touch with next steps soon."
