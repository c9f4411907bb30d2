package v1

// Request bodies below document the form payloads for Swagger. Handlers decode
// into a flat map and the form schemas do the validation.

type ContactInquiryRequest struct {
	FullName          string `json:"fullName" example:"Ravi Kumar"`
	PhoneNumber       string `json:"phoneNumber" example:"9876543210"`
	Email             string `json:"email" example:"ravi@example.com"`
	ServiceType       string `json:"serviceType" enums:"industrial,academic,courses" example:"courses"`
	SpecificSelection string `json:"specificSelection" example:"analog-design"`
	Requirements      string `json:"requirements,omitempty" maxLength:"500"`
}

type CourseInquiryRequest struct {
	Name     string `json:"name" example:"Anil"`
	Email    string `json:"email" example:"anil@example.com"`
	Mobile   string `json:"mobile" example:"9876543210"`
	Course   string `json:"course" example:"dft"`
	Comments string `json:"comments,omitempty" maxLength:"500"`
}

type FeedbackRequest struct {
	FullName           string `json:"fullName" example:"Priya Nair"`
	Email              string `json:"email" example:"priya@example.com"`
	ServiceUsed        string `json:"serviceUsed" example:"system-verilog"`
	OverallRating      string `json:"overallRating" enums:"1,2,3,4,5"`
	EaseOfUse          string `json:"easeOfUse" enums:"1,2,3,4,5"`
	ContentQuality     string `json:"contentQuality" enums:"1,2,3,4,5"`
	SupportExperience  string `json:"supportExperience" enums:"1,2,3,4,5"`
	ValueForMoney      string `json:"valueForMoney" enums:"1,2,3,4,5"`
	WhatDidNotLike     string `json:"whatDidNotLike" minLength:"10"`
	WhatWeCanImprove   string `json:"whatWeCanImprove" minLength:"10"`
	FavoriteFeature    string `json:"favoriteFeature" minLength:"5"`
	WouldRecommend     string `json:"wouldRecommend" enums:"definitely,probably,maybe,probably-not,definitely-not"`
	AdditionalComments string `json:"additionalComments,omitempty" maxLength:"1000"`
}
