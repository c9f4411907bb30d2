package form

import "impulse-vlsi-backend/internal/domain"

// Service categories offered on the contact form
var ServiceTypes = []Choice{
	{"industrial", "Industrial Services"},
	{"academic", "Academic Services"},
	{"courses", "VLSI Courses"},
}

var industrialServices = []Choice{
	{"consultancy", "Consultancy"},
	{"fulltime-hiring", "Full Time Hiring"},
	{"co-hiring", "Co-Hiring"},
}

var academicServices = []Choice{
	{"fdp", "Faculty Development Program"},
	{"skill-development", "Skill Development Program"},
	{"internships", "Internships"},
	{"academic-projects", "Academic Projects"},
	{"guidance", "Guidance & Mentorship"},
	{"integrated-courses", "Integrated Courses"},
}

var courseServices = []Choice{
	{"analog-design", "Analog Circuit Design"},
	{"physical-design", "Physical Circuit Design"},
	{"digital-verification", "Digital Design & Verification"},
	{"fpga-programming", "FPGA Programming"},
	{"asic-design", "ASIC Design"},
	{"system-verilog", "System Verilog"},
}

// SpecificServices holds the selections valid for each service category
var SpecificServices = map[string][]Choice{
	"industrial": industrialServices,
	"academic":   academicServices,
	"courses":    courseServices,
}

// Courses is the catalogue for course inquiries
var Courses = []Choice{
	{"analog-design", "Analog Circuit Design"},
	{"physical-design", "Physical Circuit Design"},
	{"analog-layout", "Analog Layout Design"},
	{"dft", "Design for Testability (DFT)"},
	{"digital-verification", "Digital Design & Verification"},
	{"fpga-programming", "FPGA Programming"},
	{"asic-design", "ASIC Design"},
	{"system-verilog", "System Verilog"},
	{"soft-skills", "Interpersonal & Soft Skills"},
}

// Ratings is the 1-5 scale used by every feedback rating
var Ratings = []Choice{
	{"5", "5 - Excellent"},
	{"4", "4 - Good"},
	{"3", "3 - Average"},
	{"2", "2 - Below Average"},
	{"1", "1 - Poor"},
}

// Recommendations is the would-you-recommend scale
var Recommendations = []Choice{
	{"definitely", "Definitely Yes"},
	{"probably", "Probably Yes"},
	{"maybe", "Maybe"},
	{"probably-not", "Probably Not"},
	{"definitely-not", "Definitely Not"},
}

// allServices flattens every specific service, in category order
func allServices() []Choice {
	out := make([]Choice, 0, len(industrialServices)+len(academicServices)+len(courseServices))
	out = append(out, industrialServices...)
	out = append(out, academicServices...)
	return append(out, courseServices...)
}

// Feedback rating fields, in display order
var RatingFields = []string{"overallRating", "easeOfUse", "contentQuality", "supportExperience", "valueForMoney"}

func ContactSchema() *Schema {
	return &Schema{
		Kind:      domain.FormContact,
		RateLimit: 5,
		Fields: []Field{
			{Name: "fullName", Label: "Full name", Kind: KindText, Rules: "required,utf16_min=2",
				Message: "Full name must be at least 2 characters long"},
			{Name: "phoneNumber", Label: "Phone", Kind: KindPhone, Rules: "required,in_mobile",
				Message: "Please enter a valid Indian phone number"},
			{Name: "email", Label: "Email", Kind: KindEmail, Rules: "required,simple_email",
				Message: "Please enter a valid email address"},
			{Name: "serviceType", Label: "Service type", Kind: KindChoice, Rules: "required",
				Choices: ServiceTypes},
			{Name: "specificSelection", Label: "Specific selection", Kind: KindChoice, Rules: "required",
				Message:   "Please select a specific service",
				DependsOn: "serviceType", Nested: SpecificServices},
			{Name: "requirements", Label: "Requirements", Kind: KindText, Rules: "omitempty,utf16_max=500"},
		},
	}
}

func CourseInquirySchema() *Schema {
	return &Schema{
		Kind:      domain.FormCourseInquiry,
		RateLimit: 5,
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: KindText, Rules: "required,utf16_min=2",
				Message: "Name must be at least 2 characters long"},
			{Name: "email", Label: "Email", Kind: KindEmail, Rules: "required,simple_email",
				Message: "Please enter a valid email address"},
			{Name: "mobile", Label: "Mobile", Kind: KindPhone, Rules: "required,in_mobile",
				Message: "Please enter a valid Indian phone number"},
			{Name: "course", Label: "Course", Kind: KindChoice, Rules: "required",
				Choices: Courses},
			{Name: "comments", Label: "Comments", Kind: KindText, Rules: "omitempty,utf16_max=500"},
		},
	}
}

func FeedbackSchema() *Schema {
	rating := func(name, label string) Field {
		return Field{Name: name, Label: label, Kind: KindChoice, Rules: "required",
			Message: "Please provide a valid " + label + " rating", Choices: Ratings}
	}

	return &Schema{
		Kind:      domain.FormFeedback,
		RateLimit: 3,
		Fields: []Field{
			{Name: "fullName", Label: "Full name", Kind: KindText, Rules: "required,utf16_min=2",
				Message: "Full name must be at least 2 characters long"},
			{Name: "email", Label: "Email", Kind: KindEmail, Rules: "required,simple_email",
				Message: "Please enter a valid email address"},
			{Name: "serviceUsed", Label: "Service used", Kind: KindChoice, Rules: "required",
				Message: "Please select a service", Choices: allServices()},
			rating("overallRating", "overall"),
			rating("easeOfUse", "ease of use"),
			rating("contentQuality", "content quality"),
			rating("supportExperience", "support experience"),
			rating("valueForMoney", "value for money"),
			{Name: "whatDidNotLike", Label: "What you did not like", Kind: KindText, Rules: "required,utf16_min=10",
				Message: "Please provide at least 10 characters for what you did not like"},
			{Name: "whatWeCanImprove", Label: "What we can improve", Kind: KindText, Rules: "required,utf16_min=10",
				Message: "Please provide at least 10 characters for what we can improve"},
			{Name: "favoriteFeature", Label: "Favorite feature", Kind: KindText, Rules: "required,utf16_min=5",
				Message: "Please provide at least 5 characters for your favorite feature"},
			{Name: "wouldRecommend", Label: "Would recommend", Kind: KindChoice, Rules: "required",
				Message: "Please select whether you would recommend us", Choices: Recommendations},
			{Name: "additionalComments", Label: "Additional comments", Kind: KindText, Rules: "omitempty,utf16_max=1000"},
		},
	}
}
