package form_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/internal/form"
)

func validContact() domain.Submission {
	return domain.Submission{
		"fullName":          "Ravi Kumar",
		"phoneNumber":       "9876543210",
		"email":             "ravi@example.com",
		"serviceType":       "courses",
		"specificSelection": "analog-design",
		"requirements":      "",
	}
}

func validFeedback() domain.Submission {
	return domain.Submission{
		"fullName":           "Priya Sharma",
		"email":              "priya@example.com",
		"serviceUsed":        "physical-design",
		"overallRating":      "4",
		"easeOfUse":          "4",
		"contentQuality":     "4",
		"supportExperience":  "4",
		"valueForMoney":      "4",
		"whatDidNotLike":     "Lab sessions were short",
		"whatWeCanImprove":   "More hands-on tool time",
		"favoriteFeature":    "Mentors",
		"wouldRecommend":     "definitely",
		"additionalComments": "",
	}
}

func TestSanitize(t *testing.T) {
	s := form.ContactSchema()

	raw := domain.Submission{
		"fullName":          "  <script>bad()</script>Hi  ",
		"phoneNumber":       "+91 (98765) 43210",
		"email":             "  Ravi@Example.COM ",
		"serviceType":       " courses ",
		"specificSelection": "analog-design\n",
		"requirements":      "  need <SCRIPT>x()</script>training ",
		"extra":             "dropped",
	}

	got := s.Sanitize(raw)

	assert.Equal(t, "Hi", got["fullName"])
	assert.Equal(t, "919876543210", got["phoneNumber"])
	assert.Equal(t, "ravi@example.com", got["email"])
	assert.Equal(t, "courses", got["serviceType"])
	assert.Equal(t, "analog-design", got["specificSelection"])
	assert.Equal(t, "need training", got["requirements"])
	assert.NotContains(t, got, "extra")
}

func TestSanitize_MissingFieldsBecomeEmpty(t *testing.T) {
	got := form.FeedbackSchema().Sanitize(nil)
	assert.Len(t, got, len(form.FeedbackSchema().Fields))
	for k, v := range got {
		assert.Empty(t, v, k)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	for _, s := range form.DefaultRegistry() {
		raw := domain.Submission{}
		for _, f := range s.Fields {
			raw[f.Name] = "  <scr<script>x</script>ipt>y</script> Mixed Case 98-76 "
		}
		once := s.Sanitize(raw)
		assert.Equal(t, once, s.Sanitize(once), string(s.Kind))
	}
}

func TestValidate_ValidContact(t *testing.T) {
	s := form.ContactSchema()
	errs := s.Validate(s.Sanitize(validContact()))
	assert.Empty(t, errs)
	assert.NotNil(t, errs)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	s := form.ContactSchema()
	errs := s.Validate(s.Sanitize(domain.Submission{}))

	assert.Equal(t, []string{
		"Full name must be at least 2 characters long",
		"Please enter a valid Indian phone number",
		"Please enter a valid email address",
		"Please select a valid service type",
		"Please select a specific service",
	}, errs)
}

func TestValidate_Phone(t *testing.T) {
	s := form.ContactSchema()

	tests := []struct {
		phone string
		valid bool
	}{
		{"9876543210", true},
		{"5876543210", false},
		{"987654321", false},
		{"98765432100", false},
		{"98765 43210", true}, // digits only after sanitizing
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			sub := validContact()
			sub["phoneNumber"] = tt.phone
			errs := s.Validate(s.Sanitize(sub))
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, []string{"Please enter a valid Indian phone number"}, errs)
			}
		})
	}
}

func TestValidate_NestedSelection(t *testing.T) {
	s := form.ContactSchema()

	t.Run("fdp is valid for academic", func(t *testing.T) {
		sub := validContact()
		sub["serviceType"] = "academic"
		sub["specificSelection"] = "fdp"
		assert.Empty(t, s.Validate(s.Sanitize(sub)))
	})

	t.Run("fdp is rejected for industrial", func(t *testing.T) {
		sub := validContact()
		sub["serviceType"] = "industrial"
		sub["specificSelection"] = "fdp"
		assert.Equal(t, []string{"Please select a specific service"}, s.Validate(s.Sanitize(sub)))
	})

	t.Run("unknown category rejects any selection", func(t *testing.T) {
		sub := validContact()
		sub["serviceType"] = "retail"
		errs := s.Validate(s.Sanitize(sub))
		assert.Equal(t, []string{
			"Please select a valid service type",
			"Please select a specific service",
		}, errs)
	})
}

func TestValidate_SanitizeBeforeValidate(t *testing.T) {
	s := form.ContactSchema()

	sub := validContact()
	sub["fullName"] = "  Jo  "
	assert.Empty(t, s.Validate(s.Sanitize(sub)))

	sub["fullName"] = "<script>bad()</script>Hi"
	clean := s.Sanitize(sub)
	assert.Equal(t, "Hi", clean["fullName"])
	assert.Empty(t, s.Validate(clean))

	sub["fullName"] = "<script>bad()</script>H"
	assert.Equal(t, []string{"Full name must be at least 2 characters long"}, s.Validate(s.Sanitize(sub)))
}

func TestValidate_OptionalMaxLength(t *testing.T) {
	s := form.ContactSchema()
	sub := validContact()

	sub["requirements"] = strings.Repeat("a", 500)
	assert.Empty(t, s.Validate(s.Sanitize(sub)))

	sub["requirements"] = strings.Repeat("a", 501)
	assert.Equal(t, []string{"Requirements should not exceed 500 characters"}, s.Validate(s.Sanitize(sub)))
}

func TestValidate_LengthCountsUTF16Units(t *testing.T) {
	s := form.ContactSchema()
	sub := validContact()

	// 250 emoji are 500 code units
	sub["requirements"] = strings.Repeat("🚀", 250)
	assert.Empty(t, s.Validate(s.Sanitize(sub)))

	sub["requirements"] = strings.Repeat("a", 496) + "🚀🚀🚀"
	assert.Equal(t, []string{"Requirements should not exceed 500 characters"}, s.Validate(s.Sanitize(sub)))

	f := form.FeedbackSchema()
	fb := validFeedback()
	fb["whatDidNotLike"] = "😞😞😞😞😞"
	assert.Empty(t, f.Validate(f.Sanitize(fb)))
}

func TestValidate_CourseInquiry(t *testing.T) {
	s := form.CourseInquirySchema()

	valid := domain.Submission{
		"name":   "Anil",
		"email":  "anil@example.com",
		"mobile": "7012345678",
		"course": "dft",
	}
	assert.Empty(t, s.Validate(s.Sanitize(valid)))

	valid["course"] = "cooking"
	valid["comments"] = strings.Repeat("x", 501)
	assert.Equal(t, []string{
		"Please select a valid course",
		"Comments should not exceed 500 characters",
	}, s.Validate(s.Sanitize(valid)))
}

func TestValidate_Feedback(t *testing.T) {
	s := form.FeedbackSchema()
	assert.Empty(t, s.Validate(s.Sanitize(validFeedback())))

	sub := validFeedback()
	sub["overallRating"] = "6"
	sub["easeOfUse"] = "0"
	sub["whatDidNotLike"] = "short"
	sub["favoriteFeature"] = "abc"
	sub["wouldRecommend"] = "never"
	sub["additionalComments"] = strings.Repeat("c", 1001)

	errs := s.Validate(s.Sanitize(sub))
	require.Len(t, errs, 6)
	assert.Equal(t, "Please provide a valid overall rating", errs[0])
	assert.Equal(t, "Please provide a valid ease of use rating", errs[1])
	assert.Equal(t, "Please provide at least 10 characters for what you did not like", errs[2])
	assert.Equal(t, "Please provide at least 5 characters for your favorite feature", errs[3])
	assert.Equal(t, "Please select whether you would recommend us", errs[4])
	assert.Equal(t, "Additional comments should not exceed 1000 characters", errs[5])
}

func TestValidate_NeverPanics(t *testing.T) {
	inputs := []domain.Submission{
		nil,
		{},
		{"fullName": strings.Repeat("é", 5000)},
		{"serviceType": "courses", "specificSelection": "a b"},
		{"email": "@", "phoneNumber": "\x00"},
	}
	for _, s := range form.DefaultRegistry() {
		for _, in := range inputs {
			assert.NotPanics(t, func() {
				assert.NotNil(t, s.Validate(s.Sanitize(in)))
			})
		}
	}
}

func TestLabel(t *testing.T) {
	s := form.ContactSchema()
	sub := validContact()

	assert.Equal(t, "VLSI Courses", s.Label(sub, "serviceType"))
	assert.Equal(t, "Analog Circuit Design", s.Label(sub, "specificSelection"))
	assert.Equal(t, "Ravi Kumar", s.Label(sub, "fullName"))

	sub["specificSelection"] = "mystery"
	assert.Equal(t, "mystery", s.Label(sub, "specificSelection"))

	fb := form.FeedbackSchema()
	assert.Equal(t, "4 - Good", fb.Label(validFeedback(), "overallRating"))
	assert.Equal(t, "Definitely Yes", fb.Label(validFeedback(), "wouldRecommend"))
}

func TestAverageRating(t *testing.T) {
	sub := validFeedback()
	assert.Equal(t, "4.00", form.FormatRating(form.AverageRating(sub, form.RatingFields...)))

	sub["overallRating"] = "5"
	sub["valueForMoney"] = "3"
	sub["easeOfUse"] = "5"
	assert.Equal(t, "4.20", form.FormatRating(form.AverageRating(sub, form.RatingFields...)))

	assert.Equal(t, float64(0), form.AverageRating(sub))
}

func TestRegistryLookup(t *testing.T) {
	r := form.DefaultRegistry()

	s, err := r.Lookup(domain.FormFeedback)
	require.NoError(t, err)
	assert.Equal(t, 3, s.RateLimit)

	_, err = r.Lookup("newsletter")
	assert.ErrorIs(t, err, domain.ErrUnknownForm)
}
