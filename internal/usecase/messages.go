package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/internal/form"
)

const timestampStyle = "02 Jan 2006, 03:04:05 PM"

// sitePhone is a fixed literal; as template.HTML it is written without entity escaping
const sitePhone template.HTML = "+91 8147018156"

// Confirmation and failure texts shown on the site
var (
	confirmations = map[domain.FormKind]string{
		domain.FormContact:       "Your inquiry has been submitted successfully. We will contact you within 24 hours.",
		domain.FormCourseInquiry: "Your course inquiry has been submitted successfully. We will contact you within 24 hours.",
		domain.FormFeedback:      "Thank you for your valuable feedback! We truly appreciate you taking the time to help us improve.",
	}

	failures = map[domain.FormKind]string{
		domain.FormContact:       "An error occurred while processing your request. Please try again later.",
		domain.FormCourseInquiry: "An error occurred while processing your request. Please try again later.",
		domain.FormFeedback:      "An error occurred while processing your feedback. Please try again later.",
	}
)

// view is the data every template renders from
type view struct {
	schema       *form.Schema
	sub          domain.Submission
	Average      string
	SubmittedAt  string
	ContactPhone template.HTML
	ContactEmail string
}

// Get returns a sanitized field value
func (v view) Get(name string) string { return v.sub.Get(name) }

// Label returns the display label for a choice field
func (v view) Label(name string) string { return v.schema.Label(v.sub, name) }

var templates = template.Must(template.New("messages").Parse(`
{{define "signature"}}
<p>Best regards,<br>
Impulse-VLSI Team<br>
Email: {{.ContactEmail}}<br>
Phone: {{.ContactPhone}}</p>
{{end}}

{{define "contact_operator"}}
<h2>New Inquiry from Impulse-VLSI Website</h2>
<h3>Contact Details:</h3>
<ul>
  <li><strong>Name:</strong> {{.Get "fullName"}}</li>
  <li><strong>Phone:</strong> {{.Get "phoneNumber"}}</li>
  <li><strong>Email:</strong> {{.Get "email"}}</li>
</ul>
<h3>Inquiry Details:</h3>
<ul>
  <li><strong>Service Type:</strong> {{.Label "serviceType"}}</li>
  <li><strong>Specific Selection:</strong> {{.Label "specificSelection"}}</li>
</ul>
{{with .Get "requirements"}}
<h3>Requirements:</h3>
<p>{{.}}</p>
{{end}}
<hr>
<p><em>This inquiry was submitted on {{.SubmittedAt}} IST</em></p>
{{end}}

{{define "contact_submitter"}}
<h2>Thank you for your inquiry!</h2>
<p>Dear {{.Get "fullName"}},</p>
<p>We have received your inquiry regarding <strong>{{.Label "specificSelection"}}</strong> and will get back to you within 24 hours.</p>
<h3>Your Inquiry Summary:</h3>
<ul>
  <li><strong>Service Type:</strong> {{.Label "serviceType"}}</li>
  <li><strong>Specific Selection:</strong> {{.Label "specificSelection"}}</li>
  <li><strong>Contact Phone:</strong> {{.Get "phoneNumber"}}</li>
</ul>
<p>If you have any urgent questions, please feel free to call us at <strong>{{.ContactPhone}}</strong>.</p>
{{template "signature" .}}
{{end}}

{{define "course_operator"}}
<h2>New Course Inquiry from Impulse-VLSI Website</h2>
<h3>Contact Details:</h3>
<ul>
  <li><strong>Name:</strong> {{.Get "name"}}</li>
  <li><strong>Mobile:</strong> {{.Get "mobile"}}</li>
  <li><strong>Email:</strong> {{.Get "email"}}</li>
</ul>
<h3>Course:</h3>
<p>{{.Label "course"}}</p>
{{with .Get "comments"}}
<h3>Comments:</h3>
<p>{{.}}</p>
{{end}}
<hr>
<p><em>This inquiry was submitted on {{.SubmittedAt}} IST</em></p>
{{end}}

{{define "course_submitter"}}
<h2>Thank you for your interest!</h2>
<p>Dear {{.Get "name"}},</p>
<p>We have received your inquiry about the <strong>{{.Label "course"}}</strong> course and will get back to you within 24 hours with batch schedules and enrollment details.</p>
<p>If you have any urgent questions, please feel free to call us at <strong>{{.ContactPhone}}</strong>.</p>
{{template "signature" .}}
{{end}}

{{define "feedback_operator"}}
<h2>New Feedback from Impulse-VLSI Website</h2>
<div style="background-color: #f3f4f6; padding: 15px; border-radius: 8px; margin-bottom: 20px;">
  <h3 style="margin-top: 0;">Feedback Summary</h3>
  <p><strong>Average Rating:</strong> {{.Average}}/5.0 ⭐</p>
  <p><strong>Service Used:</strong> {{.Label "serviceUsed"}}</p>
  <p><strong>Would Recommend:</strong> {{.Label "wouldRecommend"}}</p>
</div>
<h3>Contact Details:</h3>
<ul>
  <li><strong>Name:</strong> {{.Get "fullName"}}</li>
  <li><strong>Email:</strong> {{.Get "email"}}</li>
</ul>
<h3>Detailed Ratings:</h3>
<ul>
  <li><strong>Overall Experience:</strong> {{.Label "overallRating"}}</li>
  <li><strong>Ease of Use:</strong> {{.Label "easeOfUse"}}</li>
  <li><strong>Content Quality:</strong> {{.Label "contentQuality"}}</li>
  <li><strong>Support Experience:</strong> {{.Label "supportExperience"}}</li>
  <li><strong>Value for Money:</strong> {{.Label "valueForMoney"}}</li>
</ul>
<div style="background-color: #fef2f2; padding: 15px; border-left: 4px solid #ef4444; margin: 20px 0;">
  <h3 style="color: #dc2626; margin-top: 0;">What User Did Not Like:</h3>
  <p>{{.Get "whatDidNotLike"}}</p>
</div>
<div style="background-color: #fffbeb; padding: 15px; border-left: 4px solid #f59e0b; margin: 20px 0;">
  <h3 style="color: #d97706; margin-top: 0;">What We Can Improve:</h3>
  <p>{{.Get "whatWeCanImprove"}}</p>
</div>
<div style="background-color: #f0fdf4; padding: 15px; border-left: 4px solid #22c55e; margin: 20px 0;">
  <h3 style="color: #16a34a; margin-top: 0;">Favorite Feature:</h3>
  <p>{{.Get "favoriteFeature"}}</p>
</div>
{{with .Get "additionalComments"}}
<div style="background-color: #eff6ff; padding: 15px; border-left: 4px solid #3b82f6; margin: 20px 0;">
  <h3 style="color: #2563eb; margin-top: 0;">Additional Comments:</h3>
  <p>{{.}}</p>
</div>
{{end}}
<hr>
<p><em>This feedback was submitted on {{.SubmittedAt}} IST</em></p>
{{end}}

{{define "feedback_submitter"}}
<h2>Thank you for your valuable feedback!</h2>
<p>Dear {{.Get "fullName"}},</p>
<p>We sincerely appreciate you taking the time to share your experience with us regarding <strong>{{.Label "serviceUsed"}}</strong>.</p>
<div style="background-color: #f3f4f6; padding: 15px; border-radius: 8px; margin: 20px 0;">
  <h3 style="margin-top: 0;">Your Feedback Summary:</h3>
  <p><strong>Overall Rating:</strong> {{.Label "overallRating"}}</p>
  <p><strong>Service Used:</strong> {{.Label "serviceUsed"}}</p>
</div>
<p>Your insights are incredibly valuable to us and help us continuously improve our services to better serve you and all our students.</p>
<p>If you have any further questions or concerns, please don't hesitate to reach out to us:</p>
<ul>
  <li><strong>Phone:</strong> {{.ContactPhone}}</li>
  <li><strong>Email:</strong> {{.ContactEmail}}</li>
</ul>
<p>Thank you again for helping us improve!</p>
{{template "signature" .}}
{{end}}
`))

// envelope describes how one form's two messages are addressed
type envelope struct {
	prefix         string // template and tag prefix
	operatorTitle  func(v view) string
	submitterTitle string
}

var envelopes = map[domain.FormKind]envelope{
	domain.FormContact: {
		prefix: "contact",
		operatorTitle: func(v view) string {
			return fmt.Sprintf("New Inquiry: %s - %s", v.Label("serviceType"), v.Get("fullName"))
		},
		submitterTitle: "Thank you for your inquiry - Impulse-VLSI",
	},
	domain.FormCourseInquiry: {
		prefix: "course",
		operatorTitle: func(v view) string {
			return fmt.Sprintf("New Course Inquiry: %s - %s", v.Label("course"), v.Get("name"))
		},
		submitterTitle: "Thank you for your course inquiry - Impulse-VLSI",
	},
	domain.FormFeedback: {
		prefix: "feedback",
		operatorTitle: func(v view) string {
			return fmt.Sprintf("New Feedback: %s - %s/5.0 ⭐ - %s", v.Label("serviceUsed"), v.Average, v.Get("fullName"))
		},
		submitterTitle: "Thank you for your feedback - Impulse-VLSI",
	},
}

// composeMessages renders the operator copy and the submitter acknowledgement
// for a sanitized, valid submission.
func composeMessages(schema *form.Schema, sub domain.Submission, operator string, submittedAt time.Time) (domain.NotificationMessage, domain.NotificationMessage, error) {
	env, ok := envelopes[schema.Kind]
	if !ok {
		return domain.NotificationMessage{}, domain.NotificationMessage{}, fmt.Errorf("%w: %s", domain.ErrUnknownForm, schema.Kind)
	}

	v := view{
		schema:       schema,
		sub:          sub,
		SubmittedAt:  submittedAt.Format(timestampStyle),
		ContactPhone: sitePhone,
		ContactEmail: operator,
	}
	if schema.Kind == domain.FormFeedback {
		v.Average = form.FormatRating(form.AverageRating(sub, form.RatingFields...))
	}

	operatorBody, err := render(env.prefix+"_operator", v)
	if err != nil {
		return domain.NotificationMessage{}, domain.NotificationMessage{}, err
	}
	submitterBody, err := render(env.prefix+"_submitter", v)
	if err != nil {
		return domain.NotificationMessage{}, domain.NotificationMessage{}, err
	}

	submitter := sub.Get("email")
	return domain.NotificationMessage{
			To:       operator,
			Subject:  env.operatorTitle(v),
			HTMLBody: operatorBody,
			ReplyTo:  submitter,
			Tag:      env.prefix + "-operator",
		}, domain.NotificationMessage{
			To:       submitter,
			Subject:  env.submitterTitle,
			HTMLBody: submitterBody,
			ReplyTo:  operator,
			Tag:      env.prefix + "-submitter",
		}, nil
}

func render(name string, v view) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, v); err != nil {
		return "", fmt.Errorf("failed to execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}
