package v1

import (
	"errors"
	"net/http"
	"strconv"

	"impulse-vlsi-backend/internal/delivery/http/middleware"
	"impulse-vlsi-backend/internal/delivery/http/response"
	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/pkg/apperror"
	"impulse-vlsi-backend/pkg/metrics"
	"impulse-vlsi-backend/pkg/ratelimit"
	"impulse-vlsi-backend/pkg/sanitizer"
	"impulse-vlsi-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes caps a submission body
const maxBodyBytes = 64 << 10

type SubmissionHandler struct {
	submissionUC domain.SubmissionUsecase
	secLog       *security.SecurityLogger
}

// NewSubmissionHandler registers the public form routes on group. Each route is
// rate limited by its own limiter from limiters.
func NewSubmissionHandler(group *gin.RouterGroup, submissionUC domain.SubmissionUsecase, limiters map[domain.FormKind]ratelimit.Limiter, secLog *security.SecurityLogger) {
	handler := &SubmissionHandler{
		submissionUC: submissionUC,
		secLog:       secLog,
	}

	route := func(path string, kind domain.FormKind, h gin.HandlerFunc) {
		group.POST(path,
			handler.formContext(kind),
			middleware.RateLimitMiddleware(middleware.RateLimitConfig{
				Form:    kind,
				Limiter: limiters[kind],
				Logger:  secLog,
			}),
			h,
		)
	}

	route("/contact", domain.FormContact, handler.SubmitContact)
	route("/course-inquiry", domain.FormCourseInquiry, handler.SubmitCourseInquiry)
	route("/feedback", domain.FormFeedback, handler.SubmitFeedback)
}

// formContext stores the route's generic failure text for the recovery handler
func (h *SubmissionHandler) formContext(kind domain.FormKind) gin.HandlerFunc {
	failure := h.submissionUC.FailureMessage(kind)
	return func(c *gin.Context) {
		c.Set(middleware.FailureMessageKey, failure)
		c.Next()
	}
}

// SubmitContact godoc
// @Summary      Submit Contact Inquiry
// @Description  General inquiry form. Sends an operator notification and a confirmation to the submitter.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        inquiry  body      ContactInquiryRequest  true  "Contact Inquiry"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      405      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	h.submit(c, domain.FormContact)
}

// SubmitCourseInquiry godoc
// @Summary      Submit Course Inquiry
// @Description  Course-specific inquiry form.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        inquiry  body      CourseInquiryRequest  true  "Course Inquiry"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      405      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /course-inquiry [post]
func (h *SubmissionHandler) SubmitCourseInquiry(c *gin.Context) {
	h.submit(c, domain.FormCourseInquiry)
}

// SubmitFeedback godoc
// @Summary      Submit Feedback
// @Description  Feedback form with five 1-5 ratings; the operator notification shows their average.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        feedback  body      FeedbackRequest  true  "Feedback"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      405       {object}  response.Response
// @Failure      429       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Router       /feedback [post]
func (h *SubmissionHandler) SubmitFeedback(c *gin.Context) {
	h.submit(c, domain.FormFeedback)
}

func (h *SubmissionHandler) submit(c *gin.Context, kind domain.FormKind) {
	ctx := c.Request.Context()
	requestID := c.GetString(string(domain.KeyRequestID))
	identity := c.GetString(string(domain.KeyClientID))

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		metrics.FormSubmissions.WithLabelValues(string(kind), metrics.OutcomeMalformed).Inc()
		h.secLog.LogMalformedRequest(ctx, string(kind), identity, requestID, err)
		c.Error(apperror.New(http.StatusInternalServerError, h.submissionUC.FailureMessage(kind), err))
		return
	}
	raw := toSubmission(payload)

	message, err := h.submissionUC.Submit(ctx, kind, raw)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			h.secLog.LogValidationFailed(ctx, string(kind), identity, requestID, len(validationErr.Messages))
			c.Error(apperror.BadRequest(validationErr.Error()))
			return
		}

		if errors.Is(err, domain.ErrNotificationFailed) {
			h.secLog.LogNotificationFailed(ctx, string(kind), sanitizer.Email(raw.Get("email")), requestID, err)
		}
		c.Error(apperror.New(http.StatusInternalServerError, h.submissionUC.FailureMessage(kind), err))
		return
	}

	h.secLog.LogSubmissionAccepted(ctx, string(kind), sanitizer.Email(raw.Get("email")), requestID)
	response.Success(c, http.StatusOK, message, nil)
}

// toSubmission coerces decoded JSON scalars to strings. Nested objects and
// arrays become "" and fail the field's rules.
func toSubmission(payload map[string]interface{}) domain.Submission {
	sub := make(domain.Submission, len(payload))
	for key, value := range payload {
		switch v := value.(type) {
		case string:
			sub[key] = v
		case float64:
			sub[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			sub[key] = strconv.FormatBool(v)
		default:
			sub[key] = ""
		}
	}
	return sub
}
