package validation

import (
	"regexp"
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Indian mobile numbering: 10 digits, first digit 6-9
	mobileRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)

	// local@domain.tld, no whitespace, single @
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// New returns a validator with the custom tags registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("in_mobile", InMobile)
	_ = v.RegisterValidation("simple_email", SimpleEmail)
	_ = v.RegisterValidation("utf16_min", UTF16Min)
	_ = v.RegisterValidation("utf16_max", UTF16Max)
}

// InMobile validates a sanitized (digits only) Indian mobile number
func InMobile(fl validator.FieldLevel) bool {
	return mobileRegex.MatchString(fl.Field().String())
}

// SimpleEmail validates the loose local@domain.tld shape the site accepts
func SimpleEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// IsEmail is the non-validator form of SimpleEmail
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// UTF16Min checks length in UTF-16 code units, the way the browser counts it.
// An astral character such as an emoji counts as two.
func UTF16Min(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return UTF16Len(fl.Field().String()) >= n
}

// UTF16Max is the upper bound counterpart of UTF16Min
func UTF16Max(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return UTF16Len(fl.Field().String()) <= n
}

// UTF16Len returns the number of UTF-16 code units in s
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
