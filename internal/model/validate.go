package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ValidationKind classifies why a field was rejected.
type ValidationKind int

const (
	FieldMissing ValidationKind = iota
	FieldInvalid
	FieldTooLong
)

// ValidationError reports the first field that failed validation. The
// Error string is user-facing and returned verbatim in 400 responses.
type ValidationError struct {
	Field string
	Kind  ValidationKind
}

func (e *ValidationError) Error() string {
	switch {
	case e.Kind == FieldMissing:
		return fmt.Sprintf("%s is required.", titleField(e.Field))
	case e.Field == "email":
		return "Invalid email format."
	case e.Field == "phone":
		return "Invalid phone number. Please use 7-15 digits."
	case e.Field == "visitDate":
		return "Invalid visit date. Please choose today or a future date."
	case e.Kind == FieldTooLong:
		return fmt.Sprintf("%s is too long.", titleField(e.Field))
	}
	return fmt.Sprintf("Invalid %s.", e.Field)
}

func titleField(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

func missing(field string) *ValidationError {
	return &ValidationError{Field: field, Kind: FieldMissing}
}

func invalid(field string) *ValidationError {
	return &ValidationError{Field: field, Kind: FieldInvalid}
}

// Intentionally permissive (not full RFC 5322): one or more non-'@'
// chars, '@', non-'@' chars, '.', non-'@' chars. Known simplification.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// VisitDateFormat is the expected calendar-date layout for visitDate.
const VisitDateFormat = "2006-01-02"

// InquiryInput is the untrusted form payload before validation.
type InquiryInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	VisitDate string `json:"visitDate"`
	Message   string `json:"message"`
}

// ValidateOptions carries deployment-configurable validation knobs.
type ValidateOptions struct {
	// MaxMessageLength caps the message rune count. Zero or negative
	// means unbounded.
	MaxMessageLength int
	// RejectPastVisitDates enables calendar parsing of visitDate and
	// rejection of dates before today.
	RejectPastVisitDates bool
	// Now overrides the clock for the past-date check. Nil means time.Now.
	Now func() time.Time
}

// ValidateInquiry checks and normalizes an inquiry payload. Rules are
// applied in a fixed order and the first failure wins. Phone numbers are
// normalized to their digit-only form; original punctuation is discarded.
func ValidateInquiry(in InquiryInput, opts ValidateOptions) (*Inquiry, *ValidationError) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	if name == "" {
		return nil, missing("name")
	}
	if email == "" {
		return nil, missing("email")
	}
	if message == "" {
		return nil, missing("message")
	}
	if !emailPattern.MatchString(email) {
		return nil, invalid("email")
	}

	phone := normalizePhone(in.Phone)
	if strings.TrimSpace(in.Phone) != "" {
		if n := len(phone); n < 7 || n > 15 {
			return nil, invalid("phone")
		}
	}

	if opts.MaxMessageLength > 0 && len([]rune(message)) > opts.MaxMessageLength {
		return nil, &ValidationError{Field: "message", Kind: FieldTooLong}
	}

	visitDate := strings.TrimSpace(in.VisitDate)
	if visitDate != "" && opts.RejectPastVisitDates {
		d, err := time.Parse(VisitDateFormat, visitDate)
		if err != nil {
			return nil, invalid("visitDate")
		}
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		y, m, dd := now().Date()
		today := time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
		if d.Before(today) {
			return nil, invalid("visitDate")
		}
	}

	return &Inquiry{
		Name:      name,
		Email:     email,
		Phone:     phone,
		VisitDate: visitDate,
		Message:   message,
	}, nil
}

// ValidateEmail checks a standalone email address (subscription endpoint).
func ValidateEmail(email string) (string, *ValidationError) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", missing("email")
	}
	if !emailPattern.MatchString(email) {
		return "", invalid("email")
	}
	return email, nil
}

func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
