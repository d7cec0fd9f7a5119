package model

import (
	"strings"
	"testing"
	"time"
)

func validInput() InquiryInput {
	return InquiryInput{
		Name:      "Asha",
		Email:     "asha@example.com",
		Phone:     "98765 43210",
		VisitDate: "2025-12-01",
		Message:   "Interested in a room.",
	}
}

func TestValidateInquiry_Valid(t *testing.T) {
	inq, verr := ValidateInquiry(validInput(), ValidateOptions{})
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if inq.Name != "Asha" {
		t.Errorf("expected name=Asha, got %q", inq.Name)
	}
	if inq.Phone != "9876543210" {
		t.Errorf("expected normalized phone=9876543210, got %q", inq.Phone)
	}
	if inq.VisitDate != "2025-12-01" {
		t.Errorf("expected visitDate kept as submitted, got %q", inq.VisitDate)
	}
}

// TestValidateInquiry_MissingFields verifies each required field is
// reported by name, in order, with no normalization side effects.
func TestValidateInquiry_MissingFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*InquiryInput)
	}{
		{"name", func(in *InquiryInput) { in.Name = "" }},
		{"email", func(in *InquiryInput) { in.Email = "   " }},
		{"message", func(in *InquiryInput) { in.Message = "" }},
	}
	for _, tt := range tests {
		in := validInput()
		tt.mutate(&in)
		inq, verr := ValidateInquiry(in, ValidateOptions{})
		if inq != nil {
			t.Errorf("%s: expected nil inquiry on validation failure", tt.field)
		}
		if verr == nil {
			t.Fatalf("%s: expected error, got nil", tt.field)
		}
		if verr.Field != tt.field || verr.Kind != FieldMissing {
			t.Errorf("expected missing(%s), got %v(%s)", tt.field, verr.Kind, verr.Field)
		}
	}
}

// TestValidateInquiry_MissingNameWinsFirst verifies short-circuit order:
// with several bad fields, the first rule's error is reported.
func TestValidateInquiry_MissingNameWinsFirst(t *testing.T) {
	in := validInput()
	in.Name = ""
	in.Email = "not-an-email"
	_, verr := ValidateInquiry(in, ValidateOptions{})
	if verr == nil || verr.Field != "name" {
		t.Errorf("expected missing name reported first, got %v", verr)
	}
}

func TestValidateInquiry_EmailFormat(t *testing.T) {
	bad := []string{"plain", "a@b", "@b.com", "a@.", "a@b.", "two@@b.com"}
	for _, email := range bad {
		in := validInput()
		in.Email = email
		_, verr := ValidateInquiry(in, ValidateOptions{})
		if verr == nil || verr.Field != "email" || verr.Kind != FieldInvalid {
			t.Errorf("email %q: expected invalid(email), got %v", email, verr)
		}
	}

	// Deliberately permissive shape, not RFC 5322.
	good := []string{"a@b.c", "first.last@sub.example.co.in"}
	for _, email := range good {
		in := validInput()
		in.Email = email
		if _, verr := ValidateInquiry(in, ValidateOptions{}); verr != nil {
			t.Errorf("email %q: expected accepted, got %v", email, verr)
		}
	}
}

func TestValidateInquiry_PhoneNormalization(t *testing.T) {
	in := validInput()
	in.Phone = "123-456-7890"
	inq, verr := ValidateInquiry(in, ValidateOptions{})
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if inq.Phone != "1234567890" {
		t.Errorf("expected punctuation stripped to 1234567890, got %q", inq.Phone)
	}
}

func TestValidateInquiry_PhoneTooShort(t *testing.T) {
	in := validInput()
	in.Phone = "123"
	_, verr := ValidateInquiry(in, ValidateOptions{})
	if verr == nil || verr.Field != "phone" || verr.Kind != FieldInvalid {
		t.Errorf("expected invalid(phone) for 3 digits, got %v", verr)
	}
}

func TestValidateInquiry_PhoneTooLong(t *testing.T) {
	in := validInput()
	in.Phone = strings.Repeat("9", 16)
	_, verr := ValidateInquiry(in, ValidateOptions{})
	if verr == nil || verr.Field != "phone" {
		t.Errorf("expected invalid(phone) for 16 digits, got %v", verr)
	}
}

func TestValidateInquiry_PhoneOptional(t *testing.T) {
	in := validInput()
	in.Phone = ""
	inq, verr := ValidateInquiry(in, ValidateOptions{})
	if verr != nil {
		t.Fatalf("expected empty phone accepted, got %v", verr)
	}
	if inq.Phone != "" {
		t.Errorf("expected empty normalized phone, got %q", inq.Phone)
	}
}

func TestValidateInquiry_MessageLengthCap(t *testing.T) {
	in := validInput()
	in.Message = strings.Repeat("a", 1001)
	_, verr := ValidateInquiry(in, ValidateOptions{MaxMessageLength: 1000})
	if verr == nil || verr.Field != "message" || verr.Kind != FieldTooLong {
		t.Errorf("expected tooLong(message), got %v", verr)
	}

	in.Message = strings.Repeat("a", 1000)
	if _, verr := ValidateInquiry(in, ValidateOptions{MaxMessageLength: 1000}); verr != nil {
		t.Errorf("expected message at exactly the cap accepted, got %v", verr)
	}
}

func TestValidateInquiry_MessageUnboundedByDefault(t *testing.T) {
	in := validInput()
	in.Message = strings.Repeat("a", 100000)
	if _, verr := ValidateInquiry(in, ValidateOptions{}); verr != nil {
		t.Errorf("expected no cap when MaxMessageLength is zero, got %v", verr)
	}
}

func TestValidateInquiry_PastVisitDate(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }

	tests := []struct {
		visitDate string
		wantErr   bool
	}{
		{"2025-06-14", true},  // yesterday
		{"2025-06-15", false}, // today
		{"2025-06-16", false}, // tomorrow
		{"15-06-2025", true},  // wrong layout
		{"not-a-date", true},
	}
	for _, tt := range tests {
		in := validInput()
		in.VisitDate = tt.visitDate
		_, verr := ValidateInquiry(in, ValidateOptions{RejectPastVisitDates: true, Now: now})
		if tt.wantErr && (verr == nil || verr.Field != "visitDate") {
			t.Errorf("visitDate %q: expected invalid(visitDate), got %v", tt.visitDate, verr)
		}
		if !tt.wantErr && verr != nil {
			t.Errorf("visitDate %q: expected accepted, got %v", tt.visitDate, verr)
		}
	}
}

// TestValidateInquiry_VisitDateFreeFormByDefault verifies no semantic
// validation of visitDate unless the deployment enables it.
func TestValidateInquiry_VisitDateFreeFormByDefault(t *testing.T) {
	in := validInput()
	in.VisitDate = "next weekend"
	inq, verr := ValidateInquiry(in, ValidateOptions{})
	if verr != nil {
		t.Fatalf("expected free-form visitDate accepted, got %v", verr)
	}
	if inq.VisitDate != "next weekend" {
		t.Errorf("expected visitDate kept verbatim, got %q", inq.VisitDate)
	}
}

func TestValidationError_Messages(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{&ValidationError{Field: "name", Kind: FieldMissing}, "Name is required."},
		{&ValidationError{Field: "email", Kind: FieldInvalid}, "Invalid email format."},
		{&ValidationError{Field: "phone", Kind: FieldInvalid}, "Invalid phone number. Please use 7-15 digits."},
		{&ValidationError{Field: "message", Kind: FieldTooLong}, "Message is too long."},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if _, verr := ValidateEmail(""); verr == nil || verr.Kind != FieldMissing {
		t.Errorf("expected missing(email) for empty input, got %v", verr)
	}
	if _, verr := ValidateEmail("nope"); verr == nil || verr.Kind != FieldInvalid {
		t.Errorf("expected invalid(email), got %v", verr)
	}
	email, verr := ValidateEmail("  user@example.com ")
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if email != "user@example.com" {
		t.Errorf("expected trimmed email, got %q", email)
	}
}
