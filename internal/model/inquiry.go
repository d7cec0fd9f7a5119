package model

import "time"

// Column indexes into a Record. The order is a durable contract shared by
// the Google Sheet and the CSV fallback file; reordering columns without
// migrating existing data corrupts history.
const (
	ColDate = iota
	ColTime
	ColName
	ColEmail
	ColPhone
	ColVisitDate
	ColMessage
)

// RecordColumns is the canonical header row of both stores.
var RecordColumns = []string{"Date", "Time", "Name", "Email", "Phone", "VisitDate", "Message"}

// Date/time formats for persisted rows. The sheet feeds a human-read
// document, so these are deliberately not ISO-8601.
const (
	DateFormat = "02-01-2006"
	TimeFormat = "03:04:05 PM"
)

// Fixed values used for newsletter subscription rows, which reuse the
// inquiry column layout.
const (
	subscriberName    = "Newsletter Subscriber"
	subscriberMessage = "Subscribed to newsletter"
)

// Inquiry is a validated, normalized booking inquiry. Phone holds the
// digit-only normalized form; VisitDate is kept as submitted.
type Inquiry struct {
	Name      string
	Email     string
	Phone     string
	VisitDate string
	Message   string
}

// Record is one persisted row in canonical column order.
type Record []string

// NewRecord builds the row for an inquiry, stamping Date and Time from now.
func NewRecord(inq *Inquiry, now time.Time) Record {
	return Record{
		now.Format(DateFormat),
		now.Format(TimeFormat),
		inq.Name,
		inq.Email,
		inq.Phone,
		inq.VisitDate,
		inq.Message,
	}
}

// NewSubscriptionRecord builds the row for a newsletter subscription,
// filling the unused columns with placeholder values.
func NewSubscriptionRecord(email string, now time.Time) Record {
	return Record{
		now.Format(DateFormat),
		now.Format(TimeFormat),
		subscriberName,
		email,
		"",
		"",
		subscriberMessage,
	}
}
