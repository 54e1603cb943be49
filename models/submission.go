package models

import "time"

// Submission kinds accepted by the unified contact endpoint.
const (
	SubmissionWaitlist   = "waitlist"
	SubmissionNewsletter = "newsletter"
	SubmissionCareer     = "career"
	SubmissionSupport    = "support"
)

// Application is one career application record, as persisted in the
// applications collection. JSON keys match the historical data files.
type Application struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone,omitempty"`
	RoleSlug    string            `json:"roleSlug"`
	RoleTitle   string            `json:"roleTitle"`
	Resume      string            `json:"resume"` // generated on-disk filename, not the client's
	SubmittedAt time.Time         `json:"submittedAt"`
	Fields      map[string]string `json:"fields,omitempty"` // every form input, role questions included
}

// Submission is one generic record (waitlist/newsletter/support/contact),
// as persisted in the submissions collection.
type Submission struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Type          string    `json:"type"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
	HasAttachment bool      `json:"hasAttachment"`
	Status        string    `json:"status"`
}

// StatusForType derives the dashboard label from the submission type.
func StatusForType(submissionType string) string {
	switch submissionType {
	case SubmissionWaitlist:
		return "Waitlist Member"
	case SubmissionNewsletter:
		return "Newsletter Subscriber"
	default:
		return "New Ticket"
	}
}
