package intakeapimodels

// FileUpload is one uploaded binary as received from a multipart form.
// Name is the client-supplied filename; it is metadata only and never used
// as a storage path.
type FileUpload struct {
	Name    string
	Content []byte
}

// SubscribeRequest covers the waitlist and newsletter forms.
type SubscribeRequest struct {
	Name  string `form:"name"`
	Email string `form:"email"`
}

type SupportRequest struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Message string `form:"message"`
}

type CareerRequest struct {
	Name      string
	Email     string
	Phone     string
	RoleSlug  string
	RoleTitle string
	Fields    map[string]string // every submitted form key, role questions included
	Resume    FileUpload
}

type ContactRequest struct {
	Name       string
	Email      string
	Phone      string
	Type       string
	Message    string
	Attachment *FileUpload
}

type TicketResponse struct {
	Success  bool   `json:"success"`
	TicketID string `json:"ticketId"`
	Message  string `json:"message"`
}

type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CareerResponse struct {
	TicketID string `json:"ticketId"`
	Message  string `json:"message"`
}

type ContactResponse struct {
	Message  string `json:"message"`
	TicketID string `json:"ticketId,omitempty"`
}
