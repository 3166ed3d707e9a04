package contacts

import (
	"github.com/portfolio/backend/internal/platform/timeutil"
	contactsvc "github.com/portfolio/backend/internal/service/contact"
)

// Contact is the full inquiry representation returned to admins.
type Contact struct {
	ID        string        `json:"id"        doc:"Unique identifier"`
	FullName  string        `json:"fullName"  doc:"Submitter's full name"`
	Email     string        `json:"email"     doc:"Submitter's email address"`
	Phone     string        `json:"phone"     doc:"Submitter's phone number"`
	Subject   string        `json:"subject"   doc:"Inquiry subject"`
	Message   string        `json:"message"   doc:"Inquiry message"`
	Status    string        `json:"status"    doc:"Workflow status" enum:"new,read,replied"`
	CreatedAt timeutil.Time `json:"createdAt" doc:"Submission timestamp"`
}

// Submitted is the trimmed payload echoed back after a submission.
type Submitted struct {
	ID       string `json:"id"       doc:"Identifier of the stored inquiry"`
	FullName string `json:"fullName" doc:"Echoed full name"`
	Email    string `json:"email"    doc:"Echoed email address"`
}

func toHTTPContact(c *contactsvc.Contact) Contact {
	return Contact{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: timeutil.NewTime(c.CreatedAt),
	}
}
