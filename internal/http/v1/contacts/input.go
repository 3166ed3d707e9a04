package contacts

// Submission fields are deliberately not marked required in the schema:
// the validation layer collects every failing field into one 400
// response instead of letting schema validation fail fast.

// SubmitInput for POST /api/contacts
type SubmitInput struct {
	Body struct {
		FullName string `json:"fullName,omitempty" required:"false" doc:"Full name, 2-50 characters"`
		Email    string `json:"email,omitempty"    required:"false" doc:"Email address"`
		Phone    string `json:"phone,omitempty"    required:"false" doc:"Phone number, at least 10 digits"`
		Subject  string `json:"subject,omitempty"  required:"false" doc:"Subject, 5-100 characters"`
		Message  string `json:"message,omitempty"  required:"false" doc:"Message, 10-1000 characters"`
	}
}

// ListInput for GET /api/contacts
type ListInput struct{}

// GetInput for GET /api/contacts/{id}
type GetInput struct {
	ID string `path:"id" doc:"Contact identifier"`
}

// UpdateStatusInput for PUT /api/contacts/{id}
type UpdateStatusInput struct {
	ID   string `path:"id" doc:"Contact identifier"`
	Body struct {
		Status string `json:"status,omitempty" required:"false" doc:"New status: new, read or replied"`
	}
}

// DeleteInput for DELETE /api/contacts/{id}
type DeleteInput struct {
	ID string `path:"id" doc:"Contact identifier"`
}
