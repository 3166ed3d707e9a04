package contacts

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	apiinternal "github.com/portfolio/backend/internal/api"
	"github.com/portfolio/backend/internal/mail"
	appmiddleware "github.com/portfolio/backend/internal/middleware"
	"github.com/portfolio/backend/internal/respond"
	contactsvc "github.com/portfolio/backend/internal/service/contact"
	"github.com/portfolio/backend/internal/validation"
)

// Options configures contact endpoint registration.
type Options struct {
	// AdminSecurity is attached to the inbox-management operations
	// (list, get, update, delete). Empty leaves them open.
	AdminSecurity []map[string][]string
}

// Register wires the contact endpoints.
func Register(api huma.API, svc contactsvc.Service, notifier *mail.Notifier, opts Options) {
	huma.Register(api, huma.Operation{
		OperationID:   "submit-contact",
		Method:        http.MethodPost,
		Path:          "/api/contacts",
		Summary:       "Submit a contact-form inquiry",
		Description:   "Validates the submission, stores it, and sends acknowledgment and owner-alert emails best-effort.",
		Tags:          []string{"Contacts"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *SubmitInput) (*respond.Body[Submitted], error) {
		fieldErrs := validation.Contact(validation.ContactInput{
			FullName: input.Body.FullName,
			Email:    input.Body.Email,
			Phone:    input.Body.Phone,
			Subject:  input.Body.Subject,
			Message:  input.Body.Message,
		})
		if len(fieldErrs) > 0 {
			return nil, respond.ValidationError(ctx, "Validation failed", fieldErrs)
		}

		created, err := svc.Create(ctx, contactsvc.CreateParams{
			FullName: input.Body.FullName,
			Email:    input.Body.Email,
			Phone:    input.Body.Phone,
			Subject:  input.Body.Subject,
			Message:  input.Body.Message,
		})
		if err != nil {
			return nil, respond.ServerError(ctx, "Failed to send message. Please try again later.", err)
		}

		// The inquiry is durable at this point; email delivery is
		// best-effort and never blocks or fails the response.
		notifier.Dispatch(ctx, created)

		appmiddleware.LogInfo(ctx, "contact submitted", zap.String("contactId", created.ID))
		out := respond.Body[Submitted]{}
		out.Body = apiinternal.SuccessMessage("Message sent successfully! I will get back to you soon.", Submitted{
			ID:       created.ID,
			FullName: created.FullName,
			Email:    created.Email,
		})
		return &out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-contacts",
		Method:      http.MethodGet,
		Path:        "/api/contacts",
		Summary:     "List all inquiries, newest first",
		Tags:        []string{"Contacts"},
		Security:    opts.AdminSecurity,
	}, func(ctx context.Context, _ *ListInput) (*respond.Body[[]Contact], error) {
		list, err := svc.List(ctx)
		if err != nil {
			return nil, respond.ServerError(ctx, "Failed to fetch contacts", err)
		}

		data := make([]Contact, 0, len(list))
		for _, c := range list {
			data = append(data, toHTTPContact(c))
		}
		out := respond.Body[[]Contact]{}
		out.Body = apiinternal.SuccessList(data, len(data))
		return &out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-contact",
		Method:      http.MethodGet,
		Path:        "/api/contacts/{id}",
		Summary:     "Fetch one inquiry",
		Tags:        []string{"Contacts"},
		Security:    opts.AdminSecurity,
	}, func(ctx context.Context, input *GetInput) (*respond.Body[Contact], error) {
		c, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapContactError(ctx, err, "Failed to fetch contact")
		}
		out := respond.Body[Contact]{}
		out.Body = apiinternal.Success(toHTTPContact(c))
		return &out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-contact-status",
		Method:      http.MethodPut,
		Path:        "/api/contacts/{id}",
		Summary:     "Update an inquiry's workflow status",
		Tags:        []string{"Contacts"},
		Security:    opts.AdminSecurity,
	}, func(ctx context.Context, input *UpdateStatusInput) (*respond.Body[Contact], error) {
		st := contactsvc.Status(input.Body.Status)
		if !st.Valid() {
			return nil, respond.Error(ctx, http.StatusBadRequest, "Invalid status")
		}

		c, err := svc.UpdateStatus(ctx, input.ID, st)
		if err != nil {
			return nil, mapContactError(ctx, err, "Failed to update contact")
		}
		out := respond.Body[Contact]{}
		out.Body = apiinternal.SuccessMessage("Contact status updated", toHTTPContact(c))
		return &out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-contact",
		Method:      http.MethodDelete,
		Path:        "/api/contacts/{id}",
		Summary:     "Delete an inquiry",
		Tags:        []string{"Contacts"},
		Security:    opts.AdminSecurity,
	}, func(ctx context.Context, input *DeleteInput) (*respond.Body[struct{}], error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, mapContactError(ctx, err, "Failed to delete contact")
		}
		out := respond.Body[struct{}]{}
		out.Body.Success = true
		out.Body.Message = "Contact deleted successfully"
		return &out, nil
	})
}

func mapContactError(ctx context.Context, err error, failMsg string) error {
	switch {
	case errors.Is(err, contactsvc.ErrNotFound):
		return respond.Error(ctx, http.StatusNotFound, "Contact not found")
	case errors.Is(err, contactsvc.ErrInvalidStatus):
		return respond.Error(ctx, http.StatusBadRequest, "Invalid status")
	default:
		return respond.ServerError(ctx, failMsg, err)
	}
}
