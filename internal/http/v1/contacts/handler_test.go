package contacts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apiinternal "github.com/portfolio/backend/internal/api"
	"github.com/portfolio/backend/internal/mail"
	appmiddleware "github.com/portfolio/backend/internal/middleware"
	"github.com/portfolio/backend/internal/respond"
	contactsvc "github.com/portfolio/backend/internal/service/contact"
)

// envelope mirrors the wire shape with a raw data slot for per-test decoding.
type envelope struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Count   *int                     `json:"count"`
	Data    json.RawMessage          `json:"data"`
	Error   string                   `json:"error"`
	Errors  []apiinternal.FieldError `json:"errors"`
}

func newTestRouter(svc contactsvc.Service, mailer mail.Mailer) chi.Router {
	respond.Install(false)
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		appmiddleware.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("ContactsTest", "test"))
	Register(api, svc, mail.NewNotifier(mailer, "owner@example.com"), Options{})
	return router
}

func doJSON(t *testing.T, router chi.Router, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var env envelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("json unmarshal %q: %v", resp.Body.String(), err)
	}
	return resp, env
}

const validSubmission = `{
	"fullName": "John Doe",
	"email": "john@example.com",
	"phone": "(012) 345-6789",
	"subject": "Project inquiry",
	"message": "I would like to discuss a project with you."
}`

func TestSubmitContactSuccess(t *testing.T) {
	svc := contactsvc.NewMockService()
	mailer := mail.NewMockMailer()
	sent := mailer.Expect(2)
	router := newTestRouter(svc, mailer)

	resp, env := doJSON(t, router, http.MethodPost, "/api/contacts", validSubmission)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if !env.Success {
		t.Error("expected success true")
	}
	if env.Message != "Message sent successfully! I will get back to you soon." {
		t.Errorf("unexpected message %q", env.Message)
	}

	var data Submitted
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.ID == "" {
		t.Error("expected non-empty id")
	}
	if data.FullName != "John Doe" || data.Email != "john@example.com" {
		t.Errorf("unexpected echo %+v", data)
	}

	// The stored record matches the submission with status new.
	stored, err := svc.Get(context.Background(), data.ID)
	if err != nil {
		t.Fatalf("get stored contact: %v", err)
	}
	if stored.Status != contactsvc.StatusNew {
		t.Errorf("expected status new, got %s", stored.Status)
	}
	if stored.Subject != "Project inquiry" {
		t.Errorf("unexpected subject %q", stored.Subject)
	}

	// Both notification emails go out after the response.
	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification emails")
	}
	msgs := mailer.Sent()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(msgs))
	}
	if msgs[0].ToAddress != "john@example.com" {
		t.Errorf("expected acknowledgment to submitter, got %s", msgs[0].ToAddress)
	}
	if msgs[1].ToAddress != "owner@example.com" {
		t.Errorf("expected alert to owner, got %s", msgs[1].ToAddress)
	}
	if !strings.Contains(msgs[1].Subject, "Project inquiry") {
		t.Errorf("expected owner alert subject to carry the inquiry subject, got %q", msgs[1].Subject)
	}
}

func TestSubmitContactValidationErrors(t *testing.T) {
	svc := contactsvc.NewMockService()
	router := newTestRouter(svc, mail.NewMockMailer())

	resp, env := doJSON(t, router, http.MethodPost, "/api/contacts", `{}`)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.Success {
		t.Error("expected success false")
	}
	if len(env.Errors) != 5 {
		t.Fatalf("expected 5 field errors, got %d: %v", len(env.Errors), env.Errors)
	}

	// Nothing was persisted.
	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected no stored contacts, got %d", len(list))
	}
}

func TestSubmitContactShortPhoneRejectedDespiteFormatting(t *testing.T) {
	svc := contactsvc.NewMockService()
	router := newTestRouter(svc, mail.NewMockMailer())

	body := strings.Replace(validSubmission, "(012) 345-6789", "(012) 345-678", 1)
	resp, env := doJSON(t, router, http.MethodPost, "/api/contacts", body)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	found := false
	for _, fe := range env.Errors {
		if fe.Field == "phone" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a phone field error, got %v", env.Errors)
	}
}

func TestSubmitContactMailFailureStillCreated(t *testing.T) {
	svc := contactsvc.NewMockService()
	mailer := mail.NewMockMailer()
	mailer.Err = context.DeadlineExceeded
	sent := mailer.Expect(2)
	router := newTestRouter(svc, mailer)

	resp, env := doJSON(t, router, http.MethodPost, "/api/contacts", validSubmission)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 despite mail failure, got %d: %s", resp.Code, resp.Body.String())
	}
	if !env.Success {
		t.Error("expected success true")
	}

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification attempts")
	}
}

func TestSubmitContactPersistenceFailure(t *testing.T) {
	svc := contactsvc.NewMockService()
	svc.Err = context.DeadlineExceeded
	router := newTestRouter(svc, mail.NewMockMailer())

	resp, env := doJSON(t, router, http.MethodPost, "/api/contacts", validSubmission)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.Success {
		t.Error("expected success false")
	}
	if env.Message != "Failed to send message. Please try again later." {
		t.Errorf("unexpected message %q", env.Message)
	}
	if env.Error != "" {
		t.Errorf("expected error detail suppressed, got %q", env.Error)
	}
}

func seedContacts(t *testing.T, svc *contactsvc.MockService, n int) []*contactsvc.Contact {
	t.Helper()
	out := make([]*contactsvc.Contact, 0, n)
	for i := 0; i < n; i++ {
		c, err := svc.Create(context.Background(), contactsvc.CreateParams{
			FullName: "John Doe",
			Email:    "john@example.com",
			Phone:    "0123456789",
			Subject:  "Project inquiry",
			Message:  "I would like to discuss a project with you.",
		})
		if err != nil {
			t.Fatalf("seed contact: %v", err)
		}
		out = append(out, c)
		time.Sleep(2 * time.Millisecond)
	}
	return out
}

func TestListContactsNewestFirst(t *testing.T) {
	svc := contactsvc.NewMockService()
	router := newTestRouter(svc, mail.NewMockMailer())
	seeded := seedContacts(t, svc, 3)

	resp, env := doJSON(t, router, http.MethodGet, "/api/contacts", "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.Count == nil || *env.Count != 3 {
		t.Fatalf("expected count 3, got %v", env.Count)
	}

	var data []Contact
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data) != 3 {
		t.Fatalf("expected 3 contacts, got %d", len(data))
	}
	if data[0].ID != seeded[2].ID {
		t.Errorf("expected newest contact first, got %s", data[0].ID)
	}
	if data[2].ID != seeded[0].ID {
		t.Errorf("expected oldest contact last, got %s", data[2].ID)
	}
}

func TestGetContact(t *testing.T) {
	svc := contactsvc.NewMockService()
	router := newTestRouter(svc, mail.NewMockMailer())
	seeded := seedContacts(t, svc, 1)

	resp, env := doJSON(t, router, http.MethodGet, "/api/contacts/"+seeded[0].ID, "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data Contact
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.ID != seeded[0].ID || data.Status != "new" {
		t.Errorf("unexpected contact %+v", data)
	}
}

func TestGetContactNotFound(t *testing.T) {
	svc := contactsvc.NewMockService()
	router := newTestRouter(svc, mail.NewMockMailer())

	resp, env := doJSON(t, router, http.MethodGet, "/api/contacts/missing", "")

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.Message != "Contact not found" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestUpdateContactStatus(t *testing.T) {
	svc := contactsvc.NewMockService()
	router := newTestRouter(svc, mail.NewMockMailer())
	seeded := seedContacts(t, svc, 1)

	resp, env := doJSON(t, router, http.MethodPut, "/api/contacts/"+seeded[0].ID, `{"status":"read"}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.Message != "Contact status updated" {
		t.Errorf("unexpected message %q", env.Message)
	}
	var data Contact
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Status != "read" {
		t.Errorf("expected status read, got %s", data.Status)
	}
}

func TestUpdateContactStatusInvalid(t *testing.T) {
	svc := contactsvc.NewMockService()
	router := newTestRouter(svc, mail.NewMockMailer())
	seeded := seedContacts(t, svc, 1)

	resp, env := doJSON(t, router, http.MethodPut, "/api/contacts/"+seeded[0].ID, `{"status":"archived"}`)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.Message != "Invalid status" {
		t.Errorf("unexpected message %q", env.Message)
	}

	// The stored record is untouched.
	stored, err := svc.Get(context.Background(), seeded[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != contactsvc.StatusNew {
		t.Errorf("expected stored status new, got %s", stored.Status)
	}
}

func TestUpdateContactStatusNotFound(t *testing.T) {
	svc := contactsvc.NewMockService()
	router := newTestRouter(svc, mail.NewMockMailer())

	resp, _ := doJSON(t, router, http.MethodPut, "/api/contacts/missing", `{"status":"read"}`)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestDeleteContact(t *testing.T) {
	svc := contactsvc.NewMockService()
	router := newTestRouter(svc, mail.NewMockMailer())
	seeded := seedContacts(t, svc, 1)

	resp, env := doJSON(t, router, http.MethodDelete, "/api/contacts/"+seeded[0].ID, "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.Message != "Contact deleted successfully" {
		t.Errorf("unexpected message %q", env.Message)
	}

	// A subsequent fetch misses.
	resp, _ = doJSON(t, router, http.MethodGet, "/api/contacts/"+seeded[0].ID, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.Code)
	}
}

func TestDeleteContactNotFound(t *testing.T) {
	svc := contactsvc.NewMockService()
	router := newTestRouter(svc, mail.NewMockMailer())

	resp, env := doJSON(t, router, http.MethodDelete, "/api/contacts/missing", "")

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.Message != "Contact not found" {
		t.Errorf("unexpected message %q", env.Message)
	}
}
