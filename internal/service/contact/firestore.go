package contact

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const contactsCollection = "contacts"

// firestoreContact maps to the Firestore document structure.
type firestoreContact struct {
	FullName  string    `firestore:"full_name"`
	Email     string    `firestore:"email"`
	Phone     string    `firestore:"phone"`
	Subject   string    `firestore:"subject"`
	Message   string    `firestore:"message"`
	Status    string    `firestore:"status"`
	CreatedAt time.Time `firestore:"created_at"`
}

// FirestoreStore implements Service on Firestore. Documents get UUID
// IDs; listing orders on the created_at field.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create persists a new inquiry with status "new".
func (s *FirestoreStore) Create(ctx context.Context, params CreateParams) (*Contact, error) {
	id := uuid.NewString()
	fc := firestoreContact{
		FullName:  strings.TrimSpace(params.FullName),
		Email:     strings.ToLower(strings.TrimSpace(params.Email)),
		Phone:     strings.TrimSpace(params.Phone),
		Subject:   strings.TrimSpace(params.Subject),
		Message:   strings.TrimSpace(params.Message),
		Status:    string(StatusNew),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.client.Collection(contactsCollection).Doc(id).Create(ctx, fc); err != nil {
		return nil, err
	}
	return fc.toContact(id), nil
}

// List returns all inquiries, newest first.
func (s *FirestoreStore) List(ctx context.Context) ([]*Contact, error) {
	iter := s.client.Collection(contactsCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var contacts []*Contact
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var fc firestoreContact
		if err := doc.DataTo(&fc); err != nil {
			return nil, err
		}
		contacts = append(contacts, fc.toContact(doc.Ref.ID))
	}
	return contacts, nil
}

// Get retrieves one inquiry by ID.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*Contact, error) {
	doc, err := s.client.Collection(contactsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fc firestoreContact
	if err := doc.DataTo(&fc); err != nil {
		return nil, err
	}
	return fc.toContact(id), nil
}

// UpdateStatus moves an inquiry to a new workflow status. The
// read-modify-write runs in a transaction so a concurrent delete
// cannot resurrect the document.
func (s *FirestoreStore) UpdateStatus(ctx context.Context, id string, st Status) (*Contact, error) {
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}

	docRef := s.client.Collection(contactsCollection).Doc(id)
	var result *Contact

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fc firestoreContact
		if err := doc.DataTo(&fc); err != nil {
			return err
		}
		fc.Status = string(st)

		if err := tx.Set(docRef, fc); err != nil {
			return err
		}
		result = fc.toContact(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes an inquiry, failing with ErrNotFound if absent.
func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	docRef := s.client.Collection(contactsCollection).Doc(id)

	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(docRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(docRef)
	})
}

func (fc *firestoreContact) toContact(id string) *Contact {
	return &Contact{
		ID:        id,
		FullName:  fc.FullName,
		Email:     fc.Email,
		Phone:     fc.Phone,
		Subject:   fc.Subject,
		Message:   fc.Message,
		Status:    Status(fc.Status),
		CreatedAt: fc.CreatedAt,
	}
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
