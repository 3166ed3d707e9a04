package datastore

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Config holds Firebase connection settings.
type Config struct {
	ProjectID       string
	CredentialsFile string // path to service account JSON (optional)
}

// Clients bundles the initialized Firebase clients the server needs:
// Firestore for persistence and Auth for the optional admin guard.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// Connect sets up the Firebase app and returns its clients.
func Connect(ctx context.Context, cfg Config) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		creds, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, err
	}

	ac, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	fc, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	return &Clients{Auth: ac, Firestore: fc}, nil
}

// Close releases the Firestore client.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
