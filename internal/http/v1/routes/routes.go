// Package routes wires every endpoint into the API router.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/portfolio/backend/internal/http/health"
	"github.com/portfolio/backend/internal/http/v1/contacts"
	"github.com/portfolio/backend/internal/http/v1/portfolio"
	"github.com/portfolio/backend/internal/mail"
	contactsvc "github.com/portfolio/backend/internal/service/contact"
	portfoliosvc "github.com/portfolio/backend/internal/service/portfolio"
)

// Deps carries the collaborators the handlers need.
type Deps struct {
	Contacts  contactsvc.Service
	Portfolio portfoliosvc.Service
	Notifier  *mail.Notifier

	// AdminAuth marks the admin operations (contact inbox management,
	// portfolio writes) with a bearer-auth requirement. The public
	// surface (submit, portfolio read, health) is never guarded.
	AdminAuth bool
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, deps Deps) {
	var adminSecurity []map[string][]string
	if deps.AdminAuth {
		adminSecurity = []map[string][]string{{"bearerAuth": {}}}
	}

	health.Register(api)
	contacts.Register(api, deps.Contacts, deps.Notifier, contacts.Options{
		AdminSecurity: adminSecurity,
	})
	portfolio.Register(api, deps.Portfolio, portfolio.Options{
		AdminSecurity: adminSecurity,
	})
}
