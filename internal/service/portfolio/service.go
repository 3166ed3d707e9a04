// Package portfolio owns the singleton profile document describing the
// site owner.
package portfolio

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by append operations when no portfolio
// document exists yet. Plain fetches never return it: they create the
// default document instead.
var ErrNotFound = errors.New("portfolio not found")

// Skill is one entry in the ordered skill list.
type Skill struct {
	Name        string `firestore:"name"        json:"name"`
	Proficiency int    `firestore:"proficiency" json:"proficiency" doc:"Proficiency 0-100"`
}

// Experience is one entry in the ordered work-history list.
type Experience struct {
	Title       string `firestore:"title"       json:"title"`
	Company     string `firestore:"company"     json:"company"`
	Period      string `firestore:"period"      json:"period"`
	Description string `firestore:"description" json:"description"`
}

// Education is one entry in the ordered education list.
type Education struct {
	Degree      string `firestore:"degree"      json:"degree"`
	Institution string `firestore:"institution" json:"institution"`
	Year        string `firestore:"year"        json:"year"`
	Details     string `firestore:"details"     json:"details"`
}

// Portfolio is the singleton profile document.
type Portfolio struct {
	Name         string
	Title        string
	Bio          string
	Email        string
	Phone        string
	Location     string
	ProfileImage string
	Skills       []Skill
	Experience   []Experience
	Education    []Education
	SocialLinks  map[string]string
	UpdatedAt    time.Time
}

// UpdateParams carries a partial portfolio update. Nil fields are left
// untouched; slices and the social-links map replace the stored value
// wholesale when present.
type UpdateParams struct {
	Name         *string
	Title        *string
	Bio          *string
	Email        *string
	Phone        *string
	Location     *string
	ProfileImage *string
	Skills       []Skill
	Experience   []Experience
	Education    []Education
	SocialLinks  map[string]string
}

// Service defines portfolio persistence operations.
//
// GetOrCreate must be atomic: concurrent first fetches may not create
// more than one document. Update creates the document from params when
// none exists. The Add operations require an existing document and
// return the updated list only.
type Service interface {
	GetOrCreate(ctx context.Context) (*Portfolio, error)
	Update(ctx context.Context, params UpdateParams) (*Portfolio, error)
	AddSkill(ctx context.Context, skill Skill) ([]Skill, error)
	AddExperience(ctx context.Context, exp Experience) ([]Experience, error)
	AddEducation(ctx context.Context, edu Education) ([]Education, error)
}

// DefaultPortfolio returns the document created lazily on first fetch.
func DefaultPortfolio() *Portfolio {
	return &Portfolio{
		Name:  "Mohammad Ali Khan",
		Title: "Frontend Developer",
		Bio:   "Passionate frontend developer with expertise in HTML, CSS, and JavaScript",
		Email: "ali@example.com",
		SocialLinks: map[string]string{
			"facebook":  "https://www.facebook.com/alikhan",
			"instagram": "https://www.instagram.com/alikhan",
			"twitter":   "https://x.com/alikhan",
			"linkedin":  "https://www.linkedin.com/in/alikhan",
		},
		Skills: []Skill{
			{Name: "HTML", Proficiency: 90},
			{Name: "CSS", Proficiency: 85},
			{Name: "JavaScript", Proficiency: 80},
			{Name: "Python", Proficiency: 90},
			{Name: "Django", Proficiency: 80},
		},
		UpdatedAt: time.Now().UTC(),
	}
}

// merge applies params over p, field by field. Shallow by contract:
// nested collections are replaced, not merged.
func merge(p *Portfolio, params UpdateParams) {
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Title != nil {
		p.Title = *params.Title
	}
	if params.Bio != nil {
		p.Bio = *params.Bio
	}
	if params.Email != nil {
		p.Email = *params.Email
	}
	if params.Phone != nil {
		p.Phone = *params.Phone
	}
	if params.Location != nil {
		p.Location = *params.Location
	}
	if params.ProfileImage != nil {
		p.ProfileImage = *params.ProfileImage
	}
	if params.Skills != nil {
		p.Skills = params.Skills
	}
	if params.Experience != nil {
		p.Experience = params.Experience
	}
	if params.Education != nil {
		p.Education = params.Education
	}
	if params.SocialLinks != nil {
		p.SocialLinks = params.SocialLinks
	}
	p.UpdatedAt = time.Now().UTC()
}
