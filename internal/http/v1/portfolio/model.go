package portfolio

import (
	"github.com/portfolio/backend/internal/platform/timeutil"
	portfoliosvc "github.com/portfolio/backend/internal/service/portfolio"
)

// Portfolio is the profile document representation returned to clients.
type Portfolio struct {
	Name         string                    `json:"name"                   doc:"Owner's name"`
	Title        string                    `json:"title"                  doc:"Professional title"`
	Bio          string                    `json:"bio"                    doc:"Short biography"`
	Email        string                    `json:"email"                  doc:"Contact email"`
	Phone        string                    `json:"phone,omitempty"        doc:"Contact phone"`
	Location     string                    `json:"location,omitempty"     doc:"Location"`
	ProfileImage string                    `json:"profileImage,omitempty" doc:"Profile image path"`
	Skills       []portfoliosvc.Skill      `json:"skills"                 doc:"Ordered skill list"`
	Experience   []portfoliosvc.Experience `json:"experience"             doc:"Ordered work history"`
	Education    []portfoliosvc.Education  `json:"education"              doc:"Ordered education history"`
	SocialLinks  map[string]string         `json:"socialLinks"            doc:"Platform name to profile URL"`
	UpdatedAt    timeutil.Time             `json:"updatedAt"              doc:"Last update timestamp"`
}

func toHTTPPortfolio(p *portfoliosvc.Portfolio) Portfolio {
	return Portfolio{
		Name:         p.Name,
		Title:        p.Title,
		Bio:          p.Bio,
		Email:        p.Email,
		Phone:        p.Phone,
		Location:     p.Location,
		ProfileImage: p.ProfileImage,
		Skills:       p.Skills,
		Experience:   p.Experience,
		Education:    p.Education,
		SocialLinks:  p.SocialLinks,
		UpdatedAt:    timeutil.NewTime(p.UpdatedAt),
	}
}
