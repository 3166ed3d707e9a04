package portfolio

import (
	portfoliosvc "github.com/portfolio/backend/internal/service/portfolio"
)

// GetInput for GET /api/portfolio
type GetInput struct{}

// UpdateInput for PUT /api/portfolio. Absent fields leave the stored
// value untouched; present collections replace the stored ones
// wholesale (shallow merge by contract).
type UpdateInput struct {
	Body struct {
		Name         *string                   `json:"name,omitempty"         doc:"Owner's name"`
		Title        *string                   `json:"title,omitempty"        doc:"Professional title"`
		Bio          *string                   `json:"bio,omitempty"          doc:"Short biography"`
		Email        *string                   `json:"email,omitempty"        doc:"Contact email"`
		Phone        *string                   `json:"phone,omitempty"        doc:"Contact phone"`
		Location     *string                   `json:"location,omitempty"     doc:"Location"`
		ProfileImage *string                   `json:"profileImage,omitempty" doc:"Profile image path"`
		Skills       []portfoliosvc.Skill      `json:"skills,omitempty"       doc:"Replacement skill list"`
		Experience   []portfoliosvc.Experience `json:"experience,omitempty"   doc:"Replacement work history"`
		Education    []portfoliosvc.Education  `json:"education,omitempty"    doc:"Replacement education history"`
		SocialLinks  map[string]string         `json:"socialLinks,omitempty"  doc:"Replacement social links"`
	}
}

// AddSkillInput for POST /api/portfolio/skills. Proficiency is a
// pointer so a missing value is distinguishable from an explicit zero.
type AddSkillInput struct {
	Body struct {
		Name        string `json:"name,omitempty"        required:"false" doc:"Skill name"`
		Proficiency *int   `json:"proficiency,omitempty" required:"false" doc:"Proficiency 0-100"`
	}
}

// AddExperienceInput for POST /api/portfolio/experience
type AddExperienceInput struct {
	Body struct {
		Title       string `json:"title,omitempty"       required:"false" doc:"Role title"`
		Company     string `json:"company,omitempty"     required:"false" doc:"Company name"`
		Period      string `json:"period,omitempty"      required:"false" doc:"Employment period"`
		Description string `json:"description,omitempty" required:"false" doc:"Role description"`
	}
}

// AddEducationInput for POST /api/portfolio/education
type AddEducationInput struct {
	Body struct {
		Degree      string `json:"degree,omitempty"      required:"false" doc:"Degree earned"`
		Institution string `json:"institution,omitempty" required:"false" doc:"Institution name"`
		Year        string `json:"year,omitempty"        required:"false" doc:"Graduation year"`
		Details     string `json:"details,omitempty"     required:"false" doc:"Additional details"`
	}
}
