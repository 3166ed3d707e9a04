package portfolio

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	apiinternal "github.com/portfolio/backend/internal/api"
	"github.com/portfolio/backend/internal/respond"
	portfoliosvc "github.com/portfolio/backend/internal/service/portfolio"
)

// Options configures portfolio endpoint registration.
type Options struct {
	// AdminSecurity is attached to the write operations. Empty leaves
	// them open.
	AdminSecurity []map[string][]string
}

// Register wires the portfolio endpoints.
func Register(api huma.API, svc portfoliosvc.Service, opts Options) {
	huma.Register(api, huma.Operation{
		OperationID: "get-portfolio",
		Method:      http.MethodGet,
		Path:        "/api/portfolio",
		Summary:     "Fetch the portfolio",
		Description: "Returns the profile document, creating it with defaults on first fetch.",
		Tags:        []string{"Portfolio"},
	}, func(ctx context.Context, _ *GetInput) (*respond.Body[Portfolio], error) {
		p, err := svc.GetOrCreate(ctx)
		if err != nil {
			return nil, respond.ServerError(ctx, "Failed to fetch portfolio", err)
		}
		out := respond.Body[Portfolio]{}
		out.Body = apiinternal.Success(toHTTPPortfolio(p))
		return &out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-portfolio",
		Method:      http.MethodPut,
		Path:        "/api/portfolio",
		Summary:     "Update portfolio fields",
		Description: "Merges the provided fields over the stored document. Collections are replaced wholesale.",
		Tags:        []string{"Portfolio"},
		Security:    opts.AdminSecurity,
	}, func(ctx context.Context, input *UpdateInput) (*respond.Body[Portfolio], error) {
		p, err := svc.Update(ctx, portfoliosvc.UpdateParams{
			Name:         input.Body.Name,
			Title:        input.Body.Title,
			Bio:          input.Body.Bio,
			Email:        input.Body.Email,
			Phone:        input.Body.Phone,
			Location:     input.Body.Location,
			ProfileImage: input.Body.ProfileImage,
			Skills:       input.Body.Skills,
			Experience:   input.Body.Experience,
			Education:    input.Body.Education,
			SocialLinks:  input.Body.SocialLinks,
		})
		if err != nil {
			return nil, respond.ServerError(ctx, "Failed to update portfolio", err)
		}
		out := respond.Body[Portfolio]{}
		out.Body = apiinternal.SuccessMessage("Portfolio updated successfully", toHTTPPortfolio(p))
		return &out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-portfolio-skill",
		Method:      http.MethodPost,
		Path:        "/api/portfolio/skills",
		Summary:     "Append a skill",
		Tags:        []string{"Portfolio"},
		Security:    opts.AdminSecurity,
	}, func(ctx context.Context, input *AddSkillInput) (*respond.Body[[]portfoliosvc.Skill], error) {
		name := strings.TrimSpace(input.Body.Name)
		if name == "" || input.Body.Proficiency == nil {
			return nil, respond.Error(ctx, http.StatusBadRequest, "Name and proficiency are required")
		}
		if *input.Body.Proficiency < 0 || *input.Body.Proficiency > 100 {
			return nil, respond.Error(ctx, http.StatusBadRequest, "Proficiency must be between 0 and 100")
		}

		skills, err := svc.AddSkill(ctx, portfoliosvc.Skill{
			Name:        name,
			Proficiency: *input.Body.Proficiency,
		})
		if err != nil {
			return nil, mapPortfolioError(ctx, err, "Failed to add skill")
		}
		out := respond.Body[[]portfoliosvc.Skill]{}
		out.Body = apiinternal.SuccessMessage("Skill added successfully", skills)
		return &out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-portfolio-experience",
		Method:      http.MethodPost,
		Path:        "/api/portfolio/experience",
		Summary:     "Append an experience entry",
		Tags:        []string{"Portfolio"},
		Security:    opts.AdminSecurity,
	}, func(ctx context.Context, input *AddExperienceInput) (*respond.Body[[]portfoliosvc.Experience], error) {
		entries, err := svc.AddExperience(ctx, portfoliosvc.Experience{
			Title:       input.Body.Title,
			Company:     input.Body.Company,
			Period:      input.Body.Period,
			Description: input.Body.Description,
		})
		if err != nil {
			return nil, mapPortfolioError(ctx, err, "Failed to add experience")
		}
		out := respond.Body[[]portfoliosvc.Experience]{}
		out.Body = apiinternal.SuccessMessage("Experience added successfully", entries)
		return &out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-portfolio-education",
		Method:      http.MethodPost,
		Path:        "/api/portfolio/education",
		Summary:     "Append an education entry",
		Tags:        []string{"Portfolio"},
		Security:    opts.AdminSecurity,
	}, func(ctx context.Context, input *AddEducationInput) (*respond.Body[[]portfoliosvc.Education], error) {
		entries, err := svc.AddEducation(ctx, portfoliosvc.Education{
			Degree:      input.Body.Degree,
			Institution: input.Body.Institution,
			Year:        input.Body.Year,
			Details:     input.Body.Details,
		})
		if err != nil {
			return nil, mapPortfolioError(ctx, err, "Failed to add education")
		}
		out := respond.Body[[]portfoliosvc.Education]{}
		out.Body = apiinternal.SuccessMessage("Education added successfully", entries)
		return &out, nil
	})
}

func mapPortfolioError(ctx context.Context, err error, failMsg string) error {
	if errors.Is(err, portfoliosvc.ErrNotFound) {
		return respond.Error(ctx, http.StatusNotFound, "Portfolio not found")
	}
	return respond.ServerError(ctx, failMsg, err)
}
