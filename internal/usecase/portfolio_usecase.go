package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type portfolioUsecase struct {
	repo     domain.PortfolioRepository
	validate *validator.Validate
	profile  domain.Profile
}

func NewPortfolioUsecase(repo domain.PortfolioRepository, validate *validator.Validate, cfg *config.Config) domain.PortfolioUsecase {
	return &portfolioUsecase{
		repo:     repo,
		validate: validate,
		profile:  buildProfile(cfg),
	}
}

func (u *portfolioUsecase) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	filter.Category = strings.ToLower(strings.TrimSpace(filter.Category))
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	if err := u.validate.Struct(filter); err != nil {
		details := validation.FormatValidationErrors(err)
		return nil, apperror.BadRequest("Invalid project filter").WithDetails(details...)
	}

	projects, err := u.repo.ListProjects(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if filter.Category != "" && string(p.Category) != filter.Category {
			continue
		}
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (u *portfolioUsecase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	p, err := u.repo.GetProject(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return p, nil
}

func (u *portfolioUsecase) ListTechStack(ctx context.Context) ([]domain.TechCategory, error) {
	stack, err := u.repo.ListTechCategories(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stack, nil
}

func (u *portfolioUsecase) GetProfile(ctx context.Context) *domain.Profile {
	p := u.profile
	p.Socials = append([]domain.SocialLink(nil), u.profile.Socials...)
	return &p
}

func buildProfile(cfg *config.Config) domain.Profile {
	profile := domain.Profile{
		Name:     cfg.OwnerName,
		Title:    cfg.OwnerTitle,
		Email:    cfg.ContactEmailTo,
		Location: cfg.OwnerLocation,
	}
	links := []domain.SocialLink{
		{Label: "GitHub", URL: cfg.GitHubURL},
		{Label: "LinkedIn", URL: cfg.LinkedInURL},
		{Label: "WhatsApp", URL: cfg.WhatsAppURL},
	}
	for _, l := range links {
		if l.URL == "" {
			continue
		}
		l.Username = usernameFromURL(l.URL)
		profile.Socials = append(profile.Socials, l)
	}
	return profile
}

// usernameFromURL returns the last path segment, e.g. "TiL3Ss" for a GitHub URL
func usernameFromURL(u string) string {
	u = strings.TrimRight(u, "/")
	if i := strings.LastIndex(u, "/"); i >= 0 && i < len(u)-1 {
		return u[i+1:]
	}
	return ""
}
