package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusPlanning   ProjectStatus = "planning"
)

type ProjectCategory string

const (
	ProjectCategoryAPI           ProjectCategory = "api"
	ProjectCategoryMicroservices ProjectCategory = "microservices"
	ProjectCategoryFullstack     ProjectCategory = "fullstack"
	ProjectCategoryTools         ProjectCategory = "tools"
)

type Project struct {
	ID              string          `json:"id" yaml:"id" validate:"required,slug"`
	Title           string          `json:"title" yaml:"title" validate:"required"`
	Description     string          `json:"description" yaml:"description" validate:"required"`
	LongDescription string          `json:"long_description" yaml:"long_description"`
	Technologies    []string        `json:"technologies" yaml:"technologies" validate:"required,min=1"`
	Features        []string        `json:"features" yaml:"features"`
	DemoURL         string          `json:"demo_url,omitempty" yaml:"demo_url" validate:"omitempty,url"`
	GitHubURL       string          `json:"github_url,omitempty" yaml:"github_url" validate:"omitempty,url"`
	Status          ProjectStatus   `json:"status" yaml:"status" validate:"required,oneof=completed in-progress planning"`
	Category        ProjectCategory `json:"category" yaml:"category" validate:"required,oneof=api microservices fullstack tools"`
}

type Technology struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Color string `json:"color" yaml:"color" validate:"omitempty,oneof=orange burgundy navy"`
}

type TechCategory struct {
	ID           string       `json:"id" yaml:"id" validate:"required,slug"`
	Title        string       `json:"title" yaml:"title" validate:"required"`
	Description  string       `json:"description" yaml:"description"`
	Technologies []Technology `json:"technologies" yaml:"technologies" validate:"required,min=1,dive"`
}

type SocialLink struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	Username string `json:"username,omitempty"`
}

// Profile is the public owner card shown by the site
type Profile struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Email    string       `json:"email"`
	Location string       `json:"location,omitempty"`
	Socials  []SocialLink `json:"socials"`
}

// ProjectFilter narrows ListProjects; empty fields match everything
type ProjectFilter struct {
	Category string `form:"category" validate:"omitempty,oneof=api microservices fullstack tools"`
	Status   string `form:"status" validate:"omitempty,oneof=completed in-progress planning"`
}

// PortfolioRepository is the read-only source of showcase data
type PortfolioRepository interface {
	ListProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	ListTechCategories(ctx context.Context) ([]TechCategory, error)
}

type PortfolioUsecase interface {
	ListProjects(ctx context.Context, filter ProjectFilter) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	ListTechStack(ctx context.Context) ([]TechCategory, error)
	GetProfile(ctx context.Context) *Profile
}
