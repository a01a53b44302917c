package handler

import (
	"time"

	"github.com/tahadev/portfolio/internal/core/domain"
)

type createProjectRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url"   validate:"required,url"`
	LiveURL     string `json:"live_url"    validate:"omitempty,url"`
	RepoURL     string `json:"repo_url"    validate:"omitempty,url"`
	Category    string `json:"category"    validate:"required,oneof=website ai-agentic ui-ux"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	LiveURL     string    `json:"live_url,omitempty"`
	RepoURL     string    `json:"repo_url,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

type listProjectsResponse struct {
	Data []projectResponse `json:"data"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		LiveURL:     p.LiveURL,
		RepoURL:     p.RepoURL,
		Category:    string(p.Category),
		CreatedAt:   p.CreatedAt,
	}
}
