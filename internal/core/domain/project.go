package domain

import (
	"errors"
	"time"
)

// ProjectCategory classifies a portfolio project.
type ProjectCategory string

const (
	CategoryWebsite   ProjectCategory = "website"
	CategoryAIAgentic ProjectCategory = "ai-agentic"
	CategoryUIUX      ProjectCategory = "ui-ux"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrInvalidCategory = errors.New("invalid project category")
var ErrUnsupportedImage = errors.New("images only (jpg, jpeg, png)")

// Valid reports whether c is one of the closed set of categories.
func (c ProjectCategory) Valid() bool {
	switch c {
	case CategoryWebsite, CategoryAIAgentic, CategoryUIUX:
		return true
	}
	return false
}

// Project is a portfolio entry shown in the public gallery.
type Project struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	LiveURL     string          `json:"live_url,omitempty"`
	RepoURL     string          `json:"repo_url,omitempty"`
	Category    ProjectCategory `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}
