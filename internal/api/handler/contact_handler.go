package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tahadev/portfolio/internal/api/metrics"
	"github.com/tahadev/portfolio/internal/core/ports"
)

// ContactHandler handles the public contact form endpoint.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type contactResponse struct {
	ID        string    `json:"id,omitempty"`
	Duplicate bool      `json:"duplicate,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Submit handles POST /api/contact — public. A repeat of a recent identical
// submission is accepted without creating a second record.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.Submit(c.Request().Context(), ports.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	if result.Duplicate {
		metrics.ContactMessagesTotal.WithLabelValues("duplicate").Inc()
		return c.JSON(http.StatusCreated, contactResponse{Duplicate: true})
	}

	metrics.ContactMessagesTotal.WithLabelValues("stored").Inc()
	return c.JSON(http.StatusCreated, contactResponse{
		ID:        result.Message.ID,
		CreatedAt: result.Message.CreatedAt,
	})
}
