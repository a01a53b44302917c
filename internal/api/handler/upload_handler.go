package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tahadev/portfolio/internal/core/ports"
)

// UploadHandler handles the admin-only image upload endpoint. Uploaded images
// feed the image field of project records.
type UploadHandler struct {
	store ports.ImageStore
}

func NewUploadHandler(store ports.ImageStore) *UploadHandler {
	return &UploadHandler{store: store}
}

type uploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
}

// Upload handles POST /api/upload — admin only. Expects a multipart form with
// the file in an "image" field.
//
// @Summary      Upload a project image
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image file (jpg, jpeg, png)"
// @Success      201    {object}  uploadResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	url, err := h.store.Save(c.Request().Context(), fh.Filename, src)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, uploadResponse{
		Message:  "image uploaded",
		ImageURL: url,
	})
}
