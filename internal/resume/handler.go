package resume

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"offerai-backend/internal/artifacts"
	"offerai-backend/internal/llm"
	"offerai-backend/internal/profile"
	"offerai-backend/internal/render"
	"offerai-backend/internal/shared/server/respond"
)

// Handler exposes the generation pipeline and PDF download over HTTP. It is
// the sole presenter of pipeline errors to the end user.
type Handler struct {
	Pipeline  *Pipeline
	Renderer  render.Renderer
	Artifacts *artifacts.Store
}

// NewHandler constructs a Handler.
func NewHandler(pipe *Pipeline, renderer render.Renderer, store *artifacts.Store) *Handler {
	return &Handler{Pipeline: pipe, Renderer: renderer, Artifacts: store}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.generate)
	rg.POST("/resumes/pdf", h.renderPDF)
	rg.GET("/resumes/pdf/:id", h.downloadPDF)
}

type generateResponse struct {
	Content string `json:"content"`
}

func (h *Handler) generate(c *gin.Context) {
	var p profile.UserProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	content, err := h.Pipeline.Generate(c.Request.Context(), p)
	if err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusUnprocessableEntity, string(verr.Kind), verr.Message, nil)
			return
		}
		genErr := llm.Classify(err)
		respond.Error(c, http.StatusBadGateway, string(genErr.Kind), genErr.Message, nil)
		return
	}

	respond.JSON(c, http.StatusOK, generateResponse{Content: content})
}

type renderPDFRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type renderPDFResponse struct {
	ArtifactID string `json:"artifactId"`
	FileName   string `json:"fileName"`
}

func (h *Handler) renderPDF(c *gin.Context) {
	var req renderPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Name == "" || req.Content == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name and content are required", nil)
		return
	}

	doc := render.BuildDocument(req.Content, req.Name)
	data, err := h.Renderer.Render(c.Request.Context(), doc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_error", "Error saving PDF: "+err.Error(), nil)
		return
	}

	artifact := h.Artifacts.Put(data)
	c.Set("artifactId", artifact.ID)
	respond.JSON(c, http.StatusCreated, renderPDFResponse{
		ArtifactID: artifact.ID,
		FileName:   artifact.FileName,
	})
}

func (h *Handler) downloadPDF(c *gin.Context) {
	artifact, err := h.Artifacts.Get(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "artifact not found or expired", nil)
		return
	}

	c.Set("artifactId", artifact.ID)
	c.Header("Content-Disposition", `attachment; filename="`+artifact.FileName+`"`)
	c.Data(http.StatusOK, artifact.MimeType, artifact.Data)
}
