package listings

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"offerai-backend/internal/shared/server/respond"
)

// Handler exposes the listings browse flow over HTTP.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches listing routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/listings", h.search)
	rg.GET("/listings/cities", h.cities)
}

func (h *Handler) search(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "page must be a positive integer", nil)
			return
		}
		page = parsed
	}

	result, err := h.Repo.Search(c.Request.Context(), Query{
		Search: c.Query("search"),
		City:   c.Query("city"),
		Page:   page,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load listings", nil)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) cities(c *gin.Context) {
	cities, err := h.Repo.Cities(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load cities", nil)
		return
	}
	// "All" always leads the filter options.
	respond.OK(c, gin.H{"cities": append([]string{CityAll}, cities...)})
}
