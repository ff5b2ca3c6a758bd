package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offerai-backend/internal/profile"
	"offerai-backend/internal/shared/server/respond"
)

// Handler serves page metadata: navigation menus and form option sets.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler { return &Handler{} }

// RegisterRoutes attaches page routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/pages/:page", h.page)
}

type menuEntry struct {
	Page  string `json:"page"`
	Title string `json:"title"`
}

type pageResponse struct {
	Page    string              `json:"page"`
	Title   string              `json:"title"`
	Menu    []menuEntry         `json:"menu"`
	Options map[string][]string `json:"options,omitempty"`
}

func (h *Handler) page(c *gin.Context) {
	current, err := Parse(c.Param("page"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
		return
	}

	out := pageResponse{Page: current.String(), Title: current.Title()}
	for _, p := range Menu(current) {
		out.Menu = append(out.Menu, menuEntry{Page: p.String(), Title: p.Title()})
	}
	if current == PersonalInfo {
		out.Options = map[string][]string{
			"sex":             profile.SexOptions,
			"city":            profile.CityOptions,
			"university":      profile.UniversityOptions,
			"degree":          profile.DegreeOptions,
			"target_position": profile.TargetPositionOptions,
		}
	}
	respond.OK(c, out)
}
