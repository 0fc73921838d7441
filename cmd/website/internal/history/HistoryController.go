package history

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/springagram/cmd/website/internal/viewmodels"
	"github.com/adampresley/springagram/pkg/models"
	"github.com/adampresley/springagram/pkg/services"
)

type HistoryHandlers interface {
	HistoryPage(w http.ResponseWriter, r *http.Request)
}

type HistoryControllerConfig struct {
	HistoryService services.HistoryServicer
	Renderer       rendering.TemplateRenderer
}

type HistoryController struct {
	historyService services.HistoryServicer
	renderer       rendering.TemplateRenderer
}

func NewHistoryController(config HistoryControllerConfig) HistoryController {
	return HistoryController{
		historyService: config.HistoryService,
		renderer:       config.Renderer,
	}
}

/*
GET /history
*/
func (c HistoryController) HistoryPage(w http.ResponseWriter, r *http.Request) {
	var (
		err     error
		actions []models.PhotoAction
	)

	viewData := viewmodels.History{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
		Actions: []models.PhotoAction{},
	}

	limit := httphelpers.GetFromRequest[int](r, "limit")

	if actions, err = c.historyService.GetRecent(limit); err != nil {
		slog.Error("error getting photo history", "error", err)
		viewData.IsError = true
		viewData.Message = "An unexpected error occurred while reading the history."

		c.renderer.Render("pages/history", viewData, w)
		return
	}

	viewData.Actions = actions
	c.renderer.Render("pages/history", viewData, w)
}
