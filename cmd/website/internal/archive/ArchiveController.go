package archive

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/springagram/cmd/website/internal/viewmodels"
	"github.com/adampresley/springagram/pkg/services"
)

type ArchiveHandlers interface {
	ArchivePage(w http.ResponseWriter, r *http.Request)
}

type ArchiveControllerConfig struct {
	ArchiveService services.ArchiveServicer
	Renderer       rendering.TemplateRenderer
}

type ArchiveController struct {
	archiveService services.ArchiveServicer
	renderer       rendering.TemplateRenderer
}

func NewArchiveController(config ArchiveControllerConfig) ArchiveController {
	return ArchiveController{
		archiveService: config.ArchiveService,
		renderer:       config.Renderer,
	}
}

/*
GET /archive
*/
func (c ArchiveController) ArchivePage(w http.ResponseWriter, r *http.Request) {
	var (
		err error
	)

	viewData := viewmodels.Archive{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
		},
		Enabled: c.archiveService != nil,
		Photos:  []services.ArchivedPhoto{},
	}

	if !viewData.Enabled {
		viewData.IsWarning = true
		viewData.Message = "Archiving is turned off."

		c.renderer.Render("pages/archive", viewData, w)
		return
	}

	if viewData.Photos, err = c.archiveService.ListArchived(); err != nil {
		slog.Error("error listing archived photos", "error", err)
		viewData.IsError = true
		viewData.Message = "There was a problem listing archived photos."
	}

	c.renderer.Render("pages/archive", viewData, w)
}
