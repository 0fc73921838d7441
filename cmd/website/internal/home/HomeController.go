package home

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/springagram/cmd/website/internal/viewmodels"
	"github.com/adampresley/springagram/cmd/website/internal/waiters"
	"github.com/adampresley/springagram/pkg/models"
	"github.com/adampresley/springagram/pkg/services"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	ApiURL      string
	Renderer    rendering.TemplateRenderer
	TaskService services.TaskServicer
	WaitTimeout time.Duration
}

type HomeController struct {
	apiURL      string
	renderer    rendering.TemplateRenderer
	taskService services.TaskServicer
	waitTimeout time.Duration
}

func NewHomeController(config HomeControllerConfig) HomeController {
	if config.WaitTimeout <= 0 {
		config.WaitTimeout = 30 * time.Second
	}

	return HomeController{
		apiURL:      config.ApiURL,
		renderer:    config.Renderer,
		taskService: config.TaskService,
		waitTimeout: config.WaitTimeout,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	var (
		err  error
		root *models.ApiResource
	)

	pageName := "pages/home"

	viewData := viewmodels.HomePage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
		ApiURL: c.apiURL,
		Links:  []viewmodels.HomePageLink{},
	}

	ctx, cancel := context.WithTimeout(r.Context(), c.waitTimeout)
	defer cancel()

	waiter := waiters.NewRootWaiter()
	c.taskService.DownloadRootResource(c.apiURL, waiter)

	if root, err = waiter.Wait(ctx); err != nil || root == nil {
		slog.Error("root resource unavailable", "url", c.apiURL, "error", err)
		viewData.IsError = true
		viewData.Message = "The photo service could not be reached. Please try again later."

		c.renderer.Render(pageName, viewData, w)
		return
	}

	viewData.Links = LinksFor(root)
	c.renderer.Render(pageName, viewData, w)
}

// LinksFor lists the root's relations in name order, pointing the known ones at local pages.
func LinksFor(root *models.ApiResource) []viewmodels.HomePageLink {
	result := []viewmodels.HomePageLink{}

	for _, rel := range root.Rels() {
		link := viewmodels.HomePageLink{
			Rel:  rel,
			Href: root.Href(rel),
		}

		if rel == models.RelItems {
			link.Page = "/photos"
		}

		result = append(result, link)
	}

	return result
}
