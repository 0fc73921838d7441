package photos

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/springagram/cmd/website/internal/viewmodels"
	"github.com/adampresley/springagram/cmd/website/internal/waiters"
	"github.com/adampresley/springagram/pkg/hal"
	"github.com/adampresley/springagram/pkg/models"
	"github.com/adampresley/springagram/pkg/photoimage"
	"github.com/adampresley/springagram/pkg/services"
)

const (
	detailMaxEdge   uint = 1024
	networkErrorMsg      = "A network error occurred: %s"
)

var (
	ErrNoSuchLink  = fmt.Errorf("the API root does not offer that link")
	errRootMissing = fmt.Errorf("root resource unavailable")
)

type PhotoHandlers interface {
	PhotoListPage(w http.ResponseWriter, r *http.Request)
	PhotoPage(w http.ResponseWriter, r *http.Request)
	DeletePhotoAction(w http.ResponseWriter, r *http.Request)
	GallerySelectPage(w http.ResponseWriter, r *http.Request)
	AddToGalleryAction(w http.ResponseWriter, r *http.Request)
}

type PhotoControllerConfig struct {
	ApiURL         string
	ArchiveService services.ArchiveServicer
	EventPublisher services.EventPublisher
	PhotoList      services.PhotoListServicer
	Renderer       rendering.TemplateRenderer
	TaskService    services.TaskServicer
	WaitTimeout    time.Duration
}

type PhotoController struct {
	apiURL         string
	archiveService services.ArchiveServicer
	eventPublisher services.EventPublisher
	photoList      services.PhotoListServicer
	renderer       rendering.TemplateRenderer
	taskService    services.TaskServicer
	waitTimeout    time.Duration

	state *listState
}

// listState remembers the paging links of the list currently held.
type listState struct {
	mu     sync.Mutex
	loaded bool
	links  hal.Resource
	page   *hal.Page
}

func NewPhotoController(config PhotoControllerConfig) PhotoController {
	if config.WaitTimeout <= 0 {
		config.WaitTimeout = 30 * time.Second
	}

	return PhotoController{
		apiURL:         config.ApiURL,
		archiveService: config.ArchiveService,
		eventPublisher: config.EventPublisher,
		photoList:      config.PhotoList,
		renderer:       config.Renderer,
		taskService:    config.TaskService,
		waitTimeout:    config.WaitTimeout,
		state:          &listState{},
	}
}

/*
GET /photos
*/
func (c PhotoController) PhotoListPage(w http.ResponseWriter, r *http.Request) {
	var (
		err        error
		photosURL  string
		collection *hal.Collection[*models.PhotoResource]
	)

	pageName := "pages/photos"

	viewData := viewmodels.PhotoList{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{viewmodels.EventsScript},
		},
	}

	if r.URL.Query().Get("reload") == "false" && c.isLoaded() {
		c.fillList(&viewData)
		c.renderer.Render(pageName, viewData, w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), c.waitTimeout)
	defer cancel()

	if page := r.URL.Query().Get("page"); page != "" {
		if !SameOrigin(c.apiURL, page) {
			slog.Warn("refusing page link outside the API", "page", page)
			httphelpers.WriteText(w, http.StatusBadRequest, "invalid page link")
			return
		}

		photosURL = page
	} else if photosURL, err = c.discover(ctx, models.RelItems); err != nil {
		c.renderDiscoveryError(pageName, &viewData, err, w)
		return
	}

	waiter := waiters.NewPhotosWaiter()
	c.taskService.DownloadPhotos(photosURL, waiter)

	if collection, err = waiter.Wait(ctx); err != nil {
		c.handleWaitError(&viewData.BaseViewModel, err)
		c.fillList(&viewData)
		c.renderer.Render(pageName, viewData, w)
		return
	}

	if collection != nil {
		c.hold(collection)
		c.publish(services.NewEvent(services.EventPhotosDownloaded, fmt.Sprintf("%d photos", collection.Len()), -1))
	}

	c.fillList(&viewData)
	c.renderer.Render(pageName, viewData, w)
}

/*
GET /photos/{position}
*/
func (c PhotoController) PhotoPage(w http.ResponseWriter, r *http.Request) {
	var (
		err       error
		imageData string
	)

	position, photo, ok := c.photoAt(w, r)
	if !ok {
		return
	}

	viewData := viewmodels.PhotoDetail{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{viewmodels.EventsScript},
		},
		Position: position,
		Name:     photo.Name,
		SelfHref: photo.SelfHref(),
	}

	if photo.Image == nil {
		viewData.IsWarning = true
		viewData.Message = "This photo has no image that can be displayed."
	} else if imageData, err = photoimage.EncodeDataURI(photoimage.ScaleToMaxEdge(photo.Image, detailMaxEdge)); err != nil {
		slog.Error("error encoding photo for display", "name", photo.Name, "error", err)
		viewData.IsError = true
		viewData.Message = "This photo could not be displayed."
	} else {
		viewData.ImageData = template.URL(imageData)
	}

	c.renderer.Render("pages/photo", viewData, w)
}

/*
POST /photos/{position}/delete
*/
func (c PhotoController) DeletePhotoAction(w http.ResponseWriter, r *http.Request) {
	var (
		err   error
		photo *models.PhotoResource
	)

	position, ok := positionFrom(w, r)
	if !ok {
		return
	}

	if photo, err = c.photoList.RemoveAt(position); err != nil {
		httphelpers.WriteText(w, http.StatusNotFound, "photo not found")
		return
	}

	c.taskService.DeletePhoto(photo, c.announcer(position))
	http.Redirect(w, r, "/photos?reload=false", http.StatusSeeOther)
}

/*
GET /photos/{position}/gallery
*/
func (c PhotoController) GallerySelectPage(w http.ResponseWriter, r *http.Request) {
	var (
		err       error
		galleries *hal.Collection[*models.GalleryResource]
	)

	pageName := "pages/gallery-select"

	position, photo, ok := c.photoAt(w, r)
	if !ok {
		return
	}

	viewData := viewmodels.GallerySelect{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{viewmodels.EventsScript},
		},
		Position:      position,
		PhotoName:     photo.Name,
		ThumbnailData: thumbnailData(photo),
		Galleries:     []viewmodels.GalleryOption{},
	}

	if !photo.HasLink(models.RelGallery) {
		viewData.IsWarning = true
		viewData.Message = "This photo cannot be added to a gallery."
		c.renderer.Render(pageName, viewData, w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), c.waitTimeout)
	defer cancel()

	if galleries, err = c.downloadGalleries(ctx); err != nil {
		c.handleWaitError(&viewData.BaseViewModel, err)
		c.renderer.Render(pageName, viewData, w)
		return
	}

	for _, gallery := range galleries.Items {
		viewData.Galleries = append(viewData.Galleries, viewmodels.GalleryOption{
			Href:        gallery.SelfHref(),
			Description: gallery.Description,
		})
	}

	c.renderer.Render(pageName, viewData, w)
}

/*
POST /photos/{position}/gallery
*/
func (c PhotoController) AddToGalleryAction(w http.ResponseWriter, r *http.Request) {
	var (
		err       error
		galleries *hal.Collection[*models.GalleryResource]
		chosen    *models.GalleryResource
	)

	position, photo, ok := c.photoAt(w, r)
	if !ok {
		return
	}

	galleryHref := r.FormValue("gallery")

	if galleryHref == "" {
		httphelpers.WriteText(w, http.StatusBadRequest, "choose a gallery")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), c.waitTimeout)
	defer cancel()

	if galleries, err = c.downloadGalleries(ctx); err != nil {
		slog.Error("error downloading galleries", "error", err)
		httphelpers.WriteText(w, http.StatusBadGateway, "galleries are unavailable")
		return
	}

	for _, gallery := range galleries.Items {
		if gallery.SelfHref() == galleryHref {
			chosen = gallery
			break
		}
	}

	if chosen == nil {
		httphelpers.WriteText(w, http.StatusBadRequest, "unknown gallery")
		return
	}

	c.taskService.AddPhotoToGallery(photo, chosen, c.announcer(position))
	http.Redirect(w, r, "/photos?reload=false", http.StatusSeeOther)
}

// photoAt resolves the {position} path value against the held list, writing an error response when it cannot.
func (c PhotoController) photoAt(w http.ResponseWriter, r *http.Request) (int, *models.PhotoResource, bool) {
	var (
		err   error
		photo *models.PhotoResource
	)

	position, ok := positionFrom(w, r)
	if !ok {
		return 0, nil, false
	}

	if photo, err = c.photoList.Get(position); err != nil {
		httphelpers.WriteText(w, http.StatusNotFound, "photo not found")
		return position, nil, false
	}

	return position, photo, true
}

func positionFrom(w http.ResponseWriter, r *http.Request) (int, bool) {
	position, err := strconv.Atoi(r.PathValue("position"))

	if err != nil {
		httphelpers.WriteText(w, http.StatusBadRequest, "invalid position")
		return 0, false
	}

	return position, true
}

func (c PhotoController) discover(ctx context.Context, rel string) (string, error) {
	var (
		err  error
		root *models.ApiResource
	)

	waiter := waiters.NewRootWaiter()
	c.taskService.DownloadRootResource(c.apiURL, waiter)

	if root, err = waiter.Wait(ctx); err != nil {
		return "", err
	}

	if root == nil {
		return "", errRootMissing
	}

	href := root.Href(rel)

	if href == "" {
		return "", fmt.Errorf("%w: %s", ErrNoSuchLink, rel)
	}

	return href, nil
}

func (c PhotoController) downloadGalleries(ctx context.Context) (*hal.Collection[*models.GalleryResource], error) {
	var (
		err          error
		galleriesURL string
		galleries    *hal.Collection[*models.GalleryResource]
	)

	if galleriesURL, err = c.discover(ctx, models.RelGalleries); err != nil {
		return nil, err
	}

	waiter := waiters.NewGalleriesWaiter()
	c.taskService.DownloadGalleries(galleriesURL, waiter)

	if galleries, err = waiter.Wait(ctx); err != nil {
		return nil, err
	}

	if galleries == nil {
		return nil, fmt.Errorf("galleries could not be read from '%s'", galleriesURL)
	}

	return galleries, nil
}

func (c PhotoController) hold(collection *hal.Collection[*models.PhotoResource]) {
	c.photoList.Replace(collection.Items)

	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	c.state.loaded = true
	c.state.links = collection.Resource
	c.state.page = collection.Page
}

func (c PhotoController) isLoaded() bool {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	return c.state.loaded
}

func (c PhotoController) fillList(viewData *viewmodels.PhotoList) {
	c.state.mu.Lock()
	links := c.state.links
	page := c.state.page
	c.state.mu.Unlock()

	viewData.Photos = []viewmodels.PhotoListItem{}

	for position, photo := range c.photoList.All() {
		viewData.Photos = append(viewData.Photos, viewmodels.PhotoListItem{
			Position:      position,
			Name:          photo.Name,
			ThumbnailData: thumbnailData(photo),
			CanDelete:     photo.HasLink(hal.RelSelf),
			CanAddGallery: photo.HasLink(models.RelGallery),
		})
	}

	viewData.NextPageURL = pageURL(links.Href(hal.RelNext))
	viewData.PrevPageURL = pageURL(links.Href(hal.RelPrev))

	if page != nil {
		viewData.TotalElements = page.TotalElements
		viewData.PageNumber = page.Number + 1
		viewData.TotalPages = page.TotalPages
	}
}

func (c PhotoController) renderDiscoveryError(pageName string, viewData *viewmodels.PhotoList, err error, w http.ResponseWriter) {
	c.handleWaitError(&viewData.BaseViewModel, err)
	c.fillList(viewData)
	c.renderer.Render(pageName, *viewData, w)
}

func (c PhotoController) handleWaitError(viewData *viewmodels.BaseViewModel, err error) {
	var networkErr *waiters.NetworkError

	if errors.As(err, &networkErr) {
		c.publish(services.NewEvent(services.EventNetworkError, networkErr.Message, -1))
		viewData.IsError = true
		viewData.Message = fmt.Sprintf(networkErrorMsg, networkErr.Message)
		return
	}

	slog.Error("photo service request failed", "error", err)
	viewData.IsWarning = true
	viewData.Message = "The photo service did not return anything usable."
}

func (c PhotoController) publish(event services.Event) {
	if c.eventPublisher != nil {
		c.eventPublisher.Publish(event)
	}
}

func (c PhotoController) announcer(position int) actionAnnouncer {
	return actionAnnouncer{
		archiveService: c.archiveService,
		eventPublisher: c.eventPublisher,
		position:       position,
	}
}

// thumbnailData encodes our own decoded thumbnail, so the data URI is trusted in an img src.
func thumbnailData(photo *models.PhotoResource) template.URL {
	if photo.Thumbnail == nil {
		return ""
	}

	result, err := photoimage.EncodeDataURI(photo.Thumbnail)

	if err != nil {
		slog.Error("error encoding thumbnail", "name", photo.Name, "error", err)
		return ""
	}

	return template.URL(result)
}

func pageURL(href string) string {
	if href == "" {
		return ""
	}

	return "/photos?page=" + url.QueryEscape(href)
}

// SameOrigin reports whether href points at the same scheme and host as apiURL.
func SameOrigin(apiURL, href string) bool {
	api, err := url.Parse(apiURL)
	if err != nil {
		return false
	}

	target, err := url.Parse(href)
	if err != nil {
		return false
	}

	return target.Scheme == api.Scheme && target.Host == api.Host
}
