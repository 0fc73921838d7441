package services

import (
	"context"
	"log/slog"

	"github.com/adampresley/springagram/pkg/hal"
	"github.com/adampresley/springagram/pkg/models"
	"github.com/alitto/pond/v2"
)

// RootResourceListener receives the API root, or nil when it could not be fetched.
type RootResourceListener interface {
	OnResourceDownloadComplete(resource *models.ApiResource)
}

/*
PhotoDownloadListener receives the outcome of a photo list download. A
network failure arrives through OnNetworkError. Any other failure is logged
and arrives as a nil collection, which listeners ignore.
*/
type PhotoDownloadListener interface {
	OnDownloadPhotosComplete(photos *hal.Collection[*models.PhotoResource])
	OnNetworkError(message string)
}

type GalleryDownloadListener interface {
	OnDownloadGalleriesComplete(galleries *hal.Collection[*models.GalleryResource])
	OnNetworkError(message string)
}

/*
PhotoActionListener hears about deletes and gallery assignments. Only
success and network failure are reported; other failures are logged and
recorded in history.
*/
type PhotoActionListener interface {
	OnPhotoDeleted(photo *models.PhotoResource)
	OnPhotoAddedToGallery(photo *models.PhotoResource, gallery *models.GalleryResource)
	OnNetworkError(message string)
}

//go:generate mockgen -destination=../../mock/services/task.go -package=mock_services github.com/adampresley/springagram/pkg/services TaskServicer

type TaskServicer interface {
	DownloadRootResource(url string, listener RootResourceListener)
	DownloadPhotos(url string, listener PhotoDownloadListener)
	DownloadGalleries(url string, listener GalleryDownloadListener)
	DeletePhoto(photo *models.PhotoResource, listener PhotoActionListener)
	AddPhotoToGallery(photo *models.PhotoResource, gallery *models.GalleryResource, listener PhotoActionListener)
	Stop()
}

type TaskServiceConfig struct {
	HistoryService     HistoryServicer
	MaxWorkers         int
	ShutdownCtx        context.Context
	SpringagramService SpringagramServicer
}

/*
TaskService runs each API call as a one-shot task on a bounded pool and
hands the result to a listener from the worker goroutine. Nothing is
retried or cancelled other than by shutdown.
*/
type TaskService struct {
	historyService     HistoryServicer
	pool               pond.Pool
	shutdownCtx        context.Context
	springagramService SpringagramServicer
}

func NewTaskService(config TaskServiceConfig) TaskService {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = 4
	}

	if config.ShutdownCtx == nil {
		config.ShutdownCtx = context.Background()
	}

	return TaskService{
		historyService:     config.HistoryService,
		pool:               pond.NewPool(config.MaxWorkers, pond.WithContext(config.ShutdownCtx)),
		shutdownCtx:        config.ShutdownCtx,
		springagramService: config.SpringagramService,
	}
}

func (s TaskService) DownloadRootResource(url string, listener RootResourceListener) {
	s.pool.Submit(func() {
		root, err := s.springagramService.GetRoot(s.shutdownCtx, url)

		if err != nil {
			slog.Error("error downloading root resource", "url", url, "error", err)
			root = nil
		}

		if listener != nil {
			listener.OnResourceDownloadComplete(root)
		}
	})
}

func (s TaskService) DownloadPhotos(url string, listener PhotoDownloadListener) {
	s.pool.Submit(func() {
		photos, err := s.springagramService.GetPhotos(s.shutdownCtx, url)

		if err != nil {
			slog.Error("error downloading photos", "url", url, "error", err)
			photos = nil
		}

		if listener == nil {
			return
		}

		if IsNetworkError(err) {
			listener.OnNetworkError(err.Error())
			return
		}

		listener.OnDownloadPhotosComplete(photos)
	})
}

func (s TaskService) DownloadGalleries(url string, listener GalleryDownloadListener) {
	s.pool.Submit(func() {
		galleries, err := s.springagramService.GetGalleries(s.shutdownCtx, url)

		if err != nil {
			slog.Error("error downloading galleries", "url", url, "error", err)
			galleries = nil
		}

		if listener == nil {
			return
		}

		if IsNetworkError(err) {
			listener.OnNetworkError(err.Error())
			return
		}

		listener.OnDownloadGalleriesComplete(galleries)
	})
}

func (s TaskService) DeletePhoto(photo *models.PhotoResource, listener PhotoActionListener) {
	s.pool.Submit(func() {
		err := s.springagramService.DeletePhoto(s.shutdownCtx, photo)

		s.record(models.PhotoAction{
			Action:    models.ActionDelete,
			PhotoName: photo.Name,
			PhotoHref: photo.SelfHref(),
		}, err)

		s.notify(err, listener, func() {
			listener.OnPhotoDeleted(photo)
		})
	})
}

func (s TaskService) AddPhotoToGallery(photo *models.PhotoResource, gallery *models.GalleryResource, listener PhotoActionListener) {
	s.pool.Submit(func() {
		err := s.springagramService.AddPhotoToGallery(s.shutdownCtx, photo, gallery)

		s.record(models.PhotoAction{
			Action:     models.ActionAddToGallery,
			PhotoName:  photo.Name,
			PhotoHref:  photo.SelfHref(),
			TargetHref: gallery.SelfHref(),
		}, err)

		s.notify(err, listener, func() {
			listener.OnPhotoAddedToGallery(photo, gallery)
		})
	})
}

// Stop waits for queued and running tasks to finish.
func (s TaskService) Stop() {
	_ = s.pool.Stop().Wait()
}

func (s TaskService) notify(err error, listener PhotoActionListener, onSuccess func()) {
	if listener == nil {
		return
	}

	if err == nil {
		onSuccess()
		return
	}

	slog.Error("photo task failed", "error", err)

	if IsNetworkError(err) {
		listener.OnNetworkError(err.Error())
	}
}

func (s TaskService) record(action models.PhotoAction, err error) {
	if s.historyService == nil {
		return
	}

	action.Succeeded = err == nil

	if err != nil {
		action.ErrorMessage = err.Error()
	}

	if recordErr := s.historyService.Record(action); recordErr != nil {
		slog.Error("error recording photo action", "action", action.Action, "error", recordErr)
	}
}
