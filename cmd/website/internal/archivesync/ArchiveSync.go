package archivesync

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/adampresley/springagram/pkg/hal"
	"github.com/adampresley/springagram/pkg/models"
	"github.com/adampresley/springagram/pkg/services"
	"github.com/alitto/pond/v2"
)

type ArchiveSyncer interface {
	Sync() (int, error)
}

type ArchiveSyncConfig struct {
	ApiURL             string
	ArchiveService     services.ArchiveServicer
	MaxWorkers         int
	ShutdownCtx        context.Context
	SpringagramService services.SpringagramServicer
}

/*
ArchiveSyncService walks every gallery the API knows about and archives
any photo in it that is not archived yet. It catches photos that were added
to galleries by other clients.
*/
type ArchiveSyncService struct {
	apiURL             string
	archiveService     services.ArchiveServicer
	maxWorkers         int
	shutdownCtx        context.Context
	springagramService services.SpringagramServicer
}

func NewArchiveSyncService(config ArchiveSyncConfig) ArchiveSyncService {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = 4
	}

	if config.ShutdownCtx == nil {
		config.ShutdownCtx = context.Background()
	}

	return ArchiveSyncService{
		apiURL:             config.ApiURL,
		archiveService:     config.ArchiveService,
		maxWorkers:         config.MaxWorkers,
		shutdownCtx:        config.ShutdownCtx,
		springagramService: config.SpringagramService,
	}
}

// Sync returns the number of photos archived by this run.
func (s ArchiveSyncService) Sync() (int, error) {
	var (
		err       error
		root      *models.ApiResource
		galleries *hal.Collection[*models.GalleryResource]
		archived  atomic.Int64
	)

	slog.Info("starting archive sync...")

	if root, err = s.springagramService.GetRoot(s.shutdownCtx, s.apiURL); err != nil {
		return 0, fmt.Errorf("error retrieving API root: %w", err)
	}

	galleriesURL := root.Href(models.RelGalleries)

	if galleriesURL == "" {
		return 0, fmt.Errorf("API root has no '%s' link", models.RelGalleries)
	}

	if galleries, err = s.springagramService.GetGalleries(s.shutdownCtx, galleriesURL); err != nil {
		return 0, fmt.Errorf("error retrieving galleries: %w", err)
	}

	slog.Info("syncing archive for galleries...", "numGalleries", galleries.Len())

	pool := pond.NewPool(s.maxWorkers, pond.WithContext(s.shutdownCtx))

	for _, gallery := range galleries.Items {
		photos, err := s.galleryPhotos(gallery)

		if err != nil {
			slog.Error("error retrieving photos for gallery", "gallery", gallery.SelfHref(), "error", err)
			continue
		}

		for _, photo := range photos {
			pool.Submit(func() {
				if s.archivePhoto(photo) {
					archived.Add(1)
				}
			})
		}
	}

	_ = pool.Stop().Wait()

	slog.Info("archive sync finished", "archived", archived.Load())
	return int(archived.Load()), nil
}

func (s ArchiveSyncService) galleryPhotos(gallery *models.GalleryResource) ([]*models.PhotoResource, error) {
	itemsURL := gallery.Href(models.RelItems)

	if itemsURL == "" {
		return []*models.PhotoResource{}, nil
	}

	photos, err := s.springagramService.GetPhotos(s.shutdownCtx, itemsURL)

	if err != nil {
		return nil, err
	}

	return photos.Items, nil
}

func (s ArchiveSyncService) archivePhoto(photo *models.PhotoResource) bool {
	if photo.Image == nil {
		return false
	}

	archived, err := s.archiveService.IsArchived(photo)

	if err != nil {
		slog.Error("error checking archive for photo", "name", photo.Name, "error", err)
		return false
	}

	if archived {
		return false
	}

	if err = s.archiveService.ArchivePhoto(photo); err != nil {
		slog.Error("error archiving photo", "name", photo.Name, "error", err)
		return false
	}

	return true
}
