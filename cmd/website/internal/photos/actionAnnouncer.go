package photos

import (
	"errors"
	"log/slog"

	"github.com/adampresley/springagram/pkg/models"
	"github.com/adampresley/springagram/pkg/services"
)

/*
actionAnnouncer turns the outcome of a delete or gallery assignment into a
live event. Photos added to a gallery are archived when archiving is on.
*/
type actionAnnouncer struct {
	archiveService services.ArchiveServicer
	eventPublisher services.EventPublisher
	position       int
}

func (a actionAnnouncer) OnPhotoDeleted(photo *models.PhotoResource) {
	a.publish(services.NewEvent(services.EventPhotoDeleted, photo.Name, a.position))
}

func (a actionAnnouncer) OnPhotoAddedToGallery(photo *models.PhotoResource, gallery *models.GalleryResource) {
	a.publish(services.NewEvent(services.EventPhotoAddedToGallery, photo.Name+" added to "+gallery.Description, a.position))

	if a.archiveService == nil {
		return
	}

	if err := a.archiveService.ArchivePhoto(photo); err != nil {
		if errors.Is(err, services.ErrNoImage) {
			slog.Debug("photo has no image to archive", "name", photo.Name)
			return
		}

		slog.Error("error archiving photo", "name", photo.Name, "error", err)
	}
}

func (a actionAnnouncer) OnNetworkError(message string) {
	a.publish(services.NewEvent(services.EventNetworkError, message, a.position))
}

func (a actionAnnouncer) publish(event services.Event) {
	if a.eventPublisher != nil {
		a.eventPublisher.Publish(event)
	}
}
