package services

import (
	"bytes"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/adampresley/springagram/pkg/models"
	"github.com/adampresley/springagram/pkg/photoimage"
)

const (
	archiveOriginalName  = "original.jpg"
	archiveThumbnailName = "thumbnail.jpg"
)

const archivePreviewMaxEdge uint = 1600

var (
	ErrNoImage   = fmt.Errorf("photo has no decoded image")
	ErrNoPhotoID = fmt.Errorf("photo has no self link to derive an id from")
)

type ArchivedPhoto struct {
	PhotoID      string
	ThumbnailKey string
	ThumbnailURL string
	ArchivedAt   time.Time
}

type ArchiveServicer interface {
	ArchivePhoto(photo *models.PhotoResource) error
	IsArchived(photo *models.PhotoResource) (bool, error)
	ListArchived() ([]ArchivedPhoto, error)
	StartCleanupRoutine(interval time.Duration)
	StopCleanupRoutine()
}

type ArchiveServiceConfig struct {
	Folder        string
	RetentionDays int
	Store         ObjectStore
}

/*
ArchiveService copies decoded photos into object storage as JPEG, one
folder per photo id. A retention of zero days keeps archives forever.
*/
type ArchiveService struct {
	folder        string
	retentionDays int
	store         ObjectStore

	cleanupTicker *time.Ticker
	stopCleanup   chan struct{}
	wg            *sync.WaitGroup
}

func NewArchiveService(config ArchiveServiceConfig) *ArchiveService {
	if config.Folder == "" {
		config.Folder = "archive"
	}

	return &ArchiveService{
		folder:        strings.Trim(config.Folder, "/"),
		retentionDays: config.RetentionDays,
		store:         config.Store,
		wg:            &sync.WaitGroup{},
	}
}

func (s *ArchiveService) ArchivePhoto(photo *models.PhotoResource) error {
	var (
		err       error
		original  []byte
		thumbnail []byte
	)

	id := photo.ID()

	if id == "" {
		return ErrNoPhotoID
	}

	if photo.Image == nil {
		return ErrNoImage
	}

	l := slog.With("photoID", id, "name", photo.Name)

	if original, err = photoimage.EncodeJPEG(photoimage.ScaleToMaxEdge(photo.Image, archivePreviewMaxEdge)); err != nil {
		return fmt.Errorf("error encoding original for photo '%s': %w", id, err)
	}

	thumbnailImage := photo.Thumbnail

	if thumbnailImage == nil {
		thumbnailImage = photoimage.ExtractThumbnail(photo.Image, photoimage.ThumbnailWidth, photoimage.ThumbnailHeight)
	}

	if thumbnail, err = photoimage.EncodeJPEG(thumbnailImage); err != nil {
		return fmt.Errorf("error encoding thumbnail for photo '%s': %w", id, err)
	}

	if err = s.store.PutObject(s.key(id, archiveOriginalName), bytes.NewReader(original)); err != nil {
		return fmt.Errorf("error archiving original for photo '%s': %w", id, err)
	}

	if err = s.store.PutObject(s.key(id, archiveThumbnailName), bytes.NewReader(thumbnail)); err != nil {
		return fmt.Errorf("error archiving thumbnail for photo '%s': %w", id, err)
	}

	l.Info("archived photo", "bytes", len(original)+len(thumbnail))
	return nil
}

func (s *ArchiveService) IsArchived(photo *models.PhotoResource) (bool, error) {
	id := photo.ID()

	if id == "" {
		return false, ErrNoPhotoID
	}

	return s.store.ObjectExists(s.key(id, archiveThumbnailName))
}

// ListArchived returns archived photos, newest first.
func (s *ArchiveService) ListArchived() ([]ArchivedPhoto, error) {
	var (
		err     error
		objects []StoredObject
	)

	result := []ArchivedPhoto{}

	if objects, err = s.store.ListObjects(s.folder, ".jpg"); err != nil {
		return result, fmt.Errorf("error listing archived photos: %w", err)
	}

	for _, obj := range objects {
		if path.Base(obj.Key) != archiveThumbnailName {
			continue
		}

		result = append(result, ArchivedPhoto{
			PhotoID:      path.Base(path.Dir(obj.Key)),
			ThumbnailKey: obj.Key,
			ThumbnailURL: obj.URL,
			ArchivedAt:   obj.LastModified,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ArchivedAt.After(result[j].ArchivedAt)
	})

	return result, nil
}

// StartCleanupRoutine periodically removes archives older than the retention period.
func (s *ArchiveService) StartCleanupRoutine(interval time.Duration) {
	if s.retentionDays <= 0 || s.cleanupTicker != nil {
		return
	}

	s.stopCleanup = make(chan struct{})
	s.cleanupTicker = time.NewTicker(interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			select {
			case <-s.cleanupTicker.C:
				s.cleanupExpired(time.Now())
			case <-s.stopCleanup:
				s.cleanupTicker.Stop()
				return
			}
		}
	}()

	slog.Info("archive cleanup routine started", "interval", interval, "retentionDays", s.retentionDays)
}

func (s *ArchiveService) StopCleanupRoutine() {
	if s.cleanupTicker == nil {
		return
	}

	close(s.stopCleanup)
	s.wg.Wait()
	s.cleanupTicker = nil

	slog.Info("archive cleanup routine stopped")
}

func (s *ArchiveService) cleanupExpired(now time.Time) int {
	var (
		err     error
		objects []StoredObject
	)

	l := slog.With("function", "cleanupExpired")
	cutoffTime := now.AddDate(0, 0, -s.retentionDays)
	removedCount := 0

	if objects, err = s.store.ListObjects(s.folder); err != nil {
		l.Error("failed to list archived objects", "error", err, "folder", s.folder)
		return 0
	}

	for _, obj := range objects {
		if !obj.LastModified.Before(cutoffTime) {
			continue
		}

		l.Info("removing expired archive object", "key", obj.Key, "modTime", obj.LastModified)

		if err = s.store.DeleteObject(obj.Key); err != nil {
			l.Error("failed to remove expired archive object", "error", err, "key", obj.Key)
			continue
		}

		removedCount++
	}

	l.Info("completed cleanup of expired archives", "removed", removedCount)
	return removedCount
}

func (s *ArchiveService) key(photoID, name string) string {
	return path.Join(s.folder, photoID, name)
}
