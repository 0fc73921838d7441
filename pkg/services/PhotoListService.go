package services

import (
	"fmt"
	"sync"

	"github.com/adampresley/springagram/pkg/models"
)

var (
	ErrPositionOutOfRange = fmt.Errorf("position is out of range")
)

type PhotoListServicer interface {
	Replace(photos []*models.PhotoResource)
	Get(position int) (*models.PhotoResource, error)
	RemoveAt(position int) (*models.PhotoResource, error)
	All() []*models.PhotoResource
	Len() int
}

/*
PhotoListService holds the photos currently on screen. Positions are
indexes into the list as last rendered, so removing an item shifts every
later item down by one.
*/
type PhotoListService struct {
	mu     *sync.RWMutex
	photos *[]*models.PhotoResource
}

func NewPhotoListService() PhotoListService {
	photos := []*models.PhotoResource{}

	return PhotoListService{
		mu:     &sync.RWMutex{},
		photos: &photos,
	}
}

func (s PhotoListService) Replace(photos []*models.PhotoResource) {
	copied := make([]*models.PhotoResource, len(photos))
	copy(copied, photos)

	s.mu.Lock()
	*s.photos = copied
	s.mu.Unlock()
}

func (s PhotoListService) Get(position int) (*models.PhotoResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if position < 0 || position >= len(*s.photos) {
		return nil, fmt.Errorf("error getting photo at position %d: %w", position, ErrPositionOutOfRange)
	}

	return (*s.photos)[position], nil
}

func (s PhotoListService) RemoveAt(position int) (*models.PhotoResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos := *s.photos

	if position < 0 || position >= len(photos) {
		return nil, fmt.Errorf("error removing photo at position %d: %w", position, ErrPositionOutOfRange)
	}

	removed := photos[position]
	result := make([]*models.PhotoResource, 0, len(photos)-1)
	result = append(result, photos[:position]...)
	result = append(result, photos[position+1:]...)
	*s.photos = result

	return removed, nil
}

func (s PhotoListService) All() []*models.PhotoResource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.PhotoResource, len(*s.photos))
	copy(result, *s.photos)
	return result
}

func (s PhotoListService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(*s.photos)
}
