package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/adampresley/springagram/pkg/hal"
	"github.com/adampresley/springagram/pkg/models"
)

//go:generate mockgen -destination=../../mock/services/springagram.go -package=mock_services github.com/adampresley/springagram/pkg/services SpringagramServicer

var (
	ErrMissingLink = fmt.Errorf("resource has no such link")
	ErrMissingURL  = fmt.Errorf("url is required")
)

/*
NetworkError is a failure to reach the server at all: DNS, dial, reset,
timeout. It is kept apart from HTTP status errors because it is the one
failure shown to the user.
*/
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("I/O error on %s request for \"%s\": %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request for \"%s\" failed with status %s", e.Method, e.URL, e.Status)
}

func IsNetworkError(err error) bool {
	var networkErr *NetworkError
	return errors.As(err, &networkErr)
}

type SpringagramServicer interface {
	GetRoot(ctx context.Context, url string) (*models.ApiResource, error)
	GetPhotos(ctx context.Context, url string) (*hal.Collection[*models.PhotoResource], error)
	GetGalleries(ctx context.Context, url string) (*hal.Collection[*models.GalleryResource], error)
	DeletePhoto(ctx context.Context, photo *models.PhotoResource) error
	AddPhotoToGallery(ctx context.Context, photo *models.PhotoResource, gallery *models.GalleryResource) error
}

type SpringagramServiceConfig struct {
	HttpClient     *http.Client
	RequestTimeout time.Duration
	UserAgent      string
}

type SpringagramService struct {
	httpClient     *http.Client
	requestTimeout time.Duration
	userAgent      string
}

func NewSpringagramService(config SpringagramServiceConfig) SpringagramService {
	if config.HttpClient == nil {
		config.HttpClient = &http.Client{}
	}

	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}

	return SpringagramService{
		httpClient:     config.HttpClient,
		requestTimeout: config.RequestTimeout,
		userAgent:      config.UserAgent,
	}
}

func (s SpringagramService) GetRoot(ctx context.Context, url string) (*models.ApiResource, error) {
	result := &models.ApiResource{}

	if err := s.getResource(ctx, url, result); err != nil {
		return nil, fmt.Errorf("error fetching root resource: %w", err)
	}

	return result, nil
}

func (s SpringagramService) GetPhotos(ctx context.Context, url string) (*hal.Collection[*models.PhotoResource], error) {
	result := &hal.Collection[*models.PhotoResource]{}

	if err := s.getResource(ctx, url, result); err != nil {
		return nil, fmt.Errorf("error fetching photos: %w", err)
	}

	return result, nil
}

func (s SpringagramService) GetGalleries(ctx context.Context, url string) (*hal.Collection[*models.GalleryResource], error) {
	result := &hal.Collection[*models.GalleryResource]{}

	if err := s.getResource(ctx, url, result); err != nil {
		return nil, fmt.Errorf("error fetching galleries: %w", err)
	}

	return result, nil
}

func (s SpringagramService) DeletePhoto(ctx context.Context, photo *models.PhotoResource) error {
	self := photo.SelfHref()

	if self == "" {
		return fmt.Errorf("error deleting photo '%s': %w: %s", photo.Name, ErrMissingLink, hal.RelSelf)
	}

	if err := s.send(ctx, http.MethodDelete, self, "", nil); err != nil {
		return fmt.Errorf("error deleting photo '%s': %w", photo.Name, err)
	}

	return nil
}

/*
AddPhotoToGallery binds the photo to the gallery by PUTting the gallery's
self href, as text/uri-list, to the photo's gallery association link.
*/
func (s SpringagramService) AddPhotoToGallery(ctx context.Context, photo *models.PhotoResource, gallery *models.GalleryResource) error {
	association := photo.Href(models.RelGallery)

	if association == "" {
		return fmt.Errorf("error adding photo '%s' to gallery: %w: %s", photo.Name, ErrMissingLink, models.RelGallery)
	}

	galleryHref := gallery.SelfHref()

	if galleryHref == "" {
		return fmt.Errorf("error adding photo '%s' to gallery: %w: gallery %s", photo.Name, ErrMissingLink, hal.RelSelf)
	}

	if err := s.send(ctx, http.MethodPut, association, "text/uri-list", strings.NewReader(galleryHref)); err != nil {
		return fmt.Errorf("error adding photo '%s' to gallery '%s': %w", photo.Name, gallery.Description, err)
	}

	return nil
}

func (s SpringagramService) getResource(ctx context.Context, url string, dest any) error {
	var (
		err      error
		response *http.Response
	)

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	if response, err = s.do(ctx, http.MethodGet, url, "", nil); err != nil {
		return err
	}

	defer response.Body.Close()

	if err = hal.Decode(response.Body, dest); err != nil {
		if isTransportError(err) {
			return &NetworkError{Method: http.MethodGet, URL: url, Err: err}
		}

		return err
	}

	return nil
}

func (s SpringagramService) send(ctx context.Context, method, url, contentType string, body io.Reader) error {
	var (
		err      error
		response *http.Response
	)

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	if response, err = s.do(ctx, method, url, contentType, body); err != nil {
		return err
	}

	_, _ = io.Copy(io.Discard, response.Body)
	return response.Body.Close()
}

func (s SpringagramService) do(ctx context.Context, method, url, contentType string, body io.Reader) (*http.Response, error) {
	var (
		err      error
		request  *http.Request
		response *http.Response
	)

	if url == "" {
		return nil, ErrMissingURL
	}

	if request, err = http.NewRequestWithContext(ctx, method, url, body); err != nil {
		return nil, fmt.Errorf("error building %s request for '%s': %w", method, url, err)
	}

	request.Header.Set("Accept", hal.MediaType+", application/json")

	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	if s.userAgent != "" {
		request.Header.Set("User-Agent", s.userAgent)
	}

	if response, err = s.httpClient.Do(request); err != nil {
		return nil, &NetworkError{Method: method, URL: url, Err: err}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, response.Body)
		_ = response.Body.Close()

		return nil, &StatusError{
			Method:     method,
			URL:        url,
			StatusCode: response.StatusCode,
			Status:     response.Status,
		}
	}

	return response, nil
}

// isTransportError reports whether a body read failed because the connection did, not because the JSON was bad.
func isTransportError(err error) bool {
	var netErr net.Error

	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.As(err, &netErr)
}
