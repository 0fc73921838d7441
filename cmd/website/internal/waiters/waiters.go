/*
Package waiters adapts task listeners into something a request handler can
block on. Each waiter receives exactly one completion.
*/
package waiters

import (
	"context"
	"fmt"

	"github.com/adampresley/springagram/pkg/hal"
	"github.com/adampresley/springagram/pkg/models"
)

/*
NetworkError is returned from Wait when the task reported a network
failure. The message is the one shown to the user.
*/
type NetworkError struct {
	Message string
}

func (e *NetworkError) Error() string {
	return e.Message
}

type outcome[T any] struct {
	value        T
	networkError string
}

type waiter[T any] struct {
	done chan outcome[T]
}

func newWaiter[T any]() waiter[T] {
	return waiter[T]{done: make(chan outcome[T], 1)}
}

func (w waiter[T]) complete(value T) {
	w.done <- outcome[T]{value: value}
}

func (w waiter[T]) fail(message string) {
	w.done <- outcome[T]{networkError: message}
}

func (w waiter[T]) wait(ctx context.Context) (T, error) {
	var zero T

	select {
	case <-ctx.Done():
		return zero, fmt.Errorf("gave up waiting for task: %w", ctx.Err())

	case o := <-w.done:
		if o.networkError != "" {
			return zero, &NetworkError{Message: o.networkError}
		}

		return o.value, nil
	}
}

type RootWaiter struct {
	waiter[*models.ApiResource]
}

func NewRootWaiter() RootWaiter {
	return RootWaiter{waiter: newWaiter[*models.ApiResource]()}
}

func (w RootWaiter) OnResourceDownloadComplete(resource *models.ApiResource) {
	w.complete(resource)
}

// Wait returns nil without an error when the root could not be fetched.
func (w RootWaiter) Wait(ctx context.Context) (*models.ApiResource, error) {
	return w.wait(ctx)
}

type PhotosWaiter struct {
	waiter[*hal.Collection[*models.PhotoResource]]
}

func NewPhotosWaiter() PhotosWaiter {
	return PhotosWaiter{waiter: newWaiter[*hal.Collection[*models.PhotoResource]]()}
}

func (w PhotosWaiter) OnDownloadPhotosComplete(photos *hal.Collection[*models.PhotoResource]) {
	w.complete(photos)
}

func (w PhotosWaiter) OnNetworkError(message string) {
	w.fail(message)
}

func (w PhotosWaiter) Wait(ctx context.Context) (*hal.Collection[*models.PhotoResource], error) {
	return w.wait(ctx)
}

type GalleriesWaiter struct {
	waiter[*hal.Collection[*models.GalleryResource]]
}

func NewGalleriesWaiter() GalleriesWaiter {
	return GalleriesWaiter{waiter: newWaiter[*hal.Collection[*models.GalleryResource]]()}
}

func (w GalleriesWaiter) OnDownloadGalleriesComplete(galleries *hal.Collection[*models.GalleryResource]) {
	w.complete(galleries)
}

func (w GalleriesWaiter) OnNetworkError(message string) {
	w.fail(message)
}

func (w GalleriesWaiter) Wait(ctx context.Context) (*hal.Collection[*models.GalleryResource], error) {
	return w.wait(ctx)
}
