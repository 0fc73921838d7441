package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_services "github.com/adampresley/springagram/mock/services"
	"github.com/adampresley/springagram/pkg/hal"
	"github.com/adampresley/springagram/pkg/models"
	"github.com/adampresley/springagram/pkg/services"
	"github.com/golang/mock/gomock"
)

type listenerResult struct {
	root         *models.ApiResource
	photos       *hal.Collection[*models.PhotoResource]
	galleries    *hal.Collection[*models.GalleryResource]
	deleted      *models.PhotoResource
	added        *models.PhotoResource
	networkError string
}

type chanListener struct {
	results chan listenerResult
}

func newChanListener() chanListener {
	return chanListener{results: make(chan listenerResult, 4)}
}

func (l chanListener) OnResourceDownloadComplete(resource *models.ApiResource) {
	l.results <- listenerResult{root: resource}
}

func (l chanListener) OnDownloadPhotosComplete(photos *hal.Collection[*models.PhotoResource]) {
	l.results <- listenerResult{photos: photos}
}

func (l chanListener) OnDownloadGalleriesComplete(galleries *hal.Collection[*models.GalleryResource]) {
	l.results <- listenerResult{galleries: galleries}
}

func (l chanListener) OnPhotoDeleted(photo *models.PhotoResource) {
	l.results <- listenerResult{deleted: photo}
}

func (l chanListener) OnPhotoAddedToGallery(photo *models.PhotoResource, gallery *models.GalleryResource) {
	l.results <- listenerResult{added: photo}
}

func (l chanListener) OnNetworkError(message string) {
	l.results <- listenerResult{networkError: message}
}

func (l chanListener) wait(t *testing.T) listenerResult {
	t.Helper()

	select {
	case r := <-l.results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for listener")
	}

	return listenerResult{}
}

func (l chanListener) expectNothing(t *testing.T) {
	t.Helper()

	select {
	case r := <-l.results:
		t.Fatalf("expected no callback but got %+v", r)
	default:
	}
}

func networkErr() error {
	return &services.NetworkError{Method: "GET", URL: "http://api/items", Err: errors.New("connection refused")}
}

func statusErr() error {
	return &services.StatusError{Method: "GET", URL: "http://api/items", StatusCode: 500, Status: "500 Internal Server Error"}
}

func newTaskService(api services.SpringagramServicer, history services.HistoryServicer) services.TaskService {
	return services.NewTaskService(services.TaskServiceConfig{
		HistoryService:     history,
		MaxWorkers:         2,
		ShutdownCtx:        context.Background(),
		SpringagramService: api,
	})
}

func TestDownloadRootResource(t *testing.T) {
	type tc struct {
		name      string
		resource  *models.ApiResource
		err       error
		expectNil bool
	}

	tcs := []tc{
		{name: "success", resource: &models.ApiResource{}, expectNil: false},
		{name: "network failure yields nil", err: networkErr(), expectNil: true},
		{name: "status failure yields nil", err: statusErr(), expectNil: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock_services.NewMockSpringagramServicer(ctrl)
			api.EXPECT().GetRoot(gomock.Any(), "http://api").Return(tc.resource, tc.err)

			s := newTaskService(api, nil)
			listener := newChanListener()

			s.DownloadRootResource("http://api", listener)
			got := listener.wait(t)
			s.Stop()

			if (got.root == nil) != tc.expectNil {
				t.Fatalf("expected nil root %v but got %+v", tc.expectNil, got.root)
			}
		})
	}
}

func TestDownloadPhotos(t *testing.T) {
	type tc struct {
		name               string
		photos             *hal.Collection[*models.PhotoResource]
		err                error
		expectPhotos       bool
		expectNetworkError bool
	}

	collection := &hal.Collection[*models.PhotoResource]{
		Items: []*models.PhotoResource{{Name: "a.png"}},
	}

	tcs := []tc{
		{name: "success", photos: collection, expectPhotos: true},
		{name: "network failure is reported", err: networkErr(), expectNetworkError: true},
		{name: "other failure completes with nil", err: statusErr()},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock_services.NewMockSpringagramServicer(ctrl)
			api.EXPECT().GetPhotos(gomock.Any(), "http://api/items").Return(tc.photos, tc.err)

			s := newTaskService(api, nil)
			listener := newChanListener()

			s.DownloadPhotos("http://api/items", listener)
			got := listener.wait(t)
			s.Stop()

			if (got.photos != nil) != tc.expectPhotos {
				t.Fatalf("expected photos %v but got %+v", tc.expectPhotos, got.photos)
			}

			if (got.networkError != "") != tc.expectNetworkError {
				t.Fatalf("expected network error %v but got '%s'", tc.expectNetworkError, got.networkError)
			}

			listener.expectNothing(t)
		})
	}
}

func TestDownloadGalleriesNetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_services.NewMockSpringagramServicer(ctrl)
	api.EXPECT().GetGalleries(gomock.Any(), "http://api/galleries").Return(nil, networkErr())

	s := newTaskService(api, nil)
	listener := newChanListener()

	s.DownloadGalleries("http://api/galleries", listener)
	got := listener.wait(t)
	s.Stop()

	if got.networkError == "" {
		t.Fatalf("expected a network error but got %+v", got)
	}
}

func TestDeletePhotoRecordsHistory(t *testing.T) {
	type tc struct {
		name               string
		err                error
		expectDeleted      bool
		expectNetworkError bool
		expectSucceeded    bool
	}

	tcs := []tc{
		{name: "success", expectDeleted: true, expectSucceeded: true},
		{name: "network failure", err: networkErr(), expectNetworkError: true},
		{name: "status failure is silent", err: statusErr()},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock_services.NewMockSpringagramServicer(ctrl)
			history := mock_services.NewMockHistoryServicer(ctrl)

			photo := &models.PhotoResource{Name: "cat.png"}
			recorded := make(chan models.PhotoAction, 1)

			api.EXPECT().DeletePhoto(gomock.Any(), photo).Return(tc.err)
			history.EXPECT().Record(gomock.Any()).DoAndReturn(func(action models.PhotoAction) error {
				recorded <- action
				return nil
			})

			s := newTaskService(api, history)
			listener := newChanListener()

			s.DeletePhoto(photo, listener)
			s.Stop()

			action := <-recorded

			if action.Action != models.ActionDelete || action.PhotoName != "cat.png" {
				t.Fatalf("unexpected recorded action %+v", action)
			}

			if action.Succeeded != tc.expectSucceeded {
				t.Fatalf("expected succeeded %v but got %v", tc.expectSucceeded, action.Succeeded)
			}

			if !tc.expectDeleted && !tc.expectNetworkError {
				listener.expectNothing(t)
				return
			}

			got := listener.wait(t)

			if (got.deleted == photo) != tc.expectDeleted {
				t.Fatalf("expected deleted %v but got %+v", tc.expectDeleted, got)
			}

			if (got.networkError != "") != tc.expectNetworkError {
				t.Fatalf("expected network error %v but got '%s'", tc.expectNetworkError, got.networkError)
			}
		})
	}
}

func TestAddPhotoToGallery(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_services.NewMockSpringagramServicer(ctrl)
	history := mock_services.NewMockHistoryServicer(ctrl)

	photo := &models.PhotoResource{Name: "dog.png"}
	gallery := &models.GalleryResource{Description: "pets"}
	gallery.Links = hal.Links{hal.RelSelf: {Href: "http://api/galleries/1"}}

	recorded := make(chan models.PhotoAction, 1)

	api.EXPECT().AddPhotoToGallery(gomock.Any(), photo, gallery).Return(nil)
	history.EXPECT().Record(gomock.Any()).DoAndReturn(func(action models.PhotoAction) error {
		recorded <- action
		return errors.New("disk full")
	})

	s := newTaskService(api, history)
	listener := newChanListener()

	s.AddPhotoToGallery(photo, gallery, listener)
	got := listener.wait(t)
	s.Stop()

	if got.added != photo {
		t.Fatalf("expected the photo to be reported as added, got %+v", got)
	}

	action := <-recorded

	if action.TargetHref != "http://api/galleries/1" || !action.Succeeded {
		t.Fatalf("unexpected recorded action %+v", action)
	}
}
