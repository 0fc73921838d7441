package photos

import (
	"image"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	mock_services "github.com/adampresley/springagram/mock/services"
	"github.com/adampresley/springagram/pkg/hal"
	"github.com/adampresley/springagram/pkg/models"
	"github.com/adampresley/springagram/pkg/services"
	"github.com/golang/mock/gomock"
)

const testApiURL = "http://api.example.com/api"

type recordingPublisher struct {
	mu     sync.Mutex
	events []services.Event
}

func (p *recordingPublisher) Publish(event services.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) all() []services.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]services.Event{}, p.events...)
}

type recordingArchive struct {
	archived []*models.PhotoResource
}

func (a *recordingArchive) ArchivePhoto(photo *models.PhotoResource) error {
	a.archived = append(a.archived, photo)
	return nil
}

func (a *recordingArchive) IsArchived(photo *models.PhotoResource) (bool, error) {
	return false, nil
}

func (a *recordingArchive) ListArchived() ([]services.ArchivedPhoto, error) {
	return nil, nil
}

func (a *recordingArchive) StartCleanupRoutine(interval time.Duration) {}
func (a *recordingArchive) StopCleanupRoutine() {}

func testPhoto(id string) *models.PhotoResource {
	photo := &models.PhotoResource{
		Name:  id + ".png",
		Image: image.NewRGBA(image.Rect(0, 0, 4, 4)),
	}

	photo.Links = hal.Links{
		hal.RelSelf:       {Href: testApiURL + "/items/" + id},
		models.RelGallery: {Href: testApiURL + "/items/" + id + "/gallery"},
	}

	return photo
}

func newTestController(t *testing.T, tasks services.TaskServicer, archive services.ArchiveServicer) (PhotoController, services.PhotoListService, *recordingPublisher) {
	t.Helper()

	list := services.NewPhotoListService()
	list.Replace([]*models.PhotoResource{testPhoto("1"), testPhoto("2"), testPhoto("3")})

	publisher := &recordingPublisher{}

	controller := NewPhotoController(PhotoControllerConfig{
		ApiURL:         testApiURL,
		ArchiveService: archive,
		EventPublisher: publisher,
		PhotoList:      list,
		TaskService:    tasks,
		WaitTimeout:    time.Second,
	})

	return controller, list, publisher
}

func positionRequest(method, target, position string, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.SetPathValue("position", position)

	if body != "" {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return r
}

func TestDeletePhotoAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := mock_services.NewMockTaskServicer(ctrl)
	controller, list, publisher := newTestController(t, tasks, nil)

	target, _ := list.Get(1)

	tasks.EXPECT().DeletePhoto(target, gomock.Any()).Do(func(photo *models.PhotoResource, listener services.PhotoActionListener) {
		listener.OnPhotoDeleted(photo)
	})

	w := httptest.NewRecorder()
	controller.DeletePhotoAction(w, positionRequest(http.MethodPost, "/photos/1/delete", "1", ""))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d but got %d", http.StatusSeeOther, w.Code)
	}

	if location := w.Header().Get("Location"); location != "/photos?reload=false" {
		t.Fatalf("unexpected redirect to '%s'", location)
	}

	if list.Len() != 2 {
		t.Fatalf("expected the photo to be removed right away, %d left", list.Len())
	}

	if next, _ := list.Get(1); next.Name != "3.png" {
		t.Fatalf("expected later photos to shift down, got %s", next.Name)
	}

	events := publisher.all()

	if len(events) != 1 || events[0].Type != services.EventPhotoDeleted || events[0].Position != 1 {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestDeletePhotoActionTakesThePhotoOutBeforeDeleting(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := mock_services.NewMockTaskServicer(ctrl)
	controller, list, _ := newTestController(t, tasks, nil)

	var (
		deleted  []string
		vanished []string
	)

	before := list.All()

	tasks.EXPECT().DeletePhoto(gomock.Any(), gomock.Any()).Times(2).Do(func(photo *models.PhotoResource, listener services.PhotoActionListener) {
		deleted = append(deleted, photo.Name)

		for _, held := range list.All() {
			if held == photo {
				t.Fatalf("%s is still held while its delete is submitted", photo.Name)
			}
		}

		// a second browser deletes the same position while this one is in flight
		if len(deleted) == 1 {
			controller.DeletePhotoAction(httptest.NewRecorder(), positionRequest(http.MethodPost, "/photos/1/delete", "1", ""))
		}
	})

	w := httptest.NewRecorder()
	controller.DeletePhotoAction(w, positionRequest(http.MethodPost, "/photos/1/delete", "1", ""))

	remaining := map[*models.PhotoResource]bool{}
	for _, photo := range list.All() {
		remaining[photo] = true
	}

	for _, photo := range before {
		if !remaining[photo] {
			vanished = append(vanished, photo.Name)
		}
	}

	if strings.Join(deleted, ",") != "2.png,3.png" || strings.Join(vanished, ",") != "2.png,3.png" {
		t.Fatalf("expected the deleted photos to be the ones removed, deleted %v vanished %v", deleted, vanished)
	}
}

func TestDeletePhotoActionBadPosition(t *testing.T) {
	type tc struct {
		name           string
		position       string
		expectedStatus int
	}

	tcs := []tc{
		{name: "not a number", position: "abc", expectedStatus: http.StatusBadRequest},
		{name: "out of range", position: "3", expectedStatus: http.StatusNotFound},
		{name: "negative", position: "-1", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tasks := mock_services.NewMockTaskServicer(ctrl)
			controller, list, _ := newTestController(t, tasks, nil)

			w := httptest.NewRecorder()
			controller.DeletePhotoAction(w, positionRequest(http.MethodPost, "/photos/x/delete", tc.position, ""))

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d but got %d", tc.expectedStatus, w.Code)
			}

			if list.Len() != 3 {
				t.Fatalf("the list must be untouched")
			}
		})
	}
}

func expectGalleries(tasks *mock_services.MockTaskServicer, galleries ...*models.GalleryResource) {
	root := &models.ApiResource{}
	root.Links = hal.Links{
		models.RelItems:     {Href: testApiURL + "/items"},
		models.RelGalleries: {Href: testApiURL + "/galleries"},
	}

	tasks.EXPECT().DownloadRootResource(testApiURL, gomock.Any()).Do(func(url string, listener services.RootResourceListener) {
		listener.OnResourceDownloadComplete(root)
	})

	tasks.EXPECT().DownloadGalleries(testApiURL+"/galleries", gomock.Any()).Do(func(url string, listener services.GalleryDownloadListener) {
		listener.OnDownloadGalleriesComplete(&hal.Collection[*models.GalleryResource]{Items: galleries})
	})
}

func gallery(id, description string) *models.GalleryResource {
	g := &models.GalleryResource{Description: description}
	g.Links = hal.Links{hal.RelSelf: {Href: testApiURL + "/galleries/" + id}}
	return g
}

func TestAddToGalleryAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := mock_services.NewMockTaskServicer(ctrl)
	archive := &recordingArchive{}
	controller, list, publisher := newTestController(t, tasks, archive)

	photo, _ := list.Get(0)
	pets := gallery("2", "pets")

	expectGalleries(tasks, gallery("1", "travel"), pets)

	tasks.EXPECT().AddPhotoToGallery(photo, pets, gomock.Any()).Do(func(p *models.PhotoResource, g *models.GalleryResource, listener services.PhotoActionListener) {
		listener.OnPhotoAddedToGallery(p, g)
	})

	form := url.Values{"gallery": {testApiURL + "/galleries/2"}}

	w := httptest.NewRecorder()
	controller.AddToGalleryAction(w, positionRequest(http.MethodPost, "/photos/0/gallery", "0", form.Encode()))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d but got %d", http.StatusSeeOther, w.Code)
	}

	if len(archive.archived) != 1 || archive.archived[0] != photo {
		t.Fatalf("expected the photo to be archived, got %v", archive.archived)
	}

	events := publisher.all()

	if len(events) != 1 || events[0].Type != services.EventPhotoAddedToGallery {
		t.Fatalf("unexpected events %+v", events)
	}

	if list.Len() != 3 {
		t.Fatalf("adding to a gallery must keep the photo in the list")
	}
}

func TestAddToGalleryActionUnknownGallery(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := mock_services.NewMockTaskServicer(ctrl)
	controller, _, _ := newTestController(t, tasks, nil)

	expectGalleries(tasks, gallery("1", "travel"))

	form := url.Values{"gallery": {"http://elsewhere/galleries/9"}}

	w := httptest.NewRecorder()
	controller.AddToGalleryAction(w, positionRequest(http.MethodPost, "/photos/0/gallery", "0", form.Encode()))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d but got %d", http.StatusBadRequest, w.Code)
	}
}

func TestPhotoListPageRejectsForeignPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := mock_services.NewMockTaskServicer(ctrl)
	controller, _, _ := newTestController(t, tasks, nil)

	target := "/photos?page=" + url.QueryEscape("http://169.254.169.254/latest")

	w := httptest.NewRecorder()
	controller.PhotoListPage(w, httptest.NewRequest(http.MethodGet, target, nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d but got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSameOrigin(t *testing.T) {
	type tc struct {
		name     string
		href     string
		expected bool
	}

	tcs := []tc{
		{name: "same host", href: "http://api.example.com/api/items?page=1", expected: true},
		{name: "other host", href: "http://evil.example.com/api/items", expected: false},
		{name: "other scheme", href: "https://api.example.com/api/items", expected: false},
		{name: "other port", href: "http://api.example.com:8080/api/items", expected: false},
		{name: "relative", href: "/api/items", expected: false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameOrigin(testApiURL, tc.href); got != tc.expected {
				t.Fatalf("expected %v but got %v", tc.expected, got)
			}
		})
	}
}

func TestPageURL(t *testing.T) {
	if got := pageURL(""); got != "" {
		t.Fatalf("expected no link but got '%s'", got)
	}

	if got := pageURL("http://api/items?page=2&size=20"); got != "/photos?page=http%3A%2F%2Fapi%2Fitems%3Fpage%3D2%26size%3D20" {
		t.Fatalf("unexpected page url '%s'", got)
	}
}
