package models

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/adampresley/springagram/pkg/hal"
	"github.com/adampresley/springagram/pkg/photoimage"
)

func testDataURI(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.NRGBA{R: 200, A: 255})
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestPhotoResourceUnmarshal(t *testing.T) {
	payload := fmt.Sprintf(`{
		"name": "sunset.png",
		"image": %q,
		"_links": {
			"self": {"href": "http://localhost:8080/api/items/42"},
			"gallery": {"href": "http://localhost:8080/api/items/42/gallery"}
		}
	}`, testDataURI(t, 320, 200))

	photo := &PhotoResource{}

	if err := json.Unmarshal([]byte(payload), photo); err != nil {
		t.Fatal(err)
	}

	if photo.Name != "sunset.png" {
		t.Fatalf("unexpected name %s", photo.Name)
	}

	if photo.Image == nil || photo.Image.Bounds().Dx() != 320 {
		t.Fatalf("expected decoded 320px wide image")
	}

	if photo.Thumbnail == nil {
		t.Fatalf("expected a thumbnail")
	}

	b := photo.Thumbnail.Bounds()
	if b.Dx() != photoimage.ThumbnailWidth || b.Dy() != photoimage.ThumbnailHeight {
		t.Fatalf("unexpected thumbnail bounds %v", b)
	}

	if photo.ID() != "42" {
		t.Fatalf("expected ID 42 but got '%s'", photo.ID())
	}

	if photo.Href(RelGallery) != "http://localhost:8080/api/items/42/gallery" {
		t.Fatalf("unexpected gallery link")
	}
}

func TestPhotoResourceWithoutImage(t *testing.T) {
	photo := &PhotoResource{}

	if err := json.Unmarshal([]byte(`{"name":"empty"}`), photo); err != nil {
		t.Fatal(err)
	}

	if photo.Image != nil || photo.Thumbnail != nil {
		t.Fatalf("expected no image")
	}

	if photo.ID() != "" || photo.SelfHref() != "" {
		t.Fatalf("expected no self link")
	}
}

func TestPhotoResourceUndecodableImage(t *testing.T) {
	photo := &PhotoResource{}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("definitely not a png"))

	if err := photo.SetImage(uri); err != nil {
		t.Fatalf("expected undecodable bytes to be tolerated, got %v", err)
	}

	if photo.Image != nil || photo.Thumbnail != nil {
		t.Fatalf("expected nil image and thumbnail")
	}

	if photo.ImageDataURI != uri {
		t.Fatalf("expected data uri to be kept")
	}
}

func TestPhotoResourceInvalidBase64(t *testing.T) {
	photo := &PhotoResource{}

	if err := json.Unmarshal([]byte(`{"name":"bad","image":"data:image/png;base64,***"}`), photo); err == nil {
		t.Fatalf("expected an error for invalid base64")
	}
}

func TestPhotoCollection(t *testing.T) {
	payload := fmt.Sprintf(`{"_embedded":{"items":[{"name":"a","image":%q},{"name":"b"}]}}`, testDataURI(t, 50, 50))
	photos := hal.Collection[*PhotoResource]{}

	if err := json.Unmarshal([]byte(payload), &photos); err != nil {
		t.Fatal(err)
	}

	if photos.Len() != 2 || photos.Items[0].Thumbnail == nil || photos.Items[1].Image != nil {
		t.Fatalf("unexpected collection contents")
	}
}

func TestApiResourceLinks(t *testing.T) {
	root := ApiResource{}
	payload := `{"_links":{"items":{"href":"http://localhost/api/items"},"galleries":{"href":"http://localhost/api/galleries"}}}`

	if err := json.Unmarshal([]byte(payload), &root); err != nil {
		t.Fatal(err)
	}

	if root.Href(RelItems) != "http://localhost/api/items" || !root.HasLink(RelGalleries) {
		t.Fatalf("unexpected root links: %+v", root.Links)
	}
}

func TestPhotoResourceID(t *testing.T) {
	type tc struct {
		name     string
		self     string
		expected string
	}

	tcs := []tc{
		{name: "item link", self: "http://api/api/items/42", expected: "42"},
		{name: "templated query ignored", self: "http://api/api/items/7?projection=full", expected: "7"},
		{name: "no self link", self: "", expected: ""},
		{name: "host only", self: "http://api", expected: ""},
		{name: "root path", self: "http://api/", expected: ""},
		{name: "trailing slash", self: "http://api/api/items/", expected: ""},
		{name: "dot dot", self: "http://api/api/..", expected: ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			photo := &PhotoResource{}

			if tc.self != "" {
				photo.Links = hal.Links{hal.RelSelf: {Href: tc.self}}
			}

			if got := photo.ID(); got != tc.expected {
				t.Fatalf("expected '%s' but got '%s'", tc.expected, got)
			}
		})
	}
}
