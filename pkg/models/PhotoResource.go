package models

import (
	"encoding/json"
	"fmt"
	"image"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/adampresley/springagram/pkg/hal"
	"github.com/adampresley/springagram/pkg/photoimage"
)

const (
	RelGallery = "gallery"
)

/*
PhotoResource is a single photo item. The server sends the picture as a data
URI in "image"; it is decoded when the resource is parsed, and a fixed-size
thumbnail is derived from it.
*/
type PhotoResource struct {
	hal.Resource

	Name         string
	ImageDataURI string
	Image        image.Image
	Thumbnail    image.Image
}

func (p *PhotoResource) UnmarshalJSON(b []byte) error {
	var (
		err     error
		payload struct {
			Links hal.Links `json:"_links"`
			Name  string    `json:"name"`
			Image string    `json:"image"`
		}
	)

	if err = json.Unmarshal(b, &payload); err != nil {
		return fmt.Errorf("error decoding photo: %w", err)
	}

	p.Links = payload.Links
	p.Name = payload.Name

	if payload.Image == "" {
		return nil
	}

	return p.SetImage(payload.Image)
}

/*
SetImage decodes a data URI into Image and Thumbnail. Invalid Base64 is an
error. Bytes that are not a recognizable picture leave Image and Thumbnail
nil, the same as a photo that carried no image at all.
*/
func (p *PhotoResource) SetImage(dataURI string) error {
	var (
		err  error
		data []byte
		img  image.Image
	)

	if data, err = photoimage.DecodeDataURI(dataURI); err != nil {
		return fmt.Errorf("error decoding image for photo '%s': %w", p.Name, err)
	}

	p.ImageDataURI = dataURI
	p.Image = nil
	p.Thumbnail = nil

	if img, err = photoimage.DecodeImage(data); err != nil {
		slog.Debug("photo image could not be decoded", "name", p.Name, "error", err)
		return nil
	}

	p.Image = img
	p.Thumbnail = photoimage.ExtractThumbnail(img, photoimage.ThumbnailWidth, photoimage.ThumbnailHeight)
	return nil
}

func (p *PhotoResource) SelfHref() string {
	return p.Href(hal.RelSelf)
}

// ID is the last path segment of the self link, or an empty string when there is none.
func (p *PhotoResource) ID() string {
	var (
		err error
		u   *url.URL
	)

	self := p.SelfHref()

	if self == "" {
		return ""
	}

	if u, err = url.Parse(self); err != nil {
		return ""
	}

	if u.Path == "" || strings.HasSuffix(u.Path, "/") {
		return ""
	}

	if id := path.Base(u.Path); id != "." && id != ".." && id != "/" {
		return id
	}

	return ""
}
