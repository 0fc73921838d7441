package viewmodels

import (
	"html/template"
)

type GallerySelect struct {
	BaseViewModel

	Position      int
	PhotoName     string
	ThumbnailData template.URL
	Galleries     []GalleryOption
}

type GalleryOption struct {
	Href        string
	Description string
}
