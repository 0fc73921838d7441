package viewmodels

import (
	"html/template"
)

type PhotoList struct {
	BaseViewModel

	Photos        []PhotoListItem
	NextPageURL   string
	PrevPageURL   string
	TotalElements int
	PageNumber    int
	TotalPages    int
}

type PhotoListItem struct {
	Position      int
	Name          string
	ThumbnailData template.URL
	CanDelete     bool
	CanAddGallery bool
}
