package viewmodels

import (
	"html/template"
)

type PhotoDetail struct {
	BaseViewModel

	Position  int
	Name      string
	ImageData template.URL
	SelfHref  string
}
