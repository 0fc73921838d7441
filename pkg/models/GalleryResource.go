package models

import "github.com/adampresley/springagram/pkg/hal"

type GalleryResource struct {
	hal.Resource

	Description string `json:"description"`
}

func (g *GalleryResource) SelfHref() string {
	return g.Href(hal.RelSelf)
}
