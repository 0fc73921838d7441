package models

import "github.com/adampresley/springagram/pkg/hal"

const (
	RelItems     = "items"
	RelGalleries = "galleries"
)

// ApiResource is the API root: nothing but links to the top-level collections.
type ApiResource struct {
	hal.Resource
}
