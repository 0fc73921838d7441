package viewmodels

import "github.com/adampresley/springagram/pkg/services"

type Archive struct {
	BaseViewModel

	Enabled bool
	Photos  []services.ArchivedPhoto
}
