package viewmodels

import "github.com/adampresley/springagram/pkg/models"

type History struct {
	BaseViewModel
	Actions []models.PhotoAction
}
