package models

import (
	"time"
)

const (
	ActionDelete       = "delete"
	ActionAddToGallery = "add-to-gallery"
)

type PhotoAction struct {
	ID           uint      `db:"id"`
	Action       string    `db:"action"`
	PhotoName    string    `db:"photo_name"`
	PhotoHref    string    `db:"photo_href"`
	TargetHref   string    `db:"target_href"`
	Succeeded    bool      `db:"succeeded"`
	ErrorMessage string    `db:"error_message"`
	CreatedAt    time.Time `db:"created_at"`
}
