package services

import (
	"context"
	"fmt"
	"time"

	"github.com/adampresley/springagram/pkg/models"
	"github.com/rfberaldo/sqlz"
)

//go:generate mockgen -destination=../../mock/services/history.go -package=mock_services github.com/adampresley/springagram/pkg/services HistoryServicer

type HistoryServicer interface {
	Record(action models.PhotoAction) error
	GetRecent(limit int) ([]models.PhotoAction, error)
}

type HistoryServiceConfig struct {
	DB *sqlz.DB
}

type HistoryService struct {
	db *sqlz.DB
}

func NewHistoryService(config HistoryServiceConfig) HistoryService {
	return HistoryService{
		db: config.DB,
	}
}

func (s HistoryService) Record(action models.PhotoAction) error {
	var (
		err error
	)

	if action.CreatedAt.IsZero() {
		action.CreatedAt = time.Now().UTC()
	}

	sql := `
INSERT INTO photo_actions (
	action,
	photo_name,
	photo_href,
	target_href,
	succeeded,
	error_message,
	created_at
) VALUES (?, ?, ?, ?, ?, ?, ?)
`

	params := []any{
		action.Action,
		action.PhotoName,
		action.PhotoHref,
		action.TargetHref,
		action.Succeeded,
		action.ErrorMessage,
		action.CreatedAt,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if _, err = s.db.Exec(ctx, sql, params...); err != nil {
		return fmt.Errorf("error recording %s action for photo '%s': %w", action.Action, action.PhotoName, err)
	}

	return nil
}

func (s HistoryService) GetRecent(limit int) ([]models.PhotoAction, error) {
	var (
		err error
	)

	result := []models.PhotoAction{}

	if limit <= 0 {
		limit = 50
	}

	sql := `
SELECT
	a.id
	, a.action
	, a.photo_name
	, a.photo_href
	, a.target_href
	, a.succeeded
	, a.error_message
	, a.created_at
FROM photo_actions AS a
ORDER BY a.created_at DESC, a.id DESC
LIMIT ?
`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.Query(ctx, &result, sql, limit); err != nil {
		return result, fmt.Errorf("error querying for recent photo actions: %w", err)
	}

	return result, nil
}
