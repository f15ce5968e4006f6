package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	"github.com/bnema/splitview/internal/logging"
)

const (
	upsertLayoutSQL = `
INSERT INTO window_layouts (window_id, layout_json, version, pane_count, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(window_id) DO UPDATE SET
    layout_json = excluded.layout_json,
    version     = excluded.version,
    pane_count  = excluded.pane_count,
    updated_at  = excluded.updated_at`

	getLayoutSQL = `SELECT layout_json FROM window_layouts WHERE window_id = ?`

	deleteLayoutSQL = `DELETE FROM window_layouts WHERE window_id = ?`

	listLayoutsSQL = `
SELECT window_id, version, pane_count, updated_at, LENGTH(layout_json)
FROM window_layouts
ORDER BY updated_at DESC, window_id`
)

type layoutRepo struct {
	db *sql.DB
}

// NewLayoutRepository creates a layout repository backed by db.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db}
}

// SaveLayout saves or replaces a window's layout.
func (r *layoutRepo) SaveLayout(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)
	if snapshot == nil {
		return errors.New("layout snapshot cannot be nil")
	}
	if snapshot.WindowID == "" {
		return errors.New("layout snapshot has no window id")
	}
	if snapshot.SavedAt.IsZero() {
		snapshot.SavedAt = time.Now()
	}

	layoutJSON, err := json.Marshal(snapshot)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal layout snapshot")
		return err
	}

	log.Debug().
		Str("window_id", string(snapshot.WindowID)).
		Int("pane_count", snapshot.CountPanes()).
		Msg("saving layout snapshot")

	_, err = r.db.ExecContext(ctx, upsertLayoutSQL,
		string(snapshot.WindowID),
		string(layoutJSON),
		int64(snapshot.Version),
		int64(snapshot.CountPanes()),
		snapshot.SavedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("save layout %s: %w", snapshot.WindowID, err)
	}
	return nil
}

// GetLayout returns a window's layout, or nil if none is stored.
func (r *layoutRepo) GetLayout(ctx context.Context, windowID entity.WindowID) (*entity.LayoutSnapshot, error) {
	var layoutJSON string
	err := r.db.QueryRowContext(ctx, getLayoutSQL, string(windowID)).Scan(&layoutJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get layout %s: %w", windowID, err)
	}

	var snapshot entity.LayoutSnapshot
	if err := json.Unmarshal([]byte(layoutJSON), &snapshot); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("window_id", string(windowID)).
			Msg("failed to unmarshal layout snapshot")
		return nil, err
	}
	return &snapshot, nil
}

// DeleteLayout removes a window's layout.
func (r *layoutRepo) DeleteLayout(ctx context.Context, windowID entity.WindowID) error {
	logging.FromContext(ctx).Debug().Str("window_id", string(windowID)).Msg("deleting layout snapshot")
	if _, err := r.db.ExecContext(ctx, deleteLayoutSQL, string(windowID)); err != nil {
		return fmt.Errorf("delete layout %s: %w", windowID, err)
	}
	return nil
}

// ListLayouts returns every stored layout, most recently saved first.
func (r *layoutRepo) ListLayouts(ctx context.Context) ([]repository.LayoutSummary, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutsSQL)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []repository.LayoutSummary
	for rows.Next() {
		var (
			s                  repository.LayoutSummary
			windowID           string
			version, paneCount int64
			size               int64
		)
		if err := rows.Scan(&windowID, &version, &paneCount, &s.UpdatedAt, &size); err != nil {
			return nil, fmt.Errorf("scan layout row: %w", err)
		}
		s.WindowID = entity.WindowID(windowID)
		s.Version = int(version)
		s.PaneCount = int(paneCount)
		s.SizeBytes = int(size)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
