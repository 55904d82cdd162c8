package study

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"tubestudy/internal/toolutil"
)

// WatchStatus is the study status of a tracked video.
type WatchStatus string

const (
	StatusSaved     WatchStatus = "saved"
	StatusWatching  WatchStatus = "watching"
	StatusCompleted WatchStatus = "completed"
)

// TrackedVideo is a single entry in the local study tracker.
type TrackedVideo struct {
	ID        int64       `json:"id"`
	VideoID   string      `json:"video_id"`
	Title     string      `json:"title"`
	URL       string      `json:"url"`
	Status    WatchStatus `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// TrackerAddInput is the input for study_tracker_add.
type TrackerAddInput struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	URL     string `json:"url,omitempty"`
	Status  string `json:"status,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// TrackerListInput is the input for study_tracker_list.
type TrackerListInput struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// TrackerUpdateInput is the input for study_tracker_update.
type TrackerUpdateInput struct {
	ID     int64  `json:"id"`
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// TrackerResult is the output for add/update operations.
type TrackerResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// TrackerListResult is the output for list operations.
type TrackerListResult struct {
	Videos []TrackedVideo `json:"videos"`
	Total  int            `json:"total"`
}

var (
	trackerDB   *sql.DB
	trackerOnce sync.Once
	trackerErr  error
)

// openTrackerDB opens (or creates) the SQLite study tracker database.
func openTrackerDB() (*sql.DB, error) {
	trackerOnce.Do(func() {
		dir := filepath.Join(os.Getenv("HOME"), ".tubestudy")
		if err := os.MkdirAll(dir, 0750); err != nil {
			trackerErr = fmt.Errorf("tracker: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "progress.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			trackerErr = fmt.Errorf("tracker: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initTrackerSchema(db); err != nil {
			trackerErr = fmt.Errorf("tracker: init schema: %w", err)
			return
		}
		trackerDB = db
	})
	return trackerDB, trackerErr
}

func initTrackerSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS videos (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id   TEXT NOT NULL,
		title      TEXT NOT NULL,
		url        TEXT,
		status     TEXT NOT NULL DEFAULT 'saved',
		notes      TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return err
}

func validWatchStatus(s string) bool {
	switch WatchStatus(s) {
	case StatusSaved, StatusWatching, StatusCompleted:
		return true
	}
	return false
}

// AddTrackedVideo saves a video to the study tracker.
func AddTrackedVideo(_ context.Context, input TrackerAddInput) (*TrackerResult, error) {
	if input.VideoID == "" || input.Title == "" {
		return nil, errors.New("study_tracker_add: video_id and title are required")
	}

	status := strings.ToLower(input.Status)
	if status == "" {
		status = string(StatusSaved)
	}
	if !validWatchStatus(status) {
		return nil, fmt.Errorf("study_tracker_add: invalid status %q (valid: saved, watching, completed)", status)
	}

	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO videos (video_id, title, url, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		input.VideoID, input.Title, input.URL, status, input.Notes, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("study_tracker_add: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	return &TrackerResult{
		ID:      id,
		Message: fmt.Sprintf("Video '%s' saved with status '%s' (id=%d)", input.Title, status, id),
	}, nil
}

// ListTrackedVideos returns tracked videos, optionally filtered by status.
func ListTrackedVideos(_ context.Context, input TrackerListInput) (*TrackerListResult, error) {
	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	limit := toolutil.ClampLimit(input.Limit, 50, 100)

	var rows *sql.Rows
	if input.Status != "" {
		status := strings.ToLower(input.Status)
		if !validWatchStatus(status) {
			return nil, fmt.Errorf("study_tracker_list: invalid status %q", status)
		}
		rows, err = db.Query(
			`SELECT id, video_id, title, url, status, notes, created_at, updated_at
			 FROM videos WHERE status = ? ORDER BY updated_at DESC LIMIT ?`,
			status, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT id, video_id, title, url, status, notes, created_at, updated_at
			 FROM videos ORDER BY updated_at DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("study_tracker_list: query: %w", err)
	}
	defer rows.Close()

	var videos []TrackedVideo
	for rows.Next() {
		var v TrackedVideo
		var url, notes sql.NullString
		if err := rows.Scan(&v.ID, &v.VideoID, &v.Title, &url, &v.Status,
			&notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
			continue
		}
		v.URL = url.String
		v.Notes = notes.String
		videos = append(videos, v)
	}

	var total int
	if input.Status != "" {
		db.QueryRow(`SELECT COUNT(*) FROM videos WHERE status = ?`, strings.ToLower(input.Status)).Scan(&total) //nolint:errcheck
	} else {
		db.QueryRow(`SELECT COUNT(*) FROM videos`).Scan(&total) //nolint:errcheck
	}

	if videos == nil {
		videos = []TrackedVideo{}
	}
	return &TrackerListResult{Videos: videos, Total: total}, nil
}

// UpdateTrackedVideo updates the status and/or notes of a tracked video.
func UpdateTrackedVideo(_ context.Context, input TrackerUpdateInput) (*TrackerResult, error) {
	if input.ID <= 0 {
		return nil, errors.New("study_tracker_update: id is required")
	}
	if input.Status == "" && input.Notes == "" {
		return nil, errors.New("study_tracker_update: at least one of status or notes must be provided")
	}

	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	var res sql.Result
	switch {
	case input.Status != "" && input.Notes != "":
		status := strings.ToLower(input.Status)
		if !validWatchStatus(status) {
			return nil, fmt.Errorf("study_tracker_update: invalid status %q", status)
		}
		res, err = db.Exec(`UPDATE videos SET status=?, notes=?, updated_at=? WHERE id=?`,
			status, input.Notes, now, input.ID)
	case input.Status != "":
		status := strings.ToLower(input.Status)
		if !validWatchStatus(status) {
			return nil, fmt.Errorf("study_tracker_update: invalid status %q", status)
		}
		res, err = db.Exec(`UPDATE videos SET status=?, updated_at=? WHERE id=?`,
			status, now, input.ID)
	default:
		res, err = db.Exec(`UPDATE videos SET notes=?, updated_at=? WHERE id=?`,
			input.Notes, now, input.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("study_tracker_update: update: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return nil, fmt.Errorf("study_tracker_update: no video with id=%d", input.ID)
	}
	return &TrackerResult{
		ID:      input.ID,
		Message: fmt.Sprintf("Video id=%d updated", input.ID),
	}, nil
}
