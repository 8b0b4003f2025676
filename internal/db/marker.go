package db

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/natefinch/atomic"
)

// Marker records that first-run setup completed.
type Marker struct {
	Initialized time.Time `json:"initialized"`
	Version     string    `json:"version"`
}

// ReadMarker returns nil without error when no marker exists yet.
func ReadMarker(path string) (*Marker, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read marker: %w", err)
	}

	m := &Marker{}
	err = json.Unmarshal(data, m)
	if err != nil {
		return nil, fmt.Errorf("failed to decode marker %s: %w", path, err)
	}
	return m, nil
}

func WriteMarker(path string, m *Marker) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	err = atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to write marker: %w", err)
	}
	return nil
}

// ErrSchemaAhead means the store was migrated by a newer release.
var ErrSchemaAhead = errors.New("store schema is newer than this release")

// Setup applies the schema unless the marker says this version already did
// and the store agrees. Any error here leaves the store untrusted and is fatal
// to the caller.
func Setup(db *sqlx.DB, markerPath, version string) (*Marker, error) {
	m, err := ReadMarker(markerPath)
	if err != nil {
		return nil, err
	}

	current, latest, err := SchemaVersions(db.DB)
	if err != nil {
		return nil, err
	}
	if current > latest {
		return nil, fmt.Errorf("%w: store at %d, release at %d", ErrSchemaAhead, current, latest)
	}

	if m != nil && m.Version == version {
		if current == latest {
			slog.Debug("setup already done", "initialized", m.Initialized, "version", m.Version)
			return m, nil
		}
		slog.Warn("store is missing schema despite marker, migrating again",
			"schema_version", current, "want", latest, "marker", markerPath)
	}

	err = RunMigrations(db.DB)
	if err != nil {
		return nil, err
	}

	m = &Marker{Initialized: time.Now().UTC(), Version: version}
	err = WriteMarker(markerPath, m)
	if err != nil {
		return nil, err
	}

	slog.Info("setup completed", "version", version, "marker", markerPath)
	return m, nil
}
