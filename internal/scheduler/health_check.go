package scheduler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/database"
)

// HealthCheckJob verifies database integrity and reports data dir growth
type HealthCheckJob struct {
	db         *database.DB
	historyDir string
	log        zerolog.Logger
}

// NewHealthCheckJob creates a new health check job
func NewHealthCheckJob(db *database.DB, historyDir string, log zerolog.Logger) *HealthCheckJob {
	return &HealthCheckJob{
		db:         db,
		historyDir: historyDir,
		log:        log.With().Str("job", "health_check").Logger(),
	}
}

// Name returns the job name
func (j *HealthCheckJob) Name() string {
	return "health_check"
}

// Run executes the health check
func (j *HealthCheckJob) Run() error {
	var result string
	if err := j.db.QueryRow(`PRAGMA integrity_check`).Scan(&result); err != nil {
		return fmt.Errorf("integrity check failed: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("database integrity check returned %q", result)
	}

	size, files, err := j.historyDirSize()
	if err != nil {
		j.log.Warn().Err(err).Msg("Failed to measure history directory")
	}

	j.log.Info().
		Str("integrity", result).
		Int64("history_bytes", size).
		Int("history_files", files).
		Msg("Health check passed")

	return nil
}

func (j *HealthCheckJob) historyDirSize() (int64, int, error) {
	var size int64
	var files int

	err := filepath.Walk(j.historyDir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
			files++
		}
		return nil
	})

	return size, files, err
}
