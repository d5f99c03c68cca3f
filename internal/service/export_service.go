package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/quizmaster/config"
	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	exportPrefix     = "scores_export_"
	exportTimeLayout = "2006-01-02 15:04:05"
	missingValue     = "N/A"
)

var exportHeader = []string{
	"Score ID", "User Email", "User Full Name", "Quiz Name", "Subject Name",
	"Chapter Name", "Score", "Total Possible", "Attempt Date",
}

type ExportService interface {
	ExportAllScores(ctx context.Context) (*dto.ExportResponse, error)
	// OpenExport resolves a bare export filename to its path on disk.
	OpenExport(name string) (string, error)
}

type exportService struct {
	reportRepo repository.ReportRepository
	dir        string
	now        func() time.Time
	newID      func() string
}

func NewExportService(reportRepo repository.ReportRepository, cfg *config.Config) ExportService {
	dir := cfg.ExportsDir
	if dir == "" {
		dir = "exports"
	}
	return &exportService{
		reportRepo: reportRepo,
		dir:        dir,
		now:        time.Now,
		newID:      func() string { return uuid.NewString()[:8] },
	}
}

func (s *exportService) ExportAllScores(ctx context.Context) (*dto.ExportResponse, error) {
	rows, err := s.reportRepo.ScoreExportRows(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load scores for export")
		return nil, apperr.Wrap(apperr.KindExport, err, "loading scores")
	}

	name := fmt.Sprintf("%s%s_%s.csv", exportPrefix, s.now().UTC().Format("20060102_150405"), s.newID())
	path := filepath.Join(s.dir, name)
	if err := s.writeCSV(path, rows); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to write score export")
		return nil, apperr.Wrap(apperr.KindExport, err, "writing export")
	}

	log.Info().Str("path", path).Int("rows", len(rows)).Msg("Scores exported")
	return &dto.ExportResponse{Filepath: path, Filename: name}, nil
}

// writeCSV writes to a temp file in the target directory and renames it into
// place, so a reader never sees a partial export.
func (s *exportService) writeCSV(path string, rows []repository.ScoreExportRow) (err error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating exports dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ScoreID), 10),
			orMissing(r.UserEmail),
			orMissing(r.UserFullName),
			orMissing(r.QuizName),
			orMissing(r.SubjectName),
			orMissing(r.ChapterName),
			strconv.Itoa(r.TotalScored),
			strconv.Itoa(r.TotalPossible),
			r.AttemptedAt.UTC().Format(exportTimeLayout),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (s *exportService) OpenExport(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) ||
		!strings.HasPrefix(name, exportPrefix) || filepath.Ext(name) != ".csv" {
		return "", apperr.Validation("invalid export filename")
	}
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", apperr.NotFound("export %s not found", name)
	}
	if err != nil {
		return "", apperr.Internal(err, "reading export %s", name)
	}
	if info.IsDir() {
		return "", apperr.NotFound("export %s not found", name)
	}
	return path, nil
}

func orMissing(v *string) string {
	if v == nil || *v == "" {
		return missingValue
	}
	return *v
}
