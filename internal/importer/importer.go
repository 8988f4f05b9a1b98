// Package importer loads the seed CSV files (users, coaches, exercises,
// levels, intensities) from a storage.Source into domain values.
//
// Every file starts with a header line. A row that has the wrong number of
// columns or fails validation is logged and skipped; only a missing or
// unreadable file stops the import.
package importer

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/alcyxob/fitcoach/internal/domain"
	"github.com/alcyxob/fitcoach/internal/metrics"
	"github.com/alcyxob/fitcoach/internal/storage"
)

// File names read by ImportAll.
const (
	FileUsers       = "users.csv"
	FileCoaches     = "coaches.csv"
	FileExercises   = "exercises.csv"
	FileLevels      = "levels.csv"
	FileIntensities = "intensities.csv"
)

// maxLineBytes bounds a single CSV line.
const maxLineBytes = 1 << 20

// ErrSourceMissing is returned when a required file does not exist.
var ErrSourceMissing = errors.New("required data file missing")

// RowRecorder counts rows per file and outcome. metrics.Collector
// satisfies it.
type RowRecorder interface {
	RecordImportRow(file string, outcome string)
}

// RowError is a skipped row.
type RowError struct {
	File string
	Line int
	Err  *domain.InvalidDataError
}

func (e *RowError) Error() string {
	return e.Err.Error()
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Dataset is everything one ImportAll run produced.
type Dataset struct {
	RunID       string
	Users       []*domain.User
	Coaches     []*domain.Coach
	Exercises   []domain.Exercise
	Levels      []domain.Level
	Intensities []domain.Intensity
	Rejected    []*RowError
}

// Importer reads CSV files from a Source.
type Importer struct {
	source   storage.Source
	logger   *slog.Logger
	recorder RowRecorder
	validate *validator.Validate
	newRunID func() string
}

// Option configures an Importer.
type Option func(*Importer)

func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) { im.logger = logger }
}

func WithMetrics(recorder RowRecorder) Option {
	return func(im *Importer) { im.recorder = recorder }
}

// WithRunID replaces uuid.NewString as the run ID generator.
func WithRunID(fn func() string) Option {
	return func(im *Importer) { im.newRunID = fn }
}

// New returns an Importer reading from source.
func New(source storage.Source, opts ...Option) *Importer {
	im := &Importer{
		source:   source,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: newValidator(),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// ImportAll reads all five files in order. It stops at the first file that
// cannot be opened or read.
func (im *Importer) ImportAll(ctx context.Context) (*Dataset, error) {
	ds := &Dataset{RunID: im.newRunID()}
	logger := im.logger.With(slog.String("run_id", ds.RunID))
	logger.Info("starting CSV import")

	var err error
	var rejected []*RowError

	if ds.Users, rejected, err = im.importUsers(ctx, logger); err != nil {
		return nil, err
	}
	ds.Rejected = append(ds.Rejected, rejected...)

	if ds.Coaches, rejected, err = im.importCoaches(ctx, logger); err != nil {
		return nil, err
	}
	ds.Rejected = append(ds.Rejected, rejected...)

	if ds.Exercises, rejected, err = im.importExercises(ctx, logger); err != nil {
		return nil, err
	}
	ds.Rejected = append(ds.Rejected, rejected...)

	if ds.Levels, rejected, err = im.importLevels(ctx, logger); err != nil {
		return nil, err
	}
	ds.Rejected = append(ds.Rejected, rejected...)

	if ds.Intensities, rejected, err = im.importIntensities(ctx, logger); err != nil {
		return nil, err
	}
	ds.Rejected = append(ds.Rejected, rejected...)

	logger.Info("CSV import finished",
		slog.Int("users", len(ds.Users)),
		slog.Int("coaches", len(ds.Coaches)),
		slog.Int("exercises", len(ds.Exercises)),
		slog.Int("levels", len(ds.Levels)),
		slog.Int("intensities", len(ds.Intensities)),
		slog.Int("rejected", len(ds.Rejected)),
	)
	return ds, nil
}

// ImportUsers reads users.csv: firstName,lastName,email.
func (im *Importer) ImportUsers(ctx context.Context) ([]*domain.User, []*RowError, error) {
	return im.importUsers(ctx, im.logger)
}

func (im *Importer) importUsers(ctx context.Context, logger *slog.Logger) ([]*domain.User, []*RowError, error) {
	var users []*domain.User
	rejected, err := im.readFile(ctx, logger, FileUsers, 3, func(line int, cells []string) *domain.InvalidDataError {
		row := userRow{FirstName: cells[0], LastName: cells[1], Email: cells[2]}
		if bad := im.checkRow(FileUsers, line, row); bad != nil {
			return bad
		}
		u, err := domain.NewUser(row.FirstName, row.LastName, row.Email)
		if err != nil {
			return buildError(FileUsers, line, err)
		}
		users = append(users, u)
		return nil
	})
	return users, rejected, err
}

// ImportCoaches reads coaches.csv: firstName,lastName,email,experienceYears.
func (im *Importer) ImportCoaches(ctx context.Context) ([]*domain.Coach, []*RowError, error) {
	return im.importCoaches(ctx, im.logger)
}

func (im *Importer) importCoaches(ctx context.Context, logger *slog.Logger) ([]*domain.Coach, []*RowError, error) {
	var coaches []*domain.Coach
	rejected, err := im.readFile(ctx, logger, FileCoaches, 4, func(line int, cells []string) *domain.InvalidDataError {
		years, bad := parseInt(FileCoaches, line, "experienceYears", "experience years", cells[3])
		if bad != nil {
			return bad
		}
		row := coachRow{FirstName: cells[0], LastName: cells[1], Email: cells[2], ExperienceYears: years}
		if bad := im.checkRow(FileCoaches, line, row); bad != nil {
			return bad
		}
		c, err := domain.NewCoach(row.FirstName, row.LastName, row.Email, row.ExperienceYears)
		if err != nil {
			return buildError(FileCoaches, line, err)
		}
		coaches = append(coaches, c)
		return nil
	})
	return coaches, rejected, err
}

// ImportExercises reads exercises.csv: name,reps,sets.
func (im *Importer) ImportExercises(ctx context.Context) ([]domain.Exercise, []*RowError, error) {
	return im.importExercises(ctx, im.logger)
}

func (im *Importer) importExercises(ctx context.Context, logger *slog.Logger) ([]domain.Exercise, []*RowError, error) {
	var exercises []domain.Exercise
	rejected, err := im.readFile(ctx, logger, FileExercises, 3, func(line int, cells []string) *domain.InvalidDataError {
		reps, bad := parseInt(FileExercises, line, "reps", "reps", cells[1])
		if bad != nil {
			return bad
		}
		sets, bad := parseInt(FileExercises, line, "sets", "sets", cells[2])
		if bad != nil {
			return bad
		}
		row := exerciseRow{Name: cells[0], Reps: reps, Sets: sets}
		if bad := im.checkRow(FileExercises, line, row); bad != nil {
			return bad
		}
		e, err := domain.NewExercise(row.Name, row.Reps, row.Sets)
		if err != nil {
			return buildError(FileExercises, line, err)
		}
		exercises = append(exercises, e)
		return nil
	})
	return exercises, rejected, err
}

// ImportLevels reads levels.csv: one exact level name per row.
func (im *Importer) ImportLevels(ctx context.Context) ([]domain.Level, []*RowError, error) {
	return im.importLevels(ctx, im.logger)
}

func (im *Importer) importLevels(ctx context.Context, logger *slog.Logger) ([]domain.Level, []*RowError, error) {
	var levels []domain.Level
	rejected, err := im.readFile(ctx, logger, FileLevels, 1, func(line int, cells []string) *domain.InvalidDataError {
		level, ok := domain.LevelFromName(cells[0])
		if !ok {
			return domain.NewInvalidDataError(
				fmt.Sprintf("Invalid level in %s at line %d", FileLevels, line), "level", cells[0])
		}
		levels = append(levels, level)
		return nil
	})
	return levels, rejected, err
}

// ImportIntensities reads intensities.csv: one exact intensity name per row.
func (im *Importer) ImportIntensities(ctx context.Context) ([]domain.Intensity, []*RowError, error) {
	return im.importIntensities(ctx, im.logger)
}

func (im *Importer) importIntensities(ctx context.Context, logger *slog.Logger) ([]domain.Intensity, []*RowError, error) {
	var intensities []domain.Intensity
	rejected, err := im.readFile(ctx, logger, FileIntensities, 1, func(line int, cells []string) *domain.InvalidDataError {
		intensity, ok := domain.IntensityFromName(cells[0])
		if !ok {
			return domain.NewInvalidDataError(
				fmt.Sprintf("Invalid intensity in %s at line %d", FileIntensities, line), "intensity", cells[0])
		}
		intensities = append(intensities, intensity)
		return nil
	})
	return intensities, rejected, err
}

// readFile opens file, skips the header and hands each row with exactly
// columns trimmed cells to handle. Every physical line is parsed on its own,
// so a malformed line never swallows the lines after it. Rows handle
// rejects are collected.
func (im *Importer) readFile(
	ctx context.Context,
	logger *slog.Logger,
	file string,
	columns int,
	handle func(line int, cells []string) *domain.InvalidDataError,
) ([]*RowError, error) {
	location := im.source.Location(file)
	logger = logger.With(slog.String("file", file))

	rc, err := im.source.Open(ctx, file)
	if errors.Is(err, storage.ErrObjectNotFound) {
		logger.Error("CSV file not found", slog.String("location", location))
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, location)
	}
	if err != nil {
		logger.Error("error opening CSV file", slog.String("location", location), slog.Any("error", err))
		return nil, fmt.Errorf("open %s: %w", location, err)
	}
	defer rc.Close()

	logger.Info("starting import", slog.String("location", location))

	var rejected []*RowError
	reject := func(line int, bad *domain.InvalidDataError) {
		re := &RowError{File: file, Line: line, Err: bad}
		rejected = append(rejected, re)
		logger.Warn("skipping invalid row", slog.Int("line", line), slog.String("error", re.Error()))
		im.record(file, metrics.OutcomeRejected)
	}

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	accepted := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return rejected, err
		}
		line++
		if line == 1 {
			continue
		}

		record, err := splitLine(scanner.Text())
		if err != nil {
			reject(line, &domain.InvalidDataError{
				Message: fmt.Sprintf("Malformed row in %s at line %d", file, line),
				Err:     err,
			})
			continue
		}
		if len(record) != columns {
			reject(line, domain.NewInvalidDataError(
				fmt.Sprintf("Invalid number of columns in %s at line %d", file, line),
				"columns", strconv.Itoa(len(record))))
			continue
		}
		cells := make([]string, len(record))
		for i, c := range record {
			cells[i] = strings.TrimSpace(c)
		}
		if bad := handle(line, cells); bad != nil {
			reject(line, bad)
			continue
		}
		accepted++
		im.record(file, metrics.OutcomeAccepted)
	}
	if err := scanner.Err(); err != nil {
		logger.Error("error reading CSV file", slog.Any("error", err))
		return rejected, fmt.Errorf("read %s: %w", location, err)
	}

	logger.Info("import finished", slog.Int("accepted", accepted), slog.Int("rejected", len(rejected)))
	return rejected, nil
}

// splitLine parses one physical line as a CSV record. A blank line is a
// single empty column.
func splitLine(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{text}, nil
	}
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	record, err := r.Read()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, parseErr.Err
		}
		return nil, err
	}
	return record, nil
}

func (im *Importer) record(file, outcome string) {
	if im.recorder != nil {
		im.recorder.RecordImportRow(file, outcome)
	}
}

func parseInt(file string, line int, field, label, value string) (int, *domain.InvalidDataError) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &domain.InvalidDataError{
			Message: fmt.Sprintf("Invalid %s format in %s at line %d", label, file, line),
			Field:   field,
			Value:   value,
		}
	}
	return n, nil
}

// buildError wraps a constructor failure the row checks did not catch.
func buildError(file string, line int, err error) *domain.InvalidDataError {
	if ide, ok := domain.AsInvalidData(err); ok {
		ide.Message = fmt.Sprintf("Invalid %s in %s at line %d", ide.Field, file, line)
		return ide
	}
	return &domain.InvalidDataError{Message: fmt.Sprintf("Invalid data in %s at line %d", file, line), Err: err}
}
