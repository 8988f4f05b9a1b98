package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/alcyxob/fitcoach/internal/config"
	"github.com/alcyxob/fitcoach/internal/domain"
	"github.com/alcyxob/fitcoach/internal/importer"
	"github.com/alcyxob/fitcoach/internal/logger"
	"github.com/alcyxob/fitcoach/internal/metrics"
	"github.com/alcyxob/fitcoach/internal/service"
	"github.com/alcyxob/fitcoach/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fitcoach: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("fitcoach", pflag.ContinueOnError)
	configDir := flags.String("config", ".", "directory holding config.yaml")
	dataDir := flags.String("data-dir", "", "override import.data_dir")
	logLevel := flags.String("log-level", "", "override log.level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *dataDir != "" {
		cfg.Import.DataDir = *dataDir
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log := logger.Setup(out, cfg.Log.Level)
	log.Info("starting fitcoach", slog.String("source", cfg.Import.Source))

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	// --- Import ---
	ds, err := importDataset(ctx, cfg, log, collector)
	if err != nil {
		log.Error("import failed", slog.Any("error", err))
		return err
	}

	// --- Repositories & Services ---
	repos, err := service.NewMemoryRepositories(log, collector)
	if err != nil {
		return err
	}
	roster := service.NewRosterService(repos, log)
	seeded := roster.Seed(ctx, ds)
	log.Info("repositories seeded",
		slog.Int("added", seeded.Added),
		slog.Int("duplicates", seeded.Duplicates),
		slog.Int("invalid", seeded.Invalid),
	)

	if err := demonstrate(ctx, log, roster); err != nil {
		return err
	}

	// --- Summary ---
	summary, err := metrics.Summary(reg)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Float64(k, summary[k]))
	}
	log.Info("run complete", slog.Group("metrics", attrs...))
	return nil
}

// importDataset bounds the source setup and CSV import by import.timeout.
func importDataset(ctx context.Context, cfg config.Config, log *slog.Logger, recorder importer.RowRecorder) (*importer.Dataset, error) {
	importCtx := ctx
	if cfg.Import.Timeout > 0 {
		var cancel context.CancelFunc
		importCtx, cancel = context.WithTimeout(ctx, cfg.Import.Timeout)
		defer cancel()
	}
	source, err := storage.NewSource(importCtx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init source: %w", err)
	}
	return importer.New(source, importer.WithLogger(log), importer.WithMetrics(recorder)).ImportAll(importCtx)
}

// demonstrate walks through the roster flow on top of the imported data.
func demonstrate(ctx context.Context, log *slog.Logger, roster service.RosterService) error {
	// First write wins on a shared email.
	if _, err := roster.RegisterUser(ctx, "John", "Doe", "john.doe@university.edu"); err != nil && !errors.Is(err, service.ErrDuplicate) {
		return err
	}
	if _, err := roster.RegisterUser(ctx, "Jane", "Doe", "john.doe@university.edu"); err != nil {
		log.Info("second user with same email rejected", slog.Any("error", err))
	}

	if _, ok := domain.CreateExercise("", -1, 0); !ok {
		log.Info("factory rejected invalid exercise", slog.String("name", ""), slog.Int("reps", -1), slog.Int("sets", 0))
	}

	coach, err := roster.RegisterCoach(ctx, "Maria", "Lopez", "maria.lopez@university.edu", 8)
	if err != nil && !errors.Is(err, service.ErrDuplicate) {
		return err
	}
	coachEmail := "maria.lopez@university.edu"
	if coach != nil {
		coachEmail = coach.Email()
	}
	client, err := roster.EnrollClient(ctx, "Bob", "Brown", "bob.brown@university.edu", domain.LevelBeginner, coachEmail)
	if err != nil {
		return err
	}

	for _, ex := range []struct {
		name       string
		reps, sets int
	}{{"Push-ups", 15, 3}, {"Squats", 20, 4}, {"Plank", 1, 3}} {
		if _, err := roster.AddExercise(ctx, ex.name, ex.reps, ex.sets); err != nil && !errors.Is(err, service.ErrDuplicate) {
			return err
		}
	}
	if _, err := roster.AddWorkout(ctx, "Evening Strength", 45, domain.IntensityHigh, []string{"Push-ups", "Squats", "Plank"}); err != nil {
		return err
	}

	plan, err := roster.SchedulePlan(ctx, client.Email(), time.Now().Add(7*24*time.Hour), []string{"Evening Strength"})
	if err != nil {
		return err
	}
	log.Info("plan ready", slog.String("plan", plan.String()))

	if _, err := roster.RecordProgress(ctx, client.Email(), time.Now(), 82.5, 25.1); err != nil {
		return err
	}

	assigned, err := roster.CoachOf(ctx, client.Email())
	if err != nil {
		return err
	}
	log.Info("client coached by", slog.String("client", client.FullName()), slog.String("coach", assigned.FullName()))

	log.Info("roster totals",
		slog.Int("users", len(roster.Users(ctx))),
		slog.Int("coaches", len(roster.Coaches(ctx))),
		slog.Int("clients", len(roster.Clients(ctx))),
		slog.Int("exercises", len(roster.Exercises(ctx))),
		slog.Int("workouts", len(roster.Workouts(ctx))),
	)
	return nil
}
