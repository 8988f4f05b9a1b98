package importer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcyxob/fitcoach/internal/domain"
	"github.com/alcyxob/fitcoach/internal/metrics"
	"github.com/alcyxob/fitcoach/internal/storage"
)

type mapSource struct {
	files   map[string]string
	openErr error
}

func (s *mapSource) Location(name string) string { return "mem://" + name }

func (s *mapSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	body, ok := s.files[name]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func seedFiles() map[string]string {
	return map[string]string{
		FileUsers: "firstName,lastName,email\n" +
			"john,doe,john.doe@university.edu\n" +
			"J,Doe,j.doe@university.edu\n" +
			"Jane,Smith\n" +
			"Alice,Johnson, ALICE.JOHNSON@University.edu \n",
		FileCoaches: "firstName,lastName,email,experienceYears\n" +
			"Jane,Smith,jane.smith@university.edu,10\n" +
			"Mike,Ross,mike.ross@university.edu,ten\n" +
			"Old,Timer,old.timer@university.edu,51\n",
		FileExercises: "name,reps,sets\n" +
			"Push-ups,15,3\n" +
			"Squats,0,3\n" +
			"Plank,1,11\n" +
			"Lunges,x,3\n" +
			"Burpees,10,4\n",
		FileLevels:      "level\nBEGINNER\nINTERMEDIATE\nbeginner\nADVANCED\n",
		FileIntensities: "intensity\nLOW\nMEDIUM\nHIGH\nextreme\n",
	}
}

func TestImportAll_SkipsBadRows(t *testing.T) {
	im := New(&mapSource{files: seedFiles()}, WithRunID(func() string { return "run-1" }))

	ds, err := im.ImportAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "run-1", ds.RunID)
	require.Len(t, ds.Users, 2)
	assert.Equal(t, "John", ds.Users[0].FirstName())
	assert.Equal(t, "alice.johnson@university.edu", ds.Users[1].Email())

	require.Len(t, ds.Coaches, 1)
	assert.Equal(t, 10, ds.Coaches[0].ExperienceYears())

	require.Len(t, ds.Exercises, 2)
	assert.Equal(t, "Push-ups", ds.Exercises[0].Name())
	assert.Equal(t, "Burpees", ds.Exercises[1].Name())

	assert.Equal(t, []domain.Level{domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced}, ds.Levels)
	assert.Equal(t, []domain.Intensity{domain.IntensityLow, domain.IntensityMedium, domain.IntensityHigh}, ds.Intensities)

	assert.Len(t, ds.Rejected, 2+2+3+1+1)
}

func TestImportUsers_RowErrors(t *testing.T) {
	im := New(&mapSource{files: seedFiles()})

	_, rejected, err := im.ImportUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, rejected, 2)

	assert.Equal(t, FileUsers, rejected[0].File)
	assert.Equal(t, 3, rejected[0].Line)
	assert.Equal(t, "firstName", rejected[0].Err.Field)
	assert.Equal(t, "J", rejected[0].Err.Value)
	assert.Equal(t, "Invalid first name in users.csv at line 3 [Field: firstName, Invalid Value: 'J']", rejected[0].Error())

	assert.Equal(t, 4, rejected[1].Line)
	assert.Equal(t, "columns", rejected[1].Err.Field)
	assert.Equal(t, "2", rejected[1].Err.Value)
	assert.True(t, errors.Is(rejected[1], domain.ErrInvalid))
}

func TestImportExercises_RowErrors(t *testing.T) {
	im := New(&mapSource{files: seedFiles()})

	_, rejected, err := im.ImportExercises(context.Background())
	require.NoError(t, err)
	require.Len(t, rejected, 3)

	messages := make([]string, len(rejected))
	for i, re := range rejected {
		messages[i] = re.Err.Message
	}
	assert.Equal(t, []string{
		"Invalid reps value in exercises.csv at line 3",
		"Invalid sets value in exercises.csv at line 4",
		"Invalid reps format in exercises.csv at line 5",
	}, messages)
}

func TestImportCoaches_RowErrors(t *testing.T) {
	im := New(&mapSource{files: seedFiles()})

	_, rejected, err := im.ImportCoaches(context.Background())
	require.NoError(t, err)
	require.Len(t, rejected, 2)
	assert.Equal(t, "Invalid experience years format in coaches.csv at line 3", rejected[0].Err.Message)
	assert.Equal(t, "Invalid experience years in coaches.csv at line 4", rejected[1].Err.Message)
	assert.Equal(t, "51", rejected[1].Err.Value)
}

func TestImportUsers_UnclosedQuoteCostsOneRow(t *testing.T) {
	im := New(&mapSource{files: map[string]string{FileUsers: "firstName,lastName,email\n" +
		"\"John,Doe,john.doe@university.edu\n" +
		"Alice,Johnson,alice.johnson@university.edu\n" +
		"Bob,Brown,bob.brown@university.edu\n",
	}})

	users, rejected, err := im.ImportUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].FirstName())
	assert.Equal(t, "Bob", users[1].FirstName())

	require.Len(t, rejected, 1)
	assert.Equal(t, 2, rejected[0].Line)
	assert.Equal(t, "Malformed row in users.csv at line 2", rejected[0].Err.Message)
	assert.ErrorIs(t, rejected[0], csv.ErrQuote)
}

func TestImportUsers_QuotedFieldsAndBlankLines(t *testing.T) {
	im := New(&mapSource{files: map[string]string{FileUsers: "firstName,lastName,email\r\n" +
		"\"John\",\"Doe\",john.doe@university.edu\r\n" +
		"\r\n" +
		"Alice,Johnson,alice.johnson@university.edu",
	}})

	users, rejected, err := im.ImportUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "John", users[0].FirstName())
	assert.Equal(t, "alice.johnson@university.edu", users[1].Email())

	require.Len(t, rejected, 1)
	assert.Equal(t, 3, rejected[0].Line)
	assert.Equal(t, "Invalid number of columns in users.csv at line 3", rejected[0].Err.Message)
	assert.Equal(t, "1", rejected[0].Err.Value)
}

func TestImportUsers_OversizedLineFails(t *testing.T) {
	long := strings.Repeat("x", maxLineBytes+1)
	im := New(&mapSource{files: map[string]string{FileUsers: "firstName,lastName,email\n" + long + "\n"}})

	_, _, err := im.ImportUsers(context.Background())
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestImportLevels_StrictNames(t *testing.T) {
	im := New(&mapSource{files: map[string]string{FileLevels: "level\n ADVANCED \nadv\n"}})

	levels, rejected, err := im.ImportLevels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Level{domain.LevelAdvanced}, levels)
	require.Len(t, rejected, 1)
	assert.Equal(t, "adv", rejected[0].Err.Value)
}

func TestImportAll_MissingFileIsFatal(t *testing.T) {
	files := seedFiles()
	delete(files, FileExercises)

	ds, err := New(&mapSource{files: files}).ImportAll(context.Background())
	assert.Nil(t, ds)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceMissing)
	assert.Contains(t, err.Error(), "mem://exercises.csv")
}

func TestImportAll_OpenErrorsAreWrapped(t *testing.T) {
	boom := errors.New("access denied")
	_, err := New(&mapSource{openErr: boom}).ImportAll(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrSourceMissing)
}

func TestImportAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(&mapSource{files: seedFiles()}).ImportAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImportAll_EmptyFilesYieldNothing(t *testing.T) {
	files := map[string]string{
		FileUsers: "", FileCoaches: "header\n", FileExercises: "", FileLevels: "", FileIntensities: "",
	}
	ds, err := New(&mapSource{files: files}).ImportAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ds.Users)
	assert.Empty(t, ds.Coaches)
	assert.Empty(t, ds.Rejected)
}

func TestImportAll_RecordsMetricsAndLogs(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	im := New(&mapSource{files: seedFiles()},
		WithMetrics(collector),
		WithLogger(logger),
		WithRunID(func() string { return "run-42" }),
	)
	_, err := im.ImportAll(context.Background())
	require.NoError(t, err)

	summary, err := metrics.Summary(reg)
	require.NoError(t, err)
	assert.Equal(t, 2.0, summary["fitcoach_import_rows_total{file=users.csv,outcome=accepted}"])
	assert.Equal(t, 2.0, summary["fitcoach_import_rows_total{file=users.csv,outcome=rejected}"])
	assert.Equal(t, 3.0, summary["fitcoach_import_rows_total{file=exercises.csv,outcome=rejected}"])
	series, err := testutil.GatherAndCount(reg, "fitcoach_import_rows_total")
	require.NoError(t, err)
	assert.Equal(t, 10, series)

	out := buf.String()
	assert.Contains(t, out, `"run_id":"run-42"`)
	assert.Contains(t, out, `"msg":"skipping invalid row"`)
	assert.Contains(t, out, `"level":"WARN"`)
}

func TestImportAll_DefaultRunIDIsUUID(t *testing.T) {
	ds, err := New(&mapSource{files: seedFiles()}).ImportAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.RunID, 36)
}
