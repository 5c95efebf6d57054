package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/repositories"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
	tu "github.com/JamesABrownlee/vexo2-5/internal/testing"
)

func liveServices() []models.Service {
	return []models.Service{
		{ID: "bot", Name: "Discord Bot", Status: models.StatusOnline, Uptime: "3h 4m", Restartable: true},
		{ID: "dashboard", Name: "Dashboard API", Status: models.StatusOnline, Restartable: false},
	}
}

// newTestRunner builds a runner writing to a buffer, backed by a
// scripted status API and a temp-file catalog.
func newTestRunner(t *testing.T, status *tu.ScriptedStatusAPI) (*Runner, *bytes.Buffer) {
	t.Helper()

	config := shared.DefaultConfig()
	config.Database.Path = filepath.Join(t.TempDir(), "vexo.db")

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config: config,
		Status: status,
		Output: output,
	})
	return runner, output
}

// seedCatalog inserts songs directly through the repository.
func seedCatalog(t *testing.T, r *Runner, songs ...repositories.Song) {
	t.Helper()

	db, err := r.openDatabase()
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	repo := repositories.NewLibraryRepository(db)
	for _, song := range songs {
		if _, err := repo.InsertSong(context.Background(), song); err != nil {
			t.Fatalf("failed to seed song: %v", err)
		}
	}
}

func runCommand(t *testing.T, r *Runner, args ...string) error {
	t.Helper()

	app := &cli.Command{
		Name:     "vexo",
		Commands: r.register(),
	}
	return app.Run(context.Background(), append([]string{"vexo"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			status := &tu.ScriptedStatusAPI{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
				Status:     status,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
			if runner.status != status {
				t.Error("expected status client to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil status builds a client from config", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.status == nil {
				t.Error("expected a status client to be constructed")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		runner, output := newTestRunner(t, &tu.ScriptedStatusAPI{})

		if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
			t.Fatalf("failed to write JSON: %v", err)
		}
		if got := output.String(); got != "{\"key\":\"value\"}\n" {
			t.Errorf("unexpected output: %q", got)
		}
	})

	t.Run("writeJSON propagates write errors", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

		if err := runner.writeJSON(map[string]string{}, false); err == nil {
			t.Error("expected write error")
		}
	})
}

func TestServicesCommands(t *testing.T) {
	t.Run("List Prints Services", func(t *testing.T) {
		status := &tu.ScriptedStatusAPI{
			Fetches: []tu.FetchResult{{Services: liveServices()}},
		}
		runner, output := newTestRunner(t, status)

		if err := runCommand(t, runner, "services", "list"); err != nil {
			t.Fatalf("command failed: %v", err)
		}

		got := output.String()
		if !strings.Contains(got, "2/2 online") {
			t.Errorf("expected online count in header:\n%s", got)
		}
		if !strings.Contains(got, "Discord Bot") {
			t.Errorf("expected service name:\n%s", got)
		}
		if !strings.Contains(got, "uptime: 3h 4m") {
			t.Errorf("expected uptime line:\n%s", got)
		}
	})

	t.Run("List Falls Back When API Unreachable", func(t *testing.T) {
		status := &tu.ScriptedStatusAPI{
			Fetches: []tu.FetchResult{{Err: context.DeadlineExceeded}},
		}
		runner, output := newTestRunner(t, status)

		if err := runCommand(t, runner, "services", "list"); err != nil {
			t.Fatalf("command failed: %v", err)
		}

		got := output.String()
		if !strings.Contains(got, "fallback") {
			t.Errorf("expected fallback warning:\n%s", got)
		}
		if !strings.Contains(got, "Dashboard API") {
			t.Errorf("expected fallback dashboard entry:\n%s", got)
		}
	})

	t.Run("List JSON Output", func(t *testing.T) {
		status := &tu.ScriptedStatusAPI{
			Fetches: []tu.FetchResult{{Services: liveServices()}},
		}
		runner, output := newTestRunner(t, status)

		if err := runCommand(t, runner, "services", "list", "--json"); err != nil {
			t.Fatalf("command failed: %v", err)
		}
		if !strings.Contains(output.String(), `"id": "bot"`) {
			t.Errorf("expected wire field names:\n%s", output.String())
		}
	})

	t.Run("Restart Requires An ID", func(t *testing.T) {
		runner, _ := newTestRunner(t, &tu.ScriptedStatusAPI{
			Fetches: []tu.FetchResult{{Services: liveServices()}},
		})

		if err := runCommand(t, runner, "services", "restart"); err == nil {
			t.Error("expected error for missing id")
		}
	})

	t.Run("Restart Rejects Non-Restartable Service", func(t *testing.T) {
		status := &tu.ScriptedStatusAPI{
			Fetches: []tu.FetchResult{{Services: liveServices()}},
		}
		runner, _ := newTestRunner(t, status)

		if err := runCommand(t, runner, "services", "restart", "dashboard"); err == nil {
			t.Error("expected error for non-restartable service")
		}
		if len(status.RestartCalls) != 0 {
			t.Errorf("expected no restart calls, got %v", status.RestartCalls)
		}
	})
}

func TestLibraryCommands(t *testing.T) {
	t.Run("List Filters By Query", func(t *testing.T) {
		runner, output := newTestRunner(t, &tu.ScriptedStatusAPI{})
		seedCatalog(t, runner,
			repositories.Song{Title: "Midnight City", ArtistName: "M83"},
			repositories.Song{Title: "Dynamite", ArtistName: "BTS"},
		)

		if err := runCommand(t, runner, "library", "list", "--query", "midnight"); err != nil {
			t.Fatalf("command failed: %v", err)
		}

		got := output.String()
		if !strings.Contains(got, "Midnight City") {
			t.Errorf("expected match in output:\n%s", got)
		}
		if strings.Contains(got, "Dynamite") {
			t.Errorf("expected non-matching song excluded:\n%s", got)
		}
		if !strings.Contains(got, "1 of 2 songs") {
			t.Errorf("expected filtered count in header:\n%s", got)
		}
	})

	t.Run("List Rejects Unknown Sort", func(t *testing.T) {
		runner, _ := newTestRunner(t, &tu.ScriptedStatusAPI{})

		if err := runCommand(t, runner, "library", "list", "--sort", "bogus"); err == nil {
			t.Error("expected error for unknown sort key")
		}
	})

	t.Run("Stats Summarizes Catalog", func(t *testing.T) {
		runner, output := newTestRunner(t, &tu.ScriptedStatusAPI{})
		seedCatalog(t, runner,
			repositories.Song{Title: "One", ArtistName: "A"},
			repositories.Song{Title: "Two", ArtistName: "B"},
		)

		if err := runCommand(t, runner, "library", "stats"); err != nil {
			t.Fatalf("command failed: %v", err)
		}

		got := output.String()
		if !strings.Contains(got, "Songs:    2") {
			t.Errorf("expected song count:\n%s", got)
		}
		if !strings.Contains(got, "Artists:  2") {
			t.Errorf("expected artist count:\n%s", got)
		}
	})

	t.Run("Export Writes File", func(t *testing.T) {
		runner, output := newTestRunner(t, &tu.ScriptedStatusAPI{})
		seedCatalog(t, runner, repositories.Song{Title: "One", ArtistName: "A"})

		path := filepath.Join(t.TempDir(), "library.csv")
		if err := runCommand(t, runner, "library", "export", "--output", path); err != nil {
			t.Fatalf("command failed: %v", err)
		}

		tu.AssertFileExists(t, path)
		if !strings.Contains(output.String(), "Exported 1 songs") {
			t.Errorf("expected export summary:\n%s", output.String())
		}
	})

	t.Run("Enrich Requires Spotify Credentials", func(t *testing.T) {
		runner, _ := newTestRunner(t, &tu.ScriptedStatusAPI{})

		if err := runCommand(t, runner, "library", "enrich"); err == nil {
			t.Error("expected error for missing credentials")
		}
	})
}
