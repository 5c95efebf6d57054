// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// servicesCommand handles service monitoring operations
func servicesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "services",
		Aliases: []string{"svc"},
		Usage:   "Monitor and restart bot services",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List services with status and uptime",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ServicesList,
			},
			{
				Name:  "restart",
				Usage: "Restart a service and report its settled status",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ServicesRestart,
			},
		},
	}
}

// libraryCommand handles song catalog operations
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Browse and maintain the song catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List songs with optional filters",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Filter by title, artist, or album substring",
					},
					&cli.StringFlag{
						Name:  "genre",
						Usage: "Filter by genre tag",
						Value: "all",
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "Filter by source tag",
						Value: "all",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort order (recent, title, artist, plays, likes)",
						Value: "recent",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of songs to load",
						Value: 500,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.LibraryList,
			},
			{
				Name:  "stats",
				Usage: "Summarize the catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.LibraryStats,
			},
			{
				Name:  "export",
				Usage: "Export the catalog to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (csv, markdown, json)",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of songs to export",
						Value: 500,
					},
				},
				Action: r.LibraryExport,
			},
			{
				Name:  "enrich",
				Usage: "Backfill Spotify metadata for songs missing it",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of songs to process",
						Value: 100,
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Spotify searches per second",
						Value: 3,
					},
				},
				Action: r.LibraryEnrich,
			},
		},
	}
}

// serveCommand runs the dashboard API
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the dashboard API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Listen host (overrides config)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Listen port (overrides config)",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand initializes local state
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and database",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Create a config.toml from the embedded template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "db",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand launches the interactive dashboard
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Launch the interactive dashboard",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of songs to load into the library panel",
				Value: 500,
			},
		},
		Action: r.TUI,
	}
}
