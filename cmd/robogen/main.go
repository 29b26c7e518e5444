package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jorge-barreto/robogen/internal/config"
	"github.com/jorge-barreto/robogen/internal/doctor"
	"github.com/jorge-barreto/robogen/internal/docs"
	"github.com/jorge-barreto/robogen/internal/gemini"
	"github.com/jorge-barreto/robogen/internal/pipeline"
	"github.com/jorge-barreto/robogen/internal/scaffold"
	"github.com/jorge-barreto/robogen/internal/state"
	"github.com/jorge-barreto/robogen/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "robogen",
		Usage:       "Generate Robot Framework test suites from application source",
		Description: "Run 'robogen docs' for documentation on configuration, pipeline stages, and artifacts.",
		Commands: []*cli.Command{
			initCmd(),
			runCmd(),
			statusCmd(),
			doctorCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Generate a test suite for an application",
		ArgsUsage: "<app-path>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "context", Aliases: []string{"c"}, Usage: "Extra context or overrides for every prompt"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output directory (overrides config)"},
			&cli.BoolFlag{Name: "clear-output", Usage: "Remove the output directory before writing"},
			&cli.StringFlag{Name: "api-key", Usage: "Gemini API key (overrides the environment)"},
			&cli.StringFlag{Name: "model", Usage: "Gemini model (overrides config)"},
			&cli.BoolFlag{Name: "skip-validation", Usage: "Skip the validation stage"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the stage plan without calling the API"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			appPath := cmd.Args().First()
			if appPath == "" {
				return fmt.Errorf("app-path argument is required")
			}
			appAbs, err := filepath.Abs(appPath)
			if err != nil {
				return err
			}
			info, err := os.Stat(appAbs)
			if err != nil {
				return fmt.Errorf("application path %s: %w", appPath, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("application path %s is not a directory", appPath)
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}
			cfg, err := config.Load(config.Path(projectRoot))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if m := cmd.String("model"); m != "" {
				cfg.Model = m
			}
			if o := cmd.String("output"); o != "" {
				cfg.OutputDir = o
			}
			outputRoot := cfg.OutputDir
			if !filepath.IsAbs(outputRoot) {
				outputRoot = filepath.Join(projectRoot, outputRoot)
			}

			run := state.NewRun(appAbs, outputRoot)
			base := filepath.Join(projectRoot, config.Dir, "artifacts")

			p := &pipeline.Pipeline{
				Config:         cfg,
				Run:            run,
				RunDir:         state.RunDir(base, run.ID),
				AppDir:         appAbs,
				OutputRoot:     outputRoot,
				UserContext:    cmd.String("context"),
				ClearOutput:    cmd.Bool("clear-output"),
				SkipValidation: cmd.Bool("skip-validation"),
			}

			if cmd.Bool("dry-run") {
				p.DryRunPrint()
				return nil
			}

			apiKey, err := gemini.ResolveAPIKey(cmd.String("api-key"), cfg.APIKeyEnv)
			if err != nil {
				return err
			}
			client, err := gemini.NewClient(ctx, apiKey, cfg.Model, time.Duration(cfg.RequestTimeout)*time.Minute)
			if err != nil {
				return err
			}
			p.Generator = client

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			return p.Execute(ctx)
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the latest run",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}
			base := filepath.Join(projectRoot, config.Dir, "artifacts")
			runDir, err := state.LatestRunDir(base)
			if err != nil {
				return err
			}
			run, err := state.Load(runDir)
			if err != nil {
				return fmt.Errorf("loading run state: %w", err)
			}
			ux.RenderStatus(run, runDir)
			return nil
		},
	}
}

func doctorCmd() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Diagnose the latest failed run using AI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api-key", Usage: "Gemini API key (overrides the environment)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}
			cfg, err := config.Load(config.Path(projectRoot))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			base := filepath.Join(projectRoot, config.Dir, "artifacts")
			runDir, err := state.LatestRunDir(base)
			if err != nil {
				return err
			}
			run, err := state.Load(runDir)
			if err != nil {
				return fmt.Errorf("loading run state: %w", err)
			}

			apiKey, err := gemini.ResolveAPIKey(cmd.String("api-key"), cfg.APIKeyEnv)
			if err != nil {
				return err
			}
			client, err := gemini.NewClient(ctx, apiKey, cfg.Model, time.Duration(cfg.RequestTimeout)*time.Minute)
			if err != nil {
				return err
			}

			return doctor.Run(ctx, client, runDir, run)
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new .robogen/ directory with a config file",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'robogen docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}
