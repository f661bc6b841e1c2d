package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	httpadapter "github.com/glot-run/glotctl/internal/adapters/http"
	"github.com/glot-run/glotctl/internal/app"
	"github.com/glot-run/glotctl/internal/cliconfig"
	"github.com/glot-run/glotctl/internal/domain"
	"github.com/glot-run/glotctl/pkg/log"
)

const longHelp = `
Administer a glot-style code runner service from the command line.

glotctl talks to the service's HTTP API: it registers language runtime
descriptors with the admin endpoint, keeps the registry in sync with a
TOML manifest, and submits code for execution.

Configuration comes from flags, GLOTCTL_* environment variables, or a
config file (default: $HOME/.glotctl/config.toml), in that order of
precedence.
`

const exampleUsage = `  glotctl register --name bash --image glot/bash:latest --admin-token tamed-busman-want-vendetta
  glotctl sync --manifest languages.toml --watch
  glotctl run --language bash main.sh`

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	zl := cliconfig.Logger()
	logger := log.NewZerologLogger(zl)

	root := &cobra.Command{
		Use:     "glotctl",
		Short:   "Administer a glot-style code runner service",
		Long:    strings.TrimSpace(longHelp),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
	}

	// Persistent flags shared by all subcommands
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.glotctl/config.toml)")
	root.PersistentFlags().StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the code runner service")
	root.PersistentFlags().StringVar(&cfg.AdminToken, "admin-token", cfg.AdminToken, "token for the admin endpoint")
	root.PersistentFlags().StringVar(&cfg.AccessToken, "access-token", cfg.AccessToken, "token for the run endpoint")
	root.PersistentFlags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout for admin requests")
	root.PersistentFlags().DurationVar(&cfg.RunTimeout, "run-timeout", cfg.RunTimeout, "HTTP timeout for run requests")

	root.AddCommand(newRegisterCmd(&cfg, &cfgPath, logger))
	root.AddCommand(newSyncCmd(&cfg, &cfgPath, logger))
	root.AddCommand(newRunCmd(&cfg, &cfgPath, logger))

	if err := root.Execute(); err != nil {
		zl.Error().Err(err).Msg("glotctl")
		os.Exit(1)
	}
}

// resolveConfig loads the config file (default $HOME/.glotctl/config.toml),
// applies GLOTCTL_* environment variables, then validates. Values from
// explicitly set flags win over both.
func resolveConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	// Build set of changed flags
	changed := map[string]bool{}
	visit := func(f *pflag.Flag) { changed[f.Name] = true }
	cmd.Flags().Visit(visit)
	cmd.InheritedFlags().Visit(visit)

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	zl := cliconfig.Logger()
	zl.Debug().Interface("config", cfg.Masked()).Msg("configuration")
	return nil
}

func newRegisterCmd(cfg *cliconfig.Config, cfgPath *string, logger log.Logger) *cobra.Command {
	var name, version, image string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a language runtime with the admin endpoint",
		Long: strings.TrimSpace(`
Register a language runtime descriptor (name, version, container image)
with the service's admin endpoint. Issues a single PUT; the same
invocation always sends the same request.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}
			if cfg.AdminToken == "" {
				return fmt.Errorf("admin-token is required")
			}
			if name == "" {
				return fmt.Errorf("name is required")
			}
			if image == "" {
				image = domain.DefaultImage(name, version)
			}

			admin := httpadapter.NewAdminClient(
				&http.Client{Timeout: cfg.HTTPTimeout},
				logger, cfg.BaseURL, cfg.AdminToken)

			return admin.Register(cmd.Context(), domain.Language{
				Name:    name,
				Version: version,
				Image:   image,
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "language name (e.g. bash)")
	cmd.Flags().StringVar(&version, "version", "latest", "language version tag")
	cmd.Flags().StringVar(&image, "image", "", "container image (default: glot/<name>:<version>)")

	return cmd
}

func newSyncCmd(cfg *cliconfig.Config, cfgPath *string, logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Register every language in the manifest",
		Long: strings.TrimSpace(`
Read a TOML manifest of language descriptors and register each one with
the admin endpoint, in manifest order. With --watch, keep running and
re-sync whenever the manifest changes.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}
			if cfg.AdminToken == "" {
				return fmt.Errorf("admin-token is required")
			}

			admin := httpadapter.NewAdminClient(
				&http.Client{Timeout: cfg.HTTPTimeout},
				logger, cfg.BaseURL, cfg.AdminToken)
			syncer := app.NewSyncer(admin, logger, cfg.ManifestPath)

			if !cfg.Watch {
				return syncer.Sync(cmd.Context())
			}

			// Setup signal handling for graceful shutdown
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				logger.Info("received signal, stopping...")
				cancel()
			}()

			return syncer.Watch(ctx)
		},
	}

	cmd.Flags().StringVar(&cfg.ManifestPath, "manifest", cfg.ManifestPath, "path to the language manifest")
	cmd.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "keep running and re-sync on manifest changes")

	return cmd
}

func newRunCmd(cfg *cliconfig.Config, cfgPath *string, logger log.Logger) *cobra.Command {
	var language, version, image, stdin, command string

	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Execute source files on the service",
		Long: strings.TrimSpace(`
Submit one or more source files to the service's run endpoint and print
the result: the run's stdout goes to stdout, its stderr to stderr. A
run that reports an error fails the command.`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}
			if cfg.AccessToken == "" {
				return fmt.Errorf("access-token is required")
			}
			if language == "" {
				return fmt.Errorf("language is required")
			}
			if image == "" {
				image = domain.DefaultImage(language, version)
			}

			files := make([]domain.RunFile, 0, len(args))
			for _, p := range args {
				b, err := os.ReadFile(p)
				if err != nil {
					return fmt.Errorf("read %s: %w", p, err)
				}
				files = append(files, domain.RunFile{
					Name:    filepath.Base(p),
					Content: string(b),
				})
			}

			payload := domain.RunPayload{Language: language, Files: files}
			if cmd.Flags().Changed("stdin") {
				payload.Stdin = &stdin
			}
			if cmd.Flags().Changed("command") {
				payload.Command = &command
			}

			runner := httpadapter.NewRunClient(
				&http.Client{Timeout: cfg.RunTimeout},
				logger, cfg.BaseURL, cfg.AccessToken)

			result, err := runner.Run(cmd.Context(), domain.RunRequest{
				Image:   image,
				Payload: payload,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(os.Stdout, result.Stdout)
			fmt.Fprint(os.Stderr, result.Stderr)
			if result.Error != "" {
				return fmt.Errorf("run failed: %s", result.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "language to run (e.g. bash)")
	cmd.Flags().StringVar(&version, "version", "latest", "language version tag")
	cmd.Flags().StringVar(&image, "image", "", "container image (default: glot/<language>:<version>)")
	cmd.Flags().StringVar(&stdin, "stdin", "", "stdin passed to the run")
	cmd.Flags().StringVar(&command, "command", "", "override the default run command")

	return cmd
}
