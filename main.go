package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"slices"
	"strings"
	"sync"

	"github.com/ccfrost/recpath/internal/config"
	"github.com/ccfrost/recpath/internal/frontend"
	"github.com/ccfrost/recpath/internal/lib"
	"github.com/spf13/cobra"
)

const recpath = "recpath"

func newHandler(cfg config.RecpathConfig, fe lib.Frontend) (*lib.Handler, error) {
	tmpl, err := lib.ParseTemplate(cfg.SubdirTemplate, lib.DefaultPlaceholders)
	if err != nil {
		return nil, fmt.Errorf("invalid subdir_template: %w", err)
	}
	return lib.NewHandler(fe, cfg.Naming, lib.WithTemplate(tmpl)), nil
}

func printSettings(s config.Settings) {
	fmt.Printf("use_active_context = %t\n", s.UseActiveContext)
	fmt.Printf("mode = %q\n", s.Mode)
	fmt.Printf("fallback_name = %q\n", s.FallbackName)
}

func main() {
	var configPath string
	var cfg config.RecpathConfig

	rootCmd := cobra.Command{
		Use:           recpath,
		Short:         "Put each recording in a dated, named directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file")

	pathCmd := cobra.Command{
		Use:   "path",
		Short: "Print the directory the next recording would go to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHandler(cfg, frontend.FromConfig(cfg))
			if err != nil {
				return err
			}
			rp, err := h.Preview()
			if errors.Is(err, lib.ErrNoOutput) {
				return fmt.Errorf("%w: set output_path in %s", err, cfg.Path())
			}
			if err != nil {
				return err
			}
			fmt.Println(rp.Final)
			return nil
		},
	}
	rootCmd.AddCommand(&pathCmd)

	startCmd := cobra.Command{
		Use:   "start",
		Short: "Create the recording directory and redirect the output to it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fe := frontend.FromConfig(cfg)
			h, err := newHandler(cfg, fe)
			if err != nil {
				return err
			}
			h.Loaded()
			if _, err := h.RecordingStarting(); err != nil {
				return err
			}
			fmt.Println(fe.OutputPath())
			return nil
		},
	}
	rootCmd.AddCommand(&startCmd)

	watchCmd := cobra.Command{
		Use:   "watch",
		Short: "Handle frontend events read from stdin",
		Long: `Read one frontend event name per line from stdin and handle it.
On recording_starting the output is redirected and the new path printed.
Edits to the [naming] section of the config file apply to the next event.`,
		Args: cobra.NoArgs,
		// Watch loads the config itself.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			var mu sync.Mutex
			var h *lib.Handler
			initial, err := config.Watch(configPath, func(next config.RecpathConfig) {
				mu.Lock()
				defer mu.Unlock()
				cfg = next
				if h != nil {
					h.UpdateSettings(next.Naming)
				}
			})
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := initial.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			fe := frontend.FromConfig(initial)
			mu.Lock()
			cfg = initial
			h, err = newHandler(initial, fe)
			mu.Unlock()
			if err != nil {
				return err
			}
			h.Loaded()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return handleEvents(ctx, cmd.InOrStdin(), func(ev lib.Event) {
				if ev != lib.EventRecordingStarting {
					h.OnEvent(ev)
					return
				}
				// The host restores the configured output path before each recording.
				mu.Lock()
				base := cfg.OutputPath
				mu.Unlock()
				if base == "" {
					fe.ClearOutput()
				} else {
					fe.SetOutput(base)
				}
				h.OnEvent(ev)
				fmt.Fprintln(cmd.OutOrStdout(), fe.OutputPath())
			})
		},
	}
	rootCmd.AddCommand(&watchCmd)

	settingsCmd := cobra.Command{
		Use:   "settings",
		Short: "Show or change the naming settings",
	}
	rootCmd.AddCommand(&settingsCmd)

	settingsShowCmd := cobra.Command{
		Use:   "show",
		Short: "Print the naming settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printSettings(cfg.Naming)
		},
	}
	settingsCmd.AddCommand(&settingsShowCmd)

	settingsSourcesCmd := cobra.Command{
		Use:   "sources",
		Short: "List the source names that can be used as the fallback name",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range frontend.FromConfig(cfg).EligibleNames(frontend.KindInput) {
				fmt.Println(name)
			}
		},
	}
	settingsCmd.AddCommand(&settingsSourcesCmd)

	settingsSetCmd := cobra.Command{
		Use:   "set",
		Short: "Change the naming settings",
		Long: `Change the naming settings. Only the flags given are changed.
The config file is created if it does not exist.`,
		Args: cobra.NoArgs,
		// The config file may not exist yet.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := config.LoadConfig(configPath)
			if errors.Is(err, fs.ErrNotExist) {
				current = config.RecpathConfig{
					Naming: config.Settings{UseActiveContext: true, Mode: config.ModeScene},
				}
			} else if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			s := current.Naming

			flags := cmd.Flags()
			if flags.Changed("use-active-context") {
				if s.UseActiveContext, err = flags.GetBool("use-active-context"); err != nil {
					return err
				}
			}
			if flags.Changed("mode") {
				mode, err := flags.GetString("mode")
				if err != nil {
					return err
				}
				s.Mode = config.Mode(mode)
			}
			if flags.Changed("fallback-name") {
				if s.FallbackName, err = flags.GetString("fallback-name"); err != nil {
					return err
				}
				eligible := frontend.FromConfig(current).EligibleNames(frontend.KindInput)
				if s.FallbackName != "" && len(eligible) > 0 && !slices.Contains(eligible, s.FallbackName) {
					return fmt.Errorf("fallback name %q is not one of the input sources: %s",
						s.FallbackName, strings.Join(eligible, ", "))
				}
			}

			if err := config.SaveSettings(configPath, s); err != nil {
				return err
			}
			printSettings(s)
			return nil
		},
	}
	settingsSetCmd.Flags().Bool("use-active-context", true, "Name recordings after the active scene or source")
	settingsSetCmd.Flags().String("mode", string(config.ModeScene), `Active naming context: "scene" or "source"`)
	settingsSetCmd.Flags().String("fallback-name", "", "Name used when the active context is not used")
	settingsCmd.AddCommand(&settingsSetCmd)

	organizeCmd := cobra.Command{
		Use:   "organize",
		Short: "File finished recordings from the output directory into dated directories",
		Long: `Move recordings lying directly in the output directory into the
directories recpath would have used, dated by each file's modification time.
Do not run it while recording.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			keep, err := flags.GetBool("keep")
			if err != nil {
				return fmt.Errorf("invalid keep flag: %w", err)
			}
			name, err := flags.GetString("name")
			if err != nil {
				return fmt.Errorf("invalid name flag: %w", err)
			}
			if name == "" {
				name = lib.ResolveNamingToken(cfg.Naming, frontend.FromConfig(cfg))
			}
			base, err := flags.GetString("base")
			if err != nil {
				return fmt.Errorf("invalid base flag: %w", err)
			}
			if base == "" {
				base = cfg.OutputPath
			}
			if base == "" {
				return fmt.Errorf("no output directory: set output_path in %s or pass --base", cfg.Path())
			}
			tmpl, err := lib.ParseTemplate(cfg.SubdirTemplate, lib.DefaultPlaceholders)
			if err != nil {
				return fmt.Errorf("invalid subdir_template: %w", err)
			}

			res, err := lib.Organize(cmd.Context(), lib.OrganizeOptions{
				Base:       base,
				Name:       name,
				Template:   tmpl,
				Extensions: cfg.Organize.Extensions,
				Keep:       keep,
				Progress:   cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			fmt.Println()
			for _, entry := range res.Dirs {
				fmt.Printf("\t%s: %d recordings\n", entry.RelativeDir, entry.Count)
			}
			return nil
		},
	}
	organizeCmd.Flags().StringP("name", "n", "", "Name directory to use (defaults to the current naming context)")
	organizeCmd.Flags().StringP("base", "b", "", "Directory holding the recordings (defaults to output_path)")
	organizeCmd.Flags().BoolP("keep", "k", false, "Copy the recordings instead of moving them")
	rootCmd.AddCommand(&organizeCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// handleEvents calls handle with each non-empty line read from r until the
// input ends or ctx is done. A read blocked on r does not delay the return
// after ctx is done.
func handleEvents(ctx context.Context, r io.Reader, handle func(lib.Event)) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					return err
				default:
					return nil
				}
			}
			if ctx.Err() != nil {
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			handle(lib.Event(line))
		}
	}
}
