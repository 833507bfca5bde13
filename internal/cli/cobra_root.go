package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"ritual/internal/api"
	"ritual/internal/config"
	"ritual/internal/logging"
)

// APIFactory opens the store described by cfg. The returned function closes it.
type APIFactory func(cfg *config.Config) (api.API, func() error, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	loader  *config.Loader
	factory APIFactory

	config  *config.Config
	app     *App
	closeFn func() error
}

// NewRootCommand creates the root cobra command with global flags. The
// configuration is loaded and the store opened only once a command runs, so
// that flags can change where the store lives.
func NewRootCommand(loader *config.Loader, factory APIFactory) *RootCommand {
	root := &RootCommand{
		loader:  loader,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "ritual",
		Short: "A command-line daily task tracker",
		Long: `Ritual is a command-line daily task tracker.

FEATURES:
  • Plan each day as an ordered checklist
  • Recurring daily and weekly templates proposed at the start of the day
  • Unfinished tasks carried over from yesterday on request
  • Experience points and levels earned by finishing tasks
  • Whole-store JSON backup and restore
  • Local JSON API for other front ends (ritual serve)

EXAMPLES:
  ritual start                              # Start the day: pick templates and leftovers
  ritual add "Write weekly report"          # Add a task for today
  ritual list                               # Show today's tasks
  ritual done 2                             # Toggle the second task in the list
  ritual reorder 3 1 2                      # Put task 3 first, then 1, then 2
  ritual template add "Stretch"             # Daily template
  ritual template add "Review" --weekly fri # Weekly template
  ritual backup export -o ritual.json       # Save everything to a file
  ritual score                              # Show experience and level

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Config file:
    RITUAL_CONFIG                           Path of the YAML config file (default: ~/.ritual/config.yaml)

  Database Configuration:
    RITUAL_DB_DIR                           Database directory (default: ~/.ritual)
    RITUAL_DB_FILENAME                      Database filename (default: ritual.db)
    RITUAL_DB_DRIVER                        sqlite or sqlite3 (cgo builds only) (default: sqlite)
    RITUAL_DB_QUERY_TIMEOUT                 Query timeout (default: 10s)
    RITUAL_DB_WRITE_TIMEOUT                 Write timeout (default: 5s)

  Score Configuration:
    RITUAL_SCORE_POINTS_PER_TASK            Experience per completed task (default: 10)

  Display Configuration:
    RITUAL_DISPLAY_SHOW_DONE                List done tasks (default: true)
    RITUAL_DISPLAY_TIMESTAMP_FORMAT         Debug log time format (default: 2006-01-02 15:04:05)

  Application Configuration:
    RITUAL_APP_TIMEOUT                      Command timeout (default: 60s)
    RITUAL_APP_VERBOSE                      Enable verbose output (default: false)
    RITUAL_DEBUG                            Print debug traces to stderr

  Server Configuration:
    RITUAL_SERVER_ADDR                      Listen address of ritual serve (default: 127.0.0.1:8420)

DATES:
  Commands taking a date accept YYYY-MM-DD, today, yesterday or tomorrow.
  Tasks are named by their position in 'ritual list' or by their id.

GETTING HELP:
  ritual [command] --help                   # Get help for any specific command
  ritual completion bash                    # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command and closes the store afterwards
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a parent context, cancelled on interrupt by main
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if r.closeFn != nil {
		if closeErr := r.closeFn(); closeErr != nil && err == nil {
			err = closeErr
		}
		r.closeFn = nil
	}
	return err
}

// SetArgs overrides the command line arguments, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetIO redirects the terminal streams, for tests
func (r *RootCommand) SetIO(in io.Reader, out io.Writer) {
	r.cmd.SetIn(in)
	r.cmd.SetOut(out)
	r.cmd.SetErr(out)
}

// Config returns the configuration the last command ran with
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides RITUAL_CONFIG)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides RITUAL_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides RITUAL_DB_FILENAME)")
	flags.String("db-driver", "", "SQLite driver: sqlite or sqlite3 (overrides RITUAL_DB_DRIVER)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides RITUAL_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides RITUAL_DB_WRITE_TIMEOUT)")

	// Score configuration
	flags.Int("points-per-task", 0, "Experience per completed task (overrides RITUAL_SCORE_POINTS_PER_TASK)")

	// Display configuration
	flags.Bool("show-done", true, "List done tasks (overrides RITUAL_DISPLAY_SHOW_DONE)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides RITUAL_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides RITUAL_APP_VERBOSE)")
}

// setup loads the configuration, applies flag overrides and opens the store
func (r *RootCommand) setup(cmd *cobra.Command) error {
	if r.app != nil || !needsStore(cmd) {
		return nil
	}

	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		r.loader.WithConfigFile(path)
	}

	cfg, err := r.loader.LoadWithOverrides(overridesFromFlags(cmd))
	if err != nil {
		return err
	}
	r.config = cfg
	logging.SetVerbose(cfg.Application.Verbose)
	logging.Debugf("database: %s (driver %s)\n", cfg.GetDatabasePath(), cfg.Database.Driver)

	apiInstance, closeFn, err := r.factory(cfg)
	if err != nil {
		return NewErrorHandler().Handle("open task store", err)
	}
	r.closeFn = closeFn
	r.app = NewAppWithConfig(apiInstance, cfg).WithIO(cmd.InOrStdin(), cmd.OutOrStdout())
	return nil
}

// needsStore is false for help and shell completion
func needsStore(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return !(cmd.HasParent() && cmd.Parent().Name() == "completion")
}

// overridesFromFlags collects the flags that were set on the command line
func overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-driver") {
		v, _ := flags.GetString("db-driver")
		overrides.DBDriver = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}
	if flags.Changed("points-per-task") {
		v, _ := flags.GetInt("points-per-task")
		overrides.PointsPerTask = &v
	}
	if flags.Changed("show-done") {
		v, _ := flags.GetBool("show-done")
		overrides.ShowDone = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("addr") {
		v, _ := flags.GetString("addr")
		overrides.ServerAddress = &v
	}

	return overrides
}

// runE wraps a handler in the configured command timeout. Interactive
// commands get twice as long.
func (r *RootCommand) runE(interactive bool, handler func(app *App) func(ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		timeout := r.getAppTimeout()
		if interactive {
			timeout *= 2
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		return handler(r.app)(ctx, args)
	}
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.startCommand(),
		r.listCommand(),
		r.addCommand(),
		r.planCommand(),
		r.editCommand(),
		r.doneCommand(),
		r.deleteCommand(),
		r.reorderCommand(),
		r.clearDoneCommand(),
		r.summaryCommand(),
		r.templateCommand(),
		r.holidayCommand(),
		r.backupCommand(),
		r.scoreCommand(),
		r.settingsCommand(),
		r.logCommand(),
		r.serveCommand(),
	)
}

func (r *RootCommand) startCommand() *cobra.Command {
	var date string
	var all, skip bool
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the day",
		Long: `Propose today's recurring templates and yesterday's unfinished tasks,
then add the ones you pick. Each day is proposed at most once.

Examples:
  ritual start          # Pick interactively
  ritual start --all    # Accept everything
  ritual start --skip   # Accept nothing and mark today as started`,
		Args: cobra.NoArgs,
		RunE: r.runE(true, func(app *App) func(context.Context, []string) error {
			c := NewStartCommand(app)
			c.Date, c.All, c.Skip = date, all, skip
			return c.Execute
		}),
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to start (default: today)")
	cmd.Flags().BoolVar(&all, "all", false, "Accept every proposed task")
	cmd.Flags().BoolVar(&skip, "skip", false, "Accept nothing")
	cmd.MarkFlagsMutuallyExclusive("all", "skip")
	return cmd
}

func (r *RootCommand) listCommand() *cobra.Command {
	var ids, hideDone bool
	cmd := &cobra.Command{
		Use:     "list [date]",
		Aliases: []string{"ls"},
		Short:   "List the tasks of a day",
		Long: `List the tasks of a day, unfinished first, in their saved order.

Examples:
  ritual list               # Today
  ritual list yesterday     # Yesterday
  ritual list 2024-03-10    # A given day`,
		Args: cobra.MaximumNArgs(1),
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			c := NewListCommand(app)
			c.ShowIDs, c.HideDone = ids, hideDone
			return c.Execute
		}),
	}
	cmd.Flags().BoolVar(&ids, "ids", false, "Show task ids")
	cmd.Flags().BoolVar(&hideDone, "hide-done", false, "Hide done tasks")
	return cmd
}

func (r *RootCommand) addCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			c := NewAddCommand(app)
			c.Date = date
			return c.Execute
		}),
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day of the task (default: today)")
	return cmd
}

func (r *RootCommand) planCommand() *cobra.Command {
	var date, file string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Add one task per line of a plan",
		Long: `Read a plan from a file or stdin and add one task per non-blank line.

Examples:
  ritual plan --file today.txt
  pbpaste | ritual plan --date tomorrow`,
		Args: cobra.NoArgs,
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			c := NewPlanCommand(app)
			c.Date, c.File = date, file
			return c.Execute
		}),
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day of the tasks (default: today)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Plan file (default: stdin)")
	return cmd
}

func (r *RootCommand) editCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "edit [task] [new title]",
		Short: "Rename a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			c := NewEditCommand(app)
			c.Date = date
			return c.Execute
		}),
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day the task position refers to (default: today)")
	return cmd
}

func (r *RootCommand) doneCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:     "done [task...]",
		Aliases: []string{"toggle"},
		Short:   "Toggle tasks between done and not done",
		Args:    cobra.MinimumNArgs(1),
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			c := NewDoneCommand(app)
			c.Date = date
			return c.Execute
		}),
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day the task positions refer to (default: today)")
	return cmd
}

func (r *RootCommand) deleteCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:     "delete [task...]",
		Aliases: []string{"rm"},
		Short:   "Delete tasks",
		Long:    "Delete tasks. This operation cannot be undone.",
		Args:    cobra.MinimumNArgs(1),
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			c := NewDeleteCommand(app)
			c.Date = date
			return c.Execute
		}),
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day the task positions refer to (default: today)")
	return cmd
}

func (r *RootCommand) reorderCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "reorder [task...]",
		Short: "Reorder the tasks of a day",
		Long: `Give the named tasks the order they are listed in. Tasks not named keep
their saved order.

Example:
  ritual reorder 3 1 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			c := NewReorderCommand(app)
			c.Date = date
			return c.Execute
		}),
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to reorder (default: today)")
	return cmd
}

func (r *RootCommand) clearDoneCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "clear-done",
		Short: "Delete the done tasks of a day",
		Args:  cobra.NoArgs,
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			c := NewClearDoneCommand(app)
			c.Date = date
			return c.Execute
		}),
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to clear (default: today)")
	return cmd
}

func (r *RootCommand) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [date]",
		Short: "Print a day as a markdown checklist",
		Args:  cobra.MaximumNArgs(1),
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			return NewSummaryCommand(app).Execute
		}),
	}
}

func (r *RootCommand) templateCommand() *cobra.Command {
	var weekly string
	handler := func(app *App) *TemplateCommand {
		c := NewTemplateCommand(app)
		c.Weekly = weekly
		return c
	}

	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"templates"},
		Short:   "Manage recurring task templates",
	}
	cmd.PersistentFlags().StringVarP(&weekly, "weekly", "w", "", "Weekday of a weekly template (mon, 1, ...); 'daily' on edit")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List templates",
			Args:  cobra.NoArgs,
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return handler(app).List
			}),
		},
		&cobra.Command{
			Use:   "add [title]",
			Short: "Add a daily template, or a weekly one with --weekly",
			Args:  cobra.MinimumNArgs(1),
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return handler(app).Add
			}),
		},
		&cobra.Command{
			Use:   "edit [template] [new title]",
			Short: "Rename a template or change its recurrence",
			Args:  cobra.MinimumNArgs(1),
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return handler(app).Edit
			}),
		},
		&cobra.Command{
			Use:   "enable [template]",
			Short: "Include a template in start-of-day proposals",
			Args:  cobra.ExactArgs(1),
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return func(ctx context.Context, args []string) error {
					return handler(app).SetEnabled(ctx, args, true)
				}
			}),
		},
		&cobra.Command{
			Use:   "disable [template]",
			Short: "Leave a template out of start-of-day proposals",
			Args:  cobra.ExactArgs(1),
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return func(ctx context.Context, args []string) error {
					return handler(app).SetEnabled(ctx, args, false)
				}
			}),
		},
		&cobra.Command{
			Use:     "delete [template]",
			Aliases: []string{"rm"},
			Short:   "Delete a template",
			Args:    cobra.ExactArgs(1),
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return handler(app).Delete
			}),
		},
	)
	return cmd
}

func (r *RootCommand) holidayCommand() *cobra.Command {
	var name, mmdd string
	handler := func(app *App) *HolidayCommand {
		c := NewHolidayCommand(app)
		c.Name, c.MMDD = name, mmdd
		return c
	}

	cmd := &cobra.Command{
		Use:     "holiday",
		Aliases: []string{"holidays"},
		Short:   "Manage custom holidays",
	}

	editCmd := &cobra.Command{
		Use:   "edit [holiday]",
		Short: "Change the date or name of a custom holiday",
		Args:  cobra.ExactArgs(1),
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			return handler(app).Edit
		}),
	}
	editCmd.Flags().StringVar(&mmdd, "date", "", "New date as MM-DD")
	editCmd.Flags().StringVar(&name, "name", "", "New name")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List custom holidays",
			Args:  cobra.NoArgs,
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return handler(app).List
			}),
		},
		&cobra.Command{
			Use:   "add [MM-DD] [name]",
			Short: "Add a custom holiday",
			Args:  cobra.MinimumNArgs(2),
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return handler(app).Add
			}),
		},
		editCmd,
		&cobra.Command{
			Use:     "delete [holiday]",
			Aliases: []string{"rm"},
			Short:   "Delete a custom holiday",
			Args:    cobra.ExactArgs(1),
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return handler(app).Delete
			}),
		},
		&cobra.Command{
			Use:   "show [date]",
			Short: "Show the federal and custom holidays of a day",
			Args:  cobra.MaximumNArgs(1),
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return handler(app).Show
			}),
		},
	)
	return cmd
}

func (r *RootCommand) backupCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore the whole store",
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON snapshot of every collection",
		Args:  cobra.NoArgs,
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			c := NewBackupCommand(app)
			c.Output = output
			return c.Export
		}),
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	importCmd := &cobra.Command{
		Use:   "import [file|-]",
		Short: "Replace the whole store with a snapshot",
		Long: `Replace every collection with the contents of a snapshot. A file that is
not a valid snapshot is rejected and the store is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			return NewBackupCommand(app).Import
		}),
	}

	cmd.AddCommand(exportCmd, importCmd)
	return cmd
}

func (r *RootCommand) scoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show experience and level",
		Args:  cobra.NoArgs,
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			return NewScoreCommand(app).Execute
		}),
	}
}

func (r *RootCommand) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Args:  cobra.NoArgs,
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			return NewSettingsCommand(app).Show
		}),
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show preferences",
			Args:  cobra.NoArgs,
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return NewSettingsCommand(app).Show
			}),
		},
		&cobra.Command{
			Use:   "accent [#hex|name]",
			Short: "Set the accent color",
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return NewSettingsCommand(app).Accent
			}),
		},
		&cobra.Command{
			Use:       "debug [on|off]",
			Short:     "Turn the persisted debug log on or off",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"on", "off"},
			RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
				return NewSettingsCommand(app).Debug
			}),
		},
	)
	return cmd
}

func (r *RootCommand) logCommand() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show or clear the persisted debug log",
		Args:  cobra.NoArgs,
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			c := NewDebugLogCommand(app)
			c.Raw = raw
			return c.Show
		}),
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print [timestamp] message lines")
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the debug log",
		Args:  cobra.NoArgs,
		RunE: r.runE(false, func(app *App) func(context.Context, []string) error {
			return NewDebugLogCommand(app).Clear
		}),
	})
	return cmd
}

func (r *RootCommand) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local JSON API",
		Long: `Serve the task store as a JSON API under /api until interrupted.

Examples:
  ritual serve
  ritual serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewServeCommand(r.app).Execute(cmd.Context(), args)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (overrides RITUAL_SERVER_ADDR)")
	return cmd
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}
