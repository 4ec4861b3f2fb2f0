package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"soliddojo/cmd/dojo/study"
	"soliddojo/cmd/dojo/ui"
	"soliddojo/internal/catalog"
	"soliddojo/internal/catalog/demos"
	"soliddojo/internal/config"
	"soliddojo/internal/lesson"
	"soliddojo/internal/logging"
	"soliddojo/internal/playground"
	"soliddojo/internal/principles"
	"soliddojo/internal/progress"
	"soliddojo/internal/render"
	"soliddojo/internal/watch"
)

const dojoVersion = "1.0.0"

var (
	// Global flags
	verbose  bool
	homeFlag string
	noColor  bool

	// Resolved in PersistentPreRunE
	dojoHome  string
	appConfig *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dojo",
	Short: "solidDOJO - five SOLID principles, one small demo each",
	Long: `solidDOJO is an interactive study tool for the five SOLID principles.

Every principle ships as a pair of tiny showcases: a design that strains
against the principle and the refactor that honors it. Lessons explain
the idea, demos print what each design does, and the playground runs the
lesson code live so prose and code cannot drift apart.

Run without arguments to start the interactive study session.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dojoHome = resolveHome()

		cfg, err := config.Load(config.ConfigPath(dojoHome))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if noColor {
			cfg.UI.NoColor = true
		}
		appConfig = cfg

		if err := logging.Initialize(dojoHome); err != nil {
			fmt.Fprintf(os.Stderr, "warning: file logging unavailable: %v\n", err)
		}

		// Skip console logger for interactive mode (it has its own UI)
		if cmd.Use == "dojo" && cmd.CalledAs() == "dojo" {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive study session
		return runStudy()
	},
}

// listCmd lists the five principles
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the five principles and their showcases",
	RunE:  runList,
}

// showCmd renders one lesson
var showCmd = &cobra.Command{
	Use:   "show [principle]",
	Short: "Render a principle's lesson",
	Long: `Renders the lesson for one principle.

Principles accept several spellings, case-insensitively: the short id
("lsp"), the SOLID letter ("l"), or the full name ("Liskov Substitution
Principle").

Examples:
  dojo show srp
  dojo show L --raw
  dojo show "dependency inversion principle" --width 72`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completePrinciples,
	RunE:              runShow,
}

// runCmd runs principle demos
var runCmd = &cobra.Command{
	Use:   "run [principle]...",
	Short: "Run principle demos and print their transcripts",
	Long: `Runs one or more principle demos and prints everything they said.

The lsp and isp demos each record one expected failure. That failure is
the lesson, not a problem: the run still counts as completed.

Examples:
  dojo run lsp
  dojo run srp ocp dip
  dojo run --all --no-history`,
	ValidArgsFunction: completePrinciples,
	RunE:              runDemos,
}

// playCmd interprets the lesson snippet
var playCmd = &cobra.Command{
	Use:   "play [principle]",
	Short: "Run the lesson's Go snippet in the playground",
	Long: `Interprets the lesson's embedded snippet with yaegi and prints its
output. The snippet is the same code the lesson shows, so what you read
is exactly what runs.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completePrinciples,
	RunE:              runPlay,
}

// historyCmd shows recent runs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent demo runs",
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded demo runs",
	RunE:  runHistoryClear,
}

// progressCmd summarizes study progress
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Per-principle study summary",
	RunE:  runProgress,
}

// previewCmd renders a lesson from disk
var previewCmd = &cobra.Command{
	Use:   "preview [file|principle]",
	Short: "Render a lesson file from disk (author mode)",
	Long: `Renders a lesson markdown file the way show would, for lesson authors.

The argument is either a path to a .md file or a principle name resolved
inside the --lessons directory. With --watch the preview re-renders
every time the file is saved.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completePreviewArg,
	RunE:              runPreview,
}

// statusCmd shows tool status
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show solidDOJO status",
	RunE:  runStatus,
}

// versionCmd prints the version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the solidDOJO version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("solidDOJO %s\n", dojoVersion)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "State directory (default ~/.dojo, or DOJO_HOME)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Show flags
	showCmd.Flags().Bool("raw", false, "Print the lesson markdown unrendered")
	showCmd.Flags().Int("width", 0, "Wrap width (default: ui.width from config)")

	// Run flags
	runCmd.Flags().Bool("all", false, "Run every principle demo in order")
	runCmd.Flags().Bool("no-history", false, "Skip recording runs in the history store")

	// History flags and subcommands
	historyCmd.Flags().Int("limit", 10, "Maximum number of runs to show")
	historyCmd.AddCommand(historyClearCmd)

	// Preview flags
	previewCmd.Flags().String("lessons", "", "Lessons directory for previewing by principle name")
	previewCmd.Flags().Bool("watch", false, "Re-render when the file changes")

	// Add commands to root
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveHome picks the state directory: flag, then DOJO_HOME, then ~/.dojo.
func resolveHome() string {
	if homeFlag != "" {
		return homeFlag
	}
	return config.DefaultHome()
}

// loadCorpus loads lessons from the configured directory, or the embedded
// corpus when none is configured.
func loadCorpus() (*lesson.Corpus, error) {
	if dir := appConfig.Lessons.Dir; dir != "" {
		return lesson.LoadDir(dir)
	}
	return lesson.Load()
}

func newRegistry() (*catalog.Registry, error) {
	return demos.Builtin()
}

// completePrinciples offers the five principle ids to shell completion.
func completePrinciples(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var ids []string
	for _, p := range principles.All() {
		ids = append(ids, fmt.Sprintf("%s\t%s", p, p.Name()))
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

// completePreviewArg offers principle ids but keeps file completion, since
// preview also takes a path.
func completePreviewArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ids, _ := completePrinciples(cmd, args, toComplete)
	return ids, cobra.ShellCompDirectiveDefault
}

func newRenderer(width int) *render.Renderer {
	if width <= 0 {
		width = appConfig.UI.Width
	}
	return render.New(appConfig.UI.Theme, width, appConfig.UI.NoColor)
}

// openHistory opens the run store, or returns nil when history is off or
// the database cannot open. The CLI keeps working without it.
func openHistory() *progress.Store {
	if !appConfig.History.Enabled {
		return nil
	}
	store, err := progress.NewStore(appConfig.DatabasePath(dojoHome))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		logging.StoreWarn("history unavailable: %v", err)
		return nil
	}
	return store
}

func printTable(t *ui.SimpleTable) {
	if appConfig.UI.NoColor {
		fmt.Print(t.Plain())
		return
	}
	fmt.Print(t.View(ui.NewStyles(ui.ThemeByName(appConfig.UI.Theme))))
}

// runStudy launches the interactive study session.
func runStudy() error {
	corpus, err := loadCorpus()
	if err != nil {
		return err
	}
	reg, err := newRegistry()
	if err != nil {
		return err
	}

	var onRun func(*catalog.Transcript)
	if store := openHistory(); store != nil {
		defer store.Close()
		onRun = func(tr *catalog.Transcript) {
			if err := store.RecordRun(tr); err != nil {
				logging.StoreWarn("failed to record %s run: %v", tr.Showcase, err)
			}
		}
	}

	return study.Run(study.Config{
		Registry: reg,
		Corpus:   corpus,
		Theme:    appConfig.UI.Theme,
		NoColor:  appConfig.UI.NoColor,
		OnRun:    onRun,
	})
}

// runList prints the principle catalog.
func runList(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}

	studied := make(map[string]bool)
	if store := openHistory(); store != nil {
		defer store.Close()
		if summaries, err := store.Summary(); err == nil {
			for _, s := range summaries {
				studied[s.Principle.String()] = s.Studied()
			}
		}
	}

	table := ui.NewSimpleTable("", []string{"#", "PRINCIPLE", "TITLE", "SUMMARY", "STUDIED"})
	for _, sc := range reg.All() {
		mark := "•"
		if studied[sc.ID] {
			mark = "✓"
		}
		table.AddRow(fmt.Sprintf("%d", sc.Order), sc.ID, sc.Title, sc.Summary, mark)
	}
	printTable(table)
	return nil
}

// runShow renders one lesson to stdout.
func runShow(cmd *cobra.Command, args []string) error {
	p, err := principles.Parse(args[0])
	if err != nil {
		return err
	}
	corpus, err := loadCorpus()
	if err != nil {
		return err
	}
	l, ok := corpus.Get(p)
	if !ok {
		return fmt.Errorf("no lesson found for %s", p)
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		fmt.Println(l.Body)
		return nil
	}

	width, _ := cmd.Flags().GetInt("width")
	fmt.Println(newRenderer(width).Markdown(l.Body))
	return nil
}

// runDemos runs the requested demos and prints their transcripts.
func runDemos(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	if !all && len(args) == 0 {
		return fmt.Errorf("name at least one principle, or pass --all")
	}

	reg, err := newRegistry()
	if err != nil {
		return err
	}

	var ids []string
	if all {
		ids = reg.IDs()
	} else {
		for _, arg := range args {
			p, err := principles.Parse(arg)
			if err != nil {
				return err
			}
			ids = append(ids, p.String())
		}
	}

	var store *progress.Store
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		if store = openHistory(); store != nil {
			defer store.Close()
		}
	}

	renderer := newRenderer(0)
	ctx := context.Background()
	for i, id := range ids {
		tr, err := reg.Run(ctx, id)
		if err != nil {
			return fmt.Errorf("%s demo failed: %w", id, err)
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Print(renderer.Transcript(tr))
		fmt.Println(renderer.Summary(tr))

		if store != nil {
			if err := store.RecordRun(tr); err != nil {
				logging.StoreWarn("failed to record %s run: %v", id, err)
			}
		}
		if logger != nil {
			logger.Debug("demo finished",
				zap.String("principle", id),
				zap.Int("steps", len(tr.Steps)),
				zap.Int("failures", tr.Failures()))
		}
	}
	return nil
}

// runPlay interprets the lesson snippet for one principle.
func runPlay(cmd *cobra.Command, args []string) error {
	p, err := principles.Parse(args[0])
	if err != nil {
		return err
	}
	corpus, err := loadCorpus()
	if err != nil {
		return err
	}
	l, ok := corpus.Get(p)
	if !ok {
		return fmt.Errorf("no lesson found for %s", p)
	}
	snippet, ok := l.Snippet()
	if !ok {
		return fmt.Errorf("the %s lesson has no runnable snippet", p)
	}

	exec := playground.NewExecutor(appConfig.Playground.AllowedImports)
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.Playground.GetTimeout())
	defer cancel()

	out, err := exec.Run(ctx, snippet)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// runHistory prints the recent run table.
func runHistory(cmd *cobra.Command, args []string) error {
	if !appConfig.History.Enabled {
		fmt.Println("History is disabled (history.enabled: false).")
		return nil
	}
	store := openHistory()
	if store == nil {
		return nil
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Try: dojo run --all")
		return nil
	}

	table := ui.NewSimpleTable("Recent runs", []string{"WHEN", "PRINCIPLE", "STEPS", "FAILURES", "OK", "DURATION"})
	for _, r := range runs {
		okMark := "✓"
		if !r.OK {
			okMark = "✗"
		}
		table.AddRow(
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Showcase,
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%d", r.Failures),
			okMark,
			r.Duration.String(),
		)
	}
	printTable(table)
	return nil
}

// runHistoryClear wipes the run history.
func runHistoryClear(cmd *cobra.Command, args []string) error {
	if !appConfig.History.Enabled {
		fmt.Println("History is disabled (history.enabled: false).")
		return nil
	}
	store := openHistory()
	if store == nil {
		return nil
	}
	defer store.Close()

	n, err := store.Clear()
	if err != nil {
		return err
	}
	fmt.Printf("Cleared %d recorded runs.\n", n)
	return nil
}

// runProgress prints the per-principle study summary.
func runProgress(cmd *cobra.Command, args []string) error {
	if !appConfig.History.Enabled {
		fmt.Println("History is disabled (history.enabled: false).")
		return nil
	}
	store := openHistory()
	if store == nil {
		return nil
	}
	defer store.Close()

	summaries, err := store.Summary()
	if err != nil {
		return err
	}

	table := ui.NewSimpleTable("Study progress", []string{"#", "PRINCIPLE", "NAME", "RUNS", "LAST RUN", "STUDIED"})
	studiedCount := 0
	for _, s := range summaries {
		lastRun := "never"
		if !s.LastRun.IsZero() {
			lastRun = s.LastRun.Local().Format("2006-01-02 15:04")
		}
		mark := "•"
		if s.Studied() {
			mark = "✓"
			studiedCount++
		}
		table.AddRow(
			fmt.Sprintf("%d", s.Principle.Order()),
			s.Principle.String(),
			s.Principle.Name(),
			fmt.Sprintf("%d", s.Runs),
			lastRun,
			mark,
		)
	}
	printTable(table)
	fmt.Printf("%d of %d principles studied.\n", studiedCount, len(summaries))
	return nil
}

// runPreview renders a lesson file, optionally re-rendering on change.
func runPreview(cmd *cobra.Command, args []string) error {
	path, err := resolvePreviewPath(cmd, args[0])
	if err != nil {
		return err
	}

	renderer := newRenderer(0)
	watchMode, _ := cmd.Flags().GetBool("watch")

	if !watchMode {
		l, err := lesson.ParseFile(path)
		if err != nil {
			return err
		}
		fmt.Println(renderer.Markdown(l.Body))
		return nil
	}

	// In watch mode a parse failure is part of authoring: report it and
	// keep watching.
	renderPreview := func(p string) {
		l, err := lesson.ParseFile(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "preview: %v\n", err)
			return
		}
		fmt.Println(renderer.Markdown(l.Body))
	}

	renderPreview(path)

	w, err := watch.NewFileWatcher(path, func(p string) {
		fmt.Println(strings.Repeat("-", 60))
		renderPreview(p)
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Fprintf(os.Stderr, "Watching %s (ctrl+c to stop)\n", w.Path())

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	fmt.Fprintln(os.Stderr, "\nPreview stopped")
	return nil
}

// resolvePreviewPath maps the preview argument to a file on disk.
func resolvePreviewPath(cmd *cobra.Command, arg string) (string, error) {
	// A readable file wins; otherwise treat the argument as a principle
	// name inside the lessons directory.
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	p, err := principles.Parse(arg)
	if err != nil {
		return "", fmt.Errorf("%q is neither a readable file nor a principle name", arg)
	}

	dir, _ := cmd.Flags().GetString("lessons")
	if dir == "" {
		dir = appConfig.Lessons.Dir
	}
	if dir == "" {
		return "", fmt.Errorf("previewing %s by name needs --lessons or lessons.dir in config", p)
	}
	return filepath.Join(dir, p.String()+".md"), nil
}

// runStatus displays tool status.
func runStatus(cmd *cobra.Command, args []string) error {
	if !appConfig.UI.NoColor {
		fmt.Println(ui.Logo(ui.NewStyles(ui.ThemeByName(appConfig.UI.Theme))))
	}
	fmt.Println("solidDOJO Status")
	fmt.Println("================")
	fmt.Printf("Version: %s\n", dojoVersion)
	fmt.Printf("Runtime: %s\n", runtime.Version())
	fmt.Printf("Home:    %s\n", dojoHome)
	fmt.Println()

	configPath := config.ConfigPath(dojoHome)
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("✓ Config:  %s\n", configPath)
	} else {
		fmt.Println("• Config:  built-in defaults (no config.yaml)")
	}

	if corpus, err := loadCorpus(); err != nil {
		fmt.Printf("✗ Lessons: %v\n", err)
	} else if appConfig.Lessons.Dir != "" {
		fmt.Printf("✓ Lessons: %d from %s\n", corpus.Count(), appConfig.Lessons.Dir)
	} else {
		fmt.Printf("✓ Lessons: %d embedded\n", corpus.Count())
	}

	if !appConfig.History.Enabled {
		fmt.Println("• History: disabled")
	} else if store := openHistory(); store != nil {
		n, _ := store.Count()
		fmt.Printf("✓ History: %s (%d runs)\n", store.Path(), n)
		store.Close()
	} else {
		fmt.Println("✗ History: unavailable")
	}

	fmt.Printf("✓ Logs:    %s\n", filepath.Join(dojoHome, "logs"))
	return nil
}
