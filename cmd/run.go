package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/spigell/bd-radar/internal/ai"
	"github.com/spigell/bd-radar/internal/ai/gemini"
	"github.com/spigell/bd-radar/internal/catalog"
	"github.com/spigell/bd-radar/internal/enrich"
	"github.com/spigell/bd-radar/internal/export"
	"github.com/spigell/bd-radar/internal/logger"
	"github.com/spigell/bd-radar/internal/secrets"
	"github.com/spigell/bd-radar/internal/signals"
	"github.com/spigell/bd-radar/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptExit             = "Exit"
	PromptReportByPrograms = "Report by programs"
	PromptExportCallSheet  = "Export call sheet"
	PromptDumpToFile       = "Dump enriched jobs to file"
	PromptGenerateBriefs   = "Generate outreach briefs"
	PromptSaveSnapshot     = "Save run snapshot"
	PromptRunHistory       = "Show run history"

	defaultCallSheet = "call-sheet.csv"
	defaultDBFile    = "bd-radar.db"
	briefTierCutoff  = enrich.TierHigh
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Next action?",
	Items: []string{
		PromptReportByPrograms,
		PromptExportCallSheet,
		PromptDumpToFile,
		PromptGenerateBriefs,
		PromptSaveSnapshot,
		PromptRunHistory,
		PromptExit,
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bd-radar enrichment pipeline",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "export the call sheet and exit without prompting")
	runCmd.Flags().String("now", "", "override run time (RFC3339), used for outreach windows")
	runCmd.Flags().String("call-sheet", "", "path for the exported call sheet CSV")

	viper.BindPFlag("call-sheet", runCmd.Flags().Lookup("call-sheet"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the bd-radar", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Jobs == "" || config.Programs == "" || config.Contacts == "" {
		logger.Fatal("jobs, programs and contacts catalog paths are required")
	}

	now, err := resolveNow(cmd)
	if err != nil {
		logger.Fatal("parsing --now", zap.Error(err))
	}

	jobs, programs, contacts, err := loadCatalogs(config)
	if err != nil {
		logger.Fatal("loading catalogs", zap.Error(err))
	}

	logger.Info("catalogs loaded",
		zap.Int("jobs", jobs.Len()),
		zap.Int("programs", programs.Len()),
		zap.Int("contacts", contacts.Len()),
	)

	if jobs.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no jobs in catalog"))
		return
	}

	sig, err := loadSignals(config)
	if err != nil {
		logger.Fatal("loading signal catalog", zap.Error(err))
	}

	enriched, err := enrich.EnrichAll(ctx, jobs, programs, contacts, enrich.Deps{
		Signals:     sig,
		Logger:      logger,
		Now:         now,
		MaxContacts: config.MaxContacts,
	})
	if err != nil {
		logger.Fatal("enrichment failed", zap.Error(err))
	}

	stats := enrich.ComputeStats(enriched)
	logStats(logger, stats)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		if err := exportCallSheet(config, logger, enriched); err != nil {
			logger.Fatal("exporting call sheet", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, config, logger, enriched, stats, now); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, config *Config, logger *zap.Logger, enriched enrich.EnrichedJobs, stats enrich.Stats, now time.Time) error {
	switch action {
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptReportByPrograms:
		pretty, _ := json.MarshalIndent(enriched.ReportByProgram(), "", "  ")
		logger.Info(string(pretty), zap.Int("jobs count", len(enriched)))
		return nil
	case PromptExportCallSheet:
		return exportCallSheet(config, logger, enriched)
	case PromptDumpToFile:
		filename, err := enriched.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptGenerateBriefs:
		return generateBriefs(ctx, config, logger, enriched)
	case PromptSaveSnapshot:
		return saveSnapshot(ctx, config, logger, stats, enriched, now)
	case PromptRunHistory:
		return showHistory(ctx, config, logger)
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func resolveNow(cmd *cobra.Command) (time.Time, error) {
	raw := strings.TrimSpace(cmd.Flag("now").Value.String())
	if raw == "" {
		return time.Now().UTC(), nil
	}

	now, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}

	return now.UTC(), nil
}

func loadCatalogs(config *Config) (*catalog.Jobs, *catalog.Programs, *catalog.Contacts, error) {
	jobs, err := catalog.LoadJobs(config.Jobs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("jobs catalog: %w", err)
	}

	programs, err := catalog.LoadPrograms(config.Programs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("programs catalog: %w", err)
	}

	contacts, err := catalog.LoadContacts(config.Contacts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("contacts catalog: %w", err)
	}

	return jobs, programs, contacts, nil
}

func loadSignals(config *Config) (*signals.Catalog, error) {
	if config.SignalsFile == "" {
		return signals.Default(), nil
	}

	return signals.Load(config.SignalsFile)
}

func logStats(logger *zap.Logger, stats enrich.Stats) {
	fields := []zap.Field{
		zap.Int("total_jobs", stats.TotalJobs),
		zap.Int("matched", stats.Matched),
		zap.Float64("match_rate", stats.MatchRate),
		zap.Int("with_contacts", stats.WithContacts),
	}

	for _, tier := range enrich.Tiers {
		fields = append(fields, zap.Int(string(tier), stats.ByTier[tier]))
	}

	logger.Info("enrichment summary", fields...)

	for _, pc := range stats.TopPrograms {
		logger.Debug("top program", zap.String("program", pc.Name), zap.Int("jobs", pc.Count))
	}
}

func exportCallSheet(config *Config, logger *zap.Logger, enriched enrich.EnrichedJobs) error {
	path := strings.TrimSpace(viper.GetString("call-sheet"))
	if path == "" {
		path = config.CallSheet
	}
	if path == "" {
		path = defaultCallSheet
	}

	if err := export.WriteCallSheet(path, enriched); err != nil {
		return fmt.Errorf("write call sheet: %w", err)
	}

	logger.Info("call sheet exported", zap.String("filename", path))
	return nil
}

func saveSnapshot(ctx context.Context, config *Config, logger *zap.Logger, stats enrich.Stats, enriched enrich.EnrichedJobs, now time.Time) error {
	dbPath := defaultDBFile
	if config.DataDir != "" {
		dbPath = filepath.Join(config.DataDir, defaultDBFile)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	runID, err := db.SaveSnapshot(ctx, now, stats, enriched)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	logger.Info("snapshot saved", zap.Int64("run_id", runID), zap.String("filename", dbPath))
	return nil
}

func showHistory(ctx context.Context, config *Config, logger *zap.Logger) error {
	dbPath := defaultDBFile
	if config.DataDir != "" {
		dbPath = filepath.Join(config.DataDir, defaultDBFile)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	runs, err := db.History(ctx, 10)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if len(runs) == 0 {
		logger.Info("no saved runs yet")
		return nil
	}

	for _, run := range runs {
		logger.Info("saved run",
			zap.Int64("run_id", run.ID),
			zap.Time("ran_at", run.RanAt),
			zap.Int("total_jobs", run.TotalJobs),
			zap.Int("matched", run.Matched),
			zap.Int("with_contacts", run.WithContacts),
			zap.Int("critical", run.Critical),
		)
	}

	return nil
}

func generateBriefs(ctx context.Context, config *Config, logger *zap.Logger, enriched enrich.EnrichedJobs) error {
	briefer, err := newBriefer(ctx, config.AI, logger)
	if err != nil {
		return fmt.Errorf("building briefer: %w", err)
	}

	count := 0
	for _, job := range enriched {
		if job.Tier.Rank() > briefTierCutoff.Rank() || job.Program == nil {
			continue
		}

		brief, err := briefer.Brief(ctx, job)
		if err != nil {
			logger.Warn("skipping brief",
				zap.String("job_id", job.Job.ID),
				zap.Error(err),
			)
			continue
		}

		logger.Info("outreach brief",
			zap.String("job_id", job.Job.ID),
			zap.String("job_title", job.Job.Title),
			zap.String("program", job.Program.Name),
			zap.String("subject", brief.Subject),
			zap.String("message", brief.Message),
			zap.String("rationale", brief.Rationale),
		)
		count++
	}

	if count == 0 {
		logger.Info("no critical or high priority matches to brief")
	}

	return nil
}

func newBriefer(ctx context.Context, cfg *AIConfig, base *zap.Logger) (ai.Briefer, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("ai briefs are disabled in the configuration")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai briefs are enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithFields(base, logger.CommonFields("gemini", cfg.Gemini.Model)...)
	genLogger = genLogger.With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewBriefer(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}
