package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/transition-cli/internal/dataset"
	"github.com/sells-group/transition-cli/internal/inspect"
	"github.com/sells-group/transition-cli/internal/model"
	"github.com/sells-group/transition-cli/internal/namematch"
	"github.com/sells-group/transition-cli/internal/store"
)

var (
	inspectAcquisitions string
	inspectProfiles     string
	inspectOutputDir    string
	inspectGroup        string
	inspectConcurrency  int
	inspectCharset      string
	inspectLimit        int
	inspectUseStore     bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Run the transition inspection over an acquisition dataset",
	Long:  "Loads an acquisition file and an extracted-profiles CSV, matches employers per event, and writes the result, unmatched and faulty-record CSVs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		canon, err := newCanonicalizer()
		if err != nil {
			return err
		}

		charset := inspectCharset
		if charset == "" {
			charset = cfg.Inspect.Charset
		}

		events, err := dataset.ReadAcquisitions(ctx, inspectAcquisitions, charset)
		if err != nil {
			return err
		}
		if inspectLimit > 0 && len(events) > inspectLimit {
			events = events[:inspectLimit]
		}

		profiles, err := dataset.ReadProfiles(ctx, inspectProfiles, charset)
		if err != nil {
			return err
		}

		concurrency := inspectConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Inspect.Concurrency
		}

		var st store.Store
		var run *model.InspectionRun
		if inspectUseStore {
			st, err = initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			run, err = st.CreateRun(ctx, inspectAcquisitions, inspectProfiles)
			if err != nil {
				return err
			}
		}

		ins := inspect.New(canon, events,
			inspect.WithConcurrency(concurrency),
			inspect.WithTolerance(cfg.Timeline.ToleranceMonths))
		rep, err := ins.Inspect(ctx, events, profiles)
		if err != nil {
			if st != nil && run != nil {
				if ferr := st.FailRun(ctx, run.ID); ferr != nil {
					zap.L().Error("marking run failed", zap.Error(ferr))
				}
			}
			return err
		}

		outDir := inspectOutputDir
		if outDir == "" {
			outDir = cfg.Inspect.OutputDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return eris.Wrap(err, "inspect: create output dir")
		}

		now := time.Now()
		paths := dataset.BuildOutputPaths(outDir, inspectGroup, now)
		if err := dataset.WriteResults(rep.Results, paths.Results, now); err != nil {
			return err
		}
		if err := dataset.WriteUnmatched(rep.Unmatched, paths.Unmatched); err != nil {
			return err
		}
		if err := dataset.WriteFaulty(rep.Faulty, paths.Faulty); err != nil {
			return err
		}
		zap.L().Info("reports written",
			zap.String("results", paths.Results),
			zap.String("unmatched", paths.Unmatched),
			zap.String("faulty", paths.Faulty))

		if st != nil && run != nil {
			if err := st.SaveResults(ctx, run.ID, rep.Results); err != nil {
				return err
			}
			if err := st.CompleteRun(ctx, run.ID, model.RunSummary{
				Events:    len(events),
				Matched:   len(rep.Results),
				Unmatched: len(rep.Unmatched),
				Faulty:    len(rep.Faulty),
			}); err != nil {
				return err
			}
			zap.L().Info("run persisted", zap.String("run_id", run.ID))
		}

		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectAcquisitions, "acquisitions", "", "acquisition dataset (CSV or XLSX)")
	inspectCmd.Flags().StringVar(&inspectProfiles, "profiles", "", "extracted-profiles CSV")
	inspectCmd.Flags().StringVar(&inspectOutputDir, "output-dir", "", "directory for report CSVs (default from config)")
	inspectCmd.Flags().StringVar(&inspectGroup, "group", "run", "group label used in report file names")
	inspectCmd.Flags().IntVar(&inspectConcurrency, "concurrency", 0, "events processed in parallel (default from config)")
	inspectCmd.Flags().StringVar(&inspectCharset, "charset", "", "input charset, e.g. windows-1252 (default UTF-8)")
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 0, "process at most N events (0 = all)")
	inspectCmd.Flags().BoolVar(&inspectUseStore, "store", false, "persist the run and its results in the configured store")
	_ = inspectCmd.MarkFlagRequired("acquisitions")
	_ = inspectCmd.MarkFlagRequired("profiles")
	rootCmd.AddCommand(inspectCmd)
}

// newCanonicalizer builds the shared canonicalizer, applying the wordlist
// overrides file when configured.
func newCanonicalizer() (*namematch.Canonicalizer, error) {
	if cfg.Match.OverridesFile == "" {
		return namematch.NewCanonicalizer(nil), nil
	}
	ov, err := namematch.LoadOverrides(cfg.Match.OverridesFile)
	if err != nil {
		return nil, err
	}
	return namematch.NewCanonicalizer(ov), nil
}

// initStore opens the configured store backend and runs migrations.
func initStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, cfg.Store.Driver, cfg.Store.DatabaseURL)
}
