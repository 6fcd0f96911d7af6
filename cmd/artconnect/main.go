package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/creativeintel/artconnect/config"
	"github.com/creativeintel/artconnect/internal/analytics"
	"github.com/creativeintel/artconnect/internal/cache"
	"github.com/creativeintel/artconnect/internal/decisionlog"
	"github.com/creativeintel/artconnect/internal/fixtures"
	"github.com/creativeintel/artconnect/internal/logging"
	"github.com/creativeintel/artconnect/internal/pipeline"
	"github.com/creativeintel/artconnect/internal/reply"
	"github.com/creativeintel/artconnect/internal/server"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "artconnect",
	Short:   "Artist promotion opportunity dashboard",
	Long:    "ArtConnect scores simulated Instagram and Twitter interactions with a rule-based opportunity engine and drafts brand-voice replies for human review.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "dev"
		}
		config.LoadEnv(env)
		logging.InitLogger(verbose)

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (embedded defaults when omitted)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyticsCmd)
}

// --- generate command ---

var (
	genTotal     int
	genHighValue int
	genSeed      int64
	genDir       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write simulated Instagram CSV and Twitter JSON fixtures",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := fixtures.DefaultOptions()
		opts.TotalInteractions = genTotal
		opts.TotalHighValue = genHighValue
		if genSeed != 0 {
			opts.Seed = genSeed
		}

		if err := fixtures.WriteFiles(genDir, opts); err != nil {
			return err
		}
		fmt.Printf("Wrote %d interactions (%d high-value) to %s\n", genTotal, genHighValue, genDir)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&genTotal, "total", 240, "Total interactions to generate")
	generateCmd.Flags().IntVar(&genHighValue, "high-value", 25, "High-value interactions among the total")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 uses the current time)")
	generateCmd.Flags().StringVar(&genDir, "dir", "data", "Output directory")
}

// --- score command ---

var scoreLimit int

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score both sources and print the ranked opportunities",
	RunE: func(cmd *cobra.Command, args []string) error {
		pipe := pipeline.New(cfg, cache.NewFromEnv())
		scored, err := pipe.ScoredBatch(cmd.Context())
		if err != nil {
			return err
		}

		if scoreLimit > 0 && len(scored) > scoreLimit {
			scored = scored[:scoreLimit]
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SCORE\tID\tPLATFORM\tUSER\tFOLLOWERS\tTEXT")
		for _, in := range scored {
			text := in.TextContent
			if len(text) > 60 {
				text = text[:60] + "..."
			}
			fmt.Fprintf(w, "%.1f\t%s\t%s\t%s\t%d\t%s\n",
				in.OpportunityScore, in.InteractionID, in.Platform, in.UserHandle, in.UserFollowers, text)
		}
		return w.Flush()
	},
}

func init() {
	scoreCmd.Flags().IntVar(&scoreLimit, "limit", 50, "Show at most this many rows (0 for all)")
}

// --- serve command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local review dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := decisionlog.Open(cfg.Data.LogPath)
		if err != nil {
			return err
		}

		pipe := pipeline.New(cfg, cache.NewFromEnv())
		drafter := reply.NewDrafter(cfg.Reply)

		fmt.Printf("Starting dashboard at http://localhost:%d\n", cfg.Server.Port)
		fmt.Println("Press Ctrl+C to stop")
		return server.Serve(cfg, pipe, drafter, log)
	},
}

// --- analytics command ---

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Print decision-log KPIs",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := decisionlog.Open(cfg.Data.LogPath)
		if err != nil {
			return err
		}
		entries, err := log.ReadAll()
		if err != nil {
			return err
		}

		pipe := pipeline.New(cfg, cache.NewFromEnv())
		scored, err := pipe.ScoredBatch(cmd.Context())
		if err != nil {
			return err
		}

		s := analytics.Summarize(scored, entries, cfg.Scoring.HighValueThreshold)
		fmt.Printf("Interactions scanned: %d (Instagram %d, Twitter %d)\n",
			s.TotalInteractions, s.InstagramCount, s.TwitterCount)
		fmt.Printf("High-value (score >= %.0f): %d\n", cfg.Scoring.HighValueThreshold, s.HighValueCount)
		fmt.Printf("Logged actions: %d (approve %d, edit %d, reject %d)\n",
			s.ActedCount, s.ApproveCount, s.EditCount, s.RejectCount)
		fmt.Printf("Approval rate: %.1f%%\n", s.ApprovalRate)

		fmt.Println("\nEngagement funnel:")
		for _, stage := range s.Funnel() {
			fmt.Printf("  %-20s %d\n", stage.Stage, stage.Count)
		}
		return nil
	},
}
