package cmd

import (
	"fmt"
	"os"

	"github.com/harrison/sgrep/internal/config"
	"github.com/harrison/sgrep/internal/logger"
	"github.com/harrison/sgrep/internal/search"
	"github.com/spf13/cobra"
)

// runSearch implements the root command: load configuration, apply flags,
// compile the pattern and walk the path.
func runSearch(cmd *cobra.Command, args []string) error {
	pattern, root := args[0], args[1]

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := loadConfig(cmd, workDir)
	if err != nil {
		return err
	}
	cfg.MergeWithFlags(flagOverrides(cmd))

	// Fails on an invalid regular expression before anything is visited
	opts, err := cfg.Build(pattern, workDir)
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	outFile, _ := out.(*os.File)
	errFile, _ := errOut.(*os.File)
	reporter := logger.NewConsoleReporter(out, errOut, cfg.UseColor(outFile), cfg.UseColor(errFile))
	log := logger.NewConsoleLogger(errOut, cfg.LogLevel)

	if cfg.Regex && cfg.Insensitive {
		log.LogWarn("--insensitive has no effect with --regex; use (?i) in the expression")
	}
	log.LogDebug(fmt.Sprintf("searching %s for %q (regex=%v recursive=%v follow=%v)",
		root, opts.Pattern.String(), opts.Pattern.IsRegex(), opts.Recursive, opts.FollowLinks))

	search.NewWalker(opts, reporter, log).Walk(root)

	counts := reporter.Counts()
	log.LogInfo(fmt.Sprintf("%d matches, %d warnings, %d errors", counts.Matches, counts.Warnings, counts.Errors))
	return nil
}

// loadConfig reads --config when given, otherwise the default locations.
func loadConfig(cmd *cobra.Command, workDir string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadDefault(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// flagOverrides collects the flags the user actually set.
func flagOverrides(cmd *cobra.Command) config.Flags {
	changedBool := func(name string) *bool {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		v, _ := cmd.Flags().GetBool(name)
		return &v
	}

	f := config.Flags{
		Recursive:   changedBool("recursive"),
		Location:    changedBool("location"),
		FollowLinks: changedBool("followlinks"),
		Insensitive: changedBool("insensitive"),
		Warnings:    changedBool("warnings"),
		Relative:    changedBool("relative"),
		Regex:       changedBool("regex"),
		Color:       changedBool("color"),
	}
	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		f.LogLevel = &level
	}
	return f
}
