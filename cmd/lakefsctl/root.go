package main

import (
	"log/slog"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	lakefs "github.com/treeverse/lakefs-go"
)

// app carries the state shared by all subcommands once the root command has
// resolved its configuration.
type app struct {
	v      *viper.Viper
	cfg    *Config
	client *lakefs.Client
	out    *printer
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Inspect a lakeFS installation",
		Long: `lakefsctl talks to the lakeFS HTTP API. It lists branches and tags one page
at a time and reports Open Table Format diffs between two refs.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.lakefsctl.yaml)")
	flags.String("endpoint", "", "lakeFS API endpoint, e.g. http://localhost:8000/api/v1")
	flags.String("access-key-id", "", "lakeFS access key ID")
	flags.String("secret-access-key", "", "lakeFS secret access key")
	flags.Bool("strict", false, "Validate responses against the lakeFS OpenAPI document")
	flags.BoolP("verbose", "v", false, "Log every API request to stderr")
	flags.StringP("output", "o", outputText, "Output format (text, json)")
	flags.Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newHealthCheckCommand(a),
		newBranchCommand(a),
		newTagCommand(a),
		newRefsCommand(a),
		newOTFCommand(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.v, cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := charmlog.WarnLevel
	if cfg.Verbose {
		level = charmlog.DebugLevel
	}
	charmLogger := charmlog.NewWithOptions(cmd.ErrOrStderr(), charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          appName,
	})

	client, err := lakefs.NewClient(lakefs.Options{
		Endpoint:         cfg.Server.EndpointURL,
		AccessKeyID:      cfg.Credentials.AccessKeyID,
		SecretAccessKey:  cfg.Credentials.SecretAccessKey,
		Logger:           slog.New(charmLogger),
		StrictValidation: cfg.Strict,
	})
	if err != nil {
		return err
	}
	a.client = client
	a.out = newPrinter(cmd.OutOrStdout(), cfg.Output, !cfg.NoColor)
	return nil
}
