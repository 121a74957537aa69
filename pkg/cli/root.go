package cli

import (
	"github.com/spf13/cobra"

	"github.com/TechXTT/blog/pkg/config"
	"github.com/TechXTT/blog/pkg/logger"
)

// Version is set at build time with -ldflags.
var Version = "v0.1.0"

type rootOptions struct {
	envFile  string
	logLevel string
	logJSON  bool
}

// load reads the configuration and installs the process logger. Flags that
// were set explicitly take precedence over the environment.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = o.logJSON
	}
	logger.SetupLogger(cfg.Log.Level, cfg.Log.JSON)
	return cfg, nil
}

// NewVersionCmd builds the `version` command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(Version)
		},
	}
}

// NewRootCmd builds the top-level `blog` command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "blog",
		Short:         "Awesome blog web server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to read before the environment")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")

	root.AddCommand(NewServeCmd(opts))
	root.AddCommand(NewSchemaCmd())
	root.AddCommand(NewVersionCmd())
	return root
}
