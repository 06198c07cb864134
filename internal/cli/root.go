// Package cli provides the hoopstats command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"hoopstats/internal/app"
	"hoopstats/internal/config"
	"hoopstats/internal/logger"
)

const (
	configEnv         = "HOOPSTATS_CONFIG"
	defaultConfigPath = "configs/config.yaml"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// rootOptions holds the state shared by every subcommand of one invocation.
type rootOptions struct {
	cfgFile  string
	output   string
	logLevel string

	cfg     *config.Config
	logFile *os.File
	app     *app.App
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	o := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "hoopstats",
		Short: "Per-season basketball stat queries and charts",
		Long: `hoopstats filters a per-game basketball stat table by player and
season type, and plots a stat across seasons for one player or for every player.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "__complete" {
				return nil
			}
			return o.setup()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (default: $"+configEnv+" or "+defaultConfigPath+")")
	rootCmd.PersistentFlags().StringVarP(&o.output, "output", "o", formatTable, "Output format (table|json|yaml|csv)")
	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "Override app.log_level")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return outputFormats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newPlayersCommand(o))
	rootCmd.AddCommand(newPlayerCommand(o))
	rootCmd.AddCommand(newSeasonCommand(o))
	rootCmd.AddCommand(newChartCommand(o))
	rootCmd.AddCommand(newImportCommand(o))
	rootCmd.AddCommand(newServeCommand(o))
	return rootCmd, o
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	rootCmd, o := newRootCmd()
	return executeRoot(ctx, rootCmd, o)
}

// executeRoot runs cmd and releases the log file whether or not it failed.
// Errors go through the logger so they also reach the log file.
func executeRoot(ctx context.Context, cmd *cobra.Command, o *rootOptions) error {
	defer o.close()
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Errorf("%v", err)
		return err
	}
	return nil
}

func (o *rootOptions) setup() error {
	if !validOutput(o.output) {
		return fmt.Errorf("unsupported output format %q", o.output)
	}
	cfg, err := loadConfig(o.cfgFile)
	if err != nil {
		return fmt.Errorf("读取配置失败: %w", err)
	}
	if o.logLevel != "" {
		if _, ok := logger.ParseLevel(o.logLevel); !ok {
			return fmt.Errorf("invalid log level %q", o.logLevel)
		}
		cfg.App.LogLevel = o.logLevel
	}
	logFile, err := setupLogOutput(cfg.App.LogPath)
	if err != nil {
		return fmt.Errorf("初始化日志文件失败: %w", err)
	}
	o.logFile = logFile
	logger.SetLevel(cfg.App.LogLevel)
	logger.Debugf("✓ 配置加载成功（环境=%s，数据源=%s）", cfg.App.Env, cfg.Data.Source)
	o.cfg = cfg
	return nil
}

func (o *rootOptions) close() {
	if o.logFile != nil {
		_ = o.logFile.Close()
		o.logFile = nil
		log.SetOutput(os.Stderr)
		logger.SetOutput(os.Stderr)
	}
}

// service builds the App once per invocation and returns its Service.
func (o *rootOptions) service(ctx context.Context) (*app.Service, error) {
	a, err := o.application(ctx)
	if err != nil {
		return nil, err
	}
	return a.Service(), nil
}

func (o *rootOptions) application(ctx context.Context) (*app.App, error) {
	if o.app != nil {
		return o.app, nil
	}
	if o.cfg == nil {
		return nil, fmt.Errorf("config not loaded")
	}
	a, err := app.NewApp(ctx, o.cfg)
	if err != nil {
		return nil, fmt.Errorf("初始化应用失败: %w", err)
	}
	o.app = a
	return a, nil
}

// loadConfig resolves the config path: flag, then env, then the default file
// when present. Without any file the built-in defaults apply. HOOPSTATS_*
// overrides apply in every case.
func loadConfig(path string) (*config.Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(configEnv))
	}
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); errors.Is(err, os.ErrNotExist) {
			return config.Load("")
		}
		path = defaultConfigPath
	}
	return config.Load(path)
}

// setupLogOutput mirrors log output to path in addition to stderr.
func setupLogOutput(path string) (*os.File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil
	}
	dir := filepath.Dir(trimmed)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	var mw io.Writer = io.MultiWriter(os.Stderr, file)
	log.SetOutput(mw)
	logger.SetOutput(mw)
	return file, nil
}
