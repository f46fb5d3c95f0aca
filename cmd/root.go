package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/frisbo/frisbo-go/config"
	"github.com/frisbo/frisbo-go/frisbo"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *frisbo.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	orgFlag int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "frisbo",
	Short: "A CLI for the Frisbo e-commerce fulfillment API",
	Long: `frisbo is a CLI for the Frisbo fulfillment platform. It manages
organizations, products, orders, invoices and inbound inventory requests
through the Frisbo API, handling authentication and pagination for you.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build information for the version and upgrade commands.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().IntVar(&orgFlag, "org", 0, "organization ID (overrides frisbo.organization_id from config)")

	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	opts := []frisbo.Option{
		frisbo.WithBaseURL(cfg.Frisbo.BaseURL),
		frisbo.WithTimeout(time.Duration(cfg.Frisbo.TimeoutSeconds) * time.Second),
	}
	if cfg.Frisbo.Proxy != "" {
		opts = append(opts, frisbo.WithProxy(cfg.Frisbo.Proxy))
	}
	if cfg.Frisbo.AccessToken != "" {
		opts = append(opts, frisbo.WithAccessToken(cfg.Frisbo.AccessToken))
	}

	// Create Frisbo client; with credentials present this logs in immediately
	client, err = frisbo.NewClient(cfg.Frisbo.Email, cfg.Frisbo.Password, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Frisbo client: %w", err)
	}

	return nil
}

// resolveOrganization picks the organization ID from the flag or config.
func resolveOrganization() (int, error) {
	if orgFlag != 0 {
		return orgFlag, nil
	}
	if cfg.Frisbo.OrganizationID != 0 {
		return cfg.Frisbo.OrganizationID, nil
	}
	return 0, fmt.Errorf("no organization selected: pass --org or set frisbo.organization_id in config")
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// meCmd represents the me command
var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated user",
	Long:  `Probe the current session and display the user it belongs to.`,
	RunE:  runMe,
}

func runMe(cmd *cobra.Command, args []string) error {
	user, err := client.Me(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch current user: %w", err)
	}

	fmt.Printf("Logged in as %s <%s> (ID %d)\n", user.Name, user.Email, user.ID)
	if user.Roles != "" {
		fmt.Printf("Roles: %s\n", user.Roles)
	}
	return nil
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client.Logout(context.Background())
		fmt.Println("Logged out.")
		return nil
	},
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No config or client needed to print a version
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("frisbo %s (built %s)\n", version, buildTime)
	},
}
