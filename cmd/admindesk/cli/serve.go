package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/admindesk/admindesk/internal/server"
	"github.com/admindesk/admindesk/internal/service"
)

func newServeCmd() *cobra.Command {
	var (
		port    int
		host    string
		dev     bool
		dataDir string
		driver  string
		dsn     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the console API server",
		Long: `Start the HTTP server that exposes the admin session endpoints and the
read-only user directory. The signing secret must be configured before the
server will start: set ADMINDESK_AUTH_JWT_SECRET or auth.jwt_secret in the
config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port, dev, dataDir, driver, dsn)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP listen port")
	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "HTTP listen host")
	cmd.Flags().BoolVar(&dev, "dev", false, "Enable development mode (verbose logging)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory for the SQLite database (default: ~/.admindesk)")
	cmd.Flags().StringVar(&driver, "driver", "", "Database driver: sqlite (default), postgres, or mysql")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Database DSN (required for postgres and mysql)")

	viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	viper.BindPFlag("db.driver", cmd.Flags().Lookup("driver"))
	viper.BindPFlag("db.dsn", cmd.Flags().Lookup("dsn"))

	return cmd
}

func runServe(host string, port int, dev bool, dataDir, driver, dsn string) error {
	logLevel := slog.LevelInfo
	if dev {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	// Missing secret is a configuration error; refuse to start rather than
	// fall back to a baked-in value.
	jwtSecret := viper.GetString("auth.jwt_secret")
	if jwtSecret == "" {
		return fmt.Errorf("auth.jwt_secret is not set; generate one with 'admindesk secret' and export ADMINDESK_AUTH_JWT_SECRET")
	}

	st, err := openStore(dataDir, driver, dsn)
	if err != nil {
		return err
	}
	logger.Info("store initialized", "driver", storeDriver(driver))

	ttl := viper.GetDuration("auth.token_ttl")
	authSvc, err := service.NewAuthService(st, jwtSecret, ttl)
	if err != nil {
		return fmt.Errorf("init auth service: %w", err)
	}

	hasAdmin, err := st.HasAnyAdmin(cmdContext())
	if err != nil {
		logger.Warn("failed to check for admin", "error", err)
	}
	if !hasAdmin {
		logger.Warn("no admin account found - sign up via POST /api/v1/admin/signup or run: admindesk admin create")
	}

	srvCfg := server.Config{
		Host:            host,
		Port:            port,
		ShutdownTimeout: 30 * time.Second,
		CORSOrigins:     corsOrigins(),
	}

	srv := server.New(srvCfg, st, authSvc, logger)

	fmt.Printf("→ AdminDesk\n")
	fmt.Printf("→ Listening on http://%s:%d\n", host, port)
	fmt.Printf("→ OpenAPI:    http://%s:%d/openapi.json\n", host, port)
	fmt.Printf("→ Health:     http://%s:%d/healthz\n", host, port)
	fmt.Println()

	return srv.ListenAndServe()
}

// corsOrigins reads the configured CORS origins, defaulting to allow-all for
// local development setups.
func corsOrigins() []string {
	if origins := viper.GetStringSlice("server.cors_origins"); len(origins) > 0 {
		return origins
	}
	return []string{"*"}
}
