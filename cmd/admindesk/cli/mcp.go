package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	amcp "github.com/admindesk/admindesk/internal/mcp"
)

func newMCPCmd() *cobra.Command {
	var (
		transport string
		port      int
		dataDir   string
		driver    string
		dsn       string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server for AI agents",
		Long: `Start a Model Context Protocol (MCP) server that exposes the read-only user
directory as tools for AI agents. Supports stdio (default) and HTTP transports.

In stdio mode, the MCP server communicates over stdin/stdout using JSON-RPC,
suitable for MCP clients that launch the server as a subprocess.

In HTTP mode, the server listens on the specified port for remote clients.`,
		Example: `  admindesk mcp                               # stdio mode
  admindesk mcp --transport http --port 3001  # HTTP mode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCP(transport, port, dataDir, driver, dsn)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport mode: stdio or http")
	cmd.Flags().IntVar(&port, "port", 3001, "HTTP port (only used with --transport http)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory for the SQLite database (default: ~/.admindesk)")
	cmd.Flags().StringVar(&driver, "driver", "", "Database driver: sqlite (default), postgres, or mysql")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Database DSN (required for postgres and mysql)")

	return cmd
}

func runMCP(transport string, port int, dataDir, driver, dsn string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	st, err := openStore(dataDir, driver, dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	mcpSrv := amcp.NewMCPServer(st, logger)

	switch transport {
	case "stdio":
		return mcpSrv.ServeStdio()
	case "http":
		return mcpSrv.ServeHTTP(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport %q; use 'stdio' or 'http'", transport)
	}
}
