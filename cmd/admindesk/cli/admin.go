package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/admindesk/admindesk/internal/service"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
		Long:  "Create and list admin accounts from the command line, without going through the HTTP API.",
	}

	cmd.AddCommand(newAdminCreateCmd())
	cmd.AddCommand(newAdminListCmd())

	return cmd
}

// ---------- admin create ----------

func newAdminCreateCmd() *cobra.Command {
	var (
		email    string
		password string
		name     string
		gender   string
		dataDir  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new admin account",
		Example: `  admindesk admin create --email admin@example.com --name "Ada Admin"
  admindesk admin create --email admin@example.com --name "Ada Admin" --password secret123`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminCreate(email, password, name, gender, dataDir)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (prompted if omitted)")
	cmd.Flags().StringVar(&name, "name", "", "Admin display name (required)")
	cmd.Flags().StringVar(&gender, "gender", "unspecified", "Admin gender")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory for the SQLite database (default: ~/.admindesk)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("name")

	return cmd
}

func runAdminCreate(email, password, name, gender, dataDir string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address: %q", email)
	}

	// Prompt for password if not provided
	if password == "" {
		fmt.Print("Password: ")
		pwBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()
		password = string(pwBytes)

		fmt.Print("Confirm password: ")
		confirmBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		fmt.Println()

		if password != string(confirmBytes) {
			return fmt.Errorf("passwords do not match")
		}
	}

	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	st, err := openStore(dataDir, "", "")
	if err != nil {
		return err
	}
	defer st.Close()

	// Token issuance is not needed here, so any non-empty secret will do.
	authSvc, err := service.NewAuthService(st, "cli-only", 0)
	if err != nil {
		return err
	}

	id, err := authSvc.SignUp(cmdContext(), name, email, gender, password)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	fmt.Printf("Created admin %q (id %s)\n", email, id)
	return nil
}

// ---------- admin list ----------

func newAdminListCmd() *cobra.Command {
	var (
		jsonOutput bool
		dataDir    string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all admin accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminList(jsonOutput, dataDir)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory for the SQLite database (default: ~/.admindesk)")

	return cmd
}

func runAdminList(jsonOutput bool, dataDir string) error {
	st, err := openStore(dataDir, "", "")
	if err != nil {
		return err
	}
	defer st.Close()

	admins, err := st.ListAdmins(cmdContext())
	if err != nil {
		return fmt.Errorf("list admins: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(admins)
	}

	if len(admins) == 0 {
		fmt.Println("No admin accounts. Use 'admindesk admin create' to create one.")
		return nil
	}

	fmt.Printf("%-30s %-24s %-8s %-20s\n", "EMAIL", "NAME", "ACTIVE", "CREATED")
	fmt.Printf("%-30s %-24s %-8s %-20s\n", "-----", "----", "------", "-------")
	for _, a := range admins {
		active := "yes"
		if !a.IsActive {
			active = "no"
		}
		created := time.Unix(a.CreatedAt, 0).UTC().Format("2006-01-02 15:04:05")
		fmt.Printf("%-30s %-24s %-8s %-20s\n", a.Email, a.Name, active, created)
	}

	return nil
}
