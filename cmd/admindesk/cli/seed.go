package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admindesk/admindesk/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var (
		dataDir string
		driver  string
		dsn     string
	)

	cmd := &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Load user directory records from a YAML fixture",
		Long: `Load end-user records into the directory from a YAML fixture file. The
directory is read-only at runtime, so seeding is how demo and development
databases get populated.

Fixture format:

  users:
    - name: Ada Lovelace
      email: ada@example.com
      age: 36
      gender: female
      country: England
      city: London
      company: Analytical Engines Ltd`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(args[0], dataDir, driver, dsn)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory for the SQLite database (default: ~/.admindesk)")
	cmd.Flags().StringVar(&driver, "driver", "", "Database driver: sqlite (default), postgres, or mysql")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Database DSN (required for postgres and mysql)")

	return cmd
}

func runSeed(path, dataDir, driver, dsn string) error {
	fixture, err := seed.LoadFixture(path)
	if err != nil {
		return err
	}

	st, err := openStore(dataDir, driver, dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := fixture.Apply(cmdContext(), st)
	if err != nil {
		return fmt.Errorf("applied %d of %d records: %w", n, len(fixture.Users), err)
	}

	fmt.Printf("Seeded %d user(s)\n", n)
	return nil
}
