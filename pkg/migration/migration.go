package migration

import (
	"errors"
	"fmt"
	"path"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

// MigrateCommand ...
func MigrateCommand(dsn string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "migrate up all versions",
		Run: func(cmd *cobra.Command, args []string) {
			m := newMigrate("file://migrations", dsn)
			err := m.Up()
			if err != nil && !errors.Is(err, migrate.ErrNoChange) {
				panic(err)
			}
			fmt.Println("Migrated up successfully")
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "migrate down one version",
		Run: func(cmd *cobra.Command, args []string) {
			m := newMigrate("file://migrations", dsn)
			err := m.Steps(-1)
			if err != nil {
				panic(err)
			}
			fmt.Println("Migrated down successfully")
		},
	}

	cmd.AddCommand(upCmd, downCmd)
	return cmd
}

// MigrateUpForTesting ...
func MigrateUpForTesting(rootDir string, dsn string) {
	m := newMigrate("file://"+path.Join(rootDir, "migrations"), dsn)
	err := m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		panic(err)
	}
}
