package main

import (
	"fmt"

	"github.com/aussiebroadwan/connect/internal/connect/app"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect++ student profile service",
		Long: `connect runs the Connect++ backend: email OTP sign-up and public
student profiles over HTTP.

Configuration is read from the environment, with a .env file in the working
directory loaded first.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			application, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return application.Run()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (env: PORT)")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	var database string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if database == "" {
				database = app.LoadConfig().DatabaseFile
			}

			db, err := app.OpenStore(database)
			if err != nil {
				return err
			}
			defer db.Close()

			version, dirty, err := db.MigrationVersion()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: schema version %d (dirty=%t)\n", database, version, dirty)
			return nil
		},
	}

	cmd.Flags().StringVar(&database, "database", "", "SQLite database file (env: DATABASE_FILE)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion)
		},
	}
}
