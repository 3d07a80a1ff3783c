package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SurfShopService/migrations"
)

func migrateCmd(configPath *string) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				versions, err := migrations.Versions()
				if err != nil {
					return err
				}
				for _, v := range versions {
					cmd.Println(v)
				}
				return nil
			}

			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			db, err := openDB(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := migrations.Apply(cmd.Context(), db, log)
			if err != nil {
				log.Error("Migration failed: %v", err)
				return err
			}

			if len(applied) == 0 {
				log.Info("No pending migrations")
			} else {
				log.Info("Applied %d migration(s)", len(applied))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print embedded migrations and exit")
	return cmd
}
