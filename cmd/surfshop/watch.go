package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SurfShopService/internal/integrations/backend"
	"github.com/m04kA/SMC-SurfShopService/internal/notify"
	"github.com/m04kA/SMC-SurfShopService/internal/watcher"
)

func watchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow running rentals and raise alerts in the console",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			wc := cfg.Watcher
			client := backend.NewClient(wc.BackendURL, wc.Token, seconds(wc.Timeout))

			notifiers := []notify.Notifier{notify.NewLogNotifier(log)}
			if wc.WebhookURL != "" {
				notifiers = append(notifiers, notify.NewWebhookNotifier(wc.WebhookURL, seconds(wc.Timeout)))
				log.Info("Webhook notifications enabled")
			}

			w := watcher.New(client, notify.NewMulti(log, notifiers...), watcher.Options{
				Tick:          time.Duration(wc.TickInterval) * time.Millisecond,
				Refresh:       seconds(wc.RefreshInterval),
				AlertInterval: seconds(wc.AlertInterval),
			}, log)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info("Watching rentals at %s (refresh=%ds, alerts=%ds)", wc.BackendURL, wc.RefreshInterval, wc.AlertInterval)
			if err := w.Run(ctx); err != nil {
				return err
			}
			log.Info("Watcher stopped")
			return nil
		},
	}
}
