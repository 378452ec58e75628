package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	notificationrepo "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/laborcrm-backend/internal/service/notification"
)

func newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Notification maintenance",
	}

	var days int
	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete read notifications older than the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("retention-days") && days <= 0 {
				return fmt.Errorf("--retention-days must be > 0 (got %d)", days)
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			if !cmd.Flags().Changed("retention-days") {
				days = e.cfg.Notifications.ReadRetentionDays
			}

			// Purging is not attributed to a user, so it is not audited.
			svc := notification.NewService(e.log, notificationrepo.New(e.pool), nil)
			n, err := svc.PurgeRead(cmd.Context(), time.Duration(days)*24*time.Hour)
			if err != nil {
				return fmt.Errorf("purge notifications: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d read notifications older than %d days.\n", n, days)
			return nil
		},
	}
	purge.Flags().IntVar(&days, "retention-days", 0, "override notifications.read_retention_days")

	cmd.AddCommand(purge)
	return cmd
}
