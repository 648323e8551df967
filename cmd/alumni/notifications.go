package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"alumni-connect/internal/app"
	"alumni-connect/internal/timefmt"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notifs"},
	Short:   "Show your notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := requireUser(a)
		if err != nil {
			return err
		}

		list, err := a.Notifications.List(u.ID)
		if err != nil {
			return err
		}
		unread, err := a.Notifications.UnreadCount(u.ID)
		if err != nil {
			return err
		}

		fmt.Printf("%d notifications, %d unread\n", len(list), unread)
		for _, n := range list {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("%s [%s] %s — %s (%s, %s)\n", marker, n.ID, n.Title, n.Message,
				n.Type, timefmt.Ago(time.Now(), n.CreatedAt))
		}
		return nil
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark a notification read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := requireUser(a)
		if err != nil {
			return err
		}
		return a.Notifications.MarkRead(u.ID, args[0])
	},
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification read",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := requireUser(a)
		if err != nil {
			return err
		}
		return a.Notifications.MarkAllRead(u.ID)
	},
}

var notificationsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := requireUser(a)
		if err != nil {
			return err
		}
		return a.Notifications.Remove(u.ID, args[0])
	},
}

func init() {
	notificationsCmd.AddCommand(notificationsReadCmd, notificationsReadAllCmd, notificationsRemoveCmd)
	rootCmd.AddCommand(notificationsCmd)
}
