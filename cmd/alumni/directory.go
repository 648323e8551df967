package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"alumni-connect/internal/app"
	"alumni-connect/internal/models"
	"alumni-connect/internal/repositories"
)

var directoryCmd = &cobra.Command{
	Use:   "directory [query]",
	Short: "Browse your college's member directory",
	Args:  cobra.MaximumNArgs(1),
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

		members, err := a.Users.Directory(u.College, u.ID)
		if err != nil {
			return err
		}

		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		role, _ := cmd.Flags().GetString("role")
		department, _ := cmd.Flags().GetString("department")
		matches := repositories.SearchDirectory(members, query, models.Role(role), department)

		if len(matches) == 0 {
			fmt.Println("No members found.")
			return nil
		}
		for _, m := range matches {
			line := fmt.Sprintf("%s <%s> — %s, batch %s (%s)", m.Name, m.Email, m.Department, m.Batch, m.Role)
			if m.CurrentPosition != "" {
				line += fmt.Sprintf(", %s at %s", m.CurrentPosition, m.Company)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var connectCmd = &cobra.Command{
	Use:   "connect <email>",
	Short: "Send a connection request to a member",
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
		target, err := a.Users.FindByEmail(args[0])
		if errors.Is(err, repositories.ErrNotFound) {
			fmt.Println("User not found.")
			return nil
		}
		if err != nil {
			return err
		}

		_, err = a.Notifications.Append(target.ID, models.NotificationDraft{
			Type:     models.NotificationRequest,
			Title:    "New Connection Request",
			Message:  fmt.Sprintf("%s wants to connect with you", u.Name),
			FromUser: u.Ref(),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Connection request sent to %s!\n", target.Name)
		return nil
	},
}

func init() {
	directoryCmd.Flags().String("role", "", "filter by role (student or alumni)")
	directoryCmd.Flags().String("department", "", "filter by department")

	rootCmd.AddCommand(directoryCmd, connectCmd)
}
