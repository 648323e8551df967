package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"alumni-connect/internal/app"
	"alumni-connect/internal/models"
	"alumni-connect/internal/repositories"
	"alumni-connect/internal/timefmt"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Direct messages",
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your conversations",
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

		convs, err := a.Conversations.ListForUser(u.ID)
		if err != nil {
			return err
		}
		search, _ := cmd.Flags().GetString("search")
		convs = repositories.SearchConversations(convs, u.ID, search)

		if len(convs) == 0 {
			fmt.Println("No conversations yet.")
			return nil
		}
		for _, c := range convs {
			other, _ := c.Other(u.ID)
			line := fmt.Sprintf("[%s] %s", c.ID, other.Name)
			if n := c.UnreadCount[u.ID]; n > 0 {
				line += fmt.Sprintf(" (%d unread)", n)
			}
			if c.LastMessage != nil {
				line += fmt.Sprintf(" — %s (%s)", c.LastMessage.Message,
					timefmt.Ago(time.Now(), c.LastMessage.Timestamp))
			} else {
				line += " — No messages yet"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var chatSendCmd = &cobra.Command{
	Use:   "send <email>",
	Short: "Send a direct message",
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

		conv, _, err := a.Conversations.FindOrCreate(participant(u), participant(target))
		if err != nil {
			return err
		}
		body, _ := cmd.Flags().GetString("message")
		if body == "" {
			return errors.New("message body is required")
		}
		if _, err := a.Conversations.Append(conv.ID, u.ID, body, models.MessageText); err != nil {
			return err
		}
		fmt.Printf("Sent to %s.\n", target.Name)
		return nil
	},
}

var chatOpenCmd = &cobra.Command{
	Use:   "open <conversation-id>",
	Short: "Read a conversation and mark it read",
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

		msgs, err := a.Conversations.Messages(args[0])
		if err != nil {
			return err
		}
		for _, m := range msgs {
			fmt.Printf("%s (%s): %s\n", m.SenderName, timefmt.Ago(time.Now(), m.Timestamp), m.Message)
		}
		return a.Conversations.MarkRead(args[0], u.ID)
	},
}

func init() {
	chatListCmd.Flags().StringP("search", "s", "", "filter by participant name")
	chatSendCmd.Flags().StringP("message", "m", "", "message body")

	chatCmd.AddCommand(chatListCmd, chatSendCmd, chatOpenCmd)
	rootCmd.AddCommand(chatCmd)
}
