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

var mentorshipCmd = &cobra.Command{
	Use:   "mentorship",
	Short: "Mentorship requests",
}

var mentorshipRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Ask an alumni member for mentorship",
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
		mentor, err := a.Users.FindByEmail(mustString(cmd, "mentor"))
		if errors.Is(err, repositories.ErrNotFound) {
			fmt.Println("User not found.")
			return nil
		}
		if err != nil {
			return err
		}
		if mentor.Role != models.RoleAlumni {
			return fmt.Errorf("%s is not an alumni mentor", mentor.Name)
		}

		draft := models.MentorshipDraft{
			Student: *u,
			Mentor:  *mentor,
			Subject: mustString(cmd, "subject"),
			Message: mustString(cmd, "message"),
		}
		if err := validate.Struct(draft); err != nil {
			return fmt.Errorf("invalid request: %w", err)
		}

		req, err := a.Requests.Create(draft)
		if err != nil {
			return err
		}
		fmt.Printf("Request %s sent to %s.\n", req.ID, mentor.Name)
		return nil
	},
}

var mentorshipListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your mentorship requests",
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

		asMentor, _ := cmd.Flags().GetBool("as-mentor")
		var requests []models.MentorshipRequest
		if asMentor {
			requests, err = a.Requests.ForMentor(u.ID)
		} else {
			requests, err = a.Requests.ForStudent(u.ID)
		}
		if err != nil {
			return err
		}

		if len(requests) == 0 {
			fmt.Println("No mentorship requests.")
			return nil
		}
		for _, r := range requests {
			fmt.Printf("[%s] %s → %s: %s (%s, %s)\n", r.ID, r.StudentName, r.AlumniName,
				r.Subject, r.Status, timefmt.Ago(time.Now(), r.CreatedAt))
		}
		return nil
	},
}

func respondCmd(use, short string, status models.RequestStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <request-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := requireUser(a); err != nil {
				return err
			}
			req, err := a.Requests.Respond(args[0], status)
			if err != nil {
				return err
			}
			fmt.Printf("Request from %s %s.\n", req.StudentName, req.Status)
			return nil
		},
	}
}

func init() {
	mentorshipRequestCmd.Flags().String("mentor", "", "mentor's email")
	mentorshipRequestCmd.Flags().String("subject", "", "what you want help with")
	mentorshipRequestCmd.Flags().StringP("message", "m", "", "request message")

	mentorshipListCmd.Flags().Bool("as-mentor", false, "show requests addressed to you")

	mentorshipCmd.AddCommand(
		mentorshipRequestCmd,
		mentorshipListCmd,
		respondCmd("accept", "Accept a mentorship request", models.RequestAccepted),
		respondCmd("decline", "Decline a mentorship request", models.RequestDeclined),
	)
	rootCmd.AddCommand(mentorshipCmd)
}
