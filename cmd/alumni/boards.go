package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"alumni-connect/internal/app"
	"alumni-connect/internal/models"
	"alumni-connect/internal/repositories"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse the job board",
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

		jobs, err := a.Jobs.List(u.College)
		if err != nil {
			return err
		}
		search, _ := cmd.Flags().GetString("search")
		jobType, _ := cmd.Flags().GetString("type")
		jobs = repositories.FilterJobs(jobs, search, models.JobType(jobType))

		if len(jobs) == 0 {
			fmt.Println("No jobs posted.")
			return nil
		}
		for _, j := range jobs {
			fmt.Printf("[%s] %s at %s — %s, %s\n", j.ID, j.Title, j.Company, j.Location, j.Type)
			if j.Salary != "" {
				fmt.Printf("  Salary: %s\n", j.Salary)
			}
			fmt.Printf("  %s\n  Apply: %s (posted by %s)\n", j.Description, j.ApplicationLink, j.PostedBy)
		}
		return nil
	},
}

var jobsPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a job to your college board",
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

		requirements, _ := cmd.Flags().GetStringSlice("requirements")
		draft := models.JobDraft{
			Title:           mustString(cmd, "title"),
			Company:         mustString(cmd, "company"),
			Location:        mustString(cmd, "location"),
			Type:            models.JobType(mustString(cmd, "type")),
			Salary:          mustString(cmd, "salary"),
			Description:     mustString(cmd, "description"),
			Requirements:    requirements,
			PostedBy:        u.Name,
			ApplicationLink: mustString(cmd, "link"),
		}
		if err := validate.Struct(draft); err != nil {
			return fmt.Errorf("invalid job posting: %w", err)
		}

		job, err := a.Jobs.Post(u.College, draft)
		if err != nil {
			return err
		}
		fmt.Printf("Posted %s at %s.\n", job.Title, job.Company)
		return nil
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse community events",
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

		events, err := a.Events.List(u.College)
		if err != nil {
			return err
		}
		upcoming, past := repositories.SplitByDate(events, time.Now())

		fmt.Println("Upcoming:")
		printEvents(upcoming)
		if len(past) > 0 {
			fmt.Println("Past:")
			printEvents(past)
		}
		return nil
	},
}

func printEvents(events []models.Event) {
	if len(events) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, ev := range events {
		where := ev.Location
		if ev.IsOnline {
			where += " (online)"
		}
		limit := ""
		if ev.MaxAttendees > 0 {
			limit = fmt.Sprintf("/%d", ev.MaxAttendees)
		}
		fmt.Printf("  [%s] %s — %s %s, %s, %d%s attending (%s)\n", ev.ID, ev.Title,
			ev.Date.Format("Jan 2 2006"), ev.Time, where, len(ev.Attendees), limit, ev.Type)
	}
}

var eventsNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create an event",
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

		date, err := time.Parse("2006-01-02", mustString(cmd, "date"))
		if err != nil {
			return fmt.Errorf("invalid date (want YYYY-MM-DD): %w", err)
		}
		maxAttendees, _ := cmd.Flags().GetInt("max")
		online, _ := cmd.Flags().GetBool("online")
		draft := models.EventDraft{
			Title:        mustString(cmd, "title"),
			Description:  mustString(cmd, "description"),
			Date:         date,
			Time:         mustString(cmd, "time"),
			Location:     mustString(cmd, "location"),
			Organizer:    u.Name,
			MaxAttendees: maxAttendees,
			Type:         models.EventType(mustString(cmd, "type")),
			IsOnline:     online,
		}
		if err := validate.Struct(draft); err != nil {
			return fmt.Errorf("invalid event: %w", err)
		}

		ev, err := a.Events.Create(u.College, draft)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s on %s.\n", ev.Title, ev.Date.Format("Jan 2 2006"))
		return nil
	},
}

var eventsRSVPCmd = &cobra.Command{
	Use:   "rsvp <event-id>",
	Short: "Toggle your RSVP for an event",
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
		ev, err := a.Events.ToggleRSVP(u.College, args[0], u.ID)
		if err != nil {
			return err
		}
		attending := false
		for _, id := range ev.Attendees {
			if id == u.ID {
				attending = true
			}
		}
		if attending {
			fmt.Printf("You are attending %s.\n", ev.Title)
		} else {
			fmt.Printf("RSVP withdrawn for %s.\n", ev.Title)
		}
		return nil
	},
}

func init() {
	jobsCmd.Flags().StringP("search", "s", "", "free-text search")
	jobsCmd.Flags().String("type", "", "filter by job type")

	jobsPostCmd.Flags().String("title", "", "job title")
	jobsPostCmd.Flags().String("company", "", "company name")
	jobsPostCmd.Flags().String("location", "", "job location")
	jobsPostCmd.Flags().String("type", string(models.JobFullTime), "full-time, part-time, internship or contract")
	jobsPostCmd.Flags().String("salary", "", "salary range")
	jobsPostCmd.Flags().String("description", "", "job description")
	jobsPostCmd.Flags().StringSlice("requirements", nil, "requirement list")
	jobsPostCmd.Flags().String("link", "", "application link")

	eventsNewCmd.Flags().String("title", "", "event title")
	eventsNewCmd.Flags().String("description", "", "event description")
	eventsNewCmd.Flags().String("date", "", "date (YYYY-MM-DD)")
	eventsNewCmd.Flags().String("time", "", "start time, e.g. 18:00")
	eventsNewCmd.Flags().String("location", "", "venue or meeting link")
	eventsNewCmd.Flags().Int("max", 0, "attendee cap (0 for none)")
	eventsNewCmd.Flags().String("type", string(models.EventNetworking), "workshop, networking, webinar, social or career")
	eventsNewCmd.Flags().Bool("online", false, "online event")

	jobsCmd.AddCommand(jobsPostCmd)
	eventsCmd.AddCommand(eventsNewCmd, eventsRSVPCmd)
	rootCmd.AddCommand(jobsCmd, eventsCmd)
}
