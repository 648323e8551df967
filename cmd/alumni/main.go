package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"alumni-connect/internal/app"
	"alumni-connect/internal/colleges"
	"alumni-connect/internal/models"
	"alumni-connect/internal/repositories"
)

var validate = validator.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "alumni",
	Short:         "Local-first college alumni network",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// requireUser hydrates the active session or fails with a login hint.
func requireUser(a *app.App) (*models.User, error) {
	u, err := a.Session.Hydrate()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.New("not logged in; run `alumni login` first")
	}
	return u, nil
}

func participant(u *models.User) models.Participant {
	return models.Participant{ID: u.ID, Name: u.Name, Avatar: u.Avatar, Role: u.Role}
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := models.SignupRequest{
			Email:      mustString(cmd, "email"),
			Name:       mustString(cmd, "name"),
			Role:       models.Role(mustString(cmd, "role")),
			College:    mustString(cmd, "college"),
			Department: mustString(cmd, "department"),
			Batch:      mustString(cmd, "batch"),
			Bio:        mustString(cmd, "bio"),
		}
		if err := validate.Struct(req); err != nil {
			return fmt.Errorf("invalid signup details: %w", err)
		}
		if _, ok := colleges.Find(req.College); !ok {
			return fmt.Errorf("unknown college %q; run `alumni colleges`", req.College)
		}

		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := a.Users.Register(req)
		if err != nil {
			return err
		}
		if _, err := a.Session.Login(u); err != nil {
			return err
		}
		fmt.Printf("Welcome, %s! You are signed in.\n", u.Name)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in by email",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := a.Users.FindByEmail(mustString(cmd, "email"))
		if errors.Is(err, repositories.ErrNotFound) {
			fmt.Println("User not found. Please sign up first.")
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := a.Session.Login(*u); err != nil {
			return err
		}
		fmt.Printf("Welcome back, %s!\n", u.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.Session.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active profile",
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
		college, _ := colleges.Find(u.College)
		fmt.Printf("%s <%s>\n", u.Name, u.Email)
		fmt.Printf("%s, %s, batch %s (%s)\n", college.Name, u.Department, u.Batch, u.Role)
		if u.Bio != "" {
			fmt.Println(u.Bio)
		}
		if len(u.Skills) > 0 {
			fmt.Printf("Skills: %s\n", strings.Join(u.Skills, ", "))
		}
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := requireUser(a); err != nil {
			return err
		}

		var p models.ProfileUpdate
		setIfChanged(cmd, "name", &p.Name)
		setIfChanged(cmd, "bio", &p.Bio)
		setIfChanged(cmd, "phone", &p.Phone)
		setIfChanged(cmd, "location", &p.Location)
		setIfChanged(cmd, "company", &p.Company)
		setIfChanged(cmd, "position", &p.CurrentPosition)
		if cmd.Flags().Changed("skills") {
			skills, _ := cmd.Flags().GetStringSlice("skills")
			p.Skills = &skills
		}

		u, err := a.Session.Update(p)
		if err != nil {
			return err
		}
		fmt.Printf("Profile updated for %s.\n", u.Name)
		return nil
	},
}

var collegesCmd = &cobra.Command{
	Use:   "colleges",
	Short: "List supported colleges and post tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range colleges.All {
			fmt.Printf("%-10s %s (%s)\n", c.ID, c.Name, c.Domain)
		}
		labels := make([]string, 0, len(colleges.PostTags))
		for _, t := range colleges.PostTags {
			labels = append(labels, t.ID)
		}
		fmt.Printf("\nPost tags: %s\n", strings.Join(labels, ", "))
		return nil
	},
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func setIfChanged(cmd *cobra.Command, name string, dst **string) {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		*dst = &v
	}
}

func init() {
	signupCmd.Flags().String("email", "", "account email")
	signupCmd.Flags().String("name", "", "display name")
	signupCmd.Flags().String("role", "student", "student or alumni")
	signupCmd.Flags().String("college", "", "college id (see `alumni colleges`)")
	signupCmd.Flags().String("department", "", "department")
	signupCmd.Flags().String("batch", "", "graduation batch, e.g. 2021")
	signupCmd.Flags().String("bio", "", "short bio")

	loginCmd.Flags().String("email", "", "account email")

	profileCmd.Flags().String("name", "", "display name")
	profileCmd.Flags().String("bio", "", "short bio")
	profileCmd.Flags().String("phone", "", "phone number")
	profileCmd.Flags().String("location", "", "location")
	profileCmd.Flags().String("company", "", "current company")
	profileCmd.Flags().String("position", "", "current position")
	profileCmd.Flags().StringSlice("skills", nil, "skills list")

	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd, profileCmd, collegesCmd)
}
