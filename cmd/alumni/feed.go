package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"alumni-connect/internal/app"
	"alumni-connect/internal/colleges"
	"alumni-connect/internal/models"
	"alumni-connect/internal/repositories"
	"alumni-connect/internal/timefmt"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show your college feed",
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

		posts, err := a.Posts.List(u.College)
		if err != nil {
			return err
		}
		search, _ := cmd.Flags().GetString("search")
		tags, _ := cmd.Flags().GetStringSlice("tags")
		visible := repositories.FilterPosts(posts, search, tags)

		if len(visible) == 0 {
			fmt.Println("No posts found.")
			return nil
		}
		for _, p := range visible {
			printPost(p)
		}
		return nil
	},
}

func printPost(p models.Post) {
	fmt.Printf("[%s] %s (%s, %s) · %s\n", p.ID, p.AuthorName, p.AuthorDepartment, p.AuthorBatch,
		timefmt.Ago(time.Now(), p.CreatedAt))
	fmt.Printf("  %s\n", p.Content)
	if len(p.Tags) > 0 {
		labels := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			labels = append(labels, colleges.TagLabel(t))
		}
		fmt.Printf("  Tags: %s\n", strings.Join(labels, ", "))
	}
	fmt.Printf("  %d likes · %d comments\n", len(p.Likes), len(p.Comments))
	for _, c := range p.Comments {
		fmt.Printf("    %s: %s (%s)\n", c.AuthorName, c.Content, timefmt.Ago(time.Now(), c.CreatedAt))
	}
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Create and interact with posts",
}

var postNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Publish a post to your college feed",
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

		tags, _ := cmd.Flags().GetStringSlice("tags")
		for _, t := range tags {
			if !colleges.ValidTag(t) {
				return fmt.Errorf("unknown tag %q; run `alumni colleges`", t)
			}
		}
		draft := models.PostDraft{
			Author:  *u,
			Content: mustString(cmd, "content"),
			Image:   mustString(cmd, "image"),
			Tags:    tags,
		}
		if err := validate.Struct(draft); err != nil {
			return fmt.Errorf("invalid post: %w", err)
		}

		p, err := a.Posts.Create(u.College, draft)
		if err != nil {
			return err
		}
		fmt.Printf("Posted %s.\n", p.ID)
		return nil
	},
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Toggle your like on a post",
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
		p, err := a.Posts.ToggleLike(u.College, args[0], u.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Post now has %d likes.\n", len(p.Likes))
		return nil
	},
}

var postCommentCmd = &cobra.Command{
	Use:   "comment <post-id>",
	Short: "Comment on a post",
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
		draft := models.CommentDraft{Author: *u, Content: mustString(cmd, "message")}
		if err := validate.Struct(draft); err != nil {
			return fmt.Errorf("invalid comment: %w", err)
		}
		p, err := a.Posts.AddComment(u.College, args[0], draft)
		if err != nil {
			return err
		}
		fmt.Printf("Post now has %d comments.\n", len(p.Comments))
		return nil
	},
}

func init() {
	feedCmd.Flags().StringP("search", "s", "", "free-text search")
	feedCmd.Flags().StringSlice("tags", nil, "tag filter (any match)")

	postNewCmd.Flags().String("content", "", "post body")
	postNewCmd.Flags().String("image", "", "image URL")
	postNewCmd.Flags().StringSlice("tags", nil, "tag ids")

	postCommentCmd.Flags().StringP("message", "m", "", "comment body")

	postCmd.AddCommand(postNewCmd, postLikeCmd, postCommentCmd)
	rootCmd.AddCommand(feedCmd, postCmd)
}
