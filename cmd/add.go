/*
Copyright © 2025 abhay
*/

// The add command inserts one bookmark with its tag associations.
//
// Example usage:
//
//	bmark add --url https://go.dev --name "Go" --tag lang --tag docs
//	bmark add -u https://example.com -t misc -d "scratch link" -c inbox
//	bmark add -u https://go.dev/blog --fetch-name
package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhay/bmark/internal/core"
	"github.com/abhay/bmark/internal/core/db"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a bookmark to the store",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAdd(cmd); err != nil {
			log.Fatalf("Add failed: %v", err)
		}
	},
}

// runAdd is the main function for the add command.
func runAdd(cmd *cobra.Command) error {
	url, err := cmd.Flags().GetString("url")
	if err != nil {
		return fmt.Errorf("failed to read --url: %w", err)
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("failed to read --name: %w", err)
	}
	tags, err := cmd.Flags().GetStringArray("tag")
	if err != nil {
		return fmt.Errorf("failed to read --tag: %w", err)
	}
	description, err := cmd.Flags().GetString("desc")
	if err != nil {
		return fmt.Errorf("failed to read --desc: %w", err)
	}
	category, err := cmd.Flags().GetString("catg")
	if err != nil {
		return fmt.Errorf("failed to read --catg: %w", err)
	}
	fetchName, err := cmd.Flags().GetBool("fetch-name")
	if err != nil {
		return fmt.Errorf("failed to read --fetch-name: %w", err)
	}
	fetchTimeout, err := cmd.Flags().GetDuration("fetch-timeout")
	if err != nil {
		return fmt.Errorf("failed to read --fetch-timeout: %w", err)
	}

	store, err := openDB(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	if name == "" && fetchName {
		name = fetchTitle(url, fetchTimeout)
	}

	store.RegisterEventListener(db.OnTagCreatedEvent, func(event db.Event) error {
		ev := event.(db.TagCreatedEvent)
		log.Printf("Created tag %q", ev.Tag.Name)
		return nil
	})

	b, err := store.Insert(url, name, tags, description, category)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Added %s\n", b.URL)
	if b.Name != "" {
		fmt.Fprintf(out, "  name: %s\n", b.Name)
	}
	if len(tags) > 0 {
		fmt.Fprintf(out, "  tags: %s\n", strings.Join(tags, ", "))
	}
	return nil
}

// fetchTitle tries to use the page title as the bookmark name. A fetch
// failure is logged and the bookmark is stored without a name.
func fetchTitle(url string, timeout time.Duration) string {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	title, err := core.FetchTitle(ctx, url)
	if err != nil {
		log.Printf("Could not fetch page title for %s: %v", url, err)
		return ""
	}
	return title
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("url", "u", "", "URL to bookmark (required)")
	addCmd.Flags().StringP("name", "n", "", "Name for the bookmark")
	addCmd.Flags().StringArrayP("tag", "t", nil, "Tag to attach (repeatable)")
	addCmd.Flags().StringP("desc", "d", "", "Additional note for the bookmark")
	addCmd.Flags().StringP("catg", "c", "", "Category to put the URL in")
	addCmd.Flags().Bool("fetch-name", false, "Fetch the page title as the name when --name is not given")
	addCmd.Flags().Duration("fetch-timeout", core.DefaultFetchTimeout, "Timeout for fetching the page title")

	if err := addCmd.MarkFlagRequired("url"); err != nil {
		log.Fatalf("Failed to mark url flag required: %v", err)
	}
}
