/*
Copyright © 2025 abhay
*/

// The list command prints assembled bookmark records.
//
// Example usage:
//
//	bmark list --all
//	bmark list --tag go --tag docs --tag-mode all
//	bmark list --all --cols url
package cmd

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhay/bmark/internal/core/db"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks, optionally filtered by tags",
	Long: `List bookmarks with their aggregated tags.

Either --all or one or more --tag flags must be given. With --tag, the
--tag-mode flag decides whether a bookmark must carry any of the
requested tags or all of them.

The --cols flag selects the printed columns. "url" lists bare URLs;
"desc" and "tags" print that column alongside its URL.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runList(cmd); err != nil {
			log.Fatalf("List failed: %v", err)
		}
	},
}

// runList is the main function for the list command.
func runList(cmd *cobra.Command) error {
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to read --all: %w", err)
	}
	tags, err := cmd.Flags().GetStringArray("tag")
	if err != nil {
		return fmt.Errorf("failed to read --tag: %w", err)
	}
	colsStr, err := cmd.Flags().GetString("cols")
	if err != nil {
		return fmt.Errorf("failed to read --cols: %w", err)
	}
	modeStr, err := cmd.Flags().GetString("tag-mode")
	if err != nil {
		return fmt.Errorf("failed to read --tag-mode: %w", err)
	}

	cols, err := db.ParseColumns(colsStr)
	if err != nil {
		return err
	}
	mode, err := db.ParseTagMode(modeStr)
	if err != nil {
		return err
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

	opts := db.ListOptions{Columns: cols}
	if !all {
		opts.Tags = tags
		opts.Mode = mode
	}

	views, err := store.List(opts)
	if err != nil {
		return err
	}

	printViews(cmd.OutOrStdout(), views, cols)
	return nil
}

// printViews renders the selected columns, one bookmark per block.
func printViews(w io.Writer, views []db.BookmarkView, cols db.ColumnSet) {
	for _, v := range views {
		if cols.Has(db.ColURL) {
			fmt.Fprintln(w, v.URL)
		}
		if cols.Has(db.ColName) && v.Name != "" {
			fmt.Fprintf(w, "  name: %s\n", v.Name)
		}
		if cols.Has(db.ColDescription) && v.Description != "" {
			fmt.Fprintf(w, "  desc: %s\n", v.Description)
		}
		if cols.Has(db.ColCategory) && v.Category != "" {
			fmt.Fprintf(w, "  catg: %s\n", v.Category)
		}
		if cols.Has(db.ColTags) && len(v.Tags) > 0 {
			fmt.Fprintf(w, "  tags: %s\n", strings.Join(v.Tags, ", "))
		}
	}
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("all", false, "List all bookmarks")
	listCmd.Flags().StringArrayP("tag", "t", nil, "List bookmarks carrying this tag (repeatable)")
	listCmd.Flags().String("cols", "all", "Columns to print: all, url, desc or tags")
	listCmd.Flags().String("tag-mode", "any", "Tag match mode: any or all")

	listCmd.MarkFlagsOneRequired("all", "tag")
	listCmd.MarkFlagsMutuallyExclusive("all", "tag")
}
