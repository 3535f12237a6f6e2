/*
Copyright © 2025 abhay
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhay/bmark/internal/core/config"
	"github.com/abhay/bmark/internal/core/db"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bmark",
	Short: "A local bookmark manager",
	Long: `bmark keeps your bookmarks in a local SQLite database.

Run "bmark setup" once to create the store, then add bookmarks with
"bmark add" and query them with "bmark list". Bookmarks carry an URL plus
optional name, description, category and any number of tags; tags are
shared across bookmarks and never duplicated.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("dbpath", "", "Path to the bookmark database (default: config file, then the XDG data dir)")
}

// dbPath resolves the store location for the invoked command: the
// --dbpath flag, then the config file, then the XDG default.
func dbPath(cmd *cobra.Command) (string, error) {
	flagValue, err := cmd.Flags().GetString("dbpath")
	if err != nil {
		return "", fmt.Errorf("failed to read --dbpath: %w", err)
	}
	return config.ResolveDBPath(flagValue)
}

// openDB opens the store for the invoked command. It fails with guidance
// to run setup when the store does not exist yet.
func openDB(cmd *cobra.Command) (*db.DB, error) {
	path, err := dbPath(cmd)
	if err != nil {
		return nil, err
	}
	return db.Open(path)
}
