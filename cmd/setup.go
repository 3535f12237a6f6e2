/*
Copyright © 2025 abhay
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/abhay/bmark/internal/core/db"
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the bookmark database",
	Long: `Create the bookmark database: the containing directory, the SQLite
file and the bookmark, tag and bookmark_tag tables. Running setup against
an existing store is refused.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSetup(cmd); err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
	},
}

// runSetup is the main function for the setup command.
func runSetup(cmd *cobra.Command) error {
	path, err := dbPath(cmd)
	if err != nil {
		return err
	}

	done, err := db.IsSetupDone(path)
	if err != nil {
		return err
	}
	if done {
		return fmt.Errorf("%w at %s", db.ErrAlreadySetup, path)
	}

	store, err := db.Setup(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Created bookmark store at %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
