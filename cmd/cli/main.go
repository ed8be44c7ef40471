package main

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/myrjola/gutengraph/cmd/cli/analyze"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
)

func init() {
	// A .env file is optional on the command line as well.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(analyze.Group)
	rootCmd.AddCommand(analyze.Book)
	rootCmd.AddCommand(analyze.Text)
}

var rootCmd = &cobra.Command{
	Use:  "gutengraph-cli",
	Long: `Command line utilities for gutengraph https://github.com/myrjola/gutengraph`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
