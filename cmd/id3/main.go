package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/tree/store"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose   bool
	logFormat string
	*logger
	// memoryStore lives as long as the command tree, so the trees
	// grown by a command can be shown by the next one in the process.
	memoryStore store.Store
}

func main() {
	if err := cliParser().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{logger: &logger{}}
	rootCmd := &cobra.Command{
		Use:           "id3",
		Short:         "id3 is a tool to grow decision trees",
		Long:          `A tool to grow ID3 decision trees from categorical data, inspect them, and use them to make predictions`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.setup(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress messages")
	rootCmd.PersistentFlags().StringVar(&(config.logFormat), "log-format", "text", "format of log messages: text or json")
	rootCmd.AddCommand(versionCmd(), growCmd(config), gainsCmd(config), predictCmd(config), testCmd(config), showCmd(config))
	return rootCmd
}
