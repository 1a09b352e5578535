package main

import (
	"fmt"

	"github.com/pbanos/id3"
	"github.com/spf13/cobra"
)

type gainsCmdConfig struct {
	*sourceConfig
	dataInput string
}

func gainsCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &gainsCmdConfig{sourceConfig: &sourceConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "gains",
		Short: "Print the information gain of every column",
		Long:  `Print the entropy of the output column of a set of data and the information gain achieved by splitting it by each of the other columns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return err
			}
			t, err := config.loadTable(cmd.Context(), config.dataInput, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading data set: %w", err)
			}
			entropy, err := id3.DataEntropy(t, config.outputField)
			if err != nil {
				return fmt.Errorf("computing entropy of %s: %w", config.outputField, err)
			}
			gains, err := id3.Gains(t, config.outputField)
			if err != nil {
				return fmt.Errorf("computing information gains: %w", err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Entropy of %s: %v\n", config.outputField, entropy)
			for _, g := range gains {
				fmt.Fprintf(w, "%s\t%v\n", g.Field, g.Gain)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL (defaults to STDIN, interpreted as CSV)")
	config.bindFlags(cmd)
	return cmd
}
