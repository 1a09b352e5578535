package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*sourceConfig
	dataInput string
	sample    string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{sourceConfig: &sourceConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the output for a sample",
		Long:  `Grow a tree from a set of data and use it to predict the output column value for a sample given as column=value pairs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return err
			}
			sample, err := parseSample(config.sample)
			if err != nil {
				return err
			}
			t, err := config.loadTable(cmd.Context(), config.dataInput, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading training set: %w", err)
			}
			n, err := config.grow(t)
			if err != nil {
				return err
			}
			label, err := n.Predict(sample)
			if err != nil {
				return fmt.Errorf("predicting %s: %w", config.outputField, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", config.outputField, label)
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.sample), "sample", "s", "", "sample to predict as a comma-separated list of column=value pairs (required)")
	config.bindFlags(cmd)
	config.bindGrowFlags(cmd)
	return cmd
}

// parseSample parses a list of column=value pairs separated by commas.
func parseSample(s string) (map[string]string, error) {
	if s == "" {
		return nil, fmt.Errorf("required sample flag was not set")
	}
	sample := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid sample pair %q: expected column=value", pair)
		}
		if _, ok := sample[name]; ok {
			return nil, fmt.Errorf("column %s given twice in sample", name)
		}
		sample[name] = strings.TrimSpace(value)
	}
	return sample, nil
}
