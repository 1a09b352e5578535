package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*sourceConfig
	dataInput string
	testInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{sourceConfig: &sourceConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training set and test its prediction success rate against a testing set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			trainingSet, err := config.loadTable(ctx, config.dataInput, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading training set: %w", err)
			}
			testingSet, err := config.loadTable(ctx, config.testInput, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading testing set: %w", err)
			}
			n, err := config.grow(trainingSet)
			if err != nil {
				return err
			}
			config.Logf("Testing tree against testing set with %d samples...", testingSet.Len())
			successRate, errCount, err := n.Test(testingSet, config.outputField)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%f success rate, failed to make a prediction for %d samples\n", successRate, errCount)
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.testInput), "test", "t", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to test the tree against (required)")
	config.bindFlags(cmd)
	config.bindGrowFlags(cmd)
	return cmd
}

// Validate checks the flags of the command.
func (tcc *testCmdConfig) Validate() error {
	if tcc.testInput == "" {
		return fmt.Errorf("required test flag was not set")
	}
	return tcc.sourceConfig.Validate()
}
