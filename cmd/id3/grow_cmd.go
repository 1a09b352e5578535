package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/table"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*sourceConfig
	dataInput string
	storeURL  string
	treeName  string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{sourceConfig: &sourceConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a decision tree from a set of data to predict a certain column, print it and optionally store it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			t, err := config.loadTable(ctx, config.dataInput, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading training set: %w", err)
			}
			n, err := config.grow(t)
			if err != nil {
				return err
			}
			_, err = n.WriteTo(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if config.treeName == "" {
				return nil
			}
			return config.store(ctx, n)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	config.bindFlags(cmd)
	config.bindGrowFlags(cmd)
	cmd.Flags().StringVar(&(config.storeURL), "store", "", "tree store to keep the tree in: memory or a redis:// URL (defaults to $ID3_STORE or memory)")
	cmd.Flags().StringVar(&(config.treeName), "name", "", "name to store the tree under (the tree is not stored if empty)")
	return cmd
}

// bindGrowFlags binds the flags tuning how trees are grown.
func (sc *sourceConfig) bindGrowFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&(sc.parallel), "parallel", 1, "number of branches to grow at a time on each level (0 for one per CPU)")
}

func (gcc *growCmdConfig) store(ctx context.Context, n *tree.Node) error {
	url := storeURL(gcc.storeURL)
	if url == defaultStore {
		gcc.Warn("trees in the memory store are lost when the process exits, set --store or $ID3_STORE to keep them", "name", gcc.treeName)
	}
	s, err := gcc.openStore(url)
	if err != nil {
		return err
	}
	defer s.Close(ctx)
	err = s.Put(ctx, gcc.treeName, n)
	if err != nil {
		return err
	}
	gcc.Logf("Tree stored as %s", gcc.treeName)
	return nil
}

// grow builds a tree from the table to predict the output field,
// logging the inconsistencies found while growing it.
func (sc *sourceConfig) grow(t *table.Table) (*tree.Node, error) {
	parallel := sc.parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	b := id3.NewBuilder(
		id3.WithLogger(sc.Logger),
		id3.WithParallelism(parallel),
	)
	sc.Logf("Growing tree from a set with %d samples and %d features to predict %s ...", t.Len(), len(t.Columns())-1, sc.outputField)
	n, err := b.Build(t, sc.outputField)
	if err != nil {
		return nil, fmt.Errorf("growing the tree: %w", err)
	}
	sc.Logf("Done")
	return n, nil
}
