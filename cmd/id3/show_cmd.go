package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type showCmdConfig struct {
	*rootCmdConfig
	storeURL string
	treeName string
}

func showCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &showCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a stored tree",
		Long:  `Print a tree kept in a tree store by a previous grow command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.treeName == "" {
				return fmt.Errorf("required name flag was not set")
			}
			ctx := cmd.Context()
			s, err := config.openStore(storeURL(config.storeURL))
			if err != nil {
				return err
			}
			defer s.Close(ctx)
			rendering, err := s.Get(ctx, config.treeName)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendering)
			return nil
		},
	}
	cmd.Flags().StringVar(&(config.storeURL), "store", "", "tree store the tree is kept in: memory or a redis:// URL (defaults to $ID3_STORE or memory)")
	cmd.Flags().StringVar(&(config.treeName), "name", "", "name the tree is stored under (required)")
	return cmd
}
