package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// profilesCmd groups the Ingest Profiles commands
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Inspect ingest profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's ingest profiles",
	RunE:  runProfilesList,
}

var profilesGetCmd = &cobra.Command{
	Use:   "get <profile-id>",
	Short: "Show one ingest profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesGet,
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesGetCmd)
	rootCmd.AddCommand(profilesCmd)
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	ctx := context.Background()
	list, err := client.Profiles().ListProfiles(ctx, accountID)
	if err != nil {
		return err
	}

	for _, p := range list {
		name := p.DisplayName
		if name == "" {
			name = p.Name
		}
		fmt.Printf("• %s  %s\n", p.ID, name)
	}
	return nil
}

func runProfilesGet(cmd *cobra.Command, args []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	ctx := context.Background()
	p, err := client.Profiles().GetProfile(ctx, accountID, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", p.Name, p.ID)
	if p.Description != "" {
		fmt.Printf("  %s\n", p.Description)
	}
	fmt.Printf("  Renditions: %d\n", len(p.Renditions))
	if p.DynamicOrigin != nil {
		fmt.Printf("  Dynamic origin renditions: %d\n", len(p.DynamicOrigin.Renditions))
	}
	return nil
}
