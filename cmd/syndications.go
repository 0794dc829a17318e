package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// syndicationsCmd groups the Social Syndication commands
var syndicationsCmd = &cobra.Command{
	Use:   "syndications",
	Short: "Manage MRSS syndication feeds",
}

var syndicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's syndication feeds",
	RunE:  runSyndicationsList,
}

var syndicationsGetCmd = &cobra.Command{
	Use:   "get <syndication-id>",
	Short: "Show one syndication feed",
	Args:  cobra.ExactArgs(1),
	RunE:  runSyndicationsGet,
}

func init() {
	syndicationsCmd.AddCommand(syndicationsListCmd)
	syndicationsCmd.AddCommand(syndicationsGetCmd)
	rootCmd.AddCommand(syndicationsCmd)
}

func runSyndicationsList(cmd *cobra.Command, args []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	ctx := context.Background()
	feeds, err := client.Syndication().ListSyndications(ctx, accountID)
	if err != nil {
		return err
	}

	for _, feed := range feeds {
		fmt.Printf("• %s  %s (%s)\n", feed.ID, feed.Name, feed.Type)
	}
	return nil
}

func runSyndicationsGet(cmd *cobra.Command, args []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	ctx := context.Background()
	feed, err := client.Syndication().GetSyndication(ctx, accountID, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", feed.Name, feed.Type)
	if feed.FeedURL != "" {
		fmt.Printf("  URL: %s\n", feed.FeedURL)
	}
	return nil
}
