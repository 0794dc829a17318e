package cmd

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	reportDimensions string
	reportFields     string
	reportFrom       string
	reportTo         string
)

// analyticsCmd groups the Analytics API commands
var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Pull engagement and reporting data from the Analytics API",
}

var engagementCmd = &cobra.Command{
	Use:   "engagement [video-id...]",
	Short: "Show the engagement timeline for the account or for videos",
	Long: `Without arguments, prints the account-level engagement timeline.
With video IDs, fetches each video's timeline concurrently.`,
	RunE: runEngagement,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run an analytics report against /data",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDimensions, "dimensions", "video", "report dimensions (comma separated)")
	reportCmd.Flags().StringVar(&reportFields, "fields", "", "fields to include")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "start of the reporting period")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "end of the reporting period")

	analyticsCmd.AddCommand(engagementCmd)
	analyticsCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(analyticsCmd)
}

func runEngagement(cmd *cobra.Command, args []string) error {
	if err := requireAccount(); err != nil {
		return err
	}
	ctx := context.Background()

	if len(args) == 0 {
		timeline, err := client.Analytics().AccountEngagement(ctx, accountID)
		if err != nil {
			return err
		}
		fmt.Printf("Account %s engagement: %v\n", accountID, timeline.Timeline)
		return nil
	}

	results, err := client.Analytics().BatchVideoEngagement(ctx, accountID, args)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("• %s (duration %dms): %v\n", r.VideoID, r.Engagement.Duration, r.Engagement.Timeline.Timeline)
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	params := url.Values{}
	params.Set("accounts", accountID)
	params.Set("dimensions", reportDimensions)
	if reportFields != "" {
		params.Set("fields", reportFields)
	}
	if reportFrom != "" {
		params.Set("from", reportFrom)
	}
	if reportTo != "" {
		params.Set("to", reportTo)
	}

	ctx := context.Background()
	report, err := client.Analytics().GetReport(ctx, params)
	if err != nil {
		return err
	}

	fmt.Printf("%d items\n", report.ItemCount)
	for _, item := range report.Items {
		fmt.Printf("  %v\n", item)
	}
	return nil
}
