package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/brightcove-go/ingest"
)

var (
	sourceURL     string
	ingestProfile string
	ingestLow     bool
)

// ingestCmd groups the Dynamic Ingest commands
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Submit Dynamic Ingest jobs",
}

var ingestVideoCmd = &cobra.Command{
	Use:   "video <video-id>",
	Short: "Submit a video source for ingestion",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngestVideo,
}

func init() {
	ingestVideoCmd.Flags().StringVar(&sourceURL, "source-url", "", "URL of the video source (required)")
	ingestVideoCmd.Flags().StringVar(&ingestProfile, "profile", "", "ingest profile to transcode with")
	ingestVideoCmd.Flags().BoolVar(&ingestLow, "low-priority", false, "submit with low priority")
	_ = ingestVideoCmd.MarkFlagRequired("source-url")

	ingestCmd.AddCommand(ingestVideoCmd)
	rootCmd.AddCommand(ingestCmd)
}

func runIngestVideo(cmd *cobra.Command, args []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	req := ingest.IngestRequest{
		Master: &ingest.Master{URL: &sourceURL},
	}
	if ingestProfile != "" {
		req.Profile = &ingestProfile
	}
	if ingestLow {
		priority := "low"
		req.Priority = &priority
	}

	ctx := context.Background()
	resp, err := client.Ingest().IngestVideo(ctx, accountID, args[0], req)
	if err != nil {
		return err
	}

	fmt.Printf("Submitted ingest job %s\n", resp.ID)
	return nil
}
