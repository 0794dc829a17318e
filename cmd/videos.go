package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/brightcove-go/cms"
	"github.com/s0up4200/brightcove-go/filter"
)

// videosCmd groups the CMS video commands
var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Query videos through the CMS API",
}

var videosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List videos, optionally filtered by a search query and an expression",
	Long: `List videos in the account. --query is passed to the CMS search
surface server-side; --filter is an expression evaluated client-side
over each returned video, e.g.:

  brightcove videos list --filter 'state == "ACTIVE" && duration > 600000'
  brightcove videos list --filter '"archive" in tags'`,
	RunE: runVideosList,
}

var videosGetCmd = &cobra.Command{
	Use:   "get <video-id> [video-id...]",
	Short: "Get up to 10 videos by ID",
	Args:  cobra.RangeArgs(1, cms.MaxVideoIDs),
	RunE:  runVideosGet,
}

var videosCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Count videos matching a search query",
	RunE:  runVideosCount,
}

func init() {
	videosListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	videosListCmd.Flags().StringVarP(&query, "query", "q", "", "CMS search query")
	videosListCmd.Flags().IntVar(&limit, "limit", 20, "maximum videos to fetch")
	videosCountCmd.Flags().StringVarP(&query, "query", "q", "", "CMS search query")

	videosCmd.AddCommand(videosListCmd)
	videosCmd.AddCommand(videosGetCmd)
	videosCmd.AddCommand(videosCountCmd)
	rootCmd.AddCommand(videosCmd)
}

func runVideosList(cmd *cobra.Command, args []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	var matches filter.Filter
	if filterExpr != "" {
		var err error
		matches, err = filter.Compile(filterExpr)
		if err != nil {
			return err
		}
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if query != "" {
		params.Set("q", query)
	}

	ctx := context.Background()
	videos, err := client.CMS().GetVideos(ctx, accountID, params)
	if err != nil {
		return err
	}

	shown := 0
	for _, video := range videos {
		if matches != nil {
			ok, err := matches(video)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		shown++
		printVideo(video)
	}

	if shown == 0 {
		fmt.Println("No videos found matching the criteria.")
	}
	return nil
}

func runVideosGet(cmd *cobra.Command, args []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	ctx := context.Background()
	videos, err := client.CMS().GetVideosByIDs(ctx, accountID, args)
	if err != nil {
		return err
	}

	for _, video := range videos {
		printVideo(video)
	}
	return nil
}

func runVideosCount(cmd *cobra.Command, args []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}

	ctx := context.Background()
	count, err := client.CMS().GetVideoCount(ctx, accountID, params)
	if err != nil {
		return err
	}

	fmt.Println(count)
	return nil
}

func printVideo(video cms.Video) {
	fmt.Printf("• %s  %s [%s]\n", video.ID, video.Name, video.State)
	if len(video.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(video.Tags, ", "))
	}
	if video.Duration > 0 {
		fmt.Printf("  Duration: %ds\n", video.Duration/1000)
	}
	if video.CreatedAt != "" {
		fmt.Printf("  Created: %s\n", video.CreatedAt)
	}
}
