package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// tokenCmd fetches a bearer token, mostly useful for debugging
// credentials and for handing a token to curl.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Fetch an OAuth bearer token and print it",
	RunE:  runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	token, err := client.TokenSource().AccessToken(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
