// Command sna is the social-network-analysis toolbox: inspect a
// coordinate file offline, generate synthetic fixtures, or host the
// upload page over HTTP.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is stamped by the release build; "dev" otherwise.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "sna",
	Short: "Social network analysis over Matrix Market uploads",
	Long: `sna parses Matrix Market coordinate files into sparse networks,
validates them, and serves the upload page over HTTP.`,
	Version:      Version,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
