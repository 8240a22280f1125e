// Command pagebar-routes checks route files and replays navigation scripts
// against them without opening a window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "pagebar-routes",
		Short: "Validate and simulate pagebar route files",
		Long: `pagebar-routes works on the TOML route files read by the config package.

  validate   decode and check a route file
  simulate   build the routes into an in-memory tree and replay steps`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		validateCmd(),
		simulateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
