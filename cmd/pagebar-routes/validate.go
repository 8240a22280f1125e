package main

import (
	"fmt"
	"io"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/config"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a route file",
		Long: `Decode a route file and check it: navigation mode, route lists,
default page and tabs. Regions marked for discovery are only checked for
conflicts, since their routes come from the running tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}
}

func runValidate(w io.Writer, path string) error {
	f, err := config.Load(path)
	if err != nil {
		return err
	}

	mode, _ := f.NavMode()
	fmt.Fprintf(w, "%s: ok (mode %s)\n", path, mode)
	printRegion(w, "bar", f.Bar)
	printRegion(w, "nav", f.Nav)
	if f.Default != "" {
		fmt.Fprintf(w, "default: %s\n", f.Default)
	}
	return nil
}

func printRegion(w io.Writer, name string, region config.Region) {
	if region.Discover != "" {
		fmt.Fprintf(w, "%s: children of %s\n", name, region.Discover)
		return
	}
	for i, route := range region.Routes {
		fmt.Fprintf(w, "%s[%d]: %s\n", name, i, route)
	}
}
