// Command lpmctl is a small command-line front end over the iptrie
// engine: it builds an in-memory Engine from a text file of prefix
// insertions and runs a single lookup or dump against it. Nothing it
// reads or prints is persisted between invocations.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "lpmctl",
		Short: "Longest-prefix-match lookup engine command line front end",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newLoadCmd(), newLookupCmd(), newDumpCmd())
	return root
}
