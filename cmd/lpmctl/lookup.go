package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flagnet/iptrie"
)

func newLookupCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "lookup <address>",
		Short: "Build the engine from --file and report the longest-prefix match for address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := iptrie.New()
			defer e.Teardown()

			if file != "" {
				loaded, skipped, err := loadFile(e, file)
				if err != nil {
					return err
				}
				log.Debugf("loaded %d prefixes (%d skipped)", loaded, skipped)
			}

			result, err := e.GetNetString(args[0])
			if err != nil {
				return err
			}

			if !result.Found {
				fmt.Printf("%s: no match\n", result.RealIP)
				return nil
			}
			fmt.Printf("%s: %s flags=%#x\n", result.RealIP, result.Network, result.Flags)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "prefix file to load before looking up")
	return cmd
}
