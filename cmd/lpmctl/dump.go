package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flagnet/iptrie"
)

func newDumpCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Build the engine from --file and print its prefix tree",
		Args:  cobra.NoArgs,
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

			fmt.Print(e.Dump())
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "prefix file to load before dumping")
	return cmd
}
