package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flagnet/iptrie"
)

// loadFile reads a text file of "<address> <extra-bits> <flags>" lines
// into e, one Engine.Add call per non-comment, non-blank line. It is a
// batch-input convenience, not persistence: the file is read once, up
// front, and nothing is ever written back to it.
func loadFile(e *iptrie.Engine, path string) (loaded, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			log.WithField("line", lineNo).Warn("expected \"<address> <extra-bits> <flags>\", skipping")
			skipped++
			continue
		}

		extraBits, err := strconv.Atoi(fields[1])
		if err != nil {
			log.WithField("line", lineNo).WithError(err).Warn("bad extra-bits, skipping")
			skipped++
			continue
		}
		flags, err := strconv.ParseUint(fields[2], 0, 64)
		if err != nil {
			log.WithField("line", lineNo).WithError(err).Warn("bad flags, skipping")
			skipped++
			continue
		}

		if err := e.AddString(fields[0], extraBits, flags); err != nil {
			log.WithField("line", lineNo).WithError(err).Warn("insert failed, skipping")
			skipped++
			continue
		}
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, skipped, fmt.Errorf("read %s: %w", path, err)
	}
	return loaded, skipped, nil
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Validate a prefix file and report how many lines loaded cleanly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := iptrie.New()
			defer e.Teardown()

			loaded, skipped, err := loadFile(e, args[0])
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"loaded": loaded, "skipped": skipped}).Info("load complete")
			return nil
		},
	}
}
