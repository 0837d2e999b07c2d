package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridwatch/loadshed/core/loadshed"
	"github.com/gridwatch/loadshed/infra/feed"
	"github.com/gridwatch/loadshed/infra/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check schedule feed files for conversion errors",
	Args:  cobra.MinimumNArgs(1),
	RunE:  validateFeeds,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateFeeds(cmd *cobra.Command, args []string) error {
	logg := logger.New("validate")
	failed := false
	for _, path := range args {
		doc, err := feed.DecodeFile(path)
		if err != nil {
			logg.Errorf("%s: %v", path, err)
			failed = true
			continue
		}
		sched, err := loadshed.NewSchedule(doc.RawSchedule(), loadshed.SAST)
		if err != nil {
			logg.Errorf("%s: %v", path, err)
			failed = true
			continue
		}
		for i, m := range doc.Monthly {
			if _, err := loadshed.NewMonthlyShedding(m, loadshed.SAST); err != nil {
				logg.Errorf("%s: monthly[%d]: %v", path, i, err)
				failed = true
			}
		}
		// Inverted one-off windows are accepted by the conversion layer
		// but almost always a feed mistake, so flag them here.
		for i, c := range sched.Changes {
			if !c.Finsh.After(c.Start) {
				logg.Warnf("%s: changes[%d]: finsh %s is not after start %s",
					path, i, c.Finsh.Format(time.RFC3339), c.Start.Format(time.RFC3339))
			}
		}
		logg.Infof("%s: ok (%d changes, %d historical, %d monthly)",
			path, len(sched.Changes), len(sched.HistoricalChanges), len(doc.Monthly))
	}
	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}
