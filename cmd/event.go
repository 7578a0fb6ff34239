package cmd

import (
	"fmt"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/outwriter"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/spf13/cobra"
)

// eventCmd groups the disturbance record commands.
var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Record and list disturbances.",
}

// eventAddCmd stores one disturbance.
var eventAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a disturbance.",
	Long: `Record a disturbance in the protocol.

Date and times default to now. The begin time must be before the end time
on the same day, and the impact ranges from 1 (barely noticeable) to 5 (unbearable).

Examples:
  protokoll event add --begin 22:15 --cause Music --responsible "Flat 3B" --impact 4
  protokoll event add --date 14-03-2025 --begin 07:00 --end 09:30 --cause Drilling --responsible Site --impact 3`,
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		var rec schema.RawRecord
		rec.Date, _ = flags.GetString("date")
		rec.Begin, _ = flags.GetString("begin")
		rec.End, _ = flags.GetString("end")
		rec.Cause, _ = flags.GetString("cause")
		rec.Responsible, _ = flags.GetString("responsible")
		rec.Impact, _ = flags.GetInt("impact")

		contract.ApplyEntryDefaults(&rec, clock.Now())
		if err := contract.ValidateRecord(rec); err != nil {
			return fmt.Errorf("invalid disturbance: %w", err)
		}
		id, err := store.InsertRecord(rootCtx, rec)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded disturbance %d on %s %s-%s.\n", id, rec.Date, rec.Begin, rec.End)
		return nil
	},
}

// eventListCmd prints every stored disturbance.
var eventListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List recorded disturbances.",
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		records, err := store.FetchAll(rootCtx)
		if err != nil {
			return err
		}
		return outwriter.NewOutWriter().WriteRecords(records, cfg)
	},
}

// actionCmd groups the remedial action commands.
var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Record and list remedial actions.",
}

// actionAddCmd stores one remedial action.
var actionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a remedial action.",
	Long: `Record a measure taken against the disturbances and its outcome.

Example:
  protokoll action add --period "March 2025" --description "Letter to landlord" --outcome "No reply"`,
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		var action schema.RemedialAction
		action.Period, _ = flags.GetString("period")
		action.Description, _ = flags.GetString("description")
		action.Outcome, _ = flags.GetString("outcome")

		if err := contract.ValidateAction(action); err != nil {
			return fmt.Errorf("invalid remedial action: %w", err)
		}
		id, err := store.InsertAction(rootCtx, action)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded remedial action %d.\n", id)
		return nil
	},
}

// actionListCmd prints every stored remedial action.
var actionListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List recorded remedial actions.",
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		actions, err := store.FetchActions(rootCtx)
		if err != nil {
			return err
		}
		return outwriter.NewOutWriter().WriteActions(actions, cfg)
	},
}
