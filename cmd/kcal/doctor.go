package kcal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/kcal-tui/internal/config"
	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/service"
	"github.com/saadjs/kcal-tui/internal/store"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(_ *config.Config, m *store.Manager) error {
			report := service.RunDoctor(m, doctorFix)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Negative values: %d\n", report.NegativeValues)
			fmt.Fprintf(out, "Names over %d characters: %d\n", model.MaxNameLen, report.LongNames)
			fmt.Fprintf(out, "Duplicate dates: %d\n", report.DuplicateDates)
			fmt.Fprintf(out, "Invalid dates: %d\n", report.InvalidDates)
			if doctorFix {
				fmt.Fprintf(out, "Fixed rows: %d\n", report.FixedRows)
				if report.FixedRows > 0 {
					if err := m.SaveAll(cmd.Context()); err != nil {
						return err
					}
				}
				// Re-check after fixes so exit status reflects final state.
				report = service.RunDoctor(m, false)
			}
			if report.Issues() > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
