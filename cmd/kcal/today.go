package kcal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/kcal-tui/internal/config"
	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/service"
	"github.com/saadjs/kcal-tui/internal/store"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show a day's intake and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withStore(cmd, func(_ *config.Config, m *store.Manager) error {
			s := service.TodaySummary(m, target)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", s.Date.Display())
			fmt.Fprintf(out, "Calories: %d / %d kcal (remaining %d)\n", s.Totals.Calories, s.Goals.Calories, s.Remaining.Calories)
			fmt.Fprintf(out, "Carbs: %d / %dg | Protein: %d / %dg | Fat: %d / %dg\n",
				s.Totals.Carbs, s.Goals.Carbs, s.Totals.Protein, s.Goals.Protein, s.Totals.Fat, s.Goals.Fat)
			if len(s.Foods) == 0 {
				fmt.Fprintln(out, "No foods logged")
				return nil
			}
			fmt.Fprintln(out, "NAME\tGRAMS\tKCAL\tC\tP\tF")
			for _, f := range s.Foods {
				fmt.Fprintf(out, "%s\t%d\t%d\t%d\t%d\t%d\n", model.DisplayName(f.Name), f.Grams, f.Calories, f.Carbs, f.Protein, f.Fat)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date DD/MM/YYYY or YYYY-MM-DD (default today)")
}
