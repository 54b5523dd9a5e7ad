package kcal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/kcal-tui/internal/config"
	"github.com/saadjs/kcal-tui/internal/service"
	"github.com/saadjs/kcal-tui/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage daily calorie and macro goals",
}

var (
	goalCalories int
	goalCarbs    int
	goalProtein  int
	goalFat      int
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set daily goals; unset flags keep their current value",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("calories") && !flags.Changed("carbs") && !flags.Changed("protein") && !flags.Changed("fat") {
			return fmt.Errorf("set at least one of --calories, --carbs, --protein, --fat")
		}
		return withStore(cmd, func(_ *config.Config, m *store.Manager) error {
			g := m.Goals()
			in := service.SetGoalInput{Calories: g.Calories, Carbs: g.Carbs, Protein: g.Protein, Fat: g.Fat}
			if flags.Changed("calories") {
				in.Calories = goalCalories
			}
			if flags.Changed("carbs") {
				in.Carbs = goalCarbs
			}
			if flags.Changed("protein") {
				in.Protein = goalProtein
			}
			if flags.Changed("fat") {
				in.Fat = goalFat
			}
			if err := service.SetGoal(cmd.Context(), m, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set goals: %d kcal | C %dg | P %dg | F %dg\n", in.Calories, in.Carbs, in.Protein, in.Fat)
			return nil
		})
	},
}

var goalCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show current goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(_ *config.Config, m *store.Manager) error {
			g, configured := service.CurrentGoal(m)
			if !configured {
				fmt.Fprintln(cmd.OutOrStdout(), "No goal configured; defaults in effect")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d\nCarbs: %dg\nProtein: %dg\nFat: %dg\n", g.Calories, g.Carbs, g.Protein, g.Fat)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalCurrentCmd)

	goalSetCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calories")
	goalSetCmd.Flags().IntVar(&goalCarbs, "carbs", 0, "Daily carbs in grams")
	goalSetCmd.Flags().IntVar(&goalProtein, "protein", 0, "Daily protein in grams")
	goalSetCmd.Flags().IntVar(&goalFat, "fat", 0, "Daily fat in grams")
}
