package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// levelsCmd lists the level table
var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Run: func(cmd *cobra.Command, args []string) {
		lv, err := loadLevels()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		printLevels(cmd.OutOrStdout(), lv)
	},
}
