package airdrop

import (
	"github.com/spf13/cobra"

	"dropops/cmd/client/cmd/cmdutil"
)

var (
	farmingByPoints bool
	farmingDesc     bool
)

// FarmingCmd - очки фарминга по кампаниям
var FarmingCmd = &cobra.Command{
	Use:   "farming",
	Short: "Очки фарминга по кампаниям",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		list := app.Views().Farming(cmd.Context(), farmingByPoints, farmingDesc)
		return app.Renderer().Farming(list)
	},
}

var pointsCmd = &cobra.Command{
	Use:   "points <airdrop-id> <points>",
	Short: "Записать набранные очки",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		list, err := app.Views().SetFarmingPoints(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return app.Renderer().Farming(list)
	},
}

func init() {
	FarmingCmd.Flags().BoolVar(&farmingByPoints, "by-points", false, "сортировать по очкам")
	FarmingCmd.Flags().BoolVar(&farmingDesc, "desc", true, "по убыванию")

	FarmingCmd.AddCommand(pointsCmd)
}
