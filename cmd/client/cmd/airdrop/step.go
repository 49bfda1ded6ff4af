package airdrop

import (
	"github.com/spf13/cobra"

	"dropops/cmd/client/cmd/cmdutil"
)

// StepCmd - шаги чек-листа кампании
var StepCmd = &cobra.Command{
	Use:   "step",
	Short: "Шаги кампании",
}

var stepAddCmd = &cobra.Command{
	Use:   "add <airdrop-id> <title>...",
	Short: "Добавить шаги",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		list, err := app.Views().AddSteps(cmd.Context(), args[0], args[1:])
		if err != nil {
			return err
		}
		return app.Renderer().Steps(list)
	},
}

var stepToggleCmd = &cobra.Command{
	Use:   "toggle <airdrop-id> <step-id>",
	Short: "Отметить шаг выполненным или снять отметку",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		list, err := app.Views().ToggleStep(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return app.Renderer().Steps(list)
	},
}

var stepDeleteCmd = &cobra.Command{
	Use:   "delete <airdrop-id> <step-id>",
	Short: "Удалить шаг",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		list, err := app.Views().DeleteStep(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return app.Renderer().Steps(list)
	},
}

func init() {
	StepCmd.AddCommand(stepAddCmd, stepToggleCmd, stepDeleteCmd)
}
