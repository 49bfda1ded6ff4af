package finance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dropops/cmd/client/cmd/cmdutil"
	"dropops/internal/domain/finance"
)

// FinanceCmd - расходы и награды по кампаниям
var FinanceCmd = &cobra.Command{
	Use:   "finance",
	Short: "Расходы, награды и P/L",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "P/L и ROI по кампаниям и по портфелю",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		return app.Renderer().Finance(app.Views().Finance(cmd.Context()))
	},
}

var addCmd = &cobra.Command{
	Use:   "add <airdrop-id> <type> <amount>",
	Short: "Записать расход или награду",
	Long: `Типы: "Gas Fee" и "Other" - расходы, "Claimed Reward" - награда.
Сумма в долларах, больше нуля.`,
	Example: `  dropops finance add 3f2a... "Gas Fee" 12.5`,
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}

		amount, err := strconv.ParseFloat(strings.TrimPrefix(strings.ReplaceAll(args[2], ",", ""), "$"), 64)
		if err != nil {
			return fmt.Errorf("неверная сумма %q: %w", args[2], err)
		}

		f, err := app.Views().AddFinance(cmd.Context(), finance.Entry{
			AirdropID: args[0],
			CostType:  finance.CostType(args[1]),
			Amount:    amount,
		})
		if err != nil {
			return err
		}
		return app.Renderer().Finance(f)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		f, err := app.Views().DeleteFinance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return app.Renderer().Finance(f)
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Итоги, посчитанные сервером",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		report, err := app.API().FinanceSummary(cmd.Context())
		if err != nil {
			return err
		}
		return app.Renderer().Value(report)
	},
}

func init() {
	FinanceCmd.AddCommand(listCmd, addCmd, deleteCmd, summaryCmd)
}
