package airdrop

import (
	"fmt"

	"github.com/spf13/cobra"

	"dropops/cmd/client/cmd/cmdutil"
	"dropops/internal/app/client/views"
	"dropops/internal/domain/airdrop"
)

// AirdropCmd - родительская команда для операций с airdrop-кампаниями
var AirdropCmd = &cobra.Command{
	Use:     "airdrop",
	Aliases: []string{"airdrops", "a"},
	Short:   "Управление airdrop-кампаниями",
}

var (
	listStatus  string
	listNetwork string
	listByValue bool
	listDesc    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Дашборд: список кампаний с прогрессом",
	Long: `Список кампаний кошелька, новые сверху.

Флаг --by-value сортирует по оценке стоимости; значения без цифр
оказываются в конце списка.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		d := app.Views().Dashboard(cmd.Context(), views.DashboardQuery{
			Status:      airdrop.Status(listStatus),
			Network:     listNetwork,
			SortByValue: listByValue,
			Desc:        listDesc,
		})
		return app.Renderer().Dashboard(d)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Карточка кампании: поля, шаги и задачи",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		return app.Renderer().Detail(app.Views().Detail(cmd.Context(), args[0]))
	},
}

var (
	createSchema int
	createStatus string
	createSteps  []string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Добавить кампанию",
	Example: `  dropops airdrop create "LayerZero" --network Ethereum --status Active \
    --value '$1,500' --step "Bridge to Arbitrum" --step "Swap on Stargate"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}

		a := airdrop.Airdrop{
			SchemaVersion: createSchema,
			Name:          args[0],
			Status:        airdrop.Status(createStatus),
		}
		fields := fieldFlags(cmd)
		a.Network = fields.Network
		a.Notes = fields.Notes
		a.Website = fields.Website
		a.Funds = fields.Funds
		a.EstimatedTGE = fields.EstimatedTGE
		a.EstimatedVal = fields.EstimatedVal
		a.TasksSummary = fields.TasksSummary
		a.StartDate = fields.StartDate
		a.EndDate = fields.EndDate
		a.FarmingPoints = fields.FarmingPoints

		created, err := app.Views().CreateAirdrop(cmd.Context(), a, createSteps)
		if err != nil {
			return err
		}
		return app.Renderer().Airdrop(&created.Airdrop)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Изменить поля кампании",
	Long: `Меняет только переданные флаги. Пустое значение очищает
необязательное поле, например --notes "".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}

		patch := fieldFlags(cmd)
		patch.Name = cmdutil.StringFlag(cmd, "name")
		if cmd.Flags().Changed("status") {
			s := airdrop.Status(createStatus)
			patch.Status = &s
		}
		if cmd.Flags().Changed("schema-version") {
			patch.SchemaVersion = &createSchema
		}

		a, err := app.Views().UpdateAirdrop(cmd.Context(), args[0], patch)
		if err != nil {
			return err
		}
		return app.Renderer().Airdrop(a)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить кампанию вместе с шагами и записями финансов",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		if err := app.Views().DeleteAirdrop(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Кампания удалена")
		return nil
	},
}

// fieldFlags собирает необязательные поля, переданные флагами.
func fieldFlags(cmd *cobra.Command) airdrop.Patch {
	return airdrop.Patch{
		Network:       cmdutil.StringFlag(cmd, "network"),
		Notes:         cmdutil.StringFlag(cmd, "notes"),
		Website:       cmdutil.StringFlag(cmd, "website"),
		Funds:         cmdutil.StringFlag(cmd, "funds"),
		EstimatedTGE:  cmdutil.StringFlag(cmd, "tge"),
		EstimatedVal:  cmdutil.StringFlag(cmd, "value"),
		TasksSummary:  cmdutil.StringFlag(cmd, "summary"),
		StartDate:     cmdutil.StringFlag(cmd, "start"),
		EndDate:       cmdutil.StringFlag(cmd, "end"),
		FarmingPoints: cmdutil.StringFlag(cmd, "points"),
	}
}

func addFieldFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("network", "", "сеть: Ethereum, Arbitrum, Base, Solana, ...")
	f.String("notes", "", "заметки")
	f.String("website", "", "сайт проекта")
	f.String("funds", "", "привлечённые инвестиции")
	f.String("tge", "", "ожидаемая дата TGE")
	f.String("value", "", "оценка стоимости, например $1,500")
	f.String("summary", "", "краткое описание задач")
	f.String("start", "", "дата начала, YYYY-MM-DD")
	f.String("end", "", "дата окончания, YYYY-MM-DD")
	f.String("points", "", "набранные очки фарминга")
	f.StringVar(&createStatus, "status", "", "статус: Tracking, Active, Snapshot Taken, Claimed, Dropped")
	f.IntVar(&createSchema, "schema-version", 0, "версия схемы записи (1-3), по умолчанию последняя")
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "фильтр по статусу")
	listCmd.Flags().StringVar(&listNetwork, "network", "", "фильтр по сети")
	listCmd.Flags().BoolVar(&listByValue, "by-value", false, "сортировать по оценке стоимости")
	listCmd.Flags().BoolVar(&listDesc, "desc", true, "по убыванию (с --by-value)")

	addFieldFlags(createCmd)
	createCmd.Flags().StringArrayVar(&createSteps, "step", nil, "начальный шаг, можно повторять")

	addFieldFlags(updateCmd)
	updateCmd.Flags().String("name", "", "новое название")

	AirdropCmd.AddCommand(listCmd, showCmd, createCmd, updateCmd, deleteCmd)
}
