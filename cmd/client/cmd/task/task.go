package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dropops/cmd/client/cmd/cmdutil"
	"dropops/internal/domain/task"
)

// TaskCmd - ежедневный чек-лист кошелька
var TaskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks"},
	Short:   "Ежедневные задачи",
	Long: `Задачи без привязки к кампании образуют ежедневный чек-лист.
Задачи кампании показываются в dropops airdrop show.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Чек-лист с прогрессом",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		return app.Renderer().Tasks(app.Views().Tasks(cmd.Context()))
	},
}

var (
	addType    string
	addAirdrop string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Добавить задачу",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}

		t := task.Task{
			Title: strings.Join(args, " "),
			Type:  task.Type(addType),
		}
		if addAirdrop != "" {
			t.AirdropID = &addAirdrop
		}

		list, err := app.Views().AddTask(cmd.Context(), t)
		if err != nil {
			return err
		}
		if t.AirdropID != nil {
			fmt.Println("Задача добавлена к кампании", addAirdrop)
			return nil
		}
		return app.Renderer().Tasks(list)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Отметить задачу выполненной или снять отметку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		list, err := app.Views().ToggleTask(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return app.Renderer().Tasks(list)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить задачу",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		list, err := app.Views().DeleteTask(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return app.Renderer().Tasks(list)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", string(task.TypeOneTime), "тип: Daily, Weekly, One-time")
	addCmd.Flags().StringVar(&addAirdrop, "airdrop", "", "id кампании")

	TaskCmd.AddCommand(listCmd, addCmd, toggleCmd, deleteCmd)
}
