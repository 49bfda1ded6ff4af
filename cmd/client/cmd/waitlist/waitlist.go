package waitlist

import (
	"strings"

	"github.com/spf13/cobra"

	"dropops/cmd/client/cmd/cmdutil"
	"dropops/internal/domain/waitlist"
)

// WaitlistCmd - проекты и NFT-минты в ожидании
var WaitlistCmd = &cobra.Command{
	Use:   "waitlist",
	Short: "Лист ожидания проектов и NFT",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список по дате, без даты в конце",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		return app.Renderer().Waitlist(app.Views().Waitlist(cmd.Context()))
	},
}

var addType string

var addCmd = &cobra.Command{
	Use:   "add <project-name>",
	Short: "Добавить проект",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		items, err := app.Views().AddWaitlist(cmd.Context(), waitlist.Item{
			ProjectName: strings.Join(args, " "),
			Date:        cmdutil.StringFlag(cmd, "date"),
			ItemType:    waitlist.ItemType(addType),
		})
		if err != nil {
			return err
		}
		return app.Renderer().Waitlist(items)
	},
}

var typeCmd = &cobra.Command{
	Use:       "type <id> <project|nft>",
	Short:     "Сменить тип записи",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(waitlist.TypeProject), string(waitlist.TypeNFT)},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.Authorized(cmd)
		if err != nil {
			return err
		}
		items, err := app.Views().ChangeWaitlistType(cmd.Context(), args[0], waitlist.ItemType(args[1]))
		if err != nil {
			return err
		}
		return app.Renderer().Waitlist(items)
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
		items, err := app.Views().DeleteWaitlist(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return app.Renderer().Waitlist(items)
	},
}

func init() {
	addCmd.Flags().String("date", "", "дата, YYYY-MM-DD")
	addCmd.Flags().StringVarP(&addType, "type", "t", string(waitlist.TypeProject), "тип: project или nft")

	WaitlistCmd.AddCommand(listCmd, addCmd, typeCmd, deleteCmd)
}
