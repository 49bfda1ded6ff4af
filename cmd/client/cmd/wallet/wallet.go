package wallet

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"dropops/cmd/client/cmd/cmdutil"
	"dropops/internal/app/client"
	"dropops/internal/app/client/wallet"
	"dropops/internal/app/client/wallet/keystore"
	domain "dropops/internal/domain/wallet"
)

var errNoKeystore = errors.New("локальный кошелёк отключён (keystore_dir: none)")

// WalletCmd - родительская команда для операций с кошельком
var WalletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Подключение и управление кошельком",
	Long: `Подключение кошелька к DropOps, управление локальными ключами
и просмотр текущей сессии.`,
}

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Подключить кошелёк",
	Long: `Запрашивает у кошелька активный аккаунт и подпись сообщения-вызова,
регистрирует кошелёк на сервере и сохраняет сессию на 7 дней.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.App(cmd)
		if err != nil {
			return err
		}

		res := app.Connector().Connect(cmd.Context())
		switch res.Status {
		case wallet.StatusConnected:
			fmt.Println("✓", res.Message())
			if ws, err := app.Session(); err == nil && ws != nil && ws.Token == "" {
				fmt.Println("⚠️  Сервер недоступен, данные появятся после повторного подключения.")
			}
			return nil
		case wallet.StatusCancelled:
			fmt.Println(res.Message())
			return nil
		default:
			return errors.New(res.Message())
		}
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Отключить кошелёк",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.App(cmd)
		if err != nil {
			return err
		}
		if err := app.Connector().Disconnect(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка отключения кошелька: %w", err)
		}
		fmt.Println("Кошелёк отключён")
		return nil
	},
}

type statusView struct {
	Connected   bool       `json:"connected" yaml:"connected"`
	Address     string     `json:"address,omitempty" yaml:"address,omitempty"`
	ConnectedAt *time.Time `json:"connected_at,omitempty" yaml:"connected_at,omitempty"`
	Synced      bool       `json:"synced" yaml:"synced"`
	Server      *client.Me `json:"server,omitempty" yaml:"server,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать текущую сессию",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.App(cmd)
		if err != nil {
			return err
		}

		ws, err := app.Session()
		if err != nil {
			return err
		}
		if ws == nil {
			fmt.Println("Кошелёк не подключён")
			return nil
		}

		at := time.UnixMilli(ws.ConnectedAt)
		view := statusView{Connected: true, Address: ws.Address, ConnectedAt: &at, Synced: ws.Token != ""}
		if ws.Token != "" {
			app.API().SetToken(ws.Token)
			if me, err := app.API().Me(cmd.Context()); err == nil {
				view.Server = me
			}
		}

		if app.Config().Output != "table" {
			return app.Renderer().Value(view)
		}
		fmt.Printf("Кошелёк:   %s\n", domain.Short(ws.Address))
		fmt.Printf("Подключён: %s\n", humanize.Time(at))
		if view.Server != nil {
			fmt.Printf("На сервере с %s\n", view.Server.CreatedAt.Format(time.DateOnly))
		} else {
			fmt.Println("Сервер:    нет связи")
		}
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Следить за сменой аккаунта в кошельке",
	Long:  `Завершает сессию, как только активный аккаунт кошелька перестаёт совпадать с подключённым.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.App(cmd)
		if err != nil {
			return err
		}
		fmt.Println("Ожидание изменений, Ctrl+C для выхода...")
		return app.Connector().Watch(cmd.Context())
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Создать новый ключ в локальном кошельке",
	RunE: func(cmd *cobra.Command, args []string) error {
		ks, err := localKeystore(cmd)
		if err != nil {
			return err
		}
		passphrase, err := readNewPassphrase()
		if err != nil {
			return err
		}
		address, err := ks.Create(passphrase)
		if err != nil {
			return err
		}
		fmt.Println("✓ Создан ключ", address)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <hex-private-key>",
	Short: "Импортировать приватный ключ",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ks, err := localKeystore(cmd)
		if err != nil {
			return err
		}
		passphrase, err := readNewPassphrase()
		if err != nil {
			return err
		}
		address, err := ks.Import(args[0], passphrase)
		if err != nil {
			return err
		}
		fmt.Println("✓ Импортирован ключ", address)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список ключей локального кошелька",
	RunE: func(cmd *cobra.Command, args []string) error {
		ks, err := localKeystore(cmd)
		if err != nil {
			return err
		}
		list, err := ks.List()
		if err != nil {
			return err
		}
		active, err := ks.Active()
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("Ключей нет, создайте: dropops wallet new")
			return nil
		}
		for _, addr := range list {
			mark := " "
			if domain.Equal(addr, active) {
				mark = "*"
			}
			fmt.Println(mark, addr)
		}
		return nil
	},
}

var useCmd = &cobra.Command{
	Use:   "use <address>",
	Short: "Сделать ключ активным аккаунтом",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ks, err := localKeystore(cmd)
		if err != nil {
			return err
		}
		if err := ks.Use(args[0]); err != nil {
			return err
		}
		fmt.Println("Активный аккаунт:", args[0])
		return nil
	},
}

func localKeystore(cmd *cobra.Command) (*keystore.Keystore, error) {
	app, err := cmdutil.App(cmd)
	if err != nil {
		return nil, err
	}
	if app.Keystore() == nil {
		return nil, errNoKeystore
	}
	return app.Keystore(), nil
}

func readNewPassphrase() (string, error) {
	prompt := keystore.NewTermPrompter()
	passphrase, err := prompt.Passphrase("Введите пароль ключа: ")
	if err != nil {
		return "", err
	}
	confirm, err := prompt.Passphrase("Повторите пароль ключа: ")
	if err != nil {
		return "", err
	}
	if passphrase != confirm {
		return "", fmt.Errorf("пароли не совпадают")
	}
	return passphrase, nil
}

func init() {
	WalletCmd.AddCommand(connectCmd, disconnectCmd, statusCmd, watchCmd)
	WalletCmd.AddCommand(newCmd, importCmd, listCmd, useCmd)
}
