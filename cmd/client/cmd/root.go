// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dropops/cmd/client/cmd/airdrop"
	"dropops/cmd/client/cmd/finance"
	"dropops/cmd/client/cmd/task"
	"dropops/cmd/client/cmd/waitlist"
	"dropops/cmd/client/cmd/wallet"
	"dropops/internal/app/client"
	"dropops/internal/app/client/config"
	"dropops/internal/utils/logger"
)

var (
	cfgFile   string
	serverURL string
	output    string
	debug     bool
	app       *client.App
)

var rootCmd = &cobra.Command{
	Use:   "dropops",
	Short: "DropOps - трекер airdrop-кампаний",
	Long: `DropOps отслеживает airdrop-кампании подключённого кошелька:
шаги и прогресс, ежедневные задачи, расходы и награды, лист ожидания.

Все данные хранятся на сервере и доступны только владельцу кошелька.
Начните с: dropops wallet new && dropops wallet connect`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if output != "" {
		cfg.Output = output
	}

	level := cfg.LogLevel
	if level == "" {
		level = "warn"
	}
	if debug {
		level = "debug"
	}
	log := logger.NewWithLevel(cfg.Env, level)

	app, err = client.New(cfg, log, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(client.WithApp(cmd.Context(), app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера DropOps")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "формат вывода: table, json, yaml")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")

	rootCmd.AddCommand(wallet.WalletCmd)
	rootCmd.AddCommand(airdrop.AirdropCmd)
	rootCmd.AddCommand(airdrop.StepCmd)
	rootCmd.AddCommand(airdrop.FarmingCmd)
	rootCmd.AddCommand(task.TaskCmd)
	rootCmd.AddCommand(finance.FinanceCmd)
	rootCmd.AddCommand(waitlist.WaitlistCmd)
}
