// Package cmdutil holds helpers shared by the CLI commands.
package cmdutil

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dropops/internal/app/client"
	"dropops/internal/app/client/guard"
)

var ErrNoApp = errors.New("приложение не инициализировано")

// App returns the application set up by the root command.
func App(cmd *cobra.Command) (*client.App, error) {
	app := client.FromContext(cmd.Context())
	if app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}

// Authorized is App for the commands that need a connected wallet.
func Authorized(cmd *cobra.Command) (*client.App, error) {
	app, err := App(cmd)
	if err != nil {
		return nil, err
	}

	if _, err := app.Authorize(cmd.Context()); err != nil {
		var redirect *guard.Redirect
		if errors.As(err, &redirect) {
			return nil, errors.New("кошелёк не подключён, выполните: dropops wallet connect")
		}
		return nil, fmt.Errorf("ошибка проверки сессии: %w", err)
	}
	return app, nil
}

// StringFlag returns a pointer to the flag value when the flag was set, so an
// explicit empty value reaches the server and clears the field.
func StringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
