package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd создаёт CLI-команду для вывода текущего пользователя.
//
// Команда читает локально сохранённую сессию и показывает email и id
// пользователя. Запрос на сервер не выполняется: команда лишь отражает
// содержимое локального файла сессии.
//
// Пример использования:
//
//	plantcare whoami
func NewWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "whoami",
		Short:        "Показать текущего пользователя",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Creds.LoggedIn() {
				return fmt.Errorf("not logged in, run: plantcare login")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "email=%s\nid=%s\n", app.Creds.User.Email, app.Creds.User.ID)
			return nil
		},
	}
}
