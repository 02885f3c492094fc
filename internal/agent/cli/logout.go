package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aditya-Angaj/plantcare/internal/agent/config"
)

// NewLogoutCmd создаёт CLI-команду для удаления локальной сессии.
//
// Команда удаляет файл с сохранённой сессией. Сервер ничего не знает
// об этой операции: токен остаётся формально валидным до истечения TTL,
// но клиент его больше не хранит.
//
// Пример использования:
//
//	plantcare logout
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "logout",
		Short:        "Удалить локальную сессию",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Clear(app.CredsPath); err != nil {
				return err
			}
			app.Creds = &config.Credentials{}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out (local session removed)")
			return nil
		},
	}
}
