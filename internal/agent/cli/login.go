package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aditya-Angaj/plantcare/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере plantcare,
// получает сессию {user, token} и сохраняет её в локальный
// конфигурационный файл. Токен живёт 24 часа.
//
// Пароль можно передать флагом --password, но безопаснее не делать этого
// (флаг утекает в shell history): без флага пароль запрашивается
// интерактивно со скрытым вводом. Для скриптов доступен --password-stdin.
//
// Пример использования:
//
//	plantcare login --email test@example.com
//
// В случае успешного выполнения сессия сохраняется локально, а пользователю
// выводится сообщение об успешном входе.
func NewLoginCmd(app *App) *cobra.Command {
	var (
		email, password   string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить токен сессии)",
		Long: `Логин пользователя.

Пример:
  plantcare login --email test@example.com
  (пароль будет запрошен со скрытым вводом)
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := ReadPassword(cmd, passwordFromStdin)
				if err != nil {
					return err
				}
				password = pw
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Login(email, password)
			if err != nil {
				return err
			}

			// сохраняем полученную сессию в состоянии приложения
			app.Creds.User = resp.User
			app.Creds.Token = resp.Token

			// сохраняем сессию в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (session saved)\n", resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password for login (omit to be prompted)")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("email")

	return cmd
}
