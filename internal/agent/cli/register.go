package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aditya-Angaj/plantcare/internal/agent/config"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере plantcare
// с использованием email и пароля. Сервер сразу возвращает сессию
// {user, token}, которая сохраняется локально: отдельный login после
// регистрации не нужен.
//
// Пароль можно передать флагом --password, но безопаснее не делать этого
// (флаг утекает в shell history): без флага пароль запрашивается
// интерактивно со скрытым вводом. Для скриптов доступен --password-stdin.
//
// Пример использования:
//
//	plantcare register --email test@example.com
//
// В случае успешной регистрации сессия сохраняется локально,
// а пользователю выводится сообщение об успешном завершении операции.
func NewRegisterCmd(app *App) *cobra.Command {
	var (
		email, password   string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя (сразу логинит)",
		Long: `Регистрация нового пользователя на сервере.

Сервер сразу возвращает сессию {user, token}, она сохраняется локально.

Пример:
  plantcare register --email test@example.com
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
			resp, err := c.Register(email, password)
			if err != nil {
				return err
			}

			// сохраняем сессию в состоянии приложения и на диске
			app.Creds.User = resp.User
			app.Creds.Token = resp.Token
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered as %s (session saved)\n", resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password for registration (omit to be prompted)")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("email")

	return cmd
}
