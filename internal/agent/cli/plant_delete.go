package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	serr "github.com/Aditya-Angaj/plantcare/internal/shared/errors"
)

// PlantDelete создаёт CLI-команду для удаления растения на сервере и локально.
//
// Команда удаляет растение по ID на сервере, затем удаляет его из локального
// кэша и сохраняет обновлённый plants-файл. Отсутствие растения в локальном
// кэше не считается ошибкой: кэш мог просто отстать от сервера.
//
// Требования:
//   - пользователь должен быть залогинен (токен сохранён локально).
//
// Пример использования:
//
//	plantcare remove 7a0a4a6a-a7bf-42c0-8cdf-2be8583d180e
//
// В случае успеха выводит сообщение сервера ("Plant deleted successfully").
func PlantDelete(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Удалить растение",
		Long: `Удаляет растение по ID на сервере и в локальном кэше.

Пример:
  plantcare remove <uuid>
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Creds.LoggedIn() {
				return fmt.Errorf("no session token, run: plantcare login")
			}

			id := args[0]

			c := NewAPIClient(app.ServerURL)
			resp, err := c.DeletePlant(app.Creds.Token, id)
			if err != nil {
				return err
			}

			if err := app.Plants.Delete(id); err != nil && !errors.Is(err, serr.ErrPlantNotFound) {
				return err
			}
			if err := SavePlantsToFile(app.PlantsPath, app.Plants); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", resp.Message, id)
			return nil
		},
	}
	return cmd
}
