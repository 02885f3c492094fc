package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// PlantWater создаёт CLI-команду для отметки полива растения.
//
// Команда выставляет lastWateredAt = текущее время через частичное
// обновление PUT /plants/{id} и кладёт свежую запись в локальный кэш.
// Это сахар поверх update: остальные поля растения не меняются.
//
// Требования:
//   - пользователь должен быть залогинен (токен сохранён локально).
//
// Пример использования:
//
//	plantcare water 7a0a4a6a-a7bf-42c0-8cdf-2be8583d180e
//
// В случае успеха выводит: "watered plant <id> at <time>".
func PlantWater(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "water <id>",
		Short: "Отметить полив (lastWateredAt = сейчас)",
		Long: `Отмечает полив растения: выставляет lastWateredAt = текущее время.

Пример:
  plantcare water <uuid>
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Creds.LoggedIn() {
				return fmt.Errorf("no session token, run: plantcare login")
			}
			id := args[0]

			now := time.Now().UTC()
			c := NewAPIClient(app.ServerURL)
			updated, err := c.UpdatePlant(app.Creds.Token, id, models.UpdatePlantRequest{
				LastWateredAt: &now,
			})
			if err != nil {
				return err
			}

			app.Plants.Upsert(updated)
			if err := SavePlantsToFile(app.PlantsPath, app.Plants); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "watered plant %s at %s\n", id, now.Format(time.RFC3339))
			return nil
		},
	}

	return cmd
}
