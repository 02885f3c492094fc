package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// PlantList создаёт CLI-команду для вывода списка растений пользователя.
//
// Команда запрашивает GET /plants у сервера, полностью заменяет локальный
// кэш полученным списком и сохраняет его в plants-файл. Выводится таблица
// с именем, видом, графиком полива и состоянием каждого растения.
//
// Требования:
//   - пользователь должен быть залогинен (токен сохранён локально).
//
// Пример использования:
//
//	plantcare list
func PlantList(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "Список растений (с сервера, кэшируется локально)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Creds.LoggedIn() {
				return fmt.Errorf("no session token, run: plantcare login")
			}

			c := NewAPIClient(app.ServerURL)
			plants, err := c.ListPlants(app.Creds.Token)
			if err != nil {
				return err
			}

			// локальный кэш строго следует серверу
			app.Plants.ReplaceAll(plants)
			if err := SavePlantsToFile(app.PlantsPath, app.Plants); err != nil {
				return err
			}

			if len(plants) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no plants yet, add one: plantcare add")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSPECIES\tWATER EVERY\tLAST WATERED\tHEALTH")
			for _, p := range plants {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d days\t%s\t%s\n",
					p.ID,
					p.Name,
					p.Species,
					p.WateringFrequencyDays,
					p.LastWateredAt.Local().Format(time.DateOnly),
					p.Health,
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d plants (cached locally)\n", len(plants))
			return nil
		},
	}

	return cmd
}
