package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// PlantUpdate создаёт CLI-команду для частичного обновления растения.
//
// Команда обновляет растение по ID на сервере и кладёт возвращённую
// свежую запись в локальный кэш. Обновлять можно только выбранные поля:
// непереданные флаги не попадают в запрос и сервер их не трогает.
//
// Требования:
//   - пользователь должен быть залогинен (токен сохранён локально);
//   - должен быть указан хотя бы один флаг обновления.
//
// Примеры:
//
//	plantcare update <uuid> --name "Monstera в гостиной"
//	plantcare update <uuid> --watering-days 10 --health Excellent
//	plantcare update <uuid> --notes ""
//
// В случае успеха выводит: "updated plant <id>".
func PlantUpdate(app *App) *cobra.Command {
	var (
		name         string
		species      string
		wateringDays int
		lastWatered  string
		health       string
		image        string
		notes        string

		setName, setSpecies, setWateringDays, setLastWatered bool
		setHealth, setImage, setNotes                        bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить поля растения",
		Long: `Частично обновляет растение по ID на сервере и в локальном кэше.

Передаются только указанные флаги, остальные поля не меняются.

Примеры:
  plantcare update <uuid> --name "Monstera в гостиной"
  plantcare update <uuid> --watering-days 10 --health Excellent
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Creds.LoggedIn() {
				return fmt.Errorf("no session token, run: plantcare login")
			}
			id := args[0]

			if !setName && !setSpecies && !setWateringDays && !setLastWatered &&
				!setHealth && !setImage && !setNotes {
				return fmt.Errorf("nothing to update: set at least one flag")
			}

			var req models.UpdatePlantRequest
			if setName {
				req.Name = &name
			}
			if setSpecies {
				req.Species = &species
			}
			if setWateringDays {
				req.WateringFrequencyDays = &wateringDays
			}
			if setLastWatered {
				t, err := time.Parse(time.RFC3339, lastWatered)
				if err != nil {
					return fmt.Errorf("--last-watered must be RFC3339 (e.g. 2026-08-30T10:00:00Z): %w", err)
				}
				req.LastWateredAt = &t
			}
			if setHealth {
				h := models.Health(health)
				req.Health = &h
			}
			if setImage {
				req.Image = &image
			}
			if setNotes {
				req.Notes = &notes
			}

			c := NewAPIClient(app.ServerURL)
			updated, err := c.UpdatePlant(app.Creds.Token, id, req)
			if err != nil {
				return err
			}

			// сервер вернул свежую запись, кэш просто её принимает
			app.Plants.Upsert(updated)
			if err := SavePlantsToFile(app.PlantsPath, app.Plants); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated plant %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&species, "species", "", "new species")
	cmd.Flags().IntVar(&wateringDays, "watering-days", 0, "new watering interval in days (> 0)")
	cmd.Flags().StringVar(&lastWatered, "last-watered", "", "new last watered time, RFC3339")
	cmd.Flags().StringVar(&health, "health", "", "new health: Excellent|Good|Fair|Poor")
	cmd.Flags().StringVar(&image, "image", "", "new image URI or data URL")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		setName = cmd.Flags().Changed("name")
		setSpecies = cmd.Flags().Changed("species")
		setWateringDays = cmd.Flags().Changed("watering-days")
		setLastWatered = cmd.Flags().Changed("last-watered")
		setHealth = cmd.Flags().Changed("health")
		setImage = cmd.Flags().Changed("image")
		setNotes = cmd.Flags().Changed("notes")
	}

	return cmd
}
