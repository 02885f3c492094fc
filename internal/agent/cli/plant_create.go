package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	sharedModels "github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// PlantCreate создаёт CLI-команду для добавления нового растения.
//
// Команда отправляет на сервер имя, вид, график полива и состояние растения,
// получает запись с серверным id и таймстемпами, кладёт её в локальный кэш
// и сохраняет plants-файл.
//
// Обязательные флаги:
//
//	--name           — имя растения
//	--species        — вид растения
//	--watering-days  — раз в сколько дней поливать (> 0)
//
// Необязательные флаги:
//
//	--last-watered   — время последнего полива в формате RFC3339
//	                   (по умолчанию: сейчас)
//	--health         — состояние: Excellent|Good|Fair|Poor (по умолчанию Good)
//	--image          — URI или data-URL картинки
//	--notes          — заметки
//
// Примеры использования:
//
//	plantcare add --name "Monstera" --species "Monstera deliciosa" --watering-days 7
//	plantcare add --name "Fern" --species "Nephrolepis" --watering-days 3 --health Fair --notes "у окна"
//
// В случае успеха выводит: "created plant <id>".
func PlantCreate(app *App) *cobra.Command {
	var (
		name         string
		species      string
		wateringDays int
		lastWatered  string
		health       string
		image        string
		notes        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить растение",
		Long: `Добавляет новое растение на сервер и в локальный кэш.

Примеры:
  plantcare add --name "Monstera" --species "Monstera deliciosa" --watering-days 7
  plantcare add --name "Fern" --species "Nephrolepis" --watering-days 3 --health Fair
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Creds.LoggedIn() {
				return fmt.Errorf("no session token, run: plantcare login")
			}

			watered := time.Now().UTC()
			if lastWatered != "" {
				t, err := time.Parse(time.RFC3339, lastWatered)
				if err != nil {
					return fmt.Errorf("--last-watered must be RFC3339 (e.g. 2026-08-30T10:00:00Z): %w", err)
				}
				watered = t
			}

			var imagePtr, notesPtr *string
			if cmd.Flags().Changed("image") {
				imagePtr = &image
			}
			if cmd.Flags().Changed("notes") {
				notesPtr = &notes
			}

			c := NewAPIClient(app.ServerURL)
			created, err := c.CreatePlant(app.Creds.Token, sharedModels.CreatePlantRequest{
				Name:                  name,
				Species:               species,
				WateringFrequencyDays: wateringDays,
				LastWateredAt:         watered,
				Health:                sharedModels.Health(health),
				Image:                 imagePtr,
				Notes:                 notesPtr,
			})
			if err != nil {
				return err
			}
			if created.ID == "" {
				return fmt.Errorf("server returned empty id on create")
			}

			app.Plants.Upsert(created)
			if err := SavePlantsToFile(app.PlantsPath, app.Plants); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created plant %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "plant name")
	cmd.Flags().StringVar(&species, "species", "", "plant species")
	cmd.Flags().IntVar(&wateringDays, "watering-days", 0, "watering interval in days (> 0)")
	cmd.Flags().StringVar(&lastWatered, "last-watered", "", "last watered time, RFC3339 (default: now)")
	cmd.Flags().StringVar(&health, "health", "Good", "health: Excellent|Good|Fair|Poor")
	cmd.Flags().StringVar(&image, "image", "", "optional image URI or data URL")
	cmd.Flags().StringVar(&notes, "notes", "", "optional notes")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("species")
	cmd.MarkFlagRequired("watering-days")

	return cmd
}
