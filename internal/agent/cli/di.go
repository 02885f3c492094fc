package cli

import (
	"github.com/spf13/cobra"

	"github.com/Aditya-Angaj/plantcare/internal/agent/api"
	"github.com/Aditya-Angaj/plantcare/internal/agent/memory"
)

// для тестов
var (
	NewAPIClient     = api.NewClient
	SavePlantsToFile = memory.SaveToFile
	ReadPassword     = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return readPassword(cmd, fromStdin)
	}
)
