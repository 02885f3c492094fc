package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Aditya-Angaj/plantcare/internal/agent/cli"
	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

func TestAddCmd_CreatesPlant_AndCachesIt(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/plants", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}

		var req models.CreatePlantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "Monstera" || req.Species != "Monstera deliciosa" || req.WateringFrequencyDays != 7 {
			t.Fatalf("unexpected request: %+v", req)
		}
		// дефолтное состояние, если флаг не задан
		if req.Health != models.HealthGood {
			t.Fatalf("expected default health Good, got %q", req.Health)
		}
		if req.Image != nil || req.Notes != nil {
			t.Fatalf("expected nil image/notes when flags are not set")
		}

		created := models.Plant{
			ID:                    "p-1",
			Name:                  req.Name,
			Species:               req.Species,
			WateringFrequencyDays: req.WateringFrequencyDays,
			LastWateredAt:         req.LastWateredAt,
			Health:                req.Health,
			CreatedAt:             time.Now().UTC(),
			UpdatedAt:             time.Now().UTC(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(created)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := loggedInApp(t, srv.URL)

	var out bytes.Buffer
	cmd := cli.PlantCreate(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--name", "Monstera",
		"--species", "Monstera deliciosa",
		"--watering-days", "7",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if !strings.Contains(out.String(), "created plant p-1") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if _, err := app.Plants.Get("p-1"); err != nil {
		t.Fatalf("expected created plant in cache, got %v", err)
	}
}

// Заметки и картинка уходят на сервер только когда флаги заданы
func TestAddCmd_SendsOptionalFieldsWhenSet(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/plants", func(w http.ResponseWriter, r *http.Request) {
		var req models.CreatePlantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Notes == nil || *req.Notes != "у окна" {
			t.Fatalf("expected notes to be sent, got %+v", req.Notes)
		}
		if req.Health != models.HealthFair {
			t.Fatalf("expected health Fair, got %q", req.Health)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Plant{ID: "p-2", Name: req.Name, Health: req.Health})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := loggedInApp(t, srv.URL)

	var out bytes.Buffer
	cmd := cli.PlantCreate(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--name", "Fern",
		"--species", "Nephrolepis",
		"--watering-days", "3",
		"--health", "Fair",
		"--notes", "у окна",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
}

func TestAddCmd_BadLastWatered(t *testing.T) {
	app := loggedInApp(t, "https://127.0.0.1:1")

	var out bytes.Buffer
	cmd := cli.PlantCreate(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--name", "Fern",
		"--species", "Nephrolepis",
		"--watering-days", "3",
		"--last-watered", "yesterday",
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "RFC3339") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddCmd_NotLoggedIn(t *testing.T) {
	app := newTestApp(t, "https://127.0.0.1:1")

	var out bytes.Buffer
	cmd := cli.PlantCreate(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--name", "Fern",
		"--species", "Nephrolepis",
		"--watering-days", "3",
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no session token") {
		t.Fatalf("unexpected error: %v", err)
	}
}
