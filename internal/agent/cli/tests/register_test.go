package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Aditya-Angaj/plantcare/internal/agent/cli"
	"github.com/Aditya-Angaj/plantcare/internal/agent/config"
)

func TestRegisterCmd_SavesSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["email"] != "new@example.com" || req["password"] != "StrongPass123" {
			t.Fatalf("unexpected credentials: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"user":{"id":"u-2","email":"new@example.com"},"token":"jwt-new"}`)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	var out bytes.Buffer
	cmd := cli.NewRegisterCmd(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--email", "new@example.com", "--password", "StrongPass123"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if !strings.Contains(out.String(), "registered as new@example.com (session saved)") {
		t.Fatalf("unexpected output: %q", out.String())
	}

	// регистрация сразу логинит: токен на диске
	saved, err := config.Load(app.CredsPath)
	if err != nil {
		t.Fatalf("Load saved credentials: %v", err)
	}
	if saved.Token != "jwt-new" || saved.User.Email != "new@example.com" {
		t.Fatalf("unexpected saved credentials: %+v", saved)
	}
}

func TestRegisterCmd_DuplicateEmail_DoesNotSaveSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"email is already registered"}`)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	var out bytes.Buffer
	cmd := cli.NewRegisterCmd(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--email", "dup@example.com", "--password", "StrongPass123"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err.Error() != "email is already registered" {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, statErr := os.Stat(app.CredsPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no credentials file, got %v", statErr)
	}
}
