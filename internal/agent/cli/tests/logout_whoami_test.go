package tests

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/Aditya-Angaj/plantcare/internal/agent/cli"
	"github.com/Aditya-Angaj/plantcare/internal/agent/config"
	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

func TestLogoutCmd_RemovesSessionFile(t *testing.T) {
	app := newTestApp(t, "https://127.0.0.1:1")
	app.Creds = &config.Credentials{
		User:  models.User{ID: "u-1", Email: "test@example.com"},
		Token: "jwt-1",
	}
	if err := config.Save(app.CredsPath, app.Creds); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out bytes.Buffer
	cmd := cli.NewLogoutCmd(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if !strings.Contains(out.String(), "logged out (local session removed)") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if _, err := os.Stat(app.CredsPath); !os.IsNotExist(err) {
		t.Fatalf("expected session file to be removed, got %v", err)
	}
	if app.Creds.LoggedIn() {
		t.Fatalf("expected in-memory session to be reset")
	}
}

// logout без файла сессии тоже успешен
func TestLogoutCmd_NoSessionFile_IsOK(t *testing.T) {
	app := newTestApp(t, "https://127.0.0.1:1")

	var out bytes.Buffer
	cmd := cli.NewLogoutCmd(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
}

func TestWhoamiCmd_PrintsLocalSession(t *testing.T) {
	app := newTestApp(t, "https://127.0.0.1:1")
	app.Creds = &config.Credentials{
		User:  models.User{ID: "u-1", Email: "test@example.com"},
		Token: "jwt-1",
	}

	var out bytes.Buffer
	cmd := cli.NewWhoamiCmd(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if !strings.Contains(out.String(), "email=test@example.com") {
		t.Fatalf("expected email in output, got %q", out.String())
	}
	if !strings.Contains(out.String(), "id=u-1") {
		t.Fatalf("expected id in output, got %q", out.String())
	}
}

func TestWhoamiCmd_NotLoggedIn(t *testing.T) {
	app := newTestApp(t, "https://127.0.0.1:1")

	var out bytes.Buffer
	cmd := cli.NewWhoamiCmd(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("unexpected error: %v", err)
	}
}
