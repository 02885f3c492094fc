package tests

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Aditya-Angaj/plantcare/internal/agent/cli"
	"github.com/Aditya-Angaj/plantcare/internal/agent/config"
	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	cmd := cli.NewRootCmd("1.0.0", "2026-09-01")

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}

	want := []string{
		"register", "login", "logout", "whoami",
		"list", "add", "update", "water", "remove",
		"version",
	}
	for _, w := range want {
		if !names[w] {
			t.Fatalf("expected subcommand %q to exist", w)
		}
	}
}

func TestNewRootCmd_PersistentPreRunE_LoadsCreds(t *testing.T) {
	// изолируем домашнюю директорию, чтобы не трогать реальную сессию
	t.Setenv("HOME", t.TempDir())

	p, err := config.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}

	wantCreds := &config.Credentials{
		User:  models.User{ID: "u-1", Email: "test@example.com"},
		Token: "jwt-1",
	}
	if err := config.Save(p, wantCreds); err != nil {
		t.Fatalf("Save creds: %v", err)
	}

	root := cli.NewRootCmd("1.0.0", "2026-09-01")

	// Чтобы выполнить PersistentPreRunE, нужно реально запустить команду.
	// Возьмём безопасную подкоманду whoami, она читает только локальную сессию.
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"whoami"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "email=test@example.com") || !strings.Contains(got, "id=u-1") {
		t.Fatalf("unexpected output: %q", got)
	}
}

// Битый файл сессии удаляется, клиент продолжает как незалогиненный
func TestNewRootCmd_PersistentPreRunE_ClearsBadCredsFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p, err := config.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(p, []byte("{not-json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	root := cli.NewRootCmd("1.0.0", "2026-09-01")

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(errOut.String(), "corrupted session file removed") {
		t.Fatalf("expected warning about corrupted session, got %q", errOut.String())
	}
	if _, statErr := os.Stat(p); !os.IsNotExist(statErr) {
		t.Fatalf("expected corrupted session file to be removed, got %v", statErr)
	}
}
