// Package main provides tests for the zr CLI entry point.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adriyanbasu0/zr-sharp/internal/cli"
)

func writeScript(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestVersionFlag(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("version flag error = %v", err)
	}
	if !strings.Contains(buf.String(), "zr") {
		t.Errorf("version output should contain 'zr', got: %s", buf.String())
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	for _, expected := range []string{"run", "tokens", "ast", "graph", "repl", "version"} {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain %q, got: %s", expected, output)
		}
	}
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "main.zr", `print 40 + 2;`)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"run", script})

	if err := cmd.Execute(); err != nil {
		t.Errorf("run command error = %v", err)
	}
	if !strings.Contains(buf.String(), "42") {
		t.Errorf("run output should contain '42', got: %s", buf.String())
	}
}

func TestRunCommandFatalError(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "main.zr", `let = ;`)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"run", script})

	if err := cmd.Execute(); err == nil {
		t.Error("run with a syntax error should return an error")
	}
}

func TestTokensCommand(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "main.zr", `print 1;`)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"tokens", script})

	if err := cmd.Execute(); err != nil {
		t.Errorf("tokens command error = %v", err)
	}
	if !strings.Contains(buf.String(), "NUMBER") {
		t.Errorf("tokens output should contain 'NUMBER', got: %s", buf.String())
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			cmd := cli.NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{"completion", shell})

			if err := cmd.Execute(); err != nil {
				t.Errorf("completion %s command error = %v", shell, err)
			}
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"unknown-command"})

	if err := cmd.Execute(); err == nil {
		t.Error("unknown command should return an error")
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
