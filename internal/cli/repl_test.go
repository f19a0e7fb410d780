package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error { return s.record("logout") }
func (s *stubExec) ListTasks(ctx context.Context) error { return s.record("list") }
func (s *stubExec) AddTask(ctx context.Context) error { return s.record("add") }
func (s *stubExec) EditTask(ctx context.Context) error { return s.record("edit") }
func (s *stubExec) ToggleTask(ctx context.Context) error { return s.record("toggle") }
func (s *stubExec) DeleteTask(ctx context.Context) error { return s.record("delete") }
func (s *stubExec) ShowTask(ctx context.Context) error { return s.record("show") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) {
		var parts []string
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(t *testing.T, exec *stubExec, script string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)
	exec := &stubExec{loggedIn: true}

	runScript(t, exec, "list\nadd\ntoggle\ndelete\nedit\nshow\nlogout\nexit\n")

	assert.Equal(t, []string{"list", "add", "toggle", "delete", "edit", "show", "logout"}, exec.calls)
}

func TestRunREPL_Aliases(t *testing.T) {
	captureOutput(t)
	exec := &stubExec{loggedIn: true}

	runScript(t, exec, "l\ndel\nquit\n")

	assert.Equal(t, []string{"list", "delete"}, exec.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	lines := captureOutput(t)
	exec := &stubExec{}

	runScript(t, exec, "frobnicate\nexit\n")

	assert.Empty(t, exec.calls)
	joined := strings.Join(*lines, "\n")
	assert.Contains(t, joined, "Unknown command:")
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := captureOutput(t)
	runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	joined := strings.Join(*lines, "\n")
	assert.Contains(t, joined, "register, login")

	lines = captureOutput(t)
	runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	joined = strings.Join(*lines, "\n")
	assert.Contains(t, joined, "add")

	runScript(t, &stubExec{}, "\n\nexit\n") // blank lines are skipped
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &stubExec{}
	runScript(t, exec, "list\n") // no exit; scanner EOF ends the loop
	assert.Equal(t, []string{"list"}, exec.calls)
}
