package commands

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"FleetKeeper/internal/config"
)

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	// зарегистрированы login/ship/job и остальные из init()
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{}) })
	if !strings.Contains(out, "FleetKeeper CLI") {
		t.Fatalf("global help expected")
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help"}) })
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("usage expected")
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help", "login"}) })
	if !strings.Contains(out, "login <email> <password> <role>") {
		t.Fatalf("login usage expected, got: %s", out)
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help", "nope"}) })
	if !strings.Contains(out, "Unknown command") {
		t.Fatalf("unknown command message expected")
	}

	code := 0
	_ = withStdoutCapture(t, func() {
		code = Dispatch(context.Background(), &config.Config{}, []string{"no-such"})
	})
	if code != 2 {
		t.Fatalf("expected 2 for unknown command, got %d", code)
	}
}

func TestDispatcher_RunPaths(t *testing.T) {
	// зарегистрируем временную команду
	cmdOK := fakeCmd{name: "x", usage: "x", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return nil }}
	RegisterCmd(cmdOK)
	if code := Dispatch(context.Background(), &config.Config{}, []string{"x"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	cmdUsage := fakeCmd{name: "u", usage: "u <arg>", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return ErrUsage }}
	RegisterCmd(cmdUsage)
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"u"}) })
	if !strings.Contains(out, "Usage: u <arg>") {
		t.Fatalf("usage text expected")
	}

	cmdErr := fakeCmd{name: "e", usage: "e", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return fmt.Errorf("boom") }}
	RegisterCmd(cmdErr)
	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"e"}) })
	if !strings.Contains(out, "e error: boom") {
		t.Fatalf("error line expected, got: %s", out)
	}
}

func TestDispatcher_NameIsCaseInsensitive(t *testing.T) {
	cmd := fakeCmd{name: "mixed", usage: "mixed", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return nil }}
	RegisterCmd(cmd)
	if code := Dispatch(context.Background(), &config.Config{}, []string{"MiXeD"}); code != 0 {
		t.Fatalf("expected exit 0 for mixed-case name, got %d", code)
	}
}
