package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	authed bool

	calls []string
}

func (f *fakeExec) isAuthenticated() bool { return f.authed }
func (f *fakeExec) Token(ctx context.Context) error {
	f.calls = append(f.calls, "token")
	f.authed = true
	return nil
}
func (f *fakeExec) Use(ctx context.Context) error {
	f.calls = append(f.calls, "use")
	return nil
}
func (f *fakeExec) Edit(ctx context.Context) error {
	f.calls = append(f.calls, "edit")
	return nil
}
func (f *fakeExec) Load(ctx context.Context) error {
	f.calls = append(f.calls, "load")
	return nil
}
func (f *fakeExec) Flush(ctx context.Context) error {
	f.calls = append(f.calls, "flush")
	return nil
}
func (f *fakeExec) Discard(ctx context.Context) error {
	f.calls = append(f.calls, "discard")
	return nil
}
func (f *fakeExec) Promote(ctx context.Context) error {
	f.calls = append(f.calls, "promote")
	return nil
}
func (f *fakeExec) Prefer(ctx context.Context) error {
	f.calls = append(f.calls, "prefer")
	return nil
}
func (f *fakeExec) Status(ctx context.Context) error {
	f.calls = append(f.calls, "status")
	return nil
}

func TestRunREPL_TokenFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"token",
		"help",
		"use",
		"edit",
		"load",
		"flush",
		"promote",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{authed: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"token", "use", "edit", "load", "flush", "promote"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ShortEditAlias(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("e\nquit\n")
	exec := &fakeExec{authed: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "edit" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_BlankAndUnknownLinesIgnored(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nwat\nquit\n")
	exec := &fakeExec{authed: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
