package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"honnef.co/go/mobius"
)

// execute runs the root command with args and returns what it printed to
// stdout and to the log.
func execute(t *testing.T, args ...string) (stdout, logs string, err error) {
	t.Helper()
	var out, logBuf bytes.Buffer
	c := New(&logBuf, LogDebug)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), logBuf.String(), err
}

func TestApplyCommand(t *testing.T) {
	out, logs, err := execute(t, "apply", "--lft", "0,1,1,0", "0", "inf", "2", "1i")
	if err != nil {
		t.Fatal(err)
	}
	want := "inf\n(0+0i)\n(0.5+0i)\n(0-1i)\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if !strings.Contains(logs, "applying") {
		t.Errorf("debug log missing, got %q", logs)
	}
}

func TestApplyCommandErrors(t *testing.T) {
	if _, _, err := execute(t, "apply", "--lft", "1,2,2,4", "0"); !errors.Is(err, mobius.ErrSingular) {
		t.Errorf("got error %v, want %v", err, mobius.ErrSingular)
	}
	if _, _, err := execute(t, "apply", "0"); err == nil {
		t.Error("apply without --lft should fail")
	}
}

func TestInverseCommand(t *testing.T) {
	out, _, err := execute(t, "inverse", "--lft", "1,2,3,4")
	if err != nil {
		t.Fatal(err)
	}
	want := "(4+0i),(-2-0i),(-3-0i),(1+0i)\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestComposeCommand(t *testing.T) {
	// Translate by 1, then double.
	out, _, err := execute(t, "compose", "--lft", "2,0,0,1", "--lft", "1,1,0,1")
	if err != nil {
		t.Fatal(err)
	}
	f, err := parseLFT(strings.TrimSpace(out))
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Apply(3); got != 8 {
		t.Errorf("composition maps 3 to %v, want 8", got)
	}
}

func TestEqualCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--lft", "1,2,3,4", "--lft", "-2,-4,-6,-8"}, "true\n"},
		{[]string{"--lft", "1,2,3,4", "--lft", "1,2,3,5"}, "false\n"},
	}
	for _, tt := range tests {
		out, _, err := execute(t, append([]string{"equal"}, tt.args...)...)
		if err != nil {
			t.Fatal(err)
		}
		if out != tt.want {
			t.Errorf("equal %v = %q, want %q", tt.args, out, tt.want)
		}
	}

	if _, _, err := execute(t, "equal", "--lft", "1,0,0,1"); err == nil {
		t.Error("equal with one transformation should fail")
	}
}

func TestMapCommand(t *testing.T) {
	out, _, err := execute(t, "map", "1", "2+1i", "3", "inf", "4", "1-1i")
	if err != nil {
		t.Fatal(err)
	}
	f, err := parseLFT(strings.TrimSpace(out))
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Apply(1); got != 2+1i {
		t.Errorf("f(1) = %v, want 2+1i", got)
	}
	if got := f.Apply(3); got != mobius.Infinity {
		t.Errorf("f(3) = %v, want infinity", got)
	}

	out, _, err = execute(t, "map", "--", "2", "5", "-1")
	if err != nil {
		t.Fatal(err)
	}
	if f, err = parseLFT(strings.TrimSpace(out)); err != nil {
		t.Fatal(err)
	}
	if got := f.Apply(5); got != 1 {
		t.Errorf("f(5) = %v, want 1", got)
	}

	if _, _, err := execute(t, "map", "1", "1", "2"); !errors.Is(err, mobius.ErrDuplicatePoints) {
		t.Errorf("got error %v, want %v", err, mobius.ErrDuplicatePoints)
	}
	if _, _, err := execute(t, "map", "1", "2", "3", "4"); err == nil {
		t.Error("map with 4 points should fail")
	}
}

func TestStereoCommand(t *testing.T) {
	out, _, err := execute(t, "stereo", "1")
	if err != nil {
		t.Fatal(err)
	}
	if out != "1,0,0\n" {
		t.Errorf("output = %q, want %q", out, "1,0,0\n")
	}

	out, _, err = execute(t, "stereo", "0", "0", "1")
	if err != nil {
		t.Fatal(err)
	}
	if out != "inf\n" {
		t.Errorf("output = %q, want %q", out, "inf\n")
	}

	_, logs, err := execute(t, "stereo", "0", "0", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs, "not on the unit sphere") {
		t.Errorf("expected warning, got %q", logs)
	}

	if _, _, err := execute(t, "stereo", "1", "2"); err == nil {
		t.Error("stereo with 2 arguments should fail")
	}
}

func TestRotateCommand(t *testing.T) {
	out, _, err := execute(t, "rotate", "--axis", "0,0,1", "--angle", "0")
	if err != nil {
		t.Fatal(err)
	}
	f, err := parseLFT(strings.TrimSpace(out))
	if err != nil {
		t.Fatal(err)
	}
	if !f.Equal(mobius.Identity) {
		t.Errorf("rotation by 0 gave %v, want identity", f)
	}

	if _, _, err := execute(t, "rotate", "--axis", "0,0,0", "--angle", "1"); !errors.Is(err, mobius.ErrZeroAxis) {
		t.Errorf("got error %v, want %v", err, mobius.ErrZeroAxis)
	}
}
