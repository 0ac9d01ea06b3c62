package cli

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iburimskiy/hexfield/internal/config"
	"github.com/iburimskiy/hexfield/internal/game"
)

// writeConfig points the theme file into a temp dir and returns the config path.
func writeConfig(t *testing.T) (cfgPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	cfgPath = filepath.Join(dir, "config.yaml")
	data := fmt.Sprintf("theme_path: %s\nlog_level: error\n", filepath.Join(dir, "theme.yaml"))
	if err := os.WriteFile(cfgPath, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return cfgPath, dir
}

// resetFlags returns every flag in the command tree to its default and
// clears Changed, so flags set by one test do not leak into the next.
func resetFlags(t *testing.T) {
	t.Helper()
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			if err := f.Value.Set(f.DefValue); err != nil {
				t.Fatalf("reset --%s: %v", f.Name, err)
			}
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(RootCmd())
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })

	buf := new(bytes.Buffer)
	root := RootCmd()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	out, err := executeCommand(t, "version", "--config", cfgPath)
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(out, "hexfield version") {
		t.Errorf("expected output to contain 'hexfield version', got: %s", out)
	}
}

func TestThemeCommands(t *testing.T) {
	cfgPath, dir := writeConfig(t)

	out, err := executeCommand(t, "theme", "--config", cfgPath)
	if err != nil {
		t.Fatalf("theme failed: %v", err)
	}
	if strings.TrimSpace(out) != "dark" {
		t.Errorf("theme = %q, want dark", out)
	}

	out, err = executeCommand(t, "theme", "toggle", "--config", cfgPath)
	if err != nil {
		t.Fatalf("theme toggle failed: %v", err)
	}
	if strings.TrimSpace(out) != "light" {
		t.Errorf("toggle = %q, want light", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "theme.yaml")); err != nil {
		t.Errorf("theme file not written: %v", err)
	}

	out, err = executeCommand(t, "theme", "--config", cfgPath)
	if err != nil {
		t.Fatalf("theme failed: %v", err)
	}
	if strings.TrimSpace(out) != "light" {
		t.Errorf("theme after toggle = %q, want light", out)
	}

	if _, err := executeCommand(t, "theme", "set", "sepia", "--config", cfgPath); err == nil {
		t.Error("expected error for unknown theme")
	}
	out, err = executeCommand(t, "theme", "set", "dark", "--config", cfgPath)
	if err != nil {
		t.Fatalf("theme set failed: %v", err)
	}
	if strings.TrimSpace(out) != "dark" {
		t.Errorf("set = %q, want dark", out)
	}
}

func TestSnapshotCommand(t *testing.T) {
	cfgPath, dir := writeConfig(t)
	outPath := filepath.Join(dir, "frame.png")

	out, err := executeCommand(t, "snapshot", "--config", cfgPath,
		"--width", "320", "--height", "240", "--seed", "42",
		"--frames", "5", "--out", outPath, "--pointer-x", "160", "--pointer-y", "120")
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if !strings.Contains(out, "2 hexagons, 5 frames") {
		t.Errorf("unexpected output: %s", out)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("bounds = %v, want 320x240", b)
	}
}

func TestSnapshotRejectsZeroFrames(t *testing.T) {
	cfgPath, dir := writeConfig(t)
	_, err := executeCommand(t, "snapshot", "--config", cfgPath, "--frames", "0",
		"--out", filepath.Join(dir, "x.png"))
	if err == nil {
		t.Fatal("expected error for --frames 0")
	}
}

func TestRootOpensWindowWithFlags(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	var got game.Options
	runWindow = func(opts game.Options) error {
		got = opts
		return nil
	}
	t.Cleanup(func() { runWindow = game.Run })

	if _, err := executeCommand(t, "--config", cfgPath, "--width", "640", "--height", "480", "--seed", "3", "--hud"); err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if got.Width != 640 || got.Height != 480 || got.Seed != 3 || !got.HUD {
		t.Errorf("unexpected options: %+v", got)
	}
	if got.Themes == nil || !got.Themes.IsDark() {
		t.Error("expected a dark theme store")
	}
	if got.Chime == nil || got.Chime.Enabled() {
		t.Error("expected a disabled chime")
	}
}

func TestSnapshotEmptyViewport(t *testing.T) {
	cfgPath, dir := writeConfig(t)
	outPath := filepath.Join(dir, "empty.png")

	out, err := executeCommand(t, "snapshot", "--config", cfgPath,
		"--width", "0", "--height", "240", "--frames", "3", "--out", outPath)
	if err != nil {
		t.Fatalf("snapshot of empty viewport failed: %v", err)
	}
	if !strings.Contains(out, "skipped") {
		t.Errorf("expected output to contain 'skipped', got: %s", out)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Errorf("Stat(%s) = %v, want not exist", outPath, err)
	}
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	var got game.Options
	runWindow = func(opts game.Options) error {
		got = opts
		return nil
	}
	t.Cleanup(func() { runWindow = game.Run })

	if _, err := executeCommand(t, "--config", cfgPath, "--width", "320", "--hud"); err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if _, err := executeCommand(t, "--config", cfgPath); err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if got.Width != config.WindowWidth || got.HUD {
		t.Errorf("second run inherited flags: width=%d hud=%v", got.Width, got.HUD)
	}
}
