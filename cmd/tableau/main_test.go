package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cardProject = "testdata/card.yaml"

func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func decodeJSON(t *testing.T, out string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(out), v); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
}

func TestValidateCommand(t *testing.T) {
	cfg := writeTestConfig(t, "[output]\ncolor = \"never\"\n")

	out, _, err := runCLI(t, []string{"validate", cardProject}, cfg)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	requireContains(t, out, "Artboard:    Card (board)")
	requireContains(t, out, "Transitions: 2")
	requireContains(t, out, "Project valid")

	out, _, err = runCLI(t, []string{"--output", "json", "validate", cardProject}, cfg)
	if err != nil {
		t.Fatalf("validate json: %v", err)
	}
	var summary map[string]any
	decodeJSON(t, out, &summary)
	if summary["states"] != float64(2) || summary["chains"] != float64(1) {
		t.Fatalf("summary = %v", summary)
	}
}

func TestValidateCommandRejectsBrokenProject(t *testing.T) {
	cfg := writeTestConfig(t, "")
	broken := filepath.Join(t.TempDir(), "broken.yaml")
	body := "artboard: {id: a, name: A}\nstates:\n  - id: s\n    elements: []\ntransitions:\n  - id: t\n    fromStateId: s\n    toStateId: ghost\n"
	if err := os.WriteFile(broken, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, []string{"validate", broken}, cfg)
	if err == nil {
		t.Fatal("expected an error for a missing state reference")
	}
	requireContains(t, err.Error(), "ghost")
}

func TestDiffCommand(t *testing.T) {
	cfg := writeTestConfig(t, "[output]\ncolor = \"never\"\n")

	out, _, err := runCLI(t, []string{"diff", cardProject, "rest", "Hover"}, cfg)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	requireContains(t, out, "PROPERTY")
	requireContains(t, out, "badge")
	requireContains(t, out, "rotation")

	out, _, err = runCLI(t, []string{"-o", "json", "diff", cardProject, "rest", "hover"}, cfg)
	if err != nil {
		t.Fatalf("diff json: %v", err)
	}
	requireContains(t, out, "\"card\"")
}

func TestPlanCommand(t *testing.T) {
	cfg := writeTestConfig(t, "[output]\ncolor = \"never\"\n")

	out, _, err := runCLI(t, []string{"plan", cardProject, "rest->hover"}, cfg)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "DELAY")
	requireContains(t, out, "span")

	out, _, err = runCLI(t, []string{"-o", "json", "plan", cardProject, "lift"}, cfg)
	if err != nil {
		t.Fatalf("plan json: %v", err)
	}
	var plan planOutput
	decodeJSON(t, out, &plan)
	if plan.TransitionID != "lift" || !plan.Hierarchical {
		t.Fatalf("plan = %+v", plan)
	}
	if len(plan.Entries) != 3 || plan.Entries[0].ElementID != "card" {
		t.Fatalf("entries = %+v", plan.Entries)
	}
	if plan.Entries[0].Delay != 0 || plan.Entries[0].Duration != 300 {
		t.Fatalf("root timing = %+v", plan.Entries[0])
	}
}

func TestSampleCommand(t *testing.T) {
	cfg := writeTestConfig(t, "[output]\ncolor = \"never\"\n")

	out, _, err := runCLI(t, []string{"sample", cardProject, "lift", "--progress", "1"}, cfg)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	requireContains(t, out, "ROTATION")
	requireContains(t, out, "title")

	if _, _, err := runCLI(t, []string{"sample", cardProject, "lift", "--at", "10", "--progress", "0.5"}, cfg); err == nil {
		t.Fatal("expected --at with --progress to fail")
	}
	if _, _, err := runCLI(t, []string{"sample", cardProject, "lift", "--progress", "2"}, cfg); err == nil {
		t.Fatal("expected out of range progress to fail")
	}
}

func TestChainCommand(t *testing.T) {
	cfg := writeTestConfig(t, "[output]\ncolor = \"never\"\n")

	out, _, err := runCLI(t, []string{"chain", cardProject, "breathe", "--at", "100"}, cfg)
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	requireContains(t, out, "Chain:      Breathe (ping-pong)")
	requireContains(t, out, "Iteration:  0")

	out, _, err = runCLI(t, []string{"-o", "json", "chain", cardProject, "breathe", "--at", "700"}, cfg)
	if err != nil {
		t.Fatalf("chain json: %v", err)
	}
	var got chainOutput
	decodeJSON(t, out, &got)
	if got.Iteration != 1 || !got.Reversing {
		t.Fatalf("iteration %d reversing %v, want 1 true", got.Iteration, got.Reversing)
	}
	if got.StateID != "hover" || got.Timing.CycleDuration != 600 {
		t.Fatalf("chain = %+v", got)
	}
}

func TestTimelineCommand(t *testing.T) {
	cfg := writeTestConfig(t, "[output]\ncolor = \"never\"\n")

	out, _, err := runCLI(t, []string{"timeline", cardProject}, cfg)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	requireContains(t, out, "lift (rest -> hover)")
	requireContains(t, out, "total")

	out, _, err = runCLI(t, []string{"timeline", cardProject, "--at", "100"}, cfg)
	if err != nil {
		t.Fatalf("timeline --at: %v", err)
	}
	requireContains(t, out, "hold at 100ms: rest")
}

func TestExportCommand(t *testing.T) {
	cfg := writeTestConfig(t, "[sampling]\nkeyframes = 4\nworkers = 2\n")

	out, _, err := runCLI(t, []string{"export", cardProject, "lift"}, cfg)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var got exportOutput
	decodeJSON(t, out, &got)
	if len(got.Keyframes) != 5 {
		t.Fatalf("keyframes = %d, want 5", len(got.Keyframes))
	}
	if got.Keyframes[4].Offset != 1 || got.Keyframes[4].Time != got.Span {
		t.Fatalf("last keyframe = %+v, span %v", got.Keyframes[4], got.Span)
	}

	target := filepath.Join(t.TempDir(), "out", "lift.json")
	out, _, err = runCLI(t, []string{"export", cardProject, "lift", "--frames", "2", "--file", target}, cfg)
	if err != nil {
		t.Fatalf("export --file: %v", err)
	}
	requireContains(t, out, "Wrote 3 keyframes")
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	requireContains(t, string(data), "\"transitionId\": \"lift\"")

	if _, _, err := runCLI(t, []string{"export", cardProject, "lift", "--frames", "0"}, cfg); err == nil {
		t.Fatal("expected zero frames to fail")
	}
}

func TestPresetsCommand(t *testing.T) {
	cfg := writeTestConfig(t, "[output]\ncolor = \"never\"\n")

	out, _, err := runCLI(t, []string{"presets"}, cfg)
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	requireContains(t, out, "ease-in-out")
	requireContains(t, out, "linear")

	out, _, err = runCLI(t, []string{"-o", "json", "presets"}, cfg)
	if err != nil {
		t.Fatalf("presets json: %v", err)
	}
	var presets []presetOutput
	decodeJSON(t, out, &presets)
	for _, p := range presets {
		if p.Name == "linear" && p.Samples != [3]float64{0.25, 0.5, 0.75} {
			t.Fatalf("linear samples = %v", p.Samples)
		}
	}
}

func TestDebugLogsGoToStderr(t *testing.T) {
	cfg := writeTestConfig(t, "[logging]\nlevel = \"debug\"\n[output]\ncolor = \"never\"\n")

	out, errOut, err := runCLI(t, []string{"validate", cardProject}, cfg)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	requireContains(t, errOut, "validate: loaded project")
	if strings.Contains(out, "loaded project") {
		t.Fatalf("log line leaked into stdout: %q", out)
	}
}

func TestInvalidConfigFails(t *testing.T) {
	cfg := writeTestConfig(t, "[sampling]\nfps = 0\n")

	if _, _, err := runCLI(t, []string{"presets"}, cfg); err == nil {
		t.Fatal("expected invalid config to fail")
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	cfg := writeTestConfig(t, "")

	out, _, err := runCLI(t, []string{"config", "validate"}, cfg)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init without --overwrite to fail")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"--config", target, "config", "validate"}, "")
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Sampling: 60 fps, 10 keyframes, 0 workers")
}
