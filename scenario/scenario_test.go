package scenario

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/san-kum/stochsim/models"
	"github.com/san-kum/stochsim/sim"
)

func TestPreset(t *testing.T) {
	sc := Preset("heston-calm")
	if sc == nil {
		t.Fatal("expected preset, got nil")
	}
	if sc.Process != "heston" || sc.Params["kappa"] != 2.0 {
		t.Errorf("unexpected preset contents: %+v", sc)
	}

	if Preset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(Presets) {
		t.Errorf("Names() has %d entries, want %d", len(names), len(Presets))
	}

	found := false
	for _, n := range names {
		if n == "gbm-baseline" {
			found = true
		}
	}
	if !found {
		t.Error("Names() is missing gbm-baseline")
	}
}

func TestBuild(t *testing.T) {
	proc, req, err := Preset("heston-calm").Build()
	if err != nil {
		t.Fatal(err)
	}

	h, ok := proc.(*models.Heston)
	if !ok {
		t.Fatalf("expected *models.Heston, got %T", proc)
	}
	if h.Kappa != 2.0 || h.Rho != -0.7 || !h.Milstein {
		t.Errorf("unexpected parameters: %+v", h)
	}
	if req.V0 != 0.04 || req.Seed != 7 || req.Steps != 252 {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestBuild_EulerPreset(t *testing.T) {
	proc, _, err := Preset("heston-euler").Build()
	if err != nil {
		t.Fatal(err)
	}
	if proc.(*models.Heston).Milstein {
		t.Error("heston-euler should switch the Milstein correction off")
	}
}

func TestBuild_UnknownProcess(t *testing.T) {
	sc := &Scenario{Name: "broken", Process: "jump-diffusion"}
	if _, _, err := sc.Build(); err == nil {
		t.Fatal("expected error for unknown process kind")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	want := &Scenario{
		Name:    "roundtrip",
		Process: "heston",
		Params: map[string]any{
			"mu": 0.01, "kappa": 1.5, "theta": 0.09, "eta": 0.4, "rho": -0.5,
			"milstein": false,
		},
		Request: sim.Request{S0: 120, V0: 0.09, T: 2, Paths: 64, Steps: 32, Seed: 3, Antithetic: true},
	}

	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip changed the scenario:\ngot  %+v\nwant %+v", got, want)
	}

	// The loaded scenario must still build.
	if _, _, err := got.Build(); err != nil {
		t.Fatalf("loaded scenario does not build: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("name: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected YAML parse error")
	}
}
