package girgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gtkx-org/gtkx-sub008/girgen/plan"
)

func TestApplyConfigDefaults(t *testing.T) {
	cfg := applyConfigDefaults(&Config{})

	if cfg.WidgetRoot != "Gtk.Widget" {
		t.Errorf("WidgetRoot = %q, want Gtk.Widget", cfg.WidgetRoot)
	}
	if cfg.ControllerRoot != "Gtk.EventController" {
		t.Errorf("ControllerRoot = %q, want Gtk.EventController", cfg.ControllerRoot)
	}
	if cfg.Async.IsZero() {
		t.Error("Async must default to the Gio convention")
	}
	if cfg.Async.BeginSuffix != "_async" || cfg.Async.FinishSuffix != "_finish" {
		t.Errorf("default suffixes = %q/%q", cfg.Async.BeginSuffix, cfg.Async.FinishSuffix)
	}
}

func TestApplyConfigDefaults_DoesNotMutateInput(t *testing.T) {
	original := &Config{}
	applyConfigDefaults(original)

	if original.WidgetRoot != "" {
		t.Error("defaults must be applied to a copy")
	}
}

func TestApplyConfigDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := applyConfigDefaults(&Config{
		WidgetRoot:     "Adw.Widget",
		ControllerRoot: "Adw.Controller",
		Async:          plan.Convention{CallbackType: "X.Cb", ResultType: "X.Res", BeginSuffix: "_b", FinishSuffix: "_f"},
	})

	if cfg.WidgetRoot != "Adw.Widget" || cfg.ControllerRoot != "Adw.Controller" {
		t.Errorf("explicit roots overwritten: %q %q", cfg.WidgetRoot, cfg.ControllerRoot)
	}
	if cfg.Async.BeginSuffix != "_b" {
		t.Errorf("explicit convention overwritten: %+v", cfg.Async)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", *DefaultConfig(), true},
		{"missing widget root", Config{ControllerRoot: "Gtk.EventController"}, false},
		{"missing controller root", Config{WidgetRoot: "Gtk.Widget"}, false},
		{"unqualified widget root", Config{WidgetRoot: "Widget", ControllerRoot: "Gtk.EventController"}, false},
		{"unqualified controller root", Config{WidgetRoot: "Gtk.Widget", ControllerRoot: "EventController"}, false},
		{"negative workers", Config{WidgetRoot: "Gtk.Widget", ControllerRoot: "Gtk.EventController", Workers: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "girgen.yaml")
	doc := `widgetRoot: Gtk.Widget
controllerRoot: Gtk.EventController
controllerDenylist:
  - Gtk.GestureClick
hiddenProps:
  Button:
    - label
async:
  callbackType: Gio.AsyncReadyCallback
  resultType: Gio.AsyncResult
  beginSuffix: _async
  finishSuffix: _finish
workers: 4
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if len(cfg.ControllerDenylist) != 1 || cfg.ControllerDenylist[0] != "Gtk.GestureClick" {
		t.Errorf("ControllerDenylist = %v", cfg.ControllerDenylist)
	}
	if got := cfg.HiddenProps["Button"]; len(got) != 1 || got[0] != "label" {
		t.Errorf("HiddenProps[Button] = %v", got)
	}
	if cfg.Async.BeginSuffix != "_async" {
		t.Errorf("Async.BeginSuffix = %q", cfg.Async.BeginSuffix)
	}
}

func TestLoadConfig_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "girgen.yaml")
	if err := os.WriteFile(path, []byte("workers: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.WidgetRoot != "Gtk.Widget" {
		t.Errorf("WidgetRoot = %q, want default", cfg.WidgetRoot)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() must fail for a missing file")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "girgen.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ]["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() must fail for malformed YAML")
	}
}
