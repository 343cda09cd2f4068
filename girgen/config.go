// Package girgen plans the constructible surface of every class in a set
// of introspected namespaces. It normalizes the raw graph, classifies
// widget and event-controller classes, resolves member naming conflicts,
// and assembles one metadata descriptor per class for downstream emission.
package girgen

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gtkx-org/gtkx-sub008/girgen/classify"
	"github.com/gtkx-org/gtkx-sub008/girgen/ir"
	"github.com/gtkx-org/gtkx-sub008/girgen/plan"
)

// Config holds the externally supplied inputs of a run. All fields are
// read-only once generation starts.
type Config struct {
	// WidgetRoot is the qualified name of the widget base class.
	WidgetRoot string `yaml:"widgetRoot" json:"widgetRoot" validate:"required"`

	// ControllerRoot is the qualified name of the event controller base
	// class.
	ControllerRoot string `yaml:"controllerRoot" json:"controllerRoot" validate:"required"`

	// ControllerDenylist lists qualified class names that must never
	// classify as controllers regardless of ancestry.
	ControllerDenylist []string `yaml:"controllerDenylist,omitempty" json:"controllerDenylist,omitempty"`

	// HiddenProps maps a class name to property names the assembler
	// records verbatim as hidden on that class's metadata.
	HiddenProps map[string][]string `yaml:"hiddenProps,omitempty" json:"hiddenProps,omitempty"`

	// Async is the begin/finish pairing convention. Zero value selects
	// the Gio default.
	Async plan.Convention `yaml:"async,omitempty" json:"async,omitempty"`

	// Workers bounds parallel per-class planning. Zero selects one
	// worker per CPU.
	Workers int `yaml:"workers,omitempty" json:"workers,omitempty" validate:"gte=0"`
}

// DefaultConfig returns a config rooted at the Gtk widget and event
// controller hierarchy.
func DefaultConfig() *Config {
	return &Config{
		WidgetRoot:     "Gtk.Widget",
		ControllerRoot: "Gtk.EventController",
		Async:          plan.DefaultConvention(),
	}
}

// applyConfigDefaults fills unset fields on a copy of cfg.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg
	if result.WidgetRoot == "" {
		result.WidgetRoot = "Gtk.Widget"
	}
	if result.ControllerRoot == "" {
		result.ControllerRoot = "Gtk.EventController"
	}
	if result.Async.IsZero() {
		result.Async = plan.DefaultConvention()
	}
	return &result
}

// Validate checks the config for structural problems.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, ok := ir.ParseQualified(c.WidgetRoot); !ok {
		return fmt.Errorf("invalid config: widgetRoot %q is not a qualified Namespace.Name", c.WidgetRoot)
	}
	if _, ok := ir.ParseQualified(c.ControllerRoot); !ok {
		return fmt.Errorf("invalid config: controllerRoot %q is not a qualified Namespace.Name", c.ControllerRoot)
	}
	return nil
}

// classifyConfig converts the run config into the classifier's form.
// Validate must have passed.
func (c *Config) classifyConfig() classify.Config {
	widget, _ := ir.ParseQualified(c.WidgetRoot)
	controller, _ := ir.ParseQualified(c.ControllerRoot)
	return classify.Config{
		WidgetRoot:         widget,
		ControllerRoot:     controller,
		ControllerDenylist: c.ControllerDenylist,
	}
}

// LoadConfig reads a YAML config file and applies defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return applyConfigDefaults(&cfg), nil
}
