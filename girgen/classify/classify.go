// Package classify decides whether a normalized class is a UI-widget-like
// entity, an event-controller-like entity, or neither, and computes slot
// metadata for widgets. Classification is an ancestor-chain walk against
// two externally configured root types.
package classify

import (
	"github.com/gtkx-org/gtkx-sub008/girgen/ir"
	"github.com/gtkx-org/gtkx-sub008/girgen/naming"
)

// Config identifies the foundational base types a run classifies against.
type Config struct {
	// WidgetRoot is the qualified name of the widget base class,
	// e.g. Gtk.Widget.
	WidgetRoot ir.QualifiedName

	// ControllerRoot is the qualified name of the event controller base
	// class, e.g. Gtk.EventController.
	ControllerRoot ir.QualifiedName

	// ControllerDenylist lists qualified class names that must never
	// classify as controllers regardless of ancestry. Extension point;
	// usually empty.
	ControllerDenylist []string
}

// Classifier answers widget/controller membership questions over a
// normalized registry. The classification tables are computed once at
// construction, before any parallel per-class work starts, so a
// Classifier is safe for concurrent reads without locking.
type Classifier struct {
	reg         *ir.Registry
	cfg         Config
	denied      map[string]bool
	widgets     map[ir.QualifiedName]bool
	controllers map[ir.QualifiedName]bool
}

// New builds a classifier over the registry and precomputes membership
// for every class.
func New(reg *ir.Registry, cfg Config) *Classifier {
	c := &Classifier{
		reg:         reg,
		cfg:         cfg,
		denied:      make(map[string]bool, len(cfg.ControllerDenylist)),
		widgets:     make(map[ir.QualifiedName]bool),
		controllers: make(map[ir.QualifiedName]bool),
	}
	for _, name := range cfg.ControllerDenylist {
		c.denied[name] = true
	}
	for _, cls := range reg.AllClasses() {
		if reg.IsSubclassOf(cls, cfg.WidgetRoot) {
			c.widgets[cls.QName] = true
			continue
		}
		if cls.QName == cfg.ControllerRoot || reg.IsSubclassOf(cls, cfg.ControllerRoot) {
			if !c.denied[cls.QName.String()] {
				c.controllers[cls.QName] = true
			}
		}
	}
	return c
}

// IsWidget reports whether the class is a strict subclass of the widget
// root.
func (c *Classifier) IsWidget(cls *ir.Class) bool {
	return c.widgets[cls.QName]
}

// IsController reports whether the class is the controller root or one of
// its subclasses, and is not denylisted.
func (c *Classifier) IsController(cls *ir.Class) bool {
	return c.controllers[cls.QName]
}

// isWidgetType reports whether a property type names a widget for slot
// purposes. The widget root itself counts here: the most common slot type
// is the root widget type, even though the root class is not itself
// widget-classified.
func (c *Classifier) isWidgetType(qn ir.QualifiedName) bool {
	return qn == c.cfg.WidgetRoot || c.widgets[qn]
}

// Slots returns the names of the class's own declared writable properties
// whose resolved type names a widget, excluding the generic singular
// "child" property, which a universal single-child mechanism handles.
// Inherited properties never contribute slots. Order follows declaration
// order.
func (c *Classifier) Slots(cls *ir.Class) []string {
	var slots []string
	for _, p := range cls.Properties {
		if !p.Writable || p.Name == "child" {
			continue
		}
		qn, ok := p.Type.Qualified()
		if !ok {
			continue
		}
		if c.isWidgetType(qn) {
			slots = append(slots, p.Name)
		}
	}
	return slots
}

// Classify returns the widget or controller descriptor for the class, or
// (nil, nil) if it is neither. A class is never both: widget membership
// wins because the two hierarchies are disjoint by construction.
func (c *Classifier) Classify(cls *ir.Class) (*WidgetMeta, *ControllerMeta) {
	switch {
	case c.IsWidget(cls):
		w := &WidgetMeta{
			ClassName:   cls.Name,
			Namespace:   cls.QName.Namespace,
			JSXName:     JSXName(cls.QName),
			Slots:       c.Slots(cls),
			PropNames:   propNames(cls),
			SignalNames: signalNames(cls),
		}
		w.ParentClassName, w.ParentNamespace = parentParts(cls)
		return w, nil
	case c.IsController(cls):
		m := &ControllerMeta{
			ClassName:   cls.Name,
			Namespace:   cls.QName.Namespace,
			JSXName:     JSXName(cls.QName),
			PropNames:   propNames(cls),
			SignalNames: signalNames(cls),
		}
		m.ParentClassName, m.ParentNamespace = parentParts(cls)
		return nil, m
	}
	return nil, nil
}

// JSXName derives the display identifier for a class, e.g. Gtk.Button
// becomes "GtkButton".
func JSXName(qn ir.QualifiedName) string {
	return naming.SanitizeIdentifier(qn.Namespace + qn.Name)
}

func propNames(cls *ir.Class) []string {
	if len(cls.Properties) == 0 {
		return nil
	}
	names := make([]string, 0, len(cls.Properties))
	for _, p := range cls.Properties {
		names = append(names, p.Name)
	}
	return names
}

func signalNames(cls *ir.Class) []string {
	if len(cls.Signals) == 0 {
		return nil
	}
	names := make([]string, 0, len(cls.Signals))
	for _, s := range cls.Signals {
		names = append(names, s.Name)
	}
	return names
}

func parentParts(cls *ir.Class) (name, namespace string) {
	if !cls.HasParent() {
		return "", ""
	}
	return cls.Parent.Name, cls.Parent.Namespace
}
