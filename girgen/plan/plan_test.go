package plan

import (
	"testing"

	"github.com/gtkx-org/gtkx-sub008/girgen/ir"
)

// buildRegistry wires a GObject root, a Gtk.Widget base with a few
// methods, and two interfaces sharing a method name.
func buildRegistry() *ir.Registry {
	gobject := ir.NewNamespace("GObject")
	gobject.Classes["Object"] = &ir.Class{
		Name:  "Object",
		QName: ir.Qual("GObject", "Object"),
		Methods: []ir.Method{
			{Name: "notify", CIdentifier: "g_object_notify"},
		},
	}

	gtk := ir.NewNamespace("Gtk")
	gtk.Classes["Widget"] = &ir.Class{
		Name:   "Widget",
		QName:  ir.Qual("Gtk", "Widget"),
		Parent: ir.Qual("GObject", "Object"),
		Methods: []ir.Method{
			{Name: "show", CIdentifier: "gtk_widget_show"},
			{Name: "hide", CIdentifier: "gtk_widget_hide"},
		},
		StaticFunctions: []ir.Method{
			{Name: "get_default_direction", CIdentifier: "gtk_widget_get_default_direction"},
		},
	}
	gtk.Interfaces["Buildable"] = &ir.Interface{
		Name:  "Buildable",
		QName: ir.Qual("Gtk", "Buildable"),
		Methods: []ir.Method{
			{Name: "get_id", CIdentifier: "gtk_buildable_get_id"},
		},
	}
	gtk.Interfaces["Actionable"] = &ir.Interface{
		Name:  "Actionable",
		QName: ir.Qual("Gtk", "Actionable"),
		Methods: []ir.Method{
			{Name: "get_id", CIdentifier: "gtk_actionable_get_id"},
			{Name: "set_action_name", CIdentifier: "gtk_actionable_set_action_name"},
		},
	}
	gtk.Callbacks["TickCallback"] = &ir.Callback{
		Name:  "TickCallback",
		QName: ir.Qual("Gtk", "TickCallback"),
	}

	return ir.NewRegistry(gobject, gtk)
}

func TestPlan_SelfCollisionRename(t *testing.T) {
	reg := buildRegistry()
	button := &ir.Class{
		Name:   "Button",
		QName:  ir.Qual("Gtk", "Button"),
		Parent: ir.Qual("Gtk", "Widget"),
		Methods: []ir.Method{
			{Name: "show", CIdentifier: "gtk_button_show"},
			{Name: "set_label", CIdentifier: "gtk_button_set_label"},
		},
	}

	p := New(reg, Convention{})
	plan := p.Plan(button)

	if got, want := plan.Renames["gtk_button_show"], "ButtonShow"; got != want {
		t.Errorf("rename for gtk_button_show = %q, want %q", got, want)
	}
	if _, ok := plan.Renames["gtk_button_set_label"]; ok {
		t.Error("set_label does not collide and must not be renamed")
	}

	// Renamed methods stay in the emission list.
	found := false
	for _, m := range plan.Methods {
		if m.CIdentifier == "gtk_button_show" {
			found = true
		}
	}
	if !found {
		t.Error("renamed method removed from method list")
	}
}

func TestPlan_TransitiveAncestorCollision(t *testing.T) {
	reg := buildRegistry()
	// notify is declared two levels up, on GObject.Object.
	label := &ir.Class{
		Name:   "Label",
		QName:  ir.Qual("Gtk", "Label"),
		Parent: ir.Qual("Gtk", "Widget"),
		Methods: []ir.Method{
			{Name: "notify", CIdentifier: "gtk_label_notify"},
		},
	}

	plan := New(reg, Convention{}).Plan(label)
	if got, want := plan.Renames["gtk_label_notify"], "LabelNotify"; got != want {
		t.Errorf("rename for transitive collision = %q, want %q", got, want)
	}
}

func TestPlan_ConnectRename(t *testing.T) {
	reg := buildRegistry()
	button := &ir.Class{
		Name:   "Button",
		QName:  ir.Qual("Gtk", "Button"),
		Parent: ir.Qual("Gtk", "Widget"),
		Methods: []ir.Method{
			{Name: "connect", CIdentifier: "gtk_button_connect"},
		},
	}

	plan := New(reg, Convention{}).Plan(button)
	if got, want := plan.Renames["gtk_button_connect"], "ButtonConnect"; got != want {
		t.Errorf("connect rename = %q, want %q", got, want)
	}
}

func TestPlan_ConnectWithoutParentKeepsName(t *testing.T) {
	reg := buildRegistry()
	root := &ir.Class{
		Name:  "Root",
		QName: ir.Qual("Gtk", "Root"),
		Methods: []ir.Method{
			{Name: "connect", CIdentifier: "gtk_root_connect"},
		},
	}

	plan := New(reg, Convention{}).Plan(root)
	if _, ok := plan.Renames["gtk_root_connect"]; ok {
		t.Error("connect on a parentless class must not be renamed")
	}
}

func TestPlan_InterfaceMergeFirstWins(t *testing.T) {
	reg := buildRegistry()
	button := &ir.Class{
		Name:   "Button",
		QName:  ir.Qual("Gtk", "Button"),
		Parent: ir.Qual("Gtk", "Widget"),
		Implements: []ir.QualifiedName{
			ir.Qual("Gtk", "Buildable"),
			ir.Qual("Gtk", "Actionable"),
		},
	}

	plan := New(reg, Convention{}).Plan(button)

	// Both get_id methods are merged; the one from Buildable keeps the
	// bare name, the Actionable one is renamed.
	if _, ok := plan.Renames["gtk_buildable_get_id"]; ok {
		t.Error("first interface in declaration order must win the unqualified name")
	}
	if got, want := plan.Renames["gtk_actionable_get_id"], "ActionableGetId"; got != want {
		t.Errorf("rename for second interface = %q, want %q", got, want)
	}

	names := make(map[string]int)
	for _, m := range plan.Methods {
		names[m.Name]++
	}
	if names["get_id"] != 2 {
		t.Errorf("merged method list has %d get_id entries, want 2", names["get_id"])
	}
	if names["set_action_name"] != 1 {
		t.Errorf("uncontested interface method missing: %v", names)
	}
}

func TestPlan_InterfaceMethodShadowedByClassOrParent(t *testing.T) {
	reg := buildRegistry()
	button := &ir.Class{
		Name:   "Button",
		QName:  ir.Qual("Gtk", "Button"),
		Parent: ir.Qual("Gtk", "Widget"),
		Methods: []ir.Method{
			{Name: "get_id", CIdentifier: "gtk_button_get_id"},
		},
		Implements: []ir.QualifiedName{ir.Qual("Gtk", "Buildable")},
	}

	plan := New(reg, Convention{}).Plan(button)

	for _, m := range plan.Methods {
		if m.CIdentifier == "gtk_buildable_get_id" {
			t.Error("interface method already declared by the class must not merge")
		}
	}
}

func TestPlan_UnresolvedInterfaceSkipped(t *testing.T) {
	reg := buildRegistry()
	button := &ir.Class{
		Name:   "Button",
		QName:  ir.Qual("Gtk", "Button"),
		Parent: ir.Qual("Gtk", "Widget"),
		Implements: []ir.QualifiedName{
			ir.Qual("Gtk", "NotDeclared"),
			ir.Qual("Gtk", "Buildable"),
		},
	}

	plan := New(reg, Convention{}).Plan(button)

	found := false
	for _, m := range plan.Methods {
		if m.CIdentifier == "gtk_buildable_get_id" {
			found = true
		}
	}
	if !found {
		t.Error("resolvable interface after an unresolvable one must still merge")
	}
}

func TestPlan_ConstructorSelection(t *testing.T) {
	reg := buildRegistry()
	button := &ir.Class{
		Name:   "Button",
		QName:  ir.Qual("Gtk", "Button"),
		Parent: ir.Qual("Gtk", "Widget"),
		Constructors: []ir.Method{
			{
				Name:        "new_with_callback",
				CIdentifier: "gtk_button_new_with_callback",
				Parameters: []ir.Parameter{
					{Name: "cb", Type: ir.TypeRef{Name: "Gtk.TickCallback"}},
				},
			},
			{
				Name:        "new_with_label",
				CIdentifier: "gtk_button_new_with_label",
				Parameters: []ir.Parameter{
					{Name: "label", Type: ir.TypeRef{Name: "utf8"}},
				},
			},
			{Name: "new", CIdentifier: "gtk_button_new"},
		},
	}

	plan := New(reg, Convention{}).Plan(button)

	if plan.MainConstructor == nil {
		t.Fatal("no main constructor selected")
	}
	// The callback constructor is disqualified; the first representable
	// one wins even when a simpler one follows.
	if got, want := plan.MainConstructor.Name, "new_with_label"; got != want {
		t.Errorf("main constructor = %q, want %q", got, want)
	}
	if len(plan.Factories) != 2 {
		t.Fatalf("factories = %d, want 2", len(plan.Factories))
	}
	if !plan.Generatable {
		t.Error("class with a representable constructor must stay generatable")
	}
}

func TestPlan_AllConstructorsUnsupported(t *testing.T) {
	reg := buildRegistry()
	proxy := &ir.Class{
		Name:        "TickerProxy",
		QName:       ir.Qual("Gtk", "TickerProxy"),
		Parent:      ir.Qual("GObject", "Object"),
		GLibGetType: "gtk_ticker_proxy_get_type",
		Constructors: []ir.Method{
			{
				Name:        "new_with_callback",
				CIdentifier: "gtk_ticker_proxy_new_with_callback",
				Parameters: []ir.Parameter{
					{Name: "cb", Type: ir.TypeRef{Name: "Gtk.TickCallback"}},
				},
			},
		},
	}

	plan := New(reg, Convention{}).Plan(proxy)

	if plan.Generatable {
		t.Error("class whose every constructor has a callback parameter must not be generatable")
	}
	if plan.MainConstructor != nil {
		t.Error("no constructor should qualify as main")
	}
}

func TestPlan_ZeroConstructors(t *testing.T) {
	reg := buildRegistry()

	tests := []struct {
		name     string
		cls      *ir.Class
		wantBase bool
	}{
		{
			name: "concrete registered subclass needs base construction",
			cls: &ir.Class{
				Name:        "Spinner",
				QName:       ir.Qual("Gtk", "Spinner"),
				Parent:      ir.Qual("Gtk", "Widget"),
				GLibGetType: "gtk_spinner_get_type",
			},
			wantBase: true,
		},
		{
			name: "abstract class does not",
			cls: &ir.Class{
				Name:        "Widget2",
				QName:       ir.Qual("Gtk", "Widget2"),
				Parent:      ir.Qual("GObject", "Object"),
				Abstract:    true,
				GLibGetType: "gtk_widget2_get_type",
			},
			wantBase: false,
		},
		{
			name: "unregistered class does not",
			cls: &ir.Class{
				Name:   "Plain",
				QName:  ir.Qual("Gtk", "Plain"),
				Parent: ir.Qual("GObject", "Object"),
			},
			wantBase: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := New(reg, Convention{}).Plan(tt.cls)
			if !plan.Generatable {
				t.Error("class with zero constructors is always generatable")
			}
			if plan.NeedsBaseConstructor != tt.wantBase {
				t.Errorf("NeedsBaseConstructor = %v, want %v", plan.NeedsBaseConstructor, tt.wantBase)
			}
		})
	}
}

func TestPlan_StaticFunctionFiltering(t *testing.T) {
	reg := buildRegistry()
	button := &ir.Class{
		Name:   "Button",
		QName:  ir.Qual("Gtk", "Button"),
		Parent: ir.Qual("Gtk", "Widget"),
		StaticFunctions: []ir.Method{
			{Name: "get_default_direction", CIdentifier: "gtk_button_get_default_direction"},
			{Name: "own_helper", CIdentifier: "gtk_button_own_helper"},
		},
	}

	plan := New(reg, Convention{}).Plan(button)

	if len(plan.StaticFunctions) != 1 {
		t.Fatalf("static functions = %d, want 1", len(plan.StaticFunctions))
	}
	if plan.StaticFunctions[0].Name != "own_helper" {
		t.Errorf("surviving static = %q, want own_helper", plan.StaticFunctions[0].Name)
	}
}
