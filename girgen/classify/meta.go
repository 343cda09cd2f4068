package classify

// WidgetMeta describes a widget-classified class for downstream emission.
type WidgetMeta struct {
	ClassName string `json:"className"`
	Namespace string `json:"namespace"`

	// JSXName is the derived display identifier, e.g. "GtkButton".
	JSXName string `json:"jsxName"`

	// Slots are the named child-placement properties: the class's own
	// writable widget-typed properties, excluding the generic "child".
	Slots []string `json:"slots,omitempty"`

	PropNames   []string `json:"propNames,omitempty"`
	SignalNames []string `json:"signalNames,omitempty"`

	ParentClassName string `json:"parentClassName,omitempty"`
	ParentNamespace string `json:"parentNamespace,omitempty"`

	// ConstructorParams and HiddenPropNames are filled by the assembler
	// from planner output and host configuration.
	ConstructorParams []string `json:"constructorParams,omitempty"`
	HiddenPropNames   []string `json:"hiddenPropNames,omitempty"`
}

// ControllerMeta describes an event-controller-classified class. Same
// shape as WidgetMeta minus slots.
type ControllerMeta struct {
	ClassName string `json:"className"`
	Namespace string `json:"namespace"`
	JSXName   string `json:"jsxName"`

	PropNames   []string `json:"propNames,omitempty"`
	SignalNames []string `json:"signalNames,omitempty"`

	ParentClassName string `json:"parentClassName,omitempty"`
	ParentNamespace string `json:"parentNamespace,omitempty"`

	ConstructorParams []string `json:"constructorParams,omitempty"`
	HiddenPropNames   []string `json:"hiddenPropNames,omitempty"`
}
