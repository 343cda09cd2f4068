package girgen

import (
	"github.com/gtkx-org/gtkx-sub008/girgen/classify"
	"github.com/gtkx-org/gtkx-sub008/girgen/ir"
	"github.com/gtkx-org/gtkx-sub008/girgen/plan"
)

// ClassMetadata is the assembled per-class descriptor handed to the
// downstream emitter: classification, planned members, and the parent
// pointer emission needs to build correct inheritance chains.
type ClassMetadata struct {
	Name      string           `json:"name"`
	Namespace string           `json:"namespace"`
	Qualified ir.QualifiedName `json:"qualifiedName"`
	Parent    ir.QualifiedName `json:"parent,omitzero"`
	Abstract  bool             `json:"abstract,omitempty"`

	// Widget or Controller is set when the classifier matched; at most
	// one is non-nil.
	Widget     *classify.WidgetMeta     `json:"widget,omitempty"`
	Controller *classify.ControllerMeta `json:"controller,omitempty"`

	Plan plan.Plan `json:"plan"`
}

// assembleClass combines classifier and planner output for one class.
// Pure combination: no new decisions beyond copying the hidden-property
// lookup and the main constructor's parameter names into the meta.
func assembleClass(cls *ir.Class, classifier *classify.Classifier, pl plan.Plan, cfg *Config) ClassMetadata {
	md := ClassMetadata{
		Name:      cls.Name,
		Namespace: cls.QName.Namespace,
		Qualified: cls.QName,
		Parent:    cls.Parent,
		Abstract:  cls.Abstract,
		Plan:      pl,
	}

	widget, controller := classifier.Classify(cls)
	ctorParams := constructorParams(pl.MainConstructor)
	hidden := cfg.HiddenProps[cls.Name]

	if widget != nil {
		widget.ConstructorParams = ctorParams
		widget.HiddenPropNames = hidden
		md.Widget = widget
	}
	if controller != nil {
		controller.ConstructorParams = ctorParams
		controller.HiddenPropNames = hidden
		md.Controller = controller
	}

	return md
}

func constructorParams(ctor *ir.Method) []string {
	if ctor == nil || len(ctor.Parameters) == 0 {
		return nil
	}
	names := make([]string, 0, len(ctor.Parameters))
	for _, p := range ctor.Parameters {
		names = append(names, p.Name)
	}
	return names
}
