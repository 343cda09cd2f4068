package plan

import (
	"strings"

	"github.com/gtkx-org/gtkx-sub008/girgen/ir"
)

// Convention describes the begin/finish naming-and-signature pattern used
// to pair asynchronous operations. The exact rule varies between
// introspection sources, so it is configuration rather than a constant.
type Convention struct {
	// CallbackType is the qualified type of the completion callback a
	// begin method accepts.
	CallbackType string `yaml:"callbackType" json:"callbackType"`

	// ResultType is the qualified type of the opaque operation-result
	// token a finish method accepts.
	ResultType string `yaml:"resultType" json:"resultType"`

	// BeginSuffix is stripped from a begin method's name before appending
	// FinishSuffix to derive its finish counterpart. A begin method
	// without the suffix pairs with name+FinishSuffix directly.
	BeginSuffix  string `yaml:"beginSuffix" json:"beginSuffix"`
	FinishSuffix string `yaml:"finishSuffix" json:"finishSuffix"`
}

// DefaultConvention returns the Gio async convention.
func DefaultConvention() Convention {
	return Convention{
		CallbackType: "Gio.AsyncReadyCallback",
		ResultType:   "Gio.AsyncResult",
		BeginSuffix:  "_async",
		FinishSuffix: "_finish",
	}
}

// IsZero reports whether the convention is unset.
func (c Convention) IsZero() bool {
	return c == Convention{}
}

// isBegin reports whether the method accepts a completion callback.
func (c Convention) isBegin(m ir.Method) bool {
	return hasParamType(m, c.CallbackType)
}

// isFinish reports whether the method accepts an operation-result token.
func (c Convention) isFinish(m ir.Method) bool {
	return hasParamType(m, c.ResultType)
}

// finishName derives the expected finish counterpart name for a begin
// method.
func (c Convention) finishName(begin string) string {
	return strings.TrimSuffix(begin, c.BeginSuffix) + c.FinishSuffix
}

func hasParamType(m ir.Method, typeName string) bool {
	for _, p := range m.Parameters {
		if p.Type.Name == typeName {
			return true
		}
	}
	return false
}

// AsyncPair is a matched begin/finish method pair. Both members are
// excluded from the plain synchronous method list; the calling convention
// that wraps them is a downstream concern.
type AsyncPair struct {
	Begin  ir.Method `json:"begin"`
	Finish ir.Method `json:"finish"`
}

// pairAsync partitions methods into synchronous methods and async pairs.
// A pair requires a begin method (callback parameter) whose derived
// finish name matches a finish method (result parameter); candidates that
// do not pair stay synchronous.
func pairAsync(conv Convention, methods []ir.Method) (sync []ir.Method, pairs []AsyncPair) {
	finishByName := make(map[string]int)
	for i, m := range methods {
		if conv.isFinish(m) {
			finishByName[m.Name] = i
		}
	}

	paired := make(map[int]bool)
	for i, m := range methods {
		if !conv.isBegin(m) {
			continue
		}
		j, ok := finishByName[conv.finishName(m.Name)]
		if !ok || j == i || paired[j] {
			continue
		}
		paired[i] = true
		paired[j] = true
		pairs = append(pairs, AsyncPair{Begin: m, Finish: methods[j]})
	}

	for i, m := range methods {
		if !paired[i] {
			sync = append(sync, m)
		}
	}
	return sync, pairs
}
