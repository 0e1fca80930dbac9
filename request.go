package colormap

import (
	"strings"

	"github.com/jsvensson/colormap/color"
)

// Request describes which colormap Builder.Build produces. Use ByRegistered,
// ByDivergingBlack, ByHeat or BySpec.
type Request interface {
	describe() string
}

type registeredRequest struct {
	name string
}

func (r registeredRequest) describe() string { return "registered " + r.name }

type divergingBlackRequest struct {
	name string
}

func (r divergingBlackRequest) describe() string { return "diverging-black " + r.name }

type specRequest struct {
	label    string
	spec     Spec
	reversed bool
}

func (r specRequest) describe() string { return "spec " + r.label }

// ByRegistered fetches a colormap the backend already knows.
func ByRegistered(name string) Request { return registeredRequest{name} }

// ByDivergingBlack builds one of the DivergingBlack names.
func ByDivergingBlack(name string) Request { return divergingBlackRequest{name} }

// ByHeat builds the heat colormap, reversed for heat_r.
func ByHeat(reversed bool) Request {
	label := "heat"
	if reversed {
		label = "heat_r"
	}
	return specRequest{label: label, spec: HeatSpec(), reversed: reversed}
}

// BySpec builds a colormap from user channel data.
func BySpec(spec Spec) Request { return specRequest{label: "custom", spec: spec} }

// splitDivergingBlack returns the three color tokens of a diverging-black
// name. "sky" in the last position stands for deep sky blue.
func splitDivergingBlack(name string) ([3]string, error) {
	parts := strings.Split(name, "_")
	if len(parts) != 3 {
		return [3]string{}, &color.LookupError{Kind: "colormap", Name: name}
	}
	if parts[2] == "sky" {
		parts[2] = "deep sky blue"
	}
	return [3]string{parts[0], parts[1], parts[2]}, nil
}
