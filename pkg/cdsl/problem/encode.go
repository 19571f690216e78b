// File: encode.go
// Title: Specification Encoding
// Description: Plain YAML and JSON documents of a specification for
//              command-line tools and renderers.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial encoders

package problem

import "encoding/json"

type document struct {
	Kind            Kind                   `yaml:"kind" json:"kind"`
	TaskName        string                 `yaml:"taskName,omitempty" json:"taskName,omitempty"`
	CalculationType string                 `yaml:"calculationType,omitempty" json:"calculationType,omitempty"`
	Summary         string                 `yaml:"summary" json:"summary"`
	Conditions      []string               `yaml:"conditions,omitempty" json:"conditions,omitempty"`
	Cards           *Cards                 `yaml:"cards,omitempty" json:"cards,omitempty"`
	Words           *Words                 `yaml:"words,omitempty" json:"words,omitempty"`
	Numbers         *Numbers               `yaml:"numbers,omitempty" json:"numbers,omitempty"`
	Equations       *Equations             `yaml:"equations,omitempty" json:"equations,omitempty"`
	Balls           *Balls                 `yaml:"balls,omitempty" json:"balls,omitempty"`
	Divisibility    *Divisibility          `yaml:"divisibility,omitempty" json:"divisibility,omitempty"`
	Remainders      *Remainders            `yaml:"remainders,omitempty" json:"remainders,omitempty"`
	Chess           *Chess                 `yaml:"chess,omitempty" json:"chess,omitempty"`
	Params          map[string]interface{} `yaml:"params,omitempty" json:"params,omitempty"`
}

func (s *Specification) document() document {
	return document{
		Kind:            s.kind,
		TaskName:        s.taskName,
		CalculationType: s.calculationType,
		Summary:         s.Summary(),
		Conditions:      s.Conditions(),
		Cards:           s.cards,
		Words:           s.words,
		Numbers:         s.numbers,
		Equations:       s.equations,
		Balls:           s.balls,
		Divisibility:    s.divisibility,
		Remainders:      s.remainders,
		Chess:           s.chess,
		Params:          s.params.Map(),
	}
}

// MarshalYAML implements yaml.Marshaler
func (s *Specification) MarshalYAML() (interface{}, error) {
	return s.document(), nil
}

// MarshalJSON implements json.Marshaler
func (s *Specification) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.document())
}
