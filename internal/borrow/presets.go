package borrow

import "fmt"

// Preset is a named pair of front-end and back-end DTI ratios.
type Preset struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	FrontEnd    float64 `json:"front_end_ratio"`
	BackEnd     float64 `json:"back_end_ratio"`
}

// Presets are common underwriting guidelines. A zero front-end ratio means
// the program does not apply a housing-only cap, which here caps P&I at zero
// unless the caller overrides it.
var Presets = []Preset{
	{Name: "conventional", Description: "Conventional loan, 28/36 rule", FrontEnd: 0.28, BackEnd: 0.36},
	{Name: "fha", Description: "FHA loan, 31/43", FrontEnd: 0.31, BackEnd: 0.43},
	{Name: "va", Description: "VA loan, back-end 41% only", FrontEnd: 0.00, BackEnd: 0.41},
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, error) {
	for _, p := range Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}
