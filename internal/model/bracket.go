package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Bracket is one progressive tax bracket. On disk it is a two-element array
// [lower_bound, marginal_rate]; the upper bound is the next bracket's lower
// bound, or +Inf for the last one.
type Bracket struct {
	Lower float64
	Rate  float64
}

// Brackets is an ascending bracket sequence starting at 0.
type Brackets []Bracket

// Upper returns the upper bound of bracket i.
func (b Brackets) Upper(i int) float64 {
	if i+1 < len(b) {
		return b[i+1].Lower
	}
	return math.Inf(1)
}

// Validate checks the sequence starts at 0, is strictly ascending and carries
// rates in [0,1].
func (b Brackets) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("no brackets")
	}
	if b[0].Lower != 0 {
		return fmt.Errorf("first bracket must start at 0, got %v", b[0].Lower)
	}
	for i, br := range b {
		if br.Rate < 0 || br.Rate > 1 {
			return fmt.Errorf("bracket %d: rate %v outside [0,1]", i, br.Rate)
		}
		if i > 0 && br.Lower <= b[i-1].Lower {
			return fmt.Errorf("bracket %d: lower bound %v not above %v", i, br.Lower, b[i-1].Lower)
		}
	}
	return nil
}

func (br Bracket) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{br.Lower, br.Rate})
}

func (br *Bracket) UnmarshalJSON(raw []byte) error {
	var pair []float64
	if err := json.Unmarshal(raw, &pair); err != nil {
		return err
	}
	return br.setPair(pair)
}

func (br Bracket) MarshalYAML() (any, error) {
	return []float64{br.Lower, br.Rate}, nil
}

func (br *Bracket) UnmarshalYAML(value *yaml.Node) error {
	var pair []float64
	if err := value.Decode(&pair); err != nil {
		return err
	}
	return br.setPair(pair)
}

// MarshalTOML implements toml.Marshaler; the encoder writes the bytes as an
// inline array.
func (br Bracket) MarshalTOML() ([]byte, error) {
	return []byte(fmt.Sprintf("[%s, %s]",
		strconv.FormatFloat(br.Lower, 'f', -1, 64),
		strconv.FormatFloat(br.Rate, 'f', -1, 64),
	)), nil
}

// UnmarshalTOML implements toml.Unmarshaler. TOML arrays may mix integers
// and floats, so both are accepted.
func (br *Bracket) UnmarshalTOML(v any) error {
	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("bracket: expected array, got %T", v)
	}
	pair := make([]float64, 0, len(items))
	for _, it := range items {
		switch x := it.(type) {
		case int64:
			pair = append(pair, float64(x))
		case float64:
			pair = append(pair, x)
		default:
			return fmt.Errorf("bracket: expected number, got %T", it)
		}
	}
	return br.setPair(pair)
}

func (br *Bracket) setPair(pair []float64) error {
	if len(pair) != 2 {
		return fmt.Errorf("bracket: expected [lower, rate], got %d values", len(pair))
	}
	br.Lower, br.Rate = pair[0], pair[1]
	return nil
}
