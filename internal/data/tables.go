package data

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"household-calc/internal/model"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTaxTablePath    = "data/state_tax.json"
	DefaultBudgetTablePath = "data/budget_data.json"
)

// Tables bundles both reference documents. Neither is modified after
// LoadTables returns.
type Tables struct {
	Tax    *model.TaxTable
	Budget *model.BudgetTable
}

// LoadTables reads and validates both reference documents. Any violation is
// returned as a *model.ConfigError wrapped with the offending path.
func LoadTables(taxPath, budgetPath string) (*Tables, error) {
	taxTable, err := LoadTaxTable(taxPath)
	if err != nil {
		return nil, err
	}
	budgetTable, err := LoadBudgetTable(budgetPath)
	if err != nil {
		return nil, err
	}
	return &Tables{Tax: taxTable, Budget: budgetTable}, nil
}

func LoadTaxTable(path string) (*model.TaxTable, error) {
	var t model.TaxTable
	if err := decodeFile(path, &t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tax table %s: %w", path, err)
	}
	return &t, nil
}

func LoadBudgetTable(path string) (*model.BudgetTable, error) {
	var t model.BudgetTable
	if err := decodeFile(path, &t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid budget table %s: %w", path, err)
	}
	return &t, nil
}

// decodeFile picks a decoder from the file extension: .json, .yaml/.yml or
// .toml.
func decodeFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read reference file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, out)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, out)
	case ".toml":
		_, err = toml.Decode(string(raw), out)
	default:
		return fmt.Errorf("unsupported reference file type %q: %s", ext, path)
	}
	if err != nil {
		return fmt.Errorf("failed to parse reference file %s: %w", path, err)
	}
	return nil
}

// WriteTable encodes a reference table in the given format ("json", "yaml"
// or "toml").
func WriteTable(w io.Writer, table any, format string) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(table); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(table)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
