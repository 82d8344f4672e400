package tax

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"
)

// WriteBreakdownCSV writes bracket rows with a header line. The map key is
// written in the scope column of each row ("federal" or a state code).
func WriteBreakdownCSV(path string, sections map[string][]BracketRow) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)

	header := []string{
		"scope",
		"lower",
		"upper",
		"rate",
		"amount",
		"tax",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, scope := range sortedScopes(sections) {
		for _, r := range sections[scope] {
			row := []string{
				scope,
				fmtFloat(r.Lower),
				fmtFloat(r.Upper),
				strconv.FormatFloat(r.Rate, 'f', 4, 64),
				fmtFloat(r.Amount),
				fmtFloat(r.Tax),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// federal first, then the remaining scopes in name order
func sortedScopes(sections map[string][]BracketRow) []string {
	out := make([]string, 0, len(sections))
	if _, ok := sections["federal"]; ok {
		out = append(out, "federal")
	}
	rest := make([]string, 0, len(sections))
	for k := range sections {
		if k != "federal" {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
