package core

import "strings"

// CheckSummary is one named check reported by the connection design engine
type CheckSummary struct {
	Name              string
	CheckValue        float64
	UnityCheckMessage string
}

// ResultsSummary holds the governing check values of a joint. Checks the
// engine did not report stay nil.
type ResultsSummary struct {
	Analysis *float64
	Plates   *float64
	Bolts    *float64
	Welds    *float64
	Buckling *float64
	Summary  string
}

// LookupCheck returns the value of the first check with the given name
func LookupCheck(checks []CheckSummary, name string) (float64, bool) {
	for _, c := range checks {
		if c.Name == name {
			return c.CheckValue, true
		}
	}
	return 0, false
}

// NewResultsSummary collects the standard checks and joins all messages into
// a one-line summary
func NewResultsSummary(checks []CheckSummary) *ResultsSummary {
	get := func(name string) *float64 {
		v, ok := LookupCheck(checks, name)
		if !ok {
			return nil
		}
		return &v
	}

	var sb strings.Builder
	for _, c := range checks {
		sb.WriteString(c.Name + ": " + c.UnityCheckMessage + " ")
	}

	return &ResultsSummary{
		Analysis: get("Analysis"),
		Plates:   get("Plates"),
		Bolts:    get("Bolts"),
		Welds:    get("Welds"),
		Buckling: get("Buckling"),
		Summary:  strings.TrimSpace(sb.String()),
	}
}

// MaxCheck returns the governing value among the reported component checks
// (plates, bolts, welds, buckling)
func (r *ResultsSummary) MaxCheck() (float64, bool) {
	var peak float64
	found := false
	for _, v := range []*float64{r.Plates, r.Bolts, r.Welds, r.Buckling} {
		if v != nil && (!found || *v > peak) {
			peak = *v
			found = true
		}
	}
	return peak, found
}
