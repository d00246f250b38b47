package tables

import "testing"

// The maps are cross-referenced at runtime; these tests pin the
// consistency rules so an edit to one map cannot silently strand
// entries in another.

func TestEveryParameterHasATarget(t *testing.T) {
	dom := Default()
	for param := range dom.Analytes {
		table, ok := dom.Targets[param]
		if !ok {
			t.Errorf("parameter %q has no destination table", param)
			continue
		}
		if table != MajorChemistry && table != MinorChemistry {
			t.Errorf("parameter %q routes to unknown table %q", param, table)
		}
	}
}

func TestAuxiliaryMapsKeyKnownParameters(t *testing.T) {
	dom := Default()
	for param := range dom.MethodSuffixes {
		if _, ok := dom.Analytes[param]; !ok {
			t.Errorf("method suffix for unknown parameter %q", param)
		}
	}
	for param := range dom.UnitOverrides {
		if _, ok := dom.Analytes[param]; !ok {
			t.Errorf("unit override for unknown parameter %q", param)
		}
	}
	for param := range dom.TestPatterns {
		if _, ok := dom.Analytes[param]; !ok {
			t.Errorf("test patterns for unknown parameter %q", param)
		}
	}
}

func TestStandardsKeyKnownAnalytes(t *testing.T) {
	dom := Default()
	codes := make(map[string]bool, len(dom.Analytes))
	for _, code := range dom.Analytes {
		codes[code] = true
	}
	for analyte, r := range dom.Standards {
		if !codes[analyte] {
			t.Errorf("standard for unknown analyte %q", analyte)
		}
		if r.Low > r.High {
			t.Errorf("standard for %q has inverted range %v..%v", analyte, r.Low, r.High)
		}
	}
}

func TestAnalyteCodesDistinct(t *testing.T) {
	dom := Default()
	seen := make(map[string]string, len(dom.Analytes))
	for param, code := range dom.Analytes {
		if prev, ok := seen[code]; ok {
			t.Errorf("analyte code %q shared by %q and %q", code, prev, param)
		}
		seen[code] = param
	}
}
