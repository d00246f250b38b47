// Package tables holds the static domain data for the chemistry loader:
// parameter-to-analyte mappings, method suffixes, unit overrides,
// destination tables, acceptable test-method patterns and drinking-water
// standards. The data is fixed at compile time and loaded once per run.
package tables

import (
	"regexp"

	"chemload/internal/core"
)

// Destination table names. Major-ion parameters land in major_chemistry,
// trace constituents in minor_chemistry.
const (
	MajorChemistry = "major_chemistry"
	MinorChemistry = "minor_chemistry"
)

// Default returns the lab's domain tables.
func Default() core.Domain {
	return core.Domain{
		Analytes:       analytes,
		MethodSuffixes: methodSuffixes,
		UnitOverrides:  unitOverrides,
		Targets:        targets,
		TestPatterns:   testPatterns,
		Standards:      standards,
	}
}

// analytes maps report parameter names to analyte codes.
var analytes = map[string]string{
	"Alkalinity":             "HCO3",
	"Arsenic":                "As",
	"Boron":                  "B",
	"Calcium":                "Ca",
	"Chloride":               "Cl",
	"Conductivity":           "COND",
	"Copper":                 "Cu",
	"Fluoride":               "F",
	"Iron":                   "Fe",
	"Magnesium":              "Mg",
	"Manganese":              "Mn",
	"Nitrate":                "NO3",
	"pH":                     "pH",
	"Potassium":              "K",
	"Silica":                 "SiO2",
	"Sodium":                 "Na",
	"Sulfate":                "SO4",
	"Total Dissolved Solids": "TDS",
	"Uranium":                "U",
	"Zinc":                   "Zn",
}

// methodSuffixes is appended (", <suffix>") to the reported analysis
// method for parameters whose method line needs qualification.
var methodSuffixes = map[string]string{
	"Alkalinity":             "titration to pH 4.5",
	"Conductivity":           "at 25 deg C",
	"pH":                     "electrometric",
	"Total Dissolved Solids": "dried at 180 deg C",
}

// unitOverrides forces the stored units for parameters the reports label
// inconsistently.
var unitOverrides = map[string]string{
	"Conductivity": "uS/cm",
	"pH":           "std units",
}

// targets routes each parameter to its destination table.
var targets = map[string]string{
	"Alkalinity":             MajorChemistry,
	"Calcium":                MajorChemistry,
	"Chloride":               MajorChemistry,
	"Conductivity":           MajorChemistry,
	"Magnesium":              MajorChemistry,
	"pH":                     MajorChemistry,
	"Potassium":              MajorChemistry,
	"Silica":                 MajorChemistry,
	"Sodium":                 MajorChemistry,
	"Sulfate":                MajorChemistry,
	"Total Dissolved Solids": MajorChemistry,
	"Arsenic":                MinorChemistry,
	"Boron":                  MinorChemistry,
	"Copper":                 MinorChemistry,
	"Fluoride":               MinorChemistry,
	"Iron":                   MinorChemistry,
	"Manganese":              MinorChemistry,
	"Nitrate":                MinorChemistry,
	"Uranium":                MinorChemistry,
	"Zinc":                   MinorChemistry,
}

// testPatterns lists the acceptable test-method descriptions per
// parameter, most preferred first. The position of the first match
// becomes the record's dedup priority. Parameters without an entry accept
// any description.
var testPatterns = map[string][]*regexp.Regexp{
	"Arsenic": {
		regexp.MustCompile(`(?i)ICP-?MS`),
		regexp.MustCompile(`(?i)hydride`),
	},
	"Calcium": {
		regexp.MustCompile(`(?i)ICP-?OES`),
		regexp.MustCompile(`(?i)EDTA`),
	},
	"Chloride": {
		regexp.MustCompile(`(?i)ion chromatograph`),
		regexp.MustCompile(`(?i)argentometric`),
	},
	"Iron": {
		regexp.MustCompile(`(?i)ICP-?MS`),
		regexp.MustCompile(`(?i)ICP-?OES`),
		regexp.MustCompile(`(?i)flame AA`),
	},
	"Magnesium": {
		regexp.MustCompile(`(?i)ICP-?OES`),
		regexp.MustCompile(`(?i)EDTA`),
	},
	"Manganese": {
		regexp.MustCompile(`(?i)ICP-?MS`),
		regexp.MustCompile(`(?i)ICP-?OES`),
	},
	"Nitrate": {
		regexp.MustCompile(`(?i)ion chromatograph`),
		regexp.MustCompile(`(?i)cadmium reduction`),
	},
	"Sulfate": {
		regexp.MustCompile(`(?i)ion chromatograph`),
		regexp.MustCompile(`(?i)turbidimetric`),
	},
	"Uranium": {
		regexp.MustCompile(`(?i)ICP-?MS`),
	},
}

// standards holds the acceptable concentration ranges keyed by base
// analyte code. Values are mg/L except pH (standard units) and
// conductivity (uS/cm).
var standards = map[string]core.Range{
	"As":  {Low: 0, High: 0.010},
	"B":   {Low: 0, High: 2.0},
	"Cl":  {Low: 0, High: 250},
	"Cu":  {Low: 0, High: 1.3},
	"F":   {Low: 0, High: 4.0},
	"Fe":  {Low: 0, High: 0.3},
	"Mn":  {Low: 0, High: 0.05},
	"NO3": {Low: 0, High: 10},
	"SO4": {Low: 0, High: 250},
	"TDS": {Low: 0, High: 500},
	"U":   {Low: 0, High: 0.030},
	"Zn":  {Low: 0, High: 5},
	"pH":  {Low: 6.5, High: 8.5},
}
