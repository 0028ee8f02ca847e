package data

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Kind names how a raw CSV token becomes a feature value.
type Kind string

const (
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindMonth   Kind = "month"
	KindVisitor Kind = "visitor"
	KindFlag    Kind = "flag"
)

// Column names of the session log.
const (
	ColAdministrative         = "Administrative"
	ColAdministrativeDuration = "Administrative_Duration"
	ColInformational          = "Informational"
	ColInformationalDuration  = "Informational_Duration"
	ColProductRelated         = "ProductRelated"
	ColProductRelatedDuration = "ProductRelated_Duration"
	ColBounceRates            = "BounceRates"
	ColExitRates              = "ExitRates"
	ColPageValues             = "PageValues"
	ColSpecialDay             = "SpecialDay"
	ColMonth                  = "Month"
	ColOperatingSystems       = "OperatingSystems"
	ColBrowser                = "Browser"
	ColRegion                 = "Region"
	ColTrafficType            = "TrafficType"
	ColVisitorType            = "VisitorType"
	ColWeekend                = "Weekend"
	ColRevenue                = "Revenue"
)

const (
	returningVisitor = "Returning_Visitor"
	trueToken        = "TRUE"
)

// months maps the month tokens used by the session log to a zero-based index.
// June is spelled out in full in the source data.
var months = map[string]int{
	"Jan": 0, "Feb": 1, "Mar": 2, "Apr": 3, "May": 4, "June": 5,
	"Jul": 6, "Aug": 7, "Sep": 8, "Oct": 9, "Nov": 10, "Dec": 11,
}

// Field is one extraction step: read Column, convert it according to Kind
// and append it to the feature vector under Name.
type Field struct {
	Name   string
	Column string
	Kind   Kind
}

// Schema is the ordered list of extraction steps producing a feature vector,
// plus the column holding the label. Required lists columns that must be
// present even though no field reads them.
type Schema struct {
	Fields   []Field
	Label    string
	Required []string
}

// SessionSchema returns the 17-feature layout. With legacySpecialDay the
// SpecialDay feature is read from the PageValues column, which matches
// vectors produced by earlier versions of this analysis. The SpecialDay
// column is required either way.
func SessionSchema(legacySpecialDay bool) Schema {
	specialDay := ColSpecialDay
	var required []string
	if legacySpecialDay {
		specialDay = ColPageValues
		required = []string{ColSpecialDay}
	}
	return Schema{
		Fields: []Field{
			{Name: ColAdministrative, Column: ColAdministrative, Kind: KindInt},
			{Name: ColAdministrativeDuration, Column: ColAdministrativeDuration, Kind: KindFloat},
			{Name: ColInformational, Column: ColInformational, Kind: KindInt},
			{Name: ColInformationalDuration, Column: ColInformationalDuration, Kind: KindFloat},
			{Name: ColProductRelated, Column: ColProductRelated, Kind: KindInt},
			{Name: ColProductRelatedDuration, Column: ColProductRelatedDuration, Kind: KindFloat},
			{Name: ColBounceRates, Column: ColBounceRates, Kind: KindFloat},
			{Name: ColExitRates, Column: ColExitRates, Kind: KindFloat},
			{Name: ColPageValues, Column: ColPageValues, Kind: KindFloat},
			{Name: ColSpecialDay, Column: specialDay, Kind: KindFloat},
			{Name: ColMonth, Column: ColMonth, Kind: KindMonth},
			{Name: ColOperatingSystems, Column: ColOperatingSystems, Kind: KindInt},
			{Name: ColBrowser, Column: ColBrowser, Kind: KindInt},
			{Name: ColRegion, Column: ColRegion, Kind: KindInt},
			{Name: ColTrafficType, Column: ColTrafficType, Kind: KindInt},
			{Name: ColVisitorType, Column: ColVisitorType, Kind: KindVisitor},
			{Name: ColWeekend, Column: ColWeekend, Kind: KindFlag},
		},
		Label:    ColRevenue,
		Required: required,
	}
}

// FeatureNames returns the feature names in vector order.
func (s Schema) FeatureNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Columns returns every column a file must carry: those the fields read,
// the label and the extra required ones, without duplicates.
func (s Schema) Columns() []string {
	names := make([]string, 0, len(s.Fields)+1+len(s.Required))
	for _, f := range s.Fields {
		names = append(names, f.Column)
	}
	names = append(names, s.Label)
	return lo.Uniq(append(names, s.Required...))
}

// Convert turns a raw token into a feature value.
func (k Kind) Convert(raw string) (float64, error) {
	switch k {
	case KindInt:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, err
		}
		return float64(v), nil
	case KindFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%q: %w", raw, ErrNotFinite)
		}
		return v, nil
	case KindMonth:
		m, err := MonthIndex(raw)
		return float64(m), err
	case KindVisitor:
		return float64(VisitorType(raw)), nil
	case KindFlag:
		return float64(Flag(raw)), nil
	}
	return 0, fmt.Errorf("unknown field kind %q", k)
}

// MonthIndex maps a month token to 0 (January) through 11 (December).
func MonthIndex(token string) (int, error) {
	m, ok := months[token]
	if !ok {
		return 0, fmt.Errorf("unrecognized month %q", token)
	}
	return m, nil
}

// VisitorType is 1 for a returning visitor and 0 for anything else.
func VisitorType(token string) int {
	if token == returningVisitor {
		return 1
	}
	return 0
}

// Flag is 1 for the literal TRUE and 0 for anything else.
func Flag(token string) int {
	if token == trueToken {
		return 1
	}
	return 0
}
