package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MetodiPro/nexus-crm-sub000/internal/models"
)

// Options selects provider-specific validation rules.
type Options struct {
	// PDRExactDigits forces an exact PDR length. ENEL gas layouts always
	// print 14 digits, and that stricter rule is preserved for the
	// specialized path; zero keeps the generic 8-14 digit rule.
	PDRExactDigits int
}

var (
	fiscalCodeRe = regexp.MustCompile(`^[A-Z]{6}[0-9]{2}[A-Z][0-9]{2}[A-Z][0-9]{3}[A-Z]$`)
	vatNumberRe  = regexp.MustCompile(`^[0-9]{11}$`)
	podRe        = regexp.MustCompile(`^IT[0-9]{3}[A-Z][0-9]{8}$`)
	digitsRe     = regexp.MustCompile(`^[0-9]+$`)
	postalRe     = regexp.MustCompile(`^[0-9]{5}$`)
	provinceRe   = regexp.MustCompile(`^[A-Z]{2}$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Plausibility bounds for extracted figures. Out-of-range values are dropped,
// never clamped: a wrong number is worse than no number.
const (
	maxElectricKWh = 100000
	maxGasSmc      = 50000
	maxPowerKW     = 100
	maxStringLen   = 200
)

// A field that fails its gate is silently absent from the output: partial
// extraction is the expected common case, not an error.
//
// Validate is pure and total; it never fails for malformed input.
func Validate(raw map[models.Field]string, opts Options) map[models.Field]any {
	clean := make(map[models.Field]any, len(raw))
	for field, value := range raw {
		switch field {
		case models.FieldFiscalCode:
			v := strings.ToUpper(stripWhitespace(value))
			if fiscalCodeRe.MatchString(v) {
				clean[field] = v
			}

		case models.FieldVATNumber:
			v := stripWhitespace(value)
			if vatNumberRe.MatchString(v) {
				clean[field] = v
			}

		case models.FieldPOD:
			v := strings.ToUpper(stripWhitespace(value))
			if podRe.MatchString(v) {
				clean[field] = v
			}

		case models.FieldPDR:
			v := stripWhitespace(value)
			if !digitsRe.MatchString(v) {
				continue
			}
			if opts.PDRExactDigits > 0 {
				if len(v) == opts.PDRExactDigits {
					clean[field] = v
				}
			} else if len(v) >= 8 && len(v) <= 14 {
				clean[field] = v
			}

		case models.FieldPostalCode:
			v := stripWhitespace(value)
			if postalRe.MatchString(v) {
				clean[field] = v
			}

		case models.FieldProvince:
			v := strings.ToUpper(stripWhitespace(value))
			if provinceRe.MatchString(v) {
				clean[field] = v
			}

		case models.FieldElectricConsumption:
			if n, ok := parseLocaleInt(value); ok && n > 0 && n < maxElectricKWh {
				clean[field] = n
			}

		case models.FieldGasConsumption:
			if n, ok := parseLocaleInt(value); ok && n > 0 && n < maxGasSmc {
				clean[field] = n
			}

		case models.FieldPowerCommitted:
			if d, ok := parseLocaleDecimal(value); ok &&
				d.IsPositive() && d.LessThan(decimal.NewFromInt(maxPowerKW)) {
				clean[field] = d
			}

		case models.FieldBillDate, models.FieldFromDate, models.FieldToDate:
			if iso, ok := parseBillDate(value); ok {
				clean[field] = iso
			}

		case models.FieldBillType:
			switch value {
			case models.BillTypeElectric, models.BillTypeGas, models.BillTypeDualFuel:
				clean[field] = value
			}

		default:
			// Free-form strings: trim, collapse internal whitespace, reject
			// empties and captures long enough to be document noise.
			v := strings.TrimSpace(whitespaceRe.ReplaceAllString(value, " "))
			if v != "" && len(v) <= maxStringLen {
				clean[field] = v
			}
		}
	}
	return clean
}

func stripWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), "")
}

// normalizeLocaleNumber converts Italian formatting ("50.729", "3,3") to the
// canonical form strconv understands.
func normalizeLocaleNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, ",", ".")
}

func parseLocaleInt(s string) (int, bool) {
	f, err := strconv.ParseFloat(normalizeLocaleNumber(s), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

func parseLocaleDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(normalizeLocaleNumber(s))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

var billDateLayouts = []string{"02/01/2006", "02-01-2006"}

// parseBillDate converts DD/MM/YYYY or DD-MM-YYYY to ISO YYYY-MM-DD.
func parseBillDate(s string) (string, bool) {
	v := strings.TrimSpace(s)
	for _, layout := range billDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
