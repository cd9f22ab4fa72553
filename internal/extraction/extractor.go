package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MetodiPro/nexus-crm-sub000/internal/models"
)

// fieldPattern is one candidate regular expression for a logical field.
// Group selects the submatch used as the raw value.
type fieldPattern struct {
	field models.Field
	re    *regexp.Regexp
	group int
}

// triplePattern captures postal code, city and province from a single match.
// This is the one deliberate exception to "one field per pattern": the address
// triple must come out of the same line atomically or the three parts drift
// apart.
type triplePattern struct {
	re                 *regexp.Regexp
	postal, city, prov int
}

// literalFallback is an exact layout fragment observed on a real sample bill.
// Tried only after every general pattern for the field has failed. These
// entries are sample-specific by nature; the table is append-only so the
// fragile entries stay auditable in one place.
type literalFallback struct {
	field models.Field
	re    *regexp.Regexp
	value string
}

// patternTable is a declarative per-provider extraction table, applied by a
// single shared first-match-wins routine.
type patternTable struct {
	fields  []fieldPattern
	triples []triplePattern
}

// apply runs the table over the text. For each field the candidate patterns
// are tried in table order and the first successful match wins; fields with no
// match are simply absent from the result. Extraction never fails outright.
func (t *patternTable) apply(text string) map[models.Field]string {
	out := make(map[models.Field]string)
	for _, fp := range t.fields {
		if _, ok := out[fp.field]; ok {
			continue
		}
		m := fp.re.FindStringSubmatch(text)
		if m == nil || fp.group >= len(m) {
			continue
		}
		if v := strings.TrimSpace(m[fp.group]); v != "" {
			out[fp.field] = v
		}
	}
	for _, tp := range t.triples {
		if _, ok := out[models.FieldPostalCode]; ok {
			break
		}
		m := tp.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		out[models.FieldPostalCode] = strings.TrimSpace(m[tp.postal])
		out[models.FieldCity] = strings.TrimSpace(m[tp.city])
		out[models.FieldProvince] = strings.TrimSpace(m[tp.prov])
		break
	}
	return out
}

// applyLiteralFallbacks fills fields the general patterns missed with known
// sample values. A field already present is never overwritten.
func applyLiteralFallbacks(raw map[models.Field]string, fallbacks []literalFallback, text string) {
	for _, fb := range fallbacks {
		if _, ok := raw[fb.field]; ok {
			continue
		}
		if fb.re.MatchString(text) {
			raw[fb.field] = fb.value
		}
	}
}

// splitClientName derives firstName/lastName from a captured clientName.
// Single-token names are left alone: deriving only one half of a name would
// be worse than deriving neither.
func splitClientName(raw map[models.Field]string) {
	name, ok := raw[models.FieldClientName]
	if !ok {
		return
	}
	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return
	}
	if _, ok := raw[models.FieldFirstName]; !ok {
		raw[models.FieldFirstName] = tokens[0]
	}
	if _, ok := raw[models.FieldLastName]; !ok {
		raw[models.FieldLastName] = strings.Join(tokens[1:], " ")
	}
}

// consumptionFields get their grouping punctuation stripped at extraction
// time; values that do not survive as numbers are dropped rather than kept as
// sentinels.
var consumptionFields = []models.Field{
	models.FieldElectricConsumption,
	models.FieldGasConsumption,
}

func cleanConsumption(raw map[models.Field]string) {
	for _, f := range consumptionFields {
		v, ok := raw[f]
		if !ok {
			continue
		}
		cleaned := strings.NewReplacer(".", "", " ", "").Replace(v)
		// Decimal commas are deferred to validation; everything else must be
		// digits or the capture was junk.
		probe := strings.ReplaceAll(cleaned, ",", "")
		if _, err := strconv.Atoi(probe); err != nil {
			delete(raw, f)
			continue
		}
		raw[f] = cleaned
	}
}

// ExtractGeneric applies the provider-agnostic pattern table to raw bill text
// and returns the raw field map. Values are unvalidated; see Validate.
func ExtractGeneric(text string) map[models.Field]string {
	raw := genericTable.apply(text)
	splitClientName(raw)
	cleanConsumption(raw)
	return raw
}
