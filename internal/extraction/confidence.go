package extraction

import (
	"strings"

	"github.com/MetodiPro/nexus-crm-sub000/internal/models"
)

// fieldWeights is part of the scoring contract: the confidence of a cleaned
// map must be recomputable from the map alone, so these values are fixed.
// Identifiers and the fiscal code dominate because they make the record
// directly usable; contact and period fields only corroborate.
var fieldWeights = map[models.Field]int{
	models.FieldPOD:        18,
	models.FieldPDR:        18,
	models.FieldFiscalCode: 18,
	models.FieldVATNumber:  12,

	models.FieldCustomerNumber: 8,
	models.FieldClientName:     6,
	models.FieldFirstName:      3,
	models.FieldLastName:       3,
	models.FieldCompany:        4,

	models.FieldAddress:    6,
	models.FieldCity:       4,
	models.FieldProvince:   3,
	models.FieldPostalCode: 4,

	models.FieldSupplier:            3,
	models.FieldElectricConsumption: 6,
	models.FieldGasConsumption:      6,
	models.FieldPowerCommitted:      3,
	models.FieldContractNumber:      4,
	models.FieldBillDate:            3,
	models.FieldFromDate:            3,
	models.FieldToDate:              3,

	// provider and billType are derived metadata, not extraction evidence.
}

// Coherence bonuses for field combinations worth more than their parts.
const (
	bonusNameCoherent  = 5  // firstName+lastName agree with clientName
	bonusAddressTriple = 5  // postalCode+city+province all present
	bonusIdentified    = 10 // supply-point identifier plus fiscal code
)

// Score assigns a 0-100 confidence to a cleaned field map: a fixed weight per
// present field, plus coherence bonuses, clamped to 100. Pure and
// order-independent over the map.
func Score(cleaned map[models.Field]any) int {
	score := 0
	for field := range cleaned {
		score += fieldWeights[field]
	}

	if namePartsCoherent(cleaned) {
		score += bonusNameCoherent
	}

	_, hasPostal := cleaned[models.FieldPostalCode]
	_, hasCity := cleaned[models.FieldCity]
	_, hasProv := cleaned[models.FieldProvince]
	if hasPostal && hasCity && hasProv {
		score += bonusAddressTriple
	}

	_, hasPOD := cleaned[models.FieldPOD]
	_, hasPDR := cleaned[models.FieldPDR]
	_, hasFiscal := cleaned[models.FieldFiscalCode]
	if (hasPOD || hasPDR) && hasFiscal {
		score += bonusIdentified
	}

	if score > 100 {
		score = 100
	}
	return score
}

// namePartsCoherent reports whether firstName, lastName and clientName are all
// present and mutually consistent.
func namePartsCoherent(cleaned map[models.Field]any) bool {
	first, ok1 := cleaned[models.FieldFirstName].(string)
	last, ok2 := cleaned[models.FieldLastName].(string)
	full, ok3 := cleaned[models.FieldClientName].(string)
	if !ok1 || !ok2 || !ok3 {
		return false
	}
	return strings.EqualFold(full, first+" "+last)
}
