package extraction

import (
	"regexp"

	"github.com/MetodiPro/nexus-crm-sub000/internal/models"
)

// genericTable holds the provider-agnostic patterns, tried in order per field.
// All quantifiers are bounded: the input is arbitrary uploaded-document text.
var genericTable = patternTable{
	fields: []fieldPattern{
		// Identity
		{models.FieldClientName, regexp.MustCompile(`(?i)intestatario(?:\s+(?:della\s+)?fornitura)?[:\s]{1,3}([A-Za-zÀ-ÖØ-öø-ÿ'. ]{3,60}?)(?:[,\n]|$)`), 1},
		{models.FieldClientName, regexp.MustCompile(`(?i)gentile\s+([A-Za-zÀ-ÖØ-öø-ÿ' ]{2,60}?)(?:\s*[,\n]|$)`), 1},
		{models.FieldClientName, regexp.MustCompile(`(?i)\bintestata?\s+a[:\s]{1,3}([A-Za-zÀ-ÖØ-öø-ÿ' ]{3,60}?)(?:[,\n]|$)`), 1},
		{models.FieldFiscalCode, regexp.MustCompile(`(?i)codice\s+fiscale[:\s]{0,3}([A-Z0-9]{16})\b`), 1},
		{models.FieldFiscalCode, regexp.MustCompile(`\b([A-Z]{6}\d{2}[A-Z]\d{2}[A-Z]\d{3}[A-Z])\b`), 1},
		{models.FieldVATNumber, regexp.MustCompile(`(?i)partita\s+iva[:\s]{0,3}(\d{11})\b`), 1},
		{models.FieldVATNumber, regexp.MustCompile(`(?i)\bp\.?\s?iva[:\s]{0,3}(\d{11})\b`), 1},
		{models.FieldCompany, regexp.MustCompile(`(?i)ragione\s+sociale[:\s]{0,3}([^\n]{3,80}?)\s*(?:\n|$)`), 1},

		// Utility identifiers
		{models.FieldPOD, regexp.MustCompile(`(?i)(?:codice\s+)?pod[:\s]{0,3}(IT\s?\d{3}\s?[A-Z]\s?\d{8})\b`), 1},
		{models.FieldPOD, regexp.MustCompile(`\b(IT\d{3}[A-Z]\d{8})\b`), 1},
		{models.FieldPDR, regexp.MustCompile(`(?i)(?:codice\s+)?pdr[:\s]{0,3}(\d[\d ]{6,12}\d)`), 1},
		{models.FieldCustomerNumber, regexp.MustCompile(`(?i)n(?:umero)?[°º.]?\s*cliente[:\s]{0,3}(\d{5,12})\b`), 1},
		{models.FieldCustomerNumber, regexp.MustCompile(`(?i)codice\s+cliente[:\s]{0,3}(\d{5,12})\b`), 1},

		// Location
		{models.FieldAddress, regexp.MustCompile(`(?i)indirizzo(?:\s+di\s+fornitura)?[:\s]{0,3}((?:via|viale|corso|piazza|largo|vicolo|strada|contrada)\b[^\n]{3,80})`), 1},
		{models.FieldAddress, regexp.MustCompile(`(?i)\b((?:via|viale|corso|piazza|largo|vicolo|strada|contrada)\s+[A-Za-zÀ-ÖØ-öø-ÿ'. ]{2,50}\s+\d{1,4}(?:/[A-Za-z])?)\b`), 1},

		// Consumption / contract
		{models.FieldElectricConsumption, regexp.MustCompile(`(?i)consumo[^\d\n]{0,40}([\d.,]{1,10})\s*kwh`), 1},
		{models.FieldElectricConsumption, regexp.MustCompile(`(?i)([\d.,]{1,10})\s*kwh\b`), 1},
		{models.FieldGasConsumption, regexp.MustCompile(`(?i)consumo[^\d\n]{0,40}([\d.,]{1,10})\s*smc`), 1},
		{models.FieldGasConsumption, regexp.MustCompile(`(?i)([\d.,]{1,10})\s*smc\b`), 1},
		{models.FieldPowerCommitted, regexp.MustCompile(`(?i)potenza\s+(?:contrattualmente\s+)?impegnata[^\d\n]{0,20}([\d.,]{1,6})\s*kw`), 1},
		{models.FieldPowerCommitted, regexp.MustCompile(`(?i)potenza\s+disponibile[^\d\n]{0,20}([\d.,]{1,6})\s*kw`), 1},
		{models.FieldSupplier, regexp.MustCompile(`(?i)fornitore[:\s]{0,3}([^\n]{3,60}?)\s*(?:\n|$)`), 1},
		{models.FieldSupplier, regexp.MustCompile(`(?i)societ[àa]\s+di\s+vendita[:\s]{0,3}([^\n]{3,60}?)\s*(?:\n|$)`), 1},
		{models.FieldContractNumber, regexp.MustCompile(`(?i)(?:numero|n[°º.]?)\s*contratto[:\s]{0,3}([A-Z0-9][A-Z0-9/-]{2,19})\b`), 1},
		{models.FieldContractNumber, regexp.MustCompile(`(?i)contratto\s+n[°º.]?\s{0,3}([A-Z0-9][A-Z0-9/-]{2,19})\b`), 1},
		{models.FieldBillDate, regexp.MustCompile(`(?i)data\s+(?:di\s+)?emissione[:\s]{0,3}(\d{2}[/-]\d{2}[/-]\d{4})`), 1},
		{models.FieldBillDate, regexp.MustCompile(`(?i)data\s+fattura[:\s]{0,3}(\d{2}[/-]\d{2}[/-]\d{4})`), 1},
		{models.FieldBillDate, regexp.MustCompile(`(?i)fattura\s+del[:\s]{0,3}(\d{2}[/-]\d{2}[/-]\d{4})`), 1},
		{models.FieldFromDate, regexp.MustCompile(`(?i)\bdal\s+(\d{2}[/-]\d{2}[/-]\d{4})`), 1},
		{models.FieldToDate, regexp.MustCompile(`(?i)\bal\s+(\d{2}[/-]\d{2}[/-]\d{4})`), 1},
	},
	triples: []triplePattern{
		// "81031 Aversa CE" or "20121 Milano (MI)". Case-sensitive: the
		// two-letter province is always printed upper case and a
		// case-insensitive match would swallow ordinary words.
		{regexp.MustCompile(`\b(\d{5})\s+([A-Za-zÀ-ÖØ-öø-ÿ'. ]{2,40}?)\s+\(?([A-Z]{2})(?:\)|\b)`), 1, 2, 3},
	},
}
