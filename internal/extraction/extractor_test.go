package extraction

import (
	"testing"

	"github.com/MetodiPro/nexus-crm-sub000/internal/models"
)

const genericBillText = `Edison Energia S.p.A.
Intestatario fornitura: Mario Rossi
Codice Fiscale RSSMRA80A01H501U
Partita IVA 01234567890
Codice cliente 7654321
POD IT012E45678901
PDR 09951234567890
Indirizzo di fornitura: Via Roma 42
20121 Milano MI
Consumo annuo 1.250 kWh
Consumo gas 980 Smc
Potenza impegnata 3,3 kW
Data emissione 05/02/2024
Periodo dal 01/12/2023 al 31/01/2024
`

func TestExtractGeneric(t *testing.T) {
	raw := ExtractGeneric(genericBillText)

	want := map[models.Field]string{
		models.FieldClientName:          "Mario Rossi",
		models.FieldFirstName:           "Mario",
		models.FieldLastName:            "Rossi",
		models.FieldFiscalCode:          "RSSMRA80A01H501U",
		models.FieldVATNumber:           "01234567890",
		models.FieldCustomerNumber:      "7654321",
		models.FieldPOD:                 "IT012E45678901",
		models.FieldPDR:                 "09951234567890",
		models.FieldAddress:             "Via Roma 42",
		models.FieldPostalCode:          "20121",
		models.FieldCity:                "Milano",
		models.FieldProvince:            "MI",
		models.FieldElectricConsumption: "1250",
		models.FieldGasConsumption:      "980",
		models.FieldPowerCommitted:      "3,3",
		models.FieldBillDate:            "05/02/2024",
		models.FieldFromDate:            "01/12/2023",
		models.FieldToDate:              "31/01/2024",
	}
	for field, wantVal := range want {
		if got, ok := raw[field]; !ok {
			t.Errorf("field %q missing, want %q", field, wantVal)
		} else if got != wantVal {
			t.Errorf("field %q = %q, want %q", field, got, wantVal)
		}
	}
}

func TestExtractGenericMissingFieldsAbsent(t *testing.T) {
	raw := ExtractGeneric("Nessun dato utile in questo documento.")
	for _, f := range []models.Field{models.FieldPOD, models.FieldPDR, models.FieldFiscalCode} {
		if v, ok := raw[f]; ok {
			t.Errorf("field %q = %q, want absent", f, v)
		}
	}
}

func TestSplitClientName(t *testing.T) {
	tests := []struct {
		name      string
		raw       map[models.Field]string
		wantFirst string
		wantLast  string
		wantSplit bool
	}{
		{
			name:      "two tokens",
			raw:       map[models.Field]string{models.FieldClientName: "IDA ANGELINO"},
			wantFirst: "IDA", wantLast: "ANGELINO", wantSplit: true,
		},
		{
			name:      "three tokens keeps remainder as last name",
			raw:       map[models.Field]string{models.FieldClientName: "Anna Maria Verdi"},
			wantFirst: "Anna", wantLast: "Maria Verdi", wantSplit: true,
		},
		{
			// Single-token names must not be half-derived.
			name:      "single token untouched",
			raw:       map[models.Field]string{models.FieldClientName: "Condominio"},
			wantSplit: false,
		},
		{
			name:      "no client name",
			raw:       map[models.Field]string{},
			wantSplit: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splitClientName(tt.raw)
			first, okF := tt.raw[models.FieldFirstName]
			last, okL := tt.raw[models.FieldLastName]
			if tt.wantSplit {
				if !okF || !okL {
					t.Fatalf("split missing: first=%v last=%v", okF, okL)
				}
				if first != tt.wantFirst || last != tt.wantLast {
					t.Errorf("split = (%q, %q), want (%q, %q)", first, last, tt.wantFirst, tt.wantLast)
				}
			} else if okF || okL {
				t.Errorf("unexpected split: first=%q last=%q", first, last)
			}
		})
	}
}

func TestCleanConsumption(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		keep bool
	}{
		{"grouping dots stripped", "50.729", "50729", true},
		{"plain digits", "980", "980", true},
		{"decimal comma deferred", "1.234,5", "1234,5", true},
		{"junk dropped", "n.d.", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[models.Field]string{models.FieldElectricConsumption: tt.in}
			cleanConsumption(raw)
			got, ok := raw[models.FieldElectricConsumption]
			if ok != tt.keep {
				t.Fatalf("kept=%v, want %v", ok, tt.keep)
			}
			if tt.keep && got != tt.want {
				t.Errorf("cleaned %q = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// The address triple fills three fields from one match; the parts must never
// come from different lines of the document.
func TestAddressTripleAtomic(t *testing.T) {
	raw := ExtractGeneric("spett.le condominio\n00184 Roma RM\naltro testo 12345\n")
	if raw[models.FieldPostalCode] != "00184" || raw[models.FieldCity] != "Roma" || raw[models.FieldProvince] != "RM" {
		t.Errorf("triple = (%q, %q, %q), want (00184, Roma, RM)",
			raw[models.FieldPostalCode], raw[models.FieldCity], raw[models.FieldProvince])
	}
}
