package models

import (
	"encoding/json"
	"testing"
)

// The result is consumed by the CRM frontend for manual review; the JSON
// shape is part of the boundary.
func TestExtractionResultJSON(t *testing.T) {
	res := ExtractionResult{
		Success:    true,
		Provider:   "enel",
		Confidence: 83,
		Data: map[Field]any{
			FieldFiscalCode:          "NGLDIA74A56I293T",
			FieldElectricConsumption: 50729,
		},
		RawTextPreview: "Enel Energia S.p.A.",
	}

	out, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["provider"] != "enel" {
		t.Errorf("provider = %v, want enel", decoded["provider"])
	}
	if decoded["confidence"] != float64(83) {
		t.Errorf("confidence = %v, want 83", decoded["confidence"])
	}
	data := decoded["data"].(map[string]any)
	if data["fiscalCode"] != "NGLDIA74A56I293T" {
		t.Errorf("data.fiscalCode = %v", data["fiscalCode"])
	}
	if _, ok := decoded["error"]; ok {
		t.Error("error key present on success result, want omitted")
	}
}
