package extraction

import (
	"unicode/utf8"

	"github.com/MetodiPro/nexus-crm-sub000/internal/models"
)

// DefaultPreviewChars is how much raw text ExtractionResult carries back for
// human review.
const DefaultPreviewChars = 300

// Service is the extraction pipeline entry point. It holds no mutable state
// and is safe for concurrent use: every Extract call is an independent pure
// computation over its input.
type Service struct {
	previewChars int
}

// NewService creates the extraction orchestrator. previewChars <= 0 selects
// the default preview length.
func NewService(previewChars int) *Service {
	if previewChars <= 0 {
		previewChars = DefaultPreviewChars
	}
	return &Service{previewChars: previewChars}
}

// Extract runs the full pipeline on raw bill text: provider detection,
// generic or ENEL-specialized extraction, validation, confidence scoring.
//
// "Nothing extracted" is success with empty data and confidence 0, not
// failure; Success=false is reserved for caller contract violations (input
// that is not valid UTF-8 text). Extract never panics.
func (s *Service) Extract(text string) *models.ExtractionResult {
	if !utf8.ValidString(text) {
		return &models.ExtractionResult{
			Success:  false,
			Provider: string(ProviderUnknown),
			Data:     map[models.Field]any{},
			Error:    "input is not valid UTF-8 text",
		}
	}

	provider := DetectProvider(text)

	var raw map[models.Field]string
	var opts Options
	if IsEnelBill(text) {
		provider = ProviderEnel
		raw = ExtractEnel(text)
		opts.PDRExactDigits = 14
	} else {
		raw = ExtractGeneric(text)
	}

	clean := Validate(raw, opts)
	deriveBillType(clean)
	confidence := Score(clean)

	return &models.ExtractionResult{
		Success:        true,
		Provider:       string(provider),
		Confidence:     confidence,
		Data:           clean,
		RawTextPreview: preview(text, s.previewChars),
	}
}

// deriveBillType recomputes billType from the validated identifiers, so the
// field never survives a POD/PDR that validation dropped.
func deriveBillType(clean map[models.Field]any) {
	_, hasPOD := clean[models.FieldPOD]
	_, hasPDR := clean[models.FieldPDR]
	switch {
	case hasPOD && hasPDR:
		clean[models.FieldBillType] = models.BillTypeDualFuel
	case hasPOD:
		clean[models.FieldBillType] = models.BillTypeElectric
	case hasPDR:
		clean[models.FieldBillType] = models.BillTypeGas
	default:
		delete(clean, models.FieldBillType)
	}
}

func preview(text string, max int) string {
	if len(text) <= max {
		return text
	}
	// Cut on a rune boundary.
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
