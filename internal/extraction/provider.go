package extraction

import "strings"

// Provider tags a bill with the energy company that issued it.
type Provider string

const (
	ProviderEnel     Provider = "enel"
	ProviderEni      Provider = "eni"
	ProviderEdison   Provider = "edison"
	ProviderA2A      Provider = "a2a"
	ProviderIren     Provider = "iren"
	ProviderHera     Provider = "hera"
	ProviderAcea     Provider = "acea"
	ProviderSorgenia Provider = "sorgenia"
	ProviderEngie    Provider = "engie"
	ProviderAxpo     Provider = "axpo"
	ProviderUnknown  Provider = "unknown"
)

// providerKeywords maps bill-text fragments to provider tags. Order matters:
// DetectProvider returns the first keyword found, also for texts that mention
// several providers (comparison documents). That is documented behavior, not
// a bug.
var providerKeywords = []struct {
	keyword  string
	provider Provider
}{
	{"enel energia", ProviderEnel},
	{"enel servizio elettrico", ProviderEnel},
	{"servizio elettrico nazionale", ProviderEnel},
	{"enel", ProviderEnel},
	{"eni gas e luce", ProviderEni},
	{"eni plenitude", ProviderEni},
	{"plenitude", ProviderEni},
	{"edison energia", ProviderEdison},
	{"edison", ProviderEdison},
	{"a2a energia", ProviderA2A},
	{"iren mercato", ProviderIren},
	{"iren luce gas", ProviderIren},
	{"hera comm", ProviderHera},
	{"acea energia", ProviderAcea},
	{"sorgenia", ProviderSorgenia},
	{"engie", ProviderEngie},
	{"axpo", ProviderAxpo},
}

// DetectProvider classifies raw bill text by keyword membership.
// Matching is case-insensitive; unknown text maps to ProviderUnknown.
func DetectProvider(text string) Provider {
	lower := strings.ToLower(text)
	for _, k := range providerKeywords {
		if strings.Contains(lower, k.keyword) {
			return k.provider
		}
	}
	return ProviderUnknown
}

// enelMarkers is the narrower, high-confidence phrase set used to gate the
// ENEL-specialized extractor. Looser than DetectProvider on purpose: a bill
// that merely mentions "enel" in a footnote should not get the specialized
// pattern table.
var enelMarkers = []string{
	"enel energia",
	"enel servizio elettrico",
	"enel.it",
	"enel spa",
	"enel s.p.a",
}

// IsEnelBill reports whether the text carries an ENEL layout marker.
func IsEnelBill(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range enelMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
