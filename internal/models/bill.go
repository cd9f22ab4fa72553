package models

// Field names a bill extraction can produce. The extraction pipeline keys its
// raw and cleaned maps with these; a field absent from a map means
// "not extracted", never zero/empty.
type Field string

const (
	// Identity
	FieldFirstName  Field = "firstName"
	FieldLastName   Field = "lastName"
	FieldClientName Field = "clientName"
	FieldFiscalCode Field = "fiscalCode"
	FieldVATNumber  Field = "vatNumber"
	FieldCompany    Field = "company"

	// Location
	FieldAddress    Field = "address"
	FieldCity       Field = "city"
	FieldProvince   Field = "province"
	FieldPostalCode Field = "postalCode"

	// Utility identifiers
	FieldPOD            Field = "pod"
	FieldPDR            Field = "pdr"
	FieldCustomerNumber Field = "customerNumber"

	// Consumption / contract
	FieldElectricConsumption Field = "electricConsumption"
	FieldGasConsumption      Field = "gasConsumption"
	FieldPowerCommitted      Field = "powerCommitted"
	FieldSupplier            Field = "supplier"
	FieldContractNumber      Field = "contractNumber"
	FieldBillDate            Field = "billDate"
	FieldFromDate            Field = "fromDate"
	FieldToDate              Field = "toDate"

	// Derived / meta
	FieldProvider Field = "provider"
	FieldBillType Field = "billType"
)

// Bill type values derived from which supply-point identifiers are present.
const (
	BillTypeElectric = "energia_elettrica"
	BillTypeGas      = "gas"
	BillTypeDualFuel = "dual_fuel"
)

// ExtractionResult is the outcome of one extraction call. Data contains only
// fields that passed validation; values are strings, ints (consumption) or
// decimal.Decimal (committed power). The result is created fresh per call and
// never persisted by the extraction subsystem: callers show Data to a human
// for review before committing anything to client/utility records.
type ExtractionResult struct {
	Success        bool          `json:"success"`
	Provider       string        `json:"provider"`
	Confidence     int           `json:"confidence"`
	Data           map[Field]any `json:"data"`
	RawTextPreview string        `json:"rawTextPreview,omitempty"`
	Error          string        `json:"error,omitempty"`
}

// Config represents the billscan tool configuration
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Extraction ExtractionConfig `yaml:"extraction"`
	PDF        PDFConfig        `yaml:"pdf"`
}

// LogConfig controls structured logging
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// ExtractionConfig holds operational knobs for the extraction pipeline.
// Pattern tables, validation rules and score weights are fixed in code: they
// are part of the extraction contract, not configuration.
type ExtractionConfig struct {
	PreviewChars int `yaml:"preview_chars"` // length of RawTextPreview (default 300)
}

// PDFConfig controls the PDF text reader
type PDFConfig struct {
	MaxPages int `yaml:"max_pages"` // page cap per document (default 20)
}
