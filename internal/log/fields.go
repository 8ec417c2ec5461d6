package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldBackend    = "backend"
	FieldKey        = "key"
	FieldDate       = "date"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldWeek       = "week"
	FieldEntryCount = "entry_count"
	FieldGoal       = "goal"
	FieldFilename   = "filename"
	FieldPort       = "port"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentSheets  = "sheets"
	ComponentExport  = "export"
)
