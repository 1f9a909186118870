package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldIndex     = "index"
	FieldCount     = "count"
	FieldBackend   = "backend"
)

// Standard component names.
const (
	ComponentApp    = "app"
	ComponentHTTP   = "http"
	ComponentLedger = "ledger"
	ComponentStore  = "store"
)

// Standard operation names.
const (
	OpAdd      = "add"
	OpDelete   = "delete"
	OpClear    = "clear"
	OpLoad     = "load"
	OpSave     = "save"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
