package validation

// SchemaBaseURL is the $id prefix of the embedded schemas.
// A schema with $id SchemaBaseURL+"schemas/x.json" lives at schemas/x.json.
const SchemaBaseURL = "https://stockpile.local/"

// Embedded schema names
const (
	InventoriesSchema = "schemas/inventories.schema.json"
	IDFormatSchema    = "schemas/id-format.schema.json"
)

// Error messages
const (
	ErrMsgReadDataFile      = "failed to read data file"
	ErrMsgLoadSchema        = "failed to load schema"
	ErrMsgParseData         = "failed to parse JSON data"
	ErrMsgEncodeData        = "failed to encode data for validation"
	ErrMsgReadSchema        = "failed to read schema file"
	ErrMsgAddSchemaResource = "failed to add schema resource"
	ErrMsgCompileSchema     = "failed to compile schema"
	ErrMsgSchemaNotFound    = "schema file not found"
	ErrMsgSchemaFailed      = "schema validation failed"
	ErrMsgUnknownSchemaURL  = "schema reference outside the embedded schemas"
)
