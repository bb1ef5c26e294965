package customid

// Format tokens
const (
	DateTokenYear        = "yyyy"
	DateTokenMonth       = "mm"
	DateTokenDay         = "dd"
	DateTokenDayOfYear   = "ddd"
	RandomTokenHex20     = "X5"
	RandomTokenDec20     = "D6"
	RandomTokenHex32     = "X8"
	RandomTokenDec32     = "D10"
	DefaultSequenceWidth = 1
	MaxSequenceWidth     = 10
)

// Fixed shapes
const (
	YearWidth          = 4
	Random6DigitWidth  = 6
	Random9DigitWidth  = 9
	Random20BitHexLen  = 5
	Random20BitDecLen  = 6
	Random32BitHexLen  = 8
	Random32BitDecLen  = 10
	GUIDLength         = 36
	maxInt64Digits     = 19
	random6DigitLimit  = 1_000_000
	random9DigitLimit  = 1_000_000_000
	random20BitDecimal = 1_000_000
	random32BitDecimal = 1 << 32
)

// Pattern placeholders
const (
	PatternSequenceChar = "#"
	PatternYear         = "YYYY"
	PatternDecimalChar  = "9"
	PatternHexChar      = "X"
	PatternGUID         = "XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX"
)

// Segment issue messages
const (
	IssueMsgUnknownType        = "unknown segment type"
	IssueMsgFixedValueRequired = "fixed segment requires a non-empty value"
	IssueMsgDateFormat         = "date format must start with yyyy, mm, dd or ddd"
	IssueMsgSequenceFormat     = "sequence format must be D1 through D10, optionally followed by a suffix"
	IssueMsgRandom20Format     = "random_20bit format must be X5 or D6, optionally followed by a suffix"
	IssueMsgRandom32Format     = "random_32bit format must be X8 or D10, optionally followed by a suffix"
)

// Edit rejection messages
const (
	EditMsgLengthMismatch     = "length mismatch: expected %d characters, got %d"
	EditMsgOriginalMismatch   = "current id does not match the inventory's id format"
	EditMsgFixedChanged       = "fixed text %q at position %d cannot be changed"
	EditMsgNotEditable        = "segment %d (%s) cannot be changed because the id format has no sequence segment"
	EditMsgClassMismatch      = "segment %d (%s) at position %d must contain %s"
	EditMsgSequenceOutOfRange = "sequence value %q is out of range"
	EditMsgNoChange           = "custom id unchanged"
	EditMsgValid              = "custom id is valid"
	EditMsgSequenceUpdated    = "custom id is valid, sequence set to %d"
	MatchMsgShape             = "custom id length does not fit the inventory's id format"
	MatchMsgEmpty             = "custom id must not be empty"
)

// Error messages
const (
	ErrMsgNegativeSequence = "sequence value must not be negative"
	ErrMsgRandomSource     = "failed to read random source"
)
