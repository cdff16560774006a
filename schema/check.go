package schema

// CheckKind names a validation rule attached to a leaf node.
type CheckKind string

const (
	CheckMin        CheckKind = "min"
	CheckMax        CheckKind = "max"
	CheckLength     CheckKind = "length"
	CheckMultipleOf CheckKind = "multipleOf"
	CheckInt        CheckKind = "int"
	CheckFinite     CheckKind = "finite"
	CheckStartsWith CheckKind = "startsWith"
	CheckEndsWith   CheckKind = "endsWith"
	CheckIncludes   CheckKind = "includes"
	CheckRegex      CheckKind = "regex"
	CheckIP         CheckKind = "ip"
	CheckDatetime   CheckKind = "datetime"
	CheckEmail      CheckKind = "email"
	CheckURL        CheckKind = "url"
	CheckEmoji      CheckKind = "emoji"
	CheckUUID       CheckKind = "uuid"
	CheckCUID       CheckKind = "cuid"
	CheckCUID2      CheckKind = "cuid2"
	CheckULID       CheckKind = "ulid"

	// Normalizing checks. They change the value, not its constraints.
	CheckTrim        CheckKind = "trim"
	CheckToLowerCase CheckKind = "toLowerCase"
	CheckToUpperCase CheckKind = "toUpperCase"
)

// Check is one validation rule. Which parameters are meaningful depends on Kind:
//
//	min/max/length/multipleOf: Value (+ Inclusive for numeric min/max)
//	startsWith/endsWith/includes: Value (string) (+ Position for includes)
//	regex: Pattern, Flags
//	ip: Version ("v4", "v6" or empty)
//	datetime: Offset, Precision
type Check struct {
	Kind      CheckKind
	Value     any
	Inclusive bool
	Pattern   string
	Flags     string
	Position  *int
	Version   string
	Offset    bool
	Precision *int
	Message   string
}
