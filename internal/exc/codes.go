package exc

const (
	CodeUnknownFatal                  = "M0000"
	CodeFileNotFound                  = "M0001"
	CodeUnsuportedFileSystemOperation = "M0002"
	CodePermissionDenied              = "M0003"
	CodeUnsupportedFileFormat         = "M0004"
)

// Syntax error codes raised by the SDL parser.
const (
	CodeExpected            = "S0001"
	CodeUnexpectedCharacter = "S0002"
	CodeUnexpectedNode      = "S0003"
	CodeInputFieldArguments = "S0004"
	CodeInvalidNumber       = "S0005"
	CodeInvalidString       = "S0006"
)

var (
	defaultNonFatal = map[string]bool{}
)
