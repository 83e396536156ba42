package model

// ErrorKind classifies a failed conversion. The numeric value is the stable
// errorCode exposed to clients.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindMissingInput
	KindMalformedInteger
	KindOutOfRange
)

func (k ErrorKind) Code() int {
	return int(k)
}

func (k ErrorKind) String() string {
	switch k {
	case KindMissingInput:
		return "missing_input"
	case KindMalformedInteger:
		return "malformed_integer"
	case KindOutOfRange:
		return "out_of_range"
	default:
		return "unexpected"
	}
}

// Failure carries exactly one kind and a non-empty, client-facing message.
type Failure struct {
	Kind    ErrorKind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// ConversionResult is either a success (Failure == nil, Output set) or a
// failure. It is built once and returned by value.
type ConversionResult struct {
	Input   string
	Output  string
	Failure *Failure
}

func Success(input, output string) ConversionResult {
	return ConversionResult{Input: input, Output: output}
}

func Failed(input string, kind ErrorKind, message string) ConversionResult {
	return ConversionResult{Input: input, Failure: &Failure{Kind: kind, Message: message}}
}

func (r ConversionResult) OK() bool {
	return r.Failure == nil
}
