package policy

import (
	"fmt"

	"romannumeral/go-backend/internal/domains/romannumeral/model"
)

const UsageExample = "/romannumeral?query=123"

func FailureMessage(raw string, kind model.ErrorKind) string {
	var rule string
	switch kind {
	case model.KindMissingInput:
		rule = "is missing or only contains whitespace"
	case model.KindMalformedInteger:
		rule = "does not have correct integer format"
	case model.KindOutOfRange:
		rule = "is out of supported range"
	default:
		rule = "cannot be parsed into integer value"
	}
	return fmt.Sprintf(
		"Input query value [%s] %s. Please give an integer value between %d and %d. Example: %s",
		raw, rule, MinValue, MaxValue, UsageExample,
	)
}
