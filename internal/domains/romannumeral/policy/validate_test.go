package policy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romannumeral/go-backend/internal/domains/romannumeral/model"
)

func TestValidateQuery(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    int
		wantErr error
	}{
		{name: "empty", raw: "", wantErr: ErrMissingInput},
		{name: "spaces", raw: "   ", wantErr: ErrMissingInput},
		{name: "tabs and newlines", raw: "\t\n", wantErr: ErrMissingInput},
		{name: "control characters", raw: "\x01\x1f", wantErr: ErrMissingInput},
		{name: "no-break space", raw: "\u00a0", wantErr: ErrMalformedInteger},
		{name: "ideographic space", raw: "\u3000", wantErr: ErrMalformedInteger},
		{name: "decimal", raw: "2.5", wantErr: ErrMalformedInteger},
		{name: "letters prefix", raw: "ab123", wantErr: ErrMalformedInteger},
		{name: "letters suffix", raw: "123ab", wantErr: ErrMalformedInteger},
		{name: "leading space", raw: " 12", wantErr: ErrMalformedInteger},
		{name: "trailing space", raw: "12 ", wantErr: ErrMalformedInteger},
		{name: "thousands separator", raw: "1,000", wantErr: ErrMalformedInteger},
		{name: "underscore separator", raw: "1_000", wantErr: ErrMalformedInteger},
		{name: "hex", raw: "0x10", wantErr: ErrMalformedInteger},
		{name: "double sign", raw: "--2", wantErr: ErrMalformedInteger},
		{name: "overflows int32", raw: "99999999999", wantErr: ErrMalformedInteger},
		{name: "zero", raw: "0", wantErr: ErrOutOfRange},
		{name: "above max", raw: "4000", wantErr: ErrOutOfRange},
		{name: "negative", raw: "-10", wantErr: ErrOutOfRange},
		{name: "int32 max", raw: "2147483647", wantErr: ErrOutOfRange},
		{name: "min", raw: "1", want: 1},
		{name: "max", raw: "3999", want: 3999},
		{name: "plus sign", raw: "+12", want: 12},
		{name: "leading zeros", raw: "0042", want: 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateQuery(tc.raw)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateQueryParsePrecedesRange(t *testing.T) {
	// Would be out of range if it parsed at all.
	_, err := ValidateQuery("-99999x")
	assert.ErrorIs(t, err, ErrMalformedInteger)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, model.KindMissingInput, KindOf(ErrMissingInput))
	assert.Equal(t, model.KindMalformedInteger, KindOf(fmt.Errorf("wrapped: %w", ErrMalformedInteger)))
	assert.Equal(t, model.KindOutOfRange, KindOf(ErrOutOfRange))
	assert.Equal(t, model.KindOutOfRange, KindOf(&model.Failure{Kind: model.KindOutOfRange, Message: "x"}))
	assert.Equal(t, model.KindUnexpected, KindOf(errors.New("boom")))
	assert.Equal(t, model.KindUnexpected, KindOf(nil))
}

func TestFailureMessage(t *testing.T) {
	msg := FailureMessage("4000", model.KindOutOfRange)
	assert.Equal(t,
		"Input query value [4000] is out of supported range. Please give an integer value between 1 and 3999. Example: /romannumeral?query=123",
		msg)

	for _, kind := range []model.ErrorKind{model.KindUnexpected, model.KindMissingInput, model.KindMalformedInteger, model.KindOutOfRange} {
		msg := FailureMessage("raw", kind)
		assert.Contains(t, msg, "[raw]")
		assert.Contains(t, msg, "between 1 and 3999")
		assert.Contains(t, msg, "?query=123")
	}
}
