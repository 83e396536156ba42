package usecase

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romannumeral/go-backend/internal/domains/romannumeral/model"
)

func TestConvertSuccess(t *testing.T) {
	cases := map[string]string{
		"3999": "MMMCMXCIX",
		"123":  "CXXIII",
		"1000": "M",
		"+7":   "VII",
	}
	for raw, want := range cases {
		res := Convert(raw)
		require.True(t, res.OK(), "Convert(%q) failed: %+v", raw, res.Failure)
		assert.Equal(t, raw, res.Input)
		assert.Equal(t, want, res.Output)
	}
}

func TestConvertFailureKinds(t *testing.T) {
	cases := map[string]model.ErrorKind{
		"":      model.KindMissingInput,
		"   ":   model.KindMissingInput,
		"2.5":   model.KindMalformedInteger,
		"ab123": model.KindMalformedInteger,
		"0":     model.KindOutOfRange,
		"4000":  model.KindOutOfRange,
		"-10":   model.KindOutOfRange,
	}
	for raw, want := range cases {
		res := Convert(raw)
		require.False(t, res.OK(), "Convert(%q) should fail", raw)
		assert.Equal(t, want, res.Failure.Kind, "Convert(%q)", raw)
		assert.Empty(t, res.Output)
		assert.NotEmpty(t, res.Failure.Message)
		assert.Contains(t, res.Failure.Message, "["+raw+"]")
	}
}

func TestConvertFailureIsAnError(t *testing.T) {
	res := Convert("4000")
	var err error = res.Failure
	var failure *model.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, 3, failure.Kind.Code())
	assert.Equal(t, "out_of_range", failure.Kind.String())
}

func TestServiceConvertIsSafeForConcurrentUse(t *testing.T) {
	svc := NewService()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := svc.Convert("1994"); got.Output != "MCMXCIV" {
					t.Errorf("unexpected output %q", got.Output)
					return
				}
			}
		}()
	}
	wg.Wait()
}
