package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	// National French format defaults to the FR region
	got, err := Normalize("01 42 68 53 00", "")
	require.NoError(t, err)
	assert.Equal(t, "+33142685300", got)

	// Already in international format
	got, err = Normalize("+33 1 42 68 53 00", "FR")
	require.NoError(t, err)
	assert.Equal(t, "+33142685300", got)
}

func TestNormalize_Invalid(t *testing.T) {
	_, err := Normalize("", "FR")
	assert.Error(t, err)

	_, err = Normalize("12", "FR")
	assert.Error(t, err)
}

func TestNormalizeOrKeep(t *testing.T) {
	assert.Equal(t, "+33142685300", NormalizeOrKeep("01 42 68 53 00", "FR"))

	// Unparseable input passes through untouched
	assert.Equal(t, "poste 12", NormalizeOrKeep("poste 12", "FR"))
}
