package train

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadExamples_OptionalAmount(t *testing.T) {
	csv := "title,amount,category\nuber trip,120.50,cab\nmorning chai,,snacks\n"

	examples, err := readExamples(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, examples, 2)

	require.NotNil(t, examples[0].Amount)
	assert.Equal(t, "120.5", examples[0].Amount.String())
	assert.Equal(t, "cab", examples[0].Category)

	assert.Nil(t, examples[1].Amount)
	assert.Equal(t, "morning chai", examples[1].Title)
	assert.Equal(t, "snacks", examples[1].Category)
}

func TestReadExamples_NoAmountColumn(t *testing.T) {
	csv := "title,category\nuber trip,cab\nmorning chai,snacks\n"

	examples, err := readExamples(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, examples, 2)
	assert.Nil(t, examples[0].Amount)
	assert.Nil(t, examples[1].Amount)
}

func TestReadExamples_MalformedAmount(t *testing.T) {
	csv := "title,amount,category\nuber trip,12x.50,cab\n"

	_, err := readExamples(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadExamples_WhitespaceAmount(t *testing.T) {
	csv := "title,amount,category\nmorning chai,   ,snacks\n"

	examples, err := readExamples(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Nil(t, examples[0].Amount)
}
