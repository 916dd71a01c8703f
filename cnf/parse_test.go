package cnf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSets(t *testing.T) {
	input := `1 -2
2 3

-1
1
`
	sets, err := ReadSets(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, sets, 2)

	assert.Equal(t, 3, sets[0].NumVars)
	assert.Equal(t, []Clause{{1, -2}, {2, 3}}, sets[0].Clauses)

	assert.Equal(t, 1, sets[1].NumVars)
	assert.Equal(t, []Clause{{-1}, {1}}, sets[1].Clauses)
}

func TestReadSetsSkipsExtraBlankLines(t *testing.T) {
	sets, err := ReadSets(strings.NewReader("\n\n1 2\n\n\n-1\n\n"))
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, []Clause{{1, 2}}, sets[0].Clauses)
	assert.Equal(t, []Clause{{-1}}, sets[1].Clauses)
}

func TestReadSetsErrors(t *testing.T) {
	_, err := ReadSets(strings.NewReader("1 x 2\n"))
	require.Error(t, err)

	_, err = ReadSets(strings.NewReader("1 0 2\n"))
	require.Error(t, err)
	var malformed *MalformedInputError
	assert.ErrorAs(t, err, &malformed)
}

func TestWriteSetsRoundTrip(t *testing.T) {
	in, err := ReadSets(strings.NewReader("1 -2\n2 3\n\n-1\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSets(&buf, in))

	out, err := ReadSets(&buf)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].Clauses, out[i].Clauses)
	}
}

func TestMeasure(t *testing.T) {
	f, err := New(4, [][]int{{1, 2}, {-3}, {4, -1}})
	require.NoError(t, err)
	s := Measure(f)
	assert.Equal(t, Stats{Vars: 4, Clauses: 3, Ratio: 0.75}, s)
	assert.Equal(t, "4 vars, 3 clauses, ratio 0.75", s.String())
}
