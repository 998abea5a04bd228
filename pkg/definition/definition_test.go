package definition_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_LengthModThree(t *testing.T) {
	def, err := definition.Load("testdata/length-mod-3.yaml")
	require.NoError(t, err)

	assert.Equal(t, "length-mod-3", def.Name)
	assert.Equal(t, "aaa", def.Input)
	assert.Equal(t, []domain.StateID{0, 1, 2}, def.StateIDs())
	accept, reject := def.Terminals()
	assert.Equal(t, domain.StateID(3), accept)
	assert.Equal(t, domain.StateID(4), reject)

	tables, err := def.Tables()
	require.NoError(t, err)
	assert.Equal(t, rules.Table{
		domain.Sym('a'): {Move: domain.Right, Next: 1},
		domain.Blank:    {Next: 3},
	}, tables[0])
}

func TestConfig_RunsDefaultInput(t *testing.T) {
	def, err := definition.Load("testdata/length-mod-3.yaml")
	require.NoError(t, err)
	cfg, err := def.Config()
	require.NoError(t, err)

	m, err := cfg.Build()
	require.NoError(t, err)
	res, err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)
	assert.Equal(t, "length-mod-3", res.Machine)
}

func TestLoad_DigitSymbols(t *testing.T) {
	def, err := definition.Load("testdata/binary-suffix.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1"}, def.Alphabet)
	assert.Equal(t, "0101", def.Input)
	runes, err := def.Runes()
	require.NoError(t, err)
	assert.Equal(t, []rune{'0', '1'}, runes)

	cfg, err := def.Config()
	require.NoError(t, err)
	for input, want := range map[string]domain.Outcome{
		"0101":          domain.OutcomeAccepted,
		"1111101010000": domain.OutcomeRejected,
		"1011":          domain.OutcomeRejected,
	} {
		cfg.LoadTape(input)
		m, err := cfg.Build()
		require.NoError(t, err)
		res, err := m.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, res.Outcome, input)
	}
}

func TestParse_WriteAndJSON(t *testing.T) {
	def, err := definition.Parse([]byte(`{
		"accept": 1, "reject": 2,
		"states": [{"id": 0, "transitions": [
			{"read": "a", "write": "blank", "move": "left", "next": 0},
			{"read": "blank", "write": "x", "next": 1}
		]}]
	}`))
	require.NoError(t, err)

	tables, err := def.Tables()
	require.NoError(t, err)
	erase := tables[0][domain.Sym('a')]
	require.NotNil(t, erase.Write)
	assert.True(t, erase.Write.IsBlank())
	assert.Equal(t, domain.Left, erase.Move)
	assert.Equal(t, domain.Sym('x'), *tables[0][domain.Blank].Write)
}

func TestLoad_CollectsAllProblems(t *testing.T) {
	_, err := definition.Load("testdata/invalid.yaml")
	require.Error(t, err)

	var aggr *definition.AggregateError
	require.True(t, errors.As(err, &aggr))
	paths := make([]string, 0, len(aggr.Errors))
	for _, e := range aggr.Errors {
		var verr *definition.ValidationError
		require.True(t, errors.As(e, &verr))
		paths = append(paths, verr.Path)
	}
	assert.ElementsMatch(t, []string{
		"reject",
		"states[0].transitions[0].read",
		"states[0].transitions[1].move",
		"states[0].transitions[2].next",
		"states[0].transitions[4].read",
		"states[1].id",
	}, paths)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := definition.Parse([]byte("accept: 1\nreject: 2\nstates: [{id: 0, transitions: []}]\naccpet: 3\n"))
	assert.ErrorContains(t, err, "accpet")
}

func TestParse_Empty(t *testing.T) {
	_, err := definition.Parse([]byte(""))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := definition.Load("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestRunes_RejectsBlank(t *testing.T) {
	def := &definition.Definition{Alphabet: []string{"a", "blank"}}
	_, err := def.Runes()
	assert.Error(t, err)
}
