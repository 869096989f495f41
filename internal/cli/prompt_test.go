package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nanolca/internal/lca"
)

func TestConsoleFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{"plain", "0.02\n", 0.02, nil},
		{"surrounding space", "  1.5 \n", 1.5, nil},
		{"exponent", "7.69e-7\n", 7.69e-7, nil},
		{"negative", "-1\n", -1, nil},
		{"no trailing newline", "3", 3, nil},
		{"windows line ending", "2.5\r\n", 2.5, nil},
		{"garbage", "abc\n", 0, ErrInvalidNumber},
		{"infinity", "inf\n", 0, ErrInvalidNumber},
		{"negative infinity", "-Inf\n", 0, ErrInvalidNumber},
		{"not a number", "NaN\n", 0, ErrInvalidNumber},
		{"overflow", "1e400\n", 0, ErrInvalidNumber},
		{"empty line", "\n", 0, ErrInvalidNumber},
		{"eof", "", 0, ErrInputClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewConsole(strings.NewReader(tt.input), &out).Float("value: ")
			assert.Equal(t, "value: ", out.String())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}
}

func TestConsoleString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "TiO2\n", "TiO2"},
		{"trailing space kept", "TiO2 \n", "TiO2 "},
		{"leading space kept", " Ag\n", " Ag"},
		{"windows line ending", "ZnO\r\n", "ZnO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewConsole(strings.NewReader(tt.input), &bytes.Buffer{}).String("name: ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConsoleString_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewConsole(iotest.ErrReader(boom), &bytes.Buffer{}).String("name: ")
	assert.ErrorIs(t, err, boom)
}

func TestPromptSelection(t *testing.T) {
	var out bytes.Buffer
	sel, err := PromptSelection(NewConsole(strings.NewReader("ZnO\n0.05\n"), &out))
	require.NoError(t, err)
	assert.Equal(t, Selection{Name: "ZnO", MassFraction: 0.05}, sel)
	assert.Contains(t, out.String(), "Enter the nanoparticle properties for your nanofluid:")
}

func TestConsoleEntry(t *testing.T) {
	input := "1\n0.1\n2\n3\n4\n0.01\n0.02\n9\n"
	entry := &consoleEntry{console: NewConsole(strings.NewReader(input), &bytes.Buffer{})}

	rec, err := entry.Enter("Fe")
	require.NoError(t, err)
	assert.Equal(t, lca.NanoparticleRecord{
		Name:      "Fe",
		Emissions: lca.Emissions{lca.GasCO2: 1, lca.GasCH4: 0.1},
		Toxicity:  2,
		EnergyUse: lca.Bounds{3, 4},
		WaterUse:  lca.Bounds{0.01, 0.02},
		CostPerKg: 9,
	}, rec)
}

func TestConsoleEntry_StopsAtFirstError(t *testing.T) {
	var out bytes.Buffer
	entry := &consoleEntry{console: NewConsole(strings.NewReader("1\nx\n2\n"), &out)}

	_, err := entry.Enter("Fe")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	assert.Contains(t, err.Error(), "CH4 emissions")
	assert.NotContains(t, out.String(), "toxicity factor", "no prompts after the failing field")
}
