package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/discountsplit/internal/allocation"
)

func runCalcForTest(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	var stdout, stderr bytes.Buffer
	err := runCalc(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunCalc_Summary(t *testing.T) {
	out, _, err := runCalcForTest(t,
		"-p", "Andi=25000", "-p", "Budi=18000", "-p", "Citra=20000", "-p", "Dewi=13500",
		"-after", "52500",
	)
	require.NoError(t, err)

	assert.Equal(t, "Discount split\n"+
		"1. Andi: Rp25.000 -> Rp17.200\n"+
		"2. Budi: Rp18.000 -> Rp12.300\n"+
		"3. Citra: Rp20.000 -> Rp13.700\n"+
		"4. Dewi: Rp13.500 -> Rp9.300\n"+
		"Total: Rp76.500 -> Rp52.500\n"+
		"Total before discount: Rp76.500\n", out)
}

func TestRunCalc_ShareLink(t *testing.T) {
	out, _, err := runCalcForTest(t, "-p", "100", "-after", "100", "-share", "whatsapp")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, out, "1. Participant 1: Rp100 -> Rp100")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "https://wa.me/?text="))
}

func TestRunCalc_JSON(t *testing.T) {
	out, _, err := runCalcForTest(t, "-p", "A=100", "-p", "B=100", "-p", "C=100", "-after", "100", "-step", "1", "-json")
	require.NoError(t, err)

	var got struct {
		Participants []struct {
			Name      string `json:"name"`
			Allocated int64  `json:"allocated"`
		} `json:"participants"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Participants, 3)
	assert.Equal(t, int64(34), got.Participants[0].Allocated)
	assert.Equal(t, int64(100), got.Total)
}

func TestRunCalc_MismatchWarningGoesToStderr(t *testing.T) {
	out, errOut, err := runCalcForTest(t, "-p", "0", "-before", "100", "-after", "50", "-step", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Rp0 -> Rp1")
	assert.Contains(t, errOut, "reference total does not match sum of amounts")
}

func TestRunCalc_Errors(t *testing.T) {
	t.Run("missing participants", func(t *testing.T) {
		_, _, err := runCalcForTest(t, "-after", "100")
		require.Error(t, err)
		assert.Equal(t, exitInvalidInput, exitCode(err))
	})

	t.Run("missing after", func(t *testing.T) {
		_, _, err := runCalcForTest(t, "-p", "100")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "-after")
	})

	t.Run("bad price", func(t *testing.T) {
		_, _, err := runCalcForTest(t, "-p", "Andi=abc", "-after", "100")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid price")
	})

	t.Run("zero reference", func(t *testing.T) {
		_, _, err := runCalcForTest(t, "-p", "Andi=0", "-after", "100")
		require.ErrorIs(t, err, allocation.ErrInvalidReferenceTotal)
		assert.Equal(t, exitInvalidInput, exitCode(err))
	})

	t.Run("unknown channel", func(t *testing.T) {
		_, _, err := runCalcForTest(t, "-p", "100", "-after", "100", "-share", "fax")
		require.Error(t, err)
		assert.Equal(t, exitFailure, exitCode(err))
	})
}

func TestParseParticipant(t *testing.T) {
	p, err := parseParticipant("Mr = Smith=1500.5")
	require.NoError(t, err)
	assert.Equal(t, "Mr = Smith", p.Name)
	assert.Equal(t, 1500.5, p.Price)

	p, err = parseParticipant("700")
	require.NoError(t, err)
	assert.Empty(t, p.Name)
	assert.Equal(t, float64(700), p.Price)
}
