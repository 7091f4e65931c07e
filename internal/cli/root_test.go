package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/curfmt/pkg/currencyfmt"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFormatCommand_Plain(t *testing.T) {
	out, _, err := run(t, "format", "--locale", "en-US", "--currency", "USD", "--output", "plain", "--", "0", "-5", "1234.5")
	require.NoError(t, err)
	assert.Equal(t, "$0.00\n$-5.00\n$1,234.50\n", out)
}

func TestFormatCommand_Reassemble(t *testing.T) {
	out, _, err := run(t, "format", "--locale", "en-US", "--currency", "USD", "--strategy", "reassemble", "--output", "plain", "1234.5")
	require.NoError(t, err)
	assert.Equal(t, "$1,234.50\n", out)
}

func TestFormatCommand_DefaultsAsJSON(t *testing.T) {
	out, _, err := run(t, "format", "--output", "json", "1234.5")
	require.NoError(t, err)

	want, err := currencyfmt.FormatFloat(1234.5)
	require.NoError(t, err)
	assert.Contains(t, out, `"locale": "en-PH"`)
	assert.Contains(t, out, `"currency": "PHP"`)
	assert.Contains(t, out, `"formatted": "`+want+`"`)
}

func TestFormatCommand_Console(t *testing.T) {
	out, _, err := run(t, "format", "--locale", "en-US", "--currency", "USD", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "$42.00")
	assert.Contains(t, out, "Formatted")
	assert.NotContains(t, out, "FORMATTED")
	assert.Contains(t, out, `en-US USD, symbol "$", strategy strip`)
}

func TestFormatCommand_Errors(t *testing.T) {
	_, _, err := run(t, "format", "--currency", "ZZZ", "1")
	assert.ErrorIs(t, err, currencyfmt.ErrUnsupportedCurrency)

	_, _, err = run(t, "format", "--locale", "en-US", "--currency", "USD", "twelve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")

	_, _, err = run(t, "format", "--output", "xml", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")

	_, _, err = run(t, "format")
	assert.Error(t, err)
}

func TestConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: en-US\ncurrency: EUR\noutput: plain\n"), 0o644))

	out, _, err := run(t, "--config", path, "format", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "2.00\n"), out)
	assert.NotContains(t, out, "$")

	t.Setenv("CURFMT_CURRENCY", "USD")
	out, _, err = run(t, "--config", path, "format", "2")
	require.NoError(t, err)
	assert.Equal(t, "$2.00\n", out, "env overrides file")

	out, _, err = run(t, "--config", path, "format", "--display", "code", "2")
	require.NoError(t, err)
	assert.Equal(t, "USD2.00\n", out, "flags override env")

	out, _, err = run(t, "--config", path, "format", "--currency", "JPY", "--display", "code", "2")
	require.NoError(t, err)
	assert.Equal(t, "JPY2\n", out)
}

func TestSymbolCommand(t *testing.T) {
	out, _, err := run(t, "symbol", "--locale", "en-US", "--currency", "USD")
	require.NoError(t, err)
	assert.Equal(t, "$\n", out)

	out, _, err = run(t, "symbol", "--locale", "en-US", "--currency", "EUR", "--display", "code")
	require.NoError(t, err)
	assert.Equal(t, "EUR\n", out)
}

func TestPartsCommand(t *testing.T) {
	out, _, err := run(t, "parts", "--locale", "en-US", "--currency", "USD", "--output", "json", "--", "-1234.5")
	require.NoError(t, err)
	for _, want := range []string{`"minusSign"`, `"group"`, `"fraction"`, `"50"`, `"currency"`} {
		assert.Contains(t, out, want)
	}

	out, _, err = run(t, "parts", "--locale", "de-DE", "--currency", "EUR", "1234.5")
	require.NoError(t, err)
	assert.Contains(t, out, "decimal")
	assert.Contains(t, out, `","`)
	assert.Contains(t, out, "Type")
	assert.NotContains(t, out, "TYPE")
}

func TestDebugLogging(t *testing.T) {
	_, logs, err := run(t, "symbol", "--locale", "en-US", "--currency", "USD", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs, "configuration loaded")
	assert.Contains(t, logs, "currency symbol")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "curfmt v"+Version+"\n", out)
}
