package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enetx/stepform/prompt"
)

const answersYAML = `personalDetails:
  firstName: Ada
  lastName: Lovelace
  email: ada@example.com
addressDetails:
  address: "12 St James's Square"
  city: London
  zipCode: SW1Y 4JH
paymentDetails:
  cardNumber: "4111111111111111"
  expirationDate: "12/30"
  cvv: "123"
`

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFill_JSON(t *testing.T) {
	stdout, stderr, err := run(t, "fill", "--answers", writeAnswers(t, answersYAML))
	require.NoError(t, err)

	var payload map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, "London", payload["addressDetails"]["city"])
	assert.Equal(t, "123", payload["paymentDetails"]["cvv"])

	assert.Contains(t, stderr, "Step 1/3: Personal Details")
	assert.Contains(t, stderr, "Form submitted successfully!")
}

func TestFill_YAML(t *testing.T) {
	stdout, _, err := run(t, "fill", "--answers", writeAnswers(t, answersYAML), "--output", "yaml")
	require.NoError(t, err)

	assert.Contains(t, stdout, "personalDetails:\n    firstName: Ada\n")
	assert.Contains(t, stdout, "    cvv: \"123\"\n")
}

func TestFill_OutputFromEnv(t *testing.T) {
	t.Setenv("STEPFORM_OUTPUT", "yaml")

	stdout, _, err := run(t, "fill", "--answers", writeAnswers(t, answersYAML))
	require.NoError(t, err)
	assert.Contains(t, stdout, "addressDetails:\n")
}

func TestFill_InvalidOutput(t *testing.T) {
	_, _, err := run(t, "fill", "--answers", writeAnswers(t, answersYAML), "--output", "xml")
	assert.ErrorContains(t, err, `invalid output "xml"`)
}

func TestFill_RejectedAnswers(t *testing.T) {
	path := writeAnswers(t, "personalDetails:\n  firstName: Ada\n")

	stdout, _, err := run(t, "fill", "--answers", path, "--log-level", "info")
	require.ErrorIs(t, err, prompt.ErrIncomplete)
	assert.Empty(t, stdout)
}

func TestFill_UnknownField(t *testing.T) {
	path := writeAnswers(t, "personalDetails:\n  nickname: Ada\n")

	_, _, err := run(t, "fill", "--answers", path)
	assert.ErrorContains(t, err, `unknown field "nickname"`)
}

func TestFill_MissingAnswersFile(t *testing.T) {
	_, _, err := run(t, "fill", "--answers", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open answers")
}

func TestFill_Logging(t *testing.T) {
	_, stderr, err := run(t, "fill", "--answers", writeAnswers(t, answersYAML), "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, stderr, `msg="step transition"`)
	assert.Contains(t, stderr, "from=payment to=submitted action=submit")
	assert.Contains(t, stderr, `msg="form submitted"`)
}

func TestFill_JSONLogsFromEnv(t *testing.T) {
	t.Setenv("STEPFORM_LOG_LEVEL", "info")
	t.Setenv("STEPFORM_LOG_FORMAT", "json")

	_, stderr, err := run(t, "fill", "--answers", writeAnswers(t, answersYAML))
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"form submitted"`)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "graph", "--log-level", "loud")
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestGraph(t *testing.T) {
	stdout, _, err := run(t, "graph")
	require.NoError(t, err)

	assert.Contains(t, stdout, "digraph Form {")
	assert.Contains(t, stdout, `"payment" -> "submitted"`)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Config{LogLevel: "warn", LogFormat: "text", Output: "json"}, cfg)
}

func TestLoadConfig_InvalidOutput(t *testing.T) {
	t.Setenv("STEPFORM_OUTPUT", "toml")

	_, err := LoadConfig()
	assert.Error(t, err)
}
