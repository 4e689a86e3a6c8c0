package wrapcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStream = `apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
  namespace: sandbox
spec:
  replicas: 1
`

func TestWrap_fromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "rendered.yaml")
	require.NoError(t, os.WriteFile(input, []byte(testStream), 0o644))

	cmd := NewCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--filename", input,
		"--name", "sandbox-app",
		"--namespace", "sandbox",
		"--placement", "sandbox-placement",
		"--output", filepath.Join(dir, "mwrs"),
	})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(filepath.Join(dir, "mwrs.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "kind: ManifestWorkReplicaSet")
	assert.Contains(t, string(content), "name: sandbox-app")

	assert.Contains(t, stdout.String(), "kubectl apply -f")
	assert.Contains(t, stdout.String(), "Wrapped 1 manifests into 1")
}

func TestWrap_fromStdin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cmd := NewCmd()
	cmd.SetIn(strings.NewReader(testStream))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"-f", "-",
		"-n", "sandbox-app",
		"-N", "sandbox",
		"-p", "sandbox-placement",
		"-o", filepath.Join(dir, "mwrs"),
	})

	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(dir, "mwrs.yaml"))
	require.NoError(t, err)
}

func TestWrap_complete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     options
		args     []string
		expected string
	}{
		{
			name:     "positional args",
			opts:     options{Filenames: []string{"x"}, Name: "a", Namespace: "b", Placement: "c"},
			args:     []string{"leftover"},
			expected: "no positional arguments",
		},
		{
			name:     "no input",
			opts:     options{Name: "a", Namespace: "b", Placement: "c"},
			expected: "one of --filename or --chart",
		},
		{
			name:     "both inputs",
			opts:     options{Filenames: []string{"x"}, Chart: "y", Name: "a", Namespace: "b", Placement: "c"},
			expected: "mutually exclusive",
		},
		{
			name:     "missing name",
			opts:     options{Filenames: []string{"x"}, Namespace: "b", Placement: "c"},
			expected: "--name is required",
		},
		{
			name:     "missing placement",
			opts:     options{Filenames: []string{"x"}, Name: "a", Namespace: "b"},
			expected: "--placement is required",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			w := Wrap{opts: test.opts}
			err := w.Complete(test.args)
			require.ErrorContains(t, err, test.expected)
		})
	}
}
