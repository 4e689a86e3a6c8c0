package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	sandbox "github.com/suchpuppet/ocm-kind-sandbox/cmd/ocm-sandbox"
)

func TestRunSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stdin, stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}, &bytes.Buffer{}
	ret := sandbox.Run(ctx, stdin, stdout, stderr, []string{"version"})

	require.Equal(t, sandbox.ReturnCodeSuccess, ret)
}

func TestRunFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stdin, stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}, &bytes.Buffer{}
	ret := sandbox.Run(ctx, stdin, stdout, stderr, []string{"chicken"})

	require.Equal(t, sandbox.ReturnCodeError, ret)
}
