package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/suchpuppet/ocm-kind-sandbox/cmd/ocm-sandbox/loadcmd"
	"github.com/suchpuppet/ocm-kind-sandbox/cmd/ocm-sandbox/scaffoldcmd"
	"github.com/suchpuppet/ocm-kind-sandbox/cmd/ocm-sandbox/versioncmd"
	"github.com/suchpuppet/ocm-kind-sandbox/cmd/ocm-sandbox/wrapcmd"
	"github.com/suchpuppet/ocm-kind-sandbox/internal/imageload"
	"github.com/suchpuppet/ocm-kind-sandbox/internal/version"
)

const (
	// ReturnCodeSuccess is passed to os.Exit() when no error is reported.
	ReturnCodeSuccess = 0
	// ReturnCodeError is passed to os.Exit() if a command reports an error.
	ReturnCodeError = 1
)

func Run(ctx context.Context, inReader io.Reader, outWriter, errWriter io.Writer, args []string) int {
	cmd := CobraRoot()
	cmd.SetIn(inReader)
	cmd.SetOut(outWriter)
	cmd.SetErr(errWriter)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return ReturnCodeError
	}

	return ReturnCodeSuccess
}

func CobraRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ocm-sandbox",
		Short:        "Package manifests for Open Cluster Management placement",
		Version:      version.Get().Version,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		wrapcmd.NewCmd(),
		scaffoldcmd.NewCmd(),
		loadcmd.NewCmd(imageload.NewLoader()),
		versioncmd.NewCmd(),
	)

	return cmd
}
