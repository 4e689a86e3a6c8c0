package loadcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/suchpuppet/ocm-kind-sandbox/cmd/ocm-sandbox/cmdutil"
)

// Loader pushes images into kind cluster nodes.
type Loader interface {
	Clusters() ([]string, error)
	Load(ctx context.Context, image, cluster, platform string) error
}

func NewCmd(loader Loader) *cobra.Command {
	const (
		cmdUse   = "load-images image [image...]"
		cmdShort = "Load container images into a kind cluster"
		cmdLong  = "Loads the given images into every node of a kind cluster, " +
			"falling back to a platform-specific registry pull when the host's " +
			"image store only holds a foreign-platform image."
	)

	var opts options

	cmd := &cobra.Command{
		Use:   cmdUse,
		Short: cmdShort,
		Long:  cmdLong,
		Args:  cobra.MinimumNArgs(1),
	}
	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmdutil.NewCobraContext(cmd)

		for _, image := range args {
			if err := loader.Load(ctx, image, opts.Cluster, opts.Platform); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(
				cmd.OutOrStdout(), "Loaded %s into %s\n", image, opts.Cluster,
			); err != nil {
				return err
			}
		}
		return nil
	}

	return cmd
}

type options struct {
	Cluster  string
	Platform string
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(
		&o.Cluster,
		"cluster",
		"ocm-hub",
		"Name of the target kind cluster.",
	)
	flags.StringVar(
		&o.Platform,
		"platform",
		"linux/amd64",
		"Platform for the registry pull fallback.",
	)
}
