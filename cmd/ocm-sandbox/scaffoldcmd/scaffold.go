package scaffoldcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/suchpuppet/ocm-kind-sandbox/internal/cli"
	"github.com/suchpuppet/ocm-kind-sandbox/internal/scaffold"
)

func NewCmd() *cobra.Command {
	const (
		cmdUse   = "scaffold"
		cmdShort = "Generate ClusterSet scaffolding resources"
		cmdLong  = "Generates the ManagedClusterSetBinding, Placement and " +
			"namespace ManifestWorkReplicaSet needed before wrapped workloads " +
			"can be placed on managed clusters."
	)

	var opts options

	cmd := &cobra.Command{
		Use:   cmdUse,
		Short: cmdShort,
		Long:  cmdLong,
		Args:  cobra.NoArgs,
	}
	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		printer := cli.NewPrinter(
			cli.WithOut{Out: cmd.OutOrStdout()},
			cli.WithErr{Err: cmd.ErrOrStderr()},
		)

		content, err := scaffold.Render(scaffold.Config{
			Name:       opts.Name,
			Namespace:  opts.Namespace,
			ClusterSet: opts.ClusterSet,
			Placement:  opts.Placement,
		})
		if err != nil {
			return err
		}

		if err := os.WriteFile(opts.Output, content, 0o644); err != nil {
			return fmt.Errorf("writing %q: %w", opts.Output, err)
		}

		if err := printer.PrintfOut("Generated %s\n\nNext steps:\n", opts.Output); err != nil {
			return err
		}
		return printer.PrintfOut(
			"  kubectl apply -f %s --context kind-ocm-hub\n"+
				"  kubectl get managedclusters --context kind-ocm-hub\n",
			opts.Output)
	}

	return cmd
}

type options struct {
	Name       string
	Namespace  string
	ClusterSet string
	Placement  string
	Output     string
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(
		&o.Name,
		"name",
		"n",
		"default",
		"Name of the ManagedClusterSetBinding.",
	)
	flags.StringVarP(
		&o.Namespace,
		"namespace",
		"N",
		"default",
		"Namespace the resources are generated into.",
	)
	flags.StringVarP(
		&o.ClusterSet,
		"clusterset",
		"c",
		"default",
		"ClusterSet to bind.",
	)
	flags.StringVarP(
		&o.Placement,
		"placement",
		"p",
		"clusterset-placement",
		"Name of the generated Placement.",
	)
	flags.StringVarP(
		&o.Output,
		"output",
		"o",
		"scaffolding.yaml",
		"Output file name.",
	)
}
