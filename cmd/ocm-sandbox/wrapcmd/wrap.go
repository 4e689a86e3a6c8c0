package wrapcmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	workv1alpha1 "github.com/suchpuppet/ocm-kind-sandbox/apis/work/v1alpha1"
	"github.com/suchpuppet/ocm-kind-sandbox/cmd/ocm-sandbox/cmdutil"
	"github.com/suchpuppet/ocm-kind-sandbox/internal/cli"
	"github.com/suchpuppet/ocm-kind-sandbox/internal/helm"
	"github.com/suchpuppet/ocm-kind-sandbox/internal/wrap"
)

func NewCmd() *cobra.Command {
	const (
		cmdUse   = "wrap"
		cmdShort = "Wrap rendered manifests into ManifestWorkReplicaSets"
		cmdLong  = "Wraps a rendered manifest stream or Helm chart into " +
			"ManifestWorkReplicaSet documents with status feedback rules, " +
			"access grants for bundled CRDs and size-bounded splitting."
	)

	var opts options

	cmd := &cobra.Command{
		Use:   cmdUse,
		Short: cmdShort,
		Long:  cmdLong,
	}
	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		w := Wrap{opts: opts}
		if err := w.Complete(args); err != nil {
			return err
		}

		printer := cli.NewPrinter(
			cli.WithOut{Out: cmd.OutOrStdout()},
			cli.WithErr{Err: cmd.ErrOrStderr()},
		)
		return w.Run(cmdutil.NewCobraContext(cmd), cmd.InOrStdin(), printer)
	}

	return cmd
}

type Wrap struct {
	opts options
}

func (w *Wrap) Complete(args []string) error {
	switch {
	case len(args) != 0:
		return fmt.Errorf("%w: command takes no positional arguments", cmdutil.ErrInvalidArgs)
	case len(w.opts.Filenames) == 0 && w.opts.Chart == "":
		return fmt.Errorf("%w: one of --filename or --chart is required", cmdutil.ErrInvalidArgs)
	case len(w.opts.Filenames) != 0 && w.opts.Chart != "":
		return fmt.Errorf("%w: --filename and --chart are mutually exclusive", cmdutil.ErrInvalidArgs)
	case w.opts.Name == "":
		return fmt.Errorf("%w: --name is required", cmdutil.ErrInvalidArgs)
	case w.opts.Namespace == "":
		return fmt.Errorf("%w: --namespace is required", cmdutil.ErrInvalidArgs)
	case w.opts.Placement == "":
		return fmt.Errorf("%w: --placement is required", cmdutil.ErrInvalidArgs)
	}
	return nil
}

func (w *Wrap) Run(ctx context.Context, in io.Reader, printer *cli.Printer) error {
	content, err := w.readInput(ctx, in)
	if err != nil {
		return err
	}

	documents, res, err := wrap.WrapFromBytes(ctx, wrap.Config{
		Name:           w.opts.Name,
		Namespace:      w.opts.Namespace,
		Placement:      w.opts.Placement,
		MaxBundleBytes: w.opts.MaxBundleBytes,
	}, content)
	if err != nil {
		return err
	}

	files, err := w.writeDocuments(documents)
	if err != nil {
		return err
	}

	table := cli.NewTable("File", "Command")
	for _, file := range files {
		table.AddRow(file, fmt.Sprintf("kubectl apply -f %s --context kind-ocm-hub", file))
	}
	if err := printer.PrintTable(table); err != nil {
		return err
	}
	return printer.PrintfOut(
		"Wrapped %d manifests into %d ManifestWorkReplicaSet file(s).\n",
		res.ObjectCount, res.BundleCount)
}

// readInput returns the manifest stream to wrap, either rendered from a chart
// or concatenated from the given files. "-" reads from stdin.
func (w *Wrap) readInput(ctx context.Context, in io.Reader) ([]byte, error) {
	if w.opts.Chart != "" {
		content, err := helm.Render(ctx, helm.RenderOptions{
			ChartPath:   w.opts.Chart,
			ReleaseName: w.opts.Name,
			Namespace:   w.opts.Namespace,
			ValuesFiles: w.opts.Values,
		})
		if err != nil {
			return nil, err
		}
		return content, nil
	}

	var buf bytes.Buffer
	for i, filename := range w.opts.Filenames {
		if i > 0 {
			buf.WriteString("\n---\n")
		}

		if filename == "-" {
			if _, err := io.Copy(&buf, in); err != nil {
				return nil, fmt.Errorf("reading manifests from stdin: %w", err)
			}
			continue
		}

		content, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("reading manifests: %w", err)
		}
		buf.Write(content)
	}
	return buf.Bytes(), nil
}

func (w *Wrap) writeDocuments(
	documents []workv1alpha1.ManifestWorkReplicaSet,
) ([]string, error) {
	files := make([]string, 0, len(documents))
	for i, doc := range documents {
		filename := w.opts.OutputPrefix + ".yaml"
		if len(documents) > 1 {
			filename = fmt.Sprintf("%s-part-%d.yaml", w.opts.OutputPrefix, i+1)
		}

		content, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshaling output document: %w", err)
		}
		if err := os.WriteFile(filename, content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %q: %w", filename, err)
		}
		files = append(files, filepath.Clean(filename))
	}
	return files, nil
}

type options struct {
	// Filenames of rendered manifest streams. "-" reads stdin.
	Filenames []string
	// Chart path to render instead of reading pre-rendered manifests.
	Chart string
	// Values files merged into the chart render.
	Values []string

	Name           string
	Namespace      string
	Placement      string
	MaxBundleBytes int
	OutputPrefix   string
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.StringSliceVarP(
		&o.Filenames,
		"filename",
		"f",
		nil,
		"Rendered manifest files to wrap. Use '-' to read from stdin.",
	)
	flags.StringVar(
		&o.Chart,
		"chart",
		o.Chart,
		"Helm chart directory or archive to render and wrap.",
	)
	flags.StringSliceVar(
		&o.Values,
		"values",
		nil,
		"Values files for the chart render.",
	)
	flags.StringVarP(
		&o.Name,
		"name",
		"n",
		o.Name,
		"Name of the emitted ManifestWorkReplicaSets.",
	)
	flags.StringVarP(
		&o.Namespace,
		"namespace",
		"N",
		o.Namespace,
		"Namespace of the emitted ManifestWorkReplicaSets.",
	)
	flags.StringVarP(
		&o.Placement,
		"placement",
		"p",
		o.Placement,
		"Placement referenced by the emitted ManifestWorkReplicaSets.",
	)
	flags.IntVar(
		&o.MaxBundleBytes,
		"max-bundle-bytes",
		o.MaxBundleBytes,
		"Maximum serialized size per bundle. Defaults to 256KiB.",
	)
	flags.StringVarP(
		&o.OutputPrefix,
		"output",
		"o",
		"mwrs",
		"Output file prefix.",
	)
}
