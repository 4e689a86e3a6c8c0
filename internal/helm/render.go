// Package helm renders Helm charts into plain manifest streams without
// touching a cluster, so chart contents can be wrapped like any other
// pre-rendered input.
package helm

import (
	"context"
	"fmt"
	"os"

	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/chart/loader"
	"sigs.k8s.io/yaml"
)

// RenderOptions configures one chart render.
type RenderOptions struct {
	// ChartPath points at a chart directory or packaged .tgz archive.
	ChartPath string
	// ReleaseName used for templating. Required by Helm's renderer.
	ReleaseName string
	// Namespace the rendered manifests are templated for.
	Namespace string
	// ValuesFiles are merged over the chart's default values, later files
	// taking precedence.
	ValuesFiles []string
	// Values are merged last, over all values files.
	Values map[string]interface{}
}

// Render executes a client-only dry-run install of the chart and returns the
// rendered manifest stream. No cluster connection is made.
func Render(ctx context.Context, opts RenderOptions) ([]byte, error) {
	client := action.NewInstall(&action.Configuration{})
	client.DryRun = true
	client.ReleaseName = opts.ReleaseName
	client.Namespace = opts.Namespace
	client.Replace = true
	client.ClientOnly = true
	client.IncludeCRDs = true

	loaded, err := loader.Load(opts.ChartPath)
	if err != nil {
		return nil, fmt.Errorf("loading chart from %q: %w", opts.ChartPath, err)
	}

	values, err := mergeValues(opts)
	if err != nil {
		return nil, err
	}

	res, err := client.RunWithContext(ctx, loaded, values)
	if err != nil {
		return nil, fmt.Errorf("rendering chart %q: %w", loaded.Metadata.Name, err)
	}
	return []byte(res.Manifest), nil
}

// RenderFiles is Render over an in-memory chart. Used by tests and callers
// that assemble charts without a filesystem.
func RenderFiles(ctx context.Context, opts RenderOptions, files map[string][]byte) ([]byte, error) {
	client := action.NewInstall(&action.Configuration{})
	client.DryRun = true
	client.ReleaseName = opts.ReleaseName
	client.Namespace = opts.Namespace
	client.Replace = true
	client.ClientOnly = true
	client.IncludeCRDs = true

	loaded, err := loader.LoadFiles(toBufferedFiles(files))
	if err != nil {
		return nil, fmt.Errorf("loading chart files: %w", err)
	}

	values, err := mergeValues(opts)
	if err != nil {
		return nil, err
	}

	res, err := client.RunWithContext(ctx, loaded, values)
	if err != nil {
		return nil, fmt.Errorf("rendering chart %q: %w", loaded.Metadata.Name, err)
	}
	return []byte(res.Manifest), nil
}

func mergeValues(opts RenderOptions) (map[string]interface{}, error) {
	merged := map[string]interface{}{}

	for _, file := range opts.ValuesFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading values file: %w", err)
		}

		values := map[string]interface{}{}
		if err := yaml.Unmarshal(content, &values); err != nil {
			return nil, fmt.Errorf("parsing values file %q: %w", file, err)
		}
		merged = mergeMaps(merged, values)
	}

	if opts.Values != nil {
		merged = mergeMaps(merged, opts.Values)
	}
	return merged, nil
}

// mergeMaps overlays b onto a, recursing into nested maps. Same semantics as
// Helm's values file merging.
func mergeMaps(a, b map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(a))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if nested, ok := v.(map[string]interface{}); ok {
			if existing, ok := out[k].(map[string]interface{}); ok {
				out[k] = mergeMaps(existing, nested)
				continue
			}
		}
		out[k] = v
	}
	return out
}

func toBufferedFiles(files map[string][]byte) []*loader.BufferedFile {
	out := make([]*loader.BufferedFile, 0, len(files))
	for name, data := range files {
		out = append(out, &loader.BufferedFile{Name: name, Data: data})
	}
	return out
}
