// Package wrap turns a stream of rendered Kubernetes manifests into
// ManifestWorkReplicaSets: size-bounded workload bundles annotated with
// per-resource status feedback rules and access grants for any custom
// resource types defined in the stream. The whole pipeline is a pure,
// synchronous transform with no cluster access.
package wrap

import (
	"context"
	"encoding/json"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"

	workv1alpha1 "github.com/suchpuppet/ocm-kind-sandbox/apis/work/v1alpha1"
)

// DefaultMaxBundleBytes bounds the serialized size of one bundle. Matches the
// headroom ManifestWork leaves below etcd's object size limit.
const DefaultMaxBundleBytes = 256 * 1024

// Config for one wrap invocation. All state is threaded through here, the
// engine holds nothing across calls.
type Config struct {
	// Name is the base name of emitted ManifestWorkReplicaSets. Multi-bundle
	// output is numbered {Name}-part-{k}.
	Name string
	// Namespace the emitted documents live in on the hub.
	Namespace string
	// Placement referenced by every emitted document. Only a reference, the
	// engine never resolves it.
	Placement string
	// MaxBundleBytes bounds each bundle's serialized size.
	// Zero means DefaultMaxBundleBytes.
	MaxBundleBytes int
}

// Default fills unset optional values.
func (c *Config) Default() {
	if c.MaxBundleBytes == 0 {
		c.MaxBundleBytes = DefaultMaxBundleBytes
	}
}

// Validate reports the first missing or invalid field.
func (c Config) Validate() error {
	switch {
	case c.Name == "":
		return ConfigError{Field: "name"}
	case c.Namespace == "":
		return ConfigError{Field: "namespace"}
	case c.Placement == "":
		return ConfigError{Field: "placement"}
	case c.MaxBundleBytes < 0:
		return ConfigError{Field: "maxBundleBytes", Details: "must be positive"}
	}
	return nil
}

// Result carries wrap statistics for reporting.
type Result struct {
	// ObjectCount is the number of input manifests wrapped.
	ObjectCount int
	// BundleCount is the number of emitted ManifestWorkReplicaSets.
	BundleCount int
	// GrantedGroups lists the API groups that received access grants.
	GrantedGroups []string
}

// WrapFromBytes parses a multi-document YAML stream and wraps it.
// Configuration is validated before any parsing happens; a stream with any
// broken document fails as a whole with the full list of document errors.
func WrapFromBytes(ctx context.Context, cfg Config, content []byte) (
	[]workv1alpha1.ManifestWorkReplicaSet, Result, error,
) {
	cfg.Default()
	if err := cfg.Validate(); err != nil {
		return nil, Result{}, err
	}

	objects, err := LoadObjects(content)
	if err != nil {
		return nil, Result{}, err
	}
	return Wrap(ctx, cfg, objects)
}

// Wrap packages the given objects into ManifestWorkReplicaSets. Deterministic:
// identical input and configuration yield byte-identical output.
func Wrap(_ context.Context, cfg Config, objects []unstructured.Unstructured) (
	[]workv1alpha1.ManifestWorkReplicaSet, Result, error,
) {
	cfg.Default()
	if err := cfg.Validate(); err != nil {
		return nil, Result{}, err
	}

	rules, err := SynthesizeGrants(objects)
	if err != nil {
		return nil, Result{}, err
	}
	grantObjects, err := GrantManifests(rules, cfg.Name+"-rbac-role")
	if err != nil {
		return nil, Result{}, err
	}

	// Grants lead the emission order so they always land in the first bundle
	// and are never duplicated across parts.
	ordered := append(grantObjects, emissionOrder(objects)...)

	packed := make([]packedManifest, 0, len(ordered))
	for _, obj := range ordered {
		m, err := newPackedManifest(obj)
		if err != nil {
			return nil, Result{}, err
		}
		packed = append(packed, m)
	}

	bundles := packBundles(packed, cfg.MaxBundleBytes)

	out := make([]workv1alpha1.ManifestWorkReplicaSet, 0, len(bundles))
	for i, bundle := range bundles {
		out = append(out, newOutputDocument(cfg, bundle, i+1, len(bundles)))
	}

	res := Result{
		ObjectCount: len(objects),
		BundleCount: len(bundles),
	}
	for _, rule := range rules {
		res.GrantedGroups = append(res.GrantedGroups, rule.APIGroups...)
	}
	return out, res, nil
}

func newPackedManifest(obj unstructured.Unstructured) (packedManifest, error) {
	raw, err := json.Marshal(obj.Object)
	if err != nil {
		return packedManifest{}, fmt.Errorf("marshaling manifest for packing: %w", err)
	}

	m := packedManifest{raw: raw, size: len(raw)}
	if config, ok := FeedbackConfig(obj, Classify(obj.GroupVersionKind())); ok {
		configRaw, err := json.Marshal(config)
		if err != nil {
			return packedManifest{}, fmt.Errorf("marshaling feedback config for packing: %w", err)
		}
		m.config = &config
		m.size += len(configRaw)
	}
	return m, nil
}

func newOutputDocument(
	cfg Config, bundle []packedManifest, number, total int,
) workv1alpha1.ManifestWorkReplicaSet {
	name := cfg.Name
	if total > 1 {
		name = fmt.Sprintf("%s-part-%d", cfg.Name, number)
	}

	var (
		manifests []workv1alpha1.Manifest
		configs   []workv1alpha1.ManifestConfigOption
	)
	for _, m := range bundle {
		manifests = append(manifests, workv1alpha1.Manifest{
			RawExtension: runtime.RawExtension{Raw: m.raw},
		})
		if m.config != nil {
			configs = append(configs, *m.config)
		}
	}

	return workv1alpha1.ManifestWorkReplicaSet{
		TypeMeta: metav1.TypeMeta{
			APIVersion: workv1alpha1.GroupVersion.String(),
			Kind:       "ManifestWorkReplicaSet",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: cfg.Namespace,
		},
		Spec: workv1alpha1.ManifestWorkReplicaSetSpec{
			PlacementRefs: []workv1alpha1.LocalPlacementReference{
				{Name: cfg.Placement},
			},
			CascadeDeletionPolicy: workv1alpha1.CascadeDeletionPolicyBackground,
			ManifestWorkTemplate: workv1alpha1.ManifestWorkSpec{
				Workload:        workv1alpha1.ManifestsTemplate{Manifests: manifests},
				ManifestConfigs: configs,
			},
		},
	}
}
