// Package scaffold generates the ClusterSet bootstrap resources a namespace
// needs before wrapped workloads can be placed: a ManagedClusterSetBinding, a
// Placement, and a ManifestWorkReplicaSet carrying the target namespace.
package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"

	clusterv1beta1 "github.com/suchpuppet/ocm-kind-sandbox/apis/cluster/v1beta1"
	clusterv1beta2 "github.com/suchpuppet/ocm-kind-sandbox/apis/cluster/v1beta2"
	workv1alpha1 "github.com/suchpuppet/ocm-kind-sandbox/apis/work/v1alpha1"
)

// Config names the generated resources.
type Config struct {
	// Name of the ManagedClusterSetBinding.
	Name string
	// Namespace all resources are generated into.
	Namespace string
	// ClusterSet bound to the namespace.
	ClusterSet string
	// Placement name referenced by the ManifestWorkReplicaSet.
	Placement string
}

func (c *Config) Default() {
	if c.Name == "" {
		c.Name = "default"
	}
	if c.Namespace == "" {
		c.Namespace = "default"
	}
	if c.ClusterSet == "" {
		c.ClusterSet = "default"
	}
	if c.Placement == "" {
		c.Placement = "clusterset-placement"
	}
}

// Objects returns the scaffolding resources in apply order.
func Objects(cfg Config) ([]runtime.Object, error) {
	cfg.Default()

	binding := &clusterv1beta2.ManagedClusterSetBinding{
		TypeMeta: metav1.TypeMeta{
			APIVersion: clusterv1beta2.GroupVersion.String(),
			Kind:       "ManagedClusterSetBinding",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      cfg.Name,
			Namespace: cfg.Namespace,
		},
		Spec: clusterv1beta2.ManagedClusterSetBindingSpec{
			ClusterSet: cfg.ClusterSet,
		},
	}

	placement := &clusterv1beta1.Placement{
		TypeMeta: metav1.TypeMeta{
			APIVersion: clusterv1beta1.GroupVersion.String(),
			Kind:       "Placement",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      cfg.Placement,
			Namespace: cfg.Namespace,
		},
		Spec: clusterv1beta1.PlacementSpec{
			ClusterSets: []string{cfg.ClusterSet},
		},
	}

	namespaceRaw, err := json.Marshal(map[string]interface{}{
		"apiVersion": "v1",
		"kind":       "Namespace",
		"metadata":   map[string]interface{}{"name": cfg.Namespace},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling namespace manifest: %w", err)
	}

	mwrs := &workv1alpha1.ManifestWorkReplicaSet{
		TypeMeta: metav1.TypeMeta{
			APIVersion: workv1alpha1.GroupVersion.String(),
			Kind:       "ManifestWorkReplicaSet",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      cfg.Namespace + "-namespace-mwrs",
			Namespace: cfg.Namespace,
		},
		Spec: workv1alpha1.ManifestWorkReplicaSetSpec{
			PlacementRefs: []workv1alpha1.LocalPlacementReference{
				{Name: cfg.Placement},
			},
			ManifestWorkTemplate: workv1alpha1.ManifestWorkSpec{
				Workload: workv1alpha1.ManifestsTemplate{
					Manifests: []workv1alpha1.Manifest{
						{RawExtension: runtime.RawExtension{Raw: namespaceRaw}},
					},
				},
			},
		},
	}

	return []runtime.Object{binding, placement, mwrs}, nil
}

// Render emits the scaffolding resources as one multi-document YAML stream.
func Render(cfg Config) ([]byte, error) {
	objects, err := Objects(cfg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for i, obj := range objects {
		if i > 0 {
			buf.WriteString("---\n")
		}

		doc, err := yaml.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("marshaling scaffolding resource: %w", err)
		}
		buf.Write(doc)
	}
	return buf.Bytes(), nil
}
