package scaffold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clusterv1beta1 "github.com/suchpuppet/ocm-kind-sandbox/apis/cluster/v1beta1"
	clusterv1beta2 "github.com/suchpuppet/ocm-kind-sandbox/apis/cluster/v1beta2"
	workv1alpha1 "github.com/suchpuppet/ocm-kind-sandbox/apis/work/v1alpha1"
)

func TestObjects(t *testing.T) {
	t.Parallel()

	objects, err := Objects(Config{
		Name:       "default",
		Namespace:  "test-namespace",
		ClusterSet: "default",
		Placement:  "test-placement",
	})
	require.NoError(t, err)
	require.Len(t, objects, 3)

	binding, ok := objects[0].(*clusterv1beta2.ManagedClusterSetBinding)
	require.True(t, ok)
	assert.Equal(t, "default", binding.Name)
	assert.Equal(t, "test-namespace", binding.Namespace)
	assert.Equal(t, "default", binding.Spec.ClusterSet)

	placement, ok := objects[1].(*clusterv1beta1.Placement)
	require.True(t, ok)
	assert.Equal(t, "test-placement", placement.Name)
	assert.Equal(t, []string{"default"}, placement.Spec.ClusterSets)

	mwrs, ok := objects[2].(*workv1alpha1.ManifestWorkReplicaSet)
	require.True(t, ok)
	assert.Equal(t, "test-namespace-namespace-mwrs", mwrs.Name)
	require.Len(t, mwrs.Spec.PlacementRefs, 1)
	assert.Equal(t, "test-placement", mwrs.Spec.PlacementRefs[0].Name)

	manifests := mwrs.Spec.ManifestWorkTemplate.Workload.Manifests
	require.Len(t, manifests, 1)
	assert.JSONEq(t,
		`{"apiVersion":"v1","kind":"Namespace","metadata":{"name":"test-namespace"}}`,
		string(manifests[0].Raw))
}

func TestObjects_defaults(t *testing.T) {
	t.Parallel()

	objects, err := Objects(Config{})
	require.NoError(t, err)
	require.Len(t, objects, 3)

	binding := objects[0].(*clusterv1beta2.ManagedClusterSetBinding)
	assert.Equal(t, "default", binding.Name)
	assert.Equal(t, "default", binding.Spec.ClusterSet)

	placement := objects[1].(*clusterv1beta1.Placement)
	assert.Equal(t, "clusterset-placement", placement.Name)
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := Render(Config{Namespace: "prod"})
	require.NoError(t, err)

	rendered := string(out)
	assert.Contains(t, rendered, "kind: ManagedClusterSetBinding")
	assert.Contains(t, rendered, "kind: Placement")
	assert.Contains(t, rendered, "kind: ManifestWorkReplicaSet")
	assert.Contains(t, rendered, "name: prod-namespace-mwrs")

	// Three documents in one stream.
	assert.Equal(t, 2, strings.Count(rendered, "\n---\n"))
}
