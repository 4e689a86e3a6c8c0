package wrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rbacv1 "k8s.io/api/rbac/v1"
)

const crdFixtures = `apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata:
  name: widgets.example.com
spec:
  group: example.com
  names:
    kind: Widget
    plural: widgets
  scope: Namespaced
---
apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata:
  name: gizmos.example.com
spec:
  group: example.com
  names:
    kind: Gizmo
    plural: gizmos
  scope: Namespaced
---
apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata:
  name: bananas.fruits.example.com
spec:
  group: fruits.example.com
  names:
    kind: Banana
    plural: bananas
  scope: Cluster
---
apiVersion: apps/v1
kind: Deployment
metadata:
  name: not-a-crd
`

func TestSynthesizeGrants(t *testing.T) {
	t.Parallel()

	objects, err := LoadObjects([]byte(crdFixtures))
	require.NoError(t, err)

	rules, err := SynthesizeGrants(objects)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	// Groups sorted lexicographically, resources sorted within a group.
	assert.Equal(t, rbacv1.PolicyRule{
		APIGroups: []string{"example.com"},
		Resources: []string{"gizmos", "widgets"},
		Verbs:     []string{"get", "list", "watch", "create", "update", "patch", "delete"},
	}, rules[0])
	assert.Equal(t, []string{"fruits.example.com"}, rules[1].APIGroups)
	assert.Equal(t, []string{"bananas"}, rules[1].Resources)
}

func TestSynthesizeGrants_deduplicates(t *testing.T) {
	t.Parallel()

	objects, err := LoadObjects([]byte(crdFixtures + "---\n" + crdFixtures))
	require.NoError(t, err)

	rules, err := SynthesizeGrants(objects)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, []string{"gizmos", "widgets"}, rules[0].Resources)
}

func TestSynthesizeGrants_noSchemaDefinitions(t *testing.T) {
	t.Parallel()

	objects, err := LoadObjects([]byte("apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: x\n"))
	require.NoError(t, err)

	rules, err := SynthesizeGrants(objects)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestGrantManifests(t *testing.T) {
	t.Parallel()

	rules := []rbacv1.PolicyRule{
		{
			APIGroups: []string{"example.com"},
			Resources: []string{"widgets"},
			Verbs:     []string{"get", "list", "watch", "create", "update", "patch", "delete"},
		},
	}

	objects, err := GrantManifests(rules, "my-app-rbac-role")
	require.NoError(t, err)
	require.Len(t, objects, 2)

	role := objects[0]
	assert.Equal(t, "ClusterRole", role.GetKind())
	assert.Equal(t, "my-app-rbac-role", role.GetName())

	binding := objects[1]
	assert.Equal(t, "ClusterRoleBinding", binding.GetKind())
	assert.Equal(t, "my-app-rbac-role-binding", binding.GetName())

	subjects := nestedSliceOfMaps(binding.Object, "subjects")
	require.Len(t, subjects, 1)
	assert.Equal(t, "klusterlet-work-sa", subjects[0]["name"])
	assert.Equal(t, "open-cluster-management-agent", subjects[0]["namespace"])
}

func TestGrantManifests_noRules(t *testing.T) {
	t.Parallel()

	objects, err := GrantManifests(nil, "unused")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func nestedSliceOfMaps(obj map[string]interface{}, field string) []map[string]interface{} {
	raw, _ := obj[field].([]interface{})
	out := make([]map[string]interface{}, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
