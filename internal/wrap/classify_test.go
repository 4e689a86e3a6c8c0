package wrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		gvk      schema.GroupVersionKind
		expected ResourceClass
	}{
		{
			name:     "crd",
			gvk:      schema.GroupVersionKind{Group: "apiextensions.k8s.io", Version: "v1", Kind: "CustomResourceDefinition"},
			expected: ClassSchemaDefinition,
		},
		{
			name:     "crd case insensitive kind",
			gvk:      schema.GroupVersionKind{Group: "apiextensions.k8s.io", Version: "v1", Kind: "customresourcedefinition"},
			expected: ClassSchemaDefinition,
		},
		{
			name:     "deployment",
			gvk:      schema.GroupVersionKind{Group: "apps", Version: "v1", Kind: "Deployment"},
			expected: ClassBuiltinWorkload,
		},
		{
			name:     "pod",
			gvk:      schema.GroupVersionKind{Version: "v1", Kind: "Pod"},
			expected: ClassBuiltinWorkload,
		},
		{
			name:     "ingress",
			gvk:      schema.GroupVersionKind{Group: "networking.k8s.io", Version: "v1", Kind: "Ingress"},
			expected: ClassBuiltinWorkload,
		},
		{
			name:     "custom instance",
			gvk:      schema.GroupVersionKind{Group: "fruits.example.com", Version: "v1", Kind: "Banana"},
			expected: ClassCustomInstance,
		},
		{
			name:     "core object",
			gvk:      schema.GroupVersionKind{Version: "v1", Kind: "ConfigMap"},
			expected: ClassOther,
		},
		{
			name:     "builtin group unknown kind",
			gvk:      schema.GroupVersionKind{Group: "rbac.authorization.k8s.io", Version: "v1", Kind: "ClusterRole"},
			expected: ClassOther,
		},
		{
			name:     "legacy builtin group unknown kind",
			gvk:      schema.GroupVersionKind{Group: "autoscaling", Version: "v2", Kind: "HorizontalPodAutoscaler"},
			expected: ClassOther,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, Classify(test.gvk))
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	t.Parallel()

	gvk := schema.GroupVersionKind{Group: "fruits.example.com", Version: "v1", Kind: "Banana"}
	first := Classify(gvk)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(gvk))
	}
}

func TestPluralize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     string
		expected string
	}{
		{kind: "Deployment", expected: "deployments"},
		{kind: "Service", expected: "services"},
		{kind: "ConfigMap", expected: "configmaps"},
		{kind: "Ingress", expected: "ingresses"},
		{kind: "Endpoints", expected: "endpoints"},
		{kind: "NetworkPolicy", expected: "networkpolicies"},
		{kind: "Gateway", expected: "gateways"},
		{kind: "Box", expected: "boxes"},
		{kind: "Quartz", expected: "quartzes"},
		{kind: "Branch", expected: "branches"},
		{kind: "Dish", expected: "dishes"},
		{kind: "MyCustomResource", expected: "mycustomresources"},
		{kind: "", expected: ""},
	}
	for _, test := range tests {
		test := test
		t.Run(test.kind, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, Pluralize(test.kind))
		})
	}
}
