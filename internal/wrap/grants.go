package wrap

import (
	"fmt"
	"sort"

	rbacv1 "k8s.io/api/rbac/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
)

// Verbs granted to the work agent for every custom resource it may manage.
var grantVerbs = []string{"get", "list", "watch", "create", "update", "patch", "delete"}

const (
	// Service account the OCM work agent applies workloads with.
	workAgentServiceAccount = "klusterlet-work-sa"
	workAgentNamespace      = "open-cluster-management-agent"
)

// SynthesizeGrants scans the stream for CustomResourceDefinitions and emits
// one aggregated RBAC rule per API group, covering all custom resource kinds
// that group defines. Groups and resources are sorted so regenerating from
// identical input produces byte-identical rules.
func SynthesizeGrants(objects []unstructured.Unstructured) ([]rbacv1.PolicyRule, error) {
	resourcesByGroup := map[string]map[string]struct{}{}

	for _, obj := range objects {
		if Classify(obj.GroupVersionKind()) != ClassSchemaDefinition {
			continue
		}

		crd := &apiextensionsv1.CustomResourceDefinition{}
		if err := runtime.DefaultUnstructuredConverter.
			FromUnstructured(obj.Object, crd); err != nil {
			return nil, fmt.Errorf("reading CustomResourceDefinition %q: %w", obj.GetName(), err)
		}

		plural := Pluralize(crd.Spec.Names.Kind)
		if plural == "" {
			plural = crd.Spec.Names.Plural
		}
		if plural == "" {
			continue
		}

		if resourcesByGroup[crd.Spec.Group] == nil {
			resourcesByGroup[crd.Spec.Group] = map[string]struct{}{}
		}
		resourcesByGroup[crd.Spec.Group][plural] = struct{}{}
	}

	groups := make([]string, 0, len(resourcesByGroup))
	for group := range resourcesByGroup {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	rules := make([]rbacv1.PolicyRule, 0, len(groups))
	for _, group := range groups {
		resources := make([]string, 0, len(resourcesByGroup[group]))
		for resource := range resourcesByGroup[group] {
			resources = append(resources, resource)
		}
		sort.Strings(resources)

		rules = append(rules, rbacv1.PolicyRule{
			APIGroups: []string{group},
			Resources: resources,
			Verbs:     grantVerbs,
		})
	}
	return rules, nil
}

// GrantManifests wraps access-grant rules into a ClusterRole and a binding to
// the work agent service account, ready to be packed alongside the workload.
func GrantManifests(rules []rbacv1.PolicyRule, roleName string) ([]unstructured.Unstructured, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	role := &rbacv1.ClusterRole{
		TypeMeta: metav1.TypeMeta{
			APIVersion: rbacv1.SchemeGroupVersion.String(),
			Kind:       "ClusterRole",
		},
		ObjectMeta: metav1.ObjectMeta{Name: roleName},
		Rules:      rules,
	}
	binding := &rbacv1.ClusterRoleBinding{
		TypeMeta: metav1.TypeMeta{
			APIVersion: rbacv1.SchemeGroupVersion.String(),
			Kind:       "ClusterRoleBinding",
		},
		ObjectMeta: metav1.ObjectMeta{Name: roleName + "-binding"},
		RoleRef: rbacv1.RoleRef{
			APIGroup: rbacv1.GroupName,
			Kind:     "ClusterRole",
			Name:     roleName,
		},
		Subjects: []rbacv1.Subject{
			{
				Kind:      "ServiceAccount",
				Name:      workAgentServiceAccount,
				Namespace: workAgentNamespace,
			},
		},
	}

	objects := make([]unstructured.Unstructured, 0, 2)
	for _, obj := range []runtime.Object{role, binding} {
		raw, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
		if err != nil {
			return nil, fmt.Errorf("converting access grant to unstructured: %w", err)
		}
		objects = append(objects, unstructured.Unstructured{Object: raw})
	}
	return objects, nil
}
