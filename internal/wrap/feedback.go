package wrap

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	workv1alpha1 "github.com/suchpuppet/ocm-kind-sandbox/apis/work/v1alpha1"
)

// FeedbackConfig synthesizes the status feedback configuration for one
// manifest. Returns ok=false for classes that are not observed for status:
// schema definitions, plain core objects and objects without kind or name.
func FeedbackConfig(
	obj unstructured.Unstructured, class ResourceClass,
) (workv1alpha1.ManifestConfigOption, bool) {
	gvk := obj.GroupVersionKind()
	if gvk.Kind == "" || obj.GetName() == "" {
		return workv1alpha1.ManifestConfigOption{}, false
	}

	id := workv1alpha1.ResourceIdentifier{
		Group:     gvk.Group,
		Resource:  Pluralize(gvk.Kind),
		Name:      obj.GetName(),
		Namespace: obj.GetNamespace(),
	}

	switch class {
	case ClassBuiltinWorkload:
		// The work agent knows the status shape of these kinds.
		return workv1alpha1.ManifestConfigOption{
			ResourceIdentifier: id,
			FeedbackRules: []workv1alpha1.FeedbackRule{
				{Type: workv1alpha1.WellKnownStatusType},
			},
		}, true
	case ClassCustomInstance:
		// Status shape is unknown, observe only the generic fields.
		return workv1alpha1.ManifestConfigOption{
			ResourceIdentifier: id,
			FeedbackRules: []workv1alpha1.FeedbackRule{
				{
					Type: workv1alpha1.JSONPathsType,
					JsonPaths: []workv1alpha1.JsonPath{
						{Name: "observedGeneration", Path: ".status.observedGeneration"},
						{Name: "deletionTimestamp", Path: ".metadata.deletionTimestamp"},
					},
				},
			},
		}, true
	case ClassSchemaDefinition, ClassOther:
		return workv1alpha1.ManifestConfigOption{}, false
	default:
		return workv1alpha1.ManifestConfigOption{}, false
	}
}
