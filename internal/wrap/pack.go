package wrap

import (
	"sort"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	workv1alpha1 "github.com/suchpuppet/ocm-kind-sandbox/apis/work/v1alpha1"
)

// Serialized-size allowance reserved per bundle for the wrapping
// ManifestWorkReplicaSet document around the packed manifests.
const bundleOverheadBytes = 1024

// packedManifest is one manifest prepared for packing: its raw JSON form,
// its optional feedback config and the byte cost both contribute to a bundle.
type packedManifest struct {
	raw    []byte
	config *workv1alpha1.ManifestConfigOption
	size   int
}

// emissionOrder stable-sorts objects so that all schema definitions come
// first, ordered by (group, name), with everything else keeping its input
// order. A schema definition must never land in a later bundle than an
// instance of the kind it defines.
func emissionOrder(objects []unstructured.Unstructured) []unstructured.Unstructured {
	out := make([]unstructured.Unstructured, len(objects))
	copy(out, objects)

	sort.SliceStable(out, func(i, j int) bool {
		iSchema := Classify(out[i].GroupVersionKind()) == ClassSchemaDefinition
		jSchema := Classify(out[j].GroupVersionKind()) == ClassSchemaDefinition
		if iSchema != jSchema {
			return iSchema
		}
		if !iSchema {
			return false
		}
		iGroup, _, _ := unstructured.NestedString(out[i].Object, "spec", "group")
		jGroup, _, _ := unstructured.NestedString(out[j].Object, "spec", "group")
		if iGroup != jGroup {
			return iGroup < jGroup
		}
		return out[i].GetName() < out[j].GetName()
	})
	return out
}

// packBundles partitions manifests into size-bounded bundles, preserving
// order. Greedy next-fit: a manifest that would overflow the open bundle
// closes it and opens the next one. A manifest too large for any bundle ends
// up alone in its own bundle rather than failing.
func packBundles(manifests []packedManifest, maxBytes int) [][]packedManifest {
	var bundles [][]packedManifest
	var current []packedManifest
	currentSize := bundleOverheadBytes

	for _, m := range manifests {
		if len(current) > 0 && currentSize+m.size > maxBytes {
			bundles = append(bundles, current)
			current = nil
			currentSize = bundleOverheadBytes
		}
		current = append(current, m)
		currentSize += m.size
	}

	// flush the open bundle
	if len(current) > 0 {
		bundles = append(bundles, current)
	}
	return bundles
}
