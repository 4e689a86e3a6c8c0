package wrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmissionOrder(t *testing.T) {
	t.Parallel()

	const stream = `apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
---
apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata:
  name: widgets.zzz.example.com
spec:
  group: zzz.example.com
  names:
    kind: Widget
    plural: widgets
---
apiVersion: v1
kind: ConfigMap
metadata:
  name: settings
---
apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata:
  name: bananas.aaa.example.com
spec:
  group: aaa.example.com
  names:
    kind: Banana
    plural: bananas
`

	objects, err := LoadObjects([]byte(stream))
	require.NoError(t, err)

	ordered := emissionOrder(objects)
	require.Len(t, ordered, 4)
	// Schema definitions first, sorted by group; the rest keeps input order.
	assert.Equal(t, "bananas.aaa.example.com", ordered[0].GetName())
	assert.Equal(t, "widgets.zzz.example.com", ordered[1].GetName())
	assert.Equal(t, "web", ordered[2].GetName())
	assert.Equal(t, "settings", ordered[3].GetName())
}

func TestPackBundles_nextFit(t *testing.T) {
	t.Parallel()

	manifests := []packedManifest{
		{size: 300}, {size: 300}, {size: 300}, {size: 300}, {size: 300},
	}

	// Two 300-byte manifests plus overhead fit into 1700 bytes, three do not.
	bundles := packBundles(manifests, 1700)
	require.Len(t, bundles, 3)
	assert.Len(t, bundles[0], 2)
	assert.Len(t, bundles[1], 2)
	assert.Len(t, bundles[2], 1)
}

func TestPackBundles_singleBundle(t *testing.T) {
	t.Parallel()

	bundles := packBundles([]packedManifest{{size: 10}, {size: 20}}, 4096)
	require.Len(t, bundles, 1)
	assert.Len(t, bundles[0], 2)
}

func TestPackBundles_oversizedManifestAlone(t *testing.T) {
	t.Parallel()

	manifests := []packedManifest{
		{size: 100},
		{size: 10_000}, // exceeds the bound on its own
		{size: 100},
	}

	bundles := packBundles(manifests, 2000)
	require.Len(t, bundles, 3)
	assert.Len(t, bundles[0], 1)
	require.Len(t, bundles[1], 1)
	assert.Equal(t, 10_000, bundles[1][0].size)
	assert.Len(t, bundles[2], 1)
}

func TestPackBundles_empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, packBundles(nil, 2000))
}

func TestPackBundles_preservesOrder(t *testing.T) {
	t.Parallel()

	manifests := make([]packedManifest, 10)
	for i := range manifests {
		manifests[i] = packedManifest{raw: []byte{byte(i)}, size: 700}
	}

	bundles := packBundles(manifests, 2000)
	var got []byte
	for _, bundle := range bundles {
		for _, m := range bundle {
			got = append(got, m.raw[0])
		}
	}
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}
