package wrap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadObjects(t *testing.T) {
	t.Parallel()

	const stream = `---
apiVersion: v1
kind: ConfigMap
metadata:
  name: settings
  namespace: my-app
---
# a comment-only document

---
apiVersion: apps/v1
kind: Deployment
metadata:
  name: my-app
---
`

	objects, err := LoadObjects([]byte(stream))
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "ConfigMap", objects[0].GetKind())
	assert.Equal(t, "my-app", objects[0].GetNamespace())
	assert.Equal(t, "Deployment", objects[1].GetKind())
}

func TestLoadObjects_emptyStream(t *testing.T) {
	t.Parallel()

	objects, err := LoadObjects([]byte("\n---\n# nothing here\n"))
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestLoadObjects_collectsAllBrokenDocuments(t *testing.T) {
	t.Parallel()

	const stream = `apiVersion: v1
kind: ConfigMap
metadata:
  name: ok-1
---
broken: [unclosed
---
apiVersion: v1
kind: ConfigMap
metadata:
  name: ok-2
---
also: {broken
`

	objects, err := LoadObjects([]byte(stream))
	require.Error(t, err)
	assert.Empty(t, objects)

	var docErrs DocumentErrorList
	require.ErrorAs(t, err, &docErrs)
	require.Len(t, docErrs, 2)
	assert.Equal(t, 2, docErrs[0].Index)
	assert.Equal(t, 4, docErrs[1].Index)
}

func TestLoadObjects_nonMappingDocument(t *testing.T) {
	t.Parallel()

	_, err := LoadObjects([]byte("42\n"))
	require.Error(t, err)

	var docErrs DocumentErrorList
	require.ErrorAs(t, err, &docErrs)
	require.Len(t, docErrs, 1)
	assert.Equal(t, 1, docErrs[0].Index)
}

func TestDocumentErrorList_Error(t *testing.T) {
	t.Parallel()

	list := DocumentErrorList{
		{Index: 2, Err: errors.New("boom")},
		{Index: 5, Err: errors.New("bang")},
	}
	assert.Equal(t,
		"invalid manifest stream: document 2: boom; document 5: bang",
		list.Error())
}
