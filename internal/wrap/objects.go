package wrap

import (
	"bytes"
	"regexp"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/yaml"
)

var splitYAMLDocumentsRegEx = regexp.MustCompile(`(?m)^---$`)

// LoadObjects splits a multi-document YAML stream into objects.
// Empty and comment-only documents are skipped. Broken documents do not stop
// the pass: they are collected into a DocumentErrorList so the caller can
// report every offending document index in one go.
func LoadObjects(content []byte) ([]unstructured.Unstructured, error) {
	var (
		objects []unstructured.Unstructured
		docErrs DocumentErrorList
	)

	for idx, document := range splitYAMLDocumentsRegEx.Split(
		string(bytes.Trim(content, "---\n")), -1) {
		obj := unstructured.Unstructured{}
		if err := yaml.Unmarshal([]byte(document), &obj); err != nil {
			docErrs = append(docErrs, DocumentError{Index: idx + 1, Err: err})
			continue
		}

		if len(obj.Object) == 0 {
			continue
		}
		objects = append(objects, obj)
	}

	if len(docErrs) > 0 {
		return nil, docErrs
	}
	return objects, nil
}
