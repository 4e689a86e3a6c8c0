package wrap

import (
	"strings"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// ResourceClass partitions manifests by how the packaging engine treats them.
// It is recomputed from the GroupVersionKind wherever needed, never stored.
type ResourceClass int

const (
	// ClassOther covers everything without special handling. Unrecognized
	// kinds in builtin groups always land here instead of erroring, to stay
	// forward compatible with kinds this tool does not know yet.
	ClassOther ResourceClass = iota
	// ClassSchemaDefinition is a CustomResourceDefinition.
	ClassSchemaDefinition
	// ClassBuiltinWorkload is a well-known workload kind whose status shape
	// is standardized and understood by the work agent.
	ClassBuiltinWorkload
	// ClassCustomInstance is an instance of a kind served by a non-builtin
	// API group, typically one defined by a CRD in the same stream.
	ClassCustomInstance
)

const (
	schemaDefinitionGroup = "apiextensions.k8s.io"
	schemaDefinitionKind  = "customresourcedefinition"
)

var builtinWorkloadKinds = map[string]struct{}{
	"deployment":  {},
	"statefulset": {},
	"daemonset":   {},
	"job":         {},
	"cronjob":     {},
	"pod":         {},
	"ingress":     {},
	"service":     {},
}

// Legacy builtin groups that do not carry the k8s.io suffix.
var builtinGroups = map[string]struct{}{
	"apps":        {},
	"batch":       {},
	"autoscaling": {},
	"policy":      {},
	"extensions":  {},
}

// Classify derives the ResourceClass from group and kind alone. Pure.
func Classify(gvk schema.GroupVersionKind) ResourceClass {
	kind := strings.ToLower(gvk.Kind)

	if gvk.Group == schemaDefinitionGroup && kind == schemaDefinitionKind {
		return ClassSchemaDefinition
	}
	if _, ok := builtinWorkloadKinds[kind]; ok {
		return ClassBuiltinWorkload
	}
	if gvk.Group != "" && !isBuiltinGroup(gvk.Group) {
		return ClassCustomInstance
	}
	return ClassOther
}

func isBuiltinGroup(group string) bool {
	if _, ok := builtinGroups[group]; ok {
		return true
	}
	return group == "k8s.io" || strings.HasSuffix(group, ".k8s.io")
}

// Well-known plural forms, consulted before the default suffix rules.
var pluralOverrides = map[string]string{
	"endpoints":               "endpoints",
	"ingress":                 "ingresses",
	"networkpolicy":           "networkpolicies",
	"configmap":               "configmaps",
	"secret":                  "secrets",
	"serviceaccount":          "serviceaccounts",
	"persistentvolumeclaim":   "persistentvolumeclaims",
	"rolebinding":             "rolebindings",
	"clusterrole":             "clusterroles",
	"clusterrolebinding":      "clusterrolebindings",
	"horizontalpodautoscaler": "horizontalpodautoscalers",
	"poddisruptionbudget":     "poddisruptionbudgets",
	"statefulset":             "statefulsets",
	"daemonset":               "daemonsets",
	"deployment":              "deployments",
	"job":                     "jobs",
	"cronjob":                 "cronjobs",
	"service":                 "services",
	"pod":                     "pods",
}

// Pluralize derives the lower-case plural REST resource name for a kind. Pure.
func Pluralize(kind string) string {
	k := strings.ToLower(kind)
	if k == "" {
		return ""
	}
	if plural, ok := pluralOverrides[k]; ok {
		return plural
	}

	switch {
	case strings.HasSuffix(k, "y") && !hasVowelBeforeY(k):
		return strings.TrimSuffix(k, "y") + "ies"
	case strings.HasSuffix(k, "s"),
		strings.HasSuffix(k, "x"),
		strings.HasSuffix(k, "z"),
		strings.HasSuffix(k, "ch"),
		strings.HasSuffix(k, "sh"):
		return k + "es"
	default:
		return k + "s"
	}
}

// "y" only turns into "ies" after a consonant: gateway -> gateways, but
// networkpolicy -> networkpolicies.
func hasVowelBeforeY(k string) bool {
	if len(k) < 2 {
		return false
	}
	return strings.ContainsRune("aeiou", rune(k[len(k)-2]))
}
