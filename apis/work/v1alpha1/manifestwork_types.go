package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime"
)

// ManifestWorkSpec is the workload template distributed to selected clusters.
type ManifestWorkSpec struct {
	// Workload represents the manifests to be deployed on a managed cluster.
	Workload ManifestsTemplate `json:"workload,omitempty"`

	// ManifestConfigs holds per-resource configuration, most importantly the
	// status feedback rules evaluated by the work agent.
	ManifestConfigs []ManifestConfigOption `json:"manifestConfigs,omitempty"`
}

// ManifestsTemplate is an ordered list of manifests to apply.
type ManifestsTemplate struct {
	Manifests []Manifest `json:"manifests,omitempty"`
}

// Manifest represents one resource to be deployed on a managed cluster.
// +kubebuilder:validation:EmbeddedResource
// +kubebuilder:pruning:PreserveUnknownFields
type Manifest struct {
	runtime.RawExtension `json:",inline"`
}

// ManifestConfigOption configures how a specific manifest is handled by the
// work agent, keyed by the identity of the deployed resource.
type ManifestConfigOption struct {
	// ResourceIdentifier selects the resource this configuration applies to.
	ResourceIdentifier ResourceIdentifier `json:"resourceIdentifier"`

	// FeedbackRules declare which status fields the agent reports back.
	FeedbackRules []FeedbackRule `json:"feedbackRules,omitempty"`
}

// ResourceIdentifier identifies one resource inside a manifest workload.
type ResourceIdentifier struct {
	// API group of the resource, empty for the core group.
	Group string `json:"group"`
	// Resource is the lower-case plural REST name, e.g. "deployments".
	// +kubebuilder:validation:MinLength=1
	Resource string `json:"resource"`
	// +kubebuilder:validation:MinLength=1
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
}

// FeedbackType describes how status values are selected for feedback.
type FeedbackType string

const (
	// WellKnownStatusType reports the standardized status fields of a
	// well-known workload kind. The agent knows the shape per kind.
	WellKnownStatusType FeedbackType = "WellKnownStatus"
	// JSONPathsType reports the values of explicitly listed JSON paths.
	JSONPathsType FeedbackType = "JSONPaths"
)

// FeedbackRule declares one set of status values to be reported back.
type FeedbackRule struct {
	// +kubebuilder:validation:Enum=WellKnownStatus;JSONPaths
	Type FeedbackType `json:"type"`
	// JsonPaths is required when Type is JSONPaths.
	JsonPaths []JsonPath `json:"jsonPaths,omitempty"`
}

// JsonPath is a named status path to report.
type JsonPath struct {
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`
	// Version optionally pins the resource version the path applies to.
	Version string `json:"version,omitempty"`
	// +kubebuilder:validation:MinLength=1
	Path string `json:"path"`
}
