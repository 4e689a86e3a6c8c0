package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ManifestWorkReplicaSet distributes a manifest workload to every cluster
// selected by the referenced Placements. The hub work controller stamps out
// one ManifestWork per selected cluster from the embedded template.
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName={"mwrs"}
// +kubebuilder:printcolumn:name="Placement",type=string,JSONPath=`.spec.placementRefs[0].name`
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"
type ManifestWorkReplicaSet struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ManifestWorkReplicaSetSpec   `json:"spec,omitempty"`
	Status ManifestWorkReplicaSetStatus `json:"status,omitempty"`
}

// ManifestWorkReplicaSetList contains a list of ManifestWorkReplicaSets.
// +kubebuilder:object:root=true
type ManifestWorkReplicaSetList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ManifestWorkReplicaSet `json:"items"`
}

// ManifestWorkReplicaSetSpec defines the desired state of a ManifestWorkReplicaSet.
type ManifestWorkReplicaSetSpec struct {
	// Template of the ManifestWork stamped out per selected cluster.
	ManifestWorkTemplate ManifestWorkSpec `json:"manifestWorkTemplate"`

	// References to Placements selecting target clusters.
	// +kubebuilder:validation:MinItems=1
	PlacementRefs []LocalPlacementReference `json:"placementRefs"`

	// Controls whether stamped ManifestWorks are deleted in foreground or
	// background when this object is deleted.
	// +kubebuilder:default="Background"
	// +kubebuilder:validation:Enum=Background;Foreground
	CascadeDeletionPolicy CascadeDeletionPolicy `json:"cascadeDeletionPolicy,omitempty"`
}

// LocalPlacementReference names a Placement in the same namespace.
type LocalPlacementReference struct {
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`
}

// CascadeDeletionPolicy describes how stamped ManifestWorks are cleaned up.
type CascadeDeletionPolicy string

const (
	// CascadeDeletionPolicyBackground deletes stamped works asynchronously.
	CascadeDeletionPolicyBackground CascadeDeletionPolicy = "Background"
	// CascadeDeletionPolicyForeground blocks deletion on stamped work removal.
	CascadeDeletionPolicyForeground CascadeDeletionPolicy = "Foreground"
)

// ManifestWorkReplicaSetStatus defines the observed state of a ManifestWorkReplicaSet.
type ManifestWorkReplicaSetStatus struct {
	// Conditions is a list of status conditions this object is in.
	Conditions []metav1.Condition `json:"conditions,omitempty"`
	// Summary counts the ManifestWorks stamped out from this set.
	Summary ManifestWorkSummary `json:"summary,omitempty"`
}

// ManifestWorkSummary aggregates the state of all stamped ManifestWorks.
type ManifestWorkSummary struct {
	Total     int32 `json:"total,omitempty"`
	Available int32 `json:"available,omitempty"`
	Degraded  int32 `json:"degraded,omitempty"`
}

func init() { register(&ManifestWorkReplicaSet{}, &ManifestWorkReplicaSetList{}) }
