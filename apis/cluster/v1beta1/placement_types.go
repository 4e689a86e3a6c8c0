package v1beta1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Placement selects managed clusters from the ManagedClusterSets bound to the
// Placement's namespace. Workload objects reference Placements by name and
// never resolve the selection themselves.
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"
type Placement struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PlacementSpec   `json:"spec,omitempty"`
	Status PlacementStatus `json:"status,omitempty"`
}

// PlacementList contains a list of Placements.
// +kubebuilder:object:root=true
type PlacementList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Placement `json:"items"`
}

// PlacementSpec defines which clusters a Placement selects.
type PlacementSpec struct {
	// ClusterSets to select clusters from. Only sets bound to the Placement
	// namespace are considered.
	ClusterSets []string `json:"clusterSets,omitempty"`

	// NumberOfClusters caps the selection, unset selects all matching clusters.
	NumberOfClusters *int32 `json:"numberOfClusters,omitempty"`
}

// PlacementStatus defines the observed selection state.
type PlacementStatus struct {
	// Number of clusters currently selected by this Placement.
	NumberOfSelectedClusters int32 `json:"numberOfSelectedClusters,omitempty"`
	// Conditions is a list of status conditions this object is in.
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

func init() { register(&Placement{}, &PlacementList{}) }
