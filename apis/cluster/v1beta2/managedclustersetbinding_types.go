package v1beta2

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ManagedClusterSetBinding projects a ManagedClusterSet into a namespace, so
// that Placements in that namespace may select clusters from the set.
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName={"mcsb"}
type ManagedClusterSetBinding struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ManagedClusterSetBindingSpec   `json:"spec,omitempty"`
	Status ManagedClusterSetBindingStatus `json:"status,omitempty"`
}

// ManagedClusterSetBindingList contains a list of ManagedClusterSetBindings.
// +kubebuilder:object:root=true
type ManagedClusterSetBindingList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ManagedClusterSetBinding `json:"items"`
}

// ManagedClusterSetBindingSpec names the bound ManagedClusterSet.
type ManagedClusterSetBindingSpec struct {
	// ClusterSet is the name of the ManagedClusterSet to bind. It must match
	// the binding's own name.
	// +kubebuilder:validation:MinLength=1
	ClusterSet string `json:"clusterSet"`
}

// ManagedClusterSetBindingStatus defines the observed binding state.
type ManagedClusterSetBindingStatus struct {
	// Conditions is a list of status conditions this object is in.
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

func init() { register(&ManagedClusterSetBinding{}, &ManagedClusterSetBindingList{}) }
