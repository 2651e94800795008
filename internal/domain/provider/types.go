package provider

import "strings"

// Specialization is the closed set of provider specialties accepted at
// registration. Validated at the boundary; no dynamic registry.
type Specialization string

const (
	SpecCardiology      Specialization = "cardiology"
	SpecDermatology     Specialization = "dermatology"
	SpecNeurology       Specialization = "neurology"
	SpecPediatrics      Specialization = "pediatrics"
	SpecOrthopedics     Specialization = "orthopedics"
	SpecRadiology       Specialization = "radiology"
	SpecGeneralMedicine Specialization = "general_medicine"
)

func NewSpecialization(s string) (Specialization, error) {
	spec := Specialization(strings.ToLower(s))
	if !spec.IsValid() {
		return "", ErrInvalidSpecialization
	}
	return spec, nil
}

func (s Specialization) IsValid() bool {
	switch s {
	case SpecCardiology, SpecDermatology, SpecNeurology, SpecPediatrics,
		SpecOrthopedics, SpecRadiology, SpecGeneralMedicine:
		return true
	default:
		return false
	}
}

func (s Specialization) String() string {
	return string(s)
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (v VerificationStatus) String() string {
	return string(v)
}
