package request

import (
	"time"

	"healthsched/internal/domain/patient"
	"healthsched/internal/domain/provider"
	"healthsched/internal/usecase/shared"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddressRequest struct {
	Street string `json:"street" binding:"required"`
	City   string `json:"city" binding:"required"`
	State  string `json:"state" binding:"required"`
	Zip    string `json:"zip" binding:"required"`
}

type RegisterProviderRequest struct {
	FirstName         string         `json:"first_name" binding:"required"`
	LastName          string         `json:"last_name" binding:"required"`
	Email             string         `json:"email" binding:"required"`
	PhoneNumber       string         `json:"phone_number" binding:"required"`
	Password          string         `json:"password" binding:"required"`
	ConfirmPassword   string         `json:"confirm_password" binding:"required"`
	Specialization    string         `json:"specialization" binding:"required"`
	LicenseNumber     string         `json:"license_number" binding:"required"`
	YearsOfExperience int            `json:"years_of_experience"`
	ClinicAddress     AddressRequest `json:"clinic_address" binding:"required"`
}

// ProviderRegistration is the validated form of RegisterProviderRequest.
type ProviderRegistration struct {
	FirstName         string
	LastName          string
	Email             provider.Email
	PhoneNumber       provider.PhoneNumber
	Password          provider.Password
	Specialization    provider.Specialization
	LicenseNumber     provider.LicenseNumber
	YearsOfExperience int
	ClinicAddress     provider.ClinicAddress
}

// ToDomain validates every field and collects all failures, mirroring the
// per-field error map the registration endpoints return.
func (r RegisterProviderRequest) ToDomain() (*ProviderRegistration, error) {
	fieldErrs := shared.NewFieldErrors()

	email, err := provider.NewEmail(r.Email)
	if err != nil {
		fieldErrs.Add("email", err.Error())
	}
	phone, err := provider.NewPhoneNumber(r.PhoneNumber)
	if err != nil {
		fieldErrs.Add("phone_number", err.Error())
	}
	pass, err := provider.NewPassword(r.Password)
	if err != nil {
		fieldErrs.Add("password", err.Error())
	}
	if r.Password != r.ConfirmPassword {
		fieldErrs.Add("confirm_password", "passwords do not match")
	}
	spec, err := provider.NewSpecialization(r.Specialization)
	if err != nil {
		fieldErrs.Add("specialization", err.Error())
	}
	license, err := provider.NewLicenseNumber(r.LicenseNumber)
	if err != nil {
		fieldErrs.Add("license_number", err.Error())
	}
	if r.YearsOfExperience < 0 {
		fieldErrs.Add("years_of_experience", provider.ErrNegativeExperience.Error())
	}

	if fieldErrs.HasErrors() {
		return nil, fieldErrs
	}

	return &ProviderRegistration{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Email:             email,
		PhoneNumber:       phone,
		Password:          pass,
		Specialization:    spec,
		LicenseNumber:     license,
		YearsOfExperience: r.YearsOfExperience,
		ClinicAddress: provider.ClinicAddress{
			Street: r.ClinicAddress.Street,
			City:   r.ClinicAddress.City,
			State:  r.ClinicAddress.State,
			Zip:    r.ClinicAddress.Zip,
		},
	}, nil
}

type EmergencyContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Relationship string `json:"relationship" binding:"required"`
}

type InsuranceInfoRequest struct {
	Provider     string `json:"provider" binding:"required"`
	PolicyNumber string `json:"policy_number" binding:"required"`
}

type RegisterPatientRequest struct {
	FirstName        string                   `json:"first_name" binding:"required"`
	LastName         string                   `json:"last_name" binding:"required"`
	Email            string                   `json:"email" binding:"required"`
	PhoneNumber      string                   `json:"phone_number" binding:"required"`
	Password         string                   `json:"password" binding:"required"`
	ConfirmPassword  string                   `json:"confirm_password" binding:"required"`
	DateOfBirth      string                   `json:"date_of_birth" binding:"required"`
	Gender           string                   `json:"gender" binding:"required"`
	Address          AddressRequest           `json:"address" binding:"required"`
	EmergencyContact *EmergencyContactRequest `json:"emergency_contact,omitempty"`
	MedicalHistory   []string                 `json:"medical_history,omitempty"`
	InsuranceInfo    *InsuranceInfoRequest    `json:"insurance_info,omitempty"`
}

type PatientRegistration struct {
	FirstName        string
	LastName         string
	Email            patient.Email
	PhoneNumber      patient.PhoneNumber
	Password         patient.Password
	DateOfBirth      patient.BirthDate
	Gender           patient.Gender
	Address          patient.Address
	EmergencyContact *patient.EmergencyContact
	MedicalHistory   []string
	InsuranceInfo    *patient.InsuranceInfo
}

func (r RegisterPatientRequest) ToDomain(now time.Time) (*PatientRegistration, error) {
	fieldErrs := shared.NewFieldErrors()

	email, err := patient.NewEmail(r.Email)
	if err != nil {
		fieldErrs.Add("email", err.Error())
	}
	phone, err := patient.NewPhoneNumber(r.PhoneNumber)
	if err != nil {
		fieldErrs.Add("phone_number", err.Error())
	}
	pass, err := patient.NewPassword(r.Password)
	if err != nil {
		fieldErrs.Add("password", err.Error())
	}
	if r.Password != r.ConfirmPassword {
		fieldErrs.Add("confirm_password", "passwords do not match")
	}

	var birthDate patient.BirthDate
	dob, err := time.Parse("2006-01-02", r.DateOfBirth)
	if err != nil {
		fieldErrs.Add("date_of_birth", "must be a date in YYYY-MM-DD format")
	} else {
		birthDate, err = patient.NewBirthDate(dob, now)
		if err != nil {
			fieldErrs.Add("date_of_birth", err.Error())
		}
	}

	gender, err := patient.NewGender(r.Gender)
	if err != nil {
		fieldErrs.Add("gender", err.Error())
	}

	if fieldErrs.HasErrors() {
		return nil, fieldErrs
	}

	reg := &PatientRegistration{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       email,
		PhoneNumber: phone,
		Password:    pass,
		DateOfBirth: birthDate,
		Gender:      gender,
		Address: patient.Address{
			Street: r.Address.Street,
			City:   r.Address.City,
			State:  r.Address.State,
			Zip:    r.Address.Zip,
		},
		MedicalHistory: r.MedicalHistory,
	}
	if r.EmergencyContact != nil {
		reg.EmergencyContact = &patient.EmergencyContact{
			Name:         r.EmergencyContact.Name,
			Phone:        r.EmergencyContact.Phone,
			Relationship: r.EmergencyContact.Relationship,
		}
	}
	if r.InsuranceInfo != nil {
		reg.InsuranceInfo = &patient.InsuranceInfo{
			Provider:     r.InsuranceInfo.Provider,
			PolicyNumber: r.InsuranceInfo.PolicyNumber,
		}
	}
	return reg, nil
}
