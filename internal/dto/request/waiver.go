package request

type CreateWaiverRequest struct {
	SlotID          string `json:"slot_id" validate:"required"`
	PaymentRef      string `json:"payment_ref" validate:"required"`
	SignerName      string `json:"signer_name" validate:"required"`
	ParticipantName string `json:"participant_name" validate:"required"`
	IsMinor         bool   `json:"is_minor"`
	GuardianName    string `json:"guardian_name"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	EmergencyName   string `json:"emergency_name" validate:"required"`
	EmergencyPhone  string `json:"emergency_phone" validate:"required"`
	MedicalNotes    string `json:"medical_notes"`
}
