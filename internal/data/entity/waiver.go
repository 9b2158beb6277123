package entity

// WaiverSignature is captured before payment completes and becomes
// permanent implicitly once a booking with the same payment reference
// exists. Signatures whose payment never completed are removed by the
// cleanup job after the retention window.
type WaiverSignature struct {
	BaseSimple
	SlotID          string `db:"slot_id"`
	PaymentRef      string `db:"payment_ref"`
	SignerName      string `db:"signer_name"`
	ParticipantName string `db:"participant_name"`
	IsMinor         bool   `db:"is_minor"`
	GuardianName    string `db:"guardian_name"`
	Email           string `db:"email"`
	Phone           string `db:"phone"`
	EmergencyName   string `db:"emergency_name"`
	EmergencyPhone  string `db:"emergency_phone"`
	MedicalNotes    string `db:"medical_notes"`
	IPAddress       string `db:"ip_address"`
	UserAgent       string `db:"user_agent"`
}
