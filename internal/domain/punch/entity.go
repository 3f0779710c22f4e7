package punch

import (
	"fmt"
	"time"
)

// Event is one observed swipe from a biometric device. Immutable once parsed.
//
// InOutFlag and WorkCode come straight off the device and are carried through
// for completeness; the attendance derivation ignores them and infers IN/OUT
// from punch order instead, because field devices report the flag unreliably.
type Event struct {
	EmployeeID int       `json:"employee_id"`
	Timestamp  time.Time `json:"timestamp"`
	VerifyType int       `json:"verify_type"`
	InOutFlag  int       `json:"in_out_flag"`
	WorkCode   int       `json:"work_code"`
	Reserved   int       `json:"-"`
}

// Verification method codes as assigned by the device firmware.
const (
	VerifyPassword            = 0
	VerifyFingerprint         = 1
	VerifyCard                = 2
	VerifyPasswordFingerprint = 3
	VerifyCardFingerprint     = 4
	VerifyFace                = 15
)

// VerificationLabel maps a device verification code to its display label.
// Unknown codes render as "Type N" rather than failing.
func VerificationLabel(code int) string {
	switch code {
	case VerifyPassword:
		return "Password"
	case VerifyFingerprint:
		return "Fingerprint"
	case VerifyCard:
		return "Card"
	case VerifyPasswordFingerprint:
		return "Password+Fingerprint"
	case VerifyCardFingerprint:
		return "Card+Fingerprint"
	case VerifyFace:
		return "Face"
	default:
		return fmt.Sprintf("Type %d", code)
	}
}
