package directory

// Entry maps a device-assigned numeric employee id to a display name,
// extracted from one fixed-size record of a binary directory export.
type Entry struct {
	EmployeeID int    `json:"employee_id"`
	Name       string `json:"name"`

	// LowConfidence marks entries whose record carried no digit run, so the
	// id was inferred from the record position instead of read from bytes.
	LowConfidence bool `json:"low_confidence,omitempty"`
}
