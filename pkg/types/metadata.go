package types

// Metadata is what a MetadataProvider knows about one file.
// Empty strings mean "not reported".
type Metadata struct {
	// CaptureTimestamp is the raw capture date, normally "YYYY:MM:DD HH:MM:SS"
	CaptureTimestamp string `json:"captureTimestamp,omitempty" yaml:"captureTimestamp,omitempty"`

	// DeclaredExt is the normalized MIME subtype, e.g. "jpeg", "heic", "mov"
	DeclaredExt string `json:"declaredExt,omitempty" yaml:"declaredExt,omitempty"`
}

// IsEmpty reports whether neither field is set
func (m Metadata) IsEmpty() bool {
	return m.CaptureTimestamp == "" && m.DeclaredExt == ""
}

// Merge fills the empty fields of m from other
func (m Metadata) Merge(other Metadata) Metadata {
	if m.CaptureTimestamp == "" {
		m.CaptureTimestamp = other.CaptureTimestamp
	}
	if m.DeclaredExt == "" {
		m.DeclaredExt = other.DeclaredExt
	}
	return m
}
