package domain

// Provenance tags a response with its origin: the real external dependency
// or a synthetic fallback.
type Provenance string

const (
	ProvenanceReal Provenance = "real"
	ProvenanceMock Provenance = "mock"
)

// FallbackEnvelope wraps any external-capability result. The shape under
// Data is identical whether provenance is real or mock; downstream code
// must never branch on provenance except for logging.
type FallbackEnvelope struct {
	Provenance Provenance  `json:"provenance"`
	Note       string      `json:"note,omitempty"`
	Data       interface{} `json:"data"`
}

// RealEnvelope wraps a response that came from the live dependency.
func RealEnvelope(data interface{}) *FallbackEnvelope {
	return &FallbackEnvelope{
		Provenance: ProvenanceReal,
		Data:       data,
	}
}

// MockEnvelope wraps synthetic data with a note naming the unavailable
// dependency.
func MockEnvelope(data interface{}, note string) *FallbackEnvelope {
	return &FallbackEnvelope{
		Provenance: ProvenanceMock,
		Note:       note,
		Data:       data,
	}
}
