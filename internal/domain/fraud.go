package domain

// FraudLevel is the discrete band a fraud score falls into.
type FraudLevel string

const (
	FraudLevelLow      FraudLevel = "low"
	FraudLevelMedium   FraudLevel = "medium"
	FraudLevelHigh     FraudLevel = "high"
	FraudLevelVeryHigh FraudLevel = "very_high"
)

// FraudAction is the remediation derived from a fraud level.
type FraudAction string

const (
	FraudActionProceed  FraudAction = "proceed"
	FraudActionWarning  FraudAction = "warning"
	FraudActionRestrict FraudAction = "restrict"
	FraudActionBlock    FraudAction = "block"
)

// FraudAssessment is computed per submission and handed back to the caller.
// Score and Level must agree per the fixed thresholds.
type FraudAssessment struct {
	Score  float64     `json:"score"`
	Level  FraudLevel  `json:"level"`
	Detail string      `json:"detail"`
	Action FraudAction `json:"action"`
}
