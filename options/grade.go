package options

// Grade is an ordinal risk label derived from the risk/reward ratio.
type Grade int

const (
	RiskFree Grade = iota
	LowRisk
	MediumRisk
	HighRisk
	VeryHighRisk
)

func (g Grade) String() string {
	switch g {
	case RiskFree:
		return "RISK_FREE"
	case LowRisk:
		return "LOW_RISK"
	case MediumRisk:
		return "MEDIUM_RISK"
	case HighRisk:
		return "HIGH_RISK"
	case VeryHighRisk:
		return "VERY_HIGH_RISK"
	default:
		return "UNKNOWN"
	}
}

// Grade maps the profile's risk/reward ratio to an ordinal label. Zero max
// loss grades RiskFree; otherwise thresholds at 3.0, 1.5 and 0.5 separate
// the bands. Monotonic: a higher ratio never grades worse.
func (p RiskProfile) Grade() Grade {
	if p.MaxLoss == 0 {
		return RiskFree
	}
	switch r := p.RiskReward; {
	case r >= 3.0:
		return LowRisk
	case r >= 1.5:
		return MediumRisk
	case r >= 0.5:
		return HighRisk
	default:
		return VeryHighRisk
	}
}
