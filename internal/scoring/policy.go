package scoring

// Weights are the fixed section weights for the overall score. They sum to
// 1.0 and are invariant constants, not tunables the pipeline may silently
// change.
type Weights struct {
	PersonalInfo   float64 `json:"personalInfo"`
	WorkExperience float64 `json:"workExperience"`
	Education      float64 `json:"education"`
	Skills         float64 `json:"skills"`
}

// ReviewThresholds are the policy floors that force manual review. Overall
// is the global floor; PersonalInfo and WorkExperience are critical-section
// floors that fire independently of the overall score.
type ReviewThresholds struct {
	Overall        float64 `json:"overall"`
	PersonalInfo   float64 `json:"personalInfo"`
	WorkExperience float64 `json:"workExperience"`
}

// Policy bundles the scoring constants, passed to the Scorer at construction
// time so they can be tested independently of the algorithm.
type Policy struct {
	Weights Weights          `json:"weights"`
	Review  ReviewThresholds `json:"review"`
}

// DefaultPolicy returns the invariant scoring constants.
func DefaultPolicy() Policy {
	return Policy{
		Weights: Weights{
			PersonalInfo:   0.30,
			WorkExperience: 0.35,
			Education:      0.20,
			Skills:         0.15,
		},
		Review: ReviewThresholds{
			Overall:        0.6,
			PersonalInfo:   0.3,
			WorkExperience: 0.3,
		},
	}
}
