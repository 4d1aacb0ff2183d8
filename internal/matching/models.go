package matching

// Role identifies which side of a collaborator search a profile sits on
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

// ExperienceLevel is the self-reported research experience of a student
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// IsValid reports whether the level is one of the known values
func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	default:
		return false
	}
}

// CandidateProfile is a read-only snapshot of a user that can be recommended
type CandidateProfile struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Role            Role             `json:"role"`
	Department      string           `json:"department"`
	Interests       *string          `json:"research_interests,omitempty"`
	ExperienceLevel *ExperienceLevel `json:"experience_level,omitempty"`
}

// InterestsRaw returns the raw interests string, or "" when absent
func (c CandidateProfile) InterestsRaw() string {
	if c.Interests == nil {
		return ""
	}
	return *c.Interests
}

// ScoredCandidate is a candidate annotated with its compatibility score
type ScoredCandidate struct {
	CandidateProfile
	Compatibility int `json:"compatibility"`
}
