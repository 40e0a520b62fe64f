package interfaces

import (
	"gwansang/internal/domain/entities"
	"time"
)

type IClock interface {
	Now() time.Time
}

// IMatchPolicyProvider returns the current correlation scoring policy.
// Implementations may reload it at runtime.
type IMatchPolicyProvider interface {
	Get() entities.MatchPolicy
}
