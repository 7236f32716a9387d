package constants

import "fmt"

const (
	RoleUser     = "user"
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

// Role error message templates
const (
	ErrOnlyReviewersCanAccess = "Only reviewers may access %s."
)

func RoleErrorReviewer(feature string) string {
	return fmt.Sprintf(ErrOnlyReviewersCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleReviewer,
		RoleAdmin,
	}

	ReviewerAndAbove = []string{
		RoleReviewer,
		RoleAdmin,
	}
)
