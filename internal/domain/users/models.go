package users

// Role determines what a signed-in user may do. Organizers manage games;
// viewers follow them.
type Role string

const (
	RoleOrganizer Role = "ORGANIZER"
	RoleViewer    Role = "VIEWER"
)

// Valid reports whether the role is a known role.
func (r Role) Valid() bool {
	return r == RoleOrganizer || r == RoleViewer
}

// AccountStatus gates organizer accounts behind administrative approval.
type AccountStatus string

const (
	StatusPending  AccountStatus = "PENDING"
	StatusApproved AccountStatus = "APPROVED"
)

// DefaultStatusFor returns the account status a freshly registered role
// starts with. Organizer accounts wait for approval; viewers never do.
func DefaultStatusFor(role Role) AccountStatus {
	if role == RoleOrganizer {
		return StatusPending
	}
	return StatusApproved
}

// Profile is the current user, persisted as the session record.
type Profile struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Role       Role          `json:"role"`
	Status     AccountStatus `json:"status"`
	AvatarURL  string        `json:"avatarUrl,omitempty"`
	DistrictID string        `json:"districtId,omitempty"`
	VillageID  string        `json:"villageId,omitempty"`
	Area       string        `json:"area,omitempty"`
}

// PendingOrganizer reports whether the profile is an organizer still waiting
// for approval, which blocks the main app behind the pending screen.
func (p Profile) PendingOrganizer() bool {
	return p.Role == RoleOrganizer && p.Status == StatusPending
}
