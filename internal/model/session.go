package model

// SessionUser is the current console user. Real authentication never made
// it into the system; this is the hard-coded session the pages consult for
// project visibility.
type SessionUser struct {
	Name    string
	Role    string
	Project string
}

const RoleSuperAdmin = "SUPER_ADMIN"

// DefaultSession returns the mock session the console runs under.
func DefaultSession() SessionUser {
	return SessionUser{
		Name:    "Admin GRH",
		Role:    RoleSuperAdmin,
		Project: "CESPT",
	}
}

// VisibleProjects filters the project list down to what the session user
// may see. Super-admins see everything, everyone else sees only their own
// project.
func (u SessionUser) VisibleProjects(all []string) []string {
	if u.Role == RoleSuperAdmin {
		return all
	}
	if u.Project == "" {
		return nil
	}
	return []string{u.Project}
}
