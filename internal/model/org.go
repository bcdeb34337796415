package model

// Role represents an access role. Roles live in the local repository only;
// there is no backend table for them.
type Role struct {
	ID          string
	Name        string
	Description string
	Status      Status
	CreatedAt   string
}

// User represents a console user account. RoleName is denormalized from the
// role list at save time.
type User struct {
	ID        string
	Name      string
	Email     string
	RoleID    string
	RoleName  string
	Status    Status
	CreatedAt string
}

// Operator represents a field operator account
type Operator struct {
	ID           int
	LoginName    string
	IsSuperAdmin bool
	IsDisabled   bool
	UserName     string
	CellPhone    string
	CreatedAt    string
}

// OperatorArea is a node of the organizational tree operators hang off of
type OperatorArea struct {
	ID        int
	Name      string
	Operators []Operator
	Children  []*OperatorArea
}

// Area is an organizational area record (area management page)
type Area struct {
	ID          int
	Name        string
	No          string
	Code        string
	Sort        int
	PushAddress string
	Note        string
	Time        string
}
