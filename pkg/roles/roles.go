package roles

// Role is the workflow role assigned to a user account.
type Role string

const (
	Store      Role = "store"
	Programmer Role = "programmer"
	QA         Role = "qa"
	Accounts   Role = "accounts"
	Admin      Role = "admin"
)

// CanAct reports whether the role may perform an action restricted to any of
// the required roles. Admin passes every gate.
func (r Role) CanAct(required ...Role) bool {
	if r == Admin {
		return true
	}
	for _, req := range required {
		if r == req {
			return true
		}
	}
	return false
}

func (r Role) IsValid() bool {
	switch r {
	case Store, Programmer, QA, Accounts, Admin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
