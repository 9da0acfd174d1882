package membership

type Role string

const (
	RoleMember     Role = "member"
	RoleMaintainer Role = "maintainer"
)

type State string

const (
	StateActive  State = "active"
	StatePending State = "pending"
)
