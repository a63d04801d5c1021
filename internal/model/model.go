package model

type Role string

const (
	RoleUser = Role("user")
	RoleBot  = Role("bot")
)

// Turn is a single message of a conversation. Turns are immutable once
// created; ordering is chronological.
type Turn struct {
	Role    Role
	Content string
}
