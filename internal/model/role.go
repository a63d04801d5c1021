package model

func ParseRole(s string) Role {
	switch s {
	case "bot", "assistant":
		return RoleBot
	default:
		return RoleUser
	}
}
