package domain

type ChatType int

const (
	ChatTypeChat ChatType = iota
	ChatTypeSystem
	ChatTypeActionBar
)

func (t ChatType) String() string {
	switch t {
	case ChatTypeChat:
		return "CHAT"
	case ChatTypeSystem:
		return "SYSTEM"
	case ChatTypeActionBar:
		return "ACTION_BAR"
	default:
		return "UNKNOWN"
	}
}
