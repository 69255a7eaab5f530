package domain

// UpdateType classifies a store notification and tells subscribers how much
// of their view has to be rebuilt.
type UpdateType int

const (
	// UpdateInit is emitted once when a store finished its initial load,
	// including a failed load that left the store empty.
	UpdateInit UpdateType = iota
	// UpdatePatch means a single entity changed in place; the visible set and
	// its order are unaffected.
	UpdatePatch
	// UpdateMinor means membership or ordering may have changed; the list is
	// recomputed but the sort selection is kept.
	UpdateMinor
	// UpdateMajor is UpdateMinor plus a reset of the sort selection and of any
	// open editor.
	UpdateMajor
)

func (u UpdateType) String() string {
	switch u {
	case UpdateInit:
		return "INIT"
	case UpdatePatch:
		return "PATCH"
	case UpdateMinor:
		return "MINOR"
	case UpdateMajor:
		return "MAJOR"
	}
	return "UNKNOWN"
}

// UserAction is the kind of mutation a user asked for.
type UserAction int

const (
	ActionAdd UserAction = iota
	ActionUpdate
	ActionDelete
)

func (a UserAction) String() string {
	switch a {
	case ActionAdd:
		return "ADD"
	case ActionUpdate:
		return "UPDATE"
	case ActionDelete:
		return "DELETE"
	}
	return "UNKNOWN"
}
