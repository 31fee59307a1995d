package domain

// CardState is the resolved visual state of a media card. A card is always in
// exactly one state; when multiple backend flags are set, precedence is
// in-library > requested > pending.
type CardState int

const (
	// CardAvailable shows a request affordance.
	CardAvailable CardState = iota
	// CardPending shows a clock badge; no request and no delete affordance.
	CardPending
	// CardRequested shows a bookmark badge and keeps a delete affordance.
	CardRequested
	// CardComplete shows a checkmark badge and is non-interactive.
	CardComplete
)

// String returns the state name for logs and badges.
func (s CardState) String() string {
	switch s {
	case CardComplete:
		return "complete"
	case CardRequested:
		return "requested"
	case CardPending:
		return "pending"
	default:
		return "available"
	}
}

// Owned reports whether the item is in any owned state, in which case the
// request affordance is replaced by a hide/delete affordance. The substitution
// is a pure function of the state, so re-applying it has no additional effect.
func (s CardState) Owned() bool {
	return s != CardAvailable
}

// Requestable reports whether the request affordance should be shown.
func (s CardState) Requestable() bool {
	return s == CardAvailable
}

// Deletable reports whether a delete affordance should be shown.
func (s CardState) Deletable() bool {
	return s == CardRequested
}

// ResolveCardState maps backend status flags to the single visual state.
func ResolveCardState(inLibrary, requested, pending bool) CardState {
	switch {
	case inLibrary:
		return CardComplete
	case requested:
		return CardRequested
	case pending:
		return CardPending
	default:
		return CardAvailable
	}
}

// CardStatus is the flag set reported by the backend after a state-changing
// action (request submitted, import performed, status poll).
type CardStatus struct {
	InLibrary bool
	Requested bool
	Pending   bool
}

// State resolves the status flags with the standard precedence.
func (st CardStatus) State() CardState {
	return ResolveCardState(st.InLibrary, st.Requested, st.Pending)
}
