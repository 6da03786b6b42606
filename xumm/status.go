package xumm

// PayloadStatus is the interpretation of a sign-request's resolution
// flags. Derived on every lookup, never stored.
type PayloadStatus string

const (
	NOT_FOUND_PS      PayloadStatus = "NOT_FOUND"
	SIGNED_PS         PayloadStatus = "SIGNED"
	REJECTED_PS       PayloadStatus = "REJECTED"
	CANCELLED_PS      PayloadStatus = "CANCELLED"
	EXPIRED_PS        PayloadStatus = "EXPIRED"
	EXPIRED_SIGNED_PS PayloadStatus = "EXPIRED_SIGNED"
	NOT_INTERACTED_PS PayloadStatus = "NOT_INTERACTED"
)

func (s PayloadStatus) Match(in PayloadStatus) bool {
	return s == in
}

// Settled reports whether the user approved the sign-request, whether
// or not it also ran out the clock.
func (s PayloadStatus) Settled() bool {
	return s == SIGNED_PS || s == EXPIRED_SIGNED_PS
}

func (s PayloadStatus) String() string {
	switch s {
	case NOT_FOUND_PS:
		return "Not found"
	case SIGNED_PS:
		return "Signed"
	case REJECTED_PS:
		return "Rejected"
	case CANCELLED_PS:
		return "Cancelled"
	case EXPIRED_PS:
		return "Expired"
	case EXPIRED_SIGNED_PS:
		return "Expired signed"
	case NOT_INTERACTED_PS:
		return "Not interacted"
	}
	return string(s)
}

// ResolveStatus classifies a sign-request. The expired check on a
// signed payload comes before the plain signed case so a late
// signature is not mistaken for a timely one.
func ResolveStatus(p *Payload) PayloadStatus {
	switch {
	case p == nil:
		return NOT_FOUND_PS
	case p.Meta.Resolved && p.Meta.Signed && p.Meta.Expired:
		return EXPIRED_SIGNED_PS
	case p.Meta.Resolved && p.Meta.Signed:
		return SIGNED_PS
	case p.Meta.Resolved:
		return REJECTED_PS
	case p.Meta.Cancelled && p.Meta.Expired:
		return CANCELLED_PS
	case p.Meta.Expired:
		return EXPIRED_PS
	default:
		return NOT_INTERACTED_PS
	}
}
