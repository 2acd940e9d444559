package delivery

import "errors"

// User facing notices for failed lookups.
const (
	NoticeNotFound      = "CEP não encontrado."
	NoticeUndeliverable = "Não entregamos no bairro informado."
	NoticeLookupFailed  = "Erro ao buscar o endereço. Verifique o CEP."
)

// Resolution is the delivery state of a session. Resolved is the only signal that a
// zone is known; a zero fee is a legitimate free delivery.
type Resolution struct {
	Resolved bool
	Zone     Zone
}

// Ticket identifies one begun lookup.
type Ticket struct {
	Code  string
	token uint64
}

// Outcome describes what completing a lookup did to the tracker.
type Outcome struct {
	// Applied is false when the response was stale and discarded.
	Applied bool
	// Reset is true when the zone was cleared and the postal code input should be emptied.
	Reset bool
	// Notice is the message to show the visitor, empty on success.
	Notice string
	// Err is the lookup error, nil on success.
	Err error
	// Result is a short label for metrics: resolved, not_found, undeliverable,
	// failed or stale.
	Result string
}

// Tracker keeps the delivery state of one session. It is not safe for concurrent use;
// the owning session serializes access.
type Tracker struct {
	resolution Resolution
	lastCode   string
	token      uint64
	// pending is the code of the latest begun lookup, empty once it completed.
	pending string
}

// Resolution returns the current delivery state.
func (t *Tracker) Resolution() Resolution {
	return t.resolution
}

// LastCode returns the last successfully resolved postal code.
func (t *Tracker) LastCode() string {
	return t.lastCode
}

// Begin starts a lookup for raw. It returns false when no lookup is needed: the code is
// incomplete or it is the code already resolved. Returning to the resolved code while
// another lookup is in flight supersedes that lookup.
func (t *Tracker) Begin(raw string) (Ticket, bool) {
	code, ok := NormalizePostalCode(raw)
	if !ok {
		return Ticket{}, false
	}
	if t.resolution.Resolved && code == t.lastCode {
		if t.pending != "" {
			t.token++
			t.pending = ""
		}
		return Ticket{}, false
	}
	t.token++
	t.pending = code
	return Ticket{Code: code, token: t.token}, true
}

// Complete applies the result of the lookup started with ticket. Only the most recently
// begun lookup may change state.
func (t *Tracker) Complete(ticket Ticket, zone Zone, err error) Outcome {
	if ticket.token != t.token {
		return Outcome{Result: "stale"}
	}
	t.pending = ""

	if err == nil {
		t.resolution = Resolution{Resolved: true, Zone: zone}
		t.lastCode = ticket.Code
		return Outcome{Applied: true, Result: "resolved"}
	}

	t.Reset()
	out := Outcome{Applied: true, Reset: true, Err: err}
	switch {
	case errors.Is(err, ErrPostalCodeNotFound):
		out.Notice, out.Result = NoticeNotFound, "not_found"
	case errors.Is(err, ErrUndeliverable):
		out.Notice, out.Result = NoticeUndeliverable, "undeliverable"
	default:
		out.Notice, out.Result = NoticeLookupFailed, "failed"
	}
	return out
}

// Reset clears the resolved zone and the remembered code.
func (t *Tracker) Reset() {
	t.resolution = Resolution{}
	t.lastCode = ""
}
