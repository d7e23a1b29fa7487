package requestid

// Outcome describes how a header value was reconciled.
type Outcome int

const (
	// Generated means no header was present and a single ID was created.
	Generated Outcome = iota
	// Preserved means an existing value was unique and is returned unchanged.
	Preserved
	// Appended means no existing value was unique and an ID was appended.
	Appended
)

func (o Outcome) String() string {
	switch o {
	case Generated:
		return "generated"
	case Preserved:
		return "preserved"
	case Appended:
		return "appended"
	default:
		return "unknown"
	}
}

// Result is the outcome of a reconciliation.
type Result struct {
	// Value is the header value to forward downstream and echo back.
	Value   string
	Outcome Outcome
	// Generated holds the new ID, empty when the outcome is Preserved.
	Generated string
}

// Reconciler computes request ID header values. It holds no mutable state and
// is safe for concurrent use.
type Reconciler struct {
	prefix   string
	generate Generator
}

// NewReconciler returns a Reconciler for cfg.
func NewReconciler(cfg Config) *Reconciler {
	return &Reconciler{
		prefix:   cfg.UniqueValuePrefix,
		generate: cfg.generator(),
	}
}

// Reconcile ensures the header value holds at least one unique ID. present
// tells an absent header apart from one sent with an empty value.
func (rc *Reconciler) Reconcile(existing string, present bool) Result {
	if !present {
		id := rc.generate()
		return Result{Value: id, Outcome: Generated, Generated: id}
	}

	for _, token := range Tokens(existing) {
		if IsUnique(token, rc.prefix) {
			return Result{Value: existing, Outcome: Preserved}
		}
	}

	id := rc.generate()
	return Result{Value: existing + separator + id, Outcome: Appended, Generated: id}
}

// Header is Reconcile returning only the resulting value.
func (rc *Reconciler) Header(existing string, present bool) string {
	return rc.Reconcile(existing, present).Value
}

// Reconcile computes a header value with the default generator.
func Reconcile(existing string, present bool, prefix string) string {
	return NewReconciler(Config{UniqueValuePrefix: prefix}).Header(existing, present)
}
