package memo

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; Memo calls them inline.
type Hooks interface {
	// A stored entry was deleted on read and recomputed.
	// reason ∈ {"corrupt", "invalid_group", "text_mismatch"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// Provider call failed. op ∈ {"get", "set", "del"}.
	ProviderError(op, storageKey string, err error)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)             {}
func (NopHooks) ProviderSetRejected(string)          {}
func (NopHooks) ProviderError(string, string, error) {}
