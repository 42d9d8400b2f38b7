// Package memo memoizes utf8codec.Parse through a byte cache provider.
//
// Entries are framed (see internal/wire) and checked on every read: the
// frame must decode, every group must pass utf8codec.Validate and the groups
// must stringify back to the requested text. Anything else is deleted and
// recomputed, so a hit is always identical to a fresh Parse.
//
// Keys:
//
//	parse:<ns>:<sha256(text)[:8] hex>
package memo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unkn0wn-root/utf8codec"
	"github.com/unkn0wn-root/utf8codec/internal/util"
	"github.com/unkn0wn-root/utf8codec/internal/wire"
	pr "github.com/unkn0wn-root/utf8codec/provider"
)

const defaultTTL = 10 * time.Minute

// SetCostFunc computes the provider cost of an entry. The default is the
// frame length, which turns a cost-based provider's budget into bytes.
type SetCostFunc func(key string, raw []byte) int64

// Options tune a Memo. Only Namespace and Provider are required.
type Options struct {
	Namespace string // logical namespace, e.g. "chat:messages"
	Provider  pr.Provider

	Logger         utf8codec.Logger    // nil => NopLogger
	Hooks          Hooks               // nil => NopHooks
	TTL            time.Duration       // 0 => 10m; <0 => no expiry
	Segmenter      utf8codec.Segmenter // nil => utf8codec.DefaultSegmenter
	ComputeSetCost SetCostFunc         // nil => len(raw)
	Disabled       bool                // bypass the provider entirely
}

// Memo is safe for concurrent use if its Provider is.
type Memo struct {
	ns       string
	provider pr.Provider
	log      utf8codec.Logger
	hooks    Hooks
	ttl      time.Duration
	seg      utf8codec.Segmenter
	cost     SetCostFunc
	enabled  bool
}

func New(opts Options) (*Memo, error) {
	if opts.Provider == nil {
		return nil, errors.New("memo: provider is required")
	}
	if opts.Namespace == "" {
		return nil, errors.New("memo: namespace is required")
	}

	m := &Memo{
		ns:       opts.Namespace,
		provider: opts.Provider,
		enabled:  !opts.Disabled,
	}
	m.log = coalesce[utf8codec.Logger](opts.Logger, utf8codec.NopLogger{})
	m.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	m.seg = coalesce[utf8codec.Segmenter](opts.Segmenter, utf8codec.DefaultSegmenter)
	m.ttl = coalesce[time.Duration](opts.TTL, defaultTTL)
	if m.ttl < 0 {
		m.ttl = 0
	}
	if opts.ComputeSetCost != nil {
		m.cost = opts.ComputeSetCost
	} else {
		m.cost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return m, nil
}

func (m *Memo) Enabled() bool { return m.enabled }

func (m *Memo) Close(ctx context.Context) error {
	return m.provider.Close(ctx)
}

// Parse returns utf8codec.ParseWith for text, serving it from the provider
// when a valid entry exists. Provider failures never fail Parse; they are
// logged, reported through Hooks and the result is computed directly.
// The returned Groups never alias provider memory.
func (m *Memo) Parse(ctx context.Context, text string) (utf8codec.Groups, error) {
	if !m.enabled {
		return utf8codec.ParseWith(m.seg, text)
	}

	k := m.key(text)
	if g, ok := m.lookup(ctx, k, text); ok {
		return g, nil
	}

	g, err := utf8codec.ParseWith(m.seg, text)
	if err != nil {
		return nil, err
	}
	m.store(ctx, k, g)
	return g, nil
}

// Stringify is utf8codec.Stringify; results are not memoized.
func (m *Memo) Stringify(g utf8codec.Groups) (string, error) {
	return utf8codec.Stringify(g)
}

// Invalidate drops the entry for text.
func (m *Memo) Invalidate(ctx context.Context, text string) error {
	if !m.enabled {
		return nil
	}
	k := m.key(text)
	if err := m.provider.Del(ctx, k); err != nil {
		m.hooks.ProviderError("del", k, err)
		return fmt.Errorf("memo: invalidate %s: %w", k, err)
	}
	m.log.Debug("invalidated entry", utf8codec.Fields{"key": k})
	return nil
}

func (m *Memo) lookup(ctx context.Context, k, text string) (utf8codec.Groups, bool) {
	raw, ok, err := m.provider.Get(ctx, k)
	if err != nil {
		m.log.Warn("provider get failed; computing", utf8codec.Fields{"key": k, "err": err})
		m.hooks.ProviderError("get", k, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	groups, err := wire.DecodeGroups(raw)
	if err != nil {
		m.selfHeal(ctx, k, "corrupt")
		return nil, false
	}
	g := utf8codec.Groups(groups)
	if g.Check() != nil {
		m.selfHeal(ctx, k, "invalid_group")
		return nil, false
	}
	// keys are truncated hashes; confirm the entry belongs to this text.
	// Stringify is canonical, so matching both forms also rules out
	// overlong groups.
	if s, err := utf8codec.Stringify(g); err != nil || s != text || string(g.Bytes()) != text {
		m.selfHeal(ctx, k, "text_mismatch")
		return nil, false
	}
	return g.Clone(), true
}

func (m *Memo) store(ctx context.Context, k string, g utf8codec.Groups) {
	raw, err := wire.EncodeGroups(g)
	if err != nil {
		// unreachable for Parse output; groups are 1-4 bytes
		m.log.Error("frame encode failed", utf8codec.Fields{"key": k, "err": err})
		return
	}
	ok, err := m.provider.Set(ctx, k, raw, m.cost(k, raw), m.ttl)
	if err != nil {
		m.log.Warn("provider set failed", utf8codec.Fields{"key": k, "err": err})
		m.hooks.ProviderError("set", k, err)
		return
	}
	if !ok {
		m.log.Debug("set rejected by provider (pressure)", utf8codec.Fields{"key": k})
		m.hooks.ProviderSetRejected(k)
	}
}

func (m *Memo) selfHeal(ctx context.Context, k, reason string) {
	m.log.Debug("dropping stored entry", utf8codec.Fields{"key": k, "reason": reason})
	m.hooks.SelfHeal(k, reason)
	if err := m.provider.Del(ctx, k); err != nil {
		m.hooks.ProviderError("del", k, err)
	}
}

func (m *Memo) key(text string) string {
	return util.EntryKey("parse:"+m.ns, text)
}
