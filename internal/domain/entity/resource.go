// Package entity defines the core domain entities for lgm.
// These entities model the Pulsar admin resource hierarchy and are
// independent of any external framework or infrastructure.
package entity

// Level identifies one of the four hierarchical resource categories,
// ordered by depth. Tenants is the shallowest, Subscriptions the deepest.
type Level int

// Resource levels in drill-down order.
const (
	LevelTenants Level = iota
	LevelNamespaces
	LevelTopics
	LevelSubscriptions
)

// levelNames maps each level to its display name.
var levelNames = [...]string{
	LevelTenants:       "tenants",
	LevelNamespaces:    "namespaces",
	LevelTopics:        "topics",
	LevelSubscriptions: "subscriptions",
}

// String returns the lowercase display name of the level.
func (l Level) String() string {
	if l < LevelTenants || l > LevelSubscriptions {
		return "unknown"
	}
	return levelNames[l]
}

// Next returns the level one step deeper in the hierarchy.
// Calling Next on Subscriptions returns Subscriptions itself;
// callers must check Terminal before drilling in.
func (l Level) Next() Level {
	if l >= LevelSubscriptions {
		return LevelSubscriptions
	}
	return l + 1
}

// Terminal reports whether the level is the deepest one,
// below which no further drill-down exists.
func (l Level) Terminal() bool {
	return l == LevelSubscriptions
}

// Path holds the parent segments that address a level.
// A Tenants listing needs no segments, Namespaces needs Tenant,
// Topics needs Tenant+Namespace, Subscriptions all three.
type Path struct {
	Tenant    string
	Namespace string
	Topic     string
}

// Child returns the path extended with the given segment at the
// position appropriate for the level being drilled into.
func (p Path) Child(from Level, segment string) Path {
	switch from {
	case LevelTenants:
		p.Tenant = segment
	case LevelNamespaces:
		p.Namespace = segment
	case LevelTopics:
		p.Topic = segment
	}
	return p
}

// Segments returns the non-empty path parts in hierarchy order.
func (p Path) Segments() []string {
	var out []string
	for _, s := range []string{p.Tenant, p.Namespace, p.Topic} {
		if s == "" {
			break
		}
		out = append(out, s)
	}
	return out
}

// ResourceItem is one row at any level of the hierarchy: a tenant,
// namespace, topic or subscription name plus optional summary metadata.
// Metadata is populated lazily and only for subscriptions.
type ResourceItem struct {
	// Name is the short display name (namespace without tenant prefix,
	// topic without the persistent:// scheme).
	Name string

	// FQN is the fully qualified name as the admin API knows it.
	// Empty when it does not differ from Name.
	FQN string

	// SubType is the subscription type (Exclusive, Shared, Failover,
	// Key_Shared). Only set for subscription rows.
	SubType string

	// BacklogSize is the subscription backlog in messages.
	BacklogSize int64

	// ConsumerCount is the number of connected consumers.
	ConsumerCount int

	// HasMeta reports whether the summary metadata fields are populated.
	HasMeta bool
}

// ConsumerInfo describes one consumer connected to a subscription.
type ConsumerInfo struct {
	Name            string
	UnackedMessages int64
	ConnectedSince  string
}

// SubscriptionDetail is the full per-subscription view fetched on demand
// for the detail screen.
type SubscriptionDetail struct {
	Name        string
	Type        string
	BacklogSize int64
	MsgRateOut  float64
	Consumers   []ConsumerInfo
}
