// Package port defines the interfaces (ports) for the domain layer.
// These interfaces decouple the navigation core from the HTTP adapter,
// following the dependency inversion principle.
package port

import (
	"context"

	"github.com/bloznelis/lgm/internal/domain/entity"
)

// PulsarAdmin defines the admin API operations the TUI consumes.
// Implementations perform the actual network calls; the navigation
// core only ever sees this contract.
type PulsarAdmin interface {
	// Listing operations, one per hierarchy level.
	ListTenants(ctx context.Context) ([]entity.ResourceItem, error)
	ListNamespaces(ctx context.Context, tenant string) ([]entity.ResourceItem, error)
	ListTopics(ctx context.Context, tenant, namespace string) ([]entity.ResourceItem, error)
	ListSubscriptions(ctx context.Context, tenant, namespace, topic string) ([]entity.ResourceItem, error)

	// GetSubscriptionDetail fetches per-subscription stats including
	// connected consumers, for the detail screen.
	GetSubscriptionDetail(ctx context.Context, tenant, namespace, topic, subscription string) (*entity.SubscriptionDetail, error)

	// Subscription lifecycle actions.
	DeleteSubscription(ctx context.Context, tenant, namespace, topic, subscription string) error
	SkipAllMessages(ctx context.Context, tenant, namespace, topic, subscription string) error
	ResetCursor(ctx context.Context, tenant, namespace, topic, subscription string, hoursBack int) error
}

// List dispatches to the listing operation matching the level addressed
// by path. This keeps the per-level switch in one place instead of
// spreading it across every fetch site.
func List(ctx context.Context, admin PulsarAdmin, level entity.Level, path entity.Path) ([]entity.ResourceItem, error) {
	switch level {
	case entity.LevelTenants:
		return admin.ListTenants(ctx)
	case entity.LevelNamespaces:
		return admin.ListNamespaces(ctx, path.Tenant)
	case entity.LevelTopics:
		return admin.ListTopics(ctx, path.Tenant, path.Namespace)
	default:
		return admin.ListSubscriptions(ctx, path.Tenant, path.Namespace, path.Topic)
	}
}
