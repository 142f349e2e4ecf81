// Package pulsaradmin implements the admin port against the Pulsar
// admin REST API (/admin/v2). It authenticates with either a static
// bearer token or an OAuth2 client-credentials grant and returns
// domain entities, never raw wire types.
package pulsaradmin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/bloznelis/lgm/configs"
	"github.com/bloznelis/lgm/internal/domain/entity"
)

// Client talks to one Pulsar admin web service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client from the loaded configuration. OAuth2
// token refresh is handled transparently by the oauth2 transport.
func NewClient(cfg *configs.Config) *Client {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	switch {
	case cfg.Auth.Token != "":
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Auth.Token})
		httpClient.Transport = &oauth2.Transport{Source: src}
	case cfg.Auth.OAuth2 != nil:
		cc := clientcredentials.Config{
			ClientID:     cfg.Auth.OAuth2.ClientID,
			ClientSecret: cfg.Auth.OAuth2.ClientSecret,
			TokenURL:     cfg.Auth.OAuth2.TokenURL,
		}
		if cfg.Auth.OAuth2.Audience != "" {
			cc.EndpointParams = url.Values{"audience": {cfg.Auth.OAuth2.Audience}}
		}
		httpClient.Transport = &oauth2.Transport{Source: cc.TokenSource(context.Background())}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.AdminURL, "/"),
		http:    httpClient,
	}
}

// ListTenants returns all tenants, sorted by name.
func (c *Client) ListTenants(ctx context.Context) ([]entity.ResourceItem, error) {
	var names []string
	if err := c.getJSON(ctx, "/admin/v2/tenants", &names); err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return namedItems(names, func(n string) string { return n }), nil
}

// ListNamespaces returns the tenant's namespaces with the "tenant/"
// prefix stripped for display, sorted by name.
func (c *Client) ListNamespaces(ctx context.Context, tenant string) ([]entity.ResourceItem, error) {
	var names []string
	path := fmt.Sprintf("/admin/v2/namespaces/%s", url.PathEscape(tenant))
	if err := c.getJSON(ctx, path, &names); err != nil {
		return nil, fmt.Errorf("list namespaces for %s: %w", tenant, err)
	}
	prefix := tenant + "/"
	return namedItems(names, func(n string) string {
		return strings.TrimPrefix(n, prefix)
	}), nil
}

// ListTopics returns the namespace's topics. The short name drops the
// persistent://tenant/namespace/ part; the FQN is kept for admin calls
// that need it.
func (c *Client) ListTopics(ctx context.Context, tenant, namespace string) ([]entity.ResourceItem, error) {
	var names []string
	path := fmt.Sprintf("/admin/v2/namespaces/%s/%s/topics",
		url.PathEscape(tenant), url.PathEscape(namespace))
	if err := c.getJSON(ctx, path, &names); err != nil {
		return nil, fmt.Errorf("list topics for %s/%s: %w", tenant, namespace, err)
	}

	items := make([]entity.ResourceItem, 0, len(names))
	for _, fqn := range names {
		short := fqn
		if i := strings.LastIndex(fqn, "/"); i >= 0 {
			short = fqn[i+1:]
		}
		items = append(items, entity.ResourceItem{Name: short, FQN: fqn})
	}
	sortItems(items)
	return items, nil
}

// topicStats is the slice of the persistent topic stats payload the
// browser cares about.
type topicStats struct {
	Subscriptions map[string]subscriptionStats `json:"subscriptions"`
}

type subscriptionStats struct {
	Type       string          `json:"type"`
	MsgBacklog int64           `json:"msgBacklog"`
	MsgRateOut float64         `json:"msgRateOut"`
	Consumers  []consumerStats `json:"consumers"`
}

type consumerStats struct {
	ConsumerName    string `json:"consumerName"`
	UnackedMessages int64  `json:"unackedMessages"`
	ConnectedSince  string `json:"connectedSince"`
}

// ListSubscriptions returns the topic's subscriptions with summary
// metadata from the topic stats: type, backlog and consumer count.
// When the stats call fails the plain name list is returned instead,
// so a stats hiccup never blanks the level.
func (c *Client) ListSubscriptions(ctx context.Context, tenant, namespace, topic string) ([]entity.ResourceItem, error) {
	var names []string
	base := c.topicPath(tenant, namespace, topic)
	if err := c.getJSON(ctx, base+"/subscriptions", &names); err != nil {
		return nil, fmt.Errorf("list subscriptions for %s: %w", topic, err)
	}

	var stats topicStats
	statsErr := c.getJSON(ctx, base+"/stats", &stats)

	items := make([]entity.ResourceItem, 0, len(names))
	for _, name := range names {
		item := entity.ResourceItem{Name: name}
		if statsErr == nil {
			if s, ok := stats.Subscriptions[name]; ok {
				item.SubType = s.Type
				item.BacklogSize = s.MsgBacklog
				item.ConsumerCount = len(s.Consumers)
				item.HasMeta = true
			}
		}
		items = append(items, item)
	}
	sortItems(items)
	return items, nil
}

// GetSubscriptionDetail fetches per-subscription stats including the
// connected consumers.
func (c *Client) GetSubscriptionDetail(ctx context.Context, tenant, namespace, topic, subscription string) (*entity.SubscriptionDetail, error) {
	var stats topicStats
	if err := c.getJSON(ctx, c.topicPath(tenant, namespace, topic)+"/stats", &stats); err != nil {
		return nil, fmt.Errorf("stats for %s: %w", topic, err)
	}
	s, ok := stats.Subscriptions[subscription]
	if !ok {
		return nil, fmt.Errorf("subscription %s not found on %s", subscription, topic)
	}

	detail := &entity.SubscriptionDetail{
		Name:        subscription,
		Type:        s.Type,
		BacklogSize: s.MsgBacklog,
		MsgRateOut:  s.MsgRateOut,
	}
	for _, con := range s.Consumers {
		detail.Consumers = append(detail.Consumers, entity.ConsumerInfo{
			Name:            con.ConsumerName,
			UnackedMessages: con.UnackedMessages,
			ConnectedSince:  con.ConnectedSince,
		})
	}
	sort.Slice(detail.Consumers, func(i, j int) bool {
		return detail.Consumers[i].Name < detail.Consumers[j].Name
	})
	return detail, nil
}

// DeleteSubscription removes the subscription from the topic.
func (c *Client) DeleteSubscription(ctx context.Context, tenant, namespace, topic, subscription string) error {
	path := c.subscriptionPath(tenant, namespace, topic, subscription)
	if err := c.do(ctx, http.MethodDelete, path); err != nil {
		return fmt.Errorf("delete subscription %s: %w", subscription, err)
	}
	return nil
}

// SkipAllMessages clears the subscription's backlog.
func (c *Client) SkipAllMessages(ctx context.Context, tenant, namespace, topic, subscription string) error {
	path := c.subscriptionPath(tenant, namespace, topic, subscription) + "/skip_all"
	if err := c.do(ctx, http.MethodPost, path); err != nil {
		return fmt.Errorf("skip messages on %s: %w", subscription, err)
	}
	return nil
}

// ResetCursor seeks the subscription back the given number of hours.
func (c *Client) ResetCursor(ctx context.Context, tenant, namespace, topic, subscription string, hoursBack int) error {
	ts := time.Now().Add(-time.Duration(hoursBack) * time.Hour).UnixMilli()
	path := fmt.Sprintf("%s/resetcursor/%d",
		c.subscriptionPath(tenant, namespace, topic, subscription), ts)
	if err := c.do(ctx, http.MethodPost, path); err != nil {
		return fmt.Errorf("reset cursor on %s: %w", subscription, err)
	}
	return nil
}

func (c *Client) topicPath(tenant, namespace, topic string) string {
	return fmt.Sprintf("/admin/v2/persistent/%s/%s/%s",
		url.PathEscape(tenant), url.PathEscape(namespace), url.PathEscape(topic))
}

func (c *Client) subscriptionPath(tenant, namespace, topic, subscription string) string {
	return fmt.Sprintf("%s/subscription/%s",
		c.topicPath(tenant, namespace, topic), url.PathEscape(subscription))
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// do performs a bodyless mutating request and checks the status.
func (c *Client) do(ctx context.Context, method, path string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}
	return nil
}

// statusError folds a non-2xx response into an error. The admin API
// sometimes puts the reason in the body, so a short prefix is kept.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
	reason := strings.TrimSpace(string(body))
	if reason == "" {
		return fmt.Errorf("admin API returned %s", resp.Status)
	}
	return fmt.Errorf("admin API returned %s: %s", resp.Status, reason)
}

func namedItems(names []string, display func(string) string) []entity.ResourceItem {
	items := make([]entity.ResourceItem, 0, len(names))
	for _, n := range names {
		items = append(items, entity.ResourceItem{Name: display(n)})
	}
	sortItems(items)
	return items
}

func sortItems(items []entity.ResourceItem) {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
}
