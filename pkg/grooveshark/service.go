package grooveshark

import (
	"context"
	"encoding/json"
)

// Ping checks that the service is reachable and accepts the key.
func (c *Client) Ping(ctx context.Context) (json.RawMessage, error) {
	return c.Invoke(ctx, "pingService", nil)
}

// ServiceDescription returns the service's description of its methods.
func (c *Client) ServiceDescription(ctx context.Context) (json.RawMessage, error) {
	return c.Invoke(ctx, "getServiceDescription", nil)
}
