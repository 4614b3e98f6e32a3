// Package actuator delivers speed advisories to the roadside sign
// simulation over UDP.
package actuator

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"

	"traffic-advisory-service/internal/domain"
)

// SignClient sends each advisory as a single datagram containing the speed
// as decimal text. No acknowledgement is expected and failures are left to
// the caller to log; the next tick sends a fresh value regardless.
type SignClient struct {
	mu   sync.Mutex
	conn net.Conn
}

// NewSignClient resolves the sign address once and keeps the connected UDP
// socket for the process lifetime.
func NewSignClient(address string) (*SignClient, error) {
	conn, err := net.Dial("udp", address)
	if err != nil {
		return nil, fmt.Errorf("actuator: dial %s: %w", address, err)
	}
	return &SignClient{conn: conn}, nil
}

func (c *SignClient) SendAdvisory(_ context.Context, speedMPS float64) error {
	payload := strconv.FormatFloat(speedMPS, 'f', 2, 64)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return fmt.Errorf("actuator: client closed")
	}
	if _, err := c.conn.Write([]byte(payload)); err != nil {
		return fmt.Errorf("actuator: send advisory: %w", err)
	}
	return nil
}

func (c *SignClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

var _ domain.ActuatorTransport = (*SignClient)(nil)

// Noop discards advisories; used when no sign endpoint is configured.
type Noop struct{}

func (Noop) SendAdvisory(context.Context, float64) error { return nil }
func (Noop) Close() error                                { return nil }

var _ domain.ActuatorTransport = Noop{}
