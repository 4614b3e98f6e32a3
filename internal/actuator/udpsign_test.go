package actuator

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignClientSendsSpeedAsText(t *testing.T) {
	listener, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	client, err := NewSignClient(listener.LocalAddr().String())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.SendAdvisory(context.Background(), 23.666666))

	require.NoError(t, listener.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 64)
	n, _, err := listener.ReadFrom(buf)
	require.NoError(t, err)

	assert.Equal(t, "23.67", string(buf[:n]))
}

func TestSignClientSendsOneDatagramPerAdvisory(t *testing.T) {
	listener, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	client, err := NewSignClient(listener.LocalAddr().String())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.SendAdvisory(context.Background(), 25))
	require.NoError(t, client.SendAdvisory(context.Background(), 5))

	buf := make([]byte, 64)
	for _, want := range []string{"25.00", "5.00"} {
		require.NoError(t, listener.SetReadDeadline(time.Now().Add(2*time.Second)))
		n, _, err := listener.ReadFrom(buf)
		require.NoError(t, err)
		assert.Equal(t, want, string(buf[:n]))
	}
}

func TestSignClientSendAfterCloseFails(t *testing.T) {
	listener, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	client, err := NewSignClient(listener.LocalAddr().String())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	assert.Error(t, client.SendAdvisory(context.Background(), 10))
	// Closing twice is harmless.
	assert.NoError(t, client.Close())
}

func TestNoopDiscardsAdvisories(t *testing.T) {
	var n Noop
	assert.NoError(t, n.SendAdvisory(context.Background(), 12.5))
	assert.NoError(t, n.Close())
}
