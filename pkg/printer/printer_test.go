package printer

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	require.NoError(t, err)
	assert.NoError(t, p.Print(context.Background(), []byte("x")))
	assert.False(t, p.IsConnected(context.Background()))

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)
	_, err = NewPrinterFromConfig("network", "", "")
	assert.Error(t, err)
	_, err = NewPrinterFromConfig("bluetooth", "", "")
	assert.ErrorContains(t, err, "unknown printer type")
}

func TestUSBPrinter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lp0")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	p := NewUSBPrinter(path)
	assert.True(t, p.IsConnected(context.Background()))
	require.NoError(t, p.Print(context.Background(), []byte("voucher")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "voucher", string(got))

	missing := NewUSBPrinter(filepath.Join(t.TempDir(), "nope"))
	assert.False(t, missing.IsConnected(context.Background()))
	assert.Error(t, missing.Print(context.Background(), []byte("x")))
}

func TestNetworkPrinter(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			data, _ := io.ReadAll(conn)
			conn.Close()
			if len(data) > 0 {
				received <- data
			}
		}
	}()

	p := NewNetworkPrinter(ln.Addr().String())
	assert.True(t, p.IsConnected(context.Background()))
	require.NoError(t, p.Print(context.Background(), []byte{ESC, '@', 'h', 'i'}))
	assert.Equal(t, []byte{ESC, '@', 'h', 'i'}, <-received)
}

func TestNetworkPrinter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewNetworkPrinter("127.0.0.1:9").Print(ctx, []byte("x"))
	assert.Error(t, err)
}

func TestDocument(t *testing.T) {
	doc := NewDocument(20)
	doc.KeyValue("Total", "₹ 1,000.00").ItemLine("Steel rods for tower block A", "500.00").Cut()

	out := doc.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte{ESC, '@'}))
	assert.True(t, bytes.HasSuffix(out, []byte{GS, 'V', 0x00}))

	lines := strings.Split(string(out[2:len(out)-3]), "\n")
	assert.Equal(t, "Total   Rs. 1,000.00", lines[0])
	assert.Equal(t, "Steel rods", lines[1])
	assert.Equal(t, "for tower", lines[2])
	assert.Equal(t, "block A       500.00", lines[3])
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 20, l)
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{""}, wrap("   ", 10))
	assert.Equal(t, []string{"a b c"}, wrap("a  b c", 10))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, wrap("abcdefghij", 4))
	assert.Equal(t, []string{"one", "two", "three"}, wrap("one two three", 5))
}
