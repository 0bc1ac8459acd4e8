package client

import (
	"bufio"
	"net"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol"
	"github.com/Izaek256/CarRental-Server-Client/internal/testutil/testlog"
)

// echoServer answers every request line with SUCCESS|<payload> and counts
// accepted connections.
func echoServer(t *testing.T) (addr string, dials *atomic.Int32) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	var count atomic.Int32
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			count.Add(1)
			go func(c net.Conn) {
				defer c.Close()
				reader := bufio.NewReader(c)
				for {
					line, err := reader.ReadString('\n')
					if err != nil {
						return
					}
					req, err := protocol.ParseRequest(line)
					if err != nil {
						return
					}
					resp := protocol.Success(req.Payload)
					if _, err := c.Write([]byte(resp.Encode() + "\n")); err != nil {
						return
					}
				}
			}(conn)
		}
	}()
	return ln.Addr().String(), &count
}

func TestChannelReusesOneConnection(t *testing.T) {
	testlog.Start(t)
	addr, dials := echoServer(t)

	ch := NewChannel(addr, log.Logger)
	defer ch.Close()

	for i := 0; i < 3; i++ {
		resp := ch.Send(protocol.Request{Action: protocol.VerbFind, Table: "Cars", Payload: "1"})
		if !resp.IsSuccess() || resp.Payload != "1" {
			t.Fatalf("send %d: %+v", i, resp)
		}
	}
	if got := dials.Load(); got != 1 {
		t.Fatalf("expected 1 connection, server saw %d", got)
	}
}

func TestChannelDialFailure(t *testing.T) {
	testlog.Start(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	ch := NewChannel(addr, log.Logger)
	defer ch.Close()

	resp := ch.Send(protocol.Request{Action: protocol.VerbList, Table: "Cars"})
	if resp.Encode() != "ERROR|Connection failed" {
		t.Fatalf("dial failure: %q", resp.Encode())
	}

	// A broken channel never reconnects.
	resp = ch.Send(protocol.Request{Action: protocol.VerbList, Table: "Cars"})
	if resp.Encode() != "ERROR|Connection failed" {
		t.Fatalf("second send: %q", resp.Encode())
	}
}

func TestChannelPeerDisconnect(t *testing.T) {
	testlog.Start(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		// Drop the connection without answering.
		conn.Close()
	}()

	ch := NewChannel(ln.Addr().String(), log.Logger)
	defer ch.Close()

	resp := ch.Send(protocol.Request{Action: protocol.VerbList, Table: "Cars"})
	if !strings.HasPrefix(resp.Encode(), "ERROR|Connection failed") {
		t.Fatalf("peer disconnect: %q", resp.Encode())
	}
}
