// Package client implements the caller side of the wire protocol: one
// connection for the life of the process, one outstanding request at a time.
package client

import (
	"bufio"
	"net"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol"
)

// Channel is an explicitly owned connection to the server. The connection is
// dialed on first use and never re-established: once it fails, every later
// call answers with a connection error. Construct one per process and pass
// it to callers.
type Channel struct {
	addr string
	log  zerolog.Logger

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
	broken bool
}

func NewChannel(addr string, log zerolog.Logger) *Channel {
	return &Channel{
		addr: addr,
		log:  log.With().Str("component", "client").Logger(),
	}
}

// Send issues one request and blocks for its response line. Any transport
// failure, including a failed first dial, is reported as an ERROR response
// rather than an error return; the protocol has no out-of-band failures.
func (c *Channel) Send(req protocol.Request) protocol.Response {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureConn(); err != nil {
		c.log.Error().Str("addr", c.addr).Err(err).Msg("dial failed")
		return protocol.Error("Connection failed")
	}

	if _, err := c.conn.Write([]byte(req.Encode() + "\n")); err != nil {
		c.fail(err, "write failed")
		return protocol.Error("Connection failed")
	}

	line, err := c.reader.ReadString('\n')
	if err != nil {
		c.fail(err, "read failed")
		return protocol.Error("Connection failed")
	}

	resp, err := protocol.ParseResponse(line)
	if err != nil {
		return protocol.Error("Connection failed")
	}
	return resp
}

// ensureConn dials lazily, once. A broken channel stays broken.
func (c *Channel) ensureConn() error {
	if c.conn != nil {
		return nil
	}
	if c.broken {
		return net.ErrClosed
	}
	conn, err := net.Dial("tcp", c.addr)
	if err != nil {
		c.broken = true
		return err
	}
	c.conn = conn
	c.reader = bufio.NewReader(conn)
	c.log.Info().Str("addr", c.addr).Msg("connected")
	return nil
}

func (c *Channel) fail(err error, msg string) {
	c.log.Error().Str("addr", c.addr).Err(err).Msg(msg)
	_ = c.conn.Close()
	c.conn = nil
	c.reader = nil
	c.broken = true
}

// Close releases the connection if one was ever established.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.reader = nil
	c.broken = true
	return err
}
