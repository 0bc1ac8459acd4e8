package server

import (
	"bufio"
	"io"
	"net"

	"github.com/Izaek256/CarRental-Server-Client/internal/observability"
)

// handleConn runs one session: read a line, dispatch, write the response,
// loop. The session ends only when the peer disconnects or the read fails;
// dispatch failures are answered in-band and the loop continues. There are
// no read or write deadlines.
func (s *Service) handleConn(conn net.Conn) {
	defer conn.Close()
	defer s.untrackConn(conn)

	remote := conn.RemoteAddr().String()
	active := s.sessionCount.Add(1)
	observability.SessionOpened()
	s.log.Info().Str("remote", remote).Int64("active_sessions", active).Msg("client connected")
	defer func() {
		remaining := s.sessionCount.Add(-1)
		observability.SessionClosed()
		s.log.Info().Str("remote", remote).Int64("active_sessions", remaining).Msg("client disconnected")
	}()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				s.log.Warn().Str("remote", remote).Err(err).Msg("session read failed")
			}
			return
		}

		resp := s.dispatcher.Handle(line)
		if _, err := conn.Write([]byte(resp.Encode() + "\n")); err != nil {
			s.log.Warn().Str("remote", remote).Err(err).Msg("session write failed")
			return
		}
	}
}
