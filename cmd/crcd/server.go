// Command crcd is a small TCP checksum service: it frames incoming
// connections into length-prefixed messages and returns the configured
// model's checksum over each frame body.
package main

import (
	"context"
	"encoding/binary"
	"io"
	"net"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/bemasher/paramcrc/crc"
)

const maxFrameSize = 1 << 20 // 1MiB, generous for a checksum demo service

// Server accepts connections and serves framed checksum requests over
// each one. Every connection gets its own *rate.Limiter, and every frame
// its own Model; nothing here is shared across goroutines except the package's
// Prometheus collectors, which are already safe for concurrent use.
type Server struct {
	ln       net.Listener
	params   crc.Params
	strategy crc.Strategy
	log      *zap.Logger

	framesPerSec rate.Limit
	burst        int
}

func NewServer(ln net.Listener, params crc.Params, strategy crc.Strategy, log *zap.Logger, framesPerSec float64, burst int) *Server {
	return &Server{
		ln:           ln,
		params:       params,
		strategy:     strategy,
		log:          log,
		framesPerSec: rate.Limit(framesPerSec),
		burst:        burst,
	}
}

// Serve accepts connections until the listener is closed or ctx is
// canceled.
func (s *Server) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.ln.Close()
	}()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				return err
			}
		}

		go s.handle(ctx, conn)
	}
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	log := s.log.With(zap.String("remote", conn.RemoteAddr().String()))
	log.Info("connection accepted")
	defer log.Info("connection closed")

	limiter := rate.NewLimiter(s.framesPerSec, s.burst)

	for {
		frame, err := readFrame(conn)
		if err != nil {
			if err != io.EOF {
				log.Warn("frame read failed", zap.Error(err))
				framesTotal.WithLabelValues("error").Inc()
			}
			return
		}

		if err := limiter.Wait(ctx); err != nil {
			log.Warn("rate limiter wait canceled", zap.Error(err))
			return
		}

		frameBytes.Observe(float64(len(frame)))

		m, err := buildModel(s.params, s.strategy)
		if err != nil {
			log.Error("building model", zap.Error(err))
			framesTotal.WithLabelValues("error").Inc()
			return
		}
		m.Update(frame)

		if err := writeChecksum(conn, s.params, m.Final()); err != nil {
			log.Warn("writing response", zap.Error(err))
			framesTotal.WithLabelValues("error").Inc()
			return
		}

		framesTotal.WithLabelValues("ok").Inc()
	}
}

func readFrame(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}

	n := binary.BigEndian.Uint32(lenBuf[:])
	if n > maxFrameSize {
		return nil, io.ErrShortBuffer
	}

	body := make([]byte, n)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}

func writeChecksum(w io.Writer, p crc.Params, v uint64) error {
	width := p.Width / 8
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		out[width-1-i] = byte(v >> uint(i*8))
	}
	_, err := w.Write(out)
	return err
}

func buildModel(p crc.Params, strategy crc.Strategy) (*crc.Model, error) {
	switch strategy {
	case crc.ExtFullTable:
		tbl := crc.NewTable(p.Width, p.ActualPoly(), p.RefReg)
		return crc.NewExternal(p, tbl), nil
	case crc.ExtSmallTable:
		tbl := crc.NewSmallTable(p.Width, p.ActualPoly(), p.RefReg)
		return crc.NewExternal(p, tbl), nil
	default:
		return crc.NewStrategy(p, strategy), nil
	}
}
