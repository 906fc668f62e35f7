package listener

import (
	"context"
	"errors"
	"net"
	"sync"

	"lincloud/core/address"
	"lincloud/core/apperror"
)

type acceptResult struct {
	conn net.Conn
	err  error
}

// MultiListener is a net.Listener accepting connections from several bound
// sockets.
type MultiListener struct {
	listeners []net.Listener
	results   chan acceptResult
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
	wg        sync.WaitGroup
}

// Bind listens on every endpoint. If any endpoint cannot be bound, every
// socket opened so far is closed and a bind error is returned.
func Bind(ctx context.Context, endpoints []address.Endpoint) (*MultiListener, error) {
	if len(endpoints) == 0 {
		return nil, apperror.Bind(errors.New("no endpoints to bind"))
	}

	var lc net.ListenConfig
	listeners := make([]net.Listener, 0, len(endpoints))
	for _, ep := range endpoints {
		ln, err := lc.Listen(ctx, ep.Network(), ep.ListenAddress())
		if err != nil {
			for _, opened := range listeners {
				_ = opened.Close()
			}
			return nil, apperror.Bind(err)
		}
		listeners = append(listeners, ln)
	}
	return newMultiListener(listeners), nil
}

func newMultiListener(listeners []net.Listener) *MultiListener {
	m := &MultiListener{
		listeners: listeners,
		results:   make(chan acceptResult),
		done:      make(chan struct{}),
	}
	for _, ln := range listeners {
		m.wg.Add(1)
		go m.acceptLoop(ln)
	}
	return m
}

func (m *MultiListener) acceptLoop(ln net.Listener) {
	defer m.wg.Done()
	for {
		conn, err := ln.Accept()
		select {
		case m.results <- acceptResult{conn: conn, err: err}:
		case <-m.done:
			if conn != nil {
				_ = conn.Close()
			}
			return
		}
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			return
		}
	}
}

// Accept waits for the next connection on any of the bound sockets.
func (m *MultiListener) Accept() (net.Conn, error) {
	select {
	case r := <-m.results:
		return r.conn, r.err
	case <-m.done:
		return nil, net.ErrClosed
	}
}

// Close closes every bound socket. It is safe to call more than once.
func (m *MultiListener) Close() error {
	m.closeOnce.Do(func() {
		close(m.done)
		errs := make([]error, 0, len(m.listeners))
		for _, ln := range m.listeners {
			errs = append(errs, ln.Close())
		}
		m.closeErr = errors.Join(errs...)
		m.wg.Wait()
	})
	return m.closeErr
}

// Addr returns the address of the first bound socket.
func (m *MultiListener) Addr() net.Addr {
	return m.listeners[0].Addr()
}

// Addrs returns the address of every bound socket, in endpoint order.
func (m *MultiListener) Addrs() []net.Addr {
	addrs := make([]net.Addr, len(m.listeners))
	for i, ln := range m.listeners {
		addrs[i] = ln.Addr()
	}
	return addrs
}
