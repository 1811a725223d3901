package remote

import (
	"context"
	"time"

	"pinopoly/internal/domain"
	"pinopoly/pkg/protocol"
)

// Service wraps the tunnel endpoints.
type Service struct {
	api domain.RemoteAPI
}

// New constructs a remote Service over an API client.
func New(api domain.RemoteAPI) *Service {
	return &Service{api: api}
}

// Status reports the tunnel state.
func (s *Service) Status(ctx context.Context) (protocol.TunnelStatus, error) {
	return s.api.Status(ctx)
}

// Stop tears the tunnel down.
func (s *Service) Stop(ctx context.Context) error {
	return s.api.Stop(ctx)
}

// URL returns the current public URL.
func (s *Service) URL(ctx context.Context) (string, error) {
	return s.api.URL(ctx)
}

// StartAndWait brings the tunnel up and polls until the server reports a
// public URL or ctx expires. Cloudflare assigns the hostname
// asynchronously, so start alone rarely carries it.
func (s *Service) StartAndWait(ctx context.Context) (protocol.TunnelStatus, error) {
	st, err := s.api.Start(ctx)
	if err != nil {
		return protocol.TunnelStatus{}, err
	}
	if st.URL != "" {
		return st, nil
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		case <-ticker.C:
		}
		st, err = s.api.Status(ctx)
		if err != nil {
			return protocol.TunnelStatus{}, err
		}
		if st.URL != "" || !st.Running {
			return st, nil
		}
	}
}
