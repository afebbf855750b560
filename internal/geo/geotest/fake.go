// Package geotest provides an in-memory geo.Provider for tests.
package geotest

import (
	"context"
	"fmt"
	"sync"

	"placebook/backend/internal/geo"
)

// Provider answers lookups from registered entries.
type Provider struct {
	mu        sync.Mutex
	byAddress map[string]geo.Result
	byPoint   map[string]geo.Result

	// Err, when set, is returned by every lookup.
	Err error

	ForwardCalls int
	ReverseCalls int
}

// New returns an empty Provider.
func New() *Provider {
	return &Provider{
		byAddress: make(map[string]geo.Result),
		byPoint:   make(map[string]geo.Result),
	}
}

// Add registers res under its address and its coordinates.
func (p *Provider) Add(address string, res geo.Result) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byAddress[address] = res
	p.byPoint[pointKey(res.Lat, res.Lng)] = res
	return p
}

func (p *Provider) Forward(ctx context.Context, address string) (geo.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ForwardCalls++
	if err := p.fail(ctx); err != nil {
		return geo.Result{}, err
	}
	res, ok := p.byAddress[address]
	if !ok {
		return geo.Result{}, geo.ErrNoMatch
	}
	return res, nil
}

func (p *Provider) Reverse(ctx context.Context, lat, lng float64) (geo.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ReverseCalls++
	if err := p.fail(ctx); err != nil {
		return geo.Result{}, err
	}
	res, ok := p.byPoint[pointKey(lat, lng)]
	if !ok {
		return geo.Result{}, geo.ErrNoMatch
	}
	return res, nil
}

func (p *Provider) fail(ctx context.Context) error {
	if p.Err != nil {
		return p.Err
	}
	return ctx.Err()
}

func pointKey(lat, lng float64) string {
	return fmt.Sprintf("%.6f,%.6f", lat, lng)
}
