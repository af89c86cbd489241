// Package shipperprofile serves the sender identity configured at startup.
package shipperprofile

import (
	"context"

	"logistics/internal/core/domain/model/shipper"
)

// StaticProvider returns the same profile on every call.
type StaticProvider struct {
	profile shipper.Profile
}

// NewStaticProvider validates profile once so a misconfigured sender fails at startup
// rather than on the first manifest export.
func NewStaticProvider(profile shipper.Profile) (*StaticProvider, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &StaticProvider{profile: profile}, nil
}

func (p *StaticProvider) Get(ctx context.Context) (shipper.Profile, error) {
	if err := ctx.Err(); err != nil {
		return shipper.Profile{}, err
	}
	return p.profile, nil
}
