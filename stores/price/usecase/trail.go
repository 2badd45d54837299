package usecase

import (
	"context"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/domain"
)

// DefaultMaxDepth bounds nested router resolutions, e.g. an LP of LPs.
const DefaultMaxDepth = 8

type trailKey struct{}

// trailOf returns the tokens being resolved above the current call.
func trailOf(c ctx.Ctx) []domain.Address {
	if c.Context == nil {
		return nil
	}
	t, _ := c.Value(trailKey{}).([]domain.Address)
	return t
}

func withTrail(c ctx.Ctx, token domain.Address) ctx.Ctx {
	parent := trailOf(c)
	t := make([]domain.Address, len(parent), len(parent)+1)
	copy(t, parent)
	t = append(t, token)
	return ctx.WithContext(c, context.WithValue(c, trailKey{}, t))
}

func onTrail(trail []domain.Address, token domain.Address) bool {
	for _, a := range trail {
		if a.Equals(token) {
			return true
		}
	}
	return false
}
