package domain

import (
	"github.com/x-xyz/goprice/base/ctx"
)

// Token is the slice of an ERC20 this engine consumes.
type Token struct {
	Address  Address
	Decimals int32
}

type TokenRepo interface {
	FindOne(c ctx.Ctx, address Address) (*Token, error)
}
