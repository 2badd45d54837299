package usecase

import (
	"math/big"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goprice/base/ctx"
	"github.com/x-xyz/goprice/domain"
)

// DefaultBatchWorkers bounds concurrent resolutions of one batch.
const DefaultBatchWorkers = 8

type batchResult struct {
	token domain.Address
	price domain.Price
}

func (im *impl) GetUsdPricesPerToken(c ctx.Ctx, tokens []domain.Address, blk *big.Int) (map[domain.Address]domain.Price, error) {
	prices := make(map[domain.Address]domain.Price, len(tokens))
	if len(tokens) == 0 {
		return prices, nil
	}

	b := goroutines.NewBatch(im.batchWorkers, goroutines.WithBatchSize(len(tokens)))
	defer b.Close()
	for _, token := range tokens {
		token := token
		b.Queue(func() (interface{}, error) {
			p, err := im.GetUsdPricePerToken(c, token, blk)
			if err != nil && !xerrors.Is(err, domain.ErrNoPriceFound) {
				return nil, xerrors.Errorf("%s: %w", token, err)
			}
			return batchResult{token: token, price: p}, nil
		})
	}
	b.QueueComplete()

	var anyerr error
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("GetUsdPricePerToken failed")
			anyerr = ret.Error()
			continue
		}
		res := ret.Value().(batchResult)
		prices[res.token] = res.price
	}
	return prices, anyerr
}
