package service

import (
	"github.com/shopspring/decimal"

	"solwallet-api/internal/core/ports"
)

// Mock balance constants. Balances are presentation state selected by
// the wallet's demo flag — they are never computed from the ledger.
var (
	demoSOLBalance  = decimal.NewFromFloat(25.75)
	demoUSDCBalance = decimal.NewFromFloat(1000.00)

	defaultSOLBalance  = decimal.NewFromFloat(12.45)
	defaultUSDCBalance = decimal.NewFromFloat(500.00)

	// Mock quotes: $100 per SOL, $1 per USDC.
	solPriceUSD = decimal.NewFromInt(100)
)

// balancesFor returns the fixed balance presentation for a wallet.
func balancesFor(isDemo bool) ports.Balances {
	sol, usdc := defaultSOLBalance, defaultUSDCBalance
	if isDemo {
		sol, usdc = demoSOLBalance, demoUSDCBalance
	}

	total := sol.Mul(solPriceUSD).Add(usdc)

	return ports.Balances{
		SOL:        sol.InexactFloat64(),
		USDC:       usdc.InexactFloat64(),
		TotalValue: total.InexactFloat64(),
	}
}
