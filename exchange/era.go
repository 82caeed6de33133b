// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package exchange

import (
	"encoding/json"
	"fmt"
)

const (
	BarterEra         uint64 = 1
	CommodityMoneyEra uint64 = 2
	MetallicMoneyEra  uint64 = 3
	PaperMoneyEra     uint64 = 4
	DigitalMoneyEra   uint64 = 5
	CryptocurrencyEra uint64 = 6

	// CurrentEraThreshold is the first era whose exchange method is still in
	// use.
	CurrentEraThreshold = DigitalMoneyEra
)

// EraRecord describes one historical method of exchange. YearIntroduced is
// negative for years before the common era, except for Barter which keeps the
// positive 9000 sentinel used by the contract fixtures.
type EraRecord struct {
	Era            uint64 `json:"era"             yaml:"era"`
	Method         string `json:"method"          yaml:"method"`
	Description    string `json:"description"     yaml:"description"`
	YearIntroduced int64  `json:"year-introduced" yaml:"year-introduced"`
	IsCurrent      bool   `json:"is-current"      yaml:"is-current"`
}

func (r EraRecord) String() string {
	return fmt.Sprintf("era %d (%s)", r.Era, r.Method)
}

// JSON returns the compact JSON encoding embedded in contract results.
func (r EraRecord) JSON() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("couldn't marshal %s: %w", r, err)
	}
	return string(b), nil
}

// DefaultEras returns the era dataset served by the contract.
func DefaultEras() []EraRecord {
	return []EraRecord{
		{
			Era:            BarterEra,
			Method:         "Barter",
			Description:    "Direct exchange of goods and services",
			YearIntroduced: 9000,
			IsCurrent:      false,
		},
		{
			Era:            CommodityMoneyEra,
			Method:         "Commodity Money",
			Description:    "Goods with intrinsic value such as shells, salt and cattle used as money",
			YearIntroduced: -3000,
			IsCurrent:      false,
		},
		{
			Era:            MetallicMoneyEra,
			Method:         "Metallic Money",
			Description:    "Standardized coins minted from precious metals",
			YearIntroduced: -600,
			IsCurrent:      false,
		},
		{
			Era:            PaperMoneyEra,
			Method:         "Paper Money",
			Description:    "Printed notes representing a claim on value",
			YearIntroduced: 1024,
			IsCurrent:      false,
		},
		{
			Era:            DigitalMoneyEra,
			Method:         "Digital Money",
			Description:    "Electronic balances moved through banking and card networks",
			YearIntroduced: 1950,
			IsCurrent:      true,
		},
		{
			Era:            CryptocurrencyEra,
			Method:         "Cryptocurrency",
			Description:    "Decentralized digital currencies based on blockchain",
			YearIntroduced: 2009,
			IsCurrent:      true,
		},
	}
}
