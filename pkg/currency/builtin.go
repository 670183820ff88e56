package currency

// Builtin returns the definitions of the built-in registry.
func Builtin() []Definition {
	return []Definition{
		{Symbol: "BTC", Name: "Bitcoin", Denominations: []DenomDefinition{
			{Symbol: "BTC", Name: "Bitcoin", Decimals: 8},
			{Symbol: "SAT", Name: "Satoshi", Decimals: 0},
			{Symbol: "mBTC", Name: "Millibit", Decimals: 5},
			{Symbol: "μBTC", Name: "Microbit", Decimals: 2},
		}},
		{Symbol: "ETH", Name: "Ethereum", Denominations: []DenomDefinition{
			{Symbol: "ETH", Name: "Ether", Decimals: 18},
			{Symbol: "GWEI", Name: "Gwei", Decimals: 9},
			{Symbol: "WEI", Name: "Wei", Decimals: 0},
		}},
		{Symbol: "BNB", Name: "Binance Coin", Denominations: []DenomDefinition{
			{Symbol: "BNB", Name: "Binance Coin", Decimals: 18},
			{Symbol: "JAGER", Name: "Jager", Decimals: 0},
		}},
		{Symbol: "SOL", Name: "Solana", Denominations: []DenomDefinition{
			{Symbol: "SOL", Name: "Solana", Decimals: 9},
			{Symbol: "LAMP", Name: "Lamport", Decimals: 0},
		}},
		{Symbol: "XRP", Name: "XRP", Denominations: []DenomDefinition{
			{Symbol: "XRP", Name: "XRP", Decimals: 6},
			{Symbol: "DROP", Name: "Drop", Decimals: 0},
		}},
		{Symbol: "ADA", Name: "Cardano", Denominations: []DenomDefinition{
			{Symbol: "ADA", Name: "Cardano", Decimals: 6},
			{Symbol: "LOVELACE", Name: "Lovelace", Decimals: 0},
		}},
		{Symbol: "AVAX", Name: "Avalanche", Denominations: []DenomDefinition{
			{Symbol: "AVAX", Name: "Avalanche", Decimals: 18},
			{Symbol: "nAVAX", Name: "nAVAX", Decimals: 0},
		}},
		{Symbol: "DOGE", Name: "Dogecoin", Denominations: []DenomDefinition{
			{Symbol: "DOGE", Name: "Dogecoin", Decimals: 8},
			{Symbol: "SAT", Name: "Satoshi", Decimals: 0},
		}},
		{Symbol: "DOT", Name: "Polkadot", Denominations: []DenomDefinition{
			{Symbol: "DOT", Name: "Polkadot", Decimals: 10},
			{Symbol: "PLANCK", Name: "Planck", Decimals: 0},
		}},
		{Symbol: "MATIC", Name: "Polygon", Denominations: []DenomDefinition{
			{Symbol: "MATIC", Name: "Polygon", Decimals: 18},
			{Symbol: "WEI", Name: "Wei", Decimals: 0},
		}},
		{Symbol: "USDC", Name: "USD Coin", Denominations: []DenomDefinition{
			{Symbol: "USDC", Name: "USD Coin", Decimals: 6},
			{Symbol: "μUSDC", Name: "Micro USD Coin", Decimals: 0},
		}},
		{Symbol: "USDT", Name: "Tether", Denominations: []DenomDefinition{
			{Symbol: "USDT", Name: "Tether", Decimals: 6},
			{Symbol: "μUSDT", Name: "Micro Tether", Decimals: 0},
		}},
	}
}
