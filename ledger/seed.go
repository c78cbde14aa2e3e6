package ledger

import "github.com/shopspring/decimal"

// DemoSeeds returns the demo account fixture used by the interactive shells
// and examples. Production deployments provision their own seed list.
func DemoSeeds() []AccountSeed {
	return []AccountSeed{
		{Number: "1234567890", PIN: "1234", Balance: decimal.RequireFromString("1500000.00"), HolderName: "Bharat Choudhary"},
		{Number: "0987654321", PIN: "5678", Balance: decimal.RequireFromString("250000.75"), HolderName: "Anil Seervi"},
		{Number: "1122334455", PIN: "9999", Balance: decimal.RequireFromString("750000.25"), HolderName: "Manish Kumar"},
	}
}
