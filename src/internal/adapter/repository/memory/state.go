package memory

// BankState owns every piece of in-memory bank data for one process. Build
// one at start-up and pass it to the services; tests build a fresh one each.
type BankState struct {
	Users        *UserRepository
	Balances     *BalanceRepository
	Transactions *TransactionRepository
	Rates        *RateRepository
}

func NewBankState() *BankState {
	return &BankState{
		Users:        NewUserRepository(),
		Balances:     NewBalanceRepository(),
		Transactions: NewTransactionRepository(),
		Rates:        NewRateRepository(),
	}
}
