package accounting

import "github.com/kbukum/bukku-go/httpclient"

// API groups the accounting services.
type API struct {
	Accounts       *AccountService
	JournalEntries *JournalEntryService
}

// New binds the accounting services to client.
func New(client *httpclient.Client) *API {
	return &API{
		Accounts:       NewAccountService(client),
		JournalEntries: NewJournalEntryService(client),
	}
}
