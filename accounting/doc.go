// Package accounting covers the chart of accounts (/accounts) and journal
// entries (/journal_entries).
package accounting
