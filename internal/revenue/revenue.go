// Package revenue extracts deposit revenue from a transaction set: wire,
// mobile, branch, and e-transfer channels, deduplicated and mutually
// exclusive so no deposit is ever counted twice.
package revenue

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
)

// Channel identifies a deposit channel.
type Channel string

const (
	ChannelWire      Channel = "wire"
	ChannelMobile    Channel = "mobile"
	ChannelBranch    Channel = "branch"
	ChannelETransfer Channel = "e-transfer"
)

// channelOrder is the claim order. A credit row belongs to the first
// channel whose keywords match it; later channels only see unclaimed rows.
var channelOrder = []Channel{ChannelWire, ChannelMobile, ChannelBranch, ChannelETransfer}

var channelKeywords = map[Channel][]string{
	ChannelWire:      {"WIRE TSF"},
	ChannelMobile:    {"MOBILE DEP"},
	ChannelBranch:    {"BRANCH DEPOSIT", "COUNTER DEPOSIT", "DEPOSIT IN BRANCH"},
	ChannelETransfer: {"E-TRANSFER", "ETRANSFER", "INTERAC"},
}

// Bucket holds one channel's deduplicated deposits.
type Bucket struct {
	Channel Channel
	Total   decimal.Decimal
	Count   int
	Rows    []model.Transaction
}

// Result is the outcome of revenue extraction. Buckets are pairwise
// disjoint by construction; Unmatched lists credit rows no channel claimed,
// for audit display.
type Result struct {
	Buckets   []Bucket
	Unmatched []model.Transaction
}

// Extract scans a transaction set for deposit revenue. Rows with identical
// (date, credit, description) are deduplicated first: statement exports can
// repeat the same line on bank resubmission. Deduplication is exact-match
// only; two same-day deposits for the same amount survive if their
// descriptions differ at all.
func Extract(txns []model.Transaction) Result {
	credits := dedupeCredits(txns)

	res := Result{Buckets: make([]Bucket, 0, len(channelOrder))}
	claimed := make([]bool, len(credits))

	for _, ch := range channelOrder {
		b := Bucket{Channel: ch, Total: decimal.Zero}
		for i, t := range credits {
			if claimed[i] || !matchesChannel(ch, t.Description) {
				continue
			}
			claimed[i] = true
			b.Rows = append(b.Rows, t)
			b.Total = b.Total.Add(t.Credit)
			b.Count++
		}
		res.Buckets = append(res.Buckets, b)
	}

	for i, t := range credits {
		if !claimed[i] {
			res.Unmatched = append(res.Unmatched, t)
		}
	}
	return res
}

// Total returns the revenue across all channels. Channels are disjoint, so
// this is exactly the sum of bucket totals.
func (r Result) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range r.Buckets {
		total = total.Add(b.Total)
	}
	return total
}

// Bucket returns the bucket for a channel.
func (r Result) Bucket(ch Channel) Bucket {
	for _, b := range r.Buckets {
		if b.Channel == ch {
			return b
		}
	}
	return Bucket{Channel: ch, Total: decimal.Zero}
}

func matchesChannel(ch Channel, description string) bool {
	desc := strings.ToUpper(description)
	for _, kw := range channelKeywords[ch] {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// dedupeCredits keeps the first occurrence of each exact
// (date, credit, description) key among credit rows.
func dedupeCredits(txns []model.Transaction) []model.Transaction {
	seen := make(map[string]bool)
	var out []model.Transaction
	for _, t := range txns {
		if !t.Credit.IsPositive() {
			continue
		}
		key := t.Date.Format("2006-01-02") + "|" + t.Credit.StringFixed(2) + "|" + t.Description
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
