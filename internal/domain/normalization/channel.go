// Package normalization maps reconstructed table rows onto the canonical
// record schema persisted in the plan catalog.
package normalization

import "strings"

// Channel is a canonical debit/credit installment tier.
type Channel string

const (
	ChannelDebit        Channel = "DEBIT"
	ChannelCreditSpot   Channel = "CREDIT_SPOT"
	ChannelCredit2To6   Channel = "CREDIT_2_6X"
	ChannelCredit7To12  Channel = "CREDIT_7_12X"
	ChannelCredit13To21 Channel = "CREDIT_13_21X"
)

// InstallmentRange returns the fixed installment bounds for the channel.
func (c Channel) InstallmentRange() (from, to int) {
	switch c {
	case ChannelCredit2To6:
		return 2, 6
	case ChannelCredit7To12:
		return 7, 12
	case ChannelCredit13To21:
		return 13, 21
	default:
		return 1, 1
	}
}

// channelRule pairs a predicate with the channel it resolves to.
type channelRule struct {
	matches func(string) bool
	channel Channel
}

func containsAny(subs ...string) func(string) bool {
	return func(text string) bool {
		for _, s := range subs {
			if strings.Contains(text, s) {
				return true
			}
		}
		return false
	}
}

func containsAll(subs ...string) func(string) bool {
	return func(text string) bool {
		for _, s := range subs {
			if !strings.Contains(text, s) {
				return false
			}
		}
		return true
	}
}

// channelRules is evaluated in order over the lower-cased channel text; the
// first matching rule wins. The bare "credito" fallback sits last so the
// installment-range rules get a chance first.
var channelRules = []channelRule{
	{containsAny("deb"), ChannelDebit},
	{containsAny("avista", "a vista"), ChannelCreditSpot},
	{containsAll("2", "6"), ChannelCredit2To6},
	{containsAll("7", "12"), ChannelCredit7To12},
	{containsAny("13", "21"), ChannelCredit13To21},
	{containsAny("credito", "crédito"), ChannelCreditSpot},
}

// ResolveChannel maps a free-text channel label onto the canonical
// enumeration. ok is false when no rule matches, in which case the whole
// row is dropped by the normalizer.
func ResolveChannel(text string) (Channel, bool) {
	lower := strings.ToLower(text)
	for _, r := range channelRules {
		if r.matches(lower) {
			return r.channel, true
		}
	}
	return "", false
}
