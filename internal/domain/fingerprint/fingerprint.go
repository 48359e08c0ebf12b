// Package fingerprint derives a deterministic content digest for a
// normalized record set, used to deduplicate pricing plans.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/normalization"
)

// Empty is the sentinel for "nothing to fingerprint". It is never matched
// against the catalog.
const Empty = ""

// Compute canonically orders and serializes the record set into a SHA-256
// hex digest. Identical record multisets yield identical digests regardless
// of the order the OCR produced them in. An empty set yields Empty.
func Compute(records []normalization.Record) string {
	if len(records) == 0 {
		return Empty
	}

	sorted := make([]normalization.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Channel != b.Channel {
			return a.Channel < b.Channel
		}
		if a.Brand != b.Brand {
			return a.Brand < b.Brand
		}
		if a.InstallmentFrom != b.InstallmentFrom {
			return a.InstallmentFrom < b.InstallmentFrom
		}
		return a.InstallmentTo < b.InstallmentTo
	})

	lines := make([]string, len(sorted))
	for i, r := range sorted {
		surcharge := ""
		if r.SurchargeRate != nil {
			surcharge = r.SurchargeRate.StringFixed(4)
		}
		lines[i] = strings.Join([]string{
			string(r.Channel),
			r.Brand,
			strconv.Itoa(r.InstallmentFrom),
			strconv.Itoa(r.InstallmentTo),
			r.Rate.StringFixed(4),
			r.SettlementTerm,
			surcharge,
		}, "|")
	}

	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:])
}
