package extraction

import (
	"strings"

	"bolextract/internal/domain"
)

// FieldRule lists the key substrings that identify a canonical field.
type FieldRule struct {
	Field    domain.CanonicalField
	Keywords []string
}

// DefaultRules is the bill-of-lading keyword table. Keywords are lowercase.
var DefaultRules = []FieldRule{
	{Field: domain.FieldBOLNumber, Keywords: []string{"bill of lading", "bol #", "b/l no", "bol no"}},
	{Field: domain.FieldShipper, Keywords: []string{"shipper", "exporter", "from:"}},
	{Field: domain.FieldConsignee, Keywords: []string{"consignee", "sold to", "ship to", "to:"}},
	{Field: domain.FieldCarrier, Keywords: []string{"carrier", "transport"}},
	{Field: domain.FieldWeight, Keywords: []string{"weight", "gross weight", "kgs", "lbs"}},
	{Field: domain.FieldDate, Keywords: []string{"date", "shipping date"}},
	{Field: domain.FieldOrigin, Keywords: []string{"origin", "port of loading"}},
	{Field: domain.FieldDestination, Keywords: []string{"destination", "port of discharge"}},
}

// MapFields fills a CanonicalRecord from forms using DefaultRules.
func MapFields(forms *domain.ResolvedKV) domain.CanonicalRecord {
	return MapFieldsWithRules(forms, DefaultRules)
}

// MapFieldsWithRules fills a CanonicalRecord from forms. For each rule the first
// entry, in insertion order, whose lowercased key contains any keyword wins.
// Rules are independent, so one entry may fill several fields.
func MapFieldsWithRules(forms *domain.ResolvedKV, rules []FieldRule) domain.CanonicalRecord {
	entries := forms.Entries()
	normalized := make([]string, len(entries))
	for i, e := range entries {
		normalized[i] = normalizeKey(e.Key)
	}

	var rec domain.CanonicalRecord
	for _, rule := range rules {
		slot := rec.Slot(rule.Field)
		if slot == nil {
			continue
		}
		for i, key := range normalized {
			if containsAny(key, rule.Keywords) {
				v := entries[i].Value
				*slot = &v
				break
			}
		}
	}
	return rec
}

func normalizeKey(key string) string {
	return strings.ToLower(key)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// Extract resolves blocks and maps the result into a complete Extraction.
func Extract(blocks []domain.Block) *domain.Extraction {
	res := Resolve(blocks)
	return &domain.Extraction{
		Status:          domain.ExtractionStatusSuccess,
		Data:            res.Lines,
		RawForms:        res.Forms,
		CanonicalRecord: MapFields(res.Forms),
	}
}
