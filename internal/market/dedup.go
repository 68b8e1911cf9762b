package market

import "strings"

// noiseTokens are corporate-suffix fragments that make the same underlying
// company look like distinct listings across share classes and depositary
// receipts.
var noiseTokens = []string{
	" CEDEAR", " ADR", " S.A.", " SA", " INC.", " INC", " CORP", " LTD",
	" PLC", " AG", " SHS", " CERT DEPOSITO", " ARG REPR", " SP ADR",
}

// identity normalizes a display name for dedup: uppercase, strip the noise
// tokens, keep the first two words. "Coca Cola Co CEDEAR" and "Coca-Cola Co"
// stay distinguishable from "Banco Galicia" while their own variants collapse.
func identity(name string) string {
	text := strings.ToUpper(name)
	for _, tok := range noiseTokens {
		text = strings.ReplaceAll(text, tok, "")
	}
	words := strings.Fields(text)
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}

// Dedupe keeps the first occurrence of each normalized identity, preserving
// input order.
func Dedupe(quotes []Quote) []Quote {
	seen := make(map[string]struct{}, len(quotes))
	out := quotes[:0:0]
	for _, q := range quotes {
		id := identity(q.Name)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, q)
	}
	return out
}
