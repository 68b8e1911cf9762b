package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeCollapsesListingVariants(t *testing.T) {
	quotes := []Quote{
		{Symbol: "KO", Name: "Coca Cola Co"},
		{Symbol: "KOD", Name: "COCA COLA CO CEDEAR"},
		{Symbol: "GGAL", Name: "Grupo Financiero Galicia S.A."},
		{Symbol: "GGAL3", Name: "GRUPO FINANCIERO GALICIA SP ADR"},
		{Symbol: "YPF", Name: "YPF Sociedad Anonima"},
	}

	got := Dedupe(quotes)
	assert.Equal(t, []string{"KO", "GGAL", "YPF"}, symbols(got))
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	quotes := []Quote{
		{Symbol: "FIRST", Name: "Banco Macro SA"},
		{Symbol: "SECOND", Name: "Banco Macro ADR"},
	}
	got := Dedupe(quotes)
	assert.Equal(t, []string{"FIRST"}, symbols(got))
}

func TestDedupeIsIdempotent(t *testing.T) {
	quotes := []Quote{
		{Symbol: "A", Name: "Alpha Corp"},
		{Symbol: "B", Name: "Beta Inc"},
	}
	once := Dedupe(quotes)
	assert.Equal(t, once, Dedupe(once))
}

func TestDedupeDistinguishesDifferentCompanies(t *testing.T) {
	quotes := []Quote{
		{Symbol: "BMA", Name: "Banco Macro"},
		{Symbol: "GGAL", Name: "Banco Galicia"},
	}
	assert.Len(t, Dedupe(quotes), 2)
}
