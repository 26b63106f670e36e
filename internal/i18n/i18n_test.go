package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaultLocale(t *testing.T) {
	l := New("en")

	result := l.Resolve(KeyBuy, Params{
		"asset":        "USDT",
		"counterparty": "AnonE",
	})
	assert.Equal(t, "Buy USDT from AnonE", result)
}

func TestResolvePtBR(t *testing.T) {
	l := New("pt-BR")

	tests := []struct {
		name     string
		key      string
		params   Params
		expected string
	}{
		{
			name:     "buy",
			key:      KeyBuy,
			params:   Params{"asset": "USDT", "counterparty": "AnonE"},
			expected: "Compra de USDT de AnonE",
		},
		{
			name:     "sell",
			key:      KeySell,
			params:   Params{"asset": "USDT", "counterparty": "AnonA"},
			expected: "Venda de USDT para AnonA",
		},
		{
			name:     "tax of buy",
			key:      KeyTaxBuy,
			params:   Params{"asset": "USDT", "counterparty": "AnonA"},
			expected: "Taxa de USDT de AnonA",
		},
		{
			name:     "generic key value",
			key:      KeyNote,
			params:   Params{"key": "Fiat Type", "value": "BRL"},
			expected: "Fiat Type: BRL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, l.Resolve(tt.key, tt.params))
		})
	}
}

func TestResolveFallsBackToDefaultLocale(t *testing.T) {
	l := New("pt-BR")
	l.RegisterLocale("fr", map[string]string{})
	l.SetLanguage("fr")

	// fr has no templates, so the English default applies.
	result := l.Resolve(KeySell, Params{"asset": "BTC", "counterparty": "AnonB"})
	assert.Equal(t, "Sell BTC to AnonB", result)
}

func TestResolveUnknownKeyReturnsKeyVerbatim(t *testing.T) {
	l := New("en")

	key := "Refund {{asset}} to {{counterparty}}"
	result := l.Resolve(key, Params{"asset": "USDT", "counterparty": "AnonC"})
	assert.Equal(t, key, result, "unknown keys must come back with placeholders unsubstituted")
}

func TestSetLanguage(t *testing.T) {
	l := New("en")

	l.SetLanguage("")
	assert.Equal(t, "en", l.Language(), "empty tag must be a no-op")

	l.SetLanguage("pt-BR")
	assert.Equal(t, "pt-BR", l.Language())

	l.SetLanguage("pt-BR")
	assert.Equal(t, "pt-BR", l.Language(), "setting the active tag again must be a no-op")
}

func TestNewDefaultsLanguage(t *testing.T) {
	l := New("")
	assert.Equal(t, DefaultLanguage, l.Language())
}

func TestLoadLocaleFile(t *testing.T) {
	tempDir := t.TempDir()
	localeFile := filepath.Join(tempDir, "es.yaml")

	content := "\"Buy {{asset}} from {{counterparty}}\": \"Compra de {{asset}} a {{counterparty}}\"\n"
	require.NoError(t, os.WriteFile(localeFile, []byte(content), 0600))

	l := New("es")
	require.NoError(t, l.LoadLocaleFile("es", localeFile))

	result := l.Resolve(KeyBuy, Params{"asset": "USDT", "counterparty": "AnonD"})
	assert.Equal(t, "Compra de USDT a AnonD", result)

	// Keys absent from the new locale still fall back to the default.
	result = l.Resolve(KeySell, Params{"asset": "USDT", "counterparty": "AnonD"})
	assert.Equal(t, "Sell USDT to AnonD", result)
}

func TestLoadLocaleFileMissing(t *testing.T) {
	l := New("en")
	err := l.LoadLocaleFile("es", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultLocalizerGlobalLanguage(t *testing.T) {
	original := Default().Language()
	defer SetLanguage(original)

	SetLanguage("pt-BR")
	result := T(KeyTaxSell, Params{"asset": "USDT", "counterparty": "AnonA"})
	assert.Equal(t, "Taxa de USDT para AnonA", result)
}
