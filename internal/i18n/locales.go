package i18n

// Template keys used by the processors. The English phrasing is the key.
const (
	KeyBuy      = "Buy {{asset}} from {{counterparty}}"
	KeySell     = "Sell {{asset}} to {{counterparty}}"
	KeyOther    = "{{orderType}} {{asset}} with {{counterparty}}"
	KeyTaxBuy   = "Tax of {{asset}} from {{counterparty}}"
	KeyTaxSell  = "Tax of {{asset}} to {{counterparty}}"
	KeyTaxOther = "Tax of {{asset}} with {{counterparty}}"
	KeyNote     = "{{key}}: {{value}}"
)

// builtinLocales ships two locales: English (the template source language)
// and Brazilian Portuguese. More can be registered at runtime.
var builtinLocales = map[string]map[string]string{
	"en": {
		KeyBuy:      KeyBuy,
		KeySell:     KeySell,
		KeyOther:    KeyOther,
		KeyTaxBuy:   KeyTaxBuy,
		KeyTaxSell:  KeyTaxSell,
		KeyTaxOther: KeyTaxOther,
		KeyNote:     KeyNote,
	},
	"pt-BR": {
		KeyBuy:      "Compra de {{asset}} de {{counterparty}}",
		KeySell:     "Venda de {{asset}} para {{counterparty}}",
		KeyOther:    "{{orderType}} de {{asset}} com {{counterparty}}",
		KeyTaxBuy:   "Taxa de {{asset}} de {{counterparty}}",
		KeyTaxSell:  "Taxa de {{asset}} para {{counterparty}}",
		KeyTaxOther: "Taxa de {{asset}} com {{counterparty}}",
		KeyNote:     "{{key}}: {{value}}",
	},
}
