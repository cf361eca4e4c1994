package entities

// LicenseType identifies a subscription tier.
type LicenseType string

const (
	LicenseBasic   LicenseType = "basic"
	LicensePro     LicenseType = "pro"
	LicensePremium LicenseType = "premium"
)

type LicenseFeature struct {
	Text     string `json:"text"`
	Included bool   `json:"included"`
}

// LicenseTier is a static catalog entry; prices are kept in centavos.
type LicenseTier struct {
	ID          LicenseType      `json:"id"`
	Name        string           `json:"name"`
	PriceCents  int64            `json:"price_cents"`
	Period      string           `json:"period"`
	Features    []LicenseFeature `json:"features"`
	Recommended bool             `json:"recommended"`
}

var licenseCatalog = []LicenseTier{
	{
		ID:         LicenseBasic,
		Name:       "Básico",
		PriceCents: 19990,
		Period:     "mês",
		Features: []LicenseFeature{
			{Text: "Até 1.000 páginas por processo", Included: true},
			{Text: "Até 10 processos por mês", Included: true},
			{Text: "Análise processual simples", Included: true},
			{Text: "Acesso a modelos básicos", Included: true},
			{Text: "Suporte por email", Included: true},
			{Text: "Análise avançada de jurisprudência", Included: false},
			{Text: "Correção processual automática", Included: false},
		},
	},
	{
		ID:         LicensePro,
		Name:       "Profissional",
		PriceCents: 37990,
		Period:     "mês",
		Features: []LicenseFeature{
			{Text: "Até 5.000 páginas por processo", Included: true},
			{Text: "Até 50 processos por mês", Included: true},
			{Text: "Análise processual completa", Included: true},
			{Text: "Acesso a todos os modelos", Included: true},
			{Text: "Suporte prioritário 24/7", Included: true},
			{Text: "Análise avançada de jurisprudência", Included: true},
			{Text: "Correção processual automática", Included: false},
		},
		Recommended: true,
	},
	{
		ID:         LicensePremium,
		Name:       "Premium",
		PriceCents: 57949,
		Period:     "mês",
		Features: []LicenseFeature{
			{Text: "Até 20.000 páginas por processo", Included: true},
			{Text: "Até 100 processos por mês", Included: true},
			{Text: "Análise processual completa", Included: true},
			{Text: "Acesso a modelos exclusivos", Included: true},
			{Text: "Suporte VIP 24/7", Included: true},
			{Text: "Análise avançada de jurisprudência", Included: true},
			{Text: "Correção processual automática", Included: true},
		},
	},
}

// Licenses returns a copy of the tier catalog in display order.
func Licenses() []LicenseTier {
	out := make([]LicenseTier, len(licenseCatalog))
	for i, l := range licenseCatalog {
		out[i] = l
		out[i].Features = append([]LicenseFeature(nil), l.Features...)
	}
	return out
}

// LicenseByType looks a tier up by id.
func LicenseByType(t LicenseType) (LicenseTier, bool) {
	for _, l := range Licenses() {
		if l.ID == t {
			return l, true
		}
	}
	return LicenseTier{}, false
}

// CreditPackage is a one-off purchase of processing credits.
type CreditPackage struct {
	Amount     int   `json:"amount"`
	PriceCents int64 `json:"price_cents"`
}

var creditPackages = []CreditPackage{
	{Amount: 100, PriceCents: 4990},
	{Amount: 500, PriceCents: 19990},
	{Amount: 1000, PriceCents: 34990},
}

func CreditPackages() []CreditPackage {
	return append([]CreditPackage(nil), creditPackages...)
}

func CreditPackageByAmount(amount int) (CreditPackage, bool) {
	for _, p := range creditPackages {
		if p.Amount == amount {
			return p, true
		}
	}
	return CreditPackage{}, false
}
