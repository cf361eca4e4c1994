package response

import (
	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/domain/format"
)

type LicenseResponse struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	PriceCents   int64                     `json:"price_cents"`
	PriceDisplay string                    `json:"price_display"`
	Period       string                    `json:"period"`
	Features     []entities.LicenseFeature `json:"features"`
	Recommended  bool                      `json:"recommended"`
}

func FromLicense(l entities.LicenseTier) LicenseResponse {
	return LicenseResponse{
		ID:           string(l.ID),
		Name:         l.Name,
		PriceCents:   l.PriceCents,
		PriceDisplay: format.BRL(l.PriceCents),
		Period:       l.Period,
		Features:     append([]entities.LicenseFeature(nil), l.Features...),
		Recommended:  l.Recommended,
	}
}

func FromLicenses(ls []entities.LicenseTier) []LicenseResponse {
	out := make([]LicenseResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLicense(l))
	}
	return out
}

type CreditPackageResponse struct {
	Amount       int    `json:"amount"`
	PriceCents   int64  `json:"price_cents"`
	PriceDisplay string `json:"price_display"`
}

func FromCreditPackages(ps []entities.CreditPackage) []CreditPackageResponse {
	out := make([]CreditPackageResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, CreditPackageResponse{Amount: p.Amount, PriceCents: p.PriceCents, PriceDisplay: format.BRL(p.PriceCents)})
	}
	return out
}

type FormatResponse struct {
	Field string `json:"field"`
	Value string `json:"value"`
}
