package dto

import "truck-loading-service/internal/domain"

type PackageResponse struct {
	Code          string  `json:"code"`
	Location      string  `json:"location"`
	Weight        int     `json:"weight"`
	Distance      float64 `json:"distance"`
	ShippingType  string  `json:"shipping_type"`
	PaymentStatus string  `json:"payment_status"`
}

type ListPackagesResponse struct {
	Packages []PackageResponse `json:"packages"`
}

type CreatePackageRequest struct {
	Location     string `json:"location"`
	Weight       int    `json:"weight"`
	ShippingType string `json:"shipping_type"`
}

type PaymentResponse struct {
	Package PackageResponse `json:"package"`
	Changed bool            `json:"changed"`
}

func NewPackageResponse(p *domain.Package) PackageResponse {
	return PackageResponse{
		Code:          p.Code,
		Location:      p.Location,
		Weight:        p.Weight,
		Distance:      p.Distance,
		ShippingType:  p.ShippingType.String(),
		PaymentStatus: p.PaymentStatus.String(),
	}
}

func NewPackageResponses(pkgs []*domain.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, NewPackageResponse(p))
	}
	return out
}
