package dto

import "truck-loading-service/internal/domain"

type PlanRequest struct {
	Strategy      string `json:"strategy"`
	TruckCapacity int    `json:"truck_capacity"`
}

type TruckResponse struct {
	Number      int               `json:"number"`
	Capacity    int               `json:"capacity"`
	TotalWeight int               `json:"total_weight"`
	MaxDistance float64           `json:"max_distance"`
	Packages    []PackageResponse `json:"packages"`
}

type AllocationResponse struct {
	Capacity int             `json:"capacity"`
	Trucks   []TruckResponse `json:"trucks"`
	Warnings []string        `json:"warnings,omitempty"`
}

type RouteResponse struct {
	TruckNumber int      `json:"truck_number"`
	Strategy    string   `json:"strategy"`
	Cities      []string `json:"cities"`
	Stops       []string `json:"stops"`
	Warnings    []string `json:"warnings,omitempty"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

type PlanResponse struct {
	Allocation AllocationResponse `json:"allocation"`
	Routes     []RouteResponse    `json:"routes"`
}

type InvoiceLineResponse struct {
	Code     string  `json:"code"`
	Location string  `json:"location"`
	Cost     float64 `json:"cost"`
}

type InvoiceResponse struct {
	TruckNumber int                   `json:"truck_number"`
	Lines       []InvoiceLineResponse `json:"lines"`
	Total       float64               `json:"total"`
}

func NewAllocationResponse(a *domain.Allocation) AllocationResponse {
	res := AllocationResponse{
		Capacity: a.Capacity,
		Trucks:   make([]TruckResponse, 0, len(a.Loads)),
		Warnings: warningStrings(a.Warnings),
	}
	for _, l := range a.Loads {
		res.Trucks = append(res.Trucks, TruckResponse{
			Number:      l.Number,
			Capacity:    l.Capacity,
			TotalWeight: l.TotalWeight(),
			MaxDistance: l.MaxDistance(),
			Packages:    NewPackageResponses(l.Packages),
		})
	}
	return res
}

func NewRouteResponse(r *domain.Route) RouteResponse {
	return RouteResponse{
		TruckNumber: r.TruckNumber,
		Strategy:    r.Strategy,
		Cities:      r.Cities,
		Stops:       r.Stops(),
		Warnings:    warningStrings(r.Warnings),
	}
}

func NewRouteResponses(routes []*domain.Route) []RouteResponse {
	out := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, NewRouteResponse(r))
	}
	return out
}

func NewInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	res := InvoiceResponse{
		TruckNumber: inv.TruckNumber,
		Lines:       make([]InvoiceLineResponse, 0, len(inv.Lines)),
		Total:       inv.Total,
	}
	for _, l := range inv.Lines {
		res.Lines = append(res.Lines, InvoiceLineResponse{Code: l.Code, Location: l.Location, Cost: l.Cost})
	}
	return res
}

func warningStrings(ws []domain.Warning) []string {
	if len(ws) == 0 {
		return nil
	}
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.String())
	}
	return out
}
