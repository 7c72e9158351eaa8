package handlers

import (
	"net/http"
	"truck-loading-service/internal/api/dto"
	"truck-loading-service/internal/services"
)

// PlanHandler exposes allocation, routing and invoicing over the current batch.
type PlanHandler struct {
	Book *services.PackageBook
}

// Plan allocates the batch and routes every truck in one call.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.TruckCapacity < 0 || req.TruckCapacity > 1000 {
		writeError(w, r, http.StatusBadRequest, "truck_capacity must be between 0 (default) and 1000")
		return
	}

	plan, err := h.Book.PlanDeliveries(r.Context(), services.PlanDeliveriesRequest{
		Strategy:      req.Strategy,
		TruckCapacity: req.TruckCapacity,
	})
	if err != nil {
		writeServiceError(w, r, "plan deliveries", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PlanResponse{
		Allocation: dto.NewAllocationResponse(plan.Allocation),
		Routes:     dto.NewRouteResponses(plan.Routes),
	})
}

func (h *PlanHandler) Trucks(w http.ResponseWriter, r *http.Request) {
	alloc, err := h.Book.Allocate(r.Context())
	if err != nil {
		writeServiceError(w, r, "allocate", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewAllocationResponse(alloc))
}

func (h *PlanHandler) Route(w http.ResponseWriter, r *http.Request) {
	n, err := truckNumber(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	route, err := h.Book.Route(r.Context(), n, r.URL.Query().Get("strategy"))
	if err != nil {
		writeServiceError(w, r, "plan route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewRouteResponse(route))
}

func (h *PlanHandler) Routes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Book.Routes(r.Context(), r.URL.Query().Get("strategy"))
	if err != nil {
		writeServiceError(w, r, "plan routes", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListRoutesResponse{Routes: dto.NewRouteResponses(routes)})
}

func (h *PlanHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	n, err := truckNumber(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := h.Book.Invoice(r.Context(), n)
	if err != nil {
		writeServiceError(w, r, "invoice", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewInvoiceResponse(inv))
}
