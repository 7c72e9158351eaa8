package handlers

import (
	"net/http"
	"truck-loading-service/internal/api/dto"
	"truck-loading-service/internal/services"
)

// PackageHandler exposes the package batch: listing, intake, cancellation and payment.
type PackageHandler struct {
	Book *services.PackageBook
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.Book.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "list packages", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListPackagesResponse{Packages: dto.NewPackageResponses(pkgs)})
}

func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePackageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pkg, err := h.Book.Add(r.Context(), services.AddPackageRequest{
		Location:     req.Location,
		Weight:       req.Weight,
		ShippingType: req.ShippingType,
	})
	if err != nil {
		writeServiceError(w, r, "add package", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.NewPackageResponse(pkg))
}

func (h *PackageHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.Book.Cancel(r.Context(), r.PathValue("code")); err != nil {
		writeServiceError(w, r, "cancel package", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PackageHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	pkg, changed, err := h.Book.ConfirmPayment(r.Context(), r.PathValue("code"))
	if err != nil {
		writeServiceError(w, r, "confirm payment", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PaymentResponse{Package: dto.NewPackageResponse(pkg), Changed: changed})
}
