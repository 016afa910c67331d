package handlers

import (
	"io"
	"net/http"

	"mileage-service/internal/api/dto"
	"mileage-service/internal/domain"
	"mileage-service/internal/ports"
	"mileage-service/internal/services"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

type RouteHandler struct {
	Geocoder ports.Geocoder
	Router   ports.RouteProvider
}

// Plan geocodes the submitted addresses and returns the per-leg mileage table.
// Errors are surfaced to the caller verbatim; nothing partial is returned.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	plan, err := services.PlanRoute(r.Context(), req.Addresses, h.Geocoder, h.Router)
	if err != nil {
		log.WithError(err).Warn("plan route failed")
		writeError(w, r, statusFor(err), err.Error())
		return
	}

	res := dto.RouteResponse{
		Legs:          make([]dto.RouteLegResponse, 0, len(plan.Legs)),
		TotalMeters:   plan.TotalMeters,
		TotalMiles:    domain.FormatMiles(plan.TotalMeters),
		SyntheticLegs: plan.SyntheticLegs,
	}
	for _, l := range plan.Legs {
		res.Legs = append(res.Legs, dto.RouteLegResponse{
			Index:  l.Index,
			From:   l.From,
			To:     l.To,
			Meters: l.Meters,
			Miles:  domain.FormatMiles(l.Meters),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
