package http

import (
	"time"

	"github.com/travel-assistant/travel-assistant-service/internal/domain"
)

// ToDomainCriteria converts a SearchFlightsRequest to domain.SearchCriteria.
func ToDomainCriteria(req *SearchFlightsRequest) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Origin:                req.Origin,
		Destination:           req.Destination,
		Alliance:              req.Alliance,
		Airline:               req.Airline,
		MaxPrice:              req.MaxPrice,
		RefundableOnly:        req.RefundableOnly,
		AvoidOvernightLayover: req.AvoidOvernightLayover,
		MaxLayovers:           req.MaxLayovers,
		DepartureYear:         req.DepartureYear,
	}

	if req.DepartureMonth != nil {
		month := time.Month(*req.DepartureMonth)
		criteria.DepartureMonth = &month
	}

	return criteria
}

// ToFlightDTOs converts domain records to response DTOs, preserving order.
func ToFlightDTOs(flights []domain.FlightRecord) []FlightDTO {
	dtos := make([]FlightDTO, 0, len(flights))
	for _, f := range flights {
		dtos = append(dtos, ToFlightDTO(f))
	}
	return dtos
}

// ToFlightDTO converts one domain record to its response DTO.
func ToFlightDTO(f domain.FlightRecord) FlightDTO {
	layovers := f.Layovers
	if layovers == nil {
		layovers = []string{}
	}

	return FlightDTO{
		FlightID:         f.FlightID,
		Airline:          f.Airline,
		Alliance:         f.Alliance,
		From:             f.From,
		To:               f.To,
		DepartureDate:    f.DepartureDate,
		ReturnDate:       f.ReturnDate,
		PriceUSD:         f.PriceUSD,
		Refundable:       f.Refundable,
		Layovers:         layovers,
		OvernightLayover: f.OvernightLayover,
	}
}
