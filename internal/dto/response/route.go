package response

import (
	"transfer-booking/internal/data/entity"
)

// RouteListItem is the funnel's selector entry: id is the slug the booking
// form submits back, title is the display name.
type RouteListItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type VehicleOptionResponse struct {
	VehicleClass  string `json:"vehicle_class"`
	FixedPrice    string `json:"fixed_price"`
	MaxPassengers int    `json:"max_passengers"`
	IdealFor      string `json:"ideal_for,omitempty"`
}

type RouteFAQResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type RouteResponse struct {
	ID             string                  `json:"id"`
	Slug           string                  `json:"slug"`
	FromLocation   string                  `json:"from_location"`
	ToLocation     string                  `json:"to_location"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description,omitempty"`
	SEOTitle       string                  `json:"seo_title,omitempty"`
	SEODescription string                  `json:"seo_description,omitempty"`
	Active         bool                    `json:"active"`
	VehicleOptions []VehicleOptionResponse `json:"vehicle_options"`
	FAQs           []RouteFAQResponse      `json:"faqs,omitempty"`
}

// Helper converters

func RouteToListItem(route *entity.Route) RouteListItem {
	return RouteListItem{
		ID:    route.Slug,
		Title: route.Title(),
	}
}

func RouteToResponse(route *entity.Route, options []*entity.VehicleOption, faqs []*entity.RouteFAQ) *RouteResponse {
	optionResponses := make([]VehicleOptionResponse, len(options))
	for i, option := range options {
		optionResponses[i] = VehicleOptionResponse{
			VehicleClass:  string(option.VehicleClass),
			FixedPrice:    option.FixedPrice,
			MaxPassengers: option.MaxPassengers,
			IdealFor:      option.IdealFor,
		}
	}

	faqResponses := make([]RouteFAQResponse, len(faqs))
	for i, faq := range faqs {
		faqResponses[i] = RouteFAQResponse{
			Question: faq.Question,
			Answer:   faq.Answer,
		}
	}

	return &RouteResponse{
		ID:             route.ID.String(),
		Slug:           route.Slug,
		FromLocation:   route.FromLocation,
		ToLocation:     route.ToLocation,
		Title:          route.Title(),
		Description:    route.Description,
		SEOTitle:       route.SEOTitle,
		SEODescription: route.SEODescription,
		Active:         route.Active,
		VehicleOptions: optionResponses,
		FAQs:           faqResponses,
	}
}
