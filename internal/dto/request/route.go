package request

type VehicleOptionRequest struct {
	VehicleClass  string `json:"vehicle_class" validate:"required,oneof=sedan vclass"`
	FixedPrice    string `json:"fixed_price" validate:"required"`
	MaxPassengers int    `json:"max_passengers" validate:"required,min=1"`
	IdealFor      string `json:"ideal_for"`
}

type RouteFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type RouteRequest struct {
	Slug           string                 `json:"slug" validate:"required,min=3,max=100"`
	FromLocation   string                 `json:"from_location" validate:"required"`
	ToLocation     string                 `json:"to_location" validate:"required"`
	Description    string                 `json:"description"`
	SEOTitle       string                 `json:"seo_title"`
	SEODescription string                 `json:"seo_description"`
	Active         bool                   `json:"active"`
	VehicleOptions []VehicleOptionRequest `json:"vehicle_options" validate:"required,min=1,max=2,dive"`
	FAQs           []RouteFAQRequest      `json:"faqs" validate:"dive"`
}
