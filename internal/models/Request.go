package models

// Request statuses. New requests always start as StatusNew; the other
// two values are set out-of-band for now.
const (
	StatusNew        = "new"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Request is a customer lead for a car purchase or a delivery, stored
// in the "request" collection.
type Request struct {
	Name         string `json:"name" bson:"name" binding:"required"`
	Email        string `json:"email,omitempty" bson:"email,omitempty" binding:"omitempty,email"`
	Phone        string `json:"phone" bson:"phone" binding:"required"`
	ServiceType  string `json:"service_type" bson:"service_type" binding:"required,oneof=car-sale delivery-service"`
	PreferredCar string `json:"preferred_car,omitempty" bson:"preferred_car,omitempty"`
	Location     string `json:"location,omitempty" bson:"location"`
	Message      string `json:"message,omitempty" bson:"message,omitempty"`
	Status       string `json:"status,omitempty" bson:"status" binding:"omitempty,oneof=new in-progress completed"`
}

// ApplyDefaults fills in the optional fields the caller omitted.
func (r *Request) ApplyDefaults() {
	if r.Location == "" {
		r.Location = "Mombasa"
	}
	if r.Status == "" {
		r.Status = StatusNew
	}
}
