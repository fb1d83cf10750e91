package models

// Car is a sellable vehicle listing, stored in the "car" collection.
// Prices are in KES.
type Car struct {
	Make         string   `json:"make" bson:"make" binding:"required"`
	Model        string   `json:"model" bson:"model" binding:"required"`
	Year         int      `json:"year" bson:"year" binding:"required,gte=1980,lte=2100"`
	Price        *float64 `json:"price" bson:"price" binding:"required,gte=0"`
	MileageKm    *int     `json:"mileage_km,omitempty" bson:"mileage_km,omitempty" binding:"omitempty,gte=0"`
	Transmission string   `json:"transmission,omitempty" bson:"transmission,omitempty" binding:"omitempty,oneof=Automatic Manual"`
	Fuel         string   `json:"fuel,omitempty" bson:"fuel,omitempty" binding:"omitempty,oneof=Petrol Diesel Hybrid Electric"`
	Color        string   `json:"color,omitempty" bson:"color,omitempty"`
	Location     string   `json:"location,omitempty" bson:"location"`
	Description  string   `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL     string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// ApplyDefaults fills in the optional fields the caller omitted.
// Pure; call after binding, before persistence.
func (c *Car) ApplyDefaults() {
	if c.Location == "" {
		c.Location = "Mombasa"
	}
}
