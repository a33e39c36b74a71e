package models

import "time"

// Garage is a listed parking garage. AvailableHours is the owner-curated set
// of bookable "HH:00" labels, kept in the order the owner submitted it.
type Garage struct {
	ID             string    `bson:"id" json:"id"`
	Price          float64   `bson:"price" json:"price"`
	Address        string    `bson:"address" json:"address"`
	SquareMeter    float64   `bson:"squareMeter" json:"squaremeter"`
	GarageType     bool      `bson:"garageType" json:"garagetype"`
	MaxHeight      float64   `bson:"maxHeight,omitempty" json:"maxheight,omitempty"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	Latitude       float64   `bson:"latitude" json:"latitude"`
	Longitude      float64   `bson:"longitude" json:"longitude"`
	Photos         []string  `bson:"photos,omitempty" json:"photos,omitempty"`
	AvailableHours []string  `bson:"availableHours" json:"availableHours"`
	OwnerID        string    `bson:"ownerId" json:"owner"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
