package model

import "roam/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID             = "id"
	FieldName           = "name"
	FieldCapacity       = "capacity"
	FieldBedrooms       = "bedrooms"
	FieldBeds           = "beds"
	FieldBathrooms      = "bathrooms"
	FieldDescription    = "description"
	FieldPrice          = "price"
	FieldWasher         = "washer"
	FieldIron           = "iron"
	FieldTV             = "tv"
	FieldAirConditioner = "air_conditioner"
	FieldWifi           = "wifi"
	FieldKitchen        = "kitchen"
	FieldParking        = "parking"
	FieldPool           = "pool"
	FieldLocationID     = "location_id"
	FieldImage          = "image"
)

type Room struct {
	ID             string  `db:"id"`
	Name           string  `db:"name"`
	Capacity       int     `db:"capacity"`
	Bedrooms       int     `db:"bedrooms"`
	Beds           int     `db:"beds"`
	Bathrooms      int     `db:"bathrooms"`
	Description    *string `db:"description"`
	Price          float64 `db:"price"`
	Washer         bool    `db:"washer"`
	Iron           bool    `db:"iron"`
	TV             bool    `db:"tv"`
	AirConditioner bool    `db:"air_conditioner"`
	Wifi           bool    `db:"wifi"`
	Kitchen        bool    `db:"kitchen"`
	Parking        bool    `db:"parking"`
	Pool           bool    `db:"pool"`
	LocationID     string  `db:"location_id"`
	Image          *string `db:"image"`
	model.Metadata
}
