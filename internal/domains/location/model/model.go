package model

import "roam/shared/model"

const (
	TableName  = "locations"
	EntityName = "location"

	FieldID       = "id"
	FieldName     = "name"
	FieldProvince = "province"
	FieldNation   = "nation"
	FieldImage    = "image"
)

type Location struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Province string  `db:"province"`
	Nation   string  `db:"nation"`
	Image    *string `db:"image"`
	model.Metadata
}
