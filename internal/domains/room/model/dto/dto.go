package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"roam/internal/domains/room/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type CreateRoomRequest struct {
	Name           string  `json:"name"                  validate:"required,min=2,max=100"`
	Capacity       int     `json:"capacity"              validate:"required,min=1"`
	Bedrooms       int     `json:"bedrooms"              validate:"min=0"`
	Beds           int     `json:"beds"                  validate:"min=0"`
	Bathrooms      int     `json:"bathrooms"             validate:"min=0"`
	Description    *string `json:"description,omitempty"`
	Price          float64 `json:"price"                 validate:"required,gt=0"`
	Washer         bool    `json:"washer"`
	Iron           bool    `json:"iron"`
	TV             bool    `json:"tv"`
	AirConditioner bool    `json:"air_conditioner"`
	Wifi           bool    `json:"wifi"`
	Kitchen        bool    `json:"kitchen"`
	Parking        bool    `json:"parking"`
	Pool           bool    `json:"pool"`
	LocationID     string  `json:"location_id"           validate:"required,uuid"`
	Image          *string `json:"image,omitempty"       validate:"omitempty,url"`
}

func (r *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:             uuid.NewString(),
		Name:           r.Name,
		Capacity:       r.Capacity,
		Bedrooms:       r.Bedrooms,
		Beds:           r.Beds,
		Bathrooms:      r.Bathrooms,
		Description:    r.Description,
		Price:          r.Price,
		Washer:         r.Washer,
		Iron:           r.Iron,
		TV:             r.TV,
		AirConditioner: r.AirConditioner,
		Wifi:           r.Wifi,
		Kitchen:        r.Kitchen,
		Parking:        r.Parking,
		Pool:           r.Pool,
		LocationID:     r.LocationID,
		Image:          r.Image,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateRoomRequest replaces every room field. Omitted optional fields
// are written as NULL, omitted booleans as false.
type UpdateRoomRequest struct {
	Name           string  `json:"name"                  validate:"required,min=2,max=100"`
	Capacity       int     `json:"capacity"              validate:"required,min=1"`
	Bedrooms       int     `json:"bedrooms"              validate:"min=0"`
	Beds           int     `json:"beds"                  validate:"min=0"`
	Bathrooms      int     `json:"bathrooms"             validate:"min=0"`
	Description    *string `json:"description,omitempty"`
	Price          float64 `json:"price"                 validate:"required,gt=0"`
	Washer         bool    `json:"washer"`
	Iron           bool    `json:"iron"`
	TV             bool    `json:"tv"`
	AirConditioner bool    `json:"air_conditioner"`
	Wifi           bool    `json:"wifi"`
	Kitchen        bool    `json:"kitchen"`
	Parking        bool    `json:"parking"`
	Pool           bool    `json:"pool"`
	LocationID     string  `json:"location_id"           validate:"required,uuid"`
	Image          *string `json:"image,omitempty"       validate:"omitempty,url"`
}

func (r *UpdateRoomRequest) ToUpdateMap(username string) map[string]any {
	return map[string]any{
		model.FieldName:           r.Name,
		model.FieldCapacity:       r.Capacity,
		model.FieldBedrooms:       r.Bedrooms,
		model.FieldBeds:           r.Beds,
		model.FieldBathrooms:      r.Bathrooms,
		model.FieldDescription:    r.Description,
		model.FieldPrice:          r.Price,
		model.FieldWasher:         r.Washer,
		model.FieldIron:           r.Iron,
		model.FieldTV:             r.TV,
		model.FieldAirConditioner: r.AirConditioner,
		model.FieldWifi:           r.Wifi,
		model.FieldKitchen:        r.Kitchen,
		model.FieldParking:        r.Parking,
		model.FieldPool:           r.Pool,
		model.FieldLocationID:     r.LocationID,
		model.FieldImage:          r.Image,
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  username,
	}
}

type RoomResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Capacity       int     `json:"capacity"`
	Bedrooms       int     `json:"bedrooms"`
	Beds           int     `json:"beds"`
	Bathrooms      int     `json:"bathrooms"`
	Description    *string `json:"description,omitempty"`
	Price          float64 `json:"price"`
	Washer         bool    `json:"washer"`
	Iron           bool    `json:"iron"`
	TV             bool    `json:"tv"`
	AirConditioner bool    `json:"air_conditioner"`
	Wifi           bool    `json:"wifi"`
	Kitchen        bool    `json:"kitchen"`
	Parking        bool    `json:"parking"`
	Pool           bool    `json:"pool"`
	LocationID     string  `json:"location_id"`
	Image          *string `json:"image,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Bedrooms = model.Bedrooms
	r.Beds = model.Beds
	r.Bathrooms = model.Bathrooms
	r.Description = model.Description
	r.Price = model.Price
	r.Washer = model.Washer
	r.Iron = model.Iron
	r.TV = model.TV
	r.AirConditioner = model.AirConditioner
	r.Wifi = model.Wifi
	r.Kitchen = model.Kitchen
	r.Parking = model.Parking
	r.Pool = model.Pool
	r.LocationID = model.LocationID
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UpdateImageRequest struct {
	Image string `db:"image" json:"image" validate:"required,url"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
