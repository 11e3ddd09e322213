package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"roam/internal/domains/location/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type CreateLocationRequest struct {
	Name     string  `json:"name"            validate:"required,min=2,max=100"`
	Province string  `json:"province"        validate:"required,min=2,max=100"`
	Nation   string  `json:"nation"          validate:"required,min=2,max=100"`
	Image    *string `json:"image,omitempty" validate:"omitempty,url"`
}

func (r *CreateLocationRequest) ToModel(user string) model.Location {
	return model.Location{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Province: r.Province,
		Nation:   r.Nation,
		Image:    r.Image,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateLocationRequest replaces every location field. An omitted image
// is written as NULL.
type UpdateLocationRequest struct {
	Name     string  `json:"name"            validate:"required,min=2,max=100"`
	Province string  `json:"province"        validate:"required,min=2,max=100"`
	Nation   string  `json:"nation"          validate:"required,min=2,max=100"`
	Image    *string `json:"image,omitempty" validate:"omitempty,url"`
}

func (r *UpdateLocationRequest) ToUpdateMap(username string) map[string]any {
	return map[string]any{
		model.FieldName:          r.Name,
		model.FieldProvince:      r.Province,
		model.FieldNation:        r.Nation,
		model.FieldImage:         r.Image,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}
}

type LocationResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Province string  `json:"province"`
	Nation   string  `json:"nation"`
	Image    *string `json:"image,omitempty"`
	gDto.Metadata
}

func (r *LocationResponse) FromModel(model model.Location) {
	r.ID = model.ID
	r.Name = model.Name
	r.Province = model.Province
	r.Nation = model.Nation
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetLocationsResponse) FromModels(models []model.Location, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Locations = make([]LocationResponse, len(models))
	for i, mod := range models {
		r.Locations[i].FromModel(mod)
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
