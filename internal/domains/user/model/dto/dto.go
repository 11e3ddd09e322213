package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"roam/internal/domains/user/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type CreateUserRequest struct {
	Email     string  `json:"email"                validate:"required,email"`
	Password  string  `json:"password"             validate:"required,min=8"`
	Role      string  `json:"role"                 validate:"omitempty,oneof=user admin"`
	FullName  *string `json:"full_name,omitempty"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender    *string `json:"gender,omitempty"     validate:"omitempty,oneof=male female other"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleUser
	}

	return model.User{
		ID:        uuid.NewString(),
		Email:     r.Email,
		Password:  hashedPassword,
		Role:      role,
		FullName:  r.FullName,
		BirthDate: r.BirthDate,
		Gender:    r.Gender,
		Phone:     r.Phone,
		Avatar:    r.Avatar,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  *string `json:"full_name,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.BirthDate = model.BirthDate
	r.Gender = model.Gender
	r.Phone = model.Phone
	r.Avatar = model.Avatar
	r.Metadata.FromModel(model.Metadata)
}

// UpdateProfileRequest replaces every profile field. Omitted fields are
// written as NULL.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender    *string `json:"gender,omitempty"     validate:"omitempty,oneof=male female other"`
	Phone     *string `json:"phone,omitempty"`
}

func (r *UpdateProfileRequest) ToUpdateMap(username string) map[string]any {
	return map[string]any{
		model.FieldFullName:      r.FullName,
		model.FieldBirthDate:     r.BirthDate,
		model.FieldGender:        r.Gender,
		model.FieldPhone:         r.Phone,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}
}

type UpdateAvatarRequest struct {
	Avatar string `db:"avatar" json:"avatar" validate:"required,url"`
}

type UploadAvatarRequest struct {
	Image     *multipart.FileHeader `json:"image"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadAvatarResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadAvatarResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
