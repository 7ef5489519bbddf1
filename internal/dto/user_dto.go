package dto

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN CUSTOMER"`
	Status   *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
}

type BulkUserStatusRequest struct {
	UserIDs []uint `json:"user_ids" validate:"required,min=1,dive,gt=0"`
	Status  string `json:"status" validate:"required,oneof=ACTIVE INACTIVE SUSPENDED"`
}
