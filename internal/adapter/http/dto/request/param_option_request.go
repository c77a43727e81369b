package request

type CreateParamOptionRequest struct {
	Category string `json:"category" binding:"required"`
	Label    string `json:"label" binding:"required"`
}
