package request

type CreateBusinessRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Timezone    *string `json:"timezone,omitempty"`
	AutoConfirm *bool   `json:"auto_confirm,omitempty"`
}
