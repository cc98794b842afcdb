package models

// Address is a shipping address. DistrictID and WardCode are the codes the
// shipping-rate provider requires as quote destination.
type Address struct {
	ID             int    `json:"id"`
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	Street         string `json:"street"`
	Ward           string `json:"ward"`
	WardCode       string `json:"wardCode"`
	District       string `json:"district"`
	DistrictID     int    `json:"districtId"`
	Province       string `json:"province"`
	ProvinceID     int    `json:"provinceId"`
	IsDefault      bool   `json:"isDefault"`
}

// AddressInput is the create/update payload, validated before submission.
type AddressInput struct {
	RecipientName  string `json:"recipientName" validate:"required"`
	RecipientPhone string `json:"recipientPhone" validate:"required,min=9,max=12"`
	Street         string `json:"street" validate:"required"`
	Ward           string `json:"ward" validate:"required"`
	WardCode       string `json:"wardCode" validate:"required"`
	District       string `json:"district" validate:"required"`
	DistrictID     int    `json:"districtId" validate:"required,gt=0"`
	Province       string `json:"province" validate:"required"`
	ProvinceID     int    `json:"provinceId" validate:"required,gt=0"`
	IsDefault      bool   `json:"isDefault"`
}
