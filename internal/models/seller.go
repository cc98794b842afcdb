package models

// Seller carries the seller identity plus the location fields the
// shipping-rate provider needs as quote origin.
type Seller struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Province   string  `json:"province"`
	District   string  `json:"district"`
	DistrictID int     `json:"districtId"`
	Ward       string  `json:"ward"`
	WardCode   string  `json:"wardCode"`
	RatePoint  float64 `json:"ratePoint"`
}
