package models

type Feedback struct {
	ID            int    `json:"id"`
	BuyerID       int    `json:"buyerId"`
	BuyerName     string `json:"buyerName"`
	BuyerPicture  string `json:"buyerProfilePicture"`
	ProductID     int    `json:"productId"`
	Ratings       int    `json:"ratings"`
	BuyerFeedback string `json:"buyerFeedback"`
	Timestamp     string `json:"timestamp"`
}

// FeedbackInput is the create payload, validated before submission.
type FeedbackInput struct {
	OrderItemID   int    `json:"orderItemId" validate:"required,gt=0"`
	Ratings       int    `json:"ratings" validate:"required,min=1,max=5"`
	BuyerFeedback string `json:"buyerFeedback" validate:"max=500"`
}
