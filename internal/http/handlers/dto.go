package handlers

import "time"

type manifestDTO struct {
	Items     string  `json:"items"`
	Quantity  int     `json:"quantity"`
	TotalCost float64 `json:"total_cost"`
}

type shipmentDTO struct {
	TrackingID   string    `json:"tracking_id"`
	SenderName   string    `json:"sender_name"`
	ReceiverName string    `json:"receiver_name"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Status       string    `json:"status"`
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type orderDTO struct {
	shipmentDTO
	Manifest *manifestDTO `json:"manifest,omitempty"`
}

type createShipmentRequest struct {
	SenderName   string       `json:"sender_name"`
	ReceiverName string       `json:"receiver_name"`
	Origin       string       `json:"origin"`
	Destination  string       `json:"destination"`
	Manifest     *manifestDTO `json:"manifest,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type summaryResponse struct {
	Total     int64   `json:"total"`
	Pending   int64   `json:"pending"`
	InTransit int64   `json:"in_transit"`
	Delivered int64   `json:"delivered"`
	Revenue   float64 `json:"revenue"`
}

type bucketDTO struct {
	BucketStart time.Time `json:"bucket_start"`
	Count       int64     `json:"count"`
}
