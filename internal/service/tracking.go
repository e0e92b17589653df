package service

import (
	"strings"

	"dealer-orders/internal/models"
)

const (
	StagePending    = "Pending"
	StageProcessing = "Processing"
	StageShipped    = "Shipped"
	StageDelivered  = "Delivered"
)

// ProgressStep maps a status onto the four-stage journey. Cancelled and
// unknown values return -1.
func ProgressStep(st models.Status) int {
	switch strings.ToLower(string(st)) {
	case "pending":
		return 0
	case "processing":
		return 1
	case "shipped":
		return 2
	case "completed", "delivered":
		return 3
	}
	return -1
}

func BuildTrackingView(o models.Order) models.TrackingView {
	step := ProgressStep(o.Status)
	td := o.TrackingDetails
	created := o.CreatedAt

	stages := []models.Stage{
		{Name: StagePending, Actual: &created, Reached: true},
		{Name: StageProcessing, Expected: td.ExpectedProcessingDate, Actual: td.ActualProcessingDate, Reached: step >= 1},
		{Name: StageShipped, Expected: td.ExpectedShippedDate, Actual: td.ActualShippedDate, Reached: step >= 2},
		{Name: StageDelivered, Expected: td.ExpectedDeliveredDate, Actual: td.ActualDeliveredDate, Reached: step >= 3},
	}

	return models.TrackingView{
		OrderID:       o.OrderID,
		FirstName:     o.FirstName,
		LastName:      o.LastName,
		Email:         o.Email,
		Phone:         o.Phone,
		Address:       o.Address,
		City:          o.City,
		State:         o.State,
		ZipCode:       o.ZipCode,
		Country:       o.Country,
		PaymentMethod: o.PaymentMethod,
		Cart:          append([]models.CartItem(nil), o.Cart...),
		Total:         o.Total,
		Status:        o.Status,
		DisplayStatus: strings.ToLower(string(o.Status)),
		ProgressStep:  step,
		Cancelled:     o.Status == models.StatusCancelled,
		Stages:        stages,
		Tracking:      td,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
