package statemachine

import "foodexpress/models"

// statusFlow is the canned delivery progression shown to customers.
// It is display vocabulary only: nothing in this process moves an
// order past preparing.
var statusFlow = []models.OrderStatus{
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

var statusLabels = map[models.OrderStatus]string{
	models.StatusPreparing:      "Preparing",
	models.StatusOutForDelivery: "Out for Delivery",
	models.StatusDelivered:      "Delivered",
}

// StatusFlow returns the delivery progression, first stage first.
func StatusFlow() []models.OrderStatus {
	out := make([]models.OrderStatus, len(statusFlow))
	copy(out, statusFlow)
	return out
}

// StatusLabel returns the human label for a status, or "Unknown".
func StatusLabel(status models.OrderStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return "Unknown"
}

// IsTerminalStatus reports whether a status ends the progression.
func IsTerminalStatus(status models.OrderStatus) bool {
	return status == models.StatusDelivered
}
