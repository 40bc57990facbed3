package dto

import "time"

// RegisterMovementRequest lançamento manual de estoque.
type RegisterMovementRequest struct {
	ProductID string `json:"productId"`
	Type      string `json:"type"` // in, out
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// MovementResponse lançamento persistido.
type MovementResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	ProductID  string    `json:"productId"`
	Type       string    `json:"type"`
	Quantity   int       `json:"quantity"`
	Reason     string    `json:"reason,omitempty"`
	OperatorID string    `json:"operatorId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MovementListResponse listagem paginada de movimentos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
