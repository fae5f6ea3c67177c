package entity

import "time"

// Estados de una comanda.
const (
	BillStatusOpen   = "open"
	BillStatusClosed = "closed"
)

// Bill representa la comanda de un cliente. Agrupa BillItems; el nombre del
// cliente es único entre comandas abiertas.
type Bill struct {
	ID           int64
	CustomerName string
	Status       string
	CreatedAt    time.Time
}
