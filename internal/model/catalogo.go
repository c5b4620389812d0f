package model

// CanalReserva mirrors the `canalReserva` catalogue table (booking channels
// such as web, phone or agency). Read-only for this service.
type CanalReserva struct {
	CanalKey    int64  // canalReserva.CanalKey
	CanalID     int64  // canalReserva.CanalID
	NombreCanal string // canalReserva.NombreCanal
	Descripcion string // canalReserva.Descripcion
}

// Pago mirrors the `pago` catalogue table (payment method and currency).
// Read-only for this service.
type Pago struct {
	PagoKey int64  // pago.PagoKey
	PagoID  int64  // pago.PagoID
	Metodo  string // pago.Metodo
	Moneda  string // pago.Moneda
}
