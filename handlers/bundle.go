package handlers

// HandlerBundle groups the handlers so route registration takes a single
// dependency.
type HandlerBundle struct {
	Booking *BookingHandler
	Catalog *CatalogHandler
	Admin   *AdminHandler
	Upload  *UploadHandler
}
