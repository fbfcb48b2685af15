package dto

// ReportDatesRequest intervalo elegido para el informe. Fechas 2006-01-02;
// ambas obligatorias y start <= end.
type ReportDatesRequest struct {
	StartDate string `json:"start_date" form:"start_date" query:"start_date"`
	EndDate   string `json:"end_date" form:"end_date" query:"end_date"`
}

// ReportDatesResponse eco del intervalo validado con el enlace de descarga.
type ReportDatesResponse struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	DownloadURL string `json:"download_url"`
}
