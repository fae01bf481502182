package dto

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// GerarResumoRequest — materializa um único dia
type GerarResumoRequest struct {
	Data string `json:"data" validate:"required"`
}

// GerarResumosPeriodoRequest — materializa um intervalo fechado de dias.
// DataFim omitida equivale a um único dia.
type GerarResumosPeriodoRequest struct {
	DataInicio string `json:"data_inicio" validate:"required"`
	DataFim    string `json:"data_fim" validate:"omitempty"`
}
