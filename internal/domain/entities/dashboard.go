package entities

// DashboardMetrics contiene las métricas agregadas del panel de administración
type DashboardMetrics struct {
	TotalUsers         int64     `json:"totalUsers"`
	TodayUsers         int64     `json:"todayUsers"`
	WeekUsers          int64     `json:"weekUsers"`
	MonthUsers         int64     `json:"monthUsers"`
	ActiveUsers        int64     `json:"activeUsers"`
	CompletedSurveys   int64     `json:"completedSurveys"`
	BibleReaders       int64     `json:"bibleReaders"`
	TotalBibleReadings int64     `json:"totalBibleReadings"`
	WeekBibleReadings  int64     `json:"weekBibleReadings"`
	TopBooks           []TopBook `json:"topBooks"`
	// Temporal hasta que exista el sistema de suscripciones
	PremiumUsers int64 `json:"premiumUsers"`
	FreeUsers    int64 `json:"freeUsers"`
}

// TopBook es un par (libro, total de lecturas) del ranking de libros más leídos
type TopBook struct {
	Book  string `json:"book"`
	Total int64  `json:"total"`
}

// FunnelStep es una etapa del funnel de conversión con conteo absoluto y tasa
// sobre la línea base de registrados
type FunnelStep struct {
	Name  string  `json:"name"`
	Count int64   `json:"count"`
	Rate  float64 `json:"rate"`
}

// Funnel es la secuencia fija de etapas del funnel de conversión
type Funnel struct {
	Steps []FunnelStep `json:"steps"`
}
