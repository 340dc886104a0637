package usecases

import (
	"math"
	"time"

	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"github.com/richardGonza/orasLocal/internal/domain/repositories"
	"github.com/richardGonza/orasLocal/internal/infrastructure/cache"
)

const (
	metricsCacheKey = "admin:dashboard:metrics"
	funnelCacheKey  = "admin:dashboard:funnel"
	dashboardTTL    = 30 * time.Second

	topBooksLimit = 5
)

// DashboardUseCase arma las métricas y el funnel del panel de administración.
// Los agregados se cachean unos segundos en memoria para no golpear la base
// en cada refresco del panel.
type DashboardUseCase struct {
	dashboardRepo repositories.IDashboardRepository
	cache         *cache.Cache
}

func NewDashboardUseCase(dashboardRepo repositories.IDashboardRepository, c *cache.Cache) *DashboardUseCase {
	return &DashboardUseCase{
		dashboardRepo: dashboardRepo,
		cache:         c,
	}
}

// GetMetrics retorna las métricas del dashboard
func (u *DashboardUseCase) GetMetrics() (*entities.DashboardMetrics, error) {
	if u.cache != nil {
		if cached, ok := u.cache.Get(metricsCacheKey); ok {
			return cached.(*entities.DashboardMetrics), nil
		}
	}

	ahora := time.Now()
	inicioHoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())

	metrics := &entities.DashboardMetrics{}

	var err error
	if metrics.TotalUsers, err = u.dashboardRepo.CountPeople(); err != nil {
		return nil, err
	}
	if metrics.TodayUsers, err = u.dashboardRepo.CountPeopleBetween(inicioHoy, inicioHoy.AddDate(0, 0, 1)); err != nil {
		return nil, err
	}
	if metrics.WeekUsers, err = u.dashboardRepo.CountPeopleSince(ahora.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}
	if metrics.MonthUsers, err = u.dashboardRepo.CountPeopleSince(ahora.AddDate(0, -1, 0)); err != nil {
		return nil, err
	}
	// "Activos" = personas con al menos una respuesta de encuesta
	if metrics.ActiveUsers, err = u.dashboardRepo.CountDistinctResponders(); err != nil {
		return nil, err
	}
	if metrics.CompletedSurveys, err = u.dashboardRepo.CountDistinctResponders(); err != nil {
		return nil, err
	}
	if metrics.BibleReaders, err = u.dashboardRepo.CountBibleReaders(); err != nil {
		return nil, err
	}
	if metrics.TotalBibleReadings, err = u.dashboardRepo.CountBibleReadings(); err != nil {
		return nil, err
	}
	if metrics.WeekBibleReadings, err = u.dashboardRepo.CountBibleReadingsSince(ahora.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}
	if metrics.TopBooks, err = u.dashboardRepo.TopBooks(topBooksLimit); err != nil {
		return nil, err
	}

	// Temporal hasta que exista el sistema de suscripciones
	metrics.PremiumUsers = 0
	metrics.FreeUsers = metrics.TotalUsers

	if u.cache != nil {
		u.cache.Set(metricsCacheKey, metrics, dashboardTTL)
	}
	return metrics, nil
}

// GetFunnel retorna las cuatro etapas fijas del funnel de conversión, cada
// una con conteo absoluto y tasa sobre la línea base de registrados
func (u *DashboardUseCase) GetFunnel() (*entities.Funnel, error) {
	if u.cache != nil {
		if cached, ok := u.cache.Get(funnelCacheKey); ok {
			return cached.(*entities.Funnel), nil
		}
	}

	registered, err := u.dashboardRepo.CountPeople()
	if err != nil {
		return nil, err
	}

	completedSurvey, err := u.dashboardRepo.CountDistinctResponders()
	if err != nil {
		return nil, err
	}

	// Temporales hasta implementar oraciones completadas y suscripciones en
	// el funnel
	var completedPrayer, subscribed int64 = 0, 0

	funnel := &entities.Funnel{
		Steps: []entities.FunnelStep{
			{Name: "Registro", Count: registered, Rate: 100},
			{Name: "Completó Encuesta", Count: completedSurvey, Rate: tasaSobreBase(completedSurvey, registered)},
			{Name: "Primera Oración", Count: completedPrayer, Rate: tasaSobreBase(completedPrayer, registered)},
			{Name: "Suscripción Premium", Count: subscribed, Rate: tasaSobreBase(subscribed, registered)},
		},
	}

	if u.cache != nil {
		u.cache.Set(funnelCacheKey, funnel, dashboardTTL)
	}
	return funnel, nil
}

// tasaSobreBase calcula count/base*100 redondeado a 2 decimales
func tasaSobreBase(count, base int64) float64 {
	if base <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(base)*10000) / 100
}
