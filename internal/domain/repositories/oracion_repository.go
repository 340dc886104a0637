package repositories

import (
	"errors"
	"time"

	"github.com/richardGonza/orasLocal/internal/domain/apperr"
	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IOracionRepository interface {
	Listar(categoria string, esPremium *bool) ([]entities.Oracion, error)
	FindByID(id uint) (*entities.Oracion, error)
	Categorias() ([]string, error)
	Gratuitas(limit int) ([]entities.Oracion, error)
	ProgresoDe(peopleID, oracionID uint) (*entities.OracionUsuario, error)
	ProgresosDe(peopleID uint) (map[uint]entities.OracionUsuario, error)
	Completar(peopleID, oracionID uint, now time.Time) (*entities.OracionUsuario, error)
	ActualizarProgreso(peopleID, oracionID uint, progreso int, now time.Time) (*entities.OracionUsuario, error)
}

type OracionRepository struct {
	db *gorm.DB
}

func NewOracionRepository(db *gorm.DB) *OracionRepository {
	return &OracionRepository{
		db: db,
	}
}

// Listar retorna el catálogo ordenado por (orden asc, id asc); el orden
// secundario por id hace deterministas los empates
func (r *OracionRepository) Listar(categoria string, esPremium *bool) ([]entities.Oracion, error) {
	var oraciones []entities.Oracion

	query := r.db.Model(&entities.Oracion{})

	if categoria != "" {
		query = query.Where("categoria = ?", categoria)
	}
	if esPremium != nil {
		query = query.Where("es_premium = ?", *esPremium)
	}

	err := query.Order("orden ASC, id ASC").Find(&oraciones).Error
	return oraciones, err
}

func (r *OracionRepository) FindByID(id uint) (*entities.Oracion, error) {
	var oracion entities.Oracion
	if err := r.db.First(&oracion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &oracion, nil
}

// Categorias retorna las categorías distintas del catálogo, ordenadas
func (r *OracionRepository) Categorias() ([]string, error) {
	var categorias []string
	err := r.db.Model(&entities.Oracion{}).
		Distinct("categoria").
		Order("categoria ASC").
		Pluck("categoria", &categorias).Error
	return categorias, err
}

func (r *OracionRepository) Gratuitas(limit int) ([]entities.Oracion, error) {
	var oraciones []entities.Oracion
	err := r.db.Where("es_premium = ?", false).
		Order("orden ASC, id ASC").
		Limit(limit).
		Find(&oraciones).Error
	return oraciones, err
}

// ProgresoDe retorna el registro de progreso de la persona sobre la oración,
// o nil si nunca la inició
func (r *OracionRepository) ProgresoDe(peopleID, oracionID uint) (*entities.OracionUsuario, error) {
	var progreso entities.OracionUsuario
	err := r.db.Where("people_id = ? AND oracion_id = ?", peopleID, oracionID).First(&progreso).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progreso, nil
}

// ProgresosDe carga todos los progresos de la persona en una sola consulta,
// indexados por oracion_id, para anotar el catálogo completo
func (r *OracionRepository) ProgresosDe(peopleID uint) (map[uint]entities.OracionUsuario, error) {
	var filas []entities.OracionUsuario
	if err := r.db.Where("people_id = ?", peopleID).Find(&filas).Error; err != nil {
		return nil, err
	}

	result := make(map[uint]entities.OracionUsuario, len(filas))
	for _, fila := range filas {
		result[fila.OracionID] = fila
	}
	return result, nil
}

// Completar hace upsert del progreso dejando progreso=100 y completada_at=now
// sin condiciones, incluso si ya estaba completada. El ON CONFLICT sobre
// (people_id, oracion_id) absorbe la carrera de dos find-or-create simultáneos.
func (r *OracionRepository) Completar(peopleID, oracionID uint, now time.Time) (*entities.OracionUsuario, error) {
	registro := entities.OracionUsuario{
		PeopleID:     peopleID,
		OracionID:    oracionID,
		Progreso:     100,
		CompletadaAt: &now,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "people_id"}, {Name: "oracion_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"progreso":      100,
			"completada_at": now,
			"updated_at":    now,
		}),
	}).Create(&registro).Error
	if err != nil {
		return nil, err
	}

	return r.progresoActual(peopleID, oracionID)
}

// ActualizarProgreso hace upsert del porcentaje (sobrescribe, no es monótono).
// completada_at se fija una sola vez, al cruzar el umbral de 100 por primera
// vez; nunca se limpia un timestamp ya puesto.
func (r *OracionRepository) ActualizarProgreso(peopleID, oracionID uint, progreso int, now time.Time) (*entities.OracionUsuario, error) {
	registro := entities.OracionUsuario{
		PeopleID:  peopleID,
		OracionID: oracionID,
		Progreso:  progreso,
	}
	if progreso >= 100 {
		registro.CompletadaAt = &now
	}

	assignments := map[string]interface{}{
		"progreso":   progreso,
		"updated_at": now,
	}
	if progreso >= 100 {
		assignments["completada_at"] = gorm.Expr("COALESCE(oracion_usuario.completada_at, ?)", now)
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "people_id"}, {Name: "oracion_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&registro).Error
	if err != nil {
		return nil, err
	}

	return r.progresoActual(peopleID, oracionID)
}

// progresoActual relee la fila tras el upsert para devolver el estado canónico
func (r *OracionRepository) progresoActual(peopleID, oracionID uint) (*entities.OracionUsuario, error) {
	var registro entities.OracionUsuario
	err := r.db.Where("people_id = ? AND oracion_id = ?", peopleID, oracionID).First(&registro).Error
	if err != nil {
		return nil, err
	}
	return &registro, nil
}
