package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripwise/internal/domain/plan"
	"tripwise/internal/infrastructure/persistence/mappers"
	"tripwise/internal/infrastructure/persistence/models"
	"tripwise/internal/shared/db"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
	"tripwise/internal/shared/query"
	"tripwise/internal/shared/utils/vnchar"
)

const groupCountSelect = "plans.*, (SELECT COUNT(*) FROM plan_with_group WHERE plan_with_group.plan_id = plans.plan_id) AS group_count"

type PlanRepositoryImpl struct {
	database       *gorm.DB
	tm             *db.TransactionManager
	planMapper     mappers.PlanMapper
	dayPlaceMapper mappers.DayPlaceMapper
	scheduleMapper mappers.ScheduleMapper
	groupMapper    mappers.GroupPlanMapper
}

func NewPlanRepository(database *gorm.DB) plan.Repository {
	return &PlanRepositoryImpl{
		database:       database,
		tm:             db.NewTransactionManager(database),
		planMapper:     mappers.NewPlanMapper(),
		dayPlaceMapper: mappers.NewDayPlaceMapper(),
		scheduleMapper: mappers.NewScheduleMapper(),
		groupMapper:    mappers.NewGroupPlanMapper(),
	}
}

// conn returns the transaction bound to ctx when one is open, otherwise the
// root connection.
func (r *PlanRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.database).WithContext(ctx)
}

func (r *PlanRepositoryImpl) applyListFilter(tx *gorm.DB, filter plan.ListFilter) *gorm.DB {
	tx = tx.Where("(user_created = ? OR status = ?)", filter.ViewerID, "public")

	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		tx = tx.Where(
			"(LOWER(name) LIKE LOWER(?) OR LOWER(COALESCE(json_data ->> 'name_khong_dau', '')) LIKE ?)",
			"%"+filter.Search+"%",
			"%"+vnchar.Slug(filter.Search)+"%",
		)
	}
	if len(filter.Tags) > 0 {
		cond, args := r.tagCondition(filter.Tags)
		tx = tx.Where(cond, args...)
	}
	return tx
}

// tagCondition builds the "json_data.tags contains any of" predicate. The
// jsonb containment operator only exists on postgres; sqlite walks the array
// with json_each.
func (r *PlanRepositoryImpl) tagCondition(tags []string) (string, []interface{}) {
	clauses := make([]string, 0, len(tags))
	args := make([]interface{}, 0, len(tags))

	if r.database.Dialector.Name() == "postgres" {
		for _, tag := range tags {
			payload, _ := json.Marshal([]string{tag})
			clauses = append(clauses, "json_data -> 'tags' @> CAST(? AS jsonb)")
			args = append(args, string(payload))
		}
	} else {
		for _, tag := range tags {
			clauses = append(clauses, "EXISTS (SELECT 1 FROM json_each(json_data, '$.tags') WHERE json_each.value = ?)")
			args = append(args, tag)
		}
	}
	return "(" + strings.Join(clauses, " OR ") + ")", args
}

func (r *PlanRepositoryImpl) List(ctx context.Context, filter plan.ListFilter) ([]*plan.Plan, int64, error) {
	var total int64
	countQuery := r.applyListFilter(r.conn(ctx).Model(&models.PlanModel{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	var rows []*models.PlanRow
	listQuery := r.applyListFilter(r.conn(ctx).Model(&models.PlanModel{}), filter).
		Select(groupCountSelect).
		Order("created_at DESC").
		Limit(filter.PageSize()).
		Offset(filter.Offset())
	if err := listQuery.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	entities, err := r.planMapper.ToEntities(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map plan rows to entities: %w", err)
	}
	return entities, total, nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	var row models.PlanRow
	err := r.conn(ctx).Model(&models.PlanModel{}).
		Select(groupCountSelect).
		Where("plans.plan_id = ?", id).
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan by ID: %w", err)
	}

	entity, err := r.planMapper.ToEntity(&row)
	if err != nil {
		return nil, fmt.Errorf("failed to map plan row to entity: %w", err)
	}
	return entity, nil
}

func (r *PlanRepositoryImpl) DayPlaces(ctx context.Context, planID uint) ([]*plan.DayPlace, error) {
	var modelList []*models.DayPlaceModel
	err := r.conn(ctx).
		Where("plan_id = ?", planID).
		Order("ngay ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list day places: %w", err)
	}

	entities, err := r.dayPlaceMapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map day place models to entities: %w", err)
	}
	return entities, nil
}

func (r *PlanRepositoryImpl) DayPlacesByDay(ctx context.Context, planID uint, day string) ([]*plan.DayPlace, error) {
	var modelList []*models.DayPlaceModel
	err := r.conn(ctx).
		Where("plan_id = ? AND ngay = ?", planID, day).
		Order("plan_day_place_id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list day places by day: %w", err)
	}

	entities, err := r.dayPlaceMapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map day place models to entities: %w", err)
	}
	return entities, nil
}

func (r *PlanRepositoryImpl) DayPlaceByID(ctx context.Context, id uint) (*plan.DayPlace, error) {
	var model models.DayPlaceModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day place by ID: %w", err)
	}

	entity, err := r.dayPlaceMapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map day place model to entity: %w", err)
	}
	return entity, nil
}

func (r *PlanRepositoryImpl) Schedules(ctx context.Context, dayPlaceID uint) ([]*plan.Schedule, error) {
	var modelList []*models.ScheduleModel
	err := r.conn(ctx).
		Where("plan_day_place_id = ?", dayPlaceID).
		Order("start_time ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	entities, err := r.scheduleMapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map schedule models to entities: %w", err)
	}
	return entities, nil
}

func (r *PlanRepositoryImpl) SchedulesPage(ctx context.Context, dayPlaceID uint, page query.PageFilter) ([]*plan.Schedule, int64, error) {
	var total int64
	err := r.conn(ctx).Model(&models.ScheduleModel{}).
		Where("plan_day_place_id = ?", dayPlaceID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count schedules: %w", err)
	}

	var modelList []*models.ScheduleModel
	err = r.conn(ctx).
		Where("plan_day_place_id = ?", dayPlaceID).
		Order("start_time ASC").
		Limit(page.PageSize()).
		Offset(page.Offset()).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list schedules: %w", err)
	}

	entities, err := r.scheduleMapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map schedule models to entities: %w", err)
	}
	return entities, total, nil
}

func (r *PlanRepositoryImpl) GroupPlan(ctx context.Context, groupID uint) (*plan.Plan, error) {
	var row models.PlanRow
	err := r.conn(ctx).Model(&models.PlanModel{}).
		Select(groupCountSelect).
		Joins("JOIN plan_with_group pwg ON pwg.plan_id = plans.plan_id").
		Where("pwg.group_id = ?", groupID).
		Order("pwg.created_at DESC").
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group plan: %w", err)
	}

	entity, err := r.planMapper.ToEntity(&row)
	if err != nil {
		return nil, fmt.Errorf("failed to map plan row to entity: %w", err)
	}
	return entity, nil
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan, days int) error {
	model, err := r.planMapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map plan entity to model: %w", err)
	}
	model.PlanID = 0

	return r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := r.conn(txCtx)

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}
		if err := p.SetID(model.PlanID); err != nil {
			return fmt.Errorf("failed to set plan ID: %w", err)
		}

		for i := 1; i <= days; i++ {
			dayPlace := &models.DayPlaceModel{
				Ngay:     strconv.Itoa(i),
				Location: model.Location,
				JSONData: datatypes.JSON("{}"),
				PlanID:   model.PlanID,
			}
			if err := tx.Create(dayPlace).Error; err != nil {
				return fmt.Errorf("failed to create day place %d: %w", i, err)
			}
		}
		return nil
	})
}

func (r *PlanRepositoryImpl) scalarUpdates(fields plan.UpdateFields) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.ThumbnailURL != nil {
		updates["thumbnail_url"] = *fields.ThumbnailURL
	}
	if fields.Status != nil {
		updates["status"] = *fields.Status
	}
	if fields.Location != nil {
		raw, err := json.Marshal(*fields.Location)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal location: %w", err)
		}
		updates["location"] = datatypes.JSON(raw)
	}
	return updates, nil
}

func (r *PlanRepositoryImpl) UpdateBasic(ctx context.Context, planID uint, fields plan.UpdateFields) (int64, error) {
	updates, err := r.scalarUpdates(fields)
	if err != nil {
		return 0, err
	}
	if len(updates) == 0 {
		return 0, nil
	}
	updates["updated_at"] = time.Now()

	result := r.conn(ctx).Model(&models.PlanModel{}).
		Where("plan_id = ?", planID).
		Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update plan: %w", result.Error)
	}

	if fields.Name != nil {
		r.updateSearchKey(ctx, planID, vnchar.Slug(*fields.Name))
	}
	return result.RowsAffected, nil
}

// updateSearchKey issues the legacy key-path UPDATE against json_data. The
// statement is not valid assignment syntax on either dialect, so the stored
// search key keeps the value written at create time; the error is absorbed
// to keep the mutation flow going. It always runs on the root connection
// because a failed statement inside a postgres transaction would abort it.
func (r *PlanRepositoryImpl) updateSearchKey(ctx context.Context, planID uint, key string) {
	err := r.database.WithContext(ctx).
		Exec("UPDATE plans SET json_data ->> 'name_khong_dau' = ? WHERE plan_id = ?", key, planID).Error
	if err != nil {
		logger.Debug("search key update skipped", "plan_id", planID, "error", err)
	}
}

func (r *PlanRepositoryImpl) UpdateAggregate(
	ctx context.Context,
	planID uint,
	fields plan.UpdateFields,
	dayPlaces []plan.DayPlaceChange,
	schedules []plan.ScheduleChange,
) (*plan.Plan, error) {
	err := r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := r.conn(txCtx)

		updates, err := r.scalarUpdates(fields)
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			updates["updated_at"] = time.Now()
			if err := tx.Model(&models.PlanModel{}).Where("plan_id = ?", planID).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update plan: %w", err)
			}
		}

		for _, change := range dayPlaces {
			if err := r.applyDayPlaceChange(tx, planID, change); err != nil {
				return err
			}
		}
		for _, change := range schedules {
			if err := r.applyScheduleChange(tx, planID, change); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if fields.Name != nil {
		r.updateSearchKey(ctx, planID, vnchar.Slug(*fields.Name))
	}
	return r.GetByID(ctx, planID)
}

func (r *PlanRepositoryImpl) applyDayPlaceChange(tx *gorm.DB, planID uint, change plan.DayPlaceChange) error {
	location, err := json.Marshal(change.Location)
	if err != nil {
		return fmt.Errorf("failed to marshal day place location: %w", err)
	}
	jsonData, err := json.Marshal(change.JSONData)
	if err != nil {
		return fmt.Errorf("failed to marshal day place json_data: %w", err)
	}

	if change.ID != nil {
		err := tx.Model(&models.DayPlaceModel{}).
			Where("plan_day_place_id = ? AND plan_id = ?", *change.ID, planID).
			Updates(map[string]interface{}{
				"ngay":      change.Ngay,
				"location":  datatypes.JSON(location),
				"json_data": datatypes.JSON(jsonData),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update day place %d: %w", *change.ID, err)
		}
		return nil
	}

	model := &models.DayPlaceModel{
		Ngay:     change.Ngay,
		Location: datatypes.JSON(location),
		JSONData: datatypes.JSON(jsonData),
		PlanID:   planID,
	}
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create day place: %w", err)
	}
	return nil
}

func (r *PlanRepositoryImpl) applyScheduleChange(tx *gorm.DB, planID uint, change plan.ScheduleChange) error {
	location, err := json.Marshal(change.Location)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule location: %w", err)
	}
	jsonData, err := json.Marshal(change.JSONData)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule json_data: %w", err)
	}

	if change.ID != nil {
		err := tx.Model(&models.ScheduleModel{}).
			Where("plan_schedule_id = ? AND plan_day_place_id IN (SELECT plan_day_place_id FROM plan_day_places WHERE plan_id = ?)", *change.ID, planID).
			Updates(map[string]interface{}{
				"name":              change.Name,
				"description":       change.Description,
				"start_time":        change.StartTime,
				"end_time":          change.EndTime,
				"location":          datatypes.JSON(location),
				"json_data":         datatypes.JSON(jsonData),
				"activity_id":       change.ActivityID,
				"plan_day_place_id": change.DayPlaceID,
				"updated_at":        time.Now(),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update schedule %d: %w", *change.ID, err)
		}
		return nil
	}

	model := &models.ScheduleModel{
		Name:           change.Name,
		Description:    change.Description,
		StartTime:      change.StartTime,
		EndTime:        change.EndTime,
		Location:       datatypes.JSON(location),
		JSONData:       datatypes.JSON(jsonData),
		ActivityID:     change.ActivityID,
		PlanDayPlaceID: change.DayPlaceID,
	}
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, planID uint) (*plan.Plan, error) {
	deleted, err := r.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, nil
	}

	err = r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := r.conn(txCtx)

		err := tx.Exec(
			"DELETE FROM plan_schedules WHERE plan_day_place_id IN (SELECT plan_day_place_id FROM plan_day_places WHERE plan_id = ?)",
			planID,
		).Error
		if err != nil {
			return fmt.Errorf("failed to delete plan schedules: %w", err)
		}

		if err := tx.Where("plan_id = ?", planID).Delete(&models.DayPlaceModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete day places: %w", err)
		}
		if err := tx.Where("plan_id = ?", planID).Delete(&models.GroupPlanModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete group assignments: %w", err)
		}
		if err := tx.Where("plan_id = ?", planID).Delete(&models.PlanModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *PlanRepositoryImpl) AddToGroup(ctx context.Context, assignment *plan.GroupAssignment) (bool, error) {
	model, err := r.groupMapper.ToModel(assignment)
	if err != nil {
		return false, fmt.Errorf("failed to map group assignment entity to model: %w", err)
	}
	model.PlanWithGroupID = 0

	result := r.conn(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return false, nil
		}
		return false, fmt.Errorf("failed to add plan to group: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err := assignment.SetID(model.PlanWithGroupID); err != nil {
		return false, fmt.Errorf("failed to set group assignment ID: %w", err)
	}
	return true, nil
}

func (r *PlanRepositoryImpl) CreateDayPlace(ctx context.Context, dp *plan.DayPlace) error {
	model, err := r.dayPlaceMapper.ToModel(dp)
	if err != nil {
		return fmt.Errorf("failed to map day place entity to model: %w", err)
	}
	model.PlanDayPlaceID = 0

	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create day place: %w", err)
	}
	return dp.SetID(model.PlanDayPlaceID)
}

func (r *PlanRepositoryImpl) CreateSchedule(ctx context.Context, s *plan.Schedule) error {
	model, err := r.scheduleMapper.ToModel(s)
	if err != nil {
		return fmt.Errorf("failed to map schedule entity to model: %w", err)
	}
	model.PlanScheduleID = 0

	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return s.SetID(model.PlanScheduleID)
}
