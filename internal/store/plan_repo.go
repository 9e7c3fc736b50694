package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ritam/preptrail/ent"
	entplan "github.com/ritam/preptrail/ent/plan"
	"github.com/ritam/preptrail/internal/roadmap"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Save(ctx context.Context, rm *roadmap.Roadmap) error {
	weeks, err := weeksToMaps(rm.Weeks)
	if err != nil {
		return fmt.Errorf("marshal weeks: %w", err)
	}

	// Replace wholesale: a regeneration destroys the prior plan.
	if _, err := r.client.Plan.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear prior plan: %w", err)
	}

	_, err = r.client.Plan.Create().
		SetPlanID(rm.ID).
		SetRoadmapType(rm.RoadmapType).
		SetPersonalizationFactors(rm.PersonalizationFactors).
		SetGeneratedAt(rm.GeneratedAt).
		SetWeeks(weeks).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

func (r *planRepo) Load(ctx context.Context) (*roadmap.Roadmap, error) {
	p, err := r.client.Plan.Query().
		Order(ent.Desc(entplan.FieldGeneratedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan: %w", err)
	}

	weeks, err := mapsToWeeks(p.Weeks)
	if err != nil {
		return nil, fmt.Errorf("unmarshal weeks: %w", err)
	}

	return &roadmap.Roadmap{
		ID:                     p.PlanID,
		RoadmapType:            p.RoadmapType,
		PersonalizationFactors: p.PersonalizationFactors,
		GeneratedAt:            p.GeneratedAt,
		Weeks:                  weeks,
	}, nil
}

func (r *planRepo) Delete(ctx context.Context) error {
	if _, err := r.client.Plan.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// weeksToMaps converts week structs to the JSON map form ent stores.
func weeksToMaps(weeks []roadmap.Week) ([]map[string]any, error) {
	b, err := json.Marshal(weeks)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// mapsToWeeks converts the stored JSON maps back to week structs.
func mapsToWeeks(maps []map[string]any) ([]roadmap.Week, error) {
	b, err := json.Marshal(maps)
	if err != nil {
		return nil, err
	}
	var weeks []roadmap.Week
	if err := json.Unmarshal(b, &weeks); err != nil {
		return nil, err
	}
	return weeks, nil
}
