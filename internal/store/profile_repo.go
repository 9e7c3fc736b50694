package store

import (
	"context"
	"fmt"

	"github.com/ritam/preptrail/ent"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	if _, err := r.client.Profile.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	_, err := r.client.Profile.Create().
		SetTargetRole(p.TargetRole).
		SetExperienceLevel(p.ExperienceLevel).
		SetInterests(p.Interests).
		SetResumeText(p.ResumeText).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Load(ctx context.Context) (*Profile, error) {
	row, err := r.client.Profile.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &Profile{
		TargetRole:      row.TargetRole,
		ExperienceLevel: row.ExperienceLevel,
		Interests:       row.Interests,
		ResumeText:      row.ResumeText,
	}, nil
}
