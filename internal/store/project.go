// File: internal/store/project.go
package store

import (
	"context"
	"fmt"

	"construction-erp/internal/database"
	"construction-erp/internal/model"
)

const projectColumns = `id, name, budget, spent, progress, status, created_at`

func scanProject(row interface{ Scan(...any) error }) (*model.Project, error) {
	p := &model.Project{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Budget,
		&p.Spent,
		&p.Progress,
		&p.Status,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func GetProjectByID(ctx context.Context, db database.DB, id int) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`,
		id,
	)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("GetProjectByID: %w", translate(err))
	}
	return p, nil
}

func ListProjects(ctx context.Context, db database.DB) ([]model.Project, error) {
	rows, err := db.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("ListProjects: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	return projects, nil
}

func CreateProject(ctx context.Context, db database.DB, p *model.Project) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO projects (name, budget, spent, progress, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		p.Name,
		p.Budget,
		p.Spent,
		p.Progress,
		p.Status,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProject: %w", err)
	}
	return p, nil
}

func UpdateProject(ctx context.Context, db database.DB, p *model.Project) error {
	tag, err := db.Exec(ctx,
		`UPDATE projects
		 SET name = $1, budget = $2, spent = $3, progress = $4, status = $5
		 WHERE id = $6`,
		p.Name,
		p.Budget,
		p.Spent,
		p.Progress,
		p.Status,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateProject: %w", ErrNotFound)
	}
	return nil
}

func DeleteProject(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteProject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProject: %w", ErrNotFound)
	}
	return nil
}
