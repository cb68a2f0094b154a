package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	video "vidshare-backend/internal/domains/video"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) video.Repository {
	return &postgresRepository{pool: pool}
}

const videoColumns = `
	id, owner_id, title, description, video_url, thumbnail_url,
	controls, transform_height, transform_width, transform_quality,
	created_at, updated_at
`

func (r *postgresRepository) Create(ctx context.Context, v *video.Video) error {
	query := `
		INSERT INTO videos (
			id, owner_id, title, description, video_url, thumbnail_url,
			controls, transform_height, transform_width, transform_quality,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		v.ID,
		v.OwnerID,
		v.Title,
		v.Description,
		v.VideoURL,
		v.ThumbnailURL,
		v.Controls,
		v.Transformation.Height,
		v.Transformation.Width,
		v.Transformation.Quality,
		v.CreatedAt,
		v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create video: %w", err)
	}

	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]video.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	// Empty feed must marshal as [], not null.
	videos := make([]video.Video, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate videos: %w", err)
	}

	return videos, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	v, err := scanVideo(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, video.ErrVideoNotFound
		}
		return nil, fmt.Errorf("find video by id: %w", err)
	}

	return v, nil
}

func (r *postgresRepository) ExistsByVideoURL(ctx context.Context, videoURL string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM videos WHERE video_url = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, videoURL).Scan(&exists); err != nil {
		return false, fmt.Errorf("check video url exists: %w", err)
	}

	return exists, nil
}

func scanVideo(row pgx.Row) (*video.Video, error) {
	var v video.Video
	err := row.Scan(
		&v.ID,
		&v.OwnerID,
		&v.Title,
		&v.Description,
		&v.VideoURL,
		&v.ThumbnailURL,
		&v.Controls,
		&v.Transformation.Height,
		&v.Transformation.Width,
		&v.Transformation.Quality,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
