package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-mates/internal/data/entity"
	"movie-mates/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll returns every user sorted by login email
	FindAll(ctx context.Context) ([]*entity.User, error)

	// ListEmails returns every registered login email
	ListEmails(ctx context.Context) ([]string, error)

	UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error)

	// UpdateProfile populates the dashboard fields; the dashboard is
	// considered set from the first successful call on.
	UpdateProfile(ctx context.Context, email string, dashboard *entity.Dashboard) (int64, error)

	// UpdateFields applies a partial account patch
	UpdateFields(ctx context.Context, email string, patch *entity.UserPatch) (int64, error)

	Delete(ctx context.Context, email string) (int64, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, user_type, email, password_hash, mobile_number, signed_up, google_id, facebook_id,
	has_dashboard, first_name, last_name, basic_mobile_number, city, state, country, dob,
	profile_image, interests, favorite_genre, membership_status, reward_points, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u       entity.User
		hasDash bool

		firstName, lastName, basicMobile        *string
		city, state, country, dob               *string
		profileImage, favoriteGenre, membership *string
		interests                               []string
		rewardPoints                            *int
	)

	err := row.Scan(
		&u.ID,
		&u.UserType,
		&u.Login.Email,
		&u.Login.Password,
		&u.Login.MobileNumber,
		&u.Login.SignedUp,
		&u.Login.GoogleID,
		&u.Login.FacebookID,
		&hasDash,
		&firstName,
		&lastName,
		&basicMobile,
		&city,
		&state,
		&country,
		&dob,
		&profileImage,
		&interests,
		&favoriteGenre,
		&membership,
		&rewardPoints,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if hasDash {
		points := 0
		if rewardPoints != nil {
			points = *rewardPoints
		}
		u.Dashboard = &entity.Dashboard{
			BasicInfo: entity.BasicInfo{
				FirstName:    deref(firstName),
				LastName:     deref(lastName),
				MobileNumber: deref(basicMobile),
				City:         deref(city),
				State:        deref(state),
				Country:      deref(country),
				DOB:          deref(dob),
			},
			ProfileImage:     profileImage,
			Interests:        interests,
			FavoriteGenre:    favoriteGenre,
			MembershipStatus: membership,
			RewardPoints:     points,
		}
	}

	return &u, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, user_type, email, password_hash, mobile_number, signed_up, google_id, facebook_id,
			has_dashboard, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.UserType,
		user.Login.Email,
		user.Login.Password,
		user.Login.MobileNumber,
		user.Login.SignedUp,
		user.Login.GoogleID,
		user.Login.FacebookID,
		user.Dashboard != nil,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Login.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Login.Email, err)
	}

	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return u, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY email ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *userRepository) ListEmails(ctx context.Context) ([]string, error) {
	query := `SELECT email FROM users`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list user emails", zap.Error(err))
		return nil, fmt.Errorf("list user emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		emails = append(emails, email)
	}

	return emails, rows.Err()
}

func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE email = $3`

	tag, err := r.db.Exec(ctx, query, passwordHash, time.Now(), email)
	if err != nil {
		r.log.Error("Failed to update password",
			zap.Error(err),
			zap.String("email", email),
		)
		return 0, fmt.Errorf("update password for %s: %w", email, err)
	}

	return tag.RowsAffected(), nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, email string, dashboard *entity.Dashboard) (int64, error) {
	query := `
		UPDATE users SET
			has_dashboard = TRUE,
			first_name = $1, last_name = $2, basic_mobile_number = $3,
			city = $4, state = $5, country = $6, dob = $7,
			profile_image = $8, interests = $9, favorite_genre = $10,
			membership_status = $11, reward_points = $12, updated_at = $13
		WHERE email = $14
	`

	tag, err := r.db.Exec(ctx, query,
		dashboard.BasicInfo.FirstName,
		dashboard.BasicInfo.LastName,
		dashboard.BasicInfo.MobileNumber,
		dashboard.BasicInfo.City,
		dashboard.BasicInfo.State,
		dashboard.BasicInfo.Country,
		dashboard.BasicInfo.DOB,
		dashboard.ProfileImage,
		dashboard.Interests,
		dashboard.FavoriteGenre,
		dashboard.MembershipStatus,
		dashboard.RewardPoints,
		time.Now(),
		email,
	)

	if err != nil {
		r.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("email", email),
		)
		return 0, fmt.Errorf("update profile for %s: %w", email, err)
	}

	return tag.RowsAffected(), nil
}

func (r *userRepository) UpdateFields(ctx context.Context, email string, patch *entity.UserPatch) (int64, error) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.UserType != nil {
		add("user_type", *patch.UserType)
	}
	if patch.MobileNumber != nil {
		add("mobile_number", *patch.MobileNumber)
	}
	if patch.MembershipStatus != nil {
		add("membership_status", *patch.MembershipStatus)
	}
	if patch.FavoriteGenre != nil {
		add("favorite_genre", *patch.FavoriteGenre)
	}
	if patch.ProfileImage != nil {
		add("profile_image", *patch.ProfileImage)
	}
	if patch.RewardPoints != nil {
		add("reward_points", *patch.RewardPoints)
	}
	add("updated_at", time.Now())

	args = append(args, email)
	query := fmt.Sprintf("UPDATE users SET %s WHERE email = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to patch user",
			zap.Error(err),
			zap.String("email", email),
		)
		return 0, fmt.Errorf("patch user %s: %w", email, err)
	}

	return tag.RowsAffected(), nil
}

func (r *userRepository) Delete(ctx context.Context, email string) (int64, error) {
	query := `DELETE FROM users WHERE email = $1`

	tag, err := r.db.Exec(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("email", email),
		)
		return 0, fmt.Errorf("delete user %s: %w", email, err)
	}

	return tag.RowsAffected(), nil
}
