package repository

import (
	"context"
	"time"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(ctx context.Context, token *models.Token) error
	FindActive(ctx context.Context, token string, tokenType models.TokenType) (*models.Token, error)
	Delete(ctx context.Context, id uint) error
	Blacklist(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *models.Token) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) FindActive(ctx context.Context, token string, tokenType models.TokenType) (*models.Token, error) {
	var doc models.Token
	err := r.db.WithContext(ctx).
		Where("token = ? AND type = ? AND blacklisted = false", token, tokenType).
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *tokenRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Token{}, id).Error
}

func (r *tokenRepository) Blacklist(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Model(&models.Token{}).
		Where("token = ?", token).
		Update("blacklisted", true).Error
}

func (r *tokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.Token{})
	return res.RowsAffected, res.Error
}
